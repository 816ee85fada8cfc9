// Package queue implements the Work Queue abstraction (spec §4.4): a
// FIFO/LIFO-agnostic container of partial mappings ("backbones"), selected
// by policy, plus an instrumented wrapper for profiling and a synchronized
// wrapper for the parallel engine (spec §5).
//
// The search engine never relies on any ordering guarantee beyond what its
// chosen policy implies (spec §4.4, last paragraph) — correctness (no
// duplicates, no omissions) does not depend on queue order, only on which
// backbones get pushed and popped exactly once.
package queue
