// Package grandiso implements the Grand-Iso subgraph matching search
// engine: given a small motif graph and a larger host graph, it enumerates
// every injective mapping of motif vertices to host vertices that preserves
// the motif's edge structure, under monomorphism or induced-isomorphism
// semantics.
//
// What
//
//   - FindMotifs / FindMotifsIter / FindMotifsParallel: the three entry
//     points, returning a list, a lazy sequence, or running N concurrent
//     workers over a shared queue.
//   - A backbone is a partial, injective, locally-consistent mapping from
//     motif vertex identifiers to host vertex identifiers; the engine grows
//     backbones one vertex at a time, driven by a pluggable work queue
//     (package queue) and a pluggable interestingness ordering (package
//     interestingness).
//   - Candidate host vertices at each step are filtered by the match
//     predicates (package match): structural (degree) compatibility,
//     node-attribute compatibility, and edge-attribute compatibility.
//
// Why
//
//   - Motif search shows up wherever a small pattern must be located inside
//     a larger relational structure: circuit motifs, social-network
//     triads, call-graph patterns, biological network motifs.
//   - Separating the graph adapter, match predicates, interestingness
//     ordering, and work queue from the engine driver lets each concern be
//     swapped independently: a caller can plug in a priority-driven
//     interestingness vector, an instrumented queue for profiling, or
//     attribute predicates with custom equality, without touching the
//     search loop itself.
//
// Determinism
//
//	Single-threaded runs under a deterministic queue policy and deterministic
//	predicates produce results in a deterministic order: the m_next selection
//	rule is a pure function of a backbone's domain, so the same inputs always
//	expand the same way regardless of the path taken to reach a given
//	backbone. Parallel runs (FindMotifsParallel) preserve the result set but
//	not its order.
//
// Complexity
//
//	Worst case is exponential in the motif size (subgraph isomorphism is
//	NP-complete in general); the structural and attribute predicates prune
//	the search tree before it branches, and interestingness ordering lets
//	callers front-load the most selective motif vertices.
package grandiso
