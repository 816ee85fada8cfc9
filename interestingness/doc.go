// Package interestingness implements the per-motif-vertex priority vector
// (spec §4.3) that drives which unmapped motif vertex the search engine
// expands next. Higher values are "more interesting" (more selective);
// ties are broken deterministically by motif vertex identifier so that,
// for a fixed interestingness vector, the engine's expansion order is
// reproducible (spec §4.5.4, P10).
package interestingness
