// File: adapter.go
// Role: the Graph Adapter contract (spec §4.1) as the engine's own narrow
//       consumer interface, satisfied structurally by *core.Graph.
// AI-HINT (file):
//   - Defined at the consumer (this package), not in core, per "accept
//     interfaces, return structs" — core never imports grandiso.
//   - match.DegreeProvider is a subset of Adapter's method set, so any
//     Adapter value is directly usable wherever a DegreeProvider is wanted.

package grandiso

import "github.com/aplbrain/grandiso-go/core"

// Adapter is the read-only graph surface the search engine consumes: vertex
// iteration, in/out neighbor and degree queries, edge existence, and
// attribute access. *core.Graph satisfies this directly.
type Adapter interface {
	// Vertices returns every vertex identifier. Iteration order need not be
	// stable across calls for correctness, but core.Graph sorts it.
	Vertices() []string

	// NeighborsOut returns the out-neighbor IDs of id (for undirected
	// graphs, the same set NeighborsIn would return).
	NeighborsOut(id string) []string

	// NeighborsIn returns the in-neighbor IDs of id.
	NeighborsIn(id string) []string

	// DegreeOut, DegreeIn, Degree report out-, in-, and undirected degree.
	DegreeOut(id string) int
	DegreeIn(id string) int
	Degree(id string) int

	// HasEdge reports whether a from->to edge exists.
	HasEdge(from, to string) bool

	// VertexAttrs and EdgeAttrs return attribute bags (nil if unknown).
	VertexAttrs(id string) core.Attrs
	EdgeAttrs(from, to string) core.Attrs

	// Directed reports this graph's built-in directedness. The engine uses
	// it only to infer the effective search directedness when the caller
	// does not override it with WithDirected.
	Directed() bool
}
