// Package grandisogo is the root of a small motif-matching toolkit: given a
// motif graph and a host graph, find every way the motif embeds in the
// host.
//
// What
//
//	The search is split into five cooperating components, each its own
//	subpackage:
//
//	  core/            — Graph, Vertex, Edge and the tagged-union Value
//	                      attribute model; thread-safe under an RWMutex.
//	  match/            — structural (degree), node-attribute, and
//	                      edge-attribute match predicates, plus a Cache
//	                      that memoizes node-attribute results for one search.
//	  interestingness/  — orderings that decide which unmapped motif
//	                      vertex the engine should bind next.
//	  queue/            — the pluggable work-queue abstraction (LIFO, FIFO,
//	                      and an instrumented wrapper) that drives the
//	                      engine's backbone-growth frontier.
//	  grandiso/         — the search engine itself: FindMotifs,
//	                      FindMotifsIter, FindMotifsParallel, CountMotifs
//	                      and CountMotifsParallel.
//
// Why
//
//	Each concern is independently swappable: a caller can plug in a
//	priority-driven interestingness vector, an instrumented queue for
//	profiling a search, or attribute predicates with custom equality,
//	without touching the search loop in package grandiso.
//
// Quick example:
//
//	motif := core.NewGraph()
//	motif.AddEdge("a", "b", nil)
//	motif.AddEdge("b", "c", nil)
//	motif.AddEdge("c", "a", nil)
//
//	host := core.NewGraph()
//	host.AddEdge("X", "Y", nil)
//	host.AddEdge("Y", "Z", nil)
//	host.AddEdge("Z", "X", nil)
//
//	matches, err := grandiso.FindMotifs(motif, host)
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full design
// rationale, and the Example functions in package grandiso for runnable
// scenarios covering directed motifs and hints.
//
//	go get github.com/aplbrain/grandiso-go
package grandisogo
