// Package core defines the Graph Adapter: a minimal, thread-safe, attributed
// directed/undirected graph used as both the motif (pattern) and the host
// (haystack) input to the grandiso search engine.
//
// A Graph is built once via AddVertex/AddEdge and then treated as read-only
// by everything downstream — the engine never mutates a motif or a host.
// Vertices and edges carry an open attribute bag (Attrs); see attrs.go for
// the tagged value model.
//
// Graphs here are simple: at most one edge per ordered (from, to) pair, no
// self-loops. Motifs and hosts for subgraph matching are assumed simple
// (see the multigraph note in the package-level design notes); anything
// richer belongs in a higher-level adapter the caller writes itself.
package core
