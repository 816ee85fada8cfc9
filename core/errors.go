package core

import "errors"

// Sentinel errors for Graph Adapter operations.
var (
	// ErrEmptyVertexID indicates an empty vertex identifier was supplied.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrLoopNotAllowed indicates a self-loop was attempted (unsupported: motifs/hosts are simple).
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdge indicates a second edge was attempted between an (from, to)
	// pair that already has one. Graphs here are simple by construction.
	ErrMultiEdge = errors.New("core: parallel edge not allowed")
)
