// SPDX-License-Identifier: MIT

// Package core defines the Graph, Vertex and Edge types used to represent
// flow matrices as directed weighted graphs, and provides thread-safe
// primitives for building and querying them.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for
// vertices, muEdgeAdj for edges and adjacency), so a graph can be read from
// several goroutines while it is no longer being mutated.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - edge weight is NaN or ±Inf.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - second edge for an origin-destination pair.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-finite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge for the same ordered pair:
	// one matrix cell is one flow.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a spatial unit (node) in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge represents one directed flow between two vertices.
//
// Each Edge has a unique ID, endpoints From→To and a float64 Weight
// (the flow intensity).
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the origin vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the flow carried by the edge.
	Weight float64

	seq uint64 // creation order, used for deterministic sorting
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (self-flows on the matrix diagonal).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a directed weighted graph: every edge is one origin→destination
// flow, and an ordered pair carries at most one edge.
//
// muVert protects the vertex catalog; muEdgeAdj protects the edge catalog and
// both adjacency indexes. Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, out and in

	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// out[from][to][edgeID] and in[to][from][edgeID].
	out map[string]map[string]map[string]struct{}
	in  map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty directed Graph with the given options.
// By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(map[string]map[string]map[string]struct{}),
		in:       make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewFlowGraph creates a graph that admits self-loops, the shape expected
// for flow matrices whose diagonal may carry self-flows.
func NewFlowGraph() *Graph {
	return NewGraph(WithLoops())
}
