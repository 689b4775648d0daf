// SPDX-License-Identifier: MIT

// Package core provides the directed weighted graph that backs flow-matrix
// connectivity analysis.
//
// What
//
//   - Graph: vertices keyed by string ID, directed edges carrying a float64
//     flow; one edge per ordered pair.
//   - Options: WithLoops; NewFlowGraph presets the loop-permitting shape used
//     for flow matrices whose diagonal may hold self-flows.
//   - Queries: Vertices, VertexCount, Edges, WeakNeighborIDs, Degree,
//     WeightedDegree, Stats.
//
// Determinism
//
//	Vertices and neighbor lists are sorted lexicographically; Edges are
//	returned in creation order. Degree sums and Stats iterate edges in
//	creation order, so floating-point totals are reproducible.
//
// Concurrency
//
//	muVert guards the vertex catalog; muEdgeAdj guards edges and adjacency.
//	Lock order is always muVert -> muEdgeAdj.
//
// Example:
//
//	g := core.NewFlowGraph()
//	_, _ = g.AddEdge("A", "B", 5)
//	_, _ = g.AddEdge("B", "A", 3)
//	in, out, _ := g.WeightedDegree("A") // in=3, out=5
package core
