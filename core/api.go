// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only size snapshot of a graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go.

package core

// GraphStats is a read-only snapshot of a graph's size and total flow.
type GraphStats struct {
	VertexCount int     // number of vertices
	EdgeCount   int     // number of edges
	TotalWeight float64 // sum of all edge weights
}

// Stats returns vertex and edge counts and the total edge weight.
//
// Implementation:
//   - Stage 1: capture the vertex count under muVert.
//   - Stage 2: scan the edge catalog once, in creation order.
//
// Complexity: O(E log E).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{VertexCount: len(g.vertices)}
	g.muVert.RUnlock()

	// Summation runs in creation order so the float total is reproducible.
	edges := g.Edges()
	stats.EdgeCount = len(edges)
	for _, e := range edges {
		stats.TotalWeight += e.Weight
	}

	return &stats
}
