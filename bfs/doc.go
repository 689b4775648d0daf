// SPDX-License-Identifier: MIT

// Package bfs extracts the weakly connected components of a core.Graph with a
// breadth-first walk that ignores edge direction.
//
// What
//
//   - Components returns every weak component, isolated vertices included,
//     as lists of vertex IDs.
//   - Edge weights are ignored: a flow edge exists or it does not.
//
// Determinism
//
//	core.WeakNeighborIDs returns sorted IDs and the walk enqueues neighbors in
//	that order. Each component is seeded at its lexicographically smallest
//	vertex, so members and component order are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, visited set, output)
//
// Usage
//
//	comps, err := bfs.Components(g)
//
// Errors
//
//   - ErrGraphNil   if the graph pointer is nil.
//   - ErrNeighbors  if neighbor lookup fails for any vertex.
package bfs
