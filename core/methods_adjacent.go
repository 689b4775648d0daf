// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Weak neighborhood queries over the adjacency indexes.
// Determinism:
//   - All returned ID slices are unique and sorted lexicographically.

package core

import "sort"

// WeakNeighborIDs returns the IDs adjacent to id when edge direction is
// ignored: the union of successors and predecessors. A self-loop makes id
// its own weak neighbor.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(k log k), k = number of distinct neighbors.
func (g *Graph) WeakNeighborIDs(id string) ([]string, error) {
	if err := g.requireVertex(id); err != nil {
		return nil, err
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeys(g.out[id], g.in[id]), nil
}

// requireVertex validates id and its presence in the catalog.
func (g *Graph) requireVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return ErrVertexNotFound
	}

	return nil
}

// sortedKeys merges the non-empty buckets of a and b into a sorted ID list.
func sortedKeys(a, b map[string]map[string]struct{}) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for v, bucket := range a {
		if len(bucket) > 0 {
			seen[v] = struct{}{}
		}
	}
	for v, bucket := range b {
		if len(bucket) > 0 {
			seen[v] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids
}
