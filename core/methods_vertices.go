// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertices/VertexCount,
//       plus degree queries (Degree, WeightedDegree).
// Determinism:
//   - Vertices() returns IDs sorted lexicographically.
// Concurrency:
//   - Vertex catalog under muVert; degree queries additionally read muEdgeAdj.

package core

import "sort"

// AddVertex inserts a vertex with the given ID. Idempotent if it already exists.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id}

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of incoming and outgoing edges of id.
//
// A self-loop contributes +1 to in and +1 to out.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(deg(id)).
func (g *Graph) Degree(id string) (in, out int, err error) {
	err = g.visitIncident(id, func(e *Edge, outgoing bool) {
		if outgoing {
			out++
		} else {
			in++
		}
	})

	return in, out, err
}

// WeightedDegree returns the summed weight of incoming and outgoing edges of id,
// with the same counting policy as Degree.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(deg(id)).
func (g *Graph) WeightedDegree(id string) (in, out float64, err error) {
	err = g.visitIncident(id, func(e *Edge, outgoing bool) {
		if outgoing {
			out += e.Weight
		} else {
			in += e.Weight
		}
	})

	return in, out, err
}

// visitIncident calls fn once for every (edge, side) pair incident to id:
// outgoing=true for entries of out[id], false for entries of in[id].
// Entries are visited in edge creation order.
func (g *Graph) visitIncident(id string, fn func(e *Edge, outgoing bool)) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, e := range g.collectEdges(g.out[id]) {
		fn(e, true)
	}
	for _, e := range g.collectEdges(g.in[id]) {
		fn(e, false)
	}

	return nil
}
