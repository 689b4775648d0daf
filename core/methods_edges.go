// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from → to carrying weight and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a second edge for the pair.
//  4. Generate eid atomically, store the edge, link both adjacency indexes.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if len(g.out[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid, seq := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight, seq: seq}

	link(g.out, from, to, eid)
	link(g.in, to, from, eid)

	return eid, nil
}

// Edges returns all edges in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// link registers eid in idx[a][b], allocating buckets on demand.
// Caller must hold muEdgeAdj write lock.
func link(idx map[string]map[string]map[string]struct{}, a, b, eid string) {
	inner, ok := idx[a]
	if !ok {
		inner = make(map[string]map[string]struct{})
		idx[a] = inner
	}
	bucket, ok := inner[b]
	if !ok {
		bucket = make(map[string]struct{})
		inner[b] = bucket
	}
	bucket[eid] = struct{}{}
}

// collectEdges flattens one adjacency row into edges sorted by creation order.
// Caller must hold muEdgeAdj read lock.
func (g *Graph) collectEdges(row map[string]map[string]struct{}) []*Edge {
	var out []*Edge
	for _, bucket := range row {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sortBySeq(out)

	return out
}

func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}

// nextEdgeID returns a new unique textual edge ID and its sequence number.
// Uses a monotonic uint64 counter incremented atomically; produces "e" + decimal.
func nextEdgeID(g *Graph) (string, uint64) {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf), n
}
