// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/flowmat/core"
)

// walker holds the breadth-first state shared by every component of one
// extraction: a vertex visited while growing one component is never a seed
// for another.
type walker struct {
	graph   *core.Graph
	queue   []string
	visited map[string]bool
	order   []string // visit sequence across all components
}

// newWalker prepares walker state sized for g.
func newWalker(g *core.Graph) *walker {
	n := g.VertexCount()

	return &walker{
		graph:   g,
		queue:   make([]string, 0, n),
		visited: make(map[string]bool, n),
		order:   make([]string, 0, n),
	}
}

// enqueue marks id visited and appends it to the queue.
func (w *walker) enqueue(id string) {
	w.visited[id] = true
	w.queue = append(w.queue, id)
}

// drain pops vertices until the queue is empty, expanding each through its
// weak neighbors (successors and predecessors).
func (w *walker) drain() error {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		w.order = append(w.order, id)

		nbrs, err := w.graph.WeakNeighborIDs(id)
		if err != nil {
			return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
		}
		for _, nbr := range nbrs {
			if !w.visited[nbr] {
				w.enqueue(nbr)
			}
		}
	}

	return nil
}

// Components partitions the vertices of g into weakly connected components:
// maximal vertex sets that are connected when edge direction is ignored.
// Isolated vertices form singleton components; a self-loop never merges its
// vertex with another.
//
// Each component lists its members in BFS visit order from its smallest
// vertex ID; components are returned in order of their smallest vertex ID.
//
// Time:   O(V + E) plus neighbor sorting.
// Memory: O(V) for visited flags and output.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := newWalker(g)
	var comps [][]string
	for _, id := range g.Vertices() { // lex order seeds each component at its min ID
		if w.visited[id] {
			continue
		}
		start := len(w.order)
		w.enqueue(id)
		if err := w.drain(); err != nil {
			return nil, err
		}
		comp := make([]string, len(w.order)-start)
		copy(comp, w.order[start:])
		comps = append(comps, comp)
	}

	return comps, nil
}
