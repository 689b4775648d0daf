// SPDX-License-Identifier: MIT

// Package matrix - graph and record export.
//
// ToGraph lifts a FlowMatrix into a directed weighted core.Graph so that
// traversal packages (bfs) can reason about connectivity:
//   - every unit id becomes a vertex, in matrix order;
//   - every strictly positive cell (i,j) becomes one edge ids[i] → ids[j]
//     carrying the cell value as weight;
//   - diagonal cells turn into self-loops when positive.
//
// Determinism: vertices are added in id order and edges in row-major order,
// so edge ids ("e1", "e2", ...) are stable across runs.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/flowmat/core"
)

// Cell is one strictly positive flow of a matrix.
type Cell struct {
	Row         int
	Col         int
	Origin      string
	Destination string
	Value       float64
}

// ToGraph builds the directed weighted flow graph of m.
//
// Errors: ErrNilMatrix; wrapped core errors are not expected for a valid matrix.
// Complexity: O(n² + E).
func ToGraph(m *FlowMatrix) (*core.Graph, error) {
	if m == nil {
		return nil, fmt.Errorf("ToGraph: %w", ErrNilMatrix)
	}
	g := core.NewFlowGraph()
	for _, id := range m.ids {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("ToGraph: vertex %q: %w", id, err)
		}
	}
	var err error
	m.Do(func(i, j int, v float64) bool {
		if v <= 0 {
			return true
		}
		if _, err = g.AddEdge(m.ids[i], m.ids[j], v); err != nil {
			err = fmt.Errorf("ToGraph: edge %s→%s: %w", m.ids[i], m.ids[j], err)
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// Cells returns every strictly positive cell in row-major order.
// Complexity: O(n²).
func (m *FlowMatrix) Cells() []Cell {
	out := make([]Cell, 0, m.n)
	m.Do(func(i, j int, v float64) bool {
		if v > 0 {
			out = append(out, Cell{Row: i, Col: j, Origin: m.ids[i], Destination: m.ids[j], Value: v})
		}
		return true
	})

	return out
}

// Cells returns the selected cells of the mask, with values taken from m.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrUnitMismatch.
func (mk *Mask) Cells(m *FlowMatrix) ([]Cell, error) {
	filtered, err := mk.Apply(m)
	if err != nil {
		return nil, fmt.Errorf("Mask.Cells: %w", err)
	}

	return filtered.Cells(), nil
}
