// SPDX-License-Identifier: MIT

// Package statmat - Compute.
//
// Stage 1: lift the matrix into a directed weighted core.Graph (matrix.ToGraph).
// Stage 2: link count and total flow from the graph snapshot, density, flow summary.
// Stage 3: per-unit in/out degree and weighted degree from the graph.
// Stage 4: weak components through bfs.Components, summarised per component.
// Stage 5: distribution summaries of flows and degrees.
//
// Determinism: every stage iterates in id or lexicographic order.

package statmat

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/flowmat/bfs"
	"github.com/katalvlaran/flowmat/matrix"
)

// Compute returns the connectivity and distribution report of m.
// m is not modified; calling Compute twice yields equal reports.
//
// Errors: ErrNilMatrix; wrapped graph or traversal errors.
// Complexity: O(n² + E log E).
func Compute(m *matrix.FlowMatrix) (*Report, error) {
	if m == nil {
		return nil, fmt.Errorf("Compute: %w", ErrNilMatrix)
	}

	g, err := matrix.ToGraph(m)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	// one edge per positive cell, created in row-major order
	gs := g.Stats()
	n := m.N()
	r := &Report{
		Units: n,
		Cells: n * n,
		Links: gs.EdgeCount,
		Sum:   gs.TotalWeight,
	}
	r.Density = float64(r.Links) / float64(r.Cells)
	r.Flows = Summarize(m.Positive())

	ids := m.IDs()
	r.Degrees = make([]DegreeRecord, n)
	weighted := make(map[string]float64, n)
	degs := make([]float64, n)
	wdegs := make([]float64, n)
	for i, id := range ids {
		in, out, derr := g.Degree(id)
		if derr != nil {
			return nil, fmt.Errorf("Compute: degree %q: %w", id, derr)
		}
		win, wout, werr := g.WeightedDegree(id)
		if werr != nil {
			return nil, fmt.Errorf("Compute: weighted degree %q: %w", id, werr)
		}
		r.Degrees[i] = DegreeRecord{ID: id, Degree: out, WeightedDegree: wout, InDegree: in, WeightedInDegree: win}
		weighted[id] = wout
		degs[i] = float64(out)
		wdegs[i] = wout
	}
	r.DegreeSummary = Summarize(degs)
	r.WeightedDegreeSummary = Summarize(wdegs)

	comps, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("Compute: components: %w", err)
	}
	r.Components = len(comps)
	r.ComponentSizes = summarizeComponents(comps, weighted)
	for _, c := range r.ComponentSizes {
		if c.Size > 1 {
			r.NonTrivialComponents++
		}
	}

	return r, nil
}

// summarizeComponents builds one ComponentSummary per component, ordered by
// size descending then by smallest member id. IDs are assigned in that order.
func summarizeComponents(comps [][]string, weighted map[string]float64) []ComponentSummary {
	out := make([]ComponentSummary, len(comps))
	for k, members := range comps {
		own := make([]string, len(members))
		copy(own, members)
		sort.Strings(own)
		var w float64
		for _, id := range own {
			w += weighted[id]
		}
		out[k] = ComponentSummary{Size: len(own), WeightedDegree: w, Members: own}
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Size != out[b].Size {
			return out[a].Size > out[b].Size
		}
		return out[a].Members[0] < out[b].Members[0]
	})
	for k := range out {
		out[k].ID = k + 1
	}

	return out
}
