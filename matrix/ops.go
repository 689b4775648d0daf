// SPDX-License-Identifier: MIT

// Package matrix - pure transforms and aggregates.
//
// Every function here leaves its receiver untouched and returns a new value.

package matrix

import "fmt"

// WithZeroDiagonal returns a copy of m with every self-flow (i,i) set to 0.
// Complexity: O(n²).
func (m *FlowMatrix) WithZeroDiagonal() *FlowMatrix {
	out := m.Clone()
	for i := 0; i < out.n; i++ {
		out.data[i*out.n+i] = 0
	}

	return out
}

// Filter returns m ⊙ mask. It is shorthand for mask.Apply(m).
func (m *FlowMatrix) Filter(mask *Mask) (*FlowMatrix, error) {
	if mask == nil {
		return nil, fmt.Errorf("FlowMatrix.Filter: %w", ErrNilMatrix)
	}

	return mask.Apply(m)
}

// RowSums returns the outbound total of every origin, in id order.
// Complexity: O(n²).
func (m *FlowMatrix) RowSums() []float64 {
	out := make([]float64, m.n)
	m.Do(func(i, _ int, v float64) bool {
		out[i] += v
		return true
	})

	return out
}

// ColSums returns the inbound total of every destination, in id order.
// Complexity: O(n²).
func (m *FlowMatrix) ColSums() []float64 {
	out := make([]float64, m.n)
	m.Do(func(_, j int, v float64) bool {
		out[j] += v
		return true
	})

	return out
}

// WeightsByID aligns a per-unit weight table with the id order of m.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrUnknownID when a unit of m has no entry in w.
//   - ErrBadWeight for a negative or non-finite weight.
//
// Entries of w for ids absent from m are ignored.
func WeightsByID(m *FlowMatrix, w map[string]float64) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("WeightsByID: %w", ErrNilMatrix)
	}
	out := make([]float64, m.n)
	for i, id := range m.ids {
		v, ok := w[id]
		if !ok {
			return nil, fmt.Errorf("WeightsByID: %q: %w", id, ErrUnknownID)
		}
		if !validFlow(v) {
			return nil, fmt.Errorf("WeightsByID: %q: %w", id, ErrBadWeight)
		}
		out[i] = v
	}

	return out, nil
}
