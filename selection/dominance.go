// SPDX-License-Identifier: MIT

// Package selection - dominant flows (Nystuen–Dacey nodal analysis).
//
// A destination j dominates an origin i when its weight is more than k times
// the weight of i. Origins with zero weight never select anything.

package selection

import (
	"fmt"
	"math"

	"github.com/katalvlaran/flowmat/matrix"
)

// Dominant selects cell (i,j) iff
//
//	m(i,j) > 0 && wOrigin[i] > 0 && wDestination[j]/wOrigin[i] > k
//
// The weight slices are aligned with m.IDs() (see matrix.WeightsByID,
// FlowMatrix.RowSums and FlowMatrix.ColSums).
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - matrix.ErrDimensionMismatch when a weight slice length differs from m.N().
//   - ErrInvalidWeight for a negative, NaN or ±Inf weight.
//   - ErrInvalidK for a non-finite k.
//
// Complexity: O(n²).
func Dominant(m *matrix.FlowMatrix, wOrigin, wDestination []float64, k float64) (*matrix.Mask, error) {
	if m == nil {
		return nil, fmt.Errorf("Dominant: %w", ErrNilMatrix)
	}
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return nil, fmt.Errorf("Dominant(%g): %w", k, ErrInvalidK)
	}
	if err := checkWeights("wOrigin", wOrigin, m.N()); err != nil {
		return nil, err
	}
	if err := checkWeights("wDestination", wDestination, m.N()); err != nil {
		return nil, err
	}

	return matrix.NewMaskFunc(m, func(i, j int, _ float64) bool {
		return wOrigin[i] > 0 && wDestination[j]/wOrigin[i] > k
	})
}

// NodalFlows returns the dominant-flow tree: for every origin its single
// largest flow, kept only when that flow is also Dominant.
//
// Ties on the largest flow follow opts (TieStable by default).
func NodalFlows(m *matrix.FlowMatrix, wOrigin, wDestination []float64, k float64, opts ...Option) (*matrix.Mask, error) {
	dom, err := Dominant(m, wOrigin, wDestination, k)
	if err != nil {
		return nil, fmt.Errorf("NodalFlows: %w", err)
	}
	first, err := Rows(m, TopK, 1, opts...)
	if err != nil {
		return nil, fmt.Errorf("NodalFlows: %w", err)
	}
	tree, err := dom.And(first)
	if err != nil {
		return nil, fmt.Errorf("NodalFlows: %w", err)
	}

	return tree, nil
}

// checkWeights validates one weight vector against n units.
func checkWeights(name string, w []float64, n int) error {
	if len(w) != n {
		return fmt.Errorf("Dominant: %s has %d weights for %d units: %w", name, len(w), n, matrix.ErrDimensionMismatch)
	}
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("Dominant: %s[%d] = %g: %w", name, i, v, ErrInvalidWeight)
		}
	}

	return nil
}
