// SPDX-License-Identifier: MIT

// Package selection - whole-matrix selection.

package selection

import (
	"fmt"

	"github.com/katalvlaran/flowmat/matrix"
)

// Global applies method with parameter k to all cells of m pooled together.
//
//   - TopK: the k largest positive flows of the whole matrix. This equals
//     keeping cells whose global rank exceeds n² − k, with zeros forced off.
//   - Threshold: every positive flow strictly above k.
//   - Cumulative: the shortest run of largest flows whose sum reaches k; every
//     positive flow when k exceeds the matrix total.
//
// Ties follow the configured policy over row-major position. WithWorkers
// has no effect here.
//
// Errors: ErrNilMatrix, ErrInvalidK, ErrUnknownMethod, ErrOptionViolation.
// Complexity: O(n² log n).
func Global(m *matrix.FlowMatrix, method Method, k float64, opts ...Option) (*matrix.Mask, error) {
	if m == nil {
		return nil, fmt.Errorf("Global: %w", ErrNilMatrix)
	}
	if err := checkK(method, k); err != nil {
		return nil, fmt.Errorf("Global(%v, %g): %w", method, k, err)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("Global: %w", err)
	}
	if err = o.Ctx.Err(); err != nil {
		return nil, fmt.Errorf("Global: %w", err)
	}

	n := m.N()
	pool := make([]candidate, 0, m.Links())
	for i := 0; i < n; i++ {
		row, rerr := m.Row(i)
		if rerr != nil {
			return nil, fmt.Errorf("Global: %w", rerr)
		}
		pool = positives(row, i*n, pool)
	}

	sel := make([]bool, n*n)
	for _, c := range pick(pool, method, k, o.Tie, rngFromSeed(o.Seed)) {
		sel[c.pos] = true
	}

	return matrix.NewMaskFunc(m, func(i, j int, _ float64) bool { return sel[i*n+j] })
}

// Select dispatches to Rows when perRow is true and to Global otherwise.
func Select(m *matrix.FlowMatrix, method Method, k float64, perRow bool, opts ...Option) (*matrix.Mask, error) {
	if perRow {
		return Rows(m, method, k, opts...)
	}

	return Global(m, method, k, opts...)
}
