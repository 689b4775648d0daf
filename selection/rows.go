// SPDX-License-Identifier: MIT

// Package selection - per-row selection.
//
// Each row (one origin's outbound flows) is ranked on its own; rows never
// interact. With WithWorkers(n > 1) rows are ranked concurrently through an
// errgroup bounded by n. Every goroutine writes only its own row of the
// shared selection buffer.

package selection

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/flowmat/matrix"
)

// Rows applies method with parameter k to every row of m independently.
//
//   - TopK: the k largest positive flows of each origin (all of them when the
//     row has fewer than k).
//   - Threshold: every positive flow strictly above k.
//   - Cumulative: per origin, the shortest run of largest flows whose sum
//     reaches k; the whole row when k exceeds the row total.
//
// Zero cells are never selected; a row without candidates stays all-false.
//
// Errors: ErrNilMatrix, ErrInvalidK, ErrUnknownMethod, ErrOptionViolation,
// or the context error when cancelled.
// Complexity: O(n² log n).
func Rows(m *matrix.FlowMatrix, method Method, k float64, opts ...Option) (*matrix.Mask, error) {
	if m == nil {
		return nil, fmt.Errorf("Rows: %w", ErrNilMatrix)
	}
	if err := checkK(method, k); err != nil {
		return nil, fmt.Errorf("Rows(%v, %g): %w", method, k, err)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("Rows: %w", err)
	}

	n := m.N()
	sel := make([]bool, n*n)
	rank := func(i int) error {
		row, rerr := m.Row(i)
		if rerr != nil {
			return rerr
		}
		var rng *rand.Rand
		if o.Tie == TieRandom {
			rng = streamRNG(o.Seed, i)
		}
		for _, c := range pick(positives(row, 0, nil), method, k, o.Tie, rng) {
			sel[i*n+c.pos] = true
		}

		return nil
	}

	if o.Workers <= 1 {
		for i := 0; i < n; i++ {
			if err = o.Ctx.Err(); err != nil {
				return nil, fmt.Errorf("Rows: %w", err)
			}
			if err = rank(i); err != nil {
				return nil, fmt.Errorf("Rows: %w", err)
			}
		}
	} else {
		g, ctx := errgroup.WithContext(o.Ctx)
		g.SetLimit(o.Workers)
		for i := 0; i < n; i++ {
			g.Go(func() error {
				if cerr := ctx.Err(); cerr != nil {
					return cerr
				}
				return rank(i)
			})
		}
		if err = g.Wait(); err != nil {
			return nil, fmt.Errorf("Rows: %w", err)
		}
	}

	return matrix.NewMaskFunc(m, func(i, j int, _ float64) bool { return sel[i*n+j] })
}
