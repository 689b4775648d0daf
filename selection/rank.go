// SPDX-License-Identifier: MIT

// Package selection - candidate ranking shared by the row and global selectors.
//
// Stage 1: gather strictly positive cells as candidates, in position order.
// Stage 2: order them by value descending (ordering is skipped for Threshold).
//   - TieStable: a stable sort keeps position order among equal values.
//   - TieRandom: a Fisher–Yates shuffle before the stable sort randomizes ties.
// Stage 3: cut the ordered pool according to the method.

package selection

import (
	"math"
	"math/rand"
	"sort"
)

// candidate is one positive cell: pos is a column (row mode) or a flat
// row-major offset (global mode).
type candidate struct {
	pos int
	v   float64
}

// positives collects the candidates of vals; pos = offset + index.
func positives(vals []float64, offset int, dst []candidate) []candidate {
	for k, v := range vals {
		if v > 0 {
			dst = append(dst, candidate{pos: offset + k, v: v})
		}
	}

	return dst
}

// order sorts c in place by value descending under the tie policy.
// rng is only consulted for TieRandom.
func order(c []candidate, tie TieBreak, rng *rand.Rand) {
	if tie == TieRandom && rng != nil {
		rng.Shuffle(len(c), func(a, b int) { c[a], c[b] = c[b], c[a] })
	}
	sort.SliceStable(c, func(a, b int) bool { return c[a].v > c[b].v })
}

// pick returns the candidates kept by method with parameter k.
// The returned slice aliases c.
//
// Complexity: O(p log p), p = len(c).
func pick(c []candidate, method Method, k float64, tie TieBreak, rng *rand.Rand) []candidate {
	if len(c) == 0 {
		return nil
	}
	switch method {
	case TopK:
		order(c, tie, rng)
		if k >= float64(len(c)) { // also keeps int(k) from overflowing
			return c
		}

		return c[:int(k)]

	case Threshold:
		kept := c[:0]
		for _, x := range c {
			if x.v > k {
				kept = append(kept, x)
			}
		}

		return kept

	case Cumulative:
		order(c, tie, rng)
		var sum float64
		for p, x := range c {
			sum += x.v
			if sum >= k {
				return c[:p+1]
			}
		}

		return c // k above the pool total: keep everything
	}

	return nil
}

// checkK validates k for method.
func checkK(method Method, k float64) error {
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return ErrInvalidK
	}
	switch method {
	case TopK:
		if k < 1 || k != math.Trunc(k) {
			return ErrInvalidK
		}
	case Threshold, Cumulative:
	default:
		return ErrUnknownMethod
	}

	return nil
}
