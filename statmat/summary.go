// SPDX-License-Identifier: MIT

package statmat

import (
	"math"
	"sort"
)

// Summarize returns the Summary of values without modifying them.
//
// Implementation:
//   - Stage 1: sort a copy ascending.
//   - Stage 2: quartiles by linear interpolation between order statistics
//     (position p·(n−1), p ∈ {0.25, 0.5, 0.75}).
//   - Stage 3: mean and sample standard deviation (n−1 denominator; 0 when n < 2).
//
// Complexity: O(n log n).
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}
	xs := make([]float64, n)
	copy(xs, values)
	sort.Float64s(xs)

	var sum float64
	for _, v := range xs {
		sum += v
	}
	mean := sum / float64(n)

	var sd float64
	if n > 1 {
		var ss, d float64
		for _, v := range xs {
			d = v - mean
			ss += d * d
		}
		sd = math.Sqrt(ss / float64(n-1))
	}

	return Summary{
		Count:  n,
		Min:    xs[0],
		Q1:     quantile(xs, 0.25),
		Median: quantile(xs, 0.5),
		Q3:     quantile(xs, 0.75),
		Max:    xs[n-1],
		Mean:   mean,
		StdDev: sd,
	}
}

// quantile interpolates the p-quantile of sorted xs (len ≥ 1).
func quantile(xs []float64, p float64) float64 {
	h := p * float64(len(xs)-1)
	lo := int(math.Floor(h))
	if lo+1 >= len(xs) {
		return xs[len(xs)-1]
	}

	return xs[lo] + (h-float64(lo))*(xs[lo+1]-xs[lo])
}
