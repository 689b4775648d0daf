// SPDX-License-Identifier: MIT

package statmat_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/flowmat/matrix"
	"github.com/katalvlaran/flowmat/statmat"
)

// BenchmarkCompute runs the full report on a sparse 300-unit matrix.
func BenchmarkCompute(b *testing.B) {
	const n = 300
	rng := rand.New(rand.NewSource(3))
	ids := make([]string, n)
	vals := make([][]float64, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("u%03d", i)
		vals[i] = make([]float64, n)
		for j := range vals[i] {
			if rng.Float64() < 0.05 {
				vals[i][j] = float64(1 + rng.Intn(100))
			}
		}
	}
	m, err := matrix.New(ids, vals)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = statmat.Compute(m)
	}
}
