// SPDX-License-Identifier: MIT

package selection_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowmat/matrix"
	"github.com/katalvlaran/flowmat/selection"
)

// sample returns [[0,5,0],[3,0,2],[0,1,0]] over {A,B,C}.
func sample(t *testing.T) *matrix.FlowMatrix {
	t.Helper()
	m, err := matrix.New([]string{"A", "B", "C"}, [][]float64{
		{0, 5, 0},
		{3, 0, 2},
		{0, 1, 0},
	})
	require.NoError(t, err)

	return m
}

func mustNew(t *testing.T, ids []string, v [][]float64) *matrix.FlowMatrix {
	t.Helper()
	m, err := matrix.New(ids, v)
	require.NoError(t, err)

	return m
}

func TestRows_Methods(t *testing.T) {
	m := sample(t)
	tests := []struct {
		name   string
		method selection.Method
		k      float64
		want   [][]int
	}{
		{"topk 1", selection.TopK, 1, [][]int{{0, 1, 0}, {1, 0, 0}, {0, 1, 0}}},
		{"topk above row size", selection.TopK, 5, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}},
		{"topk huge k", selection.TopK, 1e19, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}},
		{"topk max float k", selection.TopK, math.MaxFloat64, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}},
		{"threshold 1 is strict", selection.Threshold, 1, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 0, 0}}},
		{"threshold above all", selection.Threshold, 10, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}},
		{"cumulative 4", selection.Cumulative, 4, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}},
		{"cumulative 3 reached by first", selection.Cumulative, 3, [][]int{{0, 1, 0}, {1, 0, 0}, {0, 1, 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mk, err := selection.Rows(m, tc.method, tc.k)
			require.NoError(t, err)
			assert.Equal(t, tc.want, mk.Ints())
		})
	}
}

func TestGlobal_Methods(t *testing.T) {
	m := sample(t)
	tests := []struct {
		name   string
		method selection.Method
		k      float64
		want   [][]int
	}{
		{"threshold 2", selection.Threshold, 2, [][]int{{0, 1, 0}, {1, 0, 0}, {0, 0, 0}}},
		{"topk 2", selection.TopK, 2, [][]int{{0, 1, 0}, {1, 0, 0}, {0, 0, 0}}},
		{"topk above links", selection.TopK, 9, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}},
		{"topk huge k", selection.TopK, 1e19, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}},
		{"topk max float k", selection.TopK, math.MaxFloat64, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}},
		{"cumulative 7", selection.Cumulative, 7, [][]int{{0, 1, 0}, {1, 0, 0}, {0, 0, 0}}},
		{"cumulative largest alone", selection.Cumulative, 4, [][]int{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}}},
		{"cumulative above total", selection.Cumulative, 100, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mk, err := selection.Global(m, tc.method, tc.k)
			require.NoError(t, err)
			assert.Equal(t, tc.want, mk.Ints())
		})
	}
}

func TestSelect_Dispatch(t *testing.T) {
	m := sample(t)
	row, err := selection.Select(m, selection.TopK, 1, true)
	require.NoError(t, err)
	assert.Equal(t, 3, row.Count())

	all, err := selection.Select(m, selection.TopK, 1, false)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}}, all.Ints())
}

func TestEmptyCandidates(t *testing.T) {
	zero := mustNew(t, []string{"A", "B"}, [][]float64{{0, 0}, {0, 0}})
	for _, method := range []selection.Method{selection.TopK, selection.Threshold, selection.Cumulative} {
		mk, err := selection.Rows(zero, method, 1)
		require.NoError(t, err)
		assert.Zero(t, mk.Count())

		mk, err = selection.Global(zero, method, 1)
		require.NoError(t, err)
		assert.Zero(t, mk.Count())
	}
}

func TestStableTies(t *testing.T) {
	m := mustNew(t, []string{"A", "B", "C"}, [][]float64{
		{0, 2, 2},
		{2, 0, 0},
		{0, 0, 0},
	})
	rows, err := selection.Rows(m, selection.TopK, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 0}, {1, 0, 0}, {0, 0, 0}}, rows.Ints())

	global, err := selection.Global(m, selection.TopK, 1, selection.WithTieBreak(selection.TieStable))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}}, global.Ints())
}

func TestRandomTies(t *testing.T) {
	m := mustNew(t, []string{"A", "B", "C"}, [][]float64{
		{0, 2, 2},
		{2, 0, 2},
		{0, 0, 0},
	})
	opts := []selection.Option{selection.WithTieBreak(selection.TieRandom), selection.WithSeed(42)}

	a, err := selection.Rows(m, selection.TopK, 1, opts...)
	require.NoError(t, err)
	b, err := selection.Rows(m, selection.TopK, 1, opts...)
	require.NoError(t, err)
	assert.Equal(t, a.Ints(), b.Ints(), "same seed, same mask")
	assert.Equal(t, 1, a.RowCount(0))
	assert.Equal(t, 1, a.RowCount(1))

	picked := map[int]bool{}
	for seed := int64(1); seed <= 64; seed++ {
		mk, err := selection.Rows(m, selection.TopK, 1,
			selection.WithTieBreak(selection.TieRandom), selection.WithSeed(seed))
		require.NoError(t, err)
		for j := 1; j <= 2; j++ {
			if sel, _ := mk.At(0, j); sel {
				picked[j] = true
			}
		}
	}
	assert.Len(t, picked, 2, "both tied cells win for some seed")
}

func TestWorkers_MatchSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 25
	ids := make([]string, n)
	vals := make([][]float64, n)
	for i := range ids {
		ids[i] = string(rune('a'+i%26)) + string(rune('A'+i/26))
		vals[i] = make([]float64, n)
		for j := range vals[i] {
			if rng.Float64() < 0.4 {
				vals[i][j] = float64(rng.Intn(6)) // small range forces ties and zeros
			}
		}
	}
	m := mustNew(t, ids, vals)

	for _, tie := range []selection.TieBreak{selection.TieStable, selection.TieRandom} {
		seq, err := selection.Rows(m, selection.TopK, 3, selection.WithTieBreak(tie), selection.WithSeed(9))
		require.NoError(t, err)
		par, err := selection.Rows(m, selection.TopK, 3,
			selection.WithTieBreak(tie), selection.WithSeed(9), selection.WithWorkers(4))
		require.NoError(t, err)
		assert.Equal(t, seq.Ints(), par.Ints(), tie.String())

		for i := 0; i < n; i++ {
			row, _ := m.Row(i)
			var positive int
			for _, v := range row {
				if v > 0 {
					positive++
				}
			}
			assert.Equal(t, min(3, positive), seq.RowCount(i))
			for j, v := range row {
				if v == 0 {
					sel, _ := seq.At(i, j)
					assert.False(t, sel)
				}
			}
		}
	}
}

func TestCumulative_PrefixProperty(t *testing.T) {
	m := sample(t)
	for _, k := range []float64{0.5, 5, 6, 8, 10, 11, 12} {
		mk, err := selection.Global(m, selection.Cumulative, k)
		require.NoError(t, err)
		kept, err := mk.Cells(m)
		require.NoError(t, err)
		var sum, smallest float64
		smallest = math.Inf(1)
		for _, c := range kept {
			sum += c.Value
			smallest = math.Min(smallest, c.Value)
		}
		if k <= m.Sum() {
			assert.GreaterOrEqual(t, sum, k, "k=%g", k)
			if len(kept) > 1 {
				assert.Less(t, sum-smallest, k, "k=%g", k)
			}
		} else {
			assert.Equal(t, m.Links(), len(kept))
		}
	}
}

func TestErrors(t *testing.T) {
	m := sample(t)

	_, err := selection.Rows(nil, selection.TopK, 1)
	assert.ErrorIs(t, err, selection.ErrNilMatrix)
	_, err = selection.Global(nil, selection.TopK, 1)
	assert.ErrorIs(t, err, selection.ErrNilMatrix)

	for _, k := range []float64{0, -1, 1.5, math.NaN(), math.Inf(1)} {
		_, err = selection.Rows(m, selection.TopK, k)
		assert.ErrorIs(t, err, selection.ErrInvalidK, "k=%g", k)
	}
	_, err = selection.Global(m, selection.Threshold, math.Inf(-1))
	assert.ErrorIs(t, err, selection.ErrInvalidK)

	_, err = selection.Rows(m, selection.Method(9), 1)
	assert.ErrorIs(t, err, selection.ErrUnknownMethod)

	_, err = selection.Rows(m, selection.TopK, 1, selection.WithWorkers(0))
	assert.ErrorIs(t, err, selection.ErrOptionViolation)
	_, err = selection.Global(m, selection.TopK, 1, selection.WithTieBreak(selection.TieBreak(7)))
	assert.ErrorIs(t, err, selection.ErrOptionViolation)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := sample(t)

	_, err := selection.Rows(m, selection.TopK, 1, selection.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = selection.Rows(m, selection.TopK, 1, selection.WithContext(ctx), selection.WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = selection.Global(m, selection.TopK, 1, selection.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParse(t *testing.T) {
	for in, want := range map[string]selection.Method{
		"topk": selection.TopK, "nfirst": selection.TopK,
		"Threshold": selection.Threshold, "xfirst": selection.Threshold,
		"cumulative": selection.Cumulative, " xsumfirst ": selection.Cumulative,
	} {
		got, err := selection.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := selection.ParseMethod("median")
	assert.ErrorIs(t, err, selection.ErrUnknownMethod)

	tie, err := selection.ParseTieBreak("first")
	require.NoError(t, err)
	assert.Equal(t, selection.TieStable, tie)
	tie, err = selection.ParseTieBreak("random")
	require.NoError(t, err)
	assert.Equal(t, "random", tie.String())
	_, err = selection.ParseTieBreak("last")
	assert.ErrorIs(t, err, selection.ErrUnknownTieBreak)

	assert.Equal(t, "cumulative", selection.Cumulative.String())
}
