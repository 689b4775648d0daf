// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowmat/matrix"
)

func TestToGraph(t *testing.T) {
	g, err := matrix.ToGraph(sample(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	st := g.Stats()
	assert.Equal(t, 4, st.EdgeCount)
	assert.Equal(t, 11.0, st.TotalWeight)

	_, out, err := g.Degree("C")
	require.NoError(t, err)
	assert.Equal(t, 1, out, "C sends only to B")

	edges := g.Edges()
	require.Len(t, edges, 4)
	assert.Equal(t, "A", edges[0].From) // row-major creation order
	assert.Equal(t, 5.0, edges[0].Weight)
	assert.Equal(t, "C", edges[3].From)

	in, wOut, err := g.WeightedDegree("B")
	require.NoError(t, err)
	assert.Equal(t, 6.0, in)
	assert.Equal(t, 5.0, wOut)
}

func TestToGraph_IsolatedAndLoops(t *testing.T) {
	m, err := matrix.New([]string{"A", "B", "C"}, [][]float64{
		{2, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	g, err := matrix.ToGraph(m)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount(), "zero rows still become vertices")
	weak, err := g.WeakNeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, weak, "self-flow becomes a loop")

	_, err = matrix.ToGraph(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
