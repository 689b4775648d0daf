// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowmat/matrix"
)

// sample returns the reference matrix over {A,B,C}:
//
//	[[0,5,0],
//	 [3,0,2],
//	 [0,1,0]]
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
