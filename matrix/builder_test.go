// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowmat/matrix"
)

func TestFromRecords_SquareAndSummed(t *testing.T) {
	records := []matrix.FlowRecord{
		{Origin: "B", Destination: "A", Weight: 3},
		{Origin: "A", Destination: "B", Weight: 4},
		{Origin: "A", Destination: "B", Weight: 1}, // duplicate pair is summed
		{Origin: "B", Destination: "C", Weight: 2},
		{Origin: "C", Destination: "B", Weight: 1},
		{Origin: "A", Destination: "D", Weight: 0}, // D only ever a destination
	}
	m, err := matrix.FromRecords(records)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, m.IDs())
	assert.Equal(t, 4, m.Rows())
	assert.Equal(t, 4, m.Cols())

	want := [][]float64{
		{0, 5, 0, 0},
		{3, 0, 2, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	}
	assert.Equal(t, want, m.Values())

	v, err := m.AtID("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestFromRecords_Errors(t *testing.T) {
	_, err := matrix.FromRecords(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRecords([]matrix.FlowRecord{{Origin: "", Destination: "B", Weight: 1}})
	assert.ErrorIs(t, err, matrix.ErrEmptyID)

	_, err = matrix.FromRecords([]matrix.FlowRecord{{Origin: "A", Destination: "B", Weight: -1}})
	assert.ErrorIs(t, err, matrix.ErrBadWeight)

	_, err = matrix.FromRecords([]matrix.FlowRecord{{Origin: "A", Destination: "B", Weight: math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrBadWeight)
}

func TestPrepare(t *testing.T) {
	tbl := matrix.Table{
		Columns: []string{"i", "j", "fij", "note"},
		Rows: [][]string{
			{"A", "B", "5", "x"},
			{"B", "A", " 3 ", "y"},
			{"B", "C", "2", ""},
			{"C", "B", "1", ""},
		},
	}
	m, err := matrix.Prepare(tbl, "i", "j", "fij")
	require.NoError(t, err)
	assert.Equal(t, sample(t).Values(), m.Values())
}

func TestPrepare_Errors(t *testing.T) {
	tbl := matrix.Table{Columns: []string{"i", "j", "fij"}, Rows: [][]string{{"A", "B", "5"}}}

	_, err := matrix.Prepare(tbl, "origin", "j", "fij")
	assert.ErrorIs(t, err, matrix.ErrMissingColumn)

	_, err = matrix.Prepare(tbl, "i", "j", "weight")
	assert.ErrorIs(t, err, matrix.ErrMissingColumn)

	short := matrix.Table{Columns: tbl.Columns, Rows: [][]string{{"A", "B"}}}
	_, err = matrix.Prepare(short, "i", "j", "fij")
	assert.ErrorIs(t, err, matrix.ErrMissingColumn)

	bad := matrix.Table{Columns: tbl.Columns, Rows: [][]string{{"A", "B", "many"}}}
	_, err = matrix.Prepare(bad, "i", "j", "fij")
	assert.ErrorIs(t, err, matrix.ErrBadWeight)

	empty := matrix.Table{Columns: tbl.Columns}
	_, err = matrix.Prepare(empty, "i", "j", "fij")
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}
