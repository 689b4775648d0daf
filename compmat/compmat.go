// SPDX-License-Identifier: MIT

// Package compmat compares two flow matrices over the same units.
//
// Compare runs statmat.Compute on both operands and lays the results out as a
// fixed table of indicators. Only the link-count and flow-sum rows carry
// differences; the distribution rows report raw values side by side.
package compmat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flowmat/matrix"
	"github.com/katalvlaran/flowmat/statmat"
)

// Sentinel errors for comparison preconditions.
var (
	// ErrNilMatrix is returned when either operand is nil.
	ErrNilMatrix = errors.New("compmat: matrix is nil")

	// ErrDimensionMismatch is returned when the operands differ in size.
	ErrDimensionMismatch = errors.New("compmat: matrices differ in dimension")

	// ErrUnitMismatch is returned when the operands have the same size but
	// different unit ids or id order.
	ErrUnitMismatch = errors.New("compmat: matrices differ in unit ids")
)

// Indicator names, in table order.
const (
	IndicatorLinks      = "links"
	IndicatorSum        = "sum"
	IndicatorComponents = "components_gt1"
	IndicatorMin        = "min"
	IndicatorQ1         = "Q1"
	IndicatorMedian     = "median"
	IndicatorQ3         = "Q3"
	IndicatorMax        = "max"
	IndicatorMean       = "mean"
	IndicatorStdDev     = "sd"
)

// Row is one indicator of the comparison. AbsDiff (B − A) and RelDiff
// ((B − A) / A × 100) are nil where not applicable; RelDiff is also nil when
// A is 0.
type Row struct {
	Indicator string   `json:"indicator"`
	A         float64  `json:"matrix1"`
	B         float64  `json:"matrix2"`
	AbsDiff   *float64 `json:"abs_diff,omitempty"`
	RelDiff   *float64 `json:"rel_diff,omitempty"`
}

// Table is the comparison result together with both full reports.
type Table struct {
	Rows    []Row           `json:"rows"`
	ReportA *statmat.Report `json:"-"`
	ReportB *statmat.Report `json:"-"`
}

// Row returns the row for indicator and whether it exists.
func (t *Table) Row(indicator string) (Row, bool) {
	for _, r := range t.Rows {
		if r.Indicator == indicator {
			return r, true
		}
	}

	return Row{}, false
}

// Compare returns the indicator table of a (matrix 1) against b (matrix 2).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrUnitMismatch, or a wrapped
// statmat error.
func Compare(a, b *matrix.FlowMatrix) (*Table, error) {
	if err := checkUnits(a, b); err != nil {
		return nil, fmt.Errorf("Compare: %w", err)
	}
	ra, err := statmat.Compute(a)
	if err != nil {
		return nil, fmt.Errorf("Compare: matrix1: %w", err)
	}
	rb, err := statmat.Compute(b)
	if err != nil {
		return nil, fmt.Errorf("Compare: matrix2: %w", err)
	}

	fa, fb := ra.Flows, rb.Flows
	t := &Table{
		Rows: []Row{
			diffRow(IndicatorLinks, float64(ra.Links), float64(rb.Links)),
			diffRow(IndicatorSum, ra.Sum, rb.Sum),
			{Indicator: IndicatorComponents, A: float64(ra.NonTrivialComponents), B: float64(rb.NonTrivialComponents)},
			{Indicator: IndicatorMin, A: fa.Min, B: fb.Min},
			{Indicator: IndicatorQ1, A: fa.Q1, B: fb.Q1},
			{Indicator: IndicatorMedian, A: fa.Median, B: fb.Median},
			{Indicator: IndicatorQ3, A: fa.Q3, B: fb.Q3},
			{Indicator: IndicatorMax, A: fa.Max, B: fb.Max},
			{Indicator: IndicatorMean, A: fa.Mean, B: fb.Mean},
			{Indicator: IndicatorStdDev, A: fa.StdDev, B: fb.StdDev},
		},
		ReportA: ra,
		ReportB: rb,
	}

	return t, nil
}

// diffRow fills both difference columns.
func diffRow(name string, a, b float64) Row {
	abs := b - a
	r := Row{Indicator: name, A: a, B: b, AbsDiff: &abs}
	if a != 0 {
		rel := abs / a * 100
		r.RelDiff = &rel
	}

	return r
}

// checkUnits maps matrix alignment failures to compmat sentinels.
func checkUnits(a, b *matrix.FlowMatrix) error {
	err := matrix.ValidateSameUnits(a, b)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, matrix.ErrNilMatrix):
		return ErrNilMatrix
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return fmt.Errorf("%w: %d vs %d units", ErrDimensionMismatch, a.N(), b.N())
	default:
		return fmt.Errorf("%w (%v)", ErrUnitMismatch, err)
	}
}
