// SPDX-License-Identifier: MIT

// Package matrix - selection masks.
//
// A Mask is a boolean matrix with the same shape and unit ordering as the
// FlowMatrix it was derived from. The only constructor, NewMaskFunc, forces
// every cell that is zero in the source to false, so a mask can never select
// a flow that does not exist.

package matrix

import (
	"fmt"
	"strings"
)

// Mask marks which flows of a FlowMatrix pass a filter.
type Mask struct {
	n    int
	ids  []string
	bits []bool // row-major, len == n*n
}

// NewMaskFunc builds a mask over src where cell (i,j) is selected iff
// src(i,j) > 0 and keep(i, j, src(i,j)) returns true.
// keep is never called for zero cells.
//
// Errors: ErrNilMatrix when src is nil.
// Complexity: O(n²).
func NewMaskFunc(src *FlowMatrix, keep func(i, j int, v float64) bool) (*Mask, error) {
	if src == nil {
		return nil, fmt.Errorf("NewMaskFunc: %w", ErrNilMatrix)
	}
	mk := &Mask{n: src.n, ids: src.IDs(), bits: make([]bool, len(src.data))}
	if keep == nil {
		return mk, nil
	}
	var i, j, base int
	var v float64
	for i = 0; i < src.n; i++ {
		base = i * src.n
		for j = 0; j < src.n; j++ {
			v = src.data[base+j]
			if v > 0 && keep(i, j, v) {
				mk.bits[base+j] = true
			}
		}
	}

	return mk, nil
}

// EmptyMask returns an all-false mask shaped like src.
func EmptyMask(src *FlowMatrix) (*Mask, error) {
	return NewMaskFunc(src, nil)
}

// N returns the number of units.
func (mk *Mask) N() int { return mk.n }

// IDs returns a copy of the ordered unit ids.
func (mk *Mask) IDs() []string {
	out := make([]string, mk.n)
	copy(out, mk.ids)

	return out
}

// At reports whether cell (i,j) is selected, or ErrOutOfRange.
func (mk *Mask) At(i, j int) (bool, error) {
	if i < 0 || i >= mk.n || j < 0 || j >= mk.n {
		return false, fmt.Errorf("Mask.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return mk.bits[i*mk.n+j], nil
}

// Count returns the number of selected cells.
func (mk *Mask) Count() int {
	var c int
	for _, b := range mk.bits {
		if b {
			c++
		}
	}

	return c
}

// RowCount returns the number of selected cells in row i (0 when out of range).
func (mk *Mask) RowCount(i int) int {
	if i < 0 || i >= mk.n {
		return 0
	}
	var c int
	for _, b := range mk.bits[i*mk.n : (i+1)*mk.n] {
		if b {
			c++
		}
	}

	return c
}

// ColCount returns the number of selected cells in column j (0 when out of range).
func (mk *Mask) ColCount(j int) int {
	if j < 0 || j >= mk.n {
		return 0
	}
	var c int
	for i := 0; i < mk.n; i++ {
		if mk.bits[i*mk.n+j] {
			c++
		}
	}

	return c
}

// And returns the cell-wise conjunction of two masks over the same units.
// Typical use: dominant flows that are also each origin's first flow.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrUnitMismatch.
func (mk *Mask) And(other *Mask) (*Mask, error) {
	if mk == nil || other == nil {
		return nil, fmt.Errorf("Mask.And: %w", ErrNilMatrix)
	}
	if err := sameIDs(mk.ids, other.ids); err != nil {
		return nil, fmt.Errorf("Mask.And: %w", err)
	}
	out := &Mask{n: mk.n, ids: mk.IDs(), bits: make([]bool, len(mk.bits))}
	for k := range mk.bits {
		out.bits[k] = mk.bits[k] && other.bits[k]
	}

	return out, nil
}

// Apply returns the element-wise product m ⊙ mask: selected cells keep their
// flow, all others become zero. m may be any matrix over the same units.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrUnitMismatch.
// Complexity: O(n²).
func (mk *Mask) Apply(m *FlowMatrix) (*FlowMatrix, error) {
	if mk == nil || m == nil {
		return nil, fmt.Errorf("Mask.Apply: %w", ErrNilMatrix)
	}
	if err := sameIDs(mk.ids, m.ids); err != nil {
		return nil, fmt.Errorf("Mask.Apply: %w", err)
	}
	out := m.Clone()
	for k, keep := range mk.bits {
		if !keep {
			out.data[k] = 0
		}
	}

	return out, nil
}

// Ints returns the mask as a 0/1 table, the shape plotting layers expect.
func (mk *Mask) Ints() [][]int {
	out := make([][]int, mk.n)
	for i := 0; i < mk.n; i++ {
		out[i] = make([]int, mk.n)
		for j := 0; j < mk.n; j++ {
			if mk.bits[i*mk.n+j] {
				out[i][j] = 1
			}
		}
	}

	return out
}

// String renders the mask as rows of 0/1.
func (mk *Mask) String() string {
	var b strings.Builder
	for i := 0; i < mk.n; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < mk.n; j++ {
			if mk.bits[i*mk.n+j] {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
			if j+1 < mk.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
