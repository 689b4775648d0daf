// SPDX-License-Identifier: MIT

// Package matrix - FlowMatrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Bind both axes to one ordered set of unit ids (origins = rows, destinations = cols).
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep the value immutable once built: every transform returns a new matrix.
//
// Complexity quicksheet:
//   - At/AtID: O(1); Clone: O(n²); Row: O(n); Sum/Links: O(n²).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxAtID = "AtID" // method tag used in error wrappers
	ctxRow  = "Row"  // method tag used in error wrappers
	ctxNew  = "New"  // constructor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// flowErrorf wraps an error with a uniform FlowMatrix context and callsite indices.
func flowErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("FlowMatrix.%s(%d,%d): %w", method, row, col, err)
}

// FlowMatrix is a square matrix of non-negative flows between spatial units.
//   - ids holds the ordered unit ids shared by rows (origins) and columns (destinations).
//   - index maps an id back to its position.
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//
// A FlowMatrix has no exported mutators; treat it as an immutable value.
type FlowMatrix struct {
	n     int
	ids   []string
	index map[string]int
	data  []float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*FlowMatrix)(nil)

// newZero allocates an n×n zero matrix over ids.
// Stage 1: validate ids (non-empty, unique, non-blank).
// Stage 2: build the index and zero buffer.
func newZero(ids []string) (*FlowMatrix, error) {
	if len(ids) == 0 {
		return nil, ErrBadShape
	}
	idx := make(map[string]int, len(ids))
	own := make([]string, len(ids))
	for i, id := range ids {
		if id == "" {
			return nil, ErrEmptyID
		}
		if _, dup := idx[id]; dup {
			return nil, fmt.Errorf("%q: %w", id, ErrDuplicateID)
		}
		idx[id] = i
		own[i] = id
	}

	return &FlowMatrix{
		n:     len(ids),
		ids:   own,
		index: idx,
		data:  make([]float64, len(ids)*len(ids)),
	}, nil
}

// New builds a FlowMatrix from explicit ids and a row-major square value
// table: values[i][j] is the flow from ids[i] to ids[j].
//
// The id order is kept as given (no sorting), which lets callers align a
// matrix with external weight vectors or another matrix.
//
// Errors:
//   - ErrBadShape when ids is empty or values is not len(ids)×len(ids).
//   - ErrEmptyID, ErrDuplicateID for invalid ids.
//   - ErrBadWeight for negative or non-finite values.
//
// Complexity: O(n²).
func New(ids []string, values [][]float64) (*FlowMatrix, error) {
	m, err := newZero(ids)
	if err != nil {
		return nil, fmt.Errorf("FlowMatrix.%s: %w", ctxNew, err)
	}
	if len(values) != m.n {
		return nil, fmt.Errorf("FlowMatrix.%s: %d rows for %d ids: %w", ctxNew, len(values), m.n, ErrBadShape)
	}
	var i, j int
	var v float64
	for i = 0; i < m.n; i++ {
		if len(values[i]) != m.n {
			return nil, fmt.Errorf("FlowMatrix.%s: row %d has %d cols: %w", ctxNew, i, len(values[i]), ErrBadShape)
		}
		for j = 0; j < m.n; j++ {
			v = values[i][j]
			if !validFlow(v) {
				return nil, flowErrorf(ctxNew, i, j, ErrBadWeight)
			}
			m.data[i*m.n+j] = v
		}
	}

	return m, nil
}

// validFlow reports whether v is an admissible flow (finite and ≥ 0).
func validFlow(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// N returns the number of units (rows == cols == N).
// Complexity: O(1).
func (m *FlowMatrix) N() int { return m.n }

// Rows returns the row count. Complexity: O(1).
func (m *FlowMatrix) Rows() int { return m.n }

// Cols returns the column count. Complexity: O(1).
func (m *FlowMatrix) Cols() int { return m.n }

// IDs returns a copy of the ordered unit ids.
// Complexity: O(n).
func (m *FlowMatrix) IDs() []string {
	out := make([]string, m.n)
	copy(out, m.ids)

	return out
}

// ID returns the unit id at position i or ErrOutOfRange.
func (m *FlowMatrix) ID(i int) (string, error) {
	if i < 0 || i >= m.n {
		return "", fmt.Errorf("FlowMatrix.ID(%d): %w", i, ErrOutOfRange)
	}

	return m.ids[i], nil
}

// Index returns the position of id and whether it exists.
// Complexity: O(1).
func (m *FlowMatrix) Index(id string) (int, bool) {
	i, ok := m.index[id]

	return i, ok
}

// At returns the flow from row i to column j or ErrOutOfRange.
// Complexity: O(1).
func (m *FlowMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, flowErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// AtID returns the flow from origin to destination by unit id.
// Errors: ErrUnknownID.
func (m *FlowMatrix) AtID(origin, destination string) (float64, error) {
	i, ok := m.index[origin]
	if !ok {
		return 0, fmt.Errorf("FlowMatrix.%s(%q): %w", ctxAtID, origin, ErrUnknownID)
	}
	j, ok := m.index[destination]
	if !ok {
		return 0, fmt.Errorf("FlowMatrix.%s(%q): %w", ctxAtID, destination, ErrUnknownID)
	}

	return m.data[i*m.n+j], nil
}

// Row returns a copy of the outbound flows of origin i.
// Complexity: O(n).
func (m *FlowMatrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, flowErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(n²).
func (m *FlowMatrix) Clone() *FlowMatrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	idx := make(map[string]int, len(m.index))
	for k, v := range m.index {
		idx[k] = v
	}

	return &FlowMatrix{n: m.n, ids: m.IDs(), index: idx, data: cp}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
//
// Determinism: fixed i→j order.
// Complexity: O(n²), no allocations.
func (m *FlowMatrix) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.n; i++ {
		base = i * m.n
		for j = 0; j < m.n; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Links returns the number of strictly positive cells.
// Complexity: O(n²).
func (m *FlowMatrix) Links() int {
	var c int
	for _, v := range m.data {
		if v > 0 {
			c++
		}
	}

	return c
}

// Sum returns the total of all flows, accumulated in row-major order.
// Complexity: O(n²).
func (m *FlowMatrix) Sum() float64 {
	var s float64
	for _, v := range m.data {
		s += v
	}

	return s
}

// Positive returns the strictly positive cell values in row-major order.
// Complexity: O(n²).
func (m *FlowMatrix) Positive() []float64 {
	out := make([]float64, 0, m.n)
	for _, v := range m.data {
		if v > 0 {
			out = append(out, v)
		}
	}

	return out
}

// Values returns a fresh row-major [][]float64 copy of the matrix.
// Complexity: O(n²).
func (m *FlowMatrix) Values() [][]float64 {
	out := make([][]float64, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = make([]float64, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// String renders a header line of ids followed by one line per row.
// Intended for logs and debugging; not for hot paths.
func (m *FlowMatrix) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(m.ids, " "))
	b.WriteByte('\n')
	var i, j, base int
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.n
		for j = 0; j < m.n; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
