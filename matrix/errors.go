// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (possibly wrapped with operation
// context) and tests check them via errors.Is. No function panics on
// user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Operations
// wrap at the detection site with fmt.Errorf("Op: %w", ErrX); callers match
// with errors.Is.

var (
	// ErrBadShape is returned when a matrix would have no units, or when a
	// row/value layout does not describe a square matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a mask applied to a matrix of another size, or a weight vector whose
	// length differs from the number of units.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrUnitMismatch indicates that two operands share a dimension but not the
	// same ordered unit ids.
	ErrUnitMismatch = errors.New("matrix: unit ids differ")

	// ErrNilMatrix indicates that a nil matrix or mask was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmptyID indicates an empty unit id.
	ErrEmptyID = errors.New("matrix: empty unit id")

	// ErrDuplicateID indicates a unit id listed twice in an explicit id set.
	ErrDuplicateID = errors.New("matrix: duplicate unit id")

	// ErrUnknownID indicates a reference to an id absent from the matrix.
	ErrUnknownID = errors.New("matrix: unknown unit id")

	// ErrBadWeight indicates a flow value that is negative, NaN, ±Inf or not a number.
	ErrBadWeight = errors.New("matrix: invalid flow weight")

	// ErrMissingColumn indicates that a tabular input lacks a required field.
	ErrMissingColumn = errors.New("matrix: required column missing")
)
