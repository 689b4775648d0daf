// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape and unit-alignment checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameUnits ensures a and b are non-nil, have the same dimension and
// the same ordered unit ids on both axes.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrUnitMismatch.
// Complexity: O(n).
func ValidateSameUnits(a, b *FlowMatrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameUnits", ErrNilMatrix)
	}
	if err := sameIDs(a.ids, b.ids); err != nil {
		return validatorErrorf("ValidateSameUnits", err)
	}

	return nil
}

// ValidateVecLen ensures a per-unit vector has exactly n entries.
// Errors: ErrNilMatrix for nil x, ErrDimensionMismatch for a wrong length.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateWeights ensures every entry of x is finite and non-negative.
// Errors: ErrBadWeight naming the first offending position.
func ValidateWeights(x []float64) error {
	for i, v := range x {
		if !validFlow(v) {
			return validatorErrorf("ValidateWeights", fmt.Errorf("index %d: %w", i, ErrBadWeight))
		}
	}

	return nil
}

// sameIDs compares two ordered id lists.
func sameIDs(a, b []string) error {
	if len(a) != len(b) {
		return fmt.Errorf("%d vs %d units: %w", len(a), len(b), ErrDimensionMismatch)
	}
	for i := range a {
		if a[i] != b[i] {
			return fmt.Errorf("position %d: %q vs %q: %w", i, a[i], b[i], ErrUnitMismatch)
		}
	}

	return nil
}
