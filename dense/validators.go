// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating buffer/shape checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Only O(1) length/shape comparisons; no element inspection. Expensive
//     property checks (symmetry, triangularity, diagonal dominance) are
//     intentionally NOT performed anywhere in the kernel — those contracts
//     are documented per routine and trusted.

package dense

import "fmt"

// PivotTol is the magnitude below which a pivot or diagonal entry is treated
// as numerically zero throughout the kernel. Detection is threshold-based
// rather than an exact zero comparison.
const PivotTol = 1e-14

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateMatrix ensures a is non-nil and len(a) == rows*cols with positive dims.
//
// Errors: ErrNilBuffer, ErrBadShape, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMatrix(a []float64, rows, cols int) error {
	if a == nil {
		return validatorErrorf("ValidateMatrix", ErrNilBuffer)
	}
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateMatrix", ErrBadShape)
	}
	if len(a) != rows*cols {
		return validatorErrorf("ValidateMatrix", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures a is a non-nil n×n buffer.
//
// Errors: ErrNilBuffer, ErrBadShape, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquare(a []float64, n int) error {
	return ValidateMatrix(a, n, n)
}

// ValidateVector ensures x is non-nil and has exactly length n.
//
// Errors: ErrNilBuffer, ErrBadShape, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVector(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVector", ErrNilBuffer)
	}
	if n <= 0 {
		return validatorErrorf("ValidateVector", ErrBadShape)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVector", ErrDimensionMismatch)
	}

	return nil
}

// ValidateNonEmpty ensures x is a non-nil, non-empty vector of any length.
//
// Errors: ErrNilBuffer, ErrBadShape.
// Complexity: O(1).
func ValidateNonEmpty(x []float64) error {
	if x == nil {
		return validatorErrorf("ValidateNonEmpty", ErrNilBuffer)
	}
	if len(x) == 0 {
		return validatorErrorf("ValidateNonEmpty", ErrBadShape)
	}

	return nil
}
