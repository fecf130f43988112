// SPDX-License-Identifier: MIT
// Package dense: sentinel error set shared across the densolve kernel.
// This file defines ONLY package-level sentinel errors. All kernel routines
// MUST return these sentinels and tests MUST check them via errors.Is. No
// routine panics on user-triggered error conditions; panics are reserved for
// programmer errors in option constructors.

package dense

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "densolve: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// The factorization packages (lu, qr, cholesky, triangular, tridiagonal,
// solve, schur) alias these sentinels rather than declaring their own, so a
// caller can match errors.Is(err, dense.ErrSingular) no matter which package
// produced the failure.

var (
	// ErrNilBuffer indicates that a nil buffer was passed where data is required.
	ErrNilBuffer = errors.New("densolve: nil buffer")

	// ErrBadShape is returned when requested dimensions are invalid
	// (e.g., rows <= 0, cols <= 0, or a negative bandwidth).
	ErrBadShape = errors.New("densolve: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between a buffer
	// and its declared shape, or between two operands (e.g., len(a) != rows*cols,
	// or MatMul with inner dimensions that disagree).
	ErrDimensionMismatch = errors.New("densolve: dimension mismatch")

	// ErrSingular is returned when a pivot or diagonal magnitude falls below
	// PivotTol during elimination or substitution. It replaces the historical
	// mix of NaN injection, zero determinants and empty result buffers with a
	// single convention.
	ErrSingular = errors.New("densolve: singular matrix")
)
