// SPDX-License-Identifier: MIT
// Package triangular: forward/backward substitution kernels.
// All kernels use the central dense validators and return plain sentinels
// wrapped via triErrorf at the facade.

package triangular

import (
	"math"

	"github.com/katalvlaran/densolve/dense"
)

// Lsolve solves L·x = b for a lower-triangular n×n buffer by forward
// substitution.
//
// Implementation:
//   - Stage 1: Validate a as n×n and b as length n.
//   - Stage 2: For i = 0..n-1, subtract the already-solved prefix from b[i]
//     and divide by the diagonal entry, guarding it against dense.PivotTol.
//
// Contract:
//   - a is assumed lower triangular; entries above the diagonal are never read.
//
// Inputs:
//   - a: lower-triangular matrix buffer, shape n×n.
//   - b: right-hand side, length n.
//
// Returns:
//   - []float64: freshly allocated solution vector x.
//
// Errors:
//   - ErrSingular when |a[i,i]| < dense.PivotTol for any i reached.
//   - ErrNilBuffer, ErrBadShape, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i ascending, k ascending; stable accumulation order.
//
// Complexity:
//   - Time O(n²), Space O(n).
func Lsolve(a []float64, n int, b []float64) ([]float64, error) {
	if err := dense.ValidateSquare(a, n); err != nil {
		return nil, triErrorf(opLsolve, err)
	}
	if err := dense.ValidateVector(b, n); err != nil {
		return nil, triErrorf(opLsolve, err)
	}

	x := make([]float64, n)
	var (
		i, k, base int     // iterators and hoisted row offset
		sum, diag  float64 // substitution accumulator, diagonal entry
	)
	for i = 0; i < n; i++ {
		sum = dense.ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += a[base+k] * x[k]
		}
		diag = a[base+i]
		if math.Abs(diag) < dense.PivotTol {
			return nil, triErrorf(opLsolve, ErrSingular)
		}
		x[i] = (b[i] - sum) / diag
	}

	return x, nil
}

// Usolve solves U·x = b for an upper-triangular n×n buffer by backward
// substitution. Mirror image of Lsolve: i descends, the solved suffix is
// subtracted, and the diagonal is guarded against dense.PivotTol.
//
// Contract: a is assumed upper triangular; entries below the diagonal are
// never read.
//
// Errors: ErrSingular, ErrNilBuffer, ErrBadShape, ErrDimensionMismatch.
// Complexity: Time O(n²), Space O(n).
func Usolve(a []float64, n int, b []float64) ([]float64, error) {
	if err := dense.ValidateSquare(a, n); err != nil {
		return nil, triErrorf(opUsolve, err)
	}
	if err := dense.ValidateVector(b, n); err != nil {
		return nil, triErrorf(opUsolve, err)
	}

	x := make([]float64, n)
	var (
		i, k, base int     // iterators and hoisted row offset
		sum, diag  float64 // substitution accumulator, diagonal entry
	)
	for i = n - 1; i >= 0; i-- {
		sum = dense.ZeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += a[base+k] * x[k]
		}
		diag = a[base+i]
		if math.Abs(diag) < dense.PivotTol {
			return nil, triErrorf(opUsolve, ErrSingular)
		}
		x[i] = (b[i] - sum) / diag
	}

	return x, nil
}

// LsolveUnit solves L·x = b assuming an implicit unit diagonal: the stored
// diagonal entries are never read and no division is performed. This is the
// substitution used against packed LU factors, where L's diagonal of ones is
// not stored.
//
// Errors: ErrNilBuffer, ErrBadShape, ErrDimensionMismatch.
// Complexity: Time O(n²), Space O(n).
func LsolveUnit(a []float64, n int, b []float64) ([]float64, error) {
	if err := dense.ValidateSquare(a, n); err != nil {
		return nil, triErrorf(opLsolveUnit, err)
	}
	if err := dense.ValidateVector(b, n); err != nil {
		return nil, triErrorf(opLsolveUnit, err)
	}

	x := make([]float64, n)
	var (
		i, k, base int
		sum        float64
	)
	for i = 0; i < n; i++ {
		sum = dense.ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += a[base+k] * x[k]
		}
		x[i] = b[i] - sum // diagonal assumed 1, no division
	}

	return x, nil
}

// UsolveUnit solves U·x = b assuming an implicit unit diagonal; the mirror
// image of LsolveUnit.
//
// Errors: ErrNilBuffer, ErrBadShape, ErrDimensionMismatch.
// Complexity: Time O(n²), Space O(n).
func UsolveUnit(a []float64, n int, b []float64) ([]float64, error) {
	if err := dense.ValidateSquare(a, n); err != nil {
		return nil, triErrorf(opUsolveUnit, err)
	}
	if err := dense.ValidateVector(b, n); err != nil {
		return nil, triErrorf(opUsolveUnit, err)
	}

	x := make([]float64, n)
	var (
		i, k, base int
		sum        float64
	)
	for i = n - 1; i >= 0; i-- {
		sum = dense.ZeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += a[base+k] * x[k]
		}
		x[i] = b[i] - sum // diagonal assumed 1, no division
	}

	return x, nil
}

// LsolveHasSolution reports whether Lsolve would succeed on a: true exactly
// when every diagonal magnitude is at least dense.PivotTol. Cheap pre-check;
// no substitution is performed.
//
// Errors: shape sentinels only — a false result is a value, not an error.
// Complexity: Time O(n), Space O(1).
func LsolveHasSolution(a []float64, n int) (bool, error) {
	return diagonalNonZero(a, n)
}

// UsolveHasSolution reports whether Usolve would succeed on a. Identical
// diagonal scan to LsolveHasSolution; both solvers share the same diagonal
// requirement.
//
// Complexity: Time O(n), Space O(1).
func UsolveHasSolution(a []float64, n int) (bool, error) {
	return diagonalNonZero(a, n)
}

// diagonalNonZero scans the diagonal once against dense.PivotTol.
func diagonalNonZero(a []float64, n int) (bool, error) {
	if err := dense.ValidateSquare(a, n); err != nil {
		return false, triErrorf(opHasSolution, err)
	}

	for i := 0; i < n; i++ {
		if math.Abs(a[i*n+i]) < dense.PivotTol {
			return false, nil
		}
	}

	return true, nil
}
