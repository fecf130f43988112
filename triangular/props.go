// SPDX-License-Identifier: MIT
// Package triangular: triangular matrix–vector products, triangular inverse,
// and triangular determinant. These share the "read only the needed half"
// contract with the solvers.

package triangular

import (
	"math"

	"github.com/katalvlaran/densolve/dense"
)

// LowerMatVec computes y = L·x reading only the lower-triangular half of a
// (diagonal included). The upper half is never touched, so a may carry
// arbitrary garbage above the diagonal.
//
// Errors: ErrNilBuffer, ErrBadShape, ErrDimensionMismatch.
// Complexity: Time O(n²), Space O(n).
func LowerMatVec(a []float64, n int, x []float64) ([]float64, error) {
	if err := dense.ValidateSquare(a, n); err != nil {
		return nil, triErrorf(opLowerMatVec, err)
	}
	if err := dense.ValidateVector(x, n); err != nil {
		return nil, triErrorf(opLowerMatVec, err)
	}

	y := make([]float64, n)
	var (
		i, k, base int
		acc        float64
	)
	for i = 0; i < n; i++ {
		acc = dense.ZeroSum
		base = i * n
		for k = 0; k <= i; k++ {
			acc += a[base+k] * x[k]
		}
		y[i] = acc
	}

	return y, nil
}

// UpperMatVec computes y = U·x reading only the upper-triangular half of a
// (diagonal included).
//
// Errors: ErrNilBuffer, ErrBadShape, ErrDimensionMismatch.
// Complexity: Time O(n²), Space O(n).
func UpperMatVec(a []float64, n int, x []float64) ([]float64, error) {
	if err := dense.ValidateSquare(a, n); err != nil {
		return nil, triErrorf(opUpperMatVec, err)
	}
	if err := dense.ValidateVector(x, n); err != nil {
		return nil, triErrorf(opUpperMatVec, err)
	}

	y := make([]float64, n)
	var (
		i, k, base int
		acc        float64
	)
	for i = 0; i < n; i++ {
		acc = dense.ZeroSum
		base = i * n
		for k = i; k < n; k++ {
			acc += a[base+k] * x[k]
		}
		y[i] = acc
	}

	return y, nil
}

// LowerInverse computes L⁻¹ by forward-solving L·z = e_j against each
// standard basis vector and writing z into column j of the result. The
// inverse of a lower-triangular matrix is itself lower triangular, so the
// substitution for column j can start at row j — rows above it are zero.
//
// The diagonal is guarded exactly like Lsolve: a magnitude below
// dense.PivotTol is ErrSingular. (The solve and inverse paths share one
// convention; there is no unguarded division anywhere in this package.)
//
// Errors: ErrSingular, ErrNilBuffer, ErrBadShape, ErrDimensionMismatch.
// Complexity: Time O(n³), Space O(n²).
func LowerInverse(a []float64, n int) ([]float64, error) {
	if err := dense.ValidateSquare(a, n); err != nil {
		return nil, triErrorf(opLowerInverse, err)
	}

	inv := make([]float64, n*n)
	var (
		i, j, k, base int     // iterators and hoisted row offset
		sum, diag     float64 // substitution accumulator, diagonal entry
	)
	for j = 0; j < n; j++ {
		// Forward substitution against e_j, starting at row j.
		for i = j; i < n; i++ {
			sum = dense.ZeroSum
			base = i * n
			for k = j; k < i; k++ {
				sum += a[base+k] * inv[k*n+j]
			}
			if i == j {
				sum -= 1.0 // e_j contributes at row j only
			}
			diag = a[base+i]
			if math.Abs(diag) < dense.PivotTol {
				return nil, triErrorf(opLowerInverse, ErrSingular)
			}
			inv[base+j] = -sum / diag
		}
	}

	return inv, nil
}

// UpperInverse computes U⁻¹ by backward-solving U·z = e_j against each
// standard basis vector; the mirror image of LowerInverse. The result is
// upper triangular, so the substitution for column j stops at row j.
//
// Errors: ErrSingular, ErrNilBuffer, ErrBadShape, ErrDimensionMismatch.
// Complexity: Time O(n³), Space O(n²).
func UpperInverse(a []float64, n int) ([]float64, error) {
	if err := dense.ValidateSquare(a, n); err != nil {
		return nil, triErrorf(opUpperInverse, err)
	}

	inv := make([]float64, n*n)
	var (
		i, j, k, base int
		sum, diag     float64
	)
	for j = 0; j < n; j++ {
		// Backward substitution against e_j, stopping at row j.
		for i = j; i >= 0; i-- {
			sum = dense.ZeroSum
			base = i * n
			for k = i + 1; k <= j; k++ {
				sum += a[base+k] * inv[k*n+j]
			}
			if i == j {
				sum -= 1.0
			}
			diag = a[base+i]
			if math.Abs(diag) < dense.PivotTol {
				return nil, triErrorf(opUpperInverse, ErrSingular)
			}
			inv[base+j] = -sum / diag
		}
	}

	return inv, nil
}

// Det returns the determinant of a triangular matrix: the product of its
// diagonal entries. Works for either triangular orientation since only the
// diagonal is read. A zero (or any) product is a legitimate value, never an
// error.
//
// Errors: ErrNilBuffer, ErrBadShape, ErrDimensionMismatch.
// Complexity: Time O(n), Space O(1).
func Det(a []float64, n int) (float64, error) {
	if err := dense.ValidateSquare(a, n); err != nil {
		return 0, triErrorf(opDet, err)
	}

	det := 1.0
	for i := 0; i < n; i++ {
		det *= a[i*n+i]
	}

	return det, nil
}
