// SPDX-License-Identifier: MIT
// Package triangular: multiple right-hand-side and banded substitution
// variants. The substitution cores repeat the solver.go loops rather than
// calling them per column, so the multi-RHS path can write straight into the
// shared result buffer without per-column allocations.

package triangular

import (
	"math"

	"github.com/katalvlaran/densolve/dense"
)

// LsolveMultiple solves L·X = B column by column, where B is an n×m buffer
// of m stacked right-hand sides. The result is the n×m solution buffer X.
//
// Implementation:
//   - Stage 1: Validate a as n×n and bs as n×m.
//   - Stage 2: One diagonal pre-check, then for each column j run forward
//     substitution reading bs[i*m+j] and writing x[i*m+j] in place.
//
// Errors:
//   - ErrSingular when any diagonal magnitude is below dense.PivotTol.
//   - ErrNilBuffer, ErrBadShape, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n²·m), Space O(n·m).
func LsolveMultiple(a []float64, n int, bs []float64, m int) ([]float64, error) {
	if err := dense.ValidateSquare(a, n); err != nil {
		return nil, triErrorf(opLsolveMultiple, err)
	}
	if err := dense.ValidateMatrix(bs, n, m); err != nil {
		return nil, triErrorf(opLsolveMultiple, err)
	}
	// Hoist the singularity check out of the per-column loop.
	if ok, err := diagonalNonZero(a, n); err != nil {
		return nil, triErrorf(opLsolveMultiple, err)
	} else if !ok {
		return nil, triErrorf(opLsolveMultiple, ErrSingular)
	}

	x := make([]float64, n*m)
	var (
		i, j, k, base int     // iterators and hoisted row offset
		sum           float64 // substitution accumulator
	)
	for j = 0; j < m; j++ {
		for i = 0; i < n; i++ {
			sum = dense.ZeroSum
			base = i * n
			for k = 0; k < i; k++ {
				sum += a[base+k] * x[k*m+j]
			}
			x[i*m+j] = (bs[i*m+j] - sum) / a[base+i]
		}
	}

	return x, nil
}

// UsolveMultiple solves U·X = B column by column for an n×m right-hand-side
// buffer; the backward-substitution mirror of LsolveMultiple.
//
// Errors: ErrSingular, ErrNilBuffer, ErrBadShape, ErrDimensionMismatch.
// Complexity: Time O(n²·m), Space O(n·m).
func UsolveMultiple(a []float64, n int, bs []float64, m int) ([]float64, error) {
	if err := dense.ValidateSquare(a, n); err != nil {
		return nil, triErrorf(opUsolveMultiple, err)
	}
	if err := dense.ValidateMatrix(bs, n, m); err != nil {
		return nil, triErrorf(opUsolveMultiple, err)
	}
	if ok, err := diagonalNonZero(a, n); err != nil {
		return nil, triErrorf(opUsolveMultiple, err)
	} else if !ok {
		return nil, triErrorf(opUsolveMultiple, ErrSingular)
	}

	x := make([]float64, n*m)
	var (
		i, j, k, base int
		sum           float64
	)
	for j = 0; j < m; j++ {
		for i = n - 1; i >= 0; i-- {
			sum = dense.ZeroSum
			base = i * n
			for k = i + 1; k < n; k++ {
				sum += a[base+k] * x[k*m+j]
			}
			x[i*m+j] = (bs[i*m+j] - sum) / a[base+i]
		}
	}

	return x, nil
}

// LsolveBanded solves L·x = b visiting only the columns within the given
// half-bandwidth of the diagonal: row i reads a[i,k] for
// k in [max(0, i−bandwidth), i]. For a matrix that genuinely has this band
// structure the result is identical to Lsolve at a fraction of the work.
//
// Errors:
//   - ErrBadShape for a negative bandwidth.
//   - ErrSingular, ErrNilBuffer, ErrDimensionMismatch as usual.
//
// Complexity:
//   - Time O(n·min(n, bandwidth)), Space O(n).
func LsolveBanded(a []float64, n int, b []float64, bandwidth int) ([]float64, error) {
	if bandwidth < 0 {
		return nil, triErrorf(opLsolveBanded, ErrBadShape)
	}
	if err := dense.ValidateSquare(a, n); err != nil {
		return nil, triErrorf(opLsolveBanded, err)
	}
	if err := dense.ValidateVector(b, n); err != nil {
		return nil, triErrorf(opLsolveBanded, err)
	}

	x := make([]float64, n)
	var (
		i, k, lo, base int     // iterators, band start, hoisted row offset
		sum, diag      float64 // substitution accumulator, diagonal entry
	)
	for i = 0; i < n; i++ {
		sum = dense.ZeroSum
		base = i * n
		lo = i - bandwidth
		if lo < 0 {
			lo = 0
		}
		for k = lo; k < i; k++ {
			sum += a[base+k] * x[k]
		}
		diag = a[base+i]
		if math.Abs(diag) < dense.PivotTol {
			return nil, triErrorf(opLsolveBanded, ErrSingular)
		}
		x[i] = (b[i] - sum) / diag
	}

	return x, nil
}

// UsolveBanded solves U·x = b visiting only the columns within the given
// half-bandwidth above the diagonal: row i reads a[i,k] for
// k in [i, min(n−1, i+bandwidth)].
//
// Errors: ErrBadShape for a negative bandwidth; ErrSingular, ErrNilBuffer,
// ErrDimensionMismatch as usual.
// Complexity: Time O(n·min(n, bandwidth)), Space O(n).
func UsolveBanded(a []float64, n int, b []float64, bandwidth int) ([]float64, error) {
	if bandwidth < 0 {
		return nil, triErrorf(opUsolveBanded, ErrBadShape)
	}
	if err := dense.ValidateSquare(a, n); err != nil {
		return nil, triErrorf(opUsolveBanded, err)
	}
	if err := dense.ValidateVector(b, n); err != nil {
		return nil, triErrorf(opUsolveBanded, err)
	}

	x := make([]float64, n)
	var (
		i, k, hi, base int
		sum, diag      float64
	)
	for i = n - 1; i >= 0; i-- {
		sum = dense.ZeroSum
		base = i * n
		hi = i + bandwidth
		if hi > n-1 {
			hi = n - 1
		}
		for k = i + 1; k <= hi; k++ {
			sum += a[base+k] * x[k]
		}
		diag = a[base+i]
		if math.Abs(diag) < dense.PivotTol {
			return nil, triErrorf(opUsolveBanded, ErrSingular)
		}
		x[i] = (b[i] - sum) / diag
	}

	return x, nil
}
