// SPDX-License-Identifier: MIT
// Package qr: Householder factorization and the least-squares solve built on
// it. Kernels use the central dense validators and wrap sentinels via
// qrErrorf at the facade.

package qr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densolve/dense"
)

// ErrSingular is returned by SolveLS when a diagonal of R is numerically
// zero. Alias of dense.ErrSingular for errors.Is matching.
var ErrSingular = dense.ErrSingular

// Operation name constants for unified error wrapping.
const (
	opFactorize = "Factorize"
	opSolveLS   = "SolveLS"
)

// qrErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func qrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Factorize computes A = Q·R for an m×n buffer via min(m,n) Householder
// reflections.
//
// Implementation:
//   - Stage 1: Validate a as m×n; initialize Q to the m×m identity and R to
//     a copy of A.
//   - Stage 2: For column k, compute the column norm over rows k..m−1. Below
//     dense.PivotTol the column is skipped entirely (silently — rank
//     deficiency is not an error here). Otherwise build the Householder
//     vector with the standard sign choice α = −sign(R[k,k])·‖x‖ and apply
//     the reflection H = I − τ·v·vᵀ to R's columns k..n−1 from the left, and
//     to Q from the right, accumulating Q as the product of reflections so
//     that A = Q·R holds without a transpose pass.
//
// Inputs:
//   - a: matrix buffer, shape m×n; never mutated.
//
// Returns:
//   - q: m×m orthogonal buffer.
//   - r: m×n upper-trapezoidal buffer.
//
// Errors:
//   - dense.ErrNilBuffer, dense.ErrBadShape, dense.ErrDimensionMismatch.
//
// Determinism:
//   - Fixed column order and sign rule ⇒ identical factors for identical
//     inputs.
//
// Complexity:
//   - Time O(m·n·min(m,n) + m²·min(m,n)), Space O(m² + m·n).
func Factorize(a []float64, m, n int) (q, r []float64, err error) {
	if err = dense.ValidateMatrix(a, m, n); err != nil {
		return nil, nil, qrErrorf(opFactorize, err)
	}

	// Q ← I (m×m), R ← copy of A (m×n).
	q = make([]float64, m*m)
	for i := 0; i < m; i++ {
		q[i*m+i] = 1.0
	}
	r = make([]float64, m*n)
	copy(r, a)

	steps := m
	if n < m {
		steps = n
	}

	v := make([]float64, m) // Householder vector workspace, reused per column
	var (
		i, j, k     int     // loop iterators
		norm, alpha float64 // column norm, reflection scalar
		beta, tau   float64 // vᵀv and 2/β
		sum         float64 // per-column accumulator
	)
	for k = 0; k < steps; k++ {
		// Column norm over rows k..m-1.
		norm = dense.NormZero
		for i = k; i < m; i++ {
			norm += r[i*n+k] * r[i*n+k]
		}
		norm = math.Sqrt(norm)
		if norm < dense.PivotTol {
			continue // rank-deficient column, skip the reflection
		}

		// Standard sign choice keeps v[k] away from cancellation.
		alpha = -math.Copysign(norm, r[k*n+k])

		// Build v = x − α·e_k over rows k..m-1.
		for i = 0; i < k; i++ {
			v[i] = 0.0
		}
		for i = k; i < m; i++ {
			v[i] = r[i*n+k]
		}
		v[k] -= alpha

		// β = vᵀv, τ = 2/β.
		beta = dense.NormZero
		for i = k; i < m; i++ {
			beta += v[i] * v[i]
		}
		if beta == dense.NormZero {
			continue // degenerate reflector
		}
		tau = 2.0 / beta

		// R ← H·R on columns k..n-1.
		for j = k; j < n; j++ {
			sum = dense.ZeroSum
			for i = k; i < m; i++ {
				sum += v[i] * r[i*n+j]
			}
			for i = k; i < m; i++ {
				r[i*n+j] -= tau * v[i] * sum
			}
		}

		// Q ← Q·H (right multiplication accumulates the reflection product).
		for i = 0; i < m; i++ {
			sum = dense.ZeroSum
			for j = k; j < m; j++ {
				sum += q[i*m+j] * v[j]
			}
			for j = k; j < m; j++ {
				q[i*m+j] -= tau * sum * v[j]
			}
		}
	}

	return q, r, nil
}

// SolveLS solves the least-squares problem min‖A·x − b‖₂ for m ≥ n via QR:
// factor A, form y = Qᵀ·b, and back-solve the leading n×n block of R.
//
// Errors:
//   - dense.ErrBadShape when m < n (underdetermined systems are out of scope).
//   - ErrSingular when a diagonal of R is below dense.PivotTol (column-rank
//     deficiency makes the back substitution impossible).
//   - Buffer/shape sentinels as usual.
//
// Complexity: dominated by Factorize; the solve itself is O(m·n + n²).
func SolveLS(a []float64, m, n int, b []float64) ([]float64, error) {
	if m < n {
		return nil, qrErrorf(opSolveLS, dense.ErrBadShape)
	}
	if err := dense.ValidateVector(b, m); err != nil {
		return nil, qrErrorf(opSolveLS, err)
	}

	q, r, err := Factorize(a, m, n)
	if err != nil {
		return nil, qrErrorf(opSolveLS, err)
	}

	// y = Qᵀ·b, needed only for the first n rows.
	y := make([]float64, n)
	var (
		i, k int
		sum  float64
	)
	for i = 0; i < n; i++ {
		sum = dense.ZeroSum
		for k = 0; k < m; k++ {
			sum += q[k*m+i] * b[k]
		}
		y[i] = sum
	}

	// Back-solve R[0:n,0:n]·x = y.
	x := make([]float64, n)
	var diag float64
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= r[i*n+k] * x[k]
		}
		diag = r[i*n+i]
		if math.Abs(diag) < dense.PivotTol {
			return nil, qrErrorf(opSolveLS, ErrSingular)
		}
		x[i] = sum / diag
	}

	return x, nil
}
