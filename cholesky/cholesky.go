// SPDX-License-Identifier: MIT

package cholesky

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/densolve/dense"
)

// ErrNotPositiveDefinite is returned when a diagonal accumulation goes
// non-positive during factorization — the algorithmic definition of "not
// symmetric positive-definite" (assuming the symmetry contract holds).
var ErrNotPositiveDefinite = errors.New("densolve: matrix is not positive definite")

// opFactorize tags wrapped errors from Factorize.
const opFactorize = "Cholesky.Factorize"

// Factorize computes L with A = L·Lᵀ for a symmetric positive-definite n×n
// buffer.
//
// Implementation:
//   - Stage 1: Validate a as n×n. Symmetry is NOT checked; only the lower
//     half (diagonal included) is read.
//   - Stage 2: Column by column: the diagonal entry is
//     L[j,j] = √(A[j,j] − Σ_{k<j} L[j,k]²); if the accumulated value under
//     the root is ≤ 0 the input is not positive definite and factorization
//     aborts. Below the diagonal,
//     L[i,j] = (A[i,j] − Σ_{k<j} L[i,k]·L[j,k]) / L[j,j].
//
// Returns:
//   - []float64: freshly allocated lower-triangular L (upper half zero).
//     On failure nil is returned; partial factors are never exposed.
//
// Errors:
//   - ErrNotPositiveDefinite, dense.ErrNilBuffer, dense.ErrBadShape,
//     dense.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factorize(a []float64, n int) ([]float64, error) {
	if err := dense.ValidateSquare(a, n); err != nil {
		return nil, fmt.Errorf("%s: %w", opFactorize, err)
	}

	l := make([]float64, n*n)
	var (
		i, j, k, baseI, baseJ int     // iterators and hoisted row offsets
		sum                   float64 // column accumulator
	)
	for j = 0; j < n; j++ {
		baseJ = j * n

		// Diagonal entry, with the positive-definiteness check.
		sum = a[baseJ+j]
		for k = 0; k < j; k++ {
			sum -= l[baseJ+k] * l[baseJ+k]
		}
		if sum <= 0 {
			return nil, fmt.Errorf("%s: %w", opFactorize, ErrNotPositiveDefinite)
		}
		l[baseJ+j] = math.Sqrt(sum)

		// Sub-diagonal entries of column j.
		for i = j + 1; i < n; i++ {
			baseI = i * n
			sum = a[baseI+j]
			for k = 0; k < j; k++ {
				sum -= l[baseI+k] * l[baseJ+k]
			}
			l[baseI+j] = sum / l[baseJ+j]
		}
	}

	return l, nil
}
