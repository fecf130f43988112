// SPDX-License-Identifier: MIT
// Package solve: condition-number estimates.

package solve

import (
	"errors"
	"math"

	"github.com/katalvlaran/densolve/dense"
)

// Cond1 estimates the 1-norm condition number κ₁(A) = ‖A‖₁·‖A⁻¹‖₁ by
// explicitly forming the inverse — the full O(n³) route, no cheaper
// estimator. A singular A yields +Inf with a nil error: infinity is the
// condition number of a singular matrix, not a failure of the estimate.
//
// Errors: buffer/shape sentinels only.
// Complexity: Time O(n³), Space O(n²).
func Cond1(a []float64, n int) (float64, error) {
	return cond(a, n, dense.MatrixNorm1)
}

// CondInf estimates the ∞-norm condition number κ∞(A) = ‖A‖∞·‖A⁻¹‖∞ the same
// way as Cond1, with the row-sum norm.
//
// Errors: buffer/shape sentinels only.
// Complexity: Time O(n³), Space O(n²).
func CondInf(a []float64, n int) (float64, error) {
	return cond(a, n, dense.MatrixNormInf)
}

// cond shares the inverse-and-multiply structure between the two norms.
func cond(a []float64, n int, norm func([]float64, int, int) (float64, error)) (float64, error) {
	normA, err := norm(a, n, n)
	if err != nil {
		return 0, solveErrorf(opCond, err)
	}

	inv, err := Inverse(a, n)
	if err != nil {
		if errors.Is(err, ErrSingular) {
			return math.Inf(1), nil // κ of a singular matrix is +Inf by definition
		}

		return 0, solveErrorf(opCond, err)
	}

	normInv, err := norm(inv, n, n)
	if err != nil {
		return 0, solveErrorf(opCond, err)
	}

	return normA * normInv, nil
}
