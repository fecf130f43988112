// SPDX-License-Identifier: MIT
// Package dense: vector and matrix norms.
// Norm kernels are pure reductions over flat buffers; matrix norms take the
// shape explicitly because row/column structure matters for them.

package dense

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation reductions.
const NormZero = 0.0

// Norm operation tags for unified error wrapping.
const (
	opNorm1      = "Norm1"
	opNorm2      = "Norm2"
	opNormP      = "NormP"
	opNormInf    = "NormInf"
	opNormFro    = "NormFro"
	opMatNorm1   = "MatrixNorm1"
	opMatNormInf = "MatrixNormInf"
	opNormalize  = "Normalize"
)

// Norm1 returns the sum of absolute values of x (taxicab norm).
// Complexity: Time O(n), Space O(1).
func Norm1(x []float64) (float64, error) {
	if err := ValidateNonEmpty(x); err != nil {
		return 0, denseErrorf(opNorm1, err)
	}

	acc := NormZero
	for idx := 0; idx < len(x); idx++ {
		acc += math.Abs(x[idx])
	}

	return acc, nil
}

// Norm2 returns the Euclidean norm of x.
// Complexity: Time O(n), Space O(1).
func Norm2(x []float64) (float64, error) {
	if err := ValidateNonEmpty(x); err != nil {
		return 0, denseErrorf(opNorm2, err)
	}

	acc := NormZero
	for idx := 0; idx < len(x); idx++ {
		acc += x[idx] * x[idx]
	}

	return math.Sqrt(acc), nil
}

// NormP returns the general p-norm (Σ|x|^p)^(1/p) for p >= 1.
// Delegates to Norm1/Norm2 for p ∈ {1, 2} to keep the common cases exact
// and cheap.
//
// Errors: ErrBadShape if p < 1, plus the usual buffer sentinels.
// Complexity: Time O(n), Space O(1).
func NormP(x []float64, p float64) (float64, error) {
	if err := ValidateNonEmpty(x); err != nil {
		return 0, denseErrorf(opNormP, err)
	}
	if p < 1 {
		return 0, denseErrorf(opNormP, fmt.Errorf("p=%v: %w", p, ErrBadShape))
	}

	// Delegate the exact common cases.
	switch p {
	case 1:
		return Norm1(x)
	case 2:
		return Norm2(x)
	}

	acc := NormZero
	for idx := 0; idx < len(x); idx++ {
		acc += math.Pow(math.Abs(x[idx]), p)
	}

	return math.Pow(acc, 1/p), nil
}

// NormInf returns the maximum absolute value of x.
// Complexity: Time O(n), Space O(1).
func NormInf(x []float64) (float64, error) {
	if err := ValidateNonEmpty(x); err != nil {
		return 0, denseErrorf(opNormInf, err)
	}

	maxAbs := NormZero
	var v float64
	for idx := 0; idx < len(x); idx++ {
		v = math.Abs(x[idx])
		if v > maxAbs {
			maxAbs = v
		}
	}

	return maxAbs, nil
}

// NormFro returns the Frobenius norm of a matrix buffer: the Euclidean norm
// of the flattened buffer. Shape does not matter for this reduction, so only
// the flat buffer is taken.
// Complexity: Time O(len), Space O(1).
func NormFro(a []float64) (float64, error) {
	v, err := Norm2(a)
	if err != nil {
		return 0, denseErrorf(opNormFro, err)
	}

	return v, nil
}

// MatrixNorm1 returns the operator 1-norm of an m×n buffer: the maximum
// absolute column sum.
// Complexity: Time O(m*n), Space O(1).
func MatrixNorm1(a []float64, m, n int) (float64, error) {
	if err := ValidateMatrix(a, m, n); err != nil {
		return 0, denseErrorf(opMatNorm1, err)
	}

	var (
		i, j        int     // loop iterators (column-outer)
		sum, maxSum float64 // current column sum, running maximum
	)
	for j = 0; j < n; j++ {
		sum = NormZero
		for i = 0; i < m; i++ {
			sum += math.Abs(a[i*n+j])
		}
		if sum > maxSum {
			maxSum = sum
		}
	}

	return maxSum, nil
}

// MatrixNormInf returns the operator ∞-norm of an m×n buffer: the maximum
// absolute row sum.
// Complexity: Time O(m*n), Space O(1).
func MatrixNormInf(a []float64, m, n int) (float64, error) {
	if err := ValidateMatrix(a, m, n); err != nil {
		return 0, denseErrorf(opMatNormInf, err)
	}

	var (
		i, j, base  int     // iterators and hoisted row offset
		sum, maxSum float64 // current row sum, running maximum
	)
	for i = 0; i < m; i++ {
		sum = NormZero
		base = i * n
		for j = 0; j < n; j++ {
			sum += math.Abs(a[base+j])
		}
		if sum > maxSum {
			maxSum = sum
		}
	}

	return maxSum, nil
}

// Normalize returns x scaled to unit Euclidean length. If the norm of x is
// below PivotTol, a zero vector of the same length is returned — the
// documented contract for degenerate input, not an error.
// Complexity: Time O(n), Space O(n).
func Normalize(x []float64) ([]float64, error) {
	norm, err := Norm2(x)
	if err != nil {
		return nil, denseErrorf(opNormalize, err)
	}

	out := make([]float64, len(x))
	if norm < PivotTol {
		return out, nil // zero vector by contract
	}
	inv := 1 / norm
	for idx := 0; idx < len(x); idx++ {
		out[idx] = x[idx] * inv
	}

	return out, nil
}
