// SPDX-License-Identifier: MIT
// Package dense: flat-buffer matrix/vector primitives.
// All kernels use central validators and return plain sentinels wrapped via
// denseErrorf at the facade.

package dense

import "fmt"

// ZeroSum is the initial value for substitution and accumulation loops.
const ZeroSum = 0.0

// crossDim is the only vector length the cross product is defined for.
const crossDim = 3

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatMul    = "MatMul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opIdentity  = "Identity"
	opSub       = "Sub"
	opScale     = "Scale"
	opDot       = "Dot"
	opCross     = "Cross"
	opOuter     = "Outer"
	opKron      = "Kron"
)

// denseErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
// Use only when err != nil.
func denseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatMul computes C = A × B for row-major buffers (no aliasing).
//
// Implementation:
//   - Stage 1: Validate a as m×n and b as n×p.
//   - Stage 2: Triple loop in i→k→j order with hoisted row offsets and a
//     zero-skip on a[i,k], writing into a freshly allocated m×p buffer.
//
// Inputs:
//   - a: left matrix buffer, shape m×n.
//   - b: right matrix buffer, shape n×p.
//
// Returns:
//   - []float64: new buffer of shape m×p.
//
// Errors:
//   - ErrNilBuffer, ErrBadShape, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→k→j order; results are stable across runs.
//
// Complexity:
//   - Time O(m*n*p), Space O(m*p).
func MatMul(a []float64, m, n int, b []float64, p int) ([]float64, error) {
	// Validate both operand shapes against their declared dims.
	if err := ValidateMatrix(a, m, n); err != nil {
		return nil, denseErrorf(opMatMul, err)
	}
	if err := ValidateMatrix(b, n, p); err != nil {
		return nil, denseErrorf(opMatMul, err)
	}

	// Allocate the result and multiply with hoisted row offsets.
	out := make([]float64, m*p)
	var (
		i, j, k          int // loop iterators
		rowA, rowB, rowC int // hoisted row offsets
		av               float64
	)
	for i = 0; i < m; i++ {
		rowA = i * n
		rowC = i * p
		for k = 0; k < n; k++ {
			av = a[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * p
			for j = 0; j < p; j++ {
				out[rowC+j] += av * b[rowB+j]
			}
		}
	}

	return out, nil
}

// MatVec computes y = A·x for an m×n buffer and a length-n vector.
//
// Contract: a is m×n; len(x) == n. Zero x[j] entries are skipped.
// Complexity: Time O(m*n), Space O(m).
func MatVec(a []float64, m, n int, x []float64) ([]float64, error) {
	if err := ValidateMatrix(a, m, n); err != nil {
		return nil, denseErrorf(opMatVec, err)
	}
	if err := ValidateVector(x, n); err != nil {
		return nil, denseErrorf(opMatVec, err)
	}

	y := make([]float64, m)
	var (
		i, j, base int     // iterators and hoisted row offset
		acc, xv    float64 // per-row accumulator and cached x(j)
	)
	for i = 0; i < m; i++ {
		acc = ZeroSum
		base = i * n
		for j = 0; j < n; j++ {
			xv = x[j]
			if xv != 0 { // skip zero multiplications
				acc += a[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns a new n×m buffer holding aᵀ for an m×n input.
// Complexity: Time O(m*n), Space O(m*n).
func Transpose(a []float64, m, n int) ([]float64, error) {
	if err := ValidateMatrix(a, m, n); err != nil {
		return nil, denseErrorf(opTranspose, err)
	}

	out := make([]float64, m*n)
	var i, j, base int // loop iterators and hoisted source offset
	for i = 0; i < m; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			out[j*m+i] = a[base+j]
		}
	}

	return out, nil
}

// Identity returns a freshly allocated n×n identity buffer.
// Complexity: Time O(n²), Space O(n²).
func Identity(n int) ([]float64, error) {
	if n <= 0 {
		return nil, denseErrorf(opIdentity, ErrBadShape)
	}

	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		out[i*n+i] = 1.0
	}

	return out, nil
}

// Sub computes the element-wise difference a − b of two equally sized buffers.
// The shape is irrelevant here; only the flat lengths must agree.
// Complexity: Time O(len), Space O(len).
func Sub(a, b []float64) ([]float64, error) {
	if err := ValidateNonEmpty(a); err != nil {
		return nil, denseErrorf(opSub, err)
	}
	if err := ValidateNonEmpty(b); err != nil {
		return nil, denseErrorf(opSub, err)
	}
	if len(a) != len(b) {
		return nil, denseErrorf(opSub, ErrDimensionMismatch)
	}

	out := make([]float64, len(a))
	for idx := 0; idx < len(a); idx++ { // deterministic 0..n-1
		out[idx] = a[idx] - b[idx]
	}

	return out, nil
}

// Scale returns a new buffer whose elements are alpha * a[idx].
// NaN/Inf alpha propagates; alpha = 0 yields an explicit zero buffer.
// Complexity: Time O(len), Space O(len).
func Scale(a []float64, alpha float64) ([]float64, error) {
	if err := ValidateNonEmpty(a); err != nil {
		return nil, denseErrorf(opScale, err)
	}

	out := make([]float64, len(a))
	for idx := 0; idx < len(a); idx++ {
		out[idx] = a[idx] * alpha
	}

	return out, nil
}

// Dot computes the inner product of two equal-length vectors.
// Complexity: Time O(n), Space O(1).
func Dot(x, y []float64) (float64, error) {
	if err := ValidateNonEmpty(x); err != nil {
		return 0, denseErrorf(opDot, err)
	}
	if err := ValidateVector(y, len(x)); err != nil {
		return 0, denseErrorf(opDot, err)
	}

	acc := ZeroSum
	for idx := 0; idx < len(x); idx++ { // fixed order for stable accumulation
		acc += x[idx] * y[idx]
	}

	return acc, nil
}

// Cross computes the three-dimensional cross product x × y.
// Both operands must have length exactly 3.
// Complexity: O(1).
func Cross(x, y []float64) ([]float64, error) {
	if err := ValidateVector(x, crossDim); err != nil {
		return nil, denseErrorf(opCross, err)
	}
	if err := ValidateVector(y, crossDim); err != nil {
		return nil, denseErrorf(opCross, err)
	}

	return []float64{
		x[1]*y[2] - x[2]*y[1],
		x[2]*y[0] - x[0]*y[2],
		x[0]*y[1] - x[1]*y[0],
	}, nil
}

// Outer computes the outer product x·yᵀ as a len(x)×len(y) buffer.
// Complexity: Time O(len(x)*len(y)), Space same.
func Outer(x, y []float64) ([]float64, error) {
	if err := ValidateNonEmpty(x); err != nil {
		return nil, denseErrorf(opOuter, err)
	}
	if err := ValidateNonEmpty(y); err != nil {
		return nil, denseErrorf(opOuter, err)
	}

	rows, cols := len(x), len(y)
	out := make([]float64, rows*cols)
	var i, j, base int // loop iterators and hoisted row offset
	var xv float64
	for i = 0; i < rows; i++ {
		xv = x[i]
		base = i * cols
		for j = 0; j < cols; j++ {
			out[base+j] = xv * y[j]
		}
	}

	return out, nil
}

// Kron computes the Kronecker product A ⊗ B.
//
// Implementation:
//   - Stage 1: Validate a as am×an and b as bm×bn.
//   - Stage 2: Definitional four-level loop writing block (i,j) of the result
//     as a[i,j] * B. Result shape is (am*bm)×(an*bn).
//
// Errors:
//   - ErrNilBuffer, ErrBadShape, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(am*an*bm*bn), Space same.
func Kron(a []float64, am, an int, b []float64, bm, bn int) ([]float64, error) {
	if err := ValidateMatrix(a, am, an); err != nil {
		return nil, denseErrorf(opKron, err)
	}
	if err := ValidateMatrix(b, bm, bn); err != nil {
		return nil, denseErrorf(opKron, err)
	}

	outCols := an * bn
	out := make([]float64, am*bm*outCols)
	var (
		i, j, k, l int     // block and inner iterators
		av         float64 // cached a(i,j)
		rowOut     int     // hoisted destination row offset
	)
	for i = 0; i < am; i++ {
		for j = 0; j < an; j++ {
			av = a[i*an+j]
			if av == 0 {
				continue // zero block contributes nothing
			}
			for k = 0; k < bm; k++ {
				rowOut = (i*bm+k)*outCols + j*bn
				for l = 0; l < bn; l++ {
					out[rowOut+l] = av * b[k*bn+l]
				}
			}
		}
	}

	return out, nil
}
