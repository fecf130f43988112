// SPDX-License-Identifier: MIT
// Package solve: matrix inverse.

package solve

import (
	"math"

	"github.com/katalvlaran/densolve/dense"
)

// Inverse computes A⁻¹ for an n×n buffer.
//
// Implementation:
//   - n = 1..3: closed-form cofactor formulas, guarded by the same
//     dense.PivotTol threshold on |det| as the elimination path.
//   - n > 3: Gauss-Jordan elimination with partial pivoting on an n×2n
//     augmented [A|I] buffer: scan for the best remaining pivot, swap rows,
//     normalize the pivot row, and annihilate the pivot column in every
//     other row. The right half then holds A⁻¹.
//
// Inputs:
//   - a: square matrix buffer, shape n×n; never mutated.
//
// Returns:
//   - []float64: freshly allocated n×n inverse.
//
// Errors:
//   - ErrSingular when |det| (closed forms) or the best pivot magnitude
//     (Gauss-Jordan) falls below dense.PivotTol.
//   - Buffer/shape sentinels as usual.
//
// Determinism:
//   - Fixed pivot scan with strict > (first occurrence wins ties).
//
// Complexity:
//   - O(1) for n ≤ 3, Time O(n³) Space O(n²) beyond.
func Inverse(a []float64, n int) ([]float64, error) {
	if err := dense.ValidateSquare(a, n); err != nil {
		return nil, solveErrorf(opInverse, err)
	}

	switch n {
	case 1:
		if math.Abs(a[0]) < dense.PivotTol {
			return nil, solveErrorf(opInverse, ErrSingular)
		}

		return []float64{1 / a[0]}, nil
	case 2:
		return inv2x2(a)
	case 3:
		return inv3x3(a)
	}

	return gaussJordan(a, n)
}

// inv2x2 applies the closed-form cofactor formula to a 2×2 buffer.
func inv2x2(a []float64) ([]float64, error) {
	det := a[0]*a[3] - a[1]*a[2]
	if math.Abs(det) < dense.PivotTol {
		return nil, solveErrorf(opInverse, ErrSingular)
	}
	inv := 1 / det

	return []float64{
		a[3] * inv, -a[1] * inv,
		-a[2] * inv, a[0] * inv,
	}, nil
}

// inv3x3 applies the closed-form cofactor formula to a 3×3 buffer.
func inv3x3(a []float64) ([]float64, error) {
	// Cofactors of the first row double as the determinant expansion.
	c00 := a[4]*a[8] - a[5]*a[7]
	c01 := a[5]*a[6] - a[3]*a[8]
	c02 := a[3]*a[7] - a[4]*a[6]
	det := a[0]*c00 + a[1]*c01 + a[2]*c02
	if math.Abs(det) < dense.PivotTol {
		return nil, solveErrorf(opInverse, ErrSingular)
	}
	inv := 1 / det

	return []float64{
		c00 * inv, (a[2]*a[7] - a[1]*a[8]) * inv, (a[1]*a[5] - a[2]*a[4]) * inv,
		c01 * inv, (a[0]*a[8] - a[2]*a[6]) * inv, (a[2]*a[3] - a[0]*a[5]) * inv,
		c02 * inv, (a[1]*a[6] - a[0]*a[7]) * inv, (a[0]*a[4] - a[1]*a[3]) * inv,
	}, nil
}

// gaussJordan runs partial-pivoted Gauss-Jordan elimination on an n×2n
// augmented [A|I] buffer and extracts the right half.
func gaussJordan(a []float64, n int) ([]float64, error) {
	// Build the augmented buffer: left half A, right half I.
	width := 2 * n
	aug := make([]float64, n*width)
	var i, j int
	for i = 0; i < n; i++ {
		copy(aug[i*width:i*width+n], a[i*n:(i+1)*n])
		aug[i*width+n+i] = 1.0
	}

	var (
		k, p         int     // pivot column and pivot row
		maxAbs, v    float64 // pivot scan state
		pivot, mult  float64 // pivot value, annihilation multiplier
		baseK, baseI int     // hoisted row offsets
	)
	for k = 0; k < n; k++ {
		// Pivot scan over rows k..n-1, first occurrence wins ties.
		p = k
		maxAbs = math.Abs(aug[k*width+k])
		for i = k + 1; i < n; i++ {
			v = math.Abs(aug[i*width+k])
			if v > maxAbs {
				maxAbs, p = v, i
			}
		}
		if maxAbs < dense.PivotTol {
			return nil, solveErrorf(opInverse, ErrSingular)
		}

		// Swap the pivot row into place.
		if p != k {
			baseK, baseI = k*width, p*width
			for j = 0; j < width; j++ {
				aug[baseK+j], aug[baseI+j] = aug[baseI+j], aug[baseK+j]
			}
		}

		// Normalize the pivot row.
		baseK = k * width
		pivot = aug[baseK+k]
		for j = k; j < width; j++ {
			aug[baseK+j] /= pivot
		}

		// Annihilate column k in every other row.
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			baseI = i * width
			mult = aug[baseI+k]
			if mult == 0 {
				continue // nothing to eliminate
			}
			for j = k; j < width; j++ {
				aug[baseI+j] -= mult * aug[baseK+j]
			}
		}
	}

	// Extract the right half.
	out := make([]float64, n*n)
	for i = 0; i < n; i++ {
		copy(out[i*n:(i+1)*n], aug[i*width+n:(i+1)*width])
	}

	return out, nil
}
