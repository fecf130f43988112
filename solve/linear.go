// SPDX-License-Identifier: MIT
// Package solve: general linear solve.

package solve

import (
	"github.com/katalvlaran/densolve/lu"
)

// Linear solves A·x = b for a square system by delegating to the packed LU
// primitive: factorize once, then forward/back substitute. There is no
// second elimination implementation hiding here.
//
// Errors: ErrSingular for a numerically singular A, plus buffer/shape
// sentinels from lu.
// Complexity: Time O(n³), Space O(n²).
func Linear(a []float64, n int, b []float64) ([]float64, error) {
	f, err := lu.Factorize(a, n)
	if err != nil {
		return nil, solveErrorf(opLinear, err)
	}
	x, err := f.Solve(b)
	if err != nil {
		return nil, solveErrorf(opLinear, err)
	}

	return x, nil
}

// LinearMultiple solves A·X = B for an n×m right-hand-side buffer with a
// single factorization shared across all columns.
//
// Errors: same as Linear.
// Complexity: Time O(n³ + n²·m), Space O(n² + n·m).
func LinearMultiple(a []float64, n int, bs []float64, m int) ([]float64, error) {
	f, err := lu.Factorize(a, n)
	if err != nil {
		return nil, solveErrorf(opLinear, err)
	}
	x, err := f.SolveMultiple(bs, m)
	if err != nil {
		return nil, solveErrorf(opLinear, err)
	}

	return x, nil
}
