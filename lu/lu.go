// SPDX-License-Identifier: MIT
// Package lu: packed partial-pivoted factorization and the operations that
// reuse it. All routines use the central dense validators and return plain
// sentinels wrapped via luErrorf at the facade.

package lu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densolve/dense"
)

// ErrSingular is returned when the best available pivot magnitude falls below
// dense.PivotTol. Alias of dense.ErrSingular for errors.Is matching.
var ErrSingular = dense.ErrSingular

// Operation name constants for unified error wrapping.
const (
	opFactorize     = "Factorize"
	opSolve         = "Solve"
	opSolveMultiple = "SolveMultiple"
	opDet           = "Det"
)

// luErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func luErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Factorization is the packed result of Factorize. It is created once per
// Factorize call, owned by the caller, and never mutated afterwards.
type Factorization struct {
	// LU holds the packed factors: the strictly lower triangle stores L's
	// multipliers (L's unit diagonal is implicit), the diagonal and above
	// store U.
	LU []float64

	// Perm is the row permutation: Perm[i] == j means row i of the factored
	// matrix was originally row j of the input.
	Perm []int

	// Sign is the exact permutation sign (+1 or −1), flipped once per actual
	// row swap during elimination.
	Sign float64

	// N is the matrix dimension.
	N int

	// singular records an elimination breakdown; the factors above are then
	// only partially reduced and solve/determinant refuse to use them.
	singular bool
}

// Factorize performs Gaussian elimination with partial pivoting on an n×n
// buffer.
//
// Implementation:
//   - Stage 1: Validate a as n×n; copy it into the working buffer and set
//     Perm to the identity, Sign to +1.
//   - Stage 2: For each column k, pick the row i ≥ k maximizing |lu[i,k]|.
//     Ties break by first occurrence (strict > comparison): the lowest-indexed
//     row with the maximum magnitude wins. If the winning magnitude is below
//     dense.PivotTol, stop and return the partial factorization together with
//     ErrSingular. Otherwise swap rows k and i (flipping Sign), store the
//     sub-diagonal multipliers in place of the eliminated entries, and update
//     the trailing submatrix.
//
// Inputs:
//   - a: square matrix buffer, shape n×n; never mutated.
//
// Returns:
//   - *Factorization: packed factors + permutation + sign. On ErrSingular the
//     aggregate is still returned with whatever partial elimination was done,
//     matching the "stop where you are" contract; Solve and Det reject it.
//
// Errors:
//   - ErrSingular, dense.ErrNilBuffer, dense.ErrBadShape,
//     dense.ErrDimensionMismatch.
//
// Determinism:
//   - Fixed pivot scan order and tie-break ⇒ identical permutations for
//     identical inputs.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factorize(a []float64, n int) (*Factorization, error) {
	if err := dense.ValidateSquare(a, n); err != nil {
		return nil, luErrorf(opFactorize, err)
	}

	// Working copy + identity permutation.
	f := &Factorization{
		LU:   make([]float64, n*n),
		Perm: make([]int, n),
		Sign: 1.0,
		N:    n,
	}
	copy(f.LU, a)
	for i := 0; i < n; i++ {
		f.Perm[i] = i
	}

	var (
		i, j, k, p   int     // iterators and pivot row
		maxAbs, v    float64 // pivot scan state
		mult, pivot  float64 // elimination multiplier, pivot value
		baseK, baseI int     // hoisted row offsets
	)
	for k = 0; k < n; k++ {
		// Pivot scan: first occurrence of the maximum magnitude wins.
		p = k
		maxAbs = math.Abs(f.LU[k*n+k])
		for i = k + 1; i < n; i++ {
			v = math.Abs(f.LU[i*n+k])
			if v > maxAbs { // strict >, lowest index wins ties
				maxAbs, p = v, i
			}
		}
		if maxAbs < dense.PivotTol {
			f.singular = true

			return f, luErrorf(opFactorize, ErrSingular)
		}

		// Row swap in both the working buffer and the permutation.
		if p != k {
			baseK, baseI = k*n, p*n
			for j = 0; j < n; j++ {
				f.LU[baseK+j], f.LU[baseI+j] = f.LU[baseI+j], f.LU[baseK+j]
			}
			f.Perm[k], f.Perm[p] = f.Perm[p], f.Perm[k]
			f.Sign = -f.Sign // exact sign tracking, one flip per swap
		}

		// Eliminate below the pivot, storing multipliers in place.
		baseK = k * n
		pivot = f.LU[baseK+k]
		for i = k + 1; i < n; i++ {
			baseI = i * n
			mult = f.LU[baseI+k] / pivot
			f.LU[baseI+k] = mult // compact storage: L's strictly-lower entry
			for j = k + 1; j < n; j++ {
				f.LU[baseI+j] -= mult * f.LU[baseK+j]
			}
		}
	}

	return f, nil
}

// Solve computes x with A·x = b by reusing the packed factors:
// forward-solve L·y = P·b with the implicit unit diagonal, then
// back-solve U·x = y.
//
// Errors: ErrSingular if the factorization was flagged singular;
// dense.ErrNilBuffer / dense.ErrDimensionMismatch for a bad right-hand side.
// Complexity: Time O(n²), Space O(n).
func (f *Factorization) Solve(b []float64) ([]float64, error) {
	if f.singular {
		return nil, luErrorf(opSolve, ErrSingular)
	}
	if err := dense.ValidateVector(b, f.N); err != nil {
		return nil, luErrorf(opSolve, err)
	}

	n := f.N
	x := make([]float64, n)
	var (
		i, k, base int
		sum        float64
	)
	// Forward: L·y = P·b, unit diagonal implicit. y reuses x's storage.
	for i = 0; i < n; i++ {
		sum = b[f.Perm[i]]
		base = i * n
		for k = 0; k < i; k++ {
			sum -= f.LU[base+k] * x[k]
		}
		x[i] = sum
	}
	// Backward: U·x = y. Diagonals are ≥ PivotTol after a clean Factorize.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		base = i * n
		for k = i + 1; k < n; k++ {
			sum -= f.LU[base+k] * x[k]
		}
		x[i] = sum / f.LU[base+i]
	}

	return x, nil
}

// SolveMultiple solves A·X = B for an n×m right-hand-side buffer, one
// column at a time through Solve.
//
// Errors: same as Solve, plus shape sentinels for the n×m buffer.
// Complexity: Time O(n²·m), Space O(n·m).
func (f *Factorization) SolveMultiple(bs []float64, m int) ([]float64, error) {
	if f.singular {
		return nil, luErrorf(opSolveMultiple, ErrSingular)
	}
	if err := dense.ValidateMatrix(bs, f.N, m); err != nil {
		return nil, luErrorf(opSolveMultiple, err)
	}

	n := f.N
	out := make([]float64, n*m)
	col := make([]float64, n) // reused per-column extraction buffer
	var i, j int
	for j = 0; j < m; j++ {
		for i = 0; i < n; i++ {
			col[i] = bs[i*m+j]
		}
		x, err := f.Solve(col)
		if err != nil {
			return nil, luErrorf(opSolveMultiple, err)
		}
		for i = 0; i < n; i++ {
			out[i*m+j] = x[i]
		}
	}

	return out, nil
}

// Det returns det(A) = Sign · Π U[i,i] from the packed factors. The sign is
// the exact one tracked during elimination.
//
// Errors: ErrSingular if the factorization was flagged singular.
// Complexity: Time O(n), Space O(1).
func (f *Factorization) Det() (float64, error) {
	if f.singular {
		return 0, luErrorf(opDet, ErrSingular)
	}

	det := f.Sign
	for i := 0; i < f.N; i++ {
		det *= f.LU[i*f.N+i]
	}

	return det, nil
}

// Unpack materializes the separate factors: L with an explicit unit diagonal
// and U upper triangular. Intended for reconstruction checks (P·A = L·U) and
// callers that need the factors individually.
// Complexity: Time O(n²), Space O(n²) each.
func (f *Factorization) Unpack() (l, u []float64) {
	n := f.N
	l = make([]float64, n*n)
	u = make([]float64, n*n)
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		l[base+i] = 1.0 // unit diagonal, implicit in packed form
		for j = 0; j < i; j++ {
			l[base+j] = f.LU[base+j]
		}
		for j = i; j < n; j++ {
			u[base+j] = f.LU[base+j]
		}
	}

	return l, u
}

// PermutationMatrix materializes P as an n×n buffer with
// P[i, Perm[i]] = 1, so that (P·A)[i] is row Perm[i] of A and P·A = L·U.
// Complexity: Time O(n²), Space O(n²).
func (f *Factorization) PermutationMatrix() []float64 {
	n := f.N
	p := make([]float64, n*n)
	for i := 0; i < n; i++ {
		p[i*n+f.Perm[i]] = 1.0
	}

	return p
}
