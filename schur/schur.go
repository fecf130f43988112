// SPDX-License-Identifier: MIT

package schur

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densolve/dense"
	"github.com/katalvlaran/densolve/qr"
)

// ErrNotConverged indicates the iteration cap was reached while successive
// iterates still differed by more than the tolerance. The last iterate is
// returned alongside it.
var ErrNotConverged = errors.New("densolve: schur iteration did not converge")

// opDecompose tags wrapped errors from Decompose.
const opDecompose = "Schur.Decompose"

// Decompose — the unshifted QR algorithm.
//
// Description:
//
//	Computes A = U·T·Uᵀ with U orthogonal and T upper quasi-triangular.
//
// Algorithm Outline:
//  1. A₀ = A, U₀ = I.
//  2. Each sweep: factor Aₖ = Qₖ·Rₖ (Householder QR), then
//     Aₖ₊₁ = Rₖ·Qₖ and Uₖ₊₁ = Uₖ·Qₖ. The similarity
//     Aₖ₊₁ = Qₖᵀ·Aₖ·Qₖ preserves eigenvalues while draining the
//     sub-diagonal.
//  3. Stop when ‖Aₖ₊₁ − Aₖ‖F ≤ tol (converged: return Uₖ₊₁, Aₖ₊₁, nil),
//     or after maxIter sweeps (return the last iterate with
//     ErrNotConverged — the cap is a distinct signal, never silent).
//
// Inputs:
//   - a: square matrix buffer, shape n×n; never mutated.
//   - opts: WithTolerance (default 1e-4), WithMaxIterations (default 100).
//
// Returns:
//   - u: n×n orthogonal accumulator.
//   - t: n×n upper quasi-triangular iterate.
//
// Errors:
//   - ErrNotConverged (u and t still returned), plus buffer/shape sentinels.
//
// Complexity:
//
//	Time O(maxIter·n³), Space O(n²).
func Decompose(a []float64, n int, opts ...Option) (u, t []float64, err error) {
	if err = dense.ValidateSquare(a, n); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// A₀ = copy of A, U₀ = I.
	t = make([]float64, n*n)
	copy(t, a)
	u, err = dense.Identity(n)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opDecompose, err)
	}

	var (
		q, r, next []float64 // per-sweep factors and next iterate
		diffBuf    []float64 // Aₖ₊₁ − Aₖ
		diff       float64   // ‖Aₖ₊₁ − Aₖ‖F
	)
	for iter := 0; iter < o.maxIter; iter++ {
		// Aₖ = Qₖ·Rₖ.
		q, r, err = qr.Factorize(t, n, n)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opDecompose, err)
		}

		// Aₖ₊₁ = Rₖ·Qₖ, Uₖ₊₁ = Uₖ·Qₖ.
		next, err = dense.MatMul(r, n, n, q, n)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opDecompose, err)
		}
		u, err = dense.MatMul(u, n, n, q, n)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opDecompose, err)
		}

		// Convergence: Frobenius norm of the step.
		diffBuf, err = dense.Sub(next, t)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opDecompose, err)
		}
		diff, err = dense.NormFro(diffBuf)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opDecompose, err)
		}

		t = next
		if diff <= o.tol {
			return u, t, nil
		}
	}

	// Cap reached above tolerance: hand back the last iterate with a signal.
	return u, t, fmt.Errorf("%s: %w", opDecompose, ErrNotConverged)
}
