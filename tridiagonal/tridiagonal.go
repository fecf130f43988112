// SPDX-License-Identifier: MIT

package tridiagonal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densolve/dense"
)

// ErrSingular is returned when a forward-sweep denominator magnitude falls
// below dense.PivotTol. Alias of dense.ErrSingular for errors.Is matching.
var ErrSingular = dense.ErrSingular

// opSolve tags wrapped errors from Solve.
const opSolve = "Tridiagonal.Solve"

// Solve — the Thomas algorithm.
//
// Description:
//
//	Solves T·x = d where T is tridiagonal with sub-diagonal a, main
//	diagonal b, and super-diagonal c. All four inputs have length n;
//	a[0] and c[n-1] are unused and may be zero.
//
// Algorithm Outline:
//  1. Forward sweep, computing modified coefficients:
//     c'[0] = c[0]/b[0]
//     d'[0] = d[0]/b[0]
//     for i = 1..n-1:
//     denom = b[i] − a[i]·c'[i−1]
//     c'[i] = c[i]/denom          (for i < n−1)
//     d'[i] = (d[i] − a[i]·d'[i−1]) / denom
//  2. Back substitution:
//     x[n−1] = d'[n−1]
//     x[i]   = d'[i] − c'[i]·x[i+1]
//
// A denominator magnitude below dense.PivotTol means the sweep broke down
// (pivot-free elimination hit a numerically zero pivot) and returns
// ErrSingular rather than silently propagating Inf/NaN. Diagonally dominant
// systems (|b[i]| > |a[i]| + |c[i]|) never trigger it.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n) for the two sweep workspaces and the result.
//
// Errors:
//   - ErrSingular — zero denominator during the forward sweep.
//   - dense.ErrNilBuffer / dense.ErrBadShape / dense.ErrDimensionMismatch —
//     nil inputs or diagonals of unequal length.
func Solve(a, b, c, d []float64) ([]float64, error) {
	// Validate: b anchors the system size, the rest must match it.
	if err := dense.ValidateNonEmpty(b); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	n := len(b)
	for _, diag := range [][]float64{a, c, d} {
		if err := dense.ValidateVector(diag, n); err != nil {
			return nil, fmt.Errorf("%s: %w", opSolve, err)
		}
	}

	// Forward sweep.
	cp := make([]float64, n) // modified super-diagonal c'
	dp := make([]float64, n) // modified right-hand side d'
	if math.Abs(b[0]) < dense.PivotTol {
		return nil, fmt.Errorf("%s: %w", opSolve, ErrSingular)
	}
	cp[0] = c[0] / b[0]
	dp[0] = d[0] / b[0]
	var denom float64
	for i := 1; i < n; i++ {
		denom = b[i] - a[i]*cp[i-1]
		if math.Abs(denom) < dense.PivotTol {
			return nil, fmt.Errorf("%s: %w", opSolve, ErrSingular)
		}
		if i < n-1 {
			cp[i] = c[i] / denom
		}
		dp[i] = (d[i] - a[i]*dp[i-1]) / denom
	}

	// Back substitution.
	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}

	return x, nil
}
