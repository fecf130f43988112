// SPDX-License-Identifier: MIT
// Package solve: rank estimation with a configurable tolerance.

package solve

import (
	"math"

	"github.com/katalvlaran/densolve/dense"
)

// DefaultRankTolerance is the pivot-magnitude threshold below which a column
// is considered dependent during rank estimation.
const DefaultRankTolerance = dense.PivotTol

// RankOption configures Rank. Use with Rank(a, m, n, opts...).
type RankOption func(*rankOptions)

// rankOptions holds the configurable parameters for rank estimation.
type rankOptions struct {
	tol float64 // pivot threshold; must be non-negative
}

// defaultRankOptions returns the documented defaults.
func defaultRankOptions() rankOptions {
	return rankOptions{tol: DefaultRankTolerance}
}

// WithTolerance returns a RankOption that sets the pivot threshold.
// Panics on a negative or NaN tolerance (programmer error, not data error).
func WithTolerance(tol float64) RankOption {
	if tol < 0 || math.IsNaN(tol) {
		panic("solve: WithTolerance requires a non-negative tolerance")
	}

	return func(o *rankOptions) {
		o.tol = tol
	}
}

// Rank estimates the rank of an m×n buffer by row-echelon reduction with
// partial pivoting.
//
// Implementation:
//   - Stage 1: Validate a as m×n; gather options; copy a into a working
//     buffer.
//   - Stage 2: Walk columns left to right. For each column, scan the rows at
//     or below the current pivot row for the largest magnitude. If that best
//     pivot is ≤ tol the column is skipped — not eliminated — and the pivot
//     row stays put. Otherwise swap the winning row up, eliminate below, and
//     advance the pivot row. The count of advanced pivot rows is the rank.
//
// Errors: buffer/shape sentinels only — a small rank is a value, not a
// failure.
// Complexity: Time O(m·n·min(m,n)), Space O(m·n).
func Rank(a []float64, m, n int, opts ...RankOption) (int, error) {
	if err := dense.ValidateMatrix(a, m, n); err != nil {
		return 0, solveErrorf(opRank, err)
	}
	o := defaultRankOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Working copy; the input stays untouched.
	w := make([]float64, len(a))
	copy(w, a)

	var (
		row, col, i, j int     // pivot row, pivot column, iterators
		p              int     // winning pivot row
		maxAbs, v      float64 // pivot scan state
		mult           float64 // elimination multiplier
		baseR, baseI   int     // hoisted row offsets
	)
	for col = 0; col < n && row < m; col++ {
		// Best available pivot in this column at or below the pivot row.
		p = row
		maxAbs = math.Abs(w[row*n+col])
		for i = row + 1; i < m; i++ {
			v = math.Abs(w[i*n+col])
			if v > maxAbs {
				maxAbs, p = v, i
			}
		}
		if maxAbs <= o.tol {
			continue // dependent column: skip, do not advance the pivot row
		}

		// Swap the winning row up.
		if p != row {
			baseR, baseI = row*n, p*n
			for j = col; j < n; j++ {
				w[baseR+j], w[baseI+j] = w[baseI+j], w[baseR+j]
			}
		}

		// Eliminate below the pivot.
		baseR = row * n
		for i = row + 1; i < m; i++ {
			baseI = i * n
			mult = w[baseI+col] / w[baseR+col]
			if mult == 0 {
				continue
			}
			for j = col; j < n; j++ {
				w[baseI+j] -= mult * w[baseR+j]
			}
		}
		row++
	}

	return row, nil
}
