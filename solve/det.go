// SPDX-License-Identifier: MIT
// Package solve: determinant.

package solve

import (
	"github.com/katalvlaran/densolve/dense"
	"github.com/katalvlaran/densolve/lu"
)

// Det computes det(A) for an n×n buffer.
//
// Implementation:
//   - n = 1..3: closed forms — the entry itself, ad−bc, Sarrus' rule. The
//     formula value is always returned, including an exact or near zero;
//     a zero determinant computed by formula is a value, not a failure.
//   - n > 3: the packed LU primitive with exact sign tracking. An
//     elimination breakdown (best pivot below dense.PivotTol) is ErrSingular
//     — distinguishable from a legitimately zero closed-form determinant.
//
// Errors: ErrSingular (n > 3 only), plus buffer/shape sentinels.
// Complexity: O(1) for n ≤ 3, Time O(n³) Space O(n²) beyond.
func Det(a []float64, n int) (float64, error) {
	if err := dense.ValidateSquare(a, n); err != nil {
		return 0, solveErrorf(opDet, err)
	}

	switch n {
	case 1:
		return a[0], nil
	case 2:
		return a[0]*a[3] - a[1]*a[2], nil
	case 3:
		// Sarrus' rule.
		return a[0]*a[4]*a[8] + a[1]*a[5]*a[6] + a[2]*a[3]*a[7] -
			a[2]*a[4]*a[6] - a[0]*a[5]*a[7] - a[1]*a[3]*a[8], nil
	}

	f, err := lu.Factorize(a, n)
	if err != nil {
		return 0, solveErrorf(opDet, err)
	}
	det, err := f.Det()
	if err != nil {
		return 0, solveErrorf(opDet, err)
	}

	return det, nil
}
