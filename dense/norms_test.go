// Package dense_test: norm and normalization tests.
package dense_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densolve/dense"
)

func TestVectorNorms(t *testing.T) {
	t.Parallel()

	x := []float64{3, -4}

	for _, tc := range []struct {
		name string
		fn   func([]float64) (float64, error)
		want float64
	}{
		{"Norm1", dense.Norm1, 7},
		{"Norm2", dense.Norm2, 5},
		{"NormInf", dense.NormInf, 4},
		{"NormFro", dense.NormFro, 5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(x)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, eps)
		})
	}
}

func TestNormP_DelegatesAndGeneralizes(t *testing.T) {
	t.Parallel()

	x := []float64{3, -4}

	p1, err := dense.NormP(x, 1)
	require.NoError(t, err)
	require.InDelta(t, 7.0, p1, eps)

	p2, err := dense.NormP(x, 2)
	require.NoError(t, err)
	require.InDelta(t, 5.0, p2, eps)

	p3, err := dense.NormP(x, 3)
	require.NoError(t, err)
	require.InDelta(t, math.Pow(27+64, 1.0/3.0), p3, eps)

	_, err = dense.NormP(x, 0.5)
	assert.ErrorIs(t, err, dense.ErrBadShape)
}

func TestMatrixNorms(t *testing.T) {
	t.Parallel()

	// 2×3 with distinct row and column sums.
	a := []float64{1, -2, 3, -4, 5, -6}

	n1, err := dense.MatrixNorm1(a, 2, 3)
	require.NoError(t, err)
	require.InDelta(t, 9.0, n1, eps) // column sums: 5, 7, 9

	nInf, err := dense.MatrixNormInf(a, 2, 3)
	require.NoError(t, err)
	require.InDelta(t, 15.0, nInf, eps) // row sums: 6, 15
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	got, err := dense.Normalize([]float64{3, 0, 4})
	require.NoError(t, err)
	requireVecInDelta(t, []float64{0.6, 0, 0.8}, got)

	norm, err := dense.Norm2(got)
	require.NoError(t, err)
	require.InDelta(t, 1.0, norm, eps)
}

func TestNormalize_DegenerateReturnsZeroVector(t *testing.T) {
	t.Parallel()

	// Below PivotTol the contract is a zero vector, not an error.
	got, err := dense.Normalize([]float64{0, 1e-300, 0})
	require.NoError(t, err)
	requireVecInDelta(t, []float64{0, 0, 0}, got)
}
