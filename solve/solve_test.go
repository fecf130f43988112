// Package solve_test covers the derived operations: determinant, inverse,
// linear solve, rank, and condition-number estimates.
package solve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densolve/dense"
	"github.com/katalvlaran/densolve/solve"
)

// eps is the comparison tolerance.
const eps = 1e-9

// requireVecInDelta compares two buffers element-wise within eps.
func requireVecInDelta(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], eps, "element %d", i)
	}
}

func TestDet_ClosedForms(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		a    []float64
		n    int
		want float64
	}{
		{"1x1", []float64{-7}, 1, -7},
		{"2x2", []float64{1, 2, 3, 4}, 2, -2},
		{"3x3_sarrus", []float64{6, 1, 1, 4, -2, 5, 2, 8, 7}, 3, -306},
		{"3x3_singular_value_not_error", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := solve.Det(tc.a, tc.n)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, eps)
		})
	}
}

func TestDet_LUAgreesWithClosedForm(t *testing.T) {
	t.Parallel()

	// Embed a 3×3 with a known determinant into a block-diagonal 4×4: the
	// extra unit pivot leaves the determinant unchanged, so the elimination
	// path must agree with Sarrus on the small block.
	a := []float64{
		6, 1, 1, 0,
		4, -2, 5, 0,
		2, 8, 7, 0,
		0, 0, 0, 1,
	}

	got, err := solve.Det(a, 4)
	require.NoError(t, err)
	require.InDelta(t, -306.0, got, eps)
}

func TestDet_SingularEliminationIsError(t *testing.T) {
	t.Parallel()

	// Rank-2 4×4: the elimination path reports ErrSingular instead of a
	// silent zero.
	a := []float64{
		1, 2, 3, 4,
		2, 4, 6, 8,
		1, 0, 1, 0,
		3, 6, 9, 12,
	}

	_, err := solve.Det(a, 4)
	assert.ErrorIs(t, err, solve.ErrSingular)
}

func TestInverse_ClosedForms(t *testing.T) {
	t.Parallel()

	t.Run("2x2", func(t *testing.T) {
		inv, err := solve.Inverse([]float64{4, 7, 2, 6}, 2)
		require.NoError(t, err)
		requireVecInDelta(t, []float64{0.6, -0.7, -0.2, 0.4}, inv)
	})

	t.Run("3x3", func(t *testing.T) {
		a := []float64{
			1, 2, 3,
			0, 1, 4,
			5, 6, 0,
		}
		inv, err := solve.Inverse(a, 3)
		require.NoError(t, err)
		requireVecInDelta(t, []float64{
			-24, 18, 5,
			20, -15, -4,
			-5, 4, 1,
		}, inv)
	})
}

func TestInverse_GaussJordanRoundTrip(t *testing.T) {
	t.Parallel()

	// 4×4 exercised through the augmented-buffer path: A·A⁻¹ = I.
	a := []float64{
		2, 1, 0, 3,
		1, 3, 2, 1,
		0, 2, 4, 2,
		3, 1, 2, 5,
	}

	inv, err := solve.Inverse(a, 4)
	require.NoError(t, err)

	prod, err := dense.MatMul(a, 4, 4, inv, 4)
	require.NoError(t, err)
	id, err := dense.Identity(4)
	require.NoError(t, err)
	requireVecInDelta(t, id, prod)
}

func TestInverse_Singular(t *testing.T) {
	t.Parallel()

	// The spec's canonical singular matrix.
	_, err := solve.Inverse([]float64{1, 1, 0, 0}, 2)
	assert.ErrorIs(t, err, solve.ErrSingular)

	// Same convention on the elimination path.
	a := []float64{
		1, 2, 3, 4,
		2, 4, 6, 8,
		1, 0, 1, 0,
		3, 6, 9, 12,
	}
	_, err = solve.Inverse(a, 4)
	assert.ErrorIs(t, err, dense.ErrSingular)
}

func TestLinear_RoundTrip(t *testing.T) {
	t.Parallel()

	a := []float64{
		3, 2, -1,
		2, -2, 4,
		-1, 0.5, -1,
	}
	want := []float64{1, -2, -2}
	b, err := dense.MatVec(a, 3, 3, want)
	require.NoError(t, err)

	x, err := solve.Linear(a, 3, b)
	require.NoError(t, err)
	requireVecInDelta(t, want, x)
}

func TestLinear_Singular(t *testing.T) {
	t.Parallel()

	_, err := solve.Linear([]float64{1, 1, 0, 0}, 2, []float64{1, 1})
	assert.ErrorIs(t, err, solve.ErrSingular)
}

func TestLinearMultiple_MatchesInverse(t *testing.T) {
	t.Parallel()

	// Solving against I yields the inverse, column for column.
	a := []float64{
		4, 1,
		2, 3,
	}
	id, err := dense.Identity(2)
	require.NoError(t, err)

	got, err := solve.LinearMultiple(a, 2, id, 2)
	require.NoError(t, err)
	inv, err := solve.Inverse(a, 2)
	require.NoError(t, err)
	requireVecInDelta(t, inv, got)
}

func TestRank(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		a    []float64
		m, n int
		want int
	}{
		{"full_rank_3x3", []float64{6, 1, 1, 4, -2, 5, 2, 8, 7}, 3, 3, 3},
		{"rank1_3x3", []float64{1, 2, 3, 2, 4, 6, 3, 6, 9}, 3, 3, 1},
		{"rank2_rect_2x3", []float64{1, 0, 1, 0, 1, 1}, 2, 3, 2},
		{"rank2_rect_3x2", []float64{1, 0, 0, 1, 1, 1}, 3, 2, 2},
		{"zero_matrix", []float64{0, 0, 0, 0}, 2, 2, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := solve.Rank(tc.a, tc.m, tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRank_ToleranceOption(t *testing.T) {
	t.Parallel()

	// The tiny second row survives the default threshold but not a coarse one.
	a := []float64{
		1, 0,
		0, 1e-8,
	}

	strict, err := solve.Rank(a, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, strict)

	coarse, err := solve.Rank(a, 2, 2, solve.WithTolerance(1e-6))
	require.NoError(t, err)
	assert.Equal(t, 1, coarse)
}

func TestRank_NegativeTolerancePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { solve.WithTolerance(-1) })
}

func TestCond_IdentityIsOne(t *testing.T) {
	t.Parallel()

	id, err := dense.Identity(5)
	require.NoError(t, err)

	c1, err := solve.Cond1(id, 5)
	require.NoError(t, err)
	require.InDelta(t, 1.0, c1, eps)

	cInf, err := solve.CondInf(id, 5)
	require.NoError(t, err)
	require.InDelta(t, 1.0, cInf, eps)
}

func TestCond_KnownValue(t *testing.T) {
	t.Parallel()

	// diag(1, 10): ‖A‖ = 10, ‖A⁻¹‖ = 1 ⇒ κ = 10 in both norms.
	a := []float64{1, 0, 0, 10}

	c1, err := solve.Cond1(a, 2)
	require.NoError(t, err)
	require.InDelta(t, 10.0, c1, eps)

	cInf, err := solve.CondInf(a, 2)
	require.NoError(t, err)
	require.InDelta(t, 10.0, cInf, eps)
}

func TestCond_SingularIsInf(t *testing.T) {
	t.Parallel()

	c1, err := solve.Cond1([]float64{1, 1, 0, 0}, 2)
	require.NoError(t, err)
	assert.True(t, math.IsInf(c1, 1))

	cInf, err := solve.CondInf([]float64{1, 1, 0, 0}, 2)
	require.NoError(t, err)
	assert.True(t, math.IsInf(cInf, 1))
}
