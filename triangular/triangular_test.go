// Package triangular_test contains unit tests for the substitution kernels
// and the triangular helpers built on them.
package triangular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densolve/dense"
	"github.com/katalvlaran/densolve/triangular"
)

// eps is the round-trip comparison tolerance.
const eps = 1e-9

// requireVecInDelta compares two buffers element-wise within eps.
func requireVecInDelta(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], eps, "element %d", i)
	}
}

func TestLsolve_UnitLowerScenario(t *testing.T) {
	t.Parallel()

	// 4×4 all-ones lower triangle, b = [1,2,3,4] ⇒ x = [1,1,1,1].
	l := []float64{
		1, 0, 0, 0,
		1, 1, 0, 0,
		1, 1, 1, 0,
		1, 1, 1, 1,
	}
	b := []float64{1, 2, 3, 4}

	x, err := triangular.Lsolve(l, 4, b)
	require.NoError(t, err)
	requireVecInDelta(t, []float64{1, 1, 1, 1}, x)
}

func TestLsolveUsolve_RoundTrip(t *testing.T) {
	t.Parallel()

	// Well-conditioned triangular systems: verify via the matching MatVec.
	l := []float64{
		2, 0, 0,
		-1, 3, 0,
		4, 1, -2,
	}
	u := []float64{
		3, 1, -2,
		0, -4, 5,
		0, 0, 2,
	}
	xTrue := []float64{1, -2, 3}

	bl, err := triangular.LowerMatVec(l, 3, xTrue)
	require.NoError(t, err)
	xl, err := triangular.Lsolve(l, 3, bl)
	require.NoError(t, err)
	requireVecInDelta(t, xTrue, xl)

	bu, err := triangular.UpperMatVec(u, 3, xTrue)
	require.NoError(t, err)
	xu, err := triangular.Usolve(u, 3, bu)
	require.NoError(t, err)
	requireVecInDelta(t, xTrue, xu)
}

func TestLsolve_SingularDiagonal(t *testing.T) {
	t.Parallel()

	// [[1,1],[0,0]]: the second diagonal entry is zero.
	a := []float64{1, 1, 0, 0}

	_, err := triangular.Lsolve(a, 2, []float64{1, 1})
	assert.ErrorIs(t, err, triangular.ErrSingular)
	assert.ErrorIs(t, err, dense.ErrSingular) // sentinel is shared kernel-wide

	ok, err := triangular.LsolveHasSolution(a, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = triangular.UsolveHasSolution([]float64{2, 1, 0, 3}, 2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUnitSolvers_IgnoreStoredDiagonal(t *testing.T) {
	t.Parallel()

	// Stored diagonal entries are garbage; unit solvers must not read them.
	l := []float64{
		999, 0, 0,
		2, 999, 0,
		-1, 3, 999,
	}
	b := []float64{1, 4, 2}

	x, err := triangular.LsolveUnit(l, 3, b)
	require.NoError(t, err)
	// Forward with implicit ones: x0=1, x1=4-2·1=2, x2=2+1·1-3·2=-3.
	requireVecInDelta(t, []float64{1, 2, -3}, x)

	u := []float64{
		999, 2, -1,
		0, 999, 3,
		0, 0, 999,
	}
	x, err = triangular.UsolveUnit(u, 3, []float64{1, 4, 2})
	require.NoError(t, err)
	// Backward with implicit ones: x2=2, x1=4-3·2=-2, x0=1-2·(-2)+1·2=7.
	requireVecInDelta(t, []float64{7, -2, 2}, x)
}

func TestSolveMultiple_MatchesColumnwise(t *testing.T) {
	t.Parallel()

	l := []float64{
		2, 0, 0,
		1, 3, 0,
		-1, 2, 4,
	}
	// Two stacked right-hand sides, column-major semantics inside a row-major buffer.
	bs := []float64{
		2, 4,
		5, -1,
		3, 8,
	}

	got, err := triangular.LsolveMultiple(l, 3, bs, 2)
	require.NoError(t, err)

	// Reference: solve each extracted column independently.
	for j := 0; j < 2; j++ {
		col := []float64{bs[j], bs[2+j], bs[4+j]}
		want, err := triangular.Lsolve(l, 3, col)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			require.InDelta(t, want[i], got[i*2+j], eps, "col %d row %d", j, i)
		}
	}

	// Upper variant against its own columnwise reference.
	u := []float64{
		3, 1, -2,
		0, -4, 5,
		0, 0, 2,
	}
	gotU, err := triangular.UsolveMultiple(u, 3, bs, 2)
	require.NoError(t, err)
	for j := 0; j < 2; j++ {
		col := []float64{bs[j], bs[2+j], bs[4+j]}
		want, err := triangular.Usolve(u, 3, col)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			require.InDelta(t, want[i], gotU[i*2+j], eps, "col %d row %d", j, i)
		}
	}
}

func TestBandedSolvers_MatchPlainOnBandedInput(t *testing.T) {
	t.Parallel()

	// Lower bidiagonal matrix: bandwidth 1 captures it exactly.
	l := []float64{
		2, 0, 0, 0,
		1, 3, 0, 0,
		0, -1, 4, 0,
		0, 0, 2, 5,
	}
	b := []float64{2, 5, 3, 9}

	plain, err := triangular.Lsolve(l, 4, b)
	require.NoError(t, err)
	banded, err := triangular.LsolveBanded(l, 4, b, 1)
	require.NoError(t, err)
	requireVecInDelta(t, plain, banded)

	u := []float64{
		2, 1, 0, 0,
		0, 3, -1, 0,
		0, 0, 4, 2,
		0, 0, 0, 5,
	}
	plainU, err := triangular.Usolve(u, 4, b)
	require.NoError(t, err)
	bandedU, err := triangular.UsolveBanded(u, 4, b, 1)
	require.NoError(t, err)
	requireVecInDelta(t, plainU, bandedU)

	_, err = triangular.LsolveBanded(l, 4, b, -1)
	assert.ErrorIs(t, err, triangular.ErrBadShape)
}

func TestTriangularInverse_ReconstructsIdentity(t *testing.T) {
	t.Parallel()

	l := []float64{
		2, 0, 0,
		1, 4, 0,
		-3, 2, 5,
	}
	inv, err := triangular.LowerInverse(l, 3)
	require.NoError(t, err)
	prod, err := dense.MatMul(l, 3, 3, inv, 3)
	require.NoError(t, err)
	id, err := dense.Identity(3)
	require.NoError(t, err)
	requireVecInDelta(t, id, prod)

	u := []float64{
		2, 1, -3,
		0, 4, 2,
		0, 0, 5,
	}
	invU, err := triangular.UpperInverse(u, 3)
	require.NoError(t, err)
	prodU, err := dense.MatMul(u, 3, 3, invU, 3)
	require.NoError(t, err)
	requireVecInDelta(t, id, prodU)
}

func TestTriangularInverse_GuardsDiagonal(t *testing.T) {
	t.Parallel()

	// The inverse path shares the solve guard: zero diagonal is ErrSingular.
	_, err := triangular.LowerInverse([]float64{1, 0, 5, 0}, 2)
	assert.ErrorIs(t, err, triangular.ErrSingular)

	_, err = triangular.UpperInverse([]float64{0, 5, 0, 1}, 2)
	assert.ErrorIs(t, err, triangular.ErrSingular)
}

func TestDet_DiagonalProduct(t *testing.T) {
	t.Parallel()

	det, err := triangular.Det([]float64{
		2, 0, 0,
		1, -3, 0,
		7, 5, 4,
	}, 3)
	require.NoError(t, err)
	require.InDelta(t, -24.0, det, eps)
}
