// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/quickly/array"
	"github.com/katalvlaran/quickly/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// P·A == L·U, L unit lower triangular, U upper triangular.
func TestLU_Reconstructs(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 4; seed++ {
		n := int(seed) + 2
		a := randDense(t, seed, n, n)
		f, err := matrix.LU(a)
		require.NoError(t, err)
		require.Len(t, f.Pivot, n)

		for i := 0; i < n; i++ {
			lii, _ := f.L.At(i, i)
			assert.Equal(t, 1.0, lii)
			for j := i + 1; j < n; j++ {
				lij, _ := f.L.At(i, j)
				uji, _ := f.U.At(j, i)
				assert.Zero(t, lij)
				assert.Zero(t, uji)
			}
		}

		lu, err := matrix.Mul(f.L, f.U)
		require.NoError(t, err)
		pa := mat.NewDense(n, n, nil)
		for i, src := range f.Pivot {
			row, err := a.Row(src)
			require.NoError(t, err)
			pa.SetRow(i, row)
		}
		requireMatClose(t, pa, lu, epsTight)

		det, err := matrix.Determinant(a)
		require.NoError(t, err)
		assert.InDelta(t, det, f.Determinant(), epsTight)
	}
}

// A singular matrix still factors; U carries the zero pivot.
func TestLU_Singular(t *testing.T) {
	t.Parallel()

	f, err := matrix.LU(mustDense(t, 2, 2, 1, 2, 2, 4))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, f.Pivot)
	u11, _ := f.U.At(1, 1)
	assert.Zero(t, u11)
	assert.Zero(t, f.Determinant())
}

func TestDeterminant(t *testing.T) {
	t.Parallel()

	det, err := matrix.Determinant(mustDense(t, 2, 2, 1, 2, 3, 4))
	require.NoError(t, err)
	assert.InDelta(t, -2.0, det, epsTight)

	// Zero leading entry: only solvable with pivoting.
	det, err = matrix.Determinant(mustDense(t, 3, 3, 0, 2, 1, 1, 0, 0, 0, 1, 3))
	require.NoError(t, err)
	assert.InDelta(t, -5.0, det, epsTight)

	for seed := int64(5); seed <= 8; seed++ {
		a := randDense(t, seed, 6, 6)
		want := mat.Det(toMat(a))
		got, err := matrix.Determinant(hide{a})
		require.NoError(t, err)
		assert.InDelta(t, want, got, epsLoose*math.Max(1, math.Abs(want)))
	}

	_, err = matrix.Determinant(mustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Determinant(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverse_Singular(t *testing.T) {
	t.Parallel()

	_, err := matrix.Inverse(mustDense(t, 2, 2, 1, 2, 2, 4))
	require.Error(t, err)
	assert.True(t, errors.Is(err, matrix.ErrSingular))
	assert.True(t, errors.Is(err, array.ErrSingularMatrix))

	_, err = matrix.Inverse(mustDense(t, 3, 3))
	assert.ErrorIs(t, err, matrix.ErrSingular, "zero matrix")
}

func TestInverse_MatchesGonum(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 4; seed++ {
		n := 2 + int(seed)
		a := diagDominant(t, seed, n)
		inv, err := matrix.Inverse(a)
		require.NoError(t, err)

		var want mat.Dense
		require.NoError(t, want.Inverse(toMat(a)))
		requireMatClose(t, &want, inv, epsLoose)

		id, err := matrix.Mul(a, inv)
		require.NoError(t, err)
		requireMatClose(t, mat.NewDiagDense(n, onesOf(n)), id, epsLoose)
	}
}

func TestInverse_Pivoting(t *testing.T) {
	t.Parallel()

	perm := mustDense(t, 2, 2, 0, 1, 1, 0)
	inv, err := matrix.Inverse(perm)
	require.NoError(t, err)
	assert.Equal(t, perm.Data(), inv.Data())
}

// |det| <= eps counts as singular; WithEpsilon(0) keeps only the zero-pivot rule.
func TestInverse_Epsilon(t *testing.T) {
	t.Parallel()

	small := mustDense(t, 3, 3, 1e-6, 0, 0, 0, 1e-6, 0, 0, 0, 1e-6)
	_, err := matrix.Inverse(small)
	assert.ErrorIs(t, err, matrix.ErrSingular)

	inv, err := matrix.Inverse(small, matrix.WithEpsilon(0))
	require.NoError(t, err)
	requireSliceClose(t, []float64{1e6, 0, 0, 0, 1e6, 0, 0, 0, 1e6}, inv.Data(), 1e-4)

	_, err = matrix.Inverse(mustDense(t, 1, 1, 1e-3), matrix.WithEpsilon(1e-2))
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func onesOf(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
