// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quickly/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestEigen_TwoByTwo(t *testing.T) {
	t.Parallel()

	ed, err := matrix.Eigen(mustDense(t, 2, 2, 2, 1, 1, 2))
	require.NoError(t, err)
	requireSliceClose(t, []float64{1, 3}, ed.Values, epsTight)

	h := 1 / math.Sqrt2
	// columns: (h, -h) for λ=1 and (h, h) for λ=3, first component positive
	requireSliceClose(t, []float64{h, h, -h, h}, ed.Vectors.Data(), epsTight)
}

func TestEigen_OneByOneAndDiagonal(t *testing.T) {
	t.Parallel()

	ed, err := matrix.Eigen(mustDense(t, 1, 1, -4))
	require.NoError(t, err)
	assert.Equal(t, []float64{-4}, ed.Values)
	assert.Equal(t, []float64{1}, ed.Vectors.Data())

	ed, err = matrix.Eigen(mustDense(t, 3, 3, 5, 0, 0, 0, -1, 0, 0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 2, 5}, ed.Values, "already diagonal: no rotation, sorted")
	assert.Equal(t, []float64{0, 0, 1, 1, 0, 0, 0, 1, 0}, ed.Vectors.Data())
}

// Values match gonum's EigenSym; A·v = λ·v; Q is orthonormal.
func TestEigen_MatchesGonum(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 4; seed++ {
		n := 3 + int(seed)
		a := randSymmetric(t, seed, n)
		ed, err := matrix.Eigen(a)
		require.NoError(t, err)

		var es mat.EigenSym
		require.True(t, es.Factorize(mat.NewSymDense(n, a.Data()), false))
		requireSliceClose(t, es.Values(nil), ed.Values, epsLoose)

		av, err := matrix.Mul(a, ed.Vectors)
		require.NoError(t, err)
		for j, lambda := range ed.Values {
			for i := 0; i < n; i++ {
				got, _ := av.At(i, j)
				vij, _ := ed.Vectors.At(i, j)
				require.InDelta(t, lambda*vij, got, epsLoose, "residual λ%d row %d", j, i)
			}
		}

		qt, err := matrix.Transpose(ed.Vectors)
		require.NoError(t, err)
		qtq, err := matrix.Mul(qt, ed.Vectors)
		require.NoError(t, err)
		requireMatClose(t, mat.NewDiagDense(n, onesOf(n)), qtq, epsLoose)
	}
}

func TestEigen_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Eigen(mustDense(t, 2, 2, 1, 2, 3, 4))
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, err = matrix.Eigen(mustDense(t, 2, 2, math.NaN(), 0, 0, 1))
	assert.ErrorIs(t, err, matrix.ErrEigenFailed)

	_, err = matrix.Eigen(mustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	dense := mustDense(t, 3, 3, 4, 1, 2, 1, 3, 1, 2, 1, 5)
	_, err = matrix.Eigen(dense, matrix.WithMaxIterations(1))
	assert.ErrorIs(t, err, matrix.ErrEigenFailed)

	_, err = matrix.Eigen(dense)
	assert.NoError(t, err)
}
