package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tollmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators_NilAndShape(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateZeroDiagonal(MustDense(t, 3, 2), 0), matrix.ErrNonSquare)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := NewFilledDense(t, 3, 3, []float64{
		0, 13, 0,
		13, 0, 5,
		0, 5, 0,
	})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.NoError(t, matrix.ValidateSymmetric(hide{sym}, 0))

	skew := NewFilledDense(t, 2, 2, []float64{0, 1, 1 + 1e-6, 0})
	require.ErrorIs(t, matrix.ValidateSymmetric(skew, 1e-9), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(skew, 1e-3))
	require.NoError(t, matrix.ValidateSymmetric(skew, -1e-3), "negative tol is normalized")
	require.ErrorIs(t, matrix.ValidateSymmetric(skew, math.NaN()), matrix.ErrNaNInf)

	inf := NewFilledDense(t, 2, 2, []float64{0, math.Inf(1), math.Inf(1), 0}, matrix.WithAllowInfDistances())
	require.NoError(t, matrix.ValidateSymmetric(inf, 0))
}

func TestValidateZeroDiagonal(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{0, 3, 3, 1e-12})
	require.NoError(t, matrix.ValidateZeroDiagonal(m, 1e-9))
	require.ErrorIs(t, matrix.ValidateZeroDiagonal(m, 0), matrix.ErrNonZeroDiagonal)
}

func TestValidateNonNegative(t *testing.T) {
	t.Parallel()

	ok := NewFilledDense(t, 2, 2, []float64{0, 1, 2, 3})
	require.NoError(t, matrix.ValidateNonNegative(ok))
	require.NoError(t, matrix.ValidateNonNegative(hide{ok}))

	neg := NewFilledDense(t, 2, 2, []float64{0, -1, 2, 3})
	require.ErrorIs(t, matrix.ValidateNonNegative(neg), matrix.ErrNegative)
	require.ErrorIs(t, matrix.ValidateNonNegative(hide{neg}), matrix.ErrNegative)
}

func TestValidateDistanceMatrix_Priority(t *testing.T) {
	t.Parallel()

	// Both diagonal and symmetry are broken: diagonal is reported first.
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 0})
	require.ErrorIs(t, matrix.ValidateDistanceMatrix(m, 0), matrix.ErrNonZeroDiagonal)

	empty := MustDense(t, 0, 0)
	require.NoError(t, matrix.ValidateDistanceMatrix(empty, 0))
}
