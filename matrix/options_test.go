package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tollmatrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOptions_Defaults(t *testing.T) {
	t.Parallel()

	o := matrix.NewOptions()
	assert.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	assert.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
	assert.Equal(t, matrix.DefaultAllowInfDistances, o.AllowInfDistances())
}

func TestNewOptions_LastWins(t *testing.T) {
	t.Parallel()

	o := matrix.NewOptions(
		matrix.WithEpsilon(1e-3),
		matrix.WithNoValidateNaNInf(),
		matrix.WithValidateNaNInf(),
		matrix.WithAllowInfDistances(),
		nil,
	)
	assert.Equal(t, 1e-3, o.Epsilon())
	assert.True(t, o.ValidateNaNInf())
	assert.True(t, o.AllowInfDistances())
}

func TestWithEpsilon_PanicsOnNonsense(t *testing.T) {
	t.Parallel()

	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) })
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	out, err := matrix.Apply(m, func(i, j int, v float64) float64 {
		if i == j {
			return 0
		}
		return v * 10
	})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 20}, {30, 0}}, out)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)

	out, err = matrix.Apply(hide{m}, func(_, _ int, v float64) float64 { return -v })
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-1, -2}, {-3, -4}}, out)

	_, err = matrix.Apply(m, func(_, _ int, _ float64) float64 { return math.NaN() })
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.Apply(nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
