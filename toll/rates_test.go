package toll_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tollmatrix/distance"
	"github.com/katalvlaran/tollmatrix/toll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unrolled() []distance.UnrolledRecord[int] {
	return []distance.UnrolledRecord[int]{
		{Start: 1001400, End: 1001402, Distance: 10},
		{Start: 1001402, End: 1001400, Distance: 10},
		{Start: 1001400, End: 1001404, Distance: 0},
	}
}

func TestAnnotate_DefaultRates(t *testing.T) {
	t.Parallel()

	tbl, err := toll.Annotate(unrolled(), toll.DefaultRates())
	require.NoError(t, err)
	assert.Equal(t, []string{"moto", "car", "rv", "bus", "truck"}, tbl.Categories)
	require.Len(t, tbl.Rows, 3)

	want := []float64{8, 12, 15, 22, 36}
	for k, w := range want {
		assert.InDelta(t, w, tbl.Rows[0].Tolls[k], 1e-9)
	}
	assert.Equal(t, 1001402, tbl.Rows[1].Start, "row order preserved")
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, tbl.Rows[2].Tolls)

	truck, ok := tbl.Toll(0, "truck")
	require.True(t, ok)
	assert.InDelta(t, 36.0, truck, 1e-9)
	_, ok = tbl.Toll(0, "tram")
	assert.False(t, ok)
	_, ok = tbl.Toll(9, "car")
	assert.False(t, ok)
}

func TestAnnotate_EmptyRows(t *testing.T) {
	t.Parallel()

	tbl, err := toll.Annotate[int](nil, toll.DefaultRates())
	require.NoError(t, err)
	assert.Empty(t, tbl.Rows)
	assert.Len(t, tbl.Categories, 5)
}

func TestValidateRates(t *testing.T) {
	t.Parallel()

	cases := map[string][]toll.Rate{
		"empty":     nil,
		"blank":     {{Category: " ", Coefficient: 1}},
		"duplicate": {{Category: "car", Coefficient: 1}, {Category: "car", Coefficient: 2}},
		"negative":  {{Category: "car", Coefficient: -1}},
		"nan":       {{Category: "car", Coefficient: math.NaN()}},
	}
	for name, rates := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := toll.Annotate(unrolled(), rates)
			require.ErrorIs(t, err, toll.ErrInvalidRate)
		})
	}
}
