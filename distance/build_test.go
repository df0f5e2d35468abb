package distance_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tollmatrix/distance"
	"github.com/katalvlaran/tollmatrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// xyzEdges is the reference scenario: X–Y observed twice, Y–Z once, X–Z never.
func xyzEdges() []distance.EdgeRecord[string] {
	return []distance.EdgeRecord[string]{
		{Start: "X", End: "Y", Distance: 10},
		{Start: "Y", End: "Z", Distance: 5},
		{Start: "X", End: "Y", Distance: 3},
	}
}

func mustAt[ID string | int](t *testing.T, m *distance.Matrix[ID], a, b ID) float64 {
	t.Helper()
	v, err := m.At(a, b)
	require.NoError(t, err)

	return v
}

func TestBuild_XYZScenario(t *testing.T) {
	t.Parallel()

	m, err := distance.Build(xyzEdges())
	require.NoError(t, err)
	require.Equal(t, []string{"X", "Y", "Z"}, m.IDs())

	want := map[[2]string]float64{
		{"X", "X"}: 0, {"X", "Y"}: 13, {"X", "Z"}: 0,
		{"Y", "X"}: 13, {"Y", "Y"}: 0, {"Y", "Z"}: 5,
		{"Z", "X"}: 0, {"Z", "Y"}: 5, {"Z", "Z"}: 0,
	}
	for pair, d := range want {
		assert.Equalf(t, d, mustAt(t, m, pair[0], pair[1]), "m[%s][%s]", pair[0], pair[1])
	}
	require.NoError(t, m.Validate())

	assert.True(t, m.Observed("X", "Y"))
	assert.True(t, m.Observed("Z", "Y"))
	assert.False(t, m.Observed("X", "Z"))
	assert.False(t, m.Observed("X", "X"))
	assert.False(t, m.Observed("X", "nope"))
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	m, err := distance.Build[string](nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.IDs())
	require.NoError(t, m.Validate())
}

func TestBuild_ReverseDirectionAccumulates(t *testing.T) {
	t.Parallel()

	m, err := distance.Build([]distance.EdgeRecord[int]{
		{Start: 1001402, End: 1001400, Distance: 9.7},
		{Start: 1001400, End: 1001402, Distance: 0.3},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1001400, 1001402}, m.IDs())
	assert.InDelta(t, 10.0, mustAt(t, m, 1001400, 1001402), 1e-12)
	assert.InDelta(t, 10.0, mustAt(t, m, 1001402, 1001400), 1e-12)
}

func TestBuild_SelfLoopsNeverTouchDiagonal(t *testing.T) {
	t.Parallel()

	m, err := distance.Build([]distance.EdgeRecord[string]{
		{Start: "A", End: "A", Distance: 7},
		{Start: "A", End: "B", Distance: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, mustAt(t, m, "A", "A"))
	assert.Equal(t, 2.0, mustAt(t, m, "B", "A"))
}

func TestBuild_IsolatedPolicy(t *testing.T) {
	t.Parallel()

	edges := []distance.EdgeRecord[string]{
		{Start: "A", End: "B", Distance: 1},
		{Start: "C", End: "C", Distance: 4}, // self-loop only: isolated
	}
	points := []string{"D", "A"}

	kept, err := distance.BuildWithPoints(edges, points)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, kept.IDs())
	row, err := kept.Row("D")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, row)

	dropped, err := distance.BuildWithPoints(edges, points, distance.WithIsolated(distance.DropIsolated))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, dropped.IDs())

	_, ok := dropped.Index("C")
	assert.False(t, ok)
}

func TestBuild_NonFiniteSumIsRejected(t *testing.T) {
	t.Parallel()

	_, err := distance.Build([]distance.EdgeRecord[string]{
		{Start: "A", End: "B", Distance: math.Inf(1)},
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestBuild_NegativeDistancesPassThrough(t *testing.T) {
	t.Parallel()

	m, err := distance.Build([]distance.EdgeRecord[string]{{Start: "A", End: "B", Distance: -2}})
	require.NoError(t, err)
	assert.Equal(t, -2.0, mustAt(t, m, "A", "B"))
	require.ErrorIs(t, matrix.ValidateNonNegative(m.Dense()), matrix.ErrNegative)
}

func TestMatrix_Accessors(t *testing.T) {
	t.Parallel()

	m, err := distance.Build(xyzEdges())
	require.NoError(t, err)

	_, err = m.At("X", "Q")
	require.ErrorIs(t, err, distance.ErrUnknownPoint)
	_, err = m.Row("Q")
	require.ErrorIs(t, err, distance.ErrUnknownPoint)

	ids := m.IDs()
	ids[0] = "mutated"
	assert.Equal(t, "X", m.IDs()[0], "IDs returns a copy")

	d := m.Dense()
	require.NoError(t, d.Set(0, 1, 99))
	assert.Equal(t, 13.0, mustAt(t, m, "X", "Y"), "Dense returns a copy")

	var nilM *distance.Matrix[string]
	assert.Equal(t, 0, nilM.Len())
	require.ErrorIs(t, nilM.Validate(), matrix.ErrNilMatrix)
	_, err = nilM.At("X", "Y")
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	assert.Equal(t, "<nil>", nilM.String())
}

func TestIsolatedPolicy_Parse(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]distance.IsolatedPolicy{
		"": distance.KeepIsolated, "keep": distance.KeepIsolated, " DROP ": distance.DropIsolated,
	} {
		got, err := distance.ParseIsolatedPolicy(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := distance.ParseIsolatedPolicy("maybe")
	require.ErrorIs(t, err, distance.ErrInvalidPolicy)

	assert.Equal(t, "drop", distance.DropIsolated.String())
	assert.Panics(t, func() { distance.WithIsolated(distance.IsolatedPolicy(7)) })
	assert.Panics(t, func() { distance.WithEpsilon(-1) })
}
