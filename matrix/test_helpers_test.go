// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels and validators.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/tollmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic (non-*Dense) fallback path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewPreparedDense(r, c, opts...)
	require.NoError(t, err)

	return m
}

// NewFilledDense allocates an r×c *Dense and fills it row-major from vals.
func NewFilledDense(t *testing.T, r, c int, vals []float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c, opts...)
	require.NoError(t, m.Fill(vals))

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact asserts m equals want cell by cell.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.Equalf(t, want[i][j], MustAt(t, m, i, j), "cell (%d,%d)", i, j)
		}
	}
}
