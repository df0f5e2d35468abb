// SPDX-License-Identifier: MIT

// Package distance - labeled distance matrix.
//
// Purpose:
//   - Attach an ordered id axis to a square *matrix.Dense.
//   - Keep the public surface read-only: every accessor returns a copy, so a
//     built Matrix can be shared between goroutines without locking.
//
// Invariants (established by Build, checked by Validate):
//   - len(ids) == Rows == Cols; ids strictly ascending.
//   - symmetric; zero diagonal.
//   - observed[i*n+j] == observed[j*n+i]; diagonal never observed.

package distance

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/tollmatrix/matrix"
)

// Matrix is a square cumulative-distance matrix indexed by point identifiers.
type Matrix[ID cmp.Ordered] struct {
	ids      []ID
	index    map[ID]int
	mat      *matrix.Dense
	observed []bool // row-major; true where at least one edge was seen
	eps      float64
}

// newMatrix allocates an all-zero n×n matrix over sorted ids.
func newMatrix[ID cmp.Ordered](ids []ID, eps float64, opts ...matrix.Option) (*Matrix[ID], error) {
	n := len(ids)
	mat, err := matrix.NewPreparedDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	index := make(map[ID]int, n)
	for i, id := range ids {
		index[id] = i
	}

	return &Matrix[ID]{
		ids:      ids,
		index:    index,
		mat:      mat,
		observed: make([]bool, n*n),
		eps:      eps,
	}, nil
}

// Len returns the number of points (rows == cols). A nil matrix has length 0.
func (m *Matrix[ID]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.ids)
}

// IDs returns a copy of the row/column identifiers in ascending order.
func (m *Matrix[ID]) IDs() []ID {
	if m == nil {
		return []ID{}
	}

	return slices.Clone(m.ids)
}

// Index returns the row/column position of id.
func (m *Matrix[ID]) Index(id ID) (int, bool) {
	if m == nil {
		return 0, false
	}
	i, ok := m.index[id]

	return i, ok
}

// lookup resolves a pair of ids to indices or returns ErrUnknownPoint.
func (m *Matrix[ID]) lookup(a, b ID) (int, int, error) {
	if m == nil {
		return 0, 0, matrix.ErrNilMatrix
	}
	i, ok := m.index[a]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnknownPoint, a)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnknownPoint, b)
	}

	return i, j, nil
}

// At returns the cumulative distance between a and b.
// Errors: ErrUnknownPoint if either id is not a row; matrix.ErrNilMatrix on nil receiver.
func (m *Matrix[ID]) At(a, b ID) (float64, error) {
	i, j, err := m.lookup(a, b)
	if err != nil {
		return 0, fmt.Errorf("Matrix.At: %w", err)
	}

	return m.mat.At(i, j)
}

// Observed reports whether at least one edge record connected a and b
// (in either direction). Unknown ids and self pairs report false.
func (m *Matrix[ID]) Observed(a, b ID) bool {
	i, j, err := m.lookup(a, b)
	if err != nil {
		return false
	}

	return m.observed[i*len(m.ids)+j]
}

// Row returns a copy of the distances from id to every point, in IDs() order.
func (m *Matrix[ID]) Row(id ID) ([]float64, error) {
	i, _, err := m.lookup(id, id)
	if err != nil {
		return nil, fmt.Errorf("Matrix.Row: %w", err)
	}

	return m.mat.Row(i)
}

// Dense returns a deep copy of the underlying numeric matrix.
func (m *Matrix[ID]) Dense() *matrix.Dense {
	if m == nil {
		return nil
	}

	return m.mat.Clone().(*matrix.Dense)
}

// Validate checks the distance-matrix contract: square, zero diagonal,
// symmetric within the build epsilon, and an id axis consistent with the data.
func (m *Matrix[ID]) Validate() error {
	if m == nil {
		return fmt.Errorf("Matrix.Validate: %w", matrix.ErrNilMatrix)
	}
	if len(m.ids) != m.mat.Rows() || len(m.index) != len(m.ids) {
		return fmt.Errorf("Matrix.Validate: %w", matrix.ErrDimensionMismatch)
	}

	return matrix.ValidateDistanceMatrix(m.mat, m.eps)
}

// String renders the matrix with its id axis, for diagnostics.
func (m *Matrix[ID]) String() string {
	if m == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%v\n%s", m.ids, m.mat)
}
