// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce the numeric policy (options.go) from a single place: checkValue.
//
// Complexity quicksheet:
//   - NewDense/NewPreparedDense: O(r*c) zero-init; At/Set: O(1); Clone/Fill: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxRow  = "Row"
	ctxFill = "Fill"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices:
// "Dense.<method>(row,col): %w". Keeps the sentinel reachable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); zero is legal via NewPreparedDense.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf/allowInf carry the numeric policy the matrix was created with.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
	allowInf       bool
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix with the default numeric policy.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Public constructor forbids empty dimensions to avoid accidental 0×0
// matrices; use NewPreparedDense when empty is meaningful.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return NewPreparedDense(rows, cols)
}

// NewPreparedDense creates an r×c zero matrix with an explicit numeric policy.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: resolve options (epsilon is irrelevant here; NaN/Inf policy is kept).
//   - Stage 3: allocate len(rows*cols) buffer (possibly zero).
//
// AI-Hints:
//   - Use WithAllowInfDistances for shortest-route matrices.
func NewPreparedDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	o := NewOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
		allowInf:       o.allowInfDistances,
	}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// checkValue applies the numeric policy to a single value.
func (m *Dense) checkValue(v float64) error {
	if !m.validateNaNInf {
		return nil
	}
	if math.IsNaN(v) || math.IsInf(v, -1) {
		return ErrNaNInf
	}
	if math.IsInf(v, 1) && !m.allowInf {
		return ErrNaNInf
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Bounds are checked before the numeric policy.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err = m.checkValue(v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Fill overwrites the whole buffer from a row-major slice of length r*c.
// Implementation:
//   - Stage 1: check length; else ErrDimensionMismatch.
//   - Stage 2: validate every value against the numeric policy first,
//     so a failing Fill leaves the matrix untouched.
//   - Stage 3: copy.
func (m *Dense) Fill(data []float64) error {
	if len(data) != len(m.data) {
		return matrixErrorf("Dense."+ctxFill, ErrDimensionMismatch)
	}
	for k, v := range data {
		if err := m.checkValue(v); err != nil {
			return denseErrorf(ctxFill, k/max(m.c, 1), k%max(m.c, 1), err)
		}
	}
	copy(m.data, data)

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
		allowInf:       m.allowInf,
	}
}

// String provides a readable row-wise dump for diagnostics.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
