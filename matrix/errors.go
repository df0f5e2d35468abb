// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels and validators return these sentinels (optionally wrapped with
// call-site context via %w). Tests MUST check them via errors.Is.
// Panics are reserved for option constructors receiving nonsensical values.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape/index/NaN -> nil -> dimension mismatch -> structural violations.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are invalid
	// (non-positive for NewDense, negative for NewPreparedDense).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// or a flat buffer whose length does not match rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals that a diagonal entry deviates from 0 by more than eps.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNegative signals a negative entry where distances must be >= 0.
	ErrNegative = errors.New("matrix: negative entry")

	// ErrNaNInf signals a NaN or Inf value that the numeric policy rejects.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf wraps err with an operation tag: "<op>: <err>".
// The sentinel stays reachable through errors.Is.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
