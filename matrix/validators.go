// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for distance-matrix validation.
//  - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the strict upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence: NotNil → Square → structure.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// normalizeTol rejects NaN/Inf tolerances and flips negative ones.
func normalizeTol(tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, ErrNaNInf
	}

	return math.Abs(tol), nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| ≤ tol for all i<j.
// Equal infinities (+Inf on both sides) count as symmetric.
//
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on bad tol,
// ErrAsymmetry on violation (wrapped with the offending coordinates).
// Complexity: O(n²). Space: O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	tol, err := normalizeTol(tol)
	if err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // safe after shape validation
			aji, _ = m.At(j, i)
			if aij == aji {
				continue // covers matching infinities
			}
			if math.Abs(aij-aji) > tol || math.IsNaN(aij-aji) {
				return fmt.Errorf("ValidateSymmetric: (%d,%d)=%g vs (%d,%d)=%g: %w",
					i, j, aij, j, i, aji, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |A[i,i]| ≤ tol for every i.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrNonZeroDiagonal.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateZeroDiagonal", err)
	}
	tol, err := normalizeTol(tol)
	if err != nil {
		return validatorErrorf("ValidateZeroDiagonal", err)
	}

	var v float64
	for i := 0; i < m.Rows(); i++ {
		v, _ = m.At(i, i)
		if !(math.Abs(v) <= tol) { // NaN fails the comparison too
			return fmt.Errorf("ValidateZeroDiagonal: (%d,%d)=%g: %w", i, i, v, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateNonNegative checks every entry is >= 0 (+Inf is accepted, NaN is not).
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}

	// Fast-path: scan the flat buffer directly.
	if d, ok := m.(*Dense); ok {
		for k, v := range d.data {
			if !(v >= 0) {
				return fmt.Errorf("ValidateNonNegative: (%d,%d)=%g: %w", k/d.c, k%d.c, v, ErrNegative)
			}
		}

		return nil
	}

	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if !(v >= 0) {
				return fmt.Errorf("ValidateNonNegative: (%d,%d)=%g: %w", i, j, v, ErrNegative)
			}
		}
	}

	return nil
}

// ValidateDistanceMatrix – Composite: Square → ZeroDiagonal → Symmetric.
// This is the full structural contract of a distance matrix.
//
// AI-Hints:
//   - Non-negativity is deliberately not part of the contract: negative
//     distances are a loader concern. Call ValidateNonNegative explicitly when needed.
func ValidateDistanceMatrix(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateDistanceMatrix", err)
	}
	if err := ValidateZeroDiagonal(m, tol); err != nil {
		return validatorErrorf("ValidateDistanceMatrix", err)
	}
	if err := ValidateSymmetric(m, tol); err != nil {
		return validatorErrorf("ValidateDistanceMatrix", err)
	}

	return nil
}
