// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage used by tollmatrix.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return errors instead of panicking.
//   - A numeric policy (finite-only by default, +Inf allowed for
//     distance matrices that encode "no route").
//   - Validators for the structural contracts of distance matrices:
//     square, symmetric within epsilon, zero diagonal, non-negative.
//   - FloydWarshall, an in-place all-pairs shortest path kernel.
//
// Matrices here are anonymous: rows and columns are plain indices. The
// distance package attaches point identifiers and owns the ordering.
//
// Empty (0×0) matrices are legal through NewPreparedDense so that an empty
// batch of records can still produce a well-formed, empty distance matrix.
package matrix
