// SPDX-License-Identifier: MIT

// Package loader reads delimited text into typed records and writes result
// tables back out.
//
// Purpose:
//   - Parse edge records (start, end, distance) for distance.Build.
//   - Parse vehicle-count rows (traffic.Record) and observation spans (traffic.Span).
//   - Write matrices, unrolled rows, id lists and toll tables as CSV.
//
// Boundary rules:
//   - All cells are read as strings (no type sniffing); each row is parsed and
//     validated before anything reaches the builder.
//   - A malformed row fails the whole read with ErrMalformedRecord naming the
//     1-based data row and the field; nothing is returned partially.
//   - Empty input, or a header with no rows, yields an empty, non-nil slice.
//
// Tables are handled through gota dataframes; row structs are checked with
// go-playground/validator tags.
package loader
