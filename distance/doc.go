// SPDX-License-Identifier: MIT

// Package distance builds symmetric cumulative-distance matrices from
// point-to-point edge records and flattens them back into long form.
//
// 🚀 What it does
//
//	Build    : edges → n×n matrix, rows/cols in ascending id order,
//	            m[a][b] = m[b][a] = Σ distance over (a,b) and (b,a) records,
//	            diagonal always 0.
//	Unroll   : matrix → n·(n−1) (id_start, id_end, distance) rows,
//	            both directions materialized, self pairs excluded.
//	ShortestRoutes: observed pairs as edges, Floyd–Warshall closure,
//	            +Inf where no route exists.
//
// ⚙️ Usage:
//
//	edges := []distance.EdgeRecord[string]{
//		{Start: "X", End: "Y", Distance: 10},
//		{Start: "Y", End: "Z", Distance: 5},
//		{Start: "X", End: "Y", Distance: 3},
//	}
//	m, err := distance.Build(edges)
//	rows := distance.Unroll(m) // (X,Y,13) (X,Z,0) (Y,X,13) (Y,Z,5) (Z,X,0) (Z,Y,5)
//
// Identifiers are any cmp.Ordered type; the builder sorts them to fix a
// canonical order, so output is deterministic for a given input multiset.
//
// Isolated points (ids declared through BuildWithPoints, or touched only by
// self-loop records) are kept as zero rows by default; WithIsolated(DropIsolated)
// removes them.
//
// All functions are pure: no shared state, no I/O, safe for concurrent callers.
package distance
