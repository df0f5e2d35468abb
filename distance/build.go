// SPDX-License-Identifier: MIT

// Package distance - matrix construction.
//
// Implementation notes:
//   - One pass over the records accumulates into the upper triangle keyed by
//     sorted index pair; a second pass mirrors into the lower triangle.
//     This is O(E + n²) instead of scanning every record for every pair,
//     and sums each pair's records in input order.
//   - Self-loop records (Start == End) register the point but never touch the
//     diagonal.

package distance

import (
	"cmp"
	"fmt"
	"slices"
)

// Build constructs the symmetric cumulative-distance matrix of edges.
// Equivalent to BuildWithPoints(edges, nil, opts...).
//
// Empty input yields an empty matrix (Len()==0) and no error.
func Build[ID cmp.Ordered](edges []EdgeRecord[ID], opts ...Option) (*Matrix[ID], error) {
	return BuildWithPoints(edges, nil, opts...)
}

// BuildWithPoints constructs the matrix over the ids found in edges plus the
// declared points.
// Implementation:
//   - Stage 1: collect ids (edges + points), mark which are touched by an
//     off-diagonal record, apply the isolated policy, sort ascending.
//   - Stage 2: allocate an all-zero n×n matrix.
//   - Stage 3: accumulate every off-diagonal record into its unordered pair.
//   - Stage 4: write each pair sum into both (a,b) and (b,a).
//
// Errors:
//   - matrix.ErrNaNInf (wrapped with the pair) when an accumulated sum is not
//     finite. Negative distances are accepted; validating them is the loader's job.
//
// Complexity: Time O(E + n log n + n²), Space O(n²).
func BuildWithPoints[ID cmp.Ordered](edges []EdgeRecord[ID], points []ID, opts ...Option) (*Matrix[ID], error) {
	o := NewOptions(opts...)

	// Stage 1: id set.
	touched := make(map[ID]bool, len(points)+2*len(edges))
	for _, id := range points {
		if _, ok := touched[id]; !ok {
			touched[id] = false
		}
	}
	for _, e := range edges {
		link := e.Start != e.End
		touched[e.Start] = touched[e.Start] || link
		touched[e.End] = touched[e.End] || link
	}
	ids := make([]ID, 0, len(touched))
	for id, linked := range touched {
		if !linked && o.isolated == DropIsolated {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)

	// Stage 2: storage.
	m, err := newMatrix(ids, o.eps)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	n := len(ids)

	// Stage 3: accumulate into the upper triangle.
	sums := make([]float64, n*n)
	var i, j int
	for _, e := range edges {
		if e.Start == e.End {
			continue
		}
		i, j = m.index[e.Start], m.index[e.End]
		if i > j {
			i, j = j, i
		}
		sums[i*n+j] += e.Distance
		m.observed[i*n+j] = true
	}

	// Stage 4: mirror.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if !m.observed[i*n+j] {
				continue // already zero
			}
			m.observed[j*n+i] = true
			if err = m.mat.Set(i, j, sums[i*n+j]); err != nil {
				return nil, fmt.Errorf("Build: pair (%v,%v): %w", ids[i], ids[j], err)
			}
			_ = m.mat.Set(j, i, sums[i*n+j]) // same value, same policy
		}
	}

	return m, nil
}
