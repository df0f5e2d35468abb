// SPDX-License-Identifier: MIT

package distance

import "cmp"

// Unroll flattens m into one record per ordered off-diagonal pair, in
// row-major order of the sorted ids. Both (a,b) and (b,a) are emitted so
// consumers can filter by either endpoint as Start.
//
// The result has n·(n−1) rows; a nil or empty matrix yields an empty,
// non-nil slice. m is not modified, so repeated calls return equal output.
func Unroll[ID cmp.Ordered](m *Matrix[ID]) []UnrolledRecord[ID] {
	n := m.Len()
	if n < 2 {
		return []UnrolledRecord[ID]{}
	}

	out := make([]UnrolledRecord[ID], 0, n*(n-1))
	var v float64
	for i, a := range m.ids {
		for j, b := range m.ids {
			if i == j {
				continue
			}
			v, _ = m.mat.At(i, j) // indices come from the matrix's own axis
			out = append(out, UnrolledRecord[ID]{Start: a, End: b, Distance: v})
		}
	}

	return out
}
