// SPDX-License-Identifier: MIT

package distance

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/tollmatrix/matrix"
)

// ShortestRoutes returns the multi-hop shortest-route matrix of m.
//
// Observed pairs are edges weighted by their cumulative distance; unobserved
// pairs start at +Inf. After Floyd–Warshall, reachable pairs hold the length
// of the shortest chain of observed edges and are marked observed; unreachable
// pairs stay +Inf. m is not modified.
//
// The result keeps m's id axis and stays symmetric with a zero diagonal.
//
// AI-Hints:
//   - Use this when downstream consumers expect a route length between points
//     that never appear in the same record (e.g. toll booths along a road).
func ShortestRoutes[ID cmp.Ordered](m *Matrix[ID]) (*Matrix[ID], error) {
	if m == nil {
		return nil, fmt.Errorf("ShortestRoutes: %w", matrix.ErrNilMatrix)
	}

	n := len(m.ids)
	out, err := newMatrix(slices.Clone(m.ids), m.eps, matrix.WithAllowInfDistances())
	if err != nil {
		return nil, fmt.Errorf("ShortestRoutes: %w", err)
	}

	// Seed: 0 diagonal, observed sums, +Inf elsewhere.
	seed := make([]float64, n*n)
	inf := math.Inf(1)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				seed[i*n+j] = 0
			case m.observed[i*n+j]:
				v, _ = m.mat.At(i, j)
				seed[i*n+j] = v
			default:
				seed[i*n+j] = inf
			}
		}
	}
	if err = out.mat.Fill(seed); err != nil {
		return nil, fmt.Errorf("ShortestRoutes: %w", err)
	}
	if err = matrix.FloydWarshall(out.mat); err != nil {
		return nil, fmt.Errorf("ShortestRoutes: %w", err)
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v, _ = out.mat.At(i, j)
			out.observed[i*n+j] = !math.IsInf(v, 1)
		}
	}

	return out, nil
}
