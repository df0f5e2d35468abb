// SPDX-License-Identifier: MIT

// Package traffic holds per-route vehicle-count analyses: a car-count pivot
// matrix, bucket counts, outlier indexes, route filtering and a matrix
// multiplier. Weekly timestamp completeness lives in completeness.go.
//
// Input rows come from loader.ReadTraffic (columns id_1,id_2,route,moto,car,rv,bus,truck).
package traffic

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/tollmatrix/matrix"
)

// Record is one row of vehicle counts between two points on a route.
type Record struct {
	ID1   int64
	ID2   int64
	Route string
	Moto  float64
	Car   float64
	RV    float64
	Bus   float64
	Truck float64
}

// Car bucket names returned by TypeCounts.
const (
	TypeLow    = "low"
	TypeMedium = "medium"
	TypeHigh   = "high"
)

// Bucket edges for TypeCounts: low < 15 ≤ medium < 25 ≤ high.
const (
	mediumFrom = 15.0
	highFrom   = 25.0
)

// Pivot is a square matrix of values keyed by point id on both axes.
// Unlike distance.Matrix it is directed: cell (a,b) holds the value
// recorded for id_1=a, id_2=b.
type Pivot struct {
	IDs []int64
	Mat *matrix.Dense
}

// At returns the cell for (row, col) ids.
func (p *Pivot) At(row, col int64) (float64, error) {
	i, ok := slices.BinarySearch(p.IDs, row)
	if !ok {
		return 0, fmt.Errorf("traffic: unknown id %d", row)
	}
	j, ok := slices.BinarySearch(p.IDs, col)
	if !ok {
		return 0, fmt.Errorf("traffic: unknown id %d", col)
	}

	return p.Mat.At(i, j)
}

// CarMatrix pivots Car counts with id_1 as rows and id_2 as columns.
// Axes are the sorted union of id_1 and id_2; missing cells are 0, the
// diagonal is forced to 0, and the last record wins on duplicate pairs.
func CarMatrix(records []Record) (*Pivot, error) {
	seen := make(map[int64]struct{}, 2*len(records))
	for _, r := range records {
		seen[r.ID1] = struct{}{}
		seen[r.ID2] = struct{}{}
	}
	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	mat, err := matrix.NewPreparedDense(len(ids), len(ids))
	if err != nil {
		return nil, fmt.Errorf("CarMatrix: %w", err)
	}
	var i, j int
	for _, r := range records {
		if r.ID1 == r.ID2 {
			continue
		}
		i, _ = slices.BinarySearch(ids, r.ID1)
		j, _ = slices.BinarySearch(ids, r.ID2)
		if err = mat.Set(i, j, r.Car); err != nil {
			return nil, fmt.Errorf("CarMatrix: (%d,%d): %w", r.ID1, r.ID2, err)
		}
	}

	return &Pivot{IDs: ids, Mat: mat}, nil
}

// MultiplyMatrix returns a copy of p where values above 20 are scaled by
// 0.75 and all others by 1.25, rounded to one decimal.
func MultiplyMatrix(p *Pivot) (*Pivot, error) {
	if p == nil {
		return nil, fmt.Errorf("MultiplyMatrix: %w", matrix.ErrNilMatrix)
	}
	out, err := matrix.Apply(p.Mat, func(_, _ int, v float64) float64 {
		if v > 20 {
			v *= 0.75
		} else {
			v *= 1.25
		}
		return math.Round(v*10) / 10
	})
	if err != nil {
		return nil, fmt.Errorf("MultiplyMatrix: %w", err)
	}

	return &Pivot{IDs: slices.Clone(p.IDs), Mat: out}, nil
}

// TypeCounts buckets records by Car count into low/medium/high.
// Only buckets with at least one record appear in the map.
func TypeCounts(records []Record) map[string]int {
	counts := make(map[string]int, 3)
	for _, r := range records {
		switch {
		case r.Car < mediumFrom:
			counts[TypeLow]++
		case r.Car < highFrom:
			counts[TypeMedium]++
		default:
			counts[TypeHigh]++
		}
	}

	return counts
}

// SortedTypes returns the keys of counts in alphabetical order.
func SortedTypes(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// BusIndexes returns, ascending, the positions of records whose Bus count
// is greater than twice the mean Bus count.
func BusIndexes(records []Record) []int {
	out := []int{}
	if len(records) == 0 {
		return out
	}
	var sum float64
	for _, r := range records {
		sum += r.Bus
	}
	limit := 2 * sum / float64(len(records))
	for i, r := range records {
		if r.Bus > limit {
			out = append(out, i)
		}
	}

	return out
}

// FilterRoutes returns, sorted, the routes whose mean Truck count exceeds 7.
func FilterRoutes(records []Record) []string {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		sums[r.Route] += r.Truck
		counts[r.Route]++
	}
	out := []string{}
	for route, s := range sums {
		if s/float64(counts[route]) > 7 {
			out = append(out, route)
		}
	}
	slices.Sort(out)

	return out
}
