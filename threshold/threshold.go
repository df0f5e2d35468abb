// SPDX-License-Identifier: MIT

// Package threshold finds points whose mean distance is close to a
// reference point's mean distance.
//
// The mean distance of an id is the arithmetic mean of Distance over the
// unrolled rows where that id is Start. An id qualifies when its mean lies in
// [r·(1−p), r·(1+p)] (both bounds inclusive), where r is the reference mean
// and p the configured fraction (10% by default).
package threshold

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/tollmatrix/distance"
)

// DefaultPercent is the ±fraction around the reference mean.
const DefaultPercent = 0.10

const panicPercentInvalid = "threshold: WithPercent: p must be finite, non-negative"

// ErrNotFound is matched (via errors.Is) by every *NotFoundError.
var ErrNotFound = errors.New("threshold: reference id not found")

// NotFoundError reports a reference id with no rows as Start.
// It lets callers tell "unknown reference" apart from "no other id matched".
type NotFoundError[ID cmp.Ordered] struct {
	Ref ID
}

// Error implements error.
func (e *NotFoundError[ID]) Error() string {
	return fmt.Sprintf("threshold: reference id %v not found among id_start rows", e.Ref)
}

// Unwrap exposes ErrNotFound for errors.Is.
func (e *NotFoundError[ID]) Unwrap() error { return ErrNotFound }

// Option configures WithinPercent.
type Option func(*options)

type options struct {
	percent float64
}

// WithPercent sets the ±fraction (0.1 == 10%). Panics on negative or non-finite p.
func WithPercent(p float64) Option {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		panic(panicPercentInvalid)
	}

	return func(o *options) { o.percent = p }
}

// Bounds returns the inclusive [lo, hi] interval for a reference mean.
// A negative mean (only possible with negative distances) still yields lo ≤ hi.
func Bounds(mean, percent float64) (lo, hi float64) {
	delta := mean * percent
	lo, hi = mean-delta, mean+delta
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo, hi
}

// MeanDistances returns, per Start id, the mean Distance over its rows.
func MeanDistances[ID cmp.Ordered](rows []distance.UnrolledRecord[ID]) map[ID]float64 {
	sums := make(map[ID]float64)
	counts := make(map[ID]int)
	for _, r := range rows {
		sums[r.Start] += r.Distance
		counts[r.Start]++
	}
	for id, s := range sums {
		sums[id] = s / float64(counts[id])
	}

	return sums
}

// WithinPercent returns, in ascending order, every Start id whose mean
// distance lies within ±percent of ref's mean distance. The reference itself
// is included.
//
// Errors:
//   - *NotFoundError[ID] (errors.Is ErrNotFound) when no row has Start == ref.
//
// Complexity: O(R + k log k) for R rows and k distinct Start ids.
func WithinPercent[ID cmp.Ordered](rows []distance.UnrolledRecord[ID], ref ID, opts ...Option) ([]ID, error) {
	o := options{percent: DefaultPercent}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	means := MeanDistances(rows)
	refMean, ok := means[ref]
	if !ok {
		return nil, &NotFoundError[ID]{Ref: ref}
	}
	lo, hi := Bounds(refMean, o.percent)

	out := make([]ID, 0, len(means))
	for id, mean := range means {
		if mean >= lo && mean <= hi {
			out = append(out, id)
		}
	}
	slices.Sort(out)

	return out, nil
}
