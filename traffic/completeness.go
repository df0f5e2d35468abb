// SPDX-License-Identifier: MIT

package traffic

import (
	"cmp"
	"slices"
	"time"

	"github.com/katalvlaran/tollmatrix/toll"
)

// Span is one observation window of a (ID, ID2) pair, possibly crossing days.
// A span whose end day precedes its start day (Monday-first) wraps through Sunday.
type Span struct {
	ID        int64
	ID2       int64
	StartDay  time.Weekday
	StartTime toll.Clock
	EndDay    time.Weekday
	EndTime   toll.Clock
}

// Completeness reports whether a pair's spans cover the whole week.
type Completeness struct {
	ID         int64
	ID2        int64
	Incomplete bool
}

// interval is an inclusive range of seconds within a day.
type interval struct{ from, to toll.Clock }

// dayIndex maps a weekday to its Monday-first position.
func dayIndex(d time.Weekday) int { return (int(d) + 6) % 7 }

// TimeCheck groups spans by (ID, ID2) and reports, sorted by pair, whether
// each pair leaves any second of the 7×24h week uncovered.
func TimeCheck(spans []Span) []Completeness {
	type pair struct{ a, b int64 }
	cover := make(map[pair]*[7][]interval)

	for _, s := range spans {
		k := pair{s.ID, s.ID2}
		week, ok := cover[k]
		if !ok {
			week = new([7][]interval)
			cover[k] = week
		}
		from, to := dayIndex(s.StartDay), dayIndex(s.EndDay)
		if to < from || (to == from && s.EndTime < s.StartTime) {
			to += 7 // wraps through Sunday
		}
		for d := from; d <= to; d++ {
			iv := interval{from: 0, to: toll.EndOfDay}
			if d == from {
				iv.from = s.StartTime
			}
			if d == to {
				iv.to = s.EndTime
			}
			week[d%7] = append(week[d%7], iv)
		}
	}

	out := make([]Completeness, 0, len(cover))
	for k, week := range cover {
		complete := true
		for d := range week {
			if !coversDay(week[d]) {
				complete = false
				break
			}
		}
		out = append(out, Completeness{ID: k.a, ID2: k.b, Incomplete: !complete})
	}
	slices.SortFunc(out, func(x, y Completeness) int {
		if c := cmp.Compare(x.ID, y.ID); c != 0 {
			return c
		}
		return cmp.Compare(x.ID2, y.ID2)
	})

	return out
}

// coversDay reports whether the union of ivs covers 00:00:00..23:59:59.
func coversDay(ivs []interval) bool {
	if len(ivs) == 0 {
		return false
	}
	sorted := slices.Clone(ivs)
	slices.SortFunc(sorted, func(a, b interval) int { return cmp.Compare(a.from, b.from) })

	next := toll.Clock(0) // first second not yet covered
	for _, iv := range sorted {
		if iv.from > next {
			return false
		}
		if iv.to+1 > next {
			next = iv.to + 1
		}
	}

	return next > toll.EndOfDay
}
