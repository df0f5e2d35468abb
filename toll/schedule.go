// SPDX-License-Identifier: MIT

// Package toll - time-windowed schedule.
//
// Invariants enforced by Validate:
//   - every weekday has at least one window;
//   - per weekday, windows sorted by From are contiguous: first From is
//     00:00:00, each From equals the previous To, last To is 23:59:59;
//   - From < To inside a window; Factor finite and >= 0.

package toll

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/katalvlaran/tollmatrix/distance"
)

// ErrInvalidSchedule reports a schedule that does not tile the week.
var ErrInvalidSchedule = errors.New("toll: invalid schedule")

// Window applies Factor to tolls between From and To on each of Days.
type Window struct {
	Days   []time.Weekday
	From   Clock
	To     Clock
	Factor float64
}

// Schedule is a set of windows that together cover the whole week.
type Schedule []Window

// DefaultSchedule returns the standard weekday/weekend discount table.
func DefaultSchedule() Schedule {
	weekdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	weekend := []time.Weekday{time.Saturday, time.Sunday}

	return Schedule{
		{Days: weekdays, From: MustClock(0, 0, 0), To: MustClock(10, 0, 0), Factor: 0.8},
		{Days: weekdays, From: MustClock(10, 0, 0), To: MustClock(18, 0, 0), Factor: 1.2},
		{Days: weekdays, From: MustClock(18, 0, 0), To: EndOfDay, Factor: 0.8},
		{Days: weekend, From: MustClock(0, 0, 0), To: EndOfDay, Factor: 0.7},
	}
}

// daySlot is one window as seen from a single weekday.
type daySlot struct {
	from, to Clock
	factor   float64
}

// byDay groups windows per weekday, each day's slots sorted by start.
func (s Schedule) byDay() map[time.Weekday][]daySlot {
	days := make(map[time.Weekday][]daySlot, len(week))
	for _, w := range s {
		for _, d := range w.Days {
			days[d] = append(days[d], daySlot{from: w.From, to: w.To, factor: w.Factor})
		}
	}
	for d := range days {
		slices.SortStableFunc(days[d], func(a, b daySlot) int { return cmp.Compare(a.from, b.from) })
	}

	return days
}

// Validate checks that the schedule tiles every weekday exactly once.
func (s Schedule) Validate() error {
	for i, w := range s {
		if len(w.Days) == 0 {
			return fmt.Errorf("%w: window #%d has no days", ErrInvalidSchedule, i)
		}
		if w.From >= w.To {
			return fmt.Errorf("%w: window #%d: %s is not before %s", ErrInvalidSchedule, i, w.From, w.To)
		}
		if math.IsNaN(w.Factor) || math.IsInf(w.Factor, 0) || w.Factor < 0 {
			return fmt.Errorf("%w: window #%d: factor %g", ErrInvalidSchedule, i, w.Factor)
		}
		for _, d := range w.Days {
			if d < time.Sunday || d > time.Saturday {
				return fmt.Errorf("%w: window #%d: weekday %d", ErrInvalidSchedule, i, int(d))
			}
		}
	}

	days := s.byDay()
	for _, d := range week {
		slots := days[d]
		if len(slots) == 0 {
			return fmt.Errorf("%w: %s is not covered", ErrInvalidSchedule, d)
		}
		next := Clock(0)
		for _, sl := range slots {
			if sl.from != next {
				return fmt.Errorf("%w: %s: gap or overlap at %s (window starts %s)", ErrInvalidSchedule, d, next, sl.from)
			}
			next = sl.to
		}
		if next != EndOfDay {
			return fmt.Errorf("%w: %s ends at %s, want %s", ErrInvalidSchedule, d, next, EndOfDay)
		}
	}

	return nil
}

// TimedRecord is a rated row restricted to one weekday time window.
type TimedRecord[ID cmp.Ordered] struct {
	distance.UnrolledRecord[ID]
	Day   time.Weekday
	From  Clock
	To    Clock
	Tolls []float64
}

// TimedTable holds timed rows with their toll column names.
type TimedTable[ID cmp.Ordered] struct {
	Categories []string
	Rows       []TimedRecord[ID]
}

// ApplySchedule expands each rated row into one row per (weekday, window),
// Monday through Sunday and windows in start order, scaling every toll by the
// window factor. The day a window starts on is also the day it ends on.
//
// Errors: ErrInvalidSchedule (see Validate).
// Complexity: O(rows × windows-per-week × categories).
func ApplySchedule[ID cmp.Ordered](t *Table[ID], s Schedule) (*TimedTable[ID], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if t == nil {
		return &TimedTable[ID]{Rows: []TimedRecord[ID]{}}, nil
	}

	days := s.byDay()
	perRow := 0
	for _, d := range week {
		perRow += len(days[d])
	}

	out := &TimedTable[ID]{
		Categories: slices.Clone(t.Categories),
		Rows:       make([]TimedRecord[ID], 0, len(t.Rows)*perRow),
	}
	for _, row := range t.Rows {
		for _, d := range week {
			for _, sl := range days[d] {
				tolls := make([]float64, len(row.Tolls))
				for k, v := range row.Tolls {
					tolls[k] = v * sl.factor
				}
				out.Rows = append(out.Rows, TimedRecord[ID]{
					UnrolledRecord: row.UnrolledRecord,
					Day:            d,
					From:           sl.from,
					To:             sl.to,
					Tolls:          tolls,
				})
			}
		}
	}

	return out, nil
}
