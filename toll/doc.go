// SPDX-License-Identifier: MIT

// Package toll turns unrolled distances into per-vehicle toll amounts.
//
// Two stages:
//
//	Annotate      : one column per vehicle category: toll = distance × coefficient.
//	ApplySchedule : expand every rated row into one row per (weekday, time
//	                 window) with tolls scaled by the window's factor.
//
// Default rates:    moto 0.8, car 1.2, rv 1.5, bus 2.2, truck 3.6.
// Default schedule: weekdays 00:00:00–10:00:00 ×0.8, 10:00:00–18:00:00 ×1.2,
// 18:00:00–23:59:59 ×0.8; weekends 00:00:00–23:59:59 ×0.7.
//
// A schedule must cover every weekday from 00:00:00 to 23:59:59 with
// contiguous, non-overlapping windows; Schedule.Validate enforces this.
package toll
