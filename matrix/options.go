// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - NewOptions, which resolves a list of Option into an Options snapshot.
//
// Notes:
//   - validateNaNInf controls whether Set()/Fill() reject non-finite values at all.
//   - allowInfDistances is a narrow exception for +Inf as "no route" in
//     shortest-route matrices. Under validation, NaN and -Inf remain rejected
//     even when allowInfDistances=true.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and Fill.
	DefaultValidateNaNInf = true

	// DefaultAllowInfDistances permits +Inf values to represent "no route".
	DefaultAllowInfDistances = false
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps               float64 // >= 0; DefaultEpsilon
	validateNaNInf    bool    // DefaultValidateNaNInf
	allowInfDistances bool    // DefaultAllowInfDistances
}

// NewOptions resolves opts (in order, last wins) on top of the defaults.
// Complexity: O(len(opts)).
func NewOptions(opts ...Option) Options {
	o := Options{
		eps:               DefaultEpsilon,
		validateNaNInf:    DefaultValidateNaNInf,
		allowInfDistances: DefaultAllowInfDistances,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Epsilon returns the resolved structural tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// AllowInfDistances reports whether +Inf is accepted as "no route".
func (o Options) AllowInfDistances() bool { return o.allowInfDistances }

// WithEpsilon sets the numeric tolerance eps used by symmetry and diagonal checks.
// Panics when eps is negative, NaN or Inf.
//
// AI-Hints:
//   - Accumulated distances are sums of a handful of float64 values; the
//     default 1e-9 is plenty. Raise it only for noisy upstream data.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Use with care: downstream validators assume finite data.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAllowInfDistances permits +Inf entries to represent "no route".
// Does NOT imply "allow NaN": with validation on, NaN and -Inf are still rejected.
//
// AI-Hints:
//   - Required for any matrix handed to FloydWarshall that contains unknown pairs.
func WithAllowInfDistances() Option {
	return func(o *Options) { o.allowInfDistances = true }
}
