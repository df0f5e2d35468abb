// SPDX-License-Identifier: MIT

// Package distance: functional options for Build.
// Option constructors panic only on nonsensical values (programmer error);
// Build itself never panics on user data.
package distance

import (
	"math"

	"github.com/katalvlaran/tollmatrix/matrix"
)

const (
	// DefaultIsolated keeps points without edges as zero rows.
	DefaultIsolated = KeepIsolated

	// DefaultEpsilon is the tolerance used by Matrix.Validate.
	DefaultEpsilon = matrix.DefaultEpsilon
)

const (
	panicPolicyInvalid  = "distance: WithIsolated: unknown policy"
	panicEpsilonInvalid = "distance: WithEpsilon: eps must be finite, non-negative"
)

// Option configures Build / BuildWithPoints.
type Option func(*Options)

// Options is the resolved build configuration.
type Options struct {
	isolated IsolatedPolicy
	eps      float64
}

// NewOptions applies opts (last wins) over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{isolated: DefaultIsolated, eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Isolated returns the resolved isolated-point policy.
func (o Options) Isolated() IsolatedPolicy { return o.isolated }

// Epsilon returns the resolved validation tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithIsolated selects the isolated-point policy.
// Panics on values other than KeepIsolated / DropIsolated.
func WithIsolated(p IsolatedPolicy) Option {
	if p != KeepIsolated && p != DropIsolated {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.isolated = p }
}

// WithEpsilon sets the tolerance used by Matrix.Validate.
// Panics when eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}
