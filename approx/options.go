// SPDX-License-Identifier: MIT

package approx

import "math"

// DefaultEpsilon is the tolerance used when no WithEpsilon option is given.
// Chained double-precision operations on values of order 1..1e3 stay well
// inside it.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "approx: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	eps float64
}

// WithEpsilon sets the comparison tolerance.
// Panics when eps is negative, NaN or infinite (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// Epsilon returns the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
