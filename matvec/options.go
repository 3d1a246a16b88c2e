// SPDX-License-Identifier: MIT

package matvec

import "math"

// DefaultToleranceFactor scales with N to give the default validation
// tolerance: DefaultToleranceFactor * N.
const DefaultToleranceFactor = 1e-9

const panicToleranceInvalid = "matvec: WithTolerance: tol must be finite, non-negative"

// Option configures Run and Validate.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	tolerance float64 // 0 means DefaultToleranceFactor * N
	validate  bool
}

// WithTolerance sets the absolute tolerance used by Validate to flag
// divergence. Zero restores the N-scaled default.
// Panics when tol is NaN, ±Inf or negative.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithoutValidation skips the serial reference check in Run.
func WithoutValidation() Option {
	return func(o *Options) { o.validate = false }
}

func gatherOptions(user ...Option) Options {
	o := Options{validate: true}
	for _, set := range user {
		set(&o)
	}

	return o
}

// toleranceFor resolves the effective tolerance for problem size n.
func (o Options) toleranceFor(n int) float64 {
	if o.tolerance > 0 {
		return o.tolerance
	}

	return DefaultToleranceFactor * float64(n)
}
