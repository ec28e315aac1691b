// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the gonum bridge and the
// column statistics. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Numeric policy: validateNaNInf controls whether FromDense/View reject
//     non-finite input. Statistics never validate; they propagate NaN.
//   - Statistics policy: population selects the 1/n (population) rather
//     than the 1/(n-1) (sample) normalization for standard deviations.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the norm below which NormalizeRows leaves a row unchanged.
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf toggles finite-value validation on ingestion.
	DefaultValidateNaNInf = true

	// DefaultPopulation selects sample (false) or population (true) deviation.
	DefaultPopulation = false
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	population     bool    // DefaultPopulation
}

// WithEpsilon sets the degenerate-row threshold used by NormalizeRows.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf rejects NaN and ±Inf on ingestion (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf accepts non-finite values on ingestion.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithPopulation makes ColStdDevs divide by n instead of n-1.
func WithPopulation() Option {
	return func(o *Options) { o.population = true }
}

// WithSample makes ColStdDevs divide by n-1 (the default).
func WithSample() Option {
	return func(o *Options) { o.population = false }
}

// NewOptions resolves opts over the defaults; exported for callers that
// want to inspect the effective policy.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the degenerate-row threshold.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether ingestion rejects non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// Population reports whether deviations use the population normalization.
func (o Options) Population() bool { return o.population }

func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		population:     DefaultPopulation,
	}
}

// gatherOptions applies setters on top of defaults in order
// (last-writer-wins). Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
