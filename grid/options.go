// SPDX-License-Identifier: MIT

// Package grid: functional configuration for constructors.
// Options fields are unexported; public entry points accept ...Option and
// resolve them through gatherOptions.
package grid

// DefaultOrder is the storage layout used when no WithOrder option is given.
const DefaultOrder = RowMajor

const panicOrderInvalid = "grid: WithOrder: unknown order"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	order Order // DefaultOrder
}

// WithOrder selects the storage layout of the buffer.
// Panics on an unknown Order value (programmer error).
func WithOrder(o Order) Option {
	if o != RowMajor && o != ColMajor {
		panic(panicOrderInvalid)
	}

	return func(opts *Options) { opts.order = o }
}

// WithColMajor is shorthand for WithOrder(ColMajor).
func WithColMajor() Option { return WithOrder(ColMajor) }

// Order reports the configured layout.
func (o Options) Order() Order { return o.order }

func defaultOptions() Options {
	return Options{order: DefaultOrder}
}

// gatherOptions applies opts over the defaults; nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
