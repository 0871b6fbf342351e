// SPDX-License-Identifier: MIT

// Package writhe: functional configuration.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// No global state. Only WithSummation affects the result, and only through
// rounding.
package writhe

import (
	"runtime"

	"github.com/katalvlaran/writhe/matrix"
)

// Defaults (single source of truth).
const (
	// DefaultWorkers evaluates the pair grid on the calling goroutine.
	DefaultWorkers = 1

	// DefaultSummation is the reduction Writhe applies to the contribution matrix.
	DefaultSummation = matrix.SumCompensated
)

const (
	panicWorkersInvalid   = "writhe: WithWorkers: k must be >= 1"
	panicSummationInvalid = "writhe: WithSummation: unknown mode"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers int            // >= 1; DefaultWorkers
	sum     matrix.SumMode // DefaultSummation
}

// WithWorkers sets the number of goroutines that fill rows of the
// contribution matrix. Rows are split into contiguous blocks, one per worker.
// Panics if k < 1.
//
// Complexity: O(1).
func WithWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = k }
}

// WithParallel is WithWorkers(runtime.GOMAXPROCS(0)).
func WithParallel() Option {
	return WithWorkers(runtime.GOMAXPROCS(0))
}

// WithSummation selects the reduction over the contribution matrix.
// Panics on modes unknown to the matrix package.
func WithSummation(mode matrix.SumMode) Option {
	if mode != matrix.SumCompensated && mode != matrix.SumNaive {
		panic(panicSummationInvalid)
	}

	return func(o *Options) { o.sum = mode }
}

// gatherOptions applies opts over the defaults, in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		sum:     DefaultSummation,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
