// SPDX-License-Identifier: MIT

package scattering

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Defaults for variable naming in NewABHY.
const (
	DefaultInvariantPrefix = "a"
	DefaultPuncturePrefix  = "z"
)

// Option configures equation assembly via functional arguments.
// If an Option is invalid (e.g. zero workers), it is recorded internally
// and surfaced as ErrOptionViolation by the call it was passed to.
type Option func(*Options)

// Options holds parameters and callbacks for ScatteringEquations and
// NewABHY.
type Options struct {
	// Workers is the fan-out width over the subsets of one equation.
	// 1 assembles sequentially.
	Workers int

	// Logger receives debug records per assembled equation.
	Logger *slog.Logger

	// OnEquation is called once per equation index l after its subsets
	// are enumerated, with the number enumerated and the number kept.
	OnEquation func(l, enumerated, accepted int)

	// InvariantPrefix and PuncturePrefix name the variables NewABHY
	// creates: a1, a2, … and z2, z3, ….
	InvariantPrefix string
	PuncturePrefix  string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Workers = runtime.GOMAXPROCS(0)
//   - a Logger that discards everything
//   - a no-op OnEquation hook
//   - prefixes "a" and "z".
func DefaultOptions() Options {
	return Options{
		Workers:         runtime.GOMAXPROCS(0),
		Logger:          slog.New(slog.DiscardHandler),
		OnEquation:      func(int, int, int) {},
		InvariantPrefix: DefaultInvariantPrefix,
		PuncturePrefix:  DefaultPuncturePrefix,
	}
}

// WithWorkers sets the fan-out width.
//
//	k ≥ 1: use up to k goroutines per equation
//	k < 1: invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// WithLogger routes debug records to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnEquation registers a per-equation enumeration hook.
func WithOnEquation(fn func(l, enumerated, accepted int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEquation = fn
		}
	}
}

// WithInvariantPrefix names invariant variables prefix1, prefix2, ….
func WithInvariantPrefix(prefix string) Option {
	return func(o *Options) {
		if prefix == "" {
			o.err = fmt.Errorf("%w: empty invariant prefix", ErrOptionViolation)
			return
		}
		o.InvariantPrefix = prefix
	}
}

// WithPuncturePrefix names puncture variables prefix2, prefix3, ….
func WithPuncturePrefix(prefix string) Option {
	return func(o *Options) {
		if prefix == "" {
			o.err = fmt.Errorf("%w: empty puncture prefix", ErrOptionViolation)
			return
		}
		o.PuncturePrefix = prefix
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
