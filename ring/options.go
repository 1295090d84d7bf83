// SPDX-License-Identifier: MIT

package ring

import "fmt"

// Option configures ring construction via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by
// NewRing.
type Option func(*Options)

// Options holds the effective ring construction parameters.
type Options struct {
	// base is the coefficient ring; nil means QQ.
	base *Ring

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options for a ring over QQ.
func DefaultOptions() Options {
	return Options{}
}

// WithBase makes coefficients live in b instead of QQ.
// A nil b is an option violation.
func WithBase(b *Ring) Option {
	return func(o *Options) {
		if b == nil {
			o.err = fmt.Errorf("%w: WithBase(nil)", ErrOptionViolation)
			return
		}
		o.base = b
	}
}
