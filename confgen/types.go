// Package confgen tunable options and error definitions.
package confgen

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors of the configuration generator.
var (
	// ErrNilConfiguration is returned when the initial configuration is nil.
	ErrNilConfiguration = errors.New("confgen: initial configuration is nil")

	// ErrEmptyCatalogue is returned when no constructions are allowed.
	ErrEmptyCatalogue = errors.New("confgen: construction catalogue is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("confgen: invalid option supplied")
)

// Option configures generation via functional arguments. An invalid option
// is recorded internally and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the generation parameters.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per candidate.
	Ctx context.Context

	// Iterations is the depth budget: every emitted configuration has at
	// most Iterations constructed objects more than the initial one.
	Iterations int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and a single
// iteration.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Iterations: 1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithIterations sets the depth budget.
//
//	n > 0: expand n times
//	n == 0: emit nothing (only the initial configuration exists)
//	n < 0: invalid option → ErrOptionViolation
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Iterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Iterations = n
	}
}
