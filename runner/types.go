// Package runner tunable options and error definitions.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/geogen/picture"
)

// Sentinel errors of the runner.
var (
	// ErrInitialRealization is returned when an input's initial
	// configuration cannot be realized in agreeing pictures: an analytic
	// fault at startup, not a generation outcome.
	ErrInitialRealization = errors.New("runner: initial configuration not realizable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("runner: invalid option supplied")
)

// Defaults of the run parameters.
const (
	DefaultIterations = 1
	DefaultTimeout    = 30 * time.Second
	DefaultExt        = "txt"
)

// Option configures a run via functional arguments. An invalid option is
// recorded internally and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds the run parameters.
type Options struct {
	// Ctx cancels the run at configuration boundaries.
	Ctx context.Context

	// Iterations is the generation depth budget.
	Iterations int

	// Pictures is the picture-set size per configuration (≥ 2).
	Pictures int

	// Workers bounds the analysis pool.
	Workers int

	// Seed fixes the randomness; with Workers == 1 the run is
	// byte-reproducible.
	Seed int64

	// OutputDir receives the report files.
	OutputDir string

	// Prefix and Ext shape the report file name <prefix><input-id>.<ext>.
	Prefix string
	Ext    string

	// Timeout is the soft per-configuration analysis budget.
	Timeout time.Duration

	// Log receives structured progress and warnings.
	Log *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, one iteration,
// the default picture count, one worker per CPU, and reports written to the
// working directory.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Iterations: DefaultIterations,
		Pictures:   picture.DefaultCount,
		Workers:    runtime.GOMAXPROCS(0),
		OutputDir:  ".",
		Ext:        DefaultExt,
		Timeout:    DefaultTimeout,
		Log:        slog.Default(),
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

// WithIterations sets the generation depth budget; negative is invalid.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Iterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Iterations = n
	}
}

// WithPictures sets the picture-set size; values below 2 are invalid.
func WithPictures(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = fmt.Errorf("%w: Pictures must be ≥ 2 (%d)", ErrOptionViolation, n)
			return
		}
		o.Pictures = n
	}
}

// WithWorkers sets the analysis pool size; values below 1 are invalid.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithSeed fixes the run seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithOutputDir sets the report directory.
func WithOutputDir(dir string) Option {
	return func(o *Options) {
		if dir != "" {
			o.OutputDir = dir
		}
	}
}

// WithNaming sets the report file prefix and extension.
func WithNaming(prefix, ext string) Option {
	return func(o *Options) {
		o.Prefix = prefix
		if ext != "" {
			o.Ext = ext
		}
	}
}

// WithTimeout sets the per-configuration analysis budget; non-positive is
// invalid.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: Timeout must be positive (%v)", ErrOptionViolation, d)
			return
		}
		o.Timeout = d
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Log = l
		}
	}
}
