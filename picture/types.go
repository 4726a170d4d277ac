// Package picture tunable options, error definitions, and result types.
package picture

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/geogen/geom"
	"github.com/katalvlaran/geogen/term"
)

// Sentinel errors of the picture layer.
var (
	// ErrTooFewPictures is returned when fewer than two pictures are
	// requested; cross-picture agreement needs at least two.
	ErrTooFewPictures = errors.New("picture: at least 2 pictures are required")

	// ErrUnresolvedInconsistency is returned when the retry budget is
	// exhausted without cross-picture agreement.
	ErrUnresolvedInconsistency = errors.New("picture: unresolved cross-picture inconsistency")

	// ErrUnhandledConstruction indicates an evaluator gap for a
	// construction kind — an internal invariant violation, not a user error.
	ErrUnhandledConstruction = errors.New("picture: unhandled construction kind")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("picture: invalid option supplied")
)

// DefaultCount is the default picture-set size.
const DefaultCount = 5

// DefaultRetries is the default rebuild budget under inconsistency.
const DefaultRetries = 5

// Option configures picture building via functional arguments. An invalid
// option is recorded internally and surfaced as ErrOptionViolation by Build.
type Option func(*Options)

// Options holds the picture-set parameters.
type Options struct {
	// Ctx allows cancellation; checked between pictures and between
	// rebuild attempts.
	Ctx context.Context

	// Count is the number of pictures per set (≥ 2).
	Count int

	// Retries is the number of full rebuilds allowed on inconsistency.
	Retries int

	// RNG is the base randomness source; per-attempt and per-picture
	// streams are derived from it. Nil means the deterministic default.
	RNG *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, DefaultCount
// pictures, DefaultRetries rebuilds, and the deterministic default RNG.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Count:   DefaultCount,
		Retries: DefaultRetries,
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

// WithCount sets the picture-set size. Values below 2 are invalid: a
// single picture cannot witness cross-picture agreement.
func WithCount(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.err = fmt.Errorf("%w: Count must be ≥ 2 (%d)", ErrTooFewPictures, n)
			return
		}
		o.Count = n
	}
}

// WithRetries sets the rebuild budget; negative values are invalid.
func WithRetries(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Retries cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Retries = n
	}
}

// WithRNG sets the base randomness source.
func WithRNG(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.RNG = rng
		}
	}
}

// Analytic is the tagged numeric instance of one configuration object.
type Analytic struct {
	Type   term.ObjectType
	Point  geom.Point
	Line   geom.Line
	Circle geom.Circle
}

// Eq reports rounded equality of two instances of the same type.
func (a Analytic) Eq(b Analytic) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case term.Point:
		return a.Point.Eq(b.Point)
	case term.Line:
		return a.Line.Eq(b.Line)
	case term.Circle:
		return a.Circle.Eq(b.Circle)
	}
	return false
}

// Picture maps object identifiers to analytic instances for one draw.
type Picture struct {
	objs map[int]Analytic
}

// Of returns the instance of the object with the given identifier.
func (p *Picture) Of(id int) (Analytic, bool) {
	a, ok := p.objs[id]
	return a, ok
}

// Set is an ordered collection of agreeing pictures of one configuration.
type Set struct {
	// Config is the realized configuration.
	Config *term.Configuration

	pictures []*Picture
}

// Count returns the number of pictures.
func (s *Set) Count() int { return len(s.pictures) }

// Point resolves a point object in picture i.
func (s *Set) Point(i int, o *term.Object) (geom.Point, bool) {
	a, ok := s.pictures[i].Of(o.ID)
	if !ok || a.Type != term.Point {
		return geom.Point{}, false
	}
	return a.Point, true
}

// Line resolves a line object in picture i.
func (s *Set) Line(i int, o *term.Object) (geom.Line, bool) {
	a, ok := s.pictures[i].Of(o.ID)
	if !ok || a.Type != term.Line {
		return geom.Line{}, false
	}
	return a.Line, true
}

// Circle resolves a circle object in picture i.
func (s *Set) Circle(i int, o *term.Object) (geom.Circle, bool) {
	a, ok := s.pictures[i].Of(o.ID)
	if !ok || a.Type != term.Circle {
		return geom.Circle{}, false
	}
	return a.Circle, true
}

// Outcome classifies an agreed build.
type Outcome uint8

// The agreed outcomes.
const (
	// OutcomeOK: all objects realized in all pictures.
	OutcomeOK Outcome = iota + 1

	// OutcomeInconstructible: some object failed in every picture.
	OutcomeInconstructible

	// OutcomeDuplicate: some object coincided with the same earlier object
	// in every picture.
	OutcomeDuplicate
)

// String renders the outcome for logs and reports.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeInconstructible:
		return "inconstructible"
	case OutcomeDuplicate:
		return "duplicate"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Result is the agreed verdict of a build.
type Result struct {
	// Outcome discriminates the fields below.
	Outcome Outcome

	// Set is populated for OutcomeOK.
	Set *Set

	// Witness is the first inconstructible object (OutcomeInconstructible).
	Witness *term.Object

	// Older and Newer are the coinciding pair (OutcomeDuplicate):
	// Newer always coincides with the earlier Older.
	Older, Newer *term.Object
}
