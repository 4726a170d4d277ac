package picture

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/geogen/geom"
	"github.com/katalvlaran/geogen/term"
)

// verdict is the per-object, per-picture observation the consistency
// contract compares: constructability and coincidence with an older object.
type verdict struct {
	ok    bool
	dupOf int // identifier of the coinciding older object, -1 for none
}

// Build realizes cfg in an agreeing picture set.
//
// It draws Count pictures with independent randomness, applies every
// constructed object's evaluator in order, and enforces the cross-picture
// consistency contract. Disagreement rebuilds all pictures from scratch, up
// to Retries times; exhausting the budget returns
// ErrUnresolvedInconsistency. An agreed build returns a Result classifying
// the configuration (see Outcome).
func Build(cfg *term.Configuration, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Count < 2 {
		return nil, ErrTooFewPictures
	}
	base := o.RNG
	if base == nil {
		base = geom.NewRNG(0)
	}

	for attempt := 0; attempt <= o.Retries; attempt++ {
		// cancellation check (once per rebuild attempt)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		attemptRNG := geom.DeriveRNG(base, uint64(attempt))
		res, consistent, err := buildOnce(cfg, o, attemptRNG)
		if err != nil {
			return nil, err
		}
		if consistent {
			return res, nil
		}
	}
	return nil, fmt.Errorf("%w: %d rebuilds exhausted", ErrUnresolvedInconsistency, o.Retries)
}

// buildOnce draws one full picture set and checks the contract. The bool
// result reports cross-picture agreement; the caller retries on false.
func buildOnce(cfg *term.Configuration, o Options, rng *rand.Rand) (*Result, bool, error) {
	pics := make([]*Picture, o.Count)
	verdicts := make([][]verdict, o.Count) // [picture][constructed index]
	for i := 0; i < o.Count; i++ {
		// cancellation check (once per picture)
		select {
		case <-o.Ctx.Done():
			return nil, false, o.Ctx.Err()
		default:
		}

		pic, vs, err := drawPicture(cfg, geom.DeriveRNG(rng, uint64(i)))
		if err != nil {
			if isLayoutFailure(err) {
				return nil, false, nil // degenerate draw: rebuild
			}
			return nil, false, err
		}
		pics[i] = pic
		verdicts[i] = vs
	}

	// Cross-picture agreement, object by object in construction order.
	for ci, obj := range cfg.Constructed {
		first := verdicts[0][ci]
		for i := 1; i < o.Count; i++ {
			if verdicts[i][ci] != first {
				return nil, false, nil // inconsistency: rebuild
			}
		}
		if !first.ok {
			return &Result{Outcome: OutcomeInconstructible, Witness: obj}, true, nil
		}
		if first.dupOf >= 0 {
			return &Result{
				Outcome: OutcomeDuplicate,
				Older:   cfg.ByID(first.dupOf),
				Newer:   obj,
			}, true, nil
		}
	}
	return &Result{
		Outcome: OutcomeOK,
		Set:     &Set{Config: cfg, pictures: pics},
	}, true, nil
}

// drawPicture realizes one picture: loose objects from the layout
// generator, then every constructed object in order. Layout degeneracy
// surfaces as geom.ErrLayoutExhausted; construction degeneracy is recorded
// in the verdicts, not returned.
func drawPicture(cfg *term.Configuration, rng *rand.Rand) (*Picture, []verdict, error) {
	pic := &Picture{objs: make(map[int]Analytic, len(cfg.Loose)+len(cfg.Constructed))}
	if err := drawLoose(cfg, rng, pic); err != nil {
		return nil, nil, err
	}

	env := func(id int) (Analytic, bool) { return pic.Of(id) }
	verdicts := make([]verdict, len(cfg.Constructed))
	for i, obj := range cfg.Constructed {
		a, ok, err := evaluate(obj, env)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			verdicts[i] = verdict{ok: false, dupOf: -1}
			continue
		}
		verdicts[i] = verdict{ok: true, dupOf: coincidence(cfg, pic, obj, a)}
		pic.objs[obj.ID] = a
	}
	return pic, verdicts, nil
}

// drawLoose instantiates the loose-object holder with the layout-specific
// generator.
func drawLoose(cfg *term.Configuration, rng *rand.Rand, pic *Picture) error {
	switch cfg.Layout {
	case term.LineSegment:
		p, q, err := geom.RandomSegment(rng)
		if err != nil {
			return err
		}
		pic.objs[cfg.Loose[0].ID] = point(p)
		pic.objs[cfg.Loose[1].ID] = point(q)

	case term.Triangle:
		tri, err := geom.RandomTriangle(rng)
		if err != nil {
			return err
		}
		for i := 0; i < 3; i++ {
			pic.objs[cfg.Loose[i].ID] = point(tri[i])
		}

	case term.RightTriangle:
		tri, err := geom.RandomRightTriangle(rng)
		if err != nil {
			return err
		}
		for i := 0; i < 3; i++ {
			pic.objs[cfg.Loose[i].ID] = point(tri[i])
		}

	case term.Quadrilateral:
		quad, err := geom.RandomConvexQuadrilateral(rng)
		if err != nil {
			return err
		}
		for i := 0; i < 4; i++ {
			pic.objs[cfg.Loose[i].ID] = point(quad[i])
		}

	case term.ExplicitLineAndPoint:
		l, p, err := geom.RandomLineAndPoint(rng)
		if err != nil {
			return err
		}
		pic.objs[cfg.Loose[0].ID] = line(l)
		pic.objs[cfg.Loose[1].ID] = point(p)

	case term.ExplicitLineAndTwoPoints:
		l, p, q, err := geom.RandomLineAndTwoPoints(rng)
		if err != nil {
			return err
		}
		pic.objs[cfg.Loose[0].ID] = line(l)
		pic.objs[cfg.Loose[1].ID] = point(p)
		pic.objs[cfg.Loose[2].ID] = point(q)

	default:
		return fmt.Errorf("%w: layout %v", ErrUnhandledConstruction, cfg.Layout)
	}
	return nil
}

// coincidence returns the identifier of the first earlier object whose
// instance equals a, or -1. Earlier means any object preceding obj in the
// configuration order.
func coincidence(cfg *term.Configuration, pic *Picture, obj *term.Object, a Analytic) int {
	for _, other := range cfg.Objects() {
		if other.ID == obj.ID {
			break // configuration order: everything after is newer
		}
		if b, ok := pic.Of(other.ID); ok && a.Eq(b) {
			return other.ID
		}
	}
	return -1
}

// isLayoutFailure reports whether err is a degenerate-draw condition that a
// rebuild with fresh randomness can fix.
func isLayoutFailure(err error) bool {
	return errors.Is(err, geom.ErrLayoutExhausted) || errors.Is(err, geom.ErrAnalyticFailure)
}
