// Package prover trivial filter: theorems restating the defining axioms of
// the last-added object's construction.
package prover

import (
	"fmt"

	"github.com/katalvlaran/geogen/term"
)

// Trivial reports whether th merely restates a defining axiom of the
// configuration's last-added object. Initial configurations have no
// last-added object and nothing trivial.
func Trivial(cfg *term.Configuration, th term.Theorem) (bool, error) {
	if cfg.Last == nil {
		return false, nil
	}
	axioms, err := definingAxioms(cfg, cfg.Last)
	if err != nil {
		return false, err
	}
	key := th.Key()
	for _, a := range axioms {
		if a.Key() == key {
			return true, nil
		}
	}
	return false, nil
}

// definingAxioms lists the theorems that hold for obj by its construction
// alone, in the same normalized form the finder emits.
func definingAxioms(cfg *term.Configuration, obj *term.Object) ([]term.Theorem, error) {
	if obj.Construction == nil {
		return nil, nil
	}
	in := argLeaves(obj)
	switch obj.Construction.Kind {
	case term.KindMidpoint:
		// M lies between p and q, splitting the segment evenly.
		return []term.Theorem{
			term.NewTheorem(term.CollinearPoints,
				term.PointObj(in[0]), term.PointObj(in[1]), term.PointObj(obj)),
			term.NewTheorem(term.EqualLineSegments,
				term.SegmentObj(in[0], obj), term.SegmentObj(in[1], obj)),
		}, nil

	case term.KindPerpendicularLine:
		return []term.Theorem{
			term.NewTheorem(term.PerpendicularLines, term.LineObj(obj), term.LineObj(in[0])),
		}, nil

	case term.KindParallelLine:
		return []term.Theorem{
			term.NewTheorem(term.ParallelLines, term.LineObj(obj), term.LineObj(in[0])),
		}, nil

	case term.KindPerpendicularProjection:
		// The dropped segment is perpendicular to the target line. The foot
		// is the newest object, so the line through (point, foot) can only
		// appear in by-points form.
		return []term.Theorem{
			term.NewTheorem(term.PerpendicularLines,
				term.LineByPoints(in[0], obj), term.LineObj(in[1])),
		}, nil

	case term.KindPerpendicularBisector:
		var out []term.Theorem
		for _, base := range lineForms(cfg, in[0], in[1]) {
			out = append(out, term.NewTheorem(term.PerpendicularLines, term.LineObj(obj), base))
		}
		return out, nil

	case term.KindInternalAngleBisector:
		// Equal angles between the bisector and the two rays from the apex.
		var out []term.Theorem
		for _, ab := range lineForms(cfg, in[0], in[1]) {
			for _, ac := range lineForms(cfg, in[0], in[2]) {
				out = append(out, term.NewTheorem(term.EqualAngles,
					term.AngleObj(term.LineObj(obj), ab),
					term.AngleObj(term.LineObj(obj), ac)))
			}
		}
		return out, nil

	case term.KindTangentLine:
		return []term.Theorem{
			term.NewTheorem(term.LineTangentToCircle, term.LineObj(obj), term.CircleObj(in[1])),
		}, nil

	case term.KindLineFromPoints, term.KindIntersectionOfLines, term.KindCircumcircle,
		term.KindCircleWithCenter, term.KindCenterOfCircle,
		term.KindIntersectionOfLineAndCircle, term.KindIntersectionOfCircles,
		term.KindSecondIntersection:
		// Their defining facts are incidences, which the theorem language
		// does not state directly.
		return nil, nil

	case term.KindComposed:
		// A macro's defining facts belong to its body objects, which are
		// not part of the configuration.
		return nil, nil
	}
	return nil, fmt.Errorf("%w: construction kind %d", ErrUnhandledFeedback, obj.Construction.Kind)
}

// lineForms returns the theorem-object form the finder uses for the line
// through p and q: the object form for every LineFromPoints object over
// exactly that pair, or the by-points form when none covers it.
func lineForms(cfg *term.Configuration, p, q *term.Object) []term.TheoremObject {
	var out []term.TheoremObject
	for _, lo := range cfg.ObjectsOfType(term.Line) {
		if lo.Construction == nil || lo.Construction.Kind != term.KindLineFromPoints {
			continue
		}
		ids := argLeaves(lo)
		if len(ids) == 2 &&
			((ids[0].ID == p.ID && ids[1].ID == q.ID) || (ids[0].ID == q.ID && ids[1].ID == p.ID)) {
			out = append(out, term.LineObj(lo))
		}
	}
	if len(out) == 0 {
		out = append(out, term.LineByPoints(p, q))
	}
	return out
}

// argLeaves flattens obj's argument tree in normalized order.
func argLeaves(obj *term.Object) []*term.Object {
	var out []*term.Object
	for _, a := range obj.Args {
		out = a.Leaves(out)
	}
	return out
}
