// Package picture per-construction analytic evaluators.
//
// Every evaluator returns (instance, ok): ok == false means the object is
// not constructable under this picture's coordinates — a no-solution
// intersection and a degenerate analytic input are both "not here", the
// cross-picture layer decides what that means for the configuration.
package picture

import (
	"fmt"

	"github.com/katalvlaran/geogen/geom"
	"github.com/katalvlaran/geogen/term"
)

// lookup resolves an object identifier to its analytic instance.
type lookup func(id int) (Analytic, bool)

// evaluate builds the analytic instance of a constructed object, resolving
// its argument leaves through env. The error return fires only for
// catalogue gaps (ErrUnhandledConstruction), never for geometry.
func evaluate(o *term.Object, env lookup) (Analytic, bool, error) {
	var leaves []*term.Object
	for _, a := range o.Args {
		leaves = a.Leaves(leaves)
	}
	in := make([]Analytic, len(leaves))
	for i, leaf := range leaves {
		a, ok := env(leaf.ID)
		if !ok {
			return Analytic{}, false, nil // depends on an unrealized object
		}
		in[i] = a
	}

	if o.Construction.Kind == term.KindComposed {
		return evaluateComposed(o.Construction, in)
	}
	return evaluatePredefined(o.Construction.Kind, in, o.OutIndex)
}

// evaluatePredefined dispatches over the closed construction set. The
// flat input order matches term.Match's normalized leaf order.
func evaluatePredefined(kind term.ConstructionKind, in []Analytic, outIdx int) (Analytic, bool, error) {
	switch kind {
	case term.KindMidpoint:
		return point(geom.Midpoint(in[0].Point, in[1].Point)), true, nil

	case term.KindLineFromPoints:
		l, err := geom.LineFromPoints(in[0].Point, in[1].Point)
		return line(l), err == nil, nil

	case term.KindIntersectionOfLines:
		p, ok, err := geom.IntersectLines(in[0].Line, in[1].Line)
		return point(p), ok && err == nil, nil

	case term.KindCircumcircle:
		c, err := geom.Circumcircle(in[0].Point, in[1].Point, in[2].Point)
		return circle(c), err == nil, nil

	case term.KindPerpendicularLine:
		return line(geom.PerpendicularThrough(in[0].Line, in[1].Point)), true, nil

	case term.KindParallelLine:
		return line(geom.ParallelThrough(in[0].Line, in[1].Point)), true, nil

	case term.KindPerpendicularProjection:
		return point(geom.Project(in[0].Point, in[1].Line)), true, nil

	case term.KindPerpendicularBisector:
		l, err := geom.PerpendicularBisector(in[0].Point, in[1].Point)
		return line(l), err == nil, nil

	case term.KindInternalAngleBisector:
		l, err := geom.InternalAngleBisector(in[0].Point, in[1].Point, in[2].Point)
		return line(l), err == nil, nil

	case term.KindCircleWithCenter:
		c, err := geom.CircleThrough(in[0].Point, in[1].Point)
		return circle(c), err == nil, nil

	case term.KindCenterOfCircle:
		return point(in[0].Circle.Center), true, nil

	case term.KindIntersectionOfLineAndCircle:
		pts := geom.IntersectLineCircle(in[0].Line, in[1].Circle)
		if outIdx >= len(pts) {
			return Analytic{}, false, nil
		}
		return point(pts[outIdx]), true, nil

	case term.KindIntersectionOfCircles:
		pts, err := geom.IntersectCircles(in[0].Circle, in[1].Circle)
		if err != nil || outIdx >= len(pts) {
			return Analytic{}, false, nil
		}
		return point(pts[outIdx]), true, nil

	case term.KindTangentLine:
		lines := geom.TangentLines(in[0].Point, in[1].Circle)
		if outIdx >= len(lines) {
			return Analytic{}, false, nil
		}
		return line(lines[outIdx]), true, nil

	case term.KindSecondIntersection:
		p, ok := geom.SecondIntersection(in[0].Line, in[1].Circle, in[2].Point)
		return point(p), ok, nil
	}
	return Analytic{}, false, fmt.Errorf("%w: %d", ErrUnhandledConstruction, kind)
}

// evaluateComposed inlines a macro body: the macro's loose objects bind to
// the flat inputs under a local identifier environment, its constructed
// objects evaluate in order, and the last one is the output.
func evaluateComposed(con *term.Construction, in []Analytic) (Analytic, bool, error) {
	local := make(map[int]Analytic, len(con.Macro.Loose)+len(con.Macro.Constructed))
	for i, lo := range con.Macro.Loose {
		local[lo.ID] = in[i]
	}
	env := func(id int) (Analytic, bool) {
		a, ok := local[id]
		return a, ok
	}
	var out Analytic
	for _, step := range con.Macro.Constructed {
		a, ok, err := evaluate(step, env)
		if err != nil {
			return Analytic{}, false, err
		}
		if !ok {
			return Analytic{}, false, nil
		}
		local[step.ID] = a
		out = a
	}
	return out, true, nil
}

// point wraps a geom.Point.
func point(p geom.Point) Analytic { return Analytic{Type: term.Point, Point: p} }

// line wraps a geom.Line.
func line(l geom.Line) Analytic { return Analytic{Type: term.Line, Line: l} }

// circle wraps a geom.Circle.
func circle(c geom.Circle) Analytic { return Analytic{Type: term.Circle, Circle: c} }
