// Package geom constructive operations: the analytic counterparts of the
// predefined constructions (midpoints, joins, projections, bisectors,
// circles, tangents) plus the segment helpers the drawer relies on.
package geom

import (
	"fmt"
	"math"
)

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Midpoint returns the midpoint of p and q.
// The midpoint of a degenerate (zero-length) pair is still well defined,
// so no failure mode exists here; duplicate detection happens upstream.
func Midpoint(p, q Point) Point {
	return NewPoint((p.X+q.X)/2, (p.Y+q.Y)/2)
}

// LineFromPoints returns the line through p and q.
// Coincident points are ErrAnalyticFailure.
func LineFromPoints(p, q Point) (Line, error) {
	if p.Eq(q) {
		return Line{}, fmt.Errorf("%w: line through coincident points %s", ErrAnalyticFailure, p)
	}
	// Direction (dx, dy) gives normal (dy, -dx).
	return NewLine(q.Y-p.Y, p.X-q.X, q.X*p.Y-p.X*q.Y)
}

// PerpendicularThrough returns the line through p perpendicular to l.
func PerpendicularThrough(l Line, p Point) Line {
	// Normal of the perpendicular is the direction of l: (B, -A).
	m, _ := NewLine(l.B, -l.A, l.A*p.Y-l.B*p.X) // (B,-A) is unit length, cannot fail
	return m
}

// ParallelThrough returns the line through p parallel to l.
// If p lies on l the result coincides with l; callers treat that as a
// duplicate, not a failure.
func ParallelThrough(l Line, p Point) Line {
	m, _ := NewLine(l.A, l.B, -(l.A*p.X + l.B*p.Y)) // unit normal, cannot fail
	return m
}

// Project returns the perpendicular projection of p onto l.
func Project(p Point, l Line) Point {
	// l is in normal form, so A²+B² = 1 and the signed distance is A·x+B·y+C.
	d := l.A*p.X + l.B*p.Y + l.C
	return NewPoint(p.X-d*l.A, p.Y-d*l.B)
}

// PerpendicularBisector returns the perpendicular bisector of segment pq.
// Coincident points are ErrAnalyticFailure.
func PerpendicularBisector(p, q Point) (Line, error) {
	if p.Eq(q) {
		return Line{}, fmt.Errorf("%w: perpendicular bisector of coincident points %s", ErrAnalyticFailure, p)
	}
	m := Midpoint(p, q)
	return NewLine(q.X-p.X, q.Y-p.Y, -((q.X-p.X)*m.X + (q.Y-p.Y)*m.Y))
}

// Circumcircle returns the circle through a, b and c.
// Collinear (or coincident) points are ErrAnalyticFailure.
func Circumcircle(a, b, c Point) (Circle, error) {
	ab, err := PerpendicularBisector(a, b)
	if err != nil {
		return Circle{}, err
	}
	ac, err := PerpendicularBisector(a, c)
	if err != nil {
		return Circle{}, err
	}
	center, ok, err := IntersectLines(ab, ac)
	if err != nil || !ok {
		return Circle{}, fmt.Errorf("%w: circumcircle of collinear points %s %s %s", ErrAnalyticFailure, a, b, c)
	}
	return NewCircle(center, Dist(center, a))
}

// CircleThrough returns the circle centered at o passing through p.
// o == p is ErrAnalyticFailure (zero radius).
func CircleThrough(o, p Point) (Circle, error) {
	return NewCircle(o, Dist(o, p))
}

// InternalAngleBisector returns the internal bisector of the angle ∠BAC,
// i.e. the bisector line at vertex a between rays a→b and a→c.
// Fails when either ray is degenerate or the two rays are collinear.
func InternalAngleBisector(a, b, c Point) (Line, error) {
	db := Dist(a, b)
	dc := Dist(a, c)
	if Zero(db) || Zero(dc) {
		return Line{}, fmt.Errorf("%w: angle bisector with degenerate ray at %s", ErrAnalyticFailure, a)
	}
	// Sum of the unit ray directions points along the internal bisector.
	ux := (b.X-a.X)/db + (c.X-a.X)/dc
	uy := (b.Y-a.Y)/db + (c.Y-a.Y)/dc
	if Zero(ux) && Zero(uy) {
		// Opposite rays: the internal bisector of a straight angle is ambiguous.
		return Line{}, fmt.Errorf("%w: angle bisector of collinear rays at %s", ErrAnalyticFailure, a)
	}
	return NewLine(uy, -ux, ux*a.Y-uy*a.X)
}

// TangentLines returns the tangent lines to c through p:
// two lines for an exterior point, one for a point on the circle,
// and none for an interior point.
func TangentLines(p Point, c Circle) []Line {
	d := Dist(p, c.Center)
	switch {
	case Eq(d, c.R):
		// p on the circle: the tangent is perpendicular to the radius at p.
		radius, err := LineFromPoints(c.Center, p)
		if err != nil {
			return nil
		}
		return []Line{PerpendicularThrough(radius, p)}
	case d < c.R:
		return nil
	}
	// Exterior point: tangency points lie on the circle with diameter p—center.
	mid := Midpoint(p, c.Center)
	aux, err := NewCircle(mid, d/2)
	if err != nil {
		return nil
	}
	touch, err := IntersectCircles(c, aux)
	if err != nil {
		return nil
	}
	lines := make([]Line, 0, len(touch))
	for _, t := range touch {
		l, lerr := LineFromPoints(p, t)
		if lerr != nil {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// ShiftSegment translates segment pq perpendicular to itself by offset d,
// a helper for the external drawer when separating coincident strokes.
// Coincident endpoints are ErrAnalyticFailure.
func ShiftSegment(p, q Point, d float64) (Point, Point, error) {
	if p.Eq(q) {
		return Point{}, Point{}, fmt.Errorf("%w: cannot shift zero-length segment at %s", ErrAnalyticFailure, p)
	}
	n := Dist(p, q)
	// Unit normal of the segment direction.
	nx, ny := (q.Y-p.Y)/n, (p.X-q.X)/n
	return NewPoint(p.X+d*nx, p.Y+d*ny), NewPoint(q.X+d*nx, q.Y+d*ny), nil
}

// LineAngle returns the direction angle of l in [0, π).
// Lines have no orientation, so angles are taken modulo π.
func LineAngle(l Line) float64 {
	// Direction vector of A·x+B·y+C=0 is (B, -A).
	a := math.Atan2(-l.A, l.B)
	if a < 0 {
		a += math.Pi
	}
	if Eq(a, math.Pi) {
		a = 0
	}
	return a
}

// AngleBetween returns the non-obtuse angle between two lines, in [0, π/2].
func AngleBetween(l, m Line) float64 {
	d := math.Abs(LineAngle(l) - LineAngle(m))
	if d > math.Pi/2 {
		d = math.Pi - d
	}
	return d
}
