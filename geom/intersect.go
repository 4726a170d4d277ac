// Package geom intersection primitives. Empty intersections are ordinary
// results; only identical curves intersected with themselves are errors.
package geom

import (
	"fmt"
	"math"
)

// IntersectLines intersects two lines.
// Returns (point, true, nil) for a proper crossing, (zero, false, nil) for
// parallel distinct lines, and ErrAnalyticFailure for identical lines.
func IntersectLines(l, m Line) (Point, bool, error) {
	det := l.A*m.B - m.A*l.B
	if Zero(det) {
		if l.Eq(m) {
			return Point{}, false, fmt.Errorf("%w: intersecting identical lines %s", ErrAnalyticFailure, l)
		}
		return Point{}, false, nil
	}
	x := (l.B*m.C - m.B*l.C) / det
	y := (m.A*l.C - l.A*m.C) / det
	return NewPoint(x, y), true, nil
}

// IntersectLineCircle intersects a line with a circle, returning 0, 1 or 2
// points. Tangency yields exactly one point. Never fails.
//
// Points come back in a deterministic order (lexicographic by rounded
// coordinates) so multi-output constructions index them consistently.
func IntersectLineCircle(l Line, c Circle) []Point {
	// Signed distance from center to l (l is in normal form).
	d := l.A*c.Center.X + l.B*c.Center.Y + l.C
	foot := NewPoint(c.Center.X-d*l.A, c.Center.Y-d*l.B)
	gap := c.R*c.R - d*d
	switch {
	case Eq(math.Abs(d), c.R):
		return []Point{foot}
	case gap < 0:
		return nil
	}
	h := math.Sqrt(gap)
	// Chord direction is the direction of l: (B, -A).
	p1 := NewPoint(foot.X+h*l.B, foot.Y-h*l.A)
	p2 := NewPoint(foot.X-h*l.B, foot.Y+h*l.A)
	return orderPair(p1, p2)
}

// IntersectCircles intersects two circles, returning 0, 1 or 2 points in
// deterministic order. Identical circles are ErrAnalyticFailure.
func IntersectCircles(c, d Circle) ([]Point, error) {
	if c.Eq(d) {
		return nil, fmt.Errorf("%w: intersecting identical circles %s", ErrAnalyticFailure, c)
	}
	if c.Center.Eq(d.Center) {
		// Concentric, different radii: no intersection.
		return nil, nil
	}
	// Radical line of the two circles, then reduce to line∧circle.
	radical, err := NewLine(
		2*(d.Center.X-c.Center.X),
		2*(d.Center.Y-c.Center.Y),
		(c.Center.X*c.Center.X+c.Center.Y*c.Center.Y-c.R*c.R)-
			(d.Center.X*d.Center.X+d.Center.Y*d.Center.Y-d.R*d.R),
	)
	if err != nil {
		return nil, err
	}
	return IntersectLineCircle(radical, c), nil
}

// SecondIntersection returns the intersection of l and c that differs from
// the known point p, or (zero, false) when l meets c only at p or not at all.
func SecondIntersection(l Line, c Circle, p Point) (Point, bool) {
	for _, q := range IntersectLineCircle(l, c) {
		if !q.Eq(p) {
			return q, true
		}
	}
	return Point{}, false
}

// orderPair returns the two points sorted lexicographically by (X, Y).
func orderPair(p, q Point) []Point {
	if q.X < p.X-epsilon || (Eq(p.X, q.X) && q.Y < p.Y) {
		return []Point{q, p}
	}
	return []Point{p, q}
}
