// Package geom incidence and relation predicates used by the theorem
// verifier. All predicates are pure and tolerance-based (see Eq).
package geom

import "math"

// LiesOnLine reports whether p lies on l within tolerance.
func LiesOnLine(p Point, l Line) bool {
	// l is in normal form, so the left-hand side is a signed distance.
	return Zero(l.A*p.X + l.B*p.Y + l.C)
}

// LiesOnCircle reports whether p lies on c within tolerance.
func LiesOnCircle(p Point, c Circle) bool {
	return Eq(Dist(p, c.Center), c.R)
}

// Collinear reports whether a, b, c lie on one line.
// Coincident points are trivially collinear.
func Collinear(a, b, c Point) bool {
	// Twice the signed triangle area.
	return Zero((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y))
}

// Concyclic reports whether four pairwise distinct points lie on one circle.
// Any collinear triple among them makes the predicate false.
func Concyclic(a, b, c, d Point) bool {
	circ, err := Circumcircle(a, b, c)
	if err != nil {
		return false
	}
	return LiesOnCircle(d, circ)
}

// Parallel reports whether two distinct lines are parallel.
// Coincident lines are not reported as parallel.
func Parallel(l, m Line) bool {
	if l.Eq(m) {
		return false
	}
	return Zero(l.A*m.B - m.A*l.B)
}

// Perpendicular reports whether two lines are perpendicular.
func Perpendicular(l, m Line) bool {
	// Normals (A,B) are unit vectors; orthogonality of lines is
	// orthogonality of normals.
	return Zero(l.A*m.A + l.B*m.B)
}

// Concurrent reports whether three pairwise distinct lines pass through a
// single common point.
func Concurrent(l, m, n Line) bool {
	if l.Eq(m) || m.Eq(n) || l.Eq(n) {
		return false
	}
	p, ok, err := IntersectLines(l, m)
	if err != nil || !ok {
		return false
	}
	return LiesOnLine(p, n)
}

// EqualSegments reports whether segments ab and cd have equal length.
func EqualSegments(a, b, c, d Point) bool {
	return Eq(Dist(a, b), Dist(c, d))
}

// EqualAngles reports whether the angle between (l1, l2) equals the angle
// between (m1, m2), both taken as non-obtuse line angles.
func EqualAngles(l1, l2, m1, m2 Line) bool {
	return Eq(AngleBetween(l1, l2), AngleBetween(m1, m2))
}

// TangentLineCircle reports whether l is tangent to c.
func TangentLineCircle(l Line, c Circle) bool {
	d := math.Abs(l.A*c.Center.X + l.B*c.Center.Y + l.C)
	return Eq(d, c.R)
}

// TangentCircles reports whether two distinct circles are tangent
// (internally or externally).
func TangentCircles(c, d Circle) bool {
	if c.Eq(d) {
		return false
	}
	dist := Dist(c.Center, d.Center)
	return Eq(dist, c.R+d.R) || Eq(dist, math.Abs(c.R-d.R))
}
