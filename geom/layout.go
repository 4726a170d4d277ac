// Package geom randomized layout generators.
//
// Each generator draws loose objects for one picture from a caller-supplied
// RNG and rejects degenerate draws (collinear triples, broken right angles,
// non-convex quadrilaterals, points too close together). Rejection keeps a
// healthy margin above the kernel tolerance so downstream rounded
// comparisons stay unambiguous.
package geom

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

const (
	// maxDraws bounds the rejection loop of every generator.
	maxDraws = 128

	// coordSpan is the half-width of the square the generators draw from.
	coordSpan = 5.0

	// minSep is the minimum pairwise distance between drawn points.
	minSep = 0.8

	// minArea is the minimum absolute triangle area accepted by the
	// triangle-shaped layouts.
	minArea = 1.2
)

// randCoord draws one coordinate uniformly from [-coordSpan, coordSpan].
func randCoord(rng *rand.Rand) float64 {
	return (2*rng.Float64() - 1) * coordSpan
}

// randPoint draws one point from the layout square.
func randPoint(rng *rand.Rand) Point {
	return NewPoint(randCoord(rng), randCoord(rng))
}

// area2 returns twice the signed area of triangle abc.
func area2(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// RandomSegment draws two well-separated points.
func RandomSegment(rng *rand.Rand) (Point, Point, error) {
	for i := 0; i < maxDraws; i++ {
		p, q := randPoint(rng), randPoint(rng)
		if Dist(p, q) >= minSep {
			return p, q, nil
		}
	}
	return Point{}, Point{}, fmt.Errorf("%w: segment layout", ErrLayoutExhausted)
}

// RandomTriangle draws three points forming a non-degenerate triangle.
func RandomTriangle(rng *rand.Rand) ([3]Point, error) {
	for i := 0; i < maxDraws; i++ {
		a, b, c := randPoint(rng), randPoint(rng), randPoint(rng)
		if Dist(a, b) < minSep || Dist(b, c) < minSep || Dist(a, c) < minSep {
			continue
		}
		if math.Abs(area2(a, b, c)) < 2*minArea {
			continue
		}
		return [3]Point{a, b, c}, nil
	}
	return [3]Point{}, fmt.Errorf("%w: triangle layout", ErrLayoutExhausted)
}

// RandomRightTriangle draws a triangle with the right angle at the first
// point: the two legs leave the first vertex at exactly 90°.
func RandomRightTriangle(rng *rand.Rand) ([3]Point, error) {
	for i := 0; i < maxDraws; i++ {
		a := randPoint(rng)
		theta := rng.Float64() * 2 * math.Pi
		lb := minSep + rng.Float64()*(coordSpan-minSep)
		lc := minSep + rng.Float64()*(coordSpan-minSep)
		b := NewPoint(a.X+lb*math.Cos(theta), a.Y+lb*math.Sin(theta))
		c := NewPoint(a.X-lc*math.Sin(theta), a.Y+lc*math.Cos(theta))
		if math.Abs(area2(a, b, c)) < 2*minArea {
			continue
		}
		return [3]Point{a, b, c}, nil
	}
	return [3]Point{}, fmt.Errorf("%w: right-triangle layout", ErrLayoutExhausted)
}

// RandomConvexQuadrilateral draws four points forming a strictly convex
// quadrilateral in their given (counter-clockwise) order.
func RandomConvexQuadrilateral(rng *rand.Rand) ([4]Point, error) {
	for i := 0; i < maxDraws; i++ {
		pts := [4]Point{randPoint(rng), randPoint(rng), randPoint(rng), randPoint(rng)}
		orderAroundCentroid(pts[:])
		if !strictlyConvex(pts[:]) {
			continue
		}
		ok := true
		for j := 0; j < 4 && ok; j++ {
			for k := j + 1; k < 4; k++ {
				if Dist(pts[j], pts[k]) < minSep {
					ok = false
					break
				}
			}
		}
		if ok {
			return pts, nil
		}
	}
	return [4]Point{}, fmt.Errorf("%w: quadrilateral layout", ErrLayoutExhausted)
}

// RandomLineAndPoint draws a line and a point at a healthy distance from it.
func RandomLineAndPoint(rng *rand.Rand) (Line, Point, error) {
	for i := 0; i < maxDraws; i++ {
		a, b := randPoint(rng), randPoint(rng)
		if Dist(a, b) < minSep {
			continue
		}
		l, err := LineFromPoints(a, b)
		if err != nil {
			continue
		}
		p := randPoint(rng)
		if math.Abs(l.A*p.X+l.B*p.Y+l.C) < minSep {
			continue
		}
		return l, p, nil
	}
	return Line{}, Point{}, fmt.Errorf("%w: line-and-point layout", ErrLayoutExhausted)
}

// RandomLineAndTwoPoints draws a line and two distinct points off it,
// with the two points not mirroring each other across the line's direction
// degenerately (they only need mutual and line separation).
func RandomLineAndTwoPoints(rng *rand.Rand) (Line, Point, Point, error) {
	for i := 0; i < maxDraws; i++ {
		l, p, err := RandomLineAndPoint(rng)
		if err != nil {
			return Line{}, Point{}, Point{}, err
		}
		q := randPoint(rng)
		if math.Abs(l.A*q.X+l.B*q.Y+l.C) < minSep || Dist(p, q) < minSep {
			continue
		}
		return l, p, q, nil
	}
	return Line{}, Point{}, Point{}, fmt.Errorf("%w: line-and-two-points layout", ErrLayoutExhausted)
}

// orderAroundCentroid sorts pts counter-clockwise around their centroid.
func orderAroundCentroid(pts []Point) {
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))
	sort.Slice(pts, func(i, j int) bool {
		return math.Atan2(pts[i].Y-cy, pts[i].X-cx) < math.Atan2(pts[j].Y-cy, pts[j].X-cx)
	})
}

// strictlyConvex reports whether the closed polygon pts (in order) turns
// strictly the same way at every vertex, with margin above tolerance.
func strictlyConvex(pts []Point) bool {
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b, c := pts[i], pts[(i+1)%n], pts[(i+2)%n]
		if area2(a, b, c) < 2*minArea {
			return false
		}
	}
	return true
}
