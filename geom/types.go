// Package geom type declarations, sentinel errors, and rounded arithmetic.
package geom

import (
	"errors"
	"fmt"
	"math"
)

// Precision is the number of decimal places kept by Round.
const Precision = 9

// epsilon is the comparison tolerance of Eq and Zero: one decade above the
// rounding unit, so two values rounded onto opposite sides of a grid
// boundary still compare equal. Identity verdicts (coincidence, incidence)
// then agree across pictures instead of flipping at the boundary.
const epsilon = 1e-8

// Sentinel errors of the analytic kernel.
var (
	// ErrAnalyticFailure indicates a degenerate input: coincident points
	// defining a line, collinear points defining a circle, identical curves
	// being intersected, a zero-radius circle, and so on. It is distinct
	// from an empty intersection, which is not an error.
	ErrAnalyticFailure = errors.New("geom: analytic failure")

	// ErrLayoutExhausted is returned when a layout generator cannot produce
	// a non-degenerate draw within its rejection budget.
	ErrLayoutExhausted = errors.New("geom: layout generator exhausted rejection budget")
)

// Round truncates x to Precision decimal places.
// Stored coordinates are always rounded so equal objects print identically.
func Round(x float64) float64 {
	const shift = 1e9 // 10^Precision
	r := math.Round(x*shift) / shift
	if r == 0 {
		return 0 // normalize -0
	}
	return r
}

// Eq reports whether a and b are equal within the kernel tolerance.
func Eq(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// Zero reports whether x is zero within the kernel tolerance.
func Zero(x float64) bool {
	return math.Abs(x) <= epsilon
}

// Point is a location in the plane with rounded coordinates.
type Point struct {
	X, Y float64
}

// NewPoint returns the point (x, y) with rounded coordinates.
func NewPoint(x, y float64) Point {
	return Point{X: Round(x), Y: Round(y)}
}

// Eq reports rounded coordinate equality.
func (p Point) Eq(q Point) bool {
	return Eq(p.X, q.X) && Eq(p.Y, q.Y)
}

// String renders the point for reports and debug output.
func (p Point) String() string {
	return fmt.Sprintf("(%.9g, %.9g)", p.X, p.Y)
}

// Line is the locus A·x + B·y + C = 0, stored in normal form:
// A²+B² = 1 and the leading nonzero coefficient of (A, B) is positive.
// Normal form makes rounded coefficient comparison a valid equality test.
type Line struct {
	A, B, C float64
}

// NewLine normalizes (a, b, c) into a Line.
// Returns ErrAnalyticFailure when a and b are both (near) zero.
func NewLine(a, b, c float64) (Line, error) {
	n := math.Hypot(a, b)
	if Zero(n) {
		return Line{}, fmt.Errorf("%w: degenerate line coefficients (%g, %g)", ErrAnalyticFailure, a, b)
	}
	a, b, c = a/n, b/n, c/n
	// Fix the sign so each line has a unique normal form.
	if a < -epsilon || (Zero(a) && b < 0) {
		a, b, c = -a, -b, -c
	}
	return Line{A: Round(a), B: Round(b), C: Round(c)}, nil
}

// Eq reports rounded coefficient equality of two normal-form lines.
func (l Line) Eq(m Line) bool {
	return Eq(l.A, m.A) && Eq(l.B, m.B) && Eq(l.C, m.C)
}

// String renders the line for reports and debug output.
func (l Line) String() string {
	return fmt.Sprintf("[%.9g·x + %.9g·y + %.9g = 0]", l.A, l.B, l.C)
}

// Circle is a center and a positive radius.
type Circle struct {
	Center Point
	R      float64
}

// NewCircle builds a circle, rejecting non-positive radii.
func NewCircle(center Point, r float64) (Circle, error) {
	if r <= epsilon {
		return Circle{}, fmt.Errorf("%w: non-positive radius %g", ErrAnalyticFailure, r)
	}
	return Circle{Center: center, R: Round(r)}, nil
}

// Eq reports rounded equality of center and radius.
func (c Circle) Eq(d Circle) bool {
	return c.Center.Eq(d.Center) && Eq(c.R, d.R)
}

// String renders the circle for reports and debug output.
func (c Circle) String() string {
	return fmt.Sprintf("⊙(%s, r=%.9g)", c.Center, c.R)
}
