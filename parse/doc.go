// Package parse reads the two line-oriented text formats of the generator:
// input files and template-theorem files.
//
// An input file has three sections in order. The layout declaration names
// the loose-object holder and its identifiers:
//
//	Triangle A B C
//
// Then one line per constructed object of the initial configuration, where
// set arguments may be braced and a multi-output construction may carry an
// output index:
//
//	M = Midpoint({A, B})
//	X = IntersectionOfLineAndCircle(l, k)[1]
//
// Finally a Rules: block listing the construction names allowed during
// generation. Blank lines and # comments are ignored everywhere. Parse
// errors wrap ErrParse and carry file:line:column.
//
// A template file holds numbered blocks of the same shape, each closed by a
// theorem declaration instead of a Rules: block:
//
//	1:
//	LineSegment A B
//	M = Midpoint({A, B})
//	Theorem: EqualLineSegments({A, M}, {B, M})
//
// Theorem objects are written as a bare identifier (any object by name),
// {A, B} for a segment, [A, B] for a line by two points, (A, B, C) for a
// circle by three points, and <arm, arm> for an angle of two line forms.
package parse
