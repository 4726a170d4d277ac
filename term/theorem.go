// Package term theorems: structural statements over a configuration's
// objects, normalized so equivalence is string equality of keys.
package term

import (
	"fmt"
	"sort"
	"strings"
)

// TheoremType enumerates the supported theorem statements.
type TheoremType uint8

// The closed set of theorem types.
const (
	EqualLineSegments TheoremType = iota + 1
	CollinearPoints
	ConcurrentLines
	ConcyclicPoints
	ParallelLines
	PerpendicularLines
	TangentCircles
	LineTangentToCircle
	EqualAngles
)

// theoremNames maps types to their report names.
var theoremNames = map[TheoremType]string{
	EqualLineSegments:   "EqualLineSegments",
	CollinearPoints:     "CollinearPoints",
	ConcurrentLines:     "ConcurrentLines",
	ConcyclicPoints:     "ConcyclicPoints",
	ParallelLines:       "ParallelLines",
	PerpendicularLines:  "PerpendicularLines",
	TangentCircles:      "TangentCircles",
	LineTangentToCircle: "LineTangentToCircle",
	EqualAngles:         "EqualAngles",
}

// String renders the theorem type name.
func (t TheoremType) String() string {
	if n, ok := theoremNames[t]; ok {
		return n
	}
	return fmt.Sprintf("TheoremType(%d)", uint8(t))
}

// ParseTheoremType resolves a template-file token to a TheoremType.
func ParseTheoremType(s string) (TheoremType, error) {
	for t, n := range theoremNames {
		if n == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown theorem type %q", ErrSignatureMismatch, s)
}

// Equivalence reports whether the theorem type has equivalence-relation
// semantics over its two parts (relevant for the transitivity filter;
// concyclicity is read as equality of the circumscribing circle).
func (t TheoremType) Equivalence() bool {
	switch t {
	case ParallelLines, PerpendicularLines, EqualLineSegments, EqualAngles, ConcyclicPoints:
		return true
	}
	return false
}

// TheoremObjectKind discriminates the entities a theorem talks about.
type TheoremObjectKind uint8

// The theorem object kinds.
const (
	TOPoint TheoremObjectKind = iota + 1
	TOLine
	TOCircle
	TOSegment
	TOAngle
)

// TheoremObject is one entity inside a theorem statement. Points are always
// by object; lines and circles are by object or by defining points;
// segments are two points; angles are two line-form theorem objects.
type TheoremObject struct {
	// Kind of the entity.
	Kind TheoremObjectKind

	// Ref is the by-object reference (point always, line/circle optionally).
	Ref *Object

	// Points are the defining points: 2 for a segment or a line-by-points,
	// 3 for a circle-by-points. Stored sorted by identifier.
	Points []*Object

	// Arms are the two line-form objects of an angle, sorted by key.
	Arms []TheoremObject
}

// PointObj builds a point theorem object.
func PointObj(p *Object) TheoremObject { return TheoremObject{Kind: TOPoint, Ref: p} }

// LineObj builds a line theorem object from a line object.
func LineObj(l *Object) TheoremObject { return TheoremObject{Kind: TOLine, Ref: l} }

// LineByPoints builds a line theorem object from two defining points.
func LineByPoints(p, q *Object) TheoremObject {
	return TheoremObject{Kind: TOLine, Points: sortByID(p, q)}
}

// CircleObj builds a circle theorem object from a circle object.
func CircleObj(c *Object) TheoremObject { return TheoremObject{Kind: TOCircle, Ref: c} }

// CircleByPoints builds a circle theorem object from three defining points.
func CircleByPoints(p, q, r *Object) TheoremObject {
	return TheoremObject{Kind: TOCircle, Points: sortByID(p, q, r)}
}

// SegmentObj builds a line-segment theorem object from its endpoints.
func SegmentObj(p, q *Object) TheoremObject {
	return TheoremObject{Kind: TOSegment, Points: sortByID(p, q)}
}

// AngleObj builds an angle theorem object from two line-form objects.
func AngleObj(a, b TheoremObject) TheoremObject {
	arms := []TheoremObject{a, b}
	if arms[1].Key() < arms[0].Key() {
		arms[0], arms[1] = arms[1], arms[0]
	}
	return TheoremObject{Kind: TOAngle, Arms: arms}
}

// sortByID returns the points sorted by identifier.
func sortByID(ps ...*Object) []*Object {
	out := make([]*Object, len(ps))
	copy(out, ps)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Key is the structural identity of the theorem object.
func (to TheoremObject) Key() string {
	switch to.Kind {
	case TOPoint:
		return fmt.Sprintf("P%d", to.Ref.ID)
	case TOLine:
		if to.Ref != nil {
			return fmt.Sprintf("L%d", to.Ref.ID)
		}
		return fmt.Sprintf("L{%d,%d}", to.Points[0].ID, to.Points[1].ID)
	case TOCircle:
		if to.Ref != nil {
			return fmt.Sprintf("C%d", to.Ref.ID)
		}
		return fmt.Sprintf("C{%d,%d,%d}", to.Points[0].ID, to.Points[1].ID, to.Points[2].ID)
	case TOSegment:
		return fmt.Sprintf("S{%d,%d}", to.Points[0].ID, to.Points[1].ID)
	case TOAngle:
		return fmt.Sprintf("A{%s,%s}", to.Arms[0].Key(), to.Arms[1].Key())
	}
	return "?"
}

// Mentions appends every configuration object referenced by to.
func (to TheoremObject) Mentions(dst []*Object) []*Object {
	if to.Ref != nil {
		dst = append(dst, to.Ref)
	}
	dst = append(dst, to.Points...)
	for _, arm := range to.Arms {
		dst = arm.Mentions(dst)
	}
	return dst
}

// Format renders the theorem object using the given identifier namer.
func (to TheoremObject) Format(name func(id int) string) string {
	switch to.Kind {
	case TOPoint:
		return name(to.Ref.ID)
	case TOLine:
		if to.Ref != nil {
			return name(to.Ref.ID)
		}
		return fmt.Sprintf("[%s, %s]", name(to.Points[0].ID), name(to.Points[1].ID))
	case TOCircle:
		if to.Ref != nil {
			return name(to.Ref.ID)
		}
		return fmt.Sprintf("(%s, %s, %s)", name(to.Points[0].ID), name(to.Points[1].ID), name(to.Points[2].ID))
	case TOSegment:
		return fmt.Sprintf("{%s, %s}", name(to.Points[0].ID), name(to.Points[1].ID))
	case TOAngle:
		return fmt.Sprintf("<%s, %s>", to.Arms[0].Format(name), to.Arms[1].Format(name))
	}
	return "?"
}

// Theorem is a statement of one type over an unordered set of theorem
// objects, held in normalized (key-sorted) order.
type Theorem struct {
	// Type of the statement.
	Type TheoremType

	// Objects in normalized order.
	Objects []TheoremObject
}

// NewTheorem normalizes the unordered object set into a Theorem.
func NewTheorem(t TheoremType, objs ...TheoremObject) Theorem {
	sorted := make([]TheoremObject, len(objs))
	copy(sorted, objs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key() < sorted[j].Key() })
	return Theorem{Type: t, Objects: sorted}
}

// Key is the structural identity of the theorem; equal keys mean
// structurally equivalent theorems.
func (t Theorem) Key() string {
	parts := make([]string, len(t.Objects))
	for i, o := range t.Objects {
		parts[i] = o.Key()
	}
	return t.Type.String() + "(" + strings.Join(parts, ",") + ")"
}

// Mentions returns every configuration object referenced by the theorem,
// deduplicated by identifier.
func (t Theorem) Mentions() []*Object {
	var all []*Object
	for _, o := range t.Objects {
		all = o.Mentions(all)
	}
	seen := map[int]bool{}
	out := all[:0]
	for _, o := range all {
		if !seen[o.ID] {
			seen[o.ID] = true
			out = append(out, o)
		}
	}
	return out
}

// Involves reports whether the theorem references the object with the
// given identifier.
func (t Theorem) Involves(id int) bool {
	for _, o := range t.Mentions() {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Format renders the theorem for reports, e.g.
// "EqualLineSegments({A, M}, {B, M})".
func (t Theorem) Format(name func(id int) string) string {
	parts := make([]string, len(t.Objects))
	for i, o := range t.Objects {
		parts[i] = o.Format(name)
	}
	return t.Type.String() + "(" + strings.Join(parts, ", ") + ")"
}
