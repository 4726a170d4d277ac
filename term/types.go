// Package term type declarations and sentinel errors.
package term

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors of the core model.
var (
	// ErrSignatureMismatch is returned when a flat input list cannot be
	// folded into a construction's parameter tree: wrong arity, wrong
	// object type, or a duplicate inside a set.
	ErrSignatureMismatch = errors.New("term: signature mismatch")

	// ErrUnknownConstruction is returned by ByName for names outside the
	// catalogue and any registered composed constructions.
	ErrUnknownConstruction = errors.New("term: unknown construction")

	// ErrUnknownLayout is returned by ParseLayoutTag for unknown tokens.
	ErrUnknownLayout = errors.New("term: unknown layout tag")
)

// ObjectType is the geometric type of an object.
type ObjectType uint8

// The closed set of object types.
const (
	Point ObjectType = iota + 1
	Line
	Circle
)

// String renders the type name.
func (t ObjectType) String() string {
	switch t {
	case Point:
		return "Point"
	case Line:
		return "Line"
	case Circle:
		return "Circle"
	}
	return fmt.Sprintf("ObjectType(%d)", uint8(t))
}

// LayoutTag names the shape of a configuration's loose-object holder.
type LayoutTag uint8

// The supported layouts.
const (
	LineSegment LayoutTag = iota + 1
	Triangle
	RightTriangle
	Quadrilateral
	ExplicitLineAndPoint
	ExplicitLineAndTwoPoints
)

// layoutNames maps tags to their input-file tokens.
var layoutNames = map[LayoutTag]string{
	LineSegment:              "LineSegment",
	Triangle:                 "Triangle",
	RightTriangle:            "RightTriangle",
	Quadrilateral:            "Quadrilateral",
	ExplicitLineAndPoint:     "ExplicitLineAndPoint",
	ExplicitLineAndTwoPoints: "ExplicitLineAndTwoPoints",
}

// String renders the layout token as written in input files.
func (l LayoutTag) String() string {
	if n, ok := layoutNames[l]; ok {
		return n
	}
	return fmt.Sprintf("LayoutTag(%d)", uint8(l))
}

// ParseLayoutTag resolves an input-file token to a LayoutTag.
func ParseLayoutTag(s string) (LayoutTag, error) {
	for tag, name := range layoutNames {
		if name == s {
			return tag, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// LooseTypes returns the object types of the layout's loose objects,
// in holder order.
func (l LayoutTag) LooseTypes() []ObjectType {
	switch l {
	case LineSegment:
		return []ObjectType{Point, Point}
	case Triangle, RightTriangle:
		return []ObjectType{Point, Point, Point}
	case Quadrilateral:
		return []ObjectType{Point, Point, Point, Point}
	case ExplicitLineAndPoint:
		return []ObjectType{Line, Point}
	case ExplicitLineAndTwoPoints:
		return []ObjectType{Line, Point, Point}
	}
	return nil
}

// Symmetries returns the permutations of loose-object positions that
// preserve the layout's geometric meaning. Position permutations, not
// identifier permutations: element i of a permutation says which original
// position moves to position i.
//
//   - LineSegment: the two endpoints swap (S2).
//   - Triangle: all 6 permutations of the vertices (S3).
//   - RightTriangle: the right angle pins the first vertex; only the two
//     legs swap.
//   - Quadrilateral: the dihedral group of the 4-cycle (8 permutations) —
//     rotations and reflections preserve convex adjacency.
//   - ExplicitLineAndPoint: trivial.
//   - ExplicitLineAndTwoPoints: the two points swap; the line is pinned.
func (l LayoutTag) Symmetries() [][]int {
	switch l {
	case LineSegment:
		return [][]int{{0, 1}, {1, 0}}
	case Triangle:
		return [][]int{
			{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
		}
	case RightTriangle:
		return [][]int{{0, 1, 2}, {0, 2, 1}}
	case Quadrilateral:
		return [][]int{
			{0, 1, 2, 3}, {1, 2, 3, 0}, {2, 3, 0, 1}, {3, 0, 1, 2},
			{3, 2, 1, 0}, {0, 3, 2, 1}, {1, 0, 3, 2}, {2, 1, 0, 3},
		}
	case ExplicitLineAndPoint:
		return [][]int{{0, 1}}
	case ExplicitLineAndTwoPoints:
		return [][]int{{0, 1, 2}, {0, 2, 1}}
	}
	return nil
}

// Object is a node of the configuration DAG: either a loose primitive
// (Construction == nil) or the result of applying a construction to earlier
// objects. Objects are immutable once built.
type Object struct {
	// ID is the stable identifier, unique within a run.
	ID int

	// Type is the geometric type of the object.
	Type ObjectType

	// Construction is nil for loose objects.
	Construction *Construction

	// Args is the normalized argument tuple matching Construction.Params.
	Args []Argument

	// OutIndex selects among the outputs of a multi-output construction;
	// zero for single-output constructions.
	OutIndex int
}

// Loose reports whether the object is a free primitive.
func (o *Object) Loose() bool { return o.Construction == nil }

// Parameter is the recursive signature form: a typed object slot, or a set
// of Count values each matching Inner.
type Parameter struct {
	// Type is the target type of an object parameter (Count == 0).
	Type ObjectType

	// Inner is the element parameter of a set parameter (Count > 0).
	Inner *Parameter

	// Count is the multiplicity of a set parameter; zero means object.
	Count int
}

// ObjParam builds an object parameter with target type t.
func ObjParam(t ObjectType) Parameter { return Parameter{Type: t} }

// SetParam builds a set parameter of n values matching inner.
func SetParam(inner Parameter, n int) Parameter {
	return Parameter{Inner: &inner, Count: n}
}

// IsSet reports whether p is a set parameter.
func (p Parameter) IsSet() bool { return p.Count > 0 }

// Leaves returns how many flat objects instantiate p.
func (p Parameter) Leaves() int {
	if !p.IsSet() {
		return 1
	}
	return p.Count * p.Inner.Leaves()
}

// LeafType returns the object type at the leaves of p.
func (p Parameter) LeafType() ObjectType {
	if p.IsSet() {
		return p.Inner.LeafType()
	}
	return p.Type
}

// String renders the parameter, e.g. "Point" or "{Point×3}".
func (p Parameter) String() string {
	if p.IsSet() {
		return fmt.Sprintf("{%s×%d}", p.Inner, p.Count)
	}
	return p.Type.String()
}

// Argument instantiates a parameter: a single object, or an unordered set
// of inner arguments. Sets are normalized (duplicate-free, stable order) by
// SetArg.
type Argument struct {
	// Object is non-nil for an object argument.
	Object *Object

	// Set is non-nil for a set argument.
	Set []Argument
}

// ObjArg wraps an object into an argument.
func ObjArg(o *Object) Argument { return Argument{Object: o} }

// SetArg builds a normalized set argument: inner arguments sorted by their
// identifier key, duplicates rejected as ErrSignatureMismatch.
func SetArg(inner ...Argument) (Argument, error) {
	sorted := make([]Argument, len(inner))
	copy(sorted, inner)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].key() < sorted[j].key() })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].key() == sorted[i-1].key() {
			return Argument{}, fmt.Errorf("%w: duplicate value %s in set", ErrSignatureMismatch, sorted[i].key())
		}
	}
	return Argument{Set: sorted}, nil
}

// IsSet reports whether a is a set argument.
func (a Argument) IsSet() bool { return a.Set != nil }

// key is the identifier-based ordering key used for set normalization and
// tuple deduplication. It is NOT the canonical string (which depends on an
// identifier remapping); see the canon package for that.
func (a Argument) key() string {
	if a.Object != nil {
		return fmt.Sprintf("%06d", a.Object.ID)
	}
	parts := make([]string, len(a.Set))
	for i, in := range a.Set {
		parts[i] = in.key()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// TupleKey returns the identifier-based key of a whole argument tuple,
// used by the argument generator to deduplicate candidates.
func TupleKey(args []Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.key()
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// Leaves appends the flat objects of a to dst, in normalized order.
func (a Argument) Leaves(dst []*Object) []*Object {
	if a.Object != nil {
		return append(dst, a.Object)
	}
	for _, in := range a.Set {
		dst = in.Leaves(dst)
	}
	return dst
}
