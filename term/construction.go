// Package term construction catalogue: the closed set of predefined
// constructions and user-composed macros built on top of them.
package term

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// ConstructionKind enumerates the predefined constructions. KindComposed
// marks user macros whose body is a sub-configuration.
type ConstructionKind uint8

// The closed set of construction kinds.
const (
	KindComposed ConstructionKind = iota
	KindMidpoint
	KindLineFromPoints
	KindIntersectionOfLines
	KindCircumcircle
	KindPerpendicularLine
	KindParallelLine
	KindPerpendicularProjection
	KindPerpendicularBisector
	KindInternalAngleBisector
	KindCircleWithCenter
	KindCenterOfCircle
	KindIntersectionOfLineAndCircle
	KindIntersectionOfCircles
	KindTangentLine
	KindSecondIntersection
)

// Construction describes one way to build a new object: a name, an ordered
// parameter signature, an output type, and (for multi-output constructions)
// how many outputs exist. A composed construction additionally carries its
// macro body.
type Construction struct {
	// Kind discriminates predefined constructions from composed macros.
	Kind ConstructionKind

	// ID is the stable identifier used in canonical strings. Predefined
	// constructions use their kind value; composed ones are assigned from
	// a counter above composedIDBase.
	ID int

	// Name as written in input files.
	Name string

	// Params is the ordered signature.
	Params []Parameter

	// Output is the type of every output object.
	Output ObjectType

	// Outputs is the number of outputs (1 for most, 2 for the two-point
	// intersections and tangents).
	Outputs int

	// Macro is the body of a composed construction: a sub-configuration
	// whose last constructed object is the output. Nil for predefined.
	Macro *Configuration
}

// composedIDBase keeps composed construction IDs disjoint from the
// predefined kind values.
const composedIDBase = 64

// composedIDSeq hands out IDs for composed constructions.
var composedIDSeq atomic.Int64

// composed holds the registered macros; guarded by composedMu because
// template loading may race with nothing else, but the lock keeps the
// invariant explicit.
var (
	composedMu sync.RWMutex
	composed   = map[string]*Construction{}
)

// predefined is the immutable catalogue, indexed by kind.
var predefined = func() map[ConstructionKind]*Construction {
	list := []*Construction{
		{Kind: KindMidpoint, Name: "Midpoint",
			Params: []Parameter{SetParam(ObjParam(Point), 2)}, Output: Point, Outputs: 1},
		{Kind: KindLineFromPoints, Name: "LineFromPoints",
			Params: []Parameter{SetParam(ObjParam(Point), 2)}, Output: Line, Outputs: 1},
		{Kind: KindIntersectionOfLines, Name: "IntersectionOfLines",
			Params: []Parameter{SetParam(ObjParam(Line), 2)}, Output: Point, Outputs: 1},
		{Kind: KindCircumcircle, Name: "Circumcircle",
			Params: []Parameter{SetParam(ObjParam(Point), 3)}, Output: Circle, Outputs: 1},
		{Kind: KindPerpendicularLine, Name: "PerpendicularLine",
			Params: []Parameter{ObjParam(Line), ObjParam(Point)}, Output: Line, Outputs: 1},
		{Kind: KindParallelLine, Name: "ParallelLine",
			Params: []Parameter{ObjParam(Line), ObjParam(Point)}, Output: Line, Outputs: 1},
		{Kind: KindPerpendicularProjection, Name: "PerpendicularProjection",
			Params: []Parameter{ObjParam(Point), ObjParam(Line)}, Output: Point, Outputs: 1},
		{Kind: KindPerpendicularBisector, Name: "PerpendicularBisector",
			Params: []Parameter{SetParam(ObjParam(Point), 2)}, Output: Line, Outputs: 1},
		{Kind: KindInternalAngleBisector, Name: "InternalAngleBisector",
			Params: []Parameter{ObjParam(Point), SetParam(ObjParam(Point), 2)}, Output: Line, Outputs: 1},
		{Kind: KindCircleWithCenter, Name: "CircleWithCenter",
			Params: []Parameter{ObjParam(Point), ObjParam(Point)}, Output: Circle, Outputs: 1},
		{Kind: KindCenterOfCircle, Name: "CenterOfCircle",
			Params: []Parameter{ObjParam(Circle)}, Output: Point, Outputs: 1},
		{Kind: KindIntersectionOfLineAndCircle, Name: "IntersectionOfLineAndCircle",
			Params: []Parameter{ObjParam(Line), ObjParam(Circle)}, Output: Point, Outputs: 2},
		{Kind: KindIntersectionOfCircles, Name: "IntersectionOfCircles",
			Params: []Parameter{SetParam(ObjParam(Circle), 2)}, Output: Point, Outputs: 2},
		{Kind: KindTangentLine, Name: "TangentLine",
			Params: []Parameter{ObjParam(Point), ObjParam(Circle)}, Output: Line, Outputs: 2},
		{Kind: KindSecondIntersection, Name: "SecondIntersection",
			Params: []Parameter{ObjParam(Line), ObjParam(Circle), ObjParam(Point)}, Output: Point, Outputs: 1},
	}
	m := make(map[ConstructionKind]*Construction, len(list))
	for _, c := range list {
		c.ID = int(c.Kind)
		m[c.Kind] = c
	}
	return m
}()

// byName indexes the predefined catalogue for input-file resolution.
var byName = func() map[string]*Construction {
	m := make(map[string]*Construction, len(predefined))
	for _, c := range predefined {
		m[c.Name] = c
	}
	return m
}()

// Catalogue returns the predefined constructions in a stable (ID) order.
// The returned slice is fresh; the constructions themselves are shared and
// must not be modified.
func Catalogue() []*Construction {
	out := make([]*Construction, 0, len(predefined))
	for k := KindMidpoint; k <= KindSecondIntersection; k++ {
		if c, ok := predefined[k]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Predefined returns the construction of the given kind.
func Predefined(kind ConstructionKind) *Construction {
	return predefined[kind]
}

// ByName resolves a construction name, predefined first, then any composed
// constructions registered through NewComposed.
func ByName(name string) (*Construction, error) {
	if c, ok := byName[name]; ok {
		return c, nil
	}
	composedMu.RLock()
	c, ok := composed[name]
	composedMu.RUnlock()
	if ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownConstruction, name)
}

// NewComposed registers a composed construction (a user macro). The macro's
// loose objects are its parameters, in holder order; its last constructed
// object is the output.
func NewComposed(name string, macro *Configuration) (*Construction, error) {
	if macro == nil || len(macro.Constructed) == 0 {
		return nil, fmt.Errorf("%w: composed construction %q needs a non-empty body", ErrSignatureMismatch, name)
	}
	if _, err := ByName(name); err == nil {
		return nil, fmt.Errorf("%w: name %q already taken", ErrUnknownConstruction, name)
	}
	params := make([]Parameter, len(macro.Loose))
	for i, lo := range macro.Loose {
		params[i] = ObjParam(lo.Type)
	}
	out := macro.Constructed[len(macro.Constructed)-1]
	c := &Construction{
		Kind:    KindComposed,
		ID:      composedIDBase + int(composedIDSeq.Add(1)),
		Name:    name,
		Params:  params,
		Output:  out.Type,
		Outputs: 1,
		Macro:   macro,
	}
	composedMu.Lock()
	composed[name] = c
	composedMu.Unlock()
	return c, nil
}
