// Package term configurations: the loose-object holder, copy-on-extend
// growth, signature matching, and the internal-object closure.
package term

import (
	"fmt"
	"sort"
)

// Configuration is an ordered list of constructed objects preceded by the
// loose-object holder (the layout tag plus its loose objects). Every
// argument of a constructed object refers to an earlier object, so the
// object list is topologically ordered by construction.
type Configuration struct {
	// Layout tags the shape of the loose-object holder.
	Layout LayoutTag

	// Loose objects, in holder order. IDs are 0..len(Loose)-1 for a fresh
	// holder; canonical rewriting preserves that range.
	Loose []*Object

	// Constructed objects in construction order.
	Constructed []*Object

	// Last is the most recently added constructed object; nil for an
	// initial configuration as parsed from an input file.
	Last *Object
}

// NewLooseHolder builds the initial configuration for a layout: only the
// loose objects, with IDs 0..n-1 in holder order.
func NewLooseHolder(layout LayoutTag) (*Configuration, error) {
	types := layout.LooseTypes()
	if types == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownLayout, layout)
	}
	loose := make([]*Object, len(types))
	for i, t := range types {
		loose[i] = &Object{ID: i, Type: t}
	}
	return &Configuration{Layout: layout, Loose: loose}, nil
}

// NewConstructed builds a constructed object from a construction and a flat
// input list, folding the inputs into the signature's argument tree.
// outIndex selects among the outputs of a multi-output construction.
func NewConstructed(id int, con *Construction, inputs []*Object, outIndex int) (*Object, error) {
	if outIndex < 0 || outIndex >= con.Outputs {
		return nil, fmt.Errorf("%w: output index %d out of range for %s", ErrSignatureMismatch, outIndex, con.Name)
	}
	args, err := Match(con, inputs)
	if err != nil {
		return nil, err
	}
	return &Object{ID: id, Type: con.Output, Construction: con, Args: args, OutIndex: outIndex}, nil
}

// Match folds a flat input list into the canonical argument tree of con's
// signature, normalizing set arguments. Fails with ErrSignatureMismatch on
// wrong arity, wrong types, or duplicates inside a set.
func Match(con *Construction, inputs []*Object) ([]Argument, error) {
	want := 0
	for _, p := range con.Params {
		want += p.Leaves()
	}
	if len(inputs) != want {
		return nil, fmt.Errorf("%w: %s takes %d objects, got %d", ErrSignatureMismatch, con.Name, want, len(inputs))
	}
	args := make([]Argument, len(con.Params))
	rest := inputs
	var err error
	for i, p := range con.Params {
		args[i], rest, err = fold(p, rest)
		if err != nil {
			return nil, fmt.Errorf("%s, parameter %d (%s): %w", con.Name, i+1, p, err)
		}
	}
	return args, nil
}

// fold consumes the leaves of one parameter from the front of inputs.
func fold(p Parameter, inputs []*Object) (Argument, []*Object, error) {
	if !p.IsSet() {
		o := inputs[0]
		if o == nil {
			return Argument{}, nil, fmt.Errorf("%w: nil object", ErrSignatureMismatch)
		}
		if o.Type != p.Type {
			return Argument{}, nil, fmt.Errorf("%w: want %s, got %s #%d", ErrSignatureMismatch, p.Type, o.Type, o.ID)
		}
		return ObjArg(o), inputs[1:], nil
	}
	inner := make([]Argument, p.Count)
	rest := inputs
	var err error
	for i := 0; i < p.Count; i++ {
		inner[i], rest, err = fold(*p.Inner, rest)
		if err != nil {
			return Argument{}, nil, err
		}
	}
	set, err := SetArg(inner...)
	if err != nil {
		return Argument{}, nil, err
	}
	return set, rest, nil
}

// Append returns a new configuration extending c by one constructed object.
// The old configuration is untouched; object slices are copied shallowly.
func (c *Configuration) Append(o *Object) *Configuration {
	next := &Configuration{
		Layout:      c.Layout,
		Loose:       c.Loose,
		Constructed: make([]*Object, len(c.Constructed)+1),
		Last:        o,
	}
	copy(next.Constructed, c.Constructed)
	next.Constructed[len(c.Constructed)] = o
	return next
}

// Objects returns loose objects followed by constructed objects.
func (c *Configuration) Objects() []*Object {
	out := make([]*Object, 0, len(c.Loose)+len(c.Constructed))
	out = append(out, c.Loose...)
	return append(out, c.Constructed...)
}

// ObjectsOfType returns the configuration's objects of type t, in order.
func (c *Configuration) ObjectsOfType(t ObjectType) []*Object {
	var out []*Object
	for _, o := range c.Objects() {
		if o.Type == t {
			out = append(out, o)
		}
	}
	return out
}

// ByID finds an object by identifier, or nil.
func (c *Configuration) ByID(id int) *Object {
	for _, o := range c.Objects() {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// NextID returns the identifier for the next constructed object.
func (c *Configuration) NextID() int {
	next := 0
	for _, o := range c.Objects() {
		if o.ID >= next {
			next = o.ID + 1
		}
	}
	return next
}

// InternalObjects returns the transitive closure of o over its argument
// subtrees, including o itself, deduplicated and sorted by identifier.
func InternalObjects(o *Object) []*Object {
	seen := map[int]*Object{}
	collect(o, seen)
	out := make([]*Object, 0, len(seen))
	for _, obj := range seen {
		out = append(out, obj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Closure returns the argument-dependency closure of the given objects,
// deduplicated and sorted by identifier.
func Closure(objs ...*Object) []*Object {
	seen := map[int]*Object{}
	for _, o := range objs {
		collect(o, seen)
	}
	out := make([]*Object, 0, len(seen))
	for _, obj := range seen {
		out = append(out, obj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// collect walks the argument DAG below o.
func collect(o *Object, seen map[int]*Object) {
	if o == nil {
		return
	}
	if _, ok := seen[o.ID]; ok {
		return
	}
	seen[o.ID] = o
	var leaves []*Object
	for _, a := range o.Args {
		leaves = a.Leaves(leaves)
	}
	for _, in := range leaves {
		collect(in, seen)
	}
}
