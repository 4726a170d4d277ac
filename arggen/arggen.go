package arggen

import (
	"github.com/katalvlaran/geogen/term"
)

// Stream is a lazy, finite stream of distinct argument tuples for one
// (configuration, construction) pair. Not safe for concurrent use.
type Stream struct {
	con *term.Construction

	// leafTypes is the signature's leaf type sequence, in signature order.
	leafTypes []term.ObjectType

	// types holds each distinct leaf type once, in first-appearance order;
	// variants[i] are the ordered variations drawn for types[i].
	types    []term.ObjectType
	variants [][][]*term.Object

	// odo is the cartesian odometer over variants; exhausted when empty
	// streams exist or the last position wraps.
	odo  []int
	done bool

	// seen holds tuple keys already produced; forbidden records, per tuple
	// key, the output indices already represented in the configuration, so
	// multi-output constructions stay available until every index is taken.
	seen      map[string]struct{}
	forbidden map[string]map[int]struct{}
}

// New builds the tuple stream for con over the objects of c.
func New(c *term.Configuration, con *term.Construction) *Stream {
	s := &Stream{
		con:       con,
		seen:      make(map[string]struct{}),
		forbidden: forbiddenIndex(c, con),
	}
	for _, p := range con.Params {
		s.collectLeafTypes(p)
	}
	// One variation list per distinct leaf type.
	counts := map[term.ObjectType]int{}
	for _, t := range s.leafTypes {
		counts[t]++
	}
	for _, t := range s.leafTypes {
		if !containsType(s.types, t) {
			s.types = append(s.types, t)
			s.variants = append(s.variants, variations(c.ObjectsOfType(t), counts[t]))
		}
	}
	s.odo = make([]int, len(s.types))
	for _, v := range s.variants {
		if len(v) == 0 {
			s.done = true // some type has too few objects
			break
		}
	}
	return s
}

// Next returns the next distinct argument tuple, or (nil, false) when the
// stream is exhausted.
func (s *Stream) Next() ([]term.Argument, bool) {
	for !s.done {
		inputs := s.assemble()
		s.advance()

		args, err := term.Match(s.con, inputs)
		if err != nil {
			continue // duplicate inside a set under this ordering
		}
		key := term.TupleKey(args)
		if _, ok := s.seen[key]; ok {
			continue
		}
		s.seen[key] = struct{}{}
		if len(s.forbidden[key]) >= s.con.Outputs {
			continue
		}
		return args, true
	}
	return nil, false
}

// Taken reports whether the source configuration already holds an object of
// the stream's construction with the given tuple key and output index; the
// caller skips such positions instead of re-scanning the configuration.
func (s *Stream) Taken(key string, outIdx int) bool {
	_, ok := s.forbidden[key][outIdx]
	return ok
}

// All drains the stream; a convenience for tests.
func (s *Stream) All() [][]term.Argument {
	var out [][]term.Argument
	for {
		args, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, args)
	}
}

// assemble flattens the current odometer position into the signature-order
// input list.
func (s *Stream) assemble() []*term.Object {
	// Per-type cursor into the selected variation.
	cursor := make([]int, len(s.types))
	inputs := make([]*term.Object, len(s.leafTypes))
	for i, t := range s.leafTypes {
		ti := typeIndex(s.types, t)
		sel := s.variants[ti][s.odo[ti]]
		inputs[i] = sel[cursor[ti]]
		cursor[ti]++
	}
	return inputs
}

// advance steps the cartesian odometer.
func (s *Stream) advance() {
	for i := len(s.odo) - 1; i >= 0; i-- {
		s.odo[i]++
		if s.odo[i] < len(s.variants[i]) {
			return
		}
		s.odo[i] = 0
	}
	s.done = true
}

// collectLeafTypes appends p's leaf types in signature order.
func (s *Stream) collectLeafTypes(p term.Parameter) {
	if !p.IsSet() {
		s.leafTypes = append(s.leafTypes, p.Type)
		return
	}
	for i := 0; i < p.Count; i++ {
		s.collectLeafTypes(*p.Inner)
	}
}

// forbiddenIndex records, per tuple key, the output indices of con already
// present in c.
func forbiddenIndex(c *term.Configuration, con *term.Construction) map[string]map[int]struct{} {
	idx := make(map[string]map[int]struct{})
	for _, o := range c.Constructed {
		if o.Construction != con {
			continue
		}
		key := term.TupleKey(o.Args)
		if idx[key] == nil {
			idx[key] = make(map[int]struct{})
		}
		idx[key][o.OutIndex] = struct{}{}
	}
	return idx
}

// variations returns all ordered k-variations without repetition of pool.
func variations(pool []*term.Object, k int) [][]*term.Object {
	if k > len(pool) {
		return nil
	}
	var (
		out  [][]*term.Object
		cur  = make([]*term.Object, 0, k)
		used = make([]bool, len(pool))
		rec  func()
	)
	rec = func() {
		if len(cur) == k {
			sel := make([]*term.Object, k)
			copy(sel, cur)
			out = append(out, sel)
			return
		}
		for i, o := range pool {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, o)
			rec()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	rec()
	return out
}

// containsType reports membership of t in ts.
func containsType(ts []term.ObjectType, t term.ObjectType) bool {
	return typeIndex(ts, t) >= 0
}

// typeIndex returns the position of t in ts, or -1.
func typeIndex(ts []term.ObjectType, t term.ObjectType) int {
	for i, x := range ts {
		if x == t {
			return i
		}
	}
	return -1
}
