package canon

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/geogen/term"
)

// ErrBadRemap is returned when a remap does not cover a configuration's
// loose identifiers.
var ErrBadRemap = errors.New("canon: remap does not match loose objects")

// Remap is a permutation of loose identifiers: Remap[oldID] = newID.
// Loose identifiers are always 0..n-1 (term.NewLooseHolder assigns them and
// Rewrite preserves the range), so a slice suffices.
type Remap []int

// Identity returns the identity remap over n loose objects.
func Identity(n int) Remap {
	r := make(Remap, n)
	for i := range r {
		r[i] = i
	}
	return r
}

// Converter renders object and configuration strings under one fixed remap,
// memoizing per object so shared argument subtrees render once.
type Converter struct {
	remap Remap
	memo  map[int]string
}

// NewConverter builds a converter for the given remap.
func NewConverter(remap Remap) *Converter {
	return &Converter{remap: remap, memo: make(map[int]string)}
}

// ObjectString renders one object under the converter's remap.
func (cv *Converter) ObjectString(o *term.Object) string {
	if s, ok := cv.memo[o.ID]; ok {
		return s
	}
	var s string
	if o.Loose() {
		s = strconv.Itoa(cv.remap[o.ID])
	} else {
		s = strconv.Itoa(o.Construction.ID) + cv.tupleString(o.Args)
		if o.OutIndex != 0 {
			s += "[" + strconv.Itoa(o.OutIndex) + "]"
		}
	}
	cv.memo[o.ID] = s
	return s
}

// tupleString renders an argument tuple.
func (cv *Converter) tupleString(args []term.Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = cv.argString(a)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// argString renders one argument; set members sort lexicographically by
// their rendered strings, which depend on the remap.
func (cv *Converter) argString(a term.Argument) string {
	if !a.IsSet() {
		return cv.ObjectString(a.Object)
	}
	parts := make([]string, len(a.Set))
	for i, in := range a.Set {
		parts[i] = cv.argString(in)
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ",") + "}"
}

// ConfigString renders a whole configuration under the converter's remap.
func (cv *Converter) ConfigString(c *term.Configuration) (string, error) {
	if len(cv.remap) != len(c.Loose) {
		return "", fmt.Errorf("%w: %d ids for %d loose objects", ErrBadRemap, len(cv.remap), len(c.Loose))
	}
	// Loose objects render in remapped-identifier order. Symmetry
	// permutations only exchange same-type positions, so this prefix is the
	// same under every admissible remap — the constructed part alone
	// decides the lexicographic minimum.
	byNewID := make([]*term.Object, len(c.Loose))
	for _, lo := range c.Loose {
		nid := cv.remap[lo.ID]
		if nid < 0 || nid >= len(byNewID) {
			return "", fmt.Errorf("%w: identifier %d", ErrBadRemap, nid)
		}
		byNewID[nid] = lo
	}
	var b strings.Builder
	b.WriteString(c.Layout.String())
	b.WriteByte('[')
	for i, lo := range byNewID {
		if lo == nil {
			return "", fmt.Errorf("%w: identifier gap at %d", ErrBadRemap, i)
		}
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(typeLetter(lo.Type))
		b.WriteString(strconv.Itoa(i))
	}
	b.WriteByte(']')

	parts := make([]string, len(c.Constructed))
	for i, o := range c.Constructed {
		parts[i] = cv.ObjectString(o)
	}
	sort.Strings(parts)
	for _, p := range parts {
		b.WriteByte('|')
		b.WriteString(p)
	}
	return b.String(), nil
}

// Least enumerates every remap the layout's symmetry group admits, renders
// the configuration under each, and returns the lexicographically smallest
// string with its winning remap. Ties keep the first winner.
func Least(c *term.Configuration) (string, Remap, error) {
	perms := c.Layout.Symmetries()
	if perms == nil {
		return "", nil, fmt.Errorf("%w: layout %v has no symmetry group", ErrBadRemap, c.Layout)
	}
	var (
		bestKey   string
		bestRemap Remap
	)
	for _, perm := range perms {
		// The object at original position perm[i] takes the identifier of
		// position i.
		remap := make(Remap, len(c.Loose))
		for i, p := range perm {
			remap[c.Loose[p].ID] = c.Loose[i].ID
		}
		key, err := NewConverter(remap).ConfigString(c)
		if err != nil {
			return "", nil, err
		}
		if bestRemap == nil || key < bestKey {
			bestKey, bestRemap = key, remap
		}
	}
	return bestKey, bestRemap, nil
}

// Key returns the canonical key of a configuration.
func Key(c *term.Configuration) (string, error) {
	key, _, err := Least(c)
	return key, err
}

// typeLetter abbreviates an object type for the configuration prefix.
func typeLetter(t term.ObjectType) string {
	switch t {
	case term.Point:
		return "P"
	case term.Line:
		return "L"
	case term.Circle:
		return "C"
	}
	return "?"
}

// Hash maps a canonical key to the stable 64-bit form used by accepted-key
// sets; the string itself is only needed for debugging.
func Hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Rewrite applies a remap, producing a new configuration in canonical
// identifier form: loose objects carry their remapped identifiers in holder
// order, constructed objects are renumbered sequentially in construction
// order, and every argument points at the rebuilt objects. The input
// configuration is untouched.
func Rewrite(c *term.Configuration, remap Remap) (*term.Configuration, error) {
	if len(remap) != len(c.Loose) {
		return nil, fmt.Errorf("%w: %d ids for %d loose objects", ErrBadRemap, len(remap), len(c.Loose))
	}
	// The loose object whose new identifier is i moves to holder position i.
	loose := make([]*term.Object, len(c.Loose))
	oldToNew := make(map[int]*term.Object, len(c.Loose)+len(c.Constructed))
	for _, lo := range c.Loose {
		nid := remap[lo.ID]
		if nid < 0 || nid >= len(loose) || loose[nid] != nil {
			return nil, fmt.Errorf("%w: identifier %d", ErrBadRemap, nid)
		}
		fresh := &term.Object{ID: nid, Type: lo.Type}
		loose[nid] = fresh
		oldToNew[lo.ID] = fresh
	}

	constructed := make([]*term.Object, len(c.Constructed))
	nextID := len(loose)
	for i, o := range c.Constructed {
		args, err := rebuildArgs(o.Args, oldToNew)
		if err != nil {
			return nil, err
		}
		fresh := &term.Object{
			ID:           nextID,
			Type:         o.Type,
			Construction: o.Construction,
			Args:         args,
			OutIndex:     o.OutIndex,
		}
		nextID++
		constructed[i] = fresh
		oldToNew[o.ID] = fresh
	}

	out := &term.Configuration{
		Layout:      c.Layout,
		Loose:       loose,
		Constructed: constructed,
	}
	if c.Last != nil {
		out.Last = oldToNew[c.Last.ID]
	}
	return out, nil
}

// rebuildArgs maps an argument tree onto rebuilt objects, re-normalizing
// sets because member identifiers changed.
func rebuildArgs(args []term.Argument, oldToNew map[int]*term.Object) ([]term.Argument, error) {
	out := make([]term.Argument, len(args))
	for i, a := range args {
		na, err := rebuildArg(a, oldToNew)
		if err != nil {
			return nil, err
		}
		out[i] = na
	}
	return out, nil
}

// rebuildArg maps a single argument.
func rebuildArg(a term.Argument, oldToNew map[int]*term.Object) (term.Argument, error) {
	if !a.IsSet() {
		fresh, ok := oldToNew[a.Object.ID]
		if !ok {
			return term.Argument{}, fmt.Errorf("%w: argument references unknown object %d", ErrBadRemap, a.Object.ID)
		}
		return term.ObjArg(fresh), nil
	}
	inner := make([]term.Argument, len(a.Set))
	for i, in := range a.Set {
		na, err := rebuildArg(in, oldToNew)
		if err != nil {
			return term.Argument{}, err
		}
		inner[i] = na
	}
	return term.SetArg(inner...)
}
