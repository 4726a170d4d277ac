package arggen_test

import (
	"testing"

	"github.com/katalvlaran/geogen/arggen"
	"github.com/katalvlaran/geogen/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStream_MidpointOnTriangle verifies the C(m,n) law: a set of 2 over
// 3 points yields 3 tuples, one per unordered pair.
func TestStream_MidpointOnTriangle(t *testing.T) {
	c, err := term.NewLooseHolder(term.Triangle)
	require.NoError(t, err)
	mid, err := term.ByName("Midpoint")
	require.NoError(t, err)

	tuples := arggen.New(c, mid).All()
	assert.Len(t, tuples, 3, "C(3,2) unordered pairs")

	keys := map[string]bool{}
	for _, args := range tuples {
		keys[term.TupleKey(args)] = true
	}
	assert.Len(t, keys, 3, "all tuples distinct")
}

// TestStream_TooFewObjects verifies the empty stream on starved types.
func TestStream_TooFewObjects(t *testing.T) {
	c, err := term.NewLooseHolder(term.LineSegment)
	require.NoError(t, err)

	circ, err := term.ByName("Circumcircle")
	require.NoError(t, err)
	assert.Empty(t, arggen.New(c, circ).All(), "a 3-set over 2 points yields nothing")

	iol, err := term.ByName("IntersectionOfLines")
	require.NoError(t, err)
	assert.Empty(t, arggen.New(c, iol).All(), "no lines in a segment layout")
}

// TestStream_ForbiddenIndex verifies that tuples already represented in the
// configuration are not produced again.
func TestStream_ForbiddenIndex(t *testing.T) {
	c, err := term.NewLooseHolder(term.Triangle)
	require.NoError(t, err)
	mid, err := term.ByName("Midpoint")
	require.NoError(t, err)

	m, err := term.NewConstructed(c.NextID(), mid, []*term.Object{c.Loose[0], c.Loose[1]}, 0)
	require.NoError(t, err)
	c = c.Append(m)

	tuples := arggen.New(c, mid).All()
	// 4 points now: C(4,2)=6 pairs, minus the one already built.
	assert.Len(t, tuples, 5)
	for _, args := range tuples {
		assert.NotEqual(t, term.TupleKey(m.Args), term.TupleKey(args))
	}
}

// TestStream_TakenIndices verifies the per-index occupancy view of a
// two-output construction: a tuple with one crossing built keeps flowing,
// and Taken tells the free index from the occupied one.
func TestStream_TakenIndices(t *testing.T) {
	c, err := term.NewLooseHolder(term.ExplicitLineAndPoint)
	require.NoError(t, err)
	l, p := c.Loose[0], c.Loose[1]

	proj, err := term.ByName("PerpendicularProjection")
	require.NoError(t, err)
	foot, err := term.NewConstructed(c.NextID(), proj, []*term.Object{p, l}, 0)
	require.NoError(t, err)
	c = c.Append(foot)

	cwc, err := term.ByName("CircleWithCenter")
	require.NoError(t, err)
	circle, err := term.NewConstructed(c.NextID(), cwc, []*term.Object{p, foot}, 0)
	require.NoError(t, err)
	c = c.Append(circle)

	iolc, err := term.ByName("IntersectionOfLineAndCircle")
	require.NoError(t, err)
	x0, err := term.NewConstructed(c.NextID(), iolc, []*term.Object{l, circle}, 0)
	require.NoError(t, err)
	c = c.Append(x0)

	s := arggen.New(c, iolc)
	tuples := s.All()
	require.Len(t, tuples, 1, "one output index left, the tuple still flows")
	key := term.TupleKey(tuples[0])
	assert.True(t, s.Taken(key, 0))
	assert.False(t, s.Taken(key, 1))

	// both indices built: the tuple disappears from the stream
	x1, err := term.NewConstructed(c.NextID(), iolc, []*term.Object{l, circle}, 1)
	require.NoError(t, err)
	c = c.Append(x1)
	assert.Empty(t, arggen.New(c, iolc).All())
}

// TestStream_MixedTypes verifies distinctness across ordered parameters of
// different types and the per-type no-repetition rule.
func TestStream_MixedTypes(t *testing.T) {
	c, err := term.NewLooseHolder(term.ExplicitLineAndTwoPoints)
	require.NoError(t, err)

	perp, err := term.ByName("PerpendicularLine")
	require.NoError(t, err)
	// 1 line × 2 points → 2 tuples.
	assert.Len(t, arggen.New(c, perp).All(), 2)

	bis, err := term.ByName("InternalAngleBisector")
	require.NoError(t, err)
	// Needs 3 distinct points; only 2 available.
	assert.Empty(t, arggen.New(c, bis).All())
}

// TestStream_Lazy verifies that Next can be consumed incrementally.
func TestStream_Lazy(t *testing.T) {
	c, err := term.NewLooseHolder(term.Quadrilateral)
	require.NoError(t, err)
	lfp, err := term.ByName("LineFromPoints")
	require.NoError(t, err)

	s := arggen.New(c, lfp)
	first, ok := s.Next()
	require.True(t, ok)
	require.NotNil(t, first)

	rest := s.All()
	assert.Len(t, rest, 5, "C(4,2)=6 pairs in total")
}
