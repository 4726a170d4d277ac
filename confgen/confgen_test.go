package confgen_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/geogen/canon"
	"github.com/katalvlaran/geogen/confgen"
	"github.com/katalvlaran/geogen/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain collects the whole stream.
func drain(t *testing.T, g *confgen.Generator) []*term.Configuration {
	t.Helper()
	var out []*term.Configuration
	for {
		c, ok, err := g.Next()
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

// catalogue resolves construction names for tests.
func catalogue(t *testing.T, names ...string) []*term.Construction {
	t.Helper()
	out := make([]*term.Construction, len(names))
	for i, n := range names {
		c, err := term.ByName(n)
		require.NoError(t, err)
		out[i] = c
	}
	return out
}

// TestGenerator_TriangleMidpointDepth1 checks that one iteration of
// Midpoint over a triangle accepts a single configuration: the midpoints of
// the three sides are symmetric images of each other under the vertex
// permutation group, so they share one canonical key.
func TestGenerator_TriangleMidpointDepth1(t *testing.T) {
	init, err := term.NewLooseHolder(term.Triangle)
	require.NoError(t, err)
	g, err := confgen.New(init, catalogue(t, "Midpoint"), confgen.WithIterations(1))
	require.NoError(t, err)

	got := drain(t, g)
	require.Len(t, got, 1, "all three midpoints are symmetric images of one configuration")
	require.NotNil(t, got[0].Last)
	assert.Equal(t, "Midpoint", got[0].Last.Construction.Name)
}

// TestGenerator_UniqueKeys verifies property 2: no two emitted
// configurations share a canonical key (depth 2, Midpoint).
func TestGenerator_UniqueKeys(t *testing.T) {
	init, err := term.NewLooseHolder(term.Triangle)
	require.NoError(t, err)
	g, err := confgen.New(init, catalogue(t, "Midpoint"), confgen.WithIterations(2))
	require.NoError(t, err)

	keys := map[string]bool{}
	for _, c := range drain(t, g) {
		k, err := canon.Key(c)
		require.NoError(t, err)
		assert.False(t, keys[k], "duplicate canonical key %s", k)
		keys[k] = true
	}
}

// TestGenerator_Monotonicity verifies property 3: depth-d configurations
// carry exactly d constructed objects.
func TestGenerator_Monotonicity(t *testing.T) {
	init, err := term.NewLooseHolder(term.Triangle)
	require.NoError(t, err)
	g, err := confgen.New(init, catalogue(t, "Midpoint", "LineFromPoints"), confgen.WithIterations(2))
	require.NoError(t, err)

	last := 0
	for _, c := range drain(t, g) {
		n := len(c.Constructed)
		assert.GreaterOrEqual(t, n, last, "breadth-first order never shrinks")
		assert.LessOrEqual(t, n, 2)
		assert.Positive(t, n)
		last = n
	}
}

// TestGenerator_ZeroIterations verifies the boundary: budget 0 emits
// nothing (only the initial configuration exists).
func TestGenerator_ZeroIterations(t *testing.T) {
	init, err := term.NewLooseHolder(term.Triangle)
	require.NoError(t, err)
	g, err := confgen.New(init, catalogue(t, "Midpoint"), confgen.WithIterations(0))
	require.NoError(t, err)
	assert.Empty(t, drain(t, g))
	assert.Equal(t, 1, g.Accepted(), "the initial key is still registered")
}

// TestGenerator_OptionViolations verifies input validation.
func TestGenerator_OptionViolations(t *testing.T) {
	init, err := term.NewLooseHolder(term.Triangle)
	require.NoError(t, err)

	_, err = confgen.New(nil, catalogue(t, "Midpoint"))
	assert.ErrorIs(t, err, confgen.ErrNilConfiguration)

	_, err = confgen.New(init, nil)
	assert.ErrorIs(t, err, confgen.ErrEmptyCatalogue)

	_, err = confgen.New(init, catalogue(t, "Midpoint"), confgen.WithIterations(-1))
	assert.ErrorIs(t, err, confgen.ErrOptionViolation)
}

// TestGenerator_Cancellation verifies the cooperative shutdown path.
func TestGenerator_Cancellation(t *testing.T) {
	init, err := term.NewLooseHolder(term.Triangle)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	g, err := confgen.New(init, catalogue(t, "Midpoint", "LineFromPoints", "IntersectionOfLines"),
		confgen.WithIterations(3), confgen.WithContext(ctx))
	require.NoError(t, err)

	_, ok, err := g.Next()
	require.NoError(t, err)
	require.True(t, ok)

	cancel()
	_, _, err = g.Next()
	assert.ErrorIs(t, err, context.Canceled)
}

// TestGenerator_SecondOutputOnly verifies that a parent already holding
// crossing [0] of a line and circle generates only the [1] sibling for the
// same tuple.
func TestGenerator_SecondOutputOnly(t *testing.T) {
	init, err := term.NewLooseHolder(term.ExplicitLineAndPoint)
	require.NoError(t, err)
	l, p := init.Loose[0], init.Loose[1]

	proj, err := term.ByName("PerpendicularProjection")
	require.NoError(t, err)
	foot, err := term.NewConstructed(init.NextID(), proj, []*term.Object{p, l}, 0)
	require.NoError(t, err)
	init = init.Append(foot)

	cwc, err := term.ByName("CircleWithCenter")
	require.NoError(t, err)
	circle, err := term.NewConstructed(init.NextID(), cwc, []*term.Object{p, foot}, 0)
	require.NoError(t, err)
	init = init.Append(circle)

	iolc, err := term.ByName("IntersectionOfLineAndCircle")
	require.NoError(t, err)
	x0, err := term.NewConstructed(init.NextID(), iolc, []*term.Object{l, circle}, 0)
	require.NoError(t, err)
	init = init.Append(x0)

	g, err := confgen.New(init, catalogue(t, "IntersectionOfLineAndCircle"), confgen.WithIterations(1))
	require.NoError(t, err)
	got := drain(t, g)

	require.Len(t, got, 1, "index 0 is occupied, only its sibling remains")
	assert.Equal(t, 1, got[0].Last.OutIndex)
	assert.Equal(t, "IntersectionOfLineAndCircle", got[0].Last.Construction.Name)
}

// TestGenerator_MultiOutput verifies that a two-output construction yields
// one configuration per output index for the same tuple.
func TestGenerator_MultiOutput(t *testing.T) {
	// Line and point: build the circle centered at the point through its
	// projection, then intersect it with the line — two crossings.
	init, err := term.NewLooseHolder(term.ExplicitLineAndPoint)
	require.NoError(t, err)
	l, p := init.Loose[0], init.Loose[1]

	proj, err := term.ByName("PerpendicularProjection")
	require.NoError(t, err)
	foot, err := term.NewConstructed(2, proj, []*term.Object{p, l}, 0)
	require.NoError(t, err)
	init = init.Append(foot)

	cwc, err := term.ByName("CircleWithCenter")
	require.NoError(t, err)
	circle, err := term.NewConstructed(3, cwc, []*term.Object{p, foot}, 0)
	require.NoError(t, err)
	init = init.Append(circle)

	g, err := confgen.New(init, catalogue(t, "IntersectionOfLineAndCircle"), confgen.WithIterations(1))
	require.NoError(t, err)
	got := drain(t, g)

	// One tuple (the only line × the only circle), two output indices.
	require.Len(t, got, 2)
	indices := map[int]bool{}
	for _, c := range got {
		indices[c.Last.OutIndex] = true
	}
	assert.Equal(t, map[int]bool{0: true, 1: true}, indices)
}
