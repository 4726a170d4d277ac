package term_test

import (
	"testing"

	"github.com/katalvlaran/geogen/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle builds a fresh Triangle holder for tests.
func triangle(t *testing.T) *term.Configuration {
	t.Helper()
	c, err := term.NewLooseHolder(term.Triangle)
	require.NoError(t, err)
	return c
}

// TestNewLooseHolder verifies holder shapes and identifier assignment.
func TestNewLooseHolder(t *testing.T) {
	c := triangle(t)
	require.Len(t, c.Loose, 3)
	for i, o := range c.Loose {
		assert.Equal(t, i, o.ID)
		assert.Equal(t, term.Point, o.Type)
		assert.True(t, o.Loose())
	}

	lp, err := term.NewLooseHolder(term.ExplicitLineAndPoint)
	require.NoError(t, err)
	require.Len(t, lp.Loose, 2)
	assert.Equal(t, term.Line, lp.Loose[0].Type)
	assert.Equal(t, term.Point, lp.Loose[1].Type)
}

// TestMatch_SetNormalization verifies that set arguments canonicalize the
// order of their members, so both input orders yield the same tuple key.
func TestMatch_SetNormalization(t *testing.T) {
	c := triangle(t)
	mid, err := term.ByName("Midpoint")
	require.NoError(t, err)

	ab, err := term.Match(mid, []*term.Object{c.Loose[0], c.Loose[1]})
	require.NoError(t, err)
	ba, err := term.Match(mid, []*term.Object{c.Loose[1], c.Loose[0]})
	require.NoError(t, err)
	assert.Equal(t, term.TupleKey(ab), term.TupleKey(ba), "set arguments are unordered")
}

// TestMatch_Mismatches exercises the signature-mismatch failure modes.
func TestMatch_Mismatches(t *testing.T) {
	c := triangle(t)
	mid, err := term.ByName("Midpoint")
	require.NoError(t, err)

	// Wrong arity.
	_, err = term.Match(mid, []*term.Object{c.Loose[0]})
	assert.ErrorIs(t, err, term.ErrSignatureMismatch)

	// Duplicate in set.
	_, err = term.Match(mid, []*term.Object{c.Loose[0], c.Loose[0]})
	assert.ErrorIs(t, err, term.ErrSignatureMismatch)

	// Wrong type.
	perp, err := term.ByName("PerpendicularLine")
	require.NoError(t, err)
	_, err = term.Match(perp, []*term.Object{c.Loose[0], c.Loose[1]})
	assert.ErrorIs(t, err, term.ErrSignatureMismatch, "PerpendicularLine wants a line first")
}

// TestAppend_Immutability verifies copy-on-extend growth.
func TestAppend_Immutability(t *testing.T) {
	c := triangle(t)
	mid, err := term.ByName("Midpoint")
	require.NoError(t, err)
	m, err := term.NewConstructed(c.NextID(), mid, []*term.Object{c.Loose[0], c.Loose[1]}, 0)
	require.NoError(t, err)

	next := c.Append(m)
	assert.Empty(t, c.Constructed, "parent must stay untouched")
	require.Len(t, next.Constructed, 1)
	assert.Same(t, m, next.Last)
	assert.Equal(t, 3, m.ID)
}

// TestInternalObjects verifies the transitive argument closure.
func TestInternalObjects(t *testing.T) {
	c := triangle(t)
	mid, _ := term.ByName("Midpoint")
	lfp, _ := term.ByName("LineFromPoints")

	m, err := term.NewConstructed(3, mid, []*term.Object{c.Loose[0], c.Loose[1]}, 0)
	require.NoError(t, err)
	l, err := term.NewConstructed(4, lfp, []*term.Object{m, c.Loose[2]}, 0)
	require.NoError(t, err)

	internal := term.InternalObjects(l)
	ids := make([]int, len(internal))
	for i, o := range internal {
		ids[i] = o.ID
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ids, "closure covers A, B, C, M and the line itself")
}

// TestUnknownNames verifies lookup failures.
func TestUnknownNames(t *testing.T) {
	_, err := term.ByName("Trisector")
	assert.ErrorIs(t, err, term.ErrUnknownConstruction)

	_, err = term.ParseLayoutTag("Pentagon")
	assert.ErrorIs(t, err, term.ErrUnknownLayout)
}

// TestSymmetries spot-checks the layout symmetry groups.
func TestSymmetries(t *testing.T) {
	assert.Len(t, term.Triangle.Symmetries(), 6)
	assert.Len(t, term.LineSegment.Symmetries(), 2)
	assert.Len(t, term.RightTriangle.Symmetries(), 2)
	assert.Len(t, term.Quadrilateral.Symmetries(), 8)
	assert.Len(t, term.ExplicitLineAndPoint.Symmetries(), 1)
	assert.Len(t, term.ExplicitLineAndTwoPoints.Symmetries(), 2)
}

// TestNewComposed verifies macro registration and parameter derivation.
func TestNewComposed(t *testing.T) {
	c := triangle(t)
	mid, _ := term.ByName("Midpoint")
	m, err := term.NewConstructed(3, mid, []*term.Object{c.Loose[0], c.Loose[1]}, 0)
	require.NoError(t, err)
	body := c.Append(m)

	macro, err := term.NewComposed("HalfwayPoint", body)
	require.NoError(t, err)
	assert.Equal(t, term.Point, macro.Output)
	require.Len(t, macro.Params, 3, "one parameter per loose object")

	got, err := term.ByName("HalfwayPoint")
	require.NoError(t, err)
	assert.Same(t, macro, got)

	_, err = term.NewComposed("HalfwayPoint", body)
	assert.Error(t, err, "duplicate macro names are rejected")
}
