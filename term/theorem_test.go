package term_test

import (
	"testing"

	"github.com/katalvlaran/geogen/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTheorem_KeyNormalization verifies that structurally equal theorems
// built in different orders share one key.
func TestTheorem_KeyNormalization(t *testing.T) {
	c := triangle(t)
	a, b, cc := c.Loose[0], c.Loose[1], c.Loose[2]

	t1 := term.NewTheorem(term.EqualLineSegments, term.SegmentObj(a, b), term.SegmentObj(b, cc))
	t2 := term.NewTheorem(term.EqualLineSegments, term.SegmentObj(cc, b), term.SegmentObj(b, a))
	assert.Equal(t, t1.Key(), t2.Key(), "segment endpoints and the object set are unordered")

	col1 := term.NewTheorem(term.CollinearPoints, term.PointObj(a), term.PointObj(b), term.PointObj(cc))
	col2 := term.NewTheorem(term.CollinearPoints, term.PointObj(cc), term.PointObj(a), term.PointObj(b))
	assert.Equal(t, col1.Key(), col2.Key())

	ang1 := term.NewTheorem(term.EqualAngles,
		term.AngleObj(term.LineByPoints(a, b), term.LineByPoints(a, cc)),
		term.AngleObj(term.LineByPoints(b, cc), term.LineByPoints(a, b)))
	ang2 := term.NewTheorem(term.EqualAngles,
		term.AngleObj(term.LineByPoints(a, cc), term.LineByPoints(b, a)),
		term.AngleObj(term.LineByPoints(a, b), term.LineByPoints(cc, b)))
	assert.Equal(t, ang1.Key(), ang2.Key(), "angle arms are unordered")
}

// TestTheorem_MentionsAndInvolves verifies reference collection.
func TestTheorem_MentionsAndInvolves(t *testing.T) {
	c := triangle(t)
	mid, _ := term.ByName("Midpoint")
	m, err := term.NewConstructed(3, mid, []*term.Object{c.Loose[0], c.Loose[1]}, 0)
	require.NoError(t, err)

	th := term.NewTheorem(term.EqualLineSegments,
		term.SegmentObj(c.Loose[0], m), term.SegmentObj(c.Loose[1], m))
	ids := map[int]bool{}
	for _, o := range th.Mentions() {
		ids[o.ID] = true
	}
	assert.Equal(t, map[int]bool{0: true, 1: true, 3: true}, ids)
	assert.True(t, th.Involves(3))
	assert.False(t, th.Involves(2))
}

// TestTheorem_Format verifies the report rendering.
func TestTheorem_Format(t *testing.T) {
	c := triangle(t)
	names := map[int]string{0: "A", 1: "B", 2: "C", 3: "M"}
	name := func(id int) string { return names[id] }

	mid, _ := term.ByName("Midpoint")
	m, err := term.NewConstructed(3, mid, []*term.Object{c.Loose[0], c.Loose[1]}, 0)
	require.NoError(t, err)

	th := term.NewTheorem(term.EqualLineSegments,
		term.SegmentObj(c.Loose[0], m), term.SegmentObj(c.Loose[1], m))
	assert.Equal(t, "EqualLineSegments({A, M}, {B, M})", th.Format(name))

	par := term.NewTheorem(term.ParallelLines,
		term.LineByPoints(c.Loose[1], c.Loose[2]), term.LineByPoints(c.Loose[0], m))
	assert.Equal(t, "ParallelLines([A, M], [B, C])", par.Format(name))
}

// TestTheoremType_Equivalence verifies the transitivity-eligible set.
func TestTheoremType_Equivalence(t *testing.T) {
	assert.True(t, term.ParallelLines.Equivalence())
	assert.True(t, term.EqualLineSegments.Equivalence())
	assert.True(t, term.ConcyclicPoints.Equivalence())
	assert.False(t, term.CollinearPoints.Equivalence())
	assert.False(t, term.ConcurrentLines.Equivalence())
}
