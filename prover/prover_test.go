package prover_test

import (
	"testing"

	"github.com/katalvlaran/geogen/geom"
	"github.com/katalvlaran/geogen/picture"
	"github.com/katalvlaran/geogen/prover"
	"github.com/katalvlaran/geogen/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// extend appends one constructed object built from a named construction.
func extend(t *testing.T, c *term.Configuration, name string, inputs ...*term.Object) *term.Configuration {
	t.Helper()
	con, err := term.ByName(name)
	require.NoError(t, err)
	o, err := term.NewConstructed(c.NextID(), con, inputs, 0)
	require.NoError(t, err)
	return c.Append(o)
}

// realize builds an agreeing picture set with a fixed seed.
func realize(t *testing.T, c *term.Configuration, seed int64) *picture.Set {
	t.Helper()
	res, err := picture.Build(c, picture.WithRNG(geom.NewRNG(seed)))
	require.NoError(t, err)
	require.Equal(t, picture.OutcomeOK, res.Outcome)
	return res.Set
}

// keys collects theorem keys for membership checks.
func keys(ts []term.Theorem) map[string]bool {
	m := make(map[string]bool, len(ts))
	for _, t := range ts {
		m[t.Key()] = true
	}
	return m
}

// TestFind_MidpointAxioms verifies that the finder recovers the two
// defining facts of a midpoint: collinearity and the equal halves.
func TestFind_MidpointAxioms(t *testing.T) {
	c, err := term.NewLooseHolder(term.Triangle)
	require.NoError(t, err)
	a, b := c.Loose[0], c.Loose[1]
	c = extend(t, c, "Midpoint", a, b)
	m := c.Constructed[0]

	found := prover.Find(realize(t, c, 101))
	got := keys(found)

	collinear := term.NewTheorem(term.CollinearPoints,
		term.PointObj(a), term.PointObj(b), term.PointObj(m))
	halves := term.NewTheorem(term.EqualLineSegments,
		term.SegmentObj(a, m), term.SegmentObj(b, m))
	assert.True(t, got[collinear.Key()], "midpoint lies on the segment")
	assert.True(t, got[halves.Key()], "midpoint splits the segment evenly")
}

// TestFind_Midsegment verifies the classic midsegment fact: the line
// through two side midpoints is parallel to the third side.
func TestFind_Midsegment(t *testing.T) {
	c, err := term.NewLooseHolder(term.Triangle)
	require.NoError(t, err)
	a, b, cc := c.Loose[0], c.Loose[1], c.Loose[2]
	c = extend(t, c, "Midpoint", a, b)
	m1 := c.Constructed[0]
	c = extend(t, c, "Midpoint", a, cc)
	m2 := c.Constructed[1]

	found := prover.Find(realize(t, c, 103))
	got := keys(found)

	midsegment := term.NewTheorem(term.ParallelLines,
		term.LineByPoints(m1, m2), term.LineByPoints(b, cc))
	assert.True(t, got[midsegment.Key()], "midsegment parallel to the base")
}

// TestFind_CoincidentLinesCollapse stacks two midpoints on one triangle
// side: A, B, M = Mid(A,B) and N = Mid(A,M) all lie on a single line, so
// every point pair among them instantiates the same line. The universe
// keeps one representative, and no angle or parallelism statements between
// copies of that line survive.
func TestFind_CoincidentLinesCollapse(t *testing.T) {
	c, err := term.NewLooseHolder(term.Triangle)
	require.NoError(t, err)
	a, b := c.Loose[0], c.Loose[1]
	c = extend(t, c, "Midpoint", a, b)
	m := c.Constructed[0]
	c = extend(t, c, "Midpoint", a, m)
	n := c.Constructed[1]

	found := prover.Find(realize(t, c, 107))

	nested := term.NewTheorem(term.CollinearPoints,
		term.PointObj(a), term.PointObj(m), term.PointObj(n))
	assert.True(t, keys(found)[nested.Key()], "the nested midpoint stays on the side")
	for _, th := range found {
		assert.NotEqual(t, term.EqualAngles, th.Type,
			"coincident lines must not pair into angle statements: %s", th.Key())
		assert.NotEqual(t, term.ParallelLines, th.Type,
			"no two distinct lines of this figure are parallel: %s", th.Key())
	}
}

// TestSplit separates fresh theorems (involving the last-added object)
// from background facts.
func TestSplit(t *testing.T) {
	c, err := term.NewLooseHolder(term.Triangle)
	require.NoError(t, err)
	a, b, cc := c.Loose[0], c.Loose[1], c.Loose[2]
	c = extend(t, c, "Midpoint", a, b)
	m1 := c.Constructed[0]
	c = extend(t, c, "Midpoint", a, cc)
	m2 := c.Constructed[1]

	found := prover.Find(realize(t, c, 105))
	fresh, background := prover.Split(c, found)

	for _, th := range fresh {
		assert.True(t, th.Involves(m2.ID), "fresh theorems mention the last object: %s", th.Key())
	}
	older := term.NewTheorem(term.EqualLineSegments,
		term.SegmentObj(a, m1), term.SegmentObj(b, m1))
	assert.True(t, keys(background)[older.Key()], "facts about the older midpoint are background")
}

// TestTrivial_MidpointAndProjection checks the definitional-axiom filter
// for a midpoint and a perpendicular projection.
func TestTrivial_MidpointAndProjection(t *testing.T) {
	c, err := term.NewLooseHolder(term.Triangle)
	require.NoError(t, err)
	a, b := c.Loose[0], c.Loose[1]
	c = extend(t, c, "Midpoint", a, b)
	m := c.Constructed[0]

	halves := term.NewTheorem(term.EqualLineSegments,
		term.SegmentObj(a, m), term.SegmentObj(b, m))
	ok, err := prover.Trivial(c, halves)
	require.NoError(t, err)
	assert.True(t, ok, "the equal halves restate the midpoint definition")

	other := term.NewTheorem(term.EqualLineSegments,
		term.SegmentObj(a, b), term.SegmentObj(a, m))
	ok, err = prover.Trivial(c, other)
	require.NoError(t, err)
	assert.False(t, ok)

	// projection: the dropped segment is perpendicular to the target line
	pc, err := term.NewLooseHolder(term.ExplicitLineAndPoint)
	require.NoError(t, err)
	l, p := pc.Loose[0], pc.Loose[1]
	pc = extend(t, pc, "PerpendicularProjection", p, l)
	foot := pc.Constructed[0]

	dropped := term.NewTheorem(term.PerpendicularLines,
		term.LineByPoints(p, foot), term.LineObj(l))
	ok, err = prover.Trivial(pc, dropped)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestSubTheorem matches the midpoint-halves template inside a larger
// triangle configuration.
func TestSubTheorem(t *testing.T) {
	body, err := term.NewLooseHolder(term.LineSegment)
	require.NoError(t, err)
	ta, tb := body.Loose[0], body.Loose[1]
	body = extend(t, body, "Midpoint", ta, tb)
	tm := body.Constructed[0]
	tpl := &prover.Template{
		ID:     1,
		File:   "basics.txt",
		Config: body,
		Theorem: term.NewTheorem(term.EqualLineSegments,
			term.SegmentObj(ta, tm), term.SegmentObj(tb, tm)),
	}
	lib, err := prover.NewLibrary([]*prover.Template{tpl})
	require.NoError(t, err)

	c, err := term.NewLooseHolder(term.Triangle)
	require.NoError(t, err)
	a, b := c.Loose[0], c.Loose[1]
	c = extend(t, c, "Midpoint", a, b)
	m := c.Constructed[0]

	halves := term.NewTheorem(term.EqualLineSegments,
		term.SegmentObj(a, m), term.SegmentObj(b, m))
	got, ok := prover.SubTheorem(lib, c, halves)
	require.True(t, ok)
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "basics.txt", got.File)

	// a statement the template does not imply
	other := term.NewTheorem(term.EqualLineSegments,
		term.SegmentObj(a, b), term.SegmentObj(a, m))
	_, ok = prover.SubTheorem(lib, c, other)
	assert.False(t, ok)
}

// TestSimpler flags a theorem whose closure skips a constructed object.
func TestSimpler(t *testing.T) {
	c, err := term.NewLooseHolder(term.Triangle)
	require.NoError(t, err)
	a, b, cc := c.Loose[0], c.Loose[1], c.Loose[2]
	c = extend(t, c, "Midpoint", a, b)
	m1 := c.Constructed[0]
	c = extend(t, c, "Midpoint", a, cc)
	m2 := c.Constructed[1]

	old := term.NewTheorem(term.CollinearPoints,
		term.PointObj(a), term.PointObj(b), term.PointObj(m1))
	assert.True(t, prover.Simpler(c, old), "one midpoint suffices for this statement")

	both := term.NewTheorem(term.ParallelLines,
		term.LineByPoints(m1, m2), term.LineByPoints(b, cc))
	assert.False(t, prover.Simpler(c, both), "the midsegment needs both midpoints")
}

// lineAt builds a bare line object for transitivity tests.
func lineAt(id int) *term.Object { return &term.Object{ID: id, Type: term.Line} }

// TestTransitive_Lines checks the direction algebra: two perpendicularities
// compose to a parallelism, a parallel and a perpendicular to a
// perpendicularity, and a lone direct fact implies nothing.
func TestTransitive_Lines(t *testing.T) {
	l1, l2, l3 := lineAt(10), lineAt(11), lineAt(12)
	perp12 := term.NewTheorem(term.PerpendicularLines, term.LineObj(l1), term.LineObj(l2))
	perp23 := term.NewTheorem(term.PerpendicularLines, term.LineObj(l2), term.LineObj(l3))
	par13 := term.NewTheorem(term.ParallelLines, term.LineObj(l1), term.LineObj(l3))

	f1, f2, ok := prover.Transitive(par13, []term.Theorem{perp12, perp23})
	require.True(t, ok)
	got := keys([]term.Theorem{f1, f2})
	assert.True(t, got[perp12.Key()] && got[perp23.Key()])

	perp13 := term.NewTheorem(term.PerpendicularLines, term.LineObj(l1), term.LineObj(l3))
	par12 := term.NewTheorem(term.ParallelLines, term.LineObj(l1), term.LineObj(l2))
	_, _, ok = prover.Transitive(perp13, []term.Theorem{par12, perp23})
	assert.True(t, ok, "parallel plus perpendicular gives perpendicular")

	_, _, ok = prover.Transitive(par13, []term.Theorem{par13})
	assert.False(t, ok, "a theorem does not witness itself")
}

// TestTransitive_Concyclic chains two concyclic quadruples through their
// shared triple.
func TestTransitive_Concyclic(t *testing.T) {
	pt := func(id int) *term.Object { return &term.Object{ID: id, Type: term.Point} }
	a, b, c, d, e := pt(0), pt(1), pt(2), pt(3), pt(4)

	f1 := term.NewTheorem(term.ConcyclicPoints,
		term.PointObj(a), term.PointObj(b), term.PointObj(c), term.PointObj(d))
	f2 := term.NewTheorem(term.ConcyclicPoints,
		term.PointObj(a), term.PointObj(b), term.PointObj(c), term.PointObj(e))
	th := term.NewTheorem(term.ConcyclicPoints,
		term.PointObj(b), term.PointObj(c), term.PointObj(d), term.PointObj(e))

	g1, g2, ok := prover.Transitive(th, []term.Theorem{f1, f2})
	require.True(t, ok)
	got := keys([]term.Theorem{g1, g2})
	assert.True(t, got[f1.Key()] && got[f2.Key()])

	_, _, ok = prover.Transitive(th, []term.Theorem{f1})
	assert.False(t, ok)
}

// TestClassify_Order verifies the pipeline order: a trivial statement stays
// trivial even when a template also covers it.
func TestClassify_Order(t *testing.T) {
	body, err := term.NewLooseHolder(term.LineSegment)
	require.NoError(t, err)
	body = extend(t, body, "Midpoint", body.Loose[0], body.Loose[1])
	tpl := &prover.Template{
		ID: 1, File: "basics.txt", Config: body,
		Theorem: term.NewTheorem(term.EqualLineSegments,
			term.SegmentObj(body.Loose[0], body.Constructed[0]),
			term.SegmentObj(body.Loose[1], body.Constructed[0])),
	}
	lib, err := prover.NewLibrary([]*prover.Template{tpl})
	require.NoError(t, err)

	c, err := term.NewLooseHolder(term.LineSegment)
	require.NoError(t, err)
	a, b := c.Loose[0], c.Loose[1]
	c = extend(t, c, "Midpoint", a, b)
	m := c.Constructed[0]

	halves := term.NewTheorem(term.EqualLineSegments,
		term.SegmentObj(a, m), term.SegmentObj(b, m))
	cls, err := prover.Classify(lib, c, halves, nil)
	require.NoError(t, err)
	assert.Equal(t, prover.ClassTrivial, cls.Class)
	assert.Equal(t, "trivial theorem", cls.Annotation(func(int) string { return "?" }))
}
