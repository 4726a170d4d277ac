package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geogen/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomTriangle_NonDegenerate draws many triangles and checks that
// every draw keeps a healthy margin from collinearity.
func TestRandomTriangle_NonDegenerate(t *testing.T) {
	rng := geom.NewRNG(42)
	for i := 0; i < 200; i++ {
		tri, err := geom.RandomTriangle(rng)
		require.NoError(t, err)
		assert.False(t, geom.Collinear(tri[0], tri[1], tri[2]))
	}
}

// TestRandomRightTriangle_RightAngle verifies the right angle sits at the
// first vertex in every draw.
func TestRandomRightTriangle_RightAngle(t *testing.T) {
	rng := geom.NewRNG(7)
	for i := 0; i < 200; i++ {
		tri, err := geom.RandomRightTriangle(rng)
		require.NoError(t, err)
		ab, err := geom.LineFromPoints(tri[0], tri[1])
		require.NoError(t, err)
		ac, err := geom.LineFromPoints(tri[0], tri[2])
		require.NoError(t, err)
		assert.True(t, geom.Perpendicular(ab, ac), "legs at the first vertex must be perpendicular")
	}
}

// TestRandomConvexQuadrilateral_Convex verifies strict convexity in order.
func TestRandomConvexQuadrilateral_Convex(t *testing.T) {
	rng := geom.NewRNG(13)
	for i := 0; i < 100; i++ {
		q, err := geom.RandomConvexQuadrilateral(rng)
		require.NoError(t, err)
		for j := 0; j < 4; j++ {
			a, b, c := q[j], q[(j+1)%4], q[(j+2)%4]
			cross := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
			assert.Greater(t, cross, 0.0, "every turn of a CCW convex quadrilateral is a left turn")
		}
	}
}

// TestRandomLineAndPoint_Separation verifies the point never sits on the line.
func TestRandomLineAndPoint_Separation(t *testing.T) {
	rng := geom.NewRNG(99)
	for i := 0; i < 200; i++ {
		l, p, err := geom.RandomLineAndPoint(rng)
		require.NoError(t, err)
		assert.False(t, geom.LiesOnLine(p, l))
	}
}

// TestRandomLineAndTwoPoints_Separation verifies both points clear the line
// and each other.
func TestRandomLineAndTwoPoints_Separation(t *testing.T) {
	rng := geom.NewRNG(5)
	for i := 0; i < 200; i++ {
		l, p, q, err := geom.RandomLineAndTwoPoints(rng)
		require.NoError(t, err)
		assert.False(t, geom.LiesOnLine(p, l))
		assert.False(t, geom.LiesOnLine(q, l))
		assert.False(t, p.Eq(q))
	}
}

// TestNewRNG_Determinism verifies fixed-seed reproducibility and that
// derived streams differ from their parents.
func TestNewRNG_Determinism(t *testing.T) {
	a := geom.NewRNG(123)
	b := geom.NewRNG(123)
	for i := 0; i < 32; i++ {
		require.Equal(t, a.Int63(), b.Int63(), "same seed must replay the same stream")
	}

	base := geom.NewRNG(123)
	d1 := geom.DeriveRNG(base, 1)
	d2 := geom.DeriveRNG(base, 2)
	assert.NotEqual(t, d1.Int63(), d2.Int63(), "derived streams must decorrelate")
}

// TestRandomSegment_Separation verifies the endpoints stay apart.
func TestRandomSegment_Separation(t *testing.T) {
	rng := geom.NewRNG(3)
	for i := 0; i < 200; i++ {
		p, q, err := geom.RandomSegment(rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, geom.Dist(p, q), 0.8-math.SmallestNonzeroFloat64)
	}
}
