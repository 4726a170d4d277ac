// Package geom is the analytic kernel of the theorem generator: exact-form
// points, lines and circles over rounded float64 coordinates, the
// intersection and incidence primitives built on them, and the randomized
// layout generators that place loose objects for a picture.
//
// Every coordinate comparison in this package goes through Eq, which
// compares values up to a fixed decimal precision (Precision digits).
// Stored coordinates are rounded with Round so that equal-looking objects
// hash and print identically.
//
// Two failure modes are kept apart everywhere:
//   - "no solution" (a line missing a circle, two parallel lines) is an
//     ordinary empty result, never an error;
//   - a degenerate input (coincident points defining a line, collinear
//     points defining a circle, identical curves intersected with each
//     other) is ErrAnalyticFailure.
//
// Layout generators (RandomTriangle, RandomConvexQuadrilateral, ...) draw
// from a caller-supplied *rand.Rand and reject degenerate draws; they are
// deterministic for a fixed seed. Use NewRNG / DeriveRNG to build
// independent deterministic streams for parallel workers.
package geom
