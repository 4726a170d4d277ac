// Package picture realizes configurations numerically.
//
// A Picture maps every configuration object to an analytic instance
// (geom.Point, geom.Line or geom.Circle) under one random draw of the
// loose objects; a Set is N ≥ 2 independently drawn pictures of the same
// configuration.
//
// Cross-picture consistency contract: for every constructed object all
// pictures must agree on two booleans — was the object constructable, and
// did it coincide (under rounded equality) with an earlier object of the
// same picture. Disagreement is an inconsistency, handled by rebuilding
// all pictures from scratch with fresh randomness up to a bounded number
// of retries; exhausting the retries surfaces ErrUnresolvedInconsistency.
//
// When the pictures agree, the outcome of a build is one of:
//   - OutcomeOK: every object realized; the Set answers incidence queries.
//   - OutcomeInconstructible: some object failed in every picture; the
//     configuration is pruned with that object as witness.
//   - OutcomeDuplicate: some object coincided with the same earlier object
//     in every picture; the configuration duplicates a simpler one.
//
// Construction evaluators return (value, ok) across the picture boundary —
// a degenerate draw is "not constructable here", never a panic. Composed
// constructions are evaluated by inlining the macro body under a local
// identifier environment; no nested picture sets are built.
package picture
