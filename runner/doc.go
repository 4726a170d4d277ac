// Package runner drives the whole pipeline for a set of parsed inputs:
// realize the initial configuration, stream generated configurations,
// analyze each one (pictures, theorem finding, filtering), and write one
// plain-text report per input.
//
// Inputs are processed sequentially; configurations inside an input fan out
// over a bounded worker pool. The symbolic generator is pulled by a single
// producer goroutine, so its accepted-key set needs no locking. Every
// worker derives its randomness from the run seed and the configuration's
// emission index, which makes a single-worker seeded run byte-reproducible.
//
// A configuration that exceeds the per-configuration time budget is logged
// as a warning and skipped; cancellation propagates at configuration
// boundaries.
package runner
