// Package confgen enumerates configurations breadth-first.
//
// Starting from an initial configuration, each iteration extends every
// configuration of the previous depth by exactly one constructed object,
// drawing argument tuples from the arggen streams of a user-supplied
// construction catalogue. Every candidate is canonicalized (canon.Least)
// and kept only when its canonical key is novel; accepted configurations
// are rewritten into canonical identifier form before they are emitted and
// re-enqueued for the next depth.
//
// The generator is a lazy, finite, pull-based stream: Next returns one
// accepted configuration at a time and honours context cancellation. With
// an iteration budget of zero the stream is empty — the initial
// configuration itself is the caller's to report.
package confgen
