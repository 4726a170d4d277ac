// Package prover discovers and filters theorems over realized
// configurations.
//
// The finder enumerates candidate theorems structurally — 3-subsets of
// points for collinearity, 2-subsets of the line universe for parallelism
// and perpendicularity, and so on — and accepts a candidate only when its
// analytic predicate holds in every picture of the set. The line universe
// contains the configuration's line objects plus a virtual line through
// every pair of points that no LineFromPoints object already covers.
//
// Found theorems split into fresh ones (involving the configuration's
// last-added object) and background facts (already holding in the parent).
// Only fresh theorems are reported; background facts feed the transitivity
// filter.
//
// The filter classifies each fresh theorem with the first matching rule:
//
//  1. trivial — implied by the defining axioms of the last-added object's
//     construction;
//  2. sub-theorem — an instance of a template theorem from the library,
//     witnessed by a signature-preserving embedding of the template
//     configuration into the configuration's DAG;
//  3. simpler-definable — the argument closure of the mentioned objects
//     spans strictly fewer constructed objects than the configuration;
//  4. transitive — for equivalence-style types, the composition of two
//     known facts.
package prover
