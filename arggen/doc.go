// Package arggen produces the distinct argument tuples a construction can
// take inside a configuration.
//
// For every object type the signature needs, the generator enumerates all
// ordered variations without repetition among the configuration's objects
// of that type, combines one variation per type with a lazy cartesian
// odometer, and folds each combined selection back into the tree shape of
// the signature (canonicalizing set arguments along the way).
//
// Tuples whose canonical (identifier-keyed) form was already produced, or
// that are already represented in the configuration by objects of the same
// construction, are skipped — so a set parameter of multiplicity n over m
// candidates yields exactly C(m,n) tuples even though the raw enumeration
// walks P(m,n) ordered variations.
//
// The stream is lazy and finite; an object type with fewer candidates than
// the signature needs yields an empty stream.
package arggen
