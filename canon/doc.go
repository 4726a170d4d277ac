// Package canon converts configurations to canonical string keys.
//
// Two configurations get the same key iff they are equal up to a
// permutation of loose objects allowed by the layout's symmetry group
// (term.LayoutTag.Symmetries). The conversion is parameterised by a Remap —
// a permutation of the loose identifiers — and the least-configuration
// finder enumerates every remap the symmetry group admits, returning the
// lexicographically smallest string and the winning remap.
//
// String grammar:
//
//	loose object      → its remapped identifier
//	constructed       → <construction-id> "(" arguments ")" ["[" index "]"]
//	object argument   → the object's string
//	set argument      → "{" inner strings, sorted lexicographically "}"
//	argument tuple    → "(" inner strings joined by "," ")"
//	configuration     → <layout>"["typed loose objects in remapped order"]"
//	                    "|" sorted constructed strings joined by "|"
//
// The output index is printed only when non-zero, so single-output
// constructions and the first output of multi-output ones read alike.
//
// Rewrite applies a winning remap, producing a new configuration whose
// loose objects carry canonical identifiers 0..n-1 and whose constructed
// objects are renumbered sequentially in construction order; the original
// is never mutated. Converter memoizes object strings per remap, so shared
// argument subtrees are rendered once.
package canon
