// Package term is the immutable core model of the theorem generator:
// loose and constructed objects, construction signatures with (possibly
// nested) set parameters, argument trees, configurations, and theorems.
//
// Objects form a DAG: every argument of a constructed object refers to an
// object created earlier, identified by a small integer ID unique within a
// run. Nothing in this package is mutated after creation; extending a
// configuration yields a new configuration sharing the old objects.
//
// The predefined construction catalogue is a closed, immutable table
// (Catalogue, ByName) initialized at package load. Composed constructions —
// user macros whose body is a sub-configuration — are created on top of it
// with NewComposed.
//
// Theorems are structural values: NewTheorem normalizes its unordered parts
// (segment endpoints, set members, angle arms) so that structural
// equivalence of two theorems becomes equality of their Key strings.
package term
