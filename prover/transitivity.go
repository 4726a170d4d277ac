// Package prover transitivity filter: theorems that compose from two known
// facts of equivalence-style types.
package prover

import (
	"sort"
	"strings"

	"github.com/katalvlaran/geogen/term"
)

// edge is one known equivalence between two element keys, remembering the
// fact it came from. label is 0 for a plain equivalence and 1 for a
// perpendicularity (direction algebra modulo 2).
type edge struct {
	to    string
	label int
	fact  term.Theorem
}

// Transitive reports whether th follows by composing two known facts:
// plain transitivity for segment and angle equalities, direction algebra
// for parallel and perpendicular pairs (parallel+parallel or perp+perp
// compose to parallel, parallel+perp to perp), and shared-triple chaining
// for concyclicity. On success the two witnessing facts are returned.
func Transitive(th term.Theorem, facts []term.Theorem) (term.Theorem, term.Theorem, bool) {
	switch th.Type {
	case term.ParallelLines, term.PerpendicularLines:
		return lineTransitive(th, facts)
	case term.EqualLineSegments, term.EqualAngles:
		return equalityTransitive(th, facts)
	case term.ConcyclicPoints:
		return concyclicTransitive(th, facts)
	}
	return term.Theorem{}, term.Theorem{}, false
}

// lineTransitive chains parallel and perpendicular facts over the line
// universe with labels modulo 2.
func lineTransitive(th term.Theorem, facts []term.Theorem) (term.Theorem, term.Theorem, bool) {
	thKey := th.Key()
	want := 0
	if th.Type == term.PerpendicularLines {
		want = 1
	}
	adj := map[string][]edge{}
	for _, f := range facts {
		if f.Key() == thKey || len(f.Objects) != 2 {
			continue
		}
		label := -1
		switch f.Type {
		case term.ParallelLines:
			label = 0
		case term.PerpendicularLines:
			label = 1
		default:
			continue
		}
		a, b := f.Objects[0].Key(), f.Objects[1].Key()
		adj[a] = append(adj[a], edge{to: b, label: label, fact: f})
		adj[b] = append(adj[b], edge{to: a, label: label, fact: f})
	}
	x, y := th.Objects[0].Key(), th.Objects[1].Key()
	return chain(adj, x, y, want)
}

// equalityTransitive chains same-type equality facts.
func equalityTransitive(th term.Theorem, facts []term.Theorem) (term.Theorem, term.Theorem, bool) {
	thKey := th.Key()
	adj := map[string][]edge{}
	for _, f := range facts {
		if f.Type != th.Type || f.Key() == thKey || len(f.Objects) != 2 {
			continue
		}
		a, b := f.Objects[0].Key(), f.Objects[1].Key()
		adj[a] = append(adj[a], edge{to: b, fact: f})
		adj[b] = append(adj[b], edge{to: a, fact: f})
	}
	x, y := th.Objects[0].Key(), th.Objects[1].Key()
	return chain(adj, x, y, 0)
}

// concyclicTransitive reads a 4-point concyclicity as equality of
// circumscribing circles over point triples: every known concyclic
// quadruple equates its four triples, and th holds when two of its own
// triples chain through a shared intermediate triple.
func concyclicTransitive(th term.Theorem, facts []term.Theorem) (term.Theorem, term.Theorem, bool) {
	thKey := th.Key()
	adj := map[string][]edge{}
	for _, f := range facts {
		if f.Type != term.ConcyclicPoints || f.Key() == thKey || len(f.Objects) != 4 {
			continue
		}
		triples := pointTriples(f.Objects)
		for i := 0; i < len(triples); i++ {
			for j := i + 1; j < len(triples); j++ {
				adj[triples[i]] = append(adj[triples[i]], edge{to: triples[j], fact: f})
				adj[triples[j]] = append(adj[triples[j]], edge{to: triples[i], fact: f})
			}
		}
	}
	// any two distinct triples of th's four points cover all four
	triples := pointTriples(th.Objects)
	for i := 0; i < len(triples); i++ {
		for j := i + 1; j < len(triples); j++ {
			if f1, f2, ok := chain(adj, triples[i], triples[j], 0); ok {
				return f1, f2, true
			}
		}
	}
	return term.Theorem{}, term.Theorem{}, false
}

// chain looks for a two-edge path x -> z -> y whose labels sum to want
// modulo 2. Direct edges x -> y are not chains and are skipped.
func chain(adj map[string][]edge, x, y string, want int) (term.Theorem, term.Theorem, bool) {
	for _, e1 := range adj[x] {
		if e1.to == y {
			continue
		}
		for _, e2 := range adj[e1.to] {
			if e2.to == y && (e1.label+e2.label)%2 == want {
				return e1.fact, e2.fact, true
			}
		}
	}
	return term.Theorem{}, term.Theorem{}, false
}

// pointTriples lists the sorted keys of all 3-subsets of four point
// theorem objects.
func pointTriples(pts []term.TheoremObject) []string {
	out := make([]string, 0, 4)
	for skip := 0; skip < len(pts); skip++ {
		keys := make([]string, 0, 3)
		for i, p := range pts {
			if i != skip {
				keys = append(keys, p.Key())
			}
		}
		sort.Strings(keys)
		out = append(out, strings.Join(keys, "|"))
	}
	return out
}
