// Package prover sub-theorem filter: matching library templates against the
// configuration DAG.
package prover

import "github.com/katalvlaran/geogen/term"

// SubTheorem scans the library for a template whose configuration embeds
// into cfg such that the template's theorem maps onto th. The embedding is
// injective and signature-preserving: template loose objects may bind to
// any object of the same type, constructed objects only to objects built by
// the same construction, output index, and mapped arguments.
func SubTheorem(lib *Library, cfg *term.Configuration, th term.Theorem) (*Template, bool) {
	if lib == nil {
		return nil, false
	}
	for _, tpl := range lib.Templates {
		if tpl.Theorem.Type != th.Type {
			continue
		}
		if matchTemplate(tpl, cfg, th) {
			return tpl, true
		}
	}
	return nil, false
}

// matchTemplate backtracks over assignments of template objects to cfg
// objects, loose first and constructed in topological order, so every
// constructed object's arguments are already assigned when it is tried.
func matchTemplate(tpl *Template, cfg *term.Configuration, th term.Theorem) bool {
	objs := tpl.Config.Objects()
	pool := cfg.Objects()
	assignment := make(map[int]*term.Object, len(objs))
	used := make(map[int]bool, len(objs))
	thKey := th.Key()

	var assign func(idx int) bool
	assign = func(idx int) bool {
		if idx == len(objs) {
			mapped, ok := mapTheorem(tpl.Theorem, assignment)
			return ok && mapped.Key() == thKey
		}
		o := objs[idx]
		for _, cand := range pool {
			if cand.Type != o.Type || used[cand.ID] {
				continue
			}
			if !o.Loose() && !sameBuild(o, cand, assignment) {
				continue
			}
			assignment[o.ID] = cand
			used[cand.ID] = true
			if assign(idx + 1) {
				return true
			}
			delete(assignment, o.ID)
			delete(used, cand.ID)
		}
		return false
	}
	return assign(0)
}

// sameBuild reports whether cand is built exactly like the template object
// o under the current assignment: same construction, same output index, and
// argument tuples that agree after mapping.
func sameBuild(o, cand *term.Object, assignment map[int]*term.Object) bool {
	if cand.Construction != o.Construction || cand.OutIndex != o.OutIndex {
		return false
	}
	mapped, ok := mapArgs(o.Args, assignment)
	if !ok {
		return false
	}
	return term.TupleKey(mapped) == term.TupleKey(cand.Args)
}

// mapArgs rebuilds an argument tuple with every object replaced through the
// assignment, re-normalizing sets.
func mapArgs(args []term.Argument, assignment map[int]*term.Object) ([]term.Argument, bool) {
	out := make([]term.Argument, len(args))
	for i, a := range args {
		m, ok := mapArg(a, assignment)
		if !ok {
			return nil, false
		}
		out[i] = m
	}
	return out, true
}

func mapArg(a term.Argument, assignment map[int]*term.Object) (term.Argument, bool) {
	if !a.IsSet() {
		o, ok := assignment[a.Object.ID]
		if !ok {
			return term.Argument{}, false
		}
		return term.ObjArg(o), true
	}
	inner := make([]term.Argument, len(a.Set))
	for i, in := range a.Set {
		m, ok := mapArg(in, assignment)
		if !ok {
			return term.Argument{}, false
		}
		inner[i] = m
	}
	set, err := term.SetArg(inner...)
	if err != nil {
		return term.Argument{}, false
	}
	return set, true
}

// mapTheorem rebuilds the template theorem over the assigned cfg objects.
func mapTheorem(t term.Theorem, assignment map[int]*term.Object) (term.Theorem, bool) {
	objs := make([]term.TheoremObject, len(t.Objects))
	for i, to := range t.Objects {
		m, ok := mapTheoremObject(to, assignment)
		if !ok {
			return term.Theorem{}, false
		}
		objs[i] = m
	}
	return term.NewTheorem(t.Type, objs...), true
}

func mapTheoremObject(to term.TheoremObject, assignment map[int]*term.Object) (term.TheoremObject, bool) {
	get := func(o *term.Object) (*term.Object, bool) {
		m, ok := assignment[o.ID]
		return m, ok
	}
	switch to.Kind {
	case term.TOPoint:
		if m, ok := get(to.Ref); ok {
			return term.PointObj(m), true
		}
	case term.TOLine:
		if to.Ref != nil {
			if m, ok := get(to.Ref); ok {
				return term.LineObj(m), true
			}
			break
		}
		p, okP := get(to.Points[0])
		q, okQ := get(to.Points[1])
		if okP && okQ {
			return term.LineByPoints(p, q), true
		}
	case term.TOCircle:
		if to.Ref != nil {
			if m, ok := get(to.Ref); ok {
				return term.CircleObj(m), true
			}
			break
		}
		p, okP := get(to.Points[0])
		q, okQ := get(to.Points[1])
		r, okR := get(to.Points[2])
		if okP && okQ && okR {
			return term.CircleByPoints(p, q, r), true
		}
	case term.TOSegment:
		p, okP := get(to.Points[0])
		q, okQ := get(to.Points[1])
		if okP && okQ {
			return term.SegmentObj(p, q), true
		}
	case term.TOAngle:
		a, okA := mapTheoremObject(to.Arms[0], assignment)
		b, okB := mapTheoremObject(to.Arms[1], assignment)
		if okA && okB {
			return term.AngleObj(a, b), true
		}
	}
	return term.TheoremObject{}, false
}
