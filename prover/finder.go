// Package prover theorem finder: structural candidate enumeration plus
// all-pictures analytic verification.
package prover

import (
	"math"

	"github.com/katalvlaran/geogen/geom"
	"github.com/katalvlaran/geogen/picture"
	"github.com/katalvlaran/geogen/term"
)

// rightAngle is the non-obtuse line angle of perpendicular lines.
const rightAngle = math.Pi / 2

// lineEnt is one member of the line universe: either a line object or a
// virtual line through two points, resolved in every picture up front.
type lineEnt struct {
	to     term.TheoremObject
	lines  []geom.Line // per picture
	defIDs []int       // points the entity passes through by construction
}

// Find returns every theorem of the supported types that holds in all
// pictures of the set, deduplicated by key. The result mixes fresh
// theorems and background facts; Split separates them.
func Find(set *picture.Set) []term.Theorem {
	cfg := set.Config
	n := set.Count()

	points := cfg.ObjectsOfType(term.Point)
	coords := make([][]geom.Point, len(points)) // [point][picture]
	for pi, p := range points {
		coords[pi] = make([]geom.Point, n)
		for i := 0; i < n; i++ {
			coords[pi][i], _ = set.Point(i, p)
		}
	}

	ents := lineUniverse(set, points, coords)
	circles := cfg.ObjectsOfType(term.Circle)
	circleInst := make([][]geom.Circle, len(circles)) // [circle][picture]
	for ci, c := range circles {
		circleInst[ci] = make([]geom.Circle, n)
		for i := 0; i < n; i++ {
			circleInst[ci][i], _ = set.Circle(i, c)
		}
	}

	var out []term.Theorem
	seen := map[string]bool{}
	add := func(t term.Theorem) {
		if k := t.Key(); !seen[k] {
			seen[k] = true
			out = append(out, t)
		}
	}

	findCollinear(points, coords, n, add)
	findConcyclic(points, coords, n, add)
	findEqualSegments(points, coords, n, add)
	findLinePairs(ents, n, add)
	findConcurrent(ents, n, add)
	findTangencies(ents, circles, circleInst, n, add)
	findEqualAngles(ents, n, add)
	return out
}

// Split divides found theorems into fresh ones (involving the last-added
// object) and background facts. An initial configuration has no last-added
// object; everything it yields is fresh.
func Split(cfg *term.Configuration, all []term.Theorem) (fresh, background []term.Theorem) {
	if cfg.Last == nil {
		return all, nil
	}
	for _, t := range all {
		if t.Involves(cfg.Last.ID) {
			fresh = append(fresh, t)
		} else {
			background = append(background, t)
		}
	}
	return fresh, background
}

// lineUniverse assembles the line entities: every line object, plus a
// virtual line through each point pair. A pair whose line coincides with an
// earlier entity in every picture (a LineFromPoints object over the pair,
// or a collinear pair already represented) is the same line again; one
// representative survives and remembers the extra incident points for the
// concurrency guard.
func lineUniverse(set *picture.Set, points []*term.Object, coords [][]geom.Point) []lineEnt {
	cfg := set.Config
	n := set.Count()

	var ents []lineEnt
	for _, lo := range cfg.ObjectsOfType(term.Line) {
		e := lineEnt{to: term.LineObj(lo), lines: make([]geom.Line, n), defIDs: passThrough(lo)}
		for i := 0; i < n; i++ {
			e.lines[i], _ = set.Line(i, lo)
		}
		ents = append(ents, e)
	}

	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			e := lineEnt{
				to:     term.LineByPoints(points[i], points[j]),
				lines:  make([]geom.Line, n),
				defIDs: []int{points[i].ID, points[j].ID},
			}
			ok := true
			for pi := 0; pi < n && ok; pi++ {
				l, err := geom.LineFromPoints(coords[i][pi], coords[j][pi])
				if err != nil {
					ok = false
					break
				}
				e.lines[pi] = l
			}
			if !ok {
				continue
			}
			merged := false
			for ei := range ents {
				if sameEveryPicture(ents[ei].lines, e.lines, n) {
					ents[ei].defIDs = mergeIDs(ents[ei].defIDs, e.defIDs)
					merged = true
					break
				}
			}
			if !merged {
				ents = append(ents, e)
			}
		}
	}
	return ents
}

// sameEveryPicture reports whether two entity instantiations coincide in
// all n pictures.
func sameEveryPicture(a, b []geom.Line, n int) bool {
	for i := 0; i < n; i++ {
		if !a[i].Eq(b[i]) {
			return false
		}
	}
	return true
}

// mergeIDs appends the identifiers of ids not already present in dst.
func mergeIDs(dst, ids []int) []int {
	for _, id := range ids {
		present := false
		for _, d := range dst {
			if d == id {
				present = true
				break
			}
		}
		if !present {
			dst = append(dst, id)
		}
	}
	return dst
}

// passThrough lists the point arguments a line object is incident to by
// construction, sorted by identifier.
func passThrough(lo *term.Object) []int {
	if lo.Construction == nil {
		return nil
	}
	var objs []*term.Object
	switch lo.Construction.Kind {
	case term.KindLineFromPoints:
		objs = lo.Args[0].Leaves(nil)
	case term.KindPerpendicularLine, term.KindParallelLine:
		objs = lo.Args[1].Leaves(nil)
	case term.KindInternalAngleBisector, term.KindTangentLine:
		objs = lo.Args[0].Leaves(nil)
	default:
		return nil
	}
	ids := make([]int, 0, len(objs))
	for _, o := range objs {
		ids = append(ids, o.ID)
	}
	if len(ids) == 2 && ids[0] > ids[1] {
		ids[0], ids[1] = ids[1], ids[0]
	}
	return ids
}

func findCollinear(points []*term.Object, coords [][]geom.Point, n int, add func(term.Theorem)) {
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			for k := j + 1; k < len(points); k++ {
				if everyPicture(n, func(pi int) bool {
					return geom.Collinear(coords[i][pi], coords[j][pi], coords[k][pi])
				}) {
					add(term.NewTheorem(term.CollinearPoints,
						term.PointObj(points[i]), term.PointObj(points[j]), term.PointObj(points[k])))
				}
			}
		}
	}
}

func findConcyclic(points []*term.Object, coords [][]geom.Point, n int, add func(term.Theorem)) {
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			for k := j + 1; k < len(points); k++ {
				for l := k + 1; l < len(points); l++ {
					if everyPicture(n, func(pi int) bool {
						return geom.Concyclic(coords[i][pi], coords[j][pi], coords[k][pi], coords[l][pi])
					}) {
						add(term.NewTheorem(term.ConcyclicPoints,
							term.PointObj(points[i]), term.PointObj(points[j]),
							term.PointObj(points[k]), term.PointObj(points[l])))
					}
				}
			}
		}
	}
}

func findEqualSegments(points []*term.Object, coords [][]geom.Point, n int, add func(term.Theorem)) {
	type seg struct {
		i, j int
		lens []float64
	}
	var segs []seg
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			s := seg{i: i, j: j, lens: make([]float64, n)}
			for pi := 0; pi < n; pi++ {
				s.lens[pi] = geom.Dist(coords[i][pi], coords[j][pi])
			}
			segs = append(segs, s)
		}
	}
	for a := 0; a < len(segs); a++ {
		for b := a + 1; b < len(segs); b++ {
			if everyPicture(n, func(pi int) bool {
				return geom.Eq(segs[a].lens[pi], segs[b].lens[pi])
			}) {
				add(term.NewTheorem(term.EqualLineSegments,
					term.SegmentObj(points[segs[a].i], points[segs[a].j]),
					term.SegmentObj(points[segs[b].i], points[segs[b].j])))
			}
		}
	}
}

func findLinePairs(ents []lineEnt, n int, add func(term.Theorem)) {
	for a := 0; a < len(ents); a++ {
		for b := a + 1; b < len(ents); b++ {
			if everyPicture(n, func(pi int) bool {
				return geom.Parallel(ents[a].lines[pi], ents[b].lines[pi])
			}) {
				add(term.NewTheorem(term.ParallelLines, ents[a].to, ents[b].to))
			}
			if everyPicture(n, func(pi int) bool {
				return geom.Perpendicular(ents[a].lines[pi], ents[b].lines[pi])
			}) {
				add(term.NewTheorem(term.PerpendicularLines, ents[a].to, ents[b].to))
			}
		}
	}
}

func findConcurrent(ents []lineEnt, n int, add func(term.Theorem)) {
	for a := 0; a < len(ents); a++ {
		for b := a + 1; b < len(ents); b++ {
			for c := b + 1; c < len(ents); c++ {
				if sharedDefiningPoint(ents[a], ents[b], ents[c]) {
					continue
				}
				if everyPicture(n, func(pi int) bool {
					return geom.Concurrent(ents[a].lines[pi], ents[b].lines[pi], ents[c].lines[pi])
				}) {
					add(term.NewTheorem(term.ConcurrentLines, ents[a].to, ents[b].to, ents[c].to))
				}
			}
		}
	}
}

// sharedDefiningPoint reports whether some point is a construction-incident
// point of at least two of the three entities. Such a triple meets at that
// point by definition, so its concurrency carries no content.
func sharedDefiningPoint(a, b, c lineEnt) bool {
	count := map[int]int{}
	for _, e := range []lineEnt{a, b, c} {
		for _, id := range e.defIDs {
			count[id]++
			if count[id] >= 2 {
				return true
			}
		}
	}
	return false
}

func findTangencies(ents []lineEnt, circles []*term.Object, inst [][]geom.Circle, n int, add func(term.Theorem)) {
	for a := 0; a < len(circles); a++ {
		for b := a + 1; b < len(circles); b++ {
			if everyPicture(n, func(pi int) bool {
				return geom.TangentCircles(inst[a][pi], inst[b][pi])
			}) {
				add(term.NewTheorem(term.TangentCircles,
					term.CircleObj(circles[a]), term.CircleObj(circles[b])))
			}
		}
	}
	for _, e := range ents {
		for ci := range circles {
			if everyPicture(n, func(pi int) bool {
				return geom.TangentLineCircle(e.lines[pi], inst[ci][pi])
			}) {
				add(term.NewTheorem(term.LineTangentToCircle, e.to, term.CircleObj(circles[ci])))
			}
		}
	}
}

func findEqualAngles(ents []lineEnt, n int, add func(term.Theorem)) {
	type angle struct {
		to   term.TheoremObject
		vals []float64
	}
	var angles []angle
	for a := 0; a < len(ents); a++ {
		for b := a + 1; b < len(ents); b++ {
			vals := make([]float64, n)
			usable := true
			for pi := 0; pi < n; pi++ {
				vals[pi] = geom.AngleBetween(ents[a].lines[pi], ents[b].lines[pi])
				// zero angles belong to ParallelLines and right angles to
				// PerpendicularLines; as EqualAngles halves they only
				// generate noise ("any two right angles are equal")
				if geom.Zero(vals[pi]) || geom.Eq(vals[pi], rightAngle) {
					usable = false
					break
				}
			}
			if usable {
				angles = append(angles, angle{to: term.AngleObj(ents[a].to, ents[b].to), vals: vals})
			}
		}
	}
	for a := 0; a < len(angles); a++ {
		for b := a + 1; b < len(angles); b++ {
			if everyPicture(n, func(pi int) bool {
				return geom.Eq(angles[a].vals[pi], angles[b].vals[pi])
			}) {
				add(term.NewTheorem(term.EqualAngles, angles[a].to, angles[b].to))
			}
		}
	}
}

// everyPicture reports whether pred holds in all n pictures.
func everyPicture(n int, pred func(i int) bool) bool {
	for i := 0; i < n; i++ {
		if !pred(i) {
			return false
		}
	}
	return true
}
