// Package parse theorem declarations: `Theorem: <Type>(<object>, ...)`.
package parse

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/geogen/term"
)

// parseTheorem reads a theorem declaration body (the part after the
// `Theorem:` prefix) against the named objects of a template block.
func parseTheorem(file string, l line, body string, names map[string]*term.Object) (term.Theorem, error) {
	body = strings.TrimSpace(body)
	open := strings.IndexByte(body, '(')
	if open < 0 || !strings.HasSuffix(body, ")") {
		return term.Theorem{}, errAt(file, l.num, 1, "expected `Theorem: <Type>(...)`")
	}
	tt, err := term.ParseTheoremType(strings.TrimSpace(body[:open]))
	if err != nil {
		return term.Theorem{}, errAt(file, l.num, 1, "%v", err)
	}
	tokens, err := splitObjects(file, l, body[open+1:len(body)-1])
	if err != nil {
		return term.Theorem{}, err
	}
	objs := make([]term.TheoremObject, len(tokens))
	for i, tok := range tokens {
		objs[i], err = parseTheoremObject(file, l, tok, names)
		if err != nil {
			return term.Theorem{}, err
		}
	}
	th := term.NewTheorem(tt, objs...)
	if err := checkTheoremShape(th); err != nil {
		return term.Theorem{}, errAt(file, l.num, 1, "%v", err)
	}
	return th, nil
}

// splitObjects splits a theorem argument list at top-level commas,
// respecting {}, [], () and <> nesting.
func splitObjects(file string, l line, s string) ([]string, error) {
	var out []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '{', '[', '(', '<':
			depth++
		case '}', ']', ')', '>':
			depth--
			if depth < 0 {
				return nil, errAt(file, l.num, 1, "unbalanced brackets")
			}
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errAt(file, l.num, 1, "unbalanced brackets")
	}
	if last := strings.TrimSpace(s[start:]); last != "" {
		out = append(out, last)
	}
	return out, nil
}

// parseTheoremObject reads one theorem object token.
func parseTheoremObject(file string, l line, tok string, names map[string]*term.Object) (term.TheoremObject, error) {
	fail := func(format string, args ...any) (term.TheoremObject, error) {
		return term.TheoremObject{}, errAt(file, l.num, columnOf(l.text, tok), format, args...)
	}
	point := func(ident string) (*term.Object, error) {
		o, ok := names[ident]
		if !ok {
			return nil, errAt(file, l.num, columnOf(l.text, ident), "unknown object %q", ident)
		}
		if o.Type != term.Point {
			return nil, errAt(file, l.num, columnOf(l.text, ident), "%q is not a point", ident)
		}
		return o, nil
	}
	points := func(inner string, n int) ([]*term.Object, error) {
		idents := splitList(inner)
		if len(idents) != n {
			return nil, errAt(file, l.num, columnOf(l.text, tok), "want %d points, got %d", n, len(idents))
		}
		out := make([]*term.Object, n)
		for i, ident := range idents {
			p, err := point(ident)
			if err != nil {
				return nil, err
			}
			out[i] = p
		}
		return out, nil
	}

	switch {
	case strings.HasPrefix(tok, "{") && strings.HasSuffix(tok, "}"):
		ps, err := points(tok[1:len(tok)-1], 2)
		if err != nil {
			return term.TheoremObject{}, err
		}
		return term.SegmentObj(ps[0], ps[1]), nil

	case strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]"):
		ps, err := points(tok[1:len(tok)-1], 2)
		if err != nil {
			return term.TheoremObject{}, err
		}
		return term.LineByPoints(ps[0], ps[1]), nil

	case strings.HasPrefix(tok, "(") && strings.HasSuffix(tok, ")"):
		ps, err := points(tok[1:len(tok)-1], 3)
		if err != nil {
			return term.TheoremObject{}, err
		}
		return term.CircleByPoints(ps[0], ps[1], ps[2]), nil

	case strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">"):
		arms, err := splitObjects(file, l, tok[1:len(tok)-1])
		if err != nil {
			return term.TheoremObject{}, err
		}
		if len(arms) != 2 {
			return fail("an angle takes 2 arms, got %d", len(arms))
		}
		a0, err := parseLineForm(file, l, arms[0], names)
		if err != nil {
			return term.TheoremObject{}, err
		}
		a1, err := parseLineForm(file, l, arms[1], names)
		if err != nil {
			return term.TheoremObject{}, err
		}
		return term.AngleObj(a0, a1), nil

	case isIdent(tok):
		o, ok := names[tok]
		if !ok {
			return fail("unknown object %q", tok)
		}
		switch o.Type {
		case term.Point:
			return term.PointObj(o), nil
		case term.Line:
			return term.LineObj(o), nil
		case term.Circle:
			return term.CircleObj(o), nil
		}
	}
	return fail("bad theorem object %q", tok)
}

// parseLineForm reads an angle arm: a line object by name or [A, B].
func parseLineForm(file string, l line, tok string, names map[string]*term.Object) (term.TheoremObject, error) {
	to, err := parseTheoremObject(file, l, tok, names)
	if err != nil {
		return term.TheoremObject{}, err
	}
	if to.Kind != term.TOLine {
		return term.TheoremObject{}, errAt(file, l.num, columnOf(l.text, tok), "angle arm %q is not a line", tok)
	}
	return to, nil
}

// checkTheoremShape validates object kinds and arity per theorem type.
func checkTheoremShape(th term.Theorem) error {
	kindOK := func(want term.TheoremObjectKind, n int) error {
		if len(th.Objects) != n {
			return errShape(th, "%d objects", n)
		}
		for _, o := range th.Objects {
			if o.Kind != want {
				return errShape(th, "%d objects of one kind", n)
			}
		}
		return nil
	}
	switch th.Type {
	case term.EqualLineSegments:
		return kindOK(term.TOSegment, 2)
	case term.CollinearPoints:
		return kindOK(term.TOPoint, 3)
	case term.ConcurrentLines:
		return kindOK(term.TOLine, 3)
	case term.ConcyclicPoints:
		return kindOK(term.TOPoint, 4)
	case term.ParallelLines, term.PerpendicularLines:
		return kindOK(term.TOLine, 2)
	case term.TangentCircles:
		return kindOK(term.TOCircle, 2)
	case term.EqualAngles:
		return kindOK(term.TOAngle, 2)
	case term.LineTangentToCircle:
		if len(th.Objects) != 2 {
			return errShape(th, "a line and a circle")
		}
		lines, circles := 0, 0
		for _, o := range th.Objects {
			switch o.Kind {
			case term.TOLine:
				lines++
			case term.TOCircle:
				circles++
			}
		}
		if lines != 1 || circles != 1 {
			return errShape(th, "a line and a circle")
		}
		return nil
	}
	return errShape(th, "a known theorem type")
}

// errShape keeps checkTheoremShape free of position info; parseTheorem
// wraps the message with file and line.
func errShape(th term.Theorem, format string, args ...any) error {
	return fmt.Errorf("%s takes %s", th.Type, fmt.Sprintf(format, args...))
}
