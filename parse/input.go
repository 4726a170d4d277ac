// Package parse generator-input parser: layout line, constructed-object
// lines, Rules block.
package parse

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/geogen/term"
)

// line is one significant input line with its 1-based number.
type line struct {
	text string
	num  int
}

// readLines drops blank lines and # comments and trims whitespace.
func readLines(r io.Reader) ([]line, error) {
	var out []line
	sc := bufio.NewScanner(r)
	num := 0
	for sc.Scan() {
		num++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text != "" {
			out = append(out, line{text: text, num: num})
		}
	}
	return out, sc.Err()
}

// ParseInputFile opens and parses a generator input file; the input
// identifier is the base name without extension.
func ParseInputFile(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))
	return ParseInput(id, base, f)
}

// ParseInput parses a generator input from a reader. file names the source
// in error positions.
func ParseInput(id, file string, r io.Reader) (*Input, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errAt(file, 1, 1, "empty input")
	}

	cfg, names, err := parseLayout(file, lines[0])
	if err != nil {
		return nil, err
	}

	in := &Input{ID: id, Names: map[int]string{}}
	var rules []*term.Construction
	i := 1
	for ; i < len(lines); i++ {
		l := lines[i]
		if rest, ok := strings.CutPrefix(l.text, "Rules:"); ok {
			rules, err = parseRules(file, l.num, rest, lines[i+1:])
			if err != nil {
				return nil, err
			}
			break
		}
		cfg, err = parseObjectLine(file, l, cfg, names)
		if err != nil {
			return nil, err
		}
	}

	// the whole initial configuration is given, nothing is "last added"
	cfg.Last = nil
	in.Config = cfg
	in.Rules = rules
	for name, o := range names {
		in.Names[o.ID] = name
	}
	return in, nil
}

// parseLayout reads the layout declaration: a layout token followed by one
// identifier per loose object.
func parseLayout(file string, l line) (*term.Configuration, map[string]*term.Object, error) {
	fields := strings.Fields(l.text)
	tag, err := term.ParseLayoutTag(fields[0])
	if err != nil {
		return nil, nil, errAt(file, l.num, 1, "unknown layout %q", fields[0])
	}
	cfg, err := term.NewLooseHolder(tag)
	if err != nil {
		return nil, nil, errAt(file, l.num, 1, "%v", err)
	}
	idents := fields[1:]
	if len(idents) != len(cfg.Loose) {
		return nil, nil, errAt(file, l.num, 1, "%s takes %d identifiers, got %d", tag, len(cfg.Loose), len(idents))
	}
	names := make(map[string]*term.Object, len(idents))
	for i, ident := range idents {
		if !isIdent(ident) {
			return nil, nil, errAt(file, l.num, columnOf(l.text, ident), "bad identifier %q", ident)
		}
		if _, dup := names[ident]; dup {
			return nil, nil, errAt(file, l.num, columnOf(l.text, ident), "duplicate identifier %q", ident)
		}
		names[ident] = cfg.Loose[i]
	}
	return cfg, names, nil
}

// parseObjectLine reads `<id> = <Name>(<args>)[idx]` and appends the
// constructed object.
func parseObjectLine(file string, l line, cfg *term.Configuration, names map[string]*term.Object) (*term.Configuration, error) {
	lhs, rhs, found := strings.Cut(l.text, "=")
	if !found {
		return nil, errAt(file, l.num, 1, "expected `<id> = <Construction>(...)`")
	}
	ident := strings.TrimSpace(lhs)
	if !isIdent(ident) {
		return nil, errAt(file, l.num, 1, "bad identifier %q", ident)
	}
	if _, dup := names[ident]; dup {
		return nil, errAt(file, l.num, 1, "duplicate identifier %q", ident)
	}

	conName, argIdents, outIdx, err := parseCall(file, l, strings.TrimSpace(rhs))
	if err != nil {
		return nil, err
	}
	con, err := term.ByName(conName)
	if err != nil {
		return nil, errAt(file, l.num, columnOf(l.text, conName), "unknown construction %q", conName)
	}
	inputs := make([]*term.Object, len(argIdents))
	for i, a := range argIdents {
		o, ok := names[a]
		if !ok {
			return nil, errAt(file, l.num, columnOf(l.text, a), "unknown object %q", a)
		}
		inputs[i] = o
	}
	obj, err := term.NewConstructed(cfg.NextID(), con, inputs, outIdx)
	if err != nil {
		return nil, errAt(file, l.num, 1, "%v", err)
	}
	names[ident] = obj
	return cfg.Append(obj), nil
}

// parseCall splits `Name(arg, {arg, arg})[idx]` into the construction name,
// the flat argument identifiers in written order, and the output index.
func parseCall(file string, l line, rhs string) (string, []string, int, error) {
	open := strings.IndexByte(rhs, '(')
	if open < 0 || !strings.ContainsRune(rhs, ')') {
		return "", nil, 0, errAt(file, l.num, 1, "expected `<Construction>(...)`")
	}
	name := strings.TrimSpace(rhs[:open])
	closing := strings.LastIndexByte(rhs, ')')
	inner := rhs[open+1 : closing]

	outIdx := 0
	if tail := strings.TrimSpace(rhs[closing+1:]); tail != "" {
		if !strings.HasPrefix(tail, "[") || !strings.HasSuffix(tail, "]") {
			return "", nil, 0, errAt(file, l.num, 1, "trailing %q after call", tail)
		}
		n, err := strconv.Atoi(strings.TrimSpace(tail[1 : len(tail)-1]))
		if err != nil || n < 0 {
			return "", nil, 0, errAt(file, l.num, 1, "bad output index %q", tail)
		}
		outIdx = n
	}

	args, err := flattenArgs(file, l, inner)
	if err != nil {
		return "", nil, 0, err
	}
	return name, args, outIdx, nil
}

// flattenArgs extracts the argument identifiers in written order,
// validating brace balance. Set braces only group; term.Match re-folds the
// flat list against the signature.
func flattenArgs(file string, l line, inner string) ([]string, error) {
	var args []string
	depth := 0
	token := strings.Builder{}
	flush := func() error {
		if token.Len() == 0 {
			return nil
		}
		a := token.String()
		token.Reset()
		if !isIdent(a) {
			return errAt(file, l.num, columnOf(l.text, a), "bad identifier %q", a)
		}
		args = append(args, a)
		return nil
	}
	for _, r := range inner {
		switch {
		case r == '{':
			depth++
		case r == '}':
			depth--
			if depth < 0 {
				return nil, errAt(file, l.num, 1, "unbalanced braces")
			}
		case r == ',' || r == ' ' || r == '\t':
			if err := flush(); err != nil {
				return nil, err
			}
		default:
			token.WriteRune(r)
		}
	}
	if depth != 0 {
		return nil, errAt(file, l.num, 1, "unbalanced braces")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return args, nil
}

// parseRules reads the construction names of the Rules block: the rest of
// the Rules: line plus every following line.
func parseRules(file string, num int, rest string, tail []line) ([]*term.Construction, error) {
	tokens := splitList(rest)
	for _, l := range tail {
		tokens = append(tokens, splitList(l.text)...)
	}
	var out []*term.Construction
	seen := map[string]bool{}
	for _, tok := range tokens {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		con, err := term.ByName(tok)
		if err != nil {
			return nil, errAt(file, num, 1, "unknown construction %q in Rules", tok)
		}
		out = append(out, con)
	}
	return out, nil
}

// splitList splits on commas and whitespace.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// isIdent accepts a letter followed by letters, digits, underscores or
// primes.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		letter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		digit := r >= '0' && r <= '9'
		if i == 0 && !letter {
			return false
		}
		if !letter && !digit && r != '_' && r != '\'' {
			return false
		}
	}
	return true
}

// columnOf is the 1-based column of the first occurrence of tok.
func columnOf(text, tok string) int {
	if i := strings.Index(text, tok); i >= 0 {
		return i + 1
	}
	return 1
}
