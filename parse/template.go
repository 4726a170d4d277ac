// Package parse template-theorem loader: numbered blocks closed by a
// theorem declaration.
package parse

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/geogen/prover"
)

// LoadTemplates parses every regular file of dir into one template library.
// Any malformed template fails the whole load; the library is immutable
// after startup.
func LoadTemplates(dir string) (*prover.Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var all []*prover.Template
	for _, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		ts, err := ParseTemplates(name, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		all = append(all, ts...)
	}
	return prover.NewLibrary(all)
}

// ParseTemplates parses one template file: a sequence of `N:` blocks, each
// holding a layout line, constructed-object lines, and a `Theorem:` line.
func ParseTemplates(file string, r io.Reader) ([]*prover.Template, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	var out []*prover.Template
	i := 0
	for i < len(lines) {
		id, ok := blockHeader(lines[i].text)
		if !ok {
			return nil, errAt(file, lines[i].num, 1, "expected a block header `<N>:`")
		}
		tpl, next, err := parseBlock(file, id, lines, i+1)
		if err != nil {
			return nil, err
		}
		out = append(out, tpl)
		i = next
	}
	if len(out) == 0 {
		return nil, errAt(file, 1, 1, "no template blocks")
	}
	return out, nil
}

// blockHeader recognizes `N:` and returns the template number.
func blockHeader(text string) (int, bool) {
	num, ok := strings.CutSuffix(text, ":")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parseBlock reads one template body starting at lines[start] and returns
// the template plus the index of the next block header.
func parseBlock(file string, id int, lines []line, start int) (*prover.Template, int, error) {
	if start >= len(lines) {
		return nil, 0, errAt(file, lines[start-1].num, 1, "template %d has no body", id)
	}
	cfg, names, err := parseLayout(file, lines[start])
	if err != nil {
		return nil, 0, err
	}
	i := start + 1
	for ; i < len(lines); i++ {
		l := lines[i]
		if body, ok := strings.CutPrefix(l.text, "Theorem:"); ok {
			th, err := parseTheorem(file, l, body, names)
			if err != nil {
				return nil, 0, err
			}
			cfg.Last = nil
			return &prover.Template{ID: id, File: file, Config: cfg, Theorem: th}, i + 1, nil
		}
		cfg, err = parseObjectLine(file, l, cfg, names)
		if err != nil {
			return nil, 0, err
		}
	}
	return nil, 0, errAt(file, lines[i-1].num, 1, "template %d has no Theorem: line", id)
}
