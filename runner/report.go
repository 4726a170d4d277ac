// Package runner report writer: the plain-text per-input result file.
package runner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/geogen/parse"
	"github.com/katalvlaran/geogen/term"
)

// ruleWidth is the length of the separator between result blocks.
const ruleWidth = 48

// writeReport renders one input's report to <prefix><input-id>.<ext> in
// the output directory.
func writeReport(in *parse.Input, o Options, initial *analysis, blocks []*analysis) error {
	path := filepath.Join(o.OutputDir, o.Prefix+in.ID+"."+o.Ext)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	renderReport(w, in, o, initial, blocks)
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// renderReport writes the deterministic report sections: initial
// configuration, its theorems, run parameters, then one numbered block per
// generated configuration.
func renderReport(w io.Writer, in *parse.Input, o Options, initial *analysis, blocks []*analysis) {
	fmt.Fprintf(w, "Input: %s\n", in.ID)
	writeConfiguration(w, in, in.Config)

	fmt.Fprintf(w, "\nTheorems:\n")
	writeTheorems(w, in, initial)

	fmt.Fprintf(w, "\nIterations: %d\n", o.Iterations)
	rules := make([]string, len(in.Rules))
	for i, r := range in.Rules {
		rules[i] = r.Name
	}
	if len(rules) == 0 {
		rules = []string{"none"}
	}
	fmt.Fprintf(w, "Constructions: %s\n", strings.Join(rules, ", "))

	rule := strings.Repeat("-", ruleWidth)
	for i, b := range blocks {
		fmt.Fprintf(w, "%s\n%d)\n", rule, i+1)
		writeConfiguration(w, in, b.cfg)
		writeTheorems(w, in, b)
	}
}

// writeConfiguration prints the layout line and one line per constructed
// object.
func writeConfiguration(w io.Writer, in *parse.Input, cfg *term.Configuration) {
	name := namer(in, cfg)
	loose := make([]string, len(cfg.Loose))
	for i, lo := range cfg.Loose {
		loose[i] = name(lo.ID)
	}
	fmt.Fprintf(w, "%s %s\n", cfg.Layout, strings.Join(loose, " "))
	for _, o := range cfg.Constructed {
		fmt.Fprintf(w, "%s\n", formatConstructed(o, name))
	}
}

// writeTheorems prints the ` NN. <theorem>[ - <annotation>]` lines.
func writeTheorems(w io.Writer, in *parse.Input, a *analysis) {
	if len(a.theorems) == 0 {
		fmt.Fprintf(w, "  (none)\n")
		return
	}
	name := namer(in, a.cfg)
	for i, th := range a.theorems {
		line := fmt.Sprintf(" %2d. %s", i+1, th.Format(name))
		if ann := a.classes[i].Annotation(name); ann != "" {
			line += " - " + ann
		}
		fmt.Fprintf(w, "%s\n", line)
	}
}

// namer resolves object identifiers to report names. The initial
// configuration keeps every declared name; generated configurations are
// rewritten into canonical identifiers, so only the loose names survive and
// constructed objects print as X<id>.
func namer(in *parse.Input, cfg *term.Configuration) func(int) string {
	initial := cfg == in.Config
	loose := len(cfg.Loose)
	return func(id int) string {
		if name, ok := in.Names[id]; ok && (initial || id < loose) {
			return name
		}
		return fmt.Sprintf("X%d", id)
	}
}

// formatConstructed renders `<name> = <Construction>(<args>)[idx]` with
// braced set arguments; the output index prints only when non-zero.
func formatConstructed(o *term.Object, name func(int) string) string {
	parts := make([]string, len(o.Args))
	for i, a := range o.Args {
		parts[i] = formatArg(a, name)
	}
	s := fmt.Sprintf("%s = %s(%s)", name(o.ID), o.Construction.Name, strings.Join(parts, ", "))
	if o.OutIndex > 0 {
		s += fmt.Sprintf("[%d]", o.OutIndex)
	}
	return s
}

func formatArg(a term.Argument, name func(int) string) string {
	if !a.IsSet() {
		return name(a.Object.ID)
	}
	inner := make([]string, len(a.Set))
	for i, in := range a.Set {
		inner[i] = formatArg(in, name)
	}
	return "{" + strings.Join(inner, ", ") + "}"
}
