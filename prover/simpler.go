package prover

import "github.com/katalvlaran/geogen/term"

// Simpler reports whether th can be stated in a strictly smaller
// configuration: the argument-dependency closure of its mentioned objects
// spans fewer constructed objects than cfg carries, so some construction
// step is irrelevant to the statement.
func Simpler(cfg *term.Configuration, th term.Theorem) bool {
	constructed := 0
	for _, o := range term.Closure(th.Mentions()...) {
		if !o.Loose() {
			constructed++
		}
	}
	return constructed < len(cfg.Constructed)
}
