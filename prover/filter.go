package prover

import "github.com/katalvlaran/geogen/term"

// Classify runs the filter pipeline over one fresh theorem and returns the
// first matching verdict: trivial, sub-theorem, simpler-definable,
// transitive, or ClassNone for a genuinely new theorem. facts are the other
// theorems known to hold in cfg (background facts plus already accepted
// fresh ones), consulted by the transitivity stage.
func Classify(lib *Library, cfg *term.Configuration, th term.Theorem, facts []term.Theorem) (Classification, error) {
	trivial, err := Trivial(cfg, th)
	if err != nil {
		return Classification{}, err
	}
	if trivial {
		return Classification{Class: ClassTrivial}, nil
	}
	if tpl, ok := SubTheorem(lib, cfg, th); ok {
		return Classification{Class: ClassSubTheorem, TemplateID: tpl.ID, TemplateFile: tpl.File}, nil
	}
	if Simpler(cfg, th) {
		return Classification{Class: ClassSimpler}, nil
	}
	if f1, f2, ok := Transitive(th, facts); ok {
		return Classification{Class: ClassTransitive, Fact1: f1, Fact2: f2}, nil
	}
	return Classification{Class: ClassNone}, nil
}
