// Package prover classification types, template library, and errors.
package prover

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/geogen/term"
)

// Sentinel errors of the prover.
var (
	// ErrUnhandledFeedback indicates a theorem or construction kind the
	// filters have no rule for — an internal invariant violation.
	ErrUnhandledFeedback = errors.New("prover: unhandled feedback kind")

	// ErrEmptyTemplate is returned when a template carries no theorem.
	ErrEmptyTemplate = errors.New("prover: template without theorem")
)

// Class enumerates filter verdicts; ClassNone marks a genuinely new
// theorem.
type Class uint8

// The filter verdicts, in match order.
const (
	ClassNone Class = iota
	ClassTrivial
	ClassSubTheorem
	ClassSimpler
	ClassTransitive
)

// String renders the verdict for logs.
func (c Class) String() string {
	switch c {
	case ClassNone:
		return "new"
	case ClassTrivial:
		return "trivial"
	case ClassSubTheorem:
		return "sub-theorem"
	case ClassSimpler:
		return "simpler-definable"
	case ClassTransitive:
		return "transitive"
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// Classification is a verdict with its evidence.
type Classification struct {
	// Class is the verdict; the evidence fields below are populated per
	// class.
	Class Class

	// TemplateID and TemplateFile identify the matched template
	// (ClassSubTheorem).
	TemplateID   int
	TemplateFile string

	// Fact1 and Fact2 are the composed known facts (ClassTransitive).
	Fact1, Fact2 term.Theorem
}

// Annotation renders the verdict as the report's literal annotation string,
// using the given identifier namer for transitivity facts. Empty for
// ClassNone.
func (c Classification) Annotation(name func(id int) string) string {
	switch c.Class {
	case ClassNone:
		return ""
	case ClassTrivial:
		return "trivial theorem"
	case ClassSubTheorem:
		return fmt.Sprintf("sub-theorem implied from theorem %d from file %s", c.TemplateID, c.TemplateFile)
	case ClassSimpler:
		return "can be defined in a simpler configuration"
	case ClassTransitive:
		return fmt.Sprintf("is true because of %s and %s", c.Fact1.Format(name), c.Fact2.Format(name))
	}
	return ""
}

// Template is one library entry: a configuration and a theorem that holds
// in it.
type Template struct {
	// ID is the template's number within its file.
	ID int

	// File is the base name of the file the template came from.
	File string

	// Config is the template configuration.
	Config *term.Configuration

	// Theorem is the statement over Config's objects.
	Theorem term.Theorem
}

// Library is the immutable template collection loaded at startup.
type Library struct {
	Templates []*Template
}

// NewLibrary validates and wraps the templates.
func NewLibrary(templates []*Template) (*Library, error) {
	for _, t := range templates {
		if t.Config == nil || len(t.Theorem.Objects) == 0 {
			return nil, fmt.Errorf("%w: template %d (%s)", ErrEmptyTemplate, t.ID, t.File)
		}
	}
	return &Library{Templates: templates}, nil
}
