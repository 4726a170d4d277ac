// Package parse error definitions and parsed-file types.
package parse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/geogen/term"
)

// ErrParse is the sentinel for every malformed input or template; wrapped
// errors carry file, line, and column.
var ErrParse = errors.New("parse: malformed input")

// errAt builds a positioned parse error.
func errAt(file string, line, col int, format string, args ...any) error {
	return fmt.Errorf("%w: %s:%d:%d: %s", ErrParse, file, line, col, fmt.Sprintf(format, args...))
}

// Input is a parsed generator input file: the initial configuration, the
// identifiers its objects were declared with, and the constructions the
// Rules block allows during generation.
type Input struct {
	// ID is the input identifier (base file name without extension), used
	// for the output file name.
	ID string

	// Config is the initial configuration. Its Last pointer is nil: every
	// declared object belongs to the input, none is "newly added".
	Config *term.Configuration

	// Names maps object identifiers to the names declared in the file.
	Names map[int]string

	// Rules are the constructions allowed during generation, in
	// declaration order.
	Rules []*term.Construction
}
