// Package compiler wires the lexer and parser together into the single
// entry point a command-line front end needs: read a source file, run
// lexical and syntactic analysis over it, and report how much was seen.
package compiler

import (
	"io"
	"os"
	"strings"

	"github.com/pmm-lang/pmmc/internal/diag"
	"github.com/pmm-lang/pmmc/internal/lexer"
	"github.com/pmm-lang/pmmc/internal/parser"
)

// Summary reports what a Driver.Run pass produced.
type Summary struct {
	TokenCount int
	ErrorCount int
}

// Driver owns the two output sinks a compile pass writes to: the
// classified token dump and the diagnostic stream. Both are optional;
// passing nil for either discards that output while still running the
// full analysis.
type Driver struct {
	Tokens io.Writer
	Diag   io.Writer
}

// New creates a Driver writing token dumps to tokens and diagnostics to
// diagOut.
func New(tokens, diagOut io.Writer) *Driver {
	return &Driver{Tokens: tokens, Diag: diagOut}
}

// Run reads path, lexes and parses its contents, and returns how many
// tokens were produced and how many diagnostics (lexical and syntactic
// combined) were reported. A non-nil error means the file could not be
// opened; it carries no information about the source's validity.
func (d *Driver) Run(path string) (Summary, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, err
	}

	return d.RunSource(string(src)), nil
}

// RunSource runs the same analysis as Run over an in-memory source
// string, for callers such as tests that already have the bytes in hand.
func (d *Driver) RunSource(src string) Summary {
	var opts []lexer.Option
	if d.Tokens != nil {
		opts = append(opts, lexer.WithTokenSink(d.Tokens))
	}
	lx := lexer.New(strings.NewReader(src), d.Diag, opts...)
	sink := diag.NewSink(d.Diag)
	p := parser.New(lx, sink)

	p.Compile()

	return Summary{
		TokenCount: p.TokenCount(),
		ErrorCount: len(lx.Errors()) + p.ErrorCount(),
	}
}
