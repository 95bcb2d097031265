// Package diag formats and emits parser diagnostics. It is the parser's
// counterpart to the lexer's own self-contained error formatting: no
// color, no multi-line source context, one line per diagnostic, written
// as each error site is reached so diagnostics land in strict source
// order.
package diag

import (
	"fmt"
	"io"

	"github.com/pmm-lang/pmmc/internal/lexer"
)

// Sink accumulates and writes syntactic diagnostics.
type Sink struct {
	w     io.Writer
	count int
}

// NewSink wraps w as a diagnostic sink. w may be nil, in which case
// diagnostics are still counted but not written anywhere.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Count reports how many diagnostics have been reported so far.
func (s *Sink) Count() int {
	return s.count
}

// ReportUnexpected emits a "expected X but found Y" diagnostic, or its
// end-of-file variant when found is the LAMBDA sentinel.
func (s *Sink) ReportUnexpected(pos lexer.Position, expected lexer.Expectation, found lexer.Token) {
	s.count++
	var line string
	if found.Class == lexer.LAMBDA {
		line = fmt.Sprintf("Parser error on line %d col %d: unexpected end of file (expected %s)\n",
			pos.Line, pos.Column, expected.FriendlyName())
	} else {
		line = fmt.Sprintf("Parser error on line %d col %d: expected %s but found %s\n",
			pos.Line, pos.Column, expected.FriendlyName(), found.Lexeme)
	}
	if s.w != nil {
		io.WriteString(s.w, line)
	}
}
