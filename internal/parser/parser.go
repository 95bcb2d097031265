// Package parser implements the LL(1) recursive-descent syntax analyser
// for P‑‑: one method per grammar non-terminal, driven by a per-token-class
// synchronization vector for panic-mode error recovery.
package parser

import (
	"github.com/pmm-lang/pmmc/internal/diag"
	"github.com/pmm-lang/pmmc/internal/lexer"
	"github.com/pmm-lang/pmmc/internal/syncstack"
)

// numTokenClasses sizes the synchronization vector; ERROR is the
// highest-valued TokenClass constant.
const numTokenClasses = int(lexer.ERROR) + 1

// Parser validates a token stream against the P‑‑ grammar, reporting
// diagnostics and recovering via panic mode rather than aborting.
type Parser struct {
	lex       *lexer.Lexer
	cur       lexer.Token
	sync      *syncstack.Vector
	panic     bool
	diag      *diag.Sink
	tokenSeen int
}

// New creates a Parser reading tokens from lex and writing diagnostics
// through diagSink. The classified token dump is the lexer's own concern,
// wired with lexer.WithTokenSink.
func New(lex *lexer.Lexer, diagSink *diag.Sink) *Parser {
	return &Parser{
		lex:  lex,
		sync: syncstack.NewVector(numTokenClasses),
		diag: diagSink,
	}
}

// advance fetches the next token.
func (p *Parser) advance() {
	p.cur = p.lex.NextToken()
	p.tokenSeen++
}

// Compile runs the top-level compile sequence from spec §4.4: prime the
// first token, seed LAMBDA as the top-level synchronization follower,
// invoke programa, and check the stream actually ended.
func (p *Parser) Compile() {
	p.advance()

	p.sync.Add(int(lexer.LAMBDA))
	p.programa()

	if p.cur.Class != lexer.LAMBDA {
		p.reportAndResync(lexer.LAMBDA)
	}
}

// ErrorCount reports the total number of syntactic diagnostics emitted.
func (p *Parser) ErrorCount() int {
	return p.diag.Count()
}

// TokenCount reports how many tokens (including the terminal LAMBDA) were
// read from the lexer during Compile.
func (p *Parser) TokenCount() int {
	return p.tokenSeen
}
