package lexer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pmm-lang/pmmc/internal/buffer"
)

// Option configures a Lexer at construction time, following the teacher's
// functional-options pattern.
type Option func(*Lexer)

// WithTracing enables a best-effort trace of each state transition,
// written to w. Never required by the grammar; useful only when debugging
// the DFA itself.
func WithTracing(w io.Writer) Option {
	return func(l *Lexer) {
		l.trace = w
	}
}

// WithTokenSink streams every accepted token to w as it is produced, one
// "<lexeme>, <CLASS>" line each, closing the dump with a final "EOF" line.
// Error tokens are recovered internally and never reach the sink.
func WithTokenSink(w io.Writer) Option {
	return func(l *Lexer) {
		l.tokens = w
	}
}

// Lexer tokenizes a P‑‑ source file against the main and keyword DFAs. A
// Lexer is created once per compilation and produces one token per
// NextToken call.
type Lexer struct {
	r      *bufio.Reader
	main   *mainDFA
	kw     *keywordDFA
	buf    *buffer.Lexeme
	diag   io.Writer
	tokens io.Writer

	line, col            int
	lastWasNumberOrIdent bool
	atEOF                bool
	errors               []LexerError

	trace io.Writer
}

// New creates a Lexer reading from src and writing lexical diagnostics to
// diag as they occur, building both automata once.
func New(src io.Reader, diag io.Writer, opts ...Option) *Lexer {
	l := &Lexer{
		r:    bufio.NewReader(src),
		main: mainDFAInstance(),
		kw:   keywordDFAInstance(),
		buf:  buffer.New(),
		diag: diag,
		line: 1,
		col:  1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var (
	sharedMainDFA    *mainDFA
	sharedKeywordDFA *keywordDFA
)

func mainDFAInstance() *mainDFA {
	if sharedMainDFA == nil {
		sharedMainDFA = buildMainDFA()
	}
	return sharedMainDFA
}

func keywordDFAInstance() *keywordDFA {
	if sharedKeywordDFA == nil {
		sharedKeywordDFA = buildKeywordDFA()
	}
	return sharedKeywordDFA
}

// Errors returns every lexical diagnostic recorded so far.
func (l *Lexer) Errors() []LexerError {
	return l.errors
}

// AtEOF reports whether the source reader has been exhausted.
func (l *Lexer) AtEOF() bool {
	return l.atEOF
}

// NextToken advances the lexer to the next non-error token, recovering
// from any lexical errors along the way by emitting a diagnostic and
// retrying — callers never observe TokenClass ERROR from a successful
// return.
func (l *Lexer) NextToken() Token {
	for {
		tok, isError := l.scanOne()
		if !isError {
			l.dump(tok)
			return tok
		}
	}
}

// dump writes an accepted token to the token sink.
func (l *Lexer) dump(tok Token) {
	if l.tokens == nil {
		return
	}
	if tok.Class == LAMBDA {
		fmt.Fprintln(l.tokens, "EOF")
		return
	}
	fmt.Fprintf(l.tokens, "%s, %s\n", tok.Lexeme, tok.Class)
}

// scanOne runs the main DFA once to produce a single classified token,
// reporting whether that token is itself a lexical error.
func (l *Lexer) scanOne() (Token, bool) {
	state := 0
	l.buf.Reset()
	startPos := Position{Line: l.line, Column: l.col}

	var c byte
	for !l.main.final[state] {
		var eof bool
		c, eof = l.readChar()
		if eof {
			return l.onEOF(state, startPos)
		}

		prevState := state
		newState := l.nextState(state, c)
		if l.shouldAppend(newState) {
			l.buf.AppendChar(c)
		}
		state = newState
		if state == 0 {
			startPos = Position{Line: l.line, Column: l.col}
		}
		l.tracef("state %d -> %d on %q\n", prevState, state, c)
	}

	return l.finish(state, c, startPos)
}

// readChar reads the next byte, updating line/column bookkeeping exactly
// as the original: newline resets the column and advances the line; tab
// advances the column by 4; everything else advances it by 1.
func (l *Lexer) readChar() (byte, bool) {
	c, err := l.r.ReadByte()
	if err != nil {
		return 0, true
	}
	if c == '\n' {
		l.line++
		l.col = 1
	} else if c == '\t' {
		l.col += 4
	} else {
		l.col++
	}
	return c, false
}

// nextState applies the transition table, then rewrites the OP_ADD state
// to OP_UN when the previous token was not a number or identifier. Bytes
// outside the 7-bit table take the state's "other" transition.
func (l *Lexer) nextState(state int, c byte) int {
	idx := int(c)
	if idx >= numChars {
		idx = '@'
	}
	next := l.main.transitions[state][idx]
	if next == -1 {
		next = 3 // invalid-character error state
	}
	if int(next) == opAddState && !l.lastWasNumberOrIdent {
		next = opUnState
	}
	return int(next)
}

// shouldAppend reports whether the character that produced newState
// should be recorded in the lexeme buffer: never for whitespace/comment
// handling (state 0, the comment state), and never for the character that
// triggers a retreat — except the malformed-real error state, whose
// trailing character is shown in its diagnostic.
func (l *Lexer) shouldAppend(newState int) bool {
	if newState == 0 || newState == commentState {
		return false
	}
	if !l.main.final[newState] {
		return true
	}
	desc := l.main.classOf[newState]
	return !desc.Retreat || newState == 7
}

// onEOF mirrors the original's EOF handling: EOF in the start state is
// the clean end of input; EOF inside a comment is an error; EOF anywhere
// else is treated as the "other" transition target for that state.
func (l *Lexer) onEOF(state int, startPos Position) (Token, bool) {
	l.atEOF = true
	if state == 0 {
		return Token{Class: LAMBDA, Lexeme: "", Pos: startPos}, false
	}
	if state == commentState {
		return l.reportError(startPos, "Error: Unexpected end of file")
	}

	next := l.main.transitions[state]['@']
	if next == -1 {
		next = 3
	}
	desc := l.main.classOf[next]
	class := desc.Class
	if class == ERROR {
		if desc.Retreat {
			// The retreat at end of input is a seek-to-end, so the current
			// column already names the character beyond the lexeme.
			return l.reportError(Position{Line: l.line, Column: l.col}, l.main.message[next])
		}
		return l.reportError(startPos, l.main.message[next])
	}
	if class == ID {
		class = l.kw.classify(l.buf.String())
	}
	l.lastWasNumberOrIdent = class == ID || class == N_INTEGER || class == N_REAL
	return Token{Class: class, Lexeme: l.buf.String(), Pos: startPos}, false
}

// finish classifies the just-reached final state, applying retreat and
// the keyword walk.
func (l *Lexer) finish(state int, lastChar byte, startPos Position) (Token, bool) {
	desc := l.main.classOf[state]
	if desc.Retreat {
		l.retreat(lastChar)
	}

	class := desc.Class
	if class == ERROR {
		if desc.Retreat {
			// Retreat-accept diagnostics point one past the lexeme: the
			// retreat-adjusted column plus the boundary character itself.
			return l.reportError(Position{Line: l.line, Column: l.col + 1}, l.main.message[state])
		}
		return l.reportError(startPos, l.main.message[state])
	}
	if class == ID {
		class = l.kw.classify(l.buf.String())
	}

	l.lastWasNumberOrIdent = class == ID || class == N_INTEGER || class == N_REAL
	return Token{Class: class, Lexeme: l.buf.String(), Pos: startPos}, false
}

// retreat undoes the most recent character read: the source reader steps
// back one byte and the line/column bookkeeping is restored to match. It
// never retreats twice in a row, since the state reached after a retreat
// is never itself retreatable.
func (l *Lexer) retreat(last byte) {
	if err := l.r.UnreadByte(); err != nil {
		return
	}
	switch last {
	case '\n':
		l.line--
	case '\t':
		l.col -= 4
	default:
		l.col--
	}
}

func (l *Lexer) reportError(pos Position, message string) (Token, bool) {
	lexErr := LexerError{Message: message, Pos: pos, Lexeme: l.buf.String()}
	l.errors = append(l.errors, lexErr)
	if l.diag != nil {
		fmt.Fprintf(l.diag, "Lexer error on line %d col %d ('%s'): %s\n", pos.Line, pos.Column, lexErr.Lexeme, message)
	}
	return Token{Class: ERROR, Lexeme: lexErr.Lexeme, Pos: pos}, true
}

func (l *Lexer) tracef(format string, args ...any) {
	if l.trace == nil {
		return
	}
	fmt.Fprintf(l.trace, format, args...)
}
