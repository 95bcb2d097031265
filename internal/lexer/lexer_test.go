package lexer

import (
	"strings"
	"testing"
)

func allTokens(t *testing.T, src string) []Token {
	t.Helper()
	var diag strings.Builder
	l := New(strings.NewReader(src), &diag)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Class == LAMBDA {
			break
		}
	}
	return toks
}

func classes(toks []Token) []TokenClass {
	out := make([]TokenClass, len(toks))
	for i, tok := range toks {
		out[i] = tok.Class
	}
	return out
}

func TestMinimalProgram(t *testing.T) {
	// S1
	src := "program p;\nbegin\nend."
	toks := allTokens(t, src)
	want := []TokenClass{PROGRAM, ID, SEMICOLON, BEGIN, END, DOT, LAMBDA}
	got := classes(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d class = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestUnaryBinaryDisambiguation(t *testing.T) {
	// S2
	toks := allTokens(t, "-1 + -x * 2 - y")
	want := []TokenClass{OP_UN, N_INTEGER, OP_ADD, OP_UN, ID, OP_MULT, N_INTEGER, OP_ADD, ID, LAMBDA}
	got := classes(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d class = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestRetreatOnDeclareType(t *testing.T) {
	// S3
	toks := allTokens(t, "a : integer;")
	want := []TokenClass{ID, DECLARE_TYPE, INTEGER, SEMICOLON, LAMBDA}
	got := classes(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d class = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMalformedReal(t *testing.T) {
	// S5
	var diag strings.Builder
	l := New(strings.NewReader("1. x"), &diag)
	tok := l.NextToken() // recovers past the malformed real internally
	if tok.Class != ID {
		t.Fatalf("first real token class = %s, want ID", tok.Class)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("error count = %d, want 1", len(l.Errors()))
	}
	if !strings.Contains(diag.String(), "did you mean to type a real number?") {
		t.Fatalf("diagnostic missing expected message: %q", diag.String())
	}
}

func TestMalformedRealAtEndOfFile(t *testing.T) {
	// A malformed real reaching EOF (rather than a following character)
	// must still surface as a lexical error, not a silently-accepted ERROR
	// token: the EOF transition reuses the same final state as a trailing
	// character would, so it must be checked for an error class too.
	var diag strings.Builder
	l := New(strings.NewReader("1."), &diag)
	tok := l.NextToken()
	if tok.Class != LAMBDA {
		t.Fatalf("token class = %s, want LAMBDA", tok.Class)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("error count = %d, want 1", len(l.Errors()))
	}
	if !strings.Contains(diag.String(), "did you mean to type a real number?") {
		t.Fatalf("diagnostic missing expected message: %q", diag.String())
	}
}

func TestUnterminatedComment(t *testing.T) {
	// S6
	var diag strings.Builder
	l := New(strings.NewReader("{ hello"), &diag)
	tok := l.NextToken()
	if tok.Class != LAMBDA {
		t.Fatalf("token class = %s, want LAMBDA", tok.Class)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("error count = %d, want 1", len(l.Errors()))
	}
	if !strings.Contains(diag.String(), "Unexpected end of file") {
		t.Fatalf("diagnostic missing expected message: %q", diag.String())
	}
}

func TestKeywordPrimacy(t *testing.T) {
	keywords := map[string]TokenClass{
		"begin": BEGIN, "const": CONST, "do": DO, "end": END, "else": ELSE,
		"if": IF, "integer": INTEGER, "for": FOR, "program": PROGRAM,
		"procedure": PROCEDURE, "real": REAL, "read": READ, "then": THEN,
		"to": TO, "var": VAR, "write": WRITE, "while": WHILE,
	}
	for word, class := range keywords {
		toks := allTokens(t, word)
		if toks[0].Class != class {
			t.Errorf("%q classified as %s, want %s", word, toks[0].Class, class)
		}

		extended := allTokens(t, word+"x")
		if toks := extended; toks[0].Class != ID {
			t.Errorf("%q classified as %s, want ID", word+"x", toks[0].Class)
		}
	}
}

func TestKeywordCaseSensitivity(t *testing.T) {
	toks := allTokens(t, "BEGIN")
	if toks[0].Class != ID {
		t.Fatalf("uppercase keyword classified as %s, want ID", toks[0].Class)
	}
}

func TestWhitespaceInsensitiveRoundTrip(t *testing.T) {
	spaced := "program   p ;\n\tbegin\n\nend   ."
	collapsed := "program p ; begin end ."
	a := classes(allTokens(t, spaced))
	b := classes(allTokens(t, collapsed))
	if len(a) != len(b) {
		t.Fatalf("class count mismatch: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("class %d mismatch: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	toks := allTokens(t, "a {this is a comment} b")
	want := []TokenClass{ID, ID, LAMBDA}
	got := classes(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
}

func TestRelationalOperators(t *testing.T) {
	tests := []struct {
		src   string
		class TokenClass
	}{
		{"=", RELATION},
		{"<>", RELATION},
		{"<=", RELATION},
		{">=", RELATION},
		{"<", RELATION},
		{">", RELATION},
	}
	for _, tt := range tests {
		toks := allTokens(t, tt.src)
		if toks[0].Class != tt.class || toks[0].Lexeme != tt.src {
			t.Errorf("%q -> class %s lexeme %q, want class %s", tt.src, toks[0].Class, toks[0].Lexeme, tt.class)
		}
	}
}

func TestMalformedRealDiagnosticFormat(t *testing.T) {
	// The diagnostic for a retreat-accept error names the column one past
	// the lexeme, not the token's first character: for "1. x" the lexeme is
	// "1. " (cols 1-3) and the reported column is 4.
	var diag strings.Builder
	l := New(strings.NewReader("1. x"), &diag)
	l.NextToken()
	want := "Lexer error on line 1 col 4 ('1. '): Error: did you mean to type a real number?\n"
	if got := diag.String(); got != want {
		t.Fatalf("diagnostic = %q, want %q", got, want)
	}
}

func TestHighByteInsideCommentStaysInComment(t *testing.T) {
	// Bytes outside 7-bit ASCII take the "other" transition, so inside a
	// comment they are swallowed like any other comment byte.
	var diag strings.Builder
	l := New(strings.NewReader("a {caf\xc3\xa9} b"), &diag)
	toks := []Token{l.NextToken(), l.NextToken(), l.NextToken()}
	got := classes(toks)
	want := []TokenClass{ID, ID, LAMBDA}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d class = %s, want %s (%v)", i, got[i], want[i], got)
		}
	}
	if len(l.Errors()) != 0 {
		t.Fatalf("error count = %d, want 0", len(l.Errors()))
	}
}

func TestInvalidCharacter(t *testing.T) {
	var diag strings.Builder
	l := New(strings.NewReader("@"), &diag)
	tok := l.NextToken()
	if tok.Class != LAMBDA {
		t.Fatalf("token class = %s, want LAMBDA", tok.Class)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("error count = %d, want 1", len(l.Errors()))
	}
	if !strings.Contains(diag.String(), "Invalid character") {
		t.Fatalf("diagnostic missing expected message: %q", diag.String())
	}
}
