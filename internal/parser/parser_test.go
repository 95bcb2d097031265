package parser

import (
	"strings"
	"testing"

	"github.com/pmm-lang/pmmc/internal/diag"
	"github.com/pmm-lang/pmmc/internal/lexer"
)

func run(t *testing.T, src string) (errCount int, diagOut string) {
	t.Helper()
	var diagBuf strings.Builder
	lx := lexer.New(strings.NewReader(src), &diagBuf)
	sink := diag.NewSink(&diagBuf)
	p := New(lx, sink)
	p.Compile()
	return len(lx.Errors()) + p.ErrorCount(), diagBuf.String()
}

func TestCompileCleanProgram(t *testing.T) {
	// S1
	errCount, out := run(t, "program p;\nbegin\nend.")
	if errCount != 0 {
		t.Fatalf("errCount = %d, want 0 (%q)", errCount, out)
	}
}

func TestMissingSemicolonRecoversToOneError(t *testing.T) {
	// S4: a single missing semicolon is reported once and the rest of the
	// program still compiles with no further diagnostics.
	src := "program p;\nvar x : integer\nbegin\nend."
	errCount, out := run(t, src)
	if errCount != 1 {
		t.Fatalf("errCount = %d, want 1 (%q)", errCount, out)
	}
	if !strings.Contains(out, "expected ;") || !strings.Contains(out, "found begin") {
		t.Fatalf("diagnostic mismatch: %q", out)
	}
}

func TestTrailingTokensAfterProgram(t *testing.T) {
	// The compile sequence must report trailing tokens after the dot.
	src := "program p;\nbegin\nend. garbage"
	errCount, out := run(t, src)
	if errCount != 1 {
		t.Fatalf("errCount = %d, want 1 (%q)", errCount, out)
	}
	if !strings.Contains(out, "end of input") {
		t.Fatalf("diagnostic missing expected-EOF message: %q", out)
	}
}

func TestMultipleIndependentErrorsAreAllReported(t *testing.T) {
	// Two unrelated syntax errors in two different var declarations must
	// both surface — panic mode must not swallow the second.
	src := "program p;\nvar x integer;\nvar y : integer\nbegin\nend."
	errCount, out := run(t, src)
	if errCount != 2 {
		t.Fatalf("errCount = %d, want 2 (%q)", errCount, out)
	}
}

func TestConstRequiresLiteralEquals(t *testing.T) {
	// The dc_c rule compares the lexeme "=" directly; a relational
	// operator that is not literally "=" must still be rejected even
	// though it shares the RELATION class.
	src := "program p;\nconst x <> 1;\nbegin\nend."
	errCount, out := run(t, src)
	if errCount != 1 {
		t.Fatalf("errCount = %d, want 1 (%q)", errCount, out)
	}
	if !strings.Contains(out, "expected =") {
		t.Fatalf("diagnostic missing literal-= expectation: %q", out)
	}
}

func TestWhileRequiresParentheses(t *testing.T) {
	src := "program p;\nbegin\nwhile x < 1 do x := x\nend."
	errCount, out := run(t, src)
	if errCount == 0 {
		t.Fatalf("expected at least one error for an unparenthesized while condition, got none (%q)", out)
	}
}

func TestForLoopBoundsAcceptFullExpressions(t *testing.T) {
	// FOR bounds are `expressao`, not just a bare numero literal: an
	// identifier or a sub-expression is valid start/stop syntax.
	src := "program p;\nvar i, n : integer;\nbegin\nfor i := 1 to n do\n i := i;\nend."
	errCount, out := run(t, src)
	if errCount != 0 {
		t.Fatalf("errCount = %d, want 0 (%q)", errCount, out)
	}
}

func TestProcedureCallArguments(t *testing.T) {
	// mais_ident uses a literal ';' separator, unlike variaveis's ',' — the
	// argument list and the parameter/variable list are not interchangeable.
	src := "program p;\nvar x, y : integer;\nprocedure q(a, b : integer);\nbegin\nend;\nbegin\nq(x; y);\nend."
	errCount, out := run(t, src)
	if errCount != 0 {
		t.Fatalf("errCount = %d, want 0 (%q)", errCount, out)
	}
}

func TestReadWriteAcceptVariableLists(t *testing.T) {
	// cmd's read/write arms parse variaveis (a comma-separated identifier
	// list), not a single bare identifier.
	src := "program p;\nvar a, b, x, y, z : integer;\nbegin\nread(a, b);\nwrite(x, y, z);\nend."
	errCount, out := run(t, src)
	if errCount != 0 {
		t.Fatalf("errCount = %d, want 0 (%q)", errCount, out)
	}
}

func TestUnexpectedCommandStarter(t *testing.T) {
	// cmd() is invoked unconditionally as a while-loop body (unlike
	// comandos, which silently epsilons out on an unrecognized leading
	// token), so this is where an unrecognized command-starter actually
	// reaches the COMMAND pseudo-expectation.
	src := "program p;\nvar x : integer;\nbegin\nwhile (x < 1) do : ;\nend."
	errCount, out := run(t, src)
	if errCount == 0 {
		t.Fatalf("expected a command-expected diagnostic, got none (%q)", out)
	}
	if !strings.Contains(out, "command") {
		t.Fatalf("diagnostic missing command pseudo-expectation: %q", out)
	}
}

func TestMismatchedTypeSpecifier(t *testing.T) {
	src := "program p;\nvar x : boolean;\nbegin\nend."
	errCount, out := run(t, src)
	if errCount == 0 {
		t.Fatalf("expected a type-specifier diagnostic, got none (%q)", out)
	}
	if !strings.Contains(out, "type-specifier") {
		t.Fatalf("diagnostic missing type-specifier pseudo-expectation: %q", out)
	}
}
