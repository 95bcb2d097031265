package parser

import "github.com/pmm-lang/pmmc/internal/lexer"

// recovery reports, after a terminal match or a sub-rule call, whether the
// enclosing rule must unwind immediately — the Go replacement for the
// original's macro-embedded early return.
type recovery int

const (
	recoverContinue recovery = iota
	recoverUnwind
)

func classInts(classes []lexer.TokenClass) []int {
	ints := make([]int, len(classes))
	for i, c := range classes {
		ints[i] = int(c)
	}
	return ints
}

// enterRule marks a descent one level deeper into the call chain.
func (p *Parser) enterRule() {
	p.sync.IncrementAll()
}

// exitRule marks the ascent back out of the current rule.
func (p *Parser) exitRule() {
	p.sync.DecrementAll()
}

// expect matches a single required terminal, or falls into panic mode with
// followers as the rule-local synchronization set.
func (p *Parser) expect(class lexer.TokenClass, followers ...lexer.TokenClass) recovery {
	if p.cur.Class == class {
		p.advance()
		return recoverContinue
	}
	return p.panicMode(class, followers...)
}

// panicMode implements PANIC-MODE: push followers, report the diagnostic
// (which itself consumes tokens until one is a live synchronization
// point), then decide whether the current rule or an ancestor owns that
// synchronization point.
func (p *Parser) panicMode(expected lexer.Expectation, followers ...lexer.TokenClass) recovery {
	ids := classInts(followers)
	p.sync.Add(ids...)

	p.reportAndResync(expected)

	level := p.sync.At(int(p.cur.Class)).Peek()
	p.sync.Remove(ids...)

	if level != 0 {
		p.exitRule()
		return recoverUnwind
	}
	p.panic = false
	return recoverContinue
}

// nextRule implements NEXT-RULE: push followers, call rule, then decide
// whether panic mode is still active and owned by an ancestor rather than
// the caller.
func (p *Parser) nextRule(rule func(), followers ...lexer.TokenClass) recovery {
	ids := classInts(followers)
	p.sync.Add(ids...)

	rule()

	unwind := p.panic && p.sync.At(int(p.cur.Class)).Peek() > 0
	p.sync.Remove(ids...)

	if unwind {
		p.exitRule()
		return recoverUnwind
	}
	p.panic = false
	return recoverContinue
}

// reportAndResync emits the diagnostic for expected, then discards tokens
// until the current one is a live synchronization point for some rule on
// the call chain.
func (p *Parser) reportAndResync(expected lexer.Expectation) {
	p.panic = true
	p.diag.ReportUnexpected(p.cur.Pos, expected, p.cur)
	for p.sync.At(int(p.cur.Class)).Peek() == -1 {
		p.advance()
	}
}
