package parser

import "github.com/pmm-lang/pmmc/internal/lexer"

// condicao ::= expressao relacao expressao
func (p *Parser) condicao() {
	p.enterRule()

	if p.nextRule(p.expressao, lexer.RELATION) == recoverUnwind {
		return
	}
	if p.nextRule(p.relacao, lexer.OPEN_PAR, lexer.ID, lexer.N_INTEGER, lexer.N_REAL, lexer.OP_UN) == recoverUnwind {
		return
	}
	if p.nextRule(p.expressao,
		lexer.SEMICOLON, lexer.RELATION, lexer.CLOSE_PAR, lexer.THEN, lexer.TO, lexer.DO,
	) == recoverUnwind {
		return
	}

	p.exitRule()
}

// relacao matches any of the six relational operators; they all share the
// RELATION class, so a single expect suffices.
func (p *Parser) relacao() {
	p.enterRule()

	if p.expect(lexer.RELATION, lexer.OPEN_PAR, lexer.ID, lexer.N_INTEGER, lexer.N_REAL, lexer.OP_UN) == recoverUnwind {
		return
	}

	p.exitRule()
}

// expressao ::= termo outros_termos
func (p *Parser) expressao() {
	p.enterRule()

	if p.nextRule(p.termo, lexer.OP_UN) == recoverUnwind {
		return
	}
	if p.nextRule(p.outrosTermos,
		lexer.SEMICOLON, lexer.RELATION, lexer.CLOSE_PAR, lexer.THEN, lexer.TO, lexer.DO,
	) == recoverUnwind {
		return
	}

	p.exitRule()
}

// outrosTermos ::= op_ad termo outros_termos | λ
func (p *Parser) outrosTermos() {
	p.enterRule()

	if p.cur.Class != lexer.OP_ADD {
		p.exitRule()
		return
	}

	if p.nextRule(p.opAd, lexer.OPEN_PAR, lexer.ID, lexer.N_INTEGER, lexer.N_REAL, lexer.OP_UN) == recoverUnwind {
		return
	}
	if p.nextRule(p.termo, lexer.OP_UN) == recoverUnwind {
		return
	}
	if p.nextRule(p.outrosTermos,
		lexer.SEMICOLON, lexer.RELATION, lexer.CLOSE_PAR, lexer.THEN, lexer.TO, lexer.DO,
	) == recoverUnwind {
		return
	}

	p.exitRule()
}

// opAd matches the binary + or - class, already disambiguated from unary
// OP_UN by the lexer.
func (p *Parser) opAd() {
	p.enterRule()

	if p.expect(lexer.OP_ADD, lexer.OPEN_PAR, lexer.ID, lexer.N_INTEGER, lexer.N_REAL, lexer.OP_UN) == recoverUnwind {
		return
	}

	p.exitRule()
}

// termo ::= op_un fator mais_fatores
func (p *Parser) termo() {
	p.enterRule()

	if p.nextRule(p.opUn, lexer.OPEN_PAR, lexer.ID, lexer.N_INTEGER, lexer.N_REAL) == recoverUnwind {
		return
	}
	if p.nextRule(p.fator, lexer.OP_MULT) == recoverUnwind {
		return
	}
	if p.nextRule(p.maisFatores, lexer.OP_UN) == recoverUnwind {
		return
	}

	p.exitRule()
}

// opUn ::= OP_UN | λ
func (p *Parser) opUn() {
	p.enterRule()

	if p.cur.Class == lexer.OP_UN {
		p.advance()
	}

	p.exitRule()
}

// maisFatores ::= op_mul fator mais_fatores | λ
func (p *Parser) maisFatores() {
	p.enterRule()

	if p.cur.Class != lexer.OP_MULT {
		p.exitRule()
		return
	}

	if p.nextRule(p.opMul, lexer.OPEN_PAR, lexer.ID, lexer.N_INTEGER, lexer.N_REAL) == recoverUnwind {
		return
	}
	if p.nextRule(p.fator, lexer.OP_MULT) == recoverUnwind {
		return
	}
	if p.nextRule(p.maisFatores, lexer.OP_UN) == recoverUnwind {
		return
	}

	p.exitRule()
}

// opMul matches * or /, both carried by the OP_MULT class.
func (p *Parser) opMul() {
	p.enterRule()

	if p.expect(lexer.OP_MULT, lexer.OPEN_PAR, lexer.ID, lexer.N_INTEGER, lexer.N_REAL) == recoverUnwind {
		return
	}

	p.exitRule()
}

// fator ::= ident | numero | ( expressao )
func (p *Parser) fator() {
	p.enterRule()

	switch p.cur.Class {
	case lexer.ID:
		p.advance()
	case lexer.OPEN_PAR:
		p.advance()
		if p.nextRule(p.expressao, lexer.CLOSE_PAR) == recoverUnwind {
			return
		}
		if p.expect(lexer.CLOSE_PAR, lexer.OP_MULT) == recoverUnwind {
			return
		}
	default:
		if p.nextRule(p.numero, lexer.SEMICOLON, lexer.OP_MULT) == recoverUnwind {
			return
		}
	}

	p.exitRule()
}

// numero ::= N_INTEGER | N_REAL
func (p *Parser) numero() {
	p.enterRule()

	if p.cur.Class == lexer.N_INTEGER || p.cur.Class == lexer.N_REAL {
		p.advance()
	} else if p.panicMode(lexer.NUMBER, lexer.SEMICOLON, lexer.OP_MULT) == recoverUnwind {
		return
	}

	p.exitRule()
}
