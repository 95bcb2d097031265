package parser

import "github.com/pmm-lang/pmmc/internal/lexer"

// comandos ::= cmd ; comandos | λ
func (p *Parser) comandos() {
	p.enterRule()

	switch p.cur.Class {
	case lexer.READ, lexer.WRITE, lexer.WHILE, lexer.IF, lexer.FOR, lexer.ID, lexer.BEGIN:
		if p.nextRule(p.cmd, lexer.SEMICOLON) == recoverUnwind {
			return
		}
		if p.expect(lexer.SEMICOLON,
			lexer.READ, lexer.WRITE, lexer.WHILE, lexer.IF, lexer.FOR, lexer.ID, lexer.BEGIN, lexer.END,
		) == recoverUnwind {
			return
		}
		if p.nextRule(p.comandos, lexer.END) == recoverUnwind {
			return
		}
	}

	p.exitRule()
}

// cmd dispatches on its leading keyword/identifier to one of the seven
// command forms described in the grammar.
func (p *Parser) cmd() {
	p.enterRule()

	switch p.cur.Class {
	case lexer.READ:
		p.advance()
		if p.expect(lexer.OPEN_PAR, lexer.ID) == recoverUnwind {
			return
		}
		if p.nextRule(p.variaveis, lexer.CLOSE_PAR) == recoverUnwind {
			return
		}
		if p.expect(lexer.CLOSE_PAR, lexer.SEMICOLON) == recoverUnwind {
			return
		}

	case lexer.WRITE:
		p.advance()
		if p.expect(lexer.OPEN_PAR, lexer.ID) == recoverUnwind {
			return
		}
		if p.nextRule(p.variaveis, lexer.CLOSE_PAR) == recoverUnwind {
			return
		}
		if p.expect(lexer.CLOSE_PAR, lexer.SEMICOLON) == recoverUnwind {
			return
		}

	case lexer.WHILE:
		p.advance()
		if p.expect(lexer.OPEN_PAR, lexer.OP_UN, lexer.ID, lexer.OPEN_PAR, lexer.N_INTEGER, lexer.N_REAL) == recoverUnwind {
			return
		}
		if p.nextRule(p.condicao, lexer.CLOSE_PAR) == recoverUnwind {
			return
		}
		if p.expect(lexer.CLOSE_PAR, lexer.DO) == recoverUnwind {
			return
		}
		if p.expect(lexer.DO, lexer.READ, lexer.WRITE, lexer.WHILE, lexer.IF, lexer.FOR, lexer.ID, lexer.BEGIN) == recoverUnwind {
			return
		}
		if p.nextRule(p.cmd, lexer.SEMICOLON) == recoverUnwind {
			return
		}

	case lexer.IF:
		p.advance()
		if p.nextRule(p.condicao, lexer.THEN) == recoverUnwind {
			return
		}
		if p.expect(lexer.THEN, lexer.READ, lexer.WRITE, lexer.WHILE, lexer.IF, lexer.FOR, lexer.ID, lexer.BEGIN) == recoverUnwind {
			return
		}
		if p.nextRule(p.cmd, lexer.ELSE, lexer.SEMICOLON) == recoverUnwind {
			return
		}
		if p.nextRule(p.pfalsa, lexer.SEMICOLON) == recoverUnwind {
			return
		}

	case lexer.FOR:
		p.advance()
		if p.expect(lexer.ID, lexer.ASSIGN) == recoverUnwind {
			return
		}
		if p.expect(lexer.ASSIGN, lexer.OP_UN, lexer.ID, lexer.OPEN_PAR, lexer.N_INTEGER, lexer.N_REAL) == recoverUnwind {
			return
		}
		if p.nextRule(p.expressao, lexer.TO) == recoverUnwind {
			return
		}
		if p.expect(lexer.TO, lexer.OP_UN, lexer.ID, lexer.OPEN_PAR, lexer.N_INTEGER, lexer.N_REAL) == recoverUnwind {
			return
		}
		if p.nextRule(p.expressao, lexer.DO) == recoverUnwind {
			return
		}
		if p.expect(lexer.DO, lexer.READ, lexer.WRITE, lexer.WHILE, lexer.IF, lexer.FOR, lexer.ID, lexer.BEGIN) == recoverUnwind {
			return
		}
		if p.nextRule(p.cmd, lexer.SEMICOLON) == recoverUnwind {
			return
		}

	case lexer.ID:
		p.advance()
		if p.nextRule(p.posIdent, lexer.SEMICOLON) == recoverUnwind {
			return
		}

	case lexer.BEGIN:
		p.advance()
		if p.nextRule(p.comandos, lexer.END) == recoverUnwind {
			return
		}
		if p.expect(lexer.END, lexer.SEMICOLON) == recoverUnwind {
			return
		}

	default:
		if p.panicMode(lexer.COMMAND, lexer.SEMICOLON) == recoverUnwind {
			return
		}
	}

	p.exitRule()
}

// posIdent ::= lista_arg | := expressao
func (p *Parser) posIdent() {
	p.enterRule()

	if p.cur.Class == lexer.OPEN_PAR {
		if p.nextRule(p.listaArg, lexer.SEMICOLON) == recoverUnwind {
			return
		}
		p.exitRule()
		return
	}

	if p.cur.Class == lexer.ASSIGN {
		p.advance()
	} else if p.panicMode(lexer.ASSIGN, lexer.OP_UN, lexer.ID, lexer.OPEN_PAR, lexer.N_INTEGER, lexer.N_REAL) == recoverUnwind {
		return
	}

	if p.nextRule(p.expressao,
		lexer.SEMICOLON, lexer.RELATION, lexer.CLOSE_PAR, lexer.THEN, lexer.TO, lexer.DO,
	) == recoverUnwind {
		return
	}

	p.exitRule()
}

// pfalsa ::= else cmd | λ
func (p *Parser) pfalsa() {
	p.enterRule()

	if p.cur.Class != lexer.ELSE {
		p.exitRule()
		return
	}
	p.advance()

	if p.nextRule(p.cmd, lexer.SEMICOLON) == recoverUnwind {
		return
	}

	p.exitRule()
}

// listaArg ::= ( argumentos )
func (p *Parser) listaArg() {
	p.enterRule()

	if p.expect(lexer.OPEN_PAR, lexer.ID) == recoverUnwind {
		return
	}
	if p.nextRule(p.argumentos, lexer.CLOSE_PAR) == recoverUnwind {
		return
	}
	if p.expect(lexer.CLOSE_PAR, lexer.SEMICOLON) == recoverUnwind {
		return
	}

	p.exitRule()
}

// argumentos ::= ident mais_ident
func (p *Parser) argumentos() {
	p.enterRule()

	if p.expect(lexer.ID, lexer.SEMICOLON, lexer.CLOSE_PAR) == recoverUnwind {
		return
	}
	if p.nextRule(p.maisIdent, lexer.CLOSE_PAR) == recoverUnwind {
		return
	}

	p.exitRule()
}

// maisIdent ::= ; argumentos | λ
func (p *Parser) maisIdent() {
	p.enterRule()

	if p.cur.Class != lexer.SEMICOLON {
		p.exitRule()
		return
	}
	p.advance()

	if p.nextRule(p.argumentos, lexer.CLOSE_PAR) == recoverUnwind {
		return
	}

	p.exitRule()
}
