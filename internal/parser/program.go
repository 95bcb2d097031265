package parser

import "github.com/pmm-lang/pmmc/internal/lexer"

// programa ::= program ident ; corpo .
func (p *Parser) programa() {
	p.enterRule()

	if p.expect(lexer.PROGRAM, lexer.ID) == recoverUnwind {
		return
	}
	if p.expect(lexer.ID, lexer.SEMICOLON) == recoverUnwind {
		return
	}
	if p.expect(lexer.SEMICOLON, lexer.CONST, lexer.VAR, lexer.PROCEDURE, lexer.BEGIN) == recoverUnwind {
		return
	}
	if p.nextRule(p.corpo, lexer.DOT) == recoverUnwind {
		return
	}
	if p.expect(lexer.DOT, lexer.LAMBDA) == recoverUnwind {
		return
	}

	p.exitRule()
}

// corpo ::= dc begin comandos end
func (p *Parser) corpo() {
	p.enterRule()

	if p.nextRule(p.dc, lexer.BEGIN) == recoverUnwind {
		return
	}
	if p.expect(lexer.BEGIN, lexer.READ, lexer.WRITE, lexer.WHILE, lexer.IF, lexer.FOR, lexer.ID, lexer.BEGIN, lexer.END) == recoverUnwind {
		return
	}
	if p.nextRule(p.comandos, lexer.END) == recoverUnwind {
		return
	}
	if p.expect(lexer.END, lexer.DOT) == recoverUnwind {
		return
	}

	p.exitRule()
}

// dc ::= dc_c dc_v dc_p
func (p *Parser) dc() {
	p.enterRule()

	if p.nextRule(p.dcC, lexer.BEGIN, lexer.VAR, lexer.PROCEDURE) == recoverUnwind {
		return
	}
	if p.nextRule(p.dcV, lexer.BEGIN, lexer.PROCEDURE) == recoverUnwind {
		return
	}
	if p.nextRule(p.dcP, lexer.BEGIN) == recoverUnwind {
		return
	}

	p.exitRule()
}

// dcC ::= const ident = numero ; dc_c | λ
func (p *Parser) dcC() {
	p.enterRule()

	if p.cur.Class != lexer.CONST {
		p.exitRule()
		return
	}
	p.advance()

	if p.expect(lexer.ID, lexer.ASSIGN) == recoverUnwind {
		return
	}

	// The RELATION class covers six operators; this rule demands the
	// literal byte '=', so the lexeme itself is compared.
	if p.cur.Lexeme == "=" {
		p.advance()
	} else if p.panicMode(lexer.EQUALS, lexer.N_INTEGER, lexer.N_REAL) == recoverUnwind {
		return
	}

	if p.nextRule(p.numero, lexer.SEMICOLON) == recoverUnwind {
		return
	}
	if p.expect(lexer.SEMICOLON, lexer.CONST, lexer.BEGIN, lexer.VAR, lexer.PROCEDURE) == recoverUnwind {
		return
	}
	if p.nextRule(p.dcC, lexer.BEGIN, lexer.VAR, lexer.PROCEDURE) == recoverUnwind {
		return
	}

	p.exitRule()
}

// dcV ::= var variaveis : tipo_var ; dc_v | λ
func (p *Parser) dcV() {
	p.enterRule()

	if p.cur.Class != lexer.VAR {
		p.exitRule()
		return
	}
	p.advance()

	if p.nextRule(p.variaveis, lexer.DECLARE_TYPE) == recoverUnwind {
		return
	}
	if p.expect(lexer.DECLARE_TYPE, lexer.REAL, lexer.INTEGER) == recoverUnwind {
		return
	}
	if p.nextRule(p.tipoVar, lexer.SEMICOLON) == recoverUnwind {
		return
	}
	if p.expect(lexer.SEMICOLON, lexer.VAR, lexer.BEGIN, lexer.PROCEDURE) == recoverUnwind {
		return
	}
	if p.nextRule(p.dcV, lexer.BEGIN, lexer.PROCEDURE) == recoverUnwind {
		return
	}

	p.exitRule()
}

// tipoVar ::= real | integer
func (p *Parser) tipoVar() {
	p.enterRule()

	if p.cur.Class == lexer.REAL || p.cur.Class == lexer.INTEGER {
		p.advance()
	} else if p.panicMode(lexer.TYPES, lexer.SEMICOLON, lexer.CLOSE_PAR) == recoverUnwind {
		return
	}

	p.exitRule()
}

// variaveis ::= ident mais_var
func (p *Parser) variaveis() {
	p.enterRule()

	if p.expect(lexer.ID, lexer.COLON, lexer.DECLARE_TYPE, lexer.CLOSE_PAR) == recoverUnwind {
		return
	}
	if p.nextRule(p.maisVar, lexer.DECLARE_TYPE, lexer.CLOSE_PAR) == recoverUnwind {
		return
	}

	p.exitRule()
}

// maisVar ::= , variaveis | λ
func (p *Parser) maisVar() {
	p.enterRule()

	if p.cur.Class != lexer.COLON {
		p.exitRule()
		return
	}
	p.advance()

	if p.nextRule(p.variaveis, lexer.DECLARE_TYPE, lexer.CLOSE_PAR) == recoverUnwind {
		return
	}

	p.exitRule()
}

// dcP ::= procedure ident parametros ; corpo_p dc_p | λ
func (p *Parser) dcP() {
	p.enterRule()

	if p.cur.Class != lexer.PROCEDURE {
		p.exitRule()
		return
	}
	p.advance()

	if p.expect(lexer.ID, lexer.OPEN_PAR, lexer.SEMICOLON) == recoverUnwind {
		return
	}
	if p.nextRule(p.parametros, lexer.SEMICOLON) == recoverUnwind {
		return
	}
	if p.expect(lexer.SEMICOLON, lexer.VAR, lexer.BEGIN) == recoverUnwind {
		return
	}
	if p.nextRule(p.corpoP, lexer.BEGIN, lexer.PROCEDURE) == recoverUnwind {
		return
	}
	if p.nextRule(p.dcP, lexer.BEGIN) == recoverUnwind {
		return
	}

	p.exitRule()
}

// parametros ::= ( lista_par ) | λ
func (p *Parser) parametros() {
	p.enterRule()

	if p.cur.Class != lexer.OPEN_PAR {
		p.exitRule()
		return
	}
	p.advance()

	if p.nextRule(p.listaPar, lexer.CLOSE_PAR) == recoverUnwind {
		return
	}
	if p.expect(lexer.CLOSE_PAR, lexer.SEMICOLON) == recoverUnwind {
		return
	}

	p.exitRule()
}

// listaPar ::= variaveis : tipo_var mais_par
func (p *Parser) listaPar() {
	p.enterRule()

	if p.nextRule(p.variaveis, lexer.DECLARE_TYPE) == recoverUnwind {
		return
	}
	if p.expect(lexer.DECLARE_TYPE, lexer.REAL, lexer.INTEGER) == recoverUnwind {
		return
	}
	if p.nextRule(p.tipoVar, lexer.COLON, lexer.DECLARE_TYPE, lexer.CLOSE_PAR) == recoverUnwind {
		return
	}
	if p.nextRule(p.maisPar, lexer.CLOSE_PAR) == recoverUnwind {
		return
	}

	p.exitRule()
}

// maisPar ::= ; lista_par | λ
func (p *Parser) maisPar() {
	p.enterRule()

	if p.cur.Class != lexer.SEMICOLON {
		p.exitRule()
		return
	}
	p.advance()

	if p.nextRule(p.listaPar, lexer.CLOSE_PAR) == recoverUnwind {
		return
	}

	p.exitRule()
}

// corpoP ::= dc_loc begin comandos end ;
func (p *Parser) corpoP() {
	p.enterRule()

	if p.nextRule(p.dcLoc, lexer.BEGIN) == recoverUnwind {
		return
	}
	if p.expect(lexer.BEGIN, lexer.READ, lexer.WRITE, lexer.WHILE, lexer.IF, lexer.FOR, lexer.ID, lexer.BEGIN, lexer.END) == recoverUnwind {
		return
	}
	if p.nextRule(p.comandos, lexer.END) == recoverUnwind {
		return
	}
	if p.expect(lexer.END, lexer.SEMICOLON) == recoverUnwind {
		return
	}
	if p.expect(lexer.SEMICOLON, lexer.BEGIN, lexer.PROCEDURE) == recoverUnwind {
		return
	}

	p.exitRule()
}

// dcLoc ::= dc_v
func (p *Parser) dcLoc() {
	p.enterRule()

	if p.nextRule(p.dcV, lexer.BEGIN) == recoverUnwind {
		return
	}

	p.exitRule()
}
