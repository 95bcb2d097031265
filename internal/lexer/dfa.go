package lexer

// The main and keyword automata are dense tables built once and never
// mutated afterward — "tables as data, not code": fixed-size arrays
// indexed [state][byte] keep both automata contiguous in memory without
// depending on a code-generation step.

const (
	numMainStates    = 32
	numChars         = 128
	numKeywordStates = 65
	numLowerLetters  = 26

	commentState = 30
	opAddState   = 10
	opUnState    = 23
)

// classDesc pairs a final state's token class with whether accepting it
// requires retreating the source reader by one byte — the sum-type
// re-architecture of the original's sign-bit-encoded class code.
type classDesc struct {
	Class   TokenClass
	Retreat bool
}

// mainDFA holds the built main automaton: dense transition table plus a
// per-state final/class/retreat descriptor.
type mainDFA struct {
	transitions [numMainStates][numChars]int8
	final       [numMainStates]bool
	classOf     [numMainStates]classDesc
	message     [numMainStates]string
}

func buildMainDFA() *mainDFA {
	d := &mainDFA{}
	for s := 0; s < numMainStates; s++ {
		for c := 0; c < numChars; c++ {
			d.transitions[s][c] = -1
		}
	}

	fillOther := func(state int, target int8) {
		for c := 0; c < numChars; c++ {
			if d.transitions[state][c] == -1 {
				d.transitions[state][c] = target
			}
		}
	}

	// Identifiers: 0/1 on [A-Za-z_], 1 also on digits.
	fillOther(0, 3)
	fillOther(1, 2)
	d.transitions[0]['_'] = 1
	d.transitions[1]['_'] = 1
	for i := byte('a'); i <= 'z'; i++ {
		d.transitions[0][i] = 1
		d.transitions[1][i] = 1
	}
	for i := byte('A'); i <= 'Z'; i++ {
		d.transitions[0][i] = 1
		d.transitions[1][i] = 1
	}
	for i := byte('0'); i <= '9'; i++ {
		d.transitions[1][i] = 1
	}

	// Numbers.
	for i := byte('0'); i <= '9'; i++ {
		d.transitions[0][i] = 4
		d.transitions[4][i] = 4
		d.transitions[6][i] = 8
		d.transitions[8][i] = 8
	}
	d.transitions[4]['.'] = 6
	fillOther(4, 5) // end of an integer
	fillOther(6, 7) // error: '.' not followed by a digit
	fillOther(8, 9) // end of a real

	// Operators.
	d.transitions[0]['+'] = opAddState
	d.transitions[0]['-'] = opAddState
	d.transitions[0]['*'] = 11
	d.transitions[0]['/'] = 11
	d.transitions[0]['='] = 12
	d.transitions[0][':'] = 13
	d.transitions[13]['='] = 14
	d.transitions[0]['<'] = 16
	d.transitions[16]['='] = 18
	d.transitions[16]['>'] = 18
	d.transitions[0]['>'] = 20
	d.transitions[20]['='] = 22
	fillOther(13, 15)
	fillOther(16, 19)
	fillOther(20, 21)

	// Miscellaneous.
	d.transitions[0][' '] = 0
	d.transitions[0]['\t'] = 0
	d.transitions[0]['\n'] = 0
	d.transitions[0][';'] = 24
	d.transitions[0][','] = 25
	d.transitions[0]['('] = 26
	d.transitions[0][')'] = 27
	d.transitions[0]['.'] = 28
	d.transitions[0]['{'] = 30
	d.transitions[30]['}'] = 0
	fillOther(30, 30)

	notFinals := []int{0, 1, 4, 6, 8, 13, 16, 20, 30}
	for _, s := range notFinals {
		d.final[s] = false
		d.classOf[s] = classDesc{Class: ERROR}
	}

	type finalDef struct {
		state   int
		class   TokenClass
		retreat bool
		message string
	}
	finals := []finalDef{
		{2, ID, true, ""},
		{3, ERROR, false, "Error: Invalid character"},
		{5, N_INTEGER, true, ""},
		{7, ERROR, true, "Error: did you mean to type a real number?"},
		{9, N_REAL, true, ""},
		{10, OP_ADD, false, ""},
		{11, OP_MULT, false, ""},
		{12, RELATION, false, ""},
		{14, ASSIGN, false, ""},
		{15, DECLARE_TYPE, true, ""},
		{17, RELATION, false, ""},
		{18, RELATION, false, ""},
		{19, RELATION, true, ""},
		{21, RELATION, true, ""},
		{22, RELATION, false, ""},
		{23, OP_UN, false, ""},
		{24, SEMICOLON, false, ""},
		{25, COLON, false, ""},
		{26, OPEN_PAR, false, ""},
		{27, CLOSE_PAR, false, ""},
		{28, DOT, false, ""},
		{29, LAMBDA, false, ""},
		{31, ERROR, false, "Error: Unexpected end of file"},
	}
	for _, f := range finals {
		d.final[f.state] = true
		d.classOf[f.state] = classDesc{Class: f.class, Retreat: f.retreat}
		d.message[f.state] = f.message
	}

	return d
}

// keywordDFA recognizes the 17 protected symbols over the lower-case
// alphabet. Any state not marked final resolves to ID.
type keywordDFA struct {
	transitions [numKeywordStates][numLowerLetters]int8
	classOf     [numKeywordStates]TokenClass
}

// installWord wires from --word[0]--> next, then chains next+i --word[i+1]--> next+i+1,
// mirroring the original's installWord/_fillWord helper for shared-prefix keywords.
func installWord(d *keywordDFA, word string, from, next int8) {
	d.transitions[from][word[0]-'a'] = next
	for i := 1; i < len(word); i++ {
		d.transitions[next][word[i]-'a'] = next + 1
		next++
	}
}

func buildKeywordDFA() *keywordDFA {
	d := &keywordDFA{}
	for s := 0; s < numKeywordStates; s++ {
		for c := 0; c < numLowerLetters; c++ {
			d.transitions[s][c] = -1
		}
		d.classOf[s] = ID
	}

	installWord(d, "begin", 0, 1)
	installWord(d, "const", 0, 6)
	installWord(d, "do", 0, 11)
	installWord(d, "end", 0, 13)
	installWord(d, "lse", 13, 16) // else, sharing the "e" of end
	installWord(d, "if", 0, 19)
	installWord(d, "nteger", 19, 21) // integer, sharing the "i" of if
	installWord(d, "for", 0, 27)
	installWord(d, "program", 0, 30)
	installWord(d, "cedure", 32, 37) // procedure, sharing "pro" of program
	installWord(d, "real", 0, 43)
	installWord(d, "d", 45, 47) // read, sharing "rea" of real
	installWord(d, "then", 0, 48)
	installWord(d, "o", 48, 52) // to, sharing the "t" of then
	installWord(d, "var", 0, 53)
	installWord(d, "write", 0, 56)
	installWord(d, "hile", 56, 61) // while, sharing the "w" of write

	type finalDef struct {
		state int
		class TokenClass
	}
	finals := []finalDef{
		{5, BEGIN}, {10, CONST}, {12, DO}, {15, END}, {18, ELSE},
		{20, IF}, {26, INTEGER}, {29, FOR}, {36, PROGRAM}, {42, PROCEDURE},
		{46, REAL}, {47, READ}, {51, THEN}, {52, TO}, {55, VAR},
		{60, WRITE}, {64, WHILE},
	}
	for _, f := range finals {
		d.classOf[f.state] = f.class
	}

	return d
}

// classify walks word through the keyword automaton and returns ID if any
// byte is not a lower-case letter or recognition fails.
func (d *keywordDFA) classify(word string) TokenClass {
	state := int8(0)
	for i := 0; i < len(word); i++ {
		if state == -1 {
			return ID
		}
		ch := word[i]
		if ch < 'a' || ch > 'z' {
			return ID
		}
		state = d.transitions[state][ch-'a']
	}
	if state == -1 {
		return ID
	}
	return d.classOf[state]
}
