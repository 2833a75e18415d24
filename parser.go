package racket

import (
	"fmt"
	"math/big"
)

// SyntaxError reports a grammar violation. Line and Col are 1-based.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("SYNTAX ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// keywords are names with special grammar. They are ordinary NAME tokens;
// the parser recognizes them by value.
var keywords = map[string]bool{
	"define":        true,
	"define-struct": true,
	"cond":          true,
	"else":          true,
	"check-expect":  true,
}

// Parser consumes a token slice by index. The grammar needs two tokens of
// lookahead to tell the define forms apart.
type Parser struct {
	toks []Token
	pos  int
}

// Parse tokenizes and parses a whole source file.
func Parse(src string) (*Program, error) {
	toks, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	p := &Parser{toks: toks}
	return p.parseProgram()
}

func (p *Parser) peek() Token { return p.toks[p.pos] }
func (p *Parser) next() Token { t := p.toks[p.pos]; p.pos++; return t }
func (p *Parser) atEnd() bool { return p.toks[p.pos].Type == EOF }
func (p *Parser) peekN(n int) Token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[idx]
}

func errAt(tok Token, msg string) error {
	return &SyntaxError{Line: tok.Line, Col: tok.Col, Msg: msg}
}

func (p *Parser) parseProgram() (*Program, error) {
	prog := &Program{}
	for !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

func (p *Parser) parseStatement() (Node, error) {
	tok := p.peek()
	if tok.Type == LPAREN {
		head := p.peekN(1)
		if head.Type == NAME {
			switch head.Lexeme {
			case "define":
				return p.parseDefine()
			case "define-struct":
				return p.parseDefineStruct()
			case "check-expect":
				return p.parseCheckExpect()
			}
		}
	}
	if tok.Type == NAME {
		switch tok.Lexeme {
		case "define":
			return nil, errAt(tok, "define: expected an open parenthesis before define, but found none")
		case "define-struct":
			return nil, errAt(tok, "define-struct: expected an open parenthesis before define-struct, but found none")
		case "check-expect":
			return nil, errAt(tok, "check-expect: expected an open parenthesis before check-expect, but found none")
		}
	}
	return p.parseExpr()
}

/* ===========================
   expressions
   =========================== */

func (p *Parser) parseExpr() (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case INTEGER, RATIONAL, DECIMAL:
		p.next()
		return &NumberLit{Token: tok, Num: numberValue(tok)}, nil
	case BOOLEAN:
		p.next()
		return &BoolLit{Token: tok, Bool: tok.Literal.(bool)}, nil
	case STRING:
		p.next()
		return &StrLit{Token: tok, Str: tok.Literal.(string)}, nil
	case SYMBOL:
		p.next()
		return &SymLit{Token: tok, Name: tok.Literal.(string)}, nil
	case QUOTE:
		return p.parseQuotedList()
	case NAME:
		switch tok.Lexeme {
		case "define", "define-struct":
			return nil, errAt(tok, fmt.Sprintf(
				"%s: expected an open parenthesis before %s, but found none", tok.Lexeme, tok.Lexeme))
		case "cond":
			return nil, errAt(tok, "cond: expected an open parenthesis before cond, but found none")
		case "check-expect":
			return nil, errAt(tok, "check-expect: expected an open parenthesis before check-expect, but found none")
		case "else":
			return nil, errAt(tok, "else: not allowed here, because this is not a question in a clause")
		}
		p.next()
		return &Ident{Token: tok, Name: tok.Lexeme}, nil
	case LPAREN:
		head := p.peekN(1)
		if head.Type == NAME {
			switch head.Lexeme {
			case "define", "define-struct":
				return nil, errAt(head, fmt.Sprintf(
					"%s: found a definition that is not at the top level", head.Lexeme))
			case "check-expect":
				return nil, errAt(head, "check-expect: found a test that is not at the top level")
			case "cond":
				return p.parseCond()
			case "else":
				return nil, errAt(head, "else: not allowed here, because this is not a question in a clause")
			}
		}
		return p.parseCall()
	case RPAREN:
		return nil, errAt(tok, "read-syntax: unexpected `)`")
	default:
		return nil, errAt(tok, "read-syntax: unexpected EOF")
	}
}

func (p *Parser) parseCall() (Expr, error) {
	lp := p.next() // "("
	if p.peek().Type == RPAREN {
		return nil, errAt(lp, "function-call: expected a function after the open parenthesis, but nothing's there")
	}
	op, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var args []Expr
	for p.peek().Type != RPAREN {
		if p.atEnd() {
			return nil, errAt(p.peek(), "read-syntax: unexpected EOF")
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.next() // ")"
	return &Call{Token: lp, Op: op, Args: args}, nil
}

func (p *Parser) parseCond() (Expr, error) {
	p.next()            // "("
	condTok := p.next() // "cond"
	if p.peek().Type == RPAREN {
		return nil, errAt(condTok, "cond: expected a clause after cond, but nothing's there")
	}

	cond := &Cond{Token: condTok}
	var elseTok Token
	for p.peek().Type != RPAREN {
		tok := p.peek()
		if tok.Type != LPAREN {
			return nil, errAt(tok, fmt.Sprintf(
				"cond: expected a clause with a question and an answer, but %s", foundDescr(tok)))
		}
		if cond.Else != nil {
			return nil, errAt(elseTok,
				"cond: found an else clause that isn't the last clause in its cond expression")
		}
		clauseTok := p.next() // clause "("

		isElse := false
		if t := p.peek(); t.Type == NAME && t.Lexeme == "else" {
			isElse = true
			elseTok = t
			p.next()
		}

		var parts []Expr
		for p.peek().Type != RPAREN {
			part, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}
		p.next() // clause ")"

		want := 2
		if isElse {
			want = 1
		}
		if len(parts) != want {
			n := len(parts)
			if isElse {
				n++
			}
			var found string
			switch n {
			case 0:
				found = "found an empty part"
			case 1:
				found = "found a clause with only one part"
			default:
				found = fmt.Sprintf("found a clause with %d parts", n)
			}
			return nil, errAt(clauseTok, fmt.Sprintf(
				"cond: expected a clause with a question and an answer, but %s", found))
		}

		if isElse {
			cond.Else = parts[0]
		} else {
			cond.Clauses = append(cond.Clauses, CondClause{
				Token:    clauseTok,
				Question: parts[0],
				Answer:   parts[1],
			})
		}
	}
	p.next() // ")"
	return cond, nil
}

func (p *Parser) parseQuotedList() (Expr, error) {
	quote := p.next() // "'"
	list, err := p.parseListDatum()
	if err != nil {
		return nil, err
	}
	list.(*ListLit).Token = quote
	return list, nil
}

// parseListDatum reads the parenthesised body of a quoted list. Everything
// inside is data: names become symbols, nested parentheses become nested
// lists.
func (p *Parser) parseListDatum() (Expr, error) {
	lp := p.next() // "("
	list := &ListLit{Token: lp}
	for p.peek().Type != RPAREN {
		tok := p.peek()
		switch tok.Type {
		case INTEGER, RATIONAL, DECIMAL:
			p.next()
			list.Elems = append(list.Elems, &NumberLit{Token: tok, Num: numberValue(tok)})
		case BOOLEAN:
			p.next()
			list.Elems = append(list.Elems, &BoolLit{Token: tok, Bool: tok.Literal.(bool)})
		case STRING:
			p.next()
			list.Elems = append(list.Elems, &StrLit{Token: tok, Str: tok.Literal.(string)})
		case NAME:
			p.next()
			list.Elems = append(list.Elems, &SymLit{Token: tok, Name: tok.Lexeme})
		case SYMBOL:
			p.next()
			list.Elems = append(list.Elems, &SymLit{Token: tok, Name: tok.Literal.(string)})
		case QUOTE:
			inner, err := p.parseQuotedList()
			if err != nil {
				return nil, err
			}
			list.Elems = append(list.Elems, inner)
		case LPAREN:
			inner, err := p.parseListDatum()
			if err != nil {
				return nil, err
			}
			list.Elems = append(list.Elems, inner)
		default:
			return nil, errAt(tok, "read-syntax: unexpected EOF")
		}
	}
	p.next() // ")"
	return list, nil
}

/* ===========================
   definitions & tests
   =========================== */

func (p *Parser) parseDefine() (Node, error) {
	p.next()           // "("
	defTok := p.next() // "define"

	tok := p.peek()
	switch {
	case tok.Type == LPAREN:
		return p.parseDefineProc(defTok)
	case tok.Type == NAME && !keywords[tok.Lexeme]:
		return p.parseDefineConst(defTok)
	default:
		return nil, errAt(tok, fmt.Sprintf(
			"define: expected a variable name, or a function name and its variables (in parentheses), but %s",
			foundDescr(tok)))
	}
}

func (p *Parser) parseDefineConst(defTok Token) (Node, error) {
	name := p.next()
	if p.peek().Type == RPAREN {
		return nil, errAt(p.peek(), fmt.Sprintf(
			"define: expected an expression after the variable name %s, but nothing's there", name.Lexeme))
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if extra, err := p.countExtraParts(); err != nil {
		return nil, err
	} else if extra > 0 {
		return nil, errAt(defTok, fmt.Sprintf(
			"define: expected only one expression after the variable name %s, but found %d extra part%s",
			name.Lexeme, extra, plural(extra)))
	}
	p.next() // ")"
	return &DefineConst{Token: defTok, Name: name, Expr: expr}, nil
}

func (p *Parser) parseDefineProc(defTok Token) (Node, error) {
	p.next() // header "("

	name := p.peek()
	switch {
	case name.Type == NAME && !keywords[name.Lexeme]:
		p.next()
	case name.Type == RPAREN:
		return nil, errAt(name, "define: expected the name of the function, but nothing's there")
	default:
		return nil, errAt(name, fmt.Sprintf(
			"define: expected the name of the function, but %s", foundDescr(name)))
	}

	var params []Token
	seen := map[string]bool{}
	for p.peek().Type != RPAREN {
		param := p.peek()
		if param.Type != NAME || keywords[param.Lexeme] {
			return nil, errAt(param, fmt.Sprintf(
				"define: expected a variable, but %s", foundDescr(param)))
		}
		if seen[param.Lexeme] {
			return nil, errAt(param, fmt.Sprintf(
				"define: found a variable that is used more than once: %s", param.Lexeme))
		}
		seen[param.Lexeme] = true
		params = append(params, param)
		p.next()
	}
	p.next() // header ")"

	if p.peek().Type == RPAREN {
		return nil, errAt(p.peek(),
			"define: expected an expression for the function body, but nothing's there")
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if extra, err := p.countExtraParts(); err != nil {
		return nil, err
	} else if extra > 0 {
		return nil, errAt(defTok, fmt.Sprintf(
			"define: expected only one expression for the function body, but found %d extra part%s",
			extra, plural(extra)))
	}
	p.next() // ")"
	return &DefineProc{Token: defTok, Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseDefineStruct() (Node, error) {
	p.next()           // "("
	defTok := p.next() // "define-struct"

	name := p.peek()
	switch {
	case name.Type == NAME && !keywords[name.Lexeme]:
		p.next()
	case name.Type == RPAREN:
		return nil, errAt(name, "define-struct: expected the structure name after define-struct, but nothing's there")
	default:
		return nil, errAt(name, fmt.Sprintf(
			"define-struct: expected the structure name after define-struct, but %s", foundDescr(name)))
	}

	if tok := p.peek(); tok.Type != LPAREN {
		found := foundDescr(tok)
		return nil, errAt(tok, fmt.Sprintf(
			"define-struct: expected at least one field name (in parentheses) after the structure name, but %s",
			found))
	}
	p.next() // field-list "("

	var fields []Token
	seen := map[string]bool{}
	for p.peek().Type != RPAREN {
		field := p.peek()
		if field.Type != NAME || keywords[field.Lexeme] {
			return nil, errAt(field, fmt.Sprintf(
				"define-struct: expected a field name, but %s", foundDescr(field)))
		}
		if seen[field.Lexeme] {
			return nil, errAt(field, fmt.Sprintf(
				"define-struct: found a field name that is used more than once: %s", field.Lexeme))
		}
		seen[field.Lexeme] = true
		fields = append(fields, field)
		p.next()
	}
	fieldsClose := p.next() // field-list ")"
	if len(fields) == 0 {
		return nil, errAt(fieldsClose,
			"define-struct: expected at least one field name (in parentheses) after the structure name, but nothing's there")
	}

	if extra, err := p.countExtraParts(); err != nil {
		return nil, err
	} else if extra > 0 {
		return nil, errAt(defTok, fmt.Sprintf(
			"define-struct: expected nothing after the field names, but found %d extra part%s",
			extra, plural(extra)))
	}
	p.next() // ")"
	return &DefineStruct{Token: defTok, Name: name, Fields: fields}, nil
}

func (p *Parser) parseCheckExpect() (Node, error) {
	p.next()          // "("
	ceTok := p.next() // "check-expect"

	var parts []Expr
	for p.peek().Type != RPAREN {
		part, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	p.next() // ")"

	if len(parts) != 2 {
		var msg string
		switch {
		case len(parts) == 0:
			msg = "check-expect: expects 2 arguments, but found none"
		case len(parts) == 1:
			msg = "check-expect: expects 2 arguments, but found only 1"
		default:
			msg = fmt.Sprintf("check-expect: expects only 2 arguments, but found %d", len(parts))
		}
		return nil, errAt(ceTok, msg)
	}
	return &CheckExpect{Token: ceTok, Actual: parts[0], Expected: parts[1]}, nil
}

/* ===========================
   helpers
   =========================== */

// countExtraParts parses and discards expressions up to the closing
// parenthesis, reporting how many there were.
func (p *Parser) countExtraParts() (int, error) {
	n := 0
	for p.peek().Type != RPAREN {
		if _, err := p.parseExpr(); err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

func numberValue(tok Token) Value {
	switch tok.Type {
	case INTEGER:
		return IntBig(tok.Literal.(*big.Int))
	case RATIONAL:
		return Rat(tok.Literal.(*big.Rat))
	default:
		return Dec(tok.Literal.(float64))
	}
}

// foundDescr words what was found where something else was expected.
func foundDescr(tok Token) string {
	switch tok.Type {
	case INTEGER, RATIONAL, DECIMAL:
		return "found a number"
	case BOOLEAN:
		return "found a boolean"
	case STRING:
		return "found a string"
	case LPAREN, QUOTE, SYMBOL:
		return "found a part"
	case RPAREN, EOF:
		return "nothing's there"
	case NAME:
		if keywords[tok.Lexeme] {
			return "found a keyword"
		}
		return "found something else"
	default:
		return "found something else"
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
