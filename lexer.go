package racket

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota

	// Punctuation
	LPAREN // "(", "[" or "{"
	RPAREN // ")", "]" or "}"
	QUOTE  // "'" immediately before an open parenthesis

	// Literals & names
	INTEGER
	RATIONAL
	DECIMAL
	BOOLEAN
	STRING
	SYMBOL // quoted name, e.g. 'red
	NAME
)

// Token is a lexical token with optional literal value.
// Line and Col are 1-based.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw text slice
	Literal interface{} // parsed value for literals
	Line    int
	Col     int
}

// Characters that terminate a name, number or boolean atom.
const delimiterChars = "\"'`()[]{}|;#"

func isDelimiter(b byte) bool {
	return b == ' ' || b == '\r' || b == '\n' || b == '\t' ||
		strings.IndexByte(delimiterChars, b) >= 0
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Lexer scans a source string into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 1-based column within line
	tokens []Token

	// precise token start position
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:  src,
		line: 1,
		col:  1,
	}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) peekN(n int) (byte, bool) {
	idx := l.cur + n
	if idx >= len(l.src) {
		return 0, false
	}
	return l.src[idx], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) addToken(tt TokenType, lit interface{}) Token {
	lex := l.src[l.start:l.cur]
	tok := Token{
		Type:    tt,
		Lexeme:  lex,
		Literal: lit,
		Line:    l.tokStartLine,
		Col:     l.tokStartCol,
	}
	l.tokens = append(l.tokens, tok)
	l.start = l.cur
	return tok
}

// ----- errors -----

// LexError reports a tokenization failure. Line and Col are 1-based.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

func (l *Lexer) err(msg string) error {
	return &LexError{Line: l.tokStartLine, Col: l.tokStartCol, Msg: msg}
}

func (l *Lexer) errAt(line, col int, msg string) error {
	return &LexError{Line: line, Col: col, Msg: msg}
}

// ----- whitespace & comments -----

// skipBlanks eats whitespace, line comments (";"), block comments
// ("#| ... |#") and datum comments ("#;<datum>").
func (l *Lexer) skipBlanks() error {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch {
		case ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t':
			l.advance()
			l.start = l.cur
		case ch == ';':
			for {
				b, ok := l.peek()
				if !ok || b == '\n' {
					break
				}
				l.advance()
			}
			l.start = l.cur
		case ch == '#':
			next, ok := l.peekN(1)
			if !ok {
				return nil
			}
			switch next {
			case '|':
				if err := l.skipBlockComment(); err != nil {
					return err
				}
				l.start = l.cur
			case ';':
				l.advance() // '#'
				l.advance() // ';'
				if err := l.skipDatum(); err != nil {
					return err
				}
				l.start = l.cur
			default:
				return nil
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) skipBlockComment() error {
	line, col := l.line, l.col
	l.advance() // '#'
	l.advance() // '|'
	for {
		b, ok := l.peek()
		if !ok {
			return l.errAt(line, col, "read-syntax: end of file in `#|` comment")
		}
		if b == '|' {
			if b2, ok2 := l.peekN(1); ok2 && b2 == '#' {
				l.advance()
				l.advance()
				return nil
			}
		}
		l.advance()
	}
}

// skipDatum consumes the next datum after a "#;" comment marker: a single
// atom, a string, a quoted datum, or a balanced parenthesised form.
func (l *Lexer) skipDatum() error {
	if err := l.skipBlanks(); err != nil {
		return err
	}
	b, ok := l.peek()
	if !ok {
		return l.errAt(l.line, l.col, "read-syntax: unexpected EOF")
	}
	switch b {
	case '(', '[', '{':
		opener, _ := l.advance()
		closer := closerFor(opener)
		for {
			if err := l.skipBlanks(); err != nil {
				return err
			}
			c, ok := l.peek()
			if !ok {
				return l.errAt(l.line, l.col,
					fmt.Sprintf("read-syntax: expected a `%c` to close `%c`", closer, opener))
			}
			if c == ')' || c == ']' || c == '}' {
				if c != closer {
					return l.errAt(l.line, l.col, fmt.Sprintf(
						"read-syntax: expected `%c` to close preceding `%c`, found instead `%c`",
						closer, opener, c))
				}
				l.advance()
				return nil
			}
			if err := l.skipDatum(); err != nil {
				return err
			}
		}
	case '"':
		l.tokStartLine, l.tokStartCol = l.line, l.col
		_, err := l.scanString()
		return err
	case '\'':
		l.advance()
		return l.skipDatum()
	default:
		for {
			c, ok := l.peek()
			if !ok || isDelimiter(c) {
				return nil
			}
			l.advance()
		}
	}
}

func closerFor(opener byte) byte {
	switch opener {
	case '(':
		return ')'
	case '[':
		return ']'
	default:
		return '}'
	}
}

// ----- scanners -----

// scanString reads the raw text between double quotes. There are no escape
// sequences; every byte up to the closing quote is kept as is.
func (l *Lexer) scanString() (string, error) {
	l.advance() // opening '"'
	var b strings.Builder
	for {
		ch, ok := l.advance()
		if !ok {
			return "", l.err("read-syntax: expected a closing `\"`")
		}
		if ch == '"' {
			return b.String(), nil
		}
		b.WriteByte(ch)
	}
}

// scanAtom consumes characters up to the next delimiter.
func (l *Lexer) scanAtom() string {
	for {
		b, ok := l.peek()
		if !ok || isDelimiter(b) {
			break
		}
		l.advance()
	}
	return l.src[l.start:l.cur]
}

// startsNumber reports whether the atom beginning at the current position is
// committed to being a number: a digit, or "-"/"." directly followed by a
// digit (or "-." followed by a digit).
func (l *Lexer) startsNumber() bool {
	b, ok := l.peek()
	if !ok {
		return false
	}
	if isDigit(b) {
		return true
	}
	if b == '.' {
		b2, ok2 := l.peekN(1)
		return ok2 && isDigit(b2)
	}
	if b == '-' {
		b2, ok2 := l.peekN(1)
		if !ok2 {
			return false
		}
		if isDigit(b2) {
			return true
		}
		if b2 == '.' {
			b3, ok3 := l.peekN(2)
			return ok3 && isDigit(b3)
		}
	}
	return false
}

// classifyNumber turns a numeric atom into an INTEGER, RATIONAL or DECIMAL
// token. A malformed numeric atom is a lexical error, never a name.
func (l *Lexer) classifyNumber(lex string) (Token, error) {
	body := strings.TrimPrefix(lex, "-")

	if isAllDigits(body) {
		v, ok := new(big.Int).SetString(lex, 10)
		if !ok {
			return Token{}, l.err(fmt.Sprintf("read-syntax: bad syntax `%s`", lex))
		}
		return l.addToken(INTEGER, v), nil
	}

	if _, den, ok := splitRational(body); ok {
		if isAllZeros(den) {
			return Token{}, l.err(fmt.Sprintf("read-syntax: division by zero in `%s`", lex))
		}
		r, ok := new(big.Rat).SetString(lex)
		if !ok {
			return Token{}, l.err(fmt.Sprintf("read-syntax: bad syntax `%s`", lex))
		}
		return l.addToken(RATIONAL, r), nil
	}

	if strings.Contains(body, ".") {
		v, convErr := strconv.ParseFloat(lex, 64)
		if convErr == nil {
			return l.addToken(DECIMAL, v), nil
		}
	}

	return Token{}, l.err(fmt.Sprintf("read-syntax: bad syntax `%s`", lex))
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isAllZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

func splitRational(body string) (num, den string, ok bool) {
	slash := strings.IndexByte(body, '/')
	if slash <= 0 || slash == len(body)-1 {
		return "", "", false
	}
	num, den = body[:slash], body[slash+1:]
	if !isAllDigits(num) || !isAllDigits(den) {
		return "", "", false
	}
	return num, den, true
}

// scanBoolean reads an atom beginning with '#'.
func (l *Lexer) scanBoolean() (Token, error) {
	l.advance() // '#'
	for {
		b, ok := l.peek()
		if !ok || isDelimiter(b) {
			break
		}
		l.advance()
	}
	lex := strings.TrimPrefix(l.src[l.start:l.cur], "'")
	switch lex {
	case "#t", "#T", "#true":
		return l.addToken(BOOLEAN, true), nil
	case "#f", "#F", "#false":
		return l.addToken(BOOLEAN, false), nil
	}
	return Token{}, l.err(fmt.Sprintf("read-syntax: bad syntax `%s`", lex))
}

// scanQuoted handles the "'" prefix: quoted lists become a QUOTE token, quoted
// names become SYMBOL tokens, and quoted literals are the literals themselves.
func (l *Lexer) scanQuoted() (Token, error) {
	l.advance() // the quote
	b, ok := l.peek()
	if !ok {
		return Token{}, l.err("read-syntax: expected an element for quoting \"'\", found end-of-file")
	}
	switch b {
	case '(', '[', '{':
		return l.addToken(QUOTE, nil), nil
	case ')', ']', '}':
		return Token{}, l.err(fmt.Sprintf("read-syntax: unexpected `%c`", b))
	case '\'', '`', '|':
		return Token{}, l.err("what you are trying to do is valid, it is just not supported yet")
	case '"':
		text, err := l.scanString()
		if err != nil {
			return Token{}, err
		}
		return l.addToken(STRING, text), nil
	case '#':
		return l.scanBoolean()
	case ' ', '\r', '\n', '\t', ';':
		return Token{}, l.err("read-syntax: expected an element for quoting \"'\"")
	}
	if l.startsNumber() {
		lex := l.scanAtom()
		return l.classifyNumber(strings.TrimPrefix(lex, "'"))
	}
	lex := l.scanAtom()
	return l.addToken(SYMBOL, strings.TrimPrefix(lex, "'")), nil
}

// ----- main scanner -----

func (l *Lexer) scanToken() (Token, error) {
	if err := l.skipBlanks(); err != nil {
		return Token{}, err
	}
	l.tokStartLine = l.line
	l.tokStartCol = l.col
	l.start = l.cur

	if l.isAtEnd() {
		return l.addToken(EOF, nil), nil
	}

	ch, _ := l.peek()
	switch ch {
	case '(', '[', '{':
		l.advance()
		return l.addToken(LPAREN, nil), nil
	case ')', ']', '}':
		l.advance()
		return l.addToken(RPAREN, nil), nil
	case '"':
		text, err := l.scanString()
		if err != nil {
			return Token{}, err
		}
		return l.addToken(STRING, text), nil
	case '\'':
		return l.scanQuoted()
	case '#':
		return l.scanBoolean()
	case '`', '|':
		return Token{}, l.err("what you are trying to do is valid, it is just not supported yet")
	}

	if l.startsNumber() {
		lex := l.scanAtom()
		return l.classifyNumber(lex)
	}

	lex := l.scanAtom()
	return l.addToken(NAME, lex), nil
}

// Scan tokenizes the entire source, checks parenthesis matching, and returns
// the tokens (EOF included).
func (l *Lexer) Scan() ([]Token, error) {
	for {
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			break
		}
	}
	if err := checkParens(l.tokens); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

// checkParens enforces that every "(", "[" and "{" is closed by its own kind
// of closing parenthesis.
func checkParens(tokens []Token) error {
	var stack []Token
	for _, tok := range tokens {
		switch tok.Type {
		case LPAREN:
			stack = append(stack, tok)
		case RPAREN:
			if len(stack) == 0 {
				return &LexError{Line: tok.Line, Col: tok.Col,
					Msg: fmt.Sprintf("read-syntax: unexpected `%s`", tok.Lexeme)}
			}
			opener := stack[len(stack)-1]
			want := string(closerFor(opener.Lexeme[0]))
			if tok.Lexeme != want {
				return &LexError{Line: tok.Line, Col: tok.Col,
					Msg: fmt.Sprintf("read-syntax: expected `%s` to close preceding `%s`, found instead `%s`",
						want, opener.Lexeme, tok.Lexeme)}
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		opener := stack[len(stack)-1]
		want := string(closerFor(opener.Lexeme[0]))
		return &LexError{Line: opener.Line, Col: opener.Col,
			Msg: fmt.Sprintf("read-syntax: expected a `%s` to close `%s`", want, opener.Lexeme)}
	}
	return nil
}
