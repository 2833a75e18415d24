package racket

import (
	"math/big"
	"strings"
	"testing"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	out, err := NewLexer(src).Scan()
	if err != nil {
		t.Fatalf("scan %q: %v", src, err)
	}
	return out
}

func typesWithoutEOF(tokens []Token) []TokenType {
	var tt []TokenType
	for _, tok := range tokens {
		if tok.Type == EOF {
			continue
		}
		tt = append(tt, tok.Type)
	}
	return tt
}

func wantTypes(t *testing.T, src string, want ...TokenType) {
	t.Helper()
	got := typesWithoutEOF(toks(t, src))
	if len(got) != len(want) {
		t.Fatalf("%q: got %d tokens %v, want %d", src, len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d is %v, want %v", src, i, got[i], want[i])
		}
	}
}

func wantLexError(t *testing.T, src, msg string) {
	t.Helper()
	_, err := NewLexer(src).Scan()
	if err == nil {
		t.Fatalf("%q: expected error %q, got none", src, msg)
	}
	le, ok := err.(*LexError)
	if !ok {
		t.Fatalf("%q: expected *LexError, got %T: %v", src, err, err)
	}
	if le.Msg != msg {
		t.Fatalf("%q: got %q, want %q", src, le.Msg, msg)
	}
}

func TestScanAtoms(t *testing.T) {
	wantTypes(t, "(+ 1 2)", LPAREN, NAME, INTEGER, INTEGER, RPAREN)
	wantTypes(t, "-12 3/4 1.5 -.5", INTEGER, RATIONAL, DECIMAL, DECIMAL)
	wantTypes(t, "#true #f", BOOLEAN, BOOLEAN)
	wantTypes(t, `"hello world"`, STRING)
	wantTypes(t, "'red 'blue", SYMBOL, SYMBOL)
	wantTypes(t, "'(1 2 3)", QUOTE, LPAREN, INTEGER, INTEGER, INTEGER, RPAREN)
	wantTypes(t, "[cons 1 empty]", LPAREN, NAME, INTEGER, NAME, RPAREN)
}

func TestScanLiterals(t *testing.T) {
	tokens := toks(t, `42 -7 3/6 2.5 #t "abc" 'sym`)
	if got := tokens[0].Literal.(*big.Int); got.Int64() != 42 {
		t.Fatalf("integer literal: got %s", got)
	}
	if got := tokens[1].Literal.(*big.Int); got.Int64() != -7 {
		t.Fatalf("negative literal: got %s", got)
	}
	if r := tokens[2].Literal.(*big.Rat); r.Cmp(big.NewRat(1, 2)) != 0 {
		t.Fatalf("rational literal: got %s", r)
	}
	if got := tokens[3].Literal.(float64); got != 2.5 {
		t.Fatalf("decimal literal: got %v", got)
	}
	if got := tokens[4].Literal.(bool); !got {
		t.Fatalf("boolean literal: got %v", got)
	}
	if got := tokens[5].Literal.(string); got != "abc" {
		t.Fatalf("string literal: got %q", got)
	}
	if got := tokens[6].Literal.(string); got != "sym" {
		t.Fatalf("symbol literal: got %q", got)
	}
}

func TestScanBigIntegerLiteral(t *testing.T) {
	const lit = "99999999999999999999"
	want, _ := new(big.Int).SetString(lit, 10)

	tokens := toks(t, lit)
	if tokens[0].Type != INTEGER {
		t.Fatalf("token type %v", tokens[0].Type)
	}
	if got := tokens[0].Literal.(*big.Int); got.Cmp(want) != 0 {
		t.Fatalf("big integer literal: got %s", got)
	}

	tokens = toks(t, "-"+lit)
	if got := tokens[0].Literal.(*big.Int); got.Cmp(new(big.Int).Neg(want)) != 0 {
		t.Fatalf("negative big integer literal: got %s", got)
	}
}

func TestScanPositions(t *testing.T) {
	tokens := toks(t, "(define x\n  10)")
	if tokens[0].Line != 1 || tokens[0].Col != 1 {
		t.Fatalf("lparen at %d:%d", tokens[0].Line, tokens[0].Col)
	}
	if tokens[1].Line != 1 || tokens[1].Col != 2 {
		t.Fatalf("define at %d:%d", tokens[1].Line, tokens[1].Col)
	}
	if tokens[3].Line != 2 || tokens[3].Col != 3 {
		t.Fatalf("10 at %d:%d", tokens[3].Line, tokens[3].Col)
	}
}

func TestScanComments(t *testing.T) {
	wantTypes(t, "1 ; a comment\n2", INTEGER, INTEGER)
	wantTypes(t, "1 #| anything\n at all |# 2", INTEGER, INTEGER)
	wantTypes(t, "#;(+ 1 2) 3", INTEGER)
	wantTypes(t, "#;5 3", INTEGER)
	wantLexError(t, "#| never closed", "read-syntax: end of file in `#|` comment")
}

func TestScanNumberErrors(t *testing.T) {
	wantLexError(t, "1/0", "read-syntax: division by zero in `1/0`")
	wantLexError(t, "1.2.3", "read-syntax: bad syntax `1.2.3`")
}

func TestScanBooleanErrors(t *testing.T) {
	wantLexError(t, "#maybe", "read-syntax: bad syntax `#maybe`")
}

func TestScanQuoteErrors(t *testing.T) {
	wantLexError(t, "''x", "what you are trying to do is valid, it is just not supported yet")
	wantLexError(t, "')", "read-syntax: unexpected `)`")
	wantLexError(t, "' x", `read-syntax: expected an element for quoting "'"`)
}

func TestParenMatching(t *testing.T) {
	wantLexError(t, "(]", "read-syntax: expected `)` to close preceding `(`, found instead `]`")
	wantLexError(t, ")", "read-syntax: unexpected `)`")
	wantLexError(t, "(define x 1", "read-syntax: expected a `)` to close `(`")
	wantLexError(t, "[1 2", "read-syntax: expected a `]` to close `[`")
}

func TestScanStringUnterminated(t *testing.T) {
	wantLexError(t, `"abc`, "read-syntax: expected a closing `\"`")
	if got := toks(t, `"a;b#|c"`)[0].Literal.(string); got != "a;b#|c" {
		t.Fatalf("comment markers inside string: got %q", got)
	}
}

func TestIsIncomplete(t *testing.T) {
	for _, src := range []string{"(define x 1", `"abc`, "#| open"} {
		_, err := NewLexer(src).Scan()
		if err == nil || !IsIncomplete(err) {
			t.Fatalf("%q: expected incomplete, got %v", src, err)
		}
	}
	_, err := NewLexer("(]").Scan()
	if err == nil || IsIncomplete(err) {
		t.Fatalf("mismatched parens must not be incomplete: %v", err)
	}
}

func TestLexErrorString(t *testing.T) {
	_, err := NewLexer("#maybe").Scan()
	if err == nil || !strings.HasPrefix(err.Error(), "LEXICAL ERROR at 1:1: ") {
		t.Fatalf("got %v", err)
	}
}
