package racket

import (
	"strings"
	"testing"
)

func run(t *testing.T, src string) Result {
	t.Helper()
	res := Interpret(src)
	if res.Err != nil {
		t.Fatalf("interpret %q: %v", src, res.Err)
	}
	return res
}

func outputTexts(res Result) []string {
	var out []string
	for _, o := range res.Outputs {
		if o.Kind == OutTest {
			out = append(out, o.Test.String())
		} else {
			out = append(out, o.Text)
		}
	}
	return out
}

func wantOutputs(t *testing.T, src string, want ...string) {
	t.Helper()
	got := outputTexts(run(t, src))
	if len(got) != len(want) {
		t.Fatalf("%q: got %d outputs %v, want %d", src, len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: output %d is %q, want %q", src, i, got[i], want[i])
		}
	}
}

func wantRuntimeError(t *testing.T, src string, kind ErrKind, msg string) {
	t.Helper()
	res := Interpret(src)
	if res.Err == nil {
		t.Fatalf("%q: expected error %q, got none", src, msg)
	}
	re, ok := res.Err.(*RuntimeError)
	if !ok {
		t.Fatalf("%q: expected *RuntimeError, got %T: %v", src, res.Err, res.Err)
	}
	if re.Kind != kind {
		t.Fatalf("%q: kind %d, want %d (%v)", src, re.Kind, kind, re)
	}
	if re.Msg != msg {
		t.Fatalf("%q: got %q, want %q", src, re.Msg, msg)
	}
}

func TestEvalLiterals(t *testing.T) {
	wantOutputs(t, "42", "42")
	wantOutputs(t, "3/6", "1/2")
	wantOutputs(t, "1.5", "1.5")
	wantOutputs(t, "#true", "#t")
	wantOutputs(t, `"hello"`, `"hello"`)
	wantOutputs(t, "'red", "'red")
	wantOutputs(t, "'(1 2 3)", "'(1 2 3)")
	wantOutputs(t, "empty", "'()")
}

func TestEvalArithmetic(t *testing.T) {
	wantOutputs(t, "(+ 1 2 3)", "6")
	wantOutputs(t, "(- 10 3 2)", "5")
	wantOutputs(t, "(- 4)", "-4")
	wantOutputs(t, "(* 2 3 4)", "24")
	wantOutputs(t, "(/ 1 3)", "1/3")
	wantOutputs(t, "(/ 4)", "1/4")
	wantOutputs(t, "(+ 1/2 1/2)", "1")
	wantOutputs(t, "(+ 1 0.5)", "1.5")
}

func TestEvalDefine(t *testing.T) {
	wantOutputs(t, "(define x 10) (+ x 5)", "15")
	wantOutputs(t, "(define (double n) (* 2 n)) (double 21)", "42")
	wantOutputs(t, "(define x 1) (define x 2) x", "2")
}

func TestEvalRecursion(t *testing.T) {
	wantOutputs(t, `
(define (fact n)
  (if (= n 0) 1 (* n (fact (- n 1)))))
(fact 10)`, "3628800")
}

func TestEvalClosureScope(t *testing.T) {
	// A function body sees definitions made after it, as long as they exist
	// by the time it runs.
	wantOutputs(t, `
(define (f) g)
(define g 7)
(f)`, "7")
}

func TestEvalCond(t *testing.T) {
	wantOutputs(t, "(cond [#f 1] [#t 2])", "2")
	wantOutputs(t, "(cond [#f 1] [else 9])", "9")
	wantRuntimeError(t, "(cond [#f 1])",
		ErrNoMatchingClause, "cond: all question results were false")
	wantRuntimeError(t, "(cond [5 1])",
		ErrQuestionResult, "cond: question result is not true or false: 5")
}

func TestEvalIfAndOr(t *testing.T) {
	wantOutputs(t, "(if (< 1 2) 'yes 'no)", "'yes")
	wantOutputs(t, "(and #t #t #f)", "#f")
	wantOutputs(t, "(or #f #t)", "#t")
	wantOutputs(t, "(and)", "#t")
	wantOutputs(t, "(or)", "#f")
	// short circuit: the unbound name after the deciding value never runs
	wantOutputs(t, "(and #f (undefined))", "#f")
	wantOutputs(t, "(or #t (undefined))", "#t")
	wantRuntimeError(t, "(if 1 2 3)",
		ErrArgumentType, "if: expects a boolean as 1st argument, given 1")
	wantRuntimeError(t, "(and #t 5)",
		ErrArgumentType, "and: expects a boolean as 2nd argument, given 5")
}

func TestIfAndOrExistOnlyInOperatorPosition(t *testing.T) {
	// if, and, or are forms dispatched on the operator name, not bindings
	wantRuntimeError(t, "if",
		ErrUnboundIdentifier, "if is used here before its definition")
	wantRuntimeError(t, "(first and)",
		ErrUnboundIdentifier, "and is used here before its definition")
	// defining the name does not displace the form at call sites
	wantOutputs(t, "(define (and a b) 'shadowed) (and #t #f)", "#f")
}

func TestEvalStructs(t *testing.T) {
	src := `
(define-struct posn (x y))
(define p (make-posn 3 4))
(posn-x p)
(posn-y p)
(posn? p)
(posn? 5)`
	wantOutputs(t, src, "3", "4", "#t", "#f")
}

func TestEvalStructErrors(t *testing.T) {
	wantRuntimeError(t, "(define-struct posn (x y)) posn",
		ErrStructureType, "posn: structure type; do you mean make-posn")
	wantRuntimeError(t, "(define-struct posn (x y)) (posn-x 5)",
		ErrArgumentType, "posn-x: expects a posn, given 5")
	wantRuntimeError(t, "(define-struct posn (x y)) (make-posn 1)",
		ErrArity, "make-posn: expects 2 arguments, but found 1")
}

func TestEvalUnbound(t *testing.T) {
	wantRuntimeError(t, "(+ x 1)",
		ErrUnboundIdentifier, "x is used here before its definition")
}

func TestEvalNotAProcedure(t *testing.T) {
	wantRuntimeError(t, "(1 2 3)",
		ErrNotAProcedure, "function-call: expected a function after the open parenthesis, but found a number")
	wantRuntimeError(t, `("f" 2)`,
		ErrNotAProcedure, "function-call: expected a function after the open parenthesis, but found a string")
	wantRuntimeError(t, "(define-struct posn (x y)) ((make-posn 1 2) 3)",
		ErrNotAProcedure, "function-call: expected a function after the open parenthesis, but found a (make-posn 1 2)")
}

func TestEvalArity(t *testing.T) {
	wantRuntimeError(t, "(define (f x) x) (f)",
		ErrArity, "f: expects only 1 argument, but found none")
	wantRuntimeError(t, "(define (f x) x) (f 1 2)",
		ErrArity, "f: expects only 1 argument, but found 2")
	wantRuntimeError(t, "(add1)",
		ErrArity, "add1: expects only 1 argument, but found none")
	wantRuntimeError(t, "(- )",
		ErrArity, "-: expects at least 1 argument, but found none")
}

func TestEvalDivisionByZero(t *testing.T) {
	wantRuntimeError(t, "(/ 1 0)", ErrDivisionByZero, "/: division by zero")
	wantRuntimeError(t, "(/ 0)", ErrDivisionByZero, "/: division by zero")
	wantOutputs(t, "(/ 0 5)", "0")
}

func TestEvalRecursionLimit(t *testing.T) {
	res := Interpret("(define (loop n) (loop (add1 n))) (loop 0)")
	if res.Err == nil {
		t.Fatal("expected recursion limit error")
	}
	re, ok := res.Err.(*RuntimeError)
	if !ok || re.Kind != ErrRecursionLimit {
		t.Fatalf("got %v", res.Err)
	}
	if !strings.Contains(re.Msg, "maximum recursion depth") {
		t.Fatalf("got %q", re.Msg)
	}
}

func TestCheckExpect(t *testing.T) {
	res := run(t, `
(define (double n) (* 2 n))
(check-expect (double 4) 8)
(check-expect (double 4) 9)
(check-expect "a" "a")`)
	if res.TestsPassed != 2 || res.TestsFailed != 1 {
		t.Fatalf("passed %d failed %d", res.TestsPassed, res.TestsFailed)
	}
	texts := outputTexts(res)
	if texts[1] != "check-expect at 4:2 failed: actual value 8 differs from 9, the expected value" {
		t.Fatalf("got %q", texts[1])
	}
}

func TestCheckExpectExactness(t *testing.T) {
	res := run(t, "(check-expect (/ 1 3) 1/3) (check-expect 1/2 0.5)")
	if res.TestsPassed != 2 || res.TestsFailed != 0 {
		t.Fatalf("passed %d failed %d", res.TestsPassed, res.TestsFailed)
	}
}

func TestPartialOutputsBeforeError(t *testing.T) {
	res := Interpret("1 2 (+ x 1) 3")
	if res.Err == nil {
		t.Fatal("expected error")
	}
	got := outputTexts(res)
	if len(got) != 2 || got[0] != "1" || got[1] != "2" {
		t.Fatalf("got %v", got)
	}
}

func TestPersistentInterpreter(t *testing.T) {
	ip := NewInterpreter()
	if res := ip.Run("(define x 5)"); res.Err != nil {
		t.Fatalf("define: %v", res.Err)
	}
	res := ip.Run("(* x x)")
	if res.Err != nil {
		t.Fatalf("use: %v", res.Err)
	}
	if got := outputTexts(res); len(got) != 1 || got[0] != "25" {
		t.Fatalf("got %v", got)
	}
}

func TestErrorPositions(t *testing.T) {
	res := Interpret("(define y 2)\n(+ y z)")
	re, ok := res.Err.(*RuntimeError)
	if !ok {
		t.Fatalf("got %v", res.Err)
	}
	if re.Line != 2 || re.Col != 6 {
		t.Fatalf("error at %d:%d", re.Line, re.Col)
	}
}
