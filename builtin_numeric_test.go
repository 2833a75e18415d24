package racket

import "testing"

func TestComparisons(t *testing.T) {
	wantOutputs(t, "(< 1 2 3)", "#t")
	wantOutputs(t, "(< 1 3 2)", "#f")
	wantOutputs(t, "(<= 1 1 2)", "#t")
	wantOutputs(t, "(> 3 2 1)", "#t")
	wantOutputs(t, "(>= 3 3 1)", "#t")
	wantOutputs(t, "(= 1 1 1)", "#t")
	wantOutputs(t, "(= 1 1.0)", "#t")
	wantOutputs(t, "(= 1/2 0.5)", "#t")
	wantOutputs(t, "(< 1)", "#t")
	wantRuntimeError(t, `(< 1 "2")`,
		ErrArgumentType, `<: expects a real as 2nd argument, given "2"`)
}

func TestAbsSgn(t *testing.T) {
	wantOutputs(t, "(abs -5)", "5")
	wantOutputs(t, "(abs 5)", "5")
	wantOutputs(t, "(abs -1/2)", "1/2")
	wantOutputs(t, "(sgn -3)", "-1")
	wantOutputs(t, "(sgn 0)", "0")
	wantOutputs(t, "(sgn 2.5)", "1")
}

func TestAddSub1(t *testing.T) {
	wantOutputs(t, "(add1 41)", "42")
	wantOutputs(t, "(sub1 1/2)", "-1/2")
	wantOutputs(t, "(add1 0.5)", "1.5")
}

func TestFloorCeilingRound(t *testing.T) {
	wantOutputs(t, "(floor 3/2)", "1")
	wantOutputs(t, "(floor -3/2)", "-2")
	wantOutputs(t, "(floor 2.7)", "2")
	wantOutputs(t, "(ceiling 3/2)", "2")
	wantOutputs(t, "(ceiling -3/2)", "-1")
	wantOutputs(t, "(ceiling 4)", "4")
	// round halves to even
	wantOutputs(t, "(round 1/2)", "0")
	wantOutputs(t, "(round 3/2)", "2")
	wantOutputs(t, "(round 5/2)", "2")
	wantOutputs(t, "(round 2.5)", "2")
	wantOutputs(t, "(round 3.5)", "4")
	wantOutputs(t, "(round 7/3)", "2")
	wantOutputs(t, "(round -1/2)", "0")
}

func TestEvenOdd(t *testing.T) {
	wantOutputs(t, "(even? 4)", "#t")
	wantOutputs(t, "(odd? 4)", "#f")
	wantOutputs(t, "(even? -3)", "#f")
	wantRuntimeError(t, "(even? 1/2)",
		ErrArgumentType, "even?: expects a integer, given 1/2")
}

func TestExactness(t *testing.T) {
	wantOutputs(t, "(exact? 1/2)", "#t")
	wantOutputs(t, "(exact? 0.5)", "#f")
	wantOutputs(t, "(exact->inexact 1/2)", "0.5")
	wantOutputs(t, "(exact->inexact 3)", "3.0")
}

func TestGcdLcm(t *testing.T) {
	wantOutputs(t, "(gcd)", "0")
	wantOutputs(t, "(gcd 12 18)", "6")
	wantOutputs(t, "(gcd -4 6)", "2")
	wantOutputs(t, "(lcm)", "1")
	wantOutputs(t, "(lcm 4 6)", "12")
	wantOutputs(t, "(lcm 3 0)", "0")
}

func TestPredicates(t *testing.T) {
	wantOutputs(t, "(number? 1/2)", "#t")
	wantOutputs(t, `(number? "1")`, "#f")
	wantOutputs(t, "(integer? 4)", "#t")
	wantOutputs(t, "(integer? 4.0)", "#t")
	wantOutputs(t, "(integer? 1/2)", "#f")
	wantOutputs(t, "(rational? 0.5)", "#t")
	wantOutputs(t, "(real? 3)", "#t")
	wantOutputs(t, "(positive? 1/2)", "#t")
	wantOutputs(t, "(negative? -0.1)", "#t")
	wantOutputs(t, "(zero? 0.0)", "#t")
	wantOutputs(t, "(zero? 0)", "#t")
	wantOutputs(t, "(zero? 1/2)", "#f")
}

func TestMaxMinModulo(t *testing.T) {
	wantOutputs(t, "(max 1 3 2)", "3")
	wantOutputs(t, "(min 1 3 2)", "1")
	wantOutputs(t, "(max 1/2 0.4)", "1/2")
	wantOutputs(t, "(modulo 7 3)", "1")
	wantOutputs(t, "(modulo -7 3)", "2")
	wantOutputs(t, "(modulo 7 -3)", "-2")
	wantRuntimeError(t, "(modulo 1 0)", ErrDivisionByZero, "modulo: division by zero")
}

func TestSqrSqrtExpLog(t *testing.T) {
	wantOutputs(t, "(sqr 1/2)", "1/4")
	wantOutputs(t, "(sqr -3)", "9")
	wantOutputs(t, "(sqrt 4)", "2.0")
	wantOutputs(t, "(sqrt 2.25)", "1.5")
	wantOutputs(t, "(exp 0)", "1.0")
	wantOutputs(t, "(log 1)", "0.0")
	wantRuntimeError(t, "(sqrt -1)",
		ErrArgumentType, "sqrt: expects a non-negative number, given -1")
}

func TestBigIntegerArithmetic(t *testing.T) {
	wantOutputs(t, "(* 10000000000 10000000000)", "100000000000000000000")
	wantOutputs(t, "(+ 9223372036854775807 1)", "9223372036854775808")
	wantOutputs(t, "(- 0 99999999999999999999)", "-99999999999999999999")
	wantOutputs(t, "(sqr 99999999999999999999)",
		"9999999999999999999800000000000000000001")
	wantOutputs(t, "(/ 100000000000000000000 10000000000)", "10000000000")
	wantOutputs(t, "(= 100000000000000000000 100000000000000000000)", "#t")
	wantOutputs(t, "(< 99999999999999999999 100000000000000000000)", "#t")
	wantOutputs(t, "(even? 100000000000000000000)", "#t")
	wantOutputs(t, "(odd? 100000000000000000001)", "#t")
	wantOutputs(t, "(gcd 100000000000000000000 60000000000000000000)",
		"20000000000000000000")
	wantOutputs(t, "(modulo 100000000000000000001 2)", "1")
	wantOutputs(t, "(floor 100000000000000000001/2)", "50000000000000000000")
	wantOutputs(t, "(abs -100000000000000000000)", "100000000000000000000")
	wantOutputs(t,
		"(define (fact n) (if (= n 0) 1 (* n (fact (- n 1))))) (fact 25)",
		"15511210043330985984000000")
}

func TestNumberToString(t *testing.T) {
	wantOutputs(t, "(number->string 42)", `"42"`)
	wantOutputs(t, "(number->string 1/2)", `"1/2"`)
	wantOutputs(t, "(number->string 2.5)", `"2.5"`)
}
