package racket

import "testing"

func TestStringAppendCopy(t *testing.T) {
	wantOutputs(t, `(string-append "foo" "bar" "baz")`, `"foobarbaz"`)
	wantOutputs(t, `(string-append)`, `""`)
	wantOutputs(t, `(string-copy "abc")`, `"abc"`)
	wantRuntimeError(t, `(string-append "a" 1)`,
		ErrArgumentType, "string-append: expects a string as 2nd argument, given 1")
}

func TestStringCase(t *testing.T) {
	wantOutputs(t, `(string-upcase "Hello")`, `"HELLO"`)
	wantOutputs(t, `(string-downcase "Hello")`, `"hello"`)
	wantOutputs(t, `(string-lower-case? "abc")`, "#t")
	wantOutputs(t, `(string-lower-case? "abC")`, "#f")
	wantOutputs(t, `(string-lower-case? "abc123")`, "#t")
	wantOutputs(t, `(string-lower-case? "123")`, "#f")
	wantOutputs(t, `(string-upper-case? "ABC")`, "#t")
	wantOutputs(t, `(string-upper-case? "AbC")`, "#f")
}

func TestStringContains(t *testing.T) {
	wantOutputs(t, `(string-contains? "ell" "hello")`, "#t")
	wantOutputs(t, `(string-contains? "xyz" "hello")`, "#f")
	wantOutputs(t, `(string-contains? "" "hello")`, "#t")
}

func TestStringIth(t *testing.T) {
	wantOutputs(t, `(string-ith "hello" 0)`, `"h"`)
	wantOutputs(t, `(string-ith "hello" 4)`, `"o"`)
	wantRuntimeError(t, `(string-ith "hello" 5)`, ErrArgumentType,
		"string-ith: expected an exact integer in [0, 5) (i.e., less than the length of the given string) for the second argument, but received 5")
	wantRuntimeError(t, `(string-ith "hello" -1)`, ErrArgumentType,
		"string-ith: expects a natural number as 2nd argument, given -1")
}

func TestStringLength(t *testing.T) {
	wantOutputs(t, `(string-length "hello")`, "5")
	wantOutputs(t, `(string-length "")`, "0")
}

func TestStringClassPredicates(t *testing.T) {
	wantOutputs(t, `(string-alphabetic? "abc")`, "#t")
	wantOutputs(t, `(string-alphabetic? "ab1")`, "#f")
	wantOutputs(t, `(string-alphabetic? "")`, "#t")
	wantOutputs(t, `(string-numeric? "123")`, "#t")
	wantOutputs(t, `(string-numeric? "12a")`, "#f")
	wantOutputs(t, `(string-numeric? "")`, "#f")
	wantOutputs(t, `(string-whitespace? "  ")`, "#t")
	wantOutputs(t, `(string-whitespace? "")`, "#t")
	wantOutputs(t, `(string-whitespace? " x ")`, "#f")
	wantOutputs(t, `(string? "x")`, "#t")
	wantOutputs(t, `(string? 'x)`, "#f")
}
