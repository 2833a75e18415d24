package racket

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// ---- string built-ins --------------------------------------------------
//
// Case predicates follow the usual text-library conventions: a string is
// lower-case (upper-case) when it has at least one cased character and every
// cased character is lower (upper).

func registerStringBuiltins(ip *Interpreter) {
	ip.register(&Builtin{Name: "string-append", Lower: 0, Upper: -1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			var sb strings.Builder
			for i, v := range args {
				wantString(tok, "string-append", i, v)
				sb.WriteString(v.Data.(string))
			}
			return Str(sb.String())
		}})

	ip.register(&Builtin{Name: "string-contains?", Lower: 2, Upper: 2,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantString(tok, "string-contains?", 0, args[0])
			wantString(tok, "string-contains?", 1, args[1])
			return Bool(strings.Contains(args[1].Data.(string), args[0].Data.(string)))
		}})

	ip.register(&Builtin{Name: "string-copy", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantString(tok, "string-copy", -1, args[0])
			return args[0]
		}})

	ip.register(&Builtin{Name: "string-downcase", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantString(tok, "string-downcase", -1, args[0])
			return Str(strings.ToLower(args[0].Data.(string)))
		}})

	ip.register(&Builtin{Name: "string-upcase", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantString(tok, "string-upcase", -1, args[0])
			return Str(strings.ToUpper(args[0].Data.(string)))
		}})

	ip.register(&Builtin{Name: "string-ith", Lower: 2, Upper: 2,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantString(tok, "string-ith", 0, args[0])
			if args[1].Tag != VTInt || args[1].Data.(*big.Int).Sign() < 0 {
				failAt(tok, ErrArgumentType, argTypeMsg("string-ith", "natural number", 1, args[1]))
			}
			runes := []rune(args[0].Data.(string))
			idx := args[1].Data.(*big.Int)
			if !idx.IsInt64() || idx.Int64() >= int64(len(runes)) {
				failAt(tok, ErrArgumentType, fmt.Sprintf(
					"string-ith: expected an exact integer in [0, %d) (i.e., less than the length of the given string) for the second argument, but received %s",
					len(runes), idx))
			}
			return Str(string(runes[idx.Int64()]))
		}})

	ip.register(&Builtin{Name: "string-length", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantString(tok, "string-length", -1, args[0])
			return Int(int64(len([]rune(args[0].Data.(string)))))
		}})

	ip.register(&Builtin{Name: "string-alphabetic?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantString(tok, "string-alphabetic?", -1, args[0])
			for _, r := range args[0].Data.(string) {
				if !unicode.IsLetter(r) {
					return Bool(false)
				}
			}
			return Bool(true)
		}})

	ip.register(&Builtin{Name: "string-lower-case?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantString(tok, "string-lower-case?", -1, args[0])
			return Bool(stringHasCase(args[0].Data.(string), unicode.IsLower))
		}})

	ip.register(&Builtin{Name: "string-upper-case?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantString(tok, "string-upper-case?", -1, args[0])
			return Bool(stringHasCase(args[0].Data.(string), unicode.IsUpper))
		}})

	ip.register(&Builtin{Name: "string-numeric?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantString(tok, "string-numeric?", -1, args[0])
			s := args[0].Data.(string)
			if s == "" {
				return Bool(false)
			}
			for _, r := range s {
				if !unicode.IsNumber(r) {
					return Bool(false)
				}
			}
			return Bool(true)
		}})

	ip.register(&Builtin{Name: "string-whitespace?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantString(tok, "string-whitespace?", -1, args[0])
			for _, r := range args[0].Data.(string) {
				if !unicode.IsSpace(r) {
					return Bool(false)
				}
			}
			return Bool(true)
		}})

	ip.register(&Builtin{Name: "string?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, _ Token, args []Value) Value {
			return Bool(args[0].Tag == VTStr)
		}})
}

// stringHasCase reports whether s has at least one cased rune and every
// cased rune satisfies want.
func stringHasCase(s string, want func(rune) bool) bool {
	cased := false
	for _, r := range s {
		if !unicode.IsLower(r) && !unicode.IsUpper(r) && !unicode.IsTitle(r) {
			continue
		}
		cased = true
		if !want(r) {
			return false
		}
	}
	return cased
}
