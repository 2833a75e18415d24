package racket

import (
	"fmt"
	"math/big"
)

// ---- list built-ins ----------------------------------------------------

func registerListBuiltins(ip *Interpreter) {
	ip.register(&Builtin{Name: "append", Lower: 0, Upper: -1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			var out []Value
			for i, v := range args {
				wantList(tok, "append", i, v)
				out = append(out, v.Data.([]Value)...)
			}
			return List(out)
		}})

	ip.register(&Builtin{Name: "cons", Lower: 2, Upper: 2,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			if args[1].Tag != VTList {
				failAt(tok, ErrArgumentType,
					fmt.Sprintf("cons: second argument must be a list, but received %s and %s",
						FormatValue(args[0]), FormatValue(args[1])))
			}
			rest := args[1].Data.([]Value)
			out := make([]Value, 0, len(rest)+1)
			out = append(out, args[0])
			out = append(out, rest...)
			return List(out)
		}})

	ip.register(&Builtin{Name: "cons?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, _ Token, args []Value) Value {
			return Bool(args[0].Tag == VTList && len(args[0].Data.([]Value)) > 0)
		}})

	ip.register(&Builtin{Name: "empty?", Lower: 1, Upper: 1, Impl: isEmptyImpl})
	ip.register(&Builtin{Name: "null?", Lower: 1, Upper: 1, Impl: isEmptyImpl})

	registerSelector(ip, "first", 1)
	registerSelector(ip, "second", 2)
	registerSelector(ip, "third", 3)
	registerSelector(ip, "fourth", 4)
	registerSelector(ip, "fifth", 5)
	registerSelector(ip, "sixth", 6)
	registerSelector(ip, "seventh", 7)
	registerSelector(ip, "eighth", 8)

	ip.register(&Builtin{Name: "rest", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			xs := wantListWithAtLeast(tok, "rest", 1, args[0])
			out := make([]Value, len(xs)-1)
			copy(out, xs[1:])
			return List(out)
		}})

	ip.register(&Builtin{Name: "length", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantList(tok, "length", -1, args[0])
			return Int(int64(len(args[0].Data.([]Value))))
		}})

	ip.register(&Builtin{Name: "list", Lower: 0, Upper: -1,
		Impl: func(_ *Interpreter, _ Token, args []Value) Value {
			out := make([]Value, len(args))
			copy(out, args)
			return List(out)
		}})

	ip.register(&Builtin{Name: "list?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, _ Token, args []Value) Value {
			return Bool(args[0].Tag == VTList)
		}})

	ip.register(&Builtin{Name: "make-list", Lower: 2, Upper: 2,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			if args[0].Tag != VTInt || args[0].Data.(*big.Int).Sign() < 0 ||
				!args[0].Data.(*big.Int).IsInt64() {
				failAt(tok, ErrArgumentType, argTypeMsg("make-list", "natural number", 0, args[0]))
			}
			n := args[0].Data.(*big.Int).Int64()
			out := make([]Value, n)
			for i := range out {
				out[i] = args[1]
			}
			return List(out)
		}})

	ip.register(&Builtin{Name: "member", Lower: 2, Upper: 2, Impl: memberImpl("member")})
	ip.register(&Builtin{Name: "member?", Lower: 2, Upper: 2, Impl: memberImpl("member?")})

	ip.register(&Builtin{Name: "reverse", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantList(tok, "reverse", -1, args[0])
			xs := args[0].Data.([]Value)
			out := make([]Value, len(xs))
			for i, x := range xs {
				out[len(xs)-1-i] = x
			}
			return List(out)
		}})
}

func isEmptyImpl(_ *Interpreter, _ Token, args []Value) Value {
	return Bool(args[0].Tag == VTList && len(args[0].Data.([]Value)) == 0)
}

// registerSelector installs one of first..eighth, which demand a list with
// at least n elements.
func registerSelector(ip *Interpreter, name string, n int) {
	ip.register(&Builtin{Name: name, Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			xs := wantListWithAtLeast(tok, name, n, args[0])
			return xs[n-1]
		}})
}

// wantListWithAtLeast checks for a list of at least n elements and returns
// its backing slice.
func wantListWithAtLeast(tok Token, name string, n int, v Value) []Value {
	expected := "non-empty list"
	if n > 1 {
		expected = fmt.Sprintf("list with %d or more elements", n)
	}
	if v.Tag != VTList || len(v.Data.([]Value)) < n {
		failAt(tok, ErrArgumentType, argTypeMsg(name, expected, -1, v))
	}
	return v.Data.([]Value)
}

func memberImpl(name string) func(*Interpreter, Token, []Value) Value {
	return func(_ *Interpreter, tok Token, args []Value) Value {
		wantList(tok, name, 1, args[1])
		for _, x := range args[1].Data.([]Value) {
			if valueEqual(x, args[0]) {
				return Bool(true)
			}
		}
		return Bool(false)
	}
}
