package racket

import (
	"math"
	"math/big"
	"time"
)

// ---- numeric built-ins -------------------------------------------------

func registerNumericBuiltins(ip *Interpreter) {
	ip.register(&Builtin{Name: "*", Lower: 0, Upper: -1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			for i, v := range args {
				wantNumber(tok, "*", i, v)
			}
			acc := Int(1)
			for _, v := range args {
				acc = numMul(acc, v)
			}
			return acc
		}})

	ip.register(&Builtin{Name: "+", Lower: 0, Upper: -1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			for i, v := range args {
				wantNumber(tok, "+", i, v)
			}
			acc := Int(0)
			for _, v := range args {
				acc = numAdd(acc, v)
			}
			return acc
		}})

	ip.register(&Builtin{Name: "-", Lower: 1, Upper: -1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			for i, v := range args {
				wantNumber(tok, "-", i, v)
			}
			if len(args) == 1 {
				return numNeg(args[0])
			}
			acc := args[0]
			for _, v := range args[1:] {
				acc = numSub(acc, v)
			}
			return acc
		}})

	ip.register(&Builtin{Name: "/", Lower: 1, Upper: -1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			for i, v := range args {
				wantNumber(tok, "/", i, v)
				if numIsZero(v) && (i > 0 || len(args) == 1) {
					failAt(tok, ErrDivisionByZero, "/: division by zero")
				}
			}
			if len(args) == 1 {
				return numDiv(Int(1), args[0])
			}
			acc := args[0]
			for _, v := range args[1:] {
				acc = numDiv(acc, v)
			}
			return acc
		}})

	registerComparison(ip, "<", func(c int) bool { return c < 0 })
	registerComparison(ip, "<=", func(c int) bool { return c <= 0 })
	registerComparison(ip, ">", func(c int) bool { return c > 0 })
	registerComparison(ip, ">=", func(c int) bool { return c >= 0 })

	ip.register(&Builtin{Name: "=", Lower: 1, Upper: -1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			for i, v := range args {
				wantNumber(tok, "=", i, v)
			}
			for _, v := range args[1:] {
				if numCmp(v, args[0]) != 0 {
					return Bool(false)
				}
			}
			return Bool(true)
		}})

	ip.register(&Builtin{Name: "abs", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			v := args[0]
			wantReal(tok, "abs", -1, v)
			if numCmp(v, Int(0)) < 0 {
				return numNeg(v)
			}
			return v
		}})

	ip.register(&Builtin{Name: "add1", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantNumber(tok, "add1", -1, args[0])
			return numAdd(args[0], Int(1))
		}})

	ip.register(&Builtin{Name: "sub1", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantNumber(tok, "sub1", -1, args[0])
			return numSub(args[0], Int(1))
		}})

	ip.register(&Builtin{Name: "ceiling", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantReal(tok, "ceiling", -1, args[0])
			return ceilingOf(args[0])
		}})

	ip.register(&Builtin{Name: "floor", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantReal(tok, "floor", -1, args[0])
			return floorOf(args[0])
		}})

	ip.register(&Builtin{Name: "round", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantReal(tok, "round", -1, args[0])
			return roundOf(args[0])
		}})

	ip.register(&Builtin{Name: "current-seconds", Lower: 0, Upper: 0,
		Impl: func(_ *Interpreter, _ Token, _ []Value) Value {
			return Int(time.Now().Unix())
		}})

	ip.register(&Builtin{Name: "even?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantInteger(tok, "even?", -1, args[0])
			return Bool(args[0].Data.(*big.Int).Bit(0) == 0)
		}})

	ip.register(&Builtin{Name: "odd?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantInteger(tok, "odd?", -1, args[0])
			return Bool(args[0].Data.(*big.Int).Bit(0) == 1)
		}})

	ip.register(&Builtin{Name: "exact->inexact", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantNumber(tok, "exact->inexact", -1, args[0])
			return Dec(asFloat(args[0]))
		}})

	ip.register(&Builtin{Name: "exact?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantNumber(tok, "exact?", -1, args[0])
			return Bool(isExact(args[0]))
		}})

	ip.register(&Builtin{Name: "exp", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantNumber(tok, "exp", -1, args[0])
			return Dec(math.Exp(asFloat(args[0])))
		}})

	ip.register(&Builtin{Name: "log", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantNumber(tok, "log", -1, args[0])
			return Dec(math.Log(asFloat(args[0])))
		}})

	ip.register(&Builtin{Name: "gcd", Lower: 0, Upper: -1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			acc := new(big.Int)
			for i, v := range args {
				wantInteger(tok, "gcd", i, v)
				acc.GCD(nil, nil, acc, v.Data.(*big.Int))
			}
			return IntBig(acc)
		}})

	ip.register(&Builtin{Name: "lcm", Lower: 0, Upper: -1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			acc := big.NewInt(1)
			for i, v := range args {
				wantInteger(tok, "lcm", i, v)
				n := v.Data.(*big.Int)
				if n.Sign() == 0 {
					return Int(0)
				}
				g := new(big.Int).GCD(nil, nil, acc, n)
				acc.Mul(acc, n)
				acc.Div(acc, g)
				acc.Abs(acc)
			}
			return IntBig(acc)
		}})

	ip.register(&Builtin{Name: "integer?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, _ Token, args []Value) Value {
			return Bool(isNumber(args[0]) && numIsIntegral(args[0]))
		}})

	ip.register(&Builtin{Name: "max", Lower: 1, Upper: -1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			for i, v := range args {
				wantReal(tok, "max", i, v)
			}
			acc := args[0]
			for _, v := range args[1:] {
				if numCmp(v, acc) > 0 {
					acc = v
				}
			}
			return acc
		}})

	ip.register(&Builtin{Name: "min", Lower: 1, Upper: -1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			for i, v := range args {
				wantReal(tok, "min", i, v)
			}
			acc := args[0]
			for _, v := range args[1:] {
				if numCmp(v, acc) < 0 {
					acc = v
				}
			}
			return acc
		}})

	ip.register(&Builtin{Name: "modulo", Lower: 2, Upper: 2,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantInteger(tok, "modulo", 0, args[0])
			wantInteger(tok, "modulo", 1, args[1])
			n, m := args[0].Data.(*big.Int), args[1].Data.(*big.Int)
			if m.Sign() == 0 {
				failAt(tok, ErrDivisionByZero, "modulo: division by zero")
			}
			// Mod is Euclidean (never negative); shift into the divisor's
			// sign range.
			r := new(big.Int).Mod(n, m)
			if r.Sign() != 0 && m.Sign() < 0 {
				r.Add(r, m)
			}
			return IntBig(r)
		}})

	ip.register(&Builtin{Name: "negative?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantReal(tok, "negative?", -1, args[0])
			return Bool(numCmp(args[0], Int(0)) < 0)
		}})

	ip.register(&Builtin{Name: "positive?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantReal(tok, "positive?", -1, args[0])
			return Bool(numCmp(args[0], Int(0)) > 0)
		}})

	ip.register(&Builtin{Name: "number->string", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantNumber(tok, "number->string", -1, args[0])
			return Str(FormatValue(args[0]))
		}})

	ip.register(&Builtin{Name: "number?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, _ Token, args []Value) Value {
			return Bool(isNumber(args[0]))
		}})

	ip.register(&Builtin{Name: "rational?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, _ Token, args []Value) Value {
			return Bool(isNumber(args[0]) && asRat(args[0]) != nil)
		}})

	ip.register(&Builtin{Name: "real?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, _ Token, args []Value) Value {
			return Bool(isNumber(args[0]))
		}})

	ip.register(&Builtin{Name: "sgn", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantReal(tok, "sgn", -1, args[0])
			switch c := numCmp(args[0], Int(0)); {
			case c > 0:
				return Int(1)
			case c < 0:
				return Int(-1)
			default:
				return Int(0)
			}
		}})

	ip.register(&Builtin{Name: "sqr", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantNumber(tok, "sqr", -1, args[0])
			return numMul(args[0], args[0])
		}})

	ip.register(&Builtin{Name: "sqrt", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantNumber(tok, "sqrt", -1, args[0])
			if numCmp(args[0], Int(0)) < 0 {
				failAt(tok, ErrArgumentType, argTypeMsg("sqrt", "non-negative number", -1, args[0]))
			}
			return Dec(math.Sqrt(asFloat(args[0])))
		}})

	ip.register(&Builtin{Name: "zero?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantNumber(tok, "zero?", -1, args[0])
			return Bool(numIsZero(args[0]))
		}})
}

func registerComparison(ip *Interpreter, name string, holds func(c int) bool) {
	ip.register(&Builtin{Name: name, Lower: 1, Upper: -1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			for i, v := range args {
				wantReal(tok, name, i, v)
			}
			for i := 1; i < len(args); i++ {
				if !holds(numCmp(args[i-1], args[i])) {
					return Bool(false)
				}
			}
			return Bool(true)
		}})
}

// ---- rounding helpers --------------------------------------------------

func floorOf(v Value) Value {
	switch v.Tag {
	case VTInt:
		return v
	case VTRat:
		r := v.Data.(*big.Rat)
		// Div truncates toward negative infinity when the divisor is
		// positive, and a Rat denominator always is.
		return IntBig(new(big.Int).Div(r.Num(), r.Denom()))
	default:
		f := v.Data.(float64)
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return v
		}
		return intFromFloat(math.Floor(f))
	}
}

func ceilingOf(v Value) Value {
	switch v.Tag {
	case VTInt:
		return v
	case VTRat:
		neg := floorOf(numNeg(v))
		return IntBig(new(big.Int).Neg(neg.Data.(*big.Int)))
	default:
		f := v.Data.(float64)
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return v
		}
		return intFromFloat(math.Ceil(f))
	}
}

// roundOf rounds half to even, like the reference language.
func roundOf(v Value) Value {
	switch v.Tag {
	case VTInt:
		return v
	case VTDec:
		f := v.Data.(float64)
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return v
		}
		return intFromFloat(math.RoundToEven(f))
	default:
		fl := floorOf(v)
		fi := fl.Data.(*big.Int)
		frac := numSub(v, fl)
		up := func() Value {
			return IntBig(new(big.Int).Add(fi, big.NewInt(1)))
		}
		switch c := numCmp(frac, Rat(big.NewRat(1, 2))); {
		case c < 0:
			return fl
		case c > 0:
			return up()
		default:
			if fi.Bit(0) == 0 {
				return fl
			}
			return up()
		}
	}
}

// intFromFloat converts a finite, integral float to an exact integer without
// passing through int64.
func intFromFloat(f float64) Value {
	bi, _ := new(big.Float).SetFloat64(f).Int(nil)
	return Value{Tag: VTInt, Data: bi}
}
