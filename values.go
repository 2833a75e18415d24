package racket

import (
	"math"
	"math/big"
)

// ValueTag enumerates all runtime kinds a Value may hold.
type ValueTag int

const (
	VTNone       ValueTag = iota // zero Value; never reaches user code
	VTInt                        // *big.Int
	VTRat                        // *big.Rat, never with denominator 1
	VTDec                        // float64
	VTBool                       // bool
	VTStr                        // string
	VTSym                        // string (symbol name, without the quote)
	VTList                       // []Value
	VTProc                       // *Proc
	VTStruct                     // *StructInstance
	VTStructType                 // *StructType
)

// Value is the universal runtime carrier. The tag determines which Go type
// Data holds (see ValueTag).
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Primitive constructors. Integers are arbitrary precision; Int is the
// convenience form for small constants and IntBig adopts a computed value.
func Int(n int64) Value { return Value{Tag: VTInt, Data: big.NewInt(n)} }
func IntBig(n *big.Int) Value {
	return Value{Tag: VTInt, Data: new(big.Int).Set(n)}
}
func Dec(f float64) Value { return Value{Tag: VTDec, Data: f} }
func Bool(b bool) Value   { return Value{Tag: VTBool, Data: b} }
func Str(s string) Value  { return Value{Tag: VTStr, Data: s} }
func Sym(s string) Value  { return Value{Tag: VTSym, Data: s} }
func List(xs []Value) Value {
	if xs == nil {
		xs = []Value{}
	}
	return Value{Tag: VTList, Data: xs}
}

// Rat builds an exact number from a rational. A rational whose denominator
// reduces to 1 is an integer.
func Rat(r *big.Rat) Value {
	if r.IsInt() {
		return IntBig(r.Num())
	}
	return Value{Tag: VTRat, Data: new(big.Rat).Set(r)}
}

// Empty is the canonical empty list value.
func Empty() Value { return List(nil) }

// StructType is the definition produced by define-struct. It is installed in
// the environment under the structure's own name; referencing it as a value
// is an error caught by the evaluator.
type StructType struct {
	Name   string
	Fields []string
}

// StructInstance is a constructed structure value.
type StructInstance struct {
	Type   *StructType
	Values []Value
}

// Builtin is a natively implemented procedure. Upper < 0 means no upper
// arity bound. Impl receives already-evaluated arguments.
type Builtin struct {
	Name  string
	Lower int
	Upper int
	Impl  func(ip *Interpreter, tok Token, args []Value) Value
}

// Proc is a callable value: either a builtin or a user closure holding its
// defining environment.
type Proc struct {
	Name    string
	Builtin *Builtin

	Params []string
	Body   Expr
	Env    *Env
}

// ProcVal wraps a *Proc into a Value.
func ProcVal(p *Proc) Value { return Value{Tag: VTProc, Data: p} }

// BuiltinVal wraps a Builtin into a procedure Value.
func BuiltinVal(b *Builtin) Value {
	return ProcVal(&Proc{Name: b.Name, Builtin: b})
}

// ----- numeric tower -----

func isNumber(v Value) bool {
	return v.Tag == VTInt || v.Tag == VTRat || v.Tag == VTDec
}

func isExact(v Value) bool {
	return v.Tag == VTInt || v.Tag == VTRat
}

// asRat converts any number to an exact rational. Decimals convert by their
// exact binary value; non-finite decimals yield nil.
func asRat(v Value) *big.Rat {
	switch v.Tag {
	case VTInt:
		return new(big.Rat).SetInt(v.Data.(*big.Int))
	case VTRat:
		return v.Data.(*big.Rat)
	default:
		return new(big.Rat).SetFloat64(v.Data.(float64))
	}
}

func asFloat(v Value) float64 {
	switch v.Tag {
	case VTInt:
		f, _ := new(big.Float).SetInt(v.Data.(*big.Int)).Float64()
		return f
	case VTRat:
		f, _ := v.Data.(*big.Rat).Float64()
		return f
	default:
		return v.Data.(float64)
	}
}

// numAdd and friends implement the coercion order: if either operand is a
// decimal the result is a decimal, otherwise the exact result reduces to an
// integer when possible.
func numAdd(a, b Value) Value {
	if a.Tag == VTDec || b.Tag == VTDec {
		return Dec(asFloat(a) + asFloat(b))
	}
	return Rat(new(big.Rat).Add(asRat(a), asRat(b)))
}

func numSub(a, b Value) Value {
	if a.Tag == VTDec || b.Tag == VTDec {
		return Dec(asFloat(a) - asFloat(b))
	}
	return Rat(new(big.Rat).Sub(asRat(a), asRat(b)))
}

func numMul(a, b Value) Value {
	if a.Tag == VTDec || b.Tag == VTDec {
		return Dec(asFloat(a) * asFloat(b))
	}
	return Rat(new(big.Rat).Mul(asRat(a), asRat(b)))
}

// numDiv assumes the caller has rejected a zero divisor.
func numDiv(a, b Value) Value {
	if a.Tag == VTDec || b.Tag == VTDec {
		return Dec(asFloat(a) / asFloat(b))
	}
	return Rat(new(big.Rat).Quo(asRat(a), asRat(b)))
}

func numNeg(a Value) Value {
	if a.Tag == VTDec {
		return Dec(-a.Data.(float64))
	}
	return Rat(new(big.Rat).Neg(asRat(a)))
}

// numCmp compares two numbers exactly, across representations. Non-finite
// decimals fall back to float ordering.
func numCmp(a, b Value) int {
	ra, rb := asRat(a), asRat(b)
	if ra == nil || rb == nil {
		fa, fb := asFloat(a), asFloat(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return ra.Cmp(rb)
}

func numIsZero(v Value) bool {
	return isNumber(v) && numCmp(v, Int(0)) == 0
}

func numIsIntegral(v Value) bool {
	switch v.Tag {
	case VTInt:
		return true
	case VTRat:
		return false
	case VTDec:
		f := v.Data.(float64)
		return !math.IsInf(f, 0) && !math.IsNaN(f) && math.Trunc(f) == f
	}
	return false
}

// ----- structural equality -----

// valueEqual is the equality used by check-expect and member: numbers by
// exact numeric value, compound data elementwise, procedures never equal.
func valueEqual(a, b Value) bool {
	if isNumber(a) && isNumber(b) {
		return numCmp(a, b) == 0
	}
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTStr, VTSym:
		return a.Data.(string) == b.Data.(string)
	case VTList:
		xs, ys := a.Data.([]Value), b.Data.([]Value)
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !valueEqual(xs[i], ys[i]) {
				return false
			}
		}
		return true
	case VTStruct:
		sa, sb := a.Data.(*StructInstance), b.Data.(*StructInstance)
		if sa.Type != sb.Type {
			return false
		}
		for i := range sa.Values {
			if !valueEqual(sa.Values[i], sb.Values[i]) {
				return false
			}
		}
		return true
	case VTStructType:
		return a.Data.(*StructType) == b.Data.(*StructType)
	default:
		return false
	}
}

// valueKindName names a value's kind the way diagnostics refer to it.
func valueKindName(v Value) string {
	switch v.Tag {
	case VTInt, VTRat, VTDec:
		return "number"
	case VTBool:
		return "boolean"
	case VTStr:
		return "string"
	case VTSym:
		return "symbol"
	case VTList:
		return "list"
	case VTProc:
		return "function"
	case VTStruct:
		return "structure"
	case VTStructType:
		return "structure type"
	default:
		return "nothing"
	}
}
