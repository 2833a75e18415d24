// interpreter.go — public entry points and the tree-walking evaluator.
//
// A program runs as a flat sequence of top-level statements processed in
// source order against a single global environment whose parent frame holds
// the builtin library. Expression statements contribute their printed value
// to the result, definitions contribute nothing, and check-expect statements
// contribute a test outcome.
//
// Runtime failures are raised internally by panicking with a private signal
// type and recovered at the public boundary, so evaluation code stays free
// of error plumbing. Everything the caller sees is a *RuntimeError (or a
// *LexError / *SyntaxError from the front end).
package racket

import (
	"fmt"
)

// MaxCallDepth caps the number of live procedure calls. Exceeding it raises
// a recursion-limit error instead of exhausting the Go stack.
const MaxCallDepth = 10000

// OutcomeKind distinguishes the two kinds of program output.
type OutcomeKind int

const (
	OutValue OutcomeKind = iota // a top-level expression's printed value
	OutTest                     // a check-expect outcome
)

// Outcome is one entry in a Result, in statement order.
type Outcome struct {
	Kind OutcomeKind
	Text string       // printed value; set when Kind == OutValue
	Test *TestOutcome // set when Kind == OutTest
}

// Result is what running a program produces. When a runtime error stops
// evaluation, Outputs keeps everything produced by the statements that
// completed before the failing one and Err carries the error. Lex and syntax
// errors precede all evaluation, so they yield no outputs.
type Result struct {
	Outputs     []Outcome
	TestsPassed int
	TestsFailed int
	Err         error
}

// Interpret parses and evaluates a complete program in a fresh interpreter.
func Interpret(src string) Result {
	return NewInterpreter().Run(src)
}

// Interpreter evaluates programs against a persistent global environment.
// Successive Run calls accumulate definitions, which is what the REPL needs;
// one-shot callers use Interpret.
type Interpreter struct {
	core   *Env // builtin library and constants
	global *Env // user definitions
	depth  int
}

// NewInterpreter returns an interpreter with the builtin library installed.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{}
	ip.core = NewEnv(nil)
	ip.global = NewEnv(ip.core)
	registerNumericBuiltins(ip)
	registerListBuiltins(ip)
	registerStringBuiltins(ip)
	registerBooleanBuiltins(ip)
	registerSymbolBuiltins(ip)
	ip.core.Define("empty", Empty())
	ip.core.Define("null", Empty())
	return ip
}

// Run parses src and evaluates its statements in source order.
func (ip *Interpreter) Run(src string) (res Result) {
	prog, err := Parse(src)
	if err != nil {
		res.Err = err
		return
	}
	ip.depth = 0
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(rtErr)
			if !ok {
				panic(r)
			}
			res.Err = sig.err
		}
	}()
	for _, stmt := range prog.Statements {
		ip.execStatement(stmt, &res)
	}
	return
}

/* ===========================
   internal error signalling
   =========================== */

type rtErr struct {
	err *RuntimeError
}

func failAt(tok Token, kind ErrKind, msg string) {
	panic(rtErr{&RuntimeError{Line: tok.Line, Col: tok.Col, Kind: kind, Msg: msg}})
}

/* ===========================
   statements
   =========================== */

func (ip *Interpreter) execStatement(stmt Node, res *Result) {
	switch s := stmt.(type) {
	case *DefineConst:
		ip.global.Define(s.Name.Lexeme, ip.eval(s.Expr, ip.global))
	case *DefineProc:
		params := make([]string, len(s.Params))
		for i, tok := range s.Params {
			params[i] = tok.Lexeme
		}
		proc := &Proc{Name: s.Name.Lexeme, Params: params, Body: s.Body, Env: ip.global}
		ip.global.Define(s.Name.Lexeme, ProcVal(proc))
	case *DefineStruct:
		ip.defineStruct(s)
	case *CheckExpect:
		outcome := ip.runCheck(s)
		if outcome.Passed {
			res.TestsPassed++
		} else {
			res.TestsFailed++
		}
		res.Outputs = append(res.Outputs, Outcome{Kind: OutTest, Test: outcome})
	case Expr:
		v := ip.eval(s, ip.global)
		res.Outputs = append(res.Outputs, Outcome{Kind: OutValue, Text: FormatValue(v)})
	}
}

// defineStruct installs the four procedure families a structure definition
// brings into scope: the constructor, the predicate, one selector per field,
// and the structure-type binding itself.
func (ip *Interpreter) defineStruct(s *DefineStruct) {
	fields := make([]string, len(s.Fields))
	for i, tok := range s.Fields {
		fields[i] = tok.Lexeme
	}
	st := &StructType{Name: s.Name.Lexeme, Fields: fields}
	ip.global.Define(st.Name, Value{Tag: VTStructType, Data: st})

	n := len(fields)
	ip.global.Define("make-"+st.Name, BuiltinVal(&Builtin{
		Name: "make-" + st.Name, Lower: n, Upper: n,
		Impl: func(_ *Interpreter, _ Token, args []Value) Value {
			vals := make([]Value, len(args))
			copy(vals, args)
			return Value{Tag: VTStruct, Data: &StructInstance{Type: st, Values: vals}}
		},
	}))
	ip.global.Define(st.Name+"?", BuiltinVal(&Builtin{
		Name: st.Name + "?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, _ Token, args []Value) Value {
			inst, ok := args[0].Data.(*StructInstance)
			return Bool(args[0].Tag == VTStruct && ok && inst.Type == st)
		},
	}))
	for i, field := range fields {
		idx := i
		selName := st.Name + "-" + field
		ip.global.Define(selName, BuiltinVal(&Builtin{
			Name: selName, Lower: 1, Upper: 1,
			Impl: func(_ *Interpreter, tok Token, args []Value) Value {
				inst, ok := args[0].Data.(*StructInstance)
				if args[0].Tag != VTStruct || !ok || inst.Type != st {
					failAt(tok, ErrArgumentType, argTypeMsg(selName, st.Name, -1, args[0]))
				}
				return inst.Values[idx]
			},
		}))
	}
}

func (ip *Interpreter) runCheck(s *CheckExpect) *TestOutcome {
	actual := ip.eval(s.Actual, ip.global)
	expected := ip.eval(s.Expected, ip.global)
	return &TestOutcome{
		Passed:   valueEqual(actual, expected),
		Actual:   FormatValue(actual),
		Expected: FormatValue(expected),
		Line:     s.Token.Line,
		Col:      s.Token.Col,
	}
}

/* ===========================
   expressions
   =========================== */

func (ip *Interpreter) eval(e Expr, env *Env) Value {
	switch n := e.(type) {
	case *NumberLit:
		return n.Num
	case *BoolLit:
		return Bool(n.Bool)
	case *StrLit:
		return Str(n.Str)
	case *SymLit:
		return Sym(n.Name)
	case *ListLit:
		xs := make([]Value, len(n.Elems))
		for i, el := range n.Elems {
			xs[i] = ip.eval(el, env)
		}
		return List(xs)
	case *Ident:
		return ip.lookup(n, env)
	case *Cond:
		return ip.evalCond(n, env)
	case *Call:
		return ip.evalCall(n, env)
	}
	panic(fmt.Sprintf("eval: unhandled node %T", e))
}

func (ip *Interpreter) lookup(n *Ident, env *Env) Value {
	v, ok := env.Get(n.Name)
	if !ok {
		failAt(n.Token, ErrUnboundIdentifier,
			fmt.Sprintf("%s is used here before its definition", n.Name))
	}
	if v.Tag == VTStructType {
		failAt(n.Token, ErrStructureType,
			fmt.Sprintf("%s: structure type; do you mean make-%s", n.Name, n.Name))
	}
	return v
}

func (ip *Interpreter) evalCond(n *Cond, env *Env) Value {
	for _, clause := range n.Clauses {
		q := ip.eval(clause.Question, env)
		if q.Tag != VTBool {
			failAt(clause.Question.Tok(), ErrQuestionResult,
				fmt.Sprintf("cond: question result is not true or false: %s", FormatValue(q)))
		}
		if q.Data.(bool) {
			return ip.eval(clause.Answer, env)
		}
	}
	if n.Else != nil {
		return ip.eval(n.Else, env)
	}
	failAt(n.Token, ErrNoMatchingClause, "cond: all question results were false")
	return Value{}
}

func (ip *Interpreter) evalCall(n *Call, env *Env) Value {
	// if, and, or evaluate lazily and cannot be expressed as builtins that
	// receive evaluated arguments.
	if id, ok := n.Op.(*Ident); ok {
		switch id.Name {
		case "if":
			return ip.evalIf(n, env)
		case "and":
			return ip.evalAndOr(n, env, true)
		case "or":
			return ip.evalAndOr(n, env, false)
		}
	}

	opVal := ip.evalOperator(n, env)
	args := make([]Value, len(n.Args))
	for i, arg := range n.Args {
		args[i] = ip.eval(arg, env)
	}
	return ip.apply(n.Token, opVal.Data.(*Proc), args)
}

func (ip *Interpreter) evalOperator(n *Call, env *Env) Value {
	opVal := ip.eval(n.Op, env)
	if opVal.Tag != VTProc {
		found := "found a " + valueKindName(opVal)
		if opVal.Tag == VTStruct {
			found = "found a " + FormatValue(opVal)
		}
		failAt(n.Op.Tok(), ErrNotAProcedure,
			fmt.Sprintf("function-call: expected a function after the open parenthesis, but %s", found))
	}
	return opVal
}

func (ip *Interpreter) apply(tok Token, proc *Proc, args []Value) Value {
	if b := proc.Builtin; b != nil {
		if len(args) < b.Lower || (b.Upper >= 0 && len(args) > b.Upper) {
			failAt(tok, ErrArity, arityMsg(b.Name, b.Lower, b.Upper, len(args)))
		}
		return b.Impl(ip, tok, args)
	}

	if len(args) != len(proc.Params) {
		n := len(proc.Params)
		failAt(tok, ErrArity, arityMsg(proc.Name, n, n, len(args)))
	}
	ip.depth++
	defer func() { ip.depth-- }()
	if ip.depth > MaxCallDepth {
		failAt(tok, ErrRecursionLimit,
			fmt.Sprintf("%s: maximum recursion depth of %d exceeded", proc.Name, MaxCallDepth))
	}
	frame := NewEnv(proc.Env)
	for i, param := range proc.Params {
		frame.Define(param, args[i])
	}
	return ip.eval(proc.Body, frame)
}

func (ip *Interpreter) evalIf(n *Call, env *Env) Value {
	if len(n.Args) != 3 {
		failAt(n.Token, ErrArity, arityMsg("if", 3, 3, len(n.Args)))
	}
	q := ip.eval(n.Args[0], env)
	if q.Tag != VTBool {
		failAt(n.Args[0].Tok(), ErrArgumentType, argTypeMsg("if", "boolean", 0, q))
	}
	if q.Data.(bool) {
		return ip.eval(n.Args[1], env)
	}
	return ip.eval(n.Args[2], env)
}

// evalAndOr short-circuits: and stops at the first false, or at the first
// true. Every argument it does evaluate must be a boolean.
func (ip *Interpreter) evalAndOr(n *Call, env *Env, isAnd bool) Value {
	name := "or"
	if isAnd {
		name = "and"
	}
	for i, arg := range n.Args {
		v := ip.eval(arg, env)
		if v.Tag != VTBool {
			failAt(arg.Tok(), ErrArgumentType, argTypeMsg(name, "boolean", i, v))
		}
		if v.Data.(bool) != isAnd {
			return v
		}
	}
	return Bool(isAnd)
}
