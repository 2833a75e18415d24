package racket

// register installs a builtin into the core frame.
func (ip *Interpreter) register(b *Builtin) {
	ip.core.Define(b.Name, BuiltinVal(b))
}

// Argument contracts shared by the builtin files. idx is 0-based; pass a
// negative idx for single-argument procedures, which omit the "as nth
// argument" phrase.

func wantNumber(tok Token, name string, idx int, v Value) {
	if !isNumber(v) {
		failAt(tok, ErrArgumentType, argTypeMsg(name, "number", idx, v))
	}
}

func wantReal(tok Token, name string, idx int, v Value) {
	if !isNumber(v) {
		failAt(tok, ErrArgumentType, argTypeMsg(name, "real", idx, v))
	}
}

func wantInteger(tok Token, name string, idx int, v Value) {
	if v.Tag != VTInt {
		failAt(tok, ErrArgumentType, argTypeMsg(name, "integer", idx, v))
	}
}

func wantBoolean(tok Token, name string, idx int, v Value) {
	if v.Tag != VTBool {
		failAt(tok, ErrArgumentType, argTypeMsg(name, "boolean", idx, v))
	}
}

func wantString(tok Token, name string, idx int, v Value) {
	if v.Tag != VTStr {
		failAt(tok, ErrArgumentType, argTypeMsg(name, "string", idx, v))
	}
}

func wantSymbol(tok Token, name string, idx int, v Value) {
	if v.Tag != VTSym {
		failAt(tok, ErrArgumentType, argTypeMsg(name, "symbol", idx, v))
	}
}

func wantList(tok Token, name string, idx int, v Value) {
	if v.Tag != VTList {
		failAt(tok, ErrArgumentType, argTypeMsg(name, "list", idx, v))
	}
}
