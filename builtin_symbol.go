package racket

func registerSymbolBuiltins(ip *Interpreter) {
	ip.register(&Builtin{Name: "symbol->string", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantSymbol(tok, "symbol->string", -1, args[0])
			return Str(args[0].Data.(string))
		}})

	ip.register(&Builtin{Name: "symbol?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, _ Token, args []Value) Value {
			return Bool(args[0].Tag == VTSym)
		}})

	ip.register(&Builtin{Name: "symbol=?", Lower: 1, Upper: -1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			for i, v := range args {
				wantSymbol(tok, "symbol=?", i, v)
			}
			for _, v := range args[1:] {
				if v.Data.(string) != args[0].Data.(string) {
					return Bool(false)
				}
			}
			return Bool(true)
		}})
}
