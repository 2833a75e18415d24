package racket

func registerBooleanBuiltins(ip *Interpreter) {
	ip.register(&Builtin{Name: "not", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantBoolean(tok, "not", -1, args[0])
			return Bool(!args[0].Data.(bool))
		}})

	ip.register(&Builtin{Name: "boolean->string", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantBoolean(tok, "boolean->string", -1, args[0])
			if args[0].Data.(bool) {
				return Str("#t")
			}
			return Str("#f")
		}})

	ip.register(&Builtin{Name: "boolean?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, _ Token, args []Value) Value {
			return Bool(args[0].Tag == VTBool)
		}})

	ip.register(&Builtin{Name: "boolean=?", Lower: 1, Upper: -1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			for i, v := range args {
				wantBoolean(tok, "boolean=?", i, v)
			}
			for _, v := range args[1:] {
				if v.Data.(bool) != args[0].Data.(bool) {
					return Bool(false)
				}
			}
			return Bool(true)
		}})

	ip.register(&Builtin{Name: "false?", Lower: 1, Upper: 1,
		Impl: func(_ *Interpreter, tok Token, args []Value) Value {
			wantBoolean(tok, "false?", -1, args[0])
			return Bool(!args[0].Data.(bool))
		}})
}
