package racket

// The node set is closed: the parser produces exactly these types and the
// evaluator switches over them. Every node carries the token that introduced
// it so runtime diagnostics can point back into the source.

// Node is implemented by every AST node.
type Node interface {
	Tok() Token
}

// Expr is a node that evaluates to a value.
type Expr interface {
	Node
	exprNode()
}

// Program is a parsed source file: a flat sequence of top-level statements.
// Statements are definitions, check-expect tests, or plain expressions.
type Program struct {
	Statements []Node
}

// NumberLit is an integer, rational or decimal literal. Num carries the
// already-constructed numeric value.
type NumberLit struct {
	Token Token
	Num   Value
}

// BoolLit is #true or #false.
type BoolLit struct {
	Token Token
	Bool  bool
}

// StrLit is a string literal.
type StrLit struct {
	Token Token
	Str   string
}

// SymLit is a quoted name, e.g. 'red.
type SymLit struct {
	Token Token
	Name  string
}

// ListLit is a quoted list, e.g. '(1 2 3). Elems holds literal datums only;
// '() is a ListLit with no elements.
type ListLit struct {
	Token Token
	Elems []Expr
}

// Ident references a bound name.
type Ident struct {
	Token Token
	Name  string
}

// Call is a procedure application: (op arg ...).
type Call struct {
	Token Token // the open parenthesis
	Op    Expr
	Args  []Expr
}

// CondClause is one [question answer] pair of a cond expression.
type CondClause struct {
	Token    Token // the clause's open parenthesis
	Question Expr
	Answer   Expr
}

// Cond is a cond expression. Else is nil when no else clause is present.
type Cond struct {
	Token   Token
	Clauses []CondClause
	Else    Expr
}

// DefineConst is (define name expr).
type DefineConst struct {
	Token Token
	Name  Token
	Expr  Expr
}

// DefineProc is (define (name param ...) body). Params are pairwise distinct.
type DefineProc struct {
	Token  Token
	Name   Token
	Params []Token
	Body   Expr
}

// DefineStruct is (define-struct name (field ...)). Fields are pairwise
// distinct.
type DefineStruct struct {
	Token  Token
	Name   Token
	Fields []Token
}

// CheckExpect is (check-expect actual expected).
type CheckExpect struct {
	Token    Token
	Actual   Expr
	Expected Expr
}

func (n *NumberLit) Tok() Token    { return n.Token }
func (n *BoolLit) Tok() Token      { return n.Token }
func (n *StrLit) Tok() Token       { return n.Token }
func (n *SymLit) Tok() Token       { return n.Token }
func (n *ListLit) Tok() Token      { return n.Token }
func (n *Ident) Tok() Token        { return n.Token }
func (n *Call) Tok() Token         { return n.Token }
func (n *Cond) Tok() Token         { return n.Token }
func (n *DefineConst) Tok() Token  { return n.Token }
func (n *DefineProc) Tok() Token   { return n.Token }
func (n *DefineStruct) Tok() Token { return n.Token }
func (n *CheckExpect) Tok() Token  { return n.Token }

func (n *NumberLit) exprNode() {}
func (n *BoolLit) exprNode()   {}
func (n *StrLit) exprNode()    {}
func (n *SymLit) exprNode()    {}
func (n *ListLit) exprNode()   {}
func (n *Ident) exprNode()     {}
func (n *Call) exprNode()      {}
func (n *Cond) exprNode()      {}
