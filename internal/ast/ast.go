package ast

import "github.com/sable-lang/sable/internal/lexer"

// Node represents any AST node with an associated source span.
type Node interface {
	Span() lexer.Span
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Def represents a definition form (val, record, syntax, include,
// import, library).
type Def interface {
	Node
	defNode()
}

// Unit represents a parsed translation unit: a sequence of definitions
// and expressions.
type Unit struct {
	Forms []Node
	span  lexer.Span
}

// Span returns the span covering the entire unit.
func (u *Unit) Span() lexer.Span { return u.span }

// NewUnit constructs a unit node with the provided span.
func NewUnit(span lexer.Span) *Unit {
	return &Unit{span: span}
}

// SetSpan updates the unit span.
func (u *Unit) SetSpan(span lexer.Span) {
	u.span = span
}

// Ident represents an identifier carrying its canonical (translated)
// spelling; Raw keeps the source spelling.
type Ident struct {
	Name string
	Raw  string
	span lexer.Span
}

func (n *Ident) Span() lexer.Span { return n.span }

// NewIdent constructs an identifier node.
func NewIdent(name, raw string, span lexer.Span) *Ident {
	return &Ident{Name: name, Raw: raw, span: span}
}

func (*Ident) exprNode() {}

// SymConst represents an all-uppercase identifier: a quoted lowercase
// symbol everywhere except as a case pattern literal.
type SymConst struct {
	Name string // lowercased
	span lexer.Span
}

func (n *SymConst) Span() lexer.Span { return n.span }

func NewSymConst(name string, span lexer.Span) *SymConst {
	return &SymConst{Name: name, span: span}
}

func (*SymConst) exprNode() {}

// NumberLit represents any numeric literal; Lexeme is the canonical
// numeral text and Kind the lexical class it was produced with.
type NumberLit struct {
	Kind   lexer.TokenType // INT, FLOAT, RATIONAL, COMPLEX, IMAG, NUM
	Lexeme string
	span   lexer.Span
}

func (n *NumberLit) Span() lexer.Span { return n.span }

func NewNumberLit(kind lexer.TokenType, lexeme string, span lexer.Span) *NumberLit {
	return &NumberLit{Kind: kind, Lexeme: lexeme, span: span}
}

func (*NumberLit) exprNode() {}

// StringLit represents a string literal (decoded value).
type StringLit struct {
	Value string
	span  lexer.Span
}

func (n *StringLit) Span() lexer.Span { return n.span }

func NewStringLit(value string, span lexer.Span) *StringLit {
	return &StringLit{Value: value, span: span}
}

func (*StringLit) exprNode() {}

// CharLit represents a character literal.
type CharLit struct {
	Value rune
	span  lexer.Span
}

func (n *CharLit) Span() lexer.Span { return n.span }

func NewCharLit(value rune, span lexer.Span) *CharLit {
	return &CharLit{Value: value, span: span}
}

func (*CharLit) exprNode() {}

// EscapedDatum is the opaque leaf produced by the escape delegate.
type EscapedDatum struct {
	Datum any
	span  lexer.Span
}

func (n *EscapedDatum) Span() lexer.Span { return n.span }

func NewEscapedDatum(datum any, span lexer.Span) *EscapedDatum {
	return &EscapedDatum{Datum: datum, span: span}
}

func (*EscapedDatum) exprNode() {}

// OperatorExpr represents a unary or binary operator application.
type OperatorExpr struct {
	Op       string // surface operator: @ : or and not == = < <= > >= + - * / quo rem div mod
	Operands []Expr // ordered, arity 1 or 2
	span     lexer.Span
}

func (n *OperatorExpr) Span() lexer.Span { return n.span }

func NewOperatorExpr(op string, operands []Expr, span lexer.Span) *OperatorExpr {
	return &OperatorExpr{Op: op, Operands: operands, span: span}
}

func (*OperatorExpr) exprNode() {}

// Splice marks an argument or constructor item written @expr.
type Splice struct {
	Expr Expr
	span lexer.Span
}

func (n *Splice) Span() lexer.Span { return n.span }

func NewSplice(expr Expr, span lexer.Span) *Splice {
	return &Splice{Expr: expr, span: span}
}

func (*Splice) exprNode() {}

// Application represents callee juxtaposed with a parenthesized
// argument list. HasSplice is set when any argument is a Splice, in
// which case the call desugars to a variadic apply.
type Application struct {
	Callee    Expr
	Args      []Expr
	HasSplice bool
	span      lexer.Span
}

func (n *Application) Span() lexer.Span { return n.span }

func NewApplication(callee Expr, args []Expr, hasSplice bool, span lexer.Span) *Application {
	return &Application{Callee: callee, Args: args, HasSplice: hasSplice, span: span}
}

func (*Application) exprNode() {}

// ValuesExpr represents a bare parenthesized multiple-value tuple.
type ValuesExpr struct {
	Exprs     []Expr
	HasSplice bool
	span      lexer.Span
}

func (n *ValuesExpr) Span() lexer.Span { return n.span }

func NewValuesExpr(exprs []Expr, hasSplice bool, span lexer.Span) *ValuesExpr {
	return &ValuesExpr{Exprs: exprs, HasSplice: hasSplice, span: span}
}

func (*ValuesExpr) exprNode() {}

// ListCtor represents [a, b, ...].
type ListCtor struct {
	Items     []Expr
	HasSplice bool
	span      lexer.Span
}

func (n *ListCtor) Span() lexer.Span { return n.span }

func NewListCtor(items []Expr, hasSplice bool, span lexer.Span) *ListCtor {
	return &ListCtor{Items: items, HasSplice: hasSplice, span: span}
}

func (*ListCtor) exprNode() {}

// VectorCtor represents #[a, b, ...].
type VectorCtor struct {
	Items     []Expr
	HasSplice bool
	span      lexer.Span
}

func (n *VectorCtor) Span() lexer.Span { return n.span }

func NewVectorCtor(items []Expr, hasSplice bool, span lexer.Span) *VectorCtor {
	return &VectorCtor{Items: items, HasSplice: hasSplice, span: span}
}

func (*VectorCtor) exprNode() {}
