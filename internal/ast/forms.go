package ast

import "github.com/sable-lang/sable/internal/lexer"

// Formals represents a function parameter list: either a single bare
// identifier or a parenthesized list with an optional @rest marker.
type Formals struct {
	Params []*Ident
	Rest   *Ident
	span   lexer.Span
}

func (n *Formals) Span() lexer.Span { return n.span }

func NewFormals(params []*Ident, rest *Ident, span lexer.Span) *Formals {
	return &Formals{Params: params, Rest: rest, span: span}
}

// Lambda represents a single-clause anonymous function.
type Lambda struct {
	Formals *Formals
	Body    Expr
	span    lexer.Span
}

func (n *Lambda) Span() lexer.Span { return n.span }

func NewLambda(formals *Formals, body Expr, span lexer.Span) *Lambda {
	return &Lambda{Formals: formals, Body: body, span: span}
}

func (*Lambda) exprNode() {}

// FnClause is one formals->body clause of a case-dispatch function.
type FnClause struct {
	Formals *Formals
	Body    Expr
	span    lexer.Span
}

func (n *FnClause) Span() lexer.Span { return n.span }

func NewFnClause(formals *Formals, body Expr, span lexer.Span) *FnClause {
	return &FnClause{Formals: formals, Body: body, span: span}
}

// CaseLambda represents fn of {formals->exp | ...}.
type CaseLambda struct {
	Clauses []*FnClause
	span    lexer.Span
}

func (n *CaseLambda) Span() lexer.Span { return n.span }

func NewCaseLambda(clauses []*FnClause, span lexer.Span) *CaseLambda {
	return &CaseLambda{Clauses: clauses, span: span}
}

func (*CaseLambda) exprNode() {}

// If represents the two-arm conditional; Else may be nil.
type If struct {
	Test Expr
	Then Expr
	Else Expr
	span lexer.Span
}

func (n *If) Span() lexer.Span { return n.span }

func NewIf(test, then, els Expr, span lexer.Span) *If {
	return &If{Test: test, Then: then, Else: els, span: span}
}

func (*If) exprNode() {}

// ClauseKind distinguishes the clause body conventions shared by cond,
// case, and guard.
type ClauseKind int

const (
	ClausePlain     ClauseKind = iota // test -> body
	ClauseTestValue                   // test -> .        (yield the test's value)
	ClauseApply                       // test -> . f      (apply f to the test's value)
	ClauseElse                        // body             (no arrow; last clause only)
	ClauseElseApply                   // -> . f           (apply f to the subject; last clause only)
)

// CondClause is one clause of cond or guard. Test is nil for the else
// forms; Body holds the receiver expression for the apply forms.
type CondClause struct {
	Kind ClauseKind
	Test Expr
	Body Expr
	span lexer.Span
}

func (n *CondClause) Span() lexer.Span { return n.span }

func NewCondClause(kind ClauseKind, test, body Expr, span lexer.Span) *CondClause {
	return &CondClause{Kind: kind, Test: test, Body: body, span: span}
}

// Cond represents the first-matching-guard multiway conditional.
type Cond struct {
	Clauses []*CondClause
	span    lexer.Span
}

func (n *Cond) Span() lexer.Span { return n.span }

func NewCond(clauses []*CondClause, span lexer.Span) *Cond {
	return &Cond{Clauses: clauses, span: span}
}

func (*Cond) exprNode() {}

// CaseClause is one clause of case: comma-separated literal pattern
// alternatives dispatched by equality on the evaluated subject. Lits is
// nil for the else forms.
type CaseClause struct {
	Kind ClauseKind // ClausePlain, ClauseElse, or ClauseElseApply
	Lits []Expr
	Body Expr
	span lexer.Span
}

func (n *CaseClause) Span() lexer.Span { return n.span }

func NewCaseClause(kind ClauseKind, lits []Expr, body Expr, span lexer.Span) *CaseClause {
	return &CaseClause{Kind: kind, Lits: lits, Body: body, span: span}
}

// Case represents dispatch by literal equality on the evaluated subject.
type Case struct {
	Subject Expr
	Clauses []*CaseClause
	span    lexer.Span
}

func (n *Case) Span() lexer.Span { return n.span }

func NewCase(subject Expr, clauses []*CaseClause, span lexer.Span) *Case {
	return &Case{Subject: subject, Clauses: clauses, span: span}
}

func (*Case) exprNode() {}

// Do represents a sequential block. Body holds definitions and command
// expressions in source order; Tail is the block's value expression.
type Do struct {
	Body []Node
	Tail Expr
	span lexer.Span
}

func (n *Do) Span() lexer.Span { return n.span }

func NewDo(body []Node, tail Expr, span lexer.Span) *Do {
	return &Do{Body: body, Tail: tail, span: span}
}

func (*Do) exprNode() {}

// HasDefs reports whether the block contains definitions and therefore
// forms a binding scope.
func (n *Do) HasDefs() bool {
	for _, item := range n.Body {
		if _, ok := item.(Def); ok {
			return true
		}
	}
	return false
}

// LetKind selects the binding form of a Let expression.
type LetKind int

const (
	LetPlain LetKind = iota
	LetRec
	LetSyntax
	LetRecSyntax
	LetParam
	LetNamed
)

// Binding is one binding of a let form or a val definition: a plain
// name, a multi-value destructuring of several names, or the function
// shorthand with a formals list.
type Binding struct {
	Names   []*Ident
	Formals *Formals // non-nil for the function shorthand
	Value   Expr
	span    lexer.Span
}

func (n *Binding) Span() lexer.Span { return n.span }

func NewBinding(names []*Ident, formals *Formals, value Expr, span lexer.Span) *Binding {
	return &Binding{Names: names, Formals: formals, Value: value, span: span}
}

// Let represents the let family: scoped value or macro bindings, the
// parameterize form, and the named loop entry point.
type Let struct {
	Kind     LetKind
	Name     *Ident // named let only
	Bindings []*Binding
	Body     Expr
	span     lexer.Span
}

func (n *Let) Span() lexer.Span { return n.span }

func NewLet(kind LetKind, name *Ident, bindings []*Binding, body Expr, span lexer.Span) *Let {
	return &Let{Kind: kind, Name: name, Bindings: bindings, Body: body, span: span}
}

func (*Let) exprNode() {}

// ForBinding is one stepped binding of a for loop; Step may be nil.
type ForBinding struct {
	Name *Ident
	Init Expr
	Step Expr
	span lexer.Span
}

func (n *ForBinding) Span() lexer.Span { return n.span }

func NewForBinding(name *Ident, init, step Expr, span lexer.Span) *ForBinding {
	return &ForBinding{Name: name, Init: init, Step: step, span: span}
}

// For represents iteration with per-step state, an exit test, and a
// final-value expression.
type For struct {
	Bindings []*ForBinding
	Until    Expr
	Result   Expr // may be nil
	Body     *Do
	span     lexer.Span
}

func (n *For) Span() lexer.Span { return n.span }

func NewFor(bindings []*ForBinding, until, result Expr, body *Do, span lexer.Span) *For {
	return &For{Bindings: bindings, Until: until, Result: result, Body: body, span: span}
}

func (*For) exprNode() {}

// Guard represents exception interception: clauses dispatch on the
// caught condition bound to Var while Body runs guarded.
type Guard struct {
	Var     *Ident
	Clauses []*CondClause
	Body    *Do
	span    lexer.Span
}

func (n *Guard) Span() lexer.Span { return n.span }

func NewGuard(v *Ident, clauses []*CondClause, body *Do, span lexer.Span) *Guard {
	return &Guard{Var: v, Clauses: clauses, Body: body, span: span}
}

func (*Guard) exprNode() {}
