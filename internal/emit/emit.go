package emit

import (
	"github.com/sable-lang/sable/internal/ast"
	"github.com/sable-lang/sable/internal/diag"
	"github.com/sable-lang/sable/internal/lexer"
	"github.com/sable-lang/sable/internal/sexpr"
)

type Option func(*Emitter)

// WithSpliceApply selects the apply-of-constructor desugaring for
// spliced list constructors. When disabled, [a, b, @rest] becomes
// (append (list a b) rest) instead of (apply list a b rest).
func WithSpliceApply(enabled bool) Option {
	return func(e *Emitter) {
		e.spliceApply = enabled
	}
}

// WithReraiseUnmatched controls what a guard without a final else-apply
// clause does with an unmatched condition: re-raise it (default) or
// reject the guard, forcing the author to write the clause.
func WithReraiseUnmatched(enabled bool) Option {
	return func(e *Emitter) {
		e.reraiseUnmatched = enabled
	}
}

// Emitter walks a parsed unit bottom-up and produces the canonical
// symbolic forms. It performs no parsing; everything structural was
// settled before it runs.
type Emitter struct {
	spliceApply      bool
	reraiseUnmatched bool

	errors []diag.Diagnostic
}

func New(opts ...Option) *Emitter {
	e := &Emitter{
		spliceApply:      true,
		reraiseUnmatched: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Errors returns the diagnostics accumulated during emission.
func (e *Emitter) Errors() []diag.Diagnostic {
	return e.errors
}

func (e *Emitter) errorf(code diag.Code, span lexer.Span, msg string) {
	e.errors = append(e.errors, diag.Diagnostic{
		Stage:    diag.StageEmit,
		Severity: diag.SeverityError,
		Code:     code,
		Message:  msg,
		Span: diag.Span{
			Filename: span.Filename,
			Line:     span.Line,
			Column:   span.Column,
			Start:    span.Start,
			End:      span.End,
		},
	})
}

// EmitUnit emits one canonical form per top-level definition or
// expression.
func (e *Emitter) EmitUnit(unit *ast.Unit) []sexpr.Datum {
	out := make([]sexpr.Datum, 0, len(unit.Forms))
	for _, form := range unit.Forms {
		out = append(out, e.emitNode(form))
	}
	return out
}

func (e *Emitter) emitNode(node ast.Node) sexpr.Datum {
	if def, ok := node.(ast.Def); ok {
		return e.emitDef(def)
	}
	if expr, ok := node.(ast.Expr); ok {
		return e.emitExpr(expr)
	}
	e.errorf(diag.CodeEmitUnsupported, node.Span(), "unsupported form")
	return sexpr.NewList()
}

var operatorSymbols = map[string]sexpr.Symbol{
	"@":   "append",
	":":   "cons",
	"==":  "equal?",
	"=":   "=",
	"<":   "<",
	"<=":  "<=",
	">":   ">",
	">=":  ">=",
	"+":   "+",
	"-":   "-",
	"*":   "*",
	"/":   "/",
	"quo": "quotient",
	"rem": "remainder",
	"div": "div",
	"mod": "mod",
	"not": "not",
	"and": "and",
	"or":  "or",
}

func (e *Emitter) emitExpr(expr ast.Expr) sexpr.Datum {
	switch n := expr.(type) {
	case *ast.Ident:
		return sexpr.Symbol(n.Name)

	case *ast.SymConst:
		return sexpr.NewList(sexpr.Symbol("quote"), sexpr.Symbol(n.Name))

	case *ast.NumberLit:
		return sexpr.Num(n.Lexeme)

	case *ast.StringLit:
		return sexpr.Str(n.Value)

	case *ast.CharLit:
		return sexpr.Char(n.Value)

	case *ast.EscapedDatum:
		if d, ok := n.Datum.(sexpr.Datum); ok {
			return d
		}
		e.errorf(diag.CodeEmitForeignDatum, n.Span(),
			"escape delegate produced a value outside the datum model")
		return sexpr.NewList()

	case *ast.OperatorExpr:
		return e.emitOperator(n)

	case *ast.Splice:
		// the parser confines splices to item positions
		e.errorf(diag.CodeEmitUnsupported, n.Span(), "stray splice marker")
		return sexpr.NewList()

	case *ast.Application:
		return e.emitCall(e.emitExpr(n.Callee), n.Args, n.HasSplice)

	case *ast.ValuesExpr:
		return e.emitCall(sexpr.Symbol("values"), n.Exprs, n.HasSplice)

	case *ast.ListCtor:
		if n.HasSplice && !e.spliceApply {
			return e.appendSegments(n.Items)
		}
		return e.emitCall(sexpr.Symbol("list"), n.Items, n.HasSplice)

	case *ast.VectorCtor:
		return e.emitCall(sexpr.Symbol("vector"), n.Items, n.HasSplice)

	case *ast.Lambda:
		items := []sexpr.Datum{sexpr.Symbol("lambda"), e.emitFormals(n.Formals)}
		return sexpr.NewList(append(items, e.bodyForms(n.Body)...)...)

	case *ast.CaseLambda:
		items := []sexpr.Datum{sexpr.Symbol("case-lambda")}
		for _, c := range n.Clauses {
			clause := append([]sexpr.Datum{e.emitFormals(c.Formals)}, e.bodyForms(c.Body)...)
			items = append(items, sexpr.NewList(clause...))
		}
		return sexpr.NewList(items...)

	case *ast.If:
		if n.Else == nil {
			return sexpr.NewList(sexpr.Symbol("if"), e.emitExpr(n.Test), e.emitExpr(n.Then))
		}
		return sexpr.NewList(sexpr.Symbol("if"),
			e.emitExpr(n.Test), e.emitExpr(n.Then), e.emitExpr(n.Else))

	case *ast.Cond:
		items := []sexpr.Datum{sexpr.Symbol("cond")}
		for _, c := range n.Clauses {
			items = append(items, e.emitCondClause(c, ""))
		}
		return sexpr.NewList(items...)

	case *ast.Case:
		return e.emitCase(n)

	case *ast.Do:
		return e.emitDo(n)

	case *ast.Let:
		return e.emitLet(n)

	case *ast.For:
		return e.emitFor(n)

	case *ast.Guard:
		return e.emitGuard(n)

	case *ast.SyntaxRules:
		return e.emitSyntaxRules(n)
	}

	e.errorf(diag.CodeEmitUnsupported, expr.Span(), "unsupported expression")
	return sexpr.NewList()
}

func (e *Emitter) emitOperator(n *ast.OperatorExpr) sexpr.Datum {
	sym, ok := operatorSymbols[n.Op]
	if !ok {
		e.errorf(diag.CodeEmitUnsupported, n.Span(), "unknown operator '"+n.Op+"'")
		return sexpr.NewList()
	}

	items := []sexpr.Datum{sym}
	for _, operand := range n.Operands {
		items = append(items, e.emitExpr(operand))
	}
	return sexpr.NewList(items...)
}

// emitCall emits a call of head over items. Without a splice this is a
// plain form; with one, (apply head a b rest) when the single splice is
// last, and (apply head (append ...)) otherwise.
func (e *Emitter) emitCall(head sexpr.Datum, items []ast.Expr, hasSplice bool) sexpr.Datum {
	if !hasSplice {
		out := []sexpr.Datum{head}
		for _, it := range items {
			out = append(out, e.emitExpr(it))
		}
		return sexpr.NewList(out...)
	}

	if leading, trailing, simple := e.spliceParts(items); simple {
		out := append([]sexpr.Datum{sexpr.Symbol("apply"), head}, leading...)
		out = append(out, trailing)
		return sexpr.NewList(out...)
	}

	return sexpr.NewList(sexpr.Symbol("apply"), head, e.appendSegments(items))
}

// spliceParts recognizes the common shape of exactly one splice in the
// final position.
func (e *Emitter) spliceParts(items []ast.Expr) ([]sexpr.Datum, sexpr.Datum, bool) {
	var leading []sexpr.Datum
	for i, it := range items {
		sp, ok := it.(*ast.Splice)
		if !ok {
			leading = append(leading, e.emitExpr(it))
			continue
		}
		if i != len(items)-1 {
			return nil, nil, false
		}
		return leading, e.emitExpr(sp.Expr), true
	}
	return nil, nil, false
}

// appendSegments turns an item sequence with splices into an append of
// (list ...) runs and spliced expressions.
func (e *Emitter) appendSegments(items []ast.Expr) sexpr.Datum {
	var segs []sexpr.Datum
	var run []sexpr.Datum

	flush := func() {
		if len(run) == 0 {
			return
		}
		segs = append(segs, sexpr.NewList(append([]sexpr.Datum{sexpr.Symbol("list")}, run...)...))
		run = nil
	}

	for _, it := range items {
		if sp, ok := it.(*ast.Splice); ok {
			flush()
			segs = append(segs, e.emitExpr(sp.Expr))
			continue
		}
		run = append(run, e.emitExpr(it))
	}
	flush()

	if len(segs) == 1 {
		return segs[0]
	}
	return sexpr.NewList(append([]sexpr.Datum{sexpr.Symbol("append")}, segs...)...)
}

// emitFormals produces the lambda parameter datum: a proper list, an
// improper list with a rest tail, or a bare symbol binding the whole
// argument list.
func (e *Emitter) emitFormals(f *ast.Formals) sexpr.Datum {
	if len(f.Params) == 0 && f.Rest != nil {
		return sexpr.Symbol(f.Rest.Name)
	}

	items := make([]sexpr.Datum, 0, len(f.Params))
	for _, p := range f.Params {
		items = append(items, sexpr.Symbol(p.Name))
	}
	list := &sexpr.List{Items: items}
	if f.Rest != nil {
		list.Tail = sexpr.Symbol(f.Rest.Name)
	}
	return list
}

// bodyForms flattens a do-block body into the enclosing binding form so
// internal definitions land directly in the body; any other expression
// is a single form.
func (e *Emitter) bodyForms(body ast.Expr) []sexpr.Datum {
	d, ok := body.(*ast.Do)
	if !ok {
		return []sexpr.Datum{e.emitExpr(body)}
	}

	out := make([]sexpr.Datum, 0, len(d.Body)+1)
	for _, form := range d.Body {
		out = append(out, e.emitNode(form))
	}
	return append(out, e.emitExpr(d.Tail))
}

// emitCondClause emits one cond or guard clause. subject names the
// guard's condition variable; for cond it is empty and the else-apply
// kind cannot occur.
func (e *Emitter) emitCondClause(c *ast.CondClause, subject string) sexpr.Datum {
	switch c.Kind {
	case ast.ClausePlain:
		return sexpr.NewList(e.emitExpr(c.Test), e.emitExpr(c.Body))
	case ast.ClauseTestValue:
		return sexpr.NewList(e.emitExpr(c.Test))
	case ast.ClauseApply:
		return sexpr.NewList(e.emitExpr(c.Test), sexpr.Symbol("=>"), e.emitExpr(c.Body))
	case ast.ClauseElse:
		return sexpr.NewList(sexpr.Symbol("else"), e.emitExpr(c.Body))
	case ast.ClauseElseApply:
		return sexpr.NewList(sexpr.Symbol("else"),
			sexpr.NewList(e.emitExpr(c.Body), sexpr.Symbol(subject)))
	}
	e.errorf(diag.CodeEmitUnsupported, c.Span(), "unsupported clause")
	return sexpr.NewList()
}

func (e *Emitter) emitCase(n *ast.Case) sexpr.Datum {
	items := []sexpr.Datum{sexpr.Symbol("case"), e.emitExpr(n.Subject)}

	for _, c := range n.Clauses {
		switch c.Kind {
		case ast.ClausePlain:
			lits := make([]sexpr.Datum, 0, len(c.Lits))
			for _, lit := range c.Lits {
				lits = append(lits, e.emitCaseLit(lit))
			}
			items = append(items, sexpr.NewList(sexpr.NewList(lits...), e.emitExpr(c.Body)))
		case ast.ClauseElse:
			items = append(items, sexpr.NewList(sexpr.Symbol("else"), e.emitExpr(c.Body)))
		case ast.ClauseElseApply:
			items = append(items, sexpr.NewList(sexpr.Symbol("else"),
				sexpr.Symbol("=>"), e.emitExpr(c.Body)))
		default:
			e.errorf(diag.CodeEmitUnsupported, c.Span(), "unsupported case clause")
		}
	}

	return sexpr.NewList(items...)
}

// emitCaseLit emits a case pattern literal; a symbolic constant here is
// the plain symbol, not a quoted one.
func (e *Emitter) emitCaseLit(lit ast.Expr) sexpr.Datum {
	if sc, ok := lit.(*ast.SymConst); ok {
		return sexpr.Symbol(sc.Name)
	}
	return e.emitExpr(lit)
}

// emitDo emits a plain sequencing form, or a binding scope when the
// block contains definitions.
func (e *Emitter) emitDo(n *ast.Do) sexpr.Datum {
	if n.HasDefs() {
		items := []sexpr.Datum{sexpr.Symbol("let"), sexpr.NewList()}
		for _, form := range n.Body {
			items = append(items, e.emitNode(form))
		}
		items = append(items, e.emitExpr(n.Tail))
		return sexpr.NewList(items...)
	}

	if len(n.Body) == 0 {
		return e.emitExpr(n.Tail)
	}

	items := []sexpr.Datum{sexpr.Symbol("begin")}
	for _, form := range n.Body {
		items = append(items, e.emitNode(form))
	}
	items = append(items, e.emitExpr(n.Tail))
	return sexpr.NewList(items...)
}

// bindingValue emits a binding's right-hand side, wrapping the function
// shorthand in a lambda.
func (e *Emitter) bindingValue(b *ast.Binding) sexpr.Datum {
	if b.Formals == nil {
		return e.emitExpr(b.Value)
	}
	items := []sexpr.Datum{sexpr.Symbol("lambda"), e.emitFormals(b.Formals)}
	return sexpr.NewList(append(items, e.bodyForms(b.Value)...)...)
}

func hasMultiBinding(bindings []*ast.Binding) bool {
	for _, b := range bindings {
		if len(b.Names) > 1 {
			return true
		}
	}
	return false
}

func (e *Emitter) emitLet(n *ast.Let) sexpr.Datum {
	body := e.bodyForms(n.Body)

	switch n.Kind {
	case ast.LetPlain, ast.LetRec:
		head := sexpr.Symbol("let")
		if n.Kind == ast.LetRec {
			head = "letrec"
		}

		if hasMultiBinding(n.Bindings) {
			if n.Kind == ast.LetRec {
				e.errorf(diag.CodeEmitUnsupported, n.Span(),
					"letrec cannot destructure multiple values")
				return sexpr.NewList()
			}
			items := []sexpr.Datum{sexpr.Symbol("let-values"), e.emitValuesBindings(n.Bindings)}
			return sexpr.NewList(append(items, body...)...)
		}

		items := []sexpr.Datum{head, e.emitPlainBindings(n.Bindings)}
		return sexpr.NewList(append(items, body...)...)

	case ast.LetSyntax, ast.LetRecSyntax:
		head := sexpr.Symbol("let-syntax")
		if n.Kind == ast.LetRecSyntax {
			head = "letrec-syntax"
		}
		if hasMultiBinding(n.Bindings) {
			e.errorf(diag.CodeEmitUnsupported, n.Span(),
				"syntax bindings cannot destructure multiple values")
			return sexpr.NewList()
		}
		items := []sexpr.Datum{head, e.emitPlainBindings(n.Bindings)}
		return sexpr.NewList(append(items, body...)...)

	case ast.LetParam:
		if hasMultiBinding(n.Bindings) {
			e.errorf(diag.CodeEmitUnsupported, n.Span(),
				"parameterize cannot destructure multiple values")
			return sexpr.NewList()
		}
		items := []sexpr.Datum{sexpr.Symbol("parameterize"), e.emitPlainBindings(n.Bindings)}
		return sexpr.NewList(append(items, body...)...)

	case ast.LetNamed:
		if hasMultiBinding(n.Bindings) {
			e.errorf(diag.CodeEmitUnsupported, n.Span(),
				"named let cannot destructure multiple values")
			return sexpr.NewList()
		}
		items := []sexpr.Datum{sexpr.Symbol("let"), sexpr.Symbol(n.Name.Name),
			e.emitPlainBindings(n.Bindings)}
		return sexpr.NewList(append(items, body...)...)
	}

	e.errorf(diag.CodeEmitUnsupported, n.Span(), "unsupported let form")
	return sexpr.NewList()
}

func (e *Emitter) emitPlainBindings(bindings []*ast.Binding) sexpr.Datum {
	items := make([]sexpr.Datum, 0, len(bindings))
	for _, b := range bindings {
		items = append(items, sexpr.NewList(sexpr.Symbol(b.Names[0].Name), e.bindingValue(b)))
	}
	return sexpr.NewList(items...)
}

func (e *Emitter) emitValuesBindings(bindings []*ast.Binding) sexpr.Datum {
	items := make([]sexpr.Datum, 0, len(bindings))
	for _, b := range bindings {
		names := make([]sexpr.Datum, 0, len(b.Names))
		for _, name := range b.Names {
			names = append(names, sexpr.Symbol(name.Name))
		}
		items = append(items, sexpr.NewList(sexpr.NewList(names...), e.bindingValue(b)))
	}
	return sexpr.NewList(items...)
}

func (e *Emitter) emitFor(n *ast.For) sexpr.Datum {
	bindings := make([]sexpr.Datum, 0, len(n.Bindings))
	for _, b := range n.Bindings {
		items := []sexpr.Datum{sexpr.Symbol(b.Name.Name), e.emitExpr(b.Init)}
		if b.Step != nil {
			items = append(items, e.emitExpr(b.Step))
		}
		bindings = append(bindings, sexpr.NewList(items...))
	}

	exit := []sexpr.Datum{e.emitExpr(n.Until)}
	if n.Result != nil {
		exit = append(exit, e.emitExpr(n.Result))
	}

	items := []sexpr.Datum{sexpr.Symbol("do"),
		sexpr.NewList(bindings...), sexpr.NewList(exit...)}

	if n.Body.HasDefs() {
		items = append(items, e.emitDo(n.Body))
	} else {
		items = append(items, e.bodyForms(n.Body)...)
	}
	return sexpr.NewList(items...)
}

func (e *Emitter) emitGuard(n *ast.Guard) sexpr.Datum {
	spec := []sexpr.Datum{sexpr.Symbol(n.Var.Name)}
	hasElse := false
	for _, c := range n.Clauses {
		if c.Kind == ast.ClauseElseApply {
			hasElse = true
		}
		spec = append(spec, e.emitCondClause(c, n.Var.Name))
	}

	if !hasElse {
		if !e.reraiseUnmatched {
			e.errorf(diag.CodeEmitMissingElse, n.Span(),
				"guard requires a final '-> .' clause for unmatched conditions")
			return sexpr.NewList()
		}
		spec = append(spec, sexpr.NewList(sexpr.Symbol("else"),
			sexpr.NewList(sexpr.Symbol("raise-continuable"), sexpr.Symbol(n.Var.Name))))
	}

	items := []sexpr.Datum{sexpr.Symbol("guard"), sexpr.NewList(spec...)}
	return sexpr.NewList(append(items, e.bodyForms(n.Body)...)...)
}

func (e *Emitter) emitSyntaxRules(n *ast.SyntaxRules) sexpr.Datum {
	lits := make([]sexpr.Datum, 0, len(n.Literals))
	for _, lit := range n.Literals {
		lits = append(lits, sexpr.Symbol(lit.Name))
	}

	items := []sexpr.Datum{sexpr.Symbol("syntax-rules"), sexpr.NewList(lits...)}
	for _, r := range n.Rules {
		items = append(items, sexpr.NewList(e.emitExpr(r.Pattern), e.emitExpr(r.Template)))
	}
	return sexpr.NewList(items...)
}

func (e *Emitter) emitDef(def ast.Def) sexpr.Datum {
	switch n := def.(type) {
	case *ast.ValDef:
		return e.emitValDef(n)

	case *ast.RecordDef:
		return e.emitRecordDef(n)

	case *ast.SyntaxDef:
		return sexpr.NewList(sexpr.Symbol("define-syntax"),
			sexpr.Symbol(n.Name.Name), e.emitSyntaxRules(n.Rules))

	case *ast.IncludeDef:
		head := sexpr.Symbol("include")
		if n.CI {
			head = "include-ci"
		}
		return sexpr.NewList(head, sexpr.Str(n.Path))

	case *ast.ImportDef:
		items := []sexpr.Datum{sexpr.Symbol("import")}
		for _, set := range n.Sets {
			items = append(items, e.emitImportSet(set))
		}
		return sexpr.NewList(items...)

	case *ast.LibraryDef:
		name := make([]sexpr.Datum, 0, len(n.Name))
		for _, part := range n.Name {
			name = append(name, sexpr.Symbol(part.Name))
		}
		items := []sexpr.Datum{sexpr.Symbol("define-library"), sexpr.NewList(name...)}
		if len(n.Exports) > 0 {
			exports := []sexpr.Datum{sexpr.Symbol("export")}
			for _, x := range n.Exports {
				exports = append(exports, sexpr.Symbol(x.Name))
			}
			items = append(items, sexpr.NewList(exports...))
		}
		for _, d := range n.Body {
			items = append(items, e.emitDef(d))
		}
		return sexpr.NewList(items...)
	}

	e.errorf(diag.CodeEmitUnsupported, def.Span(), "unsupported definition")
	return sexpr.NewList()
}

func (e *Emitter) emitValDef(n *ast.ValDef) sexpr.Datum {
	b := n.Binding

	if b.Formals != nil {
		// function shorthand: the formals fold into the define head
		head := []sexpr.Datum{sexpr.Symbol(b.Names[0].Name)}
		for _, p := range b.Formals.Params {
			head = append(head, sexpr.Symbol(p.Name))
		}
		headList := &sexpr.List{Items: head}
		if b.Formals.Rest != nil {
			headList.Tail = sexpr.Symbol(b.Formals.Rest.Name)
		}
		items := []sexpr.Datum{sexpr.Symbol("define"), headList}
		return sexpr.NewList(append(items, e.bodyForms(b.Value)...)...)
	}

	if len(b.Names) > 1 {
		names := make([]sexpr.Datum, 0, len(b.Names))
		for _, name := range b.Names {
			names = append(names, sexpr.Symbol(name.Name))
		}
		return sexpr.NewList(sexpr.Symbol("define-values"),
			sexpr.NewList(names...), e.emitExpr(b.Value))
	}

	return sexpr.NewList(sexpr.Symbol("define"),
		sexpr.Symbol(b.Names[0].Name), e.emitExpr(b.Value))
}

func (e *Emitter) emitRecordDef(n *ast.RecordDef) sexpr.Datum {
	name := n.Name.Name

	ctor := []sexpr.Datum{sexpr.Symbol("make-" + name)}
	for _, f := range n.Fields {
		ctor = append(ctor, sexpr.Symbol(f.Name))
	}

	items := []sexpr.Datum{
		sexpr.Symbol("define-record-type"),
		sexpr.Symbol(name),
		sexpr.NewList(ctor...),
		sexpr.Symbol(name + "?"),
	}
	for _, f := range n.Fields {
		items = append(items, sexpr.NewList(sexpr.Symbol(f.Name),
			sexpr.Symbol(name+"-"+f.Name)))
	}
	return sexpr.NewList(items...)
}

func (e *Emitter) emitImportSet(set ast.ImportSet) sexpr.Datum {
	switch n := set.(type) {
	case *ast.ImportRef:
		parts := make([]sexpr.Datum, 0, len(n.Path))
		for _, part := range n.Path {
			parts = append(parts, sexpr.Symbol(part.Name))
		}
		return sexpr.NewList(parts...)

	case *ast.ImportOnly:
		items := []sexpr.Datum{sexpr.Symbol("only"), e.emitImportSet(n.Inner)}
		for _, name := range n.Names {
			items = append(items, sexpr.Symbol(name.Name))
		}
		return sexpr.NewList(items...)

	case *ast.ImportExcept:
		items := []sexpr.Datum{sexpr.Symbol("except"), e.emitImportSet(n.Inner)}
		for _, name := range n.Names {
			items = append(items, sexpr.Symbol(name.Name))
		}
		return sexpr.NewList(items...)

	case *ast.ImportRename:
		items := []sexpr.Datum{sexpr.Symbol("rename"), e.emitImportSet(n.Inner)}
		for _, pair := range n.Pairs {
			items = append(items, sexpr.NewList(sexpr.Symbol(pair.From.Name),
				sexpr.Symbol(pair.To.Name)))
		}
		return sexpr.NewList(items...)

	case *ast.ImportPrefix:
		return sexpr.NewList(sexpr.Symbol("prefix"),
			e.emitImportSet(n.Inner), sexpr.Symbol(n.Prefix.Name))
	}

	e.errorf(diag.CodeEmitUnsupported, set.Span(), "unsupported import set")
	return sexpr.NewList()
}
