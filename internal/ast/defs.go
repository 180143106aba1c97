package ast

import "github.com/sable-lang/sable/internal/lexer"

// ValDef represents a val definition; the binding covers the single,
// destructuring, and function-shorthand shapes.
type ValDef struct {
	Binding *Binding
	span    lexer.Span
}

func (n *ValDef) Span() lexer.Span { return n.span }

func NewValDef(binding *Binding, span lexer.Span) *ValDef {
	return &ValDef{Binding: binding, span: span}
}

func (*ValDef) defNode() {}

// RecordDef represents a record-type definition.
type RecordDef struct {
	Name   *Ident
	Fields []*Ident
	span   lexer.Span
}

func (n *RecordDef) Span() lexer.Span { return n.span }

func NewRecordDef(name *Ident, fields []*Ident, span lexer.Span) *RecordDef {
	return &RecordDef{Name: name, Fields: fields, span: span}
}

func (*RecordDef) defNode() {}

// SyntaxRule is one pattern->template rewrite of a macro definition.
type SyntaxRule struct {
	Pattern  Expr
	Template Expr
	span     lexer.Span
}

func (n *SyntaxRule) Span() lexer.Span { return n.span }

func NewSyntaxRule(pattern, template Expr, span lexer.Span) *SyntaxRule {
	return &SyntaxRule{Pattern: pattern, Template: template, span: span}
}

// SyntaxRules is the rules(...) of {...} right-hand side of a syntax
// binding or definition.
type SyntaxRules struct {
	Literals []*Ident
	Rules    []*SyntaxRule
	span     lexer.Span
}

func (n *SyntaxRules) Span() lexer.Span { return n.span }

func NewSyntaxRules(literals []*Ident, rules []*SyntaxRule, span lexer.Span) *SyntaxRules {
	return &SyntaxRules{Literals: literals, Rules: rules, span: span}
}

func (*SyntaxRules) exprNode() {}

// SyntaxDef represents a pattern-rewriting macro definition.
type SyntaxDef struct {
	Name  *Ident
	Rules *SyntaxRules
	span  lexer.Span
}

func (n *SyntaxDef) Span() lexer.Span { return n.span }

func NewSyntaxDef(name *Ident, rules *SyntaxRules, span lexer.Span) *SyntaxDef {
	return &SyntaxDef{Name: name, Rules: rules, span: span}
}

func (*SyntaxDef) defNode() {}

// IncludeDef represents include / include_ci; file composition itself is
// the host loader's concern.
type IncludeDef struct {
	Path string
	CI   bool
	span lexer.Span
}

func (n *IncludeDef) Span() lexer.Span { return n.span }

func NewIncludeDef(path string, ci bool, span lexer.Span) *IncludeDef {
	return &IncludeDef{Path: path, CI: ci, span: span}
}

func (*IncludeDef) defNode() {}

// ImportSet is the recursive import tree: a base library name with
// exposing/hiding/renaming/qualifying modifiers applied outward-in.
type ImportSet interface {
	Node
	importSet()
}

// ImportRef is the base of an import set: a dotted library name
// flattened into a name path.
type ImportRef struct {
	Path []*Ident
	span lexer.Span
}

func (n *ImportRef) Span() lexer.Span { return n.span }

func NewImportRef(path []*Ident, span lexer.Span) *ImportRef {
	return &ImportRef{Path: path, span: span}
}

func (*ImportRef) importSet() {}

// ImportOnly restricts an import set to the named exports (exposing).
type ImportOnly struct {
	Inner ImportSet
	Names []*Ident
	span  lexer.Span
}

func (n *ImportOnly) Span() lexer.Span { return n.span }

func NewImportOnly(inner ImportSet, names []*Ident, span lexer.Span) *ImportOnly {
	return &ImportOnly{Inner: inner, Names: names, span: span}
}

func (*ImportOnly) importSet() {}

// ImportExcept removes the named exports from an import set (hiding).
type ImportExcept struct {
	Inner ImportSet
	Names []*Ident
	span  lexer.Span
}

func (n *ImportExcept) Span() lexer.Span { return n.span }

func NewImportExcept(inner ImportSet, names []*Ident, span lexer.Span) *ImportExcept {
	return &ImportExcept{Inner: inner, Names: names, span: span}
}

func (*ImportExcept) importSet() {}

// RenamePair is one old-as-new pair of a renaming modifier.
type RenamePair struct {
	From *Ident
	To   *Ident
}

// ImportRename renames exports of an import set (renaming).
type ImportRename struct {
	Inner ImportSet
	Pairs []RenamePair
	span  lexer.Span
}

func (n *ImportRename) Span() lexer.Span { return n.span }

func NewImportRename(inner ImportSet, pairs []RenamePair, span lexer.Span) *ImportRename {
	return &ImportRename{Inner: inner, Pairs: pairs, span: span}
}

func (*ImportRename) importSet() {}

// ImportPrefix qualifies all exports of an import set with a prefix
// (qualifying).
type ImportPrefix struct {
	Inner  ImportSet
	Prefix *Ident
	span   lexer.Span
}

func (n *ImportPrefix) Span() lexer.Span { return n.span }

func NewImportPrefix(inner ImportSet, prefix *Ident, span lexer.Span) *ImportPrefix {
	return &ImportPrefix{Inner: inner, Prefix: prefix, span: span}
}

func (*ImportPrefix) importSet() {}

// ImportDef represents an import definition carrying one or more sets.
type ImportDef struct {
	Sets []ImportSet
	span lexer.Span
}

func (n *ImportDef) Span() lexer.Span { return n.span }

func NewImportDef(sets []ImportSet, span lexer.Span) *ImportDef {
	return &ImportDef{Sets: sets, span: span}
}

func (*ImportDef) defNode() {}

// LibraryDef wraps a nested definition sequence under a named,
// export-declaring scope.
type LibraryDef struct {
	Name    []*Ident
	Exports []*Ident
	Body    []Def
	span    lexer.Span
}

func (n *LibraryDef) Span() lexer.Span { return n.span }

func NewLibraryDef(name []*Ident, exports []*Ident, body []Def, span lexer.Span) *LibraryDef {
	return &LibraryDef{Name: name, Exports: exports, Body: body, span: span}
}

func (*LibraryDef) defNode() {}
