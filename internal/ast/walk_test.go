package ast

import (
	"testing"

	"github.com/sable-lang/sable/internal/lexer"
)

func ident(name string) *Ident {
	return NewIdent(name, name, lexer.Span{})
}

func TestWalkVisitsAllIdents(t *testing.T) {
	// (f x (+ y 1)) with a lambda body, wrapped in a unit.
	inner := NewOperatorExpr("+", []Expr{ident("y"), NewNumberLit(lexer.INT, "1", lexer.Span{})}, lexer.Span{})
	app := NewApplication(ident("f"), []Expr{ident("x"), inner}, false, lexer.Span{})
	lam := NewLambda(NewFormals([]*Ident{ident("a")}, ident("rest"), lexer.Span{}), app, lexer.Span{})

	unit := NewUnit(lexer.Span{})
	unit.Forms = []Node{lam}

	var names []string
	Walk(unit, func(n Node) bool {
		if id, ok := n.(*Ident); ok {
			names = append(names, id.Name)
		}
		return true
	})

	want := []string{"a", "rest", "f", "x", "y"}
	if len(names) != len(want) {
		t.Fatalf("visited idents wrong. expected=%v, got=%v", want, names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("visited idents[%d] wrong. expected=%q, got=%q", i, name, names[i])
		}
	}
}

func TestWalkStopsOnFalse(t *testing.T) {
	// if test then (g a) else b: pruning the application must skip g and a.
	app := NewApplication(ident("g"), []Expr{ident("a")}, false, lexer.Span{})
	ifExpr := NewIf(ident("test"), app, ident("b"), lexer.Span{})

	var names []string
	Walk(ifExpr, func(n Node) bool {
		if _, ok := n.(*Application); ok {
			return false
		}
		if id, ok := n.(*Ident); ok {
			names = append(names, id.Name)
		}
		return true
	})

	want := []string{"test", "b"}
	if len(names) != len(want) {
		t.Fatalf("visited idents wrong. expected=%v, got=%v", want, names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("visited idents[%d] wrong. expected=%q, got=%q", i, name, names[i])
		}
	}
}

func TestWalkCoversStructuralForms(t *testing.T) {
	// let loop (n = 0) in a guard over a do block touches the binding,
	// clause, and block walkers.
	body := NewDo([]Node{ident("work")}, ident("n"), lexer.Span{})
	clause := NewCondClause(ClauseApply, ident("flag?"), ident("fix"), lexer.Span{})
	g := NewGuard(ident("e"), []*CondClause{clause}, body, lexer.Span{})
	binding := NewBinding([]*Ident{ident("n")}, nil, NewNumberLit(lexer.INT, "0", lexer.Span{}), lexer.Span{})
	let := NewLet(LetNamed, ident("loop"), []*Binding{binding}, g, lexer.Span{})

	var names []string
	Walk(let, func(n Node) bool {
		if id, ok := n.(*Ident); ok {
			names = append(names, id.Name)
		}
		return true
	})

	want := []string{"loop", "n", "e", "flag?", "fix", "work", "n"}
	if len(names) != len(want) {
		t.Fatalf("visited idents wrong. expected=%v, got=%v", want, names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("visited idents[%d] wrong. expected=%q, got=%q", i, name, names[i])
		}
	}
}
