package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Unit:
		for _, form := range n.Forms {
			Walk(form, fn)
		}

	case *OperatorExpr:
		for _, operand := range n.Operands {
			Walk(operand, fn)
		}

	case *Splice:
		Walk(n.Expr, fn)

	case *Application:
		Walk(n.Callee, fn)
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *ValuesExpr:
		for _, e := range n.Exprs {
			Walk(e, fn)
		}

	case *ListCtor:
		for _, item := range n.Items {
			Walk(item, fn)
		}

	case *VectorCtor:
		for _, item := range n.Items {
			Walk(item, fn)
		}

	case *Lambda:
		walkFormals(n.Formals, fn)
		Walk(n.Body, fn)

	case *CaseLambda:
		for _, clause := range n.Clauses {
			walkFormals(clause.Formals, fn)
			Walk(clause.Body, fn)
		}

	case *If:
		Walk(n.Test, fn)
		Walk(n.Then, fn)
		if n.Else != nil {
			Walk(n.Else, fn)
		}

	case *Cond:
		for _, clause := range n.Clauses {
			walkCondClause(clause, fn)
		}

	case *Case:
		Walk(n.Subject, fn)
		for _, clause := range n.Clauses {
			for _, lit := range clause.Lits {
				Walk(lit, fn)
			}
			if clause.Body != nil {
				Walk(clause.Body, fn)
			}
		}

	case *Do:
		for _, item := range n.Body {
			Walk(item, fn)
		}
		if n.Tail != nil {
			Walk(n.Tail, fn)
		}

	case *Let:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		for _, b := range n.Bindings {
			walkBinding(b, fn)
		}
		Walk(n.Body, fn)

	case *For:
		for _, b := range n.Bindings {
			Walk(b.Name, fn)
			Walk(b.Init, fn)
			if b.Step != nil {
				Walk(b.Step, fn)
			}
		}
		Walk(n.Until, fn)
		if n.Result != nil {
			Walk(n.Result, fn)
		}
		Walk(n.Body, fn)

	case *Guard:
		Walk(n.Var, fn)
		for _, clause := range n.Clauses {
			walkCondClause(clause, fn)
		}
		Walk(n.Body, fn)

	case *ValDef:
		walkBinding(n.Binding, fn)

	case *RecordDef:
		Walk(n.Name, fn)
		for _, f := range n.Fields {
			Walk(f, fn)
		}

	case *SyntaxDef:
		Walk(n.Name, fn)
		Walk(n.Rules, fn)

	case *SyntaxRules:
		for _, lit := range n.Literals {
			Walk(lit, fn)
		}
		for _, r := range n.Rules {
			Walk(r.Pattern, fn)
			Walk(r.Template, fn)
		}

	case *ImportDef:
		for _, set := range n.Sets {
			Walk(set, fn)
		}

	case *ImportRef:
		for _, id := range n.Path {
			Walk(id, fn)
		}

	case *ImportOnly:
		Walk(n.Inner, fn)
		for _, id := range n.Names {
			Walk(id, fn)
		}

	case *ImportExcept:
		Walk(n.Inner, fn)
		for _, id := range n.Names {
			Walk(id, fn)
		}

	case *ImportRename:
		Walk(n.Inner, fn)
		for _, pair := range n.Pairs {
			Walk(pair.From, fn)
			Walk(pair.To, fn)
		}

	case *ImportPrefix:
		Walk(n.Inner, fn)
		Walk(n.Prefix, fn)

	case *LibraryDef:
		for _, id := range n.Name {
			Walk(id, fn)
		}
		for _, id := range n.Exports {
			Walk(id, fn)
		}
		for _, def := range n.Body {
			Walk(def, fn)
		}
	}
}

func walkFormals(f *Formals, fn func(Node) bool) {
	if f == nil {
		return
	}
	for _, p := range f.Params {
		Walk(p, fn)
	}
	if f.Rest != nil {
		Walk(f.Rest, fn)
	}
}

func walkCondClause(c *CondClause, fn func(Node) bool) {
	if c.Test != nil {
		Walk(c.Test, fn)
	}
	if c.Body != nil {
		Walk(c.Body, fn)
	}
}

func walkBinding(b *Binding, fn func(Node) bool) {
	if b == nil {
		return
	}
	for _, name := range b.Names {
		Walk(name, fn)
	}
	walkFormals(b.Formals, fn)
	if b.Value != nil {
		Walk(b.Value, fn)
	}
}
