package parser

import (
	"github.com/sable-lang/sable/internal/ast"
	"github.com/sable-lang/sable/internal/diag"
	"github.com/sable-lang/sable/internal/lexer"
)

// parseBlock parses a brace-delimited sequence of definitions and
// expressions separated by semicolons. curTok must sit on the opening
// brace; on success it is left on the closing brace. The final entry is
// the block's value and must be an expression.
func (p *Parser) parseBlock() *ast.Do {
	start := p.curTok.Span
	var body []ast.Node

	for p.peekTok.Type != lexer.RBRACE {
		if p.peekTok.Type == lexer.SEMICOLON {
			p.nextToken()
			continue
		}
		if p.peekTok.Type == lexer.EOF {
			p.reportError("unexpected end of input in block", p.peekTok.Span)
			return nil
		}

		p.nextToken()

		var form ast.Node
		if isDefStart(p.curTok.Type) {
			if def := p.parseDef(); def != nil {
				form = def
			}
		} else if expr := p.parseExpr(); expr != nil {
			form = expr
		}
		if form == nil {
			return nil
		}
		body = append(body, form)

		if p.peekTok.Type != lexer.SEMICOLON && p.peekTok.Type != lexer.RBRACE {
			p.reportError("expected ';' or '}'", p.peekTok.Span)
			return nil
		}
	}
	p.nextToken() // closing brace

	if len(body) == 0 {
		p.reportWith(diag.CodeParseEmptyBlock,
			"block requires at least one expression", mergeSpan(start, p.curTok.Span))
		return nil
	}

	tail, ok := body[len(body)-1].(ast.Expr)
	if !ok {
		p.reportError("block must end with an expression", body[len(body)-1].Span())
		return nil
	}

	return ast.NewDo(body[:len(body)-1], tail, mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseDoExpr() ast.Expr {
	start := p.curTok.Span

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	block := p.parseBlock()
	if block == nil {
		return nil
	}

	return ast.NewDo(block.Body, block.Tail, mergeSpan(start, p.curTok.Span))
}

// parseFormals parses a parameter list: a single bare identifier binds
// the whole argument list, a parenthesized list binds positionally with
// an optional @rest tail.
func (p *Parser) parseFormals() *ast.Formals {
	if p.curTok.Type == lexer.IDENT {
		name := ast.NewIdent(p.curTok.Value, p.curTok.Raw, p.curTok.Span)
		return ast.NewFormals(nil, name, p.curTok.Span)
	}

	if p.curTok.Type != lexer.LPAREN {
		p.reportError("expected parameter list", p.curTok.Span)
		return nil
	}
	start := p.curTok.Span
	p.nextToken()

	var params []*ast.Ident
	var rest *ast.Ident
	seen := make(map[string]bool)

	for p.curTok.Type != lexer.RPAREN {
		isRest := false
		if p.curTok.Type == lexer.AT {
			isRest = true
			p.nextToken()
		}

		name := p.parseName()
		if name == nil {
			return nil
		}
		if rest != nil {
			p.reportWith(diag.CodeParseBadFormals,
				"rest parameter must be last", name.Span())
			return nil
		}
		if seen[name.Name] {
			p.reportWith(diag.CodeParseBadFormals,
				"duplicate parameter '"+name.Raw+"'", name.Span())
			return nil
		}
		seen[name.Name] = true

		if isRest {
			rest = name
		} else {
			params = append(params, name)
		}

		switch p.peekTok.Type {
		case lexer.COMMA:
			p.nextToken()
			p.nextToken()
			if p.curTok.Type == lexer.RPAREN {
				p.reportError("expected parameter", p.curTok.Span)
				return nil
			}
		case lexer.RPAREN:
			p.nextToken()
		default:
			p.reportError("expected ',' or ')'", p.peekTok.Span)
			return nil
		}
	}

	return ast.NewFormals(params, rest, mergeSpan(start, p.curTok.Span))
}

// expectArrow consumes '->' or reports the dedicated missing-arrow
// error.
func (p *Parser) expectArrow(what string) bool {
	if p.peekTok.Type == lexer.ARROW {
		p.nextToken()
		return true
	}
	p.reportWith(diag.CodeParseMissingArrow, "expected '->' after "+what, p.peekTok.Span)
	return false
}

func (p *Parser) parseFnExpr() ast.Expr {
	start := p.curTok.Span

	if p.peekTok.Type == lexer.OF {
		p.nextToken() // of
		if !p.expect(lexer.LBRACE) {
			return nil
		}
		p.nextToken()
		if p.curTok.Type == lexer.RBRACE {
			p.reportWith(diag.CodeParseEmptyBlock,
				"fn of requires at least one clause", p.curTok.Span)
			return nil
		}

		clauses, ok := parseDelimited(p, delimitedConfig{
			Closing:             lexer.RBRACE,
			Separator:           lexer.BAR,
			MissingElementMsg:   "expected clause",
			MissingSeparatorMsg: "expected '|' or '}'",
		}, func(idx int) (*ast.FnClause, bool) {
			cstart := p.curTok.Span
			formals := p.parseFormals()
			if formals == nil {
				return nil, false
			}
			if !p.expectArrow("parameters") {
				return nil, false
			}
			p.nextToken()
			body := p.parseExpr()
			if body == nil {
				return nil, false
			}
			return ast.NewFnClause(formals, body, mergeSpan(cstart, body.Span())), true
		})
		if !ok {
			return nil
		}

		return ast.NewCaseLambda(clauses, mergeSpan(start, p.curTok.Span))
	}

	p.nextToken()
	formals := p.parseFormals()
	if formals == nil {
		return nil
	}
	if !p.expectArrow("parameters") {
		return nil
	}
	p.nextToken()
	body := p.parseExpr()
	if body == nil {
		return nil
	}

	return ast.NewLambda(formals, body, mergeSpan(start, body.Span()))
}

func (p *Parser) parseIfExpr() ast.Expr {
	start := p.curTok.Span

	p.nextToken()
	test := p.parseExpr()
	if test == nil {
		return nil
	}

	if !p.expect(lexer.THEN) {
		return nil
	}
	p.nextToken()
	then := p.parseExpr()
	if then == nil {
		return nil
	}

	span := mergeSpan(start, then.Span())

	var els ast.Expr
	if p.peekTok.Type == lexer.ELSE {
		p.nextToken()
		p.nextToken()
		els = p.parseExpr()
		if els == nil {
			return nil
		}
		span = mergeSpan(start, els.Span())
	}

	return ast.NewIf(test, then, els, span)
}

// parseCondClause parses one clause of cond or guard. Placement of the
// else forms is validated by the caller, which knows which kinds its
// construct admits.
func (p *Parser) parseCondClause() (*ast.CondClause, bool) {
	start := p.curTok.Span

	if p.curTok.Type == lexer.ARROW {
		// -> . f  applies f to the subject when nothing matched
		if !p.expect(lexer.DOT) {
			return nil, false
		}
		p.nextToken()
		recv := p.parseExpr()
		if recv == nil {
			return nil, false
		}
		return ast.NewCondClause(ast.ClauseElseApply, nil, recv,
			mergeSpan(start, recv.Span())), true
	}

	test := p.parseExpr()
	if test == nil {
		return nil, false
	}

	if p.peekTok.Type != lexer.ARROW {
		// no arrow: the whole clause is the else body
		return ast.NewCondClause(ast.ClauseElse, nil, test,
			mergeSpan(start, test.Span())), true
	}
	p.nextToken() // arrow

	if p.peekTok.Type == lexer.DOT {
		p.nextToken() // dot
		if p.peekTok.Type == lexer.BAR || p.peekTok.Type == lexer.RBRACE {
			// test -> .  yields the test's own value
			return ast.NewCondClause(ast.ClauseTestValue, test, nil,
				mergeSpan(start, p.curTok.Span)), true
		}
		p.nextToken()
		recv := p.parseExpr()
		if recv == nil {
			return nil, false
		}
		return ast.NewCondClause(ast.ClauseApply, test, recv,
			mergeSpan(start, recv.Span())), true
	}

	p.nextToken()
	body := p.parseExpr()
	if body == nil {
		return nil, false
	}
	return ast.NewCondClause(ast.ClausePlain, test, body,
		mergeSpan(start, body.Span())), true
}

// parseCondClauses parses a bar-separated clause sequence. curTok must
// sit on the opening brace; on success it is left on the closing brace.
func (p *Parser) parseCondClauses() ([]*ast.CondClause, bool) {
	p.nextToken()
	if p.curTok.Type == lexer.RBRACE {
		p.reportWith(diag.CodeParseEmptyBlock,
			"at least one clause is required", p.curTok.Span)
		return nil, false
	}

	return parseDelimited(p, delimitedConfig{
		Closing:             lexer.RBRACE,
		Separator:           lexer.BAR,
		MissingElementMsg:   "expected clause",
		MissingSeparatorMsg: "expected '|' or '}'",
	}, func(idx int) (*ast.CondClause, bool) {
		return p.parseCondClause()
	})
}

func (p *Parser) checkCondClauses(clauses []*ast.CondClause, allowElse, allowElseApply bool) bool {
	for i, c := range clauses {
		last := i == len(clauses)-1
		switch c.Kind {
		case ast.ClauseElse:
			if !allowElse {
				p.reportWith(diag.CodeParseMisplacedClause,
					"clause without '->' is not allowed here", c.Span())
				return false
			}
			if !last {
				p.reportWith(diag.CodeParseMisplacedClause,
					"else clause must be the last clause", c.Span())
				return false
			}
		case ast.ClauseElseApply:
			if !allowElseApply {
				p.reportWith(diag.CodeParseMisplacedClause,
					"'-> .' clause without a test is not allowed here", c.Span())
				return false
			}
			if !last {
				p.reportWith(diag.CodeParseMisplacedClause,
					"'-> .' clause must be the last clause", c.Span())
				return false
			}
		}
	}
	return true
}

func (p *Parser) parseCondExpr() ast.Expr {
	start := p.curTok.Span

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	clauses, ok := p.parseCondClauses()
	if !ok {
		return nil
	}
	if !p.checkCondClauses(clauses, true, false) {
		return nil
	}

	return ast.NewCond(clauses, mergeSpan(start, p.curTok.Span))
}

// checkCaseLit restricts case pattern alternatives to literals; a
// symbolic constant here matches the plain symbol rather than a quoted
// one.
func (p *Parser) checkCaseLit(lit ast.Expr) bool {
	switch lit.(type) {
	case *ast.NumberLit, *ast.StringLit, *ast.CharLit, *ast.SymConst, *ast.EscapedDatum:
		return true
	}
	p.reportError("case pattern must be a literal", lit.Span())
	return false
}

func (p *Parser) parseCaseClause() (*ast.CaseClause, bool) {
	start := p.curTok.Span

	if p.curTok.Type == lexer.ARROW {
		if !p.expect(lexer.DOT) {
			return nil, false
		}
		p.nextToken()
		recv := p.parseExpr()
		if recv == nil {
			return nil, false
		}
		return ast.NewCaseClause(ast.ClauseElseApply, nil, recv,
			mergeSpan(start, recv.Span())), true
	}

	first := p.parseExpr()
	if first == nil {
		return nil, false
	}

	if p.peekTok.Type != lexer.COMMA && p.peekTok.Type != lexer.ARROW {
		// no pattern list and no arrow: else body
		return ast.NewCaseClause(ast.ClauseElse, nil, first,
			mergeSpan(start, first.Span())), true
	}

	if !p.checkCaseLit(first) {
		return nil, false
	}
	lits := []ast.Expr{first}

	for p.peekTok.Type == lexer.COMMA {
		p.nextToken()
		p.nextToken()
		lit := p.parseExpr()
		if lit == nil {
			return nil, false
		}
		if !p.checkCaseLit(lit) {
			return nil, false
		}
		lits = append(lits, lit)
	}

	if !p.expectArrow("case patterns") {
		return nil, false
	}
	p.nextToken()
	body := p.parseExpr()
	if body == nil {
		return nil, false
	}

	return ast.NewCaseClause(ast.ClausePlain, lits, body,
		mergeSpan(start, body.Span())), true
}

func (p *Parser) parseCaseExpr() ast.Expr {
	start := p.curTok.Span

	p.nextToken()
	subject := p.parseExpr()
	if subject == nil {
		return nil
	}

	if !p.expect(lexer.OF) {
		return nil
	}
	if !p.expect(lexer.LBRACE) {
		return nil
	}

	p.nextToken()
	if p.curTok.Type == lexer.RBRACE {
		p.reportWith(diag.CodeParseEmptyBlock,
			"at least one clause is required", p.curTok.Span)
		return nil
	}

	clauses, ok := parseDelimited(p, delimitedConfig{
		Closing:             lexer.RBRACE,
		Separator:           lexer.BAR,
		MissingElementMsg:   "expected clause",
		MissingSeparatorMsg: "expected '|' or '}'",
	}, func(idx int) (*ast.CaseClause, bool) {
		return p.parseCaseClause()
	})
	if !ok {
		return nil
	}

	for i, c := range clauses {
		last := i == len(clauses)-1
		if (c.Kind == ast.ClauseElse || c.Kind == ast.ClauseElseApply) && !last {
			p.reportWith(diag.CodeParseMisplacedClause,
				"else clause must be the last clause", c.Span())
			return nil
		}
	}

	return ast.NewCase(subject, clauses, mergeSpan(start, p.curTok.Span))
}

// parseBinding parses one binding: a plain name, a parenthesized
// multi-value destructuring, or the function shorthand with a formals
// list. curTok must sit on the binding's first token.
func (p *Parser) parseBinding() *ast.Binding {
	start := p.curTok.Span
	var names []*ast.Ident
	var formals *ast.Formals

	if p.curTok.Type == lexer.LPAREN {
		p.nextToken()
		items, ok := parseDelimited(p, delimitedConfig{
			Closing:           lexer.RPAREN,
			MissingElementMsg: "expected name",
		}, func(idx int) (*ast.Ident, bool) {
			n := p.parseName()
			return n, n != nil
		})
		if !ok {
			return nil
		}
		names = items
	} else {
		n := p.parseName()
		if n == nil {
			return nil
		}
		names = []*ast.Ident{n}

		if p.peekTok.Type == lexer.LPAREN {
			p.nextToken()
			formals = p.parseFormals()
			if formals == nil {
				return nil
			}
		}
	}

	if !p.expect(lexer.ASSIGN) {
		return nil
	}
	p.nextToken()
	value := p.parseExpr()
	if value == nil {
		return nil
	}

	return ast.NewBinding(names, formals, value, mergeSpan(start, value.Span()))
}

func (p *Parser) parseLetExpr() ast.Expr {
	start := p.curTok.Span
	isRec := p.curTok.Type == lexer.LETREC

	var kind ast.LetKind
	var name *ast.Ident

	switch p.peekTok.Type {
	case lexer.VAL:
		kind = ast.LetPlain
		if isRec {
			kind = ast.LetRec
		}
		p.nextToken()
	case lexer.SYNTAX:
		kind = ast.LetSyntax
		if isRec {
			kind = ast.LetRecSyntax
		}
		p.nextToken()
	case lexer.PARAM:
		if isRec {
			p.reportError("'letrec param' is not a binding form", p.peekTok.Span)
			return nil
		}
		kind = ast.LetParam
		p.nextToken()
	case lexer.IDENT:
		if isRec {
			p.reportError("expected 'val' or 'syntax' after 'letrec'", p.peekTok.Span)
			return nil
		}
		kind = ast.LetNamed
		p.nextToken()
		name = ast.NewIdent(p.curTok.Value, p.curTok.Raw, p.curTok.Span)
	default:
		p.reportError("expected 'val', 'syntax', 'param', or a loop name after 'let'",
			p.peekTok.Span)
		return nil
	}

	var bindings []*ast.Binding
	if kind == ast.LetNamed {
		if !p.expect(lexer.LPAREN) {
			return nil
		}
		p.nextToken()
		items, ok := parseDelimited(p, delimitedConfig{
			Closing:           lexer.RPAREN,
			AllowEmpty:        true,
			MissingElementMsg: "expected binding",
		}, func(idx int) (*ast.Binding, bool) {
			b := p.parseBinding()
			return b, b != nil
		})
		if !ok {
			return nil
		}
		bindings = items
	} else {
		p.nextToken()
		for {
			b := p.parseBinding()
			if b == nil {
				return nil
			}
			if kind == ast.LetSyntax || kind == ast.LetRecSyntax {
				if _, ok := b.Value.(*ast.SyntaxRules); !ok {
					p.reportError("syntax binding requires a rules(...) of {...} value",
						b.Value.Span())
					return nil
				}
			}
			bindings = append(bindings, b)
			if p.peekTok.Type != lexer.COMMA {
				break
			}
			p.nextToken()
			p.nextToken()
		}
	}

	if !p.expect(lexer.IN) {
		return nil
	}
	p.nextToken()
	body := p.parseExpr()
	if body == nil {
		return nil
	}

	return ast.NewLet(kind, name, bindings, body, mergeSpan(start, body.Span()))
}

func (p *Parser) parseForExpr() ast.Expr {
	start := p.curTok.Span
	p.nextToken()

	var bindings []*ast.ForBinding
	for {
		bstart := p.curTok.Span
		name := p.parseName()
		if name == nil {
			return nil
		}
		if !p.expect(lexer.ASSIGN) {
			return nil
		}
		p.nextToken()
		init := p.parseExpr()
		if init == nil {
			return nil
		}

		span := mergeSpan(bstart, init.Span())
		var step ast.Expr
		if p.peekTok.Type == lexer.THEN {
			p.nextToken()
			p.nextToken()
			step = p.parseExpr()
			if step == nil {
				return nil
			}
			span = mergeSpan(bstart, step.Span())
		}

		bindings = append(bindings, ast.NewForBinding(name, init, step, span))

		if p.peekTok.Type != lexer.COMMA {
			break
		}
		p.nextToken()
		p.nextToken()
	}

	if !p.expect(lexer.UNTIL) {
		return nil
	}
	p.nextToken()
	test := p.parseExpr()
	if test == nil {
		return nil
	}

	var result ast.Expr
	if p.peekTok.Type == lexer.ARROW {
		p.nextToken()
		p.nextToken()
		result = p.parseExpr()
		if result == nil {
			return nil
		}
	}

	if !p.expect(lexer.DO) {
		return nil
	}
	if !p.expect(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return ast.NewFor(bindings, test, result, body, mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseGuardExpr() ast.Expr {
	start := p.curTok.Span

	p.nextToken()
	v := p.parseName()
	if v == nil {
		return nil
	}

	if !p.expect(lexer.OF) {
		return nil
	}
	if !p.expect(lexer.LBRACE) {
		return nil
	}

	clauses, ok := p.parseCondClauses()
	if !ok {
		return nil
	}
	if !p.checkCondClauses(clauses, false, true) {
		return nil
	}

	if !p.expect(lexer.DO) {
		return nil
	}
	if !p.expect(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return ast.NewGuard(v, clauses, body, mergeSpan(start, p.curTok.Span))
}

// parseSyntaxRules parses rules(lits) of {pattern -> template | ...},
// the right-hand side of a syntax binding or definition.
func (p *Parser) parseSyntaxRules() ast.Expr {
	start := p.curTok.Span

	if !p.expect(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	literals, ok := parseDelimited(p, delimitedConfig{
		Closing:           lexer.RPAREN,
		AllowEmpty:        true,
		MissingElementMsg: "expected literal name",
	}, func(idx int) (*ast.Ident, bool) {
		n := p.parseName()
		return n, n != nil
	})
	if !ok {
		return nil
	}

	if !p.expect(lexer.OF) {
		return nil
	}
	if !p.expect(lexer.LBRACE) {
		return nil
	}
	p.nextToken()
	if p.curTok.Type == lexer.RBRACE {
		p.reportWith(diag.CodeParseEmptyBlock,
			"at least one rewrite rule is required", p.curTok.Span)
		return nil
	}

	rules, ok := parseDelimited(p, delimitedConfig{
		Closing:             lexer.RBRACE,
		Separator:           lexer.BAR,
		MissingElementMsg:   "expected rewrite rule",
		MissingSeparatorMsg: "expected '|' or '}'",
	}, func(idx int) (*ast.SyntaxRule, bool) {
		rstart := p.curTok.Span
		pattern := p.parseExpr()
		if pattern == nil {
			return nil, false
		}
		if !p.expectArrow("rule pattern") {
			return nil, false
		}
		p.nextToken()
		template := p.parseExpr()
		if template == nil {
			return nil, false
		}
		return ast.NewSyntaxRule(pattern, template, mergeSpan(rstart, template.Span())), true
	})
	if !ok {
		return nil
	}

	return ast.NewSyntaxRules(literals, rules, mergeSpan(start, p.curTok.Span))
}
