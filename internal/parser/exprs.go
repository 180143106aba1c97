package parser

import (
	"github.com/sable-lang/sable/internal/ast"
	"github.com/sable-lang/sable/internal/diag"
	"github.com/sable-lang/sable/internal/lexer"
)

func (p *Parser) parseExpr() ast.Expr {
	return p.parseExprPrecedence(precedenceLowest)
}

func (p *Parser) parseExprPrecedence(precedence int) ast.Expr {
	prefix := p.prefixFns[p.curTok.Type]
	if prefix == nil {
		p.reportError("unexpected token in expression '"+p.curTok.Raw+"'", p.curTok.Span)
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekTok.Type]
		if infix == nil {
			break
		}

		p.nextToken()

		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekTok.Type]; ok {
		return prec
	}
	return precedenceLowest
}

func (p *Parser) parseIdentifier() ast.Expr {
	return ast.NewIdent(p.curTok.Value, p.curTok.Raw, p.curTok.Span)
}

func (p *Parser) parseSymConst() ast.Expr {
	return ast.NewSymConst(p.curTok.Value, p.curTok.Span)
}

func (p *Parser) parseNumberLit() ast.Expr {
	return ast.NewNumberLit(p.curTok.Type, p.curTok.Raw, p.curTok.Span)
}

func (p *Parser) parseStringLit() ast.Expr {
	return ast.NewStringLit(p.curTok.Value, p.curTok.Span)
}

func (p *Parser) parseCharLit() ast.Expr {
	runes := []rune(p.curTok.Value)
	var value rune
	if len(runes) > 0 {
		value = runes[0]
	}
	return ast.NewCharLit(value, p.curTok.Span)
}

func (p *Parser) parseEscapedDatum() ast.Expr {
	return ast.NewEscapedDatum(p.curTok.Datum, p.curTok.Span)
}

// parsePrefixExpr handles unary + and -. The operator is consumed before
// recursing so precedencePrefix controls how much of the right-hand side
// it captures.
func (p *Parser) parsePrefixExpr() ast.Expr {
	operatorTok := p.curTok

	p.nextToken()

	right := p.parseExprPrecedence(precedencePrefix)
	if right == nil {
		return nil
	}

	span := mergeSpan(operatorTok.Span, right.Span())
	return ast.NewOperatorExpr(operatorTok.Raw, []ast.Expr{right}, span)
}

// parseNotExpr parses unary not, which binds weaker than the comparison
// operators: not a == b negates the comparison.
func (p *Parser) parseNotExpr() ast.Expr {
	operatorTok := p.curTok

	p.nextToken()

	right := p.parseExprPrecedence(precedenceNot)
	if right == nil {
		return nil
	}

	span := mergeSpan(operatorTok.Span, right.Span())
	return ast.NewOperatorExpr(operatorTok.Raw, []ast.Expr{right}, span)
}

func (p *Parser) parseInfixExpr(left ast.Expr) ast.Expr {
	operatorTok := p.curTok
	precedence := precedences[operatorTok.Type]

	p.nextToken()

	right := p.parseExprPrecedence(precedence)
	if right == nil {
		return nil
	}

	span := mergeSpan(left.Span(), right.Span())
	return ast.NewOperatorExpr(operatorTok.Raw, []ast.Expr{left, right}, span)
}

// parseRightInfixExpr handles the right-associative cons and append
// operators: a : b : c groups as a : (b : c).
func (p *Parser) parseRightInfixExpr(left ast.Expr) ast.Expr {
	operatorTok := p.curTok

	p.nextToken()

	right := p.parseExprPrecedence(precedenceConsAppend - 1)
	if right == nil {
		return nil
	}

	span := mergeSpan(left.Span(), right.Span())
	return ast.NewOperatorExpr(operatorTok.Raw, []ast.Expr{left, right}, span)
}

// parseComparisonExpr handles the non-associative comparison operators.
// Chaining without explicit grouping is rejected.
func (p *Parser) parseComparisonExpr(left ast.Expr) ast.Expr {
	operatorTok := p.curTok

	p.nextToken()

	right := p.parseExprPrecedence(precedenceComparison)
	if right == nil {
		return nil
	}

	if precedences[p.peekTok.Type] == precedenceComparison {
		p.reportWith(diag.CodeParseChainedCompare,
			"comparison operators cannot be chained; group with parentheses", p.peekTok.Span)
		return nil
	}

	span := mergeSpan(left.Span(), right.Span())
	return ast.NewOperatorExpr(operatorTok.Raw, []ast.Expr{left, right}, span)
}

func (p *Parser) parseMisplacedSplice() ast.Expr {
	p.reportWith(diag.CodeParseMisplacedSplice,
		"splice marker '@' is only allowed in argument lists and constructors", p.curTok.Span)
	return nil
}

// parseSpliceItem parses one element of an argument list or constructor,
// recognizing the @expr spread marker. hasSplice is set through the
// pointer so callers can record whether the sequence needs the variadic
// apply form.
func (p *Parser) parseSpliceItem(hasSplice *bool) (ast.Expr, bool) {
	if p.curTok.Type == lexer.AT {
		atTok := p.curTok
		p.nextToken()

		expr := p.parseExpr()
		if expr == nil {
			return nil, false
		}

		*hasSplice = true
		return ast.NewSplice(expr, mergeSpan(atTok.Span, expr.Span())), true
	}

	expr := p.parseExpr()
	if expr == nil {
		return nil, false
	}
	return expr, true
}

// parseGroupedExpr parses "(...)": plain grouping for a single element
// without a splice, a multiple-value tuple otherwise.
func (p *Parser) parseGroupedExpr() ast.Expr {
	start := p.curTok.Span

	p.nextToken()

	hasSplice := false
	sawComma := p.curTok.Type == lexer.RPAREN // () is an empty tuple

	items, ok := parseDelimited(p, delimitedConfig{
		Closing:           lexer.RPAREN,
		AllowEmpty:        true,
		MissingElementMsg: "expected expression",
	}, func(idx int) (ast.Expr, bool) {
		if idx > 0 {
			sawComma = true
		}
		return p.parseSpliceItem(&hasSplice)
	})
	if !ok {
		return nil
	}

	span := mergeSpan(start, p.curTok.Span)

	if len(items) == 1 && !sawComma && !hasSplice {
		return items[0]
	}
	return ast.NewValuesExpr(items, hasSplice, span)
}

func (p *Parser) parseListCtor() ast.Expr {
	start := p.curTok.Span

	p.nextToken()

	hasSplice := false
	items, ok := parseDelimited(p, delimitedConfig{
		Closing:           lexer.RBRACKET,
		AllowEmpty:        true,
		MissingElementMsg: "expected expression",
	}, func(idx int) (ast.Expr, bool) {
		return p.parseSpliceItem(&hasSplice)
	})
	if !ok {
		return nil
	}

	return ast.NewListCtor(items, hasSplice, mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseVectorCtor() ast.Expr {
	start := p.curTok.Span

	p.nextToken()

	hasSplice := false
	items, ok := parseDelimited(p, delimitedConfig{
		Closing:           lexer.RBRACKET,
		AllowEmpty:        true,
		MissingElementMsg: "expected expression",
	}, func(idx int) (ast.Expr, bool) {
		return p.parseSpliceItem(&hasSplice)
	})
	if !ok {
		return nil
	}

	return ast.NewVectorCtor(items, hasSplice, mergeSpan(start, p.curTok.Span))
}

// parseCallExpr parses juxtaposition application: callee followed by a
// parenthesized argument list. A spliced argument turns the call into a
// variadic apply.
func (p *Parser) parseCallExpr(callee ast.Expr) ast.Expr {
	p.nextToken()

	hasSplice := false
	args, ok := parseDelimited(p, delimitedConfig{
		Closing:           lexer.RPAREN,
		AllowEmpty:        true,
		MissingElementMsg: "expected argument",
	}, func(idx int) (ast.Expr, bool) {
		return p.parseSpliceItem(&hasSplice)
	})
	if !ok {
		return nil
	}

	span := mergeSpan(callee.Span(), p.curTok.Span)
	return ast.NewApplication(callee, args, hasSplice, span)
}

// parseBraceExpr parses a bare explicit brace block, which is a
// sequential do block.
func (p *Parser) parseBraceExpr() ast.Expr {
	return p.parseBlock()
}
