package parser

import (
	"github.com/sable-lang/sable/internal/ast"
	"github.com/sable-lang/sable/internal/diag"
	"github.com/sable-lang/sable/internal/lexer"
)

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

type Option func(*options)

type options struct {
	filename string
	reader   lexer.DatumReader
}

// WithFilename configures the parser to attribute all emitted spans to
// the provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// WithReader installs the escape delegate invoked on the backslash
// marker.
func WithReader(r lexer.DatumReader) Option {
	return func(o *options) {
		o.reader = r
	}
}

// Operator precedence, weakest first. Application binds tighter than all
// operators.
const (
	precedenceLowest     = iota
	precedenceConsAppend // @ : (right-associative)
	precedenceOr
	precedenceAnd
	precedenceNot
	precedenceComparison // == = < <= > >= (non-associative)
	precedenceSum
	precedenceProduct
	precedencePrefix
	precedenceCall
)

var precedences = map[lexer.TokenType]int{
	lexer.AT:     precedenceConsAppend,
	lexer.COLON:  precedenceConsAppend,
	lexer.OR:     precedenceOr,
	lexer.AND:    precedenceAnd,
	lexer.EQ:     precedenceComparison,
	lexer.ASSIGN: precedenceComparison,
	lexer.LT:     precedenceComparison,
	lexer.LE:     precedenceComparison,
	lexer.GT:     precedenceComparison,
	lexer.GE:     precedenceComparison,
	lexer.PLUS:   precedenceSum,
	lexer.MINUS:  precedenceSum,
	lexer.STAR:   precedenceProduct,
	lexer.SLASH:  precedenceProduct,
	lexer.QUO:    precedenceProduct,
	lexer.REM:    precedenceProduct,
	lexer.DIV:    precedenceProduct,
	lexer.MOD:    precedenceProduct,
	lexer.LPAREN: precedenceCall,
}

// ParseError captures a positioned parsing error.
type ParseError struct {
	Code     diag.Code
	Message  string
	Span     lexer.Span
	Severity diag.Severity
}

// ToDiagnostic converts a parse error into a shared diagnostic structure.
func (e ParseError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: e.Severity,
		Code:     e.Code,
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// Parser implements a Pratt-style recursive descent parser over the
// layout-processed token stream. curTok always reflects the token
// currently under examination; peekTok mirrors the next token pulled
// from the stream. The pair forms the parser's sole lookahead window and
// is only mutated via nextToken. Parse functions leave curTok on the
// last token of the construct they produced.
type Parser struct {
	lx      *lexer.Stream
	curTok  lexer.Token
	peekTok lexer.Token

	errors []ParseError

	filename string

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New returns a parser initialised with the provided source input.
func New(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		lx:        lexer.NewStream(input),
		prefixFns: make(map[lexer.TokenType]prefixParseFn),
		infixFns:  make(map[lexer.TokenType]infixParseFn),
		filename:  cfg.filename,
	}

	if cfg.filename != "" {
		p.lx.SetFilename(cfg.filename)
	}
	if cfg.reader != nil {
		p.lx.SetReader(cfg.reader)
	}

	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.SYMCONST, p.parseSymConst)
	p.registerPrefix(lexer.INT, p.parseNumberLit)
	p.registerPrefix(lexer.FLOAT, p.parseNumberLit)
	p.registerPrefix(lexer.RATIONAL, p.parseNumberLit)
	p.registerPrefix(lexer.COMPLEX, p.parseNumberLit)
	p.registerPrefix(lexer.IMAG, p.parseNumberLit)
	p.registerPrefix(lexer.NUM, p.parseNumberLit)
	p.registerPrefix(lexer.STRING, p.parseStringLit)
	p.registerPrefix(lexer.CHAR, p.parseCharLit)
	p.registerPrefix(lexer.ESCAPED, p.parseEscapedDatum)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpr)
	p.registerPrefix(lexer.PLUS, p.parsePrefixExpr)
	p.registerPrefix(lexer.NOT, p.parseNotExpr)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpr)
	p.registerPrefix(lexer.LBRACKET, p.parseListCtor)
	p.registerPrefix(lexer.HASHBRACK, p.parseVectorCtor)
	p.registerPrefix(lexer.LBRACE, p.parseBraceExpr)
	p.registerPrefix(lexer.FN, p.parseFnExpr)
	p.registerPrefix(lexer.IF, p.parseIfExpr)
	p.registerPrefix(lexer.COND, p.parseCondExpr)
	p.registerPrefix(lexer.CASE, p.parseCaseExpr)
	p.registerPrefix(lexer.DO, p.parseDoExpr)
	p.registerPrefix(lexer.LET, p.parseLetExpr)
	p.registerPrefix(lexer.LETREC, p.parseLetExpr)
	p.registerPrefix(lexer.FOR, p.parseForExpr)
	p.registerPrefix(lexer.GUARD, p.parseGuardExpr)
	p.registerPrefix(lexer.RULES, p.parseSyntaxRules)
	p.registerPrefix(lexer.AT, p.parseMisplacedSplice)

	p.registerInfix(lexer.AT, p.parseRightInfixExpr)
	p.registerInfix(lexer.COLON, p.parseRightInfixExpr)
	p.registerInfix(lexer.OR, p.parseInfixExpr)
	p.registerInfix(lexer.AND, p.parseInfixExpr)
	p.registerInfix(lexer.EQ, p.parseComparisonExpr)
	p.registerInfix(lexer.ASSIGN, p.parseComparisonExpr)
	p.registerInfix(lexer.LT, p.parseComparisonExpr)
	p.registerInfix(lexer.LE, p.parseComparisonExpr)
	p.registerInfix(lexer.GT, p.parseComparisonExpr)
	p.registerInfix(lexer.GE, p.parseComparisonExpr)
	p.registerInfix(lexer.PLUS, p.parseInfixExpr)
	p.registerInfix(lexer.MINUS, p.parseInfixExpr)
	p.registerInfix(lexer.STAR, p.parseInfixExpr)
	p.registerInfix(lexer.SLASH, p.parseInfixExpr)
	p.registerInfix(lexer.QUO, p.parseInfixExpr)
	p.registerInfix(lexer.REM, p.parseInfixExpr)
	p.registerInfix(lexer.DIV, p.parseInfixExpr)
	p.registerInfix(lexer.MOD, p.parseInfixExpr)
	p.registerInfix(lexer.LPAREN, p.parseCallExpr)

	// Seed curTok/peekTok.
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns all parse errors that were encountered.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// LexErrors returns the lexical and layout errors from the underlying
// token stream.
func (p *Parser) LexErrors() []lexer.LexError {
	return p.lx.Errors()
}

// ParseUnit parses a full translation unit: a sequence of definitions
// and expressions.
func (p *Parser) ParseUnit() *ast.Unit {
	unit := ast.NewUnit(p.curTok.Span)

	for p.curTok.Type != lexer.EOF {
		if p.curTok.Type == lexer.SEMICOLON {
			p.nextToken()
			continue
		}

		errCount := len(p.errors)
		form := p.parseTopLevelForm()
		if form != nil {
			unit.Forms = append(unit.Forms, form)
			unit.SetSpan(mergeSpan(unit.Span(), form.Span()))
			p.nextToken()
			continue
		}

		if len(p.errors) == errCount {
			p.reportError("unexpected token '"+p.curTok.Raw+"'", p.curTok.Span)
		}
		p.recoverTopLevel()
	}

	unit.SetSpan(mergeSpan(unit.Span(), p.curTok.Span))
	return unit
}

func (p *Parser) parseTopLevelForm() ast.Node {
	if isDefStart(p.curTok.Type) {
		if def := p.parseDef(); def != nil {
			return def
		}
		return nil
	}
	if expr := p.parseExpr(); expr != nil {
		return expr
	}
	return nil
}

func isDefStart(tt lexer.TokenType) bool {
	switch tt {
	case lexer.VAL, lexer.RECORD, lexer.SYNTAX, lexer.IMPORT,
		lexer.LIBRARY, lexer.INCLUDE, lexer.INCLUDECI:
		return true
	default:
		return false
	}
}

// recoverTopLevel skips ahead to the next plausible top-level form so a
// 'check' run can report more than one unit-level error. Translation
// itself still aborts on the first error.
func (p *Parser) recoverTopLevel() {
	p.nextToken()
	for p.curTok.Type != lexer.EOF {
		if p.curTok.Type == lexer.SEMICOLON {
			p.nextToken()
			return
		}
		if isDefStart(p.curTok.Type) {
			return
		}
		p.nextToken()
	}
}

// nextToken advances the parser's token window. The stream is only
// queried from this hop to keep lookahead bookkeeping centralized.
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.lx.NextToken()
}

// expect asserts that the peek token matches the provided type; on
// success it promotes peekTok into curTok.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.peekTok.Type == tt {
		p.nextToken()
		return true
	}

	p.reportError("expected '"+string(tt)+"'", p.peekTok.Span)
	return false
}

func (p *Parser) reportWith(code diag.Code, msg string, span lexer.Span) {
	if span.Filename == "" && p.filename != "" {
		span.Filename = p.filename
	}
	p.errors = append(p.errors, ParseError{
		Code:     code,
		Message:  msg,
		Span:     span,
		Severity: diag.SeverityError,
	})
}

func (p *Parser) reportError(msg string, span lexer.Span) {
	p.reportWith(diag.CodeParseUnexpectedToken, msg, span)
}

// parseName parses an identifier in a position where a reserved word is
// a name error rather than a syntax error.
func (p *Parser) parseName() *ast.Ident {
	tok := p.curTok
	if tok.Type != lexer.IDENT {
		if lexer.IsKeyword(tok.Type) {
			p.reportWith(diag.CodeNameReservedWord,
				"reserved word '"+tok.Raw+"' cannot be used as an identifier", tok.Span)
		} else {
			p.reportError("expected identifier", tok.Span)
		}
		return nil
	}
	return ast.NewIdent(tok.Value, tok.Raw, tok.Span)
}

// mergeSpan returns a span covering both arguments; callers pass the
// earliest start span first.
func mergeSpan(start, end lexer.Span) lexer.Span {
	span := start

	if span.Filename == "" {
		span.Filename = end.Filename
	}

	if span.Line == 0 && end.Line != 0 {
		span.Line = end.Line
		span.Column = end.Column
		span.Start = end.Start
	}

	if end.End > span.End {
		span.End = end.End
	}

	return span
}

func (p *Parser) registerPrefix(tokenType lexer.TokenType, fn prefixParseFn) {
	p.prefixFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType lexer.TokenType, fn infixParseFn) {
	p.infixFns[tokenType] = fn
}
