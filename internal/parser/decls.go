package parser

import (
	"github.com/sable-lang/sable/internal/ast"
	"github.com/sable-lang/sable/internal/lexer"
)

func (p *Parser) parseDef() ast.Def {
	switch p.curTok.Type {
	case lexer.VAL:
		if d := p.parseValDef(); d != nil {
			return d
		}
	case lexer.RECORD:
		if d := p.parseRecordDef(); d != nil {
			return d
		}
	case lexer.SYNTAX:
		if d := p.parseSyntaxDef(); d != nil {
			return d
		}
	case lexer.INCLUDE, lexer.INCLUDECI:
		if d := p.parseIncludeDef(); d != nil {
			return d
		}
	case lexer.IMPORT:
		if d := p.parseImportDef(); d != nil {
			return d
		}
	case lexer.LIBRARY:
		if d := p.parseLibraryDef(); d != nil {
			return d
		}
	default:
		p.reportError("expected definition", p.curTok.Span)
	}
	return nil
}

func (p *Parser) parseValDef() *ast.ValDef {
	start := p.curTok.Span

	p.nextToken()
	binding := p.parseBinding()
	if binding == nil {
		return nil
	}

	return ast.NewValDef(binding, mergeSpan(start, binding.Span()))
}

func (p *Parser) parseRecordDef() *ast.RecordDef {
	start := p.curTok.Span

	p.nextToken()
	name := p.parseName()
	if name == nil {
		return nil
	}

	if !p.expect(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	fields, ok := parseDelimited(p, delimitedConfig{
		Closing:           lexer.RPAREN,
		AllowEmpty:        true,
		MissingElementMsg: "expected field name",
	}, func(idx int) (*ast.Ident, bool) {
		n := p.parseName()
		return n, n != nil
	})
	if !ok {
		return nil
	}

	return ast.NewRecordDef(name, fields, mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseSyntaxDef() *ast.SyntaxDef {
	start := p.curTok.Span

	p.nextToken()
	name := p.parseName()
	if name == nil {
		return nil
	}

	if !p.expect(lexer.ASSIGN) {
		return nil
	}
	if !p.expect(lexer.RULES) {
		return nil
	}

	rules := p.parseSyntaxRules()
	if rules == nil {
		return nil
	}

	return ast.NewSyntaxDef(name, rules.(*ast.SyntaxRules), mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseIncludeDef() *ast.IncludeDef {
	start := p.curTok.Span
	ci := p.curTok.Type == lexer.INCLUDECI

	if !p.expect(lexer.STRING) {
		return nil
	}

	return ast.NewIncludeDef(p.curTok.Value, ci, mergeSpan(start, p.curTok.Span))
}

func (p *Parser) parseImportDef() *ast.ImportDef {
	start := p.curTok.Span
	p.nextToken()

	var sets []ast.ImportSet
	for {
		set := p.parseImportSet()
		if set == nil {
			return nil
		}
		sets = append(sets, set)

		if p.peekTok.Type != lexer.COMMA {
			break
		}
		p.nextToken()
		p.nextToken()
	}

	return ast.NewImportDef(sets, mergeSpan(start, sets[len(sets)-1].Span()))
}

// parseDottedPath parses a dotted library name into a flat name path.
func (p *Parser) parseDottedPath() ([]*ast.Ident, bool) {
	var path []*ast.Ident
	for {
		n := p.parseName()
		if n == nil {
			return nil, false
		}
		path = append(path, n)

		if p.peekTok.Type != lexer.DOT {
			return path, true
		}
		p.nextToken()
		p.nextToken()
	}
}

// parseImportSet parses a dotted library name and folds the postfix
// modifiers exposing/hiding/renaming/qualifying outward over it. The
// modifier words are contextual: they arrive as plain identifiers and
// only act as keywords here.
func (p *Parser) parseImportSet() ast.ImportSet {
	path, ok := p.parseDottedPath()
	if !ok {
		return nil
	}

	span := path[0].Span()
	span = mergeSpan(span, path[len(path)-1].Span())
	var set ast.ImportSet = ast.NewImportRef(path, span)

	for p.peekTok.Type == lexer.IDENT {
		switch p.peekTok.Raw {
		case "exposing", "hiding":
			hide := p.peekTok.Raw == "hiding"
			p.nextToken()
			if !p.expect(lexer.LPAREN) {
				return nil
			}
			p.nextToken()
			names, ok := parseDelimited(p, delimitedConfig{
				Closing:           lexer.RPAREN,
				MissingElementMsg: "expected name",
			}, func(idx int) (*ast.Ident, bool) {
				n := p.parseName()
				return n, n != nil
			})
			if !ok {
				return nil
			}
			mspan := mergeSpan(set.Span(), p.curTok.Span)
			if hide {
				set = ast.NewImportExcept(set, names, mspan)
			} else {
				set = ast.NewImportOnly(set, names, mspan)
			}

		case "renaming":
			p.nextToken()
			if !p.expect(lexer.LPAREN) {
				return nil
			}
			p.nextToken()
			pairs, ok := parseDelimited(p, delimitedConfig{
				Closing:           lexer.RPAREN,
				MissingElementMsg: "expected rename pair",
			}, func(idx int) (ast.RenamePair, bool) {
				var pair ast.RenamePair
				from := p.parseName()
				if from == nil {
					return pair, false
				}
				if p.peekTok.Type != lexer.IDENT || p.peekTok.Raw != "as" {
					p.reportError("expected 'as' in rename pair", p.peekTok.Span)
					return pair, false
				}
				p.nextToken()
				p.nextToken()
				to := p.parseName()
				if to == nil {
					return pair, false
				}
				return ast.RenamePair{From: from, To: to}, true
			})
			if !ok {
				return nil
			}
			set = ast.NewImportRename(set, pairs, mergeSpan(set.Span(), p.curTok.Span))

		case "qualifying":
			p.nextToken()
			p.nextToken()
			prefix := p.parseName()
			if prefix == nil {
				return nil
			}
			set = ast.NewImportPrefix(set, prefix, mergeSpan(set.Span(), prefix.Span()))

		default:
			return set
		}
	}

	return set
}

func (p *Parser) parseLibraryDef() *ast.LibraryDef {
	start := p.curTok.Span

	p.nextToken()
	path, ok := p.parseDottedPath()
	if !ok {
		return nil
	}

	var exports []*ast.Ident
	if p.peekTok.Type == lexer.IDENT && p.peekTok.Raw == "exposing" {
		p.nextToken()
		if !p.expect(lexer.LPAREN) {
			return nil
		}
		p.nextToken()
		exports, ok = parseDelimited(p, delimitedConfig{
			Closing:           lexer.RPAREN,
			AllowEmpty:        true,
			MissingElementMsg: "expected export name",
		}, func(idx int) (*ast.Ident, bool) {
			n := p.parseName()
			return n, n != nil
		})
		if !ok {
			return nil
		}
	}

	if !p.expect(lexer.WITH) {
		return nil
	}
	if !p.expect(lexer.LBRACE) {
		return nil
	}

	var body []ast.Def
	for p.peekTok.Type != lexer.RBRACE {
		if p.peekTok.Type == lexer.SEMICOLON {
			p.nextToken()
			continue
		}
		if p.peekTok.Type == lexer.EOF {
			p.reportError("unexpected end of input in library body", p.peekTok.Span)
			return nil
		}

		p.nextToken()
		if !isDefStart(p.curTok.Type) {
			p.reportError("library body allows definitions only", p.curTok.Span)
			return nil
		}
		def := p.parseDef()
		if def == nil {
			return nil
		}
		body = append(body, def)

		if p.peekTok.Type != lexer.SEMICOLON && p.peekTok.Type != lexer.RBRACE {
			p.reportError("expected ';' or '}'", p.peekTok.Span)
			return nil
		}
	}
	p.nextToken() // closing brace

	return ast.NewLibraryDef(path, exports, body, mergeSpan(start, p.curTok.Span))
}
