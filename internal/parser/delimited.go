package parser

import (
	"github.com/sable-lang/sable/internal/lexer"
)

type delimitedConfig struct {
	Closing   lexer.TokenType
	Separator lexer.TokenType

	AllowEmpty bool

	MissingElementMsg   string
	MissingSeparatorMsg string
}

// parseDelimited parses a separator-delimited item sequence. On entry
// curTok sits on the first item (or the closing token for an empty
// sequence); on success curTok sits on the closing token.
func parseDelimited[T any](p *Parser, cfg delimitedConfig, parseItem func(idx int) (T, bool)) ([]T, bool) {
	var items []T

	if cfg.Separator == "" {
		cfg.Separator = lexer.COMMA
	}

	if cfg.Closing == "" {
		panic("parseDelimited requires a closing token")
	}

	if p.curTok.Type == cfg.Closing {
		if cfg.AllowEmpty {
			return items, true
		}
		msg := cfg.MissingElementMsg
		if msg == "" {
			msg = "expected element"
		}
		p.reportError(msg, p.curTok.Span)
		return items, false
	}

	for {
		item, ok := parseItem(len(items))
		if !ok {
			return items, false
		}
		items = append(items, item)

		switch p.peekTok.Type {
		case cfg.Separator:
			p.nextToken() // move to separator
			p.nextToken() // move to next potential element

			if p.curTok.Type == cfg.Closing {
				msg := cfg.MissingElementMsg
				if msg == "" {
					msg = "expected element"
				}
				p.reportError(msg, p.curTok.Span)
				return items, false
			}
			continue
		case cfg.Closing:
			p.nextToken()
			return items, true
		default:
			msg := cfg.MissingSeparatorMsg
			if msg == "" {
				msg = "expected '" + string(cfg.Separator) + "' or '" + string(cfg.Closing) + "'"
			}
			p.reportError(msg, p.peekTok.Span)
			return items, false
		}
	}
}
