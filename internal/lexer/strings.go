package lexer

import (
	"strconv"
	"unicode"

	"github.com/sable-lang/sable/internal/diag"
)

// scanString reads a double-quoted string literal. A backslash immediately
// before the newline continues the string on the next line; leading
// whitespace there is stripped up to and including an optional second
// backslash.
func (l *Scanner) scanString(startLine, startColumn, startPos int) Token {
	var decoded []rune
	l.read() // opening quote

	for {
		switch {
		case l.ch == 0 || l.ch == '\n' || l.ch == '\r':
			span := Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos}
			l.addError(diag.CodeLexUnterminatedString, "unterminated string literal", span)
			raw := string(l.input[startPos:l.pos])
			return l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, raw)

		case l.ch == '"':
			l.read()
			raw := string(l.input[startPos:l.pos])
			return l.makeToken(STRING, startLine, startColumn, startPos, l.pos, raw, string(decoded))

		case l.ch == '\\':
			l.read()
			if l.ch == '\n' || l.ch == '\r' {
				// Line continuation.
				if l.ch == '\r' {
					l.read()
				}
				if l.ch == '\n' {
					l.read()
				}
				for l.ch == ' ' || l.ch == '\t' {
					l.read()
				}
				if l.ch == '\\' {
					l.read()
				}
				continue
			}
			r, ok := l.readEscape(false)
			if ok {
				decoded = append(decoded, r)
			}

		default:
			decoded = append(decoded, l.ch)
			l.read()
		}
	}
}

// scanChar reads a single-quoted character literal.
func (l *Scanner) scanChar(startLine, startColumn, startPos int) Token {
	l.read() // opening quote

	var value rune
	switch {
	case l.ch == 0 || l.ch == '\n':
		span := Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos}
		l.addError(diag.CodeLexUnterminatedChar, "unterminated character literal", span)
		raw := string(l.input[startPos:l.pos])
		return l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, raw)

	case l.ch == '\\':
		l.read()
		r, ok := l.readEscape(true)
		if !ok {
			r = 0
		}
		value = r

	default:
		value = l.ch
		l.read()
	}

	if l.ch != '\'' {
		span := Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos}
		l.addError(diag.CodeLexUnterminatedChar, "unterminated character literal", span)
		raw := string(l.input[startPos:l.pos])
		return l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, raw)
	}
	l.read() // closing quote

	raw := string(l.input[startPos:l.pos])
	return l.makeToken(CHAR, startLine, startColumn, startPos, l.pos, raw, string(value))
}

// readEscape decodes one escape sequence; the backslash has already been
// consumed and l.ch is the escape designator. The hex-escape terminator
// semicolon is mandatory in strings and optional in character literals.
func (l *Scanner) readEscape(inChar bool) (rune, bool) {
	span := Span{Filename: l.filename, Line: l.line, Column: l.column, Start: l.pos - 1, End: l.pos + 1}

	switch l.ch {
	case 'n':
		l.read()
		return '\n', true
	case 't':
		l.read()
		return '\t', true
	case 'r':
		l.read()
		return '\r', true
	case '\\':
		l.read()
		return '\\', true
	case '\'':
		l.read()
		return '\'', true
	case '"':
		l.read()
		return '"', true
	case 'a':
		l.read()
		return '\a', true
	case 'b':
		l.read()
		return '\b', true
	case '|':
		l.read()
		return '|', true
	case 'x', 'X':
		l.read()
		start := l.pos
		for isHexDigit(l.ch) {
			l.read()
		}
		digits := string(l.input[start:l.pos])
		if digits == "" {
			span.End = l.pos
			l.addError(diag.CodeLexBadEscape, "hex escape with no digits", span)
			return 0, false
		}
		if l.ch == ';' {
			l.read()
		} else if !inChar {
			span.End = l.pos
			l.addError(diag.CodeLexBadEscape, "hex escape in string must end with ';'", span)
			return 0, false
		}
		n, err := strconv.ParseUint(digits, 16, 32)
		if err != nil || n > unicode.MaxRune {
			span.End = l.pos
			l.addError(diag.CodeLexBadEscape, "hex escape out of range", span)
			return 0, false
		}
		return rune(n), true
	default:
		raw := string(l.ch)
		l.read()
		span.End = l.pos
		l.addError(diag.CodeLexBadEscape, "invalid escape sequence '\\"+raw+"'", span)
		return 0, false
	}
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') ||
		(ch >= 'a' && ch <= 'f') ||
		(ch >= 'A' && ch <= 'F')
}
