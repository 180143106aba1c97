package lexer

import (
	"github.com/sable-lang/sable/internal/diag"
)

// scanNumber reads a bare numeral: integer, decimal, exponent form, and
// the imaginary suffix 'i' (the only bare-form special case handled at the
// lexical level).
func (l *Scanner) scanNumber(startLine, startColumn, startPos int) Token {
	typ := INT

	for isDigit(l.ch) {
		l.read()
	}

	if l.ch == '.' && isDigit(l.peek()) {
		typ = FLOAT
		l.read()
		for isDigit(l.ch) {
			l.read()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		next := l.peek()
		signedExp := (next == '+' || next == '-') && isDigit(l.peekAt(2))
		if isDigit(next) || signedExp {
			typ = FLOAT
			l.read() // 'e'
			if l.ch == '+' || l.ch == '-' {
				l.read()
			}
			for isDigit(l.ch) {
				l.read()
			}
		}
	}

	if l.ch == 'i' && !isIdentChar(l.peek()) {
		l.read()
		typ = IMAG
	} else if isLetter(l.ch) {
		for isIdentChar(l.ch) {
			l.read()
		}
		raw := string(l.input[startPos:l.pos])
		tok := l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, raw)
		l.addError(diag.CodeLexMalformedNumeral, "malformed numeral '"+raw+"'", tok.Span)
		return tok
	}

	raw := string(l.input[startPos:l.pos])
	return l.makeToken(typ, startLine, startColumn, startPos, l.pos, raw, raw)
}

func (l *Scanner) peekAt(n int) rune {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func isNumeralPrefix(ch rune) bool {
	switch ch {
	case 'b', 'o', 'd', 'x', 'e', 'i', 'B', 'O', 'D', 'X', 'E', 'I':
		return true
	}
	return false
}

// scanPrefixedNumeral reads a radix/exactness-prefixed numeral span
// (#x1f, #b1010, #e1.5, #x-10, ...) verbatim; the span is validated here
// and handed to the emitter untouched.
func (l *Scanner) scanPrefixedNumeral(startLine, startColumn, startPos int) Token {
	for isNumeralRune(l.ch) {
		l.read()
	}

	raw := string(l.input[startPos:l.pos])
	if err := validatePrefixedNumeral(raw); err != "" {
		tok := l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, raw)
		l.addError(diag.CodeLexMalformedNumeral, err, tok.Span)
		return tok
	}
	return l.makeToken(NUM, startLine, startColumn, startPos, l.pos, raw, raw)
}

func isNumeralRune(ch rune) bool {
	return isDigit(ch) ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
		ch == '#' || ch == '+' || ch == '-' || ch == '.' || ch == '/' || ch == '@'
}

// validatePrefixedNumeral checks a prefixed numeral span for a valid
// prefix chain and radix-conformant digits. It returns an error message,
// or "" when the span is well formed.
func validatePrefixedNumeral(s string) string {
	radix := 10
	seenRadix, seenExact := false, false

	i := 0
	for i+1 < len(s) && s[i] == '#' {
		switch s[i+1] | 0x20 { // lowercase
		case 'b':
			radix = 2
		case 'o':
			radix = 8
		case 'd':
			radix = 10
		case 'x':
			radix = 16
		case 'e', 'i':
			if seenExact {
				return "duplicate exactness prefix in numeral '" + s + "'"
			}
			seenExact = true
			i += 2
			continue
		default:
			return "invalid numeral prefix in '" + s + "'"
		}
		if seenRadix {
			return "duplicate radix prefix in numeral '" + s + "'"
		}
		seenRadix = true
		i += 2
	}

	body := s[i:]
	if body == "" {
		return "numeral prefix with no digits in '" + s + "'"
	}

	sawDigit := false
	for _, r := range body {
		switch {
		case digitInRadix(r, radix):
			sawDigit = true
		case r == '+' || r == '-' || r == '.' || r == '/' || r == '@':
			// structure characters of signed/rational/polar forms
		case radix == 10 && (r == 'e' || r == 'E'):
			// exponent marker
		case r == 'i' || r == 'I':
			// imaginary suffix (valid as a hex digit check is above for 16)
		default:
			return "digit out of radix in numeral '" + s + "'"
		}
	}
	if !sawDigit {
		return "numeral prefix with no digits in '" + s + "'"
	}
	return ""
}

func digitInRadix(r rune, radix int) bool {
	switch radix {
	case 2:
		return r == '0' || r == '1'
	case 8:
		return r >= '0' && r <= '7'
	case 16:
		return isHexDigit(r)
	default:
		return r >= '0' && r <= '9'
	}
}

// tokenSource is the pull interface shared by the scanner, the layout
// engine, and the numeric joiner.
type tokenSource interface {
	NextToken() Token
}

// joiner is the numeric reconstruction post-pass. It merges adjacent
// sign/infix numeral token shapes back into single literals: prefix +/-
// before a signless numeral when the preceding token cannot end an
// expression, rectangular complex (3+4i), rational (1/2), and polar (1@2)
// forms. Any span not matching stays ordinary operator tokens, so x+2
// remains an application of +.
type joiner struct {
	src  tokenSource
	buf  []Token // pushback stack
	prev TokenType
}

func newJoiner(src tokenSource) *joiner {
	return &joiner{src: src}
}

func (j *joiner) push(t Token) { j.buf = append(j.buf, t) }

func (j *joiner) pull() Token {
	if n := len(j.buf); n > 0 {
		t := j.buf[n-1]
		j.buf = j.buf[:n-1]
		return t
	}
	return j.src.NextToken()
}

func adjacentTokens(a, b Token) bool {
	return !a.Virtual && !b.Virtual && a.Span.End == b.Span.Start
}

// canEndExpr reports whether a token of this type can be the final token
// of an expression. A +/- directly after such a token is infix, never a
// literal sign.
func canEndExpr(tt TokenType) bool {
	switch tt {
	case IDENT, SYMCONST, INT, FLOAT, RATIONAL, COMPLEX, IMAG, NUM,
		STRING, CHAR, RPAREN, RBRACKET, RBRACE, ESCAPED:
		return true
	}
	return false
}

func isRealNumeral(tt TokenType) bool {
	return tt == INT || tt == FLOAT || tt == RATIONAL
}

func mergeTokens(a, b Token, typ TokenType) Token {
	merged := a
	merged.Type = typ
	merged.Raw = a.Raw + b.Raw
	merged.Value = merged.Raw
	merged.Span.End = b.Span.End
	return merged
}

// NextToken returns the next token with numeric reconstruction applied.
func (j *joiner) NextToken() Token {
	t := j.pull()

	// Prefix sign: merge only when the previous token cannot end an
	// expression, so x+2 stays x, +, 2.
	if (t.Type == PLUS || t.Type == MINUS) && !canEndExpr(j.prev) {
		n := j.pull()
		if (isRealNumeral(n.Type) || n.Type == IMAG) && adjacentTokens(t, n) {
			t = mergeTokens(t, n, n.Type)
		} else {
			j.push(n)
		}
	}

merge:
	for isRealNumeral(t.Type) {
		op := j.pull()
		if !adjacentTokens(t, op) {
			j.push(op)
			break
		}

		switch op.Type {
		case SLASH:
			if t.Type != INT {
				j.push(op)
				break merge
			}
			d := j.pull()
			if d.Type == INT && adjacentTokens(op, d) {
				t = mergeTokens(mergeTokens(t, op, RATIONAL), d, RATIONAL)
				continue
			}
			j.push(d)
			j.push(op)
			break merge

		case PLUS, MINUS:
			im := j.pull()
			if im.Type == IMAG && adjacentTokens(op, im) {
				t = mergeTokens(mergeTokens(t, op, COMPLEX), im, COMPLEX)
				continue
			}
			j.push(im)
			j.push(op)
			break merge

		case AT:
			m := j.pull()
			if (m.Type == PLUS || m.Type == MINUS) && adjacentTokens(op, m) {
				m2 := j.pull()
				if isRealNumeral(m2.Type) && adjacentTokens(m, m2) {
					m = mergeTokens(m, m2, m2.Type)
				} else {
					j.push(m2)
				}
			}
			if isRealNumeral(m.Type) && adjacentTokens(op, m) {
				t = mergeTokens(mergeTokens(t, op, COMPLEX), m, COMPLEX)
				continue
			}
			j.push(m)
			j.push(op)
			break merge

		default:
			j.push(op)
			break merge
		}
	}

	j.prev = t.Type
	return t
}
