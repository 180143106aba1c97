package lexer

import (
	"strconv"
	"unicode"

	"github.com/sable-lang/sable/internal/diag"
)

// DatumReader is the escape delegate: it reads exactly one datum from src
// starting at pos and returns it together with the index just past the
// consumed span. The scanner treats the result as an opaque leaf.
type DatumReader interface {
	ReadDatum(src []rune, pos int) (datum any, end int, err error)
}

// LexError is a positioned lexical or layout error.
type LexError struct {
	Code    diag.Code
	Message string
	Span    Span
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e LexError) ToDiagnostic() diag.Diagnostic {
	stage := diag.StageLexer
	switch e.Code {
	case diag.CodeLayoutUnmatchedClose, diag.CodeLayoutUnclosedBlock, diag.CodeLayoutMisalignedEntry:
		stage = diag.StageLayout
	}
	return diag.Diagnostic{
		Stage:    stage,
		Severity: diag.SeverityError,
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

// Scanner turns raw source text into classified tokens. Layout handling
// lives in Layout; numeric reconstruction in the token stream joiner.
type Scanner struct {
	input    []rune
	pos      int  // index of the current rune
	ch       rune // current rune (0 = EOF)
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
	filename string
	reader   DatumReader

	Errors []LexError
}

// NewScanner creates a scanner for the given input.
func NewScanner(input string) *Scanner {
	l := &Scanner{
		input:  []rune(input),
		pos:    -1, // start before first rune
		line:   1,
		column: 0, // 1 after the first read()
	}
	l.read()
	return l
}

// SetFilename attributes all subsequent spans to the provided filename.
func (l *Scanner) SetFilename(name string) { l.filename = name }

// SetReader installs the escape delegate invoked on the backslash marker.
func (l *Scanner) SetReader(r DatumReader) { l.reader = r }

func (l *Scanner) addError(code diag.Code, msg string, span Span) {
	l.Errors = append(l.Errors, LexError{Code: code, Message: msg, Span: span})
}

// read advances the scanner to the next character. Line/column always
// reflect the position of the character at pos.
func (l *Scanner) read() {
	l.pos++
	prevPos := l.pos - 1
	inputLen := len(l.input)

	if l.pos >= inputLen {
		if prevPos >= 0 && prevPos < inputLen {
			if l.input[prevPos] == '\n' {
				l.line++
				l.column = 1
			} else {
				l.column++
			}
		} else if prevPos < 0 {
			l.column = 1
		}
		l.ch = 0 // EOF
		return
	}

	l.ch = l.input[l.pos]

	if prevPos >= 0 && l.input[prevPos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// peek returns the next character without advancing.
func (l *Scanner) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Scanner) currentSpanStart() (line, column, pos int) {
	return l.line, l.column, l.pos
}

func (l *Scanner) makeToken(tokType TokenType, startLine, startColumn, startPos, endPos int, raw, value string) Token {
	return Token{
		Type:  tokType,
		Raw:   raw,
		Value: value,
		Span: Span{
			Filename: l.filename,
			Line:     startLine,
			Column:   startColumn,
			Start:    startPos,
			End:      endPos,
		},
	}
}

// skipWhitespace skips spaces and newlines. Tabs are rejected: only plain
// spaces count toward column computation for the layout engine.
func (l *Scanner) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\n' || l.ch == '\r' || l.ch == '\t' {
		if l.ch == '\t' {
			l.addError(diag.CodeLexTabIndent, "tab character in whitespace; use spaces",
				Span{Filename: l.filename, Line: l.line, Column: l.column, Start: l.pos, End: l.pos + 1})
		}
		l.read()
	}
}

// skipLineComment consumes a '--' comment up to the end of the line.
func (l *Scanner) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.read()
	}
}

// skipBlockComment consumes a '{- -}' comment; they nest arbitrarily.
func (l *Scanner) skipBlockComment(startLine, startColumn, startPos int) {
	depth := 1
	for depth > 0 {
		if l.ch == 0 {
			l.addError(diag.CodeLexUnterminatedBlockComment, "unterminated block comment",
				Span{Filename: l.filename, Line: startLine, Column: startColumn, Start: startPos, End: l.pos})
			return
		}
		if l.ch == '{' && l.peek() == '-' {
			l.read()
			l.read()
			depth++
		} else if l.ch == '-' && l.peek() == '}' {
			l.read()
			l.read()
			depth--
		} else {
			l.read()
		}
	}
}

func (l *Scanner) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.read()
	}
	return string(l.input[start:l.pos])
}

// NextToken returns the next raw token from the input.
func (l *Scanner) NextToken() Token {
	for {
		l.skipWhitespace()

		startLine, startColumn, startPos := l.currentSpanStart()

		switch l.ch {
		case 0:
			if startColumn == 0 {
				startColumn = 1
			}
			return l.makeToken(EOF, startLine, startColumn, startPos, startPos, "", "")

		case '=':
			if l.peek() == '=' {
				l.read()
				l.read()
				return l.makeToken(EQ, startLine, startColumn, startPos, l.pos, "==", "==")
			}
			l.read()
			return l.makeToken(ASSIGN, startLine, startColumn, startPos, l.pos, "=", "=")

		case '<':
			if l.peek() == '=' {
				l.read()
				l.read()
				return l.makeToken(LE, startLine, startColumn, startPos, l.pos, "<=", "<=")
			}
			l.read()
			return l.makeToken(LT, startLine, startColumn, startPos, l.pos, "<", "<")

		case '>':
			if l.peek() == '=' {
				l.read()
				l.read()
				return l.makeToken(GE, startLine, startColumn, startPos, l.pos, ">=", ">=")
			}
			l.read()
			return l.makeToken(GT, startLine, startColumn, startPos, l.pos, ">", ">")

		case '+':
			l.read()
			return l.makeToken(PLUS, startLine, startColumn, startPos, l.pos, "+", "+")

		case '-':
			switch l.peek() {
			case '-':
				l.skipLineComment()
				continue
			case '>':
				l.read()
				l.read()
				return l.makeToken(ARROW, startLine, startColumn, startPos, l.pos, "->", "->")
			default:
				l.read()
				return l.makeToken(MINUS, startLine, startColumn, startPos, l.pos, "-", "-")
			}

		case '*':
			l.read()
			return l.makeToken(STAR, startLine, startColumn, startPos, l.pos, "*", "*")

		case '/':
			l.read()
			return l.makeToken(SLASH, startLine, startColumn, startPos, l.pos, "/", "/")

		case ':':
			l.read()
			return l.makeToken(COLON, startLine, startColumn, startPos, l.pos, ":", ":")

		case '@':
			l.read()
			return l.makeToken(AT, startLine, startColumn, startPos, l.pos, "@", "@")

		case ',':
			l.read()
			return l.makeToken(COMMA, startLine, startColumn, startPos, l.pos, ",", ",")

		case ';':
			l.read()
			return l.makeToken(SEMICOLON, startLine, startColumn, startPos, l.pos, ";", ";")

		case '|':
			l.read()
			return l.makeToken(BAR, startLine, startColumn, startPos, l.pos, "|", "|")

		case '.':
			l.read()
			return l.makeToken(DOT, startLine, startColumn, startPos, l.pos, ".", ".")

		case '(':
			l.read()
			return l.makeToken(LPAREN, startLine, startColumn, startPos, l.pos, "(", "(")

		case ')':
			l.read()
			return l.makeToken(RPAREN, startLine, startColumn, startPos, l.pos, ")", ")")

		case '{':
			if l.peek() == '-' {
				l.read()
				l.read()
				l.skipBlockComment(startLine, startColumn, startPos)
				continue
			}
			l.read()
			return l.makeToken(LBRACE, startLine, startColumn, startPos, l.pos, "{", "{")

		case '}':
			l.read()
			return l.makeToken(RBRACE, startLine, startColumn, startPos, l.pos, "}", "}")

		case '[':
			l.read()
			return l.makeToken(LBRACKET, startLine, startColumn, startPos, l.pos, "[", "[")

		case ']':
			l.read()
			return l.makeToken(RBRACKET, startLine, startColumn, startPos, l.pos, "]", "]")

		case '#':
			if l.peek() == '[' {
				l.read()
				l.read()
				return l.makeToken(HASHBRACK, startLine, startColumn, startPos, l.pos, "#[", "#[")
			}
			if isNumeralPrefix(l.peek()) {
				return l.scanPrefixedNumeral(startLine, startColumn, startPos)
			}
			l.read()
			tok := l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, "#", "#")
			l.addError(diag.CodeLexIllegalRune, "unexpected '#'", tok.Span)
			return tok

		case '"':
			return l.scanString(startLine, startColumn, startPos)

		case '\'':
			return l.scanChar(startLine, startColumn, startPos)

		case '\\':
			return l.scanEscapedDatum(startLine, startColumn, startPos)

		default:
			if isLetter(l.ch) {
				name := l.readIdentifier()
				tokType := LookupIdent(name)
				if tokType != IDENT {
					return l.makeToken(tokType, startLine, startColumn, startPos, l.pos, name, name)
				}
				if isSymbolicConstant(name) {
					lowered := hyphenate(toLower(name))
					return l.makeToken(SYMCONST, startLine, startColumn, startPos, l.pos, name, lowered)
				}
				return l.makeToken(IDENT, startLine, startColumn, startPos, l.pos, name, TranslateName(name))
			}
			if isDigit(l.ch) {
				return l.scanNumber(startLine, startColumn, startPos)
			}
			raw := string(l.ch)
			l.read()
			tok := l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, raw, raw)
			l.addError(diag.CodeLexIllegalRune, "illegal character "+strconv.Quote(raw), tok.Span)
			return tok
		}
	}
}

// scanEscapedDatum hands exactly one datum to the external reader and
// resumes scanning past the consumed span.
func (l *Scanner) scanEscapedDatum(startLine, startColumn, startPos int) Token {
	if l.reader == nil {
		l.read()
		tok := l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, "\\", "\\")
		l.addError(diag.CodeLexEscapeRead, "escape marker with no datum reader configured", tok.Span)
		return tok
	}

	datum, end, err := l.reader.ReadDatum(l.input, l.pos+1)
	if err != nil {
		l.read()
		tok := l.makeToken(ILLEGAL, startLine, startColumn, startPos, l.pos, "\\", "\\")
		l.addError(diag.CodeLexEscapeRead, "escape datum: "+err.Error(), tok.Span)
		return tok
	}

	if end > len(l.input) {
		end = len(l.input)
	}
	for l.pos < end {
		l.read()
	}

	raw := string(l.input[startPos:l.pos])
	tok := l.makeToken(ESCAPED, startLine, startColumn, startPos, l.pos, raw, raw)
	tok.Datum = datum
	return tok
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	// Numeric literals are restricted to ASCII digits.
	return ch >= '0' && ch <= '9'
}

func isIdentChar(ch rune) bool {
	return isLetter(ch) || isDigit(ch)
}

func toLower(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			runes[i] = r + ('a' - 'A')
		}
	}
	return string(runes)
}
