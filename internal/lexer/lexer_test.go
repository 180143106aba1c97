package lexer

import (
	"testing"

	"github.com/sable-lang/sable/internal/diag"
)

func TestNextToken_Basic(t *testing.T) {
	input := `val x = 10`

	tests := []struct {
		expectedType TokenType
		expectedRaw  string
	}{
		{VAL, "val"},
		{IDENT, "x"},
		{ASSIGN, "="},
		{INT, "10"},
		{EOF, ""},
	}

	s := NewScanner(input)

	for i, tt := range tests {
		tok := s.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Raw != tt.expectedRaw {
			t.Fatalf("tests[%d] - raw wrong. expected=%q, got=%q",
				i, tt.expectedRaw, tok.Raw)
		}
	}
}

func TestNextToken_Operators(t *testing.T) {
	input := `= == < <= > >= + - * / : @ -> , ; | . ( ) { } [ ] #[`

	tests := []TokenType{
		ASSIGN, EQ, LT, LE, GT, GE, PLUS, MINUS, STAR, SLASH,
		COLON, AT, ARROW, COMMA, SEMICOLON, BAR, DOT,
		LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET, HASHBRACK,
		EOF,
	}

	s := NewScanner(input)

	for i, expected := range tests {
		tok := s.NextToken()
		if tok.Type != expected {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, expected, tok.Type)
		}
	}
}

func TestNextToken_Keywords(t *testing.T) {
	input := `fn if then else cond case of do with let letrec in val syntax rules param for until guard record import library include include_ci not and or quo rem div mod`

	tests := []struct {
		expectedType TokenType
		expectedRaw  string
	}{
		{FN, "fn"},
		{IF, "if"},
		{THEN, "then"},
		{ELSE, "else"},
		{COND, "cond"},
		{CASE, "case"},
		{OF, "of"},
		{DO, "do"},
		{WITH, "with"},
		{LET, "let"},
		{LETREC, "letrec"},
		{IN, "in"},
		{VAL, "val"},
		{SYNTAX, "syntax"},
		{RULES, "rules"},
		{PARAM, "param"},
		{FOR, "for"},
		{UNTIL, "until"},
		{GUARD, "guard"},
		{RECORD, "record"},
		{IMPORT, "import"},
		{LIBRARY, "library"},
		{INCLUDE, "include"},
		{INCLUDECI, "include_ci"},
		{NOT, "not"},
		{AND, "and"},
		{OR, "or"},
		{QUO, "quo"},
		{REM, "rem"},
		{DIV, "div"},
		{MOD, "mod"},
		{EOF, ""},
	}

	s := NewScanner(input)

	for i, tt := range tests {
		tok := s.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Raw != tt.expectedRaw {
			t.Fatalf("tests[%d] - raw wrong. expected=%q, got=%q",
				i, tt.expectedRaw, tok.Raw)
		}
	}
}

func TestNextToken_IdentifierTranslation(t *testing.T) {
	input := `is_null string_to_list vector_set set_box fx_add sort_mut list_length`

	tests := []struct {
		expectedRaw   string
		expectedValue string
	}{
		{"is_null", "null?"},
		{"string_to_list", "string->list"},
		{"vector_set", "vector-set!"},
		{"set_box", "set-box!"},
		{"fx_add", "fx+"},
		{"sort_mut", "sort!"},
		{"list_length", "list-length"},
	}

	s := NewScanner(input)

	for i, tt := range tests {
		tok := s.NextToken()
		if tok.Type != IDENT {
			t.Fatalf("tests[%d] - expected IDENT, got %q", i, tok.Type)
		}
		if tok.Raw != tt.expectedRaw {
			t.Fatalf("tests[%d] - raw wrong. expected=%q, got=%q",
				i, tt.expectedRaw, tok.Raw)
		}
		if tok.Value != tt.expectedValue {
			t.Fatalf("tests[%d] - value wrong. expected=%q, got=%q",
				i, tt.expectedValue, tok.Value)
		}
	}
}

func TestNextToken_SymbolicConstants(t *testing.T) {
	input := `RED GREEN_LIGHT HTTP_404 red Red`

	tests := []struct {
		expectedType  TokenType
		expectedRaw   string
		expectedValue string
	}{
		{SYMCONST, "RED", "red"},
		{SYMCONST, "GREEN_LIGHT", "green-light"},
		{SYMCONST, "HTTP_404", "http-404"},
		{IDENT, "red", "red"},
		{IDENT, "Red", "Red"},
	}

	s := NewScanner(input)

	for i, tt := range tests {
		tok := s.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}
		if tok.Raw != tt.expectedRaw {
			t.Fatalf("tests[%d] - raw wrong. expected=%q, got=%q",
				i, tt.expectedRaw, tok.Raw)
		}
		if tok.Value != tt.expectedValue {
			t.Fatalf("tests[%d] - value wrong. expected=%q, got=%q",
				i, tt.expectedValue, tok.Value)
		}
	}
}

func TestNextToken_Strings(t *testing.T) {
	tests := []struct {
		input         string
		expectedValue string
	}{
		{`"hello"`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"quote\"inside"`, `quote"inside`},
		{`"\x41;BC"`, "ABC"},
		{`"\x3bb;"`, "λ"},
		{"\"line \\\n   continued\"", "line continued"},
	}

	for i, tt := range tests {
		s := NewScanner(tt.input)
		tok := s.NextToken()
		if tok.Type != STRING {
			t.Fatalf("tests[%d] - expected STRING, got %q (%q)", i, tok.Type, tok.Raw)
		}
		if tok.Value != tt.expectedValue {
			t.Fatalf("tests[%d] - value wrong. expected=%q, got=%q",
				i, tt.expectedValue, tok.Value)
		}
		if len(s.Errors) != 0 {
			t.Fatalf("tests[%d] - unexpected errors: %v", i, s.Errors)
		}
	}
}

func TestNextToken_StringHexEscapeNeedsTerminator(t *testing.T) {
	s := NewScanner(`"\x41"`)
	s.NextToken()
	if len(s.Errors) == 0 {
		t.Fatalf("expected error for hex escape without ';' in string")
	}
}

func TestNextToken_StringHexEscapeBeyondUnicode(t *testing.T) {
	s := NewScanner(`"\xFFFFFFFF;"`)
	s.NextToken()
	if len(s.Errors) == 0 {
		t.Fatalf("expected error for hex escape beyond the unicode range")
	}
	if s.Errors[0].Code != diag.CodeLexBadEscape {
		t.Fatalf("error code wrong. expected=%q, got=%q",
			diag.CodeLexBadEscape, s.Errors[0].Code)
	}
}

func TestNextToken_Chars(t *testing.T) {
	tests := []struct {
		input         string
		expectedValue string
	}{
		{`'a'`, "a"},
		{`'\n'`, "\n"},
		{`'\''`, "'"},
		{`'\x41'`, "A"},
		{`'\x41;'`, "A"},
		{`' '`, " "},
	}

	for i, tt := range tests {
		s := NewScanner(tt.input)
		tok := s.NextToken()
		if tok.Type != CHAR {
			t.Fatalf("tests[%d] - expected CHAR, got %q (%q)", i, tok.Type, tok.Raw)
		}
		if tok.Value != tt.expectedValue {
			t.Fatalf("tests[%d] - value wrong. expected=%q, got=%q",
				i, tt.expectedValue, tok.Value)
		}
		if len(s.Errors) != 0 {
			t.Fatalf("tests[%d] - unexpected errors: %v", i, s.Errors)
		}
	}
}

func TestNextToken_UnterminatedString(t *testing.T) {
	s := NewScanner(`"abc`)
	s.NextToken()
	if len(s.Errors) == 0 {
		t.Fatalf("expected unterminated string error")
	}
}

func TestNextToken_Comments(t *testing.T) {
	input := `x -- trailing comment
{- block
   comment -} y {- nested {- inner -} still comment -} z`

	tests := []string{"x", "y", "z"}

	s := NewScanner(input)
	for i, expected := range tests {
		tok := s.NextToken()
		if tok.Type != IDENT || tok.Raw != expected {
			t.Fatalf("tests[%d] - expected IDENT %q, got %q %q",
				i, expected, tok.Type, tok.Raw)
		}
	}
	if tok := s.NextToken(); tok.Type != EOF {
		t.Fatalf("expected EOF, got %q", tok.Type)
	}
	if len(s.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", s.Errors)
	}
}

func TestNextToken_UnterminatedBlockComment(t *testing.T) {
	s := NewScanner(`x {- never closed`)
	s.NextToken()
	for tok := s.NextToken(); tok.Type != EOF; tok = s.NextToken() {
	}
	if len(s.Errors) == 0 {
		t.Fatalf("expected unterminated block comment error")
	}
}

func TestNextToken_Numbers(t *testing.T) {
	tests := []struct {
		input        string
		expectedType TokenType
	}{
		{"42", INT},
		{"3.14", FLOAT},
		{"1e9", FLOAT},
		{"2.5e-3", FLOAT},
		{"4i", IMAG},
		{"#x1f", NUM},
		{"#b1010", NUM},
		{"#o17", NUM},
		{"#e1.5", NUM},
	}

	for i, tt := range tests {
		s := NewScanner(tt.input)
		tok := s.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] (%q) - tokentype wrong. expected=%q, got=%q",
				i, tt.input, tt.expectedType, tok.Type)
		}
		if tok.Raw != tt.input {
			t.Fatalf("tests[%d] - raw wrong. expected=%q, got=%q",
				i, tt.input, tok.Raw)
		}
		if len(s.Errors) != 0 {
			t.Fatalf("tests[%d] - unexpected errors: %v", i, s.Errors)
		}
	}
}

func TestNextToken_MalformedNumber(t *testing.T) {
	for _, input := range []string{"12abc", "#xZZ", "#q12"} {
		s := NewScanner(input)
		s.NextToken()
		for tok := s.NextToken(); tok.Type != EOF; tok = s.NextToken() {
		}
		if len(s.Errors) == 0 {
			t.Fatalf("input %q - expected a lex error", input)
		}
	}
}

func TestNextToken_EscapedDatum(t *testing.T) {
	s := NewScanner(`\(a b c) x`)
	s.SetReader(stubReader{})

	tok := s.NextToken()
	if tok.Type != ESCAPED {
		t.Fatalf("expected ESCAPED, got %q", tok.Type)
	}
	if tok.Raw != `\(a b c)` {
		t.Fatalf("raw wrong: %q", tok.Raw)
	}
	if tok.Datum != "stub" {
		t.Fatalf("datum wrong: %v", tok.Datum)
	}

	next := s.NextToken()
	if next.Type != IDENT || next.Raw != "x" {
		t.Fatalf("expected IDENT x after escape, got %q %q", next.Type, next.Raw)
	}
}

func TestNextToken_EscapeWithoutReader(t *testing.T) {
	s := NewScanner(`\foo`)
	tok := s.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %q", tok.Type)
	}
	if len(s.Errors) == 0 {
		t.Fatalf("expected escape error without reader")
	}
}

// stubReader consumes through the matching close paren and reports a
// fixed datum.
type stubReader struct{}

func (stubReader) ReadDatum(src []rune, pos int) (any, int, error) {
	depth := 0
	for i := pos; i < len(src); i++ {
		switch src[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return "stub", i + 1, nil
			}
		}
	}
	return "stub", len(src), nil
}
