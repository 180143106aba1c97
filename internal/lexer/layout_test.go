package lexer

import (
	"testing"

	"github.com/sable-lang/sable/internal/diag"
)

func collectTypes(t *testing.T, input string) []TokenType {
	t.Helper()
	s := NewStream(input)
	var types []TokenType
	for {
		tok := s.NextToken()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			return types
		}
	}
}

func sameTypes(a, b []TokenType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLayout_BlockEquivalence(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		explicit string
	}{
		{
			name:     "do block",
			layout:   "do\n  f(x)\n  g(y)",
			explicit: "do { f(x); g(y) }",
		},
		{
			name:     "case alternatives",
			layout:   "case x of\n  RED -> 0\n  GREEN -> 1",
			explicit: "case x of { RED -> 0 | GREEN -> 1 }",
		},
		{
			name:     "cond alternatives",
			layout:   "cond\n  a -> 1\n  2",
			explicit: "cond { a -> 1 | 2 }",
		},
		{
			name:     "nested blocks close on dedent",
			layout:   "do\n  a\n  do\n    b\n  c",
			explicit: "do { a; do { b }; c }",
		},
		{
			name:     "continuation lines stay in the entry",
			layout:   "do\n  f(x,\n      y)\n  g",
			explicit: "do { f(x, y); g }",
		},
		{
			name:     "explicit brace closes inner implicit contexts",
			layout:   "do { case x of RED -> 1 }",
			explicit: "do { case x of { RED -> 1 } }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectTypes(t, tt.layout)
			want := collectTypes(t, tt.explicit)
			if !sameTypes(got, want) {
				t.Fatalf("token streams differ.\nlayout:   %v\nexplicit: %v", got, want)
			}
		})
	}
}

func TestLayout_VirtualTokensAreMarked(t *testing.T) {
	s := NewStream("do\n  a\n  b")

	var virtuals []TokenType
	for {
		tok := s.NextToken()
		if tok.Type == EOF {
			break
		}
		if tok.Virtual {
			if tok.Span.Start != tok.Span.End {
				t.Fatalf("virtual %q has nonzero width span %v", tok.Type, tok.Span)
			}
			virtuals = append(virtuals, tok.Type)
		}
	}

	want := []TokenType{LBRACE, SEMICOLON, RBRACE}
	if !sameTypes(virtuals, want) {
		t.Fatalf("virtual tokens wrong. expected=%v, got=%v", want, virtuals)
	}
}

func TestLayout_UnclosedExplicitBrace(t *testing.T) {
	s := NewStream("do { a")
	for tok := s.NextToken(); tok.Type != EOF; tok = s.NextToken() {
	}
	if len(s.Errors()) == 0 {
		t.Fatalf("expected unclosed block error")
	}
}

func TestLayout_UnmatchedClose(t *testing.T) {
	s := NewStream("a }")
	for tok := s.NextToken(); tok.Type != EOF; tok = s.NextToken() {
	}
	if len(s.Errors()) == 0 {
		t.Fatalf("expected unmatched '}' error")
	}
}

func TestLayout_MisalignedDedent(t *testing.T) {
	// Dedenting to a column between two reference columns closes the
	// inner block but aligns with nothing.
	s := NewStream("do\n    do\n        f(x)\n      g(y)")
	for tok := s.NextToken(); tok.Type != EOF; tok = s.NextToken() {
	}
	errs := s.Errors()
	if len(errs) == 0 {
		t.Fatalf("expected a misaligned dedent error")
	}
	if errs[0].Code != diag.CodeLayoutMisalignedEntry {
		t.Fatalf("error code wrong. expected=%q, got=%q",
			diag.CodeLayoutMisalignedEntry, errs[0].Code)
	}
}

func TestLayout_DedentToOuterColumnAccepted(t *testing.T) {
	got := collectTypes(t, "do\n    a\n    do\n        b\n    c")
	want := []TokenType{
		DO, LBRACE, IDENT, SEMICOLON,
		DO, LBRACE, IDENT, RBRACE, SEMICOLON, IDENT,
		RBRACE, EOF,
	}
	if !sameTypes(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLayout_EOFClosesImplicitBlocks(t *testing.T) {
	got := collectTypes(t, "do\n  a")
	want := []TokenType{DO, LBRACE, IDENT, RBRACE, EOF}
	if !sameTypes(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
