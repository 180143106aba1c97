package sexpr

import (
	"testing"
)

func readAll(t *testing.T, src string) Datum {
	t.Helper()

	d, end, err := Read([]rune(src), 0)
	if err != nil {
		t.Fatalf("Read(%q) failed: %v", src, err)
	}
	if end != len([]rune(src)) {
		t.Fatalf("Read(%q) stopped at %d of %d", src, end, len([]rune(src)))
	}
	return d
}

func TestReadWriteRoundTrip(t *testing.T) {
	// Write(Read(s)) is the canonical spelling of s.
	tests := []struct {
		src  string
		want string
	}{
		{"foo", "foo"},
		{"42", "42"},
		{"-1/2", "-1/2"},
		{"#x1f", "#x1f"},
		{`"hi there"`, `"hi there"`},
		{`"a\nb"`, `"a\nb"`},
		{"#t", "#t"},
		{"#false", "#f"},
		{`#\a`, `#\a`},
		{`#\space`, `#\space`},
		{`#\x41`, `#\A`},
		{`#\λ`, `#\λ`},
		{"()", "()"},
		{"(a b c)", "(a b c)"},
		{"( a  ( b )  c )", "(a (b) c)"},
		{"(a . b)", "(a . b)"},
		{"(a b . c)", "(a b . c)"},
		{"[a b]", "(a b)"},
		{"'x", "(quote x)"},
		{"`(a ,b ,@c)", "(quasiquote (a (unquote b) (unquote-splicing c)))"},
		{"#(1 2 3)", "#(1 2 3)"},
		{"#u8(0 128 255)", "#u8(0 128 255)"},
		{"(a ; comment\n b)", "(a b)"},
	}

	for _, tt := range tests {
		got := Write(readAll(t, tt.src))
		if got != tt.want {
			t.Errorf("Write(Read(%q)) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestReadStopsAfterOneDatum(t *testing.T) {
	src := []rune("(a b) trailing")
	d, end, err := Read(src, 0)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if Write(d) != "(a b)" {
		t.Fatalf("unexpected datum: %s", Write(d))
	}
	if string(src[end:]) != " trailing" {
		t.Fatalf("unexpected rest: %q", string(src[end:]))
	}
}

func TestReadErrors(t *testing.T) {
	tests := []string{
		"",
		"(a b",
		")",
		`"unterminated`,
		"(a . b c)",
		"#u8(300)",
		"#u8(x)",
		`#\nosuchchar`,
		"#z",
	}

	for _, src := range tests {
		if _, _, err := Read([]rune(src), 0); err == nil {
			t.Errorf("Read(%q) - expected an error", src)
		}
	}
}

func TestWriteStringEscapes(t *testing.T) {
	got := Write(Str("a\"b\\c\nd"))
	want := `"a\"b\\c\nd"`
	if got != want {
		t.Fatalf("Write = %q, want %q", got, want)
	}
}

func TestWriteImproperList(t *testing.T) {
	d := &List{Items: []Datum{Symbol("f"), Symbol("x")}, Tail: Symbol("rest")}
	if got := Write(d); got != "(f x . rest)" {
		t.Fatalf("Write = %q", got)
	}
}

func TestNewList(t *testing.T) {
	d := NewList(Symbol("define"), Symbol("x"), Num("1"))
	if got := Write(d); got != "(define x 1)" {
		t.Fatalf("Write = %q", got)
	}
}
