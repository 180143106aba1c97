package translate_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sable-lang/sable/internal/diag"
	"github.com/sable-lang/sable/internal/sexpr"
	"github.com/sable-lang/sable/internal/translate"
)

func translateLines(t *testing.T, src string, opts ...translate.Option) []string {
	t.Helper()

	forms, diags := translate.Translate(src, opts...)
	if len(diags) > 0 {
		for _, d := range diags {
			t.Errorf("unexpected diagnostic: %s: %s", d.Code, d.Message)
		}
		t.Fatalf("translation of %q failed", src)
	}

	lines := make([]string, 0, len(forms))
	for _, form := range forms {
		lines = append(lines, sexpr.Write(form))
	}
	return lines
}

func checkTranslation(t *testing.T, src string, want ...string) {
	t.Helper()

	got := translateLines(t, src)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("translation of %q mismatch (-want +got):\n%s", src, diff)
	}
}

func TestTranslate_Literals(t *testing.T) {
	checkTranslation(t, `42`, "42")
	checkTranslation(t, `3.14`, "3.14")
	checkTranslation(t, `1/2`, "1/2")
	checkTranslation(t, `3+4i`, "3+4i")
	checkTranslation(t, `#x1f`, "#x1f")
	checkTranslation(t, `"hello"`, `"hello"`)
	checkTranslation(t, `'a'`, `#\a`)
	checkTranslation(t, `' '`, `#\space`)
	checkTranslation(t, `x`, "x")
	checkTranslation(t, `RED`, "(quote red)")
}

func TestTranslate_NameTranslation(t *testing.T) {
	checkTranslation(t, `is_null(x)`, "(null? x)")
	checkTranslation(t, `string_to_list(s)`, "(string->list s)")
	checkTranslation(t, `vector_set(v, 0, x)`, "(vector-set! v 0 x)")
	checkTranslation(t, `set_box(b, x)`, "(set-box! b x)")
	checkTranslation(t, `fx_add(a, b)`, "(fx+ a b)")
}

func TestTranslate_Operators(t *testing.T) {
	checkTranslation(t, `1 + 2 * 3`, "(+ 1 (* 2 3))")
	checkTranslation(t, `(1 + 2) * 3`, "(* (+ 1 2) 3)")
	checkTranslation(t, `a - b - c`, "(- (- a b) c)")
	checkTranslation(t, `a == b`, "(equal? a b)")
	checkTranslation(t, `a = b`, "(= a b)")
	checkTranslation(t, `a < b or a > c`, "(or (< a b) (> a c))")
	checkTranslation(t, `a and b or c`, "(or (and a b) c)")
	checkTranslation(t, `not a and b`, "(and (not a) b)")
	checkTranslation(t, `n quo d`, "(quotient n d)")
	checkTranslation(t, `n rem d`, "(remainder n d)")
	checkTranslation(t, `n div d`, "(div n d)")
	checkTranslation(t, `n mod d`, "(mod n d)")
	checkTranslation(t, `x : xs`, "(cons x xs)")
	checkTranslation(t, `a : b : rest`, "(cons a (cons b rest))")
	checkTranslation(t, `xs @ ys @ zs`, "(append xs (append ys zs))")
	checkTranslation(t, `-x`, "(- x)")
	checkTranslation(t, `-i`, "(- i)")
	checkTranslation(t, `+i`, "(+ i)")
	checkTranslation(t, `x + 2i`, "(+ x 2i)")
	checkTranslation(t, `x+2i`, "(+ x 2i)")
}

func TestTranslate_Applications(t *testing.T) {
	checkTranslation(t, `f()`, "(f)")
	checkTranslation(t, `f(x)`, "(f x)")
	checkTranslation(t, `f(x, y)`, "(f x y)")
	checkTranslation(t, `f(x)(y)`, "((f x) y)")
	checkTranslation(t, `f(g(x))`, "(f (g x))")
	checkTranslation(t, `f(x + 1, y)`, "(f (+ x 1) y)")
}

func TestTranslate_Splices(t *testing.T) {
	checkTranslation(t, `f(a, @rest)`, "(apply f a rest)")
	checkTranslation(t, `f(@xs)`, "(apply f xs)")
	checkTranslation(t, `f(@xs, b)`, "(apply f (append xs (list b)))")
	checkTranslation(t, `[a, b, @rest]`, "(apply list a b rest)")
	checkTranslation(t, `#[a, @xs]`, "(apply vector a xs)")
}

func TestTranslate_SpliceAppendMode(t *testing.T) {
	got := translateLines(t, `[a, b, @rest]`, translate.WithSpliceApply(false))
	want := []string{"(append (list a b) rest)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTranslate_Constructors(t *testing.T) {
	checkTranslation(t, `[]`, "(list)")
	checkTranslation(t, `[1, 2, 3]`, "(list 1 2 3)")
	checkTranslation(t, `#[1, 2]`, "(vector 1 2)")
	checkTranslation(t, `()`, "(values)")
	checkTranslation(t, `(a, b)`, "(values a b)")
	checkTranslation(t, `(a)`, "a")
}

func TestTranslate_Lambdas(t *testing.T) {
	checkTranslation(t, `fn (x) -> x`, "(lambda (x) x)")
	checkTranslation(t, `fn (x, y) -> x + y`, "(lambda (x y) (+ x y))")
	checkTranslation(t, `fn args -> args`, "(lambda args args)")
	checkTranslation(t, `fn (x, @rest) -> rest`, "(lambda (x . rest) rest)")
	checkTranslation(t, `fn () -> 1`, "(lambda () 1)")
	checkTranslation(t, `fn of { (x) -> x | (x, y) -> y }`,
		"(case-lambda ((x) x) ((x y) y))")
}

func TestTranslate_Conditionals(t *testing.T) {
	checkTranslation(t, `if a then b else c`, "(if a b c)")
	checkTranslation(t, `if a then b`, "(if a b)")
	checkTranslation(t, `cond { a -> 1 | b -> 2 }`, "(cond (a 1) (b 2))")
	checkTranslation(t, `cond { a -> 1 | 2 }`, "(cond (a 1) (else 2))")
	checkTranslation(t, `cond { lookup(k) -> . | 0 }`,
		"(cond ((lookup k)) (else 0))")
	checkTranslation(t, `cond { lookup(k) -> . use | 0 }`,
		"(cond ((lookup k) => use) (else 0))")
}

func TestTranslate_Case(t *testing.T) {
	checkTranslation(t, `case x of { RED -> 0 | GREEN -> 1 }`,
		"(case x ((red) 0) ((green) 1))")
	checkTranslation(t, `case x of { 1, 2 -> a | other(x) }`,
		"(case x ((1 2) a) (else (other x)))")
	checkTranslation(t, `case x of { "y" -> 1 | 'n' -> 0 | -> . handle }`,
		`(case x (("y") 1) ((#\n) 0) (else => handle))`)
}

func TestTranslate_LayoutMatchesExplicitBraces(t *testing.T) {
	tests := []struct {
		layout   string
		explicit string
	}{
		{
			layout:   "case x of\n  RED -> 0\n  GREEN -> 1",
			explicit: "case x of { RED -> 0 | GREEN -> 1 }",
		},
		{
			layout:   "do\n  f(x)\n  g(y)",
			explicit: "do { f(x); g(y) }",
		},
		{
			layout:   "cond\n  a -> 1\n  b -> 2\n  0",
			explicit: "cond { a -> 1 | b -> 2 | 0 }",
		},
	}

	for _, tt := range tests {
		got := translateLines(t, tt.layout)
		want := translateLines(t, tt.explicit)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("layout form %q diverges from explicit form (-explicit +layout):\n%s",
				tt.layout, diff)
		}
	}
}

func TestTranslate_Blocks(t *testing.T) {
	checkTranslation(t, `do { x }`, "x")
	checkTranslation(t, `do { f(x); g(y) }`, "(begin (f x) (g y))")
	checkTranslation(t, `do { val x = 1; x }`, "(let () (define x 1) x)")
	checkTranslation(t, `{ f(x); y }`, "(begin (f x) y)")
}

func TestTranslate_Lets(t *testing.T) {
	checkTranslation(t, `let val x = 1 in x`, "(let ((x 1)) x)")
	checkTranslation(t, `let val x = 1, y = 2 in x + y`,
		"(let ((x 1) (y 2)) (+ x y))")
	checkTranslation(t, `letrec val even(n) = odd(n) in even(10)`,
		"(letrec ((even (lambda (n) (odd n)))) (even 10))")
	checkTranslation(t, `let val (q, r) = divide(a, b) in q`,
		"(let-values (((q r) (divide a b))) q)")
	checkTranslation(t, `let param depth = 0 in render()`,
		"(parameterize ((depth 0)) (render))")
	checkTranslation(t, `let go (n = 0) in go(n + 1)`,
		"(let go ((n 0)) (go (+ n 1)))")
	checkTranslation(t, `let syntax s = rules() of { s(x) -> x } in s(1)`,
		"(let-syntax ((s (syntax-rules () ((s x) x)))) (s 1))")
	checkTranslation(t, `let val x = 1 in do { f(x); x }`,
		"(let ((x 1)) (f x) x)")
}

func TestTranslate_For(t *testing.T) {
	checkTranslation(t,
		`for i = 0 then i + 1 until i == 10 -> acc do { f(i) }`,
		"(do ((i 0 (+ i 1))) ((equal? i 10) acc) (f i))")
	checkTranslation(t,
		`for i = 0 then i + 1 until done(i) do { f(i) }`,
		"(do ((i 0 (+ i 1))) ((done i)) (f i))")
	checkTranslation(t,
		`for x = a, y = b then step(y) until stop(x) -> y do { touch(x, y) }`,
		"(do ((x a) (y b (step y))) ((stop x) y) (touch x y))")
}

func TestTranslate_Guard(t *testing.T) {
	checkTranslation(t,
		`guard e of { is_file_error(e) -> . recover } do { read_all(port) }`,
		"(guard (e ((file-error? e) => recover) (else (raise-continuable e))) (read-all port))")
	checkTranslation(t,
		`guard e of { -> . handle } do { run() }`,
		"(guard (e (else (handle e))) (run))")
}

func TestTranslate_GuardRequiresElseMode(t *testing.T) {
	_, diags := translate.Translate(
		`guard e of { is_error(e) -> . recover } do { run() }`,
		translate.WithReraiseUnmatched(false))
	if len(diags) == 0 {
		t.Fatalf("expected a diagnostic for guard without a final '-> .' clause")
	}
	if diags[0].Code != diag.CodeEmitMissingElse {
		t.Fatalf("expected %s, got %s", diag.CodeEmitMissingElse, diags[0].Code)
	}
}

func TestTranslate_Definitions(t *testing.T) {
	checkTranslation(t, `val x = 1`, "(define x 1)")
	checkTranslation(t, `val f(x) = x + 1`, "(define (f x) (+ x 1))")
	checkTranslation(t, `val f(a, @rest) = rest`, "(define (f a . rest) rest)")
	checkTranslation(t, `val (q, r) = divide(a, b)`,
		"(define-values (q r) (divide a b))")
	checkTranslation(t, `val f(x) = do { val y = x + 1; y * 2 }`,
		"(define (f x) (define y (+ x 1)) (* y 2))")
	checkTranslation(t, `record point(x, y)`,
		"(define-record-type point (make-point x y) point? (x point-x) (y point-y))")
	checkTranslation(t, `record sentinel()`,
		"(define-record-type sentinel (make-sentinel) sentinel?)")
	checkTranslation(t, `syntax twice = rules() of { twice(x) -> x + x }`,
		"(define-syntax twice (syntax-rules () ((twice x) (+ x x))))")
	checkTranslation(t, `include "prelude.scm"`, `(include "prelude.scm")`)
	checkTranslation(t, `include_ci "legacy.scm"`, `(include-ci "legacy.scm")`)
}

func TestTranslate_Imports(t *testing.T) {
	checkTranslation(t, `import scheme.base`, "(import (scheme base))")
	checkTranslation(t, `import scheme.base, scheme.write`,
		"(import (scheme base) (scheme write))")
	checkTranslation(t, `import scheme.base exposing (car, cdr)`,
		"(import (only (scheme base) car cdr))")
	checkTranslation(t, `import scheme.base hiding (car)`,
		"(import (except (scheme base) car))")
	checkTranslation(t, `import scheme.base renaming (car as head, cdr as tail)`,
		"(import (rename (scheme base) (car head) (cdr tail)))")
	checkTranslation(t, `import scheme.base qualifying base`,
		"(import (prefix (scheme base) base))")
	checkTranslation(t, `import scheme.base hiding (car) qualifying b`,
		"(import (prefix (except (scheme base) car) b))")
}

func TestTranslate_Library(t *testing.T) {
	checkTranslation(t,
		`library my.utils exposing (twice) with { import scheme.base; val twice(x) = x * 2 }`,
		"(define-library (my utils) (export twice) (import (scheme base)) (define (twice x) (* x 2)))")
	checkTranslation(t,
		`library empty.shell with { include "body.scm" }`,
		`(define-library (empty shell) (include "body.scm"))`)
}

func TestTranslate_EscapedDatum(t *testing.T) {
	checkTranslation(t, `\(a b c)`, "(a b c)")
	checkTranslation(t, `\'(1 2)`, "(quote (1 2))")
	checkTranslation(t, `f(\#u8(1 2))`, "(f #u8(1 2))")
}

func TestTranslate_EscapeRoundTrip(t *testing.T) {
	sources := []string{
		`f(x + 1, [a, @rest])`,
		`if is_null(xs) then 0 else car(xs)`,
		`case x of { RED -> 0 | GREEN -> 1 }`,
	}
	for _, src := range sources {
		first := translateLines(t, src)
		for _, line := range first {
			again := translateLines(t, `\`+line)
			if diff := cmp.Diff([]string{line}, again); diff != "" {
				t.Errorf("re-translating %q not stable (-want +got):\n%s", line, diff)
			}
		}
	}
}

func TestTranslate_MultipleForms(t *testing.T) {
	checkTranslation(t, "val x = 1\nval y = x + 1\ny",
		"(define x 1)", "(define y (+ x 1))", "y")
}

func TestTranslate_Diagnostics(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"chained comparison", `a < b < c`, diag.CodeParseChainedCompare},
		{"misplaced splice", `@xs`, diag.CodeParseMisplacedSplice},
		{"reserved word binding", `val if = 1`, diag.CodeNameReservedWord},
		{"tab indentation", "do\n\tf(x)", diag.CodeLexTabIndent},
		{"unclosed block", `do { f(x)`, diag.CodeLayoutUnclosedBlock},
		{"empty block", `do { }`, diag.CodeParseEmptyBlock},
		{"misplaced else clause", `cond { 1 | a -> 2 }`, diag.CodeParseMisplacedClause},
		{"letrec destructuring", `letrec val (a, b) = p in a`, diag.CodeEmitUnsupported},
		{"parameterize destructuring", `let param (a, b) = f() in a`, diag.CodeEmitUnsupported},
		{"named let destructuring", `let go ((a, b) = f()) in go(1)`, diag.CodeEmitUnsupported},
		{"syntax binding destructuring",
			`let syntax (a, b) = rules() of { a(x) -> x } in a(1)`, diag.CodeEmitUnsupported},
		{"misaligned dedent", "do\n    do\n        f(x)\n      g(y)", diag.CodeLayoutMisalignedEntry},
		{"hex escape beyond unicode", `"\xFFFFFFFF;"`, diag.CodeLexBadEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diags := translate.Translate(tt.src)
			if len(diags) == 0 {
				t.Fatalf("expected a diagnostic for %q", tt.src)
			}
			for _, d := range diags {
				if d.Code == tt.code {
					return
				}
			}
			t.Fatalf("expected code %s in %v", tt.code, diags)
		})
	}
}
