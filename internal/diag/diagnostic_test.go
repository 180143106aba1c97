package diag_test

import (
	"strings"
	"testing"

	"github.com/sable-lang/sable/internal/diag"
)

func TestSpanString(t *testing.T) {
	span := diag.Span{Filename: "lib.sbl", Line: 3, Column: 7}
	if got := span.String(); got != "lib.sbl:3:7" {
		t.Fatalf("expected %q, got %q", "lib.sbl:3:7", got)
	}

	span.Filename = ""
	if got := span.String(); got != "3:7" {
		t.Fatalf("expected %q, got %q", "3:7", got)
	}
}

func TestFormatterSnippet(t *testing.T) {
	var buf strings.Builder
	f := diag.NewFormatter(&buf)
	f.AddSource("main.sbl", "val x = case\n")

	f.Format(diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     diag.CodeParseUnexpectedToken,
		Message:  "expected expression after 'case'",
		Span:     diag.Span{Filename: "main.sbl", Line: 1, Column: 9, Start: 8, End: 12},
	})

	out := buf.String()
	if !strings.Contains(out, "error[PARSE_UNEXPECTED_TOKEN]: expected expression after 'case'") {
		t.Fatalf("missing header in output:\n%s", out)
	}
	if !strings.Contains(out, "val x = case") {
		t.Fatalf("missing source line in output:\n%s", out)
	}
	if !strings.Contains(out, "^^^^") {
		t.Fatalf("missing underline in output:\n%s", out)
	}
}

func TestFormatterFallbackWithoutSource(t *testing.T) {
	var buf strings.Builder
	f := diag.NewFormatter(&buf)

	f.Format(diag.Diagnostic{
		Severity: diag.SeverityError,
		Message:  "unterminated string literal",
		Span:     diag.Span{Filename: "other.sbl", Line: 2, Column: 4},
	})

	out := buf.String()
	if !strings.Contains(out, "--> other.sbl:2:4") {
		t.Fatalf("expected plain span pointer, got:\n%s", out)
	}
}
