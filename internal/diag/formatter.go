package diag

import (
	"fmt"
	"io"
	"strings"
)

// Formatter formats diagnostics with source code snippets.
type Formatter struct {
	out         io.Writer
	sourceCache map[string]string // source text by filename
}

// NewFormatter creates a new diagnostic formatter writing to out.
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{
		out:         out,
		sourceCache: make(map[string]string),
	}
}

// AddSource registers source text for a filename so spans can be rendered
// with a snippet. Unregistered files fall back to the simple format.
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

// Format formats and prints a diagnostic.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	src, ok := f.sourceCache[d.Span.Filename]
	if !ok || !d.Span.IsValid() {
		if d.Span.IsValid() {
			fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
		}
		f.printTrailer(d)
		return
	}

	f.printSnippet(src, d.Span)
	f.printTrailer(d)
}

// printHeader prints the error header (error[CODE]: message).
func (f *Formatter) printHeader(d Diagnostic) {
	severity := string(d.Severity)
	if severity == "" {
		severity = "error"
	}

	if d.Code != "" {
		fmt.Fprintf(f.out, "%s[%s]: %s\n", severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(f.out, "%s: %s\n", severity, d.Message)
	}
}

// printSnippet prints the offending source line with a caret underline.
func (f *Formatter) printSnippet(src string, span Span) {
	lines := strings.Split(src, "\n")
	if span.Line < 1 || span.Line > len(lines) {
		fmt.Fprintf(f.out, "  --> %s\n", span.String())
		return
	}

	lineContent := lines[span.Line-1]
	lineNumStr := fmt.Sprintf("%d", span.Line)
	pad := strings.Repeat(" ", len(lineNumStr))

	fmt.Fprintf(f.out, " %s--> %s\n", pad, span.String())
	fmt.Fprintf(f.out, " %s |\n", pad)
	fmt.Fprintf(f.out, " %s | %s\n", lineNumStr, lineContent)

	width := span.End - span.Start
	if width < 1 {
		width = 1
	}
	if span.Column-1+width > len(lineContent) {
		width = max(1, len(lineContent)-(span.Column-1))
	}
	underline := strings.Repeat(" ", max(0, span.Column-1)) + strings.Repeat("^", width)
	fmt.Fprintf(f.out, " %s | %s\n", pad, underline)
}

// printTrailer prints notes and help text.
func (f *Formatter) printTrailer(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.out, "  = note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(f.out, "help: %s\n", d.Help)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
