package diag

import "fmt"

// Stage identifies which translator phase produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageLayout Stage = "layout"
	StageParser Stage = "parser"
	StageEmit   Stage = "emit"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Lexical errors
	CodeLexUnterminatedString       Code = "LEX_UNTERMINATED_STRING"
	CodeLexUnterminatedChar         Code = "LEX_UNTERMINATED_CHAR"
	CodeLexUnterminatedBlockComment Code = "LEX_UNTERMINATED_BLOCK_COMMENT"
	CodeLexBadEscape                Code = "LEX_BAD_ESCAPE"
	CodeLexMalformedNumeral         Code = "LEX_MALFORMED_NUMERAL"
	CodeLexIllegalRune              Code = "LEX_ILLEGAL_RUNE"
	CodeLexTabIndent                Code = "LEX_TAB_INDENT"
	CodeLexEscapeRead               Code = "LEX_ESCAPE_READ"

	// Layout errors
	CodeLayoutUnmatchedClose  Code = "LAYOUT_UNMATCHED_CLOSE"
	CodeLayoutUnclosedBlock   Code = "LAYOUT_UNCLOSED_BLOCK"
	CodeLayoutMisalignedEntry Code = "LAYOUT_MISALIGNED_ENTRY"

	// Syntax errors
	CodeParseUnexpectedToken Code = "PARSE_UNEXPECTED_TOKEN"
	CodeParseMissingArrow    Code = "PARSE_MISSING_ARROW"
	CodeParseEmptyBlock      Code = "PARSE_EMPTY_BLOCK"
	CodeParseBadFormals      Code = "PARSE_BAD_FORMALS"
	CodeParseMisplacedClause Code = "PARSE_MISPLACED_CLAUSE"
	CodeParseChainedCompare  Code = "PARSE_CHAINED_COMPARE"
	CodeParseMisplacedSplice Code = "PARSE_MISPLACED_SPLICE"

	// Name errors
	CodeNameReservedWord Code = "NAME_RESERVED_WORD"

	// Emitter errors
	CodeEmitUnsupported  Code = "EMIT_UNSUPPORTED"
	CodeEmitMissingElse  Code = "EMIT_MISSING_ELSE"
	CodeEmitForeignDatum Code = "EMIT_FOREIGN_DATUM"
)

// Span represents a location in source code.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// Diagnostic is a translator diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
	Notes    []string
	Help     string
}

// WithNote adds a note to the diagnostic.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// WithHelp adds help text to the diagnostic.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}
