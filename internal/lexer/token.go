package lexer

// TokenType represents the type of a token
type TokenType string

// Span represents the source location of a token
type Span struct {
	Filename string // optional source filename for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // index in []rune or original string
	End      int    // exclusive end index
}

// Token represents a lexical token. Virtual tokens are block/separator
// punctuation inserted by the layout engine; they carry the span of the
// token that provoked them. Datum is only set on ESCAPED tokens and holds
// the opaque value produced by the escape delegate.
type Token struct {
	Type    TokenType
	Raw     string // exact runes from source
	Value   string // decoded value (strings/chars/identifiers), same as Raw otherwise
	Span    Span
	Virtual bool
	Datum   any
}

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers, symbolic constants, escape-hatch data
	IDENT    TokenType = "IDENT"    // null?, string->list, x
	SYMCONST TokenType = "SYMCONST" // RED, GREEN (all-uppercase source spelling)
	ESCAPED  TokenType = "ESCAPED"  // \datum handed to the external reader

	// Literals
	INT      TokenType = "INT"      // 42
	FLOAT    TokenType = "FLOAT"    // 3.14, 1e9
	RATIONAL TokenType = "RATIONAL" // 1/2 (reconstructed)
	COMPLEX  TokenType = "COMPLEX"  // 3+4i, 1@2 (reconstructed)
	IMAG     TokenType = "IMAG"     // 4i
	NUM      TokenType = "NUM"      // #x1f, #e1.5 (prefixed numeral, kept verbatim)
	STRING   TokenType = "STRING"   // "hello"
	CHAR     TokenType = "CHAR"     // 'a'

	// Operators
	ASSIGN TokenType = "="
	EQ     TokenType = "=="
	LT     TokenType = "<"
	LE     TokenType = "<="
	GT     TokenType = ">"
	GE     TokenType = ">="
	PLUS   TokenType = "+"
	MINUS  TokenType = "-"
	STAR   TokenType = "*"
	SLASH  TokenType = "/"
	COLON  TokenType = ":"
	AT     TokenType = "@"
	ARROW  TokenType = "->"

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	BAR       TokenType = "|"
	DOT       TokenType = "."
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"
	HASHBRACK TokenType = "#[" // vector constructor opener

	// Keywords
	FN         TokenType = "FN"
	IF         TokenType = "IF"
	THEN       TokenType = "THEN"
	ELSE       TokenType = "ELSE"
	COND       TokenType = "COND"
	CASE       TokenType = "CASE"
	OF         TokenType = "OF"
	DO         TokenType = "DO"
	WITH       TokenType = "WITH"
	LET        TokenType = "LET"
	LETREC     TokenType = "LETREC"
	IN         TokenType = "IN"
	VAL        TokenType = "VAL"
	SYNTAX     TokenType = "SYNTAX"
	RULES      TokenType = "RULES"
	PARAM      TokenType = "PARAM"
	FOR        TokenType = "FOR"
	UNTIL      TokenType = "UNTIL"
	GUARD      TokenType = "GUARD"
	RECORD     TokenType = "RECORD"
	IMPORT     TokenType = "IMPORT"
	LIBRARY    TokenType = "LIBRARY"
	INCLUDE    TokenType = "INCLUDE"
	INCLUDECI  TokenType = "INCLUDE_CI"
	NOT        TokenType = "NOT"
	AND        TokenType = "AND"
	OR         TokenType = "OR"
	QUO        TokenType = "QUO"
	REM        TokenType = "REM"
	DIV        TokenType = "DIV"
	MOD        TokenType = "MOD"
)

var keywords = map[string]TokenType{
	"fn":         FN,
	"if":         IF,
	"then":       THEN,
	"else":       ELSE,
	"cond":       COND,
	"case":       CASE,
	"of":         OF,
	"do":         DO,
	"with":       WITH,
	"let":        LET,
	"letrec":     LETREC,
	"in":         IN,
	"val":        VAL,
	"syntax":     SYNTAX,
	"rules":      RULES,
	"param":      PARAM,
	"for":        FOR,
	"until":      UNTIL,
	"guard":      GUARD,
	"record":     RECORD,
	"import":     IMPORT,
	"library":    LIBRARY,
	"include":    INCLUDE,
	"include_ci": INCLUDECI,
	"not":        NOT,
	"and":        AND,
	"or":         OR,
	"quo":        QUO,
	"rem":        REM,
	"div":        DIV,
	"mod":        MOD,
}

// LookupIdent checks if the identifier is a reserved word. Contextual
// keywords (exposing, hiding, renaming, qualifying, as) stay IDENT; the
// parser recognizes them by value in their grammatical positions.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword reports whether tt is a reserved word token.
func IsKeyword(tt TokenType) bool {
	for _, kw := range keywords {
		if kw == tt {
			return true
		}
	}
	return false
}
