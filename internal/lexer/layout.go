package lexer

import (
	"github.com/sable-lang/sable/internal/diag"
)

// The layout engine inserts virtual block and separator tokens according
// to indentation. A trigger keyword (do/with for blocks, of/cond for
// alternative clauses) not followed by an explicit '{' opens an implicit
// context whose reference column is the column of the next token. Entries
// aligned with the reference column are preceded by the context's
// separator (';' for blocks, '|' for alternatives); a shallower column
// closes the context. Explicit and implicit contexts share one stack.

type contextKind int

const (
	ctxNone contextKind = iota
	ctxBlock
	ctxAlternative
)

func (k contextKind) separator() TokenType {
	if k == ctxAlternative {
		return BAR
	}
	return SEMICOLON
}

type layoutContext struct {
	kind     contextKind
	refCol   int // reference column; meaningless for explicit contexts
	explicit bool
}

// Layout wraps the scanner with the off-side rule. The context stack is
// owned by this instance and scoped to one translation pass.
type Layout struct {
	src      tokenSource
	stack    []layoutContext
	pending  []Token // FIFO of tokens ready to hand out
	lastLine int
	armed    contextKind // trigger seen, waiting for the block's first token

	Errors []LexError
}

// NewLayout wraps a raw token source with the layout engine.
func NewLayout(src tokenSource) *Layout {
	return &Layout{src: src}
}

func (ly *Layout) addError(code diag.Code, msg string, span Span) {
	ly.Errors = append(ly.Errors, LexError{Code: code, Message: msg, Span: span})
}

func (ly *Layout) queue(t Token) {
	ly.pending = append(ly.pending, t)
}

func virtualToken(tt TokenType, at Span) Token {
	sp := at
	sp.End = sp.Start
	return Token{Type: tt, Raw: string(tt), Value: string(tt), Span: sp, Virtual: true}
}

// NextToken returns the next token with layout punctuation spliced in.
func (ly *Layout) NextToken() Token {
	for len(ly.pending) == 0 {
		ly.process(ly.src.NextToken())
	}
	t := ly.pending[0]
	ly.pending = ly.pending[1:]
	return t
}

func (ly *Layout) process(t Token) {
	if t.Type == EOF {
		for len(ly.stack) > 0 {
			top := ly.stack[len(ly.stack)-1]
			ly.stack = ly.stack[:len(ly.stack)-1]
			if top.explicit {
				ly.addError(diag.CodeLayoutUnclosedBlock, "unclosed '{' at end of input", t.Span)
				continue
			}
			ly.queue(virtualToken(RBRACE, t.Span))
		}
		ly.queue(t)
		return
	}

	if ly.armed != ctxNone {
		kind := ly.armed
		ly.armed = ctxNone

		if t.Type == LBRACE {
			ly.stack = append(ly.stack, layoutContext{kind: kind, explicit: true})
			ly.queue(t)
			ly.lastLine = t.Span.Line
			return
		}

		// The block's first token fixes the reference column. This must
		// happen before any column comparison against enclosing contexts.
		ly.stack = append(ly.stack, layoutContext{kind: kind, refCol: t.Span.Column})
		ly.queue(virtualToken(LBRACE, t.Span))
		ly.emit(t)
		return
	}

	if t.Span.Line > ly.lastLine {
		popped := false
		for len(ly.stack) > 0 {
			top := ly.stack[len(ly.stack)-1]
			if top.explicit {
				break
			}
			c := t.Span.Column
			if c < top.refCol {
				ly.stack = ly.stack[:len(ly.stack)-1]
				ly.queue(virtualToken(RBRACE, t.Span))
				popped = true
				continue
			}
			if c == top.refCol {
				ly.queue(virtualToken(top.kind.separator(), t.Span))
			} else if popped {
				// A dedent must land on some enclosing reference
				// column; stopping between two of them is an error.
				ly.addError(diag.CodeLayoutMisalignedEntry,
					"dedent aligns with no enclosing block", t.Span)
			}
			break
		}
	}

	ly.emit(t)
}

// emit queues t and applies its own layout effects: explicit braces push
// and pop contexts, trigger keywords arm the engine for the next token.
func (ly *Layout) emit(t Token) {
	switch t.Type {
	case LBRACE:
		// An explicit brace without a trigger opens a block with an
		// implicit 'do'; the parser supplies the sequencing form.
		ly.stack = append(ly.stack, layoutContext{kind: ctxBlock, explicit: true})

	case RBRACE:
		// Implicit contexts still open inside the explicit one close
		// exactly when it does.
		for len(ly.stack) > 0 && !ly.stack[len(ly.stack)-1].explicit {
			ly.stack = ly.stack[:len(ly.stack)-1]
			ly.queue(virtualToken(RBRACE, t.Span))
		}
		if len(ly.stack) > 0 {
			ly.stack = ly.stack[:len(ly.stack)-1]
		} else {
			ly.addError(diag.CodeLayoutUnmatchedClose, "unmatched '}'", t.Span)
		}

	case DO, WITH:
		ly.armed = ctxBlock

	case OF, COND:
		ly.armed = ctxAlternative
	}

	ly.queue(t)
	ly.lastLine = t.Span.Line
}

// Stream chains the scanner, the layout engine, and the numeric joiner
// into the token stream the parser consumes.
type Stream struct {
	sc *Scanner
	ly *Layout
	jn *joiner
}

// NewStream builds the full lexical pipeline for one unit of source.
func NewStream(input string) *Stream {
	sc := NewScanner(input)
	ly := NewLayout(sc)
	return &Stream{sc: sc, ly: ly, jn: newJoiner(ly)}
}

// SetFilename attributes all spans to the provided filename.
func (s *Stream) SetFilename(name string) { s.sc.SetFilename(name) }

// SetReader installs the escape delegate.
func (s *Stream) SetReader(r DatumReader) { s.sc.SetReader(r) }

// NextToken returns the next fully processed token.
func (s *Stream) NextToken() Token { return s.jn.NextToken() }

// Errors returns all lexical and layout errors seen so far.
func (s *Stream) Errors() []LexError {
	if len(s.ly.Errors) == 0 {
		return s.sc.Errors
	}
	out := make([]LexError, 0, len(s.sc.Errors)+len(s.ly.Errors))
	out = append(out, s.sc.Errors...)
	out = append(out, s.ly.Errors...)
	return out
}
