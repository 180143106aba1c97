// Package translate ties the lexical pipeline, the parser, and the
// emitter into the single-pass front end: surface text in, canonical
// symbolic forms out. Each call owns all of its state, so independent
// units may be translated concurrently.
package translate

import (
	"github.com/sable-lang/sable/internal/diag"
	"github.com/sable-lang/sable/internal/emit"
	"github.com/sable-lang/sable/internal/lexer"
	"github.com/sable-lang/sable/internal/parser"
	"github.com/sable-lang/sable/internal/sexpr"
)

// Reader is the escape delegate: it reads exactly one datum from the
// source at the given position and reports how far it consumed.
type Reader = lexer.DatumReader

type Option func(*config)

type config struct {
	filename         string
	reader           Reader
	spliceApply      bool
	reraiseUnmatched bool
}

// WithFilename attributes all diagnostics to the provided filename.
func WithFilename(name string) Option {
	return func(c *config) {
		c.filename = name
	}
}

// WithReader substitutes the escape delegate; the default is the
// built-in standard-form reader.
func WithReader(r Reader) Option {
	return func(c *config) {
		c.reader = r
	}
}

// WithSpliceApply selects between the apply-of-constructor and the
// append desugaring for spliced list constructors.
func WithSpliceApply(enabled bool) Option {
	return func(c *config) {
		c.spliceApply = enabled
	}
}

// WithReraiseUnmatched controls whether a guard without a final
// else-apply clause re-raises unmatched conditions.
func WithReraiseUnmatched(enabled bool) Option {
	return func(c *config) {
		c.reraiseUnmatched = enabled
	}
}

// Translate converts one unit of surface syntax into canonical symbolic
// forms. On any error no forms are returned; the diagnostics cover
// everything seen up to the abort.
func Translate(src string, opts ...Option) ([]sexpr.Datum, []diag.Diagnostic) {
	cfg := config{
		reader:           sexpr.StandardReader{},
		spliceApply:      true,
		reraiseUnmatched: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := parser.New(src,
		parser.WithFilename(cfg.filename),
		parser.WithReader(cfg.reader),
	)

	unit := p.ParseUnit()

	var diags []diag.Diagnostic
	for _, err := range p.LexErrors() {
		diags = append(diags, err.ToDiagnostic())
	}
	for _, err := range p.Errors() {
		diags = append(diags, err.ToDiagnostic())
	}
	if len(diags) > 0 {
		return nil, diags
	}

	em := emit.New(
		emit.WithSpliceApply(cfg.spliceApply),
		emit.WithReraiseUnmatched(cfg.reraiseUnmatched),
	)
	forms := em.EmitUnit(unit)
	if errs := em.Errors(); len(errs) > 0 {
		return nil, errs
	}

	return forms, nil
}
