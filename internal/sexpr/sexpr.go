// Package sexpr holds the canonical symbolic-expression form the
// translator emits, a deterministic writer for it, and a standard-form
// reader used as the default escape delegate.
package sexpr

import (
	"fmt"
	"strings"
)

// Datum is any canonical-form value.
type Datum interface {
	datumNode()
}

// Symbol is an interned-by-spelling symbol.
type Symbol string

func (Symbol) datumNode() {}

// Num is a numeral kept as its canonical lexeme, preserving radix and
// exactness exactly as written.
type Num string

func (Num) datumNode() {}

// Str is a string datum (decoded value).
type Str string

func (Str) datumNode() {}

// Char is a character datum.
type Char rune

func (Char) datumNode() {}

// Bool is a boolean datum.
type Bool bool

func (Bool) datumNode() {}

// List is a proper list, or an improper one when Tail is non-nil.
type List struct {
	Items []Datum
	Tail  Datum
}

func (*List) datumNode() {}

// NewList builds a proper list of the given items.
func NewList(items ...Datum) *List {
	return &List{Items: items}
}

// Vector is a vector datum.
type Vector struct {
	Items []Datum
}

func (*Vector) datumNode() {}

// Bytevector is a bytevector datum.
type Bytevector struct {
	Bytes []byte
}

func (*Bytevector) datumNode() {}

// Write renders a datum in its canonical external representation. The
// output is deterministic: equal structures render byte-identically.
func Write(d Datum) string {
	var sb strings.Builder
	writeTo(&sb, d)
	return sb.String()
}

func writeTo(sb *strings.Builder, d Datum) {
	switch v := d.(type) {
	case Symbol:
		sb.WriteString(string(v))

	case Num:
		sb.WriteString(string(v))

	case Str:
		sb.WriteByte('"')
		for _, r := range string(v) {
			switch r {
			case '"':
				sb.WriteString(`\"`)
			case '\\':
				sb.WriteString(`\\`)
			case '\n':
				sb.WriteString(`\n`)
			case '\t':
				sb.WriteString(`\t`)
			case '\r':
				sb.WriteString(`\r`)
			default:
				sb.WriteRune(r)
			}
		}
		sb.WriteByte('"')

	case Char:
		sb.WriteString(charName(rune(v)))

	case Bool:
		if v {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}

	case *List:
		sb.WriteByte('(')
		for i, item := range v.Items {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeTo(sb, item)
		}
		if v.Tail != nil {
			sb.WriteString(" . ")
			writeTo(sb, v.Tail)
		}
		sb.WriteByte(')')

	case *Vector:
		sb.WriteString("#(")
		for i, item := range v.Items {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeTo(sb, item)
		}
		sb.WriteByte(')')

	case *Bytevector:
		sb.WriteString("#u8(")
		for i, b := range v.Bytes {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(sb, "%d", b)
		}
		sb.WriteByte(')')

	case nil:
		sb.WriteString("()")

	default:
		fmt.Fprintf(sb, "#<unwritable %T>", d)
	}
}

func charName(r rune) string {
	switch r {
	case ' ':
		return `#\space`
	case '\n':
		return `#\newline`
	case '\t':
		return `#\tab`
	case '\r':
		return `#\return`
	case 0:
		return `#\null`
	case 7:
		return `#\alarm`
	case 8:
		return `#\backspace`
	case 127:
		return `#\delete`
	}
	if r < 32 {
		return fmt.Sprintf(`#\x%x;`, r)
	}
	return `#\` + string(r)
}
