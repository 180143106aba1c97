package sexpr

import (
	"fmt"
	"strings"
	"unicode"
)

// Read reads exactly one datum from src starting at pos and returns it
// with the index just past the consumed span. It supports quote forms,
// arbitrary nested lists (including dotted pairs), vectors, bytevectors,
// strings, characters, booleans, and numerals.
func Read(src []rune, pos int) (Datum, int, error) {
	r := &reader{src: src, pos: pos}
	d, err := r.readDatum()
	if err != nil {
		return nil, r.pos, err
	}
	return d, r.pos, nil
}

// StandardReader adapts Read to the escape-delegate interface consumed
// by the lexer.
type StandardReader struct{}

// ReadDatum implements the escape delegate.
func (StandardReader) ReadDatum(src []rune, pos int) (any, int, error) {
	d, end, err := Read(src, pos)
	if err != nil {
		return nil, end, err
	}
	return d, end, nil
}

type reader struct {
	src []rune
	pos int
}

func (r *reader) ch() rune {
	if r.pos >= len(r.src) {
		return 0
	}
	return r.src[r.pos]
}

func (r *reader) at(n int) rune {
	if r.pos+n >= len(r.src) {
		return 0
	}
	return r.src[r.pos+n]
}

func (r *reader) skipSpace() {
	for {
		c := r.ch()
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			r.pos++
		case c == ';':
			for r.ch() != '\n' && r.ch() != 0 {
				r.pos++
			}
		default:
			return
		}
	}
}

func (r *reader) readDatum() (Datum, error) {
	r.skipSpace()

	switch c := r.ch(); {
	case c == 0:
		return nil, fmt.Errorf("unexpected end of input reading datum")

	case c == '\'':
		r.pos++
		return r.readQuoted("quote")
	case c == '`':
		r.pos++
		return r.readQuoted("quasiquote")
	case c == ',':
		r.pos++
		if r.ch() == '@' {
			r.pos++
			return r.readQuoted("unquote-splicing")
		}
		return r.readQuoted("unquote")

	case c == '(':
		r.pos++
		return r.readList(')')
	case c == '[':
		r.pos++
		return r.readList(']')
	case c == ')' || c == ']':
		return nil, fmt.Errorf("unexpected '%c'", c)

	case c == '"':
		return r.readString()

	case c == '#':
		return r.readHash()

	default:
		return r.readAtom()
	}
}

func (r *reader) readQuoted(tag string) (Datum, error) {
	d, err := r.readDatum()
	if err != nil {
		return nil, err
	}
	return NewList(Symbol(tag), d), nil
}

func (r *reader) readList(closing rune) (Datum, error) {
	list := &List{}
	for {
		r.skipSpace()
		c := r.ch()
		if c == 0 {
			return nil, fmt.Errorf("unterminated list")
		}
		if c == closing {
			r.pos++
			return list, nil
		}
		if c == '.' && isDelimiter(r.at(1)) && len(list.Items) > 0 {
			r.pos++
			tail, err := r.readDatum()
			if err != nil {
				return nil, err
			}
			list.Tail = tail
			r.skipSpace()
			if r.ch() != closing {
				return nil, fmt.Errorf("malformed dotted list")
			}
			r.pos++
			return list, nil
		}
		d, err := r.readDatum()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, d)
	}
}

func (r *reader) readString() (Datum, error) {
	r.pos++ // opening quote
	var sb strings.Builder
	for {
		c := r.ch()
		switch c {
		case 0:
			return nil, fmt.Errorf("unterminated string")
		case '"':
			r.pos++
			return Str(sb.String()), nil
		case '\\':
			r.pos++
			switch e := r.ch(); e {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\', '"':
				sb.WriteRune(e)
			case 0:
				return nil, fmt.Errorf("unterminated string")
			default:
				return nil, fmt.Errorf("invalid string escape '\\%c'", e)
			}
			r.pos++
		default:
			sb.WriteRune(c)
			r.pos++
		}
	}
}

func (r *reader) readHash() (Datum, error) {
	switch c := r.at(1); {
	case c == '(':
		r.pos += 2
		inner, err := r.readList(')')
		if err != nil {
			return nil, err
		}
		return &Vector{Items: inner.(*List).Items}, nil

	case c == 'u' && r.at(2) == '8' && r.at(3) == '(':
		r.pos += 4
		inner, err := r.readList(')')
		if err != nil {
			return nil, err
		}
		bytes := make([]byte, 0, len(inner.(*List).Items))
		for _, item := range inner.(*List).Items {
			n, ok := item.(Num)
			if !ok {
				return nil, fmt.Errorf("bytevector element is not a numeral")
			}
			var b int
			if _, err := fmt.Sscanf(string(n), "%d", &b); err != nil || b < 0 || b > 255 {
				return nil, fmt.Errorf("bytevector element out of range: %s", n)
			}
			bytes = append(bytes, byte(b))
		}
		return &Bytevector{Bytes: bytes}, nil

	case c == 't':
		end := r.pos + 2
		if r.matchWord("#true") {
			end = r.pos + 5
		}
		r.pos = end
		return Bool(true), nil

	case c == 'f':
		end := r.pos + 2
		if r.matchWord("#false") {
			end = r.pos + 6
		}
		r.pos = end
		return Bool(false), nil

	case c == '\\':
		return r.readChar()

	case c == 'b' || c == 'o' || c == 'd' || c == 'x' || c == 'e' || c == 'i':
		return r.readAtom() // prefixed numeral, kept verbatim

	default:
		return nil, fmt.Errorf("unsupported '#%c' syntax", c)
	}
}

func (r *reader) matchWord(word string) bool {
	for i, w := range word {
		if r.at(i) != w {
			return false
		}
	}
	return isDelimiter(r.at(len(word)))
}

var charNames = map[string]rune{
	"space":     ' ',
	"newline":   '\n',
	"tab":       '\t',
	"return":    '\r',
	"null":      0,
	"alarm":     7,
	"backspace": 8,
	"delete":    127,
	"escape":    27,
}

func (r *reader) readChar() (Datum, error) {
	r.pos += 2 // consume #\
	if r.ch() == 0 {
		return nil, fmt.Errorf("unterminated character literal")
	}

	start := r.pos
	r.pos++
	for !isDelimiter(r.ch()) {
		r.pos++
	}
	runes := r.src[start:r.pos]
	name := string(runes)

	if len(runes) == 1 {
		return Char(runes[0]), nil
	}
	if v, ok := charNames[name]; ok {
		return Char(v), nil
	}
	if runes[0] == 'x' || runes[0] == 'X' {
		var n uint32
		if _, err := fmt.Sscanf(name[1:], "%x", &n); err == nil && n <= unicode.MaxRune {
			return Char(rune(n)), nil
		}
	}
	return nil, fmt.Errorf("unknown character name '%s'", name)
}

func (r *reader) readAtom() (Datum, error) {
	start := r.pos
	for !isDelimiter(r.ch()) {
		r.pos++
	}
	text := string(r.src[start:r.pos])
	if text == "" {
		return nil, fmt.Errorf("empty atom")
	}
	if looksNumeric(text) {
		return Num(text), nil
	}
	return Symbol(text), nil
}

func isDelimiter(c rune) bool {
	switch c {
	case 0, ' ', '\t', '\n', '\r', '(', ')', '[', ']', '"', ';', '\'', '`', ',':
		return true
	}
	return false
}

// looksNumeric classifies an atom as a numeral: a prefixed span, or a
// text starting with a digit, or a sign/dot followed by a digit.
func looksNumeric(text string) bool {
	if text[0] == '#' {
		return true
	}
	i := 0
	if text[i] == '+' || text[i] == '-' {
		i++
	}
	if i < len(text) && text[i] == '.' {
		i++
	}
	return i < len(text) && text[i] >= '0' && text[i] <= '9'
}
