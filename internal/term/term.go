package term

import (
	"strconv"
	"strings"
)

// Value is one decoded constant literal. The concrete types are String,
// Symbol, Int, Float, Bool, List and Record.
type Value interface {
	value()
}

// String is a quoted string literal.
type String string

// Symbol is a bare identifier, e.g. an application or option name.
type Symbol string

// Int is an integer literal.
type Int int64

// Float is a fractional number literal.
type Float float64

// Bool is a true/false literal.
type Bool bool

// List is an ordered sequence of values.
type List []Value

// Field is one name/value pair of a Record.
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered collection of named fields. Field order is the order
// written in the source text.
type Record []Field

func (String) value() {}
func (Symbol) value() {}
func (Int) value()    {}
func (Float) value()  {}
func (Bool) value()   {}
func (List) value()   {}
func (Record) value() {}

// RenderDepth bounds how deep Render descends into nested structure.
// Diagnostics embed rendered values, so the bound keeps them single-line
// and readable rather than an unbounded dump.
const RenderDepth = 4

// Render prints a value in the source grammar, eliding structure nested
// deeper than RenderDepth.
func Render(v Value) string {
	var b strings.Builder
	render(&b, v, RenderDepth)
	return b.String()
}

func render(b *strings.Builder, v Value, depth int) {
	switch v := v.(type) {
	case String:
		b.WriteString(strconv.Quote(string(v)))
	case Symbol:
		b.WriteString(string(v))
	case Int:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case Float:
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 64))
	case Bool:
		b.WriteString(strconv.FormatBool(bool(v)))
	case List:
		if depth <= 0 {
			b.WriteString("[...]")
			return
		}
		b.WriteByte('[')
		for i, el := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			render(b, el, depth-1)
		}
		b.WriteByte(']')
	case Record:
		if depth <= 0 {
			b.WriteString("{...}")
			return
		}
		b.WriteByte('{')
		for i, f := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name)
			b.WriteString(" = ")
			render(b, f.Value, depth-1)
		}
		b.WriteByte('}')
	default:
		b.WriteString("null")
	}
}
