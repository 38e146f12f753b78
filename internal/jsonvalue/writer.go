package jsonvalue

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Format selects the textual layout of the rendered document.
type Format int

const (
	// Compact renders without any insignificant whitespace.
	Compact Format = iota
	// Indented renders objects one member per line, indented with two spaces,
	// with " : " between keys and values. Arrays stay on the line: [ a, b ].
	Indented
)

const indentUnit = "  "

// Marshal renders the value.
func Marshal(v Value, format Format) []byte {
	var buf bytes.Buffer
	enc := encoder{buf: &buf, indented: format == Indented}
	enc.write(v)
	return buf.Bytes()
}

// Write renders the value and writes the whole document to w in a single call.
// Nothing is written if rendering fails.
func Write(w io.Writer, v Value, format Format) error {
	data := Marshal(v, format)
	n, err := w.Write(data)
	if err != nil {
		return errors.Wrap(err, "failed to write JSON document")
	}
	if n < len(data) {
		return errors.Wrapf(io.ErrShortWrite, "wrote %d of %d bytes", n, len(data))
	}
	return nil
}

type encoder struct {
	buf      *bytes.Buffer
	indented bool
	// depth is the object nesting level; arrays are rendered inline and don't add to it.
	depth int
}

func (e *encoder) write(v Value) {
	switch x := v.(type) {
	case nil, Null:
		e.buf.WriteString("null")
	case Bool:
		if x {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}
	case Number:
		e.buf.WriteString(string(x))
	case String:
		writeString(e.buf, string(x))
	case Array:
		e.writeArray(x)
	case Object:
		e.writeObject(x)
	}
}

func (e *encoder) writeObject(o Object) {
	e.buf.WriteByte('{')
	if len(o) == 0 {
		if e.indented {
			e.buf.WriteByte(' ')
		}
		e.buf.WriteByte('}')
		return
	}
	e.depth++
	for i, m := range o {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.newline()
		writeString(e.buf, m.Key)
		if e.indented {
			e.buf.WriteString(" : ")
		} else {
			e.buf.WriteByte(':')
		}
		e.write(m.Value)
	}
	e.depth--
	e.newline()
	e.buf.WriteByte('}')
}

func (e *encoder) writeArray(a Array) {
	e.buf.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		if e.indented {
			e.buf.WriteByte(' ')
		}
		e.write(v)
	}
	if e.indented {
		e.buf.WriteByte(' ')
	}
	e.buf.WriteByte(']')
}

func (e *encoder) newline() {
	if !e.indented {
		return
	}
	e.buf.WriteByte('\n')
	for range e.depth {
		e.buf.WriteString(indentUnit)
	}
}

const hexDigits = "0123456789ABCDEF"

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '\\':
			buf.WriteString(`\\`)
		case r == '"':
			buf.WriteString(`\"`)
		case r == '\b':
			buf.WriteString(`\b`)
		case r == '\t':
			buf.WriteString(`\t`)
		case r == '\n':
			buf.WriteString(`\n`)
		case r == '\f':
			buf.WriteString(`\f`)
		case r == '\r':
			buf.WriteString(`\r`)
		case r <= 0x1F:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexDigits[r>>4])
			buf.WriteByte(hexDigits[r&0xF])
		default:
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}
