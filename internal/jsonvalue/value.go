// Package jsonvalue defines the intermediate JSON document produced by the walker
// and renders it as compact or indented text.
package jsonvalue

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Value is one of [Object], [Array], [String], [Number], [Bool] or [Null].
type Value interface {
	jsonValue()
}

// Object is an ordered list of members, the order is preserved when rendered.
type Object []Member

// Member is a single key-value pair of an [Object].
type Member struct {
	Key   string
	Value Value
}

type Array []Value

type String string

// Number holds the literal JSON representation of a number.
type Number string

type Bool bool

type Null struct{}

func (Object) jsonValue() {}
func (Array) jsonValue()  {}
func (String) jsonValue() {}
func (Number) jsonValue() {}
func (Bool) jsonValue()   {}
func (Null) jsonValue()   {}

// Get returns the value of the first member with the given key.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// IsNull reports whether v is nil or [Null].
func IsNull(v Value) bool {
	switch v.(type) {
	case nil, Null:
		return true
	default:
		return false
	}
}

func Int(i int64) Number {
	return Number(strconv.FormatInt(i, 10))
}

func Uint(u uint64) Number {
	return Number(strconv.FormatUint(u, 10))
}

// Float formats a floating point number with the given bit size (32 or 64).
// Exponent notation is used only for very small and very large magnitudes.
// Returns an error for NaN and infinities, which JSON cannot represent.
func Float(f float64, bits int) (Number, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", errors.Errorf("unsupported float value: %s", strconv.FormatFloat(f, 'g', -1, bits))
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}
	b := strconv.AppendFloat(nil, f, format, -1, bits)
	if format == 'e' {
		// Clean up e-09 to e-9.
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return Number(b), nil
}
