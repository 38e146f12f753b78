package typeinfo

import (
	"encoding"
	"fmt"
	"reflect"
	"time"
)

// Shape is the closed set of categories a Go type is walked as.
type Shape int

const (
	ShapeInvalid Shape = iota
	// ShapeScalar covers booleans, integers, floats and strings.
	ShapeScalar
	// ShapeDate covers time.Time and types convertible to it.
	ShapeDate
	// ShapeEnum is a named integer type implementing fmt.Stringer.
	ShapeEnum
	// ShapeText is any other type implementing encoding.TextMarshaler.
	ShapeText
	// ShapeBytes is a byte slice, rendered as base64.
	ShapeBytes
	ShapeSequence
	ShapeMapping
	ShapeComposite
	// ShapeDynamic is an interface type; the shape is known only for a concrete value.
	ShapeDynamic
	// ShapeUnsupported covers channels, functions, complex numbers and raw pointers.
	ShapeUnsupported
)

var shapeNames = map[Shape]string{
	ShapeInvalid:     "invalid",
	ShapeScalar:      "scalar",
	ShapeDate:        "date",
	ShapeEnum:        "enum",
	ShapeText:        "text",
	ShapeBytes:       "bytes",
	ShapeSequence:    "sequence",
	ShapeMapping:     "mapping",
	ShapeComposite:   "composite",
	ShapeDynamic:     "dynamic",
	ShapeUnsupported: "unsupported",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Class tells whether a property is emitted by default or only when included.
type Class int

const (
	// Relation properties are hidden unless their path is explicitly included.
	Relation Class = iota
	// Simple properties are always visible unless excluded.
	Simple
)

func (c Class) String() string {
	if c == Simple {
		return "simple"
	}
	return "relation"
}

var (
	timeType            = reflect.TypeFor[time.Time]()
	stringerType        = reflect.TypeFor[fmt.Stringer]()
	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// ShapeOf returns the [Shape] of the type, pointers are stripped.
func ShapeOf(typ reflect.Type) Shape {
	if typ == nil {
		return ShapeInvalid
	}
	typ = Deref(typ)
	switch typ.Kind() {
	case reflect.Struct:
		if typ == timeType || typ.ConvertibleTo(timeType) {
			return ShapeDate
		}
	case reflect.Interface:
		return ShapeDynamic
	}
	if IsEnum(typ) {
		return ShapeEnum
	}
	if typ.Implements(textMarshalerType) {
		return ShapeText
	}
	switch typ.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return ShapeScalar
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 && !IsEnum(typ.Elem()) {
			return ShapeBytes
		}
		return ShapeSequence
	case reflect.Array:
		return ShapeSequence
	case reflect.Map:
		return ShapeMapping
	case reflect.Struct:
		return ShapeComposite
	default:
		return ShapeUnsupported
	}
}

// IsEnum reports whether the type is a named integer type implementing [fmt.Stringer].
func IsEnum(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return typ.PkgPath() != "" && typ.Implements(stringerType)
	default:
		return false
	}
}

// IsTextUnmarshaler reports whether a pointer to the type implements [encoding.TextUnmarshaler].
func IsTextUnmarshaler(typ reflect.Type) bool {
	return reflect.PointerTo(Deref(typ)).Implements(textUnmarshalerType)
}

// Classify decides whether values of the declared type are [Simple] or [Relation].
// Sequences and mappings inherit the class of their element type.
// Anything which cannot be statically determined is a [Relation].
func Classify(typ reflect.Type) Class {
	return classify(typ, make(map[reflect.Type]struct{}))
}

func classify(typ reflect.Type, seen map[reflect.Type]struct{}) Class {
	if typ == nil {
		return Relation
	}
	typ = Deref(typ)
	switch ShapeOf(typ) {
	case ShapeScalar, ShapeDate, ShapeEnum, ShapeText, ShapeBytes:
		return Simple
	case ShapeSequence, ShapeMapping:
		// Recursive container types, like type Tree []Tree.
		if _, ok := seen[typ]; ok {
			return Relation
		}
		seen[typ] = struct{}{}
		return classify(typ.Elem(), seen)
	default:
		return Relation
	}
}
