package typeinfo

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type color int

const (
	red color = iota
	green
)

func (c color) String() string {
	switch c {
	case red:
		return "RED"
	case green:
		return "GREEN"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

type plainInt int

type timestamp time.Time

type recursiveSlice []recursiveSlice

func TestShapeOf(t *testing.T) {
	tests := []struct {
		name     string
		typ      reflect.Type
		expected Shape
	}{
		{name: "nil", typ: nil, expected: ShapeInvalid},
		{name: "bool", typ: reflect.TypeFor[bool](), expected: ShapeScalar},
		{name: "int64", typ: reflect.TypeFor[int64](), expected: ShapeScalar},
		{name: "float32", typ: reflect.TypeFor[float32](), expected: ShapeScalar},
		{name: "string", typ: reflect.TypeFor[string](), expected: ShapeScalar},
		{name: "named int without String", typ: reflect.TypeFor[plainInt](), expected: ShapeScalar},
		{name: "pointer to string", typ: reflect.TypeFor[*string](), expected: ShapeScalar},
		{name: "time", typ: reflect.TypeFor[time.Time](), expected: ShapeDate},
		{name: "pointer to time", typ: reflect.TypeFor[*time.Time](), expected: ShapeDate},
		{name: "named time", typ: reflect.TypeFor[timestamp](), expected: ShapeDate},
		{name: "enum", typ: reflect.TypeFor[color](), expected: ShapeEnum},
		{name: "uuid", typ: reflect.TypeFor[uuid.UUID](), expected: ShapeText},
		{name: "bytes", typ: reflect.TypeFor[[]byte](), expected: ShapeBytes},
		{name: "slice", typ: reflect.TypeFor[[]customStruct](), expected: ShapeSequence},
		{name: "array", typ: reflect.TypeFor[[3]int](), expected: ShapeSequence},
		{name: "map", typ: reflect.TypeFor[map[string]any](), expected: ShapeMapping},
		{name: "struct", typ: reflect.TypeFor[customStruct](), expected: ShapeComposite},
		{name: "interface", typ: reflect.TypeFor[any](), expected: ShapeDynamic},
		{name: "stringer interface", typ: reflect.TypeFor[fmt.Stringer](), expected: ShapeDynamic},
		{name: "channel", typ: reflect.TypeFor[chan int](), expected: ShapeUnsupported},
		{name: "function", typ: reflect.TypeFor[func()](), expected: ShapeUnsupported},
		{name: "complex", typ: reflect.TypeFor[complex128](), expected: ShapeUnsupported},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ShapeOf(tc.typ))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		typ      reflect.Type
		expected Class
	}{
		{name: "int", typ: reflect.TypeFor[int](), expected: Simple},
		{name: "pointer to int", typ: reflect.TypeFor[*int](), expected: Simple},
		{name: "string", typ: reflect.TypeFor[string](), expected: Simple},
		{name: "time", typ: reflect.TypeFor[time.Time](), expected: Simple},
		{name: "enum", typ: reflect.TypeFor[color](), expected: Simple},
		{name: "uuid", typ: reflect.TypeFor[uuid.UUID](), expected: Simple},
		{name: "bytes", typ: reflect.TypeFor[[]byte](), expected: Simple},
		{name: "slice of strings", typ: reflect.TypeFor[[]string](), expected: Simple},
		{name: "slice of enums", typ: reflect.TypeFor[[]color](), expected: Simple},
		{name: "map of ints", typ: reflect.TypeFor[map[string]int](), expected: Simple},
		{name: "nested simple containers", typ: reflect.TypeFor[map[string][]float64](), expected: Simple},
		{name: "struct", typ: reflect.TypeFor[customStruct](), expected: Relation},
		{name: "pointer to struct", typ: reflect.TypeFor[*customStruct](), expected: Relation},
		{name: "slice of structs", typ: reflect.TypeFor[[]customStruct](), expected: Relation},
		{name: "map of structs", typ: reflect.TypeFor[map[string]*customStruct](), expected: Relation},
		{name: "interface", typ: reflect.TypeFor[any](), expected: Relation},
		{name: "slice of interfaces", typ: reflect.TypeFor[[]any](), expected: Relation},
		{name: "channel", typ: reflect.TypeFor[chan string](), expected: Relation},
		{name: "recursive slice", typ: reflect.TypeFor[recursiveSlice](), expected: Relation},
		{name: "nil", typ: nil, expected: Relation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.typ))
		})
	}
}

func TestIsTextUnmarshaler(t *testing.T) {
	assert.True(t, IsTextUnmarshaler(reflect.TypeFor[uuid.UUID]()))
	assert.True(t, IsTextUnmarshaler(reflect.TypeFor[*time.Time]()))
	assert.False(t, IsTextUnmarshaler(reflect.TypeFor[color]()))
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "composite", ShapeComposite.String())
	assert.Equal(t, "Shape(99)", Shape(99).String())
	assert.Equal(t, "simple", Simple.String())
	assert.Equal(t, "relation", Relation.String())
}
