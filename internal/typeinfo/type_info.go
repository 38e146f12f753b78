package typeinfo

import (
	"fmt"
	"reflect"
	"strings"
)

// TypeInfo stores the Go type information.
type TypeInfo struct {
	Name    string
	Kind    string
	Package string
	Shape   Shape
}

// Get returns the information for the [reflect.Type].
// It returns TypeInfo containing the type name (without package prefix) and package path separately.
// Strips pointer indicators from type names and type arguments from generic type names.
// Package field is empty for built-in and unnamed composite types.
//
// Unnamed slices of named types preserve the package of their element:
//
//	TypeInfo{Name: "[]Product", Package: ".../mypkg"}.
func Get(typ reflect.Type) TypeInfo {
	if typ == nil {
		return TypeInfo{}
	}
	typ = Deref(typ)
	result := TypeInfo{
		Kind:  getKindString(typ),
		Shape: ShapeOf(typ),
	}

	if typ.PkgPath() == "" && typ.Kind() == reflect.Slice {
		result.Name = "[]"
		typ = Deref(typ.Elem())
	}
	switch {
	case typ.PkgPath() == "":
		result.Name += typ.String()
	default:
		name, _, _ := strings.Cut(typ.Name(), "[")
		result.Name += name
		result.Package = typ.PkgPath()
	}
	return result
}

// Deref strips all pointer indirections from the type.
func Deref(typ reflect.Type) reflect.Type {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ
}

func getKindString(typ reflect.Type) string {
	switch typ.Kind() {
	case reflect.Map:
		return fmt.Sprintf("map[%s]%s", getKindString(typ.Key()), getKindString(typ.Elem()))
	case reflect.Slice:
		return fmt.Sprintf("[]%s", getKindString(typ.Elem()))
	case reflect.Pointer:
		return getKindString(typ.Elem())
	default:
		return typ.Kind().String()
	}
}
