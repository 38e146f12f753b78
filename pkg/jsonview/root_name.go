package jsonview

import (
	"reflect"

	"github.com/nieomylnieja/jsonview/internal/typeinfo"
)

// listSuffix is appended to the element type name of sequences, e.g. productList.
const listSuffix = "List"

// rootName derives the root wrapper key from the runtime type of the root value.
// A single value is named after its type (Product -> product),
// a sequence after its element type (Product -> productList).
// Unnamed types (maps, slices of builtin types, interfaces) have no natural name
// and an empty string is returned.
func rootName(root reflect.Value) string {
	if !root.IsValid() {
		return ""
	}
	typ := typeinfo.Deref(root.Type())
	if typeinfo.ShapeOf(typ) == typeinfo.ShapeSequence {
		name := typeName(typ.Elem())
		if name == "" {
			return ""
		}
		return name + listSuffix
	}
	return typeName(typ)
}

func typeName(typ reflect.Type) string {
	info := typeinfo.Get(typ)
	if info.Package == "" || typeinfo.Deref(typ).Name() == "" {
		return ""
	}
	return typeinfo.LowerCamel(info.Name)
}
