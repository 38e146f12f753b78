package typeinfo

import (
	"reflect"
	"slices"
	"strings"
	"sync"
)

// Property describes a single serializable struct field.
type Property struct {
	// Name is the key under which the property is emitted.
	Name string
	// Type is the declared type of the field.
	Type reflect.Type
	// Index is the field index sequence, as accepted by [reflect.Value.FieldByIndex].
	Index []int
	// Class is the static classification of Type.
	Class Class
}

// Value returns the property's value for the struct value v.
// It returns false if a nil embedded pointer is on the way to the field.
func (p Property) Value(v reflect.Value) (reflect.Value, bool) {
	fv, err := v.FieldByIndexErr(p.Index)
	if err != nil {
		return reflect.Value{}, false
	}
	return fv, true
}

// Classify returns the class of the property's value.
// Interface typed properties are classified by the dynamic type of the value they hold.
func (p Property) Classify(v reflect.Value) Class {
	if p.Type.Kind() != reflect.Interface || !v.IsValid() || v.IsNil() {
		return p.Class
	}
	return Classify(v.Elem().Type())
}

var propertiesCache sync.Map // map[reflect.Type][]Property

// Properties returns the ordered properties of a struct type.
// Fields declared directly on the struct come first, in declaration order,
// followed by the fields promoted from embedded structs, one embedding depth at a time.
// A name discovered at a shallower depth shadows the same name found deeper.
//
// The result is computed once per type and shared, callers must not modify it.
func Properties(typ reflect.Type) []Property {
	typ = Deref(typ)
	if typ.Kind() != reflect.Struct {
		return nil
	}
	if cached, ok := propertiesCache.Load(typ); ok {
		return cached.([]Property)
	}
	actual, _ := propertiesCache.LoadOrStore(typ, discoverProperties(typ))
	return actual.([]Property)
}

type embedding struct {
	typ   reflect.Type
	index []int
}

func discoverProperties(typ reflect.Type) []Property {
	var properties []Property
	seenNames := make(map[string]struct{})
	seenTypes := make(map[reflect.Type]struct{})
	current := []embedding{{typ: typ}}
	for len(current) > 0 {
		var next []embedding
		for _, emb := range current {
			if _, ok := seenTypes[emb.typ]; ok {
				continue
			}
			seenTypes[emb.typ] = struct{}{}
			for i := range emb.typ.NumField() {
				field := emb.typ.Field(i)
				index := append(slices.Clone(emb.index), i)
				name, tagged, ok := getStructFieldName(field)
				if !ok {
					continue
				}
				if field.Anonymous && !tagged {
					fieldType := field.Type
					if fieldType.Kind() == reflect.Pointer {
						// Promoted fields of unexported embedded pointers can't be reached.
						if !field.IsExported() {
							continue
						}
						fieldType = fieldType.Elem()
					}
					if fieldType.Kind() == reflect.Struct {
						next = append(next, embedding{typ: fieldType, index: index})
						continue
					}
				}
				if !field.IsExported() && (!field.Anonymous || field.Type.Kind() != reflect.Struct) {
					continue
				}
				if _, ok = seenNames[name]; ok {
					continue
				}
				seenNames[name] = struct{}{}
				properties = append(properties, Property{
					Name:  name,
					Type:  field.Type,
					Index: index,
					Class: Classify(field.Type),
				})
			}
		}
		current = next
	}
	return properties
}

// getStructFieldName returns the property name of the field.
// The json tag name takes precedence, otherwise the lower camel case field name is used.
// ok is false for fields hidden with the "-" tag.
func getStructFieldName(field reflect.StructField) (name string, tagged, ok bool) {
	tagName, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch tagName {
	case "-":
		return "", false, false
	case "":
		return LowerCamel(field.Name), false, true
	default:
		return tagName, true, true
	}
}
