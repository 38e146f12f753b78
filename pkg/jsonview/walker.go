package jsonview

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nieomylnieja/jsonview/internal/jsonvalue"
	"github.com/nieomylnieja/jsonview/internal/pathutils"
	"github.com/nieomylnieja/jsonview/internal/typeinfo"
)

// DateLayout is the layout of dates, both when serializing and deserializing.
const DateLayout = "2006-01-02"

var timeType = reflect.TypeFor[time.Time]()

type walker struct {
	filters pathutils.FilterSet
	logger  *zap.Logger
}

// walk converts v into its JSON representation.
// path is the dotted path of v from the root, elements of sequences share their container's path.
// Nil values produce [jsonvalue.Null].
func (w walker) walk(v reflect.Value, path pathutils.Path) (jsonvalue.Value, error) {
	v = indirect(v)
	if !v.IsValid() {
		return jsonvalue.Null{}, nil
	}
	switch shape := typeinfo.ShapeOf(v.Type()); shape {
	case typeinfo.ShapeScalar:
		return w.walkScalar(v, path)
	case typeinfo.ShapeDate:
		if !v.CanInterface() {
			return jsonvalue.Null{}, nil
		}
		return jsonvalue.String(v.Convert(timeType).Interface().(time.Time).Format(DateLayout)), nil
	case typeinfo.ShapeEnum:
		if !v.CanInterface() {
			return jsonvalue.Null{}, nil
		}
		return jsonvalue.String(v.Interface().(fmt.Stringer).String()), nil
	case typeinfo.ShapeText:
		if !v.CanInterface() {
			return jsonvalue.Null{}, nil
		}
		text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal %s at %q", v.Type(), path)
		}
		return jsonvalue.String(text), nil
	case typeinfo.ShapeBytes:
		if v.IsNil() {
			return jsonvalue.Null{}, nil
		}
		return jsonvalue.String(base64.StdEncoding.EncodeToString(v.Bytes())), nil
	case typeinfo.ShapeSequence:
		return w.walkSequence(v, path)
	case typeinfo.ShapeMapping:
		return w.walkMapping(v, path)
	case typeinfo.ShapeComposite:
		return w.walkComposite(v, path)
	default:
		w.logger.Debug("skipping unsupported value",
			zap.Stringer("path", path),
			zap.Stringer("type", v.Type()),
			zap.Stringer("shape", shape))
		return jsonvalue.Null{}, nil
	}
}

func (w walker) walkScalar(v reflect.Value, path pathutils.Path) (jsonvalue.Value, error) {
	switch v.Kind() {
	case reflect.Bool:
		return jsonvalue.Bool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return jsonvalue.Int(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return jsonvalue.Uint(v.Uint()), nil
	case reflect.Float32:
		n, err := jsonvalue.Float(v.Float(), 32)
		return n, errors.Wrapf(err, "invalid value at %q", path)
	case reflect.Float64:
		n, err := jsonvalue.Float(v.Float(), 64)
		return n, errors.Wrapf(err, "invalid value at %q", path)
	case reflect.String:
		return jsonvalue.String(v.String()), nil
	default:
		return jsonvalue.Null{}, nil
	}
}

// walkSequence walks every element with the container's path,
// so that directives apply to all elements alike.
func (w walker) walkSequence(v reflect.Value, path pathutils.Path) (jsonvalue.Value, error) {
	if v.Kind() == reflect.Slice && v.IsNil() {
		return jsonvalue.Null{}, nil
	}
	array := make(jsonvalue.Array, 0, v.Len())
	for i := range v.Len() {
		elem, err := w.walk(v.Index(i), path)
		if err != nil {
			return nil, err
		}
		array = append(array, elem)
	}
	return array, nil
}

// walkMapping emits every non-nil entry under its key, ordered by key.
// Keys extend the path of the entries' values.
func (w walker) walkMapping(v reflect.Value, path pathutils.Path) (jsonvalue.Value, error) {
	if v.IsNil() {
		return jsonvalue.Null{}, nil
	}
	type entry struct {
		key   string
		value reflect.Value
	}
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		key, err := mapKey(iter.Key())
		if err != nil {
			return nil, errors.Wrapf(err, "invalid map key at %q", path)
		}
		entries = append(entries, entry{key: key, value: iter.Value()})
	}
	slices.SortFunc(entries, func(a, b entry) int { return strings.Compare(a.key, b.key) })

	object := make(jsonvalue.Object, 0, len(entries))
	for _, e := range entries {
		value, err := w.walk(e.value, path.Child(e.key))
		if err != nil {
			return nil, err
		}
		if jsonvalue.IsNull(value) {
			continue
		}
		object = append(object, jsonvalue.Member{Key: e.key, Value: value})
	}
	return object, nil
}

// walkComposite emits the visible, non-nil properties of a struct in discovery order.
func (w walker) walkComposite(v reflect.Value, path pathutils.Path) (jsonvalue.Value, error) {
	properties := typeinfo.Properties(v.Type())
	object := make(jsonvalue.Object, 0, len(properties))
	for _, property := range properties {
		if w.filters.IsExcluded(path, property.Name) {
			w.logger.Debug("property excluded", zap.Stringer("path", path.Child(property.Name)))
			continue
		}
		fv, ok := property.Value(v)
		if !ok || isNil(fv) {
			continue
		}
		class := property.Classify(fv)
		if !w.filters.IsIncluded(path, property.Name, class) {
			w.logger.Debug("relation not included", zap.Stringer("path", path.Child(property.Name)))
			continue
		}
		value, err := w.walk(fv, path.Child(property.Name))
		if err != nil {
			return nil, err
		}
		if jsonvalue.IsNull(value) {
			continue
		}
		object = append(object, jsonvalue.Member{Key: property.Name, Value: value})
	}
	return object, nil
}

func mapKey(k reflect.Value) (string, error) {
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
		if k.Kind() == reflect.Pointer && k.IsNil() {
			return "", nil
		}
		text, err := tm.MarshalText()
		return string(text), err
	}
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10), nil
	default:
		return fmt.Sprint(k.Interface()), nil
	}
}

// indirect follows pointers and interfaces, it returns an invalid value for nil.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return !v.IsValid()
	}
}
