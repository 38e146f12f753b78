package jsonview

import (
	"encoding/json"
	"io"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// ErrNoParameters is returned when deserializing for an operation without parameters.
var ErrNoParameters = errors.New("operations consuming a JSON body must receive at least one parameter")

// DeserializationError wraps any failure which occurred while reading or converting the JSON body.
type DeserializationError struct {
	cause error
}

func (e *DeserializationError) Error() string {
	return "unable to deserialize data: " + e.cause.Error()
}

func (e *DeserializationError) Unwrap() error { return e.cause }

// Cause implements the github.com/pkg/errors causer interface.
func (e *DeserializationError) Cause() error { return e.cause }

// Parameter is a named, typed input of an operation.
type Parameter struct {
	Name string
	Type reflect.Type
}

// ParametersOf pairs the input types of the function fn with names.
// Go does not retain parameter names, hence they have to be supplied in order.
func ParametersOf(fn any, names ...string) ([]Parameter, error) {
	typ := reflect.TypeOf(fn)
	if typ == nil || typ.Kind() != reflect.Func {
		return nil, errors.Errorf("expected a function, got %T", fn)
	}
	if typ.NumIn() != len(names) {
		return nil, errors.Errorf("function %s has %d parameters, but %d names were provided",
			typ, typ.NumIn(), len(names))
	}
	params := make([]Parameter, 0, typ.NumIn())
	for i := range typ.NumIn() {
		params = append(params, Parameter{Name: names[i], Type: typ.In(i)})
	}
	return params, nil
}

// Deserialize reads a single JSON object from r and converts each of its top-level members
// whose key matches a parameter name to that parameter's type.
//
// The result holds one value per parameter, in order; parameters without a matching member
// (or with a null or empty string value) are nil.
// Dates are read with [DateLayout] and enumerations implementing [encoding.TextUnmarshaler]
// by their name.
//
// [ErrNoParameters] is returned before reading r if params is empty.
// Any other failure is reported as [*DeserializationError] and no values are returned.
func Deserialize(r io.Reader, params ...Parameter) ([]any, error) {
	if len(params) == 0 {
		return nil, ErrNoParameters
	}
	values, err := deserialize(r, params)
	if err != nil {
		return nil, &DeserializationError{cause: err}
	}
	return values, nil
}

// DecodeParameter is a typed shorthand of [Deserialize] for a single parameter.
// found is false if the body had no usable member named name.
func DecodeParameter[T any](r io.Reader, name string) (value T, found bool, err error) {
	values, err := Deserialize(r, Parameter{Name: name, Type: reflect.TypeFor[T]()})
	if err != nil {
		return value, false, err
	}
	if values[0] == nil {
		return value, false, nil
	}
	return values[0].(T), true, nil
}

func deserialize(r io.Reader, params []Parameter) ([]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, errors.Wrap(err, "failed to read JSON object")
	}
	pruneEmptyStrings(root)

	values := make([]any, len(params))
	for i, param := range params {
		if param.Type == nil {
			return nil, errors.Errorf("parameter %q has no type", param.Name)
		}
		node, found := root[param.Name]
		if !found || node == nil {
			continue
		}
		value, err := decodeValue(node, param.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode parameter %q", param.Name)
		}
		values[i] = value
	}
	return values, nil
}

func decodeValue(node any, typ reflect.Type) (any, error) {
	target := reflect.New(typ)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(DateLayout),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:  target.Interface(),
		TagName: "json",
		Squash:  true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create decoder")
	}
	if err = decoder.Decode(node); err != nil {
		return nil, err
	}
	return target.Elem().Interface(), nil
}

// pruneEmptyStrings removes object members holding empty strings, recursively,
// so that they are treated as absent.
func pruneEmptyStrings(node any) {
	switch v := node.(type) {
	case map[string]any:
		for key, value := range v {
			if s, ok := value.(string); ok && s == "" {
				delete(v, key)
				continue
			}
			pruneEmptyStrings(value)
		}
	case []any:
		for _, value := range v {
			pruneEmptyStrings(value)
		}
	}
}
