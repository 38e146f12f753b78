package jsonview

import (
	"bytes"
	"io"
	"reflect"
	"slices"

	"go.uber.org/zap"

	"github.com/nieomylnieja/jsonview/internal/jsonvalue"
)

// Serialization is an immutable serialization configuration.
// Every method returns a modified copy, the receiver is never changed,
// so a configured value can be safely reused and shared.
type Serialization struct {
	root        any
	alias       string
	withoutRoot bool
	indented    bool
	includes    []string
	excludes    []string
	logger      *zap.Logger
}

// New returns an empty [Serialization]; its root is nil until [Serialization.From] is called.
func New() Serialization {
	return Serialization{}
}

// From starts a [Serialization] of value, wrapped under a name derived from its type.
func From(value any) Serialization {
	return New().From(value)
}

// FromAs starts a [Serialization] of value, wrapped under alias.
func FromAs(value any, alias string) Serialization {
	return New().FromAs(value, alias)
}

// From sets the root value, the root name is derived from its type.
func (s Serialization) From(value any) Serialization {
	s.root = value
	s.alias = ""
	return s
}

// FromAs sets the root value and the name it is wrapped under.
// An alias is required for values without a natural type name, like maps and slices of builtin types.
func (s Serialization) FromAs(value any, alias string) Serialization {
	s.root = value
	s.alias = alias
	return s
}

// Include adds relation paths which should be emitted, e.g. "products", "products.group".
// Every segment of a nested path must be included on its own for the path to be reached.
func (s Serialization) Include(paths ...string) Serialization {
	s.includes = append(slices.Clip(s.includes), paths...)
	return s
}

// Exclude adds paths which must never be emitted, e.g. "id", "products.group.id".
// Exclusion takes precedence over inclusion.
func (s Serialization) Exclude(paths ...string) Serialization {
	s.excludes = append(slices.Clip(s.excludes), paths...)
	return s
}

// Indented enables pretty printing.
func (s Serialization) Indented() Serialization {
	s.indented = true
	return s
}

// WithoutRoot disables wrapping the result under the root name.
func (s Serialization) WithoutRoot() Serialization {
	s.withoutRoot = true
	return s
}

// WithLogger sets the logger used for debugging filtering decisions.
func (s Serialization) WithLogger(logger *zap.Logger) Serialization {
	s.logger = logger
	return s
}

// Serialize renders the configured value and writes the document to w.
// The document is fully rendered before it is written, on error nothing is written.
func (s Serialization) Serialize(w io.Writer) error {
	doc, err := s.document()
	if err != nil {
		return err
	}
	return jsonvalue.Write(w, doc, s.format())
}

// Marshal renders the configured value.
func (s Serialization) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String renders the configured value for debugging purposes.
func (s Serialization) String() string {
	data, err := s.Marshal()
	if err != nil {
		return "!error(" + err.Error() + ")"
	}
	return string(data)
}

func (s Serialization) document() (jsonvalue.Value, error) {
	logger := s.getLogger()
	root := indirect(reflect.ValueOf(s.root))
	if isNullRoot(root) {
		// Directives have nothing to apply to.
		if s.withoutRoot || s.alias == "" {
			return jsonvalue.Object{}, nil
		}
		return jsonvalue.Object{{Key: s.alias, Value: jsonvalue.Object{}}}, nil
	}

	p := plan{
		RootName: s.alias,
		WrapRoot: !s.withoutRoot,
		Includes: s.includes,
		Excludes: s.excludes,
	}
	if p.WrapRoot && p.RootName == "" {
		p.RootName = rootName(root)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	logger.Debug("serializing",
		zap.String("root", p.RootName),
		zap.Strings("include", p.Includes),
		zap.Strings("exclude", p.Excludes))

	w := walker{filters: p.filters(), logger: logger}
	value, err := w.walk(root, nil)
	if err != nil {
		return nil, err
	}
	if !p.WrapRoot {
		return value, nil
	}
	return jsonvalue.Object{{Key: p.RootName, Value: value}}, nil
}

func (s Serialization) format() jsonvalue.Format {
	if s.indented {
		return jsonvalue.Indented
	}
	return jsonvalue.Compact
}

func (s Serialization) getLogger() *zap.Logger {
	if s.logger == nil {
		return zap.NewNop()
	}
	return s.logger
}

// isNullRoot reports whether the root should be treated as null.
// Nil maps and slices count as null at the root, they have nothing to wrap.
func isNullRoot(root reflect.Value) bool {
	if !root.IsValid() {
		return true
	}
	switch root.Kind() {
	case reflect.Map, reflect.Slice:
		return root.IsNil()
	default:
		return false
	}
}
