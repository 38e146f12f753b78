package jsonview

import (
	"github.com/nobl9/govy/pkg/govy"
	"github.com/nobl9/govy/pkg/rules"

	"github.com/nieomylnieja/jsonview/internal/pathutils"
)

// plan is the resolved configuration of a single [Serialization.Serialize] call.
type plan struct {
	RootName string
	WrapRoot bool
	Includes []string
	Excludes []string
}

var dottedPathRule = govy.NewRule(func(path string) error {
	_, err := pathutils.ParsePath(path)
	return err
})

var planValidator = govy.New(
	govy.For(func(p plan) string { return p.RootName }).
		WithName("alias").
		When(func(p plan) bool { return p.WrapRoot }, govy.WhenDescription("root is wrapped")).
		Rules(rules.StringNotEmpty()),
	govy.ForSlice(func(p plan) []string { return p.Includes }).
		WithName("include").
		RulesForEach(dottedPathRule),
	govy.ForSlice(func(p plan) []string { return p.Excludes }).
		WithName("exclude").
		RulesForEach(dottedPathRule),
).WithName("Serialization")

// InvalidSerializationError reports a [Serialization] which cannot be serialized
// as configured, e.g. because of a malformed path or a missing alias.
type InvalidSerializationError struct {
	cause error
}

func (e *InvalidSerializationError) Error() string {
	return "invalid serialization: " + e.cause.Error()
}

func (e *InvalidSerializationError) Unwrap() error { return e.cause }

func (p plan) validate() error {
	if err := planValidator.Validate(p); err != nil {
		return &InvalidSerializationError{cause: err}
	}
	return nil
}

// filters builds the [pathutils.FilterSet], the plan must be validated first.
func (p plan) filters() pathutils.FilterSet {
	return pathutils.NewFilterSet(mustParsePaths(p.Includes), mustParsePaths(p.Excludes))
}

func mustParsePaths(values []string) []pathutils.Path {
	paths := make([]pathutils.Path, 0, len(values))
	for _, v := range values {
		paths = append(paths, pathutils.MustParsePath(v))
	}
	return paths
}
