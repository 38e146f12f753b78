package pathutils

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Separator separates property names in a dotted path.
const Separator = "."

// Path is a pre-split dotted property path, e.g. "products.group.id".
// The root path is empty.
type Path []string

// ParsePath splits a dotted path into its segments.
// Returns an error if the path is empty or any of its segments is empty.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, errors.New("path must not be empty")
	}
	segments := strings.Split(s, Separator)
	for i, segment := range segments {
		if segment == "" {
			return nil, errors.Errorf("path %q has an empty segment at position %d", s, i)
		}
	}
	return segments, nil
}

// MustParsePath is like [ParsePath] but panics on error.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Child returns a new path extended with name.
// The receiver is never modified nor shared with the result.
func (p Path) Child(name string) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = name
	return child
}

// Equal reports whether both paths consist of the same segments.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

// IsRoot reports whether the path has no segments.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

func (p Path) String() string {
	return strings.Join(p, Separator)
}
