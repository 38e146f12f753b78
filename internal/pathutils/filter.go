package pathutils

import (
	"slices"

	"github.com/nieomylnieja/jsonview/internal/typeinfo"
)

// FilterSet holds the include and exclude directives of a single serialization.
// Directives are matched against the full path from the root,
// segment by segment, never by prefix or pattern.
type FilterSet struct {
	includes []Path
	excludes []Path
}

// NewFilterSet creates a [FilterSet], the slices are copied.
func NewFilterSet(includes, excludes []Path) FilterSet {
	return FilterSet{
		includes: slices.Clone(includes),
		excludes: slices.Clone(excludes),
	}
}

// IsIncluded reports whether the property name under parent is visible by default
// ([typeinfo.Simple]) or explicitly included.
func (f FilterSet) IsIncluded(parent Path, name string, class typeinfo.Class) bool {
	return class == typeinfo.Simple || matchesAny(f.includes, parent, name)
}

// IsExcluded reports whether the property name under parent is explicitly excluded.
func (f FilterSet) IsExcluded(parent Path, name string) bool {
	return matchesAny(f.excludes, parent, name)
}

// Visible applies the resolution order: exclusion always wins,
// then simple properties and included relations are visible.
func (f FilterSet) Visible(parent Path, name string, class typeinfo.Class) bool {
	return !f.IsExcluded(parent, name) && f.IsIncluded(parent, name, class)
}

// Empty reports whether the set holds no directives.
func (f FilterSet) Empty() bool {
	return len(f.includes) == 0 && len(f.excludes) == 0
}

func matchesAny(directives []Path, parent Path, name string) bool {
	for _, directive := range directives {
		if len(directive) != len(parent)+1 {
			continue
		}
		if directive[len(parent)] == name && slices.Equal(directive[:len(parent)], parent) {
			return true
		}
	}
	return false
}
