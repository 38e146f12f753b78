package catalog

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nieomylnieja/jsonview/pkg/jsonview"
)

// View describes how a resource is projected.
type View struct {
	Include     []string
	Exclude     []string
	Alias       string
	Indented    bool
	WithoutRoot bool
}

// ParseView reads the view from query parameters:
//
//	include=customer,lines&include=lines.product
//	exclude=lines.product.sku
//	pretty=true
//	root=false
//	alias=purchase
//
// Unset parameters fall back to the defaults.
func ParseView(query url.Values, defaults View) (View, error) {
	view := defaults
	view.Include = slices.Concat(defaults.Include, splitList(query["include"]))
	view.Exclude = slices.Concat(defaults.Exclude, splitList(query["exclude"]))
	if alias := query.Get("alias"); alias != "" {
		view.Alias = alias
	}
	if raw := query.Get("pretty"); raw != "" {
		pretty, err := strconv.ParseBool(raw)
		if err != nil {
			return View{}, errors.Errorf("invalid pretty parameter: %q", raw)
		}
		view.Indented = pretty
	}
	if raw := query.Get("root"); raw != "" {
		root, err := strconv.ParseBool(raw)
		if err != nil {
			return View{}, errors.Errorf("invalid root parameter: %q", raw)
		}
		view.WithoutRoot = !root
	}
	return view, nil
}

// Serialization configures the serialization of value according to the view.
func (v View) Serialization(value any) jsonview.Serialization {
	s := jsonview.New()
	if v.Indented {
		s = s.Indented()
	}
	if v.WithoutRoot {
		s = s.WithoutRoot()
	}
	if v.Alias != "" {
		s = s.FromAs(value, v.Alias)
	} else {
		s = s.From(value)
	}
	return s.Include(v.Include...).Exclude(v.Exclude...)
}

func splitList(values []string) []string {
	var result []string
	for _, value := range values {
		for item := range strings.SplitSeq(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				result = append(result, item)
			}
		}
	}
	return result
}
