// Package jsonview renders selective JSON projections of arbitrary Go values.
//
// By default only the simple properties of the root value are emitted:
// numbers, booleans, strings, dates, enumerations and containers of those.
// Relations (structs, and slices or maps of structs) are omitted unless their
// dotted path is explicitly included. Any property can be excluded by its path,
// exclusion always takes precedence.
//
// # Basic Usage
//
// Given the following types:
//
//	type Group struct {
//	    ID   int64  `json:"id"`
//	    Name string `json:"name"`
//	}
//
//	type Product struct {
//	    ID           int64     `json:"id"`
//	    Name         string    `json:"name"`
//	    CreationDate time.Time `json:"creationDate"`
//	    Group        *Group    `json:"group"`
//	}
//
// Serialize a product:
//
//	err := jsonview.From(product).Serialize(w)
//	// {"product":{"id":1,"name":"Product 1","creationDate":"2024-05-01"}}
//
//	err := jsonview.From(product).Include("group").Exclude("group.id").Serialize(w)
//	// {"product":{"id":1,"name":"Product 1","creationDate":"2024-05-01","group":{"name":"Group 1"}}}
//
// # Paths
//
// Paths are matched against the full path from the root, segment by segment.
// Elements of slices share the path of the slice, hence "products.group"
// includes the group of every product. Keys of maps extend the path of their values.
//
// # Root Wrapper
//
// The result is wrapped under a single key, unless [Serialization.WithoutRoot] is used.
// The key is the alias passed to [FromAs], or derived from the root type:
// Product becomes "product" and []Product becomes "productList".
// Maps and slices of unnamed types require an alias.
// A nil root always renders as {} or, with an alias, as {"alias":{}}.
//
// # Properties
//
// Struct fields are named after their json tag or, without one, after the
// lower camel case field name. Fields promoted from embedded structs follow
// the fields declared on the struct itself and are shadowed by them.
// Nil properties are omitted.
//
// # Deserialization
//
// [Deserialize] is the counterpart for request bodies: it maps the top-level
// members of a JSON object to named, typed operation parameters.
package jsonview
