package typeinfo

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entity struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
}

type Auditable struct {
	UpdatedBy string
	Name      string `json:"name"`
}

type device struct {
	entity
	*Auditable
	Capacity int64  `json:"capacity"`
	Name     string `json:"name"`
	Hidden   string `json:"-"`
	internal string
	Tags     []string
	Owner    *entity `json:"owner"`
	Payload  any     `json:"payload"`
}

type tagged struct {
	entity `json:"base"`
	URLPath string
}

func propertyNames(properties []Property) []string {
	names := make([]string, 0, len(properties))
	for _, p := range properties {
		names = append(names, p.Name)
	}
	return names
}

func TestProperties(t *testing.T) {
	t.Run("own fields precede embedded fields", func(t *testing.T) {
		props := Properties(reflect.TypeFor[device]())
		assert.Equal(t,
			[]string{"capacity", "name", "tags", "owner", "payload", "id", "created", "updatedBy"},
			propertyNames(props))
	})

	t.Run("classes are computed from declared types", func(t *testing.T) {
		props := Properties(reflect.TypeFor[device]())
		classes := make(map[string]Class, len(props))
		for _, p := range props {
			classes[p.Name] = p.Class
		}
		assert.Equal(t, map[string]Class{
			"capacity":  Simple,
			"name":      Simple,
			"tags":      Simple,
			"owner":     Relation,
			"payload":   Relation,
			"id":        Simple,
			"created":   Simple,
			"updatedBy": Simple,
		}, classes)
	})

	t.Run("pointer types are dereferenced", func(t *testing.T) {
		assert.Equal(t,
			propertyNames(Properties(reflect.TypeFor[device]())),
			propertyNames(Properties(reflect.TypeFor[*device]())))
	})

	t.Run("tagged embedded struct is a regular property", func(t *testing.T) {
		props := Properties(reflect.TypeFor[tagged]())
		require.Len(t, props, 2)
		assert.Equal(t, "base", props[0].Name)
		assert.Equal(t, Relation, props[0].Class)
		assert.Equal(t, "urlPath", props[1].Name)
	})

	t.Run("non struct types have no properties", func(t *testing.T) {
		assert.Nil(t, Properties(reflect.TypeFor[map[string]int]()))
		assert.Nil(t, Properties(reflect.TypeFor[[]entity]()))
	})

	t.Run("descriptors are cached", func(t *testing.T) {
		first := Properties(reflect.TypeFor[entity]())
		second := Properties(reflect.TypeFor[entity]())
		require.NotEmpty(t, first)
		assert.Same(t, &first[0], &second[0])
	})
}

func TestProperty_Value(t *testing.T) {
	props := Properties(reflect.TypeFor[device]())
	byName := make(map[string]Property, len(props))
	for _, p := range props {
		byName[p.Name] = p
	}

	t.Run("promoted field", func(t *testing.T) {
		d := device{entity: entity{ID: 7}}
		v, ok := byName["id"].Value(reflect.ValueOf(d))
		require.True(t, ok)
		assert.Equal(t, int64(7), v.Int())
	})

	t.Run("shadowing field", func(t *testing.T) {
		d := device{entity: entity{Name: "base"}, Name: "derived"}
		v, ok := byName["name"].Value(reflect.ValueOf(d))
		require.True(t, ok)
		assert.Equal(t, "derived", v.String())
	})

	t.Run("nil embedded pointer", func(t *testing.T) {
		_, ok := byName["updatedBy"].Value(reflect.ValueOf(device{}))
		assert.False(t, ok)
	})

	t.Run("set embedded pointer", func(t *testing.T) {
		d := device{Auditable: &Auditable{UpdatedBy: "admin"}}
		v, ok := byName["updatedBy"].Value(reflect.ValueOf(d))
		require.True(t, ok)
		assert.Equal(t, "admin", v.String())
	})
}

func TestProperty_Classify(t *testing.T) {
	props := Properties(reflect.TypeFor[device]())
	var payload Property
	for _, p := range props {
		if p.Name == "payload" {
			payload = p
		}
	}
	require.Equal(t, "payload", payload.Name)

	tests := []struct {
		name     string
		payload  any
		expected Class
	}{
		{name: "nil", payload: nil, expected: Relation},
		{name: "string", payload: "data", expected: Simple},
		{name: "slice of ints", payload: []int{1}, expected: Simple},
		{name: "struct", payload: entity{}, expected: Relation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := device{Payload: tc.payload}
			v, ok := payload.Value(reflect.ValueOf(d))
			require.True(t, ok)
			assert.Equal(t, tc.expected, payload.Classify(v))
		})
	}
}
