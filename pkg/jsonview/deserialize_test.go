package jsonview

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nieomylnieja/jsonview/internal/testmodels"
)

func parameter[T any](name string) Parameter {
	return Parameter{Name: name, Type: reflect.TypeFor[T]()}
}

func TestDeserialize(t *testing.T) {
	t.Run("no parameters", func(t *testing.T) {
		values, err := Deserialize(strings.NewReader(`{"product":{}}`))
		require.ErrorIs(t, err, ErrNoParameters)
		assert.Nil(t, values)
	})

	t.Run("no parameters does not read the body", func(t *testing.T) {
		_, err := Deserialize(strings.NewReader(`not json`))
		require.ErrorIs(t, err, ErrNoParameters)
		var deserializationErr *DeserializationError
		assert.False(t, errors.As(err, &deserializationErr))
	})

	t.Run("struct with date and relation", func(t *testing.T) {
		body := `{"product":{"id":1,"name":"Product 1","creationDate":"2024-05-01","group":{"id":2,"name":"Group 2"}}}`
		values, err := Deserialize(strings.NewReader(body), parameter[testmodels.Product]("product"))
		require.NoError(t, err)
		require.Len(t, values, 1)
		assert.Equal(t, testmodels.Product{
			ID:           1,
			Name:         "Product 1",
			CreationDate: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
			Group:        &testmodels.Group{ID: 2, Name: "Group 2"},
		}, values[0])
	})

	t.Run("multiple parameters in declaration order", func(t *testing.T) {
		body := `{"count":3,"group":{"id":7,"name":"Group 7"},"ignored":true}`
		values, err := Deserialize(strings.NewReader(body),
			parameter[*testmodels.Group]("group"),
			parameter[int]("count"),
		)
		require.NoError(t, err)
		assert.Equal(t, []any{&testmodels.Group{ID: 7, Name: "Group 7"}, 3}, values)
	})

	t.Run("absent and null parameters", func(t *testing.T) {
		values, err := Deserialize(strings.NewReader(`{"group":null}`),
			parameter[testmodels.Group]("group"),
			parameter[string]("name"),
		)
		require.NoError(t, err)
		assert.Equal(t, []any{nil, nil}, values)
	})

	t.Run("empty strings are treated as absent", func(t *testing.T) {
		body := `{"name":"","group":{"id":1,"name":""}}`
		values, err := Deserialize(strings.NewReader(body),
			parameter[string]("name"),
			parameter[testmodels.Group]("group"),
		)
		require.NoError(t, err)
		assert.Nil(t, values[0])
		assert.Equal(t, testmodels.Group{ID: 1}, values[1])
	})

	t.Run("enumerations by name", func(t *testing.T) {
		body := `{"entry":{"sku":"5d2c4a9e-8f0b-4f6e-9b57-0d4f1e7c9a10","status":"retired","history":["DRAFT","active"]}}`
		values, err := Deserialize(strings.NewReader(body), parameter[testmodels.StockEntry]("entry"))
		require.NoError(t, err)
		entry := values[0].(testmodels.StockEntry)
		assert.Equal(t, uuid.MustParse("5d2c4a9e-8f0b-4f6e-9b57-0d4f1e7c9a10"), entry.SKU)
		assert.Equal(t, testmodels.StatusRetired, entry.Status)
		assert.Equal(t, []testmodels.Status{testmodels.StatusDraft, testmodels.StatusActive}, entry.History)
	})

	t.Run("embedded struct fields", func(t *testing.T) {
		body := `{"disk":{"id":1,"name":"Samsumg ZTX A9000","capacity":2987000009}}`
		values, err := Deserialize(strings.NewReader(body), parameter[testmodels.HardDisk]("disk"))
		require.NoError(t, err)
		assert.Equal(t, testmodels.HardDisk{
			Item:     testmodels.Item{ID: 1, Name: "Samsumg ZTX A9000"},
			Capacity: 2987000009,
		}, values[0])
	})

	t.Run("untagged fields", func(t *testing.T) {
		body := `{"address":{"street":"rua","city":"cidade","zipCode":"9800989"}}`
		values, err := Deserialize(strings.NewReader(body), parameter[testmodels.Address]("address"))
		require.NoError(t, err)
		assert.Equal(t, testmodels.Address{Street: "rua", City: "cidade", ZipCode: "9800989"}, values[0])
	})
}

func TestDeserialize_Errors(t *testing.T) {
	tests := map[string]struct {
		body   string
		params []Parameter
	}{
		"malformed JSON": {
			body:   `{"product":`,
			params: []Parameter{parameter[testmodels.Product]("product")},
		},
		"not an object": {
			body:   `[1,2,3]`,
			params: []Parameter{parameter[int]("count")},
		},
		"type mismatch": {
			body:   `{"count":"three"}`,
			params: []Parameter{parameter[int]("count")},
		},
		"invalid date": {
			body:   `{"product":{"creationDate":"01/05/2024"}}`,
			params: []Parameter{parameter[testmodels.Product]("product")},
		},
		"invalid enumeration": {
			body:   `{"status":"UNKNOWN"}`,
			params: []Parameter{parameter[testmodels.Status]("status")},
		},
		"parameter without type": {
			body:   `{"count":1}`,
			params: []Parameter{{Name: "count"}},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			values, err := Deserialize(strings.NewReader(tc.body), tc.params...)
			require.Error(t, err)
			assert.Nil(t, values)
			var deserializationErr *DeserializationError
			require.True(t, errors.As(err, &deserializationErr))
			assert.True(t, strings.HasPrefix(err.Error(), "unable to deserialize data: "), err.Error())
			assert.NotNil(t, errors.Cause(err))
		})
	}
}

func TestParametersOf(t *testing.T) {
	t.Run("pairs names with types", func(t *testing.T) {
		fn := func(order testmodels.Order, count int) {}
		params, err := ParametersOf(fn, "order", "count")
		require.NoError(t, err)
		assert.Equal(t, []Parameter{
			parameter[testmodels.Order]("order"),
			parameter[int]("count"),
		}, params)
	})

	t.Run("names count mismatch", func(t *testing.T) {
		_, err := ParametersOf(func(int) {}, "a", "b")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "has 1 parameters, but 2 names were provided")
	})

	t.Run("not a function", func(t *testing.T) {
		_, err := ParametersOf(42, "a")
		require.EqualError(t, err, "expected a function, got int")
	})

	t.Run("function without parameters", func(t *testing.T) {
		params, err := ParametersOf(func() {})
		require.NoError(t, err)
		_, err = Deserialize(strings.NewReader(`{}`), params...)
		assert.ErrorIs(t, err, ErrNoParameters)
	})
}

func TestDecodeParameter(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		group, found, err := DecodeParameter[*testmodels.Group](strings.NewReader(`{"group":{"id":1,"name":"Group 1"}}`), "group")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, &testmodels.Group{ID: 1, Name: "Group 1"}, group)
	})

	t.Run("not found", func(t *testing.T) {
		group, found, err := DecodeParameter[testmodels.Group](strings.NewReader(`{"other":1}`), "group")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Zero(t, group)
	})

	t.Run("error", func(t *testing.T) {
		_, found, err := DecodeParameter[int](strings.NewReader(`{`), "count")
		require.Error(t, err)
		assert.False(t, found)
	})
}

func TestDeserialize_RoundTrip(t *testing.T) {
	order := newOrder()
	order.Delivery = &testmodels.Address{Street: "delivery street", City: "Bristol", ZipCode: "09887990"}
	order.AddProduct(newProductWithGroup(1, 1))

	data, err := FromAs(order, "order").
		Include("customer", "customer.address", "delivery", "products", "products.group").
		Marshal()
	require.NoError(t, err)

	decoded, found, err := DecodeParameter[*testmodels.Order](strings.NewReader(string(data)), "order")
	require.NoError(t, err)
	require.True(t, found)

	expected := *order
	expected.Products = []*testmodels.Product{newProductWithGroup(1, 1)}
	expected.Products[0].CreationDate = time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, &expected, decoded)
}
