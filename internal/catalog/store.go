package catalog

import (
	"cmp"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/nobl9/govy/pkg/govy"
	"github.com/nobl9/govy/pkg/rules"
	"github.com/pkg/errors"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("resource not found")

// InvalidOrderError is returned when an order cannot be placed as requested.
type InvalidOrderError struct {
	cause error
}

func (e *InvalidOrderError) Error() string { return "invalid order: " + e.cause.Error() }

func (e *InvalidOrderError) Unwrap() error { return e.cause }

// Store is an in-memory catalog of products and orders, safe for concurrent use.
// Stored values are never modified once added.
type Store struct {
	mu          sync.RWMutex
	products    map[int64]*Product
	orders      map[int64]*Order
	lastOrderID int64
	now         func() time.Time
}

func NewStore() *Store {
	return &Store{
		products: make(map[int64]*Product),
		orders:   make(map[int64]*Order),
		now:      time.Now,
	}
}

func (s *Store) AddProduct(p *Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

// Products returns all products ordered by ID.
func (s *Store) Products() []*Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.products, func(p *Product) int64 { return p.ID })
}

func (s *Store) Product(id int64) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "product %d", id)
	}
	return p, nil
}

// Orders returns all orders ordered by ID.
func (s *Store) Orders() []*Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.orders, func(o *Order) int64 { return o.ID })
}

func (s *Store) Order(id int64) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "order %d", id)
	}
	return o, nil
}

type orderRequest struct {
	Customer *Customer
	Items    []OrderItem
}

var customerValidator = govy.New(
	govy.For(func(c Customer) string { return c.Name }).
		WithName("name").
		Required(),
	govy.For(func(c Customer) string { return c.Email }).
		WithName("email").
		Required().
		Rules(rules.StringEmail()),
)

var orderRequestValidator = govy.New(
	govy.ForPointer(func(r orderRequest) *Customer { return r.Customer }).
		WithName("customer").
		Required().
		Include(customerValidator),
	govy.For(func(r orderRequest) int { return len(r.Items) }).
		WithName("items").
		Rules(rules.GT(0)),
	govy.ForSlice(func(r orderRequest) []OrderItem { return r.Items }).
		WithName("items").
		RulesForEach(govy.NewRule(func(item OrderItem) error {
			if item.Quantity <= 0 {
				return errors.Errorf("quantity of product %d must be positive", item.ProductID)
			}
			return nil
		})),
).WithName("Order")

// PlaceOrder creates a new order of the items for the customer.
// Each item has to reference an existing product.
func (s *Store) PlaceOrder(customer *Customer, items []OrderItem, notes map[string]string) (*Order, error) {
	if err := orderRequestValidator.Validate(orderRequest{Customer: customer, Items: items}); err != nil {
		return nil, &InvalidOrderError{cause: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]*OrderLine, 0, len(items))
	for _, item := range items {
		product, ok := s.products[item.ProductID]
		if !ok {
			return nil, &InvalidOrderError{cause: errors.Wrapf(ErrNotFound, "product %d", item.ProductID)}
		}
		if product.Status != StatusActive {
			return nil, &InvalidOrderError{cause: errors.Errorf("product %d is %s", product.ID, product.Status)}
		}
		lines = append(lines, &OrderLine{
			Quantity: item.Quantity,
			Amount:   float64(item.Quantity) * product.Price,
			Product:  product,
		})
	}

	s.lastOrderID++
	order := &Order{
		Record:   Record{ID: s.lastOrderID, Created: s.now()},
		Status:   OrderStatusPlaced,
		Customer: customer,
		Lines:    lines,
		Notes:    maps.Clone(notes),
	}
	s.orders[order.ID] = order
	return order, nil
}

// Resolve finds the value behind a resource reference: "products", "products/{id}",
// "orders" or "orders/{id}".
func (s *Store) Resolve(resource string) (any, error) {
	kind, rawID, hasID := strings.Cut(strings.Trim(resource, "/"), "/")
	var id int64
	if hasID {
		var err error
		id, err = strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return nil, errors.Errorf("invalid %s id: %q", kind, rawID)
		}
	}
	switch {
	case kind == "products" && !hasID:
		return s.Products(), nil
	case kind == "products":
		return s.Product(id)
	case kind == "orders" && !hasID:
		return s.Orders(), nil
	case kind == "orders":
		return s.Order(id)
	default:
		return nil, errors.Errorf("unknown resource: %q", resource)
	}
}

func sortedByID[T any](m map[int64]T, id func(T) int64) []T {
	values := slices.Collect(maps.Values(m))
	slices.SortFunc(values, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
	return values
}
