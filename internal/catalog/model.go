package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is rendered with its simple properties by default,
// the category has to be included explicitly.
type Product struct {
	ID       int64     `json:"id"`
	SKU      uuid.UUID `json:"sku"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Status   Status    `json:"status"`
	Released time.Time `json:"released"`
	Tags     []string  `json:"tags"`
	Category *Category `json:"category"`
}

type Address struct {
	Street  string
	City    string
	ZipCode string
}

type Customer struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Address *Address `json:"address"`
}

// Record holds bookkeeping fields shared by stored documents.
type Record struct {
	ID      int64     `json:"id"`
	Created time.Time `json:"created"`
}

type Order struct {
	Record
	Status   OrderStatus       `json:"status"`
	Customer *Customer         `json:"customer"`
	Lines    []*OrderLine      `json:"lines"`
	Notes    map[string]string `json:"notes"`
}

// Total is the sum of all line amounts.
func (o *Order) Total() float64 {
	var total float64
	for _, line := range o.Lines {
		total += line.Amount
	}
	return total
}

type OrderLine struct {
	Quantity int      `json:"quantity"`
	Amount   float64  `json:"amount"`
	Product  *Product `json:"product"`
}

// OrderItem is a single requested line of a new order.
type OrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type Status int

const (
	StatusActive Status = iota + 1
	StatusDiscontinued
)

var statusNames = map[Status]string{
	StatusActive:       "ACTIVE",
	StatusDiscontinued: "DISCONTINUED",
}

func (s Status) String() string { return enumString(statusNames, s) }

func (s *Status) UnmarshalText(text []byte) error { return enumParse(statusNames, s, text) }

type OrderStatus int

const (
	OrderStatusPlaced OrderStatus = iota + 1
	OrderStatusShipped
	OrderStatusCancelled
)

var orderStatusNames = map[OrderStatus]string{
	OrderStatusPlaced:    "PLACED",
	OrderStatusShipped:   "SHIPPED",
	OrderStatusCancelled: "CANCELLED",
}

func (s OrderStatus) String() string { return enumString(orderStatusNames, s) }

func (s *OrderStatus) UnmarshalText(text []byte) error { return enumParse(orderStatusNames, s, text) }

func enumString[T ~int](names map[T]string, v T) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("%T(%d)", v, int(v))
}

func enumParse[T ~int](names map[T]string, v *T, text []byte) error {
	for value, name := range names {
		if strings.EqualFold(name, string(text)) {
			*v = value
			return nil
		}
	}
	return errors.Errorf("invalid %T: %q", *v, text)
}
