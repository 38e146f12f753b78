package testmodels

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Group categorizes [Product].
type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is the basic catalog entry.
// [Product.Data] holds arbitrary payload and is classified by its dynamic type.
type Product struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creationDate"`
	Group        *Group    `json:"group"`
	Data         any       `json:"data"`
}

// Address has no json tags, its properties are named after lower camel case field names.
type Address struct {
	Street  string
	City    string
	ZipCode string
}

type Customer struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Address *Address `json:"address"`
}

// Order aggregates [Product] sold to a [Customer].
type Order struct {
	ID       int64      `json:"id"`
	Customer *Customer  `json:"customer"`
	Delivery *Address   `json:"delivery"`
	Products []*Product `json:"products"`
}

func (o *Order) AddProduct(p *Product) {
	o.Products = append(o.Products, p)
}

// Item is embedded by concrete items, its fields come after the embedding struct's own fields.
type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type HardDisk struct {
	Item
	Capacity int64 `json:"capacity"`
}

// Status is an enumeration rendered by its name.
type Status int

const (
	StatusDraft Status = iota
	StatusActive
	StatusRetired
)

var statusNames = []string{"DRAFT", "ACTIVE", "RETIRED"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if strings.EqualFold(name, string(text)) {
			*s = Status(i)
			return nil
		}
	}
	return errors.Errorf("invalid status: %q", text)
}

// StockEntry exercises every shape of simple and relation properties.
type StockEntry struct {
	SKU        uuid.UUID         `json:"sku"`
	Status     Status            `json:"status"`
	Quantity   uint32            `json:"quantity"`
	Price      float64           `json:"price"`
	Available  bool              `json:"available"`
	Tags       []string          `json:"tags"`
	Counts     map[string]int    `json:"counts"`
	Checksum   []byte            `json:"checksum"`
	Restocked  *time.Time        `json:"restocked"`
	Warehouse  *Address          `json:"warehouse"`
	Locations  map[string]*Group `json:"locations"`
	History    []Status          `json:"history"`
	Attributes map[string]any    `json:"attributes"`
}
