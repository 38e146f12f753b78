package catalog

import (
	"time"

	"github.com/google/uuid"
)

// NewSampleStore returns a [Store] populated with a small demo catalog and a single order.
func NewSampleStore() *Store {
	store := NewStore()
	released := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	storage := &Category{ID: 1, Name: "Storage"}
	memory := &Category{ID: 2, Name: "Memory"}

	for _, p := range []*Product{
		{
			ID:       1,
			SKU:      uuid.MustParse("0b7e2d3c-5a2f-4c11-9c1e-3f6f0f2d8a01"),
			Name:     "Samsumg ZTX A9000",
			Price:    129.9,
			Status:   StatusActive,
			Released: released,
			Tags:     []string{"ssd", "nvme"},
			Category: storage,
		},
		{
			ID:       2,
			SKU:      uuid.MustParse("6c1d8e4a-07b3-4e2a-8d55-a1c9b7e4f302"),
			Name:     "Kingstone Fury 32GB",
			Price:    84.5,
			Status:   StatusActive,
			Released: released.AddDate(0, 2, 0),
			Tags:     []string{"ddr5"},
			Category: memory,
		},
		{
			ID:       3,
			SKU:      uuid.MustParse("f3a9b0c2-9d7e-4b61-b2a4-5e8d1c6f7a03"),
			Name:     "Seagote Barracuda 2TB",
			Price:    59,
			Status:   StatusDiscontinued,
			Released: released.AddDate(-3, 0, 0),
			Category: storage,
		},
	} {
		store.AddProduct(p)
	}

	store.now = func() time.Time { return released.AddDate(0, 3, 0) }
	if _, err := store.PlaceOrder(
		&Customer{
			Name:    "Franco",
			Email:   "franco@example.com",
			Address: &Address{Street: "Rua Augusta 100", City: "Lisbon", ZipCode: "1100-053"},
		},
		[]OrderItem{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}},
		map[string]string{"delivery": "leave at the door"},
	); err != nil {
		panic(err)
	}
	store.now = time.Now
	return store
}
