package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is a value object for a single line in an order.
// Inputs are validated at the transport edge; the entity only computes.
type OrderItem struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

func (i OrderItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Order is the aggregate root. TotalAmount is always derived from Items,
// never stored, so the two can never drift apart.
type Order struct {
	ID         string
	CustomerID string
	Items      []OrderItem
	Status     OrderStatus
	CreatedAt  time.Time
}

// NewOrder assigns the order its identity. The ID is generated here, exactly
// once, and is never supplied by the caller.
func NewOrder(customerID string, items []OrderItem) *Order {
	return &Order{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Items:      items,
		Status:     StatusPending,
		CreatedAt:  time.Now().UTC(),
	}
}

func (o *Order) TotalAmount() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}

type OrderStatus string

const (
	StatusPending OrderStatus = "PENDING"
)
