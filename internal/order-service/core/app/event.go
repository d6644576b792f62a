package app

import (
	"time"

	"github.com/jcmexdev/order-service/internal/order-service/core/domain/entity"
)

// StockUpdatesQueue is the destination consumed by the stock-management
// service. The queue name and the payload shape below are a wire contract
// shared with downstream consumers; change them only in lockstep.
const StockUpdatesQueue = "stock_updates"

type OrderCreatedEvent struct {
	Event string           `json:"event"`
	Data  OrderCreatedData `json:"data"`
}

type OrderCreatedData struct {
	OrderID     string      `json:"order_id"`
	CustomerID  string      `json:"customer_id"`
	Items       []EventItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Timestamp   string      `json:"timestamp"`
}

type EventItem struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// NewOrderCreatedEvent builds the integration payload from the saved order,
// so identity or fields populated by the storage adapter are reflected.
func NewOrderCreatedEvent(order *entity.Order) OrderCreatedEvent {
	items := make([]EventItem, len(order.Items))
	for i, it := range order.Items {
		items[i] = EventItem{
			ProductID: it.ProductID,
			Qty:       it.Quantity,
		}
	}

	return OrderCreatedEvent{
		Event: "OrderCreated",
		Data: OrderCreatedData{
			OrderID:     order.ID,
			CustomerID:  order.CustomerID,
			Items:       items,
			TotalAmount: order.TotalAmount(),
			Timestamp:   order.CreatedAt.UTC().Format(time.RFC3339),
		},
	}
}
