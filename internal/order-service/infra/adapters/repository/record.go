package repository

import (
	"time"

	"github.com/jcmexdev/order-service/internal/order-service/core/domain/entity"
)

// orderRecord is the persistence shape shared by the redis and sqlite
// adapters. The total is never persisted; it is recomputed from items.
type orderRecord struct {
	ID         string       `json:"id"`
	CustomerID string       `json:"customer_id"`
	Items      []itemRecord `json:"items"`
	Status     string       `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
}

type itemRecord struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func toRecord(order *entity.Order) orderRecord {
	items := make([]itemRecord, len(order.Items))
	for i, it := range order.Items {
		items[i] = itemRecord{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	return orderRecord{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Items:      items,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt.UTC(),
	}
}

func (rec orderRecord) toEntity() *entity.Order {
	items := make([]entity.OrderItem, len(rec.Items))
	for i, it := range rec.Items {
		items[i] = entity.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	return &entity.Order{
		ID:         rec.ID,
		CustomerID: rec.CustomerID,
		Items:      items,
		Status:     entity.OrderStatus(rec.Status),
		CreatedAt:  rec.CreatedAt,
	}
}
