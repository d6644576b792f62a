package ports

import (
	"context"

	"github.com/jcmexdev/order-service/internal/order-service/core/domain/entity"
)

// OrderService is the input port consumed by the transport layer.
type OrderService interface {
	CreateOrder(ctx context.Context, customerID string, items []entity.OrderItem) (*entity.Order, error)
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
}
