package ports

import (
	"context"

	"github.com/jcmexdev/order-service/internal/order-service/core/domain/entity"
)

// OrderRepository is the output port for order persistence. Implementations
// must preserve the order ID across Save/GetByID and report a miss with
// entity.ErrOrderNotFound. Saving the same ID twice overwrites.
type OrderRepository interface {
	Save(ctx context.Context, order *entity.Order) (*entity.Order, error)
	GetByID(ctx context.Context, id string) (*entity.Order, error)
}
