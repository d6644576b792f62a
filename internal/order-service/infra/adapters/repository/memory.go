package repository

import (
	"context"
	"sync"

	"github.com/jcmexdev/order-service/internal/order-service/core/domain/entity"
	"github.com/jcmexdev/order-service/internal/order-service/core/ports"
)

var _ ports.OrderRepository = (*MemoryRepository)(nil)

// MemoryRepository keeps orders in a process-local map. Intended for
// development and tests; it has no failure path.
type MemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]*entity.Order
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		orders: make(map[string]*entity.Order),
	}
}

func (r *MemoryRepository) Save(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.ID] = order
	return order, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, entity.ErrOrderNotFound
	}
	return order, nil
}
