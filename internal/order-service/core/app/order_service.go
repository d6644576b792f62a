package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jcmexdev/order-service/internal/order-service/core/domain/entity"
	"github.com/jcmexdev/order-service/internal/order-service/core/ports"
)

// Ensure OrderService implements the input port at compile time.
var _ ports.OrderService = (*OrderService)(nil)

// OrderService orchestrates order creation: persist, then notify.
//
// Persistence and notification sit on opposite sides of the failure
// boundary. A save failure aborts the request before any event exists;
// a publish failure is logged and swallowed, because the order must
// exist even when the notification does not. There is no outbox and no
// retry: a lost publish leaves only an error log behind, and downstream
// consumers are expected to compensate.
type OrderService struct {
	repo   ports.OrderRepository
	broker ports.MessageBroker
}

func NewOrderService(repo ports.OrderRepository, broker ports.MessageBroker) *OrderService {
	return &OrderService{
		repo:   repo,
		broker: broker,
	}
}

// CreateOrder builds the aggregate, persists it, and publishes an
// OrderCreated event to the stock_updates queue on a best-effort basis.
func (s *OrderService) CreateOrder(ctx context.Context, customerID string, items []entity.OrderItem) (*entity.Order, error) {
	order := entity.NewOrder(customerID, items)

	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	slog.InfoContext(ctx, "order created", "order_id", saved.ID, "customer_id", saved.CustomerID)

	event := NewOrderCreatedEvent(saved)
	if err := s.broker.Publish(ctx, StockUpdatesQueue, event); err != nil {
		slog.ErrorContext(ctx, "failed to publish OrderCreated event, order persisted without notification",
			"order_id", saved.ID,
			"queue", StockUpdatesQueue,
			"error", err,
		)
	} else {
		slog.InfoContext(ctx, "OrderCreated event published", "order_id", saved.ID, "queue", StockUpdatesQueue)
	}

	return saved, nil
}

// GetOrder returns a persisted order by ID.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return order, nil
}
