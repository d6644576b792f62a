package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/order-service/internal/order-service/core/domain/entity"
)

type stubRepository struct {
	saveErr error
	saved   []*entity.Order
	byID    map[string]*entity.Order
}

func (r *stubRepository) Save(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	r.saved = append(r.saved, order)
	return order, nil
}

func (r *stubRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrOrderNotFound
	}
	return order, nil
}

type spyBroker struct {
	publishErr error
	queues     []string
	messages   []any
}

func (b *spyBroker) Connect(ctx context.Context) error { return nil }
func (b *spyBroker) Close() error                      { return nil }

func (b *spyBroker) Publish(ctx context.Context, queue string, message any) error {
	b.queues = append(b.queues, queue)
	b.messages = append(b.messages, message)
	return b.publishErr
}

func testItems() []entity.OrderItem {
	return []entity.OrderItem{{ProductID: "sku-1", Quantity: 2, UnitPrice: 10.0}}
}

func TestCreateOrder_PersistsAndPublishes(t *testing.T) {
	repo := &stubRepository{}
	broker := &spyBroker{}
	svc := NewOrderService(repo, broker)

	order, err := svc.CreateOrder(context.Background(), "cust-1", testItems())
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, 20.0, order.TotalAmount())
	require.Len(t, repo.saved, 1)
	assert.Same(t, repo.saved[0], order)

	require.Len(t, broker.messages, 1)
	assert.Equal(t, []string{StockUpdatesQueue}, broker.queues)

	event, ok := broker.messages[0].(OrderCreatedEvent)
	require.True(t, ok, "expected an OrderCreatedEvent, got %T", broker.messages[0])
	assert.Equal(t, "OrderCreated", event.Event)
	assert.Equal(t, order.ID, event.Data.OrderID)
	assert.Equal(t, "cust-1", event.Data.CustomerID)
	assert.Equal(t, 20.0, event.Data.TotalAmount)
	require.Len(t, event.Data.Items, 1)
	assert.Equal(t, EventItem{ProductID: "sku-1", Qty: 2}, event.Data.Items[0])
}

func TestCreateOrder_PublishFailureIsIsolated(t *testing.T) {
	repo := &stubRepository{}
	broker := &spyBroker{publishErr: entity.ErrPublishFailed}
	svc := NewOrderService(repo, broker)

	order, err := svc.CreateOrder(context.Background(), "cust-1", testItems())
	require.NoError(t, err, "publish failure must never surface to the caller")

	require.Len(t, repo.saved, 1)
	assert.Same(t, repo.saved[0], order)
	assert.Equal(t, 20.0, order.TotalAmount())

	// Exactly one attempt, no retry.
	assert.Len(t, broker.messages, 1)
}

func TestCreateOrder_SaveFailurePropagates(t *testing.T) {
	repo := &stubRepository{saveErr: entity.ErrStorageUnavailable}
	broker := &spyBroker{}
	svc := NewOrderService(repo, broker)

	order, err := svc.CreateOrder(context.Background(), "cust-1", testItems())
	require.ErrorIs(t, err, entity.ErrStorageUnavailable)
	assert.Nil(t, order)

	// No event is built or published after a persistence failure.
	assert.Empty(t, broker.messages)
}

func TestGetOrder(t *testing.T) {
	existing := entity.NewOrder("cust-1", testItems())
	repo := &stubRepository{byID: map[string]*entity.Order{existing.ID: existing}}
	svc := NewOrderService(repo, &spyBroker{})

	order, err := svc.GetOrder(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Same(t, existing, order)

	_, err = svc.GetOrder(context.Background(), "missing")
	require.ErrorIs(t, err, entity.ErrOrderNotFound)
}
