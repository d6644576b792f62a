package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jcmexdev/order-service/internal/order-service/core/domain/entity"
)

func TestMemoryRepository_RoundTrip(t *testing.T) {
	repo := NewMemoryRepository()
	order := entity.NewOrder("cust-1", []entity.OrderItem{
		{ProductID: "sku-1", Quantity: 2, UnitPrice: 10.0},
	})

	saved, err := repo.Save(context.Background(), order)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saved.ID != order.ID {
		t.Errorf("save changed order ID: %q -> %q", order.ID, saved.ID)
	}

	got, err := repo.GetByID(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.CustomerID != order.CustomerID {
		t.Errorf("expected customer %q, got %q", order.CustomerID, got.CustomerID)
	}
	if len(got.Items) != len(order.Items) {
		t.Fatalf("expected %d items, got %d", len(order.Items), len(got.Items))
	}
	if got.TotalAmount() != order.TotalAmount() {
		t.Errorf("expected total %v, got %v", order.TotalAmount(), got.TotalAmount())
	}
}

func TestMemoryRepository_GetByID_Missing(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, entity.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestMemoryRepository_ConcurrentSaves(t *testing.T) {
	repo := NewMemoryRepository()

	var wg sync.WaitGroup
	orders := make([]*entity.Order, 50)
	for i := range orders {
		orders[i] = entity.NewOrder("cust-1", nil)
	}

	for _, order := range orders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Save(context.Background(), order); err != nil {
				t.Errorf("save failed: %v", err)
			}
		}()
	}
	wg.Wait()

	for _, order := range orders {
		if _, err := repo.GetByID(context.Background(), order.ID); err != nil {
			t.Errorf("order %s lost after concurrent save: %v", order.ID, err)
		}
	}
}
