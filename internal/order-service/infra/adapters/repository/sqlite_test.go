package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/order-service/internal/order-service/core/domain/entity"
)

func openTestDB(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	repo := openTestDB(t)
	order := entity.NewOrder("cust-1", []entity.OrderItem{
		{ProductID: "sku-1", Quantity: 2, UnitPrice: 10.0},
		{ProductID: "sku-2", Quantity: 1, UnitPrice: 5.5},
	})

	saved, err := repo.Save(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, order.ID, saved.ID)

	got, err := repo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.CustomerID, got.CustomerID)
	assert.Equal(t, order.Items, got.Items)
	assert.Equal(t, order.TotalAmount(), got.TotalAmount())
	assert.Equal(t, entity.StatusPending, got.Status)
	assert.True(t, got.CreatedAt.Equal(order.CreatedAt), "created_at changed across the round trip")
}

func TestSQLiteRepository_SaveTwiceOverwrites(t *testing.T) {
	repo := openTestDB(t)
	order := entity.NewOrder("cust-1", []entity.OrderItem{
		{ProductID: "sku-1", Quantity: 1, UnitPrice: 1.0},
	})

	_, err := repo.Save(context.Background(), order)
	require.NoError(t, err)

	order.Items = append(order.Items, entity.OrderItem{ProductID: "sku-2", Quantity: 2, UnitPrice: 3.0})
	_, err = repo.Save(context.Background(), order)
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
	assert.Equal(t, 7.0, got.TotalAmount())
}

func TestSQLiteRepository_GetByID_Missing(t *testing.T) {
	repo := openTestDB(t)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, entity.ErrOrderNotFound), "expected ErrOrderNotFound, got %v", err)
}

func TestSQLiteRepository_ClosedStoreIsUnavailable(t *testing.T) {
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	order := &entity.Order{
		ID:         "closed-store-order",
		CustomerID: "cust-1",
		Status:     entity.StatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	_, err = repo.Save(context.Background(), order)
	assert.True(t, errors.Is(err, entity.ErrStorageUnavailable), "expected ErrStorageUnavailable, got %v", err)
}
