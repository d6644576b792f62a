package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jcmexdev/order-service/internal/order-service/core/domain/entity"
	"github.com/jcmexdev/order-service/internal/order-service/core/ports"
)

var _ ports.OrderRepository = (*RedisRepository)(nil)

// RedisRepository stores each order as a JSON value keyed by
// "orders:order:<id>". Client errors are reported as storage
// unavailability so callers can classify them with errors.Is.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(addr string) *RedisRepository {
	return &RedisRepository{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (r *RedisRepository) Save(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	body, err := json.Marshal(toRecord(order))
	if err != nil {
		return nil, fmt.Errorf("redis: marshal order %s: %w", order.ID, err)
	}

	if err := r.client.Set(ctx, orderKey(order.ID), body, 0).Err(); err != nil {
		return nil, fmt.Errorf("redis: save order %s: %w: %w", order.ID, entity.ErrStorageUnavailable, err)
	}
	return order, nil
}

func (r *RedisRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	body, err := r.client.Get(ctx, orderKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, entity.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis: get order %s: %w: %w", id, entity.ErrStorageUnavailable, err)
	}

	var rec orderRecord
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		return nil, fmt.Errorf("redis: unmarshal order %s: %w", id, err)
	}
	return rec.toEntity(), nil
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func orderKey(id string) string {
	return fmt.Sprintf("orders:order:%s", id)
}
