package cache

import (
	"context"
	"encoding/json"
	"time"

	domain "github.com/rakshalokam/storefront-api/internal/entity"
	"github.com/rakshalokam/storefront-api/internal/usecase"
	"github.com/redis/go-redis/v9"
)

const (
	orderStateKeyPrefix = "order:state:"
	collectionsKey      = "storefront:collections"
)

type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (r *RedisCache) SetOrderState(ctx context.Context, orderCode, state string) error {
	return r.rdb.Set(ctx, orderStateKeyPrefix+orderCode, state, r.ttl).Err()
}

func (r *RedisCache) GetOrderState(ctx context.Context, orderCode string) (string, bool, error) {
	val, err := r.rdb.Get(ctx, orderStateKeyPrefix+orderCode).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisCache) SetCollections(ctx context.Context, cols []domain.Collection) error {
	b, err := json.Marshal(cols)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, collectionsKey, b, r.ttl).Err()
}

func (r *RedisCache) GetCollections(ctx context.Context) ([]domain.Collection, bool, error) {
	b, err := r.rdb.Get(ctx, collectionsKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var cols []domain.Collection
	if err := json.Unmarshal(b, &cols); err != nil {
		return nil, false, err
	}
	return cols, true, nil
}

var (
	_ usecase.OrderStateCache = (*RedisCache)(nil)
	_ usecase.CollectionCache = (*RedisCache)(nil)
)
