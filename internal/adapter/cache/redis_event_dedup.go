package cache

import (
	"context"
	"time"

	"github.com/rakshalokam/storefront-api/internal/usecase"
	"github.com/redis/go-redis/v9"
)

// RedisEventDedup drops webhook redeliveries: the first SETNX on an event
// id wins, later deliveries within the TTL see false.
type RedisEventDedup struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisEventDedup(rdb *redis.Client, ttl time.Duration) *RedisEventDedup {
	return &RedisEventDedup{rdb: rdb, ttl: ttl}
}

func (s *RedisEventDedup) TryLock(ctx context.Context, scope, key string) (bool, error) {
	return s.rdb.SetNX(ctx, "dedup:"+scope+":"+key, "1", s.ttl).Result()
}

var _ usecase.EventDedup = (*RedisEventDedup)(nil)
