// Package idempotency remembers client request keys in Redis so a retried
// request is not executed twice.
package idempotency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idempotency:"

// RedisGuard implements ports.IdempotencyGuard with SET NX.
type RedisGuard struct {
	client redis.UniversalClient
}

func NewRedisGuard(client redis.UniversalClient) *RedisGuard {
	return &RedisGuard{client: client}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := g.client.SetNX(ctx, keyPrefix+key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

func (g *RedisGuard) Release(ctx context.Context, key string) error {
	return g.client.Del(ctx, keyPrefix+key).Err()
}
