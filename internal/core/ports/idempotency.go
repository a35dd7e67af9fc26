package ports

import (
	"context"
	"time"
)

// IdempotencyGuard remembers request keys for a limited time.
type IdempotencyGuard interface {
	// Acquire returns false if key was already acquired within ttl.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release forgets key so the request can be retried.
	Release(ctx context.Context, key string) error
}
