package repository

import (
	"context"
	"time"
)

// CacheRepository stores computed lease summaries keyed by a hash of the input.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
