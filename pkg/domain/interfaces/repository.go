package interfaces

import (
	"context"
	"time"
)

//go:generate moq -out ../mock/cache_repository_mock.go -pkg mock . CacheRepository

// CacheRepository stores opaque values with a time-to-live. Writes are
// last-writer-wins.
type CacheRepository interface {
	// Get returns false when the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
