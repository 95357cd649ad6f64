package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/folio-dev/folio/pkg/domain/interfaces"
	"github.com/folio-dev/folio/pkg/repository"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

type cacheRepository struct {
	mu      sync.RWMutex
	entries map[string]*entry
	now     func() time.Time
}

type Option func(*cacheRepository)

// WithClock replaces the clock used to decide expiry.
func WithClock(now func() time.Time) Option {
	return func(x *cacheRepository) {
		x.now = now
	}
}

// New creates a new in-memory cache repository
func New(options ...Option) interfaces.CacheRepository {
	x := &cacheRepository{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *cacheRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	x.mu.RLock()
	e, ok := x.entries[key]
	x.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}

	if !x.now().Before(e.expiresAt) {
		x.mu.Lock()
		// Another writer may have refreshed the key in between.
		if cur, ok := x.entries[key]; ok && cur == e {
			delete(x.entries, key)
		}
		x.mu.Unlock()
		return nil, false, nil
	}

	return append([]byte{}, e.value...), true, nil
}

func (x *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "cache key is empty")
	}
	if ttl <= 0 {
		return goerr.Wrap(repository.ErrInvalidInput, "ttl must be positive",
			goerr.V("key", key),
			goerr.V("ttl", ttl),
		)
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	x.entries[key] = &entry{
		value:     append([]byte{}, value...),
		expiresAt: x.now().Add(ttl),
	}
	return nil
}
