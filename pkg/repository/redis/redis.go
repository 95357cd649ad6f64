package redis

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/redis/go-redis/v9"

	"github.com/folio-dev/folio/pkg/domain/interfaces"
	"github.com/folio-dev/folio/pkg/repository"
)

type cacheRepository struct {
	client *redis.Client
	prefix string
}

// Repository is a CacheRepository backed by Redis. Expiry is delegated to the
// server.
type Repository interface {
	interfaces.CacheRepository
	Close() error
}

type Option func(*cacheRepository)

// WithPrefix namespaces every key so that deployments can share a database.
func WithPrefix(prefix string) Option {
	return func(x *cacheRepository) {
		x.prefix = prefix
	}
}

// New connects to Redis and verifies the connection with PING
func New(ctx context.Context, opts *redis.Options, options ...Option) (Repository, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, goerr.Wrap(err, "failed to connect to Redis", goerr.V("addr", opts.Addr))
	}

	x := &cacheRepository{client: client}
	for _, opt := range options {
		opt(x)
	}
	return x, nil
}

func (x *cacheRepository) key(key string) string {
	return x.prefix + key
}

func (x *cacheRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := x.client.Get(ctx, x.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to get cache entry", goerr.V("key", key))
	}
	return v, true, nil
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

	if err := x.client.Set(ctx, x.key(key), value, ttl).Err(); err != nil {
		return goerr.Wrap(err, "failed to set cache entry", goerr.V("key", key))
	}
	return nil
}

func (x *cacheRepository) Close() error {
	return x.client.Close()
}
