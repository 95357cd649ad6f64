package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"

	"github.com/folio-dev/folio/pkg/domain/interfaces"
	"github.com/folio-dev/folio/pkg/infra/ghapi"
	"github.com/folio-dev/folio/pkg/repository/memory"
	"github.com/folio-dev/folio/pkg/repository/redis"
	"github.com/folio-dev/folio/pkg/utils/safe"
)

type Cache struct {
	redisAddr     string
	redisPassword string `masq:"secret"`
	redisDB       int64
	redisPrefix   string

	ttlRepositories time.Duration
	ttlDetail       time.Duration
	ttlCommits      time.Duration
}

func (x *Cache) Flags() []cli.Flag {
	ttl := ghapi.DefaultTTL()

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "redis-addr",
			Usage:       "Redis address for a shared cache (in-process cache if empty)",
			Category:    "Cache",
			Destination: &x.redisAddr,
			Sources:     cli.EnvVars("FOLIO_REDIS_ADDR"),
		},
		&cli.StringFlag{
			Name:        "redis-password",
			Usage:       "Redis password",
			Category:    "Cache",
			Destination: &x.redisPassword,
			Sources:     cli.EnvVars("FOLIO_REDIS_PASSWORD"),
		},
		&cli.Int64Flag{
			Name:        "redis-db",
			Usage:       "Redis database number",
			Category:    "Cache",
			Destination: &x.redisDB,
			Sources:     cli.EnvVars("FOLIO_REDIS_DB"),
		},
		&cli.StringFlag{
			Name:        "redis-prefix",
			Usage:       "Key prefix of cache entries in Redis",
			Category:    "Cache",
			Destination: &x.redisPrefix,
			Sources:     cli.EnvVars("FOLIO_REDIS_PREFIX"),
			Value:       "folio:",
		},
		&cli.DurationFlag{
			Name:        "cache-ttl-repos",
			Usage:       "Cache TTL of repository listings",
			Category:    "Cache",
			Destination: &x.ttlRepositories,
			Sources:     cli.EnvVars("FOLIO_CACHE_TTL_REPOS"),
			Value:       ttl.Repositories,
		},
		&cli.DurationFlag{
			Name:        "cache-ttl-detail",
			Usage:       "Cache TTL of repository details and languages",
			Category:    "Cache",
			Destination: &x.ttlDetail,
			Sources:     cli.EnvVars("FOLIO_CACHE_TTL_DETAIL"),
			Value:       ttl.Detail,
		},
		&cli.DurationFlag{
			Name:        "cache-ttl-commits",
			Usage:       "Cache TTL of commit lists",
			Category:    "Cache",
			Destination: &x.ttlCommits,
			Sources:     cli.EnvVars("FOLIO_CACHE_TTL_COMMITS"),
			Value:       ttl.Commits,
		},
	}
}

func (x *Cache) TTL() ghapi.TTL {
	return ghapi.TTL{
		Repositories: x.ttlRepositories,
		Detail:       x.ttlDetail,
		Commits:      x.ttlCommits,
	}
}

func (x *Cache) Validate() error {
	ttl := x.TTL()
	if ttl.Repositories <= 0 || ttl.Detail <= 0 || ttl.Commits <= 0 {
		return goerr.New("cache TTL must be positive",
			goerr.V("repos", ttl.Repositories),
			goerr.V("detail", ttl.Detail),
			goerr.V("commits", ttl.Commits),
		)
	}
	return nil
}

// NewRepository returns the Redis cache when an address is set and the
// in-process cache otherwise. The returned closer is never nil.
func (x *Cache) NewRepository(ctx context.Context) (interfaces.CacheRepository, func(), error) {
	if x.redisAddr == "" {
		return memory.New(), func() {}, nil
	}

	repo, err := redis.New(ctx, &goredis.Options{
		Addr:     x.redisAddr,
		Password: x.redisPassword,
		DB:       int(x.redisDB),
	}, redis.WithPrefix(x.redisPrefix))
	if err != nil {
		return nil, nil, err
	}

	return repo, func() { safe.Close(repo) }, nil
}

func (x Cache) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("RedisAddr", x.redisAddr),
		slog.Int("RedisPassword.len", len(x.redisPassword)),
		slog.Int64("RedisDB", x.redisDB),
		slog.String("RedisPrefix", x.redisPrefix),
		slog.Duration("TTLRepositories", x.ttlRepositories),
		slog.Duration("TTLDetail", x.ttlDetail),
		slog.Duration("TTLCommits", x.ttlCommits),
	)
}
