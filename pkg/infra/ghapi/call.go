package ghapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"

	"github.com/folio-dev/folio/pkg/domain/types"
	"github.com/folio-dev/folio/pkg/utils/logging"
)

// cacheKey builds the key of one call as account, endpoint and the query
// parameters in sorted order. Owner and repository names are case-insensitive
// on GitHub, so they are lowercased.
func cacheKey(account, endpoint string, query url.Values) string {
	return "github:" + strings.ToLower(account) + ":" + strings.ToLower(endpoint) + ":" + query.Encode()
}

// request issues fn with a per-attempt timeout and retries ServerError up to
// maxRetries times. Every returned error is a *types.UpstreamError.
func request[T any](ctx context.Context, x *Client, fn func(ctx context.Context) (T, *github.Response, error)) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		reqCtx, cancel := context.WithTimeout(ctx, x.timeout)
		v, resp, err := fn(reqCtx)
		cancel()
		if err == nil {
			return v, nil
		}

		upErr := normalize(err, resp, logging.CtxTime(ctx))
		if upErr.Kind != types.UpstreamServerError || attempt >= x.maxRetries {
			return zero, upErr
		}

		logging.From(ctx).Debug("retrying upstream call",
			slog.Int("attempt", attempt+1),
			slog.Any("error", upErr),
		)

		select {
		case <-time.After(x.retryWait * time.Duration(attempt+1)):
		case <-ctx.Done():
			return zero, normalize(ctx.Err(), nil, logging.CtxTime(ctx))
		}
	}
}

// cached answers from the cache when a fresh entry exists. Otherwise it calls
// fetch once per key, even under concurrent misses, and stores the result.
// Cache failures degrade to a fresh call; errors are never stored.
func cached[T any](ctx context.Context, x *Client, key string, ttl time.Duration, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	logger := logging.From(ctx).With(slog.String("cache_key", key))

	if x.cache != nil {
		raw, ok, err := x.cache.Get(ctx, key)
		switch {
		case err != nil:
			logger.Warn("failed to read cache", slog.Any("error", err))
		case ok:
			var v T
			if err := json.Unmarshal(raw, &v); err != nil {
				logger.Warn("discarding undecodable cache entry", slog.Any("error", err))
				break
			}
			logger.Debug("cache hit")
			return v, nil
		}
	}

	ch := x.group.DoChan(key, func() (any, error) {
		// Shared by every caller waiting on key, so it must not inherit the
		// cancellation of the first one.
		sharedCtx := logging.Detach(ctx)

		v, err := fetch(sharedCtx)
		if err != nil {
			return nil, err
		}

		if x.cache != nil {
			if raw, err := json.Marshal(v); err != nil {
				logger.Warn("failed to encode cache entry", slog.Any("error", err))
			} else if err := x.cache.Set(sharedCtx, key, raw, ttl); err != nil {
				logger.Warn("failed to write cache", slog.Any("error", err))
			}
		}
		return v, nil
	})

	select {
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Err
		}
		return r.Val.(T), nil
	case <-ctx.Done():
		return zero, normalize(ctx.Err(), nil, logging.CtxTime(ctx))
	}
}
