// Package cached decorates gym API repositories with a shared Redis cache.
// Lists are the same for every console user, so entries are not keyed by
// session. Mutations drop the whole prefix only after the gym API confirms.
package cached

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gymrepublic/gym-console/internal/pkg/cache"
)

const DefaultTTL = 2 * time.Minute

func load[T any](ctx context.Context, c cache.Cache, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	var value T
	err := c.Get(ctx, key, &value)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		slog.Warn("cache read failed", "key", key, "error", err)
	}

	value, err = fetch()
	if err != nil {
		return value, err
	}
	if err := c.Set(ctx, key, value, ttl); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err)
	}
	return value, nil
}

func invalidate(ctx context.Context, c cache.Cache, prefix string) {
	if err := c.DeletePrefix(ctx, prefix); err != nil {
		slog.Warn("cache invalidation failed", "prefix", prefix, "error", err)
	}
}
