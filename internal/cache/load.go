package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/limbo/journowl/pkg/logging"
)

// GetOrLoad serves key from the store when present, otherwise calls load and
// stores its result. Store failures are logged and never returned.
func GetOrLoad[T any](ctx context.Context, store Store, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	logger := logging.FromContext(ctx)
	var cached T
	hit, err := store.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	if hit {
		return cached, nil
	}
	fresh, err := load()
	if err != nil {
		return fresh, err
	}
	if err := store.Set(ctx, key, fresh, ttl); err != nil {
		logger.Warn("cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return fresh, nil
}

// Invalidate drops keys, logging instead of failing.
func Invalidate(ctx context.Context, store Store, keys ...string) {
	if err := store.Delete(ctx, keys); err != nil {
		logging.FromContext(ctx).Warn("cache invalidation failed", slog.Any("keys", keys), slog.String("error", err.Error()))
	}
}
