package service

import (
	"context"
	"errors"

	"tigerrentals-client/internal/api/rest"
	"tigerrentals-client/internal/cache"
	"tigerrentals-client/internal/logger"
	"tigerrentals-client/internal/session"
)

// base carries what every service needs: the session for identity and the
// cache for reads.
type base struct {
	sessions Sessions
	cache    *cache.Cache
}

func (b *base) requireSession() (*session.Session, error) {
	return b.sessions.Current()
}

// fetchFailed logs a failed read. A rejected token ends the session
// without further notice.
func (b *base) fetchFailed(ctx context.Context, what string, err error) error {
	logger.ErrorContext(ctx, "Failed to load "+what, "error", err)
	b.checkAuth(ctx, err)
	return err
}

func (b *base) checkAuth(ctx context.Context, err error) {
	if !errors.Is(err, rest.ErrUnauthorized) {
		return
	}
	if _, cerr := b.sessions.Current(); cerr == nil {
		b.sessions.Invalidate(ctx)
	}
}

// cached returns the value under k, loading and storing it on a miss
func cached[T any](ctx context.Context, b *base, k cache.Key, what string, load func(context.Context) (T, error)) (T, error) {
	if v, ok := cache.Typed[T](b.cache, k); ok {
		logger.Debug("Cache hit", "key", k.String())
		return v, nil
	}
	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, b.fetchFailed(ctx, what, err)
	}
	b.cache.Put(k, v)
	return v, nil
}
