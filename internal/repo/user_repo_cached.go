package repo

import (
	"context"
	"time"

	"go-gin-user-table/internal/core/cache"
	"go-gin-user-table/internal/domain"
)

const DefaultCacheKey = "users:list"

// CachedSource puts a Redis read-through cache in front of another source.
type CachedSource struct {
	next  domain.UserSource
	cache *cache.Cache
	key   string
	ttl   time.Duration
}

func NewCachedSource(next domain.UserSource, c *cache.Cache, key string, ttl time.Duration) *CachedSource {
	if key == "" {
		key = DefaultCacheKey
	}
	return &CachedSource{next: next, cache: c, key: key, ttl: ttl}
}

func (s *CachedSource) ListUsers(ctx context.Context) ([]domain.User, error) {
	p, err := cache.GetOrLoadJSON(s.cache, ctx, s.key, s.ttl, func(ctx context.Context) (*[]domain.User, error) {
		us, err := s.next.ListUsers(ctx)
		if err != nil {
			return nil, err
		}
		return &us, nil
	})
	if err != nil || p == nil {
		return nil, err
	}
	return *p, nil
}

// Invalidate drops the cached list so the next call reloads.
func (s *CachedSource) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, s.key)
}
