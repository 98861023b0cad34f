package credentials

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/ib-77/maybe3/internal/logging"
	"github.com/ib-77/maybe3/pkg/maybe"
)

const cacheKey = "credentials"

type inMemoryCache interface {
	SetDefault(k string, v any)
	Get(k string) (any, bool)
	Delete(k string)
}

// CachedSource remembers credentials resolved by Source.
// Absent results are never cached.
type CachedSource struct {
	Source          Source
	ExpirationTime  time.Duration
	CleanupInterval time.Duration

	once  sync.Once
	cache inMemoryCache
}

func (c *CachedSource) init() {
	c.once.Do(func() {
		const (
			defaultExpirationTime  = 5 * time.Minute
			defaultCleanupInterval = 1 * time.Minute
		)

		expTime := defaultExpirationTime
		if c.ExpirationTime != 0 {
			expTime = c.ExpirationTime
		}

		cleanupInt := defaultCleanupInterval
		if c.CleanupInterval != 0 {
			cleanupInt = c.CleanupInterval
		}

		c.cache = cache.New(expTime, cleanupInt)
	})
}

func (c *CachedSource) Credentials(ctx context.Context) maybe.Maybe[Credentials] {
	c.init()
	if v, found := c.cache.Get(cacheKey); found {
		logging.FromContext(ctx).Debug("credentials cache hit")
		return maybe.FromValue(v.(Credentials))
	}

	if c.Source == nil {
		return maybe.FromAbsence[Credentials](ReasonNoSource)
	}

	found := c.Source.Credentials(ctx)
	if creds, ok := found.TryGetValue(); ok {
		c.cache.SetDefault(cacheKey, creds)
	}
	return found
}

// Invalidate drops the cached credentials.
func (c *CachedSource) Invalidate() {
	c.init()
	c.cache.Delete(cacheKey)
}
