package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"rechtent-backend/internal/domain"
	"rechtent-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// Options is the explicit fetch-options record for catalog reads: cache
// TTL, how long concurrent misses piggyback on one in-flight fetch, and
// how many times a failed backend read is retried at a fixed delay.
// Writes are never retried here; mutations bypass the cache entirely.
type Options struct {
	TTL            time.Duration
	DedupeInterval time.Duration
	RetryCount     int
	RetryDelay     time.Duration
}

// FetchFunc loads products from the backing store on a cache miss.
type FetchFunc func(ctx context.Context) ([]domain.Product, error)

type inflight struct {
	done     chan struct{}
	products []domain.Product
	err      error
	started  time.Time
}

// CatalogCache is a redis read-through cache for category-scoped product
// listings. A nil redis client degrades to dedupe + retry with no caching.
type CatalogCache struct {
	rdb  *redis.Client
	opts Options

	mu      sync.Mutex
	pending map[string]*inflight
}

func NewCatalogCache(rdb *redis.Client, opts Options) *CatalogCache {
	return &CatalogCache{
		rdb:     rdb,
		opts:    opts,
		pending: make(map[string]*inflight),
	}
}

// GetProducts returns the cached listing for key, or loads it through
// fetch. Concurrent misses for the same key within the dedupe interval
// share a single fetch.
func (c *CatalogCache) GetProducts(ctx context.Context, key string, fetch FetchFunc) ([]domain.Product, error) {
	if c.rdb != nil {
		data, err := c.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var products []domain.Product
			if err := json.Unmarshal(data, &products); err == nil {
				return products, nil
			}
			// Corrupt entry: fall through to a fresh fetch.
			logger.Warn("Dropping unreadable cache entry", "key", key)
			c.rdb.Del(ctx, key)
		} else if err != redis.Nil {
			// Redis being down must not take catalog reads with it.
			logger.Warn("Cache read failed, fetching from database", "key", key, "error", err)
		}
	}

	c.mu.Lock()
	if fl, ok := c.pending[key]; ok && time.Since(fl.started) < c.opts.DedupeInterval {
		c.mu.Unlock()
		select {
		case <-fl.done:
			return fl.products, fl.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	fl := &inflight{done: make(chan struct{}), started: time.Now()}
	c.pending[key] = fl
	c.mu.Unlock()

	fl.products, fl.err = c.fetchWithRetry(ctx, fetch)
	close(fl.done)

	c.mu.Lock()
	if c.pending[key] == fl {
		delete(c.pending, key)
	}
	c.mu.Unlock()

	if fl.err != nil {
		return nil, fl.err
	}

	if c.rdb != nil {
		if data, err := json.Marshal(fl.products); err == nil {
			if err := c.rdb.Set(ctx, key, data, c.opts.TTL).Err(); err != nil {
				logger.Warn("Cache write failed", "key", key, "error", err)
			}
		}
	}
	return fl.products, nil
}

// fetchWithRetry retries reads a bounded number of times with a fixed
// delay. Reads only: this cache never sits in front of a mutation.
func (c *CatalogCache) fetchWithRetry(ctx context.Context, fetch FetchFunc) ([]domain.Product, error) {
	var lastErr error
	for attempt := 0; attempt <= c.opts.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(c.opts.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		products, err := fetch(ctx)
		if err == nil {
			return products, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("fetch failed after %d attempts: %w", c.opts.RetryCount+1, lastErr)
}

// Invalidate drops cached listings, called after admin catalog mutations.
func (c *CatalogCache) Invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		logger.Warn("Cache invalidation failed", "keys", keys, "error", err)
	}
}

// ListingKey builds the cache key for one product type's listing.
func ListingKey(typeID int32) string {
	return fmt.Sprintf("catalog:type:%d", typeID)
}
