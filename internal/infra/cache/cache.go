package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
	"golang.org/x/sync/singleflight"
)

// Cache defines the interface for a generic cache with TTL support
type Cache interface {
	Get(ctx context.Context, key string) (any, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration) bool
	Delete(ctx context.Context, key string)
	GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error)
}

var _ Cache = &RistrettoCache{}

// RistrettoCache is an in-process cache. Every entry costs one unit, so MaxItems bounds its size.
type RistrettoCache struct {
	store       *ristretto.Cache
	singleGroup singleflight.Group
}

type RistrettoConfig struct {
	MaxItems int64
}

func DefaultRistrettoConfig() *RistrettoConfig {
	return &RistrettoConfig{MaxItems: 1000}
}

func NewRistrettoCache(config *RistrettoConfig) (*RistrettoCache, error) {
	if config == nil || config.MaxItems <= 0 {
		config = DefaultRistrettoConfig()
	}

	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: config.MaxItems * 10,
		MaxCost:     config.MaxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &RistrettoCache{store: store}, nil
}

func (c *RistrettoCache) Get(ctx context.Context, key string) (any, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	return c.store.Get(key)
}

// Set stores value and waits until it is visible to Get.
func (c *RistrettoCache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	ok := c.store.SetWithTTL(key, value, 1, ttl)
	c.store.Wait()
	return ok
}

func (c *RistrettoCache) Delete(ctx context.Context, key string) {
	c.store.Del(key)
}

// GetOrSet retrieves a value from the cache, or loads and stores it when missing.
// Concurrent loads of the same key are collapsed into one.
func (c *RistrettoCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (any, error)) (any, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err, _ := c.singleGroup.Do(key, func() (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if value, found := c.Get(ctx, key); found {
			return value, nil
		}

		value, err := loader()
		if err != nil {
			return nil, err
		}

		c.Set(ctx, key, value, ttl)
		return value, nil
	})

	return value, err
}

func (c *RistrettoCache) Close() {
	c.store.Close()
}
