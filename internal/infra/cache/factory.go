package cache

import (
	"fmt"
	"time"
)

const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	Backend  string
	TTL      time.Duration
	MaxItems int64
	Redis    RedisConfig
}

// New builds the configured backend. The none backend, or a non-positive TTL, returns a nil
// Cache and callers skip caching.
func New(config Config) (Cache, error) {
	if config.TTL <= 0 {
		return nil, nil
	}

	switch config.Backend {
	case "", BackendNone:
		return nil, nil
	case BackendMemory:
		memory, err := NewRistrettoCache(&RistrettoConfig{MaxItems: config.MaxItems})
		if err != nil {
			return nil, fmt.Errorf("creating memory cache: %w", err)
		}
		return memory, nil
	case BackendRedis:
		redis, err := NewRedisCache(config.Redis)
		if err != nil {
			return nil, fmt.Errorf("creating redis cache: %w", err)
		}
		return redis, nil
	}

	return nil, fmt.Errorf("unknown cache backend %q", config.Backend)
}
