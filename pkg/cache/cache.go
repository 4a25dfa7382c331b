// Package cache is the key/value layer the store keeps its records in.
//
// Three drivers are available: "memory" (process lifetime only, the default),
// "redis" and "sqlite" (a local database file). Values are stored as strings; callers are expected to serialize
// structured data themselves.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/walavie/walavie-site/pkg/cache/inmemory"
	"github.com/walavie/walavie-site/pkg/cache/redis"
	"github.com/walavie/walavie-site/pkg/cache/sqlite"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"

	// NoExpiration keeps an entry until it is deleted.
	NoExpiration time.Duration = -1
)

type Cache interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	// GetByPattern returns every key matching a glob pattern (e.g. "contact:*") with its value.
	GetByPattern(ctx context.Context, pattern string) (map[string]interface{}, error)
}

type Config struct {
	Driver   string           `mapstructure:"driver"`
	InMemory *inmemory.Config `mapstructure:"inmemory"`
	Redis    *redis.Config    `mapstructure:"redis"`
	SQLite   *sqlite.Config   `mapstructure:"sqlite"`
}

// New returns the driver selected by cfg.Driver. An empty driver selects memory.
func New(cfg *Config) (Cache, error) {
	if cfg == nil {
		return nil, errors.New("cache config is required")
	}

	switch cfg.Driver {
	case "", DriverMemory:
		memCfg := cfg.InMemory
		if memCfg == nil {
			memCfg = &inmemory.Config{}
		}
		c, err := inmemory.NewCache(memCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create in-memory cache: %w", err)
		}
		return c, nil
	case DriverRedis:
		if cfg.Redis == nil {
			return nil, errors.New("redis cache config is required")
		}
		c, err := redis.NewCache(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis cache: %w", err)
		}
		return c, nil
	case DriverSQLite:
		if cfg.SQLite == nil {
			return nil, errors.New("sqlite cache config is required")
		}
		c, err := sqlite.NewCache(cfg.SQLite)
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite cache: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported cache driver %q", cfg.Driver)
	}
}

// IsNotFound reports whether err is a cache miss from any driver.
func IsNotFound(err error) bool {
	return errors.Is(err, inmemory.ErrNotFound) || errors.Is(err, redis.ErrNotFound) ||
		errors.Is(err, sqlite.ErrNotFound)
}
