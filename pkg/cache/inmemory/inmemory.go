package inmemory

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

var ErrNotFound = errors.New("inmemory: key not found")

// Config values are in seconds.
type Config struct {
	DefaultExpiration int `mapstructure:"defaultExpiration"`
	CleanupInterval   int `mapstructure:"cleanupInterval"`
}

type Cache struct {
	client *gocache.Cache
}

// NewCache creates a process-local cache. A zero DefaultExpiration keeps
// entries forever and a zero CleanupInterval disables the janitor.
func NewCache(cfg *Config) (*Cache, error) {
	if cfg == nil {
		return nil, errors.New("inmemory cache config is required")
	}
	if cfg.DefaultExpiration < 0 || cfg.CleanupInterval < 0 {
		return nil, fmt.Errorf("invalid inmemory cache config: expiration=%d cleanup=%d",
			cfg.DefaultExpiration, cfg.CleanupInterval)
	}

	defaultExpiration := gocache.NoExpiration
	if cfg.DefaultExpiration > 0 {
		defaultExpiration = time.Duration(cfg.DefaultExpiration) * time.Second
	}

	return &Cache{
		client: gocache.New(defaultExpiration, time.Duration(cfg.CleanupInterval)*time.Second),
	}, nil
}

func (c *Cache) Get(_ context.Context, key string) (interface{}, error) {
	val, found := c.client.Get(key)
	if !found {
		return nil, fmt.Errorf("get %q: %w", key, ErrNotFound)
	}
	return val, nil
}

func (c *Cache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	c.client.Set(key, value, expiration)
	return nil
}

func (c *Cache) Delete(_ context.Context, key string) error {
	c.client.Delete(key)
	return nil
}

func (c *Cache) GetByPattern(_ context.Context, pattern string) (map[string]interface{}, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	result := make(map[string]interface{})
	for key, item := range c.client.Items() {
		if ok, _ := path.Match(pattern, key); ok {
			result[key] = item.Object
		}
	}
	return result, nil
}
