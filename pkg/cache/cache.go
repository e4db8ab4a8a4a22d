package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Banner lists are advisory display data, so a few seconds of
// staleness is acceptable; page banners change rarely.
const (
	TTLBannerList = 1 * time.Minute
	TTLPageBanner = 10 * time.Minute
	TTLTaxonomy   = 30 * time.Minute
	TTLDefault    = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixBannerList = "banners:"
	PrefixPageBanner = "pagebanner:"
	PrefixTaxonomy   = "taxonomy:"
)

// Service is the Redis cache service interface
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Eligible-banner list cache, keyed by position + optional filters
	GetBannerList(ctx context.Context, position, category, governorate string, dest interface{}) error
	SetBannerList(ctx context.Context, position, category, governorate string, data interface{}) error
	InvalidateBannerLists(ctx context.Context) error

	// Page banner cache
	GetPageBanner(ctx context.Context, pageKey string, dest interface{}) error
	SetPageBanner(ctx context.Context, pageKey string, data interface{}) error
	InvalidatePageBanner(ctx context.Context, pageKey string) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache implements Service on top of go-redis
type redisCache struct {
	client *redis.Client
}

// NewService creates a new cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable reports whether a Redis connection was configured
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping tests the Redis connection
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get reads and unmarshals a cached value
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set marshals and stores a value with TTL
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // no Redis, silently skip
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes keys from the cache
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Exists checks whether a key is cached
func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	n, err := c.client.Exists(ctx, key).Result()
	return n > 0, err
}

func bannerListKey(position, category, governorate string) string {
	return PrefixBannerList + strings.Join([]string{position, category, governorate}, ":")
}

// GetBannerList reads the cached eligible-banner list for filter values.
// Empty category/governorate mean "no filter" and are part of the key.
func (c *redisCache) GetBannerList(ctx context.Context, position, category, governorate string, dest interface{}) error {
	return c.Get(ctx, bannerListKey(position, category, governorate), dest)
}

// SetBannerList caches an eligible-banner list
func (c *redisCache) SetBannerList(ctx context.Context, position, category, governorate string, data interface{}) error {
	return c.Set(ctx, bannerListKey(position, category, governorate), data, TTLBannerList)
}

// InvalidateBannerLists drops every cached banner list. Mutations are rare
// relative to reads, so a full sweep is simpler than per-key tracking.
func (c *redisCache) InvalidateBannerLists(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, PrefixBannerList+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return c.Delete(ctx, keys...)
}

// GetPageBanner reads a cached page banner
func (c *redisCache) GetPageBanner(ctx context.Context, pageKey string, dest interface{}) error {
	return c.Get(ctx, PrefixPageBanner+pageKey, dest)
}

// SetPageBanner caches a page banner
func (c *redisCache) SetPageBanner(ctx context.Context, pageKey string, data interface{}) error {
	return c.Set(ctx, PrefixPageBanner+pageKey, data, TTLPageBanner)
}

// InvalidatePageBanner drops a cached page banner
func (c *redisCache) InvalidatePageBanner(ctx context.Context, pageKey string) error {
	return c.Delete(ctx, PrefixPageBanner+pageKey)
}
