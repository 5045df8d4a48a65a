package fxrate

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// cachedRate is the serialized form of a cached exchange-rate sample
type cachedRate struct {
	JPYPerUSD decimal.Decimal `json:"jpy_per_usd"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// RateCache stores one exchange-rate sample with a TTL.
// Get returns ok=false on a miss; an expired entry is a miss.
type RateCache interface {
	Get(ctx context.Context) (cachedRate, bool, error)
	Set(ctx context.Context, rate cachedRate, ttl time.Duration) error
}

// RedisRateCache keeps the rate in Redis so multiple instances share one
// upstream fetch per TTL window
type RedisRateCache struct {
	client *redis.Client
	key    string
}

// NewRedisRateCache creates a Redis-backed rate cache using an existing client
func NewRedisRateCache(client *redis.Client, key string) *RedisRateCache {
	if key == "" {
		key = "fx:jpy_usd"
	}
	return &RedisRateCache{client: client, key: key}
}

func (c *RedisRateCache) Get(ctx context.Context) (cachedRate, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if err == redis.Nil {
		return cachedRate{}, false, nil
	}
	if err != nil {
		return cachedRate{}, false, fmt.Errorf("failed to read cached rate: %w", err)
	}

	var rate cachedRate
	if err := json.Unmarshal(raw, &rate); err != nil {
		// A corrupt entry is treated as a miss so the next fetch overwrites it
		return cachedRate{}, false, nil
	}
	return rate, true, nil
}

func (c *RedisRateCache) Set(ctx context.Context, rate cachedRate, ttl time.Duration) error {
	raw, err := json.Marshal(rate)
	if err != nil {
		return fmt.Errorf("failed to serialize rate: %w", err)
	}
	if err := c.client.Set(ctx, c.key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache rate: %w", err)
	}
	return nil
}

// MemoryRateCache is a single-process rate cache used when Redis is disabled
type MemoryRateCache struct {
	mu        sync.RWMutex
	rate      cachedRate
	expiresAt time.Time
	now       func() time.Time
}

// NewMemoryRateCache creates an in-memory rate cache
func NewMemoryRateCache() *MemoryRateCache {
	return &MemoryRateCache{now: time.Now}
}

func (c *MemoryRateCache) Get(ctx context.Context) (cachedRate, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.expiresAt.IsZero() || c.now().After(c.expiresAt) {
		return cachedRate{}, false, nil
	}
	return c.rate, true, nil
}

func (c *MemoryRateCache) Set(ctx context.Context, rate cachedRate, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rate = rate
	c.expiresAt = c.now().Add(ttl)
	return nil
}
