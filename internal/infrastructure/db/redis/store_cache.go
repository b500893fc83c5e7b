package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/commercekit/customer-system/internal/api/metrics"
	"github.com/commercekit/customer-system/internal/core/domain"
)

const storeTTL = 5 * time.Minute

// StoreCache caches resolved store scopes in Redis.
// Key format: store:<code>
type StoreCache struct {
	client *redis.Client
}

// NewStoreCache creates a StoreCache wrapping the given Redis client.
func NewStoreCache(client *redis.Client) *StoreCache {
	return &StoreCache{client: client}
}

// Get returns the cached store for code, or (nil, nil) on a miss.
func (c *StoreCache) Get(ctx context.Context, code string) (*domain.Store, error) {
	raw, err := c.client.Get(ctx, c.key(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.StoreCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store cache get: %w", err)
	}

	var store domain.Store
	if err := json.Unmarshal(raw, &store); err != nil {
		return nil, fmt.Errorf("store cache decode: %w", err)
	}

	metrics.StoreCacheTotal.WithLabelValues("hit").Inc()
	return &store, nil
}

// Set caches store for storeTTL.
func (c *StoreCache) Set(ctx context.Context, store *domain.Store) error {
	raw, err := json.Marshal(store)
	if err != nil {
		return fmt.Errorf("store cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(store.Code), raw, storeTTL).Err()
}

func (c *StoreCache) key(code string) string {
	return "store:" + code
}
