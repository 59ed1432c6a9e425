package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/outfitly/outfit-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// The key carries maxOutfits so a cached response is only served for the
// exact request shape it was generated for.
func buildKey(baseID string, maxOutfits int) string {
	return fmt.Sprintf("outfit:base:%s:max:%d", baseID, maxOutfits)
}

// Get outfits response from cache
func (c *Cache) Get(ctx context.Context, baseID string, maxOutfits int) (*domain.OutfitResponse, bool, error) {
	key := buildKey(baseID, maxOutfits)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to get outfits from cache: %w", err)
	}

	var resp domain.OutfitResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal outfits %s: %w", key, err)
	}

	return &resp, true, nil
}

// Store outfits response in cache
func (c *Cache) Set(ctx context.Context, baseID string, maxOutfits int, resp *domain.OutfitResponse) error {
	key := buildKey(baseID, maxOutfits)
	val, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal outfits: %w", err)
	}

	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set outfits in cache: %w", err)
	}

	return nil
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
