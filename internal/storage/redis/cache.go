// Package redis caches generated heroes in Redis as JSON attribute maps.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cory-johannsen/herogen/internal/config"
	"github.com/cory-johannsen/herogen/internal/game/hero"
)

// ErrCacheMiss is returned by Get when no hero is cached under the ID.
var ErrCacheMiss = errors.New("hero not cached")

// NewClient connects to Redis and verifies the connection.
//
// Postcondition: Returns a reachable client or a non-nil error.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// HeroCache stores heroes keyed by ID.
type HeroCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewHeroCache creates a HeroCache; a zero ttl never expires entries.
func NewHeroCache(client *redis.Client, ttl time.Duration) *HeroCache {
	return &HeroCache{client: client, ttl: ttl}
}

// Key returns the Redis key for a hero ID.
func Key(id uuid.UUID) string {
	return fmt.Sprintf("hero:%s", id)
}

// Put caches h, replacing any previous entry.
func (c *HeroCache) Put(ctx context.Context, h hero.Hero) error {
	data, err := json.Marshal(h.Attributes())
	if err != nil {
		return fmt.Errorf("failed to marshal hero: %w", err)
	}
	if err := c.client.Set(ctx, Key(h.ID()), string(data), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache hero: %w", err)
	}
	return nil
}

// Get returns the cached hero or ErrCacheMiss.
func (c *HeroCache) Get(ctx context.Context, id uuid.UUID) (hero.Hero, error) {
	data, err := c.client.Get(ctx, Key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return hero.Hero{}, ErrCacheMiss
		}
		return hero.Hero{}, fmt.Errorf("failed to get hero from Redis: %w", err)
	}
	var attrs map[string]string
	if err := json.Unmarshal(data, &attrs); err != nil {
		return hero.Hero{}, fmt.Errorf("failed to unmarshal hero: %w", err)
	}
	h, err := hero.FromAttributes(attrs)
	if err != nil {
		return hero.Hero{}, fmt.Errorf("decoding cached hero: %w", err)
	}
	return h, nil
}

// Delete evicts a hero; deleting an absent ID is not an error.
func (c *HeroCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, Key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete hero from Redis: %w", err)
	}
	return nil
}
