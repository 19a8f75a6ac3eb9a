// Package cache provides Redis-backed caching for computed statistics.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// statsTTL bounds how long a stats entry may be served even without writes.
const statsTTL = 10 * time.Minute

// statsCache implements adapter.StatsCache on Redis. Entries are keyed by a
// per-user generation counter: invalidation bumps the counter, which orphans
// every cached period for that user at once. Orphaned entries expire via TTL.
type statsCache struct {
	client *redis.Client
}

// NewStatsCache creates a new Redis stats cache instance.
func NewStatsCache(client *redis.Client) adapter.StatsCache {
	return &statsCache{client: client}
}

func (c *statsCache) generationKey(userID uuid.UUID) string {
	return fmt.Sprintf("stats:gen:%s", userID)
}

func (c *statsCache) entryKey(userID uuid.UUID, generation int64, start, end time.Time) string {
	return fmt.Sprintf("stats:%s:%d:%d:%d", userID, generation, start.Unix(), end.Unix())
}

func (c *statsCache) generation(ctx context.Context, userID uuid.UUID) (int64, error) {
	generation, err := c.client.Get(ctx, c.generationKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read stats generation: %w", err)
	}
	return generation, nil
}

// Get returns the cached stats for the period, or nil when no fresh entry
// exists.
func (c *statsCache) Get(ctx context.Context, userID uuid.UUID, start, end time.Time) (*entity.ExpenseStats, error) {
	generation, err := c.generation(ctx, userID)
	if err != nil {
		return nil, err
	}

	payload, err := c.client.Get(ctx, c.entryKey(userID, generation, start, end)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stats cache: %w", err)
	}

	var stats entity.ExpenseStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode cached stats: %w", err)
	}
	return &stats, nil
}

// Set stores the stats for the period under the user's current generation.
func (c *statsCache) Set(ctx context.Context, userID uuid.UUID, start, end time.Time, stats *entity.ExpenseStats) error {
	generation, err := c.generation(ctx, userID)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}

	if err := c.client.Set(ctx, c.entryKey(userID, generation, start, end), payload, statsTTL).Err(); err != nil {
		return fmt.Errorf("failed to write stats cache: %w", err)
	}
	return nil
}

// Invalidate bumps the user's generation counter so every cached period for
// that user stops matching.
func (c *statsCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Incr(ctx, c.generationKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate stats cache: %w", err)
	}
	return nil
}
