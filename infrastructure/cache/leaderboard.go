// Package cache keeps the per-category leaderboards in Redis sorted sets so
// the hot dashboard read path does not hit Postgres.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/visibly/ai-visibility-api/internal/config"
	"github.com/visibly/ai-visibility-api/internal/domain"
)

// leaderboard entries expire if the sync job stops refreshing them
const leaderboardTTL = 6 * time.Hour

type LeaderboardCache interface {
	StoreLeaderboard(ctx context.Context, categoryID string, entries []*domain.LeaderboardBrand) error
	GetLeaderboard(ctx context.Context, categoryID string) ([]*domain.LeaderboardBrand, error)
	Ping(ctx context.Context) error
}

type leaderboardCache struct {
	rdb *redis.Client
}

func NewClient(cfg config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewLeaderboardCache(rdb *redis.Client) LeaderboardCache {
	return &leaderboardCache{rdb: rdb}
}

func leaderboardZKey(categoryID string) string {
	return fmt.Sprintf("visibility:leaderboard:%s", categoryID)
}

func brandKey(brandID string) string {
	return fmt.Sprintf("visibility:brand:%s", brandID)
}

// StoreLeaderboard replaces the category's sorted set and the per-brand
// payloads in one pipeline.
func (c *leaderboardCache) StoreLeaderboard(ctx context.Context, categoryID string, entries []*domain.LeaderboardBrand) error {
	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, leaderboardZKey(categoryID))

	for _, entry := range entries {
		b, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		pipe.Set(ctx, brandKey(entry.ID), b, leaderboardTTL)
		pipe.ZAdd(ctx, leaderboardZKey(categoryID), redis.Z{
			Score:  entry.VisibilityScore,
			Member: entry.ID,
		})
	}

	pipe.Expire(ctx, leaderboardZKey(categoryID), leaderboardTTL)

	_, err := pipe.Exec(ctx)
	return err
}

// GetLeaderboard reads the category's sorted set, highest score first.
// A missing key returns an empty slice so callers can fall back to Postgres.
func (c *leaderboardCache) GetLeaderboard(ctx context.Context, categoryID string) ([]*domain.LeaderboardBrand, error) {
	ids, err := c.rdb.ZRevRangeWithScores(ctx, leaderboardZKey(categoryID), 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []*domain.LeaderboardBrand{}, nil
		}
		return nil, err
	}

	entries := make([]*domain.LeaderboardBrand, 0, len(ids))
	for _, z := range ids {
		id := z.Member.(string)
		b, err := c.rdb.Get(ctx, brandKey(id)).Bytes()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, err
		}

		var entry domain.LeaderboardBrand
		if err := json.Unmarshal(b, &entry); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (c *leaderboardCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
