package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedProgress is the payload stored for the progress read path.
type CachedProgress struct {
	DrinksCount     int32 `json:"drinks_count"`
	TicketsRequired int32 `json:"tickets_required"`
}

type LeaderboardEntry struct {
	UserID string
	Count  int64
}

// ProgressCache is a read-through cache over the progress ledger plus a
// per-establishment monthly redemption leaderboard. Losing the cache loses
// nothing: the ledger and audit trail stay authoritative.
type ProgressCache struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

func NewProgressCache(client *redis.Client, ttl time.Duration) *ProgressCache {
	return &ProgressCache{
		client: client,
		ctx:    context.Background(),
		ttl:    ttl,
	}
}

func progressCacheKey(userID, establishmentID string) string {
	return "progress:" + establishmentID + ":" + userID
}

func leaderboardKey(establishmentID string, at time.Time) string {
	return fmt.Sprintf("leaderboard:%s:%s", establishmentID, at.Format("2006-01"))
}

func (c *ProgressCache) SetProgress(userID, establishmentID string, progress *CachedProgress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return err
	}
	return c.client.Set(c.ctx, progressCacheKey(userID, establishmentID), data, c.ttl).Err()
}

// GetProgress returns (nil, nil) on a cache miss.
func (c *ProgressCache) GetProgress(userID, establishmentID string) (*CachedProgress, error) {
	data, err := c.client.Get(c.ctx, progressCacheKey(userID, establishmentID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var progress CachedProgress
	if err := json.Unmarshal([]byte(data), &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (c *ProgressCache) InvalidateProgress(userID, establishmentID string) error {
	return c.client.Del(c.ctx, progressCacheKey(userID, establishmentID)).Err()
}

func (c *ProgressCache) IncrementLeaderboard(establishmentID, userID string, at time.Time) error {
	return c.client.ZIncrBy(c.ctx, leaderboardKey(establishmentID, at), 1, userID).Err()
}

func (c *ProgressCache) TopRedeemers(establishmentID string, at time.Time, count int) ([]LeaderboardEntry, error) {
	results, err := c.client.ZRevRangeWithScores(c.ctx, leaderboardKey(establishmentID, at), 0, int64(count-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for _, z := range results {
		userID, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, LeaderboardEntry{UserID: userID, Count: int64(z.Score)})
	}
	return entries, nil
}
