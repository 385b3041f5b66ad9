package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// IndustryStats summarizes latest scores across an industry
type IndustryStats struct {
	Industry     string  `json:"industry"`
	UserCount    int64   `json:"userCount"`
	AverageScore float64 `json:"averageScore"`
}

// IndustryStatsCache keeps one ZSET per industry holding each user's latest
// score, so the dashboard can show how a user compares to their industry.
type IndustryStatsCache interface {
	RecordScore(ctx context.Context, industry, userID string, score int) error
	GetStats(ctx context.Context, industry string) (*IndustryStats, error)
	GetPercentile(ctx context.Context, industry, userID string) (float64, error)
}

type industryStatsCache struct {
	client *redis.Client
}

// NewIndustryStatsCache creates a new industry stats cache
func NewIndustryStatsCache(client *redis.Client) IndustryStatsCache {
	return &industryStatsCache{client: client}
}

func (c *industryStatsCache) key(industry string) string {
	return fmt.Sprintf("industry:%s:scores", industry)
}

func (c *industryStatsCache) RecordScore(ctx context.Context, industry, userID string, score int) error {
	return c.client.ZAdd(ctx, c.key(industry), redis.Z{
		Score:  float64(score),
		Member: userID,
	}).Err()
}

func (c *industryStatsCache) GetStats(ctx context.Context, industry string) (*IndustryStats, error) {
	results, err := c.client.ZRangeWithScores(ctx, c.key(industry), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	stats := &IndustryStats{Industry: industry, UserCount: int64(len(results))}
	if len(results) == 0 {
		return stats, nil
	}

	sum := 0.0
	for _, z := range results {
		sum += z.Score
	}
	stats.AverageScore = sum / float64(len(results))
	return stats, nil
}

// GetPercentile returns the share of the industry scoring at or below the
// user, in [0,100]. Returns -1 when the user has no recorded score.
func (c *industryStatsCache) GetPercentile(ctx context.Context, industry, userID string) (float64, error) {
	rank, err := c.client.ZRank(ctx, c.key(industry), userID).Result()
	if err == redis.Nil {
		return -1, nil
	}
	if err != nil {
		return 0, err
	}

	total, err := c.client.ZCard(ctx, c.key(industry)).Result()
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return -1, nil
	}
	return float64(rank+1) / float64(total) * 100, nil
}
