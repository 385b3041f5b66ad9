package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"aijobradar/internal/model"
)

// Latest results stay cached for an hour; every recompute overwrites.
const riskCacheTTL = time.Hour

// RiskCache is a cache-aside layer over the latest persisted risk score.
// Boundary-level only: the scorer itself recomputes from scratch every call.
type RiskCache interface {
	GetLatest(ctx context.Context, userID string) (*model.RiskScore, error)
	SetLatest(ctx context.Context, userID string, score *model.RiskScore) error
	Invalidate(ctx context.Context, userID string) error
}

type riskCache struct {
	client *redis.Client
}

// NewRiskCache creates a new risk score cache
func NewRiskCache(client *redis.Client) RiskCache {
	return &riskCache{client: client}
}

func (c *riskCache) key(userID string) string {
	return fmt.Sprintf("user:%s:risk:latest", userID)
}

func (c *riskCache) GetLatest(ctx context.Context, userID string) (*model.RiskScore, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var score model.RiskScore
	if err := json.Unmarshal(data, &score); err != nil {
		return nil, err
	}
	return &score, nil
}

func (c *riskCache) SetLatest(ctx context.Context, userID string, score *model.RiskScore) error {
	data, err := json.Marshal(score)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID), data, riskCacheTTL).Err()
}

func (c *riskCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
