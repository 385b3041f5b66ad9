package service

import (
	"context"

	"go.uber.org/zap"

	"aijobradar/internal/cache"
	"aijobradar/internal/metrics"
	"aijobradar/internal/model"
	"aijobradar/internal/repository"
	"aijobradar/internal/risk"
)

// RiskService orchestrates scoring: load profile, run the pure scorer,
// persist the result, refresh the boundary caches.
type RiskService struct {
	profiles *ProfileService
	scores   repository.RiskScoreRepo
	scorer   *risk.Scorer
	cache    cache.RiskCache
	stats    cache.IndustryStatsCache
	log      *zap.Logger
}

// NewRiskService creates a new risk service
func NewRiskService(profiles *ProfileService, scores repository.RiskScoreRepo, scorer *risk.Scorer, riskCache cache.RiskCache, stats cache.IndustryStatsCache, log *zap.Logger) *RiskService {
	return &RiskService{
		profiles: profiles,
		scores:   scores,
		scorer:   scorer,
		cache:    riskCache,
		stats:    stats,
		log:      log,
	}
}

// Compute scores the user's stored profile and persists the result. The
// return value carries the full scorer output (including the top risky
// tasks, which the stored record does not keep) plus the new record's
// identity. Returns ErrIncompleteProfile before the scorer ever runs.
func (s *RiskService) Compute(ctx context.Context, userID string) (*model.ComputedRisk, error) {
	user, err := s.profiles.GetComplete(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := s.scorer.Score(user.JobTitle, user.Industry, user.Tasks, user.YearsInRole)
	metrics.RiskScoresComputed.WithLabelValues(string(result.Level)).Inc()

	record := &model.RiskScore{
		UserID:  user.ID,
		Score:   result.Score,
		Level:   result.Level,
		Summary: result.Summary,
		Factors: result.Factors,
		Skills:  result.Recommendations,
	}
	if err := s.scores.Create(ctx, record); err != nil {
		return nil, err
	}

	// Cache refreshes are best-effort; the persisted record is the truth
	if err := s.cache.SetLatest(ctx, user.ID, record); err != nil {
		s.log.Warn("risk cache refresh failed", zap.String("userId", user.ID), zap.Error(err))
	}
	if err := s.stats.RecordScore(ctx, user.Industry, user.ID, result.Score); err != nil {
		s.log.Warn("industry stats update failed", zap.String("industry", user.Industry), zap.Error(err))
	}

	return &model.ComputedRisk{
		RiskResult: *result,
		ID:         record.ID,
		CreatedAt:  record.CreatedAt,
	}, nil
}

// ComputeResult runs the scorer over the stored profile without persisting,
// for callers that need a fresh baseline (the what-if simulation).
func (s *RiskService) ComputeResult(ctx context.Context, userID string) (*model.RiskResult, error) {
	user, err := s.profiles.GetComplete(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.scorer.Score(user.JobTitle, user.Industry, user.Tasks, user.YearsInRole), nil
}

// Latest returns the most recently persisted score, or nil if none exists
func (s *RiskService) Latest(ctx context.Context, userID string) (*model.RiskScore, error) {
	if cached, err := s.cache.GetLatest(ctx, userID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		s.log.Warn("risk cache read failed", zap.String("userId", userID), zap.Error(err))
	}

	latest, err := s.scores.GetLatest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		if err := s.cache.SetLatest(ctx, userID, latest); err != nil {
			s.log.Warn("risk cache refresh failed", zap.String("userId", userID), zap.Error(err))
		}
	}
	return latest, nil
}

// IndustryStats returns aggregate scores for an industry plus the caller's
// percentile within it (-1 when unranked)
func (s *RiskService) IndustryStats(ctx context.Context, industry, userID string) (*cache.IndustryStats, float64, error) {
	stats, err := s.stats.GetStats(ctx, industry)
	if err != nil {
		return nil, 0, err
	}
	percentile, err := s.stats.GetPercentile(ctx, industry, userID)
	if err != nil {
		return nil, 0, err
	}
	return stats, percentile, nil
}
