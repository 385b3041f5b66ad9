package service

import (
	"context"
	"errors"

	"aijobradar/internal/metrics"
	"aijobradar/internal/model"
	"aijobradar/internal/risk"
)

var ErrNoSkillsSelected = errors.New("please select at least one skill")

// WhatIfService projects a user's score after learning selected skills.
// The non-empty-skills precondition is enforced here, not in the simulator.
type WhatIfService struct {
	risks     *RiskService
	simulator *risk.Simulator
}

// NewWhatIfService creates a new what-if service
func NewWhatIfService(risks *RiskService, simulator *risk.Simulator) *WhatIfService {
	return &WhatIfService{risks: risks, simulator: simulator}
}

// Simulate computes the baseline from the stored profile and projects the
// new score. Fails with ErrNoSkillsSelected or ErrIncompleteProfile before
// any computation happens.
func (s *WhatIfService) Simulate(ctx context.Context, userID string, learningSkills []string) (*model.SimulationResult, error) {
	if len(learningSkills) == 0 {
		return nil, ErrNoSkillsSelected
	}

	baseline, err := s.risks.ComputeResult(ctx, userID)
	if err != nil {
		return nil, err
	}

	metrics.SimulationsRun.Inc()
	return s.simulator.Simulate(baseline.Score, baseline.Level, learningSkills), nil
}
