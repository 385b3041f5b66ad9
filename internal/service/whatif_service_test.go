package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aijobradar/internal/model"
	"aijobradar/internal/risk"
)

func newTestWhatIfService(t *testing.T, users *fakeUserRepo) *WhatIfService {
	t.Helper()
	riskSvc, _ := newTestRiskService(t, users)
	return NewWhatIfService(riskSvc, risk.NewSimulator(risk.DashboardSimulatorConfig()))
}

func TestSimulateReducesScore(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, &model.User{
		ID:          "user_1",
		Email:       "a@b.com",
		JobTitle:    "Data Entry Clerk",
		Industry:    "Finance & Banking",
		Tasks:       []string{"Data entry", "Transcription"},
		YearsInRole: 1,
	})

	svc := newTestWhatIfService(t, users)

	result, err := svc.Simulate(context.Background(), "user_1", []string{"AI & Machine Learning", "Python Programming"})
	require.NoError(t, err)

	assert.Equal(t, 25, result.Reduction, "15 + 10 from the two skills")
	assert.Equal(t, result.CurrentScore-25, result.NewScore)
	assert.Len(t, result.ImpactBreakdown, 2)
	assert.NotEmpty(t, result.Message)
}

func TestSimulateNoSkills(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, &model.User{
		ID:       "user_1",
		Email:    "a@b.com",
		JobTitle: "Analyst",
		Industry: "Finance & Banking",
	})

	svc := newTestWhatIfService(t, users)

	_, err := svc.Simulate(context.Background(), "user_1", nil)
	assert.ErrorIs(t, err, ErrNoSkillsSelected)

	_, err = svc.Simulate(context.Background(), "user_1", []string{})
	assert.ErrorIs(t, err, ErrNoSkillsSelected)
}

func TestSimulateIncompleteProfile(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, &model.User{ID: "user_1", Email: "a@b.com"})

	svc := newTestWhatIfService(t, users)

	_, err := svc.Simulate(context.Background(), "user_1", []string{"Python Programming"})
	assert.ErrorIs(t, err, ErrIncompleteProfile)
}

func TestSimulateDoesNotPersist(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, &model.User{
		ID:       "user_1",
		Email:    "a@b.com",
		JobTitle: "Accountant",
		Industry: "Finance & Banking",
		Tasks:    []string{"Bookkeeping"},
	})

	riskSvc, scores := newTestRiskService(t, users)
	svc := NewWhatIfService(riskSvc, risk.NewSimulator(risk.DashboardSimulatorConfig()))
	ctx := context.Background()

	_, err := svc.Simulate(ctx, "user_1", []string{"Python Programming"})
	require.NoError(t, err)

	latest, err := scores.GetLatest(ctx, "user_1")
	require.NoError(t, err)
	assert.Nil(t, latest, "simulations never write a score record")
}
