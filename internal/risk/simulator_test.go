package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aijobradar/internal/model"
)

func TestSimulateTwoSkills(t *testing.T) {
	sim := NewSimulator(DashboardSimulatorConfig())

	result := sim.Simulate(70, model.RiskLevelHigh, []string{"AI & Machine Learning", "Python Programming"})

	assert.Equal(t, 70, result.CurrentScore)
	assert.Equal(t, 25, result.Reduction, "15 + 10, under the cap")
	assert.Equal(t, 45, result.NewScore)
	assert.Equal(t, model.RiskLevelHigh, result.CurrentLevel)
	assert.Equal(t, model.RiskLevelMedium, result.NewLevel, "45 rebuckets with the simulator thresholds")
	assert.Equal(t, "Learning these skills could reduce your risk by 25 points!", result.Message)
}

func TestSimulateReductionCap(t *testing.T) {
	sim := NewSimulator(DashboardSimulatorConfig())

	// 15+12+12+10+10 = 59 uncapped
	skills := []string{
		"AI & Machine Learning",
		"Data Analysis & Visualization",
		"Automation & Scripting",
		"Python Programming",
		"Prompt Engineering",
	}
	result := sim.Simulate(80, model.RiskLevelCritical, skills)

	assert.Equal(t, 30, result.Reduction, "capped at 30")
	assert.Equal(t, 50, result.NewScore)

	// Breakdown keeps the uncapped per-skill values in input order
	require.Len(t, result.ImpactBreakdown, 5)
	sum := 0
	for i, impact := range result.ImpactBreakdown {
		assert.Equal(t, skills[i], impact.Skill)
		sum += impact.Reduction
	}
	assert.Equal(t, 59, sum, "breakdown sum may exceed the applied reduction")
}

func TestSimulateNewScoreFloor(t *testing.T) {
	sim := NewSimulator(DashboardSimulatorConfig())

	result := sim.Simulate(12, model.RiskLevelLow, []string{"AI & Machine Learning", "Data Analysis & Visualization", "Automation & Scripting"})
	assert.Equal(t, 0, result.NewScore, "never below zero")
	assert.Equal(t, model.RiskLevelLow, result.NewLevel)
}

func TestSimulateUnknownSkillDefault(t *testing.T) {
	sim := NewSimulator(DashboardSimulatorConfig())

	result := sim.Simulate(60, model.RiskLevelHigh, []string{"Interpretive Dance"})
	assert.Equal(t, 5, result.Reduction)
	assert.Equal(t, 55, result.NewScore)
}

func TestSimulateDeterminism(t *testing.T) {
	sim := NewSimulator(DashboardSimulatorConfig())

	first := sim.Simulate(66, model.RiskLevelHigh, []string{"Cybersecurity Basics", "Business Analytics"})
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, sim.Simulate(66, model.RiskLevelHigh, []string{"Cybersecurity Basics", "Business Analytics"}))
	}
}

func TestSimulateStandaloneVariant(t *testing.T) {
	sim := NewSimulator(StandaloneSimulatorConfig())

	// Uncapped: 12+11+10 = 33, but the floor pins the result at 10
	result := sim.Simulate(40, model.RiskLevelMedium, []string{"Machine Learning", "Cybersecurity", "Blockchain Development"})
	assert.Equal(t, 33, result.Reduction)
	assert.Equal(t, 10, result.NewScore, "standalone variant clamps into [10,95]")
}

func TestSimulatorThresholds(t *testing.T) {
	thresholds := DashboardSimulatorConfig().Thresholds

	assert.Equal(t, model.RiskLevelLow, thresholds.Level(29))
	assert.Equal(t, model.RiskLevelMedium, thresholds.Level(30))
	assert.Equal(t, model.RiskLevelMedium, thresholds.Level(49))
	assert.Equal(t, model.RiskLevelHigh, thresholds.Level(50))
	assert.Equal(t, model.RiskLevelHigh, thresholds.Level(69))
	assert.Equal(t, model.RiskLevelCritical, thresholds.Level(70))
}
