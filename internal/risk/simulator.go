package risk

import (
	"fmt"

	"aijobradar/internal/model"
)

// ClampRange bounds the projected score
type ClampRange struct {
	Min int
	Max int
}

// SimulatorConfig names the constants the what-if projection runs on. Two
// presets exist because the product shipped two divergent variants; which
// is canonical is an open product question, so both are kept addressable.
type SimulatorConfig struct {
	// SkillImpact maps a learnable skill to its point reduction
	SkillImpact map[string]int
	// DefaultImpact applies to skills missing from the table
	DefaultImpact int
	// ReductionCap limits the total reduction; 0 means uncapped
	ReductionCap int
	Clamp        ClampRange
	Thresholds   Thresholds
}

// DashboardSimulatorConfig is the variant embedded in the dashboard what-if
// endpoint: capped at 30 points, full [0,100] range, strict level bounds.
func DashboardSimulatorConfig() SimulatorConfig {
	return SimulatorConfig{
		SkillImpact: map[string]int{
			"AI & Machine Learning":           15,
			"Data Analysis & Visualization":   12,
			"Python Programming":              10,
			"Cloud Computing (AWS/Azure/GCP)": 8,
			"Prompt Engineering":              10,
			"Automation & Scripting":          12,
			"Strategic Thinking":              8,
			"Leadership & People Management":  10,
			"Creative Problem Solving":        8,
			"Emotional Intelligence":          6,
			"Digital Marketing & SEO":         8,
			"Cybersecurity Basics":            7,
			"Product Management":              9,
			"UI/UX Design":                    8,
			"Business Analytics":              10,
		},
		DefaultImpact: 5,
		ReductionCap:  30,
		Clamp:         ClampRange{Min: 0, Max: 100},
		Thresholds:    Thresholds{Low: 30, Medium: 50, High: 70, Strict: true},
	}
}

// StandaloneSimulatorConfig is the variant the standalone simulation page
// used: different table, no cap, scores pinned into [10,95].
func StandaloneSimulatorConfig() SimulatorConfig {
	return SimulatorConfig{
		SkillImpact: map[string]int{
			"Python Programming":           8,
			"Machine Learning":             12,
			"Data Analysis":                10,
			"Cloud Computing (AWS/Azure)":  9,
			"UI/UX Design":                 7,
			"Project Management":           6,
			"Digital Marketing":            8,
			"Cybersecurity":                11,
			"Blockchain Development":       10,
			"AI Prompt Engineering":        9,
		},
		DefaultImpact: 0,
		ReductionCap:  0,
		Clamp:         ClampRange{Min: 10, Max: 95},
		Thresholds:    Thresholds{Low: 30, Medium: 50, High: 70, Strict: true},
	}
}

// Simulator projects a new score after hypothetically learning skills.
// Stateless; safe for concurrent use.
type Simulator struct {
	cfg SimulatorConfig
}

// NewSimulator creates a simulator with the given config
func NewSimulator(cfg SimulatorConfig) *Simulator {
	return &Simulator{cfg: cfg}
}

// Simulate sums per-skill reductions (capped) and rebuckets the projected
// score. Callers validate that learningSkills is non-empty; an empty list
// here simply yields a zero-reduction result.
func (s *Simulator) Simulate(currentScore int, currentLevel model.RiskLevel, learningSkills []string) *model.SimulationResult {
	totalReduction := 0
	breakdown := make([]model.SkillImpact, 0, len(learningSkills))

	for _, skill := range learningSkills {
		reduction, ok := s.cfg.SkillImpact[skill]
		if !ok {
			reduction = s.cfg.DefaultImpact
		}
		totalReduction += reduction
		// Breakdown entries carry the uncapped per-skill value
		breakdown = append(breakdown, model.SkillImpact{Skill: skill, Reduction: reduction})
	}

	if s.cfg.ReductionCap > 0 && totalReduction > s.cfg.ReductionCap {
		totalReduction = s.cfg.ReductionCap
	}

	newScore := clamp(currentScore-totalReduction, s.cfg.Clamp.Min, s.cfg.Clamp.Max)

	message := "Start learning to reduce your AI automation risk."
	if totalReduction > 0 {
		message = fmt.Sprintf("Learning these skills could reduce your risk by %d points!", totalReduction)
	}

	return &model.SimulationResult{
		CurrentScore:    currentScore,
		NewScore:        newScore,
		Reduction:       totalReduction,
		CurrentLevel:    currentLevel,
		NewLevel:        s.cfg.Thresholds.Level(newScore),
		ImpactBreakdown: breakdown,
		Message:         message,
	}
}
