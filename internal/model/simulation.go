package model

// SkillImpact is one skill's individual (uncapped) contribution
type SkillImpact struct {
	Skill     string `json:"skill"`
	Reduction int    `json:"reduction"`
}

// SimulationResult projects the score after learning the requested skills.
// The breakdown entries sum may exceed Reduction once the cap kicks in;
// the UI shows per-skill impact uncapped.
type SimulationResult struct {
	CurrentScore    int           `json:"currentScore"`
	NewScore        int           `json:"newScore"`
	Reduction       int           `json:"reduction"`
	CurrentLevel    RiskLevel     `json:"currentLevel"`
	NewLevel        RiskLevel     `json:"newLevel"`
	ImpactBreakdown []SkillImpact `json:"impactBreakdown"`
	Message         string        `json:"message"`
}
