package model

import "time"

// RiskLevel is the coarse bucket derived from a score
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// RiskFactors decomposes the score for UI transparency.
// ExperienceModifier folds in the title keyword modifier.
type RiskFactors struct {
	TaskRisk           int `json:"taskRisk" bson:"taskRisk"`
	IndustryModifier   int `json:"industryModifier" bson:"industryModifier"`
	ExperienceModifier int `json:"experienceModifier" bson:"experienceModifier"`
}

// RiskResult is the scorer output, recomputed fresh on every request
type RiskResult struct {
	Score           int         `json:"score" bson:"score"`
	Level           RiskLevel   `json:"level" bson:"level"`
	Summary         string      `json:"summary" bson:"summary"`
	Factors         RiskFactors `json:"factors" bson:"factors"`
	Recommendations []string    `json:"recommendations" bson:"recommendations"`
	TopRiskyTasks   []string    `json:"topRiskyTasks" bson:"topRiskyTasks"`
}

// ComputedRisk is the compute response: the full result plus the persisted
// record's identity. The stored record itself stays slimmer (see RiskScore).
type ComputedRisk struct {
	RiskResult
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// RiskScore is a persisted, timestamped RiskResult
type RiskScore struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	UserID    string      `json:"userId" bson:"userId"`
	Score     int         `json:"score" bson:"score"`
	Level     RiskLevel   `json:"level" bson:"level"`
	Summary   string      `json:"summary" bson:"summary"`
	Factors   RiskFactors `json:"factors" bson:"factors"`
	Skills    []string    `json:"recommendations" bson:"skills"` // Recommended skills at score time
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
}
