package risk

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"aijobradar/internal/model"
)

// Thresholds are the score boundaries for level bucketing. Scores at or
// below (strictly below when Strict is set) each bound map to the
// corresponding level; anything above High is CRITICAL.
type Thresholds struct {
	Low    int
	Medium int
	High   int
	Strict bool
}

// Level buckets a score
func (t Thresholds) Level(score int) model.RiskLevel {
	if t.Strict {
		switch {
		case score < t.Low:
			return model.RiskLevelLow
		case score < t.Medium:
			return model.RiskLevelMedium
		case score < t.High:
			return model.RiskLevelHigh
		default:
			return model.RiskLevelCritical
		}
	}
	switch {
	case score <= t.Low:
		return model.RiskLevelLow
	case score <= t.Medium:
		return model.RiskLevelMedium
	case score <= t.High:
		return model.RiskLevelHigh
	default:
		return model.RiskLevelCritical
	}
}

// ScoreThresholds are the canonical scorer boundaries.
var ScoreThresholds = Thresholds{Low: 25, Medium: 50, High: 75}

// Scorer computes automation-risk scores. It is stateless and safe for
// concurrent use; every call only reads the static tables.
type Scorer struct {
	thresholds Thresholds
}

// NewScorer creates a scorer with the canonical thresholds
func NewScorer() *Scorer {
	return &Scorer{thresholds: ScoreThresholds}
}

// Score maps a profile to a risk result. It is total: unknown task and
// industry labels degrade to neutral defaults, never to an error.
func (s *Scorer) Score(jobTitle, industry string, tasks []string, yearsInRole int) *model.RiskResult {
	// 1. Average task risk, defaulting unknown labels to medium
	type taskWeight struct {
		task string
		risk int
	}
	weighted := make([]taskWeight, 0, len(tasks))
	totalTaskRisk := 0
	for _, task := range tasks {
		risk, ok := taskRiskWeights[task]
		if !ok {
			risk = defaultTaskRisk
		}
		totalTaskRisk += risk
		weighted = append(weighted, taskWeight{task: task, risk: risk})
	}

	avgTaskRisk := float64(defaultTaskRisk)
	if len(weighted) > 0 {
		avgTaskRisk = float64(totalTaskRisk) / float64(len(weighted))
	}

	// 2. Industry modifier
	industryMod, ok := industryModifiers[industry]
	if !ok {
		industryMod = defaultIndustryModifier
	}

	// 3. Experience modifier: -1 per year, capped at -10
	years := yearsInRole
	if years > maxExperienceYears {
		years = maxExperienceYears
	}
	experienceMod := -years

	// 4. Title keyword modifier; high-risk match is checked first and wins
	titleMod := 0
	lowerTitle := strings.ToLower(jobTitle)
	if containsAny(lowerTitle, highRiskTitleKeywords) {
		titleMod = titleModifierPoints
	} else if containsAny(lowerTitle, lowRiskTitleKeywords) {
		titleMod = -titleModifierPoints
	}

	// 5. Final score, clamped to [0,100]
	finalScore := clamp(int(math.Round(avgTaskRisk+float64(industryMod+experienceMod+titleMod))), 0, 100)

	// 6-7. Level and summary
	level := s.thresholds.Level(finalScore)
	summary := summaryFor(level, jobTitle)

	// 8. Top risky tasks, ties broken by input order
	sort.SliceStable(weighted, func(i, j int) bool {
		return weighted[i].risk > weighted[j].risk
	})
	topRisky := make([]string, 0, topRiskyTaskCount)
	for i := 0; i < len(weighted) && i < topRiskyTaskCount; i++ {
		topRisky = append(topRisky, weighted[i].task)
	}

	return &model.RiskResult{
		Score:   finalScore,
		Level:   level,
		Summary: summary,
		Factors: model.RiskFactors{
			TaskRisk:         int(math.Round(avgTaskRisk)),
			IndustryModifier: industryMod,
			// Folds the title modifier in, matching the dashboard display
			ExperienceModifier: experienceMod + titleMod,
		},
		Recommendations: buildRecommendations(tasks, finalScore),
		TopRiskyTasks:   topRisky,
	}
}

// Thresholds returns the bucketing configuration in use
func (s *Scorer) Thresholds() Thresholds {
	return s.thresholds
}

func summaryFor(level model.RiskLevel, jobTitle string) string {
	switch level {
	case model.RiskLevelLow:
		return fmt.Sprintf("Your role as %s has relatively low AI automation risk. Your tasks require human judgment, creativity, or physical presence that AI cannot easily replicate.", jobTitle)
	case model.RiskLevelMedium:
		return fmt.Sprintf("Your role as %s has moderate AI automation risk. Some of your tasks may be augmented or partially automated by AI in the coming years.", jobTitle)
	case model.RiskLevelHigh:
		return fmt.Sprintf("Your role as %s has high AI automation risk. Many of your daily tasks are already being automated by AI tools. Consider upskilling soon.", jobTitle)
	default:
		return fmt.Sprintf("Your role as %s has critical AI automation risk. Most of your tasks can be performed by current AI systems. Immediate action recommended.", jobTitle)
	}
}

// buildRecommendations scans the task list against the ordered category
// rules, takes the top two skills per matched pool, surfaces the
// high-automation pool first above the score cutoff, then dedupes and pads.
func buildRecommendations(tasks []string, finalScore int) []string {
	recs := make([]string, 0, maxRecommendations)
	for _, rule := range recommendationRules {
		if anyTaskContains(tasks, rule.keywords) {
			recs = append(recs, rule.pool[:2]...)
		}
	}

	if finalScore > highScoreRecommendationCutoff {
		recs = append(append([]string{}, highAutomationPool[:2]...), recs...)
	}

	unique := dedupe(recs, maxRecommendations)

	if len(unique) < minRecommendations {
		unique = dedupe(append(unique, defaultRecommendations...), maxRecommendations)
	}

	return unique
}

// dedupe keeps first-seen order and truncates to limit
func dedupe(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, limit)
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}

func anyTaskContains(tasks, keywords []string) bool {
	for _, task := range tasks {
		for _, kw := range keywords {
			if strings.Contains(task, kw) {
				return true
			}
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
