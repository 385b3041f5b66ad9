package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aijobradar/internal/model"
)

func TestScoreDataEntryClerk(t *testing.T) {
	s := NewScorer()

	// Task avg (95+82)/2 = 88.5, industry +18, experience -1, title +8
	result := s.Score("Data Entry Clerk", "Customer Service", []string{"Data entry", "Email management"}, 1)

	assert.Equal(t, 100, result.Score, "raw 113.5 clamps to 100")
	assert.Equal(t, model.RiskLevelCritical, result.Level)
	assert.Equal(t, 89, result.Factors.TaskRisk)
	assert.Equal(t, 18, result.Factors.IndustryModifier)
	assert.Equal(t, 7, result.Factors.ExperienceModifier, "-1 experience plus +8 title")
	assert.Contains(t, result.Summary, "Data Entry Clerk")
	assert.Contains(t, result.Summary, "critical")
}

func TestScoreSeniorDirectorHealthcare(t *testing.T) {
	s := NewScorer()

	// Task avg 18, industry -5, experience -10 (capped), title -8
	result := s.Score("Senior Director of Operations", "Healthcare", []string{"Patient care"}, 12)

	assert.Equal(t, 0, result.Score, "raw -5 clamps to 0")
	assert.Equal(t, model.RiskLevelLow, result.Level)
	assert.Equal(t, 18, result.Factors.TaskRisk)
	assert.Equal(t, -5, result.Factors.IndustryModifier)
	assert.Equal(t, -18, result.Factors.ExperienceModifier)
}

func TestScoreDeterminism(t *testing.T) {
	s := NewScorer()

	first := s.Score("Copywriter", "Marketing & Advertising", []string{"Writing content/copy", "SEO optimization"}, 4)
	for i := 0; i < 10; i++ {
		again := s.Score("Copywriter", "Marketing & Advertising", []string{"Writing content/copy", "SEO optimization"}, 4)
		assert.Equal(t, first, again)
	}
}

func TestScoreBoundedness(t *testing.T) {
	s := NewScorer()

	cases := []struct {
		name     string
		jobTitle string
		industry string
		tasks    []string
		years    int
	}{
		{"worst case", "Data entry clerk", "Customer Service", []string{"Data entry", "Transcription", "Form filling"}, 0},
		{"best case", "Senior Chief Director", "Healthcare", []string{"Court appearances", "Patient care"}, 40},
		{"empty tasks", "Analyst", "Other", nil, 0},
		{"unknown everything", "Zzz", "Atlantis", []string{"Underwater basket weaving"}, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := s.Score(tc.jobTitle, tc.industry, tc.tasks, tc.years)
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)
		})
	}
}

func TestScoreExperienceMonotonic(t *testing.T) {
	s := NewScorer()

	prev := s.Score("Accountant", "Finance & Banking", []string{"Bookkeeping", "Auditing"}, 0).Score
	for years := 1; years <= 10; years++ {
		score := s.Score("Accountant", "Finance & Banking", []string{"Bookkeeping", "Auditing"}, years).Score
		assert.LessOrEqual(t, score, prev, "years=%d", years)
		prev = score
	}

	// No further benefit past 10 years
	at10 := s.Score("Accountant", "Finance & Banking", []string{"Bookkeeping", "Auditing"}, 10).Score
	at25 := s.Score("Accountant", "Finance & Banking", []string{"Bookkeeping", "Auditing"}, 25).Score
	assert.Equal(t, at10, at25)
}

func TestScoreUnknownTasksMatchEmptyList(t *testing.T) {
	s := NewScorer()

	unknown := s.Score("Specialist", "Legal", []string{"Alchemy", "Dragon taming"}, 2)
	empty := s.Score("Specialist", "Legal", nil, 2)

	assert.Equal(t, empty.Score, unknown.Score)
	assert.Equal(t, empty.Factors.TaskRisk, unknown.Factors.TaskRisk)
}

func TestScoreLevelConsistency(t *testing.T) {
	s := NewScorer()

	profiles := []struct {
		tasks []string
		years int
	}{
		{[]string{"Patient care"}, 10},
		{[]string{"Negotiation", "Client meetings"}, 5},
		{[]string{"Coding/Programming", "Code review"}, 3},
		{[]string{"Customer support", "Ticket management"}, 1},
		{[]string{"Data entry", "Form filling", "Transcription"}, 0},
	}

	for _, p := range profiles {
		result := s.Score("Worker", "Other", p.tasks, p.years)
		assert.Equal(t, ScoreThresholds.Level(result.Score), result.Level)
	}
}

func TestScoreTitleKeywords(t *testing.T) {
	s := NewScorer()

	base := s.Score("Specialist", "Real Estate", []string{"Negotiation"}, 0).Score
	junior := s.Score("Junior Specialist", "Real Estate", []string{"Negotiation"}, 0).Score
	senior := s.Score("Senior Specialist", "Real Estate", []string{"Negotiation"}, 0).Score

	assert.Equal(t, base+8, junior)
	assert.Equal(t, base-8, senior)

	// High-risk set is checked first and wins on a title matching both
	both := s.Score("Senior Data Analyst", "Real Estate", []string{"Negotiation"}, 0).Score
	assert.Equal(t, base+8, both)
}

func TestScoreTopRiskyTasks(t *testing.T) {
	s := NewScorer()

	result := s.Score("Operator", "Manufacturing",
		[]string{"Negotiation", "Data entry", "Transcription", "Bookkeeping", "Patient care"}, 0)

	require.Len(t, result.TopRiskyTasks, 3)
	assert.Equal(t, []string{"Data entry", "Transcription", "Bookkeeping"}, result.TopRiskyTasks)
}

func TestScoreTopRiskyTasksStableTies(t *testing.T) {
	s := NewScorer()

	// Scheduling and "Scheduling/Calendar management" both weigh 80;
	// input order must decide
	result := s.Score("Clerk", "Other", []string{"Scheduling", "Scheduling/Calendar management", "Email management"}, 0)
	assert.Equal(t, []string{"Email management", "Scheduling", "Scheduling/Calendar management"}, result.TopRiskyTasks)
}

func TestRecommendationBounds(t *testing.T) {
	s := NewScorer()

	cases := []struct {
		name  string
		tasks []string
	}{
		{"no category matches", []string{"Alchemy"}},
		{"one category", []string{"Writing content/copy"}},
		{"many categories", []string{"Writing content/copy", "Data analysis", "Customer support", "Coding/Programming", "Team coordination"}},
		{"empty", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := s.Score("Worker", "Other", tc.tasks, 0)
			assert.GreaterOrEqual(t, len(result.Recommendations), 3)
			assert.LessOrEqual(t, len(result.Recommendations), 5)

			seen := map[string]bool{}
			for _, rec := range result.Recommendations {
				assert.False(t, seen[rec], "duplicate recommendation %q", rec)
				seen[rec] = true
			}
		})
	}
}

func TestRecommendationsHighScorePrepended(t *testing.T) {
	s := NewScorer()

	// Data entry profile lands well above 60
	result := s.Score("Data Entry Clerk", "Customer Service", []string{"Data entry", "Data analysis"}, 0)
	require.NotEmpty(t, result.Recommendations)
	assert.Equal(t, "AI prompt engineering", result.Recommendations[0])
	assert.Equal(t, "AI tool management", result.Recommendations[1])
}

func TestRecommendationsCategoryOrder(t *testing.T) {
	s := NewScorer()

	// Low score, two matched categories: content rules before data rules
	result := s.Score("Senior Head Writer", "Healthcare", []string{"Writing content/copy", "Report generation"}, 10)
	require.GreaterOrEqual(t, len(result.Recommendations), 4)
	assert.Equal(t, "AI-assisted content strategy", result.Recommendations[0])
	assert.Equal(t, "Brand voice development", result.Recommendations[1])
	assert.Equal(t, "Advanced data visualization", result.Recommendations[2])
}

func TestThresholdBuckets(t *testing.T) {
	cases := []struct {
		score int
		level model.RiskLevel
	}{
		{0, model.RiskLevelLow},
		{25, model.RiskLevelLow},
		{26, model.RiskLevelMedium},
		{50, model.RiskLevelMedium},
		{51, model.RiskLevelHigh},
		{75, model.RiskLevelHigh},
		{76, model.RiskLevelCritical},
		{100, model.RiskLevelCritical},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.level, ScoreThresholds.Level(tc.score), "score %d", tc.score)
	}
}
