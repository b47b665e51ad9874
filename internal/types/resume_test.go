package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() ResumeDocument {
	return ResumeDocument{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Summary: "Backend engineer",
		Experience: []WorkExperience{
			{
				Role:    "Software Engineer",
				Company: "Acme",
				Period:  "2020-2023",
				Bullets: []string{"Built APIs", "Reduced latency by 40%"},
			},
		},
		Projects: []Project{
			{Title: "Sidecar", Bullets: []string{"Implemented caching layer"}},
		},
		Skills: []SkillCategory{
			{Category: "Languages", Items: []string{"Go", "Python"}},
		},
		Education: []Education{
			{Degree: "BSc Computer Science", Institution: "State U"},
		},
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := sampleResume()
	clone := original.Clone()

	require.Equal(t, original, clone)

	// Mutating the clone must not leak into the original.
	clone.Experience[0].Bullets[0] = "changed"
	clone.Projects[0].Bullets[0] = "changed"
	clone.Skills[0].Items[0] = "changed"
	clone.Education[0].Degree = "changed"

	assert.Equal(t, "Built APIs", original.Experience[0].Bullets[0])
	assert.Equal(t, "Implemented caching layer", original.Projects[0].Bullets[0])
	assert.Equal(t, "Go", original.Skills[0].Items[0])
	assert.Equal(t, "BSc Computer Science", original.Education[0].Degree)
}

func TestCloneEmptyDocument(t *testing.T) {
	var empty ResumeDocument
	clone := empty.Clone()
	assert.Empty(t, clone.Experience)
	assert.Empty(t, clone.Projects)
	assert.Empty(t, clone.Skills)
}

func TestAllBulletsOrder(t *testing.T) {
	resume := sampleResume()
	bullets := resume.AllBullets()
	require.Len(t, bullets, 3)
	// Experience bullets first, then projects.
	assert.Equal(t, "Built APIs", bullets[0])
	assert.Equal(t, "Reduced latency by 40%", bullets[1])
	assert.Equal(t, "Implemented caching layer", bullets[2])
}

func TestAllSkills(t *testing.T) {
	resume := sampleResume()
	assert.Equal(t, []string{"Go", "Python"}, resume.AllSkills())
}

func TestMatchTypeForScore(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected MatchType
	}{
		{"Exact match", 1.0, MatchRelevant},
		{"At relevant threshold", 0.70, MatchRelevant},
		{"Between thresholds", 0.60, MatchPartial},
		{"At partial threshold", 0.50, MatchPartial},
		{"Below partial", 0.49, MatchNone},
		{"Zero", 0.0, MatchNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchTypeForScore(tt.score))
		})
	}
}

func TestValidationResultHelpers(t *testing.T) {
	result := ValidationResult{
		Passed: false,
		Checks: []CheckResult{
			{Name: CheckSemanticSimilarity, Passed: true, Score: 0.8},
			{Name: CheckKeywordDensity, Passed: false, Score: 0.12},
			{Name: CheckActionVerb, Passed: false},
		},
	}

	assert.Equal(t, 1, result.PassedCount())
	assert.Equal(t, []string{CheckKeywordDensity, CheckActionVerb}, result.FailureReasons())
	assert.Equal(t, 0.12, result.Check(CheckKeywordDensity).Score)
	assert.Equal(t, CheckReadability, result.Check(CheckReadability).Name)
}
