package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func testResume() types.ResumeDocument {
	return types.ResumeDocument{
		Name: "Jane Doe",
		Experience: []types.WorkExperience{
			{
				Role:    "Engineer",
				Company: "Acme",
				Bullets: []string{
					"Built backend APIs with Go and PostgreSQL",
					"Organized team offsites and events",
				},
			},
		},
		Projects: []types.Project{
			{Title: "Infra", Bullets: []string{"Deployed services with Docker and Kubernetes"}},
		},
	}
}

func TestMatchRequirementsPicksBestBullet(t *testing.T) {
	requirements := []types.Requirement{
		{
			Text:     "Experience with Docker and Kubernetes required",
			Category: types.CategorySkill,
			Priority: types.PriorityCritical,
			Keywords: []string{"docker", "kubernetes"},
		},
	}

	matches := MatchRequirements(requirements, testResume())
	require.Len(t, matches, 1)

	match := matches[0]
	assert.Equal(t, "Deployed services with Docker and Kubernetes", match.BulletText)
	assert.Equal(t, 2, match.BulletIndex, "project bullets come after experience bullets")
	assert.Greater(t, match.Score, 0.0)
}

func TestMatchRequirementsEmptyResume(t *testing.T) {
	requirements := []types.Requirement{
		{Text: "Go experience", Keywords: []string{"go"}},
	}

	matches := MatchRequirements(requirements, types.ResumeDocument{})
	require.Len(t, matches, 1)
	assert.Equal(t, types.MatchNone, matches[0].MatchType)
	assert.Equal(t, -1, matches[0].BulletIndex)
	assert.Empty(t, matches[0].BulletText)
}

func TestMatchRequirementsNoRequirements(t *testing.T) {
	matches := MatchRequirements(nil, testResume())
	assert.Empty(t, matches)
}

func TestMatchTypeThresholds(t *testing.T) {
	// An unrelated requirement should land in the none bucket.
	requirements := []types.Requirement{
		{Text: "Fluent in French cuisine and pastry", Keywords: []string{"pastry"}},
	}

	matches := MatchRequirements(requirements, testResume())
	require.Len(t, matches, 1)
	assert.Equal(t, types.MatchNone, matches[0].MatchType)
}

func TestTieKeepsFirstSeenBullet(t *testing.T) {
	resume := types.ResumeDocument{
		Experience: []types.WorkExperience{
			{Bullets: []string{"Built APIs with Go", "Built APIs with Go"}},
		},
	}
	requirements := []types.Requirement{
		{Text: "Go API development", Keywords: []string{"go"}},
	}

	matches := MatchRequirements(requirements, resume)
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].BulletIndex)
}

func TestMissingKeywords(t *testing.T) {
	match := types.BulletMatch{
		Requirement: types.Requirement{
			Keywords: []string{"docker", "aws", "postgresql"},
		},
		BulletText: "Deployed containers with Docker",
	}

	missing := MissingKeywords(match)
	assert.Equal(t, []string{"aws", "postgresql"}, missing)
}

func TestMissingKeywordsSynonymCounts(t *testing.T) {
	match := types.BulletMatch{
		Requirement: types.Requirement{Keywords: []string{"kubernetes"}},
		BulletText:  "Ran workloads on k8s",
	}

	assert.Empty(t, MissingKeywords(match))
}
