package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/cache"
	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const backendJD = `Senior Backend Engineer

We are looking for a senior backend engineer with 5+ years of experience.
Must have strong experience with AWS, Docker, and PostgreSQL.
Excellent communication and collaboration skills required.`

func sampleResume() types.ResumeDocument {
	return types.ResumeDocument{
		Name:  "Jordan Smith",
		Email: "jordan@example.com",
		Phone: "+1 (555) 123-4567",
		Experience: []types.WorkExperience{
			{
				Role:    "Software Engineer",
				Company: "Acme",
				Period:  "2019 - Present",
				Bullets: []string{
					"Worked on backend services using some cloud tools",
					"Helped the team improve performance by 25%",
				},
			},
		},
		Skills: []types.SkillCategory{
			{Category: "Languages", Items: []string{"Python", "Go"}},
		},
		Education: []types.Education{
			{Degree: "BS Computer Science", Institution: "State University", Period: "2011-2015"},
		},
	}
}

func TestOptimizeEndToEnd(t *testing.T) {
	o := New(config.Default())
	resume := sampleResume()

	result, err := o.Optimize(context.Background(), resume, backendJD)
	require.NoError(t, err)

	assert.Equal(t, types.RoleBackend, result.Analysis.RoleType)
	assert.Equal(t, types.SenioritySenior, result.Analysis.SeniorityLevel)
	assert.NotEmpty(t, result.Matches)
	assert.Len(t, result.Rewrites, 2)
	assert.NotZero(t, result.RunID)
	assert.False(t, result.FromCache)
	assert.Positive(t, result.FinalScore)
	assert.LessOrEqual(t, result.FinalScore, 100)

	// The caller's document is untouched and the result owns its own copy.
	assert.Equal(t, "Worked on backend services using some cloud tools", resume.Experience[0].Bullets[0])
	assert.Equal(t, resume.AllBullets(), result.Original.AllBullets())

	// The 25% figure from the original must survive the whole pipeline.
	assert.True(t, result.Authenticity.MetricPreservationRate >= 0.9)
	assert.Zero(t, result.Authenticity.CriticalCount())
}

func TestOptimizeRetryBound(t *testing.T) {
	o := New(config.Default())

	result, err := o.Optimize(context.Background(), sampleResume(), backendJD)
	require.NoError(t, err)

	for _, rw := range result.Rewrites {
		assert.LessOrEqual(t, rw.RetryCount, 2)
	}
}

func TestOptimizeEmptyInputsDegradeGracefully(t *testing.T) {
	o := New(config.Default())

	result, err := o.Optimize(context.Background(), types.ResumeDocument{}, "")
	require.NoError(t, err)

	assert.Equal(t, types.RoleGeneral, result.Analysis.RoleType)
	assert.Empty(t, result.Rewrites)
	assert.False(t, result.ATS.ParsedSuccessfully)
}

func TestOptimizeUsesCache(t *testing.T) {
	store := cache.NewMemory(time.Hour)
	o := New(config.Default(), WithCache(store))
	resume := sampleResume()

	first, err := o.Optimize(context.Background(), resume, backendJD)
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := o.Optimize(context.Background(), resume, backendJD)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.RunID, second.RunID)
	assert.Equal(t, first.FinalScore, second.FinalScore)
}

func TestOptimizeBatchPreservesOrder(t *testing.T) {
	o := New(config.Default())

	requests := []Request{
		{Resume: sampleResume(), JobDescription: backendJD},
		{Resume: sampleResume(), JobDescription: "Frontend developer with React experience required."},
		{Resume: sampleResume(), JobDescription: ""},
	}

	results, err := o.OptimizeBatch(context.Background(), requests)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, types.RoleBackend, results[0].Analysis.RoleType)
	assert.Equal(t, types.RoleFrontend, results[1].Analysis.RoleType)
	assert.Equal(t, types.RoleGeneral, results[2].Analysis.RoleType)
}
