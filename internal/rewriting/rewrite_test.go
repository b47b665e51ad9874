package rewriting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/analysis"
	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/types"
)

func seniorBackendAnalysis() *types.JDAnalysis {
	a := analysis.Analyze("Senior backend engineer, 5+ years of experience. Must have AWS, Docker, PostgreSQL.")
	return &a
}

func newTestRewriter(a *types.JDAnalysis) *Rewriter {
	return New(a, config.Default())
}

func TestRewriteReplacesWeakOpener(t *testing.T) {
	a := seniorBackendAnalysis()
	require.Equal(t, types.RoleBackend, a.RoleType)
	require.Equal(t, types.SenioritySenior, a.SeniorityLevel)

	r := newTestRewriter(a)
	rb := r.RewriteBullet("Worked on backend services using some cloud tools", nil)

	firstWord := strings.Fields(rb.Rewritten)[0]
	matrix := config.Default().VerbMatrix
	assert.True(t, matrix.Contains(types.RoleBackend, types.SenioritySenior, firstWord),
		"rewrite should open with a senior-backend verb, got %q", firstWord)
	assert.NotContains(t, strings.ToLower(rb.Rewritten), "aws")
	assert.NotContains(t, strings.ToLower(rb.Rewritten), "docker")
	assert.True(t, rb.Validation.Check(types.CheckNoHallucination).Passed)
	assert.True(t, rb.Validation.Check(types.CheckActionVerb).Passed)
}

func TestRewritePreservesMetric(t *testing.T) {
	r := newTestRewriter(seniorBackendAnalysis())
	rb := r.RewriteBullet("Helped the team improve performance by 25%", nil)

	assert.Contains(t, rb.Rewritten, "25%")
	assert.True(t, rb.MetricsPreserved)
	assert.True(t, rb.Validation.Check(types.CheckMetricPreservation).Passed)
}

func TestRewriteRetryBound(t *testing.T) {
	r := newTestRewriter(seniorBackendAnalysis())

	bullets := []string{
		"Helped the team improve performance by 25%",
		"Was responsible for maintaining legacy infrastructure components",
		"Worked on stuff",
		"",
	}
	for _, bullet := range bullets {
		rb := r.RewriteBullet(bullet, nil)
		assert.LessOrEqual(t, rb.RetryCount, 2, "retryCount is 0-indexed and bounded by 3 attempts")
	}
}

func TestRewriteKeepsBestAttempt(t *testing.T) {
	r := newTestRewriter(seniorBackendAnalysis())
	rb := r.RewriteBullet("Worked on stuff", nil)

	// Even when validation cannot fully pass, we keep the best attempt
	// instead of discarding the bullet.
	assert.NotEmpty(t, rb.Rewritten)
	assert.Equal(t, "Worked on stuff", rb.Original)
}

func TestRewriteBulletNoVerbsForRoleKeepsOriginal(t *testing.T) {
	// An override matrix can omit both the classified role and the general
	// fallback. The rewriter must keep the bullet as written, not panic.
	cfg := config.Default()
	cfg.VerbMatrix = config.VerbMatrix{
		types.RoleBackend: {
			types.SenioritySenior: {"Architected", "Led"},
		},
	}
	a := &types.JDAnalysis{RoleType: types.RoleFrontend, SeniorityLevel: types.SeniorityMid}

	rb := New(a, cfg).RewriteBullet("Worked on the customer dashboard", nil)

	assert.Equal(t, "Worked on the customer dashboard", rb.Rewritten)
	assert.Equal(t, rb.Original, rb.Rewritten)
	assert.Zero(t, rb.RetryCount)
}

func TestRewriteBulletValidatorIdempotent(t *testing.T) {
	r := newTestRewriter(seniorBackendAnalysis())
	original := "Helped the team improve performance by 25%"
	rewritten := "Led the team to improve performance by 25%"

	first := r.Validator().Validate(original, rewritten)
	second := r.Validator().Validate(original, rewritten)
	assert.Equal(t, first, second)
}

func TestRewriteAllCoversAllBullets(t *testing.T) {
	resume := types.ResumeDocument{
		Experience: []types.WorkExperience{
			{Bullets: []string{"Worked on APIs", "Helped with deployments"}},
			{Bullets: []string{"Built pipelines"}},
		},
		Projects: []types.Project{
			{Bullets: []string{"Created a CLI tool"}},
		},
	}

	r := newTestRewriter(seniorBackendAnalysis())
	rewrites := r.RewriteAll(resume, nil)
	require.Len(t, rewrites, 4)

	assert.Equal(t, SectionExperience, rewrites[0].Section)
	assert.Equal(t, 0, rewrites[0].SectionIndex)
	assert.Equal(t, 1, rewrites[1].BulletIndex)
	assert.Equal(t, SectionExperience, rewrites[2].Section)
	assert.Equal(t, 1, rewrites[2].SectionIndex)
	assert.Equal(t, SectionProject, rewrites[3].Section)
}

func TestRewriteInsertsAtMostOneKeyword(t *testing.T) {
	r := newTestRewriter(seniorBackendAnalysis())
	rb := r.RewriteBullet("Worked on backend services in the cloud", []string{"aws", "docker"})

	lower := strings.ToLower(rb.Rewritten)
	inserted := 0
	if strings.Contains(lower, "aws") {
		inserted++
	}
	if strings.Contains(lower, "docker") {
		inserted++
	}
	assert.LessOrEqual(t, inserted, 1, "never more than one keyword per attempt")
}

func TestRewriteClampsLength(t *testing.T) {
	long := strings.Repeat("stayed busy with many small tasks and chores ", 8)
	r := newTestRewriter(seniorBackendAnalysis())
	rb := r.RewriteBullet(long, nil)

	assert.LessOrEqual(t, len(strings.Fields(rb.Rewritten)), config.Default().MaxWords)
}

func TestGenerateStripWeakOpener(t *testing.T) {
	tests := []struct {
		name     string
		original string
		hadWeak  bool
	}{
		{"worked on", "Worked on the billing system", true},
		{"was responsible for", "Was responsible for deployments", true},
		{"helped", "Helped migrate the database", true},
		{"leading I", "I worked on the billing system", true},
		{"already strong", "Reduced latency by 40%", false},
		{"plain noun phrase", "Billing system maintenance", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, hadWeak := stripWeakOpener(tt.original)
			assert.Equal(t, tt.hadWeak, hadWeak)
		})
	}
}

func TestGenerateSpliceKeywordTemplates(t *testing.T) {
	assert.Equal(t, "Built services using docker", spliceKeyword("Built services", "docker"))
	// "using" already present switches to the "with" template.
	assert.Equal(t, "Built services using Go with docker", spliceKeyword("Built services using Go", "docker"))
}
