package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(&types.JDAnalysis{
		RoleType:       types.RoleBackend,
		SeniorityLevel: types.SenioritySenior,
		HardSkills:     []string{"aws", "docker", "postgresql", "kubernetes", "terraform", "redis"},
		Requirements: []types.Requirement{
			{Text: "Must have AWS", Priority: types.PriorityCritical},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "JOB DESCRIPTION ANALYSIS")
	assert.Contains(t, out, "backend")
	assert.Contains(t, out, "aws")
	assert.Contains(t, out, "... and 1 more")
	assert.Contains(t, out, "1 critical")
}

func TestPrintAnalysisNilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysis(nil)
	assert.Empty(t, buf.String())
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatches([]types.BulletMatch{
		{
			Requirement: types.Requirement{Text: "Must have strong experience with AWS"},
			BulletText:  "Worked with cloud infrastructure",
			Score:       0.74,
			MatchType:   types.MatchRelevant,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "REQUIREMENT MATCHES")
	assert.Contains(t, out, "0.74")
	assert.Contains(t, out, "relevant")
}

func TestPrintRewrites(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRewrites([]types.RewrittenBullet{
		{
			Rewritten:        "Led development of backend services",
			MetricsPreserved: true,
			RetryCount:       1,
			Validation: types.ValidationResult{
				Checks: []types.CheckResult{
					{Name: types.CheckActionVerb, Passed: true},
					{Name: types.CheckNoHallucination, Passed: true},
				},
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "REWRITTEN BULLETS")
	assert.Contains(t, out, "✓verb")
	assert.Contains(t, out, "✓metrics")
	assert.Contains(t, out, "attempt 2")
}

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScore(&types.OptimizationResult{
		FinalScore: 82,
		Breakdown: types.ScoringBreakdown{
			Dimensions: []types.ScoreDimension{
				{Name: types.DimensionSemanticAlignment, Raw: 90, Weight: 0.35},
			},
			TotalScore:          82,
			AuthenticityPenalty: 5,
		},
		ATS: types.ATSSimulationResult{Score: 100},
	})

	out := buf.String()
	assert.Contains(t, out, "82/100")
	assert.Contains(t, out, "penalty: -5")
}

func TestPrintAuthenticityIssuesEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAuthenticityIssues(&types.AuthenticityReport{})

	assert.Contains(t, buf.String(), "NO AUTHENTICITY ISSUES")
}

func TestPrintAuthenticityIssues(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAuthenticityIssues(&types.AuthenticityReport{
		Issues: []types.AuthenticityIssue{
			{Category: types.IssueMetricFabrication, Severity: types.SeverityCritical, Details: "metric \"99.9%\" appears fabricated"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "AUTHENTICITY ISSUES")
	assert.Contains(t, out, "metric_fabrication")
	assert.Contains(t, out, "critical")
}
