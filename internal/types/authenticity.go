// Package types provides type definitions for structured data used throughout the resume-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// IssueSeverity grades an authenticity issue.
type IssueSeverity string

// Issue severities, most severe first.
const (
	SeverityCritical IssueSeverity = "critical"
	SeverityHigh     IssueSeverity = "high"
	SeverityMedium   IssueSeverity = "medium"
	SeverityLow      IssueSeverity = "low"
)

// IssueCategory tags the kind of integrity problem an issue describes.
type IssueCategory string

// Issue categories.
const (
	IssueContentChange     IssueCategory = "content_change"
	IssueMetricLoss        IssueCategory = "metric_loss"
	IssueKeywordStuffing   IssueCategory = "keyword_stuffing"
	IssueSkillInflation    IssueCategory = "skill_inflation"
	IssueMetricFabrication IssueCategory = "metric_fabrication"
)

// AuthenticityIssue represents one integrity problem found by the
// whole-document audit.
type AuthenticityIssue struct {
	Category IssueCategory `json:"category"`
	Severity IssueSeverity `json:"severity"`
	Details  string        `json:"details"`
}

// AuthenticityReport is the result of auditing the optimized document
// against the original for over-optimization.
type AuthenticityReport struct {
	IsValid                bool                `json:"is_valid"`
	Score                  float64             `json:"score"`
	Issues                 []AuthenticityIssue `json:"issues,omitempty"`
	Warnings               []string            `json:"warnings,omitempty"`
	MetricPreservationRate float64             `json:"metric_preservation_rate"`
	KeywordDensity         float64             `json:"keyword_density"`
	SkillInflationRate     float64             `json:"skill_inflation_rate"`
	ContentChangeRate      float64             `json:"content_change_rate"`
}

// CriticalCount returns the number of critical issues.
func (r AuthenticityReport) CriticalCount() int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityCritical {
			n++
		}
	}
	return n
}
