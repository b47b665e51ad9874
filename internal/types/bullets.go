// Package types provides type definitions for structured data used throughout the resume-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Check names for the six per-bullet validation checks.
const (
	CheckSemanticSimilarity = "semantic_similarity"
	CheckMetricPreservation = "metric_preservation"
	CheckKeywordDensity     = "keyword_density"
	CheckActionVerb         = "action_verb"
	CheckNoHallucination    = "no_hallucination"
	CheckReadability        = "readability"
)

// CheckResult holds the outcome of one named validation check.
type CheckResult struct {
	Name      string  `json:"name"`
	Passed    bool    `json:"passed"`
	Score     float64 `json:"score"`
	Threshold float64 `json:"threshold"`
	Message   string  `json:"message,omitempty"`
}

// ValidationResult aggregates the six per-bullet checks.
type ValidationResult struct {
	Passed bool          `json:"passed"`
	Checks []CheckResult `json:"checks"`
}

// PassedCount returns how many individual checks passed.
func (v ValidationResult) PassedCount() int {
	n := 0
	for _, c := range v.Checks {
		if c.Passed {
			n++
		}
	}
	return n
}

// FailureReasons returns the names of all failed checks.
func (v ValidationResult) FailureReasons() []string {
	var reasons []string
	for _, c := range v.Checks {
		if !c.Passed {
			reasons = append(reasons, c.Name)
		}
	}
	return reasons
}

// Check returns the named check result, or a zero value if absent.
func (v ValidationResult) Check(name string) CheckResult {
	for _, c := range v.Checks {
		if c.Name == name {
			return c
		}
	}
	return CheckResult{Name: name}
}

// RewrittenBullet represents one bullet rewrite with its validation outcome.
// Created once per bullet per optimize call, immutable afterwards.
type RewrittenBullet struct {
	Original           string           `json:"original"`
	Rewritten          string           `json:"rewritten"`
	Validation         ValidationResult `json:"validation"`
	MetricsPreserved   bool             `json:"metrics_preserved"`
	KeywordDensity     float64          `json:"keyword_density"`
	SemanticSimilarity float64          `json:"semantic_similarity"`
	RetryCount         int              `json:"retry_count"`
	Section            string           `json:"section"`
	SectionIndex       int              `json:"section_index"`
	BulletIndex        int              `json:"bullet_index"`
}
