// Package types provides type definitions for structured data used throughout the resume-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Dimension names for the scoring breakdown.
const (
	DimensionSemanticAlignment  = "semantic_alignment"
	DimensionSkillMatch         = "skill_match"
	DimensionMetricPreservation = "metric_preservation"
	DimensionActionVerbStrength = "action_verb_strength"
	DimensionATSReadability     = "ats_readability"
	DimensionKeywordDensity     = "keyword_density"
)

// ScoreDimension holds one weighted scoring dimension.
type ScoreDimension struct {
	Name      string  `json:"name"`
	Raw       float64 `json:"raw"`
	Weight    float64 `json:"weight"`
	Validated bool    `json:"validated"`
}

// Weighted returns the dimension's contribution to the total score.
func (d ScoreDimension) Weighted() float64 {
	return d.Raw * d.Weight
}

// ScoringBreakdown combines the six weighted dimensions into a total score.
// TotalScore already includes any authenticity penalty.
type ScoringBreakdown struct {
	Dimensions          []ScoreDimension `json:"dimensions"`
	TotalScore          int              `json:"total_score"`
	AuthenticityPenalty int              `json:"authenticity_penalty,omitempty"`
}

// Dimension returns the named dimension, or a zero value if absent.
func (b ScoringBreakdown) Dimension(name string) ScoreDimension {
	for _, d := range b.Dimensions {
		if d.Name == name {
			return d
		}
	}
	return ScoreDimension{Name: name}
}
