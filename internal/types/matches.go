// Package types provides type definitions for structured data used throughout the resume-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchType buckets a similarity score against the fixed match thresholds.
type MatchType string

// Match types. Thresholds: relevant ≥ 0.70, partial ≥ 0.50, none below.
const (
	MatchRelevant MatchType = "relevant"
	MatchPartial  MatchType = "partial"
	MatchNone     MatchType = "none"
)

// Match thresholds shared by the matcher and downstream validators. The
// per-bullet validators are tuned to these values; changing them requires
// re-validating the whole check suite.
const (
	RelevantThreshold = 0.70
	PartialThreshold  = 0.50
)

// MatchTypeForScore returns the match type bucket for a similarity score.
func MatchTypeForScore(score float64) MatchType {
	switch {
	case score >= RelevantThreshold:
		return MatchRelevant
	case score >= PartialThreshold:
		return MatchPartial
	default:
		return MatchNone
	}
}

// BulletMatch pairs a JD requirement with its best-matching resume bullet.
type BulletMatch struct {
	Requirement Requirement `json:"requirement"`
	BulletText  string      `json:"bullet_text"`
	BulletIndex int         `json:"bullet_index"`
	Score       float64     `json:"score"`
	MatchType   MatchType   `json:"match_type"`
}
