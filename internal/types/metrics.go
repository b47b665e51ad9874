// Package types provides type definitions for structured data used throughout the resume-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MetricType classifies a quantifiable fact found in a bullet.
type MetricType string

// Metric types.
const (
	MetricPercentage MetricType = "percentage"
	MetricCurrency   MetricType = "currency"
	MetricScale      MetricType = "scale"
	MetricTimeframe  MetricType = "timeframe"
	MetricNumber     MetricType = "number"
)

// Metric represents one quantifiable fact extracted from a bullet.
// Context is the ±20 character window around the match, for diagnostics only.
type Metric struct {
	Value   string     `json:"value"`
	Type    MetricType `json:"type"`
	Context string     `json:"context,omitempty"`
}

// MetricExtraction holds all metrics found in a single bullet. A bullet with
// zero metrics is vacuously fully preserved under any rewrite.
type MetricExtraction struct {
	BulletText        string   `json:"bullet_text"`
	Metrics           []Metric `json:"metrics"`
	HasQuantification bool     `json:"has_quantification"`
}
