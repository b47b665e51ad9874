// Package types provides type definitions for structured data used throughout the resume-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// ATSCheck holds the outcome of one simulated ATS parsing check.
type ATSCheck struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// ATSSimulationResult is the outcome of heuristically parsing the final
// document the way an applicant tracking system would.
type ATSSimulationResult struct {
	Score              float64    `json:"score"`
	ParsedSuccessfully bool       `json:"parsed_successfully"`
	Checks             []ATSCheck `json:"checks"`
	SectionsFound      []string   `json:"sections_found,omitempty"`
}

// OptimizationResult is the sole contract with the surrounding application.
// It carries everything the UI layer needs for diffing and score display.
type OptimizationResult struct {
	RunID          uuid.UUID           `json:"run_id"`
	Original       ResumeDocument      `json:"original"`
	Optimized      ResumeDocument      `json:"optimized"`
	Analysis       JDAnalysis          `json:"analysis"`
	Matches        []BulletMatch       `json:"matches"`
	Rewrites       []RewrittenBullet   `json:"rewrites"`
	ATS            ATSSimulationResult `json:"ats"`
	Breakdown      ScoringBreakdown    `json:"breakdown"`
	FinalScore     int                 `json:"final_score"`
	Authenticity   AuthenticityReport  `json:"authenticity"`
	Warnings       []string            `json:"warnings,omitempty"`
	ProcessingTime time.Duration       `json:"processing_time"`
	FromCache      bool                `json:"from_cache,omitempty"`
}
