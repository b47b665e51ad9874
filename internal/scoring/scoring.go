// Package scoring combines the pipeline's per-component outcomes into one
// weighted score and a dimension-by-dimension breakdown for display.
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/similarity"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	criticalIssuePenalty = 5
	maxPenalty           = 15
)

// Inputs carries everything the aggregator needs from upstream components.
type Inputs struct {
	Analysis     *types.JDAnalysis
	Optimized    types.ResumeDocument
	Rewrites     []types.RewrittenBullet
	ATS          types.ATSSimulationResult
	Authenticity types.AuthenticityReport
	Weights      config.Weights
	DensityMax   float64
}

// Score computes the weighted breakdown. TotalScore is the rounded weighted
// sum reduced by the authenticity penalty, clamped to [0,100].
func Score(in Inputs) types.ScoringBreakdown {
	dimensions := []types.ScoreDimension{
		semanticAlignment(in),
		skillMatch(in),
		metricPreservation(in),
		actionVerbStrength(in),
		atsReadability(in),
		keywordDensity(in),
	}

	weighted := 0.0
	for _, d := range dimensions {
		weighted += d.Weighted()
	}

	penalty := authenticityPenalty(in.Authenticity)
	total := int(math.Round(weighted)) - penalty
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return types.ScoringBreakdown{
		Dimensions:          dimensions,
		TotalScore:          total,
		AuthenticityPenalty: penalty,
	}
}

// authenticityPenalty is a bounded reduction, not a hard reject: users still
// see an actionable score even when the audit fails.
func authenticityPenalty(report types.AuthenticityReport) int {
	if report.IsValid {
		return 0
	}
	penalty := report.CriticalCount() * criticalIssuePenalty
	if penalty > maxPenalty {
		penalty = maxPenalty
	}
	return penalty
}

func semanticAlignment(in Inputs) types.ScoreDimension {
	d := types.ScoreDimension{Name: types.DimensionSemanticAlignment, Weight: in.Weights.SemanticAlignment}
	if len(in.Rewrites) == 0 {
		return d
	}
	sum := 0.0
	for _, rw := range in.Rewrites {
		sum += rw.SemanticSimilarity
	}
	d.Raw = sum / float64(len(in.Rewrites)) * 100
	d.Validated = true
	return d
}

func skillMatch(in Inputs) types.ScoreDimension {
	d := types.ScoreDimension{Name: types.DimensionSkillMatch, Weight: in.Weights.SkillMatch}
	if len(in.Analysis.HardSkills) == 0 {
		// No hard skills demanded means nothing is missing.
		d.Raw = 100
		d.Validated = true
		return d
	}

	present := make(map[string]bool)
	for _, skill := range in.Optimized.AllSkills() {
		present[strings.ToLower(skill)] = true
	}
	matched := 0
	for _, skill := range in.Analysis.HardSkills {
		if present[strings.ToLower(skill)] {
			matched++
		}
	}
	d.Raw = float64(matched) / float64(len(in.Analysis.HardSkills)) * 100
	d.Validated = true
	return d
}

func metricPreservation(in Inputs) types.ScoreDimension {
	d := types.ScoreDimension{Name: types.DimensionMetricPreservation, Weight: in.Weights.MetricPreservation}
	if len(in.Rewrites) == 0 {
		return d
	}
	preserved := 0
	for _, rw := range in.Rewrites {
		if rw.MetricsPreserved {
			preserved++
		}
	}
	d.Raw = float64(preserved) / float64(len(in.Rewrites)) * 100
	d.Validated = true
	return d
}

func actionVerbStrength(in Inputs) types.ScoreDimension {
	d := types.ScoreDimension{Name: types.DimensionActionVerbStrength, Weight: in.Weights.ActionVerbStrength}
	if len(in.Rewrites) == 0 {
		return d
	}
	passing := 0
	for _, rw := range in.Rewrites {
		if rw.Validation.Check(types.CheckActionVerb).Passed {
			passing++
		}
	}
	d.Raw = float64(passing) / float64(len(in.Rewrites)) * 100
	d.Validated = true
	return d
}

func atsReadability(in Inputs) types.ScoreDimension {
	return types.ScoreDimension{
		Name:      types.DimensionATSReadability,
		Weight:    in.Weights.ATSReadability,
		Raw:       in.ATS.Score,
		Validated: true,
	}
}

// keywordDensity measures how dense the JD's keywords are in the optimized
// bullets. Density under the limit is healthy; over it reads as stuffing and
// halves the dimension.
func keywordDensity(in Inputs) types.ScoreDimension {
	d := types.ScoreDimension{Name: types.DimensionKeywordDensity, Weight: in.Weights.KeywordDensity, Validated: true}
	text := strings.Join(in.Optimized.AllBullets(), "\n")
	density := similarity.KeywordDensity(text, in.Analysis.KeywordList())
	if density < in.DensityMax {
		d.Raw = 100
	} else {
		d.Raw = 50
	}
	return d
}
