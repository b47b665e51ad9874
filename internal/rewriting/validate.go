package rewriting

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/extraction"
	"github.com/jonathan/resume-optimizer/internal/similarity"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Validator runs the six independent per-bullet quality checks. It is a pure
// function of (original, rewritten): validating the same pair twice yields
// the same result.
type Validator struct {
	analysis   *types.JDAnalysis
	matrix     config.VerbMatrix
	thresholds config.Thresholds
	jdKeywords []string
}

// NewValidator builds a validator for one JD analysis.
func NewValidator(analysis *types.JDAnalysis, matrix config.VerbMatrix, thresholds config.Thresholds) *Validator {
	return &Validator{
		analysis:   analysis,
		matrix:     matrix,
		thresholds: thresholds,
		jdKeywords: analysis.KeywordList(),
	}
}

// Validate runs all six checks on a candidate rewrite.
func (v *Validator) Validate(original, rewritten string) types.ValidationResult {
	checks := []types.CheckResult{
		v.checkSemanticSimilarity(original, rewritten),
		v.checkMetricPreservation(original, rewritten),
		v.checkKeywordDensity(rewritten),
		v.checkActionVerb(rewritten),
		v.checkNoHallucination(original, rewritten),
		v.checkReadability(rewritten),
	}

	passed := true
	for _, c := range checks {
		if !c.Passed {
			passed = false
			break
		}
	}

	return types.ValidationResult{Passed: passed, Checks: checks}
}

// checkSemanticSimilarity catches meaning drift from the original bullet.
func (v *Validator) checkSemanticSimilarity(original, rewritten string) types.CheckResult {
	score := similarity.Score(original, rewritten)
	check := types.CheckResult{
		Name:      types.CheckSemanticSimilarity,
		Score:     score,
		Threshold: v.thresholds.SemanticSimilarity,
		Passed:    score >= v.thresholds.SemanticSimilarity,
	}
	if !check.Passed {
		check.Message = fmt.Sprintf("rewrite drifted from original meaning (%.2f < %.2f)", score, v.thresholds.SemanticSimilarity)
	}
	return check
}

// checkMetricPreservation requires the original's metrics to survive. Only
// evaluated when the original bullet had metrics; otherwise vacuously passes.
func (v *Validator) checkMetricPreservation(original, rewritten string) types.CheckResult {
	rate := extraction.PreservationRate(original, rewritten)
	check := types.CheckResult{
		Name:      types.CheckMetricPreservation,
		Score:     rate,
		Threshold: v.thresholds.MetricPreservation,
		Passed:    rate >= v.thresholds.MetricPreservation,
	}
	if !check.Passed {
		check.Message = fmt.Sprintf("only %.0f%% of original metrics preserved", rate*100)
	}
	return check
}

// checkKeywordDensity catches stuffing against the JD's full keyword list.
func (v *Validator) checkKeywordDensity(rewritten string) types.CheckResult {
	density := similarity.KeywordDensity(rewritten, v.jdKeywords)
	check := types.CheckResult{
		Name:      types.CheckKeywordDensity,
		Score:     density,
		Threshold: v.thresholds.KeywordDensityMax,
		Passed:    density < v.thresholds.KeywordDensityMax,
	}
	if !check.Passed {
		check.Message = fmt.Sprintf("keyword density %.1f%% exceeds %.1f%%", density*100, v.thresholds.KeywordDensityMax*100)
	}
	return check
}

// checkActionVerb requires the rewrite to open with a verb from the
// role/seniority verb matrix.
func (v *Validator) checkActionVerb(rewritten string) types.CheckResult {
	check := types.CheckResult{Name: types.CheckActionVerb, Threshold: 1}

	words := strings.Fields(rewritten)
	if len(words) == 0 {
		check.Message = "empty rewrite"
		return check
	}

	first := strings.TrimRight(words[0], ".,!?;:")
	if v.matrix.Contains(v.analysis.RoleType, v.analysis.SeniorityLevel, first) {
		check.Passed = true
		check.Score = 1
		return check
	}

	check.Message = fmt.Sprintf("%q is not a %s/%s action verb", first, v.analysis.RoleType, v.analysis.SeniorityLevel)
	return check
}

// checkNoHallucination fails when the rewrite contains a technical keyword
// with no evidentiary basis: every term must already exist in the original
// bullet or in the JD's hard-skills list. Synonym forms count as evidence.
func (v *Validator) checkNoHallucination(original, rewritten string) types.CheckResult {
	check := types.CheckResult{Name: types.CheckNoHallucination, Threshold: 1}

	allowed := make(map[string]bool)
	for _, kw := range similarity.ExtractKeywords(original) {
		allowed[canonical(kw)] = true
	}
	for _, skill := range v.analysis.HardSkills {
		allowed[canonical(skill)] = true
	}

	rewrittenKeywords := similarity.ExtractKeywords(rewritten)
	var unsupported []string
	for _, kw := range rewrittenKeywords {
		if !allowed[canonical(kw)] {
			unsupported = append(unsupported, kw)
		}
	}

	if len(rewrittenKeywords) == 0 {
		check.Passed = true
		check.Score = 1
		return check
	}

	check.Score = float64(len(rewrittenKeywords)-len(unsupported)) / float64(len(rewrittenKeywords))
	check.Passed = len(unsupported) == 0
	if !check.Passed {
		check.Message = "unsupported technical terms: " + strings.Join(unsupported, ", ")
	}
	return check
}

// checkReadability applies the simplified Flesch Reading Ease floor.
func (v *Validator) checkReadability(rewritten string) types.CheckResult {
	score := FleschReadingEase(rewritten)
	check := types.CheckResult{
		Name:      types.CheckReadability,
		Score:     score,
		Threshold: v.thresholds.Readability,
		Passed:    score >= v.thresholds.Readability,
	}
	if !check.Passed {
		check.Message = fmt.Sprintf("readability %.0f below %.0f", score, v.thresholds.Readability)
	}
	return check
}

func canonical(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	if entry, ok := similarity.LookupSynonym(term); ok {
		return entry.Canonical
	}
	return term
}
