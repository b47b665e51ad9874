// Package rewriting generates candidate rewrites for resume bullets and
// validates each candidate against six independent quality checks, retrying
// with failure feedback up to a fixed bound.
package rewriting

import (
	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/matching"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Section labels recorded on rewritten bullets.
const (
	SectionExperience = "experience"
	SectionProject    = "project"
)

// Rewriter rewrites every bullet of a resume against one JD analysis.
type Rewriter struct {
	analysis    *types.JDAnalysis
	validator   *Validator
	matrix      config.VerbMatrix
	maxAttempts int
	maxWords    int
}

// New builds a Rewriter from the optimizer configuration.
func New(analysis *types.JDAnalysis, cfg config.Config) *Rewriter {
	return &Rewriter{
		analysis:    analysis,
		validator:   NewValidator(analysis, cfg.VerbMatrix, cfg.Thresholds),
		matrix:      cfg.VerbMatrix,
		maxAttempts: cfg.MaxAttempts,
		maxWords:    cfg.MaxWords,
	}
}

// Validator exposes the rewriter's validator for downstream scoring.
func (r *Rewriter) Validator() *Validator {
	return r.validator
}

// RewriteAll rewrites every bullet in experience and project sections, in
// document order. matches supplies the per-bullet missing keywords.
func (r *Rewriter) RewriteAll(resume types.ResumeDocument, matches []types.BulletMatch) []types.RewrittenBullet {
	missingByBullet := missingKeywordsByBullet(matches)

	var rewrites []types.RewrittenBullet
	globalIndex := 0

	for si, exp := range resume.Experience {
		for bi, bullet := range exp.Bullets {
			rb := r.RewriteBullet(bullet, missingByBullet[globalIndex])
			rb.Section = SectionExperience
			rb.SectionIndex = si
			rb.BulletIndex = bi
			rewrites = append(rewrites, rb)
			globalIndex++
		}
	}
	for si, proj := range resume.Projects {
		for bi, bullet := range proj.Bullets {
			rb := r.RewriteBullet(bullet, missingByBullet[globalIndex])
			rb.Section = SectionProject
			rb.SectionIndex = si
			rb.BulletIndex = bi
			rewrites = append(rewrites, rb)
			globalIndex++
		}
	}

	return rewrites
}

// RewriteBullet runs the bounded generate/validate loop for one bullet.
//
// Each retry receives the prior attempt's failure reasons: a keyword-density
// or hallucination failure suppresses keyword insertion on subsequent
// attempts, and an action-verb failure rotates to the next matrix verb. If no
// attempt passes all six checks the best attempt (most passing checks, first
// seen wins ties) is returned marked not fully validated rather than
// discarding the bullet.
func (r *Rewriter) RewriteBullet(original string, missingKeywords []string) types.RewrittenBullet {
	verbs := r.matrix.VerbsFor(r.analysis.RoleType, r.analysis.SeniorityLevel)
	if len(verbs) == 0 {
		// A matrix override can lack both the classified role and the
		// general fallback. With no verbs to rotate through, keep the
		// bullet as written.
		result := r.validator.Validate(original, original)
		return types.RewrittenBullet{
			Original:           original,
			Rewritten:          original,
			Validation:         result,
			SemanticSimilarity: result.Check(types.CheckSemanticSimilarity).Score,
			KeywordDensity:     result.Check(types.CheckKeywordDensity).Score,
			MetricsPreserved:   result.Check(types.CheckMetricPreservation).Passed,
		}
	}

	best := types.RewrittenBullet{Original: original}
	bestPassed := -1

	allowKeyword := len(missingKeywords) > 0
	verbIndex := 0
	lastCandidate := ""

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		opts := generateOptions{
			verb:     verbs[verbIndex%len(verbs)],
			maxWords: r.maxWords,
		}
		if allowKeyword {
			opts.insertKeyword = missingKeywords[0]
		}

		candidate := generate(original, opts)
		if candidate == lastCandidate {
			// The feedback did not change anything; further attempts would
			// be identical.
			break
		}
		lastCandidate = candidate
		result := r.validator.Validate(original, candidate)

		if passed := result.PassedCount(); passed > bestPassed {
			bestPassed = passed
			best.Rewritten = candidate
			best.Validation = result
			best.RetryCount = attempt
			best.SemanticSimilarity = result.Check(types.CheckSemanticSimilarity).Score
			best.KeywordDensity = result.Check(types.CheckKeywordDensity).Score
			best.MetricsPreserved = result.Check(types.CheckMetricPreservation).Passed
		}

		if result.Passed {
			break
		}

		// Feed the failure reasons back into the next attempt.
		for _, reason := range result.FailureReasons() {
			switch reason {
			case types.CheckKeywordDensity, types.CheckNoHallucination:
				allowKeyword = false
			case types.CheckActionVerb, types.CheckReadability:
				verbIndex++
			}
		}
		if !result.Check(types.CheckSemanticSimilarity).Passed {
			// Drift usually comes from the inserted keyword, not the verb.
			allowKeyword = false
		}
	}

	return best
}

// missingKeywordsByBullet inverts requirement matches into a per-bullet list
// of missing keywords. When several requirements share a bullet, the highest
// scoring one wins.
func missingKeywordsByBullet(matches []types.BulletMatch) map[int][]string {
	bestScore := make(map[int]float64)
	missing := make(map[int][]string)

	for _, match := range matches {
		if match.BulletIndex < 0 || match.MatchType == types.MatchNone {
			continue
		}
		if score, seen := bestScore[match.BulletIndex]; seen && score >= match.Score {
			continue
		}
		bestScore[match.BulletIndex] = match.Score
		missing[match.BulletIndex] = matching.MissingKeywords(match)
	}

	return missing
}
