// Package matching pairs JD requirements with their best-matching resume
// bullets via the similarity engine.
package matching

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/similarity"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// MatchRequirements scores every resume bullet against every requirement and
// keeps the single best bullet per requirement. Ties keep the first-seen
// bullet. The linear scan is O(requirements × bullets), which is fine here:
// both sets are tens of items, not thousands.
func MatchRequirements(requirements []types.Requirement, resume types.ResumeDocument) []types.BulletMatch {
	bullets := resume.AllBullets()
	matches := make([]types.BulletMatch, 0, len(requirements))

	for _, req := range requirements {
		matches = append(matches, matchOne(req, bullets))
	}

	return matches
}

// matchOne finds the best bullet for a single requirement. With no bullets at
// all the match degrades to MatchNone with an empty bullet, never an error.
func matchOne(req types.Requirement, bullets []string) types.BulletMatch {
	best := types.BulletMatch{
		Requirement: req,
		BulletIndex: -1,
		MatchType:   types.MatchNone,
	}

	for i, bullet := range bullets {
		score := similarity.Score(req.Text, bullet)
		if score > best.Score {
			best.Score = score
			best.BulletText = bullet
			best.BulletIndex = i
		}
	}

	best.MatchType = types.MatchTypeForScore(best.Score)
	return best
}

// MissingKeywords returns the requirement keywords that do not appear in the
// matched bullet, candidates for the rewriter's single-keyword insertion.
// Synonym forms count as present: a bullet saying "k8s" is not missing
// "kubernetes".
func MissingKeywords(match types.BulletMatch) []string {
	lower := strings.ToLower(match.BulletText)

	var missing []string
	for _, kw := range match.Requirement.Keywords {
		if containsAnyForm(lower, kw) {
			continue
		}
		missing = append(missing, kw)
	}
	return missing
}

func containsAnyForm(lowerText, term string) bool {
	for _, form := range similarity.ExpandTerm(term) {
		if strings.Contains(lowerText, strings.ToLower(form)) {
			return true
		}
	}
	return false
}
