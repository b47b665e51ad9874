package analysis

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/similarity"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// minSentenceLength filters out fragments that cannot carry a requirement.
const minSentenceLength = 10

var sentenceDelimiters = regexp.MustCompile(`[.!?\n]+`)

// Modal-verb cues for requirement priority.
var (
	criticalCues   = []string{"must", "required", "require", "essential", "mandatory", "need to have"}
	niceToHaveCues = []string{"preferred", "nice to have", "bonus", "plus", "ideally", "desirable", "a plus"}
)

// Category cues checked in order; the first category with a cue present wins.
// Skill is the fallback for sentences that carry technical keywords.
var categoryCues = []struct {
	category types.RequirementCategory
	cues     []string
}{
	{types.CategoryCertification, []string{"certification", "certified", "certificate"}},
	{types.CategoryEducation, []string{"degree", "bachelor", "master", "phd", "bs ", "ms ", "b.s", "m.s", "computer science"}},
	{types.CategoryExperience, []string{"years", "experience", "background", "track record", "history of"}},
	{types.CategorySoftSkill, []string{"communication", "collaborat", "team player", "leadership", "mentor", "stakeholder", "interpersonal", "self-starter", "ownership"}},
}

// ExtractRequirements splits the JD into sentences and classifies each into a
// structured requirement. Sentences under the minimum length or yielding no
// keywords are discarded.
func ExtractRequirements(jdText string) []types.Requirement {
	var requirements []types.Requirement

	for _, sentence := range SplitSentences(jdText) {
		keywords := requirementKeywords(sentence)
		if len(keywords) == 0 {
			continue
		}

		requirements = append(requirements, types.Requirement{
			Text:     sentence,
			Category: classifyCategory(sentence),
			Priority: classifyPriority(sentence),
			Keywords: keywords,
		})
	}

	return requirements
}

// SplitSentences splits text on sentence delimiters (. ! ? and newlines) and
// drops fragments under the minimum length.
func SplitSentences(text string) []string {
	var sentences []string
	for _, part := range sentenceDelimiters.Split(text, -1) {
		sentence := strings.TrimSpace(part)
		if len(sentence) >= minSentenceLength {
			sentences = append(sentences, sentence)
		}
	}
	return sentences
}

func classifyCategory(sentence string) types.RequirementCategory {
	lower := strings.ToLower(sentence)
	for _, cc := range categoryCues {
		for _, cue := range cc.cues {
			if strings.Contains(lower, cue) {
				return cc.category
			}
		}
	}
	return types.CategorySkill
}

func classifyPriority(sentence string) types.RequirementPriority {
	lower := strings.ToLower(sentence)
	// Nice-to-have cues are checked first: "preferred" beats an incidental
	// "required" later in the same sentence less often than the reverse.
	for _, cue := range niceToHaveCues {
		if strings.Contains(lower, cue) {
			return types.PriorityNiceToHave
		}
	}
	for _, cue := range criticalCues {
		if strings.Contains(lower, cue) {
			return types.PriorityCritical
		}
	}
	return types.PriorityImportant
}

// requirementKeywords extracts the technical keywords a sentence contributes.
// Soft-skill sentences keep their cue words as keywords so they survive the
// ≥1 keyword filter.
func requirementKeywords(sentence string) []string {
	keywords := similarity.ExtractKeywords(sentence)
	if len(keywords) > 0 {
		return keywords
	}

	lower := strings.ToLower(sentence)
	var soft []string
	for _, term := range softSkillVocabulary {
		if strings.Contains(lower, term) {
			soft = append(soft, term)
		}
	}
	return soft
}
