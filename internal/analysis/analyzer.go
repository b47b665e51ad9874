package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/similarity"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// softSkillVocabulary is the fixed soft-skill term list.
var softSkillVocabulary = []string{
	"communication", "leadership", "collaboration", "teamwork", "mentoring",
	"problem solving", "problem-solving", "ownership", "adaptability",
	"stakeholder management", "time management", "attention to detail",
	"critical thinking", "self-starter", "cross-functional",
}

// certificationPatterns match common industry certifications.
var certificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)aws certified[\w\s-]*`),
	regexp.MustCompile(`(?i)azure (fundamentals|administrator|architect)[\w\s-]*`),
	regexp.MustCompile(`(?i)google cloud certified[\w\s-]*`),
	regexp.MustCompile(`(?i)\bckad?\b|certified kubernetes[\w\s-]*`),
	regexp.MustCompile(`(?i)\bpmp\b|\bcissp\b|\bccna\b|\bcompTIA\b`),
	regexp.MustCompile(`(?i)scrum master|csm\b|safe certification`),
}

// educationPatterns match degree requirements.
var educationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(bachelor'?s?|b\.?s\.?c?\.?|undergraduate) (degree )?(in [\w\s]+?)?(field|science|engineering|related|equivalent)`),
	regexp.MustCompile(`(?i)(master'?s?|m\.?s\.?c?\.?|graduate) (degree )?(in [\w\s]+?)?(field|science|engineering|related|equivalent)`),
	regexp.MustCompile(`(?i)ph\.?d\.?( in [\w\s]+)?`),
	regexp.MustCompile(`(?i)(bachelor'?s?|master'?s?) degree`),
	regexp.MustCompile(`(?i)degree in (computer science|engineering|mathematics|statistics|a related field)`),
}

// projectTypeCues map JD phrases to coarse project-type labels.
var projectTypeCues = map[string]string{
	"greenfield":       "greenfield development",
	"migration":        "system migration",
	"from scratch":     "greenfield development",
	"legacy":           "legacy modernization",
	"high availability": "high-availability systems",
	"real-time":        "real-time systems",
	"real time":        "real-time systems",
	"open source":      "open source",
	"scal":             "scalability work",
	"integration":      "third-party integration",
}

// Analyze parses a raw job description into a structured JDAnalysis. It is a
// pure function with best-effort semantics: sparse or malformed input yields
// empty collections and classifier defaults, never an error.
func Analyze(jdText string) types.JDAnalysis {
	return types.JDAnalysis{
		Requirements:          ExtractRequirements(jdText),
		Keywords:              extractKeywordContexts(jdText),
		RoleType:              ClassifyRole(jdText),
		SeniorityLevel:        ClassifySeniority(jdText),
		HardSkills:            similarity.ExtractKeywords(jdText),
		SoftSkills:            extractSoftSkills(jdText),
		Certifications:        extractByPatterns(jdText, certificationPatterns),
		EducationRequirements: extractByPatterns(jdText, educationPatterns),
		ProjectTypes:          extractProjectTypes(jdText),
	}
}

// extractKeywordContexts frequency-counts vocabulary terms, most frequent
// first; ties keep first-seen order for determinism.
func extractKeywordContexts(jdText string) []types.KeywordContext {
	keywords := similarity.ExtractKeywords(jdText)
	contexts := make([]types.KeywordContext, 0, len(keywords))
	for _, kw := range keywords {
		freq := similarity.TermFrequency(jdText, kw)
		if freq == 0 {
			// Multi-word terms are found by substring, not token scan.
			freq = strings.Count(strings.ToLower(jdText), kw)
		}
		contexts = append(contexts, types.KeywordContext{
			Keyword:   kw,
			Frequency: freq,
			Bucket:    similarity.Bucket(kw),
		})
	}

	sort.SliceStable(contexts, func(i, j int) bool {
		return contexts[i].Frequency > contexts[j].Frequency
	})
	return contexts
}

func extractSoftSkills(jdText string) []string {
	lower := strings.ToLower(jdText)
	seen := make(map[string]bool)
	var skills []string
	for _, term := range softSkillVocabulary {
		if strings.Contains(lower, term) && !seen[term] {
			seen[term] = true
			skills = append(skills, term)
		}
	}
	return skills
}

func extractByPatterns(text string, patterns []*regexp.Regexp) []string {
	seen := make(map[string]bool)
	var results []string
	for _, pattern := range patterns {
		for _, match := range pattern.FindAllString(text, -1) {
			match = strings.TrimSpace(match)
			key := strings.ToLower(match)
			if match == "" || seen[key] {
				continue
			}
			seen[key] = true
			results = append(results, match)
		}
	}
	return results
}

func extractProjectTypes(jdText string) []string {
	lower := strings.ToLower(jdText)
	seen := make(map[string]bool)
	var projectTypes []string
	for cue, label := range projectTypeCues {
		if strings.Contains(lower, cue) && !seen[label] {
			seen[label] = true
			projectTypes = append(projectTypes, label)
		}
	}
	sort.Strings(projectTypes)
	return projectTypes
}
