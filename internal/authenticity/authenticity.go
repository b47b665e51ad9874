// Package authenticity audits an optimized resume against the original
// document. It runs independently of the per-bullet validation and exists to
// keep the optimizer from gaming its own downstream scoring: rewrites that
// fabricate metrics, inflate skills, or stuff keywords are flagged here even
// when every individual bullet passed its checks.
package authenticity

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/extraction"
	"github.com/jonathan/resume-optimizer/internal/similarity"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// lexicalOverlapFloor is the minimum word overlap for an optimized
	// bullet to count as a counterpart of an original bullet.
	lexicalOverlapFloor = 0.5

	contentChangeFail = 0.40
	contentChangeWarn = 0.30

	metricPreservationFloor = 0.90
	metricValueTolerance    = 0.10

	perTermDensityMax   = 0.03
	aggregateDensityMax = 0.08

	skillRatioMax     = 1.5
	newSkillsIssueMax = 10
	newSkillsWarnMax  = 5

	// shortfallScale converts a preservation or content-change shortfall
	// fraction into score points, so a catastrophic shortfall costs more
	// than a marginal one.
	shortfallScale = 50.0

	// Hard score caps applied when the stuffing or inflation limits were
	// crossed, whatever the other deductions add up to.
	stuffingScoreCap  = 60.0
	inflationScoreCap = 65.0

	validScoreFloor = 70.0
)

var severityPenalty = map[types.IssueSeverity]float64{
	types.SeverityCritical: 25,
	types.SeverityHigh:     15,
	types.SeverityMedium:   8,
	types.SeverityLow:      3,
}

// suspiciousValuePatterns match metric strings that recruiters and hiring
// managers read as fabricated when they appear out of nowhere.
var suspiciousValuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^99(\.9+)?%$`),
	regexp.MustCompile(`(?i)^10x$`),
	regexp.MustCompile(`(?i)^\$1m$`),
}

var yearsClaimPattern = regexp.MustCompile(`(?i)(\d{1,2})\s*\+?\s*years?`)

// leadingValuePattern isolates the numeric part of a metric value so
// "10000 users" can be checked as the number 10000.
var leadingValuePattern = regexp.MustCompile(`(?i)^[$€£]?\s*\d+(?:[.,]\d+)*\s*[kmb]?`)

// Audit compares the optimized document to the original and returns a full
// report. The audit never aborts; every problem becomes an issue or a
// warning and lowers the score.
func Audit(original, optimized types.ResumeDocument) types.AuthenticityReport {
	report := types.AuthenticityReport{Score: 100}

	auditContentChange(&report, original, optimized)
	auditMetricPreservation(&report, original, optimized)
	auditKeywordStuffing(&report, original, optimized)
	auditSkillInflation(&report, original, optimized)
	auditMetricFabrication(&report, original, optimized)
	auditExperienceClaims(&report, original, optimized)

	for _, issue := range report.Issues {
		report.Score -= severityPenalty[issue.Severity]
	}

	// Proportional penalties scale with how far a shortfall went, on top of
	// the fixed per-issue deductions.
	if report.MetricPreservationRate < metricPreservationFloor {
		report.Score -= (metricPreservationFloor - report.MetricPreservationRate) * shortfallScale
	}
	if report.ContentChangeRate > contentChangeFail {
		report.Score -= (report.ContentChangeRate - contentChangeFail) * shortfallScale
	}

	// Crossing the stuffing or inflation limits caps the score outright.
	for _, issue := range report.Issues {
		switch {
		case issue.Category == types.IssueKeywordStuffing && issue.Severity == types.SeverityHigh:
			report.Score = math.Min(report.Score, stuffingScoreCap)
		case issue.Category == types.IssueSkillInflation && issue.Severity == types.SeverityHigh:
			report.Score = math.Min(report.Score, inflationScoreCap)
		}
	}

	if report.Score < 0 {
		report.Score = 0
	}

	report.IsValid = report.Score >= validScoreFloor && report.CriticalCount() == 0
	return report
}

// auditContentChange measures the fraction of original bullets that have no
// sufficiently similar counterpart in the optimized document.
func auditContentChange(report *types.AuthenticityReport, original, optimized types.ResumeDocument) {
	origBullets := original.AllBullets()
	optBullets := optimized.AllBullets()
	if len(origBullets) == 0 {
		return
	}

	changed := 0
	for _, orig := range origBullets {
		if !hasCounterpart(orig, optBullets) {
			changed++
		}
	}
	report.ContentChangeRate = float64(changed) / float64(len(origBullets))

	switch {
	case report.ContentChangeRate > contentChangeFail:
		report.Issues = append(report.Issues, types.AuthenticityIssue{
			Category: types.IssueContentChange,
			Severity: types.SeverityHigh,
			Details:  fmt.Sprintf("%.0f%% of bullets were rewritten beyond recognition", report.ContentChangeRate*100),
		})
	case report.ContentChangeRate > contentChangeWarn:
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("content change rate %.0f%% is approaching the rewrite limit", report.ContentChangeRate*100))
	}
}

func hasCounterpart(original string, candidates []string) bool {
	for _, candidate := range candidates {
		if lexicalOverlap(original, candidate) >= lexicalOverlapFloor {
			return true
		}
	}
	return false
}

// lexicalOverlap is word-set Jaccard overlap, case-insensitive.
func lexicalOverlap(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for word := range setA {
		if setB[word] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range similarity.Tokenize(strings.ToLower(text)) {
		set[token] = true
	}
	return set
}

// auditMetricPreservation checks document-wide that the original numbers
// still appear somewhere in the optimized document, allowing small numeric
// variance as equivalent.
func auditMetricPreservation(report *types.AuthenticityReport, original, optimized types.ResumeDocument) {
	report.MetricPreservationRate = 1.0

	origMetrics := collectMetrics(original)
	if len(origMetrics) == 0 {
		return
	}
	optMetrics := collectMetrics(optimized)
	optText := strings.Join(optimized.AllBullets(), "\n")

	preserved := 0
	for _, metric := range origMetrics {
		if metricSurvives(metric, optText, optMetrics) {
			preserved++
		}
	}
	report.MetricPreservationRate = float64(preserved) / float64(len(origMetrics))

	if report.MetricPreservationRate < metricPreservationFloor {
		report.Issues = append(report.Issues, types.AuthenticityIssue{
			Category: types.IssueMetricLoss,
			Severity: types.SeverityHigh,
			Details: fmt.Sprintf("only %.0f%% of original metrics survive optimization, need %.0f%%",
				report.MetricPreservationRate*100, metricPreservationFloor*100),
		})
	}
}

func collectMetrics(doc types.ResumeDocument) []types.Metric {
	var metrics []types.Metric
	for _, ext := range extraction.ExtractAll(doc.AllBullets()) {
		metrics = append(metrics, ext.Metrics...)
	}
	return metrics
}

func metricSurvives(metric types.Metric, optimizedText string, optimized []types.Metric) bool {
	if strings.Contains(optimizedText, metric.Value) {
		return true
	}
	for _, candidate := range optimized {
		if candidate.Type != metric.Type {
			continue
		}
		if extraction.ValuesEquivalent(metric.Value, candidate.Value, metricValueTolerance) {
			return true
		}
	}
	return false
}

// auditKeywordStuffing flags keyword density that grew past the per-term or
// aggregate limits during optimization. Densities are baselined against the
// original document: a resume that is naturally keyword-dense never fails
// against its own vocabulary, only densification the optimizer introduced.
func auditKeywordStuffing(report *types.AuthenticityReport, original, optimized types.ResumeDocument) {
	optText := strings.Join(optimized.AllBullets(), "\n")
	words := similarity.Tokenize(optText)
	if len(words) == 0 {
		return
	}

	origText := strings.Join(original.AllBullets(), "\n")
	origWords := similarity.Tokenize(origText)

	keywords := similarity.ExtractKeywords(optText)
	report.KeywordDensity = similarity.KeywordDensity(optText, keywords)
	origDensity := similarity.KeywordDensity(origText, similarity.ExtractKeywords(origText))

	for _, keyword := range keywords {
		density := float64(similarity.TermFrequency(optText, keyword)) / float64(len(words))
		if density <= perTermDensityMax {
			continue
		}
		origTermDensity := 0.0
		if len(origWords) > 0 {
			origTermDensity = float64(similarity.TermFrequency(origText, keyword)) / float64(len(origWords))
		}
		if density <= origTermDensity {
			continue
		}
		report.Issues = append(report.Issues, types.AuthenticityIssue{
			Category: types.IssueKeywordStuffing,
			Severity: types.SeverityMedium,
			Details: fmt.Sprintf("term %q grew to %.1f%% of words (was %.1f%%)",
				keyword, density*100, origTermDensity*100),
		})
	}
	if report.KeywordDensity > aggregateDensityMax && report.KeywordDensity > origDensity {
		report.Issues = append(report.Issues, types.AuthenticityIssue{
			Category: types.IssueKeywordStuffing,
			Severity: types.SeverityHigh,
			Details: fmt.Sprintf("aggregate keyword density grew to %.1f%% (was %.1f%%), limit %.0f%%",
				report.KeywordDensity*100, origDensity*100, aggregateDensityMax*100),
		})
	}
}

// auditSkillInflation compares skill counts before and after optimization.
func auditSkillInflation(report *types.AuthenticityReport, original, optimized types.ResumeDocument) {
	origSkills := original.AllSkills()
	optSkills := optimized.AllSkills()

	if len(origSkills) == 0 {
		report.SkillInflationRate = float64(len(optSkills))
	} else {
		report.SkillInflationRate = float64(len(optSkills)) / float64(len(origSkills))
	}

	origSet := make(map[string]bool, len(origSkills))
	for _, skill := range origSkills {
		origSet[strings.ToLower(skill)] = true
	}
	newSkills := 0
	for _, skill := range optSkills {
		if !origSet[strings.ToLower(skill)] {
			newSkills++
		}
	}

	if len(origSkills) > 0 && report.SkillInflationRate > skillRatioMax {
		report.Issues = append(report.Issues, types.AuthenticityIssue{
			Category: types.IssueSkillInflation,
			Severity: types.SeverityHigh,
			Details:  fmt.Sprintf("skill count grew %.1fx, limit is %.1fx", report.SkillInflationRate, skillRatioMax),
		})
	}
	switch {
	case newSkills > newSkillsIssueMax:
		report.Issues = append(report.Issues, types.AuthenticityIssue{
			Category: types.IssueSkillInflation,
			Severity: types.SeverityMedium,
			Details:  fmt.Sprintf("%d skills added that were not on the original resume", newSkills),
		})
	case newSkills > newSkillsWarnMax:
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%d new skills added; verify each one is genuine", newSkills))
	}
}

// auditMetricFabrication flags any metric present only in the optimized
// document whose value looks invented. These are critical: a fabricated
// number is an integrity problem, not a quality problem.
func auditMetricFabrication(report *types.AuthenticityReport, original, optimized types.ResumeDocument) {
	origValues := make(map[string]bool)
	for _, metric := range collectMetrics(original) {
		origValues[extraction.NormalizeValue(metric.Value)] = true
	}

	for _, metric := range collectMetrics(optimized) {
		if origValues[extraction.NormalizeValue(metric.Value)] {
			continue
		}
		if isSuspiciousValue(metric) {
			report.Issues = append(report.Issues, types.AuthenticityIssue{
				Category: types.IssueMetricFabrication,
				Severity: types.SeverityCritical,
				Details:  fmt.Sprintf("metric %q does not appear in the original resume and matches a fabrication pattern", metric.Value),
			})
		}
	}
}

func isSuspiciousValue(metric types.Metric) bool {
	value := strings.TrimSpace(metric.Value)
	for _, pattern := range suspiciousValuePatterns {
		if pattern.MatchString(value) {
			return true
		}
	}

	if metric.Type == types.MetricPercentage {
		number, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		if err == nil && (number >= 90 || number == 50 || number == 100) {
			return true
		}
	}

	return isRoundNumber(extraction.NormalizeValue(leadingValuePattern.FindString(value)))
}

// isRoundNumber reports whether the value is 1000, 5000, 10000 or a larger
// power-of-ten multiple of those.
func isRoundNumber(normalized string) bool {
	number, err := strconv.ParseFloat(normalized, 64)
	if err != nil || number < 1000 {
		return false
	}
	for base := 1000.0; base <= number; base *= 10 {
		if number == base || number == 5*base {
			return true
		}
	}
	return false
}

// auditExperienceClaims flags any years-of-experience claim that grew during
// optimization. Inflating tenure is never acceptable, whatever the score.
func auditExperienceClaims(report *types.AuthenticityReport, original, optimized types.ResumeDocument) {
	origMax := maxYearsClaimed(original)
	optMax := maxYearsClaimed(optimized)

	if optMax > origMax {
		report.Issues = append(report.Issues, types.AuthenticityIssue{
			Category: types.IssueMetricFabrication,
			Severity: types.SeverityCritical,
			Details:  fmt.Sprintf("experience claim grew from %d to %d years", origMax, optMax),
		})
	}
}

func maxYearsClaimed(doc types.ResumeDocument) int {
	text := doc.Summary + "\n" + strings.Join(doc.AllBullets(), "\n")
	maxYears := 0
	for _, match := range yearsClaimPattern.FindAllStringSubmatch(text, -1) {
		years, err := strconv.Atoi(match[1])
		if err == nil && years > maxYears {
			maxYears = years
		}
	}
	return maxYears
}
