// Package extraction scans resume bullets for quantifiable facts (percentages,
// currency, counts, durations) so they can be protected during rewriting.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// contextWindow is the number of characters captured around each match, for
// diagnostics only.
const contextWindow = 20

type metricPattern struct {
	metricType types.MetricType
	pattern    *regexp.Regexp
}

// metricPatterns are applied in order; spans claimed by an earlier pattern
// are not re-matched by a later one, so "$2M" is currency, not a bare number.
var metricPatterns = []metricPattern{
	{types.MetricPercentage, regexp.MustCompile(`\d+(?:\.\d+)?\s*%`)},
	{types.MetricCurrency, regexp.MustCompile(`[$€£]\s*\d+(?:[.,]\d+)*\s*[KMBkmb]?\b|\d+(?:[.,]\d+)*\s*[KMB]?\s*(?:dollars|USD|EUR|GBP)`)},
	{types.MetricTimeframe, regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*(?:days?|weeks?|months?|years?|hours?|minutes?)\b`)},
	{types.MetricNumber, regexp.MustCompile(`(?i)\d+(?:[.,]\d+)*\s*[KMB]?\+?\s*(?:users?|requests?|customers?|clients?|transactions?|records?|queries|qps|rps|engineers?|people|teams?|services?|endpoints?|servers?|nodes?)\b`)},
	{types.MetricScale, regexp.MustCompile(`(?i)\b\d+(?:[.,]\d+)*\s*[KMBx]\b|\b\d{3,}\b`)},
}

// Extract scans one bullet for typed metrics. A bullet with no matches has
// HasQuantification=false and is vacuously preserved under any rewrite.
func Extract(bulletText string) types.MetricExtraction {
	extraction := types.MetricExtraction{BulletText: bulletText}

	claimed := make([]bool, len(bulletText))
	for _, mp := range metricPatterns {
		for _, loc := range mp.pattern.FindAllStringIndex(bulletText, -1) {
			if spanClaimed(claimed, loc[0], loc[1]) {
				continue
			}
			markClaimed(claimed, loc[0], loc[1])
			extraction.Metrics = append(extraction.Metrics, types.Metric{
				Value:   strings.TrimSpace(bulletText[loc[0]:loc[1]]),
				Type:    mp.metricType,
				Context: contextAround(bulletText, loc[0], loc[1]),
			})
		}
	}

	extraction.HasQuantification = len(extraction.Metrics) > 0
	return extraction
}

// ExtractAll runs Extract over every bullet.
func ExtractAll(bullets []string) []types.MetricExtraction {
	extractions := make([]types.MetricExtraction, len(bullets))
	for i, bullet := range bullets {
		extractions[i] = Extract(bullet)
	}
	return extractions
}

// NormalizeValue reduces a metric value to a canonical comparable form:
// lowercased, whitespace stripped, K/M/B suffixes expanded to digits, commas
// and currency symbols removed. "$1.5M" and "1,500,000 dollars" normalize to
// the same string.
func NormalizeValue(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	v = strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "", "dollars", "", "usd", "", "eur", "", "gbp", "").Replace(v)

	for suffix, zeros := range map[string]string{"k": "000", "m": "000000", "b": "000000000"} {
		if strings.HasSuffix(v, suffix) {
			base := strings.TrimSuffix(v, suffix)
			if dot := strings.Index(base, "."); dot >= 0 {
				// 1.5m -> 1500000: shift the decimal point.
				frac := base[dot+1:]
				base = base[:dot] + frac
				if len(frac) <= len(zeros) {
					v = base + zeros[len(frac):]
				} else {
					v = base
				}
			} else if base != "" && isDigits(base) {
				v = base + zeros
			}
			break
		}
	}

	return v
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func spanClaimed(claimed []bool, start, end int) bool {
	for i := start; i < end && i < len(claimed); i++ {
		if claimed[i] {
			return true
		}
	}
	return false
}

func markClaimed(claimed []bool, start, end int) {
	for i := start; i < end && i < len(claimed); i++ {
		claimed[i] = true
	}
}

func contextAround(text string, start, end int) string {
	from := start - contextWindow
	if from < 0 {
		from = 0
	}
	to := end + contextWindow
	if to > len(text) {
		to = len(text)
	}
	return text[from:to]
}
