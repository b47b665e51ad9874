package analysis

import (
	"regexp"
	"strconv"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// seniorityKeyword pairs a seniority level with its title regex. Checked in
// fixed priority order: an explicit "Principal" in the title outranks a
// "Senior" elsewhere in the text.
type seniorityKeyword struct {
	level   types.SeniorityLevel
	pattern *regexp.Regexp
}

var seniorityKeywords = []seniorityKeyword{
	{types.SeniorityPrincipal, regexp.MustCompile(`(?i)\bprincipal\b|\bstaff engineer\b|\bdistinguished\b`)},
	{types.SeniorityLead, regexp.MustCompile(`(?i)\blead\b|\btech lead\b|\bengineering manager\b|\bhead of\b`)},
	{types.SenioritySenior, regexp.MustCompile(`(?i)\bsenior\b|\bsr\.?\s`)},
	{types.SeniorityJunior, regexp.MustCompile(`(?i)\bjunior\b|\bjr\.?\s|\bentry[- ]level\b|\bgraduate\b|\bintern(ship)?\b`)},
}

var yearsPattern = regexp.MustCompile(`(?i)(\d{1,2})\s*\+?\s*years?`)

// Years-of-experience buckets used when no title keyword matches.
const (
	leadYearsThreshold   = 8
	seniorYearsThreshold = 5
	midYearsThreshold    = 2
)

// ClassifySeniority classifies the seniority level a job description targets.
// Explicit title keywords win; otherwise the largest "N+ years" figure is
// bucketed. With no signal at all the default is mid-level.
func ClassifySeniority(jdText string) types.SeniorityLevel {
	for _, sk := range seniorityKeywords {
		if sk.pattern.MatchString(jdText) {
			return sk.level
		}
	}

	if years, ok := maxYearsMentioned(jdText); ok {
		switch {
		case years >= leadYearsThreshold:
			return types.SeniorityLead
		case years >= seniorYearsThreshold:
			return types.SenioritySenior
		case years >= midYearsThreshold:
			return types.SeniorityMid
		default:
			return types.SeniorityJunior
		}
	}

	return types.SeniorityMid
}

// maxYearsMentioned returns the largest "N years" figure in the text. JDs
// often mention several ("5+ years backend, 2+ years cloud"); the largest one
// is the strongest seniority signal.
func maxYearsMentioned(text string) (int, bool) {
	matches := yearsPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	maxYears := 0
	for _, m := range matches {
		if years, err := strconv.Atoi(m[1]); err == nil && years > maxYears {
			maxYears = years
		}
	}
	return maxYears, true
}
