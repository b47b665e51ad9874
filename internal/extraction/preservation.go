package extraction

import (
	"strconv"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// PreservationRate returns the fraction of the original text's metrics that
// reappear in the rewritten text, verbatim or after normalization. A text
// with no metrics is vacuously fully preserved and returns 1.
func PreservationRate(originalText, rewrittenText string) float64 {
	original := Extract(originalText)
	if !original.HasQuantification {
		return 1
	}

	rewritten := Extract(rewrittenText)
	preserved := 0
	for _, metric := range original.Metrics {
		if metricPreserved(metric.Value, rewrittenText, rewritten) {
			preserved++
		}
	}

	return float64(preserved) / float64(len(original.Metrics))
}

func metricPreserved(value, rewrittenText string, rewritten types.MetricExtraction) bool {
	if strings.Contains(rewrittenText, value) {
		return true
	}
	normalized := NormalizeValue(value)
	for _, m := range rewritten.Metrics {
		if NormalizeValue(m.Value) == normalized {
			return true
		}
	}
	return false
}

// ValuesEquivalent reports whether two metric values are numerically within
// the given relative tolerance after normalization. Non-numeric values only
// match exactly. Used by the document-wide audit, which allows ±10% variance.
func ValuesEquivalent(a, b string, tolerance float64) bool {
	na := NormalizeValue(a)
	nb := NormalizeValue(b)
	if na == nb {
		return true
	}

	fa, okA := parseNumeric(na)
	fb, okB := parseNumeric(nb)
	if !okA || !okB {
		return false
	}
	// Percent and non-percent values never compare equal.
	if strings.HasSuffix(na, "%") != strings.HasSuffix(nb, "%") {
		return false
	}
	if fa == 0 || fb == 0 {
		return fa == fb
	}

	diff := fa - fb
	if diff < 0 {
		diff = -diff
	}
	return diff/fa <= tolerance
}

func parseNumeric(normalized string) (float64, bool) {
	trimmed := strings.TrimSuffix(normalized, "%")
	var digits strings.Builder
	for _, r := range trimmed {
		if (r >= '0' && r <= '9') || r == '.' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(digits.String(), 64)
	return f, err == nil
}
