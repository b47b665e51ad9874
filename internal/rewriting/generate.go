package rewriting

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-optimizer/internal/config"
)

// generateOptions steers one generation attempt. Retries mutate these based
// on the prior attempt's failure reasons.
type generateOptions struct {
	verb          string // matrix verb to open with
	insertKeyword string // at most one missing keyword, empty to skip
	maxWords      int
}

// generate produces one candidate rewrite: the weak opener is replaced with a
// strong matrix verb, at most one missing keyword is spliced in via a simple
// template, metrics ride along untouched in the remainder, and the result is
// clamped to the word limit.
func generate(original string, opts generateOptions) string {
	rest, hadWeakOpener := stripWeakOpener(original)

	var candidate string
	switch {
	case hadWeakOpener:
		candidate = opts.verb + " " + lowerFirst(rest)
	case startsWithUpperVerb(original):
		// Already opens with some verb; keep the body and swap the opener.
		words := strings.Fields(original)
		candidate = opts.verb + " " + strings.Join(words[1:], " ")
	default:
		candidate = opts.verb + " " + lowerFirst(original)
	}

	if opts.insertKeyword != "" {
		candidate = spliceKeyword(candidate, opts.insertKeyword)
	}

	return clampWords(candidate, opts.maxWords)
}

// stripWeakOpener removes a leading weak opener phrase ("worked on", "was
// responsible for", ...). A leading "I" is dropped first.
func stripWeakOpener(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "i ") {
		trimmed = strings.TrimSpace(trimmed[2:])
		lower = strings.ToLower(trimmed)
	}

	for _, opener := range config.WeakOpeners {
		if strings.HasPrefix(lower, opener) {
			rest := strings.TrimSpace(trimmed[len(opener):])
			if rest != "" {
				return rest, true
			}
		}
	}
	return trimmed, false
}

// startsWithUpperVerb is a cheap check for bullets that already open with a
// capitalized past-tense verb ("Reduced latency...").
func startsWithUpperVerb(text string) bool {
	words := strings.Fields(text)
	if len(words) == 0 {
		return false
	}
	first := words[0]
	if first == "" || !unicode.IsUpper(rune(first[0])) {
		return false
	}
	return strings.HasSuffix(strings.ToLower(first), "ed")
}

// spliceKeyword appends one keyword using a simple template. "using" is
// preferred; if the text already says "using", fall back to "with".
func spliceKeyword(text, keyword string) string {
	connector := "using"
	if strings.Contains(strings.ToLower(text), "using") {
		connector = "with"
	}

	trimmed := strings.TrimRight(strings.TrimSpace(text), ".")
	return trimmed + " " + connector + " " + keyword
}

func clampWords(text string, maxWords int) string {
	words := strings.Fields(text)
	if maxWords <= 0 || len(words) <= maxWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:maxWords], " ")
}

func lowerFirst(text string) string {
	if text == "" {
		return text
	}
	runes := []rune(text)
	// Keep acronyms like "AWS" intact.
	if len(runes) > 1 && unicode.IsUpper(runes[0]) && unicode.IsUpper(runes[1]) {
		return text
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
