package similarity

import (
	"strings"
)

// Synonym-cluster matches score in this band; exact matches score 1.0. These
// values sit above the relevant-match threshold so a recognized synonym pair
// always counts as a relevant match.
const (
	synonymScoreBase = 0.85
	synonymScoreMax  = 0.90

	// editDistanceWeight discounts raw edit-distance similarity when it is
	// blended with Jaccard overlap.
	editDistanceWeight = 0.7
)

// Score returns the lexical similarity of two texts in [0,1].
//
// The algorithm is deliberately heuristic, not embedding-based:
//  1. exact match (after whitespace/case normalization) scores 1.0;
//  2. texts whose normalized forms share a synonym cluster score 0.85-0.90;
//  3. otherwise the score is max(jaccard, editSimilarity*0.7) where jaccard
//     is computed over extracted keyword sets (falling back to word tokens
//     when neither text contains vocabulary terms).
//
// Downstream match thresholds (0.70 relevant, 0.50 partial) are tuned to
// this scale.
func Score(text1, text2 string) float64 {
	a := normalize(text1)
	b := normalize(text2)

	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}

	if confidence, ok := AreSynonyms(a, b); ok {
		// Scale the synonym band by cluster confidence.
		score := synonymScoreBase + (synonymScoreMax-synonymScoreBase)*confidence
		return score
	}

	jaccard := jaccardSimilarity(a, b)
	edit := editSimilarity(a, b) * editDistanceWeight

	if jaccard > edit {
		return jaccard
	}
	return edit
}

func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// jaccardSimilarity computes |A∩B| / |A∪B| over keyword sets. Synonym
// clusters are collapsed to their canonical form first so "js" and
// "javascript" land in the same set element.
func jaccardSimilarity(a, b string) float64 {
	setA := keywordSet(a)
	setB := keywordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for term := range setA {
		if setB[term] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// keywordSet extracts the vocabulary terms in text, canonicalized through the
// synonym index. When the text has no vocabulary terms at all, plain word
// tokens are used so short free-text phrases still compare meaningfully.
func keywordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, kw := range ExtractKeywords(text) {
		set[canonicalTerm(kw)] = true
	}
	if len(set) > 0 {
		return set
	}
	for _, token := range Tokenize(text) {
		if len(token) > 2 && !stopWords[token] {
			set[canonicalTerm(token)] = true
		}
	}
	return set
}

func canonicalTerm(term string) string {
	if canonical, ok := synonymIndex[term]; ok {
		return canonical
	}
	return term
}

// stopWords are ignored when falling back to token sets.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "was": true, "were": true, "are": true,
	"has": true, "have": true, "had": true, "will": true, "would": true,
	"our": true, "your": true, "their": true, "using": true, "used": true,
}

// editSimilarity returns 1 - levenshtein(a,b)/max(len(a),len(b)).
func editSimilarity(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(levenshtein(a, b))/float64(maxLen)
}

// levenshtein computes edit distance with a two-row rolling buffer to keep
// memory bounded on long bullets.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
