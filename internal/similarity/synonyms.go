package similarity

import (
	"strings"
	"unicode"
)

// SynonymEntry describes a canonical term in the synonym dictionary.
type SynonymEntry struct {
	Canonical  string
	Synonyms   []string
	Category   string
	Confidence float64
	Importance float64
}

// synonymClusters maps canonical terms to their curated synonyms. The map is
// intentionally small and versionable; it is tuned data, not code.
var synonymClusters = map[string]SynonymEntry{
	"javascript": {
		Canonical:  "javascript",
		Synonyms:   []string{"js", "ecmascript", "node.js", "nodejs"},
		Category:   BucketLanguage,
		Confidence: 0.9,
		Importance: 0.9,
	},
	"typescript": {
		Canonical:  "typescript",
		Synonyms:   []string{"ts"},
		Category:   BucketLanguage,
		Confidence: 0.9,
		Importance: 0.8,
	},
	"golang": {
		Canonical:  "golang",
		Synonyms:   []string{"go"},
		Category:   BucketLanguage,
		Confidence: 0.9,
		Importance: 0.8,
	},
	"postgresql": {
		Canonical:  "postgresql",
		Synonyms:   []string{"postgres", "psql", "pgsql"},
		Category:   BucketDatabase,
		Confidence: 0.9,
		Importance: 0.8,
	},
	"kubernetes": {
		Canonical:  "kubernetes",
		Synonyms:   []string{"k8s", "kube"},
		Category:   BucketDevOps,
		Confidence: 0.9,
		Importance: 0.85,
	},
	"amazon web services": {
		Canonical:  "amazon web services",
		Synonyms:   []string{"aws"},
		Category:   BucketCloud,
		Confidence: 0.95,
		Importance: 0.9,
	},
	"google cloud platform": {
		Canonical:  "google cloud platform",
		Synonyms:   []string{"gcp", "google cloud"},
		Category:   BucketCloud,
		Confidence: 0.95,
		Importance: 0.85,
	},
	"machine learning": {
		Canonical:  "machine learning",
		Synonyms:   []string{"ml"},
		Category:   BucketDataML,
		Confidence: 0.85,
		Importance: 0.85,
	},
	"artificial intelligence": {
		Canonical:  "artificial intelligence",
		Synonyms:   []string{"ai"},
		Category:   BucketDataML,
		Confidence: 0.85,
		Importance: 0.8,
	},
	"continuous integration": {
		Canonical:  "continuous integration",
		Synonyms:   []string{"ci", "ci/cd", "continuous delivery", "continuous deployment"},
		Category:   BucketDevOps,
		Confidence: 0.85,
		Importance: 0.75,
	},
	"user interface": {
		Canonical:  "user interface",
		Synonyms:   []string{"ui", "ux", "user experience"},
		Category:   BucketFrontend,
		Confidence: 0.8,
		Importance: 0.6,
	},
	"database": {
		Canonical:  "database",
		Synonyms:   []string{"db", "databases", "rdbms"},
		Category:   BucketDatabase,
		Confidence: 0.8,
		Importance: 0.7,
	},
	"api": {
		Canonical:  "api",
		Synonyms:   []string{"apis", "rest api", "restful", "web service", "web services"},
		Category:   BucketBackend,
		Confidence: 0.85,
		Importance: 0.8,
	},
	"microservices": {
		Canonical:  "microservices",
		Synonyms:   []string{"microservice", "micro-services", "service oriented architecture", "soa"},
		Category:   BucketBackend,
		Confidence: 0.85,
		Importance: 0.8,
	},
}

// synonymIndex maps every term (canonical and synonym) to its canonical key.
var synonymIndex = func() map[string]string {
	index := make(map[string]string)
	for canonical, entry := range synonymClusters {
		index[canonical] = canonical
		for _, syn := range entry.Synonyms {
			index[strings.ToLower(syn)] = canonical
		}
	}
	return index
}()

// LookupSynonym returns the dictionary entry a term belongs to, matching both
// canonical terms and synonyms, case-insensitive.
func LookupSynonym(term string) (SynonymEntry, bool) {
	canonical, ok := synonymIndex[strings.ToLower(strings.TrimSpace(term))]
	if !ok {
		return SynonymEntry{}, false
	}
	return synonymClusters[canonical], true
}

// AreSynonyms reports whether two terms resolve to the same synonym cluster,
// along with the cluster's confidence when they do.
func AreSynonyms(a, b string) (float64, bool) {
	ca, okA := synonymIndex[strings.ToLower(strings.TrimSpace(a))]
	cb, okB := synonymIndex[strings.ToLower(strings.TrimSpace(b))]
	if !okA || !okB || ca != cb {
		return 0, false
	}
	return synonymClusters[ca].Confidence, true
}

// ExpandTerm returns all known equivalent forms for a term. For dictionary
// terms this is the cluster; otherwise it is a deterministic set of
// orthographic candidates (kebab/snake/camel/Pascal case, acronym, slash and
// dot notation) for lexical comparison downstream. No network, no model.
func ExpandTerm(term string) []string {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	if entry, ok := LookupSynonym(term); ok {
		forms := append([]string{entry.Canonical}, entry.Synonyms...)
		return dedupe(forms)
	}

	return dedupe(orthographicVariants(term))
}

// orthographicVariants generates candidate spellings for a multi-word term.
// Single-word terms only vary by case, which lexical comparison already
// normalizes, so they return just themselves.
func orthographicVariants(term string) []string {
	words := strings.FieldsFunc(term, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '/' || r == '.'
	})
	if len(words) < 2 {
		return []string{term}
	}

	lower := make([]string, len(words))
	title := make([]string, len(words))
	initials := make([]byte, 0, len(words))
	for i, w := range words {
		lower[i] = strings.ToLower(w)
		title[i] = capitalize(w)
		initials = append(initials, lower[i][0])
	}

	variants := []string{
		term,
		strings.Join(lower, " "),
		strings.Join(lower, "-"), // kebab-case
		strings.Join(lower, "_"), // snake_case
		strings.Join(lower, "/"), // slash notation
		strings.Join(lower, "."), // dot notation
		strings.Join(lower, ""),
		strings.Join(title, ""),                    // PascalCase
		lower[0] + strings.Join(title[1:], ""),     // camelCase
		strings.ToUpper(string(initials)),          // acronym
	}

	return variants
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
