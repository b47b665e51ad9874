// Package similarity provides lexical similarity scoring, synonym lookup and
// keyword expansion for matching resume content against job descriptions.
package similarity

import (
	"regexp"
	"strings"
)

// Vocabulary buckets for coarse keyword classification.
const (
	BucketLanguage  = "Programming Language"
	BucketFrontend  = "Frontend Framework"
	BucketBackend   = "Backend Framework"
	BucketCloud     = "Cloud Platform"
	BucketDevOps    = "DevOps Tool"
	BucketDatabase  = "Database"
	BucketDataML    = "Data/ML"
	BucketGeneral   = "General"
)

// technicalVocabulary is the fixed technical-term vocabulary shared by the JD
// analyzer and the similarity engine. Keeping a single vocabulary keeps
// keyword extraction consistent across both consumers.
var technicalVocabulary = map[string]string{
	// Languages
	"go": BucketLanguage, "golang": BucketLanguage, "python": BucketLanguage,
	"java": BucketLanguage, "javascript": BucketLanguage, "typescript": BucketLanguage,
	"ruby": BucketLanguage, "rust": BucketLanguage, "kotlin": BucketLanguage,
	"swift": BucketLanguage, "c++": BucketLanguage, "c#": BucketLanguage,
	"php": BucketLanguage, "scala": BucketLanguage, "sql": BucketLanguage,
	"js": BucketLanguage, "ts": BucketLanguage,

	// Frontend
	"react": BucketFrontend, "angular": BucketFrontend, "vue": BucketFrontend,
	"svelte": BucketFrontend, "next.js": BucketFrontend, "html": BucketFrontend,
	"css": BucketFrontend, "tailwind": BucketFrontend, "redux": BucketFrontend,

	// Backend
	"node.js": BucketBackend, "express": BucketBackend, "django": BucketBackend,
	"flask": BucketBackend, "spring": BucketBackend, "rails": BucketBackend,
	"fastapi": BucketBackend, "graphql": BucketBackend, "grpc": BucketBackend,
	"rest": BucketBackend, "microservices": BucketBackend,

	// Cloud
	"aws": BucketCloud, "azure": BucketCloud, "gcp": BucketCloud,
	"lambda": BucketCloud, "s3": BucketCloud, "ec2": BucketCloud,
	"cloudformation": BucketCloud, "serverless": BucketCloud,

	// DevOps
	"docker": BucketDevOps, "kubernetes": BucketDevOps, "k8s": BucketDevOps,
	"terraform": BucketDevOps,
	"jenkins": BucketDevOps, "ansible": BucketDevOps, "ci/cd": BucketDevOps,
	"git": BucketDevOps, "github actions": BucketDevOps, "prometheus": BucketDevOps,
	"grafana": BucketDevOps, "helm": BucketDevOps, "nginx": BucketDevOps,

	// Databases
	"postgresql": BucketDatabase, "postgres": BucketDatabase, "mysql": BucketDatabase,
	"mongodb": BucketDatabase, "redis": BucketDatabase, "elasticsearch": BucketDatabase,
	"dynamodb": BucketDatabase, "cassandra": BucketDatabase, "sqlite": BucketDatabase,
	"oracle": BucketDatabase,

	// Data / ML
	"spark": BucketDataML, "hadoop": BucketDataML, "kafka": BucketDataML,
	"airflow": BucketDataML, "pandas": BucketDataML, "numpy": BucketDataML,
	"tensorflow": BucketDataML, "pytorch": BucketDataML, "scikit-learn": BucketDataML,
	"machine learning": BucketDataML, "deep learning": BucketDataML, "nlp": BucketDataML,
	"etl": BucketDataML, "data pipeline": BucketDataML,
}

// multiWordTerms are vocabulary entries that span more than one token, checked
// by substring before single-token matching.
var multiWordTerms = func() []string {
	var terms []string
	for term := range technicalVocabulary {
		if strings.ContainsAny(term, " /") {
			terms = append(terms, term)
		}
	}
	return terms
}()

var tokenPattern = regexp.MustCompile(`[a-zA-Z0-9#+./-]+`)

// Tokenize lowercases text and splits it into word tokens. Punctuation that
// is meaningful in tech terms (#, +, ., /, -) is kept inside tokens.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// ExtractKeywords returns the technical-vocabulary terms present in text,
// deduplicated, in first-seen order.
func ExtractKeywords(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var keywords []string

	add := func(term string) {
		if !seen[term] {
			seen[term] = true
			keywords = append(keywords, term)
		}
	}

	for _, term := range multiWordTerms {
		if strings.Contains(lower, term) {
			add(term)
		}
	}
	for _, token := range Tokenize(text) {
		token = strings.Trim(token, ".-/")
		if _, ok := technicalVocabulary[token]; ok {
			add(token)
		}
	}

	return keywords
}

// Bucket returns the coarse vocabulary bucket for a term, or BucketGeneral
// when the term is not in the vocabulary.
func Bucket(term string) string {
	if bucket, ok := technicalVocabulary[strings.ToLower(term)]; ok {
		return bucket
	}
	return BucketGeneral
}

// IsTechnicalTerm reports whether a term is in the fixed vocabulary.
func IsTechnicalTerm(term string) bool {
	_, ok := technicalVocabulary[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

// KeywordDensity returns the fraction of words in text that match any of the
// given keywords. Multi-word keywords count every word they cover, matched by
// substring the same way ExtractKeywords finds them. An empty keyword list or
// empty text yields 0. The result is always within [0,1].
func KeywordDensity(text string, keywords []string) float64 {
	words := Tokenize(text)
	if len(words) == 0 || len(keywords) == 0 {
		return 0
	}

	lower := strings.ToLower(text)
	keywordSet := make(map[string]bool, len(keywords))
	matches := 0
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if strings.ContainsAny(kw, " /") {
			matches += strings.Count(lower, kw) * len(Tokenize(kw))
			continue
		}
		keywordSet[kw] = true
	}

	for _, word := range words {
		if keywordSet[strings.Trim(word, ".-/")] || keywordSet[word] {
			matches++
		}
	}
	if matches > len(words) {
		matches = len(words)
	}

	return float64(matches) / float64(len(words))
}

// TermFrequency returns the number of whole-word occurrences of term in text,
// case-insensitive. Multi-word terms are counted by substring occurrence.
func TermFrequency(text, term string) int {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return 0
	}
	if strings.ContainsAny(term, " /") {
		return strings.Count(strings.ToLower(text), term)
	}
	count := 0
	for _, token := range Tokenize(text) {
		if token == term || strings.Trim(token, ".-/") == term {
			count++
		}
	}
	return count
}
