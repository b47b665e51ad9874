// Package config provides the optimizer's tunable configuration: validation
// thresholds, scoring weights and the rewriter's verb matrix. Tables are
// versionable data with built-in defaults and optional JSON file overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

// Thresholds holds the per-bullet validation thresholds. The defaults are
// what the six checks are tuned to; override with care.
type Thresholds struct {
	SemanticSimilarity float64 `json:"semantic_similarity" validate:"gte=0,lte=1"`
	MetricPreservation float64 `json:"metric_preservation" validate:"gte=0,lte=1"`
	KeywordDensityMax  float64 `json:"keyword_density_max" validate:"gt=0,lte=1"`
	Readability        float64 `json:"readability" validate:"gte=0,lte=100"`
	ApplyFloor         float64 `json:"apply_floor" validate:"gte=0,lte=1"`
}

// Weights holds the scoring aggregator's dimension weights. They must sum
// to 1.
type Weights struct {
	SemanticAlignment  float64 `json:"semantic_alignment" validate:"gte=0,lte=1"`
	SkillMatch         float64 `json:"skill_match" validate:"gte=0,lte=1"`
	MetricPreservation float64 `json:"metric_preservation" validate:"gte=0,lte=1"`
	ActionVerbStrength float64 `json:"action_verb_strength" validate:"gte=0,lte=1"`
	ATSReadability     float64 `json:"ats_readability" validate:"gte=0,lte=1"`
	KeywordDensity     float64 `json:"keyword_density" validate:"gte=0,lte=1"`
}

// Config holds everything tunable about one optimizer instance.
type Config struct {
	Thresholds  Thresholds    `json:"thresholds"`
	Weights     Weights       `json:"weights"`
	VerbMatrix  VerbMatrix    `json:"verb_matrix,omitempty"`
	MaxAttempts int           `json:"max_attempts" validate:"gte=1,lte=10"`
	MaxWords    int           `json:"max_words" validate:"gte=10,lte=60"`
	CacheTTL    time.Duration `json:"cache_ttl,omitempty"`
}

// DefaultCacheTTL is how long cached optimization results stay fresh.
const DefaultCacheTTL = 24 * time.Hour

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Thresholds: Thresholds{
			SemanticSimilarity: 0.70,
			MetricPreservation: 0.90,
			KeywordDensityMax:  0.08,
			Readability:        60,
			ApplyFloor:         0.50,
		},
		Weights: Weights{
			SemanticAlignment:  0.35,
			SkillMatch:         0.25,
			MetricPreservation: 0.15,
			ActionVerbStrength: 0.10,
			ATSReadability:     0.10,
			KeywordDensity:     0.05,
		},
		VerbMatrix:  defaultVerbMatrix(),
		MaxAttempts: 3,
		MaxWords:    25,
		CacheTTL:    DefaultCacheTTL,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a JSON overrides file and merges it over the defaults. Zero
// fields in the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var overrides Config
	if err := json.Unmarshal(data, &overrides); err != nil {
		return cfg, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg = mergeConfig(cfg, overrides)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks threshold and weight ranges, and that the weights sum to 1.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	sum := c.Weights.SemanticAlignment + c.Weights.SkillMatch + c.Weights.MetricPreservation +
		c.Weights.ActionVerbStrength + c.Weights.ATSReadability + c.Weights.KeywordDensity
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("config error: scoring weights must sum to 1, got %.3f", sum)
	}

	return nil
}

func mergeConfig(base, overrides Config) Config {
	out := base

	if overrides.Thresholds != (Thresholds{}) {
		out.Thresholds = mergeThresholds(base.Thresholds, overrides.Thresholds)
	}
	if overrides.Weights != (Weights{}) {
		out.Weights = overrides.Weights
	}
	if len(overrides.VerbMatrix) > 0 {
		out.VerbMatrix = overrides.VerbMatrix
	}
	if overrides.MaxAttempts != 0 {
		out.MaxAttempts = overrides.MaxAttempts
	}
	if overrides.MaxWords != 0 {
		out.MaxWords = overrides.MaxWords
	}
	if overrides.CacheTTL != 0 {
		out.CacheTTL = overrides.CacheTTL
	}

	return out
}

func mergeThresholds(base, overrides Thresholds) Thresholds {
	out := base
	if overrides.SemanticSimilarity != 0 {
		out.SemanticSimilarity = overrides.SemanticSimilarity
	}
	if overrides.MetricPreservation != 0 {
		out.MetricPreservation = overrides.MetricPreservation
	}
	if overrides.KeywordDensityMax != 0 {
		out.KeywordDensityMax = overrides.KeywordDensityMax
	}
	if overrides.Readability != 0 {
		out.Readability = overrides.Readability
	}
	if overrides.ApplyFloor != 0 {
		out.ApplyFloor = overrides.ApplyFloor
	}
	return out
}
