// Package pipeline provides the high-level orchestration for a resume
// optimization run: job-description analysis, matching, bullet rewriting,
// application, ATS simulation, the authenticity audit and final scoring, in
// that order. Data flows strictly downward; the only loop is the bounded
// retry inside the rewriter.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jonathan/resume-optimizer/internal/analysis"
	"github.com/jonathan/resume-optimizer/internal/applying"
	"github.com/jonathan/resume-optimizer/internal/ats"
	"github.com/jonathan/resume-optimizer/internal/authenticity"
	"github.com/jonathan/resume-optimizer/internal/cache"
	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/matching"
	"github.com/jonathan/resume-optimizer/internal/rewriting"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Optimizer runs the optimization pipeline. It holds no per-run state, so a
// single Optimizer is safe for concurrent use.
type Optimizer struct {
	cfg    config.Config
	cache  cache.Cache
	logger zerolog.Logger
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithCache attaches a result cache consulted before each run.
func WithCache(c cache.Cache) Option {
	return func(o *Optimizer) { o.cache = c }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Optimizer) { o.logger = logger }
}

// New returns an Optimizer using the given configuration.
func New(cfg config.Config, opts ...Option) *Optimizer {
	o := &Optimizer{
		cfg:    cfg,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Optimize runs the full pipeline for one resume against one job
// description. It never hard-fails on document content: sparse or malformed
// input degrades to empty analysis collections and best-effort rewrites. The
// caller's document is not mutated.
func (o *Optimizer) Optimize(ctx context.Context, resume types.ResumeDocument, jdText string) (*types.OptimizationResult, error) {
	key := cache.Key(resume, jdText)
	if cached := o.lookupCache(ctx, key); cached != nil {
		return cached, nil
	}

	start := time.Now()
	runID := uuid.New()
	logger := o.logger.With().Str("run_id", runID.String()).Logger()

	jdAnalysis := analysis.Analyze(jdText)
	logger.Debug().
		Str("role", string(jdAnalysis.RoleType)).
		Str("seniority", string(jdAnalysis.SeniorityLevel)).
		Int("requirements", len(jdAnalysis.Requirements)).
		Msg("job description analyzed")

	matches := matching.MatchRequirements(jdAnalysis.Requirements, resume)

	rewriter := rewriting.New(&jdAnalysis, o.cfg)
	rewrites := rewriter.RewriteAll(resume, matches)

	applier := applying.New(&jdAnalysis, o.cfg)
	optimized := applier.Apply(resume, rewrites)

	atsResult := ats.Simulate(optimized)
	authReport := authenticity.Audit(resume, optimized)

	breakdown := scoring.Score(scoring.Inputs{
		Analysis:     &jdAnalysis,
		Optimized:    optimized,
		Rewrites:     rewrites,
		ATS:          atsResult,
		Authenticity: authReport,
		Weights:      o.cfg.Weights,
		DensityMax:   o.cfg.Thresholds.KeywordDensityMax,
	})

	result := &types.OptimizationResult{
		RunID:          runID,
		Original:       resume.Clone(),
		Optimized:      optimized,
		Analysis:       jdAnalysis,
		Matches:        matches,
		Rewrites:       rewrites,
		ATS:            atsResult,
		Breakdown:      breakdown,
		FinalScore:     breakdown.TotalScore,
		Authenticity:   authReport,
		Warnings:       authReport.Warnings,
		ProcessingTime: time.Since(start),
	}

	logger.Info().
		Int("final_score", result.FinalScore).
		Int("rewrites", len(rewrites)).
		Bool("authentic", authReport.IsValid).
		Dur("elapsed", result.ProcessingTime).
		Msg("optimization complete")

	o.storeCache(ctx, key, result)
	return result, nil
}

func (o *Optimizer) lookupCache(ctx context.Context, key string) *types.OptimizationResult {
	if o.cache == nil {
		return nil
	}
	result, err := o.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			o.logger.Warn().Err(err).Msg("cache lookup failed, recomputing")
		}
		return nil
	}
	result.FromCache = true
	return result
}

func (o *Optimizer) storeCache(ctx context.Context, key string, result *types.OptimizationResult) {
	if o.cache == nil {
		return
	}
	if err := o.cache.Set(ctx, key, result); err != nil {
		o.logger.Warn().Err(err).Msg("cache store failed")
	}
}
