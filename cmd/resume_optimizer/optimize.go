package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/cache"
	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/pipeline"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

var optimizeCommand = &cobra.Command{
	Use:   "optimize",
	Short: "Optimize a resume against a job description",
	Long: `Runs the full optimization pipeline: JD analysis -> requirement matching ->
bullet rewriting -> skills augmentation -> ATS simulation -> authenticity audit -> scoring.

The resume is a JSON file matching the document schema; the job description is plain text.`,
	RunE: runOptimizeCmd,
}

var (
	optimizeResumePath string
	optimizeJDPath     string
	optimizeConfigPath string
	optimizeOutputPath string
	optimizeRedisAddr  string
	optimizeVerbose    bool
)

func init() {
	optimizeCommand.Flags().StringVarP(&optimizeResumePath, "resume", "r", "", "Path to resume JSON file (required)")
	optimizeCommand.Flags().StringVarP(&optimizeJDPath, "jd", "j", "", "Path to job description text file (required)")
	optimizeCommand.Flags().StringVar(&optimizeConfigPath, "config", "", "Path to config JSON overrides")
	optimizeCommand.Flags().StringVarP(&optimizeOutputPath, "output", "o", "", "Write the full result JSON to this path (default: stdout)")
	optimizeCommand.Flags().StringVar(&optimizeRedisAddr, "redis", "", "Redis address for the shared result cache (default: in-process cache)")
	optimizeCommand.Flags().BoolVarP(&optimizeVerbose, "verbose", "v", false, "Print detailed progress information")

	_ = optimizeCommand.MarkFlagRequired("resume")
	_ = optimizeCommand.MarkFlagRequired("jd")

	rootCmd.AddCommand(optimizeCommand)
}

func runOptimizeCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	resume, err := loadResume(optimizeResumePath)
	if err != nil {
		return err
	}

	jdData, err := os.ReadFile(optimizeJDPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	cfg, err := config.Load(optimizeConfigPath)
	if err != nil {
		return err
	}

	logger := newLogger(optimizeVerbose)

	store, err := newCache(cfg)
	if err != nil {
		return err
	}

	optimizer := pipeline.New(cfg,
		pipeline.WithCache(store),
		pipeline.WithLogger(logger),
	)

	result, err := optimizer.Optimize(ctx, resume, string(jdData))
	if err != nil {
		return err
	}

	if optimizeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintAnalysis(&result.Analysis)
		printer.PrintMatches(result.Matches)
		printer.PrintRewrites(result.Rewrites)
		printer.PrintAuthenticityIssues(&result.Authenticity)
		printer.PrintScore(result)
	}

	return writeResult(result, optimizeOutputPath)
}

func loadResume(path string) (types.ResumeDocument, error) {
	var resume types.ResumeDocument

	data, err := os.ReadFile(path)
	if err != nil {
		return resume, fmt.Errorf("failed to read resume: %w", err)
	}
	if err := schemas.ValidateResumeJSON(data); err != nil {
		return resume, err
	}
	if err := json.Unmarshal(data, &resume); err != nil {
		return resume, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return resume, nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func newCache(cfg config.Config) (cache.Cache, error) {
	if optimizeRedisAddr == "" {
		return cache.NewMemory(cfg.CacheTTL), nil
	}
	client := redis.NewClient(&redis.Options{Addr: optimizeRedisAddr})
	return cache.NewRedis(client, cfg.CacheTTL)
}

func writeResult(result *types.OptimizationResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
