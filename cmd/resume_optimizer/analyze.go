package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/analysis"
	"github.com/jonathan/resume-optimizer/internal/observability"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description without optimizing anything",
	Long:  "Extracts role, seniority, requirements and skills from a job description and prints the structured analysis.",
	RunE:  runAnalyzeCmd,
}

var (
	analyzeJDPath  string
	analyzeVerbose bool
)

func init() {
	analyzeCommand.Flags().StringVarP(&analyzeJDPath, "jd", "j", "", "Path to job description text file (required)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a human-readable summary alongside the JSON")

	_ = analyzeCommand.MarkFlagRequired("jd")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(_ *cobra.Command, _ []string) error {
	jdData, err := os.ReadFile(analyzeJDPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	result := analysis.Analyze(string(jdData))

	if analyzeVerbose {
		observability.NewPrinter(os.Stderr).PrintAnalysis(&result)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
