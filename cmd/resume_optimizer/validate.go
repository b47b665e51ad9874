package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/schemas"
)

var validateCommand = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume JSON file against the document schema",
	RunE:  runValidateCmd,
}

var validateResumePath string

func init() {
	validateCommand.Flags().StringVarP(&validateResumePath, "resume", "r", "", "Path to resume JSON file (required)")

	_ = validateCommand.MarkFlagRequired("resume")

	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(validateResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	if err := schemas.ValidateResumeJSON(data); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "resume is valid")
	return nil
}
