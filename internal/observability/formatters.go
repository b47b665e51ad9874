// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of the analyzed job description.
func (p *Printer) PrintAnalysis(analysis *types.JDAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:      %s\n", analysis.RoleType))
	sb.WriteString(fmt.Sprintf("Seniority: %s\n", analysis.SeniorityLevel))
	sb.WriteString("\n")

	if len(analysis.HardSkills) > 0 {
		sb.WriteString("Hard Skills:\n")
		count := min(len(analysis.HardSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.HardSkills[i]))
		}
		if len(analysis.HardSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.HardSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(analysis.Requirements) > 0 {
		sb.WriteString(fmt.Sprintf("Requirements: %d extracted\n", len(analysis.Requirements)))
		critical := 0
		for _, req := range analysis.Requirements {
			if req.Priority == types.PriorityCritical {
				critical++
			}
		}
		sb.WriteString(fmt.Sprintf("  %d critical\n", critical))
	}

	p.printBox("JOB DESCRIPTION ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the top requirement-to-bullet matches with scores.
func (p *Printer) PrintMatches(matches []types.BulletMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total requirements matched: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches[i]
		text := match.Requirement.Text
		if len(text) > 45 {
			text = text[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, text))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (%s)\n", match.Score, match.MatchType))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(matches)-maxItemsToShow))
	}

	p.printBox("REQUIREMENT MATCHES", sb.String())
}

// PrintRewrites outputs the rewritten bullets with check indicators.
func (p *Printer) PrintRewrites(rewrites []types.RewrittenBullet) {
	if len(rewrites) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Rewrote %d bullets:\n\n", len(rewrites)))

	count := min(len(rewrites), maxItemsToShow)
	for i := 0; i < count; i++ {
		rw := rewrites[i]
		text := rw.Rewritten
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", text))

		checks := []string{}
		if rw.Validation.Check(types.CheckActionVerb).Passed {
			checks = append(checks, "✓verb")
		}
		if rw.MetricsPreserved {
			checks = append(checks, "✓metrics")
		}
		if rw.Validation.Check(types.CheckNoHallucination).Passed {
			checks = append(checks, "✓honest")
		}
		if rw.Validation.Check(types.CheckReadability).Passed {
			checks = append(checks, "✓readable")
		}
		if len(checks) > 0 {
			sb.WriteString(fmt.Sprintf("  [%s] (attempt %d)\n", strings.Join(checks, " "), rw.RetryCount+1))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(rewrites) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more bullets", len(rewrites)-maxItemsToShow))
	}

	p.printBox("REWRITTEN BULLETS", sb.String())
}

// PrintScore outputs the final score with its dimension breakdown.
func (p *Printer) PrintScore(result *types.OptimizationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Final Score: %d/100\n\n", result.FinalScore))

	for _, dim := range result.Breakdown.Dimensions {
		sb.WriteString(fmt.Sprintf("  %-22s %5.1f × %.2f\n", dim.Name, dim.Raw, dim.Weight))
	}

	if result.Breakdown.AuthenticityPenalty > 0 {
		sb.WriteString(fmt.Sprintf("\nAuthenticity penalty: -%d\n", result.Breakdown.AuthenticityPenalty))
	}
	sb.WriteString(fmt.Sprintf("\nATS parse score: %.0f\n", result.ATS.Score))

	p.printBox("OPTIMIZATION SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAuthenticityIssues outputs any integrity issues found by the audit.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintAuthenticityIssues(report *types.AuthenticityReport) {
	if report == nil || len(report.Issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO AUTHENTICITY ISSUES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues:\n\n", len(report.Issues)))

	for i, issue := range report.Issues {
		details := issue.Details
		if len(details) > 45 {
			details = details[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", issue.Category, issue.Severity))
		sb.WriteString(fmt.Sprintf("  %s\n", details))
		if i < len(report.Issues)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("AUTHENTICITY ISSUES", sb.String())
}
