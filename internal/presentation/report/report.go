// Package report renders validation reports for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

// Markdown renders the validation report as a markdown document: a result
// table per scenario plus the overall verdict.
func Markdown(report *domain.ValidationReport) string {
	var b strings.Builder

	b.WriteString("# BPMN Validation Results\n\n")
	b.WriteString("| Status | Scenario | Expected | Actual |\n")
	b.WriteString("|--------|----------|----------|--------|\n")
	for _, res := range report.ScenarioResults {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			status, escapeCell(res.ScenarioName), escapeCell(res.Expected), escapeCell(res.Actual))
	}

	if failed := failedPaths(report); len(failed) > 0 {
		b.WriteString("\n## Path Mismatches\n\n")
		for _, res := range failed {
			fmt.Fprintf(&b, "- **%s**\n  - expected: %s\n  - actual: %s\n",
				res.ScenarioName, res.ExpectedPath, res.ActualPath)
		}
	}

	fmt.Fprintf(&b, "\n**Result: %s**\n", report.Message)
	return b.String()
}

// Render renders the report for a terminal, with glamour styling when
// possible and the raw markdown as a fallback.
func Render(report *domain.ValidationReport) string {
	md := Markdown(report)

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// Verdict returns the colored one-line verdict of the report.
func Verdict(report *domain.ValidationReport) string {
	p := termenv.ColorProfile()
	if report.AllPassed {
		return termenv.String(report.Message).Foreground(p.Color("#22c55e")).Bold().String()
	}
	return termenv.String(report.Message).Foreground(p.Color("#ef4444")).Bold().String()
}

func failedPaths(report *domain.ValidationReport) []domain.ScenarioResult {
	var out []domain.ScenarioResult
	for _, res := range report.ScenarioResults {
		if !res.PathPassed && res.ExpectedPath != "" {
			out = append(out, res)
		}
	}
	return out
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
