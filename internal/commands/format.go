package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MrJamesThe3rd/manchego/internal/importer"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// FormatSummary renders a run summary for the terminal.
func FormatSummary(s *importer.Summary, operation string) string {
	var b strings.Builder

	if s.Success {
		b.WriteString(successStyle.Render(operation + " completed successfully"))
	} else {
		b.WriteString(warningStyle.Render(operation + " completed with errors"))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "   Total files: %d\n", s.Total)
	fmt.Fprintf(&b, "   Succeeded: %d\n", s.Succeeded)

	if s.Failed > 0 {
		fmt.Fprintf(&b, "   %s\n", failedStyle.Render(fmt.Sprintf("Failed: %d", s.Failed)))
	}

	fmt.Fprintf(&b, "   Time: %.2fs\n", s.ElapsedS)

	if len(s.Failures) > 0 {
		b.WriteString("\n   Failures:\n")

		for _, f := range s.Failures {
			fmt.Fprintf(&b, "   - %s: %s\n", f.File, f.Reason)
		}
	}

	return b.String()
}

// FormatPending renders the intake listing as a table.
func FormatPending(files []importer.PendingFile) string {
	if len(files) == 0 {
		return mutedStyle.Render("No files waiting in intake.") + "\n"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FILE", "SIZE", "ACCOUNT", "MATCHED BY")

	for _, f := range files {
		label, by := "unidentified", "-"
		if f.Identified {
			label, by = string(f.Label), string(f.By)
		}

		t.Row(f.Name, fmt.Sprintf("%d", f.Size), label, by)
	}

	return t.Render() + "\n"
}
