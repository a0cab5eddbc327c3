package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/matsen/paperdir/internal/organizer"
)

var (
	// labelStyle for muted field names
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// okStyle for counts that need no attention
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	// warnStyle for non-zero failure counts
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	// boxStyle for the summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// outputSummary prints the summary box to stdout.
func outputSummary(sum organizer.Summary) {
	fmt.Fprintln(os.Stdout, formatSummary(sum))
}

// formatSummary renders the end-of-run summary box.
func formatSummary(sum organizer.Summary) string {
	content := fmt.Sprintf("%s %s\n%s %d  %s %d  %s %s\n%s %s  %s %s\n%s %s  %s %s  %s %s",
		labelStyle.Render("Root:"), sum.Root,
		labelStyle.Render("Categories:"), sum.Categories,
		labelStyle.Render("Papers:"), sum.Papers,
		labelStyle.Render("Renamed:"), okStyle.Render(fmt.Sprint(sum.Renamed)),
		labelStyle.Render("Indexes written:"), okStyle.Render(fmt.Sprint(sum.IndexesWritten)),
		labelStyle.Render("Created:"), okStyle.Render(fmt.Sprint(sum.IndexesCreated)),
		labelStyle.Render("Unresolved DOIs:"), count(sum.Unresolved),
		labelStyle.Render("Unreadable:"), count(sum.ExtractFailed),
		labelStyle.Render("Failures:"), count(sum.RenameFailed+sum.IndexFailures+sum.DirFailures),
	)
	return boxStyle.Render(content)
}

func count(n int) string {
	if n == 0 {
		return okStyle.Render("0")
	}
	return warnStyle.Render(fmt.Sprint(n))
}
