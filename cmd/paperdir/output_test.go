package main

import (
	"strings"
	"testing"

	"github.com/matsen/paperdir/internal/organizer"
)

func TestFormatSummary(t *testing.T) {
	sum := organizer.Summary{
		Root:           "/papers",
		Categories:     3,
		Papers:         12,
		Renamed:        4,
		IndexesWritten: 2,
		Unresolved:     1,
		IndexFailures:  1,
	}

	got := formatSummary(sum)

	for _, want := range []string{"/papers", "Categories:", "3", "Papers:", "12", "Renamed:", "Unresolved DOIs:", "Failures:"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestRootCommandRejectsArgs(t *testing.T) {
	if err := rootCmd.Args(rootCmd, []string{"extra"}); err == nil {
		t.Error("root command accepted a positional argument")
	}
}
