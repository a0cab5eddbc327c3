// Package main provides the paperdir CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/matsen/paperdir/internal/config"
	"github.com/matsen/paperdir/internal/crossref"
	"github.com/matsen/paperdir/internal/index"
	"github.com/matsen/paperdir/internal/logging"
	"github.com/matsen/paperdir/internal/organizer"
	"github.com/matsen/paperdir/internal/pdf"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors is set, so cobra errors are printed here
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paperdir",
	Short: "Rename PDFs after their titles and index them in README tables",
	Long: `paperdir organizes a directory of research papers.

Every first-level directory under the root is a category. For each PDF in a
category, paperdir reads the embedded title and DOI, looks the DOI up on
Crossref, renames the file to the paper's title and lists it in the
category's README. The root README gets a table of categories.

Only the sections between paperdir's HTML comment markers are rewritten;
everything else in a README is left alone.

Configuration is read from ~/.config/paperdir/config.yml, a .env file in
the working directory and PAPERDIR_* environment variables. The root is
$PAPERDIR_ROOT or the current directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(run())
	},
}

func init() {
	rootCmd.Version = Version
}

func run() int {
	// A missing .env is fine
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return outputError(ExitError, "getting current directory: %v", err)
	}

	settings, err := config.Resolve(cwd)
	if err != nil {
		return outputError(ExitConfigError, "%v", err)
	}

	log, err := logging.New(settings.Log)
	if err != nil {
		return outputError(ExitConfigError, "creating logger: %v", err)
	}
	defer logging.Sync(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	org := newOrganizer(settings, log)
	sum, err := org.Run(ctx, settings.Root)
	if err != nil {
		if errors.Is(err, organizer.ErrRootNotFound) {
			return outputError(ExitConfigError, "%v", err)
		}
		return outputError(ExitError, "%v", err)
	}

	// Per-file and per-directory failures are logged, not fatal.
	outputSummary(sum)
	return ExitSuccess
}

// newOrganizer wires the extractor, the Crossref client and the index
// builder from settings.
func newOrganizer(s *config.Settings, log logging.Logger) *organizer.Organizer {
	opts := []crossref.ClientOption{
		crossref.WithBaseURL(s.CrossrefURL),
		crossref.WithTimeout(s.Timeout),
		crossref.WithRateLimit(s.RateLimit),
		crossref.WithUserAgent("paperdir/"+Version, s.Mailto),
	}
	client := crossref.NewClient(opts...)

	registrar := organizer.NewRegistrar(pdf.NewExtractor(s.ScanPages), client, log.Named("register"))
	builder := index.NewBuilder(s.IndexFile, log.Named("index"))
	return organizer.New(registrar, builder, log)
}
