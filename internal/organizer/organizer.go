// Package organizer walks a paper collection: it renames every PDF after
// its resolved title and regenerates the index documents of the root and
// of each category directory.
//
// Layout: root/<category>/*.pdf. Category subdirectories are listed in the
// category's index document but are not descended into.
package organizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matsen/paperdir/internal/index"
	"github.com/matsen/paperdir/internal/logging"
	"github.com/matsen/paperdir/internal/reference"
)

// ErrRootNotFound is returned when the collection root does not exist or is
// not a directory.
var ErrRootNotFound = errors.New("root directory not found")

// Summary counts what one organizing pass did.
type Summary struct {
	Root           string `json:"root"`
	Categories     int    `json:"categories"`
	Papers         int    `json:"papers"`
	Renamed        int    `json:"renamed"`
	ExtractFailed  int    `json:"extract_failed"`
	Unresolved     int    `json:"unresolved"`
	RenameFailed   int    `json:"rename_failed"`
	IndexesCreated int    `json:"indexes_created"`
	IndexesWritten int    `json:"indexes_written"`
	IndexFailures  int    `json:"index_failures"`
	DirFailures    int    `json:"dir_failures"`
}

// Organizer runs organizing passes over a collection root.
type Organizer struct {
	registrar *Registrar
	builder   *index.Builder
	log       logging.Logger
}

// New creates an Organizer.
func New(registrar *Registrar, builder *index.Builder, log logging.Logger) *Organizer {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Organizer{registrar: registrar, builder: builder, log: log}
}

// Run performs one full pass over root. Only an unusable root or a
// canceled context is returned as an error; every other failure is logged,
// counted in the Summary, and confined to the file or directory it
// happened in.
func (o *Organizer) Run(ctx context.Context, root string) (Summary, error) {
	var sum Summary

	abs, err := filepath.Abs(root)
	if err != nil {
		return sum, fmt.Errorf("resolving root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return sum, fmt.Errorf("%w: %s", ErrRootNotFound, abs)
		}
		return sum, fmt.Errorf("checking root: %w", err)
	}
	if !info.IsDir() {
		return sum, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, abs)
	}
	sum.Root = abs

	categories, _, err := o.listDir(abs)
	if err != nil {
		return sum, fmt.Errorf("listing root: %w", err)
	}
	sum.Categories = len(categories)
	o.log.Info("organizing collection", logging.String("root", abs), logging.Int("categories", len(categories)))

	o.recordIndex(&sum, func() (index.Result, error) { return o.builder.BuildRoot(abs, categories) })

	for _, name := range categories {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		o.organizeCategory(ctx, filepath.Join(abs, name), &sum)
	}

	return sum, ctx.Err()
}

// organizeCategory registers the PDFs of one category and rebuilds its
// index document.
func (o *Organizer) organizeCategory(ctx context.Context, dir string, sum *Summary) {
	log := o.log.With(logging.String("category", filepath.Base(dir)))

	subdirs, files, err := o.listDir(dir)
	if err != nil {
		log.Error("could not list category", logging.Err(err))
		sum.DirFailures++
		return
	}

	records := make([]reference.Record, 0, len(files))
	for _, name := range files {
		if ctx.Err() != nil {
			return
		}
		reg := o.registrar.Register(ctx, filepath.Join(dir, name))
		records = append(records, reg.Record)

		sum.Papers++
		if reg.Renamed {
			sum.Renamed++
		}
		if reg.ExtractFailed {
			sum.ExtractFailed++
		}
		if reg.Unresolved {
			sum.Unresolved++
		}
		if reg.RenameFailed {
			sum.RenameFailed++
		}
	}

	// List papers in the order a directory listing yields for their
	// current names, which is also the order the next pass discovers them.
	sort.SliceStable(records, func(i, j int) bool { return records[i].FilePath < records[j].FilePath })

	o.recordIndex(sum, func() (index.Result, error) { return o.builder.BuildCategory(dir, subdirs, records) })
	log.Info("category done", logging.Int("papers", len(records)), logging.Int("subcategories", len(subdirs)))
}

func (o *Organizer) recordIndex(sum *Summary, build func() (index.Result, error)) {
	res, err := build()
	if err != nil {
		o.log.Error("could not update index document", logging.String("path", res.Path), logging.Err(err))
		sum.IndexFailures++
		return
	}
	if res.Created {
		sum.IndexesCreated++
	}
	if res.Written {
		sum.IndexesWritten++
	}
}

// listDir returns the visible subdirectory names and PDF file names in dir,
// each sorted by name.
func (o *Organizer) listDir(dir string) (subdirs, pdfs []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(filepath.Join(dir, name))
			if err != nil {
				o.log.Warn("skipping broken symlink", logging.String("path", filepath.Join(dir, name)))
				continue
			}
			isDir = info.IsDir()
		}

		switch {
		case isDir:
			subdirs = append(subdirs, name)
		case filepath.Ext(name) == reference.PDFExt:
			pdfs = append(pdfs, name)
		}
	}
	return subdirs, pdfs, nil
}
