// Package index regenerates the per-directory index documents (README
// tables of contents) of a paper collection.
package index

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matsen/paperdir/internal/logging"
	"github.com/matsen/paperdir/internal/reference"
	"github.com/matsen/paperdir/internal/section"
)

// Result describes what happened to one index document.
type Result struct {
	Path    string
	Created bool // The document did not exist and was scaffolded
	Written bool // The file on disk changed
}

// Builder rewrites the managed sections of index documents.
type Builder struct {
	indexFile string
	log       logging.Logger
}

// NewBuilder returns a Builder that maintains documents named indexFile.
func NewBuilder(indexFile string, log logging.Logger) *Builder {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Builder{indexFile: indexFile, log: log}
}

// BuildCategory regenerates the subcategories and papers sections of the
// index document in dir. subdirs are the names of dir's immediate child
// directories; papers are listed in the order given.
func (b *Builder) BuildCategory(dir string, subdirs []string, papers []reference.Record) (Result, error) {
	entries := make([]Entry, len(subdirs))
	for i, name := range subdirs {
		entries[i] = Entry{
			Name:        name,
			Description: Description(filepath.Join(dir, name), b.indexFile),
		}
	}

	return b.rewrite(dir, CategoryScaffold, func(doc string) string {
		doc = section.Merge(doc, section.SubcategoriesStart, section.SubcategoriesEnd, RenderSubcategories(entries))
		return section.Merge(doc, section.PapersStart, section.PapersEnd, RenderPapers(papers))
	})
}

// BuildRoot regenerates the categories section of the root index document.
func (b *Builder) BuildRoot(root string, categories []string) (Result, error) {
	return b.rewrite(root, RootScaffold, func(doc string) string {
		return section.Merge(doc, section.CategoriesStart, section.CategoriesEnd, RenderCategories(categories))
	})
}

// rewrite loads the document in dir (or scaffolds it), applies update and
// writes the result back when it differs from what is on disk. Text
// outside the managed sections is written back exactly as read.
func (b *Builder) rewrite(dir string, scaffold func(name string) string, update func(string) string) (Result, error) {
	res := Result{Path: filepath.Join(dir, b.indexFile)}

	var current string
	data, err := os.ReadFile(res.Path)
	switch {
	case err == nil:
		current = string(data)
	case os.IsNotExist(err):
		res.Created = true
		current = scaffold(directoryTitle(dir))
	default:
		return res, fmt.Errorf("reading %s: %w", res.Path, err)
	}

	next := update(current)
	if !res.Created && next == current {
		b.log.Debug("index unchanged", logging.String("path", res.Path))
		return res, nil
	}

	if err := os.WriteFile(res.Path, []byte(next), 0644); err != nil {
		return res, fmt.Errorf("writing %s: %w", res.Path, err)
	}
	res.Written = true

	if res.Created {
		b.log.Info("created index", logging.String("path", res.Path))
	} else {
		b.log.Debug("updated index", logging.String("path", res.Path))
	}
	return res, nil
}

func directoryTitle(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return filepath.Base(abs)
}
