package organizer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/matsen/paperdir/internal/crossref"
	"github.com/matsen/paperdir/internal/logging"
	"github.com/matsen/paperdir/internal/pdf"
	"github.com/matsen/paperdir/internal/reference"
)

// MetadataExtractor reads the embedded title and DOI of a PDF.
type MetadataExtractor interface {
	Extract(path string) (pdf.Metadata, error)
}

// Resolver looks up bibliographic metadata for a DOI.
type Resolver interface {
	Lookup(ctx context.Context, doi string) (*crossref.Work, error)
}

// Registration is the outcome of registering one PDF.
type Registration struct {
	Record       reference.Record
	OriginalName string
	Renamed      bool

	ExtractFailed bool // PDF could not be read
	Unresolved    bool // A DOI was found but the lookup failed
	RenameFailed  bool // The file keeps its original name
}

// Registrar turns a PDF file into a Record, renaming the file after its
// title.
type Registrar struct {
	extractor MetadataExtractor
	resolver  Resolver
	log       logging.Logger
}

// NewRegistrar creates a Registrar.
func NewRegistrar(extractor MetadataExtractor, resolver Resolver, log logging.Logger) *Registrar {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Registrar{extractor: extractor, resolver: resolver, log: log}
}

// Register resolves the metadata of the PDF at path and renames it to its
// sanitized title. Every failure is logged and absorbed: the returned
// record is always usable, falling back to the original file name.
func (r *Registrar) Register(ctx context.Context, path string) Registration {
	dir, name := filepath.Split(path)
	reg := Registration{OriginalName: name}
	log := r.log.With(logging.String("file", path))

	meta, err := r.extractor.Extract(path)
	if err != nil {
		log.Warn("could not read PDF metadata", logging.Err(err))
		reg.ExtractFailed = true
		meta = pdf.Metadata{}
	}

	rec := reference.Record{
		Title: cleanTitle(meta.Title),
		DOI:   meta.DOI,
	}

	if meta.DOI != "" && r.resolver != nil {
		work, err := r.resolver.Lookup(ctx, meta.DOI)
		switch {
		case err == nil:
			if t := cleanTitle(work.Title); t != "" {
				rec.Title = t
			}
			rec.Authors = reference.JoinFamilyNames(work.Authors)
			rec.Journal = work.Journal
			rec.JournalURL = work.URL
			rec.Year = work.Year
		case crossref.IsNotFound(err):
			log.Info("DOI not registered", logging.String("doi", meta.DOI))
			reg.Unresolved = true
		default:
			log.Warn("DOI lookup unavailable", logging.String("doi", meta.DOI), logging.Err(err))
			reg.Unresolved = true
		}
	}

	if rec.Title == "" {
		rec.Title = reference.FileStem(name)
	}

	rec.FilePath = name
	target, err := reference.PickFileName(dir, reference.SanitizeTitle(rec.Title), name)
	if err != nil {
		log.Warn("could not choose a new file name", logging.Err(err))
		reg.RenameFailed = true
		target = name
	}

	if target != name {
		if err := os.Rename(path, filepath.Join(dir, target)); err != nil {
			log.Warn("rename failed, keeping original name", logging.String("target", target), logging.Err(err))
			reg.RenameFailed = true
		} else {
			rec.FilePath = target
			reg.Renamed = true
		}
	}

	if reg.Renamed {
		log.Info("renamed paper", logging.String("title", rec.Title), logging.String("to", rec.FilePath))
	} else {
		log.Info("registered paper", logging.String("title", rec.Title))
	}

	reg.Record = rec
	return reg
}

// cleanTitle collapses whitespace runs in a title.
func cleanTitle(title string) string {
	return strings.Join(strings.Fields(title), " ")
}
