// Package pdf extracts bibliographic hints from PDF files.
package pdf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DefaultScanPages is how many leading pages are searched for a DOI.
const DefaultScanPages = 5

// ErrUnreadable wraps any failure to open or parse a PDF, including
// panics raised inside the PDF parser on malformed input.
var ErrUnreadable = errors.New("unreadable PDF")

// Metadata holds what could be read from a PDF. Empty strings mean the
// value was not found.
type Metadata struct {
	Title string // Document-info title
	DOI   string // First DOI found in the leading pages
}

// Extractor reads Metadata from PDF files.
type Extractor struct {
	scanPages int
}

// NewExtractor returns an Extractor that scans up to scanPages pages for a
// DOI. Non-positive values select DefaultScanPages.
func NewExtractor(scanPages int) *Extractor {
	if scanPages <= 0 {
		scanPages = DefaultScanPages
	}
	return &Extractor{scanPages: scanPages}
}

// Extract returns the embedded title and the first DOI in the leading pages
// of the PDF at filePath. Any parser failure is reported as ErrUnreadable;
// a PDF with neither value yields an empty Metadata and no error.
func (e *Extractor) Extract(filePath string) (meta Metadata, err error) {
	// ledongthuc/pdf panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			meta = Metadata{}
			err = fmt.Errorf("%w: %s: %v", ErrUnreadable, filePath, r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %s: %v", ErrUnreadable, filePath, err)
	}
	defer f.Close()

	meta.Title = infoTitle(r)
	meta.DOI = FindDOI(pageText(r, e.scanPages))
	return meta, nil
}

// pageText concatenates the plain text of the first maxPages pages.
// Pages that fail to decode are skipped.
func pageText(r *pdf.Reader, maxPages int) string {
	if maxPages <= 0 || maxPages > r.NumPage() {
		maxPages = r.NumPage()
	}

	var builder strings.Builder
	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String()
}

// infoTitle returns the /Title entry of the document information
// dictionary, or "".
func infoTitle(r *pdf.Reader) string {
	title := r.Trailer().Key("Info").Key("Title").Text()
	return strings.Join(strings.Fields(title), " ")
}
