// Package reference defines the core domain types for papers in a
// category directory.
package reference

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Record represents one resolved paper as it exists on disk after an
// organizing pass.
type Record struct {
	// Metadata
	Title      string `json:"title"`                 // Never empty; falls back to the original filename stem
	Authors    string `json:"authors"`               // Comma-joined family names, empty if unresolved
	Journal    string `json:"journal"`               // Container title, empty if unresolved
	JournalURL string `json:"journal_url,omitempty"` // Canonical URL from the lookup service
	Year       int    `json:"year,omitempty"`        // 0 if unknown

	// File path relative to the directory holding the paper's index document.
	FilePath string `json:"file_path"`

	// DOI that was found in the PDF text, if any.
	DOI string `json:"doi,omitempty"`
}

// HasYear reports whether the publication year is known.
func (r Record) HasYear() bool {
	return r.Year > 0
}

// YearString returns the year as text, or "" when unknown.
func (r Record) YearString() string {
	if !r.HasYear() {
		return ""
	}
	return strconv.Itoa(r.Year)
}

// JoinFamilyNames joins author family names in the order given.
// Blank names are dropped.
func JoinFamilyNames(names []string) string {
	kept := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			kept = append(kept, n)
		}
	}
	return strings.Join(kept, ", ")
}

// FileStem returns a file name without its directory and extension.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
