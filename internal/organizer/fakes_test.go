package organizer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matsen/paperdir/internal/crossref"
	"github.com/matsen/paperdir/internal/pdf"
)

// fakeExtractor returns metadata keyed by file name, or by file content so
// that a paper keeps its metadata after it has been renamed.
type fakeExtractor struct {
	byName    map[string]pdf.Metadata
	byContent map[string]pdf.Metadata
	fail      map[string]bool
}

func (f *fakeExtractor) Extract(path string) (pdf.Metadata, error) {
	name := filepath.Base(path)
	if f.fail[name] {
		return pdf.Metadata{}, pdf.ErrUnreadable
	}
	if m, ok := f.byName[name]; ok {
		return m, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pdf.Metadata{}, pdf.ErrUnreadable
	}
	return f.byContent[string(data)], nil
}

type fakeResolver struct {
	works map[string]*crossref.Work
	err   error
	calls int
}

func (f *fakeResolver) Lookup(_ context.Context, doi string) (*crossref.Work, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if w, ok := f.works[doi]; ok {
		return w, nil
	}
	return nil, &crossref.APIError{StatusCode: 404, DOI: doi}
}

var errOffline = errors.New("offline")

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
