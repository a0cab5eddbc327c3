// Package section rewrites marker-delimited regions of text documents.
//
// A managed section is everything from a start marker up to the first end
// marker that follows it. Text outside the markers belongs to whoever wrote
// it and is never touched, so a generator can regenerate its sections on
// every run without clobbering hand-written prose around them.
package section

import (
	"regexp"
	"strings"
)

// Marker pairs used in index documents.
const (
	CategoriesStart    = "<!-- CATEGORIES_TABLE_START -->"
	CategoriesEnd      = "<!-- CATEGORIES_TABLE_END -->"
	SubcategoriesStart = "<!-- SUBCATEGORIES_SECTION_START -->"
	SubcategoriesEnd   = "<!-- SUBCATEGORIES_SECTION_END -->"
	PapersStart        = "<!-- PAPERS_TABLE_START -->"
	PapersEnd          = "<!-- PAPERS_TABLE_END -->"
)

var blankRunPattern = regexp.MustCompile(`\n{3,}`)

// Block wraps content in a marker pair.
func Block(start, end, content string) string {
	return start + "\n" + content + "\n" + end
}

// Find returns the byte offsets of the first managed section delimited by
// start and end, or ok=false if the pair is not present. The match is
// non-greedy: the first end marker after start closes the section.
func Find(doc, start, end string) (from, to int, ok bool) {
	i := strings.Index(doc, start)
	if i < 0 {
		return 0, 0, false
	}
	j := strings.Index(doc[i+len(start):], end)
	if j < 0 {
		return 0, 0, false
	}
	return i, i + len(start) + j + len(end), true
}

// Has reports whether doc contains a complete section for the marker pair.
func Has(doc, start, end string) bool {
	_, _, ok := Find(doc, start, end)
	return ok
}

// Merge returns doc with the section delimited by start and end set to
// content.
//
// Non-empty content replaces the existing section exactly once, or is
// appended after the existing text (separated by one blank line) when the
// section is absent. Empty content removes the section; after a removal,
// runs of blank lines left behind are collapsed to one and the document is
// trimmed to end in a single newline. A document without the section is
// returned as is when content is empty. Text outside the section is never
// changed by a replacement.
func Merge(doc, start, end, content string) string {
	from, to, found := Find(doc, start, end)

	if content == "" {
		if !found {
			return doc
		}
		out := doc[:from] + doc[to:]
		out = blankRunPattern.ReplaceAllString(out, "\n\n")
		out = strings.TrimRightFunc(out, isSpace)
		if out == "" {
			return ""
		}
		return out + "\n"
	}

	block := Block(start, end, content)
	if found {
		return doc[:from] + block + doc[to:]
	}

	existing := strings.TrimRightFunc(doc, isSpace)
	if existing == "" {
		return block + "\n"
	}
	return existing + "\n\n" + block + "\n"
}

// Content returns the text between the markers of the first section, without
// the newlines Block adds around it.
func Content(doc, start, end string) (string, bool) {
	from, to, ok := Find(doc, start, end)
	if !ok {
		return "", false
	}
	inner := doc[from+len(start) : to-len(end)]
	inner = strings.TrimPrefix(inner, "\n")
	inner = strings.TrimSuffix(inner, "\n")
	return inner, true
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
