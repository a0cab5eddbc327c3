package pdf

import (
	"regexp"
	"strings"
)

// DOI pattern: 10.<4-9 digit registrant>/<suffix>, matched case-insensitively.
// The prefix must start at a word boundary so "110.1234/x" is not a DOI.
var doiPattern = regexp.MustCompile(`(?i)\b10\.\d{4,9}/[-._;()/:A-Z0-9]+`)

// FindDOI returns the first DOI in text, or "" if there is none.
func FindDOI(text string) string {
	for _, match := range doiPattern.FindAllString(text, -1) {
		match = trimDOI(match)
		if isValidDOI(match) {
			return match
		}
	}
	return ""
}

// trimDOI removes sentence punctuation that the pattern picks up from the
// surrounding text, plus a closing parenthesis that has no opening partner
// in the DOI itself.
func trimDOI(doi string) string {
	for {
		trimmed := strings.TrimRight(doi, ".,;:")
		if strings.HasSuffix(trimmed, ")") &&
			strings.Count(trimmed, ")") > strings.Count(trimmed, "(") {
			trimmed = trimmed[:len(trimmed)-1]
		}
		if trimmed == doi {
			return doi
		}
		doi = trimmed
	}
}

// isValidDOI performs basic validation on a DOI.
func isValidDOI(doi string) bool {
	if !strings.HasPrefix(doi, "10.") {
		return false
	}
	slashIdx := strings.Index(doi, "/")
	return slashIdx != -1 && slashIdx < len(doi)-1
}
