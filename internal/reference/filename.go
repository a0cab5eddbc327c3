package reference

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PDFExt is the extension given to renamed papers.
const PDFExt = ".pdf"

// unsafeFilenameChars are replaced with '-' in filename stems.
var unsafeFilenameChars = strings.NewReplacer(
	`\`, "-",
	"/", "-",
	":", "-",
	`"`, "-",
	"*", "-",
	"?", "-",
	"<", "-",
	">", "-",
	"|", "-",
)

// SanitizeTitle maps a title to a filesystem-safe filename stem.
// It is deterministic and idempotent; titles without unsafe characters
// are returned unchanged. Leading dots become '-' so that the renamed
// paper is not a hidden file.
func SanitizeTitle(title string) string {
	stem := unsafeFilenameChars.Replace(title)
	rest := strings.TrimLeft(stem, ".")
	return strings.Repeat("-", len(stem)-len(rest)) + rest
}

// MaxCollisionSuffix bounds the disambiguating suffixes tried by PickFileName.
const MaxCollisionSuffix = 1000

// PickFileName chooses the file name a paper should have in dir.
//
// The preferred name is stem + ".pdf". If another file already has that
// name, " (2)", " (3)", ... are appended until a free name is found. A
// current name that is already stem + ".pdf" or one of its numbered
// variants is kept, so reruns never move a paper between slots.
func PickFileName(dir, stem, current string) (string, error) {
	if isVariantOf(current, stem) {
		return current, nil
	}
	for n := 1; n <= MaxCollisionSuffix; n++ {
		candidate := stem + PDFExt
		if n > 1 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, n, PDFExt)
		}
		_, err := os.Lstat(filepath.Join(dir, candidate))
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", candidate, err)
		}
	}
	return "", fmt.Errorf("no free file name for %q after %d attempts", stem, MaxCollisionSuffix)
}

// isVariantOf reports whether name is stem + ".pdf" or stem + " (n).pdf"
// with n >= 2.
func isVariantOf(name, stem string) bool {
	if name == stem+PDFExt {
		return true
	}
	rest, ok := strings.CutPrefix(name, stem+" (")
	if !ok {
		return false
	}
	digits, ok := strings.CutSuffix(rest, ")"+PDFExt)
	if !ok || digits == "" || digits[0] == '0' {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return digits != "1"
}
