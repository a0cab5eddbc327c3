package index

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/matsen/paperdir/internal/section"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// Description returns the first paragraph of the index document in dir,
// flattened to one line. Managed sections are ignored. A missing or
// unreadable document yields "".
func Description(dir, indexFile string) string {
	src, err := os.ReadFile(filepath.Join(dir, indexFile))
	if err != nil {
		return ""
	}
	return FirstParagraph(stripManaged(string(src)))
}

// FirstParagraph returns the text of the first top-level paragraph of a
// markdown document.
func FirstParagraph(doc string) string {
	src := []byte(doc)
	root := markdown.Parser().Parse(text.NewReader(src))

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if p, ok := n.(*ast.Paragraph); ok {
			return strings.Join(strings.Fields(inlineText(p, src)), " ")
		}
	}
	return ""
}

// inlineText concatenates the text of the inline children of n.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		case *ast.RawHTML:
			// Inline HTML is dropped.
		default:
			buf.WriteString(inlineText(c, src))
		}
	}
	return buf.String()
}

func stripManaged(doc string) string {
	for _, m := range [][2]string{
		{section.CategoriesStart, section.CategoriesEnd},
		{section.SubcategoriesStart, section.SubcategoriesEnd},
		{section.PapersStart, section.PapersEnd},
	} {
		for section.Has(doc, m[0], m[1]) {
			doc = section.Merge(doc, m[0], m[1], "")
		}
	}
	return doc
}
