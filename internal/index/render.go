package index

import (
	"net/url"
	"sort"
	"strings"

	"github.com/matsen/paperdir/internal/reference"
	"github.com/matsen/paperdir/internal/section"
)

// NoPapersRow is the placeholder row of an empty papers table.
const NoPapersRow = "| No papers found | - | - | - |"

// Entry is one row of a categories or subcategories table.
type Entry struct {
	Name        string
	Description string
}

// RenderSubcategories renders the subcategories section content, or ""
// when there are no entries so that the section is removed.
func RenderSubcategories(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	return "## Subcategories\n\n" + directoryTable("Subcategory Name", entries)
}

// RenderCategories renders the root categories section content, or ""
// when there are no categories.
func RenderCategories(names []string) string {
	if len(names) == 0 {
		return ""
	}
	entries := make([]Entry, len(names))
	for i, n := range names {
		entries[i] = Entry{Name: n}
	}
	return "## Categories\n\n" + directoryTable("Category Name", entries)
}

// RenderPapers renders the papers section content. Rows keep the order of
// papers; an empty slice renders the NoPapersRow placeholder.
func RenderPapers(papers []reference.Record) string {
	var b strings.Builder
	b.WriteString("## Papers\n\n")
	b.WriteString(header("Title", "Authors", "Journal", "Year"))
	if len(papers) == 0 {
		b.WriteString("\n" + NoPapersRow)
		return b.String()
	}
	for _, p := range papers {
		journal := cell(p.Journal)
		if p.JournalURL != "" && p.Journal != "" {
			journal = link(p.Journal, p.JournalURL)
		}
		b.WriteString("\n")
		b.WriteString(row(
			link(p.Title, EscapePath(p.FilePath)),
			cell(p.Authors),
			journal,
			p.YearString(),
		))
	}
	return b.String()
}

// directoryTable renders a two-column name/description table sorted by name.
func directoryTable(nameHeader string, entries []Entry) string {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var b strings.Builder
	b.WriteString(header(nameHeader, "Description"))
	for _, e := range sorted {
		b.WriteString("\n")
		b.WriteString(row(link(e.Name, EscapePath(e.Name)+"/"), cell(e.Description)))
	}
	return b.String()
}

// CategoryScaffold is the initial index document of a category directory.
func CategoryScaffold(name string) string {
	subcategories := "## Subcategories\n\n" + header("Subcategory Name", "Description")
	return "# " + name + "\n\n" +
		section.Block(section.SubcategoriesStart, section.SubcategoriesEnd, subcategories) + "\n\n" +
		section.Block(section.PapersStart, section.PapersEnd, RenderPapers(nil)) + "\n"
}

// RootScaffold is the initial index document of the root directory.
func RootScaffold(name string) string {
	categories := "## Categories\n\n" + header("Category Name", "Description")
	return "# " + name + "\n\n" +
		section.Block(section.CategoriesStart, section.CategoriesEnd, categories) + "\n"
}

// EscapePath percent-escapes each segment of a slash-separated path for
// use as a markdown link target. Everything except letters, digits and
// "-_.~" is escaped, including sub-delimiters such as "&" and ",".
func EscapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	}
	return strings.Join(segments, "/")
}

// header renders a table header row and its delimiter row.
func header(columns ...string) string {
	rules := make([]string, len(columns))
	for i, c := range columns {
		rules[i] = strings.Repeat("-", len(c)+2)
	}
	return row(columns...) + "\n|" + strings.Join(rules, "|") + "|"
}

func row(cells ...string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// cell makes text safe inside a table cell.
func cell(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	return strings.ReplaceAll(text, "|", `\|`)
}

func link(text, target string) string {
	text = strings.NewReplacer("[", `\[`, "]", `\]`).Replace(cell(text))
	return "[" + text + "](" + target + ")"
}
