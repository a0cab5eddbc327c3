// Package crossref resolves DOIs to bibliographic metadata using the
// Crossref REST API.
package crossref

import "strings"

// Work is the normalized metadata for one DOI. Missing values are left at
// their zero value.
type Work struct {
	DOI     string
	Title   string
	Authors []string // Family names, in the order Crossref lists them
	Journal string   // First container title
	URL     string   // Canonical URL
	Year    int      // Print publication year, 0 if absent
}

// worksResponse is the envelope of GET /works/{doi}.
type worksResponse struct {
	Status  string      `json:"status"`
	Message workMessage `json:"message"`
}

type workMessage struct {
	DOI            string         `json:"DOI"`
	Title          []string       `json:"title"`
	Author         []workAuthor   `json:"author"`
	ContainerTitle []string       `json:"container-title"`
	URL            string         `json:"URL"`
	PublishedPrint *workDateParts `json:"published-print"`
}

type workAuthor struct {
	Given  string `json:"given"`
	Family string `json:"family"`
	Name   string `json:"name"` // Organisational authors carry only a name
}

type workDateParts struct {
	DateParts [][]int `json:"date-parts"`
}

// toWork validates and normalizes the raw message.
func (m workMessage) toWork(doi string) Work {
	w := Work{
		DOI:     doi,
		Title:   firstOf(m.Title),
		Journal: firstOf(m.ContainerTitle),
		URL:     strings.TrimSpace(m.URL),
	}
	if m.DOI != "" {
		w.DOI = m.DOI
	}

	for _, a := range m.Author {
		name := strings.TrimSpace(a.Family)
		if name == "" {
			name = strings.TrimSpace(a.Name)
		}
		if name != "" {
			w.Authors = append(w.Authors, name)
		}
	}

	if m.PublishedPrint != nil && len(m.PublishedPrint.DateParts) > 0 &&
		len(m.PublishedPrint.DateParts[0]) > 0 {
		w.Year = m.PublishedPrint.DateParts[0][0]
	}

	return w
}

// firstOf returns the first element of values, whitespace-collapsed.
func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return strings.Join(strings.Fields(values[0]), " ")
}
