// Package report assembles a printable HTML document from canonical
// section markup.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/alnah/go-deckgen/internal/dateutil"
	"github.com/alnah/go-deckgen/internal/normalize"
)

// ErrNoSections is returned when a document has nothing to print.
var ErrNoSections = errors.New("report has no sections")

// Section is one titled block of canonical markup.
type Section struct {
	Title  string
	Markup string
}

// Document is the input of Build.
type Document struct {
	Title    string
	Author   string
	Date     string // literal, or "auto" / "auto:FORMAT"
	Cover    bool
	Sections []Section
}

// Theme carries the template values that reach the stylesheet.
type Theme struct {
	Accent      string // #RRGGBB
	FontTitle   string
	FontBody    string
	HeadingSize float64 // points
	BodySize    float64 // points
}

var page = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
{{- if .Cover}}
<section class="report-cover">
<h1 class="cover-title">{{.Title}}</h1>
{{- if .Author}}
<p class="cover-author">{{.Author}}</p>
{{- end}}
{{- if .Date}}
<p class="cover-date">{{.Date}}</p>
{{- end}}
</section>
{{- else}}
<h1>{{.Title}}</h1>
{{- end}}
{{- range .Sections}}
<section class="report-section">
{{.}}
</section>
{{- end}}
</body>
</html>
`))

// Build renders the document with the given stylesheet. Section markup is
// sanitized again; a section without its own heading gets one from its
// title.
func Build(doc Document, css string, now time.Time) (string, error) {
	if len(doc.Sections) == 0 {
		return "", ErrNoSections
	}
	date, err := dateutil.Resolve(doc.Date, now)
	if err != nil {
		return "", err
	}

	sections := make([]template.HTML, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		body := normalize.Sanitize(s.Markup)
		if normalize.ExtractParts(body).Title == "" && s.Title != "" {
			body = "<h2>" + template.HTMLEscapeString(s.Title) + "</h2>" + body
		}
		sections = append(sections, template.HTML(body)) // #nosec G203 -- sanitized above
	}

	data := struct {
		Title, Author, Date string
		Cover               bool
		CSS                 template.CSS
		Sections            []template.HTML
	}{
		Title:    doc.Title,
		Author:   doc.Author,
		Date:     date,
		Cover:    doc.Cover,
		CSS:      template.CSS(sanitizeCSS(css)), // #nosec G203 -- closing sequences escaped
		Sections: sections,
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}
