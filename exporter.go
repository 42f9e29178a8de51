package deckgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-deckgen/internal/report"
)

// ReportInput describes one report export.
type ReportInput struct {
	Title  string
	Author string
	// Date is printed on the cover: a literal, "auto" for today, or
	// "auto:FORMAT" (e.g. "auto:DD/MM/YYYY" or a preset such as "auto:long").
	Date  string
	Cover bool
	// Template themes the report. It is resolved like a deck template.
	Template *StyleTemplate
	// Style names the base stylesheet; empty selects DefaultReportStyle.
	Style string
	// CSS is appended after the themed stylesheet.
	CSS      string
	Sections []Section
	// HTMLOnly skips PDF rendering.
	HTMLOnly bool
}

// ReportResult holds the rendered document. PDF is nil for HTMLOnly exports.
type ReportResult struct {
	HTML string
	PDF  []byte
}

// ReportExporter renders section content as a themed report, then prints it
// to PDF with headless Chrome. Each exporter owns one browser, launched on
// first use; call Close when done.
type ReportExporter struct {
	cfg      *settings
	loader   AssetLoader
	resolver *TemplateResolver
	pdf      pdfConverter
}

// NewReportExporter creates a ReportExporter.
// Use options to customize behavior (e.g., WithTimeout, WithAssetPath, WithLogger).
func NewReportExporter(opts ...Option) (*ReportExporter, error) {
	cfg := newSettings(opts)

	loader, err := cfg.loader()
	if err != nil {
		return nil, err
	}

	e := &ReportExporter{
		cfg:      cfg,
		loader:   loader,
		resolver: NewTemplateResolver(loader),
		pdf:      cfg.pdf,
	}
	if e.pdf == nil {
		e.pdf = newChromePrinter(cfg.pdfTimeout)
	}
	return e, nil
}

// Export builds the report HTML and, unless HTMLOnly is set, its PDF.
func (e *ReportExporter) Export(ctx context.Context, in ReportInput) (result *ReportResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(in.Sections) == 0 {
		return nil, ErrNoSections
	}

	html, err := e.buildHTML(in)
	if err != nil {
		return nil, err
	}
	if in.HTMLOnly {
		return &ReportResult{HTML: html}, nil
	}

	e.cfg.log.Info("rendering report", "title", in.Title, "sections", len(in.Sections))
	pdf, err := e.pdf.ToPDF(ctx, html)
	if err != nil {
		return nil, err
	}
	return &ReportResult{HTML: html, PDF: pdf}, nil
}

func (e *ReportExporter) buildHTML(in ReportInput) (string, error) {
	tmpl, err := e.resolver.Resolve(in.Template)
	if err != nil {
		return "", err
	}

	styleName := in.Style
	if styleName == "" {
		styleName = DefaultReportStyle
	}
	base, err := e.loader.LoadStyle(styleName)
	if err != nil {
		return "", err
	}

	css := report.ThemeCSS(base, report.Theme{
		Accent:      tmpl.AccentColor,
		FontTitle:   tmpl.FontTitle,
		FontBody:    tmpl.FontBody,
		HeadingSize: tmpl.HeadingFontSize,
		BodySize:    tmpl.BodyFontSize,
	})
	if extra := strings.TrimSpace(in.CSS); extra != "" {
		css += "\n" + extra
	}

	doc := report.Document{
		Title:    in.Title,
		Author:   in.Author,
		Date:     in.Date,
		Cover:    in.Cover,
		Sections: make([]report.Section, 0, len(in.Sections)),
	}
	for _, s := range in.Sections {
		doc.Sections = append(doc.Sections, report.Section{Title: s.Title, Markup: s.Content})
	}

	return report.Build(doc, css, e.cfg.now())
}

// Close releases browser resources.
func (e *ReportExporter) Close() error {
	if e.pdf != nil {
		return e.pdf.Close()
	}
	return nil
}
