package deckgen

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

// Notes:
// - PDF rendering is replaced through withPDFConverter; the real browser
//   path is covered by the integration build tag.

// mockPDFConverter records the HTML it receives.
type mockPDFConverter struct {
	mu     sync.Mutex
	result []byte
	err    error
	html   string
	closed bool
}

func (m *mockPDFConverter) ToPDF(_ context.Context, html string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.html = html
	return m.result, m.err
}

func (m *mockPDFConverter) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func newTestExporter(t *testing.T, pdf *mockPDFConverter, opts ...Option) *ReportExporter {
	t.Helper()
	base := []Option{withPDFConverter(pdf), WithClock(fixedClock)}
	e, err := NewReportExporter(append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewReportExporter() error = %v", err)
	}
	return e
}

func TestReportExporter_Export(t *testing.T) {
	t.Parallel()

	pdf := &mockPDFConverter{result: []byte("%PDF-1.7")}
	e := newTestExporter(t, pdf)

	result, err := e.Export(context.Background(), ReportInput{
		Title:    "Annual Report",
		Author:   "Finance",
		Date:     "auto:YYYY-MM-DD",
		Cover:    true,
		Template: &StyleTemplate{Name: "professional_clean", AccentColor: "#C0392B"},
		CSS:      "h2 { letter-spacing: 1px; }",
		Sections: []Section{
			{Title: "Overview", Content: "<p>Revenue grew.</p>"},
			{Title: "Ignored", Content: "<h2>Outlook</h2><p>Steady.<script>x()</script></p>"},
		},
	})
	if err != nil {
		t.Fatalf("Export() unexpected error: %v", err)
	}
	if string(result.PDF) != "%PDF-1.7" {
		t.Errorf("PDF = %q, want converter output", result.PDF)
	}
	if pdf.html != result.HTML {
		t.Error("converter should receive the built HTML")
	}

	for _, want := range []string{
		"Annual Report",
		"Finance",
		"2024-05-01",
		"<h2>Overview</h2>",
		"<h2>Outlook</h2>",
		"#C0392B",
		"letter-spacing: 1px",
	} {
		if !strings.Contains(result.HTML, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
	if strings.Contains(result.HTML, "<script>") {
		t.Error("section markup must be sanitized")
	}
}

func TestReportExporter_Export_HTMLOnly(t *testing.T) {
	t.Parallel()

	pdf := &mockPDFConverter{result: []byte("%PDF")}
	e := newTestExporter(t, pdf)

	result, err := e.Export(context.Background(), ReportInput{
		Title:    "Draft",
		Sections: []Section{{Title: "One", Content: "<p>x</p>"}},
		HTMLOnly: true,
	})
	if err != nil {
		t.Fatalf("Export() unexpected error: %v", err)
	}
	if result.PDF != nil {
		t.Error("HTMLOnly export should not render PDF")
	}
	if pdf.html != "" {
		t.Error("converter should not be called for HTMLOnly")
	}
	if !strings.Contains(result.HTML, "<h2>One</h2>") {
		t.Errorf("HTML = %q, want section heading from title", result.HTML)
	}
}

func TestReportExporter_Export_Errors(t *testing.T) {
	t.Parallel()

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	sections := []Section{{Title: "A", Content: "<p>a</p>"}}
	tests := []struct {
		name    string
		ctx     context.Context
		pdf     *mockPDFConverter
		input   ReportInput
		wantErr error
	}{
		{
			name:    "no sections",
			ctx:     context.Background(),
			pdf:     &mockPDFConverter{},
			input:   ReportInput{Title: "x"},
			wantErr: ErrNoSections,
		},
		{
			name:    "cancelled",
			ctx:     cancelled,
			pdf:     &mockPDFConverter{},
			input:   ReportInput{Title: "x", Sections: sections},
			wantErr: context.Canceled,
		},
		{
			name:    "unknown style",
			ctx:     context.Background(),
			pdf:     &mockPDFConverter{},
			input:   ReportInput{Title: "x", Style: "baroque", Sections: sections},
			wantErr: ErrStyleNotFound,
		},
		{
			name:    "invalid template",
			ctx:     context.Background(),
			pdf:     &mockPDFConverter{},
			input:   ReportInput{Title: "x", Template: &StyleTemplate{Name: "acme", AccentColor: "nope"}, Sections: sections},
			wantErr: ErrInvalidColor,
		},
		{
			name:    "pdf failure",
			ctx:     context.Background(),
			pdf:     &mockPDFConverter{err: ErrPDFGeneration},
			input:   ReportInput{Title: "x", Sections: sections},
			wantErr: ErrPDFGeneration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := newTestExporter(t, tt.pdf).Export(tt.ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Export() error = %v, want %v", err, tt.wantErr)
			}
			if result != nil {
				t.Errorf("Export() result = %+v, want nil on failure", result)
			}
		})
	}
}

func TestReportExporter_Close(t *testing.T) {
	t.Parallel()

	pdf := &mockPDFConverter{}
	if err := newTestExporter(t, pdf).Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}
	if !pdf.closed {
		t.Error("Close() should close the PDF converter")
	}
}

func TestNewReportExporter_InvalidAssetPath(t *testing.T) {
	t.Parallel()

	_, err := NewReportExporter(WithAssetPath("/nonexistent/assets"))
	if !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("NewReportExporter() error = %v, want ErrInvalidAssetPath", err)
	}
}
