//go:build integration

package deckgen

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestIntegration_ReportExporter_PDF(t *testing.T) {
	e, err := NewReportExporter(WithTimeout(time.Minute))
	if err != nil {
		t.Fatalf("NewReportExporter() error = %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := e.Export(ctx, ReportInput{
		Title:    "Integration",
		Cover:    true,
		Date:     "auto",
		Sections: []Section{{Title: "One", Content: "<p>Hello from headless Chrome.</p>"}},
	})
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !bytes.HasPrefix(result.PDF, []byte("%PDF")) {
		t.Errorf("PDF does not start with the PDF magic, got %q", result.PDF[:min(8, len(result.PDF))])
	}
}

func TestIntegration_ExporterPool_Parallel(t *testing.T) {
	pool := NewExporterPool(2)
	t.Cleanup(func() { _ = pool.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	errs := make(chan error, 4)
	for i := range 4 {
		go func() {
			e, err := pool.Acquire()
			if err != nil {
				errs <- err
				return
			}
			defer pool.Release(e)
			_, err = e.Export(ctx, ReportInput{
				Title:    "Parallel",
				Sections: []Section{{Title: "Part", Content: "<p>Run " + string(rune('A'+i)) + ".</p>"}},
			})
			errs <- err
		}()
	}
	for range 4 {
		if err := <-errs; err != nil {
			t.Errorf("parallel export error = %v", err)
		}
	}
}
