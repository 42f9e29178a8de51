package main

// Notes:
// - hintFor: we test that each recognized cause maps to its hint, including
//   causes wrapped by fmt.Errorf and batchError. Hint wording is tested in
//   internal/hints.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"testing"

	deckgen "github.com/alnah/go-deckgen"
	"github.com/alnah/go-deckgen/internal/config"
	"github.com/alnah/go-deckgen/internal/hints"
)

// ---------------------------------------------------------------------------
// TestHintFor - Error to hint mapping
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	searched := []string{"deckgen.yaml", "/etc/deckgen/deckgen.yaml"}
	names := []string{"professional_clean", "dark_mode"}
	templates := func() []string { return names }

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"browser", fmt.Errorf("report: %w", deckgen.ErrBrowserConnect), hints.ForBrowserConnect()},
		{"page load", deckgen.ErrPageLoad, hints.ForTimeout()},
		{"deadline", fmt.Errorf("generate: %w", context.DeadlineExceeded), hints.ForTimeout()},
		{"config", fmt.Errorf("%w: tried x", config.ErrConfigNotFound), hints.ForConfigNotFound(searched)},
		{"api key", ErrMissingAPIKey, hints.ForProviderKey()},
		{"template", fmt.Errorf("%w: %q", deckgen.ErrTemplateNotFound, "neon"), hints.ForTemplateNotFound(names)},
		{"invalid deck", deckgen.ErrInvalidDeck, hints.ForInvalidDeck()},
		{"decode", deckgen.ErrDeckDecode, hints.ForInvalidDeck()},
		{"invalid input", ErrInvalidInput, hints.ForInvalidDeck()},
		{"write", fmt.Errorf("%w: out.pptx", ErrWriteOutput), hints.ForOutputDirectory()},
		{"unrecognized", errors.New("boom"), ""},
		{"no input", ErrNoInput, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := hintFor(tt.err, searched, templates); got != tt.want {
				t.Errorf("hintFor(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestHintFor_TemplatesOnlyListedWhenNeeded(t *testing.T) {
	t.Parallel()

	called := false
	templates := func() []string { called = true; return nil }

	hintFor(ErrMissingAPIKey, nil, templates)
	if called {
		t.Error("hintFor() listed templates for an unrelated error")
	}
}

func TestHintFor_BatchError(t *testing.T) {
	t.Parallel()

	err := &batchError{failed: 2, total: 2, errs: []error{
		errors.New("first"),
		fmt.Errorf("b.yaml: %w", ErrWriteOutput),
	}}
	if got := hintFor(err, nil, func() []string { return nil }); got != hints.ForOutputDirectory() {
		t.Errorf("hintFor(batchError) = %q, want output directory hint", got)
	}
}

// ---------------------------------------------------------------------------
// TestBatchError - Message and unwrapping
// ---------------------------------------------------------------------------

func TestBatchError(t *testing.T) {
	t.Parallel()

	one := errors.New("a.yaml: bad")
	two := fmt.Errorf("b.yaml: %w", ErrInvalidInput)

	if got := (&batchError{failed: 1, total: 4, errs: []error{one}}).Error(); got != one.Error() {
		t.Errorf("single Error() = %q, want %q", got, one.Error())
	}

	err := &batchError{failed: 2, total: 4, errs: []error{one, two}}
	if got := err.Error(); got != "2 of 4 inputs failed" {
		t.Errorf("Error() = %q, want %q", got, "2 of 4 inputs failed")
	}
	if !errors.Is(err, one) || !errors.Is(err, ErrInvalidInput) {
		t.Errorf("errors.Is(batchError) did not reach wrapped causes")
	}
}
