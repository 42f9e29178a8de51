package main

// Notes:
// - exitCodeFor: we test the sentinel errors from the deckgen and config
//   packages plus the CLI's own, and wrapped errors to verify errors.Is().
// - batchError: a multi-input failure maps to the code of its causes.
// - Exit code constants: we verify Unix conventions (0=success, 1=general, 2=usage)
//   and custom codes are below 126.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	deckgen "github.com/alnah/go-deckgen"
	"github.com/alnah/go-deckgen/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", deckgen.ErrBrowserConnect, ExitBrowser},
		{"page create", deckgen.ErrPageCreate, ExitBrowser},
		{"page load", deckgen.ErrPageLoad, ExitBrowser},
		{"pdf generation", deckgen.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("failed: %w", deckgen.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read input", ErrReadInput, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"wrapped file not exist", fmt.Errorf("%w: %w", ErrReadInput, os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid config", config.ErrInvalidConfig, ExitUsage},
		{"invalid deck", deckgen.ErrInvalidDeck, ExitUsage},
		{"deck decode", deckgen.ErrDeckDecode, ExitUsage},
		{"unknown slide type", deckgen.ErrUnknownSlideType, ExitUsage},
		{"invalid color", deckgen.ErrInvalidColor, ExitUsage},
		{"invalid background type", deckgen.ErrInvalidBackgroundType, ExitUsage},
		{"invalid font size", deckgen.ErrInvalidFontSize, ExitUsage},
		{"invalid document kind", deckgen.ErrInvalidDocumentKind, ExitUsage},
		{"empty prompt", deckgen.ErrEmptyPrompt, ExitUsage},
		{"empty topic", deckgen.ErrEmptyTopic, ExitUsage},
		{"no sections", deckgen.ErrNoSections, ExitUsage},
		{"template not found", deckgen.ErrTemplateNotFound, ExitUsage},
		{"style not found", deckgen.ErrStyleNotFound, ExitUsage},
		{"invalid asset path", deckgen.ErrInvalidAssetPath, ExitUsage},
		{"invalid flag", ErrInvalidFlag, ExitUsage},
		{"invalid input", ErrInvalidInput, ExitUsage},
		{"missing api key", ErrMissingAPIKey, ExitUsage},
		{"unsupported shell", ErrUnsupportedShell, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"wrapped unknown", fmt.Errorf("context: %w", errors.New("unknown")), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := exitCodeFor(tt.err)
			if got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeFor_BatchError - Multi-input failures
// ---------------------------------------------------------------------------

func TestExitCodeFor_BatchError(t *testing.T) {
	t.Parallel()

	err := &batchError{
		failed: 2,
		total:  3,
		errs: []error{
			fmt.Errorf("a.yaml: %w", deckgen.ErrInvalidDeck),
			fmt.Errorf("b.yaml: %w", errors.New("boom")),
		},
	}

	if got := exitCodeFor(err); got != ExitUsage {
		t.Errorf("exitCodeFor(batchError) = %d, want %d", got, ExitUsage)
	}
	if got, want := err.Error(), "2 of 3 inputs failed"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	single := &batchError{failed: 1, total: 1, errs: []error{errors.New("only")}}
	if got := single.Error(); got != "only" {
		t.Errorf("Error() = %q, want %q", got, "only")
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix convention compliance
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}

	if ExitIO >= 126 {
		t.Errorf("ExitIO = %d, should be < 126", ExitIO)
	}
	if ExitBrowser >= 126 {
		t.Errorf("ExitBrowser = %d, should be < 126", ExitBrowser)
	}
}
