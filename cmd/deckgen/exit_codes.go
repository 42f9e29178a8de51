package main

import (
	"errors"
	"os"

	deckgen "github.com/alnah/go-deckgen"
	"github.com/alnah/go-deckgen/internal/config"
)

// Exit codes for the deckgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, deck, or template
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, deckgen.ErrBrowserConnect) ||
		errors.Is(err, deckgen.ErrPageCreate) ||
		errors.Is(err, deckgen.ErrPageLoad) ||
		errors.Is(err, deckgen.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, deckgen.ErrInvalidDeck) ||
		errors.Is(err, deckgen.ErrDeckDecode) ||
		errors.Is(err, deckgen.ErrUnknownSlideType) ||
		errors.Is(err, deckgen.ErrInvalidColor) ||
		errors.Is(err, deckgen.ErrInvalidBackgroundType) ||
		errors.Is(err, deckgen.ErrInvalidFontSize) ||
		errors.Is(err, deckgen.ErrInvalidDocumentKind) ||
		errors.Is(err, deckgen.ErrEmptyPrompt) ||
		errors.Is(err, deckgen.ErrEmptyTopic) ||
		errors.Is(err, deckgen.ErrNoSections) ||
		errors.Is(err, deckgen.ErrTemplateNotFound) ||
		errors.Is(err, deckgen.ErrStyleNotFound) ||
		errors.Is(err, deckgen.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrMissingAPIKey) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
