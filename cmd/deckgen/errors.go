package main

import (
	"context"
	"errors"
	"fmt"

	deckgen "github.com/alnah/go-deckgen"
	"github.com/alnah/go-deckgen/internal/config"
	"github.com/alnah/go-deckgen/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrReadInput     = errors.New("failed to read input")
	ErrInvalidInput  = errors.New("invalid input file")
	ErrWriteOutput   = errors.New("failed to write output")
	ErrInvalidFlag   = errors.New("invalid flag value")
	ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")
)

// hintFor returns the hint matching the first recognized cause of err.
func hintFor(err error, searched []string, templates func() []string) string {
	switch {
	case errors.Is(err, deckgen.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, deckgen.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(searched)
	case errors.Is(err, ErrMissingAPIKey):
		return hints.ForProviderKey()
	case errors.Is(err, deckgen.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(templates())
	case errors.Is(err, deckgen.ErrInvalidDeck), errors.Is(err, deckgen.ErrDeckDecode), errors.Is(err, ErrInvalidInput):
		return hints.ForInvalidDeck()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// batchError reports every failed input of a multi-file command.
type batchError struct {
	failed int
	total  int
	errs   []error
}

func (e *batchError) Error() string {
	if len(e.errs) == 1 {
		return e.errs[0].Error()
	}
	return fmt.Sprintf("%d of %d inputs failed", e.failed, e.total)
}

func (e *batchError) Unwrap() []error { return e.errs }
