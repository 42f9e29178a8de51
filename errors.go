package deckgen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for library operations.
var (
	// Deck validation errors.
	ErrInvalidDeck       = errors.New("invalid deck")
	ErrMissingDeckTitle  = errors.New("deck title is required")
	ErrUnknownSlideType  = errors.New("unknown slide type")
	ErrNilSlide          = errors.New("slide is nil")
	ErrDeckDecode        = errors.New("failed to decode deck")
	ErrInvalidSlideField = errors.New("invalid slide field")

	// Style template validation errors.
	ErrInvalidColor          = errors.New("invalid color")
	ErrInvalidBackgroundType = errors.New("invalid background type")
	ErrInvalidFontSize       = errors.New("invalid font size")

	// Assembly errors. Anything wrapped in ErrAssembly means no document
	// was produced.
	ErrAssembly = errors.New("deck assembly failed")

	// Generation errors.
	ErrInvalidDocumentKind = errors.New("invalid document kind")
	ErrEmptyPrompt         = errors.New("prompt cannot be empty")
	ErrEmptyTopic          = errors.New("topic cannot be empty")

	// Report export errors.
	ErrNoSections     = errors.New("report has no sections")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Asset loading errors.
	ErrTemplateNotFound = errors.New("template not found")
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// SlideError ties a validation failure to a slide position.
type SlideError struct {
	Index int
	Kind  SlideKind
	Err   error
}

func (e *SlideError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("slide %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("slide %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *SlideError) Unwrap() error { return e.Err }

// ValidationError aggregates every problem found in a deck. It matches
// ErrInvalidDeck and each wrapped cause with errors.Is.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%v: %s", ErrInvalidDeck, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() []error {
	return append([]error{ErrInvalidDeck}, e.Errs...)
}

// SlideIndices returns the positions of the slides that failed.
func (e *ValidationError) SlideIndices() []int {
	var out []int
	for _, err := range e.Errs {
		var se *SlideError
		if errors.As(err, &se) {
			out = append(out, se.Index)
		}
	}
	return out
}
