package deckgen

import (
	"errors"
	"fmt"
	"strings"
)

// Deck is the abstract description of one presentation. Slide order is
// rendering order. A deck without slides is valid and assembles to an empty
// presentation.
type Deck struct {
	Title  string
	Author string
	// Template may be partial or nil; it is resolved before rendering.
	Template *StyleTemplate
	Slides   []Slide
}

// Validate checks the deck and every slide, reporting all problems at once
// as a *ValidationError.
func (d *Deck) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: deck is nil", ErrInvalidDeck)
	}

	var errs []error
	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, ErrMissingDeckTitle)
	}
	if err := d.Template.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("template: %w", err))
	}
	for i, s := range d.Slides {
		if err := validateSlide(s); err != nil {
			se := &SlideError{Index: i, Err: err}
			if !isNilSlide(s) {
				se.Kind = s.Kind()
			}
			errs = append(errs, se)
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errs: errs}
	}
	return nil
}

func validateSlide(s Slide) error {
	if isNilSlide(s) {
		return ErrNilSlide
	}
	return s.Validate()
}

// isNilSlide catches both a nil interface and a typed nil pointer.
func isNilSlide(s Slide) bool {
	if s == nil {
		return true
	}
	return errors.Is(s.Validate(), ErrNilSlide)
}
