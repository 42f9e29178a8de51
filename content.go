package deckgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-deckgen/internal/logger"
	"github.com/alnah/go-deckgen/internal/normalize"
)

// DocumentKind selects the canonical shape of generated content.
type DocumentKind string

// Document kinds.
const (
	// DocumentReport content is a heading followed by paragraphs.
	DocumentReport DocumentKind = "report"
	// DocumentSlide content is a heading, a bullet list and optional notes.
	DocumentSlide DocumentKind = "slide"
)

// ParseDocumentKind accepts report or slide, and the docx and pptx aliases.
func ParseDocumentKind(s string) (DocumentKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "report", "docx":
		return DocumentReport, nil
	case "slide", "slides", "pptx":
		return DocumentSlide, nil
	}
	return "", fmt.Errorf("%w: %q (must be report or slide)", ErrInvalidDocumentKind, s)
}

// Valid reports whether k is a known kind.
func (k DocumentKind) Valid() bool {
	return k == DocumentReport || k == DocumentSlide
}

// Normalization stages reported in GeneratedContent.Stage.
const (
	StageStructured  = normalize.StageStructured
	StageMarkup      = normalize.StageMarkup
	StagePlain       = normalize.StagePlain
	StagePlaceholder = normalize.StagePlaceholder
)

// Provenance records where generated content came from.
type Provenance struct {
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
	// Fallback is set when the content is mock output, either because no
	// provider is configured or because the provider failed.
	Fallback bool `json:"fallback"`
	// RawResponseRef identifies the raw response for storage elsewhere.
	RawResponseRef string    `json:"rawResponseRef,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// GeneratedContent is canonical markup plus its origin. Markup only holds
// h1-h4, p, ul, ol and li elements and is never empty.
type GeneratedContent struct {
	Markup       string       `json:"markup"`
	Kind         DocumentKind `json:"kind"`
	GenerationID string       `json:"generationId,omitempty"`
	Stage        string       `json:"stage"`
	Provenance   Provenance   `json:"provenance"`
	// Raw is the unmodified provider response.
	Raw string `json:"-"`
}

// Normalize converts raw generator output into canonical markup. It never
// fails: malformed input degrades through structured, markup and
// plain-text interpretations down to a placeholder fragment. context
// titles the output when the response has no title of its own. Kinds other
// than DocumentSlide are treated as DocumentReport.
func Normalize(raw string, kind DocumentKind, context string) GeneratedContent {
	return normalizeLogged(logger.Nop(), raw, kind, context)
}

// normalizeLogged is Normalize with recovered faults reported to log.
func normalizeLogged(log Logger, raw string, kind DocumentKind, context string) GeneratedContent {
	if kind != DocumentSlide {
		kind = DocumentReport
	}
	res := normalize.Normalize(raw, normalize.Kind(kind), context)
	if res.Recovered != nil {
		log.Warn("normalization recovered from a fault", "kind", kind, "stage", res.Stage, "err", res.Recovered)
	}
	return GeneratedContent{Markup: res.Markup, Kind: kind, Stage: res.Stage, Raw: raw}
}

// SanitizeMarkup restricts markup to the canonical tag set, keeping the
// text of anything else.
func SanitizeMarkup(markup string) string {
	return normalize.Sanitize(markup)
}
