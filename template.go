package deckgen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-deckgen/internal/layout"
)

// Background types.
const (
	BackgroundSolid    = layout.BackgroundSolid
	BackgroundGradient = layout.BackgroundGradient
	BackgroundImage    = layout.BackgroundImage
)

// Title slide layout hints.
const (
	HintLeftPhotoRightText = layout.HintLeftPhotoRightText
	HintCenteredBig        = layout.HintCenteredBig
	HintFullBleedImage     = layout.HintFullBleedImage
)

// Summary slide layout hints.
const (
	HintAccentStrip = layout.HintAccentStrip
	HintPlain       = layout.HintPlain
)

// Hard defaults applied to every attribute left unset.
const (
	DefaultAccentColor      = "#0A74DA"
	DefaultBackgroundColor  = "#FFFFFF"
	DefaultBackgroundType   = BackgroundSolid
	DefaultFont             = "Arial"
	DefaultTitleFontSize    = 40
	DefaultSubtitleFontSize = 18
	DefaultHeadingFontSize  = 22
	DefaultBodyFontSize     = 16
	DefaultTitleHint        = HintCenteredBig
	DefaultSummaryHint      = HintAccentStrip
)

// StyleTemplate holds the visual parameters of a deck. Field tags follow the
// bundled YAML definitions, so a template decodes from the same shape a
// client submits.
type StyleTemplate struct {
	Name            string   `yaml:"name,omitempty" json:"name,omitempty"`
	Description     string   `yaml:"description,omitempty" json:"description,omitempty"`
	AccentColor     string   `yaml:"accentColor,omitempty" json:"accentColor,omitempty"`
	BackgroundColor string   `yaml:"bgColor,omitempty" json:"bgColor,omitempty"`
	BackgroundType  string   `yaml:"bgType,omitempty" json:"bgType,omitempty"`
	Gradient        Gradient `yaml:"bgGradient,omitempty" json:"bgGradient,omitempty"`
	BackgroundImage string   `yaml:"bgImage,omitempty" json:"bgImage,omitempty"`

	FontTitle string `yaml:"fontTitle,omitempty" json:"fontTitle,omitempty"`
	FontBody  string `yaml:"fontBody,omitempty" json:"fontBody,omitempty"`

	TitleFontSize    float64 `yaml:"titleFontSize,omitempty" json:"titleFontSize,omitempty"`
	SubtitleFontSize float64 `yaml:"subtitleFontSize,omitempty" json:"subtitleFontSize,omitempty"`
	HeadingFontSize  float64 `yaml:"headingFontSize,omitempty" json:"headingFontSize,omitempty"`
	BodyFontSize     float64 `yaml:"bodyFontSize,omitempty" json:"bodyFontSize,omitempty"`

	// ProfilePhotoPlaceholder is a pointer so an explicit false survives
	// merging over a bundled definition that sets it.
	ProfilePhotoPlaceholder *bool `yaml:"profilePhotoPlaceholder,omitempty" json:"profilePhotoPlaceholder,omitempty"`

	LayoutHints LayoutHints `yaml:"layoutHints,omitempty" json:"layoutHints,omitempty"`
}

// Gradient holds the two stops of a gradient background.
type Gradient struct {
	From string `yaml:"from,omitempty" json:"from,omitempty"`
	To   string `yaml:"to,omitempty" json:"to,omitempty"`
}

// LayoutHints selects a layout strategy per slide kind. Unknown hints fall
// back to the default arrangement of that kind.
type LayoutHints struct {
	TitleSlide string `yaml:"titleSlide,omitempty" json:"titleSlide,omitempty"`
	Summary    string `yaml:"summary,omitempty" json:"summary,omitempty"`
}

// PhotoPlaceholder reports the resolved placeholder flag.
func (t *StyleTemplate) PhotoPlaceholder() bool {
	return t != nil && t.ProfilePhotoPlaceholder != nil && *t.ProfilePhotoPlaceholder
}

// hardDefaults is the fallback for every attribute.
func hardDefaults() StyleTemplate {
	placeholder := false
	return StyleTemplate{
		AccentColor:             DefaultAccentColor,
		BackgroundColor:         DefaultBackgroundColor,
		BackgroundType:          DefaultBackgroundType,
		FontTitle:               DefaultFont,
		FontBody:                DefaultFont,
		TitleFontSize:           DefaultTitleFontSize,
		SubtitleFontSize:        DefaultSubtitleFontSize,
		HeadingFontSize:         DefaultHeadingFontSize,
		BodyFontSize:            DefaultBodyFontSize,
		ProfilePhotoPlaceholder: &placeholder,
		LayoutHints: LayoutHints{
			TitleSlide: DefaultTitleHint,
			Summary:    DefaultSummaryHint,
		},
	}
}

var hexColor = regexp.MustCompile(`^#?([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// normalizeColor accepts #RRGGBB, RRGGBB or #RGB and returns #RRGGBB in
// upper case.
func normalizeColor(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	m := hexColor.FindStringSubmatch(v)
	if m == nil {
		return "", fmt.Errorf("%w: %s %q", ErrInvalidColor, field, value)
	}
	digits := strings.ToUpper(m[1])
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	return "#" + digits, nil
}

// Validate checks an already resolved template. A nil template is valid.
func (t *StyleTemplate) Validate() error {
	if t == nil {
		return nil
	}
	colors := []struct {
		field string
		value string
	}{
		{"accentColor", t.AccentColor},
		{"bgColor", t.BackgroundColor},
		{"bgGradient.from", t.Gradient.From},
		{"bgGradient.to", t.Gradient.To},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		if _, err := normalizeColor(c.field, c.value); err != nil {
			return err
		}
	}

	switch strings.ToLower(t.BackgroundType) {
	case "", BackgroundSolid, BackgroundGradient, BackgroundImage:
	default:
		return fmt.Errorf("%w: %q (must be solid, gradient or image)", ErrInvalidBackgroundType, t.BackgroundType)
	}

	sizes := []struct {
		field string
		value float64
	}{
		{"titleFontSize", t.TitleFontSize},
		{"subtitleFontSize", t.SubtitleFontSize},
		{"headingFontSize", t.HeadingFontSize},
		{"bodyFontSize", t.BodyFontSize},
	}
	for _, s := range sizes {
		if s.value < 0 || s.value > maxFontSize {
			return fmt.Errorf("%w: %s %v (must be 0-%d)", ErrInvalidFontSize, s.field, s.value, maxFontSize)
		}
	}
	return nil
}

// maxFontSize bounds point sizes to something that fits on a slide.
const maxFontSize = 400

// canonicalize normalizes colors and the background type in place. It
// assumes Validate passed.
func (t *StyleTemplate) canonicalize() {
	t.AccentColor, _ = normalizeColor("accentColor", t.AccentColor)
	t.BackgroundColor, _ = normalizeColor("bgColor", t.BackgroundColor)
	if t.Gradient.From == "" {
		t.Gradient.From = t.BackgroundColor
	}
	if t.Gradient.To == "" {
		t.Gradient.To = t.BackgroundColor
	}
	t.Gradient.From, _ = normalizeColor("bgGradient.from", t.Gradient.From)
	t.Gradient.To, _ = normalizeColor("bgGradient.to", t.Gradient.To)
	t.BackgroundType = strings.ToLower(t.BackgroundType)
	t.BackgroundImage = strings.TrimSpace(t.BackgroundImage)
}

// style converts a resolved template to the layout engine's form.
func (t StyleTemplate) style() layout.Style {
	return layout.Style{
		Accent:                  strings.TrimPrefix(t.AccentColor, "#"),
		Background:              strings.TrimPrefix(t.BackgroundColor, "#"),
		BackgroundType:          t.BackgroundType,
		GradientFrom:            strings.TrimPrefix(t.Gradient.From, "#"),
		GradientTo:              strings.TrimPrefix(t.Gradient.To, "#"),
		BackgroundImage:         t.BackgroundImage,
		FontTitle:               t.FontTitle,
		FontBody:                t.FontBody,
		TitleSize:               t.TitleFontSize,
		SubtitleSize:            t.SubtitleFontSize,
		HeadingSize:             t.HeadingFontSize,
		BodySize:                t.BodyFontSize,
		TitleHint:               t.LayoutHints.TitleSlide,
		SummaryHint:             t.LayoutHints.Summary,
		ProfilePhotoPlaceholder: t.PhotoPlaceholder(),
	}
}
