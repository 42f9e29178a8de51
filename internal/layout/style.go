package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Background modes.
const (
	BackgroundSolid    = "solid"
	BackgroundGradient = "gradient"
	BackgroundImage    = "image"
)

// Title slide layout hints.
const (
	HintLeftPhotoRightText = "leftPhotoRightText"
	HintCenteredBig        = "centeredBig"
	HintFullBleedImage     = "fullBleedImage"
)

// Summary slide layout hints.
const (
	HintAccentStrip = "accentStrip"
	HintPlain       = "plain"
)

// Fixed colors.
const (
	white         = "FFFFFF"
	lightText     = "E5E7EB"
	darkText      = "1F2937"
	placeholderBG = "D1D5DB"
)

// Transparency constants from the visual design, as opacity.
const (
	gradientOverlayOpacity = 0.15 // 85% transparent
	captionOpacity         = 0.7  // 30% transparent
	captionDarken          = 0.2
)

// Style is a fully resolved template. Colors are uppercase RRGGBB.
type Style struct {
	Accent          string
	Background      string
	BackgroundType  string
	GradientFrom    string
	GradientTo      string
	BackgroundImage string

	FontTitle string
	FontBody  string

	TitleSize    float64
	SubtitleSize float64
	HeadingSize  float64
	BodySize     float64

	TitleHint               string
	SummaryHint             string
	ProfilePhotoPlaceholder bool
}

// EffectiveBackground is the color text is read against: the gradient's
// first stop, or the background color otherwise.
func (s Style) EffectiveBackground() string {
	if s.BackgroundType == BackgroundGradient && s.GradientFrom != "" {
		return s.GradientFrom
	}
	return s.Background
}

// TitleColor is white on dark backgrounds and the accent otherwise.
func (s Style) TitleColor() string {
	if IsDark(s.EffectiveBackground()) {
		return white
	}
	return s.Accent
}

// BodyColor is a light gray on dark backgrounds and near-black otherwise.
func (s Style) BodyColor() string {
	if IsDark(s.EffectiveBackground()) {
		return lightText
	}
	return darkText
}

// titleFont falls back to the body font when no title font is set.
func (s Style) titleFont() string {
	if s.FontTitle != "" {
		return s.FontTitle
	}
	return s.FontBody
}

// RGB parses RRGGBB (optionally prefixed with #).
func RGB(hex string) (r, g, b uint8, err error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("color %q: want 6 hex digits", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("color %q: %w", hex, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// Luminance is (0.299 R + 0.587 G + 0.114 B) / 255. Unparseable colors
// count as white.
func Luminance(hex string) float64 {
	r, g, b, err := RGB(hex)
	if err != nil {
		return 1
	}
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
}

// IsDark reports whether light text is needed on the color.
func IsDark(hex string) bool {
	return Luminance(hex) < 0.5
}

// Darken scales each channel toward black by amount (0..1).
func Darken(hex string, amount float64) string {
	r, g, b, err := RGB(hex)
	if err != nil {
		return strings.ToUpper(strings.TrimPrefix(hex, "#"))
	}
	k := 1 - amount
	return fmt.Sprintf("%02X%02X%02X", uint8(float64(r)*k), uint8(float64(g)*k), uint8(float64(b)*k))
}
