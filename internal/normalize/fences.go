package normalize

import (
	"regexp"
	"strings"
)

var (
	openingFence = regexp.MustCompile("^```([A-Za-z0-9_+.-]*)[ \t]*\r?\n?")
	closingFence = regexp.MustCompile("\r?\n?```[ \t]*$")
)

// stripFences removes a leading and trailing triple-backtick fence.
// It returns the cleaned text and the fence language tag, lowercased.
func stripFences(raw string) (cleaned, lang string) {
	text := strings.TrimSpace(raw)
	if m := openingFence.FindStringSubmatch(text); m != nil {
		lang = strings.ToLower(m[1])
		text = text[len(m[0]):]
	}
	text = closingFence.ReplaceAllString(text, "")
	return strings.TrimSpace(text), lang
}
