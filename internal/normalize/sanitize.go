package normalize

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// canonicalPolicy keeps the canonical tags; other tags are dropped with their
// text kept, and script/style bodies are removed entirely.
var canonicalPolicy = newCanonicalPolicy()

// textPolicy strips every tag, used to test for visible text.
var textPolicy = bluemonday.StrictPolicy()

func newCanonicalPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("h1", "h2", "h3", "h4", "p", "ul", "ol", "li")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^notes$`)).OnElements("p")
	return p
}

// Sanitize restricts markup to the canonical allow-list.
func Sanitize(markup string) string {
	return sanitize(markup)
}

func sanitize(markup string) string {
	if markup == "" {
		return ""
	}
	return strings.TrimSpace(canonicalPolicy.Sanitize(markup))
}

// usable reports whether markup carries any visible text.
func usable(markup string) bool {
	if markup == "" {
		return false
	}
	return strings.TrimSpace(textPolicy.Sanitize(markup)) != ""
}
