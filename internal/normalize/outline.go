package normalize

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// MaxOutlineTitles caps ParseOutline results.
const MaxOutlineTitles = 10

var (
	embeddedArray = regexp.MustCompile(`\[\s*[^\]]+\s*\]`)
	listPrefix    = regexp.MustCompile(`^[\-*\d.)\s]+`)
)

// ParseOutline extracts section or slide titles from a generator response.
// A JSON array anywhere in the text wins; otherwise each line is a title once
// list markers and JSON punctuation are trimmed. Comma-separated lines yield
// several titles. Results are unique and capped at MaxOutlineTitles.
func ParseOutline(raw string) []string {
	cleaned, _ := stripFences(raw)

	if m := embeddedArray.FindString(cleaned); m != "" && gjson.Valid(m) {
		if titles := uniqueTitles(scalars(gjson.Parse(m).Array())); len(titles) > 0 {
			return titles
		}
	}

	var candidates []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = listPrefix.ReplaceAllString(strings.TrimSpace(line), "")
		line = strings.Trim(line, `{}[],"' `)
		if line == "" || strings.EqualFold(line, "json") {
			continue
		}
		for _, part := range strings.Split(line, ",") {
			part = strings.Trim(strings.TrimSpace(part), `"'`)
			if part != "" {
				candidates = append(candidates, part)
			}
		}
	}
	return uniqueTitles(candidates)
}

func uniqueTitles(items []string) []string {
	seen := make(map[string]bool, len(items))
	titles := make([]string, 0, min(len(items), MaxOutlineTitles))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		titles = append(titles, item)
		if len(titles) == MaxOutlineTitles {
			break
		}
	}
	return titles
}
