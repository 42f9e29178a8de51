package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var lineOrPeriod = regexp.MustCompile(`[\n.]+`)

// splitSentences splits text after '.', '?' or '!' when followed by whitespace.
// The terminator stays with its sentence. Empty pieces are dropped.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i, r := range text {
		if r != '.' && r != '?' && r != '!' {
			continue
		}
		next := i + utf8.RuneLen(r)
		if next >= len(text) {
			break
		}
		nr, _ := utf8.DecodeRuneInString(text[next:])
		if !unicode.IsSpace(nr) {
			continue
		}
		if s := strings.TrimSpace(text[start:next]); s != "" {
			sentences = append(sentences, s)
		}
		start = next
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// slideItems splits sentences further on newlines and periods, keeping up to limit items.
func slideItems(sentences []string, limit int) []string {
	var items []string
	for _, s := range sentences {
		for _, part := range lineOrPeriod.Split(s, -1) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			items = append(items, part)
			if len(items) == limit {
				return items
			}
		}
	}
	return items
}

// groupParagraphs joins sentences in groups of size, keeping up to limit paragraphs.
func groupParagraphs(sentences []string, size, limit int) []string {
	var paras []string
	for i := 0; i < len(sentences) && len(paras) < limit; i += size {
		end := min(i+size, len(sentences))
		paras = append(paras, strings.Join(sentences[i:end], " "))
	}
	return paras
}
