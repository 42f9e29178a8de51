package normalize

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown renders markdown-fenced responses. Raw HTML stays escaped.
var markdown = goldmark.New(goldmark.WithExtensions(extension.Table, extension.Strikethrough))

// markupStage accepts fence-stripped text that already looks like HTML, or
// markdown explicitly fenced as such.
func markupStage(in input) string {
	if in.cleaned == "" {
		return ""
	}

	if in.lang == "markdown" || in.lang == "md" {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(in.cleaned), &buf); err != nil {
			return ""
		}
		return buf.String()
	}

	if !strings.Contains(in.cleaned, "<") || !strings.Contains(in.cleaned, ">") {
		return ""
	}
	out := sanitize(in.cleaned)
	// Sanitized text escapes every stray bracket, so a '<' left means an element.
	if out == "" || strings.Contains(out, "<") {
		return out
	}
	return wrapBare(in, out)
}

// wrapBare puts already-escaped text in the canonical block shape for kind.
func wrapBare(in input, escaped string) string {
	var b builder
	b.element("h2", in.heading())
	if in.kind == Slide {
		b.sb.WriteString("<ul><li>" + escaped + "</li></ul>")
	} else {
		b.sb.WriteString("<p>" + escaped + "</p>")
	}
	return b.String()
}
