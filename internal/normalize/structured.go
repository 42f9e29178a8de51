package normalize

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Field aliases, in precedence order.
var (
	titleFields     = []string{"title", "heading"}
	bulletFields    = []string{"bullets", "points"}
	paragraphFields = []string{"paragraphs", "paras", "body"}
	textFields      = []string{"text", "content", "body"}
)

// structuredStage handles responses that parse as a JSON object or array.
// The raw text is tried first, then the fence-stripped text.
func structuredStage(in input) string {
	doc, ok := parseJSON(in.raw)
	if !ok {
		if doc, ok = parseJSON(in.cleaned); !ok {
			return ""
		}
	}

	if doc.IsArray() {
		return fromArray(doc, in)
	}

	if markup := firstString(doc, "html"); markup != "" {
		return markup
	}
	if in.kind == Slide {
		return slideFromObject(doc)
	}
	return reportFromObject(doc)
}

func parseJSON(text string) (gjson.Result, bool) {
	text = strings.TrimSpace(text)
	if text == "" || !gjson.Valid(text) {
		return gjson.Result{}, false
	}
	doc := gjson.Parse(text)
	if !doc.IsObject() && !doc.IsArray() {
		return gjson.Result{}, false
	}
	return doc, true
}

// fromArray treats a top-level array of scalars as bullets or paragraphs
// under the context heading. Arrays of objects use their first object.
func fromArray(doc gjson.Result, in input) string {
	elems := doc.Array()
	if len(elems) > 0 && elems[0].IsObject() {
		sub := in
		sub.raw = elems[0].Raw
		sub.cleaned = elems[0].Raw
		return structuredStage(sub)
	}

	items := scalars(elems)
	if len(items) == 0 {
		return ""
	}

	var b builder
	b.element("h2", in.heading())
	if in.kind == Slide {
		b.list(items[:min(len(items), maxSlideItems)])
		return b.String()
	}
	for _, p := range items[:min(len(items), maxReportParagraphs)] {
		b.element("p", p)
	}
	return b.String()
}

func slideFromObject(doc gjson.Result) string {
	title := firstString(doc, titleFields...)
	bullets := firstArray(doc, bulletFields...)
	notes := firstString(doc, "notes")

	var b builder
	if title != "" {
		b.element("h2", title)
	}
	b.list(bullets)
	b.notes(notes)
	return b.String()
}

func reportFromObject(doc gjson.Result) string {
	title := firstString(doc, titleFields...)

	paras := firstArray(doc, paragraphFields...)
	if len(paras) == 0 {
		if text := firstString(doc, textFields...); text != "" {
			paras = groupParagraphs(splitSentences(text), sentencesPerPara, maxReportParagraphs)
		}
	}
	if len(paras) > maxReportParagraphs {
		paras = paras[:maxReportParagraphs]
	}

	var b builder
	if title != "" {
		b.element("h2", title)
	}
	for _, p := range paras {
		b.element("p", p)
	}
	return b.String()
}

// firstString returns the first non-blank string among the named fields.
func firstString(doc gjson.Result, fields ...string) string {
	for _, f := range fields {
		v := doc.Get(f)
		if v.Type == gjson.String {
			if s := strings.TrimSpace(v.String()); s != "" {
				return s
			}
		}
	}
	return ""
}

// firstArray returns the scalar items of the first non-empty array among the
// named fields. Empty arrays count as absent.
func firstArray(doc gjson.Result, fields ...string) []string {
	for _, f := range fields {
		v := doc.Get(f)
		if !v.IsArray() {
			continue
		}
		if items := scalars(v.Array()); len(items) > 0 {
			return items
		}
	}
	return nil
}

// scalars keeps strings, numbers and booleans; nested values are skipped.
func scalars(elems []gjson.Result) []string {
	items := make([]string, 0, len(elems))
	for _, e := range elems {
		switch e.Type {
		case gjson.String, gjson.Number, gjson.True, gjson.False:
			if s := strings.TrimSpace(e.String()); s != "" {
				items = append(items, s)
			}
		}
	}
	return items
}
