package normalize

import (
	"fmt"
	"html"
	"strings"
)

// Kind selects the canonical shape of the output.
type Kind string

const (
	// Report output is a heading followed by paragraphs.
	Report Kind = "report"
	// Slide output is a heading followed by a bullet list and optional notes.
	Slide Kind = "slide"
)

// Stage names reported in Result.Stage.
const (
	StageStructured  = "structured"
	StageMarkup      = "markup"
	StagePlain       = "plain"
	StagePlaceholder = "placeholder"
)

// Limits on generated structure.
const (
	maxSlideItems       = 6
	maxReportParagraphs = 8
	sentencesPerPara    = 3
)

// Result is the outcome of normalizing one response.
type Result struct {
	Markup string
	Stage  string
	// Recovered is set when a stage panicked and the chain fell back.
	Recovered error
}

// input is shared by every stage. Cleaned is the fence-stripped text.
type input struct {
	raw     string
	cleaned string
	lang    string
	kind    Kind
	context string
}

type stage struct {
	name string
	run  func(in input) string
}

// chain is ordered: earlier stages take precedence.
var chain = []stage{
	{name: StageStructured, run: structuredStage},
	{name: StageMarkup, run: markupStage},
	{name: StagePlain, run: plainStage},
}

// Normalize converts raw generator text into canonical markup for kind.
// The context string only titles output when the response carries no title.
// An unknown kind is treated as Report. Invalid UTF-8 is replaced with
// U+FFFD before any stage runs.
func Normalize(raw string, kind Kind, context string) Result {
	if kind != Slide {
		kind = Report
	}
	raw = strings.ToValidUTF8(raw, "\uFFFD")
	context = strings.ToValidUTF8(context, "\uFFFD")

	cleaned, lang := stripFences(raw)
	in := input{
		raw:     raw,
		cleaned: cleaned,
		lang:    lang,
		kind:    kind,
		context: strings.TrimSpace(context),
	}

	for _, st := range chain {
		markup, err := runStage(st, in)
		if err != nil {
			return fallbackToPlain(in, err)
		}
		if usable(markup) {
			return Result{Markup: markup, Stage: st.name}
		}
	}

	return Result{Markup: placeholder(in), Stage: StagePlaceholder}
}

// runStage executes one stage and sanitizes its output, turning a panic into an error.
func runStage(st stage, in input) (markup string, err error) {
	defer func() {
		if r := recover(); r != nil {
			markup = ""
			err = fmt.Errorf("%s stage: %v", st.name, r)
		}
	}()
	return sanitize(st.run(in)), nil
}

// fallbackToPlain is the deterministic recovery path after a stage fault.
func fallbackToPlain(in input, cause error) Result {
	markup, err := runStage(stage{name: StagePlain, run: plainStage}, in)
	if err == nil && usable(markup) {
		return Result{Markup: markup, Stage: StagePlain, Recovered: cause}
	}
	return Result{Markup: placeholder(in), Stage: StagePlaceholder, Recovered: cause}
}

// heading returns the title used when the content carries none.
func (in input) heading() string {
	if in.context != "" {
		return in.context
	}
	if in.kind == Slide {
		return "Slide"
	}
	return "Section"
}

// placeholder is the minimal fragment returned when nothing else is usable.
func placeholder(in input) string {
	title := html.EscapeString(in.heading())
	if in.kind == Slide {
		return "<h2>" + title + "</h2><ul><li>Content unavailable</li></ul>"
	}
	return "<h2>" + title + "</h2><p>Content unavailable.</p>"
}

// builder assembles canonical markup with escaped text.
type builder struct {
	sb strings.Builder
}

func (b *builder) element(tag, text string) {
	b.sb.WriteString("<" + tag + ">")
	b.sb.WriteString(html.EscapeString(text))
	b.sb.WriteString("</" + tag + ">")
}

func (b *builder) list(items []string) {
	if len(items) == 0 {
		return
	}
	b.sb.WriteString("<ul>")
	for _, item := range items {
		b.element("li", item)
	}
	b.sb.WriteString("</ul>")
}

func (b *builder) notes(text string) {
	if text == "" {
		return
	}
	b.sb.WriteString(`<p class="notes">`)
	b.sb.WriteString(html.EscapeString(text))
	b.sb.WriteString("</p>")
}

func (b *builder) String() string {
	return b.sb.String()
}
