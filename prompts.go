package deckgen

import (
	"fmt"
	"strings"
)

// outlineMaxTokens caps outline replies; other tasks use the provider default.
const outlineMaxTokens = 300

const contentSystemPrompt = "You are a helpful assistant that generates structured content for documents and presentations. " +
	"When asked, return structured output only, ideally JSON or a single HTML fragment. " +
	"For report output: return an HTML fragment with semantic tags (h2/h3, p, ul/li) representing the section content. " +
	`For slide output: return either a JSON object with keys like {"title": ..., "bullets": [...], "images": [...]} ` +
	"or a JSON object with an `html` field that contains safe HTML for the slide. " +
	"Do NOT include scripts, CSS, or extraneous commentary. Return strictly the JSON or HTML payload requested."

const refineSystemPrompt = "You are a helpful assistant that refines section text according to a prompt."

const outlineSystemPrompt = "You are an assistant that suggests an outline (list of section headers or slide titles) given a main topic."

// contentPrompt builds the generation prompt for one section or slide.
func contentPrompt(req Request) Prompt {
	var instructions string
	purpose := "a report-style document"
	if req.Kind == DocumentSlide {
		purpose = "a visual presentation (slides)"
		slide := 1
		if req.SlideIndex != nil {
			slide = *req.SlideIndex
		}
		instructions = fmt.Sprintf("Generate structured slide content for slide %d for the project section. ", slide) +
			"Prefer returning a JSON object with these possible keys: `title` (string), `bullets` (array of short strings), " +
			"`images` (array of {url, caption}), and optional `notes` (string). " +
			"If you return HTML instead, wrap slide content in semantic tags and return a JSON object with an `html` field. " +
			"Return ONLY the JSON object (no markdown fences, no commentary)."
	} else {
		instructions = fmt.Sprintf("Generate a report-style HTML fragment for a section titled '%s'. ", req.Context) +
			"Return either a single HTML string or a JSON object with an `html` field containing the HTML. " +
			"This should read like a short report section: include a heading (h2/h3) and 2-6 well-formed paragraphs, " +
			"each made of 2-5 sentences (aim ~150-400 words total). " +
			"Use semantic tags (h2/h3, p, ul/li) and prefer full sentences and cohesive paragraphs rather than bullet fragments. " +
			"Return ONLY the HTML or JSON (no commentary)."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate content for %s. This should be suitable for %s.", req.key(), purpose)
	if req.Template != "" {
		fmt.Fprintf(&sb, " Use the following template/style as a guide: %s.", req.Template)
	}
	sb.WriteString(" " + instructions)
	if req.Context != "" {
		sb.WriteString(" Context: " + req.Context)
	}

	return Prompt{
		Task:    TaskContent,
		Kind:    req.Kind,
		System:  contentSystemPrompt,
		User:    sb.String(),
		Subject: req.Context,
	}
}

func refinePrompt(source, instruction string, kind DocumentKind) Prompt {
	return Prompt{
		Task:        TaskRefine,
		Kind:        kind,
		System:      refineSystemPrompt,
		User:        fmt.Sprintf("Original text:\n%s\n\nRefine with prompt: %s", source, instruction),
		Source:      source,
		Instruction: instruction,
	}
}

func outlinePrompt(topic string, kind DocumentKind, template string) Prompt {
	unit := "section headers"
	if kind == DocumentSlide {
		unit = "slide titles"
	}
	user := fmt.Sprintf("Provide a JSON array of %d concise %s for the topic: %s. Return only a JSON array of strings.", mockOutlineSize, unit, topic)
	if template != "" {
		user += fmt.Sprintf(" Use the following template/style as a guide: %s.", template)
	}
	return Prompt{
		Task:      TaskOutline,
		Kind:      kind,
		System:    outlineSystemPrompt,
		User:      user,
		Subject:   topic,
		MaxTokens: outlineMaxTokens,
	}
}
