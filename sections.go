package deckgen

import (
	"strings"

	"github.com/alnah/go-deckgen/internal/fileutil"
	"github.com/alnah/go-deckgen/internal/normalize"
)

// Section is persisted content: a title and canonical markup.
type Section struct {
	Title   string `yaml:"title" json:"title"`
	Content string `yaml:"content" json:"content"`
}

// DeckFromSections builds a deck with one summary slide per section.
//
// A slide is titled by the first heading in the section markup, else by the
// section title. Its bullets are the list items, else the paragraphs, else
// the whole visible text. Paragraphs marked as notes become speaker notes.
func DeckFromSections(title, author string, tmpl *StyleTemplate, sections []Section) *Deck {
	d := &Deck{Title: title, Author: author, Template: tmpl, Slides: make([]Slide, 0, len(sections))}
	for _, sec := range sections {
		d.Slides = append(d.Slides, sectionSlide(sec))
	}
	return d
}

func sectionSlide(sec Section) *SummarySlide {
	parts := normalize.ExtractParts(sec.Content)

	s := &SummarySlide{
		Title: first(parts.Title, strings.TrimSpace(sec.Title)),
		Notes: strings.Join(parts.Notes, "\n"),
	}
	switch {
	case len(parts.Bullets) > 0:
		s.Bullets = parts.Bullets
	case len(parts.Paragraphs) > 0:
		s.Bullets = parts.Paragraphs
	case parts.Text != "" && parts.Text != parts.Title:
		s.Bullets = []string{strings.TrimSpace(strings.TrimPrefix(parts.Text, parts.Title))}
	}
	return s
}

// OutputFilename derives a file name from a document title: runs of
// characters outside letters, digits, hyphen and underscore become "_".
// ext is appended with a leading dot.
func OutputFilename(title, ext string) string {
	name := fileutil.SafeBaseName(title)
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return name
	}
	return name + "." + ext
}
