package deckgen

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-deckgen/internal/layout"
	"github.com/alnah/go-deckgen/internal/pptx"
)

// Application is recorded in the document properties of generated files.
const Application = "deckgen"

// Assembler turns decks into presentation files. It holds no per-deck
// state, so one Assembler may serve concurrent Assemble calls as long as
// its image fetcher is safe for concurrent use (the built-in one is).
type Assembler struct {
	cfg      *settings
	resolver *TemplateResolver
	images   *imageSource
}

// NewAssembler creates an Assembler.
// Use options to customize behavior (e.g., WithLogger, WithImageFetcher, WithAssetPath).
func NewAssembler(opts ...Option) (*Assembler, error) {
	cfg := newSettings(opts)

	loader, err := cfg.loader()
	if err != nil {
		return nil, err
	}
	fetcher, err := cfg.imageFetcher()
	if err != nil {
		return nil, fmt.Errorf("creating image fetcher: %w", err)
	}

	return &Assembler{
		cfg:      cfg,
		resolver: NewTemplateResolver(loader),
		images:   &imageSource{fetcher: fetcher},
	}, nil
}

// Resolver returns the template resolver used by Assemble.
func (a *Assembler) Resolver() *TemplateResolver {
	return a.resolver
}

// Assemble validates the deck, resolves its template, renders every slide
// in order and returns the serialized presentation.
//
// Image failures degrade the affected element and are only logged. Any
// renderer or serializer fault fails the whole deck with ErrAssembly; no
// partial document is ever returned.
func (a *Assembler) Assemble(ctx context.Context, deck *Deck) (doc []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: internal error: %v", ErrAssembly, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := deck.Validate(); err != nil {
		return nil, err
	}

	tmpl, err := a.resolver.Resolve(deck.Template)
	if err != nil {
		return nil, err
	}

	a.cfg.log.Info("building deck", "title", deck.Title, "slides", len(deck.Slides), "template", tmpl.Name)

	pages, err := a.render(ctx, deck, tmpl)
	if err != nil {
		return nil, err
	}

	doc, err = pptx.Encode(pages, a.meta(deck, tmpl))
	if err != nil {
		return nil, fmt.Errorf("%w: serializing: %v", ErrAssembly, err)
	}
	a.cfg.log.Debug("deck assembled", "title", deck.Title, "pages", len(pages), "bytes", len(doc))
	return doc, nil
}

// AssembleTo writes the presentation to w. Nothing is written on failure.
func (a *Assembler) AssembleTo(ctx context.Context, w io.Writer, deck *Deck) error {
	doc, err := a.Assemble(ctx, deck)
	if err != nil {
		return err
	}
	_, err = w.Write(doc)
	return err
}

// render lays out every slide with a fresh renderer, so image lookups are
// memoized for this deck only.
func (a *Assembler) render(ctx context.Context, deck *Deck, tmpl StyleTemplate) ([]layout.Page, error) {
	d := &deckRenderer{
		ctx:       ctx,
		r:         layout.NewRenderer(a.images, a.cfg.log),
		st:        tmpl.style(),
		deckTitle: deck.Title,
	}
	for i, s := range deck.Slides {
		before := len(d.pages)
		if err := s.accept(d); err != nil {
			return nil, fmt.Errorf("%w: slide %d (%s): %v", ErrAssembly, i, s.Kind(), err)
		}
		a.cfg.log.Debug("slide rendered", "slide", i, "kind", s.Kind(), "pages", len(d.pages)-before)
	}
	return d.pages, nil
}

func (a *Assembler) meta(deck *Deck, tmpl StyleTemplate) pptx.Meta {
	return pptx.Meta{
		Title:       deck.Title,
		Author:      deck.Author,
		Created:     a.cfg.now().UTC(),
		Application: Application,
		Accent:      strings.TrimPrefix(tmpl.AccentColor, "#"),
		HeadingFont: tmpl.FontTitle,
		BodyFont:    tmpl.FontBody,
	}
}

// deckRenderer dispatches each slide to its layout strategy and
// accumulates pages. Every slide starts on a fresh page.
type deckRenderer struct {
	ctx       context.Context
	r         *layout.Renderer
	st        layout.Style
	deckTitle string
	pages     []layout.Page
	cursor    layout.Cursor
}

var _ slideVisitor = (*deckRenderer)(nil)

func (d *deckRenderer) emit(pages []layout.Page, next layout.Cursor, err error) error {
	if err != nil {
		return err
	}
	d.pages = append(d.pages, pages...)
	d.cursor = layout.Cursor{Page: next.Page}
	return nil
}

// visitTitle uses the deck title when the slide has none.
func (d *deckRenderer) visitTitle(s *TitleSlide) error {
	title := s.Title
	if strings.TrimSpace(title) == "" {
		title = d.deckTitle
	}
	return d.emit(d.r.Title(d.ctx, layout.TitleSlide{
		Title: title, Subtitle: s.Subtitle, Images: s.Images, Notes: s.Notes,
	}, d.st, d.cursor))
}

func (d *deckRenderer) visitSummary(s *SummarySlide) error {
	return d.emit(d.r.Summary(d.ctx, layout.ListSlide{Title: s.Title, Bullets: s.Bullets, Notes: s.Notes}, d.st, d.cursor))
}

func (d *deckRenderer) visitSkills(s *SkillsSlide) error {
	return d.emit(d.r.Skills(d.ctx, layout.ListSlide{Title: s.Title, Bullets: s.Bullets, Notes: s.Notes}, d.st, d.cursor))
}

func (d *deckRenderer) visitContact(s *ContactSlide) error {
	return d.emit(d.r.Contact(d.ctx, layout.ListSlide{Title: s.Title, Bullets: s.Bullets, Notes: s.Notes}, d.st, d.cursor))
}

func (d *deckRenderer) visitExperience(s *ExperienceSlide) error {
	in := layout.ExperienceSlide{Title: s.Title, Notes: s.Notes}
	for _, it := range s.Items {
		in.Items = append(in.Items, layout.Experience{Role: it.Role, Company: it.Company, Dates: it.Dates, Bullets: it.Bullets})
	}
	return d.emit(d.r.Experience(d.ctx, in, d.st, d.cursor))
}

func (d *deckRenderer) visitEducation(s *EducationSlide) error {
	in := layout.EducationSlide{Title: s.Title, Notes: s.Notes}
	for _, it := range s.Items {
		in.Items = append(in.Items, layout.Education{School: it.School, Degree: it.Degree, Dates: it.Dates})
	}
	return d.emit(d.r.Education(d.ctx, in, d.st, d.cursor))
}

func (d *deckRenderer) visitProjects(s *ProjectsSlide) error {
	in := layout.ProjectsSlide{Title: s.Title, Notes: s.Notes}
	for _, it := range s.Items {
		in.Items = append(in.Items, layout.Project{Title: it.Title, Description: it.Description, Image: it.Image})
	}
	return d.emit(d.r.Projects(d.ctx, in, d.st, d.cursor))
}
