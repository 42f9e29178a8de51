package deckgen

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/alnah/go-deckgen/internal/normalize"
)

// generationIDLength is the number of hex digits kept from the digest.
const generationIDLength = 12

// Request asks for content for one section or slide.
type Request struct {
	ProjectID  string
	SectionID  string
	SlideIndex *int
	// Context is advisory: the section title or a short brief. It titles
	// the output when the response carries no title.
	Context  string
	Kind     DocumentKind
	Template string
}

// Validate checks the request kind.
func (r Request) Validate() error {
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: %q (must be report or slide)", ErrInvalidDocumentKind, r.Kind)
	}
	return nil
}

// absentSlot stands in for an unset section or slide in the generation key.
const absentSlot = "None"

// key identifies the slot being generated.
func (r Request) key() string {
	section, slide := r.SectionID, absentSlot
	if section == "" {
		section = absentSlot
	}
	if r.SlideIndex != nil {
		slide = strconv.Itoa(*r.SlideIndex)
	}
	return fmt.Sprintf("project:%s|section:%s|slide:%s", r.ProjectID, section, slide)
}

// GenerationID is stable for a given project, section and slide.
func (r Request) GenerationID() string {
	sum := sha256.Sum256([]byte(r.key()))
	return hex.EncodeToString(sum[:])[:generationIDLength]
}

// Generator produces canonical content from a text provider. Provider
// failures never surface: the Generator falls back to mock content and
// flags it in the provenance.
type Generator struct {
	cfg      *settings
	provider Provider
	mock     *MockProvider
}

// NewGenerator creates a Generator. Without WithProvider every request is
// served by the mock provider.
func NewGenerator(opts ...Option) *Generator {
	cfg := newSettings(opts)
	return &Generator{cfg: cfg, provider: cfg.provider, mock: NewMockProvider()}
}

// ProviderName returns the name of the configured provider.
func (g *Generator) ProviderName() string {
	if g.provider == nil {
		return g.mock.Name()
	}
	return g.provider.Name()
}

// call runs p on the provider and falls back to the mock on failure.
func (g *Generator) call(ctx context.Context, p Prompt) (string, Provenance) {
	prov := Provenance{CreatedAt: g.cfg.now().UTC(), RawResponseRef: uuid.NewString()}

	if g.provider != nil {
		raw, err := g.provider.Generate(ctx, p)
		if err == nil {
			prov.Provider = g.provider.Name()
			if m, ok := g.provider.(interface{ Model() string }); ok {
				prov.Model = m.Model()
			}
			return raw, prov
		}
		g.cfg.log.Warn("provider failed, falling back to mock", "provider", g.provider.Name(), "task", p.Task, "err", err)
	}

	raw, _ := g.mock.Generate(ctx, p)
	prov.Provider = g.mock.Name()
	prov.Fallback = true
	return raw, prov
}

// Generate produces normalized content for req. It only fails on an
// invalid request.
func (g *Generator) Generate(ctx context.Context, req Request) (GeneratedContent, error) {
	if err := req.Validate(); err != nil {
		return GeneratedContent{}, err
	}

	raw, prov := g.call(ctx, contentPrompt(req))
	content := normalizeLogged(g.cfg.log, raw, req.Kind, req.Context)
	content.GenerationID = req.GenerationID()
	content.Provenance = prov

	g.cfg.log.Debug("content generated", "id", content.GenerationID, "provider", prov.Provider, "stage", content.Stage)
	return content, nil
}

// BatchResult pairs a request with its outcome.
type BatchResult struct {
	Request Request
	Content GeneratedContent
	Err     error
}

// GenerateAll processes requests one after another. A failing request is
// reported in its result and does not stop the others.
func (g *Generator) GenerateAll(ctx context.Context, reqs []Request) []BatchResult {
	results := make([]BatchResult, len(reqs))
	for i, req := range reqs {
		content, err := g.Generate(ctx, req)
		results[i] = BatchResult{Request: req, Content: content, Err: err}
	}
	return results
}

// Refine rewrites existing content according to instruction.
func (g *Generator) Refine(ctx context.Context, content, instruction string, kind DocumentKind) (GeneratedContent, error) {
	if strings.TrimSpace(instruction) == "" {
		return GeneratedContent{}, ErrEmptyPrompt
	}
	if !kind.Valid() {
		return GeneratedContent{}, fmt.Errorf("%w: %q", ErrInvalidDocumentKind, kind)
	}

	raw, prov := g.call(ctx, refinePrompt(content, instruction, kind))
	title := normalize.ExtractParts(content).Title
	out := normalizeLogged(g.cfg.log, raw, kind, title)
	out.Provenance = prov
	return out, nil
}

// SuggestOutline returns up to ten unique section or slide titles for topic.
// Unusable replies fall back to numbered mock titles.
func (g *Generator) SuggestOutline(ctx context.Context, topic string, kind DocumentKind, template string) ([]string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDocumentKind, kind)
	}

	p := outlinePrompt(topic, kind, template)
	raw, prov := g.call(ctx, p)
	titles := normalize.ParseOutline(raw)
	if len(titles) == 0 && !prov.Fallback {
		g.cfg.log.Warn("outline reply unusable, falling back to mock", "provider", prov.Provider)
		titles = normalize.ParseOutline(mockOutline(topic, kind))
	}
	return titles, nil
}
