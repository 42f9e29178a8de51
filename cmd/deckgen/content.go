package main

import (
	"context"
	"fmt"
	"strings"

	deckgen "github.com/alnah/go-deckgen"
	"github.com/alnah/go-deckgen/internal/yamlutil"
)

// runNormalize prints the canonical markup of raw generator output.
func runNormalize(_ context.Context, args []string, env *Environment) error {
	f, rest, err := parseNormalizeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	kind, err := deckgen.ParseDocumentKind(f.kind)
	if err != nil {
		return err
	}
	s, err := newSession(f.common, env)
	if err != nil {
		return err
	}

	raw, err := readInput(firstArg(rest), env.Stdin)
	if err != nil {
		return err
	}
	content := deckgen.Normalize(string(raw), kind, f.context)
	s.log.Debug("normalized", "stage", content.Stage, "bytes", len(raw))

	if f.json {
		return writeJSON(env.Stdout, content)
	}
	_, err = fmt.Fprintln(env.Stdout, content.Markup)
	return err
}

// runGenerate produces content for one request or a batch file.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	f, rest, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	s, err := newSession(f.common, env)
	if err != nil {
		return err
	}
	gen, err := s.generator(f.provider)
	if err != nil {
		return err
	}

	if f.batch != "" {
		return generateBatch(ctx, s, gen, f.batch)
	}

	kind, err := deckgen.ParseDocumentKind(f.kind)
	if err != nil {
		return err
	}
	prompt := first(f.prompt, strings.Join(rest, " "))
	if strings.TrimSpace(prompt) == "" {
		return fmt.Errorf("%w: use --prompt", deckgen.ErrEmptyPrompt)
	}

	req := deckgen.Request{
		ProjectID: f.project,
		SectionID: f.section,
		Context:   prompt,
		Kind:      kind,
		Template:  f.template,
	}
	if f.slide != slideUnset {
		if f.slide < 0 {
			return fmt.Errorf("%w: --slide must not be negative, got %d", ErrInvalidFlag, f.slide)
		}
		slide := f.slide
		req.SlideIndex = &slide
	}

	content, err := gen.Generate(ctx, req)
	if err != nil {
		return err
	}
	if f.markup {
		_, err = fmt.Fprintln(env.Stdout, content.Markup)
		return err
	}
	return writeJSON(env.Stdout, content)
}

// batchRequest is one entry of a generate --batch file.
type batchRequest struct {
	Project  string `yaml:"project" json:"project,omitempty"`
	Section  string `yaml:"section" json:"section,omitempty"`
	Slide    *int   `yaml:"slide" json:"slide,omitempty"`
	Context  string `yaml:"context" json:"context,omitempty"`
	Kind     string `yaml:"kind" json:"kind"`
	Template string `yaml:"template" json:"template,omitempty"`
}

// batchOutput is one entry of the generate --batch result.
type batchOutput struct {
	Request batchRequest              `json:"request"`
	Content *deckgen.GeneratedContent `json:"content,omitempty"`
	Error   string                    `json:"error,omitempty"`
}

// generateBatch runs every request of a batch file in order. Invalid
// entries are reported in the output and do not stop the others.
func generateBatch(ctx context.Context, s *session, gen *deckgen.Generator, path string) error {
	var entries []batchRequest
	if err := decodeFile(path, s.env, &entries); err != nil {
		return err
	}

	reqs := make([]deckgen.Request, len(entries))
	for i, e := range entries {
		kind, err := deckgen.ParseDocumentKind(first(e.Kind, string(deckgen.DocumentSlide)))
		if err != nil {
			// Left invalid so Generate reports it for this entry only.
			kind = deckgen.DocumentKind(e.Kind)
		}
		reqs[i] = deckgen.Request{
			ProjectID:  e.Project,
			SectionID:  e.Section,
			SlideIndex: e.Slide,
			Context:    e.Context,
			Kind:       kind,
			Template:   e.Template,
		}
	}

	results := gen.GenerateAll(ctx, reqs)
	out := make([]batchOutput, len(results))
	var errs []error
	for i, r := range results {
		out[i].Request = entries[i]
		if r.Err != nil {
			out[i].Error = r.Err.Error()
			errs = append(errs, fmt.Errorf("request %d: %w", i, r.Err))
			continue
		}
		content := r.Content
		out[i].Content = &content
	}
	s.log.Info("batch generated", "requests", len(reqs), "failed", len(errs))
	if err := writeJSON(s.env.Stdout, out); err != nil {
		return err
	}
	if len(errs) > 0 {
		return &batchError{failed: len(errs), total: len(results), errs: errs}
	}
	return nil
}

// runRefine rewrites existing markup following an instruction.
func runRefine(ctx context.Context, args []string, env *Environment) error {
	f, rest, err := parseRefineFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	kind, err := deckgen.ParseDocumentKind(f.kind)
	if err != nil {
		return err
	}
	if strings.TrimSpace(f.instruction) == "" {
		return fmt.Errorf("%w: use --instruction", deckgen.ErrEmptyPrompt)
	}
	s, err := newSession(f.common, env)
	if err != nil {
		return err
	}
	gen, err := s.generator(f.provider)
	if err != nil {
		return err
	}

	source, err := readInput(firstArg(rest), env.Stdin)
	if err != nil {
		return err
	}
	content, err := gen.Refine(ctx, string(source), f.instruction, kind)
	if err != nil {
		return err
	}
	if f.json {
		return writeJSON(env.Stdout, content)
	}
	_, err = fmt.Fprintln(env.Stdout, content.Markup)
	return err
}

// runOutline prints suggested titles for a topic, one per line.
func runOutline(ctx context.Context, args []string, env *Environment) error {
	f, rest, err := parseOutlineFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	kind, err := deckgen.ParseDocumentKind(f.kind)
	if err != nil {
		return err
	}
	s, err := newSession(f.common, env)
	if err != nil {
		return err
	}
	gen, err := s.generator(f.provider)
	if err != nil {
		return err
	}

	topic := first(f.topic, strings.Join(rest, " "))
	titles, err := gen.SuggestOutline(ctx, topic, kind, f.template)
	if err != nil {
		return err
	}
	if f.json {
		return writeJSON(env.Stdout, titles)
	}
	for _, t := range titles {
		fmt.Fprintln(env.Stdout, t)
	}
	return nil
}

// decodeFile reads a YAML or JSON file strictly into v.
func decodeFile(path string, env *Environment, v any) error {
	data, err := readInput(path, env.Stdin)
	if err != nil {
		return err
	}
	if err := yamlutil.UnmarshalStrict(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidInput, path, err)
	}
	return nil
}

// firstArg returns the first positional argument or "".
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
