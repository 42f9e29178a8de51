package main

import (
	"context"

	deckgen "github.com/alnah/go-deckgen"
)

// runBuild assembles one presentation per deck file.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	f, inputs, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return ErrNoInput
	}
	if err := validateWorkers(f.workers); err != nil {
		return err
	}

	s, err := newSession(f.common, env)
	if err != nil {
		return err
	}

	jobs, err := planJobs(inputs, f.output, s.cfg.Output.Dir, "pptx", nil)
	if err != nil {
		return err
	}

	results := runJobs(ctx, jobs, s.workers(f.workers), env.Now, func(ctx context.Context, j job) ([]string, error) {
		return []string{j.OutputPath}, buildDeck(ctx, s, f.assets, j)
	})
	return reportResults(results, s)
}

// buildDeck reads, assembles and writes one deck.
func buildDeck(ctx context.Context, s *session, assets assetFlags, j job) error {
	data, err := readInput(j.InputPath, s.env.Stdin)
	if err != nil {
		return err
	}
	deck, err := deckgen.DecodeDeck(data)
	if err != nil {
		return err
	}
	applyTemplateFlag(deck, assets.template)

	opts := append(s.options(assets.assetPath), s.localImages(j.InputPath)...)
	asm, err := deckgen.NewAssembler(opts...)
	if err != nil {
		return err
	}

	doc, err := asm.Assemble(ctx, deck)
	if err != nil {
		return err
	}
	s.log.Info("deck built", "input", j.InputPath, "slides", len(deck.Slides), "bytes", len(doc))
	return writeOutput(j.OutputPath, doc)
}

// applyTemplateFlag selects a style definition by name while keeping the
// deck's own overrides.
func applyTemplateFlag(deck *deckgen.Deck, name string) {
	if name == "" {
		return
	}
	if deck.Template == nil {
		deck.Template = &deckgen.StyleTemplate{}
	}
	deck.Template.Name = name
}
