package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	deckgen "github.com/alnah/go-deckgen"
	"github.com/alnah/go-deckgen/internal/yamlutil"
)

// runTemplates lists style templates, or prints one resolved definition.
func runTemplates(_ context.Context, args []string, env *Environment) error {
	f, rest, err := parseTemplatesFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	s, err := newSession(f.common, env)
	if err != nil {
		return err
	}

	var loader deckgen.AssetLoader
	if path := first(f.assets.assetPath, s.cfg.Assets.Path); path != "" {
		loader, err = deckgen.NewAssetLoader(path)
		if err != nil {
			return err
		}
	}
	resolver := deckgen.NewTemplateResolver(loader)

	if name := firstArg(rest); name != "" {
		return showTemplate(env, resolver, name, f.json)
	}

	infos, err := resolver.List()
	if err != nil {
		return err
	}
	if f.json {
		return writeJSON(env.Stdout, infos)
	}
	tw := tabwriter.NewWriter(env.Stdout, 0, 4, 2, ' ', 0)
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\n", info.Name, info.Description)
	}
	return tw.Flush()
}

// showTemplate prints a bundled or custom definition with defaults filled.
func showTemplate(env *Environment, r *deckgen.TemplateResolver, name string, asJSON bool) error {
	base, err := r.Load(name)
	if err != nil {
		return err
	}
	tmpl, err := r.Resolve(&base)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(env.Stdout, tmpl)
	}
	data, err := yamlutil.Marshal(tmpl)
	if err != nil {
		return err
	}
	_, err = env.Stdout.Write(data)
	return err
}
