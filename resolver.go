package deckgen

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"

	"github.com/alnah/go-deckgen/internal/yamlutil"
)

// TemplateInfo describes one available style definition.
type TemplateInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// TemplateResolver turns partial client templates into fully populated ones.
// It only reads style definitions and is safe for concurrent use when its
// loader is.
type TemplateResolver struct {
	loader AssetLoader
}

// NewTemplateResolver creates a resolver reading definitions from loader.
// A nil loader uses the embedded definitions.
func NewTemplateResolver(loader AssetLoader) *TemplateResolver {
	if loader == nil {
		loader = bundledLoader()
	}
	return &TemplateResolver{loader: loader}
}

// Load decodes the named style definition without filling defaults.
func (r *TemplateResolver) Load(name string) (StyleTemplate, error) {
	data, err := r.loader.LoadTemplate(name)
	if err != nil {
		return StyleTemplate{}, err
	}
	var t StyleTemplate
	if err := yamlutil.UnmarshalStrict(data, &t); err != nil {
		return StyleTemplate{}, fmt.Errorf("decoding template %q: %w", name, err)
	}
	if t.Name == "" {
		t.Name = name
	}
	return t, nil
}

// Resolve returns a template with every attribute set.
//
// A nil template, or one without a name, is replaced by the bundled default
// definition. A named template keeps its own fields; when the name matches a
// bundled definition, that definition fills the gaps first. Hard defaults
// fill whatever remains.
func (r *TemplateResolver) Resolve(client *StyleTemplate) (StyleTemplate, error) {
	if client == nil || strings.TrimSpace(client.Name) == "" {
		base, err := r.Load(DefaultTemplate)
		if err != nil {
			return StyleTemplate{}, fmt.Errorf("loading default template: %w", err)
		}
		return complete(base)
	}

	if err := client.Validate(); err != nil {
		return StyleTemplate{}, err
	}

	merged := *client
	if client.ProfilePhotoPlaceholder != nil {
		v := *client.ProfilePhotoPlaceholder
		merged.ProfilePhotoPlaceholder = &v
	}

	bundled, err := r.Load(client.Name)
	switch {
	case err == nil:
		// WithoutDereference keeps a set pointer field even when it points at false.
		if err := mergo.Merge(&merged, bundled, mergo.WithoutDereference); err != nil {
			return StyleTemplate{}, fmt.Errorf("merging template %q: %w", client.Name, err)
		}
	case errors.Is(err, ErrTemplateNotFound):
		// Custom name: only hard defaults apply.
	default:
		return StyleTemplate{}, err
	}

	return complete(merged)
}

// complete fills hard defaults, then validates and canonicalizes.
func complete(t StyleTemplate) (StyleTemplate, error) {
	if t.FontTitle == "" {
		t.FontTitle = t.FontBody
	}
	if err := mergo.Merge(&t, hardDefaults(), mergo.WithoutDereference); err != nil {
		return StyleTemplate{}, fmt.Errorf("applying template defaults: %w", err)
	}
	if err := t.Validate(); err != nil {
		return StyleTemplate{}, err
	}
	t.canonicalize()
	return t, nil
}

// List returns every available definition with its description.
// Definitions that fail to decode are listed without one.
func (r *TemplateResolver) List() ([]TemplateInfo, error) {
	names, err := r.loader.ListTemplates()
	if err != nil {
		return nil, err
	}
	infos := make([]TemplateInfo, 0, len(names))
	for _, name := range names {
		info := TemplateInfo{Name: name}
		if t, err := r.Load(name); err == nil {
			info.Description = t.Description
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// ResolveTemplate resolves t against the embedded definitions.
func ResolveTemplate(t *StyleTemplate) (StyleTemplate, error) {
	return NewTemplateResolver(nil).Resolve(t)
}
