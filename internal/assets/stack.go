package assets

import (
	"errors"
	"slices"
)

// Stack layers loaders in priority order. A lookup falls through to the next
// layer only when the asset is missing; invalid names and I/O errors stop it.
type Stack struct {
	layers []AssetLoader
}

// NewStack returns the embedded assets, overlaid by customBasePath when set.
func NewStack(customBasePath string) (*Stack, error) {
	s := &Stack{layers: []AssetLoader{NewEmbeddedLoader()}}
	if customBasePath == "" {
		return s, nil
	}
	custom, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	s.layers = slices.Insert(s.layers, 0, AssetLoader(custom))
	return s, nil
}

// Custom reports whether a directory overlays the embedded assets.
func (s *Stack) Custom() bool {
	return len(s.layers) > 1
}

// LoadStyle returns the first stylesheet found.
func (s *Stack) LoadStyle(name string) (string, error) {
	return first(s.layers, func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

// LoadTemplate returns the first definition found.
func (s *Stack) LoadTemplate(name string) ([]byte, error) {
	return first(s.layers, func(l AssetLoader) ([]byte, error) { return l.LoadTemplate(name) })
}

// ListTemplates returns the sorted union of every layer's definitions.
func (s *Stack) ListTemplates() ([]string, error) {
	var all []string
	for _, l := range s.layers {
		names, err := l.ListTemplates()
		if err != nil {
			return nil, err
		}
		all = append(all, names...)
	}
	slices.Sort(all)
	return slices.Compact(all), nil
}

func first[T any](layers []AssetLoader, load func(AssetLoader) (T, error)) (T, error) {
	var (
		v   T
		err error
	)
	for _, l := range layers {
		v, err = load(l)
		if !errors.Is(err, ErrStyleNotFound) && !errors.Is(err, ErrTemplateNotFound) {
			return v, err
		}
	}
	return v, err
}

var _ AssetLoader = (*Stack)(nil)
