package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Built-in asset names.
const (
	// DefaultTemplateName is the style definition used when a deck names none.
	DefaultTemplateName = "professional_clean"

	// DefaultStyleName is the report stylesheet used when none is requested.
	DefaultStyleName = "report"
)

// AssetLoader reads style definitions and report stylesheets by name.
type AssetLoader interface {
	// LoadStyle returns the stylesheet {name}.css or ErrStyleNotFound.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns the raw definition {name}.yaml or ErrTemplateNotFound.
	LoadTemplate(name string) ([]byte, error)

	// ListTemplates returns the sorted names of the available definitions.
	ListTemplates() ([]string, error)
}

// kind is one asset family: its directory, extension and not-found sentinel.
type kind struct {
	dir      string
	ext      string
	notFound error
}

var (
	styleKind    = kind{dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
	templateKind = kind{dir: "templates", ext: ".yaml", notFound: ErrTemplateNotFound}
)

// file returns the slash-separated path of name inside an asset tree.
func (k kind) file(name string) string {
	return path.Join(k.dir, name+k.ext)
}

// readAsset reads a validated name of kind k from fsys.
func readAsset(fsys fs.FS, k kind, name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, k.file(name))
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %q", k.notFound, name)
	default:
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
}

// listAssets returns the sorted valid names of kind k in fsys.
// A missing directory is an empty list.
func listAssets(fsys fs.FS, k kind) ([]string, error) {
	entries, err := fs.ReadDir(fsys, k.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), k.ext)
		if e.IsDir() || !ok || ValidateAssetName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
