package assets

import "embed"

//go:embed styles/*.css templates/*.yaml
var bundled embed.FS

// EmbeddedLoader serves the definitions and stylesheets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader returns the loader for bundled assets.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle returns a bundled report stylesheet.
func (*EmbeddedLoader) LoadStyle(name string) (string, error) {
	data, err := readAsset(bundled, styleKind, name)
	return string(data), err
}

// LoadTemplate returns a bundled style definition.
func (*EmbeddedLoader) LoadTemplate(name string) ([]byte, error) {
	return readAsset(bundled, templateKind, name)
}

// ListTemplates lists the bundled style definitions.
func (*EmbeddedLoader) ListTemplates() ([]string, error) {
	return listAssets(bundled, templateKind)
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
