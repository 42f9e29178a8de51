package deckgen

import (
	"errors"

	"github.com/alnah/go-deckgen/internal/assets"
)

// Built-in asset names.
const (
	// DefaultTemplate is the style definition used when a deck names none.
	DefaultTemplate = assets.DefaultTemplateName

	// DefaultReportStyle is the stylesheet reports use unless told otherwise.
	DefaultReportStyle = assets.DefaultStyleName
)

// AssetLoader supplies style definitions and report stylesheets.
//
// NewAssetLoader covers a directory overlaid on the bundled assets. Implement
// the interface to serve them from elsewhere.
type AssetLoader interface {
	// LoadStyle returns the named report stylesheet (no .css suffix), or an
	// error matching ErrStyleNotFound.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns the raw YAML definition (no .yaml suffix), or an
	// error matching ErrTemplateNotFound.
	LoadTemplate(name string) ([]byte, error)

	// ListTemplates returns the available definition names, sorted.
	ListTemplates() ([]string, error)
}

// NewAssetLoader returns the bundled assets overlaid by basePath, if set.
// Files in basePath win by name; anything missing there comes from the
// bundle. The directory layout is:
//
//	{basePath}/templates/{name}.yaml   style definitions
//	{basePath}/styles/{name}.css       report stylesheets
//
// An unreadable basePath yields ErrInvalidAssetPath.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	stack, err := assets.NewStack(basePath)
	if err != nil {
		return nil, publicAssetError(err)
	}
	return &publicLoader{inner: stack}, nil
}

// bundledLoader serves only the assets compiled into the binary.
func bundledLoader() AssetLoader {
	return &publicLoader{inner: assets.NewEmbeddedLoader()}
}

// publicLoader translates internal asset errors into exported sentinels.
type publicLoader struct {
	inner assets.AssetLoader
}

func (l *publicLoader) LoadStyle(name string) (string, error) {
	css, err := l.inner.LoadStyle(name)
	return css, publicAssetError(err)
}

func (l *publicLoader) LoadTemplate(name string) ([]byte, error) {
	data, err := l.inner.LoadTemplate(name)
	return data, publicAssetError(err)
}

func (l *publicLoader) ListTemplates() ([]string, error) {
	names, err := l.inner.ListTemplates()
	return names, publicAssetError(err)
}

var _ AssetLoader = (*publicLoader)(nil)

// assetSentinels pairs internal causes with the exported error they surface as.
// An invalid name cannot exist, so it reads as not found.
var assetSentinels = []struct{ internal, public error }{
	{assets.ErrStyleNotFound, ErrStyleNotFound},
	{assets.ErrTemplateNotFound, ErrTemplateNotFound},
	{assets.ErrInvalidAssetName, ErrTemplateNotFound},
	{assets.ErrInvalidBasePath, ErrInvalidAssetPath},
	{assets.ErrPathTraversal, ErrInvalidAssetPath},
}

// publicAssetError keeps err's message but makes it match only the exported sentinel.
func publicAssetError(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range assetSentinels {
		if errors.Is(err, m.internal) {
			return &assetError{public: m.public, msg: err.Error()}
		}
	}
	return err
}

type assetError struct {
	public error
	msg    string
}

func (e *assetError) Error() string { return e.msg }

func (e *assetError) Unwrap() error { return e.public }
