package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FilesystemLoader serves assets from a directory on disk. Every read goes
// through os.Root, so neither names nor symlinks can reach outside it.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader checks that basePath is a readable directory.
// Failures wrap ErrInvalidBasePath.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, abs)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, abs)
	}

	l := &FilesystemLoader{basePath: abs}
	if err := l.with(func(root *os.Root) error {
		_, err := fs.ReadDir(root.FS(), ".")
		return err
	}); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}
	return l, nil
}

// LoadStyle reads {basePath}/styles/{name}.css.
func (l *FilesystemLoader) LoadStyle(name string) (string, error) {
	data, err := l.read(styleKind, name)
	return string(data), err
}

// LoadTemplate reads {basePath}/templates/{name}.yaml.
func (l *FilesystemLoader) LoadTemplate(name string) ([]byte, error) {
	return l.read(templateKind, name)
}

// ListTemplates lists {basePath}/templates/*.yaml.
func (l *FilesystemLoader) ListTemplates() (names []string, err error) {
	err = l.with(func(root *os.Root) error {
		names, err = listAssets(root.FS(), templateKind)
		return err
	})
	return names, err
}

func (l *FilesystemLoader) read(k kind, name string) (data []byte, err error) {
	err = l.with(func(root *os.Root) error {
		data, err = readAsset(root.FS(), k, name)
		if errors.Is(err, ErrAssetRead) && escapes(root, k.file(name)) {
			return fmt.Errorf("%w: %s", ErrPathTraversal, k.file(name))
		}
		return err
	})
	return data, err
}

// escapes reports whether name is a symlink the root refused to follow.
func escapes(root *os.Root, name string) bool {
	info, err := root.Lstat(name)
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}

// with opens the base directory as a root for the duration of fn.
func (l *FilesystemLoader) with(fn func(*os.Root) error) error {
	root, err := os.OpenRoot(l.basePath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer root.Close()
	return fn(root)
}

var _ AssetLoader = (*FilesystemLoader)(nil)
