// Package assets provides bundled style definitions and report stylesheets.
//
// Three loaders implement AssetLoader:
//
//	EmbeddedLoader    the definitions compiled into the binary
//	FilesystemLoader  a user directory, read through os.Root
//	Stack             loaders in priority order, falling through on not-found
//
// The library uses a Stack of a FilesystemLoader over the EmbeddedLoader, so
// one definition can be overridden while the others keep working.
//
// Both trees share a layout:
//
//	styles/{name}.css      report stylesheets
//	templates/{name}.yaml  style definitions
//
// Definitions are returned as raw YAML; decoding belongs to the caller.
// Names are limited to letters, digits, hyphen and underscore.
package assets
