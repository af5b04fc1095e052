package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*.css
var styles embed.FS

//go:embed content/*.yaml
var content embed.FS

// EmbeddedLoader loads assets from the embedded filesystem.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a CSS stylesheet from embedded assets by name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	data, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(data), nil
}

// LoadContent loads a YAML content file from embedded assets by name.
// The returned slice is a fresh copy owned by the caller.
func (e *EmbeddedLoader) LoadContent(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	data, err := content.ReadFile("content/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrContentNotFound, name)
	}

	return data, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
