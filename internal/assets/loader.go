package assets

// AssetLoader defines the contract for loading stylesheets and content files.
type AssetLoader interface {
	// LoadStyle loads a CSS stylesheet by name (without .css extension).
	// Returns ErrStyleNotFound if the stylesheet doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadContent loads a YAML content file by name (without .yaml extension).
	// Returns ErrContentNotFound if the file doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadContent(name string) ([]byte, error)
}
