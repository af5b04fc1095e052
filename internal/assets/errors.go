package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrStyleNotFound indicates the requested stylesheet does not exist.
	ErrStyleNotFound = errors.New("style not found")

	// ErrContentNotFound indicates the requested content file does not exist.
	ErrContentNotFound = errors.New("content not found")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")
)
