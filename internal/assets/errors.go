package assets

import "errors"

var (
	// ErrStyleNotFound: no embedded or custom style has the name.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidAssetName: the name is empty, too long, or could name a path.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath: the custom asset directory is missing or unreadable.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead: a custom style file exists but could not be read.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal: a style file resolves outside the asset directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
