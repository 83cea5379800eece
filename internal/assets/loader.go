package assets

// AssetLoader loads CSS styles by name.
type AssetLoader interface {
	// LoadStyle returns the CSS for name (without the .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist and
	// ErrInvalidAssetName if the name is unsafe.
	LoadStyle(name string) (string, error)

	// StyleNames lists the loadable style names, sorted.
	StyleNames() []string
}
