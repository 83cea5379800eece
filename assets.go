package chatmd

import (
	"errors"

	"github.com/alnah/go-chatmd/internal/assets"
)

// DefaultStyle is the name of the built-in document style.
const DefaultStyle = assets.DefaultStyleName

// AssetLoader loads CSS styles for standalone documents.
type AssetLoader interface {
	// LoadStyle loads a style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// StyleNames lists the styles LoadStyle can return, sorted.
	StyleNames() []string
}

// NewAssetLoader creates an AssetLoader reading {basePath}/styles/{name}.css
// with fallback to the built-in styles. An empty basePath selects the
// built-in styles only.
//
// Returns ErrInvalidAssetPath if basePath is set but not a readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{loader: resolver}, nil
}

// Styles lists the built-in style names.
func Styles() []string {
	return assets.StyleNames()
}

// assetLoaderAdapter maps internal asset errors to public sentinels.
type assetLoaderAdapter struct {
	loader assets.AssetLoader
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.loader.LoadStyle(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

func (a *assetLoaderAdapter) StyleNames() []string {
	return a.loader.StyleNames()
}

// convertAssetError maps internal asset errors to public sentinels.
func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrStyleNotFound), errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath), errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	default:
		return err
	}
}
