package assets

import (
	"errors"
	"slices"
)

// AssetResolver layers a custom style directory over the embedded styles.
// A custom file shadows the embedded style of the same name.
type AssetResolver struct {
	custom   *FilesystemLoader // nil without a custom directory
	embedded *EmbeddedLoader
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath
// selects the embedded styles only.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if customBasePath == "" {
		return r, nil
	}

	custom, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	r.custom = custom
	return r, nil
}

// LoadStyle loads a style, preferring the custom directory. Only
// ErrStyleNotFound falls through to the embedded styles; name validation
// and read errors are returned as-is.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	if r.custom != nil {
		css, err := r.custom.LoadStyle(name)
		if !errors.Is(err, ErrStyleNotFound) {
			return css, err
		}
	}
	return r.embedded.LoadStyle(name)
}

// StyleNames lists custom and embedded styles, sorted and deduplicated.
func (r *AssetResolver) StyleNames() []string {
	names := r.embedded.StyleNames()
	if r.custom != nil {
		names = append(names, r.custom.StyleNames()...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

var _ AssetLoader = (*AssetResolver)(nil)
