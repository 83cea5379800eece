package assets

import (
	"fmt"
	"strings"
)

// maxAssetNameLen bounds style names accepted from flags and config files.
const maxAssetNameLen = 64

// ValidateAssetName checks that a style name is safe to use as a filename.
// Separators and dots are rejected so a name can neither traverse
// directories nor pick a different extension.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxAssetNameLen {
		return fmt.Errorf("%w: name longer than %d bytes", ErrInvalidAssetName, maxAssetNameLen)
	}
	if strings.ContainsAny(name, "/\\.") || strings.HasPrefix(name, "-") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
