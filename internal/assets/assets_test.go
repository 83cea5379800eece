package assets

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		styleName string
		wantErr   error
	}{
		{name: "default style", styleName: DefaultStyleName},
		{name: "minimal style", styleName: "minimal"},
		{name: "nonexistent style", styleName: "nonexistent", wantErr: ErrStyleNotFound},
		{name: "empty name", styleName: "", wantErr: ErrInvalidAssetName},
		{name: "traversal with slash", styleName: "../secret", wantErr: ErrInvalidAssetName},
		{name: "traversal with backslash", styleName: "..\\secret", wantErr: ErrInvalidAssetName},
		{name: "extension included", styleName: "chat.css", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content, err := NewEmbeddedLoader().LoadStyle(tt.styleName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if !strings.Contains(content, ".chat-message") {
				t.Errorf("LoadStyle(%q) does not style .chat-message", tt.styleName)
			}
		})
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names := StyleNames()
	for _, want := range []string{"chat", "minimal"} {
		if !slices.Contains(names, want) {
			t.Errorf("StyleNames() = %v, missing %q", names, want)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("StyleNames() = %v, want sorted", names)
	}
}
