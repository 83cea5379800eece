// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the first user config path that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-chatmd") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	return forChoices(available)
}

// ForHighlightStyle returns hints for unknown chroma style names.
// The full list is long, so only the command that prints it is suggested.
func ForHighlightStyle() string {
	return format("run 'chatmd styles' to list highlight styles")
}

// ForEngine returns hints for unknown engine names.
func ForEngine(available []string) string {
	return forChoices(available)
}

// ForSideChannelTag returns hints for rejected --strip-tag values.
func ForSideChannelTag() string {
	return format("tag names start with a letter, e.g. --strip-tag reasoning")
}

// ForNoInputs returns hints when discovery found nothing to render.
func ForNoInputs(extensions []string) string {
	return format("looked for " + strings.Join(extensions, ", ") + " files")
}

func forChoices(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
