package pipeline

import (
	"regexp"
	"strings"
)

var (
	// Lines opening with one of these tags are already structured.
	blockTagPattern = regexp.MustCompile(`^</?(h[1-6]|ul|ol|li|pre|blockquote|div|p|img|hr|code|strong|em|del|a)\b`)

	newlineRuns    = regexp.MustCompile(`\n+`)
	emptyParagraph = regexp.MustCompile(`<p>\s*</p>`)
)

const doubleLineBreaks = "<br><br>"

// normalizeParagraphs wraps bare lines in <p> and turns the remaining
// newlines into <br>. Blank lines are dropped before wrapping, so no
// empty paragraph is ever produced from them.
func normalizeParagraphs(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isStructuredLine(trimmed) {
			kept = append(kept, line)
			continue
		}
		kept = append(kept, "<p>"+line+"</p>")
	}

	out := strings.Join(kept, "\n")
	out = newlineRuns.ReplaceAllString(out, "<br>")
	out = strings.ReplaceAll(out, doubleLineBreaks, "<br>")
	out = emptyParagraph.ReplaceAllString(out, "")
	return out
}

// isStructuredLine reports whether a trimmed line starts with a recognized
// tag or with a span placeholder (code, image, or link markup).
func isStructuredLine(trimmed string) bool {
	return blockTagPattern.MatchString(trimmed) || startsWithPlaceholder(trimmed)
}
