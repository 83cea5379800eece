package pipeline

import "strings"

// htmlEscaper replaces the five HTML-significant characters.
// strings.Replacer scans left to right without rescanning its own output,
// so "&" can never be escaped twice.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes text for use as element content or a quoted attribute value.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
