package pipeline

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/yuin/goldmark/renderer/html"
)

// Inline patterns, in application order.
var (
	imagePattern  = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkPattern   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldPattern   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.+?)\*`)
	strikePattern = regexp.MustCompile(`~~(.+?)~~`)
)

// inlineTransformer applies emphasis, link and image rules to escaped text.
type inlineTransformer struct {
	spans    *spanTable
	safeURLs bool
}

// transform rewrites one block's text.
//
// Images run before links because both end in "(url)" and only the leading
// "!" tells them apart. Generated <img> and <a href> tags are stored as spans
// so that emphasis rules never see their attribute values. Bold runs before
// italic, whose single-star pattern would otherwise split "**x**".
func (t *inlineTransformer) transform(text string) string {
	if text == "" {
		return text
	}

	text = imagePattern.ReplaceAllStringFunc(text, func(match string) string {
		m := imagePattern.FindStringSubmatch(match)
		alt, url := m[1], normalizeURL(m[2])
		if t.rejectURL(url) {
			return alt
		}
		return t.spans.add(ProtectedSpan{
			Kind: SpanMarkup,
			HTML: `<img src="` + url + `" alt="` + alt + `" />`,
		})
	})

	text = linkPattern.ReplaceAllStringFunc(text, func(match string) string {
		m := linkPattern.FindStringSubmatch(match)
		label, url := m[1], normalizeURL(m[2])
		if t.rejectURL(url) {
			return label
		}
		open := t.spans.add(ProtectedSpan{
			Kind: SpanMarkup,
			HTML: `<a href="` + url + `">`,
		})
		return open + label + "</a>"
	})

	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicPattern.ReplaceAllString(text, "<em>$1</em>")
	text = strikePattern.ReplaceAllString(text, "<del>$1</del>")
	return text
}

// rejectURL reports whether url must be dropped under the safe-URL policy.
func (t *inlineTransformer) rejectURL(url string) bool {
	return t.safeURLs && html.IsDangerousURL([]byte(url))
}

// normalizeURL drops what a browser's URL parser ignores: ASCII tab and
// newline anywhere, and leading or trailing controls and spaces.
func normalizeURL(url string) string {
	url = strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, url)
	return strings.TrimFunc(url, func(r rune) bool {
		return r <= ' ' || unicode.IsSpace(r)
	})
}
