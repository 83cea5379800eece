package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Placeholders use Unicode Private Use Area characters.
// The sanitizer strips both runes from input, so every placeholder in the
// buffer was produced by the renderer itself.
const (
	placeholderOpen  = "\uE000" // U+E000: Private Use Area start
	placeholderClose = "\uE001" // U+E001: Private Use Area end
)

// SpanKind classifies a protected region.
type SpanKind int

const (
	// SpanFencedCode is a fenced code block.
	SpanFencedCode SpanKind = iota
	// SpanInlineCode is a backtick code span.
	SpanInlineCode
	// SpanMarkup is a tag generated by the inline transformer whose
	// attributes must not be touched by emphasis rules.
	SpanMarkup
)

// String returns the span kind name.
func (k SpanKind) String() string {
	switch k {
	case SpanFencedCode:
		return "fenced-code"
	case SpanInlineCode:
		return "inline-code"
	case SpanMarkup:
		return "markup"
	default:
		return "unknown"
	}
}

// ProtectedSpan is a finished HTML region kept out of the buffer until
// every markup-interpreting stage has run.
type ProtectedSpan struct {
	Kind     SpanKind
	Language string // fenced code only, unescaped
	HTML     string
}

var (
	// Fenced code: opening fence with optional language, closing fence on its own line.
	// The body group is lazy-optional so an empty block closes at its own fence.
	fencedCodePattern = regexp.MustCompile("(?ms)^```([^\\s`]*)[ \\t]*\\n(?:(.*?)\\n)??```[ \\t]*$")

	// Inline code: single line, non-greedy.
	inlineCodePattern = regexp.MustCompile("`([^`\\n]+?)`")

	placeholderPattern = regexp.MustCompile(placeholderOpen + `([0-9]+)` + placeholderClose)
)

// CodeFormatter renders the body of a fenced code block.
// It returns ok=false to fall back to plain escaped output.
type CodeFormatter interface {
	FormatCode(language, code string) (html string, ok bool)
}

// spanTable collects the protected spans of one render call.
type spanTable struct {
	spans []ProtectedSpan
}

// add stores a span and returns the placeholder that stands in for it.
func (t *spanTable) add(span ProtectedSpan) string {
	t.spans = append(t.spans, span)
	return placeholderOpen + strconv.Itoa(len(t.spans)-1) + placeholderClose
}

// protectFencedCode replaces terminated fenced code blocks with placeholders.
// A fence without a closing line is left in place as literal text.
func (t *spanTable) protectFencedCode(text string, formatter CodeFormatter) string {
	return fencedCodePattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := fencedCodePattern.FindStringSubmatch(match)
		language, code := groups[1], groups[2]
		return t.add(ProtectedSpan{
			Kind:     SpanFencedCode,
			Language: language,
			HTML:     renderCodeBlock(language, code, formatter),
		})
	})
}

// protectInlineCode replaces backtick code spans with placeholders.
func (t *spanTable) protectInlineCode(text string) string {
	return inlineCodePattern.ReplaceAllStringFunc(text, func(match string) string {
		code := match[1 : len(match)-1]
		return t.add(ProtectedSpan{
			Kind: SpanInlineCode,
			HTML: "<code>" + EscapeHTML(code) + "</code>",
		})
	})
}

// restore substitutes every placeholder with its span HTML.
// Span HTML never contains placeholder runes, so one pass is enough.
func (t *spanTable) restore(text string) string {
	if len(t.spans) == 0 {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		idx, err := strconv.Atoi(match[len(placeholderOpen) : len(match)-len(placeholderClose)])
		if err != nil || idx >= len(t.spans) {
			return ""
		}
		return t.spans[idx].HTML
	})
}

// kindAt reports the kind of the placeholder that makes up all of line.
func (t *spanTable) kindAt(line string) (SpanKind, bool) {
	loc := placeholderPattern.FindStringSubmatchIndex(line)
	if loc == nil || loc[0] != 0 || loc[1] != len(line) {
		return 0, false
	}
	idx, err := strconv.Atoi(line[loc[2]:loc[3]])
	if err != nil || idx >= len(t.spans) {
		return 0, false
	}
	return t.spans[idx].Kind, true
}

// renderCodeBlock builds the HTML for a fenced code block.
func renderCodeBlock(language, code string, formatter CodeFormatter) string {
	if formatter != nil {
		if body, ok := formatter.FormatCode(language, code); ok {
			return `<pre class="chroma"><code class="language-` + EscapeHTML(language) + `">` + body + "</code></pre>"
		}
	}
	return `<pre><code class="language-` + EscapeHTML(language) + `">` + EscapeHTML(code) + "</code></pre>"
}

// startsWithPlaceholder reports whether line begins with a span placeholder.
func startsWithPlaceholder(line string) bool {
	return strings.HasPrefix(line, placeholderOpen)
}
