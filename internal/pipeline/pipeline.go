package pipeline

import "strings"

// ChatOptions configures a ChatRenderer.
type ChatOptions struct {
	// SideChannelTags lists tag pairs removed before rendering.
	// nil selects DefaultSideChannelTags; an empty non-nil slice disables removal.
	SideChannelTags []string

	// CodeFormatter renders fenced code bodies. nil means plain escaping.
	CodeFormatter CodeFormatter

	// SafeURLs drops links and images whose URL uses a script-capable scheme.
	SafeURLs bool
}

// ChatRenderer converts the chat-markdown dialect to an HTML fragment.
// It holds no per-call state and is safe for concurrent use.
type ChatRenderer struct {
	sanitizer *Sanitizer
	formatter CodeFormatter
	safeURLs  bool
}

// NewChatRenderer creates a ChatRenderer.
func NewChatRenderer(opts ChatOptions) *ChatRenderer {
	tags := opts.SideChannelTags
	if tags == nil {
		tags = DefaultSideChannelTags
	}
	return &ChatRenderer{
		sanitizer: NewSanitizer(tags),
		formatter: opts.CodeFormatter,
		safeURLs:  opts.SafeURLs,
	}
}

// Render runs every stage over raw and returns the fragment.
// It never fails; malformed constructs degrade to escaped literal text.
//
// Stage order:
//  1. sanitize (side-channel tags, line endings, blank lines)
//  2. replace code blocks and code spans with placeholders
//  3. escape everything left, so markup added later is the only raw HTML
//  4. block rules, with inline rules applied to each block's text
//  5. paragraph wrapping and line breaks
//  6. substitute placeholders back
func (r *ChatRenderer) Render(raw string) string {
	text := r.sanitizer.Clean(raw)
	if strings.TrimSpace(text) == "" {
		return ""
	}

	spans := &spanTable{}
	text = spans.protectFencedCode(text, r.formatter)
	text = spans.protectInlineCode(text)

	text = EscapeHTML(text)

	inline := &inlineTransformer{spans: spans, safeURLs: r.safeURLs}
	text = transformBlocks(text, spans, inline.transform)
	text = normalizeParagraphs(text)

	return spans.restore(text)
}
