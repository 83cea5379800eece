// Package chatmd renders the informal markdown written by chat models into
// HTML fragments that are safe to insert into a page as-is.
//
// # Quick Start
//
//	html := chatmd.Render("# Hi\n\nSome **bold** text")
//
// Render uses a shared default renderer. Build your own to change options:
//
//	r, err := chatmd.NewRenderer(
//	    chatmd.WithHighlighting(true),
//	    chatmd.WithSafeURLs(true),
//	    chatmd.WithSideChannelTags("think", "reasoning"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := r.Render(message)
//
// A Renderer is immutable and safe for concurrent use.
//
// # Dialect
//
// The chat dialect is a small, line-oriented subset of markdown:
//
//   - fenced code blocks (```lang) and `inline code`, rendered verbatim
//   - headings (# to ######), > quotes, --- rules
//   - - items, - [ ] / - [x] task items, 1. items; consecutive items share a list
//   - **bold**, *italic*, ~~strike~~, [links](url), ![images](url)
//
// Everything else is plain text. All text is HTML-escaped, so raw HTML in a
// message is shown, never interpreted. Tag pairs such as <think>...</think>,
// which models use for hidden reasoning, are removed first.
//
// Rendering never fails: unterminated fences, unmatched emphasis markers and
// similar mistakes come out as literal text.
//
// # Engines
//
// NewCommonMarkRenderer renders full CommonMark with GitHub extensions via
// goldmark instead of the chat dialect. Both renderers satisfy Engine, and
// NewEngine selects one by name.
//
// # Standalone Documents
//
// WrapDocument turns a fragment into an HTML page with an embedded style:
//
//	page, err := chatmd.WrapDocument(ctx, html, chatmd.DocumentOptions{
//	    Title:          "Answer",
//	    Style:          "chat",
//	    HighlightStyle: "github",
//	})
package chatmd
