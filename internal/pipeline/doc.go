// Package pipeline implements the chat-markdown to HTML conversion pipeline.
//
// The chat renderer runs these stages over one buffer:
//   - Sanitizing (side-channel tags, line endings, blank-line runs)
//   - Code protection (fenced blocks and code spans become placeholders)
//   - Escaping of all remaining text
//   - Block rules (headings, quotes, rules, lists) with inline rules
//     (images, links, bold, italic, strikethrough) on each block's text
//   - Paragraph wrapping and line breaks
//   - Placeholder restoration
//
// Placeholders are Private Use Area runes the sanitizer strips from input,
// so nothing a later stage does can reach inside protected content.
//
// The package also hosts the goldmark CommonMark converter used as an
// alternative engine, chroma code highlighting, and the standalone
// document wrapper.
package pipeline
