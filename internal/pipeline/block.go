package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// BlockKind classifies a single line of the buffer.
type BlockKind int

const (
	// BlockPlain is a line with no block marker.
	BlockPlain BlockKind = iota
	// BlockHeading is an ATX heading, "#" through "######".
	BlockHeading
	// BlockQuote is a "> " quoted line.
	BlockQuote
	// BlockRule is a "---" horizontal rule.
	BlockRule
	// BlockUnorderedItem is a "- " list item.
	BlockUnorderedItem
	// BlockTaskItem is a "- [ ] " or "- [x] " list item.
	BlockTaskItem
	// BlockOrderedItem is a "1. " list item.
	BlockOrderedItem
	// BlockCodeRef is a line holding only a fenced code placeholder.
	BlockCodeRef
)

// BlockToken is a classified line and the text left after its marker.
type BlockToken struct {
	Kind    BlockKind
	Level   int  // heading level 1-6
	Checked bool // task items only
	Text    string
}

// Block patterns run on escaped text, so the quote marker is "&gt;".
var (
	headingPattern   = regexp.MustCompile(`^(#{1,6})[ \t]+(.+)$`)
	quotePattern     = regexp.MustCompile(`^&gt;[ \t]+(\S.*)$`)
	taskItemPattern  = regexp.MustCompile(`^-[ \t]+\[([ xX])\][ \t]+(\S.*)$`)
	unorderedPattern = regexp.MustCompile(`^-[ \t]+(\S.*)$`)
	orderedPattern   = regexp.MustCompile(`^[0-9]+\.[ \t]+(\S.*)$`)
)

const horizontalRule = "---"

// classifyLine maps one line to a BlockToken.
// Task items are tested before plain unordered items: the checkbox
// pattern is stricter and would otherwise be read as item text.
func classifyLine(line string, spans *spanTable) BlockToken {
	if kind, ok := spans.kindAt(line); ok && kind == SpanFencedCode {
		return BlockToken{Kind: BlockCodeRef, Text: line}
	}

	if m := headingPattern.FindStringSubmatch(line); m != nil {
		if text := strings.TrimSpace(m[2]); text != "" {
			return BlockToken{Kind: BlockHeading, Level: len(m[1]), Text: text}
		}
	}

	if m := quotePattern.FindStringSubmatch(line); m != nil {
		return BlockToken{Kind: BlockQuote, Text: m[1]}
	}

	if line == horizontalRule {
		return BlockToken{Kind: BlockRule}
	}

	if m := taskItemPattern.FindStringSubmatch(line); m != nil {
		return BlockToken{Kind: BlockTaskItem, Checked: m[1] != " ", Text: m[2]}
	}

	if m := unorderedPattern.FindStringSubmatch(line); m != nil {
		return BlockToken{Kind: BlockUnorderedItem, Text: m[1]}
	}

	if m := orderedPattern.FindStringSubmatch(line); m != nil {
		return BlockToken{Kind: BlockOrderedItem, Text: m[1]}
	}

	return BlockToken{Kind: BlockPlain, Text: line}
}

// listTag returns the wrapper element for a list token, or "" for non-list tokens.
func (t BlockToken) listTag() string {
	switch t.Kind {
	case BlockUnorderedItem, BlockTaskItem:
		return "ul"
	case BlockOrderedItem:
		return "ol"
	default:
		return ""
	}
}

// transformBlocks converts the buffer line by line, applying inline rules
// to the text each block leaves over. A maximal run of same-kind list items
// is emitted as one line holding a single <ul> or <ol>.
func transformBlocks(text string, spans *spanTable, inline func(string) string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	var (
		run    strings.Builder
		runTag string
	)
	flush := func() {
		if runTag == "" {
			return
		}
		out = append(out, "<"+runTag+">"+run.String()+"</"+runTag+">")
		run.Reset()
		runTag = ""
	}

	for _, line := range lines {
		tok := classifyLine(line, spans)

		tag := tok.listTag()
		if tag != runTag {
			flush()
			runTag = tag
		}
		if tag != "" {
			run.WriteString(renderListItem(tok, inline))
			continue
		}

		out = append(out, renderBlock(tok, inline))
	}
	flush()

	return strings.Join(out, "\n")
}

// renderListItem renders one <li> element.
func renderListItem(tok BlockToken, inline func(string) string) string {
	if tok.Kind == BlockTaskItem {
		box := `<input type="checkbox" disabled />`
		if tok.Checked {
			box = `<input type="checkbox" disabled checked />`
		}
		return "<li>" + box + " " + inline(tok.Text) + "</li>"
	}
	return "<li>" + inline(tok.Text) + "</li>"
}

// renderBlock renders a non-list token.
func renderBlock(tok BlockToken, inline func(string) string) string {
	switch tok.Kind {
	case BlockHeading:
		tag := "h" + strconv.Itoa(tok.Level)
		return "<" + tag + ">" + inline(tok.Text) + "</" + tag + ">"
	case BlockQuote:
		return "<blockquote>" + inline(tok.Text) + "</blockquote>"
	case BlockRule:
		return "<hr />"
	case BlockCodeRef:
		return tok.Text
	default:
		return inline(tok.Text)
	}
}
