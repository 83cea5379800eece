package pipeline

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used for generated CSS.
const DefaultHighlightStyle = "github"

// ErrUnknownHighlightStyle indicates the chroma style name is not registered.
var ErrUnknownHighlightStyle = errors.New("unknown highlight style")

// ChromaHighlighter formats fenced code with chroma CSS classes.
// Blocks with no language or an unknown one fall back to plain escaping.
type ChromaHighlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

// NewChromaHighlighter creates a highlighter for the named chroma style.
func NewChromaHighlighter(styleName string) (*ChromaHighlighter, error) {
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	style, ok := styles.Registry[strings.ToLower(styleName)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, styleName)
	}

	return &ChromaHighlighter{
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),           // CSS classes, stylesheet written by WriteCSS
			chromahtml.PreventSurroundingPre(true), // the renderer owns the <pre><code> wrapper
		),
		style: style,
	}, nil
}

// FormatCode implements CodeFormatter.
func (h *ChromaHighlighter) FormatCode(language, code string) (string, bool) {
	if language == "" {
		return "", false
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", false
	}

	var buf strings.Builder
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", false
	}
	return buf.String(), true
}

// WriteCSS writes the stylesheet matching the generated classes.
func (h *ChromaHighlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}

// HighlightStyles returns the registered chroma style names, sorted.
func HighlightStyles() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ CodeFormatter = (*ChromaHighlighter)(nil)
