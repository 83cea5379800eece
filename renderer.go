package chatmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/alnah/go-chatmd/internal/pipeline"
)

// Engine names accepted by NewEngine.
const (
	EngineChat       = "chat"
	EngineCommonMark = "commonmark"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = pipeline.DefaultHighlightStyle

// Engine converts one message to an HTML fragment.
type Engine interface {
	ToHTML(ctx context.Context, text string) (string, error)
}

// Compile-time interface checks.
var (
	_ Engine                 = (*Renderer)(nil)
	_ Engine                 = (*CommonMarkRenderer)(nil)
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CodeFormatter = (*pipeline.ChromaHighlighter)(nil)
	_ pipeline.CSSInjector   = (*pipeline.CSSInjection)(nil)
)

// Renderer renders the chat dialect.
type Renderer struct {
	chat        *pipeline.ChatRenderer
	highlighter *pipeline.ChromaHighlighter // nil unless highlighting is enabled
}

// NewRenderer creates a Renderer.
// Returns ErrUnknownHighlightStyle or ErrInvalidSideChannelTag for bad options.
func NewRenderer(opts ...Option) (*Renderer, error) {
	cfg := buildConfig(opts)

	tags, err := resolveTags(cfg)
	if err != nil {
		return nil, err
	}

	r := &Renderer{}
	chatOpts := pipeline.ChatOptions{
		SideChannelTags: tags,
		SafeURLs:        cfg.safeURLs,
	}
	if cfg.highlight {
		r.highlighter, err = newHighlighter(cfg.highlightStyle)
		if err != nil {
			return nil, err
		}
		chatOpts.CodeFormatter = r.highlighter
	}
	r.chat = pipeline.NewChatRenderer(chatOpts)
	return r, nil
}

// Render converts text to an HTML fragment. It never fails.
func (r *Renderer) Render(text string) string {
	return r.chat.Render(text)
}

// ToHTML implements Engine. The only possible error is ctx's.
func (r *Renderer) ToHTML(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.Render(text), nil
}

// WriteHighlightCSS writes the stylesheet for highlighted code.
// It writes nothing when highlighting is disabled.
func (r *Renderer) WriteHighlightCSS(w io.Writer) error {
	if r.highlighter == nil {
		return nil
	}
	return r.highlighter.WriteCSS(w)
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
)

// Render converts text with the default options.
func Render(text string) string {
	defaultOnce.Do(func() {
		defaultRenderer = &Renderer{chat: pipeline.NewChatRenderer(pipeline.ChatOptions{})}
	})
	return defaultRenderer.Render(text)
}

// NewEngine returns the engine registered under name (EngineChat or
// EngineCommonMark). Matching ignores case; "" selects EngineChat.
func NewEngine(name string, opts ...Option) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineChat:
		return NewRenderer(opts...)
	case EngineCommonMark:
		return NewCommonMarkRenderer(opts...)
	default:
		return nil, fmt.Errorf("%w: %q (available: %s, %s)", ErrUnknownEngine, name, EngineChat, EngineCommonMark)
	}
}

// HighlightStyles lists the chroma style names accepted by WithHighlightStyle.
func HighlightStyles() []string {
	return pipeline.HighlightStyles()
}

// resolveTags validates configured tags. nil keeps the pipeline default.
func resolveTags(cfg rendererConfig) ([]string, error) {
	if !cfg.tagsSet {
		return nil, nil
	}
	tags := make([]string, 0, len(cfg.tags))
	for _, tag := range cfg.tags {
		tag = strings.TrimSpace(tag)
		if !pipeline.IsTagName(tag) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSideChannelTag, tag)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func newHighlighter(style string) (*pipeline.ChromaHighlighter, error) {
	h, err := pipeline.NewChromaHighlighter(style)
	if err != nil {
		return nil, wrapError(ErrUnknownHighlightStyle, err)
	}
	return h, nil
}
