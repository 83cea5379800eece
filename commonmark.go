package chatmd

import (
	"context"
	"errors"

	"github.com/alnah/go-chatmd/internal/pipeline"
)

// CommonMarkRenderer renders full CommonMark with GitHub extensions
// (tables, autolinks, task lists) through goldmark.
//
// The same sanitizer runs first, so side-channel tags are removed. Raw HTML
// is omitted and the result is filtered by a bluemonday UGC policy, so
// dangerous link URLs are dropped whether or not WithSafeURLs is set.
type CommonMarkRenderer struct {
	sanitizer *pipeline.Sanitizer
	converter pipeline.HTMLConverter
}

// NewCommonMarkRenderer creates a CommonMarkRenderer.
func NewCommonMarkRenderer(opts ...Option) (*CommonMarkRenderer, error) {
	cfg := buildConfig(opts)

	tags, err := resolveTags(cfg)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = pipeline.DefaultSideChannelTags
	}

	style := cfg.highlightStyle
	if cfg.highlight {
		// goldmark-highlighting falls back silently; validate up front.
		if _, err := newHighlighter(style); err != nil {
			return nil, err
		}
	}

	return &CommonMarkRenderer{
		sanitizer: pipeline.NewSanitizer(tags),
		converter: pipeline.NewGoldmarkConverter(cfg.highlight, style),
	}, nil
}

// ToHTML implements Engine.
func (c *CommonMarkRenderer) ToHTML(ctx context.Context, text string) (string, error) {
	out, err := c.converter.ToHTML(ctx, c.sanitizer.Clean(text))
	if err != nil {
		if errors.Is(err, pipeline.ErrHTMLConversion) {
			return "", wrapError(ErrHTMLConversion, err)
		}
		return "", err
	}
	return out, nil
}
