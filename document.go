package chatmd

import (
	"context"
	"errors"
	"strings"

	"github.com/alnah/go-chatmd/internal/assets"
	"github.com/alnah/go-chatmd/internal/pipeline"
)

// DocumentOptions configures WrapDocument.
type DocumentOptions struct {
	Title          string      // page title; "" selects "Message"
	Style          string      // style name; "" selects DefaultStyle
	NoStyle        bool        // omit the named style entirely
	CSS            string      // extra CSS appended after the style
	HighlightStyle string      // chroma style for highlighted code; "" omits it
	Loader         AssetLoader // style source; nil selects the built-in styles
}

var documentWrapper = pipeline.NewDocumentWrapper()

// WrapDocument wraps a rendered fragment into a standalone HTML5 document.
// CSS is injected in order: named style, highlight style, user CSS.
func WrapDocument(ctx context.Context, fragment string, opts DocumentOptions) (string, error) {
	css, err := documentCSS(opts)
	if err != nil {
		return "", err
	}

	page, err := documentWrapper.Wrap(ctx, fragment, opts.Title, css)
	if err != nil {
		if errors.Is(err, pipeline.ErrDocumentRender) {
			return "", wrapError(ErrDocumentRender, err)
		}
		return "", err
	}
	return page, nil
}

func documentCSS(opts DocumentOptions) (string, error) {
	var css strings.Builder

	if !opts.NoStyle {
		loader := opts.Loader
		if loader == nil {
			loader = &assetLoaderAdapter{loader: assets.NewEmbeddedLoader()}
		}
		name := opts.Style
		if name == "" {
			name = DefaultStyle
		}
		style, err := loader.LoadStyle(name)
		if err != nil {
			return "", err
		}
		css.WriteString(style)
		css.WriteString("\n")
	}

	if opts.HighlightStyle != "" {
		h, err := newHighlighter(opts.HighlightStyle)
		if err != nil {
			return "", err
		}
		if err := h.WriteCSS(&css); err != nil {
			return "", wrapError(ErrDocumentRender, err)
		}
		css.WriteString("\n")
	}

	css.WriteString(opts.CSS)
	return css.String(), nil
}
