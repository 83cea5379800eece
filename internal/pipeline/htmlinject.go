package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrDocumentRender indicates the standalone document template failed.
var ErrDocumentRender = errors.New("document template rendering failed")

// documentTemplate wraps a rendered fragment in a complete HTML5 document.
// The fragment is already safe HTML; the title is escaped by html/template.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<article class="chat-message">
{{.Body}}
</article>
</body>
</html>`

// DefaultDocumentTitle is used when no title is given.
const DefaultDocumentTitle = "Message"

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	// Check for cancellation
	if ctx.Err() != nil {
		return htmlContent
	}

	sanitizedCSS := sanitizeCSS(cssContent)
	styleBlock := "<style>" + sanitizedCSS + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// DocumentWrapper turns fragments into standalone HTML documents.
type DocumentWrapper struct {
	tmpl        *template.Template
	cssInjector CSSInjector
}

// NewDocumentWrapper parses the document template.
func NewDocumentWrapper() *DocumentWrapper {
	return &DocumentWrapper{
		tmpl:        template.Must(template.New("document").Parse(documentTemplate)),
		cssInjector: &CSSInjection{},
	}
}

// Wrap renders fragment into a document with title and CSS.
func (d *DocumentWrapper) Wrap(ctx context.Context, fragment, title, css string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if title == "" {
		title = DefaultDocumentTitle
	}

	var buf bytes.Buffer
	data := struct {
		Title string
		Body  template.HTML
	}{
		Title: title,
		Body:  template.HTML(fragment), // #nosec G203 -- fragment is renderer output, escaped upstream
	}
	if err := d.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}

	return d.cssInjector.InjectCSS(ctx, buf.String(), css), nil
}
