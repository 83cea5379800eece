package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "plain rule untouched", input: "pre { overflow: auto; }", expected: "pre { overflow: auto; }"},
		{name: "escapes style close", input: "</style>", expected: `<\/style>`},
		{name: "escapes every closing sequence", input: "</a></STYLE>", expected: `<\/a><\/STYLE>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := sanitizeCSS(tt.input)
			if got != tt.expected {
				t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		css      string
		expected string
	}{
		{
			name:     "empty CSS returns HTML unchanged",
			html:     "<html><head></head><body><p>hi</p></body></html>",
			css:      "",
			expected: "<html><head></head><body><p>hi</p></body></html>",
		},
		{
			name:     "injects before </head>",
			html:     "<html><head></head><body><p>hi</p></body></html>",
			css:      "p { margin: 0; }",
			expected: "<html><head><style>p { margin: 0; }</style></head><body><p>hi</p></body></html>",
		},
		{
			name:     "injects after <body> with attributes when no head",
			html:     `<html><body class="chat"><p>hi</p></body></html>`,
			css:      "p { margin: 0; }",
			expected: `<html><body class="chat"><style>p { margin: 0; }</style><p>hi</p></body></html>`,
		},
		{
			name:     "prepends to bare fragment",
			html:     "<p>hi</p>",
			css:      "p { margin: 0; }",
			expected: "<style>p { margin: 0; }</style><p>hi</p>",
		},
		{
			name:     "closing tags in CSS are neutralized",
			html:     "<html><head></head><body></body></html>",
			css:      "</style><script>alert(1)</script>",
			expected: `<html><head><style><\/style><script>alert(1)<\/script></style></head><body></body></html>`,
		},
	}

	injector := &CSSInjection{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := injector.InjectCSS(context.Background(), tt.html, tt.css)
			if got != tt.expected {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInjectCSS_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	html := "<html><head></head><body></body></html>"
	got := (&CSSInjection{}).InjectCSS(ctx, html, "p {}")
	if got != html {
		t.Errorf("InjectCSS() with cancelled context = %q, want input unchanged", got)
	}
}

// ---------------------------------------------------------------------------
// TestDocumentWrapper - Standalone HTML output
// ---------------------------------------------------------------------------

func TestDocumentWrapper_Wrap(t *testing.T) {
	t.Parallel()

	wrapper := NewDocumentWrapper()

	tests := []struct {
		name        string
		fragment    string
		title       string
		css         string
		contains    []string
		notContains []string
	}{
		{
			name:     "fragment inserted verbatim",
			fragment: "<h1>Hi</h1><br><p>there</p>",
			title:    "Greeting",
			contains: []string{
				"<!DOCTYPE html>",
				"<title>Greeting</title>",
				`<article class="chat-message">` + "\n<h1>Hi</h1><br><p>there</p>\n</article>",
			},
		},
		{
			name:     "title is escaped",
			fragment: "<p>x</p>",
			title:    "<script>alert(1)</script>",
			contains: []string{"<title>&lt;script&gt;alert(1)&lt;/script&gt;</title>"},
			notContains: []string{
				"<title><script>",
			},
		},
		{
			name:     "default title",
			fragment: "<p>x</p>",
			contains: []string{"<title>" + DefaultDocumentTitle + "</title>"},
		},
		{
			name:     "css lands in head",
			fragment: "<p>x</p>",
			css:      ".chat-message { max-width: 40em; }",
			contains: []string{"<style>.chat-message { max-width: 40em; }</style></head>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := wrapper.Wrap(context.Background(), tt.fragment, tt.title, tt.css)
			if err != nil {
				t.Fatalf("Wrap() unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Wrap() missing %q in:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(got, unwanted) {
					t.Errorf("Wrap() should not contain %q in:\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestDocumentWrapper_Wrap_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDocumentWrapper().Wrap(ctx, "<p>x</p>", "", "")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Wrap() error = %v, want context.Canceled", err)
	}
}
