package pipeline

import "testing"

func TestNormalizeParagraphs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "bare line wrapped", input: "hello", expected: "<p>hello</p>"},
		{name: "lines joined by one break", input: "a\nb", expected: "<p>a</p><br><p>b</p>"},
		{name: "blank lines discarded", input: "a\n\n\n\nb", expected: "<p>a</p><br><p>b</p>"},
		{name: "whitespace-only line discarded", input: "a\n   \nb", expected: "<p>a</p><br><p>b</p>"},
		{name: "block tags left alone", input: "<h1>T</h1>\n<ul><li>x</li></ul>\n<hr />", expected: "<h1>T</h1><br><ul><li>x</li></ul><br><hr />"},
		{name: "inline tag at line start left alone", input: "<strong>b</strong> rest", expected: "<strong>b</strong> rest"},
		{name: "closing tag counts", input: "</blockquote>", expected: "</blockquote>"},
		{name: "unknown tag wrapped", input: "<span>x</span>", expected: "<p><span>x</span></p>"},
		{name: "tag prefix must end at word boundary", input: "<abbr>x</abbr>", expected: "<p><abbr>x</abbr></p>"},
		{name: "placeholder line left alone", input: placeholderOpen + "0" + placeholderClose, expected: placeholderOpen + "0" + placeholderClose},
		{name: "existing double breaks collapsed", input: "a<br><br>b", expected: "<p>a<br>b</p>"},
		{name: "empty paragraph removed", input: "<p> </p>", expected: ""},
		{name: "empty input", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := normalizeParagraphs(tt.input); got != tt.expected {
				t.Errorf("normalizeParagraphs(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
