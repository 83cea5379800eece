package pipeline

import "testing"

func TestSanitizer_Clean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tags     []string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			tags:     DefaultSideChannelTags,
			input:    "",
			expected: "",
		},
		{
			name:     "think block removed with content",
			tags:     DefaultSideChannelTags,
			input:    "<think>plan the answer</think>Answer",
			expected: "Answer",
		},
		{
			name:     "think block spanning lines",
			tags:     DefaultSideChannelTags,
			input:    "<think>\nstep 1\nstep 2\n</think>\nAnswer",
			expected: "\nAnswer",
		},
		{
			name:     "non-greedy between two blocks",
			tags:     DefaultSideChannelTags,
			input:    "<think>a</think>keep<think>b</think>",
			expected: "keep",
		},
		{
			name:     "tag match ignores case",
			tags:     DefaultSideChannelTags,
			input:    "<THINK>x</THINK>ok",
			expected: "ok",
		},
		{
			name:     "unclosed tag is kept",
			tags:     DefaultSideChannelTags,
			input:    "<think>never closed",
			expected: "<think>never closed",
		},
		{
			name:     "custom tag list",
			tags:     []string{"think", "reasoning"},
			input:    "<reasoning>r</reasoning><think>t</think>done",
			expected: "done",
		},
		{
			name:     "no tags disables removal",
			tags:     []string{},
			input:    "<think>t</think>",
			expected: "<think>t</think>",
		},
		{
			name:     "invalid tag names ignored",
			tags:     []string{"a|b", "<x>", ""},
			input:    "<a|b>x</a|b>",
			expected: "<a|b>x</a|b>",
		},
		{
			name:     "five newlines collapse to two",
			tags:     DefaultSideChannelTags,
			input:    "one\n\n\n\n\ntwo",
			expected: "one\n\ntwo",
		},
		{
			name:     "blank lines left by removed block collapse",
			tags:     DefaultSideChannelTags,
			input:    "one\n\n<think>x</think>\n\ntwo",
			expected: "one\n\ntwo",
		},
		{
			name:     "CRLF normalized",
			tags:     DefaultSideChannelTags,
			input:    "a\r\nb\rc",
			expected: "a\nb\nc",
		},
		{
			name:     "placeholder runes stripped",
			tags:     DefaultSideChannelTags,
			input:    "x" + placeholderOpen + "0" + placeholderClose + "y",
			expected: "x0y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewSanitizer(tt.tags).Clean(tt.input)
			if got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizer_DefaultTags(t *testing.T) {
	t.Parallel()

	if got := NewSanitizer(DefaultSideChannelTags).Clean("<think>x</think>y"); got != "y" {
		t.Errorf("Clean() = %q, want %q", got, "y")
	}
}

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "all five characters", input: `&<>"'`, expected: "&amp;&lt;&gt;&quot;&#039;"},
		{name: "existing entity escaped once more", input: "&amp;", expected: "&amp;amp;"},
		{name: "markdown markers untouched", input: "**x** [a](b) ~~c~~ #", expected: "**x** [a](b) ~~c~~ #"},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := EscapeHTML(tt.input); got != tt.expected {
				t.Errorf("EscapeHTML(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
