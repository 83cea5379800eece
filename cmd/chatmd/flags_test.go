package main

import (
	"bytes"
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseRenderFlags - Flag parsing
// ---------------------------------------------------------------------------

func TestParseRenderFlags(t *testing.T) {
	t.Parallel()

	t.Run("all groups", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		f, args, err := parseRenderFlags([]string{
			"a.md", "-o", "out", "-w", "3", "-c", "team",
			"-e", "commonmark", "--highlight-style", "monokai", "--safe-urls",
			"--strip-tag", "think", "--strip-tag", "reasoning",
			"-s", "--style", "minimal", "--css", "x.css", "--title", "T",
			"--asset-path", "assets", "-q", "b.md",
		}, &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(args) != 2 || args[0] != "a.md" || args[1] != "b.md" {
			t.Errorf("args = %v", args)
		}
		if f.output != "out" || f.workers != 3 || f.common.config != "team" || !f.common.quiet {
			t.Errorf("io/common flags = %+v", f)
		}
		e := f.engine
		if e.name != "commonmark" || e.highlightStyle != "monokai" || !e.safeURLs {
			t.Errorf("engine flags = %+v", e)
		}
		if len(e.stripTags) != 2 || e.stripTags[1] != "reasoning" {
			t.Errorf("stripTags = %v", e.stripTags)
		}
		d := f.document
		if !d.standalone || d.style != "minimal" || d.css != "x.css" || d.title != "T" {
			t.Errorf("document flags = %+v", d)
		}
		if f.assets.assetPath != "assets" {
			t.Errorf("assetPath = %q", f.assets.assetPath)
		}
	})

	t.Run("strip tag keeps commas", func(t *testing.T) {
		t.Parallel()

		f, _, err := parseRenderFlags([]string{"--strip-tag", "a,b"}, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.engine.stripTags) != 1 || f.engine.stripTags[0] != "a,b" {
			t.Errorf("stripTags = %v, want [a,b]", f.engine.stripTags)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseRenderFlags([]string{"--timeout", "1s"}, &bytes.Buffer{})
		if !errors.Is(err, ErrUsage) {
			t.Errorf("error = %v, want ErrUsage", err)
		}
	})

	t.Run("help prints usage once", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		_, _, err := parseRenderFlags([]string{"--help"}, &out)
		if !errors.Is(err, flag.ErrHelp) {
			t.Fatalf("error = %v, want flag.ErrHelp", err)
		}
		if n := bytes.Count(out.Bytes(), []byte("Usage: chatmd render")); n != 1 {
			t.Errorf("usage printed %d times, want 1", n)
		}
	})
}
