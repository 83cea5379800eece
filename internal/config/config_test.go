package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig writes content to dir/name and returns the path.
func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Engine != "" {
		t.Errorf("Engine = %q, want empty (chat)", cfg.Engine)
	}
	if cfg.Highlight.Enabled {
		t.Error("Highlight.Enabled = true, want false")
	}
	if cfg.Sanitize.Tags != nil {
		t.Errorf("Sanitize.Tags = %v, want nil", cfg.Sanitize.Tags)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Enum, range and length checks
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{name: "chat engine", modify: func(c *Config) { c.Engine = "chat" }},
		{name: "commonmark engine", modify: func(c *Config) { c.Engine = "commonmark" }},
		{name: "engine case insensitive", modify: func(c *Config) { c.Engine = "CommonMark" }},
		{name: "unknown engine", modify: func(c *Config) { c.Engine = "pdf" }, wantErr: ErrUnknownEngine},
		{name: "negative workers", modify: func(c *Config) { c.Workers = -1 }, wantErr: ErrInvalidValue},
		{name: "too many workers", modify: func(c *Config) { c.Workers = MaxWorkers + 1 }, wantErr: ErrInvalidValue},
		{name: "max workers", modify: func(c *Config) { c.Workers = MaxWorkers }},
		{
			name:    "too many tags",
			modify:  func(c *Config) { c.Sanitize.Tags = make([]string, MaxTags+1) },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "tag too long",
			modify:  func(c *Config) { c.Sanitize.Tags = []string{strings.Repeat("t", MaxNameLength+1)} },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "title too long",
			modify:  func(c *Config) { c.Document.Title = strings.Repeat("x", MaxTitleLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "highlight style too long",
			modify:  func(c *Config) { c.Highlight.Style = strings.Repeat("s", MaxNameLength+1) },
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File path loading
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "chat.yaml", `engine: commonmark
workers: 4
highlight:
  enabled: true
  style: monokai
links:
  safeURLs: true
sanitize:
  tags: [think, reasoning]
document:
  standalone: true
  style: minimal
  title: Transcript
output:
  defaultDir: out
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() unexpected error: %v", err)
		}
		if cfg.Engine != "commonmark" || cfg.Workers != 4 {
			t.Errorf("Engine/Workers = %q/%d", cfg.Engine, cfg.Workers)
		}
		if !cfg.Highlight.Enabled || cfg.Highlight.Style != "monokai" {
			t.Errorf("Highlight = %+v", cfg.Highlight)
		}
		if !cfg.Links.SafeURLs {
			t.Error("Links.SafeURLs = false, want true")
		}
		if len(cfg.Sanitize.Tags) != 2 || cfg.Sanitize.Tags[1] != "reasoning" {
			t.Errorf("Sanitize.Tags = %v", cfg.Sanitize.Tags)
		}
		if !cfg.Document.Standalone || cfg.Document.Style != "minimal" || cfg.Document.Title != "Transcript" {
			t.Errorf("Document = %+v", cfg.Document)
		}
		if cfg.Output.DefaultDir != "out" {
			t.Errorf("Output.DefaultDir = %q", cfg.Output.DefaultDir)
		}
	})

	t.Run("omitted engine keeps default", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "c.yaml", "workers: 2\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() unexpected error: %v", err)
		}
		if cfg.Engine != "" || cfg.Workers != 2 {
			t.Errorf("Engine/Workers = %q/%d, want \"\"/2", cfg.Engine, cfg.Workers)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "c.yaml", "engnie: chat\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "c.yaml", "engine: pdf\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("LoadConfig() error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.yaml")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadConfig_ByName - Lookup in the user config directory
// ---------------------------------------------------------------------------

func TestLoadConfig_ByName(t *testing.T) {
	// Not parallel: modifies XDG_CONFIG_HOME.
	if os.Getenv("HOME") == "" {
		t.Skip("HOME not set")
	}

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, appDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	writeConfig(t, dir, "team.yml", "engine: commonmark\n")

	cfg, err := LoadConfig("team")
	if err != nil {
		t.Fatalf("LoadConfig(\"team\") unexpected error: %v", err)
	}
	if cfg.Engine != "commonmark" {
		t.Errorf("Engine = %q, want commonmark", cfg.Engine)
	}

	_, err = LoadConfig("nope-not-here")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), filepath.Join(appDir, "nope-not-here.yaml")) {
		t.Errorf("error should list searched paths, got %v", err)
	}
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("chat")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths() = %v, want at least local paths", paths)
	}
	if paths[0] != "chat.yaml" || paths[1] != "chat.yml" {
		t.Errorf("SearchPaths() local entries = %v", paths[:2])
	}
}
