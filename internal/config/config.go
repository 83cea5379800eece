// Package config loads the YAML configuration used by the chatmd CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-chatmd/internal/fileutil"
	"github.com/alnah/go-chatmd/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
	ErrUnknownEngine   = fmt.Errorf("%w: unknown engine", ErrInvalidValue)
)

// Field limits.
const (
	MaxNameLength  = 64   // style, highlight style, tag names
	MaxTitleLength = 200  // document title
	MaxPathLength  = 4096 // directories and files
	MaxTags        = 16   // sanitize.tags entries
	MaxWorkers     = 32   // parallel renders
)

// appDir is the directory searched under the user config directory.
const appDir = "go-chatmd"

// Engines lists the accepted values of the engine field.
var Engines = []string{"chat", "commonmark"}

// Config holds all CLI configuration.
type Config struct {
	Engine    string          `yaml:"engine"`  // "" = chat, or "commonmark"
	Workers   int             `yaml:"workers"` // 0 = auto
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Highlight HighlightConfig `yaml:"highlight"`
	Links     LinksConfig     `yaml:"links"`
	Sanitize  SanitizeConfig  `yaml:"sanitize"`
	Document  DocumentConfig  `yaml:"document"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // used when no input argument is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source
}

// HighlightConfig defines code highlighting options.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // chroma style name
}

// LinksConfig defines link handling.
type LinksConfig struct {
	SafeURLs bool `yaml:"safeURLs"`
}

// SanitizeConfig defines input cleanup.
type SanitizeConfig struct {
	Tags []string `yaml:"tags,omitempty"` // nil = default (think), [] = keep all
}

// DocumentConfig defines standalone page output.
type DocumentConfig struct {
	Standalone bool   `yaml:"standalone"`
	Style      string `yaml:"style"`   // embedded or custom style name
	NoStyle    bool   `yaml:"noStyle"` // omit the named style
	CSSFile    string `yaml:"cssFile"` // extra CSS appended to the style
	Title      string `yaml:"title"`   // empty = derived from the file name
}

// AssetsConfig defines where custom styles live.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded styles only
}

// Validate checks enum values, ranges, and field lengths.
// LoadConfig calls it; callers building a Config by hand should too.
func (c *Config) Validate() error {
	if c.Engine != "" && !slices.Contains(Engines, strings.ToLower(c.Engine)) {
		return fmt.Errorf("%w %q (must be one of %s)", ErrUnknownEngine, c.Engine, strings.Join(Engines, ", "))
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers %d (must be 0-%d)", ErrInvalidValue, c.Workers, MaxWorkers)
	}

	if len(c.Sanitize.Tags) > MaxTags {
		return fmt.Errorf("%w: sanitize.tags has %d entries (max %d)", ErrInvalidValue, len(c.Sanitize.Tags), MaxTags)
	}
	for i, tag := range c.Sanitize.Tags {
		if err := validateFieldLength(fmt.Sprintf("sanitize.tags[%d]", i), tag, MaxNameLength); err != nil {
			return err
		}
	}

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"highlight.style", c.Highlight.Style, MaxNameLength},
		{"document.style", c.Document.Style, MaxNameLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.cssFile", c.Document.CSSFile, MaxPathLength},
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read as a path; anything else is
// looked up by name in the current directory, then the user config
// directory. A missing file is an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
