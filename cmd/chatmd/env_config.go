package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-chatmd/internal/config"
)

// envPrefix marks the environment variables read by the CLI.
const envPrefix = "CHATMD_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // CHATMD_CONFIG: config file name or path
	Engine         string // CHATMD_ENGINE: chat, commonmark
	HighlightStyle string // CHATMD_HIGHLIGHT_STYLE: chroma style, enables highlighting
	Style          string // CHATMD_STYLE: document style name
	InputDir       string // CHATMD_INPUT_DIR: default input directory
	OutputDir      string // CHATMD_OUTPUT_DIR: default output directory
	AssetPath      string // CHATMD_ASSET_PATH: custom style directory
	Workers        int    // CHATMD_WORKERS: parallel workers
}

// knownEnvVars lists valid CHATMD_* environment variables.
var knownEnvVars = map[string]bool{
	"CHATMD_CONFIG":          true,
	"CHATMD_ENGINE":          true,
	"CHATMD_HIGHLIGHT_STYLE": true,
	"CHATMD_STYLE":           true,
	"CHATMD_INPUT_DIR":       true,
	"CHATMD_OUTPUT_DIR":      true,
	"CHATMD_ASSET_PATH":      true,
	"CHATMD_WORKERS":         true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:     os.Getenv("CHATMD_CONFIG"),
		Engine:         os.Getenv("CHATMD_ENGINE"),
		HighlightStyle: os.Getenv("CHATMD_HIGHLIGHT_STYLE"),
		Style:          os.Getenv("CHATMD_STYLE"),
		InputDir:       os.Getenv("CHATMD_INPUT_DIR"),
		OutputDir:      os.Getenv("CHATMD_OUTPUT_DIR"),
		AssetPath:      os.Getenv("CHATMD_ASSET_PATH"),
	}

	if workers := os.Getenv("CHATMD_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized CHATMD_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Engine != "" && cfg.Engine == "" {
		cfg.Engine = env.Engine
	}
	if env.HighlightStyle != "" && cfg.Highlight.Style == "" {
		cfg.Highlight.Style = env.HighlightStyle
		cfg.Highlight.Enabled = true
	}
	if env.Style != "" && cfg.Document.Style == "" {
		cfg.Document.Style = env.Style
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
}
