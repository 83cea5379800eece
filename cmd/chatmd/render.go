package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	chatmd "github.com/alnah/go-chatmd"
	"github.com/alnah/go-chatmd/internal/config"
	"github.com/alnah/go-chatmd/internal/fileutil"
	"github.com/alnah/go-chatmd/internal/hints"
)

// stdinArg selects standard input explicitly.
const stdinArg = "-"

// runRenderCommand parses flags and renders the requested inputs.
func runRenderCommand(args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return runRender(ctx, positional, flags, env)
}

// runRender orchestrates the render process.
func runRender(ctx context.Context, positionalArgs []string, flags *renderFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	job, err := buildRenderJob(cfg)
	if err != nil {
		return err
	}

	inputs := resolveInputs(positionalArgs, cfg)
	if isStdin(inputs) {
		return renderStdin(ctx, job, flags.output, env)
	}

	outputDir := resolveOutputDir(flags.output, cfg)
	files, err := discoverFiles(inputs, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s%s", ErrNoInput, strings.Join(inputs, ", "), hints.ForNoInputs(fileutil.SourceExtensions))
	}

	workers := min(resolvePoolSize(cfg.Workers), len(files))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	results := renderBatch(ctx, job, files, workers)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d of %d render(s) failed", failedCount, len(results))
	}

	return nil
}

// resolveConfig layers defaults, config file, environment and flags.
// Priority: flags > env vars > config file > defaults.
func resolveConfig(flags *renderFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfigFile(cmp.Or(flags.common.config, envCfg.ConfigPath))
	if err != nil {
		return nil, err
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrUnknownEngine) {
			return nil, fmt.Errorf("%w%s", err, hints.ForEngine(config.Engines))
		}
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile loads a named or path config; "" returns defaults.
func loadConfigFile(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(nameOrPath) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// Boolean flags can only switch features on.
func mergeFlags(flags *renderFlags, cfg *config.Config) {
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}

	// Engine flags
	if flags.engine.name != "" {
		cfg.Engine = flags.engine.name
	}
	if flags.engine.highlight {
		cfg.Highlight.Enabled = true
	}
	if flags.engine.highlightStyle != "" {
		cfg.Highlight.Style = flags.engine.highlightStyle
		cfg.Highlight.Enabled = true
	}
	if flags.engine.safeURLs {
		cfg.Links.SafeURLs = true
	}
	switch {
	case flags.engine.noStrip:
		cfg.Sanitize.Tags = []string{}
	case len(flags.engine.stripTags) > 0:
		cfg.Sanitize.Tags = flags.engine.stripTags
	}

	// Document flags; any of them asks for a standalone page.
	doc := flags.document
	if doc.style != "" {
		cfg.Document.Style = doc.style
	}
	if doc.css != "" {
		cfg.Document.CSSFile = doc.css
	}
	if doc.title != "" {
		cfg.Document.Title = doc.title
	}
	if doc.noStyle {
		cfg.Document.NoStyle = true
	}
	if doc.standalone || doc.style != "" || doc.css != "" || doc.title != "" || doc.noStyle {
		cfg.Document.Standalone = true
	}

	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
}

// engineOptions translates config into renderer options.
func engineOptions(cfg *config.Config) []chatmd.Option {
	opts := []chatmd.Option{chatmd.WithSafeURLs(cfg.Links.SafeURLs)}
	if cfg.Highlight.Enabled {
		opts = append(opts,
			chatmd.WithHighlighting(true),
			chatmd.WithHighlightStyle(cfg.Highlight.Style),
		)
	}
	if cfg.Sanitize.Tags != nil {
		opts = append(opts, chatmd.WithSideChannelTags(cfg.Sanitize.Tags...))
	}
	return opts
}

// buildRenderJob creates the engine and, for standalone output, resolves
// document options once for the whole batch.
func buildRenderJob(cfg *config.Config) (*renderJob, error) {
	engine, err := chatmd.NewEngine(cfg.Engine, engineOptions(cfg)...)
	if err != nil {
		return nil, withOptionHint(err)
	}

	job := &renderJob{engine: engine}
	if cfg.Document.Standalone {
		job.document, err = buildDocumentOptions(cfg)
		if err != nil {
			return nil, err
		}
	}
	return job, nil
}

// buildDocumentOptions resolves the style loader and reads the extra CSS file.
// The named style is loaded once here so a typo fails before any file is read.
func buildDocumentOptions(cfg *config.Config) (*chatmd.DocumentOptions, error) {
	loader, err := chatmd.NewAssetLoader(cfg.Assets.BasePath)
	if err != nil {
		return nil, err
	}

	opts := &chatmd.DocumentOptions{
		Title:   cfg.Document.Title,
		Style:   cmp.Or(cfg.Document.Style, chatmd.DefaultStyle),
		NoStyle: cfg.Document.NoStyle,
		Loader:  loader,
	}

	if !opts.NoStyle {
		if _, err := loader.LoadStyle(opts.Style); err != nil {
			if errors.Is(err, chatmd.ErrStyleNotFound) {
				return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(loader.StyleNames()))
			}
			return nil, err
		}
	}

	if cfg.Document.CSSFile != "" {
		data, err := os.ReadFile(cfg.Document.CSSFile) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadCSS, err)
		}
		opts.CSS = string(data)
	}

	if cfg.Highlight.Enabled {
		opts.HighlightStyle = cmp.Or(cfg.Highlight.Style, chatmd.DefaultHighlightStyle)
	}

	return opts, nil
}

// withOptionHint appends a hint for renderer option errors.
func withOptionHint(err error) error {
	var hint string
	switch {
	case errors.Is(err, chatmd.ErrUnknownEngine):
		hint = hints.ForEngine(config.Engines)
	case errors.Is(err, chatmd.ErrUnknownHighlightStyle):
		hint = hints.ForHighlightStyle()
	case errors.Is(err, chatmd.ErrInvalidSideChannelTag):
		hint = hints.ForSideChannelTag()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// resolveInputs returns positional inputs, falling back to the configured
// default directory. An empty result selects standard input.
func resolveInputs(args []string, cfg *config.Config) []string {
	if len(args) > 0 {
		return args
	}
	if cfg.Input.DefaultDir != "" {
		return []string{cfg.Input.DefaultDir}
	}
	return nil
}

// isStdin reports whether inputs select standard input.
func isStdin(inputs []string) bool {
	return len(inputs) == 0 || (len(inputs) == 1 && inputs[0] == stdinArg)
}

// resolveOutputDir returns the flag value, falling back to config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// renderStdin renders standard input to standard output, or to the
// --output file when one is given.
func renderStdin(ctx context.Context, job *renderJob, output string, env *Environment) error {
	data, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	html, err := job.render(ctx, fileutil.DecodeText(data), "")
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Fprintln(env.Stdout, html)
		return nil
	}
	return writeOutput(output, html)
}
