package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks flag parsing and command-line usage errors.
var ErrUsage = errors.New("usage error")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// engineFlags holds flags that configure the renderer.
type engineFlags struct {
	name           string
	highlight      bool
	highlightStyle string
	safeURLs       bool
	stripTags      []string
	noStrip        bool
}

// documentFlags holds standalone document flags.
type documentFlags struct {
	standalone bool
	style      string
	noStyle    bool
	css        string
	title      string
}

// assetFlags holds asset lookup flags.
type assetFlags struct {
	assetPath string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common   commonFlags
	output   string
	workers  int
	engine   engineFlags
	document documentFlags
	assets   assetFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addEngineFlags adds renderer flags to a FlagSet.
func addEngineFlags(fs *flag.FlagSet, f *engineFlags) {
	fs.StringVarP(&f.name, "engine", "e", "", "renderer: chat, commonmark")
	fs.BoolVar(&f.highlight, "highlight", false, "highlight fenced code with chroma")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style name (implies --highlight)")
	fs.BoolVar(&f.safeURLs, "safe-urls", false, "drop javascript: and similar link targets")
	fs.StringArrayVar(&f.stripTags, "strip-tag", nil, "side-channel tag to remove (repeatable)")
	fs.BoolVar(&f.noStrip, "no-strip", false, "keep all side-channel tags")
}

// addDocumentFlags adds standalone document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVarP(&f.standalone, "standalone", "s", false, "write full HTML documents")
	fs.StringVar(&f.style, "style", "", "document style name")
	fs.BoolVar(&f.noStyle, "no-style", false, "omit the document style")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended to the style")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = file name)")
}

// addAssetFlags adds asset lookup flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.assetPath, "asset-path", "", "directory holding styles/<name>.css")
}

// newRenderFlagSet registers every render flag on a fresh FlagSet.
// Parsing and completion share it so both see the same flags.
func newRenderFlagSet(f *renderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addEngineFlags(fs, &f.engine)
	addDocumentFlags(fs, &f.document)
	addAssetFlags(fs, &f.assets)

	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
// Help requests return flag.ErrHelp; pflag has already printed usage to w.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newRenderFlagSet(f)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printRenderUsage(w) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return f, fs.Args(), nil
}
