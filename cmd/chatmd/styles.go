package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	chatmd "github.com/alnah/go-chatmd"
)

// newStylesFlagSet registers the styles command flags.
func newStylesFlagSet(f *assetFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("styles", flag.ContinueOnError)
	addAssetFlags(fs, f)
	return fs
}

// runStyles lists document styles, custom ones included when an asset
// path is given, followed by chroma highlight styles.
func runStyles(args []string, env *Environment) error {
	var f assetFlags
	fs := newStylesFlagSet(&f)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printStylesUsage(env.Stdout) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: styles takes no arguments", ErrUsage)
	}

	loader, err := chatmd.NewAssetLoader(cmp.Or(f.assetPath, loadEnvConfig().AssetPath))
	if err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, "Document styles:")
	printStyleList(env.Stdout, loader.StyleNames(), chatmd.DefaultStyle)

	fmt.Fprintln(env.Stdout)
	fmt.Fprintln(env.Stdout, "Highlight styles:")
	printStyleList(env.Stdout, chatmd.HighlightStyles(), chatmd.DefaultHighlightStyle)
	return nil
}

func printStyleList(w io.Writer, names []string, defaultName string) {
	for _, name := range names {
		if name == defaultName {
			fmt.Fprintf(w, "  %s (default)\n", name)
			continue
		}
		fmt.Fprintf(w, "  %s\n", name)
	}
}
