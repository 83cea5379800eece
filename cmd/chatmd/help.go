package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chatmd <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render      Render chat markdown to HTML")
	fmt.Fprintln(w, "  styles      List document and highlight styles")
	fmt.Fprintln(w, "  config      Print the effective configuration")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'chatmd help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chatmd render [input...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render chat markdown to HTML fragments or standalone pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Files or directories (.md, .markdown, .txt); \"-\" or none reads stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>        Output directory, or .html file for one input")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>          Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -e, --engine <name>        Renderer: chat (default), commonmark")
	fmt.Fprintln(w, "      --highlight            Highlight fenced code")
	fmt.Fprintln(w, "      --highlight-style <s>  Chroma style (implies --highlight)")
	fmt.Fprintln(w, "      --safe-urls            Drop javascript: and similar link targets")
	fmt.Fprintln(w, "      --strip-tag <tag>      Side-channel tag to remove (repeatable, default: think)")
	fmt.Fprintln(w, "      --no-strip             Keep all side-channel tags")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "  -s, --standalone           Write full HTML pages")
	fmt.Fprintln(w, "      --style <name>         Document style (implies --standalone)")
	fmt.Fprintln(w, "      --no-style             Omit the document style")
	fmt.Fprintln(w, "      --css <path>           Extra CSS appended to the style")
	fmt.Fprintln(w, "      --title <s>            Page title (\"\" = file name)")
	fmt.Fprintln(w, "      --asset-path <dir>     Directory holding styles/<name>.css")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CHATMD_CONFIG, CHATMD_ENGINE, CHATMD_HIGHLIGHT_STYLE, CHATMD_STYLE,")
	fmt.Fprintln(w, "  CHATMD_INPUT_DIR, CHATMD_OUTPUT_DIR, CHATMD_ASSET_PATH, CHATMD_WORKERS")
}

// printStylesUsage prints usage for the styles command.
func printStylesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chatmd styles [--asset-path <dir>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List document styles and chroma highlight styles. With --asset-path")
	fmt.Fprintln(w, "(or CHATMD_ASSET_PATH), styles found in <dir>/styles are included.")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chatmd config [-c <name>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration render would use, after applying the")
	fmt.Fprintln(w, "config file and CHATMD_* environment variables, as YAML.")
}

// runHelp prints help for a specific command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "styles":
		printStylesUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: chatmd version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: chatmd help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
