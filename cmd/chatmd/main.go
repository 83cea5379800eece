// Command chatmd renders chat markdown files to HTML.
package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	configureMaxProcs(os.Args, os.Stderr)
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota before
// the worker pool is sized. The log is shown only with --verbose.
func configureMaxProcs(args []string, w io.Writer) {
	logf := func(string, ...any) {}
	if slices.Contains(args, "-v") || slices.Contains(args, "--verbose") {
		logf = func(format string, a ...any) {
			fmt.Fprintf(w, format+"\n", a...)
		}
	}
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(logf))
}

// runMain dispatches a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	var err error
	switch cmd {
	case "render":
		err = runRenderCommand(rest, env)
	case "styles":
		err = runStyles(rest, env)
	case "config":
		err = runConfigCommand(rest, env)
	case "completion":
		err = runCompletion(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "chatmd %s\n", Version)
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
