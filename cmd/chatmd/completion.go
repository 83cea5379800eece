package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	chatmd "github.com/alnah/go-chatmd"
	"github.com/alnah/go-chatmd/internal/config"
	"github.com/alnah/go-chatmd/internal/fileutil"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// supportedShells lists shells in the order shown to users.
var supportedShells = []Shell{ShellBash, ShellZsh, ShellFish, ShellPowerShell}

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, e.g. "*.yaml,*.yml"
	Repeat   bool     // may be given more than once
}

// takesValue reports whether the flag consumes the next argument.
func (f flagDef) takesValue() bool {
	return f.Type != flagBool
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed argument values (help topics, shells)
	TakesFiles  bool     // accepts file arguments
	FilePattern string   // glob for file arguments
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   func() []string // enum values
	FileGlob string          // file glob pattern
	IsDir    bool            // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"engine":          {Values: func() []string { return config.Engines }},
	"highlight-style": {Values: chatmd.HighlightStyles},
	"style":           {Values: chatmd.Styles},

	// File flags with glob patterns
	"config": {FileGlob: "*.yaml,*.yml"},
	"css":    {FileGlob: "*.css"},

	// Directory flags
	"output":     {IsDir: true},
	"asset-path": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		case "stringArray":
			fd.Type = flagString
			fd.Repeat = true
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case meta.Values != nil:
				fd.Type = flagEnum
				fd.Values = meta.Values()
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Render flags come from the same FlagSet the parser uses.
func getCommands() []commandDef {
	renderFlags := extractFlagsFromFlagSet(newRenderFlagSet(&renderFlags{}))

	configFS := flag.NewFlagSet("config", flag.ContinueOnError)
	configFS.StringP("config", "c", "", "config file name or path")

	globs := make([]string, len(fileutil.SourceExtensions))
	for i, ext := range fileutil.SourceExtensions {
		globs[i] = "*" + ext
	}

	commands := []commandDef{
		{
			Name:        "render",
			Desc:        "Render chat markdown to HTML",
			Flags:       renderFlags,
			TakesFiles:  true,
			FilePattern: strings.Join(globs, ","),
		},
		{Name: "styles", Desc: "List document and highlight styles", Flags: extractFlagsFromFlagSet(newStylesFlagSet(&assetFlags{}))},
		{Name: "config", Desc: "Print the effective configuration", Flags: extractFlagsFromFlagSet(configFS)},
		{Name: "completion", Desc: "Generate shell completion script"},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}

	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	for i := range commands {
		switch commands[i].Name {
		case "help":
			commands[i].Args = names
		case "completion":
			for _, s := range supportedShells {
				commands[i].Args = append(commands[i].Args, string(s))
			}
		}
	}

	return commands
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	commands := getCommands()
	switch shell {
	case ShellBash:
		return generateBash(w, commands)
	case ShellZsh:
		return generateZsh(w, commands)
	case ShellFish:
		return generateFish(w, commands)
	case ShellPowerShell:
		return generatePowerShell(w, commands)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chatmd completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(chatmd completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(chatmd completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    chatmd completion fish > ~/.config/fish/completions/chatmd.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    chatmd completion powershell | Out-String | Invoke-Expression")
}
