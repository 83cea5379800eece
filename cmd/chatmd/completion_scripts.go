package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// globExtensions returns the extensions of a "*.a,*.b" glob list.
func globExtensions(glob string) []string {
	var exts []string
	for _, g := range strings.Split(glob, ",") {
		if ext := strings.TrimPrefix(strings.TrimSpace(g), "*."); ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}

// extPattern renders extensions as "*.css", or "*.@(a|b)" with the
// given group delimiters.
func extPattern(glob, groupStart, groupEnd string) string {
	exts := globExtensions(glob)
	if len(exts) == 1 {
		return "*." + exts[0]
	}
	return "*." + groupStart + strings.Join(exts, "|") + groupEnd
}

// flagWords lists every spelling of every flag, long names first.
func flagWords(flags []flagDef) []string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
	}
	for _, f := range flags {
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// flagSpellings returns "-o|--output" style alternatives for one flag.
func flagSpellings(f flagDef, sep string) string {
	if f.Short == "" {
		return "--" + f.Long
	}
	return "-" + f.Short + sep + "--" + f.Long
}

func commandNames(commands []commandDef) []string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	return names
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func generateBash(w io.Writer, commands []commandDef) error {
	var b bytes.Buffer

	b.WriteString("# bash completion for chatmd\n\n")
	b.WriteString("shopt -s extglob\n\n")
	b.WriteString("_chatmd_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(commandNames(commands), " "))
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range commands {
		if len(c.Flags) == 0 && len(c.Args) == 0 && !c.TakesFiles {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n", c.Name)

		if len(c.Flags) > 0 {
			b.WriteString("        case \"$prev\" in\n")
			for _, f := range c.Flags {
				if !f.takesValue() {
					continue
				}
				fmt.Fprintf(&b, "        %s)\n", flagSpellings(f, "|"))
				switch f.Type {
				case flagEnum:
					fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(f.Values, " "))
				case flagFile:
					fmt.Fprintf(&b, "            COMPREPLY=($(compgen -f -X '!%s' -- \"$cur\") $(compgen -d -- \"$cur\"))\n", extPattern(f.FileGlob, "@(", ")"))
				case flagDir:
					b.WriteString("            COMPREPLY=($(compgen -d -- \"$cur\"))\n")
				}
				b.WriteString("            return 0\n")
				b.WriteString("            ;;\n")
			}
			b.WriteString("        esac\n")
			b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(flagWords(c.Flags), " "))
			b.WriteString("            return 0\n")
			b.WriteString("        fi\n")
		}

		switch {
		case c.TakesFiles:
			fmt.Fprintf(&b, "        COMPREPLY=($(compgen -f -X '!%s' -- \"$cur\") $(compgen -d -- \"$cur\"))\n", extPattern(c.FilePattern, "@(", ")"))
		case len(c.Args) > 0:
			b.WriteString("        if [[ ${COMP_CWORD} -eq 2 ]]; then\n")
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(c.Args, " "))
			b.WriteString("        fi\n")
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -o filenames -F _chatmd_completions chatmd\n")

	_, err := w.Write(b.Bytes())
	return err
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

var zshReplacer = strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")

func zshFlagSpec(f flagDef) string {
	desc := zshReplacer.Replace(f.Desc)

	var action string
	switch f.Type {
	case flagBool:
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		action = fmt.Sprintf(":file:_files -g \"%s\"", extPattern(f.FileGlob, "(", ")"))
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = fmt.Sprintf(":%s: ", f.Long)
	}

	repeat := ""
	if f.Repeat {
		repeat = "*"
	}
	if f.Short == "" {
		return fmt.Sprintf("'%s--%s[%s]%s'", repeat, f.Long, desc, action)
	}
	if f.Repeat {
		return fmt.Sprintf("'*'{-%s,--%s}'[%s]%s'", f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
}

func generateZsh(w io.Writer, commands []commandDef) error {
	var b bytes.Buffer

	b.WriteString("#compdef chatmd\n\n")
	b.WriteString("_chatmd() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshReplacer.Replace(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe -t commands 'chatmd command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=\"${words[2]}\"\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range commands {
		if len(c.Flags) == 0 && len(c.Args) == 0 && !c.TakesFiles {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		if len(c.Args) > 0 && len(c.Flags) == 0 {
			fmt.Fprintf(&b, "        _values '%s' %s\n", c.Name, strings.Join(c.Args, " "))
			b.WriteString("        ;;\n")
			continue
		}

		b.WriteString("        _arguments -s")
		for _, f := range c.Flags {
			b.WriteString(" \\\n            ")
			b.WriteString(zshFlagSpec(f))
		}
		if c.TakesFiles {
			fmt.Fprintf(&b, " \\\n            '*:input:_files -g \"%s\"'", extPattern(c.FilePattern, "(", ")"))
		}
		b.WriteString("\n        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("if [ \"$funcstack[1]\" = \"_chatmd\" ]; then\n")
	b.WriteString("    _chatmd \"$@\"\n")
	b.WriteString("else\n")
	b.WriteString("    compdef _chatmd chatmd\n")
	b.WriteString("fi\n")

	_, err := w.Write(b.Bytes())
	return err
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

var fishReplacer = strings.NewReplacer("\\", "\\\\", "'", "\\'")

func generateFish(w io.Writer, commands []commandDef) error {
	var b bytes.Buffer

	b.WriteString("# fish completion for chatmd\n\n")
	b.WriteString("function __fish_chatmd_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_chatmd_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $argv[1] = $cmd[2]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c chatmd -f\n")

	for _, c := range commands {
		fmt.Fprintf(&b, "complete -c chatmd -n __fish_chatmd_needs_command -a %s -d '%s'\n", c.Name, fishReplacer.Replace(c.Desc))
	}

	for _, c := range commands {
		cond := fmt.Sprintf("-n '__fish_chatmd_using_command %s'", c.Name)
		if len(c.Flags) > 0 || len(c.Args) > 0 || c.TakesFiles {
			b.WriteString("\n")
		}

		for _, f := range c.Flags {
			line := "complete -c chatmd " + cond
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long
			switch f.Type {
			case flagBool:
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			default:
				line += " -x"
			}
			line += fmt.Sprintf(" -d '%s'", fishReplacer.Replace(f.Desc))
			b.WriteString(line + "\n")
		}

		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c chatmd %s -x -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
		if c.TakesFiles {
			fmt.Fprintf(&b, "complete -c chatmd %s -F\n", cond)
		}
	}

	_, err := w.Write(b.Bytes())
	return err
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

// psList renders values as a PowerShell array literal.
func psList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return "@(" + strings.Join(quoted, ", ") + ")"
}

func generatePowerShell(w io.Writer, commands []commandDef) error {
	var b bytes.Buffer

	b.WriteString("# PowerShell completion for chatmd\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName chatmd -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $words = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n")
	b.WriteString("    $count = $words.Count\n")
	b.WriteString("    if ($wordToComplete) { $count-- }\n\n")
	b.WriteString("    $candidates = @()\n")
	b.WriteString("    if ($count -le 1) {\n")
	fmt.Fprintf(&b, "        $candidates = %s\n", psList(commandNames(commands)))
	b.WriteString("    } else {\n")
	b.WriteString("        $prev = $words[$count - 1]\n")
	b.WriteString("        switch ($words[1]) {\n")

	for _, c := range commands {
		if len(c.Flags) == 0 && len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(&b, "            '%s' {\n", c.Name)
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "                if ($count -eq 2) { $candidates = %s }\n", psList(c.Args))
		}
		for _, f := range c.Flags {
			if f.Type != flagEnum {
				continue
			}
			names := []string{"--" + f.Long}
			if f.Short != "" {
				names = append(names, "-"+f.Short)
			}
			fmt.Fprintf(&b, "                if (%s -contains $prev) { $candidates = %s; break }\n", psList(names), psList(f.Values))
		}
		if len(c.Flags) > 0 {
			fmt.Fprintf(&b, "                if ($wordToComplete -like '-*') { $candidates = %s }\n", psList(flagWords(c.Flags)))
		}
		b.WriteString("            }\n")
	}

	b.WriteString("        }\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $candidates | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := w.Write(b.Bytes())
	return err
}
