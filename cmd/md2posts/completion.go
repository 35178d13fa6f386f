package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2posts/internal/dateutil"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
	flagPath // file or directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a subcommand for completion.
type commandDef struct {
	Name string
	Desc string
	Args []string // fixed positional values
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
	IsPath   bool     // file or directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"date-format": {Values: presetNames()},

	// File flags with glob patterns
	"config":       {FileGlob: "*.yaml,*.yml"},
	"replacements": {FileGlob: "*.json"},

	// Directory flags
	"output": {IsDir: true},
	"js":     {IsDir: true},

	// File or directory
	"input": {IsPath: true},
}

// presetNames returns the date presets accepted by --date-format, sorted.
func presetNames() []string {
	names := make([]string, 0, len(dateutil.DatePresets))
	for name := range dateutil.DatePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
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

		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			case meta.IsPath:
				fd.Type = flagPath
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getFlags returns the build flags, extracted from the real FlagSet.
func getFlags() []flagDef {
	return extractFlagsFromFlagSet(buildFlagSet(&buildFlags{}))
}

// getCommands returns the subcommand registry for completion.
func getCommands() []commandDef {
	return []commandDef{
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command", Args: []string{"version", "help", "completion"}},
		{Name: "completion", Desc: "Generate shell completion script", Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish)}},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// generateBash writes a bash completion function bound with complete -F.
func generateBash(w io.Writer) error {
	flags := getFlags()
	commands := getCommands()

	var b strings.Builder
	b.WriteString("# bash completion for md2posts\n")
	b.WriteString("_md2posts_completions() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")

	b.WriteString("    if [[ ${COMP_CWORD} -eq 2 ]]; then\n")
	b.WriteString("        case \"${COMP_WORDS[1]}\" in\n")
	for _, c := range commands {
		if len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(&b, "            %s) COMPREPLY=($(compgen -W %q -- \"$cur\")); return ;;\n", c.Name, strings.Join(c.Args, " "))
	}
	b.WriteString("        esac\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"$prev\" in\n")
	for _, f := range flags {
		names := "--" + f.Long
		if f.Short != "" {
			names = "-" + f.Short + "|" + names
		}
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -W %q -- \"$cur\")); return ;;\n", names, strings.Join(f.Values, " "))
		case flagFile:
			fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -f -- \"$cur\")); return ;;\n", names)
		case flagDir:
			fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -d -- \"$cur\")); return ;;\n", names)
		case flagPath:
			fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -f -- \"$cur\")); return ;;\n", names)
		case flagString:
			fmt.Fprintf(&b, "        %s) return ;;\n", names)
		}
	}
	b.WriteString("    esac\n\n")

	words := make([]string, 0, len(flags)*2+len(commands))
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	if len(words) > 0 {
		b.WriteString("    if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(words, " "))
		b.WriteString("        return\n")
		b.WriteString("    fi\n\n")
	}

	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(names, " "))
	b.WriteString("    fi\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _md2posts_completions md2posts\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// generateZsh writes a zsh completion function for compinit.
func generateZsh(w io.Writer) error {
	flags := getFlags()
	commands := getCommands()

	var b strings.Builder
	b.WriteString("#compdef md2posts\n\n")
	b.WriteString("_md2posts() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")

	b.WriteString("    if (( CURRENT == 2 )) && [[ ${words[CURRENT]} != -* ]]; then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case ${words[2]} in\n")
	for _, c := range commands {
		if len(c.Args) == 0 {
			fmt.Fprintf(&b, "        %s) return ;;\n", c.Name)
			continue
		}
		fmt.Fprintf(&b, "        %s) _values '%s' %s; return ;;\n", c.Name, c.Name, strings.Join(c.Args, " "))
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    _arguments -s \\\n")
	for _, f := range flags {
		fmt.Fprintf(&b, "        %s \\\n", zshFlagSpec(f))
	}
	b.WriteString("        && return 0\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _md2posts md2posts\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshFlagSpec renders one _arguments spec for f.
func zshFlagSpec(f flagDef) string {
	desc := zshEscape(f.Desc)

	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		action = fmt.Sprintf(":%s:_files -g \"%s\"", f.Long, zshGlob(f.FileGlob))
	case flagDir:
		action = fmt.Sprintf(":%s:_files -/", f.Long)
	case flagPath:
		action = fmt.Sprintf(":%s:_files", f.Long)
	default:
		action = fmt.Sprintf(":%s:", f.Long)
	}

	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, action)
}

// zshGlob turns "*.yaml,*.yml" into the zsh pattern "*.(yaml|yml)".
func zshGlob(globs string) string {
	parts := strings.Split(globs, ",")
	if len(parts) == 1 {
		return parts[0]
	}
	exts := make([]string, len(parts))
	for i, p := range parts {
		exts[i] = strings.TrimPrefix(p, "*.")
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

// zshEscape escapes characters with special meaning in _arguments specs.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

// generateFish writes fish complete commands.
func generateFish(w io.Writer) error {
	flags := getFlags()
	commands := getCommands()

	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}

	var b strings.Builder
	b.WriteString("# fish completion for md2posts\n")
	b.WriteString("function __fish_md2posts_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_md2posts_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c md2posts -f\n")

	for _, c := range commands {
		fmt.Fprintf(&b, "complete -c md2posts -n '__fish_md2posts_needs_command' -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c md2posts -n '__fish_md2posts_using_command %s' -a '%s'\n", c.Name, strings.Join(c.Args, " "))
		}
	}

	for _, f := range flags {
		line := "complete -c md2posts -n 'not __fish_seen_subcommand_from " + strings.Join(names, " ") + "'"
		if f.Short != "" {
			line += " -s " + f.Short
		}
		line += " -l " + f.Long
		switch f.Type {
		case flagEnum:
			line += " -x -a '" + strings.Join(f.Values, " ") + "'"
		case flagFile, flagPath:
			line += " -r -F"
		case flagDir:
			line += " -x -a '(__fish_complete_directories)'"
		case flagString:
			line += " -x"
		}
		line += " -d '" + fishEscape(f.Desc) + "'\n"
		b.WriteString(line)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// fishEscape escapes single quotes for fish string literals.
func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
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
	fmt.Fprintln(w, "Usage: md2posts completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(md2posts completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(md2posts completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    md2posts completion fish > ~/.config/fish/completions/md2posts.fish")
}
