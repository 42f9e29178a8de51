package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
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
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	TakesFiles  bool     // accepts file arguments
	FilePattern string   // glob for file arguments (e.g., "*.yaml")
	Args        []string // fixed positional words
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"kind":      {Values: []string{"slide", "report"}},
	"provider":  {Values: []string{"mock", "openai"}},
	"log-level": {Values: []string{"debug", "info", "warn", "error"}},

	// File flags with glob patterns
	"config": {FileGlob: "*.yaml,*.yml"},
	"batch":  {FileGlob: "*.yaml,*.yml,*.json"},
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
		case "int", "int64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
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
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

const deckPattern = "*.yaml,*.yml,*.json"

// getCommands returns the command registry for completion.
// Flags are extracted from the same FlagSets the commands parse.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        "build",
			Desc:        "Build .pptx presentations from deck files",
			Flags:       extractFlagsFromFlagSet(newBuildFlagSet(&buildFlags{})),
			TakesFiles:  true,
			FilePattern: deckPattern,
		},
		{
			Name:        "normalize",
			Desc:        "Clean raw generator output into canonical markup",
			Flags:       extractFlagsFromFlagSet(newNormalizeFlagSet(&normalizeFlags{})),
			TakesFiles:  true,
			FilePattern: "*.md,*.txt,*.html",
		},
		{
			Name:  "generate",
			Desc:  "Generate slide or report content",
			Flags: extractFlagsFromFlagSet(newGenerateFlagSet(&generateFlags{})),
		},
		{
			Name:        "refine",
			Desc:        "Rewrite existing content following an instruction",
			Flags:       extractFlagsFromFlagSet(newRefineFlagSet(&refineFlags{})),
			TakesFiles:  true,
			FilePattern: "*.md,*.txt,*.html",
		},
		{
			Name:  "outline",
			Desc:  "Suggest section titles for a topic",
			Flags: extractFlagsFromFlagSet(newOutlineFlagSet(&outlineFlags{})),
		},
		{
			Name:        "report",
			Desc:        "Export sections files to PDF or HTML",
			Flags:       extractFlagsFromFlagSet(newReportFlagSet(&reportFlags{})),
			TakesFiles:  true,
			FilePattern: deckPattern,
		},
		{
			Name:  "templates",
			Desc:  "List or show style templates",
			Flags: extractFlagsFromFlagSet(newTemplatesFlagSet(&templatesFlags{})),
			Args:  templateNames(""),
		},
		{
			Name:  "doctor",
			Desc:  "Check system configuration",
			Flags: extractFlagsFromFlagSet(newDoctorFlagSet(&doctorFlags{})),
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish)},
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: []string{"build", "normalize", "generate", "refine", "outline", "report", "templates", "doctor", "completion"},
		},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var b strings.Builder
	switch shell {
	case ShellBash:
		generateBash(&b, getCommands())
	case ShellZsh:
		generateZsh(&b, getCommands())
	case ShellFish:
		generateFish(&b, getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// flagNames returns "--long -s" for every flag.
func flagNames(flags []flagDef) string {
	names := make([]string, 0, 2*len(flags))
	for _, f := range flags {
		names = append(names, "--"+f.Long)
		if f.Short != "" {
			names = append(names, "-"+f.Short)
		}
	}
	return strings.Join(names, " ")
}

// flagPattern returns the case pattern matching a flag, e.g. "-o|--output".
func flagPattern(f flagDef) string {
	if f.Short != "" {
		return "-" + f.Short + "|--" + f.Long
	}
	return "--" + f.Long
}

func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

func generateBash(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# bash completion for deckgen\n\n")
	b.WriteString("_deckgen_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", commandNames(cmds))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(b, "        %s)\n", c.Name)
		var valued []flagDef
		for _, f := range c.Flags {
			if f.Type != flagBool {
				valued = append(valued, f)
			}
		}
		if len(valued) > 0 {
			b.WriteString("            case \"$prev\" in\n")
			for _, f := range valued {
				fmt.Fprintf(b, "                %s)\n", flagPattern(f))
				switch f.Type {
				case flagEnum:
					fmt.Fprintf(b, "                    COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(f.Values, " "))
				case flagFile:
					b.WriteString("                    COMPREPLY=($(compgen -f -- \"$cur\"))\n")
				case flagDir:
					b.WriteString("                    COMPREPLY=($(compgen -d -- \"$cur\"))\n")
				}
				b.WriteString("                    return\n")
				b.WriteString("                    ;;\n")
			}
			b.WriteString("            esac\n")
		}
		if len(c.Flags) > 0 {
			b.WriteString("            if [[ \"$cur\" == -* ]]; then\n")
			fmt.Fprintf(b, "                COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", flagNames(c.Flags))
			b.WriteString("                return\n")
			b.WriteString("            fi\n")
		}
		switch {
		case c.TakesFiles:
			b.WriteString("            COMPREPLY=($(compgen -f -- \"$cur\"))\n")
		case len(c.Args) > 0:
			fmt.Fprintf(b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(c.Args, " "))
		}
		b.WriteString("            ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _deckgen_completions deckgen\n")
}

// zshQuote escapes text for a single-quoted _arguments description.
func zshQuote(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`)
	return r.Replace(s)
}

// zshAction returns the _arguments action for a valued flag.
func zshAction(f flagDef) string {
	switch f.Type {
	case flagBool:
		return ""
	case flagEnum:
		return ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		return ":file:_files -g \"" + strings.ReplaceAll(f.FileGlob, ",", " ") + "\""
	case flagDir:
		return ":directory:_files -/"
	default:
		return ":" + f.Long + ":"
	}
}

func generateZsh(b *strings.Builder, cmds []commandDef) {
	b.WriteString("#compdef deckgen\n\n")
	b.WriteString("_deckgen() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        '%s:%s'\n", c.Name, zshQuote(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=$words[2]\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case $cmd in\n")

	for _, c := range cmds {
		fmt.Fprintf(b, "        %s)\n", c.Name)
		b.WriteString("            _arguments")
		for _, f := range c.Flags {
			action := zshAction(f)
			desc := zshQuote(f.Desc)
			if f.Short != "" {
				fmt.Fprintf(b, " \\\n                '(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
			} else {
				fmt.Fprintf(b, " \\\n                '--%s[%s]%s'", f.Long, desc, action)
			}
		}
		switch {
		case c.TakesFiles:
			fmt.Fprintf(b, " \\\n                '*:file:_files -g \"%s\"'", strings.ReplaceAll(c.FilePattern, ",", " "))
		case len(c.Args) > 0:
			fmt.Fprintf(b, " \\\n                '1:argument:(%s)'", strings.Join(c.Args, " "))
		}
		b.WriteString("\n")
		b.WriteString("            ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_deckgen \"$@\"\n")
}

// fishQuote escapes text for a single-quoted fish argument.
func fishQuote(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

func generateFish(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# fish completion for deckgen\n\n")
	b.WriteString("function __fish_deckgen_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_deckgen_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c deckgen -f\n\n")

	for _, c := range cmds {
		fmt.Fprintf(b, "complete -c deckgen -n __fish_deckgen_needs_command -a %s -d '%s'\n", c.Name, fishQuote(c.Desc))
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("'__fish_deckgen_using_command %s'", c.Name)
		b.WriteString("\n")
		for _, f := range c.Flags {
			fmt.Fprintf(b, "complete -c deckgen -n %s", cond)
			if f.Short != "" {
				fmt.Fprintf(b, " -s %s", f.Short)
			}
			fmt.Fprintf(b, " -l %s -d '%s'", f.Long, fishQuote(f.Desc))
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(b, " -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				b.WriteString(" -r -F")
			case flagDir:
				b.WriteString(" -x -a '(__fish_complete_directories)'")
			case flagString, flagInt:
				b.WriteString(" -x")
			}
			b.WriteString("\n")
		}
		switch {
		case c.TakesFiles:
			fmt.Fprintf(b, "complete -c deckgen -n %s -F\n", cond)
		case len(c.Args) > 0:
			fmt.Fprintf(b, "complete -c deckgen -n %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
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
	fmt.Fprintln(w, "Usage: deckgen completion <shell>")
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
	fmt.Fprintln(w, "    eval \"$(deckgen completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(deckgen completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    deckgen completion fish > ~/.config/fish/completions/deckgen.fish")
}
