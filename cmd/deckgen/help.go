package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckgen <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build       Build .pptx presentations from deck files")
	fmt.Fprintln(w, "  normalize   Clean raw generator output into canonical markup")
	fmt.Fprintln(w, "  generate    Generate slide or report content")
	fmt.Fprintln(w, "  refine      Rewrite existing content following an instruction")
	fmt.Fprintln(w, "  outline     Suggest section titles for a topic")
	fmt.Fprintln(w, "  report      Export sections files to PDF or HTML")
	fmt.Fprintln(w, "  templates   List or show style templates")
	fmt.Fprintln(w, "  doctor      Check system configuration")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'deckgen help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags every command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --log-level <s>       Log level: debug, info, warn, error")
	fmt.Fprintln(w, "      --log-json            Log as JSON lines")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// printProviderUsage prints the text provider flags.
func printProviderUsage(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Provider:")
	fmt.Fprintln(w, "      --provider <s>        mock, openai (default: openai when OPENAI_API_KEY is set)")
	fmt.Fprintln(w, "      --model <s>           Provider model")
	fmt.Fprintln(w, "      --base-url <url>      OpenAI-compatible endpoint")
	fmt.Fprintln(w, "      --provider-timeout <d> Request timeout (e.g., 30s)")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckgen build <deck.yaml>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build one .pptx presentation per deck file. Use - to read stdin.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .pptx file or directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "  -t, --template <name>     Style template (deck overrides are kept)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	printCommonUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Deck file (YAML or JSON):")
	fmt.Fprintln(w, "  title: Quarterly review")
	fmt.Fprintln(w, "  author: Jane Doe")
	fmt.Fprintln(w, "  template: professional_clean      # name, or a mapping of overrides")
	fmt.Fprintln(w, "  slides:")
	fmt.Fprintln(w, "    - type: title                   # title, summary, skills, contact,")
	fmt.Fprintln(w, "      title: Quarterly review       # experience, education, projects")
	fmt.Fprintln(w, "      subtitle: Q3")
	fmt.Fprintln(w, "    - type: skills")
	fmt.Fprintln(w, "      title: Stack")
	fmt.Fprintln(w, "      bullets: [Go, SQL]")
}

// printNormalizeUsage prints usage for the normalize command.
func printNormalizeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckgen normalize [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Clean raw generator output into canonical markup. Reads stdin without a file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "  -k, --kind <s>            Document kind: slide, report")
	fmt.Fprintln(w, "      --context <s>         Title used when the input has none")
	fmt.Fprintln(w, "      --json                Print markup and stage as JSON")
	printCommonUsage(w)
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckgen generate [prompt] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate content for one request, or every request of a batch file.")
	fmt.Fprintln(w, "Provider failures fall back to mock content.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Request:")
	fmt.Fprintln(w, "  -k, --kind <s>            Document kind: slide, report")
	fmt.Fprintln(w, "  -p, --prompt <s>          Section title or short brief")
	fmt.Fprintln(w, "      --project <id>        Project identifier")
	fmt.Fprintln(w, "      --section <id>        Section identifier")
	fmt.Fprintln(w, "      --slide <n>           Slide index within the section")
	fmt.Fprintln(w, "  -t, --template <name>     Style template, as a prompt hint")
	fmt.Fprintln(w, "      --batch <file>        YAML or JSON list of requests")
	fmt.Fprintln(w, "      --markup              Print markup only")
	printProviderUsage(w)
	printCommonUsage(w)
}

// printRefineUsage prints usage for the refine command.
func printRefineUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckgen refine [file] --instruction <s> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite existing markup. Reads stdin without a file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "  -k, --kind <s>            Document kind: slide, report")
	fmt.Fprintln(w, "  -i, --instruction <s>     How to rewrite the content")
	fmt.Fprintln(w, "      --json                Print markup and provenance as JSON")
	printProviderUsage(w)
	printCommonUsage(w)
}

// printOutlineUsage prints usage for the outline command.
func printOutlineUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckgen outline [topic] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Suggest section titles for a topic, one per line.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "  -k, --kind <s>            Document kind: slide, report")
	fmt.Fprintln(w, "      --topic <s>           Document topic")
	fmt.Fprintln(w, "  -t, --template <name>     Style template, as a prompt hint")
	fmt.Fprintln(w, "      --json                Print titles as a JSON array")
	printProviderUsage(w)
	printCommonUsage(w)
}

// printReportUsage prints usage for the report command.
func printReportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckgen report <sections.yaml>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export sections files to PDF through headless Chrome, or to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel browsers (0 = auto)")
	fmt.Fprintln(w, "      --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --html                Write HTML instead of PDF")
	fmt.Fprintln(w, "      --pptx                Also write a deck built from the sections")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Report title (default: file title, then file name)")
	fmt.Fprintln(w, "      --author <s>          Report author")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "      --cover               Add a cover block")
	fmt.Fprintln(w, "      --no-cover            Disable the cover block")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "  -t, --template <name>     Style template for colors and fonts")
	fmt.Fprintln(w, "      --style <name>        Base stylesheet name")
	fmt.Fprintln(w, "      --css <path>          Extra CSS file")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	printCommonUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sections file (YAML or JSON):")
	fmt.Fprintln(w, "  title: Annual report")
	fmt.Fprintln(w, "  sections:")
	fmt.Fprintln(w, "    - title: Overview")
	fmt.Fprintln(w, "      content: \"**Growth** was steady.\"")
}

// printTemplatesUsage prints usage for the templates command.
func printTemplatesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckgen templates [name] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List style templates, or print one fully resolved.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "      --json                Print as JSON")
	printCommonUsage(w)
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckgen doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check Chrome, provider credentials, configuration and the temp directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Print as JSON")
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	usage := map[string]func(io.Writer){
		"build":      printBuildUsage,
		"normalize":  printNormalizeUsage,
		"generate":   printGenerateUsage,
		"refine":     printRefineUsage,
		"outline":    printOutlineUsage,
		"report":     printReportUsage,
		"templates":  printTemplatesUsage,
		"doctor":     printDoctorUsage,
		"completion": printCompletionUsage,
	}
	switch args[0] {
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: deckgen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: deckgen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		show, ok := usage[args[0]]
		if !ok {
			fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
			printUsage(env.Stderr)
			return ExitUsage
		}
		show(env.Stdout)
	}
	return ExitSuccess
}
