package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// slideUnset detects if --slide was explicitly set.
// Since 0 is a valid slide index, we use an out-of-range sentinel.
const slideUnset = -1

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config   string
	logLevel string
	logJSON  bool
	quiet    bool
}

// assetFlags selects style definitions.
type assetFlags struct {
	assetPath string
	template  string
}

// providerFlags selects and tunes the text generation provider.
type providerFlags struct {
	kind    string
	model   string
	baseURL string
	timeout string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	assets  assetFlags
	output  string
	workers int
}

// normalizeFlags holds all flags for the normalize command.
type normalizeFlags struct {
	common  commonFlags
	kind    string
	context string
	json    bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common   commonFlags
	provider providerFlags
	kind     string
	prompt   string
	project  string
	section  string
	slide    int
	template string
	batch    string
	markup   bool
}

// refineFlags holds all flags for the refine command.
type refineFlags struct {
	common      commonFlags
	provider    providerFlags
	kind        string
	instruction string
	json        bool
}

// outlineFlags holds all flags for the outline command.
type outlineFlags struct {
	common   commonFlags
	provider providerFlags
	kind     string
	topic    string
	template string
	json     bool
}

// reportFlags holds all flags for the report command.
type reportFlags struct {
	common  commonFlags
	assets  assetFlags
	output  string
	workers int
	timeout string
	title   string
	author  string
	date    string
	style   string
	css     string
	cover   bool
	noCover bool
	html    bool
	pptx    bool
}

// templatesFlags holds all flags for the templates command.
type templatesFlags struct {
	common commonFlags
	assets assetFlags
	json   bool
}

// doctorFlags holds all flags for the doctor command.
type doctorFlags struct {
	common commonFlags
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&f.logJSON, "log-json", false, "log as JSON lines")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
}

// addAssetFlags adds style definition flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVarP(&f.template, "template", "t", "", "style template name")
}

// addProviderFlags adds provider flags to a FlagSet.
func addProviderFlags(fs *flag.FlagSet, f *providerFlags) {
	fs.StringVar(&f.kind, "provider", "", "text provider: mock, openai (default: openai when OPENAI_API_KEY is set)")
	fs.StringVar(&f.model, "model", "", "provider model")
	fs.StringVar(&f.baseURL, "base-url", "", "OpenAI-compatible endpoint")
	fs.StringVar(&f.timeout, "provider-timeout", "", "provider request timeout (e.g., 30s)")
}

// addKindFlag adds the document kind flag to a FlagSet.
func addKindFlag(fs *flag.FlagSet, kind *string) {
	fs.StringVarP(kind, "kind", "k", "slide", "document kind: slide, report")
}

func newBuildFlagSet(f *buildFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	return fs
}

func newNormalizeFlagSet(f *normalizeFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	addKindFlag(fs, &f.kind)
	fs.StringVar(&f.context, "context", "", "title used when the input has none")
	fs.BoolVar(&f.json, "json", false, "print markup and stage as JSON")
	addCommonFlags(fs, &f.common)
	return fs
}

func newGenerateFlagSet(f *generateFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	addKindFlag(fs, &f.kind)
	fs.StringVarP(&f.prompt, "prompt", "p", "", "section title or short brief")
	fs.StringVar(&f.project, "project", "", "project identifier")
	fs.StringVar(&f.section, "section", "", "section identifier")
	fs.IntVar(&f.slide, "slide", slideUnset, "slide index within the section")
	fs.StringVarP(&f.template, "template", "t", "", "style template name, as a prompt hint")
	fs.StringVar(&f.batch, "batch", "", "YAML or JSON file listing requests")
	fs.BoolVar(&f.markup, "markup", false, "print markup only")
	addProviderFlags(fs, &f.provider)
	addCommonFlags(fs, &f.common)
	return fs
}

func newRefineFlagSet(f *refineFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("refine", flag.ContinueOnError)
	addKindFlag(fs, &f.kind)
	fs.StringVarP(&f.instruction, "instruction", "i", "", "how to rewrite the content")
	fs.BoolVar(&f.json, "json", false, "print markup and provenance as JSON")
	addProviderFlags(fs, &f.provider)
	addCommonFlags(fs, &f.common)
	return fs
}

func newOutlineFlagSet(f *outlineFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("outline", flag.ContinueOnError)
	addKindFlag(fs, &f.kind)
	fs.StringVar(&f.topic, "topic", "", "document topic")
	fs.StringVarP(&f.template, "template", "t", "", "style template name, as a prompt hint")
	fs.BoolVar(&f.json, "json", false, "print titles as a JSON array")
	addProviderFlags(fs, &f.provider)
	addCommonFlags(fs, &f.common)
	return fs
}

func newReportFlagSet(f *reportFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.timeout, "timeout", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.title, "title", "", "report title")
	fs.StringVar(&f.author, "author", "", "report author")
	fs.StringVar(&f.date, "date", "", "cover date: \"auto\", \"auto:FORMAT\", or literal")
	fs.StringVar(&f.style, "style", "", "base stylesheet name")
	fs.StringVar(&f.css, "css", "", "extra CSS file")
	fs.BoolVar(&f.cover, "cover", false, "add a cover block")
	fs.BoolVar(&f.noCover, "no-cover", false, "disable the cover block")
	fs.BoolVar(&f.html, "html", false, "write HTML instead of PDF")
	fs.BoolVar(&f.pptx, "pptx", false, "also write a deck built from the sections")
	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	return fs
}

func newTemplatesFlagSet(f *templatesFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("templates", flag.ContinueOnError)
	fs.BoolVar(&f.json, "json", false, "print as JSON")
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.assets.assetPath, "asset-path", "", "custom asset directory")
	return fs
}

func newDoctorFlagSet(f *doctorFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.BoolVar(&f.json, "json", false, "print as JSON")
	addCommonFlags(fs, &f.common)
	return fs
}

// parse wires usage output to w and parses args, returning positional args.
func parse(fs *flag.FlagSet, args []string, w io.Writer, usage func(io.Writer)) ([]string, error) {
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	return fs.Args(), nil
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	rest, err := parse(newBuildFlagSet(f), args, w, printBuildUsage)
	return f, rest, err
}

// parseNormalizeFlags parses normalize command flags and returns positional args.
func parseNormalizeFlags(args []string, w io.Writer) (*normalizeFlags, []string, error) {
	f := &normalizeFlags{}
	rest, err := parse(newNormalizeFlagSet(f), args, w, printNormalizeUsage)
	return f, rest, err
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, w io.Writer) (*generateFlags, []string, error) {
	f := &generateFlags{}
	rest, err := parse(newGenerateFlagSet(f), args, w, printGenerateUsage)
	return f, rest, err
}

// parseRefineFlags parses refine command flags and returns positional args.
func parseRefineFlags(args []string, w io.Writer) (*refineFlags, []string, error) {
	f := &refineFlags{}
	rest, err := parse(newRefineFlagSet(f), args, w, printRefineUsage)
	return f, rest, err
}

// parseOutlineFlags parses outline command flags and returns positional args.
func parseOutlineFlags(args []string, w io.Writer) (*outlineFlags, []string, error) {
	f := &outlineFlags{}
	rest, err := parse(newOutlineFlagSet(f), args, w, printOutlineUsage)
	return f, rest, err
}

// parseReportFlags parses report command flags and returns positional args.
func parseReportFlags(args []string, w io.Writer) (*reportFlags, []string, error) {
	f := &reportFlags{}
	rest, err := parse(newReportFlagSet(f), args, w, printReportUsage)
	return f, rest, err
}

// parseTemplatesFlags parses templates command flags and returns positional args.
func parseTemplatesFlags(args []string, w io.Writer) (*templatesFlags, []string, error) {
	f := &templatesFlags{}
	rest, err := parse(newTemplatesFlagSet(f), args, w, printTemplatesUsage)
	return f, rest, err
}

// parseDoctorFlags parses doctor command flags and returns positional args.
func parseDoctorFlags(args []string, w io.Writer) (*doctorFlags, []string, error) {
	f := &doctorFlags{}
	rest, err := parse(newDoctorFlagSet(f), args, w, printDoctorUsage)
	return f, rest, err
}
