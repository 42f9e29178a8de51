package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-deckgen/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// command runs one subcommand with its remaining args.
type command func(ctx context.Context, args []string, env *Environment) error

// commands maps subcommand names to their handlers.
var commands = map[string]command{
	"build":     runBuild,
	"normalize": runNormalize,
	"generate":  runGenerate,
	"refine":    runRefine,
	"outline":   runOutline,
	"report":    runReport,
	"templates": runTemplates,
}

// runMain dispatches args[1] and returns the process exit code.
func runMain(args []string, env *Environment) int {
	warnUnknownEnvVars(env.Stderr)

	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	name, rest := args[1], args[2:]
	switch name {
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "deckgen %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "completion":
		return finish(runCompletion(rest, env), env, nil)
	}

	run, ok := commands[name]
	if !ok {
		fmt.Fprintf(env.Stderr, "error: unknown command %q\n\n", name)
		printUsage(env.Stderr)
		return ExitUsage
	}
	return finish(run(ctx, rest, env), env, rest)
}

// finish prints err with its hint and maps it to an exit code.
func finish(err error, env *Environment, args []string) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	searched, templates := hintContext(args)
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, searched, templates))
	return exitCodeFor(err)
}

// hintContext recovers the config search paths and template names a hint
// may mention. It is only called on failure.
func hintContext(args []string) ([]string, func() []string) {
	var searched []string
	if name := first(flagValue(args, "config", "c"), os.Getenv("DECKGEN_CONFIG")); isConfigName(name) {
		searched = config.SearchPaths(name)
	}
	templates := func() []string {
		return templateNames(first(flagValue(args, "asset-path", ""), os.Getenv("DECKGEN_ASSET_PATH")))
	}
	return searched, templates
}

// isConfigName reports whether name is looked up rather than a path.
func isConfigName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\`) && filepath.Ext(name) == ""
}

// flagValue scans args for a string flag without a full parse.
func flagValue(args []string, long, short string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		if v, ok := strings.CutPrefix(a, "--"+long+"="); ok {
			return v
		}
		if (a == "--"+long || (short != "" && a == "-"+short)) && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
