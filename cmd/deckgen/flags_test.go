package main

// Notes:
// - parse: we test error wrapping, help passthrough and positional args.
// - Per-command parsers: we test defaults and shorthand flags on a few
//   representative commands; the FlagSets are also exercised by completion.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParse - Shared parsing behavior
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("unknown flag wraps ErrInvalidFlag", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, _, err := parseBuildFlags([]string{"--nope"}, &buf)
		if !errors.Is(err, ErrInvalidFlag) {
			t.Errorf("parseBuildFlags(--nope) error = %v, want ErrInvalidFlag", err)
		}
	})

	t.Run("help passes through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, _, err := parseBuildFlags([]string{"--help"}, &buf)
		if !errors.Is(err, flag.ErrHelp) {
			t.Fatalf("parseBuildFlags(--help) error = %v, want ErrHelp", err)
		}
		if errors.Is(err, ErrInvalidFlag) {
			t.Error("help should not be reported as an invalid flag")
		}
		if !strings.Contains(buf.String(), "Usage: deckgen build") {
			t.Errorf("help output = %q, want build usage", buf.String())
		}
	})

	t.Run("bad int value", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, _, err := parseBuildFlags([]string{"-w", "many"}, &buf)
		if !errors.Is(err, ErrInvalidFlag) {
			t.Errorf("parseBuildFlags(-w many) error = %v, want ErrInvalidFlag", err)
		}
	})

	t.Run("positional args interleaved", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		f, rest, err := parseBuildFlags([]string{"a.yaml", "-o", "out", "b.yaml", "-q"}, &buf)
		if err != nil {
			t.Fatalf("parseBuildFlags() unexpected error: %v", err)
		}
		if !slices.Equal(rest, []string{"a.yaml", "b.yaml"}) {
			t.Errorf("rest = %v, want [a.yaml b.yaml]", rest)
		}
		if f.output != "out" || !f.common.quiet {
			t.Errorf("flags = %+v, want output out and quiet", f)
		}
	})
}

// ---------------------------------------------------------------------------
// TestParseCommandFlags - Defaults and shorthands
// ---------------------------------------------------------------------------

func TestParseGenerateFlags(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	f, _, err := parseGenerateFlags(nil, &buf)
	if err != nil {
		t.Fatalf("parseGenerateFlags() unexpected error: %v", err)
	}
	if f.slide != slideUnset {
		t.Errorf("slide default = %d, want %d", f.slide, slideUnset)
	}
	if f.kind != "slide" {
		t.Errorf("kind default = %q, want slide", f.kind)
	}

	f, _, err = parseGenerateFlags([]string{"-k", "report", "-p", "Intro", "--slide", "0", "--provider", "mock", "-c", "work"}, &buf)
	if err != nil {
		t.Fatalf("parseGenerateFlags() unexpected error: %v", err)
	}
	if f.kind != "report" || f.prompt != "Intro" || f.slide != 0 {
		t.Errorf("flags = %+v, want report, Intro, slide 0", f)
	}
	if f.provider.kind != "mock" || f.common.config != "work" {
		t.Errorf("provider = %q, config = %q, want mock and work", f.provider.kind, f.common.config)
	}
}

func TestParseReportFlags(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f, rest, err := parseReportFlags([]string{"--html", "--no-cover", "--title", "Q3", "-t", "dark_mode", "s.yaml"}, &buf)
	if err != nil {
		t.Fatalf("parseReportFlags() unexpected error: %v", err)
	}
	if !f.html || !f.noCover || f.cover {
		t.Errorf("flags = %+v, want html and no-cover", f)
	}
	if f.title != "Q3" || f.assets.template != "dark_mode" {
		t.Errorf("title = %q, template = %q, want Q3 and dark_mode", f.title, f.assets.template)
	}
	if !slices.Equal(rest, []string{"s.yaml"}) {
		t.Errorf("rest = %v, want [s.yaml]", rest)
	}
}

func TestParseDoctorFlags(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f, _, err := parseDoctorFlags([]string{"--json", "--config", "team"}, &buf)
	if err != nil {
		t.Fatalf("parseDoctorFlags() unexpected error: %v", err)
	}
	if !f.json || f.common.config != "team" {
		t.Errorf("flags = %+v, want json and config team", f)
	}
}
