package hints

// Notes:
// - ForBrowserConnect tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Modify the package-level IsInContainer variable
// These are acceptable gaps: we test observable behavior through environment manipulation.

import (
	"strings"
	"testing"
)

func stubContainer(t *testing.T, in bool) {
	t.Helper()
	orig := IsInContainer
	t.Cleanup(func() { IsInContainer = orig })
	IsInContainer = func() bool { return in }
}

func TestForBrowserConnect(t *testing.T) {
	tests := []struct {
		name       string
		container  bool
		ci         string
		noSandbox  string
		browserBin string
		want       []string
		notWant    []string
	}{
		{
			name: "in CI",
			ci:   "true",
			want: []string{"ROD_NO_SANDBOX", "ROD_BROWSER_BIN", "--html"},
		},
		{
			name:      "in docker",
			container: true,
			want:      []string{"ROD_NO_SANDBOX"},
		},
		{
			name:      "sandbox already disabled",
			container: true,
			noSandbox: "1",
			notWant:   []string{"ROD_NO_SANDBOX"},
		},
		{
			name:       "browser bin already set",
			browserBin: "/usr/bin/chrome",
			notWant:    []string{"ROD_BROWSER_BIN", "ROD_NO_SANDBOX"},
		},
		{
			name:       "all configured still offers html",
			container:  true,
			ci:         "true",
			noSandbox:  "1",
			browserBin: "/usr/bin/chrome",
			want:       []string{"--html"},
			notWant:    []string{"ROD_NO_SANDBOX", "ROD_BROWSER_BIN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubContainer(t, tt.container)
			t.Setenv("CI", tt.ci)
			t.Setenv("GITHUB_ACTIONS", "")
			t.Setenv("GITLAB_CI", "")
			t.Setenv("JENKINS_URL", "")
			t.Setenv("ROD_NO_SANDBOX", tt.noSandbox)
			t.Setenv("ROD_BROWSER_BIN", tt.browserBin)

			hint := ForBrowserConnect()

			if !strings.HasPrefix(hint, "\n  hint: ") {
				t.Errorf("ForBrowserConnect() = %q, want hint prefix", hint)
			}
			for _, w := range tt.want {
				if !strings.Contains(hint, w) {
					t.Errorf("ForBrowserConnect() = %q, want it to contain %q", hint, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(hint, w) {
					t.Errorf("ForBrowserConnect() = %q, should not contain %q", hint, w)
				}
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "user config path suggested",
			paths:    []string{"deckgen.yaml", "/home/u/.config/deckgen/deckgen.yaml"},
			contains: "create /home/u/.config/deckgen/deckgen.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("ForConfigNotFound(%v) = %q, want it to contain %q", tt.paths, hint, tt.contains)
			}
		})
	}
}

func TestForTemplateNotFound(t *testing.T) {
	t.Parallel()

	if got := ForTemplateNotFound(nil); got != "" {
		t.Errorf("ForTemplateNotFound(nil) = %q, want empty", got)
	}
	got := ForTemplateNotFound([]string{"modern_minimal", "professional_clean"})
	if !strings.Contains(got, "modern_minimal, professional_clean") {
		t.Errorf("ForTemplateNotFound() = %q, want joined names", got)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	for _, h := range []string{
		ForTimeout(),
		ForOutputDirectory(),
		ForProviderKey(),
		ForInvalidDeck(),
		ForConfigNotFound(nil),
	} {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
	if format("") != "" {
		t.Error("format(\"\") should be empty")
	}
	if formatHints(nil) != "" {
		t.Error("formatHints(nil) should be empty")
	}
}
