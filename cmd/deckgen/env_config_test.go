package main

// Notes:
// - loadEnvConfig: we test every DECKGEN_ variable plus the OpenAI ones.
//   Invalid/negative values for timeout and workers are ignored, not errors.
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - applyEnvConfig: we test that env fills empty fields only.
// - Tests use t.Setenv() which prevents t.Parallel() at parent level.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"testing"
	"time"

	"github.com/alnah/go-deckgen/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("deckgen variables", func(t *testing.T) {
		t.Setenv("DECKGEN_CONFIG", "/path/to/config.yaml")
		t.Setenv("DECKGEN_ASSET_PATH", "/assets")
		t.Setenv("DECKGEN_OUTPUT_DIR", "/output")
		t.Setenv("DECKGEN_LOG_LEVEL", "debug")
		t.Setenv("DECKGEN_PROVIDER", "mock")
		t.Setenv("DECKGEN_AUTHOR", "Jane Doe")
		t.Setenv("DECKGEN_TIMEOUT", "2m")
		t.Setenv("DECKGEN_WORKERS", "4")

		cfg := loadEnvConfig()

		checks := []struct {
			name, got, want string
		}{
			{"ConfigPath", cfg.ConfigPath, "/path/to/config.yaml"},
			{"AssetPath", cfg.AssetPath, "/assets"},
			{"OutputDir", cfg.OutputDir, "/output"},
			{"LogLevel", cfg.LogLevel, "debug"},
			{"Provider", cfg.Provider, "mock"},
			{"Author", cfg.Author, "Jane Doe"},
		}
		for _, c := range checks {
			if c.got != c.want {
				t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
			}
		}
		if cfg.Timeout != 2*time.Minute {
			t.Errorf("Timeout = %v, want 2m", cfg.Timeout)
		}
		if cfg.Workers != 4 {
			t.Errorf("Workers = %d, want 4", cfg.Workers)
		}
	})

	t.Run("OpenAI variables", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("OPENAI_MODEL", "gpt-test")
		t.Setenv("OPENAI_BASE_URL", "http://localhost:8080/v1")

		cfg := loadEnvConfig()

		if cfg.APIKey != "sk-test" {
			t.Errorf("APIKey = %q, want sk-test", cfg.APIKey)
		}
		if cfg.Model != "gpt-test" {
			t.Errorf("Model = %q, want gpt-test", cfg.Model)
		}
		if cfg.BaseURL != "http://localhost:8080/v1" {
			t.Errorf("BaseURL = %q, want http://localhost:8080/v1", cfg.BaseURL)
		}
	})

	t.Run("invalid timeout ignored", func(t *testing.T) {
		t.Setenv("DECKGEN_TIMEOUT", "invalid")

		if cfg := loadEnvConfig(); cfg.Timeout != 0 {
			t.Errorf("Timeout = %v, want 0 for invalid input", cfg.Timeout)
		}
	})

	t.Run("negative timeout ignored", func(t *testing.T) {
		t.Setenv("DECKGEN_TIMEOUT", "-5s")

		if cfg := loadEnvConfig(); cfg.Timeout != 0 {
			t.Errorf("Timeout = %v, want 0 for negative input", cfg.Timeout)
		}
	})

	t.Run("invalid workers ignored", func(t *testing.T) {
		t.Setenv("DECKGEN_WORKERS", "many")

		if cfg := loadEnvConfig(); cfg.Workers != 0 {
			t.Errorf("Workers = %d, want 0 for invalid input", cfg.Workers)
		}
	})

	t.Run("zero workers ignored", func(t *testing.T) {
		t.Setenv("DECKGEN_WORKERS", "0")

		if cfg := loadEnvConfig(); cfg.Workers != 0 {
			t.Errorf("Workers = %d, want 0", cfg.Workers)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Unknown variable detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Run("warns on unknown DECKGEN_ vars", func(t *testing.T) {
		t.Setenv("DECKGEN_WORKER", "4")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if !bytes.Contains(buf.Bytes(), []byte("DECKGEN_WORKER ")) {
			t.Errorf("should warn about DECKGEN_WORKER, got: %s", buf.String())
		}
		if !bytes.Contains(buf.Bytes(), []byte("typo?")) {
			t.Errorf("should suggest typo, got: %s", buf.String())
		}
	})

	t.Run("no warning for known vars", func(t *testing.T) {
		for name := range knownEnvVars {
			t.Setenv(name, "x")
		}

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if buf.Len() > 0 {
			t.Errorf("should not warn for known vars, got: %s", buf.String())
		}
	})

	t.Run("ignores other prefixes", func(t *testing.T) {
		t.Setenv("OPENAI_ORG", "value")
		t.Setenv("SOME_OTHER_VAR", "value")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if bytes.Contains(buf.Bytes(), []byte("OPENAI_ORG")) {
			t.Errorf("should not warn about OPENAI_ORG")
		}
	})
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Config application with priority
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{
		AssetPath: "/env-assets",
		OutputDir: "/env-out",
		LogLevel:  "debug",
		Provider:  "openai",
		Author:    "Env Author",
		Workers:   3,
		Model:     "env-model",
		BaseURL:   "http://env",
	}

	t.Run("fills empty config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)

		if cfg.Assets.Path != "/env-assets" {
			t.Errorf("Assets.Path = %q, want /env-assets", cfg.Assets.Path)
		}
		if cfg.Output.Dir != "/env-out" {
			t.Errorf("Output.Dir = %q, want /env-out", cfg.Output.Dir)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
		}
		if cfg.Provider.Kind != "openai" {
			t.Errorf("Provider.Kind = %q, want openai", cfg.Provider.Kind)
		}
		if cfg.Provider.Model != "env-model" {
			t.Errorf("Provider.Model = %q, want env-model", cfg.Provider.Model)
		}
		if cfg.Provider.BaseURL != "http://env" {
			t.Errorf("Provider.BaseURL = %q, want http://env", cfg.Provider.BaseURL)
		}
		if cfg.Report.Author != "Env Author" {
			t.Errorf("Report.Author = %q, want Env Author", cfg.Report.Author)
		}
		if cfg.Workers != 3 {
			t.Errorf("Workers = %d, want 3", cfg.Workers)
		}
	})

	t.Run("config values win", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Assets.Path = "/cfg-assets"
		cfg.Log.Level = "error"
		cfg.Provider.Kind = "mock"
		cfg.Report.Author = "Config Author"
		cfg.Workers = 8
		applyEnvConfig(env, cfg)

		if cfg.Assets.Path != "/cfg-assets" {
			t.Errorf("Assets.Path = %q, want /cfg-assets", cfg.Assets.Path)
		}
		if cfg.Log.Level != "error" {
			t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
		}
		if cfg.Provider.Kind != "mock" {
			t.Errorf("Provider.Kind = %q, want mock", cfg.Provider.Kind)
		}
		if cfg.Report.Author != "Config Author" {
			t.Errorf("Report.Author = %q, want Config Author", cfg.Report.Author)
		}
		if cfg.Workers != 8 {
			t.Errorf("Workers = %d, want 8", cfg.Workers)
		}
	})

	t.Run("empty env changes nothing", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Assets.Path != "" || cfg.Provider.Kind != "" || cfg.Workers != 0 {
			t.Errorf("applyEnvConfig(empty) changed config: %+v", cfg)
		}
		if cfg.Report.Style != "report" {
			t.Errorf("Report.Style = %q, want report", cfg.Report.Style)
		}
	})
}

// ---------------------------------------------------------------------------
// TestKnownEnvVars - Registry consistency
// ---------------------------------------------------------------------------

func TestKnownEnvVars(t *testing.T) {
	t.Parallel()

	for name := range knownEnvVars {
		if len(name) <= len(envPrefix) || name[:len(envPrefix)] != envPrefix {
			t.Errorf("knownEnvVars entry %q lacks prefix %s", name, envPrefix)
		}
	}
}
