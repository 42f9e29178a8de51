package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-deckgen/internal/config"
)

// envPrefix marks the variables owned by deckgen.
const envPrefix = "DECKGEN_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// deckgen
	ConfigPath string        // DECKGEN_CONFIG: config file path
	AssetPath  string        // DECKGEN_ASSET_PATH: template and stylesheet overrides
	OutputDir  string        // DECKGEN_OUTPUT_DIR: default output directory
	LogLevel   string        // DECKGEN_LOG_LEVEL: debug, info, warn, error
	Provider   string        // DECKGEN_PROVIDER: mock or openai
	Author     string        // DECKGEN_AUTHOR: report author
	Timeout    time.Duration // DECKGEN_TIMEOUT: report PDF timeout
	Workers    int           // DECKGEN_WORKERS: parallel workers

	// OpenAI conventions
	APIKey  string // OPENAI_API_KEY
	Model   string // OPENAI_MODEL
	BaseURL string // OPENAI_BASE_URL
}

// knownEnvVars lists valid DECKGEN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"DECKGEN_CONFIG":     true,
	"DECKGEN_ASSET_PATH": true,
	"DECKGEN_OUTPUT_DIR": true,
	"DECKGEN_LOG_LEVEL":  true,
	"DECKGEN_PROVIDER":   true,
	"DECKGEN_AUTHOR":     true,
	"DECKGEN_TIMEOUT":    true,
	"DECKGEN_WORKERS":    true,
	"DECKGEN_CONTAINER":  true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers and durations are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("DECKGEN_CONFIG"),
		AssetPath:  os.Getenv("DECKGEN_ASSET_PATH"),
		OutputDir:  os.Getenv("DECKGEN_OUTPUT_DIR"),
		LogLevel:   os.Getenv("DECKGEN_LOG_LEVEL"),
		Provider:   os.Getenv("DECKGEN_PROVIDER"),
		Author:     os.Getenv("DECKGEN_AUTHOR"),
		APIKey:     os.Getenv("OPENAI_API_KEY"),
		Model:      os.Getenv("OPENAI_MODEL"),
		BaseURL:    os.Getenv("OPENAI_BASE_URL"),
	}

	if timeout := os.Getenv("DECKGEN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("DECKGEN_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized DECKGEN_* variables.
// Helps catch typos like DECKGEN_WORKER instead of DECKGEN_WORKERS.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied by each command).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.AssetPath != "" && cfg.Assets.Path == "" {
		cfg.Assets.Path = env.AssetPath
	}
	if env.OutputDir != "" && cfg.Output.Dir == "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.LogLevel != "" && cfg.Log.Level == "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}

	if env.Provider != "" && cfg.Provider.Kind == "" {
		cfg.Provider.Kind = env.Provider
	}
	if env.Model != "" && cfg.Provider.Model == "" {
		cfg.Provider.Model = env.Model
	}
	if env.BaseURL != "" && cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = env.BaseURL
	}

	if env.Author != "" && cfg.Report.Author == "" {
		cfg.Report.Author = env.Author
	}
}
