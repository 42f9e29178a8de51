package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	deckgen "github.com/alnah/go-deckgen"
	"github.com/alnah/go-deckgen/internal/config"
)

// session holds what every command needs once flags, environment and the
// config file are merged.
type session struct {
	env      *Environment
	cfg      *config.Config
	vars     *envConfig
	log      deckgen.Logger
	quiet    bool
}

// newSession resolves configuration for a command.
// Priority: CLI flags > env vars > config file > defaults.
func newSession(common commonFlags, env *Environment) (*session, error) {
	vars := loadEnvConfig()
	s := &session{env: env, vars: vars, quiet: common.quiet}

	cfg, err := s.loadConfig(first(common.config, vars.ConfigPath))
	if err != nil {
		return s, err
	}
	applyEnvConfig(vars, cfg)
	s.cfg = cfg

	level := first(common.logLevel, cfg.Log.Level)
	if common.quiet {
		level = "error"
	}
	log, err := deckgen.NewLogger(&deckgen.LoggerConfig{
		Level:  level,
		JSON:   common.logJSON || cfg.Log.JSON,
		Output: env.Stderr,
		Prefix: "deckgen",
	})
	if err != nil {
		return s, fmt.Errorf("%w: --log-level: %v", ErrInvalidFlag, err)
	}
	s.log = log
	return s, nil
}

// loadConfig reads an explicit config, or falls back to the environment's
// config, then to an optional deckgen.yaml lookup.
func (s *session) loadConfig(explicit string) (*config.Config, error) {
	if explicit != "" {
		return config.LoadConfig(explicit)
	}
	if s.env.Config != nil {
		cfg := *s.env.Config
		return &cfg, nil
	}
	cfg, err := config.LoadConfig(config.DefaultName)
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

// options returns the library options shared by every component.
func (s *session) options(assetPath string) []deckgen.Option {
	opts := []deckgen.Option{
		deckgen.WithLogger(s.log),
		deckgen.WithFetchLimits(s.cfg.Fetch.CacheSize, s.cfg.Fetch.MaxBytes),
	}
	if s.env.Now != nil {
		opts = append(opts, deckgen.WithClock(s.env.Now))
	}
	if path := first(assetPath, s.cfg.Assets.Path); path != "" {
		opts = append(opts, deckgen.WithAssetPath(path))
	}
	if d := s.cfg.FetchTimeout(); d > 0 {
		opts = append(opts, deckgen.WithFetchTimeout(d))
	}
	return opts
}

// localImages allows image paths relative to the input file when the
// config permits file access.
func (s *session) localImages(inputPath string) []deckgen.Option {
	if !s.cfg.AllowLocalImages() {
		return nil
	}
	return []deckgen.Option{deckgen.WithLocalImages(filepath.Dir(inputPath))}
}

// workers picks the flag value over the config, then sizes from CPUs.
func (s *session) workers(flagValue int) int {
	if flagValue > 0 {
		return deckgen.ResolvePoolSize(flagValue)
	}
	return deckgen.ResolvePoolSize(s.cfg.Workers)
}

// provider builds the text provider. A nil provider means mock content.
func (s *session) provider(f providerFlags) (deckgen.Provider, error) {
	kind := strings.ToLower(first(f.kind, s.cfg.Provider.Kind))
	switch kind {
	case config.ProviderMock:
		return nil, nil
	case config.ProviderAuto:
		if s.vars.APIKey == "" {
			s.log.Info("OPENAI_API_KEY not set, using mock provider")
			return nil, nil
		}
	case config.ProviderOpenAI:
		if s.vars.APIKey == "" {
			return nil, ErrMissingAPIKey
		}
	default:
		return nil, fmt.Errorf("%w: --provider %q (must be mock or openai)", ErrInvalidFlag, kind)
	}

	timeout := s.cfg.ProviderTimeout()
	if f.timeout != "" {
		d, err := parsePositiveDuration("provider-timeout", f.timeout)
		if err != nil {
			return nil, err
		}
		timeout = d
	}

	p, err := deckgen.NewOpenAIProvider(deckgen.OpenAIConfig{
		APIKey:    s.vars.APIKey,
		BaseURL:   first(f.baseURL, s.cfg.Provider.BaseURL),
		Model:     first(f.model, s.cfg.Provider.Model),
		Timeout:   timeout,
		MaxTokens: s.cfg.Provider.MaxTokens,
		Retries:   s.cfg.Provider.Retries,
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// generator builds a Generator around the resolved provider.
func (s *session) generator(f providerFlags) (*deckgen.Generator, error) {
	p, err := s.provider(f)
	if err != nil {
		return nil, err
	}
	opts := s.options("")
	if p != nil {
		opts = append(opts, deckgen.WithProvider(p))
	}
	return deckgen.NewGenerator(opts...), nil
}

// templateNames lists bundled and custom definitions for hints.
func templateNames(assetPath string) []string {
	var loader deckgen.AssetLoader
	if assetPath != "" {
		if l, err := deckgen.NewAssetLoader(assetPath); err == nil {
			loader = l
		}
	}
	infos, err := deckgen.NewTemplateResolver(loader).List()
	if err != nil {
		return nil
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}

// parsePositiveDuration validates a duration flag.
func parsePositiveDuration(name, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q: %v", ErrInvalidFlag, name, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidFlag, name, value)
	}
	return d, nil
}

// first returns the first non-empty value.
func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
