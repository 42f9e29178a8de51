// Package config loads the CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-deckgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Provider kinds.
const (
	ProviderAuto   = ""       // openai when an API key is present, mock otherwise
	ProviderMock   = "mock"
	ProviderOpenAI = "openai"
)

// Limits.
const (
	MaxWorkers   = 32
	MaxCacheSize = 4096
	MaxTokens    = 32768
	MaxRetries   = 10
)

// DefaultName is the config looked up when none is given.
const DefaultName = "deckgen"

// Config holds the CLI configuration.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Assets   AssetsConfig   `yaml:"assets"`
	Log      LogConfig      `yaml:"log"`
	Output   OutputConfig   `yaml:"output"`
	Report   ReportConfig   `yaml:"report"`
	Workers  int            `yaml:"workers"` // 0 = derive from CPU count
}

// ProviderConfig selects and tunes the text generation provider.
// The API key is read from the environment only.
type ProviderConfig struct {
	Kind      string `yaml:"kind"`
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"baseURL"`
	Timeout   string `yaml:"timeout"` // Go duration, e.g. "30s"
	MaxTokens int    `yaml:"maxTokens"`
	Retries   int    `yaml:"retries"`
}

// FetchConfig tunes image retrieval.
type FetchConfig struct {
	Timeout    string `yaml:"timeout"`
	CacheSize  int    `yaml:"cacheSize"`
	MaxBytes   int64  `yaml:"maxBytes"`
	AllowLocal *bool  `yaml:"allowLocal"` // nil = allowed
}

// AssetsConfig points at a directory overriding bundled templates and styles.
type AssetsConfig struct {
	Path string `yaml:"path"`
}

// LogConfig sets logger output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

// OutputConfig sets where generated files go.
type OutputConfig struct {
	Dir string `yaml:"dir"` // empty = next to the input
}

// ReportConfig sets report export defaults.
type ReportConfig struct {
	Style  string `yaml:"style"`
	Cover  bool   `yaml:"cover"`
	Author string `yaml:"author"`
	Date   string `yaml:"date"` // literal or "auto[:FORMAT]"
}

// DefaultConfig returns the configuration used without a file.
// An empty log level means warn.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{Style: "report"},
	}
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}

	switch strings.ToLower(c.Provider.Kind) {
	case ProviderAuto, ProviderMock, ProviderOpenAI:
	default:
		return fmt.Errorf("%w: provider.kind: %q (must be mock or openai)", ErrInvalidConfig, c.Provider.Kind)
	}
	if err := validDuration("provider.timeout", c.Provider.Timeout); err != nil {
		return err
	}
	if err := validDuration("fetch.timeout", c.Fetch.Timeout); err != nil {
		return err
	}
	if err := validRange("provider.maxTokens", c.Provider.MaxTokens, MaxTokens); err != nil {
		return err
	}
	if err := validRange("provider.retries", c.Provider.Retries, MaxRetries); err != nil {
		return err
	}
	if err := validRange("fetch.cacheSize", c.Fetch.CacheSize, MaxCacheSize); err != nil {
		return err
	}
	if c.Fetch.MaxBytes < 0 {
		return fmt.Errorf("%w: fetch.maxBytes: must not be negative", ErrInvalidConfig)
	}
	if err := validRange("workers", c.Workers, MaxWorkers); err != nil {
		return err
	}
	return nil
}

// ProviderTimeout returns the parsed provider timeout, zero when unset.
func (c *Config) ProviderTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Provider.Timeout)
	return d
}

// FetchTimeout returns the parsed fetch timeout, zero when unset.
func (c *Config) FetchTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Fetch.Timeout)
	return d
}

// AllowLocalImages reports whether file paths may be used as image sources.
func (c *Config) AllowLocalImages() bool {
	return c.Fetch.AllowLocal == nil || *c.Fetch.AllowLocal
}

func validDuration(field, value string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, field, err)
	}
	if d < 0 {
		return fmt.Errorf("%w: %s: must not be negative", ErrInvalidConfig, field)
	}
	return nil
}

func validRange(field string, value, upper int) error {
	if value < 0 || value > upper {
		return fmt.Errorf("%w: %s: must be between 0 and %d, got %d", ErrInvalidConfig, field, upper, value)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A name without a path separator is searched in the working directory
// and then in the user config directory.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		path, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFile(path, cfg, true); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isFilePath(s string) bool {
	return strings.ContainsAny(s, `/\`) || strings.HasSuffix(s, ".yaml") || strings.HasSuffix(s, ".yml")
}

// SearchPaths lists where a config name is looked up, in order:
// name.yaml and name.yml in the working directory, then in
// <user config dir>/deckgen/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{"."}
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, "deckgen"))
	}

	paths := make([]string, 0, len(dirs)*len(extensions))
	for _, dir := range dirs {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, path := range tried {
		if fileExists(path) {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
