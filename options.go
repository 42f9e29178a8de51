package deckgen

import (
	"context"
	"time"

	"github.com/alnah/go-deckgen/internal/logger"
)

// Logger receives structured, leveled events. Key/value pairs follow the
// message, as in charmbracelet/log. Use NewLogger for a ready-made one.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

var _ Logger = logger.Nop()

// LoggerConfig configures NewLogger.
type LoggerConfig = logger.Config

// NewLogger builds a charmbracelet/log backed Logger.
func NewLogger(cfg *LoggerConfig) (Logger, error) {
	return logger.New(cfg)
}

// ImageFetcher retrieves the bytes behind an image reference.
type ImageFetcher interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// Option configures an Assembler, Generator or ReportExporter. Options that
// do not apply to a component are ignored by it.
type Option func(*settings)

// settings is shared by every component constructor.
type settings struct {
	log         Logger
	assetLoader AssetLoader
	assetPath   string

	fetcher      ImageFetcher
	fetchTimeout time.Duration
	allowLocal   bool
	imageBaseDir string
	cacheSize    int
	maxImageSize int64

	provider   Provider
	pdfTimeout time.Duration
	now        func() time.Time

	// test seams
	pdf pdfConverter
}

// Defaults.
const (
	defaultFetchTimeout = 10 * time.Second
	defaultPDFTimeout   = 30 * time.Second
)

func newSettings(opts []Option) *settings {
	s := &settings{
		fetchTimeout: defaultFetchTimeout,
		pdfTimeout:   defaultPDFTimeout,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = logger.OrNop(s.log)
	return s
}

// loader returns the configured asset loader.
func (s *settings) loader() (AssetLoader, error) {
	if s.assetLoader != nil {
		return s.assetLoader, nil
	}
	if s.assetPath != "" {
		return NewAssetLoader(s.assetPath)
	}
	return bundledLoader(), nil
}

// WithLogger sets the logger for degradation and progress events.
// Without it nothing is logged.
func WithLogger(l Logger) Option {
	return func(s *settings) {
		s.log = l
	}
}

// WithAssetLoader sets a custom loader for style definitions and report
// stylesheets. It takes precedence over WithAssetPath.
func WithAssetLoader(l AssetLoader) Option {
	return func(s *settings) {
		s.assetLoader = l
	}
}

// WithAssetPath loads assets from path, falling back to the embedded ones.
func WithAssetPath(path string) Option {
	return func(s *settings) {
		s.assetPath = path
	}
}

// WithImageFetcher replaces the built-in HTTP image fetcher.
func WithImageFetcher(f ImageFetcher) Option {
	return func(s *settings) {
		s.fetcher = f
	}
}

// WithFetchTimeout bounds each image fetch of the built-in fetcher.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithFetchTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("deckgen: WithFetchTimeout duration must be positive")
	}
	return func(s *settings) {
		s.fetchTimeout = d
	}
}

// WithFetchLimits sizes the image cache of the built-in fetcher and caps
// the bytes read per image. Zero keeps the fetcher default.
func WithFetchLimits(cacheSize int, maxBytes int64) Option {
	return func(s *settings) {
		s.cacheSize = cacheSize
		s.maxImageSize = maxBytes
	}
}

// WithLocalImages lets the built-in fetcher read file paths, resolving
// relative ones against baseDir.
func WithLocalImages(baseDir string) Option {
	return func(s *settings) {
		s.allowLocal = true
		s.imageBaseDir = baseDir
	}
}

// WithProvider sets the text generation backend of a Generator.
func WithProvider(p Provider) Option {
	return func(s *settings) {
		s.provider = p
	}
}

// WithTimeout bounds PDF rendering of a ReportExporter.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("deckgen: WithTimeout duration must be positive")
	}
	return func(s *settings) {
		s.pdfTimeout = d
	}
}

// WithClock sets the time source for document timestamps and provenance.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// withPDFConverter injects a PDF backend (for testing).
func withPDFConverter(c pdfConverter) Option {
	return func(s *settings) {
		s.pdf = c
	}
}
