// Package logger builds the structured logger shared by the library and CLI.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the structured logging contract used across packages.
// Keyvals alternate between keys and values, as in charmbracelet/log.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// Level names accepted by ParseLevel.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Config controls logger construction.
type Config struct {
	Level      string
	Output     io.Writer
	JSON       bool
	Prefix     string
	TimeFormat string
}

// ParseLevel maps a level name to a charm level. Empty means warn.
func ParseLevel(name string) (charmlog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case DebugLevel:
		return charmlog.DebugLevel, nil
	case InfoLevel:
		return charmlog.InfoLevel, nil
	case WarnLevel, "warning", "":
		return charmlog.WarnLevel, nil
	case ErrorLevel:
		return charmlog.ErrorLevel, nil
	default:
		return charmlog.WarnLevel, fmt.Errorf("unknown log level %q (want debug, info, warn, error)", name)
	}
}

// New creates a charm-backed Logger. A nil config logs warnings to stderr.
func New(cfg *Config) (Logger, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = "15:04:05"
	}

	l := charmlog.NewWithOptions(out, charmlog.Options{
		Level:           level,
		Prefix:          cfg.Prefix,
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
	})
	if cfg.JSON {
		l.SetFormatter(charmlog.JSONFormatter)
	}
	return &charmLogger{l: l}, nil
}

// charmLogger adapts charm's logger, whose message parameter is untyped.
type charmLogger struct {
	l *charmlog.Logger
}

func (c *charmLogger) Debug(msg string, keyvals ...any) { c.l.Debug(msg, keyvals...) }
func (c *charmLogger) Info(msg string, keyvals ...any)  { c.l.Info(msg, keyvals...) }
func (c *charmLogger) Warn(msg string, keyvals ...any)  { c.l.Warn(msg, keyvals...) }
func (c *charmLogger) Error(msg string, keyvals ...any) { c.l.Error(msg, keyvals...) }

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// OrNop returns l, or a discarding logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop()
	}
	return l
}

// Compile-time interface checks.
var (
	_ Logger = (*charmLogger)(nil)
	_ Logger = nopLogger{}
)
