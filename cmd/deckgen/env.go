package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-deckgen/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time and configuration.
type Environment struct {
	Now    func() time.Time
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Config replaces the config file lookup when no --config or
	// DECKGEN_CONFIG is given. Nil means look up deckgen.yaml.
	Config *config.Config
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
