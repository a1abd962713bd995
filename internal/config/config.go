// Package config provides configuration for the chess rules engine and the
// chessrules command.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration, grouped by concern.
type Config struct {
	// Verbosity: 0=nothing, 1=game count, 2=running commentary.
	Verbosity int

	// Workers is the number of games replayed in parallel.
	Workers int

	Rules  *RulesConfig
	Output *OutputConfig
	Filter *FilterConfig
	Tally  *TallyConfig
	Book   *BookConfig

	// Input names shown in diagnostics; empty means standard input.
	InputFiles []string

	// LogFile receives diagnostics.
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: 1,
		Workers:   runtime.NumCPU(),
		Rules:     NewRulesConfig(),
		Output:    NewOutputConfig(),
		Filter:    NewFilterConfig(),
		Tally:     NewTallyConfig(),
		Book:      NewBookConfig(),
		LogFile:   os.Stderr,
	}
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("negative verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	for _, v := range []interface{ Validate() error }{c.Rules, c.Output, c.Filter, c.Tally, c.Book} {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Logf writes a diagnostic line when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
