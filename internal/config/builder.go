package config

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithRepetitionWindow sets the repetition window.
func (b *ConfigBuilder) WithRepetitionWindow(n int) *ConfigBuilder {
	b.cfg.Rules.RepetitionWindow = n
	return b
}

// WithFiftyMoveLimit sets the fifty-move limit in half-moves.
func (b *ConfigBuilder) WithFiftyMoveLimit(n int) *ConfigBuilder {
	b.cfg.Rules.FiftyMoveLimit = n
	return b
}

// WithDefaultPromotion sets the default promotion kind.
func (b *ConfigBuilder) WithDefaultPromotion(k chess.Kind) *ConfigBuilder {
	b.cfg.Rules.DefaultPromotion = k
	return b
}

// WithNotation sets the move notation for reports.
func (b *ConfigBuilder) WithNotation(n Notation) *ConfigBuilder {
	b.cfg.Output.Notation = n
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithCheckmateFilter enables checkmate-only filtering.
func (b *ConfigBuilder) WithCheckmateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchCheckmate = enabled
	return b
}

// WithPlyBounds keeps only games whose length lies within the bounds.
func (b *ConfigBuilder) WithPlyBounds(lower, upper int) *ConfigBuilder {
	b.cfg.Filter.CheckPlyBounds = true
	b.cfg.Filter.MinPlies = lower
	b.cfg.Filter.MaxPlies = upper
	return b
}

// WithTally enables reporting of repeated final positions.
func (b *ConfigBuilder) WithTally(enabled bool) *ConfigBuilder {
	b.cfg.Tally.Enabled = enabled
	return b
}

// WithBook sets the opening book path and mode.
func (b *ConfigBuilder) WithBook(path string, record, lookup bool) *ConfigBuilder {
	b.cfg.Book.Path = path
	b.cfg.Book.Record = record
	b.cfg.Book.Lookup = lookup
	return b
}

// WithWorkers sets the number of parallel workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
