package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Notation selects how moves are written in reports.
type Notation int

const (
	SAN Notation = iota // Standard Algebraic Notation
	UCI                 // Coordinate notation (e2e4)
)

// String returns the string representation of a notation.
func (n Notation) String() string {
	if n == UCI {
		return "uci"
	}
	return "san"
}

// ParseNotation parses "san" or "uci".
func ParseNotation(s string) (Notation, error) {
	switch s {
	case "san", "SAN":
		return SAN, nil
	case "uci", "UCI", "lalg":
		return UCI, nil
	}
	return SAN, fmt.Errorf("unknown notation %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// Notation for the move list.
	Notation Notation

	// JSONFormat enables JSON output instead of text.
	JSONFormat bool

	// IncludeFEN adds the final position as FEN.
	IncludeFEN bool

	// IncludeHash adds the final Zobrist hash.
	IncludeHash bool

	// IncludeMoves adds the move list.
	IncludeMoves bool

	// OutputFile receives the reports.
	OutputFile io.Writer
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Notation:     SAN,
		IncludeFEN:   true,
		IncludeMoves: true,
		OutputFile:   os.Stdout,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if o.Notation != SAN && o.Notation != UCI {
		return fmt.Errorf("notation %d: %w", o.Notation, errors.ErrInvalidConfig)
	}
	return nil
}
