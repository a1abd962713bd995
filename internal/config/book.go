package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// BookConfig controls the opening book.
type BookConfig struct {
	// Path of the book database. Empty keeps the book in memory.
	Path string

	// Record adds every replayed move to the book.
	Record bool

	// Lookup reports the book moves for each final position.
	Lookup bool

	// MaxPly stops recording after this many plies (0 = no limit).
	MaxPly int
}

// NewBookConfig creates a BookConfig with default values.
func NewBookConfig() *BookConfig {
	return &BookConfig{MaxPly: 30}
}

// Enabled reports whether the book is used at all.
func (b *BookConfig) Enabled() bool {
	return b.Record || b.Lookup
}

// Validate checks the book settings.
func (b *BookConfig) Validate() error {
	if b.MaxPly < 0 {
		return fmt.Errorf("negative book depth %d: %w", b.MaxPly, errors.ErrInvalidConfig)
	}
	return nil
}
