package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// TallyConfig controls counting of identical final positions across games.
type TallyConfig struct {
	// Enabled reports games whose final position was already seen.
	Enabled bool

	// MaxPositions limits the distinct positions remembered (0 = unlimited).
	MaxPositions int
}

// NewTallyConfig creates a TallyConfig with default values.
func NewTallyConfig() *TallyConfig {
	return &TallyConfig{}
}

// Validate checks the tally settings.
func (t *TallyConfig) Validate() error {
	if t.MaxPositions < 0 {
		return fmt.Errorf("negative position limit %d: %w", t.MaxPositions, errors.ErrInvalidConfig)
	}
	return nil
}
