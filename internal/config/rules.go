package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// RulesConfig holds the tunable game rules.
type RulesConfig struct {
	// RepetitionWindow is how many recorded positions the threefold
	// repetition check scans. At most hashing.HistorySize.
	RepetitionWindow int

	// FiftyMoveLimit is the number of quiet half-moves that draws the game.
	FiftyMoveLimit int

	// DefaultPromotion is used when a non-interactive promotion names no piece.
	DefaultPromotion chess.Kind
}

// NewRulesConfig creates a RulesConfig with the standard rules.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		RepetitionWindow: engine.DefaultRepetitionWindow,
		FiftyMoveLimit:   engine.DefaultFiftyMoveLimit,
		DefaultPromotion: chess.Queen,
	}
}

// Validate checks that the rules are usable.
func (r *RulesConfig) Validate() error {
	if r.RepetitionWindow < 3 || r.RepetitionWindow > hashing.HistorySize {
		return fmt.Errorf("repetition window %d outside 3..%d: %w",
			r.RepetitionWindow, hashing.HistorySize, errors.ErrInvalidConfig)
	}
	if r.FiftyMoveLimit < 1 {
		return fmt.Errorf("fifty-move limit %d must be positive: %w", r.FiftyMoveLimit, errors.ErrInvalidConfig)
	}
	if !r.DefaultPromotion.Promotable() {
		return fmt.Errorf("default promotion %v: %w", r.DefaultPromotion, errors.ErrInvalidConfig)
	}
	return nil
}

// Engine converts the settings into engine rules.
func (r *RulesConfig) Engine() engine.Rules {
	return engine.Rules{
		RepetitionWindow: r.RepetitionWindow,
		FiftyMoveLimit:   r.FiftyMoveLimit,
		DefaultPromotion: r.DefaultPromotion,
	}
}
