package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// FilterConfig selects which replayed games are reported.
type FilterConfig struct {
	// Ply bounds
	CheckPlyBounds bool
	MinPlies       int
	MaxPlies       int

	// Match conditions; when any is set only games ending that way are kept.
	MatchCheckmate      bool
	MatchStalemate      bool
	MatchDraw           bool
	MatchUnderpromotion bool

	// KeepBrokenGames reports games that failed to replay.
	KeepBrokenGames bool
}

// NewFilterConfig creates a FilterConfig with default values.
// All fields use Go zero values (false, 0) - filters are disabled by default,
// except that broken games are reported.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{KeepBrokenGames: true}
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.CheckPlyBounds && f.MinPlies > f.MaxPlies {
		return fmt.Errorf("minimum plies (%d) > maximum plies (%d): %w",
			f.MinPlies, f.MaxPlies, errors.ErrInvalidConfig)
	}
	if f.MinPlies < 0 {
		return fmt.Errorf("negative minimum plies %d: %w", f.MinPlies, errors.ErrInvalidConfig)
	}
	return nil
}

// MatchesEnding reports whether any ending condition is set.
func (f *FilterConfig) MatchesEnding() bool {
	return f.MatchCheckmate || f.MatchStalemate || f.MatchDraw || f.MatchUnderpromotion
}
