package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Default rule parameters.
const (
	DefaultRepetitionWindow = hashing.HistorySize
	DefaultFiftyMoveLimit   = 100
)

// Rules holds the tunable parts of the game-end and promotion rules.
type Rules struct {
	// RepetitionWindow is how many recorded positions the threefold
	// repetition check looks back over. It is capped by the history ring.
	RepetitionWindow int

	// FiftyMoveLimit is the number of quiet half-moves that ends the game.
	FiftyMoveLimit int

	// DefaultPromotion is used for non-interactive promotions that do not
	// name a kind.
	DefaultPromotion chess.Kind
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		RepetitionWindow: DefaultRepetitionWindow,
		FiftyMoveLimit:   DefaultFiftyMoveLimit,
		DefaultPromotion: chess.Queen,
	}
}

// normalized fills zero fields with their defaults.
func (r Rules) normalized() Rules {
	d := DefaultRules()
	if r.RepetitionWindow <= 0 || r.RepetitionWindow > hashing.HistorySize {
		r.RepetitionWindow = d.RepetitionWindow
	}
	if r.FiftyMoveLimit <= 0 {
		r.FiftyMoveLimit = d.FiftyMoveLimit
	}
	if !r.DefaultPromotion.Promotable() {
		r.DefaultPromotion = d.DefaultPromotion
	}
	return r
}
