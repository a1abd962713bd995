package matching

import (
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// PositionTarget is a position to look for, identified by its hash.
type PositionTarget struct {
	FEN   string
	Label string // optional label for matched position
	Hash  uint64
}

// PositionMatcher matches games that pass through any target position.
// Positions compare by Zobrist hash, so side to move, castling rights and
// the en-passant file must agree as well as the pieces.
type PositionMatcher struct {
	targets []*PositionTarget
	byHash  map[uint64]*PositionTarget
}

// NewPositionMatcher creates a new position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{
		byHash: make(map[uint64]*PositionTarget),
	}
}

// AddFEN adds a position to match.
func (pm *PositionMatcher) AddFEN(fen string, label string) error {
	pos, err := engine.ParseFEN(fen, nil)
	if err != nil {
		return err
	}

	target := &PositionTarget{FEN: fen, Label: label, Hash: pos.Hash()}
	pm.targets = append(pm.targets, target)
	pm.byHash[target.Hash] = target
	return nil
}

// PatternCount returns the number of target positions.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.targets)
}

// MatchGame returns the first target the game reaches, or nil.
func (pm *PositionMatcher) MatchGame(game *processing.GameAnalysis) *PositionTarget {
	if game.Game == nil {
		return nil
	}
	if t, ok := pm.byHash[game.StartHash]; ok {
		return t
	}
	for _, p := range game.Game.Plies() {
		if t, ok := pm.byHash[p.Hash]; ok {
			return t
		}
	}
	return nil
}

// Match implements GameMatcher.
func (pm *PositionMatcher) Match(game *processing.GameAnalysis) bool {
	return pm.MatchGame(game) != nil
}

// Name implements GameMatcher.
func (pm *PositionMatcher) Name() string {
	return "PositionMatcher"
}
