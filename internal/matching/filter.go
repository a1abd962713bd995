package matching

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// EndingMatcher matches games whose final position has one of the endings.
type EndingMatcher struct {
	endings []engine.Ending
}

// NewEndingMatcher creates a matcher for the given endings.
func NewEndingMatcher(endings ...engine.Ending) *EndingMatcher {
	return &EndingMatcher{endings: endings}
}

// Match implements GameMatcher.
func (m *EndingMatcher) Match(game *processing.GameAnalysis) bool {
	for _, e := range m.endings {
		if game.Ending == e {
			return true
		}
	}
	return false
}

// Name implements GameMatcher.
func (m *EndingMatcher) Name() string {
	return fmt.Sprintf("EndingMatcher(%v)", m.endings)
}

// PlyRangeMatcher matches games whose replayed length lies in [Min, Max].
type PlyRangeMatcher struct {
	Min, Max int
}

// Match implements GameMatcher.
func (m PlyRangeMatcher) Match(game *processing.GameAnalysis) bool {
	n := game.PlyCount()
	return n >= m.Min && n <= m.Max
}

// Name implements GameMatcher.
func (m PlyRangeMatcher) Name() string {
	return fmt.Sprintf("PlyRangeMatcher(%d-%d)", m.Min, m.Max)
}

// UnderpromotionMatcher matches games with a promotion to a minor piece or rook.
type UnderpromotionMatcher struct{}

// Match implements GameMatcher.
func (UnderpromotionMatcher) Match(game *processing.GameAnalysis) bool {
	return game.UnderpromotionFound()
}

// Name implements GameMatcher.
func (UnderpromotionMatcher) Name() string { return "UnderpromotionMatcher" }

// CompleteMatcher matches games whose every move was accepted.
type CompleteMatcher struct{}

// Match implements GameMatcher.
func (CompleteMatcher) Match(game *processing.GameAnalysis) bool {
	return game.Complete()
}

// Name implements GameMatcher.
func (CompleteMatcher) Name() string { return "CompleteMatcher" }

// NewGameFilter builds the matcher described by cfg. Ending criteria are
// alternatives; ply bounds and the broken-game rule must hold as well.
func NewGameFilter(cfg *config.FilterConfig) *CompositeMatcher {
	filter := NewCompositeMatcher(MatchAll)

	if cfg.MatchesEnding() {
		alternatives := NewCompositeMatcher(MatchAny)
		var endings []engine.Ending
		if cfg.MatchCheckmate {
			endings = append(endings, engine.Checkmate)
		}
		if cfg.MatchStalemate {
			endings = append(endings, engine.Stalemate)
		}
		if cfg.MatchDraw {
			endings = append(endings, engine.Stalemate, engine.InsufficientMaterial,
				engine.FiftyMoveRule, engine.ThreefoldRepetition)
		}
		if len(endings) > 0 {
			alternatives.Add(NewEndingMatcher(endings...))
		}
		if cfg.MatchUnderpromotion {
			alternatives.Add(UnderpromotionMatcher{})
		}
		filter.Add(alternatives)
	}
	if cfg.CheckPlyBounds {
		filter.Add(PlyRangeMatcher{Min: cfg.MinPlies, Max: cfg.MaxPlies})
	}
	if !cfg.KeepBrokenGames {
		filter.Add(CompleteMatcher{})
	}
	return filter
}
