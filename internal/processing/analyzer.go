// Package processing replays parsed games through the rules engine and
// summarises what happened in them.
package processing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/parser"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	Source    *parser.Game
	Game      *engine.Game // final state; nil if the start position was rejected
	StartFEN  string
	StartHash uint64
	Ending    engine.Ending

	Checks            int
	Captures          int
	HasFiftyMoveRule  bool // the fifty-move limit was reached at some ply
	HasRepetition     bool // some position occurred a third time
	HasUnderpromotion bool

	// Err is the first rejected move or FEN as an *errors.GameError.
	Err error
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// PlyCount returns the number of plies replayed successfully.
func (ga *GameAnalysis) PlyCount() int {
	if ga.Game == nil {
		return 0
	}
	return ga.Game.PlyCount()
}

// Complete reports whether every move of the game was accepted.
func (ga *GameAnalysis) Complete() bool {
	return ga.Err == nil
}

// newGame sets up the starting position of a parsed game.
func newGame(src *parser.Game, rules engine.Rules) (*engine.Game, error) {
	if src.FEN == "" {
		return engine.NewGame(rules), nil
	}
	g, err := engine.NewGameFromFEN(src.FEN, rules)
	if err != nil {
		return nil, &errors.GameError{Err: err, Game: src.Index, File: src.File, Line: src.Line}
	}
	return g, nil
}

// AnalyzeGame replays a game and analyzes it for various features. Replay
// stops at the first rejected move; the analysis then describes the
// position reached before it.
func AnalyzeGame(src *parser.Game, rules engine.Rules) *GameAnalysis {
	analysis := &GameAnalysis{Source: src}

	g, err := newGame(src, rules)
	if err != nil {
		analysis.Err = err
		return analysis
	}
	analysis.Game = g
	analysis.StartFEN = g.FullFEN()
	analysis.StartHash = g.Hash()

	for i, text := range src.Moves {
		out, err := g.Play(text, engine.SourceReplay)
		if err != nil {
			analysis.Err = &errors.GameError{
				Err:  err,
				Game: src.Index,
				Ply:  i + 1,
				Move: text,
				File: src.File,
				Line: src.Line,
			}
			break
		}

		if out.Result.IsCapture() {
			analysis.Captures++
		}
		if g.InCheck() {
			analysis.Checks++
		}
		if out.Result.IsPromotion() && out.Result.PromotionKind() != chess.Queen {
			analysis.HasUnderpromotion = true
		}
		// Checked directly: Ending reports only the highest-ranked of several
		// conditions that hold at once.
		if g.FiftyMoveExpired() {
			analysis.HasFiftyMoveRule = true
		}
		if g.CheckHashTriplet() {
			analysis.HasRepetition = true
		}
	}

	analysis.Ending = g.Ending()
	return analysis
}

// ResultFor returns the result string implied by an ending, or "*" while
// the game goes on. loser is the side to move in the final position.
func ResultFor(ending engine.Ending, loser chess.Colour) string {
	switch {
	case ending == engine.Checkmate && loser == chess.White:
		return "0-1"
	case ending == engine.Checkmate:
		return "1-0"
	case ending.IsDraw():
		return "1/2-1/2"
	default:
		return "*"
	}
}
