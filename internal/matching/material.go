package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// MaterialMatcher matches games by the material left in the final position.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	counts     [2][chess.NumKinds]int
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces).
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn; letter case is ignored.
// Kings are implied. With exact set every other count must be zero;
// otherwise the pattern gives minimum counts.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	mm := &MaterialMatcher{pattern: pattern, exactMatch: exact}

	sides := strings.Split(pattern, ":")
	if len(sides) != 2 {
		return nil, fmt.Errorf("material pattern %q: want WHITE:BLACK", pattern)
	}
	for c, side := range sides {
		for i := 0; i < len(side); i++ {
			k, ok := chess.KindFromLetter(side[i])
			if !ok {
				return nil, fmt.Errorf("material pattern %q: unknown piece %q", pattern, side[i])
			}
			if k != chess.King {
				mm.counts[c][k]++
			}
		}
	}
	return mm, nil
}

// Match implements GameMatcher.
func (mm *MaterialMatcher) Match(game *processing.GameAnalysis) bool {
	if game.Game == nil {
		return false
	}
	pos := game.Game.Position()

	var have [2][chess.NumKinds]int
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for _, id := range pos.Live(c) {
			have[c][pos.Piece(id).Kind]++
		}
	}

	for c := range have {
		for k := chess.Pawn; k < chess.King; k++ {
			want, got := mm.counts[c][k], have[c][k]
			if got < want || (mm.exactMatch && got != want) {
				return false
			}
		}
	}
	return true
}

// Name implements GameMatcher.
func (mm *MaterialMatcher) Name() string {
	if mm.exactMatch {
		return fmt.Sprintf("MaterialMatcher(%s exact)", mm.pattern)
	}
	return fmt.Sprintf("MaterialMatcher(%s)", mm.pattern)
}
