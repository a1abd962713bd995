package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsMaterialDraw reports whether neither side can possibly mate: no pawns,
// rooks or queens remain, and the minor pieces left are at most a single
// knight or bishop, or only bishops that all stand on one square colour.
func IsMaterialDraw(pos *chess.Position) bool {
	var counts [chess.NumKinds]int
	var light, dark int
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for _, id := range pos.Live(c) {
			piece := pos.Piece(id)
			counts[piece.Kind]++
			if piece.Kind == chess.Bishop {
				if piece.Square.Light() {
					light++
				} else {
					dark++
				}
			}
		}
	}

	if counts[chess.Pawn] > 0 || counts[chess.Rook] > 0 || counts[chess.Queen] > 0 {
		return false
	}
	minors := counts[chess.Knight] + counts[chess.Bishop]
	if minors <= 1 {
		return true
	}
	if counts[chess.Knight] > 0 {
		return false
	}
	return light == 0 || dark == 0
}
