package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// CanCastle reports whether colour c may castle on side now. The checks run
// cheapest first: the static right, empty squares between king and rook, the
// king not in check, and finally each single king step on a clone.
func CanCastle(pos *chess.Position, c chess.Colour, side chess.Side) bool {
	if !pos.Castling(c, side) {
		return false
	}
	if !castlePathClear(pos, c, side) {
		return false
	}
	if IsKingChecked(pos, c) {
		return false
	}

	clone := pos.Clone()
	king := chess.Square{Col: chess.KingHomeCol, Row: c.HomeRow()}
	step := sign(side.KingTargetCol() - chess.KingHomeCol)
	for i := 0; i < 2; i++ {
		next := king.Offset(step, 0)
		clone.MovePieceTo(king, next)
		if IsKingChecked(clone, c) {
			return false
		}
		king = next
	}
	return true
}

// castlePathClear reports whether every square strictly between the king and
// the castling rook is empty. A right held without king and rook at home is
// an invariant fault.
func castlePathClear(pos *chess.Position, c chess.Colour, side chess.Side) bool {
	row := c.HomeRow()
	if !homePiece(pos, chess.Square{Col: chess.KingHomeCol, Row: row}, c, chess.King) ||
		!homePiece(pos, chess.Square{Col: side.RookCol(), Row: row}, c, chess.Rook) {
		panic(fmt.Sprintf("engine: %s holds %s castling right without king and rook at home", c, side))
	}

	lo, hi := chess.KingHomeCol, side.RookCol()
	if lo > hi {
		lo, hi = hi, lo
	}
	for col := lo + 1; col < hi; col++ {
		if pos.Occupied(chess.Square{Col: col, Row: row}) {
			return false
		}
	}
	return true
}

func homePiece(pos *chess.Position, sq chess.Square, c chess.Colour, k chess.Kind) bool {
	id, ok := pos.PieceAt(sq)
	return ok && id.Colour == c && pos.Piece(id).Kind == k
}

// castleSide returns the side a king move castles on, if it is a castle.
func castleSide(piece chess.Piece, from, to chess.Square) (chess.Side, bool) {
	if piece.Kind != chess.King || from.Row != to.Row || abs(to.Col-from.Col) != 2 {
		return chess.KingSide, false
	}
	if to.Col > from.Col {
		return chess.KingSide, true
	}
	return chess.QueenSide, true
}
