package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// IsSquareAttacked reports whether any live piece of defender's opponent
// attacks sq. Castling never counts as an attack, and pawns attack their
// diagonals whether or not anything stands there.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, defender chess.Colour) bool {
	for _, id := range pos.Live(defender.Opposite()) {
		piece := pos.Piece(id)
		if piece.Kind == chess.Pawn {
			for _, a := range pawnAttacks(piece.Square, piece.Colour) {
				if a == sq {
					return true
				}
			}
			continue
		}
		list := PossibleMoves(pos, id, false)
		if list.Contains(sq) {
			return true
		}
	}
	return false
}

// IsKingChecked reports whether colour c's king is attacked.
// A board without that king is an invariant fault and panics.
func IsKingChecked(pos *chess.Position, c chess.Colour) bool {
	sq, ok := pos.King(c)
	if !ok {
		panic(fmt.Sprintf("engine: no %s king on board", c))
	}
	return IsSquareAttacked(pos, sq, c)
}

// InCheck reports whether the side to move is in check.
func InCheck(pos *chess.Position) bool {
	return IsKingChecked(pos, pos.ToMove())
}
