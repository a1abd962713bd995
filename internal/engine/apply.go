package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// applyMove performs the full state transition for mv on pos: en-passant
// flags, board, castling rights, the half-move clock, promotion and the turn.
// The move must already have been validated; the repetition history is left
// to the caller.
func applyMove(pos *chess.Position, mv chess.Move) (chess.MoveResult, *chess.PieceID) {
	id, ok := pos.PieceAt(mv.From)
	if !ok {
		panic(fmt.Sprintf("engine: no piece on %s", mv.From))
	}
	piece := pos.Piece(id)
	c := piece.Colour

	pos.ClearEnPassant()
	result, captured := applyRaw(pos, mv.From, mv.To)

	// A rook taken on its corner takes the right with it.
	if captured != nil {
		opp := c.Opposite()
		for _, side := range chess.Sides {
			if mv.To == (chess.Square{Col: side.RookCol(), Row: opp.HomeRow()}) {
				pos.ClearCastling(opp, side)
			}
		}
	}

	switch piece.Kind {
	case chess.King:
		pos.ClearCastling(c, chess.KingSide)
		pos.ClearCastling(c, chess.QueenSide)
	case chess.Rook:
		for _, side := range chess.Sides {
			if mv.From == (chess.Square{Col: side.RookCol(), Row: c.HomeRow()}) {
				pos.ClearCastling(c, side)
			}
		}
	}

	if piece.Kind == chess.Pawn || captured != nil {
		pos.ResetHalfmoveClock()
	} else {
		pos.TickHalfmoveClock()
	}

	if piece.Kind == chess.Pawn {
		if abs(mv.To.Row-mv.From.Row) == 2 && enemyPawnBeside(pos, mv.To, c) {
			pos.SetEnPassant(mv.To.Col)
		}
		if mv.To.Row == c.LastRow() {
			if !mv.Promotion.Promotable() {
				panic(fmt.Sprintf("engine: promotion on %s to %v", mv.To, mv.Promotion))
			}
			pos.Promote(mv.To, mv.Promotion)
			result |= chess.PromotionResult(mv.Promotion)
		}
	}

	pos.AdvanceTurn()
	return result, captured
}

// enemyPawnBeside reports whether a pawn of c's opponent stands next to sq on
// the same row, i.e. a double step onto sq can be taken en passant.
func enemyPawnBeside(pos *chess.Position, sq chess.Square, c chess.Colour) bool {
	for _, dc := range []int8{-1, 1} {
		id, ok := pos.PieceAt(sq.Offset(dc, 0))
		if ok && id.Colour != c && pos.Piece(id).Kind == chess.Pawn {
			return true
		}
	}
	return false
}
