package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// promotionKinds lists the promotion choices in the order moves are generated.
var promotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// IsMoveLegal reports whether the piece on from may move to to: it belongs to
// the side to move, to is one of its pseudo-legal destinations, and playing
// the move on a clone leaves its own king unattacked.
func IsMoveLegal(pos *chess.Position, from, to chess.Square) bool {
	id, ok := pos.PieceAt(from)
	if !ok || id.Colour != pos.ToMove() {
		return false
	}
	list := PossibleMoves(pos, id, true)
	if !list.Contains(to) {
		return false
	}
	return leavesKingSafe(pos, from, to)
}

// leavesKingSafe plays the raw move on a clone and checks the mover's king.
func leavesKingSafe(pos *chess.Position, from, to chess.Square) bool {
	id, _ := pos.PieceAt(from)
	clone := pos.Clone()
	applyRaw(clone, from, to)
	return !IsKingChecked(clone, id.Colour)
}

// LegalMoves returns the legal destinations of the piece id. Pieces of the
// side not to move have none.
func LegalMoves(pos *chess.Position, id chess.PieceID) []chess.Square {
	piece := pos.Piece(id)
	if !piece.Alive || id.Colour != pos.ToMove() {
		return nil
	}
	list := PossibleMoves(pos, id, true)
	var out []chess.Square
	for i := 0; i < list.Len(); i++ {
		if to := list.At(i); leavesKingSafe(pos, piece.Square, to) {
			out = append(out, to)
		}
	}
	return out
}

// AllLegalMoves returns every legal move of the side to move. Promotions are
// expanded into one move per promotion kind.
func AllLegalMoves(pos *chess.Position) []chess.Move {
	var moves []chess.Move
	for _, id := range pos.Live(pos.ToMove()) {
		piece := pos.Piece(id)
		for _, to := range LegalMoves(pos, id) {
			if isPromotion(piece, to) {
				for _, k := range promotionKinds {
					moves = append(moves, chess.Move{From: piece.Square, To: to, Promotion: k})
				}
				continue
			}
			moves = append(moves, chess.Move{From: piece.Square, To: to})
		}
	}
	return moves
}

// HasLegalMove reports whether colour c has any legal move. Castling is not
// considered: a side that could castle is not in check and has a plain king
// step to the same first square anyway.
func HasLegalMove(pos *chess.Position, c chess.Colour) bool {
	for _, id := range pos.Live(c) {
		piece := pos.Piece(id)
		list := PossibleMoves(pos, id, false)
		for i := 0; i < list.Len(); i++ {
			if leavesKingSafe(pos, piece.Square, list.At(i)) {
				return true
			}
		}
	}
	return false
}

func isPromotion(piece chess.Piece, to chess.Square) bool {
	return piece.Kind == chess.Pawn && to.Row == piece.Colour.LastRow()
}

// applyRaw moves the piece on from to to, removing any captured piece
// (including an en-passant victim beside the source square) and relocating
// the rook when the king castles. It touches neither rights nor clocks.
func applyRaw(pos *chess.Position, from, to chess.Square) (chess.MoveResult, *chess.PieceID) {
	id, ok := pos.PieceAt(from)
	if !ok {
		panic(fmt.Sprintf("engine: no piece on %s", from))
	}
	piece := pos.Piece(id)

	var result chess.MoveResult
	var captured *chess.PieceID

	if _, occupied := pos.PieceAt(to); occupied {
		victim := pos.RemovePiece(to)
		captured = &victim
		result |= chess.PieceTaken
	} else if piece.Kind == chess.Pawn && from.Col != to.Col {
		victim := pos.RemovePiece(chess.Square{Col: to.Col, Row: from.Row})
		captured = &victim
		result |= chess.MoveEnPassant | chess.PieceTaken
	}

	if piece.Kind == chess.King && abs(to.Col-from.Col) == 2 {
		side := chess.QueenSide
		if to.Col > from.Col {
			side = chess.KingSide
		}
		rookFrom := chess.Square{Col: side.RookCol(), Row: from.Row}
		rook, ok := pos.PieceAt(rookFrom)
		if !ok || rook.Colour != piece.Colour || pos.Piece(rook).Kind != chess.Rook {
			panic(fmt.Sprintf("engine: castling %s with no rook on %s", side, rookFrom))
		}
		pos.MovePieceTo(rookFrom, chess.Square{Col: side.RookTargetCol(), Row: from.Row})
		result |= chess.CastleResult(side)
	}

	pos.MovePieceTo(from, to)
	return result, captured
}
