// Package engine implements the chess rules: move generation, check
// detection, legality, castling, the game-end classifier, FEN and SAN
// notation and the move applier that ties them into one transition.
package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// generatorFunc appends the pseudo-legal destinations of piece to list.
type generatorFunc func(pos *chess.Position, piece chess.Piece, considerCastling bool, list *chess.MoveList)

// generators is indexed by kind. It is filled in init because the king
// generator reaches back into the attack oracle.
var generators [chess.NumKinds]generatorFunc

func init() {
	generators = [chess.NumKinds]generatorFunc{
		chess.Pawn:   pawnMoves,
		chess.Knight: leaperMoves(knightOffsets),
		chess.Bishop: sliderMoves(bishopDirections),
		chess.Rook:   sliderMoves(rookDirections),
		chess.Queen:  sliderMoves(queenDirections),
		chess.King:   kingMoves,
	}
}

type offset struct{ dc, dr int8 }

var (
	knightOffsets = []offset{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingOffsets = []offset{
		{0, 1}, {1, 1}, {1, 0}, {1, -1},
		{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}
	bishopDirections = []offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	rookDirections   = []offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	queenDirections  = append(append([]offset{}, rookDirections...), bishopDirections...)
)

// PossibleMoves returns the pseudo-legal destinations of the piece id. Moves
// that leave the mover's king in check are included; IsMoveLegal filters them.
func PossibleMoves(pos *chess.Position, id chess.PieceID, considerCastling bool) chess.MoveList {
	var list chess.MoveList
	piece := pos.Piece(id)
	if !piece.Alive {
		return list
	}
	gen := generators[piece.Kind]
	if gen == nil {
		panic(fmt.Sprintf("engine: no generator for kind %v", piece.Kind))
	}
	gen(pos, piece, considerCastling, &list)
	return list
}

// enemyOrEmpty reports whether a piece of colour c may land on sq.
func enemyOrEmpty(pos *chess.Position, sq chess.Square, c chess.Colour) bool {
	id, ok := pos.PieceAt(sq)
	return !ok || id.Colour != c
}

func leaperMoves(offsets []offset) generatorFunc {
	return func(pos *chess.Position, piece chess.Piece, _ bool, list *chess.MoveList) {
		for _, o := range offsets {
			to := piece.Square.Offset(o.dc, o.dr)
			if to.Valid() && enemyOrEmpty(pos, to, piece.Colour) {
				list.Add(to)
			}
		}
	}
}

func sliderMoves(directions []offset) generatorFunc {
	return func(pos *chess.Position, piece chess.Piece, _ bool, list *chess.MoveList) {
		for _, d := range directions {
			for to := piece.Square.Offset(d.dc, d.dr); to.Valid(); to = to.Offset(d.dc, d.dr) {
				id, occupied := pos.PieceAt(to)
				if !occupied {
					list.Add(to)
					continue
				}
				if id.Colour != piece.Colour {
					list.Add(to)
				}
				break
			}
		}
	}
}

func kingMoves(pos *chess.Position, piece chess.Piece, considerCastling bool, list *chess.MoveList) {
	leaperMoves(kingOffsets)(pos, piece, false, list)
	if !considerCastling {
		return
	}
	for _, side := range chess.Sides {
		if CanCastle(pos, piece.Colour, side) {
			list.Add(chess.Square{Col: side.KingTargetCol(), Row: piece.Colour.HomeRow()})
		}
	}
}

func pawnMoves(pos *chess.Position, piece chess.Piece, _ bool, list *chess.MoveList) {
	c := piece.Colour
	fwd := c.Forward()
	from := piece.Square

	one := from.Offset(0, fwd)
	if one.Valid() && !pos.Occupied(one) {
		list.Add(one)
		two := one.Offset(0, fwd)
		if from.Row == c.PawnRow() && !pos.Occupied(two) {
			list.Add(two)
		}
	}

	for _, dc := range []int8{-1, 1} {
		to := from.Offset(dc, fwd)
		if !to.Valid() {
			continue
		}
		if id, ok := pos.PieceAt(to); ok {
			if id.Colour != c {
				list.Add(to)
			}
			continue
		}
		if enPassantTarget(pos, from, to, c) {
			list.Add(to)
		}
	}
}

// enPassantTarget reports whether a pawn of colour c on from may capture en
// passant onto the empty square to.
func enPassantTarget(pos *chess.Position, from, to chess.Square, c chess.Colour) bool {
	if from.Row != c.FifthRow() || !pos.EnPassant(to.Col) {
		return false
	}
	victim, ok := pos.PieceAt(chess.Square{Col: to.Col, Row: from.Row})
	if !ok || victim.Colour == c {
		return false
	}
	return pos.Piece(victim).Kind == chess.Pawn
}

// pawnAttacks returns the two diagonal squares a pawn on sq attacks,
// regardless of what stands on them.
func pawnAttacks(sq chess.Square, c chess.Colour) [2]chess.Square {
	fwd := c.Forward()
	return [2]chess.Square{sq.Offset(-1, fwd), sq.Offset(1, fwd)}
}
