package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// InitialFEN is the FEN of the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MaxFENLength bounds the length of a generated FEN string.
const MaxFENLength = 128

// GenerateFEN returns the first four FEN fields: placement, side to move,
// castling rights and en-passant target.
func GenerateFEN(pos *chess.Position) string {
	var sb strings.Builder
	sb.Grow(MaxFENLength)

	for row := chess.BoardSize - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			id, ok := pos.PieceAt(chess.Sq(col, row))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pos.Piece(id).PieceKind().FENLetter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if pos.ToMove() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(castlingField(pos))

	sb.WriteByte(' ')
	if file, ok := pos.EnPassantFile(); ok {
		// The target is the square the double-stepping pawn passed over.
		row := int8(5)
		if pos.ToMove() == chess.Black {
			row = 2
		}
		sb.WriteString(chess.Square{Col: file, Row: row}.String())
	} else {
		sb.WriteByte('-')
	}

	return sb.String()
}

// GenerateFullFEN returns all six FEN fields, adding the half-move clock and
// the full-move number.
func GenerateFullFEN(pos *chess.Position) string {
	return fmt.Sprintf("%s %d %d", GenerateFEN(pos), pos.HalfmoveClock(), pos.MoveNumber())
}

func castlingField(pos *chess.Position) string {
	var b []byte
	letters := [2][2]byte{{'K', 'Q'}, {'k', 'q'}}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for _, side := range chess.Sides {
			if pos.Castling(c, side) {
				b = append(b, letters[c][side])
			}
		}
	}
	if len(b) == 0 {
		return "-"
	}
	return string(b)
}

// ParseFEN builds a position from a FEN string. The half-move clock and move
// number fields are optional. Castling rights whose king or rook is not on
// its home square are dropped, and an en-passant target no pawn can take is
// ignored. The position's hash is recorded as the first history entry.
// A nil keys table selects hashing.DefaultKeys.
func ParseFEN(fen string, keys *hashing.Keys) (*chess.Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fenError(fen, "expected 4 to 6 fields, got %d", len(fields))
	}

	pos := chess.NewPosition(keys)
	if err := parsePlacement(pos, fields[0]); err != nil {
		return nil, fenError(fen, "%v", err)
	}

	switch fields[1] {
	case "w":
		pos.SetToMove(chess.White)
	case "b":
		pos.SetToMove(chess.Black)
	default:
		return nil, fenError(fen, "bad side to move %q", fields[1])
	}

	if err := parseCastling(pos, fields[2]); err != nil {
		return nil, fenError(fen, "%v", err)
	}
	if err := parseEnPassant(pos, fields[3]); err != nil {
		return nil, fenError(fen, "%v", err)
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fenError(fen, "bad half-move clock %q", fields[4])
		}
		pos.SetHalfmoveClock(n)
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fenError(fen, "bad move number %q", fields[5])
		}
		pos.SetMoveNumber(n)
	}

	if IsKingChecked(pos, pos.ToMove().Opposite()) {
		return nil, fenError(fen, "side not to move is in check")
	}

	pos.RecordHash()
	return pos, nil
}

func fenError(fen, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %q: %s", errors.ErrInvalidFEN, fen, fmt.Sprintf(format, args...))
}

func parsePlacement(pos *chess.Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected 8 ranks, got %d", len(ranks))
	}

	var pieces, kings [2]int
	for i, rank := range ranks {
		row := chess.BoardSize - 1 - i
		col := 0
		for j := 0; j < len(rank); j++ {
			ch := rank[j]
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			pk, ok := chess.PieceKindFromFEN(ch)
			if !ok {
				return fmt.Errorf("bad piece letter %q", ch)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %d describes more than 8 squares", row+1)
			}
			c, k := pk.Colour(), pk.Kind()
			if k == chess.Pawn && (row == 0 || row == chess.BoardSize-1) {
				return fmt.Errorf("pawn on rank %d", row+1)
			}
			pieces[c]++
			if pieces[c] > chess.RosterSize {
				return fmt.Errorf("more than %d %s pieces", chess.RosterSize, c)
			}
			if k == chess.King {
				kings[c]++
				if kings[c] > 1 {
					return fmt.Errorf("more than one %s king", c)
				}
			}
			pos.AddPiece(c, k, chess.Sq(col, row))
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d describes %d squares", row+1, col)
		}
	}

	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if kings[c] != 1 {
			return fmt.Errorf("no %s king", c)
		}
	}
	return nil
}

func parseCastling(pos *chess.Position, field string) error {
	if field == "-" {
		return nil
	}
	var seen [2][2]bool
	for i := 0; i < len(field); i++ {
		var c chess.Colour
		var side chess.Side
		switch field[i] {
		case 'K':
			c, side = chess.White, chess.KingSide
		case 'Q':
			c, side = chess.White, chess.QueenSide
		case 'k':
			c, side = chess.Black, chess.KingSide
		case 'q':
			c, side = chess.Black, chess.QueenSide
		default:
			return fmt.Errorf("bad castling letter %q", field[i])
		}
		if seen[c][side] {
			return fmt.Errorf("repeated castling letter %q", field[i])
		}
		seen[c][side] = true

		row := c.HomeRow()
		if homePiece(pos, chess.Square{Col: chess.KingHomeCol, Row: row}, c, chess.King) &&
			homePiece(pos, chess.Square{Col: side.RookCol(), Row: row}, c, chess.Rook) {
			pos.SetCastling(c, side)
		}
	}
	return nil
}

func parseEnPassant(pos *chess.Position, field string) error {
	if field == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(field)
	if !ok {
		return fmt.Errorf("bad en-passant square %q", field)
	}
	mover := pos.ToMove()
	wantRow := int8(5)
	if mover == chess.Black {
		wantRow = 2
	}
	if sq.Row != wantRow {
		return fmt.Errorf("en-passant square %s on wrong rank", field)
	}

	// The pawn that just double-stepped stands one row past the target.
	pawnSq := sq.Offset(0, -mover.Forward())
	id, ok := pos.PieceAt(pawnSq)
	if !ok || id.Colour == mover || pos.Piece(id).Kind != chess.Pawn {
		return fmt.Errorf("en-passant square %s without a pawn on %s", field, pawnSq)
	}
	if enemyPawnBeside(pos, pawnSq, id.Colour) {
		pos.SetEnPassant(sq.Col)
	}
	return nil
}
