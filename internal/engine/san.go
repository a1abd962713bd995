package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// SAN returns the algebraic notation of mv in pos without the check suffix.
// The piece on mv.From must belong to the side to move.
func SAN(pos *chess.Position, mv chess.Move) string {
	id, ok := pos.PieceAt(mv.From)
	if !ok {
		return ""
	}
	piece := pos.Piece(id)

	if side, ok := castleSide(piece, mv.From, mv.To); ok {
		if side == chess.KingSide {
			return "O-O"
		}
		return "O-O-O"
	}

	capture := pos.Occupied(mv.To) || (piece.Kind == chess.Pawn && mv.From.Col != mv.To.Col)

	var sb strings.Builder
	if piece.Kind == chess.Pawn {
		if capture {
			sb.WriteByte('a' + byte(mv.From.Col))
		}
	} else {
		sb.WriteByte(piece.Kind.Letter())
		sb.WriteString(disambiguator(pos, id, mv.To))
	}
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(mv.To.String())
	if isPromotion(piece, mv.To) && mv.Promotion != chess.NoKind {
		sb.WriteByte('=')
		sb.WriteByte(mv.Promotion.Letter())
	}
	return sb.String()
}

// disambiguator returns the file, rank or both needed to tell the piece id
// apart from other pieces of the same kind and colour that can legally reach
// to.
func disambiguator(pos *chess.Position, id chess.PieceID, to chess.Square) string {
	piece := pos.Piece(id)
	ambiguous, sameFile, sameRank := false, false, false
	for _, other := range pos.Live(piece.Colour) {
		if other == id {
			continue
		}
		op := pos.Piece(other)
		if op.Kind != piece.Kind || !IsMoveLegal(pos, op.Square, to) {
			continue
		}
		ambiguous = true
		if op.Square.Col == piece.Square.Col {
			sameFile = true
		}
		if op.Square.Row == piece.Square.Row {
			sameRank = true
		}
	}

	from := piece.Square.String()
	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return from[:1]
	case !sameRank:
		return from[1:]
	default:
		return from
	}
}

// checkSuffix returns "#", "+" or "" for the position reached after a move.
func checkSuffix(after *chess.Position) string {
	if !InCheck(after) {
		return ""
	}
	if HasLegalMove(after, after.ToMove()) {
		return "+"
	}
	return "#"
}

// MoveSAN returns the full algebraic notation of the legal move mv, including
// the check or mate suffix. pos is not modified.
func MoveSAN(pos *chess.Position, mv chess.Move) string {
	san := SAN(pos, mv)
	id, _ := pos.PieceAt(mv.From)
	if isPromotion(pos.Piece(id), mv.To) && mv.Promotion == chess.NoKind {
		mv.Promotion = chess.Queen
	}
	next := pos.Clone()
	applyMove(next, mv)
	return san + checkSuffix(next)
}

// ResolveSAN maps move text such as "Nbd7", "exd6 e.p.", "e8Q" or "0-0" to
// the legal move it names. Check and annotation marks are ignored.
func ResolveSAN(pos *chess.Position, san string) (chess.Move, error) {
	text := normalizeSAN(san)
	if text == "" {
		return chess.Move{}, fmt.Errorf("%w: empty move text", errors.ErrUnresolvedMove)
	}
	for _, mv := range AllLegalMoves(pos) {
		if SAN(pos, mv) == text {
			return mv, nil
		}
	}
	if mv, ok := resolveOverSpecified(pos, text); ok {
		return mv, nil
	}
	return chess.Move{}, fmt.Errorf("%w: %q", errors.ErrUnresolvedMove, san)
}

// resolveOverSpecified accepts text that names more of the source square
// than SAN needs, such as "Ngf3", "Ng1f3" or "Ng1-f3". The named file and
// rank must match the mover and exactly one legal move may fit.
func resolveOverSpecified(pos *chess.Position, text string) (chess.Move, bool) {
	kind := chess.Pawn
	if text != "" && strings.IndexByte("KQRBN", text[0]) >= 0 {
		kind, _ = chess.KindFromLetter(text[0])
		text = text[1:]
	}
	promo := chess.NoKind
	if i := strings.IndexByte(text, '='); i >= 0 {
		if i+2 != len(text) {
			return chess.Move{}, false
		}
		k, ok := chess.KindFromLetter(text[i+1])
		if !ok || !k.Promotable() {
			return chess.Move{}, false
		}
		promo, text = k, text[:i]
	}
	if len(text) < 2 {
		return chess.Move{}, false
	}
	to, ok := chess.ParseSquare(text[len(text)-2:])
	if !ok {
		return chess.Move{}, false
	}

	col, row := int8(-1), int8(-1)
	switch from := strings.TrimRight(text[:len(text)-2], "x-"); {
	case from == "":
	case len(from) == 1 && from[0] >= 'a' && from[0] <= 'h':
		col = int8(from[0] - 'a')
	case len(from) == 1 && from[0] >= '1' && from[0] <= '8':
		row = int8(from[0] - '1')
	case len(from) == 2:
		sq, ok := chess.ParseSquare(from)
		if !ok {
			return chess.Move{}, false
		}
		col, row = sq.Col, sq.Row
	default:
		return chess.Move{}, false
	}

	var found chess.Move
	n := 0
	for _, mv := range AllLegalMoves(pos) {
		id, _ := pos.PieceAt(mv.From)
		switch {
		case mv.To != to, mv.Promotion != promo, pos.Piece(id).Kind != kind:
			continue
		case col >= 0 && mv.From.Col != col, row >= 0 && mv.From.Row != row:
			continue
		case kind == chess.King && (mv.To.Col-mv.From.Col == 2 || mv.From.Col-mv.To.Col == 2):
			// Castling is only written O-O or O-O-O.
			continue
		}
		found = mv
		n++
	}
	return found, n == 1
}

func normalizeSAN(san string) string {
	s := strings.TrimSpace(san)
	s = strings.TrimSuffix(s, "e.p.")
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "+#!?")

	switch s {
	case "0-0", "o-o":
		return "O-O"
	case "0-0-0", "o-o-o":
		return "O-O-O"
	}

	n := len(s)
	if n >= 2 && strings.IndexByte("QRBNqrbn", s[n-1]) >= 0 {
		letter := strings.ToUpper(s[n-1:])
		switch s[n-2] {
		case '1', '8':
			s = s[:n-1] + "=" + letter
		case '=':
			s = s[:n-1] + letter
		}
	}
	return s
}

// ResolveUCI parses coordinate notation such as "e2e4" or "e7e8q". The source
// square must hold a piece of the side to move; legality is left to the
// applier.
func ResolveUCI(pos *chess.Position, text string) (chess.Move, error) {
	s := strings.TrimSpace(text)
	if len(s) != 4 && len(s) != 5 {
		return chess.Move{}, fmt.Errorf("%w: %q is not coordinate notation", errors.ErrUnresolvedMove, text)
	}
	from, ok1 := chess.ParseSquare(s[0:2])
	to, ok2 := chess.ParseSquare(s[2:4])
	if !ok1 || !ok2 {
		return chess.Move{}, fmt.Errorf("%w: %q has a bad square", errors.ErrUnresolvedMove, text)
	}
	mv := chess.Move{From: from, To: to}
	if len(s) == 5 {
		k, ok := chess.KindFromLetter(s[4])
		if !ok || !k.Promotable() {
			return chess.Move{}, fmt.Errorf("%w: %q has a bad promotion letter", errors.ErrUnresolvedMove, text)
		}
		mv.Promotion = k
	}

	id, ok := pos.PieceAt(from)
	if !ok || id.Colour != pos.ToMove() {
		return chess.Move{}, fmt.Errorf("%w: no %s piece on %s", errors.ErrUnresolvedMove, pos.ToMove(), from)
	}
	return mv, nil
}

// UCI formats mv in coordinate notation for an engine.
func UCI(mv chess.Move) string {
	return mv.String()
}

// LooksLikeUCI reports whether text is shaped like coordinate notation.
func LooksLikeUCI(text string) bool {
	if len(text) != 4 && len(text) != 5 {
		return false
	}
	_, ok1 := chess.ParseSquare(text[0:2])
	_, ok2 := chess.ParseSquare(text[2:4])
	return ok1 && ok2
}
