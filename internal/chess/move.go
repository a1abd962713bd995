package chess

import "strings"

// Move is a from/to pair with an optional promotion kind.
type Move struct {
	From      Square
	To        Square
	Promotion Kind
}

// String returns the move in coordinate notation, e.g. "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// MoveResult describes an applied move. The low nibble holds the move class
// flags; the high nibble holds the castle side or the promotion kind.
type MoveResult int

// Move class flags (low nibble). Zero is an ordinary move.
const (
	MoveNormal    MoveResult = 0
	MoveCastle    MoveResult = 1
	MoveEnPassant MoveResult = 2
	MovePromotion MoveResult = 4
	PieceTaken    MoveResult = 8
)

// Detail values (high nibble).
const (
	CastleKingSide   MoveResult = 1 << 4
	CastleQueenSide  MoveResult = 2 << 4
	PromotionPending MoveResult = 0xF << 4
)

// Illegal is returned for a rejected move.
const Illegal MoveResult = -1

// CastleResult returns the result for castling on side.
func CastleResult(side Side) MoveResult {
	if side == KingSide {
		return MoveCastle | CastleKingSide
	}
	return MoveCastle | CastleQueenSide
}

// PromotionResult returns the result for a promotion to k.
func PromotionResult(k Kind) MoveResult {
	return MovePromotion | MoveResult(k)<<4
}

// Class returns the low nibble.
func (r MoveResult) Class() MoveResult {
	return r & 0xF
}

// Detail returns the high nibble, shifted down.
func (r MoveResult) Detail() int {
	return int(r>>4) & 0xF
}

// Has reports whether every flag in f is set.
func (r MoveResult) Has(f MoveResult) bool {
	return r != Illegal && r&f == f
}

// IsCapture reports whether a piece was taken.
func (r MoveResult) IsCapture() bool { return r.Has(PieceTaken) }

// IsCastle reports whether the move castled.
func (r MoveResult) IsCastle() bool { return r.Has(MoveCastle) }

// IsEnPassant reports whether the move captured en passant.
func (r MoveResult) IsEnPassant() bool { return r.Has(MoveEnPassant) }

// IsPromotion reports whether the move promoted a pawn.
func (r MoveResult) IsPromotion() bool { return r.Has(MovePromotion) }

// IsPending reports whether a promotion awaits the kind choice.
func (r MoveResult) IsPending() bool {
	return r.IsPromotion() && r&PromotionPending == PromotionPending
}

// CastleSide returns the side castled on. Valid only when IsCastle.
func (r MoveResult) CastleSide() Side {
	if r&0xF0 == CastleQueenSide {
		return QueenSide
	}
	return KingSide
}

// PromotionKind returns the promoted kind, or NoKind.
func (r MoveResult) PromotionKind() Kind {
	if !r.IsPromotion() || r.IsPending() {
		return NoKind
	}
	return Kind(r.Detail())
}

// String lists the set flags, e.g. "enpassant|taken".
func (r MoveResult) String() string {
	if r == Illegal {
		return "illegal"
	}
	var parts []string
	if r.IsCastle() {
		if r.CastleSide() == KingSide {
			parts = append(parts, "castle-king")
		} else {
			parts = append(parts, "castle-queen")
		}
	}
	if r.IsEnPassant() {
		parts = append(parts, "enpassant")
	}
	if r.IsPromotion() {
		if r.IsPending() {
			parts = append(parts, "promotion-pending")
		} else {
			parts = append(parts, "promotion-"+strings.ToLower(r.PromotionKind().String()))
		}
	}
	if r.IsCapture() {
		parts = append(parts, "taken")
	}
	if len(parts) == 0 {
		return "normal"
	}
	return strings.Join(parts, "|")
}
