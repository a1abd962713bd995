package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Ending classifies the state of a game.
type Ending int

const (
	Ongoing Ending = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
	ThreefoldRepetition
)

// String returns the string representation of an ending.
func (e Ending) String() string {
	switch e {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case FiftyMoveRule:
		return "fifty-move rule"
	case ThreefoldRepetition:
		return "threefold repetition"
	default:
		return "unknown"
	}
}

// IsDraw reports whether the ending is a draw.
func (e Ending) IsDraw() bool {
	return e != Ongoing && e != Checkmate
}

// Over reports whether the game has ended.
func (e Ending) Over() bool {
	return e != Ongoing
}

// IsCheckMate reports whether the side to move is checkmated.
func IsCheckMate(pos *chess.Position) bool {
	c := pos.ToMove()
	return IsKingChecked(pos, c) && !HasLegalMove(pos, c)
}

// IsStaleMate reports whether the side to move has no legal move while not
// in check.
func IsStaleMate(pos *chess.Position) bool {
	c := pos.ToMove()
	return !IsKingChecked(pos, c) && !HasLegalMove(pos, c)
}

// FiftyMoveExpired reports whether limit quiet half-moves have been played.
// A limit <= 0 selects DefaultFiftyMoveLimit.
func FiftyMoveExpired(pos *chess.Position, limit int) bool {
	if limit <= 0 {
		limit = DefaultFiftyMoveLimit
	}
	return pos.HalfmoveClock() >= limit
}

// CheckHashTriplet reports whether the newest recorded position has occurred
// three times within the last window recorded positions.
func CheckHashTriplet(pos *chess.Position, window int) bool {
	return pos.Triplet(window)
}

// Classify returns the ending of pos under rules. Checkmate takes precedence
// over every draw.
func Classify(pos *chess.Position, rules Rules) Ending {
	rules = rules.normalized()
	c := pos.ToMove()
	checked := IsKingChecked(pos, c)
	if !HasLegalMove(pos, c) {
		if checked {
			return Checkmate
		}
		return Stalemate
	}
	switch {
	case IsMaterialDraw(pos):
		return InsufficientMaterial
	case FiftyMoveExpired(pos, rules.FiftyMoveLimit):
		return FiftyMoveRule
	case CheckHashTriplet(pos, rules.RepetitionWindow):
		return ThreefoldRepetition
	}
	return Ongoing
}
