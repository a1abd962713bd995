// Package chess provides the board model shared by the rules engine: colours,
// piece kinds, squares, the piece rosters and the position itself.
package chess

// Colour represents the colour of a piece or player.
type Colour int8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row direction a pawn of this colour advances in.
func (c Colour) Forward() int8 {
	if c == White {
		return 1
	}
	return -1
}

// HomeRow returns the row holding this colour's king and rooks at the start.
func (c Colour) HomeRow() int8 {
	if c == White {
		return 0
	}
	return 7
}

// PawnRow returns the row this colour's pawns start on.
func (c Colour) PawnRow() int8 {
	if c == White {
		return 1
	}
	return 6
}

// FifthRow returns the row a pawn of this colour must stand on to capture
// en passant.
func (c Colour) FifthRow() int8 {
	if c == White {
		return 4
	}
	return 3
}

// LastRow returns the promotion row for this colour's pawns.
func (c Colour) LastRow() int8 {
	if c == White {
		return 7
	}
	return 0
}

// Kind is the colourless type of a piece.
type Kind int8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the upper case letter used for the kind in SAN and FEN.
func (k Kind) Letter() byte {
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Promotable reports whether a pawn may promote to this kind.
func (k Kind) Promotable() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// KindFromLetter maps a piece letter of either case to its kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return NoKind, false
}

// PieceKind is one of the twelve kind and colour combinations.
// It doubles as the Zobrist table index.
type PieceKind int8

// MakePieceKind combines a colour and a kind.
func MakePieceKind(c Colour, k Kind) PieceKind {
	return PieceKind(int8(c)*6 + int8(k) - 1)
}

// Colour returns the colour part.
func (pk PieceKind) Colour() Colour {
	return Colour(pk / 6)
}

// Kind returns the kind part.
func (pk PieceKind) Kind() Kind {
	return Kind(pk%6) + 1
}

// FENLetter returns the FEN letter: upper case for White, lower case for Black.
func (pk PieceKind) FENLetter() byte {
	l := pk.Kind().Letter()
	if pk.Colour() == Black {
		l += 'a' - 'A'
	}
	return l
}

// PieceKindFromFEN parses a FEN piece letter.
func PieceKindFromFEN(c byte) (PieceKind, bool) {
	k, ok := KindFromLetter(c)
	if !ok {
		return 0, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return MakePieceKind(colour, k), true
}

// Side distinguishes the two castling options.
type Side int8

const (
	KingSide Side = iota
	QueenSide
)

// Sides lists both castling sides, king side first.
var Sides = [2]Side{KingSide, QueenSide}

// String returns the string representation of a side.
func (s Side) String() string {
	if s == KingSide {
		return "KingSide"
	}
	return "QueenSide"
}

// RookCol returns the column the castling rook starts on.
func (s Side) RookCol() int8 {
	if s == KingSide {
		return 7
	}
	return 0
}

// KingTargetCol returns the column the king lands on after castling.
func (s Side) KingTargetCol() int8 {
	if s == KingSide {
		return 6
	}
	return 2
}

// RookTargetCol returns the column the rook lands on after castling.
func (s Side) RookTargetCol() int8 {
	if s == KingSide {
		return 5
	}
	return 3
}

// KingHomeCol is the king's starting column.
const KingHomeCol int8 = 4
