package chess

// BoardSize is the number of rows and columns.
const BoardSize = 8

// Square is a board cell addressed by column (0 = a file) and row (0 = first rank).
type Square struct {
	Col int8
	Row int8
}

// NoSquare marks the absence of a square, e.g. the location of a captured piece.
var NoSquare = Square{Col: -1, Row: -1}

// Sq builds a square from column and row.
func Sq(col, row int) Square {
	return Square{Col: int8(col), Row: int8(row)}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Col >= 0 && s.Col < BoardSize && s.Row >= 0 && s.Row < BoardSize
}

// Index returns 0..63, a1 = 0, h8 = 63.
func (s Square) Index() int {
	return int(s.Row)*BoardSize + int(s.Col)
}

// Offset returns the square displaced by the given column and row deltas.
// The result may be off the board.
func (s Square) Offset(dc, dr int8) Square {
	return Square{Col: s.Col + dc, Row: s.Row + dr}
}

// Light reports whether the square is a light square (a1 is dark).
func (s Square) Light() bool {
	return (s.Col+s.Row)%2 == 1
}

// String returns algebraic coordinates, e.g. "e4", or "-" for an invalid square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.Col), '1' + byte(s.Row)})
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	sq := Square{Col: int8(s[0]) - 'a', Row: int8(s[1]) - '1'}
	if !sq.Valid() {
		return NoSquare, false
	}
	return sq, true
}
