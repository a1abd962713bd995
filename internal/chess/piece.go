package chess

// RosterSize is the number of roster slots per colour.
const RosterSize = 16

// Piece is a roster entry. Captured pieces stay in the roster, marked dead.
type Piece struct {
	Kind   Kind
	Colour Colour
	Alive  bool
	Square Square
}

// PieceKind returns the coloured kind of the piece.
func (p Piece) PieceKind() PieceKind {
	return MakePieceKind(p.Colour, p.Kind)
}

// PieceID refers to a roster slot. It does not own the piece.
type PieceID struct {
	Colour Colour
	Index  int8
}

// code packs the id into the board cell encoding.
func (id PieceID) code() int8 {
	return int8(id.Colour)*RosterSize + id.Index
}

func idFromCode(code int8) PieceID {
	return PieceID{Colour: Colour(code / RosterSize), Index: code % RosterSize}
}

const emptyCell int8 = -1
