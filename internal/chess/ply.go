package chess

// Ply records one executed half-move.
type Ply struct {
	Number    int
	From      Square
	To        Square
	Piece     PieceID
	Captured  *PieceID
	Promotion Kind
	SAN       string
	Result    MoveResult
	Hash      uint64
}

// Move returns the from/to/promotion triple of the ply.
func (p Ply) Move() Move {
	return Move{From: p.From, To: p.To, Promotion: p.Promotion}
}

// PlyList is the append-only record of a game's half-moves.
type PlyList struct {
	plies []Ply
}

// Append adds p, numbering it sequentially from 1, and returns the number.
func (l *PlyList) Append(p Ply) int {
	p.Number = len(l.plies) + 1
	l.plies = append(l.plies, p)
	return p.Number
}

// Len returns the number of plies.
func (l *PlyList) Len() int {
	return len(l.plies)
}

// At returns the i-th ply, 0-based.
func (l *PlyList) At(i int) Ply {
	return l.plies[i]
}

// Last returns the most recent ply.
func (l *PlyList) Last() (Ply, bool) {
	if len(l.plies) == 0 {
		return Ply{}, false
	}
	return l.plies[len(l.plies)-1], true
}

// All returns a copy of the plies.
func (l *PlyList) All() []Ply {
	out := make([]Ply, len(l.plies))
	copy(out, l.plies)
	return out
}

// Clone returns an independent copy of the list.
func (l *PlyList) Clone() PlyList {
	return PlyList{plies: l.All()}
}

// Reset discards every ply.
func (l *PlyList) Reset() {
	l.plies = nil
}
