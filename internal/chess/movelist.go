package chess

import "fmt"

// MaxDestinations bounds the pseudo-legal destinations of a single piece.
// A queen on an open board reaches 27 squares.
const MaxDestinations = 32

// MoveList is a fixed-capacity list of destination squares.
type MoveList struct {
	squares [MaxDestinations]Square
	n       int
}

// Add appends sq. It panics instead of truncating when the list is full.
func (l *MoveList) Add(sq Square) {
	if l.n == len(l.squares) {
		panic(fmt.Sprintf("chess: move list overflow adding %s", sq))
	}
	l.squares[l.n] = sq
	l.n++
}

// Len returns the number of squares held.
func (l *MoveList) Len() int {
	return l.n
}

// At returns the i-th square.
func (l *MoveList) At(i int) Square {
	return l.squares[i]
}

// Contains reports whether sq is in the list.
func (l *MoveList) Contains(sq Square) bool {
	for i := 0; i < l.n; i++ {
		if l.squares[i] == sq {
			return true
		}
	}
	return false
}

// Squares returns a copy of the held squares.
func (l *MoveList) Squares() []Square {
	out := make([]Square, l.n)
	copy(out, l.squares[:l.n])
	return out
}
