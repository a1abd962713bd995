package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Position is the complete game state. Board cells hold roster codes rather
// than pointers, so a plain value copy is a deep copy.
//
// All mutators keep the Zobrist hash up to date incrementally; Rebuild
// recomputes it from scratch.
type Position struct {
	// cells[col][row] holds colour*RosterSize+index, or emptyCell.
	cells [BoardSize][BoardSize]int8

	rosters [2][RosterSize]Piece
	used    [2]int8
	kings   [2]int8

	toMove     Colour
	castling   [2][2]bool
	enPassant  [BoardSize]bool
	halfmove   int
	moveNumber int

	hash    uint64
	history hashing.History
	keys    *hashing.Keys
}

// NewPosition returns an empty board with White to move on move 1.
// A nil keys table selects hashing.DefaultKeys.
func NewPosition(keys *hashing.Keys) *Position {
	if keys == nil {
		keys = hashing.DefaultKeys()
	}
	p := &Position{
		toMove:     White,
		moveNumber: 1,
		kings:      [2]int8{-1, -1},
		keys:       keys,
	}
	for col := range p.cells {
		for row := range p.cells[col] {
			p.cells[col][row] = emptyCell
		}
	}
	return p
}

// NewStartPosition returns the standard initial position with its hash
// recorded as the first history entry.
func NewStartPosition(keys *hashing.Keys) *Position {
	p := NewPosition(keys)
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, k := range backRank {
		p.AddPiece(White, k, Sq(col, 0))
		p.AddPiece(Black, k, Sq(col, 7))
	}
	for col := 0; col < BoardSize; col++ {
		p.AddPiece(White, Pawn, Sq(col, 1))
		p.AddPiece(Black, Pawn, Sq(col, 6))
	}
	for _, c := range []Colour{White, Black} {
		for _, side := range Sides {
			p.SetCastling(c, side)
		}
	}
	p.RecordHash()
	return p
}

// Clone returns an independent copy. The key table is shared read-only.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// Keys returns the Zobrist table used by this position.
func (p *Position) Keys() *hashing.Keys {
	return p.keys
}

// ToMove returns the side to move.
func (p *Position) ToMove() Colour {
	return p.toMove
}

// MoveNumber returns the full-move number, starting at 1.
func (p *Position) MoveNumber() int {
	return p.moveNumber
}

// HalfmoveClock returns the number of half-moves since the last pawn move
// or capture.
func (p *Position) HalfmoveClock() int {
	return p.halfmove
}

// Hash returns the current Zobrist hash.
func (p *Position) Hash() uint64 {
	return p.hash
}

// PieceAt returns the id of the piece on sq.
func (p *Position) PieceAt(sq Square) (PieceID, bool) {
	if !sq.Valid() {
		return PieceID{}, false
	}
	code := p.cells[sq.Col][sq.Row]
	if code == emptyCell {
		return PieceID{}, false
	}
	return idFromCode(code), true
}

// Occupied reports whether sq holds a piece.
func (p *Position) Occupied(sq Square) bool {
	_, ok := p.PieceAt(sq)
	return ok
}

// Piece returns the roster entry for id.
func (p *Position) Piece(id PieceID) Piece {
	return p.rosters[id.Colour][id.Index]
}

// Live returns the ids of the living pieces of colour c in roster order.
func (p *Position) Live(c Colour) []PieceID {
	ids := make([]PieceID, 0, p.used[c])
	for i := int8(0); i < p.used[c]; i++ {
		if p.rosters[c][i].Alive {
			ids = append(ids, PieceID{Colour: c, Index: i})
		}
	}
	return ids
}

// King returns the square of colour c's king.
func (p *Position) King(c Colour) (Square, bool) {
	idx := p.kings[c]
	if idx < 0 || !p.rosters[c][idx].Alive {
		return NoSquare, false
	}
	return p.rosters[c][idx].Square, true
}

// Castling reports whether colour c still holds the castling right on side.
func (p *Position) Castling(c Colour, side Side) bool {
	return p.castling[c][side]
}

// EnPassant reports whether the file is flagged for an en-passant capture.
func (p *Position) EnPassant(file int8) bool {
	return file >= 0 && file < BoardSize && p.enPassant[file]
}

// EnPassantFile returns the flagged file, if any.
func (p *Position) EnPassantFile() (int8, bool) {
	for f := int8(0); f < BoardSize; f++ {
		if p.enPassant[f] {
			return f, true
		}
	}
	return -1, false
}

// AddPiece places a new piece on an empty square. It panics if the roster is
// full, the square is taken or a second king is added.
func (p *Position) AddPiece(c Colour, k Kind, sq Square) PieceID {
	if !sq.Valid() {
		panic(fmt.Sprintf("chess: AddPiece on invalid square %v", sq))
	}
	if p.Occupied(sq) {
		panic(fmt.Sprintf("chess: AddPiece on occupied square %s", sq))
	}
	if p.used[c] == RosterSize {
		panic(fmt.Sprintf("chess: %s roster is full", c))
	}
	if k == King && p.kings[c] >= 0 {
		panic(fmt.Sprintf("chess: %s already has a king", c))
	}
	id := PieceID{Colour: c, Index: p.used[c]}
	p.used[c]++
	p.rosters[c][id.Index] = Piece{Kind: k, Colour: c, Alive: true, Square: sq}
	if k == King {
		p.kings[c] = id.Index
	}
	p.cells[sq.Col][sq.Row] = id.code()
	p.hash ^= p.keys.Pieces[MakePieceKind(c, k)][sq.Index()]
	return id
}

// RemovePiece marks the piece on sq dead and empties the square.
func (p *Position) RemovePiece(sq Square) PieceID {
	id, ok := p.PieceAt(sq)
	if !ok {
		panic(fmt.Sprintf("chess: RemovePiece on empty square %s", sq))
	}
	piece := &p.rosters[id.Colour][id.Index]
	p.hash ^= p.keys.Pieces[piece.PieceKind()][sq.Index()]
	piece.Alive = false
	piece.Square = NoSquare
	p.cells[sq.Col][sq.Row] = emptyCell
	return id
}

// MovePieceTo relocates the piece on from to the empty square to.
func (p *Position) MovePieceTo(from, to Square) {
	id, ok := p.PieceAt(from)
	if !ok {
		panic(fmt.Sprintf("chess: MovePieceTo from empty square %s", from))
	}
	if p.Occupied(to) {
		panic(fmt.Sprintf("chess: MovePieceTo onto occupied square %s", to))
	}
	piece := &p.rosters[id.Colour][id.Index]
	key := p.keys.Pieces[piece.PieceKind()]
	p.hash ^= key[from.Index()] ^ key[to.Index()]
	piece.Square = to
	p.cells[from.Col][from.Row] = emptyCell
	p.cells[to.Col][to.Row] = id.code()
}

// Promote rewrites the kind of the piece on sq.
func (p *Position) Promote(sq Square, k Kind) {
	id, ok := p.PieceAt(sq)
	if !ok {
		panic(fmt.Sprintf("chess: Promote on empty square %s", sq))
	}
	piece := &p.rosters[id.Colour][id.Index]
	p.hash ^= p.keys.Pieces[piece.PieceKind()][sq.Index()]
	piece.Kind = k
	p.hash ^= p.keys.Pieces[piece.PieceKind()][sq.Index()]
}

// ClearCastling removes a castling right. Clearing an absent right is a no-op.
func (p *Position) ClearCastling(c Colour, side Side) {
	if p.castling[c][side] {
		p.castling[c][side] = false
		p.hash ^= p.keys.Castling[c][side]
	}
}

// SetCastling grants a castling right. Only position setup may call it;
// during play rights are only ever cleared.
func (p *Position) SetCastling(c Colour, side Side) {
	if !p.castling[c][side] {
		p.castling[c][side] = true
		p.hash ^= p.keys.Castling[c][side]
	}
}

// ClearEnPassant drops every en-passant flag.
func (p *Position) ClearEnPassant() {
	for f := range p.enPassant {
		if p.enPassant[f] {
			p.enPassant[f] = false
			p.hash ^= p.keys.EnPassant[f]
		}
	}
}

// SetEnPassant flags file as open to an en-passant capture.
func (p *Position) SetEnPassant(file int8) {
	if !p.enPassant[file] {
		p.enPassant[file] = true
		p.hash ^= p.keys.EnPassant[file]
	}
}

// AdvanceTurn passes the move to the other side, bumping the move number
// after Black has moved.
func (p *Position) AdvanceTurn() {
	if p.toMove == Black {
		p.moveNumber++
	}
	p.toMove = p.toMove.Opposite()
	p.hash ^= p.keys.SideToMove
}

// SetToMove sets the side to move during setup.
func (p *Position) SetToMove(c Colour) {
	if p.toMove != c {
		p.toMove = c
		p.hash ^= p.keys.SideToMove
	}
}

// SetMoveNumber sets the full-move number during setup.
func (p *Position) SetMoveNumber(n int) {
	p.moveNumber = n
}

// SetHalfmoveClock sets the half-move clock.
func (p *Position) SetHalfmoveClock(n int) {
	p.halfmove = n
}

// ResetHalfmoveClock is called after a pawn move or capture.
func (p *Position) ResetHalfmoveClock() {
	p.halfmove = 0
}

// TickHalfmoveClock counts one quiet half-move.
func (p *Position) TickHalfmoveClock() {
	p.halfmove++
}

// Rebuild computes the hash from scratch from the full state.
func (p *Position) Rebuild() uint64 {
	var h uint64
	for c := range p.rosters {
		for i := int8(0); i < p.used[c]; i++ {
			piece := p.rosters[c][i]
			if piece.Alive {
				h ^= p.keys.Pieces[piece.PieceKind()][piece.Square.Index()]
			}
		}
	}
	for c := range p.castling {
		for side := range p.castling[c] {
			if p.castling[c][side] {
				h ^= p.keys.Castling[c][side]
			}
		}
	}
	for f, set := range p.enPassant {
		if set {
			h ^= p.keys.EnPassant[f]
		}
	}
	if p.toMove == Black {
		h ^= p.keys.SideToMove
	}
	return h
}

// RecordHash appends the current hash to the repetition history.
func (p *Position) RecordHash() {
	p.history.Push(p.hash)
}

// History returns a copy of the repetition history.
func (p *Position) History() hashing.History {
	return p.history
}

// Triplet reports whether the current position occurs three times within
// the newest window positions. A position reached by an unrecorded move
// counts once itself plus its recorded occurrences.
func (p *Position) Triplet(window int) bool {
	if latest, ok := p.history.Latest(); ok && latest == p.hash {
		return p.history.Triplet(window)
	}
	switch {
	case window == 1:
		return false
	case window > 1:
		window--
	}
	return p.history.Occurrences(p.hash, window) >= 2
}

// String renders the board as eight ranks of FEN letters, rank 8 first.
func (p *Position) String() string {
	var sb strings.Builder
	for row := BoardSize - 1; row >= 0; row-- {
		for col := 0; col < BoardSize; col++ {
			id, ok := p.PieceAt(Sq(col, row))
			if !ok {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(p.Piece(id).PieceKind().FENLetter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
