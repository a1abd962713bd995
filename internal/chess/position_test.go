package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewStartPosition(t *testing.T) {
	p := NewStartPosition(nil)

	t.Run("initial state", func(t *testing.T) {
		if p.ToMove() != White {
			t.Errorf("ToMove() = %v; want White", p.ToMove())
		}
		if p.MoveNumber() != 1 {
			t.Errorf("MoveNumber() = %d; want 1", p.MoveNumber())
		}
		if p.HalfmoveClock() != 0 {
			t.Errorf("HalfmoveClock() = %d; want 0", p.HalfmoveClock())
		}
		if _, ok := p.EnPassantFile(); ok {
			t.Error("en-passant file flagged in start position")
		}
		for _, c := range []Colour{White, Black} {
			for _, side := range Sides {
				if !p.Castling(c, side) {
					t.Errorf("Castling(%v, %v) = false", c, side)
				}
			}
		}
	})

	t.Run("layout", func(t *testing.T) {
		want := "rnbqkbnr\npppppppp\n........\n........\n........\n........\nPPPPPPPP\nRNBQKBNR\n"
		if diff := cmp.Diff(want, p.String()); diff != "" {
			t.Errorf("String() mismatch (-want +got):\n%s", diff)
		}
		if len(p.Live(White)) != 16 || len(p.Live(Black)) != 16 {
			t.Errorf("Live() = %d/%d pieces; want 16/16", len(p.Live(White)), len(p.Live(Black)))
		}
		if sq, ok := p.King(Black); !ok || sq != Sq(4, 7) {
			t.Errorf("King(Black) = %v,%v; want e8", sq, ok)
		}
	})

	t.Run("hash", func(t *testing.T) {
		if p.Hash() != p.Rebuild() {
			t.Errorf("Hash() = %x; Rebuild() = %x", p.Hash(), p.Rebuild())
		}
		h := p.History()
		if latest, ok := h.Latest(); !ok || latest != p.Hash() {
			t.Error("start hash not recorded in history")
		}
	})
}

func TestPosition_MutatorsKeepHash(t *testing.T) {
	p := NewStartPosition(nil)
	steps := []struct {
		name string
		fn   func()
	}{
		{"move pawn", func() { p.MovePieceTo(Sq(4, 1), Sq(4, 3)) }},
		{"flag en passant", func() { p.SetEnPassant(4) }},
		{"advance", func() { p.AdvanceTurn() }},
		{"clear en passant", func() { p.ClearEnPassant() }},
		{"remove", func() { p.RemovePiece(Sq(3, 6)) }},
		{"clear castling", func() { p.ClearCastling(Black, QueenSide) }},
		{"clear castling twice", func() { p.ClearCastling(Black, QueenSide) }},
		{"promote", func() { p.Promote(Sq(4, 3), Queen) }},
		{"advance again", func() { p.AdvanceTurn() }},
	}
	for _, s := range steps {
		s.fn()
		if p.Hash() != p.Rebuild() {
			t.Fatalf("after %s: Hash() = %x; Rebuild() = %x", s.name, p.Hash(), p.Rebuild())
		}
	}
	if p.MoveNumber() != 2 {
		t.Errorf("MoveNumber() = %d; want 2", p.MoveNumber())
	}
	id, _ := p.PieceAt(Sq(4, 3))
	if p.Piece(id).Kind != Queen {
		t.Errorf("promoted piece kind = %v; want Queen", p.Piece(id).Kind)
	}
	if len(p.Live(Black)) != 15 {
		t.Errorf("Live(Black) = %d; want 15", len(p.Live(Black)))
	}
}

func TestPosition_CloneIsolation(t *testing.T) {
	orig := NewStartPosition(nil)
	before := orig.String()
	hash := orig.Hash()

	c := orig.Clone()
	c.MovePieceTo(Sq(6, 0), Sq(5, 2))
	c.RemovePiece(Sq(0, 6))
	c.ClearCastling(White, KingSide)
	c.AdvanceTurn()
	c.RecordHash()

	if orig.String() != before {
		t.Errorf("original board changed:\n%s", orig.String())
	}
	if orig.Hash() != hash {
		t.Error("original hash changed")
	}
	if !orig.Castling(White, KingSide) {
		t.Error("original castling right cleared")
	}
	if orig.ToMove() != White {
		t.Error("original side to move changed")
	}
	h := orig.History()
	if h.Len() != 1 {
		t.Errorf("original history length = %d; want 1", h.Len())
	}
	id, _ := orig.PieceAt(Sq(0, 6))
	if !orig.Piece(id).Alive {
		t.Error("original roster entry killed through clone")
	}
}

func TestPosition_InvariantPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(p *Position)
	}{
		{"add on occupied", func(p *Position) { p.AddPiece(White, Knight, Sq(0, 0)) }},
		{"second king", func(p *Position) { p.AddPiece(White, King, Sq(4, 4)) }},
		{"remove empty", func(p *Position) { p.RemovePiece(Sq(4, 4)) }},
		{"move onto piece", func(p *Position) { p.MovePieceTo(Sq(0, 0), Sq(0, 1)) }},
		{"roster overflow", func(p *Position) { p.AddPiece(White, Pawn, Sq(4, 4)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewStartPosition(nil)
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic", tt.name)
				}
			}()
			tt.fn(p)
		})
	}
}

func TestPlyList(t *testing.T) {
	var l PlyList
	if _, ok := l.Last(); ok {
		t.Fatal("empty list reported a last ply")
	}
	for i := 0; i < 3; i++ {
		if n := l.Append(Ply{SAN: "e4"}); n != i+1 {
			t.Errorf("Append() = %d; want %d", n, i+1)
		}
	}
	c := l.Clone()
	l.Reset()
	if l.Len() != 0 {
		t.Errorf("Len() after Reset = %d", l.Len())
	}
	if c.Len() != 3 || c.At(2).Number != 3 {
		t.Errorf("clone lost plies: %+v", c.All())
	}
}
