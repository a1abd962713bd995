package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestPossibleMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "queen on open board",
			fen:  "k7/8/8/8/3Q4/8/8/7K w - - 0 1",
			from: "d4",
			want: []string{
				"a1", "a4", "a7", "b2", "b4", "b6", "c3", "c4", "c5",
				"d1", "d2", "d3", "d5", "d6", "d7", "d8",
				"e3", "e4", "e5", "f2", "f4", "f6", "g1", "g4", "g7", "h4", "h8",
			},
		},
		{
			name: "knight in corner",
			fen:  "7k/8/8/8/8/8/8/N6K w - - 0 1",
			from: "a1",
			want: []string{"b3", "c2"},
		},
		{
			name: "rook stops at own and enemy pieces",
			fen:  "7k/8/8/3p4/8/8/3R1N2/K7 w - - 0 1",
			from: "d2",
			want: []string{"a2", "b2", "c2", "d1", "d3", "d4", "d5", "e2"},
		},
		{
			name: "pawn double step and capture",
			fen:  "7k/8/8/8/8/3p4/4P3/K7 w - - 0 1",
			from: "e2",
			want: []string{"d3", "e3", "e4"},
		},
		{
			name: "blocked pawn",
			fen:  "7k/8/8/8/8/4p3/4P3/K7 w - - 0 1",
			from: "e2",
			want: []string{},
		},
		{
			name: "en passant destination",
			fen:  "7k/8/8/3pP3/8/8/8/K7 w - d6 0 1",
			from: "e5",
			want: []string{"d6", "e6"},
		},
		{
			name: "black pawn moves down",
			fen:  "k7/4p3/5P2/8/8/8/8/7K b - - 0 1",
			from: "e7",
			want: []string{"e5", "e6", "f6"},
		},
		{
			name: "king with castling",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			from: "e1",
			want: []string{"c1", "d1", "d2", "e2", "f1", "f2", "g1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustParseFEN(t, tt.fen)
			id, ok := pos.PieceAt(sq(t, tt.from))
			if !ok {
				t.Fatalf("no piece on %s", tt.from)
			}
			list := PossibleMoves(pos, id, true)
			if diff := cmp.Diff(tt.want, squareStrings(list.Squares())); diff != "" {
				t.Errorf("PossibleMoves(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestPossibleMoves_DeadPiece(t *testing.T) {
	pos := mustParseFEN(t, "7k/8/8/8/8/8/8/N6K w - - 0 1")
	id, _ := pos.PieceAt(sq(t, "a1"))
	pos.RemovePiece(sq(t, "a1"))
	if list := PossibleMoves(pos, id, true); list.Len() != 0 {
		t.Errorf("dead piece has %d moves", list.Len())
	}
}

func TestIsSquareAttacked(t *testing.T) {
	pos := mustParseFEN(t, "4k3/8/8/8/8/3p4/8/R3K3 w - - 0 1")
	tests := []struct {
		square string
		want   bool
	}{
		{"c2", true},  // black pawn diagonal, empty square
		{"e2", true},  // the other pawn diagonal
		{"d2", false}, // straight ahead of the pawn is not attacked
		{"a8", false},
		{"h5", false},
	}
	for _, tt := range tests {
		if got := IsSquareAttacked(pos, sq(t, tt.square), chess.White); got != tt.want {
			t.Errorf("IsSquareAttacked(%s, White) = %v, want %v", tt.square, got, tt.want)
		}
	}
	// White's rook covers the a-file for Black.
	if !IsSquareAttacked(pos, sq(t, "a8"), chess.Black) {
		t.Error("a8 should be attacked by the white rook")
	}
}

func TestIsKingChecked_NoKingPanics(t *testing.T) {
	pos := mustParseFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	pos.RemovePiece(sq(t, "e8"))
	defer func() {
		if recover() == nil {
			t.Error("IsKingChecked without a king did not panic")
		}
	}()
	IsKingChecked(pos, chess.Black)
}
