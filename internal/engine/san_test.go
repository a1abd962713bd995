package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestSAN_Disambiguation(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{"by file", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", "b1d2", "Nbd2"},
		{"by rank", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "a1a3", "R1a3"},
		{"by file and rank", "6k1/8/8/8/8/2Q1Q3/8/K3Q3 w - - 0 1", "e3d2", "Qe3d2"},
		{"pinned twin needs no disambiguation", "4k3/8/8/8/8/8/8/1N2KN1r w - - 0 1", "b1d2", "Nd2"},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4d5", "exd5"},
		{"capture with piece", "4k3/8/8/3p4/8/4N3/8/4K3 w - - 0 1", "e3d5", "Nxd5"},
		{"promotion", "8/4P3/8/8/8/8/k7/4K3 w - - 0 1", "e7e8r", "e8=R"},
		{"castle", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", "e1g1", "O-O"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustParseFEN(t, tt.fen)
			mv, err := ResolveUCI(pos, tt.move)
			if err != nil {
				t.Fatalf("ResolveUCI(%q) error: %v", tt.move, err)
			}
			if got := SAN(pos, mv); got != tt.want {
				t.Errorf("SAN(%s) = %q, want %q", tt.move, got, tt.want)
			}
		})
	}
}

func TestMoveSAN_Suffix(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{"check", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a8", "Ra8+"},
		{"mate", "6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1", "a1a8", "Ra8#"},
		{"quiet", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a2", "Ra2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustParseFEN(t, tt.fen)
			mv, err := ResolveUCI(pos, tt.move)
			if err != nil {
				t.Fatal(err)
			}
			if got := MoveSAN(pos, mv); got != tt.want {
				t.Errorf("MoveSAN() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveSAN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		san  string
		want string
	}{
		{"pawn push", InitialFEN, "e4", "e2e4"},
		{"knight", InitialFEN, "Nf3", "g1f3"},
		{"check mark ignored", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "Ra8+", "a1a8"},
		{"annotation ignored", InitialFEN, "e4!?", "e2e4"},
		{"zero castle", "4k3/8/8/8/8/8/8/4K2R w K - 0 1", "0-0", "e1g1"},
		{"promotion without equals", "8/4P3/8/8/8/8/k7/4K3 w - - 0 1", "e8Q", "e7e8q"},
		{"lower case promotion", "8/4P3/8/8/8/8/k7/4K3 w - - 0 1", "e8=n", "e7e8n"},
		{"en passant suffix", "rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3", "exd6 e.p.", "e5d6"},
		{"disambiguated", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", "Nbd2", "b1d2"},
		{"needless file", InitialFEN, "Ngf3", "g1f3"},
		{"needless square", InitialFEN, "Ng1f3", "g1f3"},
		{"long algebraic", InitialFEN, "Ng1-f3", "g1f3"},
		{"pawn from square", InitialFEN, "e2-e4", "e2e4"},
		{"needless rank with capture", "4k3/8/8/3p4/8/8/8/3RK3 w - - 0 1", "R1xd5", "d1d5"},
		{"full square on promotion", "3r3k/4P3/8/8/8/8/8/4K3 w - - 0 1", "e7xd8=Q", "e7d8q"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustParseFEN(t, tt.fen)
			mv, err := ResolveSAN(pos, tt.san)
			if err != nil {
				t.Fatalf("ResolveSAN(%q) error: %v", tt.san, err)
			}
			if got := UCI(mv); got != tt.want {
				t.Errorf("ResolveSAN(%q) = %s, want %s", tt.san, got, tt.want)
			}
		})
	}
}

func TestResolve_Unresolved(t *testing.T) {
	pos := chess.NewStartPosition(nil)
	before := GenerateFullFEN(pos)

	for _, san := range []string{"", "Nd2", "e5", "Ke2", "Nbd2", "xyz", "Nhf3", "Ng2f3", "Kg1", "e8"} {
		if _, err := ResolveSAN(pos, san); !stderrors.Is(err, errors.ErrUnresolvedMove) {
			t.Errorf("ResolveSAN(%q) error = %v, want ErrUnresolvedMove", san, err)
		}
	}
	for _, uci := range []string{"", "e2", "e2e9", "e4e5", "e7e5", "e7e8k", "0000"} {
		if _, err := ResolveUCI(pos, uci); !stderrors.Is(err, errors.ErrUnresolvedMove) {
			t.Errorf("ResolveUCI(%q) error = %v, want ErrUnresolvedMove", uci, err)
		}
	}
	if GenerateFullFEN(pos) != before {
		t.Error("failed resolution mutated the position")
	}
}

func TestGame_Play(t *testing.T) {
	g := mustGame(t, "")
	for _, m := range []string{"e4", "e7e5", "Nf3", "b8c6", "Bb5"} {
		if _, err := g.Play(m, SourceReplay); err != nil {
			t.Fatalf("Play(%q) error: %v", m, err)
		}
	}
	if got, want := g.FEN(), "r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R b KQkq -"; got != want {
		t.Errorf("FEN() = %q, want %q", got, want)
	}
}
