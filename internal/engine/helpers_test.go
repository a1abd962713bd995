package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Well-known move generation test positions.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	endgameFEN   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	mirrorFEN    = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	promotionFEN = "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1"
)

func mustParseFEN(t testing.TB, fen string) *chess.Position {
	t.Helper()
	pos, err := ParseFEN(fen, nil)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	return pos
}

func mustGame(t testing.TB, fen string) *Game {
	t.Helper()
	if fen == "" {
		return NewGame(DefaultRules())
	}
	g, err := NewGameFromFEN(fen, DefaultRules())
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// play plays each UCI move as a replayed move and returns the last outcome.
func play(t testing.TB, g *Game, moves ...string) MoveOutcome {
	t.Helper()
	var out MoveOutcome
	for _, m := range moves {
		var err error
		out, err = g.PlayUCI(m, SourceReplay)
		if err != nil {
			t.Fatalf("PlayUCI(%q) after %v: %v", m, g.Plies(), err)
		}
	}
	return out
}

func sq(t testing.TB, s string) chess.Square {
	t.Helper()
	square, ok := chess.ParseSquare(s)
	if !ok {
		t.Fatalf("bad square %q", s)
	}
	return square
}

func squareStrings(squares []chess.Square) []string {
	out := make([]string, len(squares))
	for i, s := range squares {
		out[i] = s.String()
	}
	sort.Strings(out)
	return out
}

func moveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func perft(pos *chess.Position, depth int) int {
	moves := AllLegalMoves(pos)
	if depth == 1 {
		return len(moves)
	}
	n := 0
	for _, mv := range moves {
		next := pos.Clone()
		applyMove(next, mv)
		n += perft(next, depth-1)
	}
	return n
}
