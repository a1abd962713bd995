// Package testutil provides shared test utilities for the chess-rules-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Well-known positions used across packages.
const (
	// ScholarsMateFEN is the position after 1.e4 e5 2.Bc4 Nc6 3.Qh5 Nf6 4.Qxf7#.
	ScholarsMateFEN = "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4"

	// StalemateFEN has Black to move with no legal move and not in check.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

	// BareKingsFEN is a dead position.
	BareKingsFEN = "8/8/4k3/8/8/4K3/8/8 w - - 0 1"
)

// NewTestGame starts a game from fen with default rules, or returns nil if
// the FEN is rejected. An empty fen selects the initial position.
func NewTestGame(fen string) *engine.Game {
	if fen == "" {
		return engine.NewGame(engine.DefaultRules())
	}
	g, err := engine.NewGameFromFEN(fen, engine.DefaultRules())
	if err != nil {
		return nil
	}
	return g
}

// MustGame starts a game from fen with default rules.
// It calls t.Fatal if the FEN is rejected.
func MustGame(t *testing.T, fen string) *engine.Game {
	t.Helper()
	g := NewTestGame(fen)
	if g == nil {
		t.Fatalf("failed to load test position %q", fen)
	}
	return g
}

// MustPlay plays each move, given in SAN or UCI, as a replayed move.
// It calls t.Fatal on the first move the game rejects.
func MustPlay(t *testing.T, g *engine.Game, moves ...string) {
	t.Helper()
	for i, mv := range moves {
		if _, err := g.Play(mv, engine.SourceReplay); err != nil {
			t.Fatalf("move %d (%s) rejected: %v", i+1, mv, err)
		}
	}
}

// MustPlayLine plays a whitespace-separated list of moves.
func MustPlayLine(t *testing.T, g *engine.Game, line string) {
	t.Helper()
	MustPlay(t, g, strings.Fields(line)...)
}
