// Package session shares one game between the collaborators that drive it.
//
// The GUI, the network adapter and the engine adapter all submit moves to
// the same game from their own goroutines. Shared serialises them behind a
// single mutex; reads take the same lock, so no caller ever observes a
// half-applied move.
package session

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Shared is a game guarded by a mutex.
type Shared struct {
	mu   sync.Mutex
	game *engine.Game
}

// NewShared wraps g. The caller must not use g directly afterwards.
func NewShared(g *engine.Game) *Shared {
	return &Shared{game: g}
}

// MovePiece submits a move. See engine.Game.MovePiece.
func (s *Shared) MovePiece(req engine.MoveRequest) (engine.MoveOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.MovePiece(req)
}

// Play resolves move text in SAN or UCI and submits it.
func (s *Shared) Play(text string, source engine.Source) (engine.MoveOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Play(text, source)
}

// CompletePromotion finishes a pending interactive promotion.
func (s *Shared) CompletePromotion(kind chess.Kind) (engine.MoveOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.CompletePromotion(kind)
}

// CancelPromotion discards a pending interactive promotion.
func (s *Shared) CancelPromotion() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.CancelPromotion()
}

// PendingPromotion returns the move awaiting a promotion choice.
func (s *Shared) PendingPromotion() (chess.Move, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.PendingPromotion()
}

// IsMoveLegal reports whether from-to is legal in the current position.
func (s *Shared) IsMoveLegal(from, to chess.Square) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.IsMoveLegal(from, to)
}

// LegalMoves lists every legal move in the current position.
func (s *Shared) LegalMoves() []chess.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.LegalMoves()
}

// FEN returns the full FEN of the current position.
func (s *Shared) FEN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.FullFEN()
}

// Hash returns the Zobrist hash of the current position.
func (s *Shared) Hash() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Hash()
}

// Ending classifies the current position.
func (s *Shared) Ending() engine.Ending {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Ending()
}

// Reset returns the game to the initial position.
func (s *Shared) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Reset()
}

// LoadFEN replaces the position. On error the game is unchanged.
func (s *Shared) LoadFEN(fen string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.LoadFEN(fen)
}

// Snapshot returns an independent copy of the game taken under the lock.
// The copy may be read without synchronisation.
func (s *Shared) Snapshot() *engine.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Clone()
}

// With runs fn with exclusive access to the game. fn must not retain g.
func (s *Shared) With(fn func(g *engine.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game)
}
