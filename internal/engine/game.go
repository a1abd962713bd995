package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Source identifies who submitted a move. Only interactive moves may defer
// the promotion choice.
type Source int

const (
	SourceInteractive Source = iota
	SourceNetwork
	SourceEngine
	SourceReplay
)

// String returns the string representation of a source.
func (s Source) String() string {
	switch s {
	case SourceInteractive:
		return "interactive"
	case SourceNetwork:
		return "network"
	case SourceEngine:
		return "engine"
	case SourceReplay:
		return "replay"
	default:
		return "unknown"
	}
}

// MoveRequest is a move submitted to Game.MovePiece.
type MoveRequest struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.Kind
	Source    Source

	// SkipLegality trusts the caller that the move does not leave the king
	// in check. The piece must still belong to the side to move and the
	// destination must be one of its pseudo-legal squares.
	SkipLegality bool

	// LogicalOnly updates the position but records no ply and does not
	// advance the repetition history.
	LogicalOnly bool
}

// MoveOutcome reports the effects of an accepted move.
type MoveOutcome struct {
	Result chess.MoveResult
	SAN    string
	Hash   uint64
	Ending Ending
	// Ply is the number of the recorded ply, or 0 when none was recorded.
	Ply int
}

// Game is one game in progress: a position, its ply list and any promotion
// awaiting the player's choice. A Game is not safe for concurrent use.
type Game struct {
	pos     *chess.Position
	plies   chess.PlyList
	rules   Rules
	keys    *hashing.Keys
	pending *MoveRequest
}

// NewGame starts a game from the standard initial position.
func NewGame(rules Rules) *Game {
	keys := hashing.DefaultKeys()
	return &Game{
		pos:   chess.NewStartPosition(keys),
		rules: rules.normalized(),
		keys:  keys,
	}
}

// NewGameFromFEN starts a game from a FEN position.
func NewGameFromFEN(fen string, rules Rules) (*Game, error) {
	g := NewGame(rules)
	if err := g.LoadFEN(fen); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset returns the game to the initial position, discarding every ply.
func (g *Game) Reset() {
	g.pos = chess.NewStartPosition(g.keys)
	g.plies.Reset()
	g.pending = nil
}

// LoadFEN replaces the position with the one described by fen and discards
// every ply. On error the game is unchanged.
func (g *Game) LoadFEN(fen string) error {
	pos, err := ParseFEN(fen, g.keys)
	if err != nil {
		return err
	}
	g.pos = pos
	g.plies.Reset()
	g.pending = nil
	return nil
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	c := &Game{
		pos:   g.pos.Clone(),
		plies: g.plies.Clone(),
		rules: g.rules,
		keys:  g.keys,
	}
	if g.pending != nil {
		req := *g.pending
		c.pending = &req
	}
	return c
}

// Position returns the current position. Callers must not mutate it.
func (g *Game) Position() *chess.Position { return g.pos }

// Rules returns the rules in force.
func (g *Game) Rules() Rules { return g.rules }

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour { return g.pos.ToMove() }

// Hash returns the current position hash.
func (g *Game) Hash() uint64 { return g.pos.Hash() }

// FEN returns the four-field FEN of the current position.
func (g *Game) FEN() string { return GenerateFEN(g.pos) }

// FullFEN returns the six-field FEN of the current position.
func (g *Game) FullFEN() string { return GenerateFullFEN(g.pos) }

// Plies returns a copy of the recorded plies.
func (g *Game) Plies() []chess.Ply { return g.plies.All() }

// PlyCount returns the number of recorded plies.
func (g *Game) PlyCount() int { return g.plies.Len() }

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool { return InCheck(g.pos) }

// Ending classifies the current position.
func (g *Game) Ending() Ending { return Classify(g.pos, g.rules) }

// IsMoveLegal reports whether the move from/to is legal now.
func (g *Game) IsMoveLegal(from, to chess.Square) bool { return IsMoveLegal(g.pos, from, to) }

// LegalMoves returns every legal move of the side to move.
func (g *Game) LegalMoves() []chess.Move { return AllLegalMoves(g.pos) }

// CheckHashTriplet reports whether the current position has occurred three
// times within the repetition window.
func (g *Game) CheckHashTriplet() bool {
	return CheckHashTriplet(g.pos, g.rules.RepetitionWindow)
}

// FiftyMoveExpired reports whether the fifty-move limit has been reached.
func (g *Game) FiftyMoveExpired() bool {
	return FiftyMoveExpired(g.pos, g.rules.FiftyMoveLimit)
}

// PendingPromotion returns the promotion move awaiting a kind, if any.
func (g *Game) PendingPromotion() (chess.Move, bool) {
	if g.pending == nil {
		return chess.Move{}, false
	}
	return chess.Move{From: g.pending.From, To: g.pending.To}, true
}

var illegal = MoveOutcome{Result: chess.Illegal}

// MovePiece validates and applies one move. A rejected move returns an
// outcome with Result Illegal and leaves the game untouched.
//
// An interactive pawn move onto the last rank without a promotion kind is
// not applied: the game records it as pending and returns a result with
// PromotionPending set. CompletePromotion or CancelPromotion must follow.
func (g *Game) MovePiece(req MoveRequest) (MoveOutcome, error) {
	if g.pending != nil {
		return illegal, fmt.Errorf("%w: %s to %s awaits a piece", errors.ErrPromotionPending, g.pending.From, g.pending.To)
	}

	id, ok := g.pos.PieceAt(req.From)
	if !ok {
		return illegal, fmt.Errorf("%w: no piece on %s", errors.ErrIllegalMove, req.From)
	}
	if id.Colour != g.pos.ToMove() {
		return illegal, fmt.Errorf("%w: %s is not to move", errors.ErrIllegalMove, id.Colour)
	}
	if !g.acceptable(req) {
		return illegal, fmt.Errorf("%w: %s%s", errors.ErrIllegalMove, req.From, req.To)
	}

	piece := g.pos.Piece(id)
	if !isPromotion(piece, req.To) {
		if req.Promotion != chess.NoKind {
			return illegal, fmt.Errorf("%w: %s%s is not a promotion", errors.ErrInvalidPromotion, req.From, req.To)
		}
		return g.commit(req), nil
	}

	if req.Promotion == chess.NoKind {
		if req.Source == SourceInteractive {
			pending := req
			g.pending = &pending
			result := chess.MovePromotion | chess.PromotionPending
			if g.pos.Occupied(req.To) {
				result |= chess.PieceTaken
			}
			return MoveOutcome{Result: result, Hash: g.pos.Hash()}, nil
		}
		req.Promotion = g.rules.DefaultPromotion
	}
	if !req.Promotion.Promotable() {
		return illegal, fmt.Errorf("%w: %v", errors.ErrInvalidPromotion, req.Promotion)
	}
	return g.commit(req), nil
}

// acceptable applies the legality filter, or with SkipLegality only the
// pseudo-legal destination check.
func (g *Game) acceptable(req MoveRequest) bool {
	if !req.SkipLegality {
		return IsMoveLegal(g.pos, req.From, req.To)
	}
	id, _ := g.pos.PieceAt(req.From)
	list := PossibleMoves(g.pos, id, false)
	if list.Contains(req.To) {
		return true
	}
	side, ok := castleSide(g.pos.Piece(id), req.From, req.To)
	return ok && g.pos.Castling(id.Colour, side) && castlePathClear(g.pos, id.Colour, side)
}

// CompletePromotion finishes the pending interactive promotion with kind.
func (g *Game) CompletePromotion(kind chess.Kind) (MoveOutcome, error) {
	if g.pending == nil {
		return illegal, errors.ErrNoPromotionPending
	}
	if !kind.Promotable() {
		return illegal, fmt.Errorf("%w: %v", errors.ErrInvalidPromotion, kind)
	}
	req := *g.pending
	req.Promotion = kind
	g.pending = nil
	return g.commit(req), nil
}

// CancelPromotion discards the pending interactive promotion.
func (g *Game) CancelPromotion() error {
	if g.pending == nil {
		return errors.ErrNoPromotionPending
	}
	g.pending = nil
	return nil
}

// commit computes the whole transition on a clone and then swaps it in.
func (g *Game) commit(req MoveRequest) MoveOutcome {
	mv := chess.Move{From: req.From, To: req.To, Promotion: req.Promotion}
	id, _ := g.pos.PieceAt(req.From)
	san := SAN(g.pos, mv)

	next := g.pos.Clone()
	result, captured := applyMove(next, mv)
	san += checkSuffix(next)
	if !req.LogicalOnly {
		next.RecordHash()
	}

	out := MoveOutcome{
		Result: result,
		SAN:    san,
		Hash:   next.Hash(),
		Ending: Classify(next, g.rules),
	}
	if !req.LogicalOnly {
		out.Ply = g.plies.Append(chess.Ply{
			From:      req.From,
			To:        req.To,
			Piece:     id,
			Captured:  captured,
			Promotion: req.Promotion,
			SAN:       san,
			Result:    result,
			Hash:      out.Hash,
		})
	}
	*g.pos = *next
	return out
}

// PlayUCI resolves coordinate notation and plays it.
func (g *Game) PlayUCI(text string, source Source) (MoveOutcome, error) {
	mv, err := ResolveUCI(g.pos, text)
	if err != nil {
		return illegal, err
	}
	return g.MovePiece(MoveRequest{From: mv.From, To: mv.To, Promotion: mv.Promotion, Source: source})
}

// PlaySAN resolves algebraic notation and plays it.
func (g *Game) PlaySAN(text string, source Source) (MoveOutcome, error) {
	mv, err := ResolveSAN(g.pos, text)
	if err != nil {
		return illegal, err
	}
	return g.MovePiece(MoveRequest{From: mv.From, To: mv.To, Promotion: mv.Promotion, Source: source})
}

// Play resolves move text in either notation and plays it.
func (g *Game) Play(text string, source Source) (MoveOutcome, error) {
	if LooksLikeUCI(text) {
		if mv, err := ResolveUCI(g.pos, text); err == nil {
			return g.MovePiece(MoveRequest{From: mv.From, To: mv.To, Promotion: mv.Promotion, Source: source})
		}
	}
	return g.PlaySAN(text, source)
}
