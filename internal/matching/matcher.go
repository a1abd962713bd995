// Package matching selects replayed games by how they went.
package matching

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// GameMatcher decides whether a replayed game is selected.
type GameMatcher interface {
	Match(game *processing.GameAnalysis) bool

	// Name describes the criterion for diagnostics.
	Name() string
}

// MatchMode is how a CompositeMatcher combines its parts.
type MatchMode int

const (
	MatchAll MatchMode = iota // every part must match
	MatchAny                  // at least one part must match
)

// String returns "all" or "any".
func (m MatchMode) String() string {
	if m == MatchAny {
		return "any"
	}
	return "all"
}

// CompositeMatcher is a conjunction or disjunction of other matchers.
// An empty MatchAll composite selects every game; an empty MatchAny
// composite selects none.
type CompositeMatcher struct {
	mode  MatchMode
	parts []GameMatcher
}

// NewCompositeMatcher returns a composite of parts combined by mode.
func NewCompositeMatcher(mode MatchMode, parts ...GameMatcher) *CompositeMatcher {
	return &CompositeMatcher{mode: mode, parts: parts}
}

// Add appends a part.
func (c *CompositeMatcher) Add(m GameMatcher) {
	c.parts = append(c.parts, m)
}

// Len returns the number of parts.
func (c *CompositeMatcher) Len() int { return len(c.parts) }

// Match implements GameMatcher. Parts are evaluated in the order added and
// evaluation stops as soon as the outcome is known.
func (c *CompositeMatcher) Match(game *processing.GameAnalysis) bool {
	// For MatchAll a failing part decides the result; for MatchAny a
	// succeeding one does.
	decisive := c.mode == MatchAny
	for _, m := range c.parts {
		if m.Match(game) == decisive {
			return decisive
		}
	}
	return !decisive
}

// Name implements GameMatcher, e.g. "all(any(EndingMatcher([checkmate])), CompleteMatcher)".
func (c *CompositeMatcher) Name() string {
	var b strings.Builder
	b.WriteString(c.mode.String())
	b.WriteByte('(')
	for i, m := range c.parts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.Name())
	}
	b.WriteByte(')')
	return b.String()
}
