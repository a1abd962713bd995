// Package parser reads move-list input for batch replay.
//
// Each non-blank line is one game: an optional FEN followed by "|", then the
// moves in SAN or coordinate notation. Move numbers, results, NAGs and
// comments may appear and are skipped. Lines starting with '#' are ignored.
package parser

import "strconv"

// TokenType identifies what a Token holds.
type TokenType int

const (
	EOLToken TokenType = iota
	MoveToken
	MoveNumber
	TerminatingResult // 1-0, 0-1, 1/2-1/2 or *
	CommentToken      // {braced} or ;rest-of-line
	NAGToken          // $n
	ErrorToken        // text that fits no other token
)

// String returns a readable name used in parse errors.
func (t TokenType) String() string {
	switch t {
	case EOLToken:
		return "end of line"
	case MoveToken:
		return "move"
	case MoveNumber:
		return "move number"
	case TerminatingResult:
		return "result"
	case CommentToken:
		return "comment"
	case NAGToken:
		return "NAG"
	case ErrorToken:
		return "bad token"
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// Token is one lexical element of a game line.
type Token struct {
	Type    TokenType
	Text    string // move, result, NAG or comment text
	MoveNum uint   // set for MoveNumber
	Column  int    // 1-based
}
