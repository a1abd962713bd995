// Package errors defines the failure conditions of the rules engine and the
// error types that attach input context to them.
//
// Callers test for a condition with the standard library's errors.Is and
// recover the context with errors.As.
package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFEN is returned for a position string that does not parse or
	// describes an impossible position.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove is returned for a move that would leave the mover in
	// check or that the piece cannot make.
	ErrIllegalMove = errors.New("illegal move")

	// ErrUnresolvedMove is returned when move text names no legal move, or
	// more than one.
	ErrUnresolvedMove = errors.New("could not resolve move")

	ErrPromotionPending   = errors.New("promotion pending")
	ErrNoPromotionPending = errors.New("no promotion pending")

	// ErrInvalidPromotion is returned for a promotion to a king or pawn.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	ErrParseFailure  = errors.New("parse failure")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrBookClosed    = errors.New("opening book closed")
)

// location renders "file:line" or "file:line:col", omitting zero parts.
func location(file string, line, col int) string {
	if file == "" {
		return ""
	}
	loc := file
	if line > 0 {
		loc += ":" + strconv.Itoa(line)
		if col > 0 {
			loc += ":" + strconv.Itoa(col)
		}
	}
	return loc
}

// GameError is a replay failure inside one game of the input.
type GameError struct {
	Err  error
	Game int    // 1-based index of the game in the input
	Ply  int    // ply of the rejected move, 0 when the start position failed
	Move string // text of the rejected move
	File string
	Line int
}

// Error formats as "file:line, game 3, ply 5, move "Ke3": cause".
func (e *GameError) Error() string {
	parts := make([]string, 0, 4)
	if loc := location(e.File, e.Line, 0); loc != "" {
		parts = append(parts, loc)
	}
	parts = append(parts, "game "+strconv.Itoa(e.Game))
	if e.Ply > 0 {
		parts = append(parts, "ply "+strconv.Itoa(e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, "move "+strconv.Quote(e.Move))
	}

	msg := strings.Join(parts, ", ")
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *GameError) Unwrap() error { return e.Err }

// ParseError is a malformed token in a game line.
type ParseError struct {
	Err      error
	File     string
	Line     int // 1-based
	Column   int // 1-based, 0 if unknown
	Expected string
	Got      string
}

// Error formats as "file:line:col: expected X, got Y: cause".
func (e *ParseError) Error() string {
	var parts []string
	if loc := location(e.File, e.Line, e.Column); loc != "" {
		parts = append(parts, loc)
	}

	switch {
	case e.Expected != "" && e.Got != "":
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	case e.Expected != "":
		parts = append(parts, "expected "+e.Expected)
	case e.Got != "":
		parts = append(parts, "unexpected "+e.Got)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if len(parts) == 0 {
		return "parse error"
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }
