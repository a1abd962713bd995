// Package output writes replay reports as PGN-style text or JSON.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/book"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/eco"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// maxLineLength is the movetext wrap column.
const maxLineLength = 80

// Report is one replayed game plus what the batch run learned about it.
type Report struct {
	Analysis *processing.GameAnalysis

	// Book lists the book moves from the final position, if looked up.
	Book []book.Entry

	// Repeats counts earlier games that ended in the same position.
	Repeats int

	// Opening is the ECO classification, if any.
	Opening *eco.ECOEntry
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputReport writes one report as tags followed by movetext.
func OutputReport(r *Report, cfg *config.OutputConfig, w io.Writer) {
	outputTags(r, cfg, w)

	// Blank line between tags and moves
	fmt.Fprintln(w)

	if cfg.IncludeMoves {
		outputMoves(r.Analysis, cfg.Notation, w)
	} else {
		fmt.Fprintln(w, Result(r.Analysis))
	}

	// Blank line between games
	fmt.Fprintln(w)
}

// DrawClaims lists the draw conditions that held at some ply of the game,
// whether or not one of them is the final ending.
func DrawClaims(a *processing.GameAnalysis) []string {
	var claims []string
	if a.HasRepetition {
		claims = append(claims, engine.ThreefoldRepetition.String())
	}
	if a.HasFiftyMoveRule {
		claims = append(claims, engine.FiftyMoveRule.String())
	}
	return claims
}

// outputTags outputs the report tags.
func outputTags(r *Report, cfg *config.OutputConfig, w io.Writer) {
	a := r.Analysis
	src := a.Source

	writeTag(w, "Game", strconv.Itoa(src.Index))
	if src.File != "" {
		writeTag(w, "Source", fmt.Sprintf("%s:%d", src.File, src.Line))
	}
	if a.StartFEN != "" && a.StartFEN != engine.InitialFEN {
		writeTag(w, "FEN", a.StartFEN)
	}
	writeTag(w, "Result", Result(a))
	if o := r.Opening; o != nil {
		writeTag(w, "ECO", o.ECOCode)
		if o.Opening != "" {
			writeTag(w, "Opening", o.Opening)
		}
		if o.Variation != "" {
			writeTag(w, "Variation", o.Variation)
		}
		if o.SubVariation != "" {
			writeTag(w, "SubVariation", o.SubVariation)
		}
	}
	writeTag(w, "PlyCount", strconv.Itoa(a.PlyCount()))
	if a.Game != nil {
		writeTag(w, "Ending", a.Ending.String())
		if cfg.IncludeFEN {
			writeTag(w, "FinalFEN", a.Game.FullFEN())
		}
		if cfg.IncludeHash {
			writeTag(w, "Hash", FormatHash(a.Game.Hash()))
		}
	}
	if claims := DrawClaims(a); len(claims) > 0 {
		writeTag(w, "DrawClaims", strings.Join(claims, ", "))
	}
	if r.Repeats > 0 {
		writeTag(w, "Repeats", strconv.Itoa(r.Repeats))
	}
	if len(r.Book) > 0 {
		writeTag(w, "Book", formatBook(r.Book, cfg.Notation))
	}
	if a.Err != nil {
		writeTag(w, "Error", a.Err.Error())
	}
}

func writeTag(w io.Writer, name, value string) {
	fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(value))
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// formatBook renders book entries as "e4 3, d4 2".
func formatBook(entries []book.Entry, notation config.Notation) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		mv := e.SAN
		if notation == config.UCI || mv == "" {
			mv = e.Move
		}
		parts[i] = fmt.Sprintf("%s %d", mv, e.Count)
	}
	return strings.Join(parts, ", ")
}

// FormatHash renders a position hash as fixed-width hex.
func FormatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

// outputMoves outputs the replayed moves followed by the result.
func outputMoves(a *processing.GameAnalysis, notation config.Notation, w io.Writer) {
	ow := NewOutputWriter(w, maxLineLength)

	moveNum := startMoveNumber(a.StartFEN)
	for i, p := range plies(a) {
		if p.Piece.Colour == chess.White {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}

		ow.Write(moveText(p, notation))

		if p.Piece.Colour == chess.Black {
			moveNum++
		}
	}

	ow.Write(Result(a))
	ow.NewLine()
}

// moveText formats a ply in the requested notation.
func moveText(p chess.Ply, notation config.Notation) string {
	if notation == config.UCI {
		return p.Move().String()
	}
	return p.SAN
}

// startMoveNumber returns the move number field of a full FEN, or 1.
func startMoveNumber(fen string) int {
	fields := strings.Fields(fen)
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n > 0 {
			return n
		}
	}
	return 1
}

func plies(a *processing.GameAnalysis) []chess.Ply {
	if a.Game == nil {
		return nil
	}
	return a.Game.Plies()
}

// Result returns the game result: the one given in the input, otherwise the
// one implied by the final position, or "*" for an unfinished replay.
func Result(a *processing.GameAnalysis) string {
	if a.Source != nil && a.Source.Result != "" {
		return a.Source.Result
	}
	if a.Game == nil || a.Err != nil {
		return "*"
	}
	return processing.ResultFor(a.Ending, a.Game.ToMove())
}
