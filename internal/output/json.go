package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/book"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// JSONGame represents a replayed game in JSON format.
type JSONGame struct {
	Game       int          `json:"game"`
	Source     string       `json:"source,omitempty"`
	Line       int          `json:"line,omitempty"`
	InitialFEN string       `json:"initialFEN,omitempty"`
	Moves      []JSONMove   `json:"moves,omitempty"`
	PlyCount   int          `json:"plyCount"`
	Result     string       `json:"result"`
	ECO        string       `json:"eco,omitempty"`
	Opening    string       `json:"opening,omitempty"`
	Variation  string       `json:"variation,omitempty"`
	Ending     string       `json:"ending,omitempty"`
	DrawClaims []string     `json:"drawClaims,omitempty"`
	Checks     int          `json:"checks,omitempty"`
	Captures   int          `json:"captures,omitempty"`
	FinalFEN   string       `json:"finalFEN,omitempty"`
	Hash       string       `json:"hash,omitempty"`
	Repeats    int          `json:"repeats,omitempty"`
	Book       []book.Entry `json:"book,omitempty"`
	Error      string       `json:"error,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	Result     string `json:"result,omitempty"` // move class, e.g. "castle-king"
	Captured   bool   `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGamesJSON outputs multiple reports as a JSON array.
func OutputGamesJSON(reports []*Report, cfg *config.OutputConfig, w io.Writer) error {
	jsonGames := make([]*JSONGame, len(reports))
	for i, r := range reports {
		jsonGames[i] = ReportToJSON(r, cfg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Games: jsonGames})
}

// ReportToJSON converts a report to JSON format.
func ReportToJSON(r *Report, cfg *config.OutputConfig) *JSONGame {
	a := r.Analysis
	jg := &JSONGame{
		Game:       a.Source.Index,
		Source:     a.Source.File,
		Line:       a.Source.Line,
		InitialFEN: a.StartFEN,
		PlyCount:   a.PlyCount(),
		Result:     Result(a),
		DrawClaims: DrawClaims(a),
		Checks:     a.Checks,
		Captures:   a.Captures,
		Repeats:    r.Repeats,
		Book:       r.Book,
	}

	if o := r.Opening; o != nil {
		jg.ECO = o.ECOCode
		jg.Opening = o.Opening
		jg.Variation = o.Variation
	}
	if a.Game != nil {
		jg.Ending = a.Ending.String()
		if cfg.IncludeFEN {
			jg.FinalFEN = a.Game.FullFEN()
		}
		if cfg.IncludeHash {
			jg.Hash = FormatHash(a.Game.Hash())
		}
	}
	if cfg.IncludeMoves {
		jg.Moves = convertPlies(plies(a), startMoveNumber(a.StartFEN))
	}
	if a.Err != nil {
		jg.Error = a.Err.Error()
	}
	return jg
}

// convertPlies converts the ply list to JSON moves.
func convertPlies(list []chess.Ply, moveNum int) []JSONMove {
	if len(list) == 0 {
		return nil
	}
	result := make([]JSONMove, 0, len(list))
	for _, p := range list {
		jm := JSONMove{
			Color:    colorName(p.Piece.Colour),
			SAN:      p.SAN,
			UCI:      p.Move().String(),
			Captured: p.Captured != nil,
		}
		if p.Piece.Colour == chess.White {
			jm.MoveNumber = moveNum
		} else {
			moveNum++
		}
		if p.Result.IsCastle() || p.Result.IsEnPassant() {
			jm.Result = p.Result.String()
		}
		if p.Promotion != chess.NoKind {
			jm.Promotion = pieceTypeName(p.Promotion)
		}
		result = append(result, jm)
	}
	return result
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(k chess.Kind) string {
	return strings.ToLower(k.String())
}
