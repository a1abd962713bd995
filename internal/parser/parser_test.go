package parser

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// parseTestGame is a helper that parses one line and returns the game.
func parseTestGame(t *testing.T, input string) *Game {
	t.Helper()
	p := NewParser(strings.NewReader(input), "test")
	game, err := p.ParseGame()
	if err != nil {
		t.Fatalf("ParseGame error: %v", err)
	}
	if game == nil {
		t.Fatal("Expected game, got nil")
	}
	return game
}

func TestParseGame(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantFEN    string
		wantMoves  []string
		wantResult string
	}{
		{
			name:      "bare SAN",
			input:     "e4 e5 Nf3 Nc6",
			wantMoves: []string{"e4", "e5", "Nf3", "Nc6"},
		},
		{
			name:       "move numbers and result",
			input:      "1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 1-0",
			wantMoves:  []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"},
			wantResult: "1-0",
		},
		{
			name:       "attached move numbers",
			input:      "1.e4 1...e5 2.Nf3 *",
			wantMoves:  []string{"e4", "e5", "Nf3"},
			wantResult: "*",
		},
		{
			name:      "UCI moves",
			input:     "e2e4 e7e5 g1f3",
			wantMoves: []string{"e2e4", "e7e5", "g1f3"},
		},
		{
			name:       "comments and NAGs",
			input:      "1. e4 {Best by test} e5 $1 2. Nf3!? Nc6 ; rest ignored",
			wantMoves:  []string{"e4", "e5", "Nf3!?", "Nc6"},
			wantResult: "",
		},
		{
			name:       "castling with zeros",
			input:      "0-0 0-0-0+ O-O 1/2-1/2",
			wantMoves:  []string{"O-O", "O-O-O+", "O-O"},
			wantResult: "1/2-1/2",
		},
		{
			name:      "en passant marker",
			input:     "exd6 e.p.",
			wantMoves: []string{"exd6"},
		},
		{
			name:      "FEN prefix",
			input:     "8/4P2k/8/8/8/8/8/K7 w - - 0 1 | e8=Q",
			wantFEN:   "8/4P2k/8/8/8/8/8/K7 w - - 0 1",
			wantMoves: []string{"e8=Q"},
		},
		{
			name:       "FEN without moves",
			input:      "8/8/4k3/8/8/4K3/8/8 w - - 0 1 |",
			wantFEN:    "8/8/4k3/8/8/4K3/8/8 w - - 0 1",
			wantResult: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := parseTestGame(t, tt.input)
			if game.FEN != tt.wantFEN {
				t.Errorf("FEN = %q, want %q", game.FEN, tt.wantFEN)
			}
			if diff := cmp.Diff(tt.wantMoves, game.Moves); diff != "" {
				t.Errorf("Moves mismatch (-want +got):\n%s", diff)
			}
			if game.Result != tt.wantResult {
				t.Errorf("Result = %q, want %q", game.Result, tt.wantResult)
			}
		})
	}
}

func TestParseGame_Errors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantColumn int
	}{
		{"unterminated comment", "e4 {oops", 4},
		{"move after result", "e4 e5 1-0 Nf3", 11},
		{"second result", "e4 1-0 0-1", 8},
		{"stray character", "e4 @ e5", 4},
		{"junk after number", "12x e4", 1},
		{"empty FEN", " | e4", 1},
		{"column after FEN", "8/8/8/8/8/8/8/8 w - - | e4 &", 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(strings.NewReader(tt.input), "input.txt")
			_, err := p.ParseGame()
			if !stderrors.Is(err, errors.ErrParseFailure) {
				t.Fatalf("ParseGame() error = %v, want ErrParseFailure", err)
			}
			var perr *errors.ParseError
			if !stderrors.As(err, &perr) {
				t.Fatalf("error %T is not a ParseError", err)
			}
			if perr.File != "input.txt" || perr.Line != 1 {
				t.Errorf("location = %s:%d", perr.File, perr.Line)
			}
			if perr.Column != tt.wantColumn {
				t.Errorf("Column = %d, want %d", perr.Column, tt.wantColumn)
			}
		})
	}
}

func TestParseMultipleGames(t *testing.T) {
	input := `# opening lines
e4 e5 1-0

d4 d5 0-1
   # indented comment
c4 c5 1/2-1/2
`
	p := NewParser(strings.NewReader(input), "multi")
	games, err := p.ParseAllGames()
	if err != nil {
		t.Fatalf("ParseAllGames: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("got %d games, want 3", len(games))
	}

	wantLines := []int{2, 4, 6}
	wantResults := []string{"1-0", "0-1", "1/2-1/2"}
	for i, g := range games {
		if g.Index != i+1 {
			t.Errorf("game %d Index = %d", i, g.Index)
		}
		if g.Line != wantLines[i] {
			t.Errorf("game %d Line = %d, want %d", i, g.Line, wantLines[i])
		}
		if g.Result != wantResults[i] {
			t.Errorf("game %d Result = %q, want %q", i, g.Result, wantResults[i])
		}
	}

	game, err := p.ParseGame()
	if game != nil || err != nil {
		t.Errorf("ParseGame at EOF = %v, %v", game, err)
	}
}

func TestParseAllGames_StopsAtError(t *testing.T) {
	p := NewParser(strings.NewReader("e4\ne4 @\nd4\n"), "broken")
	games, err := p.ParseAllGames()
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(games) != 1 {
		t.Errorf("got %d games before the error, want 1", len(games))
	}

	// The parser resumes after the bad line.
	game, err := p.ParseGame()
	if err != nil || game == nil || game.Index != 3 {
		t.Errorf("ParseGame after error = %+v, %v", game, err)
	}
}

func TestTokenTypeString(t *testing.T) {
	if got := MoveToken.String(); got != "move" {
		t.Errorf("MoveToken.String() = %q", got)
	}
	if got := TokenType(99).String(); got != "TokenType(99)" {
		t.Errorf("TokenType(99).String() = %q", got)
	}
}
