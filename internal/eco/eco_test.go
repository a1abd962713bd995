package eco

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

const testECOData = `
# code opening variation moves
B90 "Sicilian" "Najdorf" 1. e4 c5 2. Nf3 d6 3. d4 cxd4 4. Nxd4 Nf6 5. Nc3 a6
C50 "Giuoco Piano" e4 e5 Nf3 Nc6 Bc4 Bc5
D35 "QGD" "exchange variation" d4 d5 c4 e6 Nc3 Nf6 cxd5 exd5
`

func newTestClassifier(t *testing.T) *ECOClassifier {
	t.Helper()
	ec := NewECOClassifier()
	if err := ec.LoadFromReader(strings.NewReader(testECOData)); err != nil {
		t.Fatalf("failed to load ECO data: %v", err)
	}
	return ec
}

func analyze(t *testing.T, line string) *processing.GameAnalysis {
	t.Helper()
	a := processing.AnalyzeGame(&parser.Game{Moves: strings.Fields(line)}, engine.DefaultRules())
	if a.Err != nil {
		t.Fatalf("replaying %q: %v", line, a.Err)
	}
	return a
}

func TestECOClassifierLoad(t *testing.T) {
	ec := newTestClassifier(t)

	if got := ec.EntriesLoaded(); got != 3 {
		t.Errorf("EntriesLoaded() = %d; want 3", got)
	}
}

func TestECOClassify(t *testing.T) {
	ec := newTestClassifier(t)

	tests := []struct {
		name      string
		moves     string
		code      string
		opening   string
		variation string
	}{
		{"sicilian", "e4 c5 Nf3 d6 d4 cxd4 Nxd4 Nf6 Nc3 a6", "B90", "Sicilian", "Najdorf"},
		{"italian", "e4 e5 Nf3 Nc6 Bc4 Bc5", "C50", "Giuoco Piano", ""},
		{"extended sicilian", "e4 c5 Nf3 d6 d4 cxd4 Nxd4 Nf6 Nc3 a6 Be2 e5 Nb3", "B90", "Sicilian", "Najdorf"},
		{"transposed italian", "Nf3 Nc6 e4 e5 Bc4 Bc5", "C50", "Giuoco Piano", ""},
		{"uci moves", "d2d4 d7d5 c2c4 e7e6 b1c3 g8f6 c4d5 e6d5", "D35", "QGD", "exchange variation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := ec.ClassifyGame(analyze(t, tt.moves))
			if match == nil {
				t.Fatal("ClassifyGame() returned nil; want match")
			}
			if match.ECOCode != tt.code {
				t.Errorf("ECOCode = %q; want %q", match.ECOCode, tt.code)
			}
			if match.Opening != tt.opening {
				t.Errorf("Opening = %q; want %q", match.Opening, tt.opening)
			}
			if match.Variation != tt.variation {
				t.Errorf("Variation = %q; want %q", match.Variation, tt.variation)
			}
		})
	}
}

func TestECONoMatch(t *testing.T) {
	ec := newTestClassifier(t)

	if match := ec.ClassifyGame(analyze(t, "a3")); match != nil {
		t.Errorf("ClassifyGame() = %q; want nil", match.ECOCode)
	}
}

func TestECOBrokenGame(t *testing.T) {
	ec := newTestClassifier(t)
	a := processing.AnalyzeGame(&parser.Game{FEN: "bad fen"}, engine.DefaultRules())

	if match := ec.ClassifyGame(a); match != nil {
		t.Errorf("ClassifyGame() = %q; want nil", match.ECOCode)
	}
}

func TestECOLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unterminated name", `B20 "Sicilian e4 c5`},
		{"bad movetext", `B20 "Sicilian" e4 c5 &`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ec := NewECOClassifier()
			if err := ec.LoadFromReader(strings.NewReader(tt.data)); err == nil {
				t.Error("LoadFromReader() expected error")
			}
		})
	}
}

func TestECOSkipsUnusableEntries(t *testing.T) {
	data := `A00 "No moves"
A01 "Illegal" e5
A02 "Duplicate" e4
A02 "Duplicate" e4
`
	ec := NewECOClassifier()
	if err := ec.LoadFromReader(strings.NewReader(data)); err != nil {
		t.Fatal(err)
	}
	if got := ec.EntriesLoaded(); got != 1 {
		t.Errorf("EntriesLoaded() = %d; want 1", got)
	}
}

func TestECOLoadFromFile(t *testing.T) {
	ec := NewECOClassifier()
	if err := ec.LoadFromFile("/nonexistent/eco.txt"); err == nil {
		t.Error("LoadFromFile() expected error for missing file")
	}
}
