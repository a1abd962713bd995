package matching

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

const (
	foolsMate      = "1. f3 e5 2. g4 Qh4# 0-1"
	ruyLopez       = "1. e4 e5 2. Nf3 Nc6 3. Bb5 a6"
	underpromotion = "1. e4 d5 2. exd5 c6 3. dxc6 Nf6 4. cxb7 Bd7 5. bxa8=N"
	broken         = "1. e4 e5 2. Ke3"
)

func analyze(t *testing.T, line string) *processing.GameAnalysis {
	t.Helper()
	game, err := parser.NewParser(strings.NewReader(line), "test").ParseGame()
	if err != nil || game == nil {
		t.Fatalf("parse %q: %v", line, err)
	}
	return processing.AnalyzeGame(game, engine.DefaultRules())
}

// constMatcher always returns a fixed result.
type constMatcher bool

func (c constMatcher) Match(*processing.GameAnalysis) bool { return bool(c) }
func (c constMatcher) Name() string {
	if c {
		return "true"
	}
	return "false"
}

func TestCompositeMatcher(t *testing.T) {
	game := analyze(t, ruyLopez)
	tests := []struct {
		name     string
		mode     MatchMode
		matchers []GameMatcher
		want     bool
	}{
		{"empty AND", MatchAll, nil, true},
		{"empty OR", MatchAny, nil, false},
		{"AND all true", MatchAll, []GameMatcher{constMatcher(true), constMatcher(true)}, true},
		{"AND one false", MatchAll, []GameMatcher{constMatcher(true), constMatcher(false)}, false},
		{"OR one true", MatchAny, []GameMatcher{constMatcher(false), constMatcher(true)}, true},
		{"OR all false", MatchAny, []GameMatcher{constMatcher(false), constMatcher(false)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCompositeMatcher(tt.mode, tt.matchers...)
			if got := c.Match(game); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompositeMatcher_Name(t *testing.T) {
	c := NewCompositeMatcher(MatchAny, constMatcher(true))
	c.Add(constMatcher(false))
	if got := c.Name(); got != "any(true, false)" {
		t.Errorf("Name() = %q", got)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	outer := NewCompositeMatcher(MatchAll, c, CompleteMatcher{})
	if got := outer.Name(); got != "all(any(true, false), CompleteMatcher)" {
		t.Errorf("nested Name() = %q", got)
	}
	if got := NewCompositeMatcher(MatchAll).Name(); got != "all()" {
		t.Errorf("empty Name() = %q", got)
	}
}

func TestNewGameFilter(t *testing.T) {
	games := map[string]*processing.GameAnalysis{
		"mate":   analyze(t, foolsMate),
		"ruy":    analyze(t, ruyLopez),
		"under":  analyze(t, underpromotion),
		"broken": analyze(t, broken),
	}

	tests := []struct {
		name   string
		modify func(*config.FilterConfig)
		want   map[string]bool
	}{
		{
			name:   "defaults keep everything",
			modify: func(*config.FilterConfig) {},
			want:   map[string]bool{"mate": true, "ruy": true, "under": true, "broken": true},
		},
		{
			name:   "checkmate only",
			modify: func(f *config.FilterConfig) { f.MatchCheckmate = true },
			want:   map[string]bool{"mate": true},
		},
		{
			name: "checkmate or underpromotion",
			modify: func(f *config.FilterConfig) {
				f.MatchCheckmate = true
				f.MatchUnderpromotion = true
			},
			want: map[string]bool{"mate": true, "under": true},
		},
		{
			name: "ply bounds",
			modify: func(f *config.FilterConfig) {
				f.CheckPlyBounds, f.MinPlies, f.MaxPlies = true, 5, 8
			},
			want: map[string]bool{"ruy": true},
		},
		{
			name:   "drop broken games",
			modify: func(f *config.FilterConfig) { f.KeepBrokenGames = false },
			want:   map[string]bool{"mate": true, "ruy": true, "under": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewFilterConfig()
			tt.modify(cfg)
			filter := NewGameFilter(cfg)
			for name, game := range games {
				if got := filter.Match(game); got != tt.want[name] {
					t.Errorf("%s: Match() = %v, want %v", name, got, tt.want[name])
				}
			}
		})
	}
}

func TestPositionMatcher(t *testing.T) {
	pm := NewPositionMatcher()
	// After 1. e4 e5 2. Nf3.
	if err := pm.AddFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2", "king's knight"); err != nil {
		t.Fatalf("AddFEN: %v", err)
	}
	if err := pm.AddFEN("not a fen", ""); err == nil {
		t.Error("AddFEN accepted garbage")
	}
	if pm.PatternCount() != 1 {
		t.Errorf("PatternCount() = %d", pm.PatternCount())
	}

	target := pm.MatchGame(analyze(t, ruyLopez))
	if target == nil || target.Label != "king's knight" {
		t.Errorf("MatchGame(ruy) = %+v", target)
	}
	if pm.Match(analyze(t, foolsMate)) {
		t.Error("fool's mate should not reach the position")
	}

	// Same pieces but a different side to move is a different position.
	other := NewPositionMatcher()
	if err := other.AddFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 1 2", ""); err != nil {
		t.Fatalf("AddFEN: %v", err)
	}
	if other.Match(analyze(t, ruyLopez)) {
		t.Error("side to move should be part of the position")
	}
}

func TestPositionMatcher_StartPosition(t *testing.T) {
	pm := NewPositionMatcher()
	if err := pm.AddFEN(engine.InitialFEN, "start"); err != nil {
		t.Fatalf("AddFEN: %v", err)
	}
	if !pm.Match(analyze(t, "e4")) {
		t.Error("the start position should match")
	}
}

func TestMaterialMatcher(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		pattern string
		exact   bool
		want    bool
	}{
		{"minimum met", "7k/8/8/8/8/8/8/R6K w - - 0 1 | Kg2", "R:", false, true},
		{"exact met", "7k/8/8/8/8/8/8/R6K w - - 0 1 | Kg2", "KR:k", true, true},
		{"minimum missed", "7k/8/8/8/8/8/8/R6K w - - 0 1 | Kg2", "Q:", false, false},
		{"exact with extras", "7k/8/8/8/8/8/8/R6K w - - 0 1 | Kg2", ":", true, false},
		{"black side", "7k/7p/8/8/8/8/8/R6K w - - 0 1 | Kg2", ":p", true, false},
		{"black side exact", "7k/7p/8/8/8/8/8/R6K w - - 0 1 | Kg2", "r:p", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mm, err := NewMaterialMatcher(tt.pattern, tt.exact)
			if err != nil {
				t.Fatalf("NewMaterialMatcher: %v", err)
			}
			if got := mm.Match(analyze(t, tt.line)); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}

	for _, bad := range []string{"QR", "QX:q", "Q:q:r"} {
		if _, err := NewMaterialMatcher(bad, false); err == nil {
			t.Errorf("NewMaterialMatcher(%q) accepted", bad)
		}
	}
}
