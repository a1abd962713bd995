package worker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/matching"
	"github.com/lgbarn/chess-rules-go/internal/parser"
)

const replayInput = `1. f3 e5 2. g4 Qh4# 0-1
1. e4 e5 2. Nf3 Nc6
1. e4 e5 2. Ke3
7k/5Q2/6K1/8/8/8/8/8 b - - 0 1 |
1. d4 d5
`

func TestNewReplayFunc(t *testing.T) {
	games, err := parser.NewParser(strings.NewReader(replayInput), "replay").ParseAllGames()
	if err != nil {
		t.Fatalf("ParseAllGames: %v", err)
	}

	filterCfg := config.NewFilterConfig()
	filterCfg.MatchCheckmate = true
	filterCfg.MatchStalemate = true
	process := NewReplayFunc(engine.DefaultRules(), matching.NewGameFilter(filterCfg))

	pool := NewPool(3, len(games), process)
	pool.Start()
	for i, g := range games {
		pool.Submit(WorkItem{Game: g, Index: i})
	}
	go pool.Close()

	var endings []string
	var matched []bool
	var failed []int
	n := CollectOrdered(pool.Results(), 0, func(r ProcessResult) {
		endings = append(endings, r.Analysis.Ending.String())
		matched = append(matched, r.ShouldOutput)
		if r.Error != nil {
			failed = append(failed, r.Index)
		}
	})

	if n != len(games) {
		t.Fatalf("emitted %d results, want %d", n, len(games))
	}
	wantEndings := []string{"checkmate", "ongoing", "ongoing", "stalemate", "ongoing"}
	if diff := cmp.Diff(wantEndings, endings); diff != "" {
		t.Errorf("endings mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]bool{true, false, false, true, false}, matched); diff != "" {
		t.Errorf("matched mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2}, failed); diff != "" {
		t.Errorf("failed mismatch (-want +got):\n%s", diff)
	}
}

func TestNewReplayFunc_NilFilter(t *testing.T) {
	process := NewReplayFunc(engine.DefaultRules(), nil)
	r := process(WorkItem{Game: &parser.Game{Index: 1, Moves: []string{"e4"}}, Index: 4})
	if !r.ShouldOutput || r.Index != 4 || r.Error != nil {
		t.Errorf("result = %+v", r)
	}
}

func TestCollectOrdered(t *testing.T) {
	results := make(chan ProcessResult, 10)
	for _, i := range []int{3, 1, 0, 4, 2} {
		results <- ProcessResult{Index: i}
	}
	close(results)

	var order []int
	n := CollectOrdered(results, 0, func(r ProcessResult) { order = append(order, r.Index) })
	if n != 5 {
		t.Errorf("count = %d, want 5", n)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectOrdered_Gaps(t *testing.T) {
	results := make(chan ProcessResult, 10)
	for _, i := range []int{5, 1, 3, 2} {
		results <- ProcessResult{Index: i}
	}
	close(results)

	var order []string
	CollectOrdered(results, 1, func(r ProcessResult) { order = append(order, fmt.Sprint(r.Index)) })
	if got := strings.Join(order, ","); got != "1,2,3,5" {
		t.Errorf("order = %s, want 1,2,3,5", got)
	}
}
