// replay.go - Parallel replay and report output
package main

import (
	"github.com/lgbarn/chess-rules-go/internal/book"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/eco"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/matching"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// replayContext holds the state shared by every replayed game.
// Only the result-consumer goroutine touches writer and book.
type replayContext struct {
	cfg        *config.Config
	filter     matching.GameMatcher
	tally      *hashing.ThreadSafeTally
	book       *book.Store
	classifier *eco.ECOClassifier
	writer     output.GameWriter
}

// replayStats summarises a run.
type replayStats struct {
	total     int
	matched   int
	failed    int
	repeats   int  // games ending in a position an earlier game ended in
	positions int  // distinct final positions held by the tally
	tallyFull bool // the tally hit its capacity and stopped adding positions
}

func newReplayContext(cfg *config.Config, filter matching.GameMatcher) *replayContext {
	ctx := &replayContext{
		cfg:    cfg,
		filter: filter,
		writer: output.NewGameWriter(cfg.Output.OutputFile, cfg.Output),
	}
	if cfg.Tally.Enabled {
		ctx.tally = hashing.NewThreadSafeTally(cfg.Tally.MaxPositions)
	}
	return ctx
}

// replayGames replays games on the worker pool and writes the matching ones
// in input order.
func (ctx *replayContext) replayGames(games []*parser.Game) replayStats {
	var stats replayStats
	if len(games) == 0 {
		return stats
	}

	bufferSize := len(games)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(ctx.cfg.Workers, bufferSize,
		worker.NewReplayFunc(ctx.cfg.Rules.Engine(), ctx.filter))
	pool.Start()

	go func() {
		for i, game := range games {
			pool.Submit(worker.WorkItem{Game: game, Index: i})
		}
		pool.Close()
	}()

	ctx.cfg.Logf(2, "Replaying %d game(s) on %d worker(s)\n", len(games), pool.Workers())

	stats.total = worker.CollectOrdered(pool.Results(), 0, func(r worker.ProcessResult) {
		if pool.IsStopped() {
			return
		}
		if err := ctx.handleResult(r, &stats); err != nil {
			// Nothing more can be written, so the queued games are discarded.
			ctx.cfg.Logf(1, "Error writing game %d, stopping: %v\n", r.Game.Index, err)
			pool.Stop()
		}
	})

	if ctx.tally != nil {
		stats.repeats = ctx.tally.DuplicateCount()
		stats.positions = ctx.tally.UniqueCount()
		stats.tallyFull = ctx.tally.IsFull()
	}
	return stats
}

// handleResult records one replayed game and writes its report if it matched.
// Only a failure to write the report is returned.
func (ctx *replayContext) handleResult(r worker.ProcessResult, stats *replayStats) error {
	a := r.Analysis
	if r.Error != nil {
		stats.failed++
		ctx.cfg.Logf(1, "%v\n", r.Error)
	}

	report := &output.Report{Analysis: a}
	if ctx.classifier != nil {
		report.Opening = ctx.classifier.ClassifyGame(a)
	}

	if a.Game != nil {
		hash := a.Game.Hash()

		if ctx.tally != nil {
			ctx.tally.CheckAndAdd(hash)
			report.Repeats = ctx.tally.Count(hash) - 1
		}

		if ctx.book != nil {
			if ctx.cfg.Book.Record {
				if err := ctx.book.RecordLine(a.StartHash, a.Game.Plies(), ctx.cfg.Book.MaxPly); err != nil {
					ctx.cfg.Logf(1, "Error recording game %d in book: %v\n", r.Game.Index, err)
				}
			}
			if ctx.cfg.Book.Lookup {
				entries, err := ctx.book.Lookup(hash)
				if err != nil {
					ctx.cfg.Logf(1, "Error reading book for game %d: %v\n", r.Game.Index, err)
				}
				report.Book = entries
			}
		}
	}

	if !r.ShouldOutput {
		ctx.cfg.Logf(2, "%s:%d: game %d skipped (%s)\n", r.Game.File, r.Game.Line, r.Game.Index, a.Ending)
		return nil
	}

	stats.matched++
	return ctx.writer.WriteGame(report)
}
