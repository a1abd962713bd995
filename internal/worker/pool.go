// Package worker replays parsed games in parallel.
//
// Each game is confined to the goroutine that replays it. Workers share
// nothing but the channels, so results arrive in completion order and
// CollectOrdered restores input order.
package worker

import (
	"sync"
	"sync/atomic"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/matching"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// WorkItem is one game queued for replay. Index is its position in the input.
type WorkItem struct {
	Game  *parser.Game
	Index int
}

// ProcessResult is the outcome of replaying one WorkItem.
type ProcessResult struct {
	Game         *parser.Game
	Index        int
	Analysis     *processing.GameAnalysis
	ShouldOutput bool // accepted by the filter
	Error        error
}

// ProcessFunc replays a single item. It runs on a worker goroutine.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed number of replay goroutines fed from a buffered queue.
type Pool struct {
	workers int
	queue   chan WorkItem
	results chan ProcessResult
	process ProcessFunc
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// NewPool creates a pool of workers goroutines with queues holding up to
// buffer items. Values below one are raised to one.
func NewPool(workers, buffer int, process ProcessFunc) *Pool {
	workers = max(workers, 1)
	buffer = max(buffer, 1)
	return &Pool{
		workers: workers,
		queue:   make(chan WorkItem, buffer),
		results: make(chan ProcessResult, buffer),
		process: process,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.queue {
		// After Stop the queue is drained so Submit never blocks forever.
		if p.stopped.Load() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues an item, blocking while the queue is full.
func (p *Pool) Submit(item WorkItem) {
	p.queue <- item
}

// Stop makes the workers discard the items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished replays.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// NewReplayFunc returns a ProcessFunc that replays each game under rules and
// marks the games accepted by filter for output. A nil filter accepts all.
func NewReplayFunc(rules engine.Rules, filter matching.GameMatcher) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		analysis := processing.AnalyzeGame(item.Game, rules)
		return ProcessResult{
			Game:         item.Game,
			Index:        item.Index,
			Analysis:     analysis,
			ShouldOutput: filter == nil || filter.Match(analysis),
			Error:        analysis.Err,
		}
	}
}

// CollectOrdered reads results until the channel closes and passes them to
// emit in index order, starting at first. Results that arrive early are held
// until the gap before them fills; whatever is still held when the channel
// closes, because Stop skipped an item, is emitted in order at the end.
// It returns the number of results emitted.
func CollectOrdered(results <-chan ProcessResult, first int, emit func(ProcessResult)) int {
	pending := make(map[int]ProcessResult)
	next := first
	count := 0
	for r := range results {
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			emit(ready)
			next++
			count++
		}
	}

	rest := maps.Keys(pending)
	slices.Sort(rest)
	for _, i := range rest {
		emit(pending[i])
		count++
	}
	return count
}
