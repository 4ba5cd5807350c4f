// Package perft counts the leaf nodes of the legal action tree. It is the
// standard correctness check for action generation and make/unmake.
package perft

import (
	"context"
	"runtime"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/hailam/shogiplay/internal/board"
)

// Result is the node count below one root action.
type Result struct {
	Action board.Action
	Nodes  uint64
}

// Options configures a Runner.
type Options struct {
	// Workers bounds the goroutines of a parallel split. Values below 1
	// mean GOMAXPROCS.
	Workers int

	// CacheEntries sizes the transposition cache. 0 disables it.
	CacheEntries int64

	Logger logr.Logger
}

// DefaultOptions returns the options used by the protocol binary.
func DefaultOptions() Options {
	return Options{
		Workers:      runtime.GOMAXPROCS(0),
		CacheEntries: 1 << 20,
		Logger:       logr.Discard(),
	}
}

// Runner runs perft with an optional shared cache.
// A Runner is safe for concurrent use; the boards passed to it are not.
type Runner struct {
	opts  Options
	cache *Cache
}

// NewRunner creates a Runner. The cache is built when CacheEntries > 0.
func NewRunner(opts Options) (*Runner, error) {
	if opts.Workers < 1 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Logger.GetSink() == nil {
		opts.Logger = logr.Discard()
	}

	r := &Runner{opts: opts}
	if opts.CacheEntries > 0 {
		cache, err := NewCache(opts.CacheEntries)
		if err != nil {
			return nil, err
		}
		r.cache = cache
	}
	return r, nil
}

// Close releases the cache.
func (r *Runner) Close() {
	r.cache.Close()
}

// Count returns the number of leaf nodes at depth below the current position.
func Count(b *board.Board, depth int) uint64 {
	return count(context.Background(), b, depth, nil)
}

// Split returns the node count below every legal root action, in generation order.
func Split(b *board.Board, depth int) []Result {
	results, _ := split(context.Background(), b, depth, nil)
	return results
}

// Parallel is Split with one cloned board per root action, run on at most
// workers goroutines. The board passed in is not modified.
func Parallel(ctx context.Context, b *board.Board, depth, workers int) ([]Result, error) {
	return parallel(ctx, b, depth, workers, nil)
}

// Count is the cached form of the package-level Count.
func (r *Runner) Count(ctx context.Context, b *board.Board, depth int) (uint64, error) {
	start := time.Now()
	nodes := count(ctx, b, depth, r.cache)
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.opts.Logger.V(1).Info("perft", "depth", depth, "nodes", nodes, "elapsed", time.Since(start))
	return nodes, nil
}

// Split runs a parallel split with the configured workers and cache.
func (r *Runner) Split(ctx context.Context, b *board.Board, depth int) ([]Result, error) {
	start := time.Now()
	results, err := parallel(ctx, b, depth, r.opts.Workers, r.cache)
	if err != nil {
		return nil, err
	}
	r.opts.Logger.V(1).Info("split perft", "depth", depth, "actions", len(results), "elapsed", time.Since(start))
	return results, nil
}

// Sum adds up the node counts of a split.
func Sum(results []Result) uint64 {
	var nodes uint64
	for _, res := range results {
		nodes += res.Nodes
	}
	return nodes
}

func count(ctx context.Context, b *board.Board, depth int, cache *Cache) uint64 {
	if depth == 0 {
		return 1
	}
	// Cancellation is polled away from the leaves only.
	if depth >= 3 && ctx.Err() != nil {
		return 0
	}

	key := b.Position().Key()
	if depth >= 2 {
		if nodes, ok := cache.get(key, depth); ok {
			return nodes
		}
	}

	var actions board.ActionList
	b.GenerateActions(&actions)

	var nodes uint64
	for _, a := range actions.Slice() {
		if !b.PerformAction(a) {
			continue
		}
		if depth == 1 {
			nodes++
		} else {
			nodes += count(ctx, b, depth-1, cache)
		}
		b.UndoAction()
	}

	// After cancellation a subtree may have returned 0, so the sum is partial.
	if depth >= 2 && ctx.Err() == nil {
		cache.put(key, depth, nodes)
	}
	return nodes
}

func split(ctx context.Context, b *board.Board, depth int, cache *Cache) ([]Result, error) {
	if depth < 1 {
		return nil, nil
	}

	var actions board.ActionList
	b.GenerateActions(&actions)

	results := make([]Result, 0, actions.Len())
	for _, a := range actions.Slice() {
		if !b.PerformAction(a) {
			continue
		}
		nodes := count(ctx, b, depth-1, cache)
		b.UndoAction()
		results = append(results, Result{Action: a, Nodes: nodes})
	}
	return results, ctx.Err()
}

func parallel(ctx context.Context, b *board.Board, depth, workers int, cache *Cache) ([]Result, error) {
	if depth < 1 {
		return nil, nil
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	var actions board.ActionList
	b.GenerateActions(&actions)

	// slots keeps generation order; illegal actions leave theirs unused.
	type slot struct {
		Result
		legal bool
	}
	slots := make([]slot, actions.Len())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, a := range actions.Slice() {
		child := b.Clone()
		g.Go(func() error {
			if !child.PerformAction(a) {
				return nil
			}
			nodes := count(ctx, child, depth-1, cache)
			if err := ctx.Err(); err != nil {
				return err
			}
			slots[i] = slot{Result{Action: a, Nodes: nodes}, true}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(slots))
	for _, s := range slots {
		if s.legal {
			results = append(results, s.Result)
		}
	}
	return results, nil
}
