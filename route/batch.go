// This file implements Batch: concurrent execution of independent queries
// on an ants goroutine pool. The network is read-only after build, so any
// number of queries may share it without synchronization; every query owns
// its private distance table.
package route

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/search"
)

// Pair names one start/destination query of a batch.
type Pair struct {
	From string
	To   string
}

// BatchResult pairs one query with its verdict. Err carries that query's own
// failure (for example an unknown label) without affecting its siblings.
type BatchResult struct {
	Pair
	Result Result
	Err    error
}

// BatchOptions configures Batch execution.
type BatchOptions struct {
	// Workers is the goroutine pool size. Defaults to runtime.NumCPU().
	Workers int

	// SearchOptions are forwarded to every underlying Query.
	SearchOptions []search.Option
}

// BatchOption is a functional option for configuring Batch.
type BatchOption func(*BatchOptions)

// WithWorkers sets the goroutine pool size; values < 1 keep the default.
func WithWorkers(n int) BatchOption {
	return func(o *BatchOptions) {
		if n >= 1 {
			o.Workers = n
		}
	}
}

// WithSearchOptions forwards search options (strategy, distance cap) to
// every query of the batch.
func WithSearchOptions(opts ...search.Option) BatchOption {
	return func(o *BatchOptions) {
		o.SearchOptions = opts
	}
}

// Batch runs every pair as an independent Query on a shared worker pool and
// returns the results in input order. Per-query failures land in the
// corresponding BatchResult.Err; the returned error reports only pool-level
// failures (creation or task submission).
func Batch(net *core.Network, pairs []Pair, opts ...BatchOption) ([]BatchResult, error) {
	cfg := BatchOptions{Workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&cfg)
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("route: create pool: %w", err)
	}
	defer pool.Release()

	results := make([]BatchResult, len(pairs))

	var wg sync.WaitGroup
	for i, p := range pairs {
		i, p := i, p // per-iteration copies: required while the go directive is below 1.22
		results[i].Pair = p

		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()
			results[i].Result, results[i].Err = Query(net, p.From, p.To, cfg.SearchOptions...)
		}); err != nil {
			wg.Done()
			wg.Wait()

			return nil, fmt.Errorf("route: submit query %s→%s: %w", p.From, p.To, err)
		}
	}
	wg.Wait()

	return results, nil
}
