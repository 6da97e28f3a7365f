// This file implements Shortest, the entry point shared by both strategies,
// and the heap-based (Dijkstra) relaxation runner.
package search

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/wayfind/core"
)

// Shortest computes minimum cumulative costs from the source location
// (Options.Source) to every location reachable in net, and returns them as
// a fresh Table. It accepts functional options to customize behavior
// (ReturnPath, MaxDistance, Strategy, OnImprove).
//
// Returns:
//
//   - dist: Table with one entry per reached location (absent = unreachable).
//     dist[source] == 0 always.
//   - prev: predecessor map if ReturnPath is set (nil otherwise).
//     prev[v] == u means the best route to v arrives from u; the source
//     itself has no entry.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. net must be non-nil (ErrNilNetwork).
//  3. net must contain Source (ErrSourceNotFound).
//
// Non-negative costs are guaranteed by core.Network construction, so no
// pre-scan is needed here.
//
// Invariants on the returned Table:
//
//   - Each entry was written one or more times during the run, and every
//     rewrite strictly lowered it (observable via WithOnImprove).
//   - On completion each entry equals the true minimum total cost of any
//     route from the source.
//
// Complexity: O((V + E) log V) for StrategyHeap; O(V · E) worst case for
// StrategyQueue.
func Shortest(net *core.Network, opts ...Option) (Table, map[string]string, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided.
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}

	// 3) Validate network is non-nil.
	if net == nil {
		return nil, nil, ErrNilNetwork
	}

	// 4) Validate Source exists on the map.
	if !net.Has(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrSourceNotFound, cfg.Source)
	}

	// 5) Prepare per-run state: a fresh Table and (optionally) a prev map.
	//    Both are private to this invocation and never shared.
	r := &runner{
		net:  net,
		opts: cfg,
		dist: make(Table, net.Order()),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, net.Order())
	}

	// 6) The source is reached at cumulative cost zero.
	r.record(cfg.Source, 0)

	// 7) Run the selected work-list discipline.
	var err error
	switch cfg.Strategy {
	case StrategyQueue:
		err = r.processQueue()
	default:
		err = r.processHeap()
	}
	if err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Shortest execution.
type runner struct {
	net  *core.Network     // the input network; read-only within Shortest
	opts Options           // configuration (Source, cap, strategy, hook)
	dist Table             // location → current best distance from Source
	prev map[string]string // location → predecessor on the best route (optional)
}

// record writes a new best distance for location, firing the OnImprove hook.
// Callers must ensure next is strictly lower than the current entry (or that
// no entry exists yet).
func (r *runner) record(location string, next float64) {
	if r.opts.OnImprove != nil {
		old, seen := r.dist[location]
		if !seen {
			old = math.Inf(1)
		}
		r.opts.OnImprove(location, old, next)
	}
	r.dist[location] = next
}

// processHeap is the Dijkstra loop: repeatedly extract the location with the
// minimum distance from the source and relax its outgoing hops.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable locations processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//
// Uses the lazy-decrease-key pattern: improved distances push duplicate heap
// entries, and stale entries are skipped when popped (via the visited set).
func (r *runner) processHeap() error {
	V := r.net.Order()

	// visited marks locations whose shortest distance is finalized.
	visited := make(map[string]bool, V)

	pq := make(hopPQ, 0, V)
	heap.Init(&pq)
	heap.Push(&pq, &hopItem{location: r.opts.Source, dist: 0})

	var u string
	var d float64
	for pq.Len() > 0 {
		// 1) Pop the smallest-distance item.
		item := heap.Pop(&pq).(*hopItem)
		u = item.location
		d = item.dist

		// 2) Skip stale entries for already-finalized locations.
		if visited[u] {
			continue
		}

		// 3) Beyond the cap nothing closer remains in the heap; stop.
		if d > r.opts.MaxDistance {
			break
		}

		// 4) Finalize u and relax its hops.
		visited[u] = true
		if err := r.relax(u, func(to string, nd float64) {
			heap.Push(&pq, &hopItem{location: to, dist: nd})
		}); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each hop out of u and attempts to improve the distance to
// its neighbor. Improved neighbors are handed to enqueue for reprocessing.
// Equal-cost rediscovery cannot change the Table, so only strict improvement
// triggers a write and a re-enqueue.
func (r *runner) relax(u string, enqueue func(to string, nd float64)) error {
	// Missing u here means the network lost a location after build, which
	// AddConnection's both-endpoints guarantee rules out.
	hops, err := r.net.Neighbors(u)
	if err != nil {
		return fmt.Errorf("search: neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	var nd float64
	for _, hop := range hops {
		// Candidate distance source → … → u → hop.To.
		nd = du + hop.Cost

		if nd > r.opts.MaxDistance {
			continue
		}

		// Only strict improvement changes anything; equal-cost rediscovery
		// is skipped.
		if cur, seen := r.dist[hop.To]; seen && nd >= cur {
			continue
		}

		r.record(hop.To, nd)
		if r.prev != nil {
			r.prev[hop.To] = u
		}
		enqueue(hop.To, nd)
	}

	return nil
}

// hopItem represents a location and its tentative distance from the source,
// as stored in the priority queue.
type hopItem struct {
	location string
	dist     float64
}

// hopPQ is a min-heap of *hopItem ordered by dist ascending. Stale duplicate
// entries are tolerated (lazy decrease-key) and filtered by the visited set.
type hopPQ []*hopItem

// Len returns the number of items in the heap.
func (pq hopPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq hopPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq hopPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *hopItem.
func (pq *hopPQ) Push(x interface{}) { *pq = append(*pq, x.(*hopItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *hopPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
