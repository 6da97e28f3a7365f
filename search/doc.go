// Package search computes single-source shortest distances over a road
// network with non-negative connection costs.
//
// Overview:
//
//   - Shortest populates a Table mapping every location reachable from the
//     source to the minimum cumulative cost of getting there.
//   - The traversal is an explicit, iterative relaxation work list — never
//     call-stack recursion — so arbitrarily large or adversarial networks
//     cannot exhaust the stack. A location is reprocessed only when a
//     strictly better distance to it is discovered.
//   - Two interchangeable strategies produce identical Tables:
//     StrategyHeap  (default) processes locations in increasing distance
//     order via a min-heap with lazy decrease-key (Dijkstra);
//     StrategyQueue relaxes from a FIFO work list (Bellman–Ford style).
//
// Key features:
//
//   - Functional options tune behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a predecessor map for rebuilding routes.
//   - MaxDistance: aborts exploration beyond a given cumulative cost.
//   - OnImprove hook: observe every Table write (useful for diagnostics;
//     each write either inserts an entry or strictly lowers it).
//
// Performance and complexity:
//
//   - StrategyHeap:  Time O((V + E) log V), Space O(V + E).
//   - StrategyQueue: Time O(V · E) worst case, Space O(V); in practice far
//     better on sparse road networks.
//
// Error handling (sentinel):
//
//   - ErrEmptySource    the Source option was never set.
//   - ErrNilNetwork     a nil *core.Network was passed.
//   - ErrSourceNotFound the source location is not on the map.
//   - ErrBadMaxDistance WithMaxDistance was given a negative value (panic).
package search
