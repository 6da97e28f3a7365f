// Package core provides the fundamental in-memory road-network model.
//
// Overview:
//
//   - A Network maps each location label to the ordered list of Hops
//     (neighbor label + road cost) reachable directly from it.
//   - Connections are bidirectional: AddConnection(a, b, c) records a
//     traversable hop a→b and its mirror b→a, each with cost c.
//   - Input order is preserved within every neighbor list, and duplicate
//     connections simply append duplicate hops; the Network performs no
//     deduplication and no cycle detection.
//
// Concurrency model:
//
//   - Build once, then read. A Network is mutated only while it is being
//     constructed (by the mapfile loader or by hand) and is read-only
//     afterwards. Under that discipline any number of goroutines may query
//     the same Network concurrently without locks.
//
// Errors (sentinel):
//
//   - ErrEmptyLocation  if a connection endpoint label is the empty string.
//   - ErrNegativeCost   if a connection cost is negative.
//   - ErrLocationNotFound if a neighbor lookup references an unknown location.
//
// Complexity:
//
//   - AddConnection: O(1) amortized per connection.
//   - Neighbors:     O(d) where d is the degree of the location (copy).
//   - Locations:     O(V log V) for the sorted label slice.
package core
