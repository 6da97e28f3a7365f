// Package route is the query driver: it validates a start and a destination
// against a loaded network, runs a shortest-distance search, and reports a
// verdict.
//
// Verdicts:
//
//   - A found route: Result.Reachable == true, Distance holds the minimum
//     cumulative cost, Via holds the route itself (endpoints included).
//   - Unreachable: both labels exist but no roads connect them. This is a
//     normal negative result (Reachable == false), not an error.
//   - ErrUnknownLocation: a queried label is not on the map at all. Both
//     labels are checked independently, and every missing label contributes
//     its own wrapped error (joined), so a caller sees all failures at once.
//
// Query never mutates the network; each invocation owns a fresh distance
// table. Batch exploits exactly that: independent queries run concurrently
// on a worker pool against the same read-only network.
package route
