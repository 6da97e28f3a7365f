// Package search_test contains unit tests for the Shortest implementation.
// These tests validate error handling, correctness of the computed distance
// table under both work-list strategies, the monotonic improvement
// invariant, MaxDistance, and edge cases such as disconnected networks.
package search_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/search"
)

// strategies under test; every correctness test runs against both.
var strategies = map[string]search.Strategy{
	"heap":  search.StrategyHeap,
	"queue": search.StrategyQueue,
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortest_EmptySource(t *testing.T) {
	// When no Source is provided (empty by default), Shortest must return
	// ErrEmptySource before looking at the network.
	n := core.NewNetwork()
	_, _, err := search.Shortest(n)
	if !errors.Is(err, search.ErrEmptySource) {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestShortest_NilNetworkWithoutSource(t *testing.T) {
	// ErrEmptySource has priority over ErrNilNetwork.
	_, _, err := search.Shortest(nil)
	if !errors.Is(err, search.ErrEmptySource) {
		t.Fatalf("Expected ErrEmptySource when network is nil and Source is empty, got %v", err)
	}
}

func TestShortest_NilNetworkWithSource(t *testing.T) {
	_, _, err := search.Shortest(nil, search.Source("X"))
	if !errors.Is(err, search.ErrNilNetwork) {
		t.Fatalf("Expected ErrNilNetwork, got %v", err)
	}
}

func TestShortest_SourceNotFound(t *testing.T) {
	n := core.NewNetwork()
	_ = n.AddConnection("A", "B", 1)
	_, _, err := search.Shortest(n, search.Source("X"))
	if !errors.Is(err, search.ErrSourceNotFound) {
		t.Fatalf("Expected ErrSourceNotFound, got %v", err)
	}
}

func TestWithMaxDistance_NegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic for negative MaxDistance")
		}
	}()
	search.WithMaxDistance(-1)(&search.Options{})
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: the triangle scenario, with and without prev map.
// ------------------------------------------------------------------------

func TestShortest_Triangle(t *testing.T) {
	// Network: A—B(5), B—C(3), A—C(10). Best A→C is 8 via B, not the
	// direct 10 road.
	for name, strat := range strategies {
		t.Run(name, func(t *testing.T) {
			n := triangle()
			dist, prev, err := search.Shortest(n, search.Source("A"), search.WithStrategy(strat))
			if err != nil {
				t.Fatal(err)
			}

			if got, want := dist["C"], 8.0; got != want {
				t.Errorf("dist[C] = %g; want %g", got, want)
			}
			// Self-distance is always zero.
			if dist["A"] != 0 {
				t.Errorf("dist[A] = %g; want 0", dist["A"])
			}
			// prev must be nil when ReturnPath was not requested.
			if prev != nil {
				t.Errorf("expected nil predecessor map, got %v", prev)
			}
		})
	}
}

func TestShortest_Triangle_WithPath(t *testing.T) {
	for name, strat := range strategies {
		t.Run(name, func(t *testing.T) {
			n := triangle()
			dist, prev, err := search.Shortest(n,
				search.Source("A"),
				search.WithReturnPath(),
				search.WithStrategy(strat),
			)
			if err != nil {
				t.Fatal(err)
			}

			if dist["A"] != 0 || dist["B"] != 5 || dist["C"] != 8 {
				t.Errorf("Unexpected distances: %v", dist)
			}

			// Predecessor chain: B←A, C←B. The source has no entry.
			if prev["B"] != "A" {
				t.Errorf("prev[B] = %q; want %q", prev["B"], "A")
			}
			if prev["C"] != "B" {
				t.Errorf("prev[C] = %q; want %q", prev["C"], "B")
			}
			if _, ok := prev["A"]; ok {
				t.Errorf("source must have no predecessor entry, got %q", prev["A"])
			}
		})
	}
}

// ------------------------------------------------------------------------
// 3. Optimality: both strategies agree with hand-computed distances on a
//    denser network, including fractional costs and a duplicate road.
// ------------------------------------------------------------------------

func TestShortest_Optimality(t *testing.T) {
	build := func() *core.Network {
		n := core.NewNetwork()
		_ = n.AddConnection("A", "B", 2)
		_ = n.AddConnection("A", "C", 9)
		_ = n.AddConnection("B", "C", 6.5)
		_ = n.AddConnection("B", "D", 3)
		_ = n.AddConnection("C", "D", 1)
		_ = n.AddConnection("C", "E", 0.5)
		_ = n.AddConnection("D", "E", 7)
		_ = n.AddConnection("A", "B", 4) // duplicate pair, worse cost
		return n
	}
	want := map[string]float64{
		"A": 0,
		"B": 2,   // A→B
		"C": 6,   // A→B→D→C
		"D": 5,   // A→B→D
		"E": 6.5, // A→B→D→C→E
	}

	results := make(map[string]search.Table, len(strategies))
	for name, strat := range strategies {
		dist, _, err := search.Shortest(build(), search.Source("A"), search.WithStrategy(strat))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		results[name] = dist

		for loc, w := range want {
			if got := dist[loc]; got != w {
				t.Errorf("%s: dist[%s] = %g; want %g", name, loc, got, w)
			}
		}
		if len(dist) != len(want) {
			t.Errorf("%s: table has %d entries; want %d", name, len(dist), len(want))
		}
	}

	// Cross-check: the two work-list disciplines are interchangeable.
	for loc := range results["heap"] {
		if results["heap"][loc] != results["queue"][loc] {
			t.Errorf("strategies disagree at %s: heap=%g queue=%g",
				loc, results["heap"][loc], results["queue"][loc])
		}
	}
}

// ------------------------------------------------------------------------
// 4. Monotonic improvement: every Table rewrite strictly lowers the entry.
// ------------------------------------------------------------------------

func TestShortest_OnImproveMonotonic(t *testing.T) {
	for name, strat := range strategies {
		t.Run(name, func(t *testing.T) {
			// A graph where the worse route is discovered first under FIFO
			// order, forcing at least one genuine rewrite.
			n := core.NewNetwork()
			_ = n.AddConnection("A", "C", 10)
			_ = n.AddConnection("A", "B", 5)
			_ = n.AddConnection("B", "C", 3)

			writes := 0
			_, _, err := search.Shortest(n,
				search.Source("A"),
				search.WithStrategy(strat),
				search.WithOnImprove(func(loc string, prev, next float64) {
					writes++
					if next >= prev {
						t.Errorf("non-improving write at %s: %g → %g", loc, prev, next)
					}
				}),
			)
			if err != nil {
				t.Fatal(err)
			}
			if writes < 3 {
				t.Errorf("expected at least one write per reached location, got %d", writes)
			}

			// First visits report an infinite previous value.
			seen := map[string]bool{}
			_, _, err = search.Shortest(n,
				search.Source("A"),
				search.WithStrategy(strat),
				search.WithOnImprove(func(loc string, prev, _ float64) {
					if !seen[loc] && !math.IsInf(prev, 1) {
						t.Errorf("first write at %s reported prev=%g; want +Inf", loc, prev)
					}
					seen[loc] = true
				}),
			)
			if err != nil {
				t.Fatal(err)
			}
		})
	}
}

// ------------------------------------------------------------------------
// 5. Disconnection: unreached locations are absent from the Table.
// ------------------------------------------------------------------------

func TestShortest_DisconnectedComponentAbsent(t *testing.T) {
	for name, strat := range strategies {
		t.Run(name, func(t *testing.T) {
			n := core.NewNetwork()
			_ = n.AddConnection("A", "B", 1)
			_ = n.AddConnection("C", "D", 1) // separate island

			dist, _, err := search.Shortest(n, search.Source("A"), search.WithStrategy(strat))
			if err != nil {
				t.Fatal(err)
			}

			if _, ok := dist.Distance("C"); ok {
				t.Error("C is disconnected from A and must be absent from the table")
			}
			if _, ok := dist.Distance("D"); ok {
				t.Error("D is disconnected from A and must be absent from the table")
			}
			if len(dist) != 2 {
				t.Errorf("table has %d entries; want 2 (A and B)", len(dist))
			}
		})
	}
}

// ------------------------------------------------------------------------
// 6. MaxDistance: locations beyond the cap are not explored.
// ------------------------------------------------------------------------

func TestShortest_MaxDistance(t *testing.T) {
	for name, strat := range strategies {
		t.Run(name, func(t *testing.T) {
			// Linear network: A—B(1)—C(1)—D(1).
			n := core.NewNetwork()
			_ = n.AddConnection("A", "B", 1)
			_ = n.AddConnection("B", "C", 1)
			_ = n.AddConnection("C", "D", 1)

			dist, _, err := search.Shortest(n,
				search.Source("A"),
				search.WithMaxDistance(1),
				search.WithStrategy(strat),
			)
			if err != nil {
				t.Fatal(err)
			}

			if dist["A"] != 0 || dist["B"] != 1 {
				t.Errorf("Unexpected distances within cap: %v", dist)
			}
			if _, ok := dist.Distance("C"); ok {
				t.Error("C lies beyond MaxDistance and must be absent")
			}
			if _, ok := dist.Distance("D"); ok {
				t.Error("D lies beyond MaxDistance and must be absent")
			}
		})
	}
}

func TestShortest_MaxDistanceZero(t *testing.T) {
	n := core.NewNetwork()
	_ = n.AddConnection("A", "B", 1)

	dist, _, err := search.Shortest(n, search.Source("A"), search.WithMaxDistance(0))
	if err != nil {
		t.Fatal(err)
	}
	if dist["A"] != 0 {
		t.Errorf("dist[A] = %g; want 0", dist["A"])
	}
	if _, ok := dist.Distance("B"); ok {
		t.Error("B lies beyond MaxDistance=0 and must be absent")
	}
}

// ------------------------------------------------------------------------
// 7. Edge Cases: zero-cost roads and long chains (no call-stack recursion).
// ------------------------------------------------------------------------

func TestShortest_ZeroCostRoad(t *testing.T) {
	for name, strat := range strategies {
		t.Run(name, func(t *testing.T) {
			n := core.NewNetwork()
			_ = n.AddConnection("A", "B", 0)
			_ = n.AddConnection("B", "C", 2)

			dist, _, err := search.Shortest(n, search.Source("A"), search.WithStrategy(strat))
			if err != nil {
				t.Fatal(err)
			}
			if dist["B"] != 0 {
				t.Errorf("dist[B] = %g; want 0", dist["B"])
			}
			if dist["C"] != 2 {
				t.Errorf("dist[C] = %g; want 2", dist["C"])
			}
		})
	}
}

func TestShortest_LongChain(t *testing.T) {
	// A chain far deeper than any default goroutine stack would survive
	// under naive recursion. The iterative work list must handle it.
	const chain = 200_000
	n := core.NewNetwork()
	label := func(i int) string { return "n" + itoa(i) }
	for i := 0; i < chain; i++ {
		_ = n.AddConnection(label(i), label(i+1), 1)
	}

	for name, strat := range strategies {
		t.Run(name, func(t *testing.T) {
			dist, _, err := search.Shortest(n, search.Source(label(0)), search.WithStrategy(strat))
			if err != nil {
				t.Fatal(err)
			}
			if got, want := dist[label(chain)], float64(chain); got != want {
				t.Errorf("dist[end] = %g; want %g", got, want)
			}
		})
	}
}

// itoa is a minimal integer formatter to keep the chain test allocation-light.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [8]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}

	return string(buf[pos:])
}
