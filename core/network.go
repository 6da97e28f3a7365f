// This file declares Hop, Network, sentinel errors, and the NewNetwork
// constructor, together with the build and query primitives.
package core

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// Sentinel errors for core network operations.
var (
	// ErrEmptyLocation indicates that a connection endpoint label is empty.
	ErrEmptyLocation = errors.New("core: location label is empty")

	// ErrNegativeCost indicates a connection with a negative cost.
	ErrNegativeCost = errors.New("core: connection cost is negative")

	// ErrLocationNotFound indicates an operation referenced a location
	// that does not exist in the network.
	ErrLocationNotFound = errors.New("core: location not found")
)

// Hop is a single directed adjacency entry: the neighbor reached and the
// cost (distance or time) of the road segment leading to it.
type Hop struct {
	// To is the neighbor location label.
	To string

	// Cost is the non-negative cost of traversing this road segment.
	Cost float64
}

// Network is the in-memory road network: a mapping from each location label
// to the ordered sequence of Hops reachable directly from it.
//
// Locations appear as keys only if they appear in at least one connection.
// The zero value is not usable; construct with NewNetwork.
type Network struct {
	adjacency   map[string][]Hop
	connections int // number of bidirectional connections recorded
}

// NewNetwork creates an empty Network.
// Complexity: O(1)
func NewNetwork() *Network {
	return &Network{adjacency: make(map[string][]Hop)}
}

// AddConnection records a bidirectional road between a and b with the given
// cost: a hop a→b and its mirror b→a, each costing cost. Both endpoints are
// inserted as locations if absent. Repeated connections append repeated hops.
//
// Returns ErrEmptyLocation if either label is empty, or ErrNegativeCost if
// cost < 0. On error the network is unchanged.
//
// Complexity: O(1) amortized.
func (n *Network) AddConnection(a, b string, cost float64) error {
	if a == "" || b == "" {
		return ErrEmptyLocation
	}
	if cost < 0 {
		return fmt.Errorf("%w: %s↔%s cost=%g", ErrNegativeCost, a, b, cost)
	}

	n.adjacency[a] = append(n.adjacency[a], Hop{To: b, Cost: cost})
	n.adjacency[b] = append(n.adjacency[b], Hop{To: a, Cost: cost})
	n.connections++

	return nil
}

// Has reports whether the network contains a location with the given label.
// Complexity: O(1)
func (n *Network) Has(location string) bool {
	_, ok := n.adjacency[location]

	return ok
}

// Neighbors returns a copy of the hop list for the given location, in the
// order the underlying connections were added.
//
// Returns ErrLocationNotFound if the location does not exist. For networks
// built exclusively through AddConnection this cannot happen for any label
// reachable via a Hop, because every endpoint of every connection is a key.
//
// Complexity: O(d) where d is the degree of location.
func (n *Network) Neighbors(location string) ([]Hop, error) {
	hops, ok := n.adjacency[location]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, location)
	}

	out := make([]Hop, len(hops))
	copy(out, hops)

	return out, nil
}

// Locations returns all location labels in lexicographic order.
// Complexity: O(V log V)
func (n *Network) Locations() []string {
	out := make([]string, 0, len(n.adjacency))
	for loc := range n.adjacency {
		out = append(out, loc)
	}
	sort.Strings(out)

	return out
}

// Order returns the number of distinct locations in the network.
// Complexity: O(1)
func (n *Network) Order() int { return len(n.adjacency) }

// ConnectionCount returns the number of bidirectional connections recorded,
// counting duplicates. Each connection contributes two directed hops.
// Complexity: O(1)
func (n *Network) ConnectionCount() int { return n.connections }

// Dump writes a human-readable listing of the network to w, one location per
// block with its outgoing hops, locations in lexicographic order. Intended
// for debugging and the CLI's -dump flag.
//
// Complexity: O(V log V + E)
func (n *Network) Dump(w io.Writer) error {
	for _, loc := range n.Locations() {
		if _, err := fmt.Fprintf(w, "%s:\n", loc); err != nil {
			return err
		}
		for _, hop := range n.adjacency[loc] {
			if _, err := fmt.Fprintf(w, "\t->%s (%g)\n", hop.To, hop.Cost); err != nil {
				return err
			}
		}
	}

	return nil
}
