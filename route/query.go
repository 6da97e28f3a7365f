// This file implements Query - the single-pair driver - and route
// reconstruction from the predecessor map.
package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/search"
)

// ErrUnknownLocation indicates that a queried label is not on the map.
// Returned errors wrap it once per missing label; use errors.Is to classify.
var ErrUnknownLocation = errors.New("route: location is not on the map")

// Result is the verdict of one shortest-route query.
type Result struct {
	// From and To echo the queried labels.
	From string
	To   string

	// Distance is the minimum cumulative cost, meaningful only when
	// Reachable is true.
	Distance float64

	// Reachable reports whether any chain of roads connects From to To.
	Reachable bool

	// Via is the best route, endpoints included ([From ... To]).
	// Empty when the destination is unreachable.
	Via []string
}

// Query finds the cheapest route between from and to on net.
//
// Both labels are validated first: each missing one yields its own wrapped
// ErrUnknownLocation, and all of them are reported together (errors.Join)
// rather than stopping at the first.
//
// The search runs with a fresh distance table and never mutates net, so
// repeated identical queries return identical results. Additional search
// options (strategy, distance cap) may be passed through opts; Source and
// ReturnPath are owned by the driver and always appended last.
func Query(net *core.Network, from, to string, opts ...search.Option) (Result, error) {
	if net == nil {
		return Result{}, search.ErrNilNetwork
	}

	// Independent per-label validation: report every missing label.
	var errs []error
	if !net.Has(from) {
		errs = append(errs, fmt.Errorf("%w: start %q", ErrUnknownLocation, from))
	}
	if !net.Has(to) {
		errs = append(errs, fmt.Errorf("%w: destination %q", ErrUnknownLocation, to))
	}
	if len(errs) > 0 {
		return Result{}, errors.Join(errs...)
	}

	opts = append(opts, search.Source(from), search.WithReturnPath())
	dist, prev, err := search.Shortest(net, opts...)
	if err != nil {
		return Result{}, err
	}

	res := Result{From: from, To: to}
	d, ok := dist.Distance(to)
	if !ok {
		// Both labels exist but no chain of roads connects them.
		return res, nil
	}

	res.Distance = d
	res.Reachable = true
	res.Via = rebuild(prev, from, to)

	return res, nil
}

// rebuild walks the predecessor map back from to until it reaches from,
// returning the route in forward order. Assumes to was reached.
func rebuild(prev map[string]string, from, to string) []string {
	// Collect backwards, then reverse in place.
	via := []string{to}
	for at := to; at != from; at = prev[at] {
		via = append(via, prev[at])
	}
	for i, j := 0, len(via)-1; i < j; i, j = i+1, j-1 {
		via[i], via[j] = via[j], via[i]
	}

	return via
}
