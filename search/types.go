// This file defines the Table result type, the Strategy enum, sentinel
// errors, Options, and the functional option constructors.
package search

import (
	"errors"
	"math"
)

// Sentinel errors returned by Shortest.
var (
	// ErrEmptySource indicates that the Source option was never provided.
	ErrEmptySource = errors.New("search: source location is empty")

	// ErrNilNetwork indicates that a nil *core.Network was passed to Shortest.
	ErrNilNetwork = errors.New("search: network is nil")

	// ErrSourceNotFound indicates that the source location does not exist
	// in the provided network.
	ErrSourceNotFound = errors.New("search: source location not on the map")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// value, which is not meaningful for a distance cap.
	ErrBadMaxDistance = errors.New("search: MaxDistance must be non-negative")
)

// Table is the distance table of one search run: a mapping from location to
// the best known cumulative cost from the source. Entries exist only for
// locations the search reached; an absent key means unreachable (within the
// configured MaxDistance). A Table is private to one Shortest invocation.
type Table map[string]float64

// Distance returns the recorded distance to location and whether the
// location was reached at all.
func (t Table) Distance(location string) (float64, bool) {
	d, ok := t[location]

	return d, ok
}

// Strategy selects the relaxation work-list discipline.
type Strategy int

const (
	// StrategyHeap processes locations in increasing distance order using a
	// min-heap priority queue with lazy decrease-key. This is Dijkstra's
	// algorithm and the default.
	StrategyHeap Strategy = iota

	// StrategyQueue relaxes from a FIFO work list, re-enqueueing a location
	// whenever its distance strictly improves (Bellman–Ford style). Produces
	// the same Table as StrategyHeap on non-negative costs.
	StrategyQueue
)

// Options configures the behavior of Shortest.
//
// Source      – starting location label (must be non-empty and on the map).
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – cap on cumulative cost to explore. Must be ≥ 0.
//
//	Default is math.Inf(1) (no cap).
//
// Strategy    – work-list discipline; default StrategyHeap.
// OnImprove   – optional hook observing every Table write.
type Options struct {
	Source      string   // the starting location label
	ReturnPath  bool     // whether to return the predecessor map
	MaxDistance float64  // maximum cumulative cost to explore
	Strategy    Strategy // work-list discipline

	// OnImprove, if non-nil, is invoked on every Table write with the
	// previous best distance (math.Inf(1) on first visit) and the new one.
	// The new value is always strictly lower than the previous.
	OnImprove func(location string, prev, next float64)
}

// Option represents a functional option for configuring Shortest.
type Option func(*Options)

// Source sets the starting location label. Must be provided.
func Source(location string) Option {
	return func(o *Options) {
		o.Source = location
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum cumulative cost threshold. Locations whose
// shortest distance would exceed it are not explored.
// Must pass a non-negative value; negative values cause a panic with
// ErrBadMaxDistance. Default (if not set) is math.Inf(1) (no cap).
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithStrategy selects the relaxation work-list discipline.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithOnImprove installs fn as the Table-write observer hook.
func WithOnImprove(fn func(location string, prev, next float64)) Option {
	return func(o *Options) {
		o.OnImprove = fn
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults for the given source location. Use this as a starting point for
// further functional-option overrides.
//
// Defaults:
//   - Source:      <as passed> (validated in Shortest, not here).
//   - ReturnPath:  false (predecessor map not returned).
//   - MaxDistance: math.Inf(1) (no distance limit; explore all reachable).
//   - Strategy:    StrategyHeap.
//   - OnImprove:   nil.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
		Strategy:    StrategyHeap,
		OnImprove:   nil,
	}
}
