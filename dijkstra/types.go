// Package dijkstra defines core types and configuration options
// for the priority-queue path finder.
//
// Options:
//
//	– MaxDistance:         optional cap on distances to explore; points beyond are skipped.
//	– InfEdgeThreshold:    connections with weight >= this threshold are impassable.
//	– NegativeWeightCheck: refuse graphs holding a negative weight.
//	– EarlyExit:           stop once the destination is settled.
//	– Logger:              structured logger for debug records.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if Check receives a nil graph.
//	– ErrNegativeWeight  if a negative connection weight is detected.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/pathdist/core"
)

// Sentinel errors returned by the priority-queue path finder.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Check.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative connection weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative connection weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all connections (including zero-weight ones) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the priority-queue path finder.
//
// MaxDistance         – cap on distances to explore (points beyond are skipped).
//
//	Must be ≥ 0. Default is core.Infinity (no cap).
//
// InfEdgeThreshold    – treat connections with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default is core.Infinity (no obstacles).
//
// NegativeWeightCheck – scan connections first and report unreachable if any is negative.
// EarlyExit           – stop the search as soon as the destination is popped.
// Logger              – destination for debug records; nil discards them.
type Options struct {
	MaxDistance         int64        // Maximum distance to explore
	InfEdgeThreshold    int64        // Weight threshold above which connections are non-traversable
	NegativeWeightCheck bool         // Reject graphs with negative weights
	EarlyExit           bool         // Stop once dest is settled
	Logger              *slog.Logger // Debug sink; nil means discard
}

// Option represents a functional option for configuring the path finder.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Points whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which connections are
// considered non-traversable (treated as infinite weight).
// Must pass a positive value; zero or negative panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithNegativeWeightCheck enables an upfront O(E) scan; a graph holding any
// negative weight then yields core.Infinity for every query.
func WithNegativeWeightCheck() Option {
	return func(o *Options) {
		o.NegativeWeightCheck = true
	}
}

// WithEarlyExit stops the search once the destination leaves the queue.
// With nonnegative weights its distance is final at that point.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// WithLogger routes debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
// no distance cap, no impassable threshold, no weight scan, full search,
// logging discarded.
func DefaultOptions() Options {
	return Options{
		MaxDistance:         core.Infinity,
		InfEdgeThreshold:    core.Infinity,
		NegativeWeightCheck: false,
		EarlyExit:           false,
		Logger:              nil,
	}
}
