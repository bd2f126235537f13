// Package bellmanford defines configuration options and sentinel errors
// for the bounded-relaxation path finder.
//
// Options:
//
//	– Rounds:    number of relaxation passes (default: one per registered point).
//	– EarlyStop: stop after a pass that records no improvement.
//	– Logger:    structured logger for per-pass debug records.
//
// Errors (sentinel):
//
//	– ErrBadRounds if a negative round count is requested.
package bellmanford

import (
	"errors"

	"golang.org/x/exp/slog"
)

// ErrBadRounds indicates that WithRounds was given a negative count.
var ErrBadRounds = errors.New("bellmanford: rounds must be non-negative")

// roundsPerPoint is the Rounds value meaning "one pass per registered point".
const roundsPerPoint = -1

// Options configures the relaxation path finder.
//
// Rounds    – number of full passes; roundsPerPoint (the default) runs one
//
//	pass per registered point, which is the classical bound.
//
// EarlyStop – if true, stop as soon as a pass records no improvement.
// Logger    – destination for debug records; nil discards them.
type Options struct {
	Rounds    int          // Number of passes, or roundsPerPoint
	EarlyStop bool         // Stop on the first pass without updates
	Logger    *slog.Logger // Debug sink; nil means discard
}

// Option represents a functional option for configuring the relaxation.
type Option func(*Options)

// WithRounds overrides the number of relaxation passes.
// Must pass a non-negative value; negative values panic with ErrBadRounds.
func WithRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadRounds.Error())
		}
		o.Rounds = n
	}
}

// WithEarlyStop ends the relaxation after the first pass that changes
// nothing. Results are identical whenever the full pass count would
// have converged too.
func WithEarlyStop() Option {
	return func(o *Options) {
		o.EarlyStop = true
	}
}

// WithLogger routes debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the defaults: one pass per registered point,
// no early stop, logging discarded.
func DefaultOptions() Options {
	return Options{
		Rounds:    roundsPerPoint,
		EarlyStop: false,
		Logger:    nil,
	}
}
