package pathfind

import (
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/pathdist/bellmanford"
	"github.com/katalvlaran/pathdist/core"
	"github.com/katalvlaran/pathdist/dijkstra"
)

// Finder computes the shortest distance between two points of a graph.
//
// Implementations are stateless between calls and safe for concurrent use
// on a graph that is not being modified.
type Finder interface {
	// Distance returns the distance from→to, or core.Infinity.
	Distance(g *core.Graph, from, to int64) int64

	// Lookup returns the distance from→to with explicit reachability.
	Lookup(g *core.Graph, from, to int64) Result

	// Strategy reports which algorithm backs this Finder.
	Strategy() Strategy
}

// Options configures New.
type Options struct {
	Logger     *slog.Logger         // Forwarded to the selected algorithm
	Relaxation []bellmanford.Option // Extra options for Relaxation
	Priority   []dijkstra.Option    // Extra options for PriorityQueue
}

// Option represents a functional option for New.
type Option func(*Options)

// WithLogger routes debug records of the selected algorithm to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithRelaxationOptions appends options used when the strategy is Relaxation.
func WithRelaxationOptions(opts ...bellmanford.Option) Option {
	return func(o *Options) {
		o.Relaxation = append(o.Relaxation, opts...)
	}
}

// WithPriorityOptions appends options used when the strategy is PriorityQueue.
func WithPriorityOptions(opts ...dijkstra.Option) Option {
	return func(o *Options) {
		o.Priority = append(o.Priority, opts...)
	}
}

// New returns the Finder for strategy s.
// Unknown strategies return ErrUnknownStrategy.
func New(s Strategy, opts ...Option) (Finder, error) {
	var cfg Options
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	switch s {
	case Relaxation:
		ro := make([]bellmanford.Option, 0, len(cfg.Relaxation)+1)
		if cfg.Logger != nil {
			ro = append(ro, bellmanford.WithLogger(cfg.Logger))
		}
		return relaxationFinder{opts: append(ro, cfg.Relaxation...)}, nil
	case PriorityQueue:
		po := make([]dijkstra.Option, 0, len(cfg.Priority)+1)
		if cfg.Logger != nil {
			po = append(po, dijkstra.WithLogger(cfg.Logger))
		}
		return priorityFinder{opts: append(po, cfg.Priority...)}, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
}

// MustNew is New for strategies known to be valid; it panics otherwise.
func MustNew(s Strategy, opts ...Option) Finder {
	f, err := New(s, opts...)
	if err != nil {
		panic(err)
	}

	return f
}

// relaxationFinder adapts package bellmanford to Finder.
type relaxationFinder struct {
	opts []bellmanford.Option
}

func (f relaxationFinder) Distance(g *core.Graph, from, to int64) int64 {
	return bellmanford.Distance(g, from, to, f.opts...)
}

func (f relaxationFinder) Lookup(g *core.Graph, from, to int64) Result {
	return newResult(bellmanford.Lookup(g, from, to, f.opts...))
}

func (relaxationFinder) Strategy() Strategy { return Relaxation }

// priorityFinder adapts package dijkstra to Finder.
type priorityFinder struct {
	opts []dijkstra.Option
}

func (f priorityFinder) Distance(g *core.Graph, from, to int64) int64 {
	return dijkstra.Distance(g, from, to, f.opts...)
}

func (f priorityFinder) Lookup(g *core.Graph, from, to int64) Result {
	return newResult(dijkstra.Lookup(g, from, to, f.opts...))
}

func (priorityFinder) Strategy() Strategy { return PriorityQueue }
