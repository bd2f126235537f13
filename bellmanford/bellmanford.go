package bellmanford

import (
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/pathdist/core"
	"github.com/katalvlaran/pathdist/internal/xlog"
)

// Distance returns the shortest distance from source to dest in g, or
// core.Infinity when dest was never reached.
//
// Neither identifier is validated: an unregistered source still starts at
// distance 0, so Distance(g, s, s) is 0 for any s. A nil graph behaves as
// an empty one.
//
// Preconditions (not checked):
//   - The configured number of passes suffices for convergence. With the
//     default of one pass per registered point this holds for nonnegative
//     weights, and for negative weights without negative cycles.
//   - There is no negative cycle detection.
//
// Complexity:
//   - Time:  O(R · E) where R = passes (default V)
//   - Space: O(V + E)
func Distance(g *core.Graph, source, dest int64, opts ...Option) int64 {
	d, _ := Lookup(g, source, dest, opts...)

	return d
}

// Lookup is Distance with explicit absence: ok is false exactly when the
// returned distance is core.Infinity.
func Lookup(g *core.Graph, source, dest int64, opts ...Option) (int64, bool) {
	r := newRunner(g, opts)
	r.log.Debug("bellmanford: query", "source", source, "dest", dest, "points", r.snap.PointCount())
	r.run(source)

	d, ok := r.dist[dest]
	if !ok || !core.IsFinite(d) {
		r.log.Debug("bellmanford: unreachable", "dest", dest)
		return core.Infinity, false
	}
	r.log.Debug("bellmanford: result", "dest", dest, "distance", d)

	return d, true
}

// Distances returns every distance recorded from source after the
// relaxation passes. Points never reached are absent from the map.
func Distances(g *core.Graph, source int64, opts ...Option) map[int64]int64 {
	r := newRunner(g, opts)
	r.run(source)

	return r.dist
}

// runner holds the mutable state for a single relaxation query.
type runner struct {
	snap *core.Snapshot  // Read-only view of the graph
	cfg  Options         // Applied options
	log  *slog.Logger    // Never nil
	dist map[int64]int64 // Point ID → best known distance
}

// newRunner applies options and snapshots g.
func newRunner(g *core.Graph, opts []Option) *runner {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if g == nil {
		g = core.NewGraph()
	}

	return &runner{
		snap: g.Snapshot(),
		cfg:  cfg,
		log:  xlog.Or(cfg.Logger),
	}
}

// run seeds source with 0 and performs the configured passes.
func (r *runner) run(source int64) {
	r.dist = make(map[int64]int64, r.snap.PointCount())
	r.dist[source] = 0

	rounds := r.cfg.Rounds
	if rounds == roundsPerPoint {
		rounds = r.snap.PointCount()
	}

	var updates int
	for i := 0; i < rounds; i++ {
		updates = r.pass()
		r.log.Debug("bellmanford: pass", "round", i+1, "updates", updates)
		if updates == 0 && r.cfg.EarlyStop {
			break
		}
	}
}

// pass relaxes every outgoing connection of every registered point with a
// known distance, in ascending ID order. Improvements made earlier in the
// pass are visible to later points. Returns the number of improvements.
func (r *runner) pass() int {
	var (
		updates int
		u       int64
		du      int64
		known   bool
		c       core.Connection
		cand    int64
	)
	for _, u = range r.snap.PointIDs() {
		du, known = r.dist[u]
		if !known {
			continue
		}
		for _, c = range r.snap.Connections(u) {
			cand = core.AddDistance(du, c.Weight)
			if cand < r.current(c.To) {
				r.dist[c.To] = cand
				updates++
				// a self connection may have just lowered u itself
				if c.To == u {
					du = cand
				}
			}
		}
	}

	return updates
}

// current returns the recorded distance of id, or core.Infinity.
func (r *runner) current(id int64) int64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return core.Infinity
}
