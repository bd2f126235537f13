package dijkstra

import (
	"container/heap"
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/pathdist/core"
	"github.com/katalvlaran/pathdist/internal/xlog"
)

// Distance returns the shortest distance from source to dest in g, or
// core.Infinity if either point is not registered or dest is unreachable.
//
// Preconditions and validation (in order):
//  1. g must be non-nil, otherwise core.Infinity.
//  2. source and dest must both be registered points, otherwise core.Infinity.
//  3. With WithNegativeWeightCheck, any negative weight yields core.Infinity.
//
// Weights are assumed nonnegative. Without the check, negative weights give
// unspecified results (the queue order assumes a monotonic frontier), but
// every point is still expanded at most once, so the query always returns.
// Cost accumulation saturates: an overflowing sum counts as unreachable.
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Distance(g *core.Graph, source, dest int64, opts ...Option) int64 {
	d, _ := Lookup(g, source, dest, opts...)

	return d
}

// Lookup is Distance with explicit absence: ok is false exactly when the
// returned distance is core.Infinity.
func Lookup(g *core.Graph, source, dest int64, opts ...Option) (int64, bool) {
	r, ok := newRunner(g, opts)
	if !ok {
		return core.Infinity, false
	}
	if !r.snap.HasPoint(source) || !r.snap.HasPoint(dest) {
		r.log.Debug("dijkstra: unknown endpoint", "source", source, "dest", dest)
		return core.Infinity, false
	}
	r.log.Debug("dijkstra: query", "source", source, "dest", dest, "points", r.snap.PointCount())

	r.init(source)
	r.process(dest, r.cfg.EarlyExit)

	d, found := r.dist[dest]
	if !found || !core.IsFinite(d) {
		r.log.Debug("dijkstra: unreachable", "dest", dest, "pops", r.pops, "pushes", r.pushes)
		return core.Infinity, false
	}
	r.log.Debug("dijkstra: result", "dest", dest, "distance", d, "pops", r.pops, "pushes", r.pushes)

	return d, true
}

// Distances returns every distance recorded from source. Unreached points
// are absent. An unregistered source (or a rejected graph) yields an
// empty map. EarlyExit has no effect here.
func Distances(g *core.Graph, source int64, opts ...Option) map[int64]int64 {
	r, ok := newRunner(g, opts)
	if !ok || !r.snap.HasPoint(source) {
		return map[int64]int64{}
	}
	r.init(source)
	r.process(0, false)

	return r.dist
}

// Check validates g for use with this package: it must be non-nil and
// hold no negative weight. The returned error wraps ErrNilGraph or
// ErrNegativeWeight.
// Complexity: O(V log V + E).
func Check(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	return checkSnapshot(g.Snapshot())
}

// checkSnapshot scans every stored connection for a negative weight.
func checkSnapshot(s *core.Snapshot) error {
	var err error
	s.EachConnection(func(c core.Connection) bool {
		if c.Weight < 0 {
			err = fmt.Errorf("%w: connection %d→%d weight=%d", ErrNegativeWeight, c.From, c.To, c.Weight)
			return false
		}
		return true
	})

	return err
}

// runner holds the mutable state for a single query.
type runner struct {
	snap    *core.Snapshot  // Read-only view of the graph
	cfg     Options         // Applied options
	log     *slog.Logger    // Never nil
	dist    map[int64]int64 // Point ID → best known distance
	visited map[int64]bool  // Point ID → distance finalized
	pq      nodePQ          // Min-heap of *nodeItem (lazy decrease-key)
	seq     uint64          // Push counter, breaks cost ties FIFO
	pops    int             // Heap pops, for debug records
	pushes  int             // Heap pushes, for debug records
}

// newRunner applies options, snapshots g and runs the optional weight
// scan. ok is false when the query must report unreachable.
func newRunner(g *core.Graph, opts []Option) (*runner, bool) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	log := xlog.Or(cfg.Logger)
	if g == nil {
		log.Debug("dijkstra: nil graph")
		return nil, false
	}

	r := &runner{
		snap: g.Snapshot(),
		cfg:  cfg,
		log:  log,
	}
	if cfg.NegativeWeightCheck {
		if err := checkSnapshot(r.snap); err != nil {
			log.Warn("dijkstra: graph rejected", "err", err)
			return nil, false
		}
	}

	return r, true
}

// init seeds source with distance 0 and pushes it.
func (r *runner) init(source int64) {
	r.dist = make(map[int64]int64, r.snap.PointCount())
	r.visited = make(map[int64]bool, r.snap.PointCount())
	r.pq = make(nodePQ, 0, r.snap.PointCount())
	heap.Init(&r.pq)

	r.dist[source] = 0
	r.push(source, 0)
}

// process is the main loop: pop the cheapest entry, skip it if stale or
// already finalized, otherwise finalize it and relax its outgoing
// connections. Each point is expanded at most once.
//
// Loop termination conditions:
//
//   - The heap becomes empty.
//   - The popped cost exceeds MaxDistance.
//   - stopAtDest is set and dest is popped with a current cost.
func (r *runner) process(dest int64, stopAtDest bool) {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)
		r.pops++

		// A strictly smaller distance was recorded after this push.
		if r.visited[item.id] || item.dist > r.dist[item.id] {
			continue
		}
		if item.dist > r.cfg.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if stopAtDest && item.id == dest {
			break
		}
		r.relax(item.id, item.dist)
	}
}

// relax examines each connection leaving u, reached at cost, and records
// every strictly shorter distance to a neighbor not yet finalized.
func (r *runner) relax(u, cost int64) {
	var (
		c    core.Connection
		next int64
	)
	for _, c = range r.snap.Connections(u) {
		if c.Weight >= r.cfg.InfEdgeThreshold || r.visited[c.To] {
			continue
		}
		next = core.AddDistance(cost, c.Weight)
		if next > r.cfg.MaxDistance {
			continue
		}
		if next >= r.current(c.To) {
			continue
		}
		r.dist[c.To] = next
		r.push(c.To, next)
	}
}

// current returns the recorded distance of id, or core.Infinity.
func (r *runner) current(id int64) int64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return core.Infinity
}

// push adds a heap entry stamped with the next sequence number.
func (r *runner) push(id, dist int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
	r.pushes++
}

// nodeItem represents a point and a tentative distance from the source.
type nodeItem struct {
	id   int64  // point ID
	dist int64  // distance from source
	seq  uint64 // push order, for FIFO tie-breaking
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then seq.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist first, earlier push on ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
