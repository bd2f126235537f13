// File: snapshot.go
// Role: Immutable, lock-free view of a Graph used by path finders.
// Concurrency:
//   - Snapshot() copies catalogs under a single read lock; the result is
//     never mutated afterwards and may be shared between goroutines.

package core

// Snapshot is a consistent copy of a Graph's point IDs and adjacency.
//
// Path finders take one Snapshot per query so they never hold the graph
// lock while relaxing connections.
type Snapshot struct {
	ids       []int64                // registered point IDs, ascending
	points    map[int64]struct{}     // registered point set
	adjacency map[int64][]Connection // point ID → outgoing connections
}

// Snapshot captures the current points and adjacency of g.
// Complexity: O(V log V + E).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		ids:       sortedKeys(g.points),
		points:    make(map[int64]struct{}, len(g.points)),
		adjacency: make(map[int64][]Connection, len(g.adjacency)),
	}
	var id int64
	for _, id = range s.ids {
		s.points[id] = struct{}{}
	}
	var conns []Connection
	for id, conns = range g.adjacency {
		cp := make([]Connection, len(conns))
		copy(cp, conns)
		s.adjacency[id] = cp
	}

	return s
}

// PointIDs returns the registered point IDs in ascending order.
// The returned slice is shared and must not be modified.
func (s *Snapshot) PointIDs() []int64 { return s.ids }

// PointCount returns the number of registered points.
func (s *Snapshot) PointCount() int { return len(s.ids) }

// HasPoint reports whether id was registered when the snapshot was taken.
func (s *Snapshot) HasPoint(id int64) bool {
	_, ok := s.points[id]

	return ok
}

// Connections returns the outgoing connections of id in insertion order.
// The returned slice is shared and must not be modified.
func (s *Snapshot) Connections(id int64) []Connection { return s.adjacency[id] }

// EachConnection calls fn for every stored directed connection until fn
// returns false. Order is unspecified.
func (s *Snapshot) EachConnection(fn func(Connection) bool) {
	var (
		conns []Connection
		c     Connection
	)
	for _, conns = range s.adjacency {
		for _, c = range conns {
			if !fn(c) {
				return
			}
		}
	}
}
