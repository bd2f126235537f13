// File: methods_connections.go
// Role: Connection insertion & queries, graph statistics.
//
// Determinism:
//   - Connections(id) preserves insertion order.
//
// Concurrency:
//   - AddConnection under mu write lock, queries under mu read lock.

package core

// AddConnection appends c to the adjacency of c.From and its mirror
// (c.To→c.From, same weight) to the adjacency of c.To.
//
// Endpoints are not validated against the point catalog. A self
// connection (From == To) is therefore stored twice under the same ID.
// Complexity: O(1) amortized.
func (g *Graph) AddConnection(c Connection) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[c.From] = append(g.adjacency[c.From], c)
	rev := c.Reverse()
	g.adjacency[rev.From] = append(g.adjacency[rev.From], rev)
	g.connections++
}

// Connections returns a copy of the outgoing connections of id,
// in insertion order. Unknown IDs yield nil.
// Complexity: O(deg(id)).
func (g *Graph) Connections(id int64) []Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.adjacency[id]
	if len(src) == 0 {
		return nil
	}
	out := make([]Connection, len(src))
	copy(out, src)

	return out
}

// ConnectionCount returns the number of AddConnection calls, i.e. the
// number of undirected connections (each stored as two directed entries).
// Complexity: O(1).
func (g *Graph) ConnectionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.connections
}

// Stats produces a read-only summary of the graph.
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		PointCount:      len(g.points),
		ConnectionCount: g.connections,
		AdjacencyKeys:   len(g.adjacency),
	}
	var (
		id    int64
		conns []Connection
		c     Connection
		neg   int
	)
	for id, conns = range g.adjacency {
		if _, ok := g.points[id]; !ok {
			stats.DanglingIDs++
		}
		for _, c = range conns {
			if c.Weight < 0 {
				neg++
			}
		}
	}
	// every connection is stored twice
	stats.NegativeWeights = neg / 2

	return stats
}
