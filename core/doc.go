// Package core provides the thread-safe, in-memory Graph shared by the
// bellmanford and dijkstra path finders.
//
// The Graph G = (P, C) is deliberately small:
//
//   - Points keyed by int64 ID, carrying opaque X/Y payload.
//   - Undirected weighted connections, stored as two directed entries:
//     AddConnection(a→b, w) also stores b→a with weight w.
//   - No referential integrity: a connection may name IDs that were never
//     added as points. Algorithms must not assume otherwise.
//   - Insertion only. Points may be overwritten; nothing is ever removed.
//
// Core Methods:
//
//	// Building
//	NewGraph(opts ...GraphOption) *Graph   // O(1)
//	AddPoint(p Point)                      // O(1), overwrites silently
//	AddConnection(c Connection)            // O(1), mirrors automatically
//
//	// Query
//	HasPoint(id int64) bool                // O(1)
//	Point(id int64) (Point, bool)          // O(1)
//	PointIDs() []int64                     // O(V·log V), ascending
//	Connections(id int64) []Connection     // O(deg), insertion order, copy
//	PointCount() int                       // O(1)
//	ConnectionCount() int                  // O(1)
//	Stats() GraphStats                     // O(V+E)
//	Snapshot() *Snapshot                   // O(V·log V + E), lock-free view
//
// Distances:
//
//	Infinity                               // math.MaxInt64, "unreachable"
//	AddDistance(d, w int64) int64          // saturating: overflow ⇒ Infinity
//	IsFinite(d int64) bool
//
// Concurrency: every method takes the graph's RWMutex, so building from one
// goroutine while others query is race-free, and concurrent queries never
// block each other. Path finders copy what they need via Snapshot once per
// query.
package core
