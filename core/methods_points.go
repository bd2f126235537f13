// File: methods_points.go
// Role: Point lifecycle & queries.
//
// Determinism:
//   - PointIDs() returns IDs sorted ascending.
//
// Concurrency:
//   - Writes under mu write lock, queries under mu read lock.

package core

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// AddPoint inserts p keyed by p.ID, silently replacing any point
// previously stored under the same ID.
//
// Only the point catalog is touched; adjacency is left as is.
// Complexity: O(1) amortized.
func (g *Graph) AddPoint(p Point) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.points[p.ID] = p
}

// HasPoint reports whether id is a registered point.
// Complexity: O(1).
func (g *Graph) HasPoint(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.points[id]

	return ok
}

// Point returns the point registered under id.
func (g *Graph) Point(id int64) (Point, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, ok := g.points[id]

	return p, ok
}

// PointCount returns the number of registered points.
// Complexity: O(1).
func (g *Graph) PointCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.points)
}

// PointIDs returns all registered point IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) PointIDs() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.points)
}

// sortedKeys returns the keys of m in ascending order.
// Caller must hold mu.
func sortedKeys[V any](m map[int64]V) []int64 {
	ids := maps.Keys(m)
	slices.Sort(ids)

	return ids
}
