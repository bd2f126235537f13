// Package pathfind selects between the two shortest-distance strategies of
// this module behind one interface.
//
//   - Relaxation:    package bellmanford, bounded V-pass edge relaxation.
//   - PriorityQueue: package dijkstra, min-heap frontier expansion.
//
// Both operate on the same core.Graph. Finder.Distance keeps the raw
// core.Infinity convention; Finder.Lookup returns a Result whose Reachable
// flag removes the ambiguity between "unreachable" and a huge finite sum.
//
// Differences callers should know about:
//
//   - PriorityQueue answers core.Infinity when either endpoint is not a
//     registered point; Relaxation never validates and answers 0 for s→s.
//   - Relaxation tolerates negative weights without negative cycles (given
//     enough passes); PriorityQueue assumes nonnegative weights.
//   - Both saturate overflowing sums to core.Infinity.
//
// Compare runs both strategies on one query and reports ErrDisagreement
// when they differ on registered endpoints.
//
// Example usage:
//
//	s, err := pathfind.ParseStrategy("dijkstra")
//	if err != nil {
//	    return err
//	}
//	res := pathfind.MustNew(s).Lookup(g, 1, 4)
//	fmt.Println(res) // "18" or "unreachable"
package pathfind
