// Package bellmanford computes point-to-point shortest distances on a
// core.Graph by bounded edge relaxation.
//
// Overview:
//
//   - The source starts at distance 0; every other point is implicitly at
//     core.Infinity.
//   - A pass visits registered points in ascending ID order and relaxes each
//     outgoing connection of every point that already has a finite distance.
//   - Exactly V passes run (V = registered points), whatever the rate of
//     convergence, unless WithRounds or WithEarlyStop say otherwise.
//   - Candidate distances use core.AddDistance, so overflow saturates to
//     core.Infinity instead of wrapping.
//
// Precondition:
//
//	V passes are enough whenever every shortest path has at most V hops,
//	which holds for nonnegative weights and for negative weights without
//	negative cycles. Negative cycles are NOT detected; the result after V
//	passes is returned as is.
//
// Validation:
//
//	None. Unknown source or dest IDs are not errors: an unregistered source
//	still gets distance 0 (so Distance(g, s, s) == 0 for any s), and an
//	unreached dest yields core.Infinity. Connections may lead to IDs that are
//	not registered points; such IDs can receive a distance but are never
//	relaxed from, since passes only enumerate registered points.
//
// Complexity:
//
//   - Time:  O(V · E)
//   - Space: O(V + E) for the snapshot and the distance map.
//
// Example usage:
//
//	d := bellmanford.Distance(g, 1, 4)
//	if d == core.Infinity {
//	    fmt.Println("unreachable")
//	}
package bellmanford
