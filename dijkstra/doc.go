// Package dijkstra computes point-to-point shortest distances on a
// core.Graph by frontier expansion with a min-priority queue.
//
// Overview:
//
//   - Both endpoints must be registered points; otherwise the answer is
//     core.Infinity straight away (unlike bellmanford, which never checks).
//   - The source enters the queue at cost 0. Each pop either is stale (a
//     strictly smaller distance was recorded since the push) and is dropped,
//     or relaxes every outgoing connection of the popped point.
//   - A neighbor is recorded and pushed only on a strict improvement.
//   - Equal costs leave the queue in push order, so runs are reproducible.
//   - Cost accumulation uses core.AddDistance: an overflowing sum saturates
//     to core.Infinity and is never recorded, the same rule bellmanford
//     applies.
//
// Weights:
//
//	All weights are assumed nonnegative and are NOT validated by default;
//	negative weights produce unspecified distances. WithNegativeWeightCheck
//	turns on an O(E) pre-scan that makes such graphs answer core.Infinity,
//	and Check reports the offending connection as an error.
//
// Key features (functional options):
//
//   - WithMaxDistance: never expand or record beyond a distance cap.
//   - WithInfEdgeThreshold: treat heavy connections as walls.
//   - WithEarlyExit: stop when the destination is settled.
//   - WithLogger: structured debug records via slog.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each improvement pushes one entry (up to E pushes, lazy decrease-key).
//   - Space: O(V + E)
//
// Example usage:
//
//	d, ok := dijkstra.Lookup(g, 1, 4, dijkstra.WithEarlyExit())
//	if !ok {
//	    fmt.Println("unreachable")
//	}
package dijkstra
