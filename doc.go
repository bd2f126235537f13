// Package pathdist computes shortest distances between points of an
// undirected, weighted, in-memory graph.
//
// What is pathdist?
//
//	A small library with one shared graph and two interchangeable finders:
//		• core:        Point, Connection, Graph, saturating distance arithmetic
//		• bellmanford: bounded edge relaxation, tolerates negative weights
//		• dijkstra:    min-priority-queue frontier expansion, nonnegative weights
//		• pathfind:    Strategy enum, Finder interface, cross-validation
//		• builder:     deterministic topologies for tests and demos
//
// Only the distance is returned, never the route. An unreachable point
// answers core.Infinity, or false/Reachable=false in the explicit forms.
//
// Quick ASCII example:
//
//	   [1]──(5)──[2]
//	    │         │
//	   (20)      (10)
//	    │         │
//	   [4]──(3)──[3]
//
// represents four points, weights in parentheses, where 1→4 costs 18 via
// 2 and 3, not 20.
//
//	g := core.NewGraph()
//	for id := int64(1); id <= 4; id++ {
//		g.AddPoint(core.Point{ID: id})
//	}
//	g.AddConnection(core.Connection{From: 1, To: 2, Weight: 5})
//	g.AddConnection(core.Connection{From: 2, To: 3, Weight: 10})
//	g.AddConnection(core.Connection{From: 3, To: 4, Weight: 3})
//	g.AddConnection(core.Connection{From: 1, To: 4, Weight: 20})
//
//	f := pathfind.MustNew(pathfind.PriorityQueue)
//	fmt.Println(f.Lookup(g, 1, 4)) // 18
//
// See examples/relay_network for a runnable program.
//
//	go get github.com/katalvlaran/pathdist
package pathdist
