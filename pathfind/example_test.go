package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/pathdist/core"
	"github.com/katalvlaran/pathdist/pathfind"
)

// ExampleNew runs both strategies on the same graph.
func ExampleNew() {
	g := core.NewGraph()
	for id := int64(1); id <= 4; id++ {
		g.AddPoint(core.Point{ID: id})
	}
	g.AddConnection(core.Connection{From: 1, To: 2, Weight: 5})
	g.AddConnection(core.Connection{From: 2, To: 3, Weight: 10})
	g.AddConnection(core.Connection{From: 3, To: 4, Weight: 3})
	g.AddConnection(core.Connection{From: 1, To: 4, Weight: 20})

	for _, name := range []string{"bellman-ford", "dijkstra"} {
		s, err := pathfind.ParseStrategy(name)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		f := pathfind.MustNew(s)
		fmt.Printf("%s: 1→4=%s 1→5=%s\n", f.Strategy(), f.Lookup(g, 1, 4), f.Lookup(g, 1, 5))
	}
	// Output:
	// relaxation: 1→4=18 1→5=unreachable
	// priority-queue: 1→4=18 1→5=unreachable
}
