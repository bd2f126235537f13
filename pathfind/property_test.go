package pathfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathdist/builder"
	"github.com/katalvlaran/pathdist/core"
	"github.com/katalvlaran/pathdist/pathfind"
)

// randomGraph builds a graph of v registered points and e connections
// between them, with weights in [0, maxWeight]. No dangling IDs.
func randomGraph(r *rand.Rand, v, e int, maxWeight int64) *core.Graph {
	g := core.NewGraph(core.WithCapacity(v))
	for i := 0; i < v; i++ {
		g.AddPoint(core.Point{ID: int64(i), X: r.Int63n(100), Y: r.Int63n(100)})
	}
	for i := 0; i < e; i++ {
		g.AddConnection(core.Connection{
			From:   r.Int63n(int64(v)),
			To:     r.Int63n(int64(v)),
			Weight: r.Int63n(maxWeight + 1),
		})
	}

	return g
}

// TestProperties cross-validates both strategies on seeded random graphs
// and checks self distance, symmetry and idempotence.
func TestProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7)) // deterministic seed for reproducibility
	relax := pathfind.MustNew(pathfind.Relaxation)
	prio := pathfind.MustNew(pathfind.PriorityQueue)

	for round := 0; round < 40; round++ {
		v := r.Intn(15) + 1
		e := r.Intn(2 * v)
		g := randomGraph(r, v, e, 50)

		for a := int64(0); a < int64(v); a++ {
			require.Equal(t, int64(0), relax.Distance(g, a, a))
			require.Equal(t, int64(0), prio.Distance(g, a, a))

			for b := int64(0); b < int64(v); b++ {
				c, err := pathfind.Compare(g, a, b)
				require.NoError(t, err, "round %d", round)

				// symmetry
				require.Equal(t, c.Relaxation, relax.Lookup(g, b, a))
				require.Equal(t, c.Priority, prio.Lookup(g, b, a))

				// idempotence
				require.Equal(t, c.Priority, prio.Lookup(g, a, b))

				// unreachable is always the sentinel
				if !c.Priority.Reachable {
					require.Equal(t, core.Infinity, c.Priority.Distance)
				}
			}
		}
	}
}

// TestProperties_Disconnected checks points in separate components are
// unreachable for both strategies.
func TestProperties_Disconnected(t *testing.T) {
	g := core.NewGraph()
	for id := int64(0); id < 6; id++ {
		g.AddPoint(core.Point{ID: id})
	}
	// two triangles: {0,1,2} and {3,4,5}
	for _, c := range []core.Connection{
		{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}, {From: 2, To: 0, Weight: 1},
		{From: 3, To: 4, Weight: 1}, {From: 4, To: 5, Weight: 1}, {From: 5, To: 3, Weight: 1},
	} {
		g.AddConnection(c)
	}
	for _, s := range strategies {
		f := pathfind.MustNew(s)
		for a := int64(0); a < 3; a++ {
			for b := int64(3); b < 6; b++ {
				require.Equal(t, core.Infinity, f.Distance(g, a, b), "%s %d→%d", s, a, b)
			}
		}
	}
}

// TestProperties_Topologies cross-validates both strategies on the builder
// topologies with seeded random weights.
func TestProperties_Topologies(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
	}{
		{"Path", builder.Path(8)},
		{"Cycle", builder.Cycle(9)},
		{"Star", builder.Star(7)},
		{"Grid", builder.Grid(4, 5)},
		{"Sparse", builder.RandomSparse(12, 0.25)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{
				builder.WithSeed(11),
				builder.WithWeightFn(builder.UniformWeightFn(0, 30)),
			}, tc.cons)
			require.NoError(t, err)

			ids := g.PointIDs()
			for _, a := range ids {
				for _, b := range ids {
					c, err := pathfind.Compare(g, a, b)
					require.NoError(t, err, "%d→%d", a, b)
					require.True(t, c.Agree())
				}
			}
		})
	}
}

// TestCompare_NegativeConnection checks Compare returns on a negative
// connection and reports the expected divergence.
func TestCompare_NegativeConnection(t *testing.T) {
	g := core.NewGraph()
	g.AddPoint(core.Point{ID: 1})
	g.AddPoint(core.Point{ID: 2})
	g.AddConnection(core.Connection{From: 1, To: 2, Weight: -1})

	c, err := pathfind.Compare(g, 1, 2)
	require.ErrorIs(t, err, pathfind.ErrDisagreement)
	// relaxation keeps decreasing for two passes: -1, -3
	require.Equal(t, pathfind.Result{Distance: -3, Reachable: true}, c.Relaxation)
	require.Equal(t, pathfind.Result{Distance: -1, Reachable: true}, c.Priority)
}
