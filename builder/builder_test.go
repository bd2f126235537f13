package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathdist/bellmanford"
	"github.com/katalvlaran/pathdist/builder"
	"github.com/katalvlaran/pathdist/core"
	"github.com/katalvlaran/pathdist/dijkstra"
)

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.PointCount())
	assert.Equal(t, 4, g.ConnectionCount())
	assert.Equal(t, int64(4), dijkstra.Distance(g, 0, 4))

	_, err = builder.BuildGraph(nil, nil, builder.Path(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)
	assert.Equal(t, 6, g.ConnectionCount())
	// opposite side of a hexagon with unit weights
	assert.Equal(t, int64(3), bellmanford.Distance(g, 0, 3))
	assert.Equal(t, int64(1), bellmanford.Distance(g, 0, 5))

	_, err = builder.BuildGraph(nil, nil, builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestStarAndComplete(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(5))
	require.NoError(t, err)
	assert.Len(t, g.Connections(0), 4)
	assert.Equal(t, int64(2), dijkstra.Distance(g, 1, 4))

	g, err = builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)
	assert.Equal(t, 10, g.ConnectionCount())
	assert.Equal(t, int64(1), dijkstra.Distance(g, 1, 4))
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.PointCount())
	// 3·3 horizontal + 2·4 vertical
	assert.Equal(t, 17, g.ConnectionCount())

	p, ok := g.Point(6) // row 1, col 2
	require.True(t, ok)
	assert.Equal(t, core.Point{ID: 6, X: 2, Y: 1}, p)

	// Manhattan distance corner to corner
	assert.Equal(t, int64(5), dijkstra.Distance(g, 0, 11))

	_, err = builder.BuildGraph(nil, nil, builder.Grid(0, 4))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparse(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(1, 9))}
	a, err := builder.BuildGraph(nil, opts, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)

	opts = []builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(1, 9))}
	b, err := builder.BuildGraph(nil, opts, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)

	// same seed ⇒ same graph
	for _, id := range a.PointIDs() {
		require.Equal(t, a.Connections(id), b.Connections(id))
	}

	full, err := builder.BuildGraph(nil, nil, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 6, full.ConnectionCount())

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(4, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(4, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestIDOffsetComposes(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2}, g.PointIDs())

	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDOffset(100)}, builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, []int64{100, 101, 102}, g.PointIDs())
}

func TestNilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Path(2), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.UniformWeightFn(-1, 1) })
}
