// Package builder provides deterministic constructors for common graph
// topologies on core.Graph: paths, cycles, stars, complete graphs,
// orthogonal grids and random sparse graphs.
//
// Fixtures are composed with BuildGraph:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//	    builder.Grid(10, 10),
//	)
//
// Every constructor registers its points (IDs from the configured scheme,
// coordinates from the topology) and then adds connections in a stable,
// documented order. The same options, seed and constructor order always
// give the same graph, which makes the package suitable for benchmarks
// and cross-validation of the path finders.
//
// Errors are sentinels wrapped with the constructor name; branch on them
// with errors.Is. Option constructors panic on meaningless input.
package builder
