// Package core defines the central Graph, Point, and Connection types
// shared by every path finder in this module, and provides thread-safe
// primitives for building and snapshotting graphs.
//
// All core APIs use a single sync.RWMutex internally (mu guards both the
// point catalog and the adjacency lists), so a Graph may be built from one
// goroutine and queried from many.
//
// This file declares Point, Connection, Graph, GraphOption and the
// NewGraph constructor.
package core

import "sync"

// Point is a labeled location in the graph.
//
// X and Y are caller payload only; no path finder ever reads them.
type Point struct {
	// ID uniquely identifies this Point within its Graph.
	ID int64

	// X is the first coordinate of the point.
	X int64

	// Y is the second coordinate of the point.
	Y int64
}

// Connection is a weighted link From→To.
//
// Connections are inserted undirected: AddConnection stores the given
// orientation and its mirror. Endpoints are referenced by identifier and
// need not be registered Points.
type Connection struct {
	// From is the origin point ID.
	From int64

	// To is the destination point ID.
	To int64

	// Weight is the cost of traversing the connection.
	Weight int64
}

// Reverse returns the mirrored connection To→From with the same weight.
func (c Connection) Reverse() Connection {
	return Connection{From: c.To, To: c.From, Weight: c.Weight}
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the point and adjacency maps for n points.
// Negative values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n <= 0 {
			return
		}
		g.points = make(map[int64]Point, n)
		g.adjacency = make(map[int64][]Connection, n)
	}
}

// Graph is the in-memory undirected weighted graph.
//
// points maps a point ID to its payload. adjacency maps a point ID to its
// outgoing connections in insertion order; the two maps are independent,
// so adjacency may hold IDs that points does not.
type Graph struct {
	mu sync.RWMutex // guards points, adjacency and connections

	points      map[int64]Point        // point ID → Point
	adjacency   map[int64][]Connection // point ID → outgoing connections
	connections int                    // number of AddConnection calls
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		points:    make(map[int64]Point),
		adjacency: make(map[int64][]Connection),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	PointCount      int // registered points
	ConnectionCount int // AddConnection calls (undirected connections)
	AdjacencyKeys   int // IDs with at least one outgoing connection
	DanglingIDs     int // adjacency IDs with no registered Point
	NegativeWeights int // undirected connections with Weight < 0
}
