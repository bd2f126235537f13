// SPDX-License-Identifier: MIT
// Package: pathdist/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology constructors are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathdist/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addLine registers n points with IDs cfg.idFn(0..n-1) laid out on the X axis.
func addLine(g *core.Graph, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddPoint(core.Point{ID: cfg.idFn(i), X: int64(i)})
	}
}

// connect adds an undirected connection between indices i and j.
func connect(g *core.Graph, cfg builderConfig, i, j int) {
	g.AddConnection(core.Connection{
		From:   cfg.idFn(i),
		To:     cfg.idFn(j),
		Weight: cfg.weightFn(cfg.rng),
	})
}
