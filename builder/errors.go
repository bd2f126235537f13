// SPDX-License-Identifier: MIT
// Package: pathdist/builder
//
// errors.go - sentinel errors for graph constructors.
//
// Policy:
//   - Constructors return these wrapped as "<Method>: <context>: %w".
//   - Callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
