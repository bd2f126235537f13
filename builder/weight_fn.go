package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each connection when no
// custom WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// WeightFn produces a connection weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Negative values are allowed; the relaxation finder accepts them.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max].
// Panics if min < 0 or max < min.
// If rng is nil, yields min to keep a deterministic fallback.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		span := max - min
		if span == math.MaxInt64 {
			return min + rng.Int63()
		}

		return min + rng.Int63n(span+1)
	}
}
