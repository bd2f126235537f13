// SPDX-License-Identifier: MIT
//
// File: distance.go
// Role: Distance arithmetic shared by all path finders.
// Policy:
//   - Infinity is the single "no known finite distance" marker.
//   - Additive overflow in either direction saturates to Infinity.

package core

import "math"

// Infinity marks an unknown or unreachable distance.
// It is the maximum int64 so that any finite distance compares below it.
const Infinity int64 = math.MaxInt64

// IsFinite reports whether d is a real distance rather than Infinity.
func IsFinite(d int64) bool { return d != Infinity }

// AddDistance returns d + w, or Infinity if d is Infinity or the sum
// overflows int64 in either direction.
//
// Complexity: O(1).
func AddDistance(d, w int64) int64 {
	if d == Infinity {
		return Infinity
	}
	sum := d + w
	if (w > 0 && sum < d) || (w < 0 && sum > d) {
		return Infinity
	}

	return sum
}
