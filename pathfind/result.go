package pathfind

import (
	"strconv"

	"github.com/katalvlaran/pathdist/core"
)

// Result is a distance with explicit reachability.
//
// An unreachable Result still carries core.Infinity in Distance so callers
// comparing raw values keep working.
type Result struct {
	Distance  int64
	Reachable bool
}

// unreachable is the Result for unknown or unreached destinations.
var unreachable = Result{Distance: core.Infinity}

// newResult builds a Result from the (distance, ok) pair of a Lookup.
func newResult(d int64, ok bool) Result {
	if !ok {
		return unreachable
	}

	return Result{Distance: d, Reachable: true}
}

// String renders the distance, or "unreachable".
func (r Result) String() string {
	if !r.Reachable {
		return "unreachable"
	}

	return strconv.FormatInt(r.Distance, 10)
}
