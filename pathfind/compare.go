package pathfind

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathdist/core"
)

// ErrDisagreement indicates that the two strategies answered differently.
var ErrDisagreement = errors.New("pathfind: strategies disagree")

// Comparison holds the answers of both strategies for one query.
type Comparison struct {
	From, To   int64
	Relaxation Result
	Priority   Result
}

// Agree reports whether both strategies returned the same Result.
func (c Comparison) Agree() bool { return c.Relaxation == c.Priority }

// Compare runs both strategies with default options on from→to.
//
// Disagreement is only an error when both endpoints are registered points:
// the strategies differ by design on unregistered IDs (the priority finder
// rejects them, the relaxation finder does not). Graphs with negative
// weights, or with connections to unregistered IDs, may legitimately
// disagree too.
func Compare(g *core.Graph, from, to int64) (Comparison, error) {
	c := Comparison{
		From:       from,
		To:         to,
		Relaxation: MustNew(Relaxation).Lookup(g, from, to),
		Priority:   MustNew(PriorityQueue).Lookup(g, from, to),
	}
	if c.Agree() || g == nil || !g.HasPoint(from) || !g.HasPoint(to) {
		return c, nil
	}

	return c, fmt.Errorf("%w: %d→%d relaxation=%s priority=%s",
		ErrDisagreement, from, to, c.Relaxation, c.Priority)
}
