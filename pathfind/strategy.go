package pathfind

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy indicates that ParseStrategy or New got an unsupported strategy.
var ErrUnknownStrategy = errors.New("pathfind: unknown strategy")

// Strategy selects the shortest-distance algorithm behind a Finder.
type Strategy int

const (
	// Relaxation is the bounded Bellman-Ford style relaxation (package bellmanford).
	Relaxation Strategy = iota

	// PriorityQueue is the Dijkstra style frontier expansion (package dijkstra).
	PriorityQueue
)

// String returns the canonical name of s.
func (s Strategy) String() string {
	switch s {
	case Relaxation:
		return "relaxation"
	case PriorityQueue:
		return "priority-queue"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a case-insensitive name to a Strategy.
// Accepted names: "relaxation", "bellman-ford", "bellmanford" and
// "priority-queue", "priority", "dijkstra".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "relaxation", "bellman-ford", "bellmanford":
		return Relaxation, nil
	case "priority-queue", "priority", "dijkstra":
		return PriorityQueue, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
