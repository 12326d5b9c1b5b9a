// Package routing defines the core types, heuristic modes, and sentinel
// errors for the A* route search over weighted city graphs.
//
// This file declares the Mode enumeration, the Result record returned by
// Search, the per-node HeuristicInfo attributes, and all sentinel errors.
//
// Errors (sentinel):
//
//	– ErrStartNotFound     if the start key is absent from the node set.
//	– ErrGoalNotFound      if the goal key is absent from the node set.
//	– ErrUnknownNode       if an edge references a node that does not exist.
//	– ErrNegativeCost      if an edge carries a negative cost.
//	– ErrMissingHeuristic  if a mode requires auxiliary data a node lacks.
//	– ErrInvalidMode       if a Mode value is outside the closed enumeration.
//	– ErrNoPath            if the frontier empties before reaching the goal.
package routing

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by graph construction, heuristic evaluation,
// and the search engine.
var (
	// ErrStartNotFound indicates the start key is not among the graph's nodes.
	ErrStartNotFound = errors.New("routing: start node not found in graph")

	// ErrGoalNotFound indicates the goal key is not among the graph's nodes.
	ErrGoalNotFound = errors.New("routing: goal node not found in graph")

	// ErrUnknownNode indicates an edge references a node key that was never declared.
	ErrUnknownNode = errors.New("routing: edge references unknown node")

	// ErrNegativeCost indicates a negative edge cost was detected in the graph.
	ErrNegativeCost = errors.New("routing: negative edge cost encountered")

	// ErrMissingHeuristic indicates the selected mode needs line-of-sight /
	// altitude attributes that were not supplied for a node.
	ErrMissingHeuristic = errors.New("routing: heuristic attributes missing for node")

	// ErrInvalidMode indicates a Mode value outside {ModeNone, ModeSimple, ModeAdvanced}.
	ErrInvalidMode = errors.New("routing: invalid heuristic mode")

	// ErrNoPath indicates the goal is unreachable from the start.
	ErrNoPath = errors.New("routing: no path from start to goal")
)

// Mode selects the admissibility heuristic used by Search.
//
// The enumeration is closed: any value outside the three constants is
// rejected with ErrInvalidMode wherever a Mode is consumed.
type Mode int

const (
	// ModeNone disables the heuristic entirely; Search degenerates to
	// uniform-cost (Dijkstra) behavior.
	ModeNone Mode = iota

	// ModeSimple estimates remaining cost by the node's line-of-sight distance.
	ModeSimple

	// ModeAdvanced estimates remaining cost by the Euclidean combination
	// sqrt(lineOfSight² + altitudeDiff²).
	ModeAdvanced
)

// String returns the canonical lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeSimple:
		return "simple"
	case ModeAdvanced:
		return "advanced"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a textual mode name into a Mode value.
// Recognized names are "none", "simple" and "advanced"; anything else
// yields ErrInvalidMode with the offending name attached.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "none":
		return ModeNone, nil
	case "simple":
		return ModeSimple, nil
	case "advanced":
		return ModeAdvanced, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, name)
	}
}

// Modes lists all valid heuristic modes in their canonical run order
// (none, simple, advanced).
func Modes() []Mode {
	return []Mode{ModeNone, ModeSimple, ModeAdvanced}
}

// HeuristicInfo carries the optional per-node auxiliary attributes used by
// ModeSimple and ModeAdvanced. Both values are non-negative estimates
// supplied with the problem input; nodes without a block simply have no
// HeuristicInfo attached.
type HeuristicInfo struct {
	// LineOfSight is the straight-line distance estimate to the goal.
	LineOfSight float64

	// AltitudeDiff is the altitude difference to the goal.
	AltitudeDiff float64
}

// Result is the immutable outcome of one Search run.
type Result struct {
	// Cost is the total cost of the returned path.
	Cost float64

	// Path lists node keys from start to goal inclusive.
	Path []string

	// ExpandedNodes counts the nodes finalized before the goal was popped;
	// the goal itself is not counted.
	ExpandedNodes int

	// Heuristic maps every node key to the heuristic value precomputed for
	// the mode of this run.
	Heuristic map[string]float64
}
