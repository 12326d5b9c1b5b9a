package routing

import (
	"fmt"
	"math"
)

// Estimate computes the heuristic value of one node under the given mode.
//
// It is a pure function of the graph's static auxiliary attributes:
//
//   - ModeNone:     always 0 (uniform-cost search).
//   - ModeSimple:   the node's line-of-sight distance.
//   - ModeAdvanced: sqrt(lineOfSight² + altitudeDiff²).
//
// ModeSimple and ModeAdvanced fail with ErrMissingHeuristic when the node
// carries no auxiliary attributes; any other mode fails with
// ErrInvalidMode. Admissibility of the supplied attributes is the
// caller's responsibility and is not verified here.
func Estimate(g *Graph, key string, mode Mode) (float64, error) {
	switch mode {
	case ModeNone:
		return 0, nil
	case ModeSimple:
		info, ok := g.Info(key)
		if !ok {
			return 0, fmt.Errorf("%w: %q (mode %s)", ErrMissingHeuristic, key, mode)
		}

		return info.LineOfSight, nil
	case ModeAdvanced:
		info, ok := g.Info(key)
		if !ok {
			return 0, fmt.Errorf("%w: %q (mode %s)", ErrMissingHeuristic, key, mode)
		}

		return math.Sqrt(info.LineOfSight*info.LineOfSight + info.AltitudeDiff*info.AltitudeDiff), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}
}

// Values precomputes the heuristic value of every node in g for the given
// mode. The returned map is the snapshot carried into Result.Heuristic;
// Search computes it exactly once per run, so heuristic values are stable
// for the whole search.
func Values(g *Graph, mode Mode) (map[string]float64, error) {
	keys := g.Keys()
	values := make(map[string]float64, len(keys))
	for _, k := range keys {
		h, err := Estimate(g, k, mode)
		if err != nil {
			return nil, err
		}
		values[k] = h
	}

	return values, nil
}
