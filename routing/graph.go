package routing

import (
	"fmt"
	"sort"
)

// Edge is one outgoing connection of a node: the neighbor key and the
// non-negative cost of traversing the connection.
type Edge struct {
	// To is the neighbor node key.
	To string

	// Cost is the traversal cost of this edge.
	Cost float64
}

// Graph is the immutable in-memory model of one routing problem:
// a set of named nodes, directed weighted edges, the distinguished start
// and goal keys, and optional per-node heuristic attributes.
//
// A Graph is constructed once per run by NewGraph and never mutated
// afterwards; Search treats it as read-only, so a single Graph may be
// shared across concurrent runs without locking.
type Graph struct {
	adj   map[string][]Edge        // node key → outgoing edges, sorted by target key
	info  map[string]HeuristicInfo // node key → auxiliary attributes (sparse)
	keys  []string                 // all node keys, sorted ascending
	start string
	goal  string
}

// NewGraph builds and validates a Graph.
//
// nodes declares every node key; edges maps a node key to its outgoing
// (neighbor → cost) connections; info carries the optional heuristic
// attributes keyed by node.
//
// Validation (fail-fast, in order):
//  1. start must appear in nodes (ErrStartNotFound).
//  2. goal must appear in nodes (ErrGoalNotFound).
//  3. every edge source must be a declared node (ErrUnknownNode).
//  4. no edge may carry a negative cost (ErrNegativeCost).
//
// An edge *target* absent from nodes is deliberately not rejected here:
// it surfaces as a descriptive ErrUnknownNode during traversal, when the
// engine first tries to discover it. This keeps construction O(V+E) with
// a single pass over the edge set.
func NewGraph(nodes []string, edges map[string]map[string]float64, start, goal string, info map[string]HeuristicInfo) (*Graph, error) {
	// 1) Collect the node set and a sorted key slice.
	known := make(map[string]bool, len(nodes))
	keys := make([]string, 0, len(nodes))
	for _, k := range nodes {
		if known[k] {
			continue // tolerate duplicate declarations
		}
		known[k] = true
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// 2) Start and goal must both be declared nodes.
	if !known[start] {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if !known[goal] {
		return nil, fmt.Errorf("%w: %q", ErrGoalNotFound, goal)
	}

	// 3) Build the adjacency map, validating sources and costs.
	//    Targets are validated lazily at traversal time (see doc above).
	adj := make(map[string][]Edge, len(edges))
	for from, out := range edges {
		if !known[from] {
			return nil, fmt.Errorf("%w: edge source %q", ErrUnknownNode, from)
		}
		list := make([]Edge, 0, len(out))
		for to, cost := range out {
			if cost < 0 {
				return nil, fmt.Errorf("%w: edge %s→%s cost=%g", ErrNegativeCost, from, to, cost)
			}
			list = append(list, Edge{To: to, Cost: cost})
		}
		// Sort outgoing edges by target key so traversal order is reproducible.
		sort.Slice(list, func(i, j int) bool { return list[i].To < list[j].To })
		adj[from] = list
	}

	// 4) Keep only attributes for declared nodes; stray keys are dropped.
	attrs := make(map[string]HeuristicInfo, len(info))
	for k, v := range info {
		if known[k] {
			attrs[k] = v
		}
	}

	return &Graph{adj: adj, info: attrs, keys: keys, start: start, goal: goal}, nil
}

// Keys returns all node keys in ascending order. The returned slice is a
// copy; callers may modify it freely.
func (g *Graph) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)

	return out
}

// Start returns the distinguished start key.
func (g *Graph) Start() string { return g.start }

// Goal returns the distinguished goal key.
func (g *Graph) Goal() string { return g.goal }

// Has reports whether key is a declared node of the graph.
func (g *Graph) Has(key string) bool {
	_, ok := g.info[key]
	if ok {
		return true
	}
	// info is sparse; fall back to a binary search over the sorted keys.
	i := sort.SearchStrings(g.keys, key)

	return i < len(g.keys) && g.keys[i] == key
}

// Neighbors returns the outgoing edges of key, sorted by target key.
// A node with no declared connections yields an empty slice; an unknown
// key yields ErrUnknownNode.
func (g *Graph) Neighbors(key string) ([]Edge, error) {
	if !g.Has(key) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, key)
	}

	return g.adj[key], nil
}

// Info returns the auxiliary heuristic attributes of key, with ok=false
// when no attributes were supplied for that node.
func (g *Graph) Info(key string) (HeuristicInfo, bool) {
	h, ok := g.info[key]

	return h, ok
}
