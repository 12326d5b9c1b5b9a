// Package routing implements best-first (A*) shortest-path search on
// weighted city graphs with interchangeable admissibility heuristics.
//
// Search computes the minimum-cost path from the graph's start node to
// its goal node in a graph with non-negative edge costs. It processes
// nodes in order of increasing priority (g-cost + heuristic) using a
// min-heap frontier, relaxing edges and updating costs accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is finalized at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation (Push/Pop) costs O(log N), where N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for cost, predecessor and heuristic maps.
//   - O(E) worst-case for frontier entries under "lazy decrease-key".
//
// Notes on implementation choices:
//
//   - Heuristic values are precomputed once per run for every node, so
//     they are stable across the whole search.
//   - We use a "lazy" decrease-key strategy: improved costs push duplicate
//     frontier entries, and stale entries are skipped on pop once their
//     node is finalized.
//   - Equal-priority frontier entries are ordered by ascending node key,
//     so tied searches are fully reproducible.
package routing

import (
	"container/heap"
	"fmt"
)

// Search runs A* on g under the given heuristic mode and returns the
// Result record: total cost, the start→goal path, the count of finalized
// nodes, and the precomputed heuristic snapshot.
//
// Failure conditions:
//
//   - ErrInvalidMode / ErrMissingHeuristic from heuristic precomputation.
//   - ErrUnknownNode when traversal discovers an edge to an undeclared node.
//   - ErrNoPath when the frontier empties before the goal is popped.
//
// The graph is read-only throughout; all mutable state is owned by this
// single run, so independent runs over one Graph need no coordination.
func Search(g *Graph, mode Mode) (*Result, error) {
	// 1) Precompute h(n) for every node. Fails fast on invalid modes or
	//    missing attributes before any traversal work is done.
	values, err := Values(g, mode)
	if err != nil {
		return nil, err
	}

	// 2) Prepare the per-run mutable state.
	V := len(g.keys)
	r := &searchRun{
		g:      g,
		h:      values,
		dist:   make(map[string]float64, V),
		prev:   make(map[string]string, V),
		closed: make(map[string]bool, V),
		pq:     make(frontier, 0, V),
	}

	// 3) Seed the frontier with (h(start), start) at g-cost 0.
	r.init()

	// 4) Run the main loop until the goal is popped or the frontier empties.
	return r.process()
}

// searchRun holds the mutable state for a single Search execution.
type searchRun struct {
	g      *Graph             // input graph; read-only
	h      map[string]float64 // node key → precomputed heuristic value
	dist   map[string]float64 // node key → best known g-cost from start
	prev   map[string]string  // node key → predecessor on the best path
	closed map[string]bool    // node key → finalized?
	done   int                // count of finalized nodes
	pq     frontier           // min-heap of (priority, key) entries
}

// init seeds the search state: g-cost of start is 0 and the frontier
// holds a single entry for start with priority h(start).
func (r *searchRun) init() {
	r.dist[r.g.start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, frontierEntry{key: r.g.start, priority: r.h[r.g.start]})
}

// process is the core A* loop: repeatedly pop the minimum-priority entry,
// terminate when the goal surfaces, otherwise finalize the node and relax
// its outgoing edges.
func (r *searchRun) process() (*Result, error) {
	goal := r.g.goal
	for r.pq.Len() > 0 {
		// 1) Pop the smallest (priority, key) entry.
		entry := heap.Pop(&r.pq).(frontierEntry)
		u := entry.key

		// 2) Goal check happens before finalization: the goal itself is
		//    never counted among the expanded nodes.
		if u == goal {
			return r.assemble(), nil
		}

		// 3) Skip stale entries for nodes already finalized.
		if r.closed[u] {
			continue
		}

		// 4) Finalize u; its g-cost is now minimal.
		r.closed[u] = true
		r.done++

		// 5) Relax all outgoing edges of u.
		if err := r.relax(u); err != nil {
			return nil, err
		}
	}

	// 6) Frontier exhausted without popping the goal.
	return nil, fmt.Errorf("%w: %s → %s", ErrNoPath, r.g.start, goal)
}

// relax attempts to improve the g-cost of every neighbor of u. A strictly
// better tentative cost records the new g-cost and predecessor and pushes
// a fresh frontier entry; equal or worse candidates are ignored.
func (r *searchRun) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return err
	}

	base := r.dist[u]
	for _, e := range edges {
		// An edge may point at a node that was never declared; surface the
		// inconsistency here with the offending edge attached.
		hv, ok := r.h[e.To]
		if !ok {
			return fmt.Errorf("%w: edge %s→%s", ErrUnknownNode, u, e.To)
		}

		tentative := base + e.Cost
		if best, seen := r.dist[e.To]; seen && tentative >= best {
			continue
		}

		r.dist[e.To] = tentative
		r.prev[e.To] = u
		heap.Push(&r.pq, frontierEntry{key: e.To, priority: tentative + hv})
	}

	return nil
}

// assemble builds the immutable Result once the goal has been popped.
func (r *searchRun) assemble() *Result {
	return &Result{
		Cost:          r.dist[r.g.goal],
		Path:          r.reconstruct(),
		ExpandedNodes: r.done,
		Heuristic:     r.h,
	}
}

// reconstruct walks the predecessor chain from goal back to start and
// reverses it into start→goal order. When start equals goal the path is
// the single start key.
func (r *searchRun) reconstruct() []string {
	path := []string{r.g.goal}
	for cur := r.g.goal; cur != r.g.start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// frontierEntry is one (priority, key) pair awaiting expansion.
type frontierEntry struct {
	key      string
	priority float64
}

// frontier is a min-heap of frontierEntry ordered by ascending priority,
// with ties broken by ascending node key. The secondary key makes runs
// over tied inputs reproducible: of several equal-priority candidates the
// lexically smallest node is always expanded first.
type frontier []frontierEntry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority, then by node key on ties.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].key < f[j].key
}

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends a new entry; called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierEntry)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	entry := old[n-1]
	*f = old[:n-1]

	return entry
}
