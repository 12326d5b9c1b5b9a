// Package routing provides a precise implementation of A* best-first
// search on static weighted city graphs, with three interchangeable
// admissibility heuristics.
//
// Overview:
//
//   - A Graph is an immutable model of one problem instance: named nodes,
//     directed non-negative edges, a start key, a goal key, and optional
//     per-node line-of-sight / altitude attributes.
//   - Search finds a minimum-cost start→goal path in O((V + E) log V)
//     time, expanding nodes in order of g-cost + h-value.
//   - Estimate and Values expose the heuristic evaluator on its own:
//     ModeNone (constant zero, uniform-cost search), ModeSimple
//     (line-of-sight distance), ModeAdvanced (Euclidean combination of
//     line-of-sight and altitude difference).
//
// Determinism:
//
//   - The frontier breaks priority ties by ascending node key, so the
//     returned path and the expanded-node count are identical across runs
//     and across processes, even when several equal-cost paths exist.
//   - Stale frontier entries left behind by cost improvements are skipped
//     once their node is finalized; with non-negative edge costs this is
//     equivalent to processing them and changes no result field.
//
// Thread safety:
//
//   - A Graph is never mutated after construction, and all search state is
//     owned by a single Search call. Concurrent Search runs over one Graph
//     need no synchronization.
//
// Error handling (sentinel):
//
//   - ErrStartNotFound / ErrGoalNotFound: graph construction rejects
//     problems whose distinguished keys are not declared nodes.
//   - ErrNegativeCost: edge costs must be non-negative; detected by a
//     fail-fast scan during construction.
//   - ErrUnknownNode: an edge references a node that was never declared;
//     detected during construction for sources, during traversal for
//     targets.
//   - ErrMissingHeuristic: ModeSimple/ModeAdvanced require attributes the
//     node does not carry.
//   - ErrInvalidMode: a Mode outside the closed enumeration.
//   - ErrNoPath: the goal is unreachable from the start.
package routing
