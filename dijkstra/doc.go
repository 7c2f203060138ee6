// Package dijkstra provides a generic implementation of Dijkstra's
// shortest-path algorithm over implicit graphs with non-negative edge weights.
//
// Overview:
//
//   - The graph is described by a successor function func(S) iter.Seq2[S, W]
//     that lazily yields (next state, weight) pairs. Nothing is materialized
//     up front, so state spaces may be huge or unbounded.
//   - States are any comparable type; weights are any integer or float type.
//   - The search stops at the first settled state accepted by the goal predicate.
//   - One or many seeds may start the search, each with its own initial distance.
//
// When to use:
//
//   - Grid mazes with per-cell entry costs (see package gridgraph).
//   - Puzzles whose state combines position with extra context
//     (heading, keys collected, steps since the last turn, ...).
//   - For all-unit weights, package bfs gives the same distances without a heap.
//
// Key features:
//
//   - Length / LengthFrom: cost only; the boolean separates "unreachable" from
//     a zero-cost path.
//   - Search: cost plus the reconstructed path and the number of settled states.
//   - Distances: the full distance map of everything reachable.
//   - DistanceMap: the frontier itself, exported for callers that drive their
//     own loop via Insert and PopNearest.
//   - WithMaxDistance: states farther than the cap are never queued.
//   - WithInfEdgeThreshold: edges with weight ≥ threshold are impassable.
//
// Determinism:
//
//   - Among states with equal distance, the one whose distance was recorded
//     first is settled first. Identical inputs yield identical results.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) over the V states and E edges actually visited.
//   - Each state is settled at most once; each improvement pushes one heap entry.
//   - Space: O(V + E) for the settled set and the lazy heap.
//
// Error handling:
//
//   - An unreachable goal is reported with ok == false, never as an error.
//   - ErrNegativeWeight: panic value (wrapped with context) when a successor
//     function yields a negative weight or a seed has a negative distance.
//   - ErrBadMaxDistance: panic when WithMaxDistance gets a negative value.
//   - ErrBadInfThreshold: panic when WithInfEdgeThreshold gets a value ≤ 0.
//
// API reference:
//
//	func Length[S comparable, W Weight](
//	    start S,
//	    isEnd func(S) bool,
//	    next func(S) iter.Seq2[S, W],
//	    opts ...Option[W],
//	) (W, bool)
//
//	func LengthFrom(seeds []Seed[S, W], isEnd, next, opts...) (W, bool)
//	func Search(seeds []Seed[S, W], isEnd, next, opts...) Result[S, W]
//	func Distances(seeds []Seed[S, W], next, opts...) map[S]W
//
// Thread safety:
//
//   - Each call owns its state; concurrent calls are safe as long as the
//     successor function is.
package dijkstra
