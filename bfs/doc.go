// Package bfs provides breadth-first search over implicit graphs whose edges
// all cost one, returning unweighted shortest-path distances, parent links,
// and visit order.
//
// What
//
//   - Explore states in non-decreasing distance (edge count) from one or more
//     start states. The graph is a successor function func(S) iter.Seq[S].
//   - Length / LengthFrom stop at the first visited state accepted by a goal
//     predicate and report its distance, or false when none is reachable.
//     They agree with dijkstra.Length when every weight is 1.
//   - Walk visits everything reachable and returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from state → distance (edges) from the nearest start
//   - Parent: map from state → its predecessor in the BFS tree
//   - Reachable and Components compute closures and connected groups.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a state is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are enqueued in the order the successor function yields them,
//	so the visit sequence is fully reproducible.
//
// Complexity (V = states reached, E = edges pulled)
//
//   - Time:   O(V + E)   (each state and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	d, ok := bfs.Length(start, func(c grid.Coords) bool { return c == end }, next)
//
//	res, err := bfs.Walk(
//	    []grid.Coords{start}, next,
//	    bfs.WithMaxDepth[grid.Coords](3),
//	    bfs.WithOnVisit(func(c grid.Coords, depth int) error { /* ... */ return nil }),
//	)
//
// Errors
//
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth). Walk
//     returns it; Length and LengthFrom panic with it.
//   - ErrNotReached       from Result.PathTo for a state never reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
