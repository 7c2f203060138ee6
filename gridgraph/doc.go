// Package gridgraph treats a grid.Grid as a graph, enabling shortest paths,
// component analysis and minimal-cost “island” expansions.
//
// What:
//
//   - GridGraph wraps a *grid.Grid[T] with a passable predicate and a connectivity.
//   - UnitPath counts fewest steps through passable cells (package bfs).
//   - CheapestPath / CheapestRoute sum per-cell entry costs (package dijkstra).
//   - Identifies connected components (“islands”) of passable cells.
//   - Computes minimal conversions (0/1 weights) to connect two island sets.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Mazes: step counts and weighted traversal over parsed drawings.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity:
//
//   - UnitPath:            O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - CheapestPath:        O(W×H×d×log(W×H)), Memory: O(W×H).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - ExpandIsland:        O(W×H×d×log(W×H)), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrNilGrid: NewGridGraph was given a nil grid.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
//   - grid.ErrEmptyInput / grid.ErrRaggedInput from From2D.
package gridgraph
