// Package gridpath is a toolkit for 2-D grid puzzles: a generic grid
// container, shortest-path search over arbitrary state spaces, and adapters
// that turn grids into graphs.
//
// What is in the box?
//
//	grid/          Coords, Bounds, Direction, Grid[T] and Cell[T]; parsing of
//	               character drawings, neighbor iteration, optional wraparound
//	dijkstra/      generic Dijkstra over func(S) iter.Seq2[S, W] successors,
//	               multi-seed search, path reconstruction, DistanceMap frontier
//	bfs/           the unit-weight variant: breadth-first walk, Length,
//	               Reachable and connected Components
//	gridgraph/     GridGraph[T]: passable cells with 4- or 8-connectivity,
//	               unit and weighted paths, islands and island bridging
//	cmd/gridpath   command-line front end (path, cost, life, islands)
//
// States are plain comparable values. A search never needs the whole graph
// up front: successors are produced on demand, so infinite or implicitly
// defined spaces work as long as the goal is reachable.
//
// Quick example:
//
//	g, _ := grid.ParseChars("S.#\n#..\n##E")
//	gg, _ := gridgraph.NewGridGraph(g, func(r rune) bool { return r != '#' }, gridgraph.DefaultGridOptions())
//	steps, ok := gg.UnitPath(grid.Coords{Y: 0, X: 0}, grid.Coords{Y: 2, X: 2})
//	// steps == 4, ok == true
//
//	go get github.com/katalvlaran/gridpath
package gridpath
