// Package gridgraph provides utilities to treat a grid.Grid as a graph.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Unit-step and weighted shortest paths between cells
//   - Identification of connected components of passable cells
//   - Shortest-path expansions between components
//
// A passable predicate decides which cells are vertices ("land"); the rest are "water".
package gridgraph

import (
	"iter"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// NewGridGraph wraps g. A nil passable treats every cell as passable.
// Returns ErrNilGrid if g is nil.
// Complexity: O(1); the grid is not copied.
func NewGridGraph[T any](g *grid.Grid[T], passable func(T) bool, opts GridOptions) (*GridGraph[T], error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if passable == nil {
		passable = func(T) bool { return true }
	}

	return &GridGraph[T]{
		Conn:     opts.Conn,
		grid:     g,
		passable: passable,
	}, nil
}

// From2D builds a GridGraph over a copy of values where cells ≥ 1 are land.
// Returns grid.ErrEmptyInput or grid.ErrRaggedInput for malformed input.
func From2D(values [][]int, conn Connectivity) (*GridGraph[int], error) {
	g, err := grid.FromRows(values)
	if err != nil {
		return nil, err
	}
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(g, func(v int) bool { return v >= 1 }, opts)
}

// Grid returns the underlying grid.
func (gg *GridGraph[T]) Grid() *grid.Grid[T] { return gg.grid }

// Passable reports whether c is in bounds and its cell is passable.
// Complexity: O(1).
func (gg *GridGraph[T]) Passable(c grid.Coords) bool {
	v, ok := gg.grid.Get(c)
	return ok && gg.passable(v)
}

// Neighbors yields the passable neighbors of c in direction order.
// c itself need not be passable.
func (gg *GridGraph[T]) Neighbors(c grid.Coords) iter.Seq[grid.Coords] {
	return func(yield func(grid.Coords) bool) {
		for n := range gg.around(c) {
			if gg.passable(n.Get()) && !yield(n.Coords()) {
				return
			}
		}
	}
}

// around yields every in-bounds neighbor cell of c under Conn.
func (gg *GridGraph[T]) around(c grid.Coords) iter.Seq[grid.Cell[T]] {
	return func(yield func(grid.Cell[T]) bool) {
		b := gg.grid.Bounds()
		for d := range gg.Conn.Directions() {
			n, ok := b.MoveIn(c, d)
			if !ok {
				continue
			}
			if !yield(gg.grid.Cell(n)) {
				return
			}
		}
	}
}

// UnitPath returns the fewest steps from one cell to another through passable
// cells, or false when to cannot be reached.
// Complexity: O(W·H·d).
func (gg *GridGraph[T]) UnitPath(from, to grid.Coords) (int, bool) {
	return bfs.Length(from, func(c grid.Coords) bool { return c == to }, gg.Neighbors)
}

// WeightedEdges returns a successor function for dijkstra whose edges lead to
// passable neighbors, each weighted by cost of the cell being entered.
func (gg *GridGraph[T]) WeightedEdges(cost func(grid.Cell[T]) int64) func(grid.Coords) iter.Seq2[grid.Coords, int64] {
	return func(c grid.Coords) iter.Seq2[grid.Coords, int64] {
		return func(yield func(grid.Coords, int64) bool) {
			for n := range gg.around(c) {
				if !gg.passable(n.Get()) {
					continue
				}
				if !yield(n.Coords(), cost(n)) {
					return
				}
			}
		}
	}
}

// CheapestPath returns the minimum total entry cost from one cell to another
// through passable cells; the starting cell's own cost is not counted.
// Complexity: O(W·H·d·log(W·H)).
func (gg *GridGraph[T]) CheapestPath(from, to grid.Coords, cost func(grid.Cell[T]) int64) (int64, bool) {
	return dijkstra.Length(from, func(c grid.Coords) bool { return c == to }, gg.WeightedEdges(cost))
}

// CheapestRoute is CheapestPath that also returns the cells along the route,
// both ends included.
func (gg *GridGraph[T]) CheapestRoute(from, to grid.Coords, cost func(grid.Cell[T]) int64) ([]grid.Coords, int64, bool) {
	res := dijkstra.Search(
		[]dijkstra.Seed[grid.Coords, int64]{{State: from}},
		func(c grid.Coords) bool { return c == to },
		gg.WeightedEdges(cost),
	)

	return res.Path, res.Distance, res.Found
}
