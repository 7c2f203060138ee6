package grid

import (
	"fmt"
	"iter"
)

// Cell is a cursor over one coordinate of a Grid. It holds a pointer to the
// grid, never a copy of its contents, so it observes later Set calls. Many
// cells may share one grid.
type Cell[T any] struct {
	grid *Grid[T]
	at   Coords
}

// Cell returns the cursor at c. It panics with an *OutOfBoundsError if c is
// outside the grid.
func (g *Grid[T]) Cell(c Coords) Cell[T] {
	g.mustContain(c)
	return Cell[T]{grid: g, at: c}
}

// GetCell returns the cursor at c, or false if c is outside the grid.
func (g *Grid[T]) GetCell(c Coords) (Cell[T], bool) {
	if !g.bounds.Contains(c) {
		return Cell[T]{}, false
	}
	return Cell[T]{grid: g, at: c}, true
}

// Get returns the value under the cursor.
func (c Cell[T]) Get() T { return c.grid.data[c.grid.bounds.index(c.at)] }

// Coords returns the cursor position.
func (c Cell[T]) Coords() Coords { return c.at }

// Y returns the cursor row.
func (c Cell[T]) Y() int { return c.at.Y }

// X returns the cursor column.
func (c Cell[T]) X() int { return c.at.X }

// Grid returns the grid the cursor points into.
func (c Cell[T]) Grid() *Grid[T] { return c.grid }

// Neighbor returns the cell one step away in direction d, or false if that
// step leaves the grid.
func (c Cell[T]) Neighbor(d Direction) (Cell[T], bool) {
	next, ok := c.grid.bounds.MoveIn(c.at, d)
	if !ok {
		return Cell[T]{}, false
	}
	return Cell[T]{grid: c.grid, at: next}, true
}

// NeighborWrap returns the cell one step away in direction d, wrapping
// around the grid edges.
func (c Cell[T]) NeighborWrap(d Direction) Cell[T] {
	return Cell[T]{grid: c.grid, at: c.grid.bounds.MoveInWrap(c.at, d)}
}

// North is Neighbor(North).
func (c Cell[T]) North() (Cell[T], bool) { return c.Neighbor(North) }

// South is Neighbor(South).
func (c Cell[T]) South() (Cell[T], bool) { return c.Neighbor(South) }

// East is Neighbor(East).
func (c Cell[T]) East() (Cell[T], bool) { return c.Neighbor(East) }

// West is Neighbor(West).
func (c Cell[T]) West() (Cell[T], bool) { return c.Neighbor(West) }

// Adjacent yields the up to eight in-bounds neighbours (cardinal and
// diagonal) in row-major order. Each call returns a fresh sequence.
func (c Cell[T]) Adjacent() iter.Seq[Cell[T]] {
	return c.neighbors(Adjacent())
}

// CardinalNeighbors yields the up to four in-bounds neighbours in
// North, East, South, West order.
func (c Cell[T]) CardinalNeighbors() iter.Seq[Cell[T]] {
	return c.neighbors(Cardinals())
}

// AdjacentWrap yields exactly eight neighbours, wrapping around the edges.
// On grids narrower than three cells the same cell may appear more than once.
func (c Cell[T]) AdjacentWrap() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for d := range Adjacent() {
			if !yield(c.NeighborWrap(d)) {
				return
			}
		}
	}
}

func (c Cell[T]) neighbors(dirs iter.Seq[Direction]) iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for d := range dirs {
			n, ok := c.Neighbor(d)
			if !ok {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

func (c Cell[T]) String() string {
	return fmt.Sprintf("%v=%v", c.at, c.Get())
}

// CellIs reports whether the value under c equals v.
func CellIs[T comparable](c Cell[T], v T) bool {
	return c.Get() == v
}

// CountAdjacent returns how many of c's in-bounds neighbours satisfy pred.
func CountAdjacent[T any](c Cell[T], pred func(T) bool) int {
	n := 0
	for nb := range c.Adjacent() {
		if pred(nb.Get()) {
			n++
		}
	}
	return n
}
