package grid

import (
	"fmt"
	"iter"
)

// Coords addresses a grid cell as (row, column). It is a comparable value
// and may be used directly as a map key or search state.
type Coords struct {
	Y, X int
}

// Add returns c moved one step in direction d. No bounds are checked.
func (c Coords) Add(d Direction) Coords {
	dy, dx := d.Delta()
	return Coords{Y: c.Y + dy, X: c.X + dx}
}

// ManhattanDistance returns |Δy| + |Δx| between c and o.
func (c Coords) ManhattanDistance(o Coords) int {
	return abs(c.Y-o.Y) + abs(c.X-o.X)
}

func (c Coords) String() string {
	return fmt.Sprintf("(%d,%d)", c.Y, c.X)
}

// Bounds describes the valid coordinate rectangle [0,Height)×[0,Width).
// A zero-area Bounds is legal and denotes an empty grid.
type Bounds struct {
	Height, Width int
}

// Area returns Height*Width.
func (b Bounds) Area() int {
	return b.Height * b.Width
}

// Contains reports whether c lies within b.
// Complexity: O(1).
func (b Bounds) Contains(c Coords) bool {
	return c.Y >= 0 && c.Y < b.Height && c.X >= 0 && c.X < b.Width
}

// index maps c to its row-major offset: Y*Width + X.
func (b Bounds) index(c Coords) int {
	return c.Y*b.Width + c.X
}

// coords converts a row-major offset back to Coords.
func (b Bounds) coords(i int) Coords {
	return Coords{Y: i / b.Width, X: i % b.Width}
}

// All yields every coordinate of b in row-major order.
func (b Bounds) All() iter.Seq[Coords] {
	return func(yield func(Coords) bool) {
		for y := 0; y < b.Height; y++ {
			for x := 0; x < b.Width; x++ {
				if !yield(Coords{Y: y, X: x}) {
					return
				}
			}
		}
	}
}

// Wrap reduces (y, x) into b using euclidean remainders, so -1 maps to the
// last row/column. It panics if b has zero area.
func (b Bounds) Wrap(y, x int) Coords {
	return Coords{Y: wrapIndex(y, b.Height), X: wrapIndex(x, b.Width)}
}

// MoveIn applies a unit step in direction d. It reports false if c is not
// within b or the step would leave b; nothing is wrapped or clamped. A
// diagonal step is atomic: if either axis leaves b the whole move fails.
// Complexity: O(1).
func (b Bounds) MoveIn(c Coords, d Direction) (Coords, bool) {
	if !b.Contains(c) {
		return Coords{}, false
	}
	next := c.Add(d)
	if !b.Contains(next) {
		return Coords{}, false
	}
	return next, true
}

// MoveInWrap applies a unit step in direction d; a coordinate leaving
// [0,dim) re-enters at the opposite edge. It panics if an axis that moves
// has zero extent.
// Complexity: O(1).
func (b Bounds) MoveInWrap(c Coords, d Direction) Coords {
	dy, dx := d.Delta()
	return Coords{
		Y: moveWrap(c.Y, b.Height, dy),
		X: moveWrap(c.X, b.Width, dx),
	}
}

func moveWrap(v, n, delta int) int {
	if delta == 0 {
		return v
	}
	return wrapIndex(v+delta, n)
}

func wrapIndex(v, n int) int {
	if n <= 0 {
		panic("grid: cannot wrap within an empty dimension")
	}
	return (v%n + n) % n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
