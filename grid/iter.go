package grid

import "iter"

// All yields every (coords, value) pair in row-major order.
func (g *Grid[T]) All() iter.Seq2[Coords, T] {
	return func(yield func(Coords, T) bool) {
		for i, v := range g.data {
			if !yield(g.bounds.coords(i), v) {
				return
			}
		}
	}
}

// Coords yields every coordinate of g in row-major order.
func (g *Grid[T]) Coords() iter.Seq[Coords] {
	return g.bounds.All()
}

// Cells yields a Cell for every coordinate in row-major order.
func (g *Grid[T]) Cells() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for c := range g.bounds.All() {
			if !yield(Cell[T]{grid: g, at: c}) {
				return
			}
		}
	}
}

// Rows yields each row index with a view of that row. The view shares the
// grid's storage; callers must copy it to keep it past the next mutation.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y := 0; y < g.bounds.Height; y++ {
			if !yield(y, g.rowView(y)) {
				return
			}
		}
	}
}

// Columns yields each column index with a freshly allocated copy of that column.
func (g *Grid[T]) Columns() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for x := 0; x < g.bounds.Width; x++ {
			col, _ := g.Column(x)
			if !yield(x, col) {
				return
			}
		}
	}
}

// TrueCoords yields the coordinates of every true cell in row-major order.
func TrueCoords(g *Grid[bool]) iter.Seq[Coords] {
	return func(yield func(Coords) bool) {
		for c, v := range g.All() {
			if v && !yield(c) {
				return
			}
		}
	}
}

// Find returns the first coordinate, in row-major order, whose value
// satisfies pred.
func Find[T any](g *Grid[T], pred func(T) bool) (Coords, bool) {
	for c, v := range g.All() {
		if pred(v) {
			return c, true
		}
	}
	return Coords{}, false
}
