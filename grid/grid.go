package grid

import (
	"fmt"
	"strings"
)

// Grid is a dense row-major two-dimensional array of T.
// Invariant: len(data) == bounds.Height*bounds.Width; the grid is never resized.
type Grid[T any] struct {
	bounds Bounds
	data   []T
}

// Filled returns a grid of bounds b with every cell set to v.
// It panics if either dimension is negative.
// Complexity: O(H×W).
func Filled[T any](b Bounds, v T) *Grid[T] {
	g := alloc[T](b)
	for i := range g.data {
		g.data[i] = v
	}
	return g
}

// Generate returns a grid of bounds b where each cell holds f(coords).
// f is invoked exactly once per coordinate, in row-major order.
// Complexity: O(H×W) calls to f.
func Generate[T any](b Bounds, f func(Coords) T) *Grid[T] {
	g := alloc[T](b)
	for i := range g.data {
		g.data[i] = f(b.coords(i))
	}
	return g
}

// FromRows builds a grid from a rectangular nested slice, deep-copying it.
// Returns ErrRaggedInput if any row length differs from the first, and
// ErrEmptyInput if there are no rows or the rows have no cells. The length
// check runs first, so {{}, {1, 2}} is ragged rather than empty.
// Complexity: O(H×W).
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	w := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != w {
			return nil, ErrRaggedInput
		}
	}
	if w == 0 {
		return nil, ErrEmptyInput
	}
	g := alloc[T](Bounds{Height: len(rows), Width: w})
	for y, row := range rows {
		copy(g.data[y*w:], row)
	}
	return g, nil
}

func alloc[T any](b Bounds) *Grid[T] {
	if b.Height < 0 || b.Width < 0 {
		panic(fmt.Sprintf("grid: negative bounds %dx%d", b.Height, b.Width))
	}
	return &Grid[T]{bounds: b, data: make([]T, b.Area())}
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.bounds.Height }

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.bounds.Width }

// Bounds returns the grid's coordinate rectangle.
func (g *Grid[T]) Bounds() Bounds { return g.bounds }

// Get returns the value at c and whether c is within bounds.
func (g *Grid[T]) Get(c Coords) (T, bool) {
	if !g.bounds.Contains(c) {
		var zero T
		return zero, false
	}
	return g.data[g.bounds.index(c)], true
}

// Lookup returns the value at c or an *OutOfBoundsError.
func (g *Grid[T]) Lookup(c Coords) (T, error) {
	v, ok := g.Get(c)
	if !ok {
		return v, g.outOfBounds(c)
	}
	return v, nil
}

// At returns the value at c. It panics with an *OutOfBoundsError if c is
// outside the grid.
func (g *Grid[T]) At(c Coords) T {
	g.mustContain(c)
	return g.data[g.bounds.index(c)]
}

// AtYX is At(Coords{Y: y, X: x}).
func (g *Grid[T]) AtYX(y, x int) T {
	return g.At(Coords{Y: y, X: x})
}

// Set stores v at c. It panics with an *OutOfBoundsError if c is outside the grid.
func (g *Grid[T]) Set(c Coords, v T) {
	g.mustContain(c)
	g.data[g.bounds.index(c)] = v
}

// GetWrap returns the value at (y, x) reduced modulo the grid's dimensions,
// so negative and overflowing coordinates wrap around. Panics on an empty grid.
func (g *Grid[T]) GetWrap(y, x int) T {
	return g.data[g.bounds.index(g.bounds.Wrap(y, x))]
}

func (g *Grid[T]) mustContain(c Coords) {
	if !g.bounds.Contains(c) {
		panic(g.outOfBounds(c))
	}
}

func (g *Grid[T]) outOfBounds(c Coords) error {
	return &OutOfBoundsError{Coords: c, Bounds: g.bounds}
}

// Row returns a copy of row y, or false if y is out of range.
// Complexity: O(W).
func (g *Grid[T]) Row(y int) ([]T, bool) {
	if y < 0 || y >= g.bounds.Height {
		return nil, false
	}
	row := make([]T, g.bounds.Width)
	copy(row, g.rowView(y))
	return row, true
}

// Column returns a copy of column x, or false if x is out of range.
// Complexity: O(H).
func (g *Grid[T]) Column(x int) ([]T, bool) {
	if x < 0 || x >= g.bounds.Width {
		return nil, false
	}
	col := make([]T, g.bounds.Height)
	for y := range col {
		col[y] = g.data[y*g.bounds.Width+x]
	}
	return col, true
}

// rowView returns row y sharing the grid's storage, capped so appends
// cannot spill into the next row.
func (g *Grid[T]) rowView(y int) []T {
	w := g.bounds.Width
	return g.data[y*w : (y+1)*w : (y+1)*w]
}

// FilterRows returns a new grid holding, in order, the rows for which keep
// returns true. It reports false when no row survives, since the width of
// a grid without rows is undefined. keep must not retain or modify its argument.
func (g *Grid[T]) FilterRows(keep func(row []T) bool) (*Grid[T], bool) {
	w := g.bounds.Width
	data := make([]T, 0, len(g.data))
	h := 0
	for y := 0; y < g.bounds.Height; y++ {
		row := g.rowView(y)
		if keep(row) {
			data = append(data, row...)
			h++
		}
	}
	if h == 0 || w == 0 {
		return nil, false
	}
	return &Grid[T]{bounds: Bounds{Height: h, Width: w}, data: data}, true
}

// Clone returns a shallow copy of g: the cell values are copied, the values
// they point to (if any) are shared.
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)
	return &Grid[T]{bounds: g.bounds, data: data}
}

// String renders the grid one row per line. Runes are written as
// characters, booleans as '#' and '.', anything else with fmt.Sprint.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for y := 0; y < g.bounds.Height; y++ {
		for _, v := range g.rowView(y) {
			switch v := any(v).(type) {
			case rune:
				sb.WriteRune(v)
			case bool:
				if v {
					sb.WriteRune(DefaultOnChar)
				} else {
					sb.WriteByte('.')
				}
			default:
				fmt.Fprint(&sb, v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Map returns a new grid with f applied to every value of g. Bounds and
// coordinate order are preserved; g is not modified.
// Complexity: O(H×W).
func Map[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	out := &Grid[U]{bounds: g.bounds, data: make([]U, len(g.data))}
	for i, v := range g.data {
		out.data[i] = f(v)
	}
	return out
}

// TryMap is Map for fallible conversions. It stops at the first error and
// returns it wrapped in a *CellParseError.
func TryMap[T, U any](g *Grid[T], f func(T) (U, error)) (*Grid[U], error) {
	out := &Grid[U]{bounds: g.bounds, data: make([]U, len(g.data))}
	for i, v := range g.data {
		u, err := f(v)
		if err != nil {
			return nil, &CellParseError{Coords: g.bounds.coords(i), Err: err}
		}
		out.data[i] = u
	}
	return out, nil
}

// MapCells returns a new grid whose value at each coordinate is f applied
// to the Cell of g at that coordinate. Every call sees the original g, so
// the result models a simultaneous update (one cellular-automaton generation).
// Complexity: O(H×W) calls to f.
func MapCells[T, U any](g *Grid[T], f func(Cell[T]) U) *Grid[U] {
	out := &Grid[U]{bounds: g.bounds, data: make([]U, len(g.data))}
	for i := range g.data {
		out.data[i] = f(Cell[T]{grid: g, at: g.bounds.coords(i)})
	}
	return out
}

// Equal reports whether a and b have the same bounds and values.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.bounds != b.bounds {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells for which pred holds.
func Count[T any](g *Grid[T], pred func(T) bool) int {
	n := 0
	for _, v := range g.data {
		if pred(v) {
			n++
		}
	}
	return n
}
