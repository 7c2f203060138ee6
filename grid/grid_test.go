package grid_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestFilled_MapProperty: every cell of a filled grid equals the fill value,
// and mapping it equals a grid filled with f(v).
func TestFilled_MapProperty(t *testing.T) {
	b := grid.Bounds{Height: 3, Width: 4}
	g := grid.Filled(b, 7)
	for c, v := range g.All() {
		require.Equal(t, 7, v, "cell %v", c)
	}
	f := func(v int) string { return strconv.Itoa(v * 2) }
	assert.True(t, grid.Equal(grid.Map(g, f), grid.Filled(b, "14")))
	// Source untouched.
	assert.Equal(t, 7, g.AtYX(2, 3))
}

// TestFilled_ZeroArea checks that a zero-area grid is legal.
func TestFilled_ZeroArea(t *testing.T) {
	g := grid.Filled(grid.Bounds{Height: 0, Width: 5}, 'x')
	assert.Equal(t, 0, g.Height())
	assert.Equal(t, 5, g.Width())
	for range g.All() {
		t.Fatal("empty grid must not yield cells")
	}
	require.Panics(t, func() { grid.Filled(grid.Bounds{Height: -1, Width: 2}, 0) })
}

// TestGenerate_RowMajor verifies f is called once per coordinate in row-major order.
func TestGenerate_RowMajor(t *testing.T) {
	var calls []grid.Coords
	g := grid.Generate(grid.Bounds{Height: 2, Width: 3}, func(c grid.Coords) int {
		calls = append(calls, c)
		return c.Y*10 + c.X
	})
	assert.Equal(t, []grid.Coords{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, calls)
	assert.Equal(t, 12, g.AtYX(1, 2))
}

// TestFromRows_Errors verifies FromRows rejects empty or ragged inputs and
// never pads or truncates.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"Nil", nil, grid.ErrEmptyInput},
		{"EmptyRows", [][]int{}, grid.ErrEmptyInput},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyInput},
		{"Shorter", [][]int{{1, 2}, {3}}, grid.ErrRaggedInput},
		{"Longer", [][]int{{1, 2}, {3, 4}, {5, 6, 7}}, grid.ErrRaggedInput},
		{"EmptyFirstRow", [][]int{{}, {1, 2}}, grid.ErrRaggedInput},
		{"AllRowsEmpty", [][]int{{}, {}}, grid.ErrEmptyInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.FromRows(tc.rows)
			require.ErrorIs(t, err, tc.err)
			assert.Nil(t, g)
		})
	}
}

// TestFromRows_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestFromRows_DeepCopy(t *testing.T) {
	rows := [][]int{{1, 2, 3}, {4, 5, 6}}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	rows[0][0] = 99
	assert.Equal(t, 1, g.AtYX(0, 0))
	assert.Equal(t, grid.Bounds{Height: 2, Width: 3}, g.Bounds())
}

//----------------------------------------------------------------------------//
// Access
//----------------------------------------------------------------------------//

// TestAccess_OutOfBounds covers the uniform bounds policy.
func TestAccess_OutOfBounds(t *testing.T) {
	g := grid.Filled(grid.Bounds{Height: 2, Width: 2}, 1)
	outside := []grid.Coords{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, c := range outside {
		_, ok := g.Get(c)
		assert.False(t, ok, "Get(%v)", c)

		_, err := g.Lookup(c)
		require.ErrorIs(t, err, grid.ErrOutOfBounds)
		var oob *grid.OutOfBoundsError
		require.True(t, errors.As(err, &oob))
		assert.Equal(t, c, oob.Coords)

		assertPanicsOutOfBounds(t, func() { g.At(c) })
		assertPanicsOutOfBounds(t, func() { g.Set(c, 0) })
		assertPanicsOutOfBounds(t, func() { g.Cell(c) })
		_, ok = g.GetCell(c)
		assert.False(t, ok)
	}
}

func assertPanicsOutOfBounds(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, grid.ErrOutOfBounds)
	}()
	f()
}

func TestSetAndGetWrap(t *testing.T) {
	g := grid.Filled(grid.Bounds{Height: 2, Width: 3}, 0)
	g.Set(grid.Coords{Y: 1, X: 2}, 5)
	v, ok := g.Get(grid.Coords{Y: 1, X: 2})
	require.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, 5, g.GetWrap(-1, -1))
	assert.Equal(t, 5, g.GetWrap(3, 8))
}

//----------------------------------------------------------------------------//
// Transformation
//----------------------------------------------------------------------------//

// TestMapCells_Simultaneous applies a "grow if at least half the neighbours
// are set" rule once. Each cell must see the original grid: on the 1×4
// strip a sequential update would also turn on the last cell.
func TestMapCells_Simultaneous(t *testing.T) {
	grow := func(c grid.Cell[bool]) bool {
		if c.Get() {
			return true
		}
		set, total := 0, 0
		for n := range c.Adjacent() {
			total++
			if n.Get() {
				set++
			}
		}
		return set*2 >= total
	}

	strip, err := grid.ParseBoolDrawing("##..")
	require.NoError(t, err)
	assert.Equal(t, "###.\n", grid.MapCells(strip, grow).String())

	square, err := grid.ParseBoolDrawing(".#.\n#..\n...\n")
	require.NoError(t, err)
	want, err := grid.ParseBoolDrawing("##.\n#..\n...\n")
	require.NoError(t, err)
	next := grid.MapCells(square, grow)
	assert.True(t, grid.Equal(want, next), "got\n%v", next)
	// Source untouched.
	assert.False(t, square.AtYX(0, 0))
}

func TestTryMap(t *testing.T) {
	g, err := grid.ParseChars("12\n3x")
	require.NoError(t, err)
	_, err = grid.TryMap(g, func(r rune) (int, error) { return strconv.Atoi(string(r)) })
	var cpe *grid.CellParseError
	require.ErrorAs(t, err, &cpe)
	assert.Equal(t, grid.Coords{Y: 1, X: 1}, cpe.Coords)

	ok, err := grid.TryMap(grid.Filled(grid.Bounds{Height: 1, Width: 2}, "4"), strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, 4, ok.AtYX(0, 1))
}

// TestFilterRows keeps rows by a column-value predicate, the way
// elimination puzzles halve a candidate set.
func TestFilterRows(t *testing.T) {
	g, err := grid.ParseDigits("10110\n01001\n11100\n00111")
	require.NoError(t, err)

	kept, ok := g.FilterRows(func(row []int) bool { return row[0] == 1 })
	require.True(t, ok)
	assert.Equal(t, "10110\n11100\n", kept.String())
	assert.Equal(t, grid.Bounds{Height: 2, Width: 5}, kept.Bounds())

	none, ok := g.FilterRows(func([]int) bool { return false })
	assert.False(t, ok)
	assert.Nil(t, none)
}

// TestColumnsAndRows checks column/row extraction for column-wise reductions.
func TestColumnsAndRows(t *testing.T) {
	g, err := grid.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	col, ok := g.Column(1)
	require.True(t, ok)
	assert.Equal(t, []int{2, 5}, col)
	_, ok = g.Column(3)
	assert.False(t, ok)

	var cols [][]int
	for _, c := range g.Columns() {
		cols = append(cols, c)
	}
	assert.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, cols)

	row, ok := g.Row(1)
	require.True(t, ok)
	assert.Equal(t, []int{4, 5, 6}, row)
	row[0] = 100
	assert.Equal(t, 4, g.AtYX(1, 0), "Row must return a copy")
	_, ok = g.Row(-1)
	assert.False(t, ok)

	sums := map[int]int{}
	for y, r := range g.Rows() {
		for _, v := range r {
			sums[y] += v
		}
	}
	assert.Equal(t, map[int]int{0: 6, 1: 15}, sums)
}

func TestIteration(t *testing.T) {
	g, err := grid.ParseBoolDrawing("#.\n.#")
	require.NoError(t, err)

	var trues []grid.Coords
	for c := range grid.TrueCoords(g) {
		trues = append(trues, c)
	}
	assert.Equal(t, []grid.Coords{{0, 0}, {1, 1}}, trues)

	var cells []grid.Coords
	for c := range g.Cells() {
		cells = append(cells, c.Coords())
	}
	var coords []grid.Coords
	for c := range g.Coords() {
		coords = append(coords, c)
	}
	assert.Equal(t, coords, cells)
	assert.Len(t, coords, 4)

	assert.Equal(t, 2, grid.Count(g, func(b bool) bool { return b }))
	at, ok := grid.Find(g, func(b bool) bool { return !b })
	require.True(t, ok)
	assert.Equal(t, grid.Coords{Y: 0, X: 1}, at)
}

func TestCloneAndEqual(t *testing.T) {
	g := grid.Filled(grid.Bounds{Height: 2, Width: 2}, 'a')
	c := g.Clone()
	require.True(t, grid.Equal(g, c))
	c.Set(grid.Coords{}, 'b')
	assert.False(t, grid.Equal(g, c))
	assert.False(t, grid.Equal(g, grid.Filled(grid.Bounds{Height: 1, Width: 4}, 'a')))
	assert.Equal(t, "aa\naa\n", g.String())
	assert.Equal(t, "9797\n9797\n", grid.Map(g, func(r rune) int { return int(r) }).String())
}
