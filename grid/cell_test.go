package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

func digits3x3(t *testing.T) *grid.Grid[int] {
	t.Helper()
	g, err := grid.FromRows([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)
	return g
}

func values(seq func(func(grid.Cell[int]) bool)) []int {
	var out []int
	for c := range seq {
		out = append(out, c.Get())
	}
	return out
}

// TestCell_Corner walks every direction from the top-right corner, with
// and without wrapping.
func TestCell_Corner(t *testing.T) {
	g := digits3x3(t)
	cell, ok := g.GetCell(grid.Coords{Y: 0, X: 2})
	require.True(t, ok)
	assert.Equal(t, 3, cell.Get())
	assert.Equal(t, 0, cell.Y())
	assert.Equal(t, 2, cell.X())
	assert.Equal(t, grid.Coords{Y: 0, X: 2}, cell.Coords())
	assert.Same(t, g, cell.Grid())

	cases := []struct {
		dir  grid.Direction
		want int // 0 means no neighbour
		wrap int
	}{
		{grid.North, 0, 9},
		{grid.NorthEast, 0, 7},
		{grid.East, 0, 1},
		{grid.SouthEast, 0, 4},
		{grid.South, 6, 6},
		{grid.SouthWest, 5, 5},
		{grid.West, 2, 2},
		{grid.NorthWest, 0, 8},
	}
	for _, tc := range cases {
		t.Run(tc.dir.String(), func(t *testing.T) {
			n, ok := cell.Neighbor(tc.dir)
			if tc.want == 0 {
				assert.False(t, ok)
			} else {
				require.True(t, ok)
				assert.Equal(t, tc.want, n.Get())
			}
			assert.Equal(t, tc.wrap, cell.NeighborWrap(tc.dir).Get())
		})
	}

	_, ok = cell.North()
	assert.False(t, ok)
	_, ok = cell.East()
	assert.False(t, ok)
	s, ok := cell.South()
	require.True(t, ok)
	assert.True(t, grid.CellIs(s, 6))
	w, ok := cell.West()
	require.True(t, ok)
	assert.False(t, grid.CellIs(w, 6))
}

// TestCell_Sequences checks the lazy neighbour sequences and their order.
func TestCell_Sequences(t *testing.T) {
	g := digits3x3(t)
	corner := g.Cell(grid.Coords{Y: 0, X: 2})
	assert.Equal(t, []int{2, 5, 6}, values(corner.Adjacent()))
	assert.Equal(t, []int{8, 9, 7, 2, 1, 5, 6, 4}, values(corner.AdjacentWrap()))
	assert.Equal(t, []int{6, 2}, values(corner.CardinalNeighbors()))

	center := g.Cell(grid.Coords{Y: 1, X: 1})
	assert.Equal(t, []int{1, 2, 3, 4, 6, 7, 8, 9}, values(center.Adjacent()))
	assert.Equal(t, []int{2, 6, 8, 4}, values(center.CardinalNeighbors()))

	// Each call yields a fresh sequence.
	seq := center.CardinalNeighbors()
	assert.Equal(t, values(seq), values(seq))

	// Early termination.
	n := 0
	for range center.Adjacent() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)

	assert.Equal(t, 4, grid.CountAdjacent(center, func(v int) bool { return v%2 == 0 }))
}

// TestCell_ObservesMutation shows cells point into the grid rather than copy it.
func TestCell_ObservesMutation(t *testing.T) {
	g := digits3x3(t)
	c := g.Cell(grid.Coords{Y: 1, X: 1})
	g.Set(grid.Coords{Y: 1, X: 1}, 50)
	assert.Equal(t, 50, c.Get())
	assert.Equal(t, "(1,1)=50", c.String())
}
