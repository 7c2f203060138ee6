package gridgraph

import (
	"slices"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// ConnectedComponents finds all contiguous regions (“islands”) of passable
// cells according to gg.Conn connectivity.
// Components are ordered by their first cell in row-major order, and the
// cells of each component are sorted row-major.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph[T]) ConnectedComponents() [][]grid.Coords {
	land := func(yield func(grid.Coords) bool) {
		for c, v := range gg.grid.All() {
			if gg.passable(v) && !yield(c) {
				return
			}
		}
	}

	comps := bfs.Components(land, gg.Neighbors)
	for _, comp := range comps {
		slices.SortFunc(comp, rowMajor)
	}

	return comps
}

// rowMajor orders coordinates top to bottom, then left to right.
func rowMajor(a, b grid.Coords) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
