package gridgraph

import (
	"iter"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// ExpandIsland finds a minimum‐conversion path of impassable (“water”) cells
// connecting any cell of component srcComp to any cell of component dstComp,
// as identified by ConnectedComponents(). Each water‐cell conversion costs 1.
// Returns the cells of the path (including the start and end land cells) and
// the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi‐source search from all srcComp cells with 0/1 weights:
//     • Moving into a passable cell   → cost 0
//     • Moving into a water cell      → cost 1
//  3. Stop when any dstComp cell is settled.
//  4. Reconstruct the path from predecessors.
//
// Complexity: O(W·H·d·log(W·H)).
// Memory:     O(W·H) for distances and predecessors.
func (gg *GridGraph[T]) ExpandIsland(srcComp, dstComp int) (path []grid.Coords, cost int64, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}

	seeds := make([]dijkstra.Seed[grid.Coords, int64], len(comps[srcComp]))
	for i, c := range comps[srcComp] {
		seeds[i] = dijkstra.Seed[grid.Coords, int64]{State: c}
	}
	dstSet := make(map[grid.Coords]struct{}, len(comps[dstComp]))
	for _, c := range comps[dstComp] {
		dstSet[c] = struct{}{}
	}
	isDst := func(c grid.Coords) bool {
		_, ok := dstSet[c]
		return ok
	}

	res := dijkstra.Search(seeds, isDst, gg.conversionEdges)
	if !res.Found {
		return nil, 0, ErrNoPath
	}

	return res.Path, res.Distance, nil
}

// conversionEdges leads to every in-bounds neighbor: land costs 0, water costs 1.
func (gg *GridGraph[T]) conversionEdges(c grid.Coords) iter.Seq2[grid.Coords, int64] {
	return func(yield func(grid.Coords, int64) bool) {
		for n := range gg.around(c) {
			var step int64
			if !gg.passable(n.Get()) {
				step = 1
			}
			if !yield(n.Coords(), step) {
				return
			}
		}
	}
}
