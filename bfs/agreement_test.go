package bfs_test

import (
	"iter"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// TestLength_AgreesWithDijkstra runs both engines on random mazes: the unit
// variant must match the weighted engine with every weight fixed at 1.
func TestLength_AgreesWithDijkstra(t *testing.T) {
	rnd := rand.New(rand.NewSource(2024))
	bounds := grid.Bounds{Height: 12, Width: 15}

	for trial := 0; trial < 30; trial++ {
		walls := grid.Generate(bounds, func(grid.Coords) bool { return rnd.Intn(100) < 30 })
		walls.Set(grid.Coords{}, false)

		unit := func(c grid.Coords) iter.Seq[grid.Coords] {
			return func(yield func(grid.Coords) bool) {
				for n := range walls.Cell(c).CardinalNeighbors() {
					if !n.Get() && !yield(n.Coords()) {
						return
					}
				}
			}
		}
		weighted := func(c grid.Coords) iter.Seq2[grid.Coords, int] {
			return func(yield func(grid.Coords, int) bool) {
				for n := range unit(c) {
					if !yield(n, 1) {
						return
					}
				}
			}
		}

		for goal := range bounds.All() {
			isEnd := func(c grid.Coords) bool { return c == goal }
			bd, bok := bfs.Length(grid.Coords{}, isEnd, unit)
			dd, dok := dijkstra.Length(grid.Coords{}, isEnd, weighted)
			if bok != dok || bd != dd {
				t.Fatalf("trial %d goal %v: bfs=(%d,%v) dijkstra=(%d,%v)\n%s", trial, goal, bd, bok, dd, dok, walls)
			}
		}
	}
}
