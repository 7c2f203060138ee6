// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import (
	"errors"
	"iter"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNilGrid indicates NewGridGraph was given a nil grid.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: NW, N, NE, W, E, SW, S, SE.
	Conn8
)

// Directions returns the step directions for the connectivity.
func (c Connectivity) Directions() iter.Seq[grid.Direction] {
	if c == Conn8 {
		return grid.Adjacent()
	}
	return grid.Cardinals()
}

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}
	return "4"
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings: Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn4,
	}
}

// GridGraph treats a grid.Grid as a graph whose vertices are the passable cells.
// Edges join passable cells that are neighbors under Conn.
// The underlying grid is shared, not copied; mutating it changes the graph.
type GridGraph[T any] struct {
	Conn     Connectivity
	grid     *grid.Grid[T]
	passable func(T) bool
}
