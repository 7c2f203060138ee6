// Package dijkstra defines core types and configuration options for
// Dijkstra's shortest-path search over implicit graphs.
//
// The graph is never materialized: callers describe it with a successor
// function that, given a state, lazily yields (next state, edge weight)
// pairs. States may be any comparable type (grid coordinates, structs
// combining position and heading, small arrays, ...).
//
// Options:
//
//	– MaxDistance:      optional cap; states farther than this are not explored.
//	– InfEdgeThreshold: edges with weight ≥ this threshold are treated as impassable.
//
// Errors (panic values):
//
//	– ErrNegativeWeight  if a successor function yields a negative weight.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors used as panic values by the Dijkstra implementation.
// An unreachable goal is not an error; it is reported through a boolean.
var (
	// ErrNegativeWeight indicates that a successor function yielded a negative weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Weight is the set of numeric types usable as edge weights and distances.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Seed is an initial (state, distance) pair placed on the frontier before
// the search starts expanding successors.
type Seed[S comparable, W Weight] struct {
	State    S
	Distance W
}

// Result is the outcome of Search.
//
// Found is false when the frontier emptied (or MaxDistance was exceeded)
// before any goal state was popped; Goal, Distance and Path are then zero.
// Path runs from the seed the best route started at to Goal, inclusive.
// Settled counts the states whose distance was finalized.
type Result[S comparable, W Weight] struct {
	Goal     S
	Distance W
	Path     []S
	Found    bool
	Settled  int
}

// Options configures the behavior of the search.
//
// MaxDistance is honoured when HasMaxDistance is set: states whose distance
// would exceed it are neither expanded nor reported. InfEdgeThreshold is
// honoured when HasInfEdgeThreshold is set: edges weighing at least that
// much are skipped entirely.
type Options[W Weight] struct {
	MaxDistance         W
	HasMaxDistance      bool
	InfEdgeThreshold    W
	HasInfEdgeThreshold bool
}

// Option represents a functional option for configuring a search.
type Option[W Weight] func(*Options[W])

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance[W Weight](max W) Option[W] {
	if max < 0 {
		// Panic to signal invalid configuration early, as the option is built.
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options[W]) {
		o.MaxDistance = max
		o.HasMaxDistance = true
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Zero or negative thresholds panic with ErrBadInfThreshold.
func WithInfEdgeThreshold[W Weight](threshold W) Option[W] {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options[W]) {
		o.InfEdgeThreshold = threshold
		o.HasInfEdgeThreshold = true
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions[W Weight]() Options[W] {
	return Options[W]{}
}
