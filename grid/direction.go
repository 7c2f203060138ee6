package grid

import (
	"fmt"
	"iter"
)

// Direction is a unit step on the grid. The values are laid out as a 3×3
// block so that Delta and Neg are arithmetic:
//
//	NorthWest North NorthEast
//	West      Here  East
//	SouthWest South SouthEast
type Direction int

const (
	NorthWest Direction = iota
	North
	NorthEast
	West
	Here
	East
	SouthWest
	South
	SouthEast
)

var directionNames = [...]string{
	"NorthWest", "North", "NorthEast",
	"West", "Here", "East",
	"SouthWest", "South", "SouthEast",
}

// cardinalOrder and adjacentOrder fix the iteration order of Cardinals and Adjacent.
var (
	cardinalOrder = [4]Direction{North, East, South, West}
	adjacentOrder = [8]Direction{NorthWest, North, NorthEast, West, East, SouthWest, South, SouthEast}
)

// fromDelta maps a (dy, dx) pair with components in {-1,0,1} to a Direction.
func fromDelta(dy, dx int) Direction {
	return Direction((dy+1)*3 + (dx + 1))
}

// Delta returns the row and column offsets of d, each in {-1, 0, 1}.
// Complexity: O(1).
func (d Direction) Delta() (dy, dx int) {
	return int(d)/3 - 1, int(d)%3 - 1
}

// IsCardinal reports whether d is one of North, East, South, West.
func (d Direction) IsCardinal() bool {
	dy, dx := d.Delta()
	return (dy == 0) != (dx == 0)
}

// IsDiagonal reports whether d moves along both axes.
func (d Direction) IsDiagonal() bool {
	dy, dx := d.Delta()
	return dy != 0 && dx != 0
}

// Neg returns the opposite direction. Here is its own opposite.
func (d Direction) Neg() Direction {
	return SouthEast - d
}

// TurnRight rotates d by 90° clockwise (North → East → South → West).
// Diagonals rotate among diagonals and Here is fixed.
func (d Direction) TurnRight() Direction {
	dy, dx := d.Delta()
	return fromDelta(dx, -dy)
}

// TurnLeft rotates d by 90° counterclockwise (North → West → South → East).
func (d Direction) TurnLeft() Direction {
	dy, dx := d.Delta()
	return fromDelta(-dx, dy)
}

func (d Direction) String() string {
	if d < NorthWest || d > SouthEast {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Cardinals yields North, East, South, West in that order.
func Cardinals() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for _, d := range cardinalOrder {
			if !yield(d) {
				return
			}
		}
	}
}

// Adjacent yields the eight non-Here directions in row-major order
// (NorthWest, North, NorthEast, West, East, SouthWest, South, SouthEast).
func Adjacent() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for _, d := range adjacentOrder {
			if !yield(d) {
				return
			}
		}
	}
}
