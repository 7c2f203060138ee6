package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyInput indicates the input has no rows or no columns.
	ErrEmptyInput = errors.New("grid: input must have at least one row and one column")
	// ErrRaggedInput indicates nested rows of differing lengths.
	ErrRaggedInput = errors.New("grid: all rows must have the same length")
	// ErrShapeMismatch indicates a drawing line whose width differs from the first line.
	ErrShapeMismatch = errors.New("grid: drawing lines must have the same width")
	// ErrOutOfBounds indicates coordinates outside [0,Height)×[0,Width).
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
	// ErrInvalidDigit indicates a rune that is not a decimal digit.
	ErrInvalidDigit = errors.New("grid: invalid digit")
)

// ShapeError reports the first drawing line whose width does not match.
// Line is 1-based.
type ShapeError struct {
	Line  int
	Width int
	Want  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: line %d has width %d, want %d", ErrShapeMismatch, e.Line, e.Width, e.Want)
}

// Unwrap allows errors.Is(err, ErrShapeMismatch).
func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }

// OutOfBoundsError reports an access outside the grid.
type OutOfBoundsError struct {
	Coords Coords
	Bounds Bounds
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: %v not within %dx%d", ErrOutOfBounds, e.Coords, e.Bounds.Height, e.Bounds.Width)
}

// Unwrap allows errors.Is(err, ErrOutOfBounds).
func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// CellParseError wraps a failure to convert the cell at Coords.
type CellParseError struct {
	Coords Coords
	Err    error
}

func (e *CellParseError) Error() string {
	return fmt.Sprintf("grid: cannot parse cell %v: %v", e.Coords, e.Err)
}

func (e *CellParseError) Unwrap() error { return e.Err }
