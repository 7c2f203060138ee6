// Package grid provides a dense, bounded two-dimensional container and the
// coordinate arithmetic needed to walk it.
//
// What:
//
//   - Coords{Y, X} addresses a cell (row, column); the origin is the
//     top-left (north-west) corner and Y grows southwards.
//   - Bounds{Height, Width} describes the valid rectangle
//     [0,Height)×[0,Width) and implements two movement policies:
//     MoveIn (fails when leaving the rectangle) and MoveInWrap
//     (re-enters on the opposite edge).
//   - Direction enumerates the eight compass directions plus Here and
//     supports Neg, TurnLeft and TurnRight.
//   - Grid[T] stores Height*Width values in row-major order. It is built
//     once (Filled, Generate, FromRows, ParseDrawing and friends) and then
//     either mutated cell by cell or transformed into a new grid with Map,
//     TryMap, MapCells or FilterRows. A Grid is never resized.
//   - Cell[T] is a cursor (grid pointer + coordinate) offering neighbour
//     navigation without re-deriving bounds logic at each call site.
//
// Access policy:
//
//	Get and GetCell report absence with a boolean; Lookup returns an
//	*OutOfBoundsError; At, AtYX, Set and Cell panic with an
//	*OutOfBoundsError. Leaving the grid through Neighbor/MoveIn is not an
//	error: it yields ok == false.
//
// Errors:
//
//   - ErrEmptyInput:    no rows, or a first row with no cells.
//   - ErrRaggedInput:   nested slices of differing length (FromRows).
//   - ErrShapeMismatch: a drawing line whose width differs from the first
//     line; reported as *ShapeError naming the line.
//   - ErrOutOfBounds:   coordinates outside the grid; *OutOfBoundsError.
//   - ErrInvalidDigit:  a non-digit rune passed to ParseDigits.
//
// Complexity:
//
//   - Construction, Map, MapCells, Clone: O(H×W) time and memory.
//   - Get/At/Set and neighbour lookups:   O(1).
//   - Column: O(H); Row: O(W).
//
// Iteration order is always row-major, so every operation is deterministic.
package grid
