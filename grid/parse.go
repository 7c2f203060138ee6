package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultOnChar is the rune ParseBoolDrawing treats as true.
const DefaultOnChar = '#'

// ParseDrawing builds a grid from a textual drawing: each line becomes a
// row and each rune a cell converted by parse. A single trailing newline
// and "\r\n" line endings are accepted.
//
// Errors:
//   - *ShapeError (errors.Is ErrShapeMismatch) naming the first line whose
//     rune count differs from the first line, even when the first line is empty.
//   - ErrEmptyInput if s has no lines or every line is empty.
//   - *CellParseError wrapping the first error returned by parse.
//
// No grid is returned alongside an error.
func ParseDrawing[T any](s string, parse func(rune) (T, error)) (*Grid[T], error) {
	lines := splitLines(s)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	w := utf8.RuneCountInString(lines[0])
	for i, line := range lines[1:] {
		if n := utf8.RuneCountInString(line); n != w {
			return nil, &ShapeError{Line: i + 2, Width: n, Want: w}
		}
	}
	if w == 0 {
		return nil, ErrEmptyInput
	}
	g := alloc[T](Bounds{Height: len(lines), Width: w})
	for y, line := range lines {
		x := 0
		for _, r := range line {
			v, err := parse(r)
			if err != nil {
				return nil, &CellParseError{Coords: Coords{Y: y, X: x}, Err: err}
			}
			g.data[y*w+x] = v
			x++
		}
	}
	return g, nil
}

// ParseChars builds a grid of the drawing's runes.
func ParseChars(s string) (*Grid[rune], error) {
	return ParseDrawing(s, func(r rune) (rune, error) { return r, nil })
}

// ParseBools builds a boolean grid in which on marks true cells and every
// other rune is false.
func ParseBools(s string, on rune) (*Grid[bool], error) {
	return ParseDrawing(s, func(r rune) (bool, error) { return r == on, nil })
}

// ParseBoolDrawing is ParseBools with DefaultOnChar ('#').
func ParseBoolDrawing(s string) (*Grid[bool], error) {
	return ParseBools(s, DefaultOnChar)
}

// ParseDigits builds a grid of single decimal digits, e.g. "123\n456".
func ParseDigits(s string) (*Grid[int], error) {
	return ParseDrawing(s, func(r rune) (int, error) {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, r)
		}
		return int(r - '0'), nil
	})
}

// ParseWords builds a grid from whitespace-separated tokens, one row per
// line, converting each token with parse. Shape errors are reported as for
// ParseDrawing, measuring width in tokens.
func ParseWords[T any](s string, parse func(string) (T, error)) (*Grid[T], error) {
	lines := splitLines(s)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Fields(line)
	}
	w := len(rows[0])
	for i, row := range rows[1:] {
		if len(row) != w {
			return nil, &ShapeError{Line: i + 2, Width: len(row), Want: w}
		}
	}
	if w == 0 {
		return nil, ErrEmptyInput
	}
	g := alloc[T](Bounds{Height: len(rows), Width: w})
	for y, row := range rows {
		for x, tok := range row {
			v, err := parse(tok)
			if err != nil {
				return nil, &CellParseError{Coords: Coords{Y: y, X: x}, Err: err}
			}
			g.data[y*w+x] = v
		}
	}
	return g, nil
}

// splitLines splits s on '\n', dropping one trailing newline and any '\r'
// line terminators.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
