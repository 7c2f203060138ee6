// Package automaton runs outer-totalistic cellular automata (Life-like rules)
// on boolean grids. Every generation is computed from the previous one as a
// whole, so updates are simultaneous.
package automaton

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrBadRule is returned for malformed rule strings or neighbor counts.
var ErrBadRule = errors.New("automaton: invalid rule")

// Rule decides the next state of a cell from its current state and the number
// of live cells among its eight neighbors.
type Rule struct {
	Birth   [9]bool // dead cell with n live neighbors becomes alive
	Survive [9]bool // live cell with n live neighbors stays alive
}

var (
	// Conway is B3/S23.
	Conway = MustRule([]int{3}, []int{2, 3})
	// Majority grows a cell when most of its neighbors are set: B5678/S45678.
	Majority = MustRule([]int{5, 6, 7, 8}, []int{4, 5, 6, 7, 8})
)

// Presets maps preset names to rules.
var Presets = map[string]Rule{
	"conway":   Conway,
	"life":     Conway,
	"majority": Majority,
}

// NewRule builds a rule from neighbor counts in [0,8].
func NewRule(birth, survive []int) (Rule, error) {
	var r Rule
	for _, n := range birth {
		if n < 0 || n > 8 {
			return Rule{}, fmt.Errorf("%w: birth count %d", ErrBadRule, n)
		}
		r.Birth[n] = true
	}
	for _, n := range survive {
		if n < 0 || n > 8 {
			return Rule{}, fmt.Errorf("%w: survive count %d", ErrBadRule, n)
		}
		r.Survive[n] = true
	}
	return r, nil
}

// MustRule is NewRule that panics on error.
func MustRule(birth, survive []int) Rule {
	r, err := NewRule(birth, survive)
	if err != nil {
		panic(err)
	}
	return r
}

// ParseRule reads "B3/S23" notation (case-insensitive) or a preset name.
func ParseRule(s string) (Rule, error) {
	if r, ok := Presets[strings.ToLower(s)]; ok {
		return r, nil
	}

	b, sv, ok := strings.Cut(strings.ToUpper(s), "/")
	if !ok || !strings.HasPrefix(b, "B") || !strings.HasPrefix(sv, "S") {
		return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, s)
	}
	birth, err := counts(b[1:])
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, s)
	}
	survive, err := counts(sv[1:])
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, s)
	}
	return NewRule(birth, survive)
}

func counts(digits string) ([]int, error) {
	out := make([]int, 0, len(digits))
	for _, r := range digits {
		n, err := strconv.Atoi(string(r))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Next returns the state of a cell in the following generation.
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		return r.Survive[neighbors]
	}
	return r.Birth[neighbors]
}

// String renders the rule in B/S notation.
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for n, ok := range r.Birth {
		if ok {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	sb.WriteString("/S")
	for n, ok := range r.Survive {
		if ok {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}

// Step computes one generation. With wrap the board is a torus; otherwise
// cells beyond the edge count as dead.
func Step(g *grid.Grid[bool], r Rule, wrap bool) *grid.Grid[bool] {
	return grid.MapCells(g, func(c grid.Cell[bool]) bool {
		neighbors := c.Adjacent()
		if wrap {
			neighbors = c.AdjacentWrap()
		}
		n := 0
		for nb := range neighbors {
			if nb.Get() {
				n++
			}
		}
		return r.Next(c.Get(), n)
	})
}

// Run advances g by up to generations steps and stops early once the board
// stops changing. It returns the final board and the number of steps taken.
func Run(g *grid.Grid[bool], r Rule, wrap bool, generations int) (*grid.Grid[bool], int) {
	cur := g
	for i := 0; i < generations; i++ {
		next := Step(cur, r, wrap)
		if grid.Equal(cur, next) {
			return cur, i
		}
		cur = next
	}
	return cur, generations
}

// Population counts live cells.
func Population(g *grid.Grid[bool]) int {
	return grid.Count(g, func(alive bool) bool { return alive })
}
