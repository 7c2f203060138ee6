// Package render draws grids for the terminal with lipgloss and as Graphviz
// diagrams.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/grid"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorAmber = lipgloss.Color("220")
	colorDim   = lipgloss.Color("240")
)

var (
	styleWall     = lipgloss.NewStyle().Foreground(colorDim)
	styleOpen     = lipgloss.NewStyle().Foreground(colorDim)
	stylePath     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleEndpoint = lipgloss.NewStyle().Bold(true).Foreground(colorAmber)
	styleLive     = lipgloss.NewStyle().Foreground(colorGreen)
)

const pathMark = "o"

// Maze draws a character grid with the cells of path marked. The first and
// last cells of path keep their own character and are styled as endpoints.
func Maze(g *grid.Grid[rune], wall rune, path []grid.Coords) string {
	onPath := make(map[grid.Coords]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	endpoint := func(c grid.Coords) bool {
		return len(path) > 0 && (c == path[0] || c == path[len(path)-1])
	}

	var b strings.Builder
	for y, row := range g.Rows() {
		for x, r := range row {
			c := grid.Coords{Y: y, X: x}
			switch {
			case endpoint(c):
				b.WriteString(styleEndpoint.Render(string(r)))
			case onPath[c]:
				b.WriteString(stylePath.Render(pathMark))
			case r == wall:
				b.WriteString(styleWall.Render(string(r)))
			default:
				b.WriteString(styleOpen.Render(string(r)))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Board draws a boolean grid using on for live cells and '.' otherwise.
func Board(g *grid.Grid[bool], on rune) string {
	var b strings.Builder
	for _, row := range g.Rows() {
		for _, alive := range row {
			if alive {
				b.WriteString(styleLive.Render(string(on)))
			} else {
				b.WriteString(styleOpen.Render("."))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
