package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/render"
)

func init() {
	// Plain output so the rendered text can be compared directly.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func chars(t *testing.T, s string) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.ParseChars(s)
	require.NoError(t, err)
	return g
}

func TestMaze_MarksPath(t *testing.T) {
	g := chars(t, "S.#\n#..\n##E")
	path := []grid.Coords{{Y: 0, X: 0}, {Y: 0, X: 1}, {Y: 1, X: 1}, {Y: 1, X: 2}, {Y: 2, X: 2}}

	got := render.Maze(g, '#', path)
	assert.Equal(t, "So#\n#oo\n##E\n", got)
}

func TestMaze_NoPath(t *testing.T) {
	g := chars(t, "S#\n#E")
	assert.Equal(t, "S#\n#E\n", render.Maze(g, '#', nil))
}

func TestBoard(t *testing.T) {
	g, err := grid.ParseBools(".#.\n.#.", '#')
	require.NoError(t, err)
	assert.Equal(t, ".@.\n.@.\n", render.Board(g, '@'))
}

func TestToDOT(t *testing.T) {
	g := chars(t, "..\n#.")
	gg, err := gridgraph.NewGridGraph(g, func(r rune) bool { return r != '#' }, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	dot := render.ToDOT(gg, []grid.Coords{{Y: 0, X: 0}, {Y: 0, X: 1}})

	assert.True(t, strings.HasPrefix(dot, "graph G {\n"))
	assert.Contains(t, dot, `"0,0" [pos="0,0!", fillcolor="#2aa198"];`)
	assert.Contains(t, dot, `"1,1" [pos="1,-1!"];`)
	assert.NotContains(t, dot, `"1,0"`, "walls are not nodes")
	assert.Contains(t, dot, `"0,0" -- "0,1" [penwidth=3];`)
	assert.Contains(t, dot, `"0,1" -- "1,1";`)
	assert.Equal(t, 2, strings.Count(dot, " -- "), "each edge once")
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz runtime start-up is slow")
	}
	g := chars(t, "..\n..")
	gg, err := gridgraph.NewGridGraph(g, nil, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	svg, err := render.RenderSVG(context.Background(), render.ToDOT(gg, nil))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	_, err = render.RenderSVG(context.Background(), "graph {")
	assert.Error(t, err)
}
