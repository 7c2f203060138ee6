package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/config"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// writeFile stores content in a temporary file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the CLI and returns what it wrote to stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestPath(t *testing.T) {
	maze := writeFile(t, "maze.txt", "S.#\n#..\n##E\n")

	out, _, err := run(t, "path", maze)
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, _, err = run(t, "path", "--show", maze)
	require.NoError(t, err)
	assert.Equal(t, "4\nSo#\n#oo\n##E\n", out)
}

func TestPath_Diagonal(t *testing.T) {
	maze := writeFile(t, "maze.txt", "S#\n#E")

	out, _, err := run(t, "path", maze)
	require.NoError(t, err)
	assert.Equal(t, "unreachable\n", out)

	out, _, err = run(t, "path", "--diagonal", maze)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestPath_CornersWithoutMarkers(t *testing.T) {
	maze := writeFile(t, "maze.txt", "....\n.##.\n....")

	out, _, err := run(t, "path", maze)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestPath_ConfigFile(t *testing.T) {
	maze := writeFile(t, "maze.txt", "S#E")
	cfg := writeFile(t, "gridpath.toml", "wall = \"X\"\n")

	out, _, err := run(t, "path", maze)
	require.NoError(t, err)
	assert.Equal(t, "unreachable\n", out)

	out, _, err = run(t, "--config", cfg, "path", maze)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestPath_VerboseLogs(t *testing.T) {
	maze := writeFile(t, "maze.txt", "S.\n.E")

	_, logs, err := run(t, "path", maze)
	require.NoError(t, err)
	assert.Empty(t, logs)

	_, logs, err = run(t, "-v", "path", maze)
	require.NoError(t, err)
	assert.Contains(t, logs, "Searched 2x2 grid")
}

func TestPath_SVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz runtime start-up is slow")
	}
	maze := writeFile(t, "maze.txt", "S.\n.E")
	svg := filepath.Join(t.TempDir(), "maze.svg")

	out, _, err := run(t, "path", "--svg", svg, maze)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestCost(t *testing.T) {
	risk := writeFile(t, "risk.txt", "1163\n1381\n2136\n")

	out, _, err := run(t, "cost", risk)
	require.NoError(t, err)
	assert.Equal(t, "13\n", out)
}

func TestLife(t *testing.T) {
	blinker := writeFile(t, "blinker.txt", ".....\n..#..\n..#..\n..#..\n.....\n")

	out, _, err := run(t, "life", "-n", "1", blinker)
	require.NoError(t, err)
	assert.Equal(t, "generations: 1\npopulation: 3\n.....\n.....\n.###.\n.....\n.....\n", out)

	block := writeFile(t, "block.txt", "....\n.##.\n.##.\n....\n")
	out, _, err = run(t, "life", block)
	require.NoError(t, err)
	assert.Equal(t, "generations: 0\npopulation: 4\n....\n.##.\n.##.\n....\n", out)
}

func TestLife_BadRule(t *testing.T) {
	board := writeFile(t, "board.txt", "#")
	_, _, err := run(t, "life", "--rule", "B9", board)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestIslands(t *testing.T) {
	islands := writeFile(t, "map.txt", "#.#\n")

	out, _, err := run(t, "islands", islands)
	require.NoError(t, err)
	assert.Equal(t, "islands: 2\nbridge 0-1: 1 [(0,1)]\n", out)

	diag := writeFile(t, "diag.txt", "#.\n.#\n")
	out, _, err = run(t, "islands", "-d", diag)
	require.NoError(t, err)
	assert.Equal(t, "islands: 1\n", out)

	_, _, err = run(t, "islands", "--to", "5", islands)
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "path", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	ragged := writeFile(t, "ragged.txt", "..\n.")
	_, _, err = run(t, "path", ragged)
	assert.Error(t, err)

	bad := writeFile(t, "bad.toml", "colour = 1\n")
	maze := writeFile(t, "maze.txt", "S.E")
	_, _, err = run(t, "--config", bad, "path", maze)
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "path")
	assert.Error(t, err, "missing argument")
}

func TestSetVersion(t *testing.T) {
	SetVersion("v1.0.0", "abc123")
	t.Cleanup(func() { SetVersion("dev", "") })

	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "gridpath v1.0.0 abc123\n", out)
}
