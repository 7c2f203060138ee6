package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ToDOT converts the passable cells of gg to an undirected Graphviz graph.
// Nodes are pinned at their grid position for the neato engine; cells and
// steps of path are filled and drawn bold.
func ToDOT[T any](gg *gridgraph.GridGraph[T], path []grid.Coords) string {
	onPath := make(map[grid.Coords]bool, len(path))
	step := make(map[[2]grid.Coords]bool, len(path))
	for i, c := range path {
		onPath[c] = true
		if i > 0 {
			step[edgeKey(path[i-1], c)] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=square, style=filled, fillcolor=white, fontsize=10, width=0.5, fixedsize=true];\n")
	buf.WriteString("\n")

	for c := range gg.Grid().Coords() {
		if !gg.Passable(c) {
			continue
		}
		attrs := fmt.Sprintf("pos=\"%d,%d!\"", c.X, -c.Y)
		if onPath[c] {
			attrs += ", fillcolor=\"#2aa198\""
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(c), attrs)
	}

	buf.WriteString("\n")
	for c := range gg.Grid().Coords() {
		if !gg.Passable(c) {
			continue
		}
		for n := range gg.Neighbors(c) {
			if !before(c, n) {
				continue
			}
			if step[edgeKey(c, n)] {
				fmt.Fprintf(&buf, "  %q -- %q [penwidth=3];\n", nodeID(c), nodeID(n))
			} else {
				fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(c), nodeID(n))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(c grid.Coords) string { return fmt.Sprintf("%d,%d", c.Y, c.X) }

func before(a, b grid.Coords) bool {
	return a.Y < b.Y || (a.Y == b.Y && a.X < b.X)
}

func edgeKey(a, b grid.Coords) [2]grid.Coords {
	if before(b, a) {
		a, b = b, a
	}
	return [2]grid.Coords{a, b}
}

// RenderSVG renders a DOT graph to SVG with the neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
