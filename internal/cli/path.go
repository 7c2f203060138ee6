package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/render"
)

func newPathCmd() *cobra.Command {
	var (
		show    bool
		svgPath string
	)

	cmd := &cobra.Command{
		Use:   "path <file>",
		Short: "Fewest steps between the start and end of a maze",
		Long: `Reads a maze drawing and prints the fewest steps from the start marker
to the end marker, moving through any cell that is not a wall.

Without markers the search runs from the top-left to the bottom-right corner.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			text, err := readInput(args[0])
			if err != nil {
				return err
			}
			g, err := grid.ParseChars(text)
			if err != nil {
				return err
			}
			wall := cfg.WallRune()
			gg, err := gridgraph.NewGridGraph(g, func(r rune) bool { return r != wall }, gridOptions(cfg))
			if err != nil {
				return err
			}
			from, to := endpoints(g, cfg.StartRune(), cfg.EndRune())
			logger.Debug("searching", "from", from, "to", to, "conn", gg.Conn)

			prog := newProgress(logger)
			out := cmd.OutOrStdout()
			if !show && svgPath == "" {
				steps, ok := gg.UnitPath(from, to)
				prog.done(fmt.Sprintf("Searched %dx%d grid", g.Height(), g.Width()))
				if !ok {
					fmt.Fprintln(out, "unreachable")
					return nil
				}
				fmt.Fprintln(out, steps)
				return nil
			}

			route, steps, ok := gg.CheapestRoute(from, to, func(grid.Cell[rune]) int64 { return 1 })
			prog.done(fmt.Sprintf("Searched %dx%d grid", g.Height(), g.Width()))
			if ok {
				fmt.Fprintln(out, steps)
			} else {
				fmt.Fprintln(out, "unreachable")
			}
			if show {
				fmt.Fprint(out, render.Maze(g, wall, route))
			}
			if svgPath != "" {
				svg, err := render.RenderSVG(ctx, render.ToDOT(gg, route))
				if err != nil {
					return err
				}
				if err := os.WriteFile(svgPath, svg, 0o644); err != nil {
					return fmt.Errorf("write svg: %w", err)
				}
				logger.Info("Wrote diagram", "path", svgPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "draw the maze with the path marked")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write the passable-cell graph with the path as SVG")

	return cmd
}

// endpoints locates the start and end markers, defaulting to opposite corners.
func endpoints(g *grid.Grid[rune], start, end rune) (from, to grid.Coords) {
	from, _ = grid.Find(g, func(r rune) bool { return r == start })
	to, ok := grid.Find(g, func(r rune) bool { return r == end })
	if !ok {
		to = grid.Coords{Y: g.Height() - 1, X: g.Width() - 1}
	}
	return from, to
}
