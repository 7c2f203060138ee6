package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/render"
)

func newCostCmd() *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "cost <file>",
		Short: "Cheapest corner-to-corner route through a grid of digits",
		Long: `Reads a grid of decimal digits and prints the lowest total risk of a route
from the top-left to the bottom-right corner. Entering a cell costs its digit;
the starting cell is free.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			text, err := readInput(args[0])
			if err != nil {
				return err
			}
			g, err := grid.ParseDigits(text)
			if err != nil {
				return err
			}
			gg, err := gridgraph.NewGridGraph(g, nil, gridOptions(cfg))
			if err != nil {
				return err
			}

			from := grid.Coords{}
			to := grid.Coords{Y: g.Height() - 1, X: g.Width() - 1}
			entry := func(c grid.Cell[int]) int64 { return int64(c.Get()) }

			prog := newProgress(logger)
			route, total, ok := gg.CheapestRoute(from, to, entry)
			prog.done(fmt.Sprintf("Searched %dx%d grid", g.Height(), g.Width()))
			if !ok {
				return fmt.Errorf("no route from %v to %v", from, to)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, total)
			if show {
				digits := grid.Map(g, func(v int) rune { return rune('0' + v) })
				fmt.Fprint(out, render.Maze(digits, -1, route))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "draw the grid with the route marked")

	return cmd
}
