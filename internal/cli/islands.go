package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func newIslandsCmd() *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "islands <file>",
		Short: "Count islands and the cheapest bridge between two of them",
		Long: `Reads a map in which the "on" character marks land and prints the number of
islands. When there are at least two, it also prints how many water cells must be
filled to join island --from to island --to, and which cells they are.

Islands are numbered from 0 in row-major order of their first cell.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			text, err := readInput(args[0])
			if err != nil {
				return err
			}
			land, err := grid.ParseBools(text, cfg.OnRune())
			if err != nil {
				return err
			}
			gg, err := gridgraph.NewGridGraph(land, func(b bool) bool { return b }, gridOptions(cfg))
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			comps := gg.ConnectedComponents()
			prog.done(fmt.Sprintf("Labelled %d islands", len(comps)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "islands: %d\n", len(comps))
			if len(comps) < 2 {
				return nil
			}

			path, cost, err := gg.ExpandIsland(from, to)
			switch {
			case errors.Is(err, gridgraph.ErrNoPath):
				fmt.Fprintln(out, "bridge: none")
				return nil
			case err != nil:
				return fmt.Errorf("islands %d and %d: %w", from, to, err)
			}

			var water []grid.Coords
			for _, c := range path {
				if !land.At(c) {
					water = append(water, c)
				}
			}
			fmt.Fprintf(out, "bridge %d-%d: %d %v\n", from, to, cost, water)
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "index of the first island")
	cmd.Flags().IntVar(&to, "to", 1, "index of the second island")

	return cmd
}
