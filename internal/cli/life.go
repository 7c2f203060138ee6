package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/automaton"
	"github.com/katalvlaran/gridpath/internal/render"
)

func newLifeCmd() *cobra.Command {
	var (
		generations int
		rule        string
		wrap        bool
	)

	cmd := &cobra.Command{
		Use:   "life <file>",
		Short: "Run a life-like cellular automaton",
		Long: `Reads a board drawing in which the "on" character marks live cells and
advances it under a Birth/Survive rule until the generation limit or until the
board stops changing. Prints the steps taken, the live population and the final
board.

Rules are preset names (conway, life, majority) or B/S notation such as B36/S23.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			if cmd.Flags().Changed("generations") {
				cfg.Life.Generations = generations
			}
			if cmd.Flags().Changed("rule") {
				cfg.Life.Rule = rule
			}
			if cmd.Flags().Changed("wrap") {
				cfg.Life.Wrap = wrap
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			text, err := readInput(args[0])
			if err != nil {
				return err
			}
			board, err := grid.ParseBools(text, cfg.OnRune())
			if err != nil {
				return err
			}
			r := cfg.Rule()
			logger.Debug("running automaton", "rule", r, "wrap", cfg.Life.Wrap, "limit", cfg.Life.Generations)

			prog := newProgress(logger)
			final, steps := automaton.Run(board, r, cfg.Life.Wrap, cfg.Life.Generations)
			prog.done(fmt.Sprintf("Ran %d generations", steps))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "generations: %d\npopulation: %d\n", steps, automaton.Population(final))
			fmt.Fprint(out, render.Board(final, cfg.OnRune()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&generations, "generations", "n", 0, "maximum number of generations (default from config)")
	cmd.Flags().StringVar(&rule, "rule", "", "rule preset or B/S notation (default from config)")
	cmd.Flags().BoolVar(&wrap, "wrap", false, "treat the board as a torus")

	return cmd
}
