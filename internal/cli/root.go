// Package cli implements the gridpath command-line interface.
//
// Commands read a grid drawing from a file, run one of the grid algorithms
// and print the result:
//   - path: fewest steps between the start and end markers of a maze
//   - cost: cheapest corner-to-corner route through a grid of digits
//   - life: run a life-like cellular automaton
//   - islands: count islands and the cheapest bridge between two of them
//
// Settings come from an optional TOML file (--config) with flags applied on
// top. The logger and the resolved configuration travel in the command
// context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/config"
)

var (
	version = "dev"
	commit  string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the gridpath CLI with args, writing results to stdout and logs
// to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
	diagonal   bool
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Shortest paths, islands and automata on 2-D grids",
		Long:          `gridpath reads character drawings of grids and runs breadth-first and Dijkstra searches, island analysis and life-like cellular automata over them.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			level := cfg.Level()
			if flags.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(logOut, level))
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("gridpath %s %s\n", version, commit))
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "TOML configuration file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVarP(&flags.diagonal, "diagonal", "d", false, "move diagonally (8-connectivity)")

	root.AddCommand(newPathCmd())
	root.AddCommand(newCostCmd())
	root.AddCommand(newLifeCmd())
	root.AddCommand(newIslandsCmd())

	return root
}

// resolveConfig loads the configuration file, if any, and applies flags set
// on the command line.
func resolveConfig(cmd *cobra.Command, flags globalFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		if cfg, err = config.Load(flags.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if cmd.Flags().Changed("diagonal") {
		cfg.Diagonal = flags.diagonal
	}
	return cfg, nil
}

func gridOptions(cfg config.Config) gridgraph.GridOptions {
	opts := gridgraph.DefaultGridOptions()
	if cfg.Diagonal {
		opts.Conn = gridgraph.Conn8
	}
	return opts
}

func readInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read grid: %w", err)
	}
	return string(data), nil
}
