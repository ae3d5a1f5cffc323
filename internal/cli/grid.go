package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bestfirst/gridrisk"
)

// tileFactor is the fixed logical expansion of the tiled variant.
const tileFactor = 5

// newGridCmd builds the "grid" subcommand: read a digit grid and print
// the minimal total risk of a walk from the top-left to the bottom-right
// cell.
func newGridCmd() *cobra.Command {
	var tiled bool

	cmd := &cobra.Command{
		Use:   "grid <input>",
		Short: "Minimize total risk across a digit grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			lines, err := readLines(args[0])
			if err != nil {
				return err
			}
			g, err := gridrisk.Parse(lines)
			if err != nil {
				return err
			}
			if tiled {
				g = g.Tile(tileFactor)
			}
			logger.Debug("grid loaded", "width", g.Width(), "height", g.Height(), "tiled", tiled)

			start := time.Now()
			cost, found, err := gridrisk.MinRisk(g)
			if err != nil {
				return err
			}
			if !found {
				return errors.New("no walk reaches the bottom-right cell")
			}
			logger.Debug("search finished", "cost", cost, "elapsed", time.Since(start).Round(time.Millisecond))

			fmt.Fprintln(cmd.OutOrStdout(), cost)

			return nil
		},
	}

	cmd.Flags().BoolVar(&tiled, "tiled", false, "expand the grid 5×5 with wraparound risk increment")

	return cmd
}
