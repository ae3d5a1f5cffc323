package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bestfirst/search"
	"github.com/katalvlaran/bestfirst/sortgame"
)

// newSortgameCmd builds the "sortgame" subcommand: read a token board
// and print the minimal cost of sorting every token into its home room.
func newSortgameCmd() *cobra.Command {
	var (
		extended bool
		showPath bool
	)

	cmd := &cobra.Command{
		Use:   "sortgame <input>",
		Short: "Minimize the cost of sorting tokens into their home rooms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			lines, err := readLines(args[0])
			if err != nil {
				return err
			}
			s, err := sortgame.Parse(lines)
			if err != nil {
				return err
			}
			if extended {
				if s, err = s.Deepen(); err != nil {
					return err
				}
			}
			logger.Debug("board loaded", "depth", s.Depth(), "extended", extended)

			opts := []search.Option[sortgame.State]{}
			if showPath {
				opts = append(opts, search.WithReturnPath[sortgame.State]())
			}

			start := time.Now()
			res, err := search.Run(sortgame.Space(s), opts...)
			if err != nil {
				return err
			}
			if !res.Found {
				return errors.New("no legal move sequence solves the board")
			}
			logger.Debug("search finished",
				"cost", res.Cost,
				"expanded", res.Expanded,
				"elapsed", time.Since(start).Round(time.Millisecond),
			)

			out := cmd.OutOrStdout()
			if showPath {
				for i, step := range res.Path {
					fmt.Fprintf(out, "move %d (+%d):\n%s\n", i, step.Cost, step.State)
				}
			}
			fmt.Fprintln(out, res.Cost)

			return nil
		},
	}

	cmd.Flags().BoolVar(&extended, "extended", false, "fold in the two extra rows of the 4-deep layout")
	cmd.Flags().BoolVar(&showPath, "show-path", false, "print every board along the optimal move sequence")

	return cmd
}
