// Package cli implements the bestfirst command-line interface.
//
// The CLI runs the two bundled puzzle searches over input files:
//
//   - grid:     minimal total risk across a digit grid (optionally tiled
//     5×5 with wraparound risk increment)
//   - sortgame: minimal cost of sorting every token into its home room
//     (optionally the extended 4-deep layout)
//
// All commands support --verbose (-v) for debug-level logging; loggers
// are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the bestfirst CLI and returns an error if any command
// fails. ctx carries cancellation from the caller (e.g. SIGINT).
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "bestfirst",
		Short:        "bestfirst solves shortest-path search puzzles",
		Long:         `bestfirst runs a deterministic Dijkstra/A* engine over the bundled puzzle state spaces: weighted-grid risk minimization and combinatorial token sorting.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGridCmd())
	root.AddCommand(newSortgameCmd())

	return root.ExecuteContext(ctx)
}

// readLines loads the puzzle input file and splits it into lines,
// dropping trailing blank lines.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}
