package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// Execute runs the root command.
func Execute(version, commit string) error {
	rootCmd := newRootCommand(version, commit)
	return rootCmd.Execute()
}

func newRootCommand(version, commit string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "goldgrid",
		Short: "goldgrid - maximum-gold path planning on rectangular grids",
		Long: `goldgrid finds the monotone path (right/down moves only) through a
rectangular grid that collects the most gold without crossing a rock.

Grid files are plain text, one row per line:
  .       open cell, no gold
  X       rock (impassable)
  1..9    open cell with that much gold

The path starts at the top-left cell and may end anywhere reachable.`,
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(newSolveCommand())

	return rootCmd
}
