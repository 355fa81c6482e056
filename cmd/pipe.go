package cmd

import (
	"github.com/spf13/cobra"
)

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Single pipe flow between two reservoirs",
	Long: `Solve steady flow through a single pipe connecting two reservoirs.

Subcommands:
  design   - Calculate the discharge for a given pipe and head

All quantities are SI: metres, seconds, m²/s for viscosity.`,
}

func init() {
	rootCmd.AddCommand(pipeCmd)
}
