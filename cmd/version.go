package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gohyd/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gohyd",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Pipe Hydraulics Calculator")
		for _, line := range version.Details() {
			fmt.Fprintf(out, "  %s\n", line)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
