package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Heading-aware path planning on occupancy grids",
	Long: `Plan minimum cost paths on a grid where the cost of a path is its length plus a penalty
for every change of heading. Plans are computed from maze files or served over http.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
