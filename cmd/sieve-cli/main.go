// Command-line front end for the sieve solver.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sieve-cli",
	Short: "Solve Sudoku puzzles by candidate elimination",
	Long: `sieve-cli narrows Sudoku puzzles to a fixed point by
eliminating candidate values, without guessing.  Cells the
elimination rules can't settle are left unknown.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
