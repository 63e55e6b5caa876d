package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakmund/sieve/puzzle"
	"github.com/oakmund/sieve/storage"
)

var (
	inlinePuzzle   string
	showCandidates bool
	storePuzzle    bool
	puzzleName     string
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a puzzle from a file, stdin, or the --puzzle flag",
		Long: `Solve a puzzle given as a string of cell values in row order:
digits for solved cells, '.' or '0' for empty ones.  Whitespace
is ignored, so the string may be split across lines.

Examples:
  sieve-cli solve puzzle.txt
  sieve-cli solve --puzzle 1030030130100103
  cat puzzle.txt | sieve-cli solve`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&inlinePuzzle, "puzzle", "p", "", "Puzzle cells as a single string")
	solveCmd.Flags().BoolVarP(&showCandidates, "candidates", "c", false, "Dump the candidate masks after solving")
	solveCmd.Flags().BoolVarP(&storePuzzle, "store", "s", false, "Store the puzzle and its result")
	solveCmd.Flags().StringVar(&puzzleName, "name", "", "Name for the stored puzzle")

	rootCmd.AddCommand(solveCmd)
}

// readPuzzle collects the puzzle string from the inline flag, the
// named file, or stdin, in that order of preference.
func readPuzzle(args []string) (string, error) {
	if inlinePuzzle != "" {
		return inlinePuzzle, nil
	}
	if len(args) == 1 {
		bytes, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("couldn't read puzzle file: %w", err)
		}
		return string(bytes), nil
	}
	bytes, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("couldn't read puzzle from stdin: %w", err)
	}
	return string(bytes), nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	input, err := readPuzzle(args)
	if err != nil {
		return err
	}
	grid, err := puzzle.ParseGrid(input)
	if err != nil {
		return err
	}
	start := grid.Copy()
	result, candidates, err := puzzle.Solve(grid)
	if err != nil {
		return err
	}
	fmt.Print(grid)
	if unknown := result.Unknown; unknown > 0 {
		fmt.Printf("%d cells still unknown after %d passes\n", unknown, result.Passes)
	} else {
		fmt.Printf("solved in %d passes\n", result.Passes)
	}
	if showCandidates {
		fmt.Print(candidates)
	}
	if storePuzzle {
		return storeSolve(start, grid, result)
	}
	return nil
}

// storeSolve persists the starting puzzle and its solve outcome.
func storeSolve(start, solved *puzzle.Grid, result puzzle.Result) error {
	return withStorage(func(ctx context.Context) error {
		rec, err := storage.SavePuzzle(ctx, puzzleName, start)
		if err != nil {
			return err
		}
		if _, err := storage.SaveResult(ctx, rec, solved, result); err != nil {
			return err
		}
		fmt.Printf("stored as %s\n", rec.ID)
		return nil
	})
}
