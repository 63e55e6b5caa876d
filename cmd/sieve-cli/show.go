package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakmund/sieve/puzzle"
	"github.com/oakmund/sieve/storage"
)

func init() {
	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show stored puzzles",
		Long: `With no argument, list every stored puzzle.  With a puzzle
ID, print that puzzle and its stored result, if any.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	return withStorage(func(ctx context.Context) error {
		if len(args) == 0 {
			return listStored(ctx)
		}
		return showStored(ctx, args[0])
	})
}

func listStored(ctx context.Context) error {
	recs, err := storage.ListPuzzles(ctx)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("no stored puzzles")
		return nil
	}
	for _, rec := range recs {
		name := rec.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("%s  %dx%d  %s  %s\n",
			rec.ID, rec.SideLength, rec.SideLength,
			rec.CreatedAt.Format("2006-01-02 15:04"), name)
	}
	return nil
}

func showStored(ctx context.Context, id string) error {
	rec, err := storage.LoadPuzzle(ctx, id)
	if err != nil {
		return err
	}
	grid, err := rec.Grid()
	if err != nil {
		return err
	}
	fmt.Print(grid)
	res, found, err := storage.LoadResult(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("not yet solved")
		return nil
	}
	fmt.Printf("result after %d passes, %d unknown:\n", res.Passes, res.Unknown)
	solved, err := puzzle.ParseGrid(res.Cells)
	if err != nil {
		return err
	}
	fmt.Print(solved)
	return nil
}
