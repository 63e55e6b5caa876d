package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakmund/sieve/storage"
)

func init() {
	storageCmd := &cobra.Command{
		Use:   "storage",
		Short: "Administer the puzzle store",
	}
	storageCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the storage schema if it's missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStorage(func(ctx context.Context) error {
				if err := storage.EnsureSchema(ctx); err != nil {
					return err
				}
				fmt.Println("storage ready")
				return nil
			})
		},
	})
	storageCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Drop all stored puzzles and results, then recreate the schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStorage(func(ctx context.Context) error {
				if err := storage.DropSchema(ctx); err != nil {
					return err
				}
				if err := storage.EnsureSchema(ctx); err != nil {
					return err
				}
				fmt.Println("storage cleared")
				return nil
			})
		},
	})
	rootCmd.AddCommand(storageCmd)
}

func withStorage(body func(ctx context.Context) error) error {
	ctx := context.Background()
	if _, _, err := storage.Connect(ctx); err != nil {
		return fmt.Errorf("couldn't connect to storage: %w", err)
	}
	defer storage.Close(ctx)
	return body(ctx)
}
