package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

/*

database schema

*/

// schemaStatements creates the tables if they aren't already there.
// Puzzles are stored in the compact string form (one character per
// cell in reading order); results carry the grid at the fixed point
// plus the solve summary.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS puzzles (
		puzzleId text PRIMARY KEY,
		name text NOT NULL DEFAULT '',
		sideLength integer NOT NULL,
		cells text NOT NULL,
		createdAt timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS results (
		puzzleId text PRIMARY KEY REFERENCES puzzles ON DELETE CASCADE,
		cells text NOT NULL,
		passes integer NOT NULL,
		unknown integer NOT NULL,
		solvedAt timestamptz NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema runs the schema statements in one transaction.
func EnsureSchema(ctx context.Context) error {
	return pgExecute(ctx, func(tx pgx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("schema statement failed: %v", err)
			}
		}
		return nil
	})
}

// DropSchema tears the tables down.  Meant for tests and for the
// reset command, not for production use.
func DropSchema(ctx context.Context) error {
	return pgExecute(ctx, func(tx pgx.Tx) error {
		for _, table := range []string{"results", "puzzles"} {
			if _, err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
				return fmt.Errorf("couldn't drop table %s: %v", table, err)
			}
		}
		return nil
	})
}
